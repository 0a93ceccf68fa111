// Package vahan queries the national VAHAN registration service.
package vahan

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"vehicleinfo/internal/lookup/models"
	"vehicleinfo/internal/lookup/normalize"
	"vehicleinfo/internal/lookup/providers"
	"vehicleinfo/internal/lookup/providers/httpclient"
	"vehicleinfo/pkg/requestcontext"
)

// The endpoint expects the issuing transport department, which is always Delhi.
const transportDept = "DL"

// Provider is the authoritative vehicle source.
type Provider struct {
	endpoint string
	client   *httpclient.Client
}

// New builds the adapter for endpoint.
func New(endpoint string, client *httpclient.Client) *Provider {
	return &Provider{endpoint: endpoint, client: client}
}

func (p *Provider) ID() string { return providers.IDVahan }

func (p *Provider) Tier() providers.Tier { return providers.TierAuthoritative }

type request struct {
	RegnNo string `json:"regn_no"`
	TD     string `json:"td"`
}

type response struct {
	Status string           `json:"status"`
	Row    []map[string]any `json:"row"`
}

// Lookup posts the plate and maps the first returned row.
func (p *Provider) Lookup(ctx context.Context, plate models.Plate) (models.VehicleRecord, error) {
	resp, err := p.client.PostJSON(ctx, p.ID(), p.endpoint,
		request{RegnNo: plate.String(), TD: transportDept}, httpclient.PortalHeaders(httpclient.Referer(p.endpoint)))
	if err != nil {
		return models.VehicleRecord{}, err
	}
	rec, err := parseVehicleResponse(resp.Status, resp.Body, requestcontext.Now(ctx))
	if err != nil {
		return models.VehicleRecord{}, err
	}
	if rec.RegistrationNumber == models.NA {
		rec.RegistrationNumber = plate.String()
	}
	return rec, nil
}

func parseVehicleResponse(status int, body []byte, now time.Time) (models.VehicleRecord, error) {
	if status < 200 || status >= 300 {
		return models.VehicleRecord{}, providers.FromStatus(providers.IDVahan, status)
	}

	var r response
	if err := json.Unmarshal(body, &r); err != nil {
		return models.VehicleRecord{}, providers.NewProviderError(providers.ErrorBadData, providers.IDVahan,
			"failed to parse response", err)
	}
	if !strings.EqualFold(r.Status, "Success") {
		return models.VehicleRecord{}, providers.NewProviderError(providers.ErrorNotFound, providers.IDVahan,
			"status "+r.Status, nil)
	}
	if len(r.Row) == 0 {
		return models.VehicleRecord{}, providers.NewProviderError(providers.ErrorContractMismatch, providers.IDVahan,
			"success without rows", nil)
	}

	row := r.Row[0]
	rec, ok := normalize.Vehicle(row, normalize.VahanVehicleKeys, now)
	if !ok {
		return models.VehicleRecord{}, providers.NewProviderError(providers.ErrorContractMismatch, providers.IDVahan,
			"row has no recognised fields", nil)
	}
	flag, _ := row["blacklist_status"].(string)
	rec.BlacklistStatus = normalize.BlacklistFromFlag(flag)
	return rec, nil
}
