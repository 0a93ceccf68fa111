// Package echallan queries the national eChallan citizen service.
package echallan

import (
	"context"
	"encoding/json"
	"strings"

	"vehicleinfo/internal/lookup/models"
	"vehicleinfo/internal/lookup/normalize"
	"vehicleinfo/internal/lookup/providers"
	"vehicleinfo/internal/lookup/providers/httpclient"
)

const (
	defaultStateCode = "DL"
	// The service requires a CAPTCHA field; solving it is out of scope, so a
	// placeholder is sent and most live calls will be refused.
	captchaPlaceholder = "XXXX"
)

// Provider is the authoritative challan source.
type Provider struct {
	endpoint string
	client   *httpclient.Client
}

// New builds the adapter for endpoint.
func New(endpoint string, client *httpclient.Client) *Provider {
	return &Provider{endpoint: endpoint, client: client}
}

func (p *Provider) ID() string { return providers.IDEChallan }

func (p *Provider) Tier() providers.Tier { return providers.TierAuthoritative }

type request struct {
	VehicleNo string `json:"vehicleNo"`
	StateCode string `json:"stateCode"`
	Captcha   string `json:"captcha"`
}

type response struct {
	Status      string `json:"status"`
	ChallanList []any  `json:"challanList"`
}

// Lookup posts the plate. A successful response with an empty list is a
// confirmed clean record.
func (p *Provider) Lookup(ctx context.Context, plate models.Plate) ([]models.ChallanRecord, error) {
	state := defaultStateCode
	if len(plate) > 2 {
		state = plate.StateCode()
	}

	resp, err := p.client.PostJSON(ctx, p.ID(), p.endpoint,
		request{VehicleNo: plate.String(), StateCode: state, Captcha: captchaPlaceholder},
		httpclient.PortalHeaders(httpclient.Referer(p.endpoint)))
	if err != nil {
		return nil, err
	}
	return parseChallanResponse(resp.Status, resp.Body)
}

func parseChallanResponse(status int, body []byte) ([]models.ChallanRecord, error) {
	if status < 200 || status >= 300 {
		return nil, providers.FromStatus(providers.IDEChallan, status)
	}

	var r response
	if err := json.Unmarshal(body, &r); err != nil {
		return nil, providers.NewProviderError(providers.ErrorBadData, providers.IDEChallan,
			"failed to parse response", err)
	}
	if !strings.EqualFold(r.Status, "Success") {
		return nil, providers.NewProviderError(providers.ErrorNotFound, providers.IDEChallan,
			"status "+r.Status, nil)
	}
	challans := normalize.Challans(r.ChallanList, normalize.CamelChallanKeys)
	if len(r.ChallanList) > 0 && len(challans) == 0 {
		return nil, providers.NewProviderError(providers.ErrorContractMismatch, providers.IDEChallan,
			"challans are not objects", nil)
	}
	return challans, nil
}
