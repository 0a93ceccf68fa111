// Package rapidapi walks an ordered list of third-party JSON endpoints and
// returns the first usable answer.
package rapidapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"vehicleinfo/internal/lookup/models"
	"vehicleinfo/internal/lookup/normalize"
	"vehicleinfo/internal/lookup/providers"
	"vehicleinfo/internal/lookup/providers/httpclient"
	"vehicleinfo/internal/platform/logger"
	"vehicleinfo/pkg/requestcontext"
)

// Envelope keys some APIs nest their payload under.
var envelopes = []string{"data", "result", "vehicle", "response"}

// VehicleAPIs is the alternate vehicle source.
type VehicleAPIs struct {
	endpoints []string
	client    *httpclient.Client
	logger    *slog.Logger
}

// NewVehicleAPIs builds the adapter. Endpoints are templates containing
// {plate}.
func NewVehicleAPIs(endpoints []string, client *httpclient.Client, log *slog.Logger) *VehicleAPIs {
	if log == nil {
		log = logger.Discard()
	}
	return &VehicleAPIs{endpoints: endpoints, client: client, logger: log}
}

func (a *VehicleAPIs) ID() string { return providers.IDVehicleAPIs }

func (a *VehicleAPIs) Tier() providers.Tier { return providers.TierAlternate }

func (a *VehicleAPIs) Lookup(ctx context.Context, plate models.Plate) (models.VehicleRecord, error) {
	return providers.TryEach(ctx, a.logger, a.ID(), a.endpoints, func(ctx context.Context, endpoint string) (models.VehicleRecord, error) {
		resp, err := a.client.Get(ctx, a.ID(), httpclient.Expand(endpoint, plate.String()), httpclient.BrowserHeaders(httpclient.AcceptJSON))
		if err != nil {
			return models.VehicleRecord{}, err
		}
		rec, err := parseVehicleResponse(a.ID(), resp.Status, resp.Body, requestcontext.Now(ctx))
		if err != nil {
			return models.VehicleRecord{}, err
		}
		rec.RegistrationNumber = plate.String()
		return rec, nil
	})
}

func parseVehicleResponse(id string, status int, body []byte, now time.Time) (models.VehicleRecord, error) {
	obj, err := decodeObject(id, status, body)
	if err != nil {
		return models.VehicleRecord{}, err
	}
	for _, candidate := range unwrap(obj) {
		if rec, ok := normalize.Vehicle(candidate, normalize.CanonicalVehicleKeys, now); ok {
			return rec, nil
		}
	}
	return models.VehicleRecord{}, providers.NewProviderError(providers.ErrorContractMismatch, id,
		"object has no recognised fields", nil)
}

// ChallanAPIs is the alternate challan source.
type ChallanAPIs struct {
	endpoints []string
	client    *httpclient.Client
	logger    *slog.Logger
}

// NewChallanAPIs builds the adapter. Endpoints are templates containing
// {plate}.
func NewChallanAPIs(endpoints []string, client *httpclient.Client, log *slog.Logger) *ChallanAPIs {
	if log == nil {
		log = logger.Discard()
	}
	return &ChallanAPIs{endpoints: endpoints, client: client, logger: log}
}

func (a *ChallanAPIs) ID() string { return providers.IDChallanAPIs }

func (a *ChallanAPIs) Tier() providers.Tier { return providers.TierAlternate }

// Lookup only accepts a non-empty challan list: these APIs answer unknown
// plates with an empty list, so an empty answer is not trusted as clean.
func (a *ChallanAPIs) Lookup(ctx context.Context, plate models.Plate) ([]models.ChallanRecord, error) {
	return providers.TryEach(ctx, a.logger, a.ID(), a.endpoints, func(ctx context.Context, endpoint string) ([]models.ChallanRecord, error) {
		resp, err := a.client.Get(ctx, a.ID(), httpclient.Expand(endpoint, plate.String()), httpclient.BrowserHeaders(httpclient.AcceptJSON))
		if err != nil {
			return nil, err
		}
		return parseChallanResponse(a.ID(), resp.Status, resp.Body)
	})
}

func parseChallanResponse(id string, status int, body []byte) ([]models.ChallanRecord, error) {
	obj, err := decodeObject(id, status, body)
	if err != nil {
		return nil, err
	}
	list, _ := obj["challans"].([]any)
	if len(list) == 0 {
		return nil, providers.NewProviderError(providers.ErrorNotFound, id, "no challans in response", nil)
	}
	challans := normalize.Challans(list, normalize.CamelChallanKeys)
	if len(challans) == 0 {
		return nil, providers.NewProviderError(providers.ErrorContractMismatch, id, "challans are not objects", nil)
	}
	return challans, nil
}

func decodeObject(id string, status int, body []byte) (map[string]any, error) {
	if status < 200 || status >= 300 {
		return nil, providers.FromStatus(id, status)
	}
	var obj map[string]any
	if err := json.Unmarshal(body, &obj); err != nil {
		return nil, providers.NewProviderError(providers.ErrorBadData, id, "response is not a JSON object", err)
	}
	if len(obj) == 0 {
		return nil, providers.NewProviderError(providers.ErrorNotFound, id, "empty object", nil)
	}
	return obj, nil
}

// unwrap returns obj followed by any object nested under an envelope key.
func unwrap(obj map[string]any) []map[string]any {
	out := []map[string]any{obj}
	for _, key := range envelopes {
		if inner, ok := obj[key].(map[string]any); ok {
			out = append(out, inner)
		}
	}
	return out
}
