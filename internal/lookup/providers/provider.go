package providers

//go:generate mockgen -source=provider.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"vehicleinfo/internal/lookup/models"
)

// Tier orders sources from authoritative to synthetic.
type Tier string

const (
	TierAuthoritative Tier = "authoritative"
	TierAlternate     Tier = "alternate"
	TierScrape        Tier = "scrape"
	TierSynthetic     Tier = "synthetic"
)

// Domain names a lookup pipeline.
type Domain string

const (
	DomainVehicle Domain = "vehicle"
	DomainChallan Domain = "challan"
)

// Source IDs of the built-in adapters.
const (
	IDVahan            = "vahan"
	IDEChallan         = "echallan"
	IDVehicleAPIs      = "vehicle-apis"
	IDChallanAPIs      = "challan-apis"
	IDVehicleScrape    = "vehicle-scrape"
	IDChallanScrape    = "challan-scrape"
	IDVehicleSynthetic = "vehicle-synthetic"
	IDChallanSynthetic = "challan-synthetic"
)

// VehicleSource is one retrieval technique for registration records.
// A miss is any non-nil error; callers advance to the next source.
type VehicleSource interface {
	ID() string
	Tier() Tier
	Lookup(ctx context.Context, plate models.Plate) (models.VehicleRecord, error)
}

// ChallanSource is one retrieval technique for challans. A nil error with an
// empty slice is a confirmed zero-challan answer, not a miss.
type ChallanSource interface {
	ID() string
	Tier() Tier
	Lookup(ctx context.Context, plate models.Plate) ([]models.ChallanRecord, error)
}

// VehicleGenerator is the last resort of the vehicle chain.
type VehicleGenerator interface {
	ID() string
	Generate(ctx context.Context, plate models.Plate) (models.VehicleRecord, error)
}

// ChallanGenerator is the last resort of the challan chain.
type ChallanGenerator interface {
	ID() string
	Generate(ctx context.Context, plate models.Plate) ([]models.ChallanRecord, error)
}
