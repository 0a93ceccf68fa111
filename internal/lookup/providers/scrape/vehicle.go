package scrape

import (
	"context"
	"log/slog"

	"golang.org/x/net/html/atom"

	"vehicleinfo/internal/lookup/models"
	"vehicleinfo/internal/lookup/normalize"
	"vehicleinfo/internal/lookup/providers"
)

// VehicleSites scrapes owner details from "Label: value" text on result pages.
type VehicleSites struct {
	site
}

func NewVehicleSites(sites []string, fetcher Fetcher, log *slog.Logger) *VehicleSites {
	return &VehicleSites{site: newSite(providers.IDVehicleScrape, sites, vehicleInputKeywords, fetcher, log)}
}

func (v *VehicleSites) ID() string { return providers.IDVehicleScrape }

func (v *VehicleSites) Tier() providers.Tier { return providers.TierScrape }

func (v *VehicleSites) Lookup(ctx context.Context, plate models.Plate) (models.VehicleRecord, error) {
	return search(ctx, v.site, plate, func(doc *Document) (models.VehicleRecord, error) {
		return vehicleFromDocument(v.ID(), doc, plate)
	})
}

func vehicleFromDocument(id string, doc *Document, plate models.Plate) (models.VehicleRecord, error) {
	found := normalize.Labelled(doc.Texts(atom.Div, atom.Span, atom.Td, atom.Th))
	if len(found) == 0 {
		return models.VehicleRecord{}, providers.NewProviderError(providers.ErrorNotFound, id,
			"no labelled fields on result page", nil)
	}
	rec := models.NewVehicleRecord()
	rec.RegistrationNumber = plate.String()
	for key, value := range found {
		rec.Set(key, value)
	}
	return rec, nil
}
