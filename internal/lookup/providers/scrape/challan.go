package scrape

import (
	"context"
	"log/slog"

	"vehicleinfo/internal/lookup/models"
	"vehicleinfo/internal/lookup/normalize"
	"vehicleinfo/internal/lookup/providers"
)

// ChallanSites scrapes challan rows out of the first result table.
type ChallanSites struct {
	site
}

func NewChallanSites(sites []string, fetcher Fetcher, log *slog.Logger) *ChallanSites {
	return &ChallanSites{site: newSite(providers.IDChallanScrape, sites, challanInputKeywords, fetcher, log)}
}

func (c *ChallanSites) ID() string { return providers.IDChallanScrape }

func (c *ChallanSites) Tier() providers.Tier { return providers.TierScrape }

// Lookup treats a page without challan rows as a miss.
func (c *ChallanSites) Lookup(ctx context.Context, plate models.Plate) ([]models.ChallanRecord, error) {
	return search(ctx, c.site, plate, func(doc *Document) ([]models.ChallanRecord, error) {
		return challansFromDocument(c.ID(), doc)
	})
}

func challansFromDocument(id string, doc *Document) ([]models.ChallanRecord, error) {
	var table [][]string
	for _, t := range doc.Tables() {
		if len(t) >= 2 {
			table = t
			break
		}
	}
	if table == nil {
		return nil, providers.NewProviderError(providers.ErrorNotFound, id, "no result table", nil)
	}

	var challans []models.ChallanRecord
	for _, row := range table[1:] {
		if c, ok := normalize.ChallanFromCells(row); ok {
			challans = append(challans, c)
		}
	}
	if len(challans) == 0 {
		return nil, providers.NewProviderError(providers.ErrorNotFound, id, "result table has no challan rows", nil)
	}
	return challans, nil
}
