package lookup

import (
	"net/http"

	"vehicleinfo/internal/lookup/providers"
	"vehicleinfo/internal/lookup/providers/echallan"
	"vehicleinfo/internal/lookup/providers/httpclient"
	"vehicleinfo/internal/lookup/providers/rapidapi"
	"vehicleinfo/internal/lookup/providers/scrape"
	"vehicleinfo/internal/lookup/providers/synthetic"
	"vehicleinfo/internal/lookup/providers/vahan"
	"vehicleinfo/internal/platform/config"
)

// NewFromConfig builds the production chains:
// authoritative API, alternate APIs, scraping, then the generators.
// The returned function releases the headless browser when one was started.
func NewFromConfig(cfg config.Sources, opts ...Option) (*Service, func()) {
	o := buildOptions(opts)
	transport := &http.Client{}
	primary := httpclient.New(transport, cfg.PrimaryTimeout)
	secondary := httpclient.New(transport, cfg.SourceTimeout)

	var (
		fetcher scrape.Fetcher
		release = func() {}
	)
	if cfg.Fetcher == config.FetcherChrome {
		chrome := scrape.NewChromeFetcher(cfg.SourceTimeout)
		fetcher, release = chrome, chrome.Close
	} else {
		fetcher = scrape.NewHTTPFetcher(secondary)
	}

	rnd := synthetic.NewRandom(cfg.SyntheticSeed)

	svc := New(
		[]providers.VehicleSource{
			vahan.New(cfg.VahanURL, primary),
			rapidapi.NewVehicleAPIs(cfg.VehicleAPIEndpoints, secondary, o.logger),
			scrape.NewVehicleSites(cfg.VehicleScrapeSites, fetcher, o.logger),
		},
		synthetic.NewVehicleGenerator(rnd),
		[]providers.ChallanSource{
			echallan.New(cfg.EChallanURL, primary),
			rapidapi.NewChallanAPIs(cfg.ChallanAPIEndpoints, secondary, o.logger),
			scrape.NewChallanSites(cfg.ChallanScrapeSites, fetcher, o.logger),
		},
		synthetic.NewChallanGenerator(rnd),
		opts...,
	)
	o.logger.Debug("lookup chains configured",
		"fetcher", cfg.Fetcher,
		"vehicle_apis", len(cfg.VehicleAPIEndpoints),
		"challan_apis", len(cfg.ChallanAPIEndpoints),
		"vehicle_sites", len(cfg.VehicleScrapeSites),
		"challan_sites", len(cfg.ChallanScrapeSites),
	)
	return svc, release
}
