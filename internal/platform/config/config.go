package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	platformstrings "vehicleinfo/pkg/platform/strings"
)

// Fetcher names accepted by SCRAPE_FETCHER.
const (
	FetcherHTTP   = "http"
	FetcherChrome = "chrome"
)

// Default source endpoints. `{plate}` is replaced with the uppercased plate.
var (
	DefaultVahanURL    = "https://vahan.parivahan.gov.in/vahan4vue/vahan/ui/vahan4/GetVehicleDetails"
	DefaultEChallanURL = "https://echallan.parivahan.gov.in/ecitizen/services/echallan/ChallanCitizen/ChallanCitizenAction"

	DefaultVehicleAPIEndpoints = []string{
		"https://rto-vehicle-information-api.p.rapidapi.com/get_vehicle/{plate}",
		"https://vehicle-registration-api.p.rapidapi.com/api/v1/vehicle/india/{plate}",
		"https://car-info-api.p.rapidapi.com/v1/car/india/{plate}",
	}
	DefaultChallanAPIEndpoints = []string{
		"https://traffic-violation-api.p.rapidapi.com/challans/{plate}",
		"https://echallan-api.p.rapidapi.com/vehicle/{plate}",
		"https://traffic-challan-api.p.rapidapi.com/get-challans/{plate}",
	}
	DefaultVehicleScrapeSites = []string{
		"https://vahan.parivahan.gov.in/vahan4vue/vahan/ui/vahan4",
		"https://www.rtovehicleinformation.com/",
		"https://www.carinfo.in/",
		"https://www.drivinglicence.in/",
	}
	DefaultChallanScrapeSites = []string{
		"https://echallan.parivahan.gov.in/",
		"https://www.trafficchallan.in/",
		"https://www.mychallan.in/",
		"https://www.checkchallan.com/",
	}
)

// Sources configures the retrieval chain for both lookup domains.
type Sources struct {
	VahanURL            string
	EChallanURL         string
	VehicleAPIEndpoints []string
	ChallanAPIEndpoints []string
	VehicleScrapeSites  []string
	ChallanScrapeSites  []string

	// PrimaryTimeout bounds the authoritative government calls.
	PrimaryTimeout time.Duration
	// SourceTimeout bounds every alternate API and scrape request.
	SourceTimeout time.Duration

	Fetcher string
	// SyntheticSeed seeds the fallback generators; zero means time-seeded.
	SyntheticSeed uint64
}

// WorstCaseLookup bounds one full resolution chain: the authoritative call,
// every alternate API, then every scrape site at two requests each. The
// slower of the two domains wins.
func (s Sources) WorstCaseLookup() time.Duration {
	chain := func(apis, sites int) time.Duration {
		return s.PrimaryTimeout + time.Duration(apis+2*sites)*s.SourceTimeout
	}
	return max(
		chain(len(s.VehicleAPIEndpoints), len(s.VehicleScrapeSites)),
		chain(len(s.ChallanAPIEndpoints), len(s.ChallanScrapeSites)),
	)
}

// Config is the full runtime configuration shared by the CLI and the server.
type Config struct {
	Addr      string
	LogLevel  slog.Level
	LogFormat string
	ReportDir string
	Sources   Sources
}

// FromEnv builds a Config from environment variables so main stays lean.
// A .env file in the working directory is loaded first when present.
func FromEnv() Config {
	_ = godotenv.Load()

	addr := os.Getenv("VEHICLEINFO_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	return Config{
		Addr:      addr,
		LogLevel:  parseLevel(os.Getenv("LOG_LEVEL")),
		LogFormat: strings.ToLower(envOr("LOG_FORMAT", "text")),
		ReportDir: envOr("REPORT_DIR", "."),
		Sources: Sources{
			VahanURL:            envOr("VAHAN_URL", DefaultVahanURL),
			EChallanURL:         envOr("ECHALLAN_URL", DefaultEChallanURL),
			VehicleAPIEndpoints: envList("VEHICLE_API_ENDPOINTS", DefaultVehicleAPIEndpoints),
			ChallanAPIEndpoints: envList("CHALLAN_API_ENDPOINTS", DefaultChallanAPIEndpoints),
			VehicleScrapeSites:  envList("VEHICLE_SCRAPE_SITES", DefaultVehicleScrapeSites),
			ChallanScrapeSites:  envList("CHALLAN_SCRAPE_SITES", DefaultChallanScrapeSites),
			PrimaryTimeout:      envDuration("PRIMARY_TIMEOUT", 10*time.Second),
			SourceTimeout:       envDuration("SOURCE_TIMEOUT", 5*time.Second),
			Fetcher:             parseFetcher(os.Getenv("SCRAPE_FETCHER")),
			SyntheticSeed:       envUint("SYNTHETIC_SEED", 0),
		},
	}
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// envList reads a comma separated list, dropping blanks and repeats. An unset
// variable keeps the defaults; the defaults slice is copied so callers can't
// mutate the package vars.
func envList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return append([]string(nil), fallback...)
	}
	return platformstrings.SplitList(raw, ",")
}

func envDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func envUint(key string, fallback uint64) uint64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return fallback
	}
	return v
}

func parseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func parseFetcher(raw string) string {
	if strings.EqualFold(strings.TrimSpace(raw), FetcherChrome) {
		return FetcherChrome
	}
	return FetcherHTTP
}
