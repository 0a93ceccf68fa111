package httptransport

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"vehicleinfo/internal/lookup"
	"vehicleinfo/internal/lookup/models"
	"vehicleinfo/internal/lookup/orchestrator"
	"vehicleinfo/internal/lookup/providers"
	"vehicleinfo/internal/platform/metrics"
	"vehicleinfo/internal/platform/middleware"
	"vehicleinfo/internal/transport/http/mocks"
	dErrors "vehicleinfo/pkg/domain-errors"
	"vehicleinfo/pkg/testutil"
)

type HandlerSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	service *mocks.MockService
	router  http.Handler
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.service = mocks.NewMockService(s.ctrl)

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	m.IncrementResolution("vehicle", "vahan", false)

	logger := slog.New(slog.DiscardHandler)
	s.router = NewRouter(NewHandler(s.service, logger), logger, reg, time.Second)
}

func (s *HandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerSuite) get(path string) *httptest.ResponseRecorder {
	return testutil.Get(s.router, path)
}

func vehicleResolution() lookup.VehicleResolution {
	v := models.NewVehicleRecord()
	v.RegistrationNumber = "DL01AB1234"
	v.OwnerName = "Rahul Kumar"
	return lookup.VehicleResolution{
		LookupID: "lk-1",
		Plate:    "DL01AB1234",
		Record:   v,
		Source:   "vahan",
		Tier:     providers.TierAuthoritative,
		Attempts: []orchestrator.Attempt{{Source: "vahan", Tier: providers.TierAuthoritative, Outcome: "hit"}},
	}
}

func challanResolution(n int) lookup.ChallanResolution {
	records := make([]models.ChallanRecord, n)
	for i := range records {
		c := models.NewChallanRecord()
		c.ChallanNumber = fmt.Sprintf("DL/%d/2023", i+1)
		c.Amount = "500"
		records[i] = c
	}
	return lookup.ChallanResolution{
		LookupID:  "lk-2",
		Plate:     "DL01AB1234",
		Record:    records,
		Source:    "synthetic",
		Tier:      providers.TierSynthetic,
		Synthetic: true,
	}
}

// =============================================================================
// Vehicle
// =============================================================================

func (s *HandlerSuite) TestVehicleReturnsRecordWithProvenance() {
	s.service.EXPECT().ResolveVehicle(gomock.Any(), "dl-01-ab-1234").Return(vehicleResolution(), nil)

	rec := s.get("/v1/vehicles/dl-01-ab-1234")

	s.Equal(http.StatusOK, rec.Code)
	s.NotEmpty(rec.Header().Get(middleware.HeaderRequestID))

	var body map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("DL01AB1234", body["plate"])
	s.Equal("vahan", body["source"])
	s.Equal("authoritative", body["tier"])
	s.Equal(false, body["synthetic"])
	vehicle := body["vehicle"].(map[string]any)
	s.Equal("Rahul Kumar", vehicle["owner_name"])
}

func (s *HandlerSuite) TestVehicleEchoesIncomingRequestID() {
	s.service.EXPECT().ResolveVehicle(gomock.Any(), gomock.Any()).Return(vehicleResolution(), nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/vehicles/DL01AB1234", nil)
	req.Header.Set(middleware.HeaderRequestID, "req-42")
	rec := testutil.Do(s.router, req)

	s.Equal("req-42", rec.Header().Get(middleware.HeaderRequestID))
}

func (s *HandlerSuite) TestVehicleErrorsMapToStatus() {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"timeout", dErrors.New(dErrors.CodeTimeout, "lookup timed out"), http.StatusGatewayTimeout, "timeout"},
		{"unavailable", dErrors.New(dErrors.CodeUnavailable, "lookup cancelled"), http.StatusServiceUnavailable, "unavailable"},
		{"untyped", fmt.Errorf("boom"), http.StatusInternalServerError, "internal_error"},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.service.EXPECT().ResolveVehicle(gomock.Any(), "DL01AB1234").Return(lookup.VehicleResolution{}, tc.err)

			testutil.AssertStatusAndError(s.T(), s.get("/v1/vehicles/DL01AB1234"), tc.status, tc.code)
		})
	}
}

func (s *HandlerSuite) TestMalformedPlatesAreRejectedBeforeLookup() {
	s.service.EXPECT().ResolveVehicle(gomock.Any(), gomock.Any()).Times(0)
	s.service.EXPECT().ResolveChallans(gomock.Any(), gomock.Any()).Times(0)

	for _, path := range []string{"/v1/vehicles/AB1", "/v1/challans/MH12%23B1234", "/v1/reports/ZZ?format=csv"} {
		s.Run(path, func() {
			testutil.AssertStatusAndError(s.T(), s.get(path), http.StatusBadRequest, "invalid_input")
		})
	}
}

func (s *HandlerSuite) TestHandlerSeesRequestDeadline() {
	s.service.EXPECT().ResolveVehicle(gomock.Any(), "DL01AB1234").
		DoAndReturn(func(ctx context.Context, _ string) (lookup.VehicleResolution, error) {
			_, ok := ctx.Deadline()
			s.True(ok)
			return vehicleResolution(), nil
		})

	s.Equal(http.StatusOK, s.get("/v1/vehicles/DL01AB1234").Code)
}

// =============================================================================
// Challans
// =============================================================================

func (s *HandlerSuite) TestChallansReturnsCount() {
	s.service.EXPECT().ResolveChallans(gomock.Any(), "DL01AB1234").Return(challanResolution(2), nil)

	rec := s.get("/v1/challans/DL01AB1234")

	s.Equal(http.StatusOK, rec.Code)
	body := testutil.UnmarshalResponse[ChallansResponse](s.T(), rec)
	s.Equal(2, body.Count)
	s.True(body.Synthetic)
	s.Equal("DL/1/2023", body.Challans[0].ChallanNumber)
}

func (s *HandlerSuite) TestChallansEmptyListIsAnAnswer() {
	s.service.EXPECT().ResolveChallans(gomock.Any(), "DL01AB1234").Return(challanResolution(0), nil)

	rec := s.get("/v1/challans/DL01AB1234")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"challans":[]`)
}

// =============================================================================
// Reports
// =============================================================================

func (s *HandlerSuite) TestReportDownloadsCSV() {
	s.service.EXPECT().ResolveVehicle(gomock.Any(), "DL01AB1234").Return(vehicleResolution(), nil)
	s.service.EXPECT().ResolveChallans(gomock.Any(), "DL01AB1234").Return(challanResolution(1), nil)

	rec := s.get("/v1/reports/DL01AB1234?format=csv")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	disposition := rec.Header().Get("Content-Disposition")
	s.True(strings.HasPrefix(disposition, `attachment; filename="DL01AB1234_`), disposition)
	s.True(strings.HasSuffix(disposition, `.csv"`), disposition)
	s.Contains(rec.Body.String(), "VEHICLE INFORMATION")
	s.Contains(rec.Body.String(), "DL/1/2023")
}

func (s *HandlerSuite) TestReportFilenameUsesRequestClock() {
	s.service.EXPECT().ResolveVehicle(gomock.Any(), "DL01AB1234").Return(vehicleResolution(), nil)

	r := chi.NewRouter()
	NewHandler(s.service, slog.New(slog.DiscardHandler)).Register(r)
	req := httptest.NewRequest(http.MethodGet, "/v1/reports/DL01AB1234?format=txt&include=vehicle", nil)
	rec := testutil.Do(r, testutil.AtTime(req, time.Date(2024, time.March, 5, 14, 7, 9, 0, time.UTC)))

	s.Equal(http.StatusOK, rec.Code)
	s.Equal(`attachment; filename="DL01AB1234_20240305_140709.txt"`, rec.Header().Get("Content-Disposition"))
	s.Contains(rec.Body.String(), "Generated on: 05-03-2024 14:07:09")
}

func (s *HandlerSuite) TestReportChallansOnly() {
	s.service.EXPECT().ResolveChallans(gomock.Any(), "DL01AB1234").Return(challanResolution(1), nil)

	rec := s.get("/v1/reports/DL01AB1234?format=json&include=challans")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Header().Get("Content-Disposition"), "UNKNOWN_")
	s.Contains(rec.Body.String(), `"vehicle_info": {}`)
}

func (s *HandlerSuite) TestReportRejectsBadQuery() {
	s.Equal(http.StatusBadRequest, s.get("/v1/reports/DL01AB1234?format=docx").Code)
	s.Equal(http.StatusBadRequest, s.get("/v1/reports/DL01AB1234?include=owner").Code)
}

func (s *HandlerSuite) TestReportPropagatesLookupFailure() {
	s.service.EXPECT().ResolveVehicle(gomock.Any(), "DL01AB1234").
		Return(lookup.VehicleResolution{}, dErrors.New(dErrors.CodeTimeout, "lookup timed out"))

	testutil.AssertStatusAndError(s.T(), s.get("/v1/reports/DL01AB1234"), http.StatusGatewayTimeout, "timeout")
}

// =============================================================================
// Operational endpoints
// =============================================================================

func (s *HandlerSuite) TestHealthz() {
	rec := s.get("/healthz")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"status":"ok"}`, rec.Body.String())
}

func (s *HandlerSuite) TestMetricsExposesRegistry() {
	rec := s.get("/metrics")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "vehicleinfo_resolutions_total")
}

func (s *HandlerSuite) TestPanicBecomesInternalError() {
	s.service.EXPECT().ResolveVehicle(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string) (lookup.VehicleResolution, error) { panic("boom") })

	rec := s.get("/v1/vehicles/DL01AB1234")

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.JSONEq(`{"error":"internal_error"}`, rec.Body.String())
}
