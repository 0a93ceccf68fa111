package vahan

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vehicleinfo/internal/lookup/models"
	"vehicleinfo/internal/lookup/providers"
	"vehicleinfo/internal/lookup/providers/contract"
	"vehicleinfo/internal/lookup/providers/httpclient"
)

const successBody = `{
	"status": "Success",
	"row": [{
		"regn_no": "MH12AB1234",
		"owner_name": "SANJAY VERMA",
		"f_name": "MUKESH VERMA",
		"c_add": "456, Shivaji Park, Mumbai - 400028",
		"p_code": "400028",
		"vh_class": "LMV - Motor Car",
		"maker_desc": "Honda",
		"maker_model": "City",
		"fuel_type": "PETROL",
		"reg_dt": "10-04-2015",
		"blacklist_status": "N",
		"rc_status": "ACTIVE"
	}]
}`

func newServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
			assert.Equal(t, "MH12AB1234", req["regn_no"])
			assert.Equal(t, "DL", req["td"], "transport department is fixed regardless of plate state")
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestVahanProviderContract(t *testing.T) {
	srv := newServer(t, http.StatusOK, successBody)
	provider := New(srv.URL, httpclient.New(srv.Client(), time.Second))

	suite := &contract.ContractSuite[models.VehicleRecord]{
		SourceID:  providers.IDVahan,
		Tier:      providers.TierAuthoritative,
		Canonical: contract.CompleteVehicle,
		Tests: []contract.ContractTest[models.VehicleRecord]{
			{
				Name:   "maps the first row",
				Source: provider,
				Plate:  "MH12AB1234",
				ValidateFunc: func(r models.VehicleRecord) error {
					if r.OwnerName != "SANJAY VERMA" || r.Model != "City" {
						return assert.AnError
					}
					if r.BlacklistStatus != "NO" {
						return assert.AnError
					}
					if r.ChassisNumber != models.NA {
						return assert.AnError
					}
					return nil
				},
			},
		},
	}
	suite.Run(t)
}

func TestVahanProviderErrors(t *testing.T) {
	cases := []struct {
		name     string
		status   int
		body     string
		category providers.ErrorCategory
		retry    bool
	}{
		{"server error", http.StatusBadGateway, `oops`, providers.ErrorProviderOutage, true},
		{"not json", http.StatusOK, `<html>captcha</html>`, providers.ErrorBadData, false},
		{"failure status", http.StatusOK, `{"status":"Failure"}`, providers.ErrorNotFound, false},
		{"success without rows", http.StatusOK, `{"status":"Success","row":[]}`, providers.ErrorContractMismatch, false},
		{"row without known fields", http.StatusOK, `{"status":"Success","row":[{"x":"y"}]}`, providers.ErrorContractMismatch, false},
		{"rate limited", http.StatusTooManyRequests, ``, providers.ErrorRateLimited, true},
	}
	for _, tc := range cases {
		srv := newServer(t, tc.status, tc.body)
		test := &contract.ErrorContractTest[models.VehicleRecord]{
			Name:          tc.name,
			Source:        New(srv.URL, httpclient.New(srv.Client(), time.Second)),
			Plate:         "MH12AB1234",
			ExpectedError: tc.category,
			ExpectedRetry: tc.retry,
		}
		test.Run(t)
	}
}

func TestVahanResponseParser(t *testing.T) {
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	t.Run("parses valid response", func(t *testing.T) {
		rec, err := parseVehicleResponse(200, []byte(successBody), now)
		require.NoError(t, err)

		assert.Equal(t, "MH12AB1234", rec.RegistrationNumber)
		assert.Equal(t, "MUKESH VERMA", rec.FatherName)
		assert.Equal(t, "400028", rec.Pincode)
		assert.Equal(t, "9", rec.VehicleAgeYears.String())
	})

	t.Run("any flag other than N is blacklisted", func(t *testing.T) {
		rec, err := parseVehicleResponse(200, []byte(`{"status":"Success","row":[{"regn_no":"X","blacklist_status":"Y"}]}`), now)
		require.NoError(t, err)
		assert.Equal(t, "YES", rec.BlacklistStatus)
	})

	t.Run("returns error for non-200 status", func(t *testing.T) {
		_, err := parseVehicleResponse(404, []byte(`{}`), now)
		assert.Equal(t, providers.ErrorNotFound, providers.GetCategory(err))
	})
}
