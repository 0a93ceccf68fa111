package rapidapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vehicleinfo/internal/lookup/models"
	"vehicleinfo/internal/lookup/providers"
	"vehicleinfo/internal/lookup/providers/contract"
	"vehicleinfo/internal/lookup/providers/httpclient"
)

// routes serves a fixed status and body per path prefix and counts hits.
type routes struct {
	bodies map[string]string
	status map[string]int
	hits   atomic.Int32
}

func (rt *routes) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rt.hits.Add(1)
	for prefix, body := range rt.bodies {
		if strings.HasPrefix(r.URL.Path, prefix) {
			if code, ok := rt.status[prefix]; ok {
				w.WriteHeader(code)
			}
			_, _ = w.Write([]byte(body))
			return
		}
	}
	http.NotFound(w, r)
}

func newClient(srv *httptest.Server) *httpclient.Client {
	return httpclient.New(srv.Client(), time.Second)
}

func TestVehicleAPIs(t *testing.T) {
	rt := &routes{
		bodies: map[string]string{
			"/broken/": `<html>`,
			"/empty/":  `{}`,
			"/good/":   `{"owner_name":"Amit Gupta","maker":"Tata","model":"Nexon","registration_date":"2019-07-01"}`,
			"/nested/": `{"success":true,"data":{"owner_name":"Deepak Jain","maker":"Hyundai"}}`,
		},
		status: map[string]int{},
	}
	srv := httptest.NewServer(rt)
	defer srv.Close()

	t.Run("walks the list until one answers", func(t *testing.T) {
		rt.hits.Store(0)
		apis := NewVehicleAPIs([]string{
			srv.URL + "/missing/{plate}",
			srv.URL + "/broken/{plate}",
			srv.URL + "/empty/{plate}",
			srv.URL + "/good/{plate}",
			srv.URL + "/nested/{plate}",
		}, newClient(srv), nil)

		rec, err := apis.Lookup(context.Background(), "TN09CD4567")

		require.NoError(t, err)
		assert.Equal(t, "Amit Gupta", rec.OwnerName)
		assert.Equal(t, "TN09CD4567", rec.RegistrationNumber)
		assert.Equal(t, models.NA, rec.Mobile)
		assert.EqualValues(t, 4, rt.hits.Load(), "stops at the first answer")
	})

	t.Run("unwraps data envelopes", func(t *testing.T) {
		apis := NewVehicleAPIs([]string{srv.URL + "/nested/{plate}"}, newClient(srv), nil)

		rec, err := apis.Lookup(context.Background(), "TN09CD4567")

		require.NoError(t, err)
		assert.Equal(t, "Deepak Jain", rec.OwnerName)
	})

	t.Run("exhaustion reports every miss", func(t *testing.T) {
		apis := NewVehicleAPIs([]string{srv.URL + "/missing/{plate}", srv.URL + "/broken/{plate}"}, newClient(srv), nil)

		_, err := apis.Lookup(context.Background(), "TN09CD4567")

		require.Error(t, err)
		assert.True(t, errors.Is(err, providers.ErrAllProvidersFailed))
		assert.Equal(t, providers.ErrorNotFound, providers.GetCategory(err))
	})

	t.Run("no endpoints", func(t *testing.T) {
		_, err := NewVehicleAPIs(nil, newClient(srv), nil).Lookup(context.Background(), "TN09CD4567")
		assert.True(t, errors.Is(err, providers.ErrNoSourcesConfigured))
	})

	t.Run("cancelled context stops the walk", func(t *testing.T) {
		rt.hits.Store(0)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewVehicleAPIs([]string{srv.URL + "/good/{plate}"}, newClient(srv), nil).Lookup(ctx, "TN09CD4567")

		assert.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, rt.hits.Load())
	})
}

func TestVehicleAPIsContract(t *testing.T) {
	srv := httptest.NewServer(&routes{
		bodies: map[string]string{"/v1/car/india/": `{"owner_name":"Rahul Reddy","fuel_type":"DIESEL"}`},
	})
	defer srv.Close()

	suite := &contract.ContractSuite[models.VehicleRecord]{
		SourceID:  providers.IDVehicleAPIs,
		Tier:      providers.TierAlternate,
		Canonical: contract.CompleteVehicle,
		Tests: []contract.ContractTest[models.VehicleRecord]{
			{
				Name:   "canonical keys pass through",
				Source: NewVehicleAPIs([]string{srv.URL + "/v1/car/india/{plate}"}, newClient(srv), nil),
				Plate:  "KA01MN4321",
			},
		},
	}
	suite.Run(t)
}

func TestChallanAPIs(t *testing.T) {
	srv := httptest.NewServer(&routes{
		bodies: map[string]string{
			"/none/":  `{"challans":[]}`,
			"/some/":  `{"challans":[{"challanNo":"KA/1/2022","amount":"1000","paymentStatus":"PENDING"}]}`,
			"/wrong/": `{"challans":["x"]}`,
		},
		status: map[string]int{},
	})
	defer srv.Close()

	t.Run("empty list is a miss and the walk continues", func(t *testing.T) {
		apis := NewChallanAPIs([]string{srv.URL + "/none/{plate}", srv.URL + "/some/{plate}"}, newClient(srv), nil)

		list, err := apis.Lookup(context.Background(), "KA01MN4321")

		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "KA/1/2022", list[0].ChallanNumber)
		assert.Equal(t, models.PaymentPending, list[0].PaymentStatus)
		assert.NoError(t, contract.CompleteChallans(list))
	})

	t.Run("non-object challans are a contract mismatch", func(t *testing.T) {
		test := &contract.ErrorContractTest[[]models.ChallanRecord]{
			Name:          "strings instead of objects",
			Source:        NewChallanAPIs([]string{srv.URL + "/wrong/{plate}"}, newClient(srv), nil),
			Plate:         "KA01MN4321",
			ExpectedError: providers.ErrorContractMismatch,
		}
		test.Run(t)
	})
}
