package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vehicleinfo/internal/lookup/providers"
)

func TestClient(t *testing.T) {
	t.Run("post json sends browser headers and body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.Equal(t, UserAgent, r.Header.Get("User-Agent"))
			assert.Equal(t, "XMLHttpRequest", r.Header.Get("X-Requested-With"))

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "MH12AB1234", body["regn_no"])
			_, _ = w.Write([]byte(`{"ok":true}`))
		}))
		defer srv.Close()

		c := New(srv.Client(), time.Second)
		resp, err := c.PostJSON(context.Background(), "test", srv.URL,
			map[string]string{"regn_no": "MH12AB1234"}, PortalHeaders(srv.URL+"/"))

		require.NoError(t, err)
		assert.True(t, resp.OK())
		assert.JSONEq(t, `{"ok":true}`, string(resp.Body))
	})

	t.Run("post form encodes values", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "DL01AB1234", r.PostForm.Get("vehicle_no"))
			w.WriteHeader(http.StatusAccepted)
		}))
		defer srv.Close()

		c := New(srv.Client(), time.Second)
		resp, err := c.PostForm(context.Background(), "test", srv.URL,
			url.Values{"vehicle_no": {"DL01AB1234"}}, nil)

		require.NoError(t, err)
		assert.Equal(t, http.StatusAccepted, resp.Status)
	})

	t.Run("slow server is a timeout", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		}))
		defer srv.Close()

		c := New(srv.Client(), 50*time.Millisecond)
		_, err := c.Get(context.Background(), "slow", srv.URL, nil)

		require.Error(t, err)
		assert.Equal(t, providers.ErrorTimeout, providers.GetCategory(err))
		assert.True(t, providers.IsRetryable(err))
	})

	t.Run("unreachable host is an outage", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		target := srv.URL
		srv.Close()

		c := New(nil, time.Second)
		_, err := c.Get(context.Background(), "gone", target, nil)

		require.Error(t, err)
		assert.Equal(t, providers.ErrorProviderOutage, providers.GetCategory(err))
	})
}

func TestExpand(t *testing.T) {
	assert.Equal(t, "https://api.test/v1/car/MH12AB1234", Expand("https://api.test/v1/car/{plate}", "MH12AB1234"))
}

func TestFromStatus(t *testing.T) {
	cases := map[int]providers.ErrorCategory{
		http.StatusNotFound:            providers.ErrorNotFound,
		http.StatusTooManyRequests:     providers.ErrorRateLimited,
		http.StatusForbidden:           providers.ErrorAuthentication,
		http.StatusBadGateway:          providers.ErrorProviderOutage,
		http.StatusUnprocessableEntity: providers.ErrorBadData,
	}
	for status, want := range cases {
		assert.Equal(t, want, providers.FromStatus("x", status).Category, "status %d", status)
	}
}
