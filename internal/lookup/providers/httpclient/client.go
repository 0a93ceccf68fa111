// Package httpclient is the shared HTTP capability used by every network
// source: browser-like headers, a per-request timeout, and failures mapped
// onto the provider error taxonomy.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"vehicleinfo/internal/lookup/providers"
)

const (
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	AcceptJSON = "application/json, text/plain, */*"
	AcceptHTML = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"

	maxBodyBytes = 4 << 20
)

// Doer is satisfied by *http.Client.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Response is a fully read response.
type Response struct {
	Status int
	Body   []byte
	URL    *url.URL
}

// OK reports a 2xx status.
func (r Response) OK() bool { return r.Status >= 200 && r.Status < 300 }

// Client issues one request per call with no retries.
type Client struct {
	doer    Doer
	timeout time.Duration
}

// New builds a client. A nil doer uses a fresh *http.Client.
func New(doer Doer, timeout time.Duration) *Client {
	if doer == nil {
		doer = &http.Client{}
	}
	return &Client{doer: doer, timeout: timeout}
}

// Timeout returns the per-request timeout.
func (c *Client) Timeout() time.Duration { return c.timeout }

// Get fetches target.
func (c *Client) Get(ctx context.Context, providerID, target string, headers http.Header) (Response, error) {
	return c.do(ctx, providerID, http.MethodGet, target, nil, headers)
}

// PostJSON posts body encoded as JSON.
func (c *Client) PostJSON(ctx context.Context, providerID, target string, body any, headers http.Header) (Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return Response{}, providers.NewProviderError(providers.ErrorInternal, providerID, "encode request", err)
	}
	h := headers.Clone()
	if h == nil {
		h = http.Header{}
	}
	h.Set("Content-Type", "application/json")
	return c.do(ctx, providerID, http.MethodPost, target, bytes.NewReader(payload), h)
}

// PostForm posts form as application/x-www-form-urlencoded.
func (c *Client) PostForm(ctx context.Context, providerID, target string, form url.Values, headers http.Header) (Response, error) {
	h := headers.Clone()
	if h == nil {
		h = http.Header{}
	}
	h.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(ctx, providerID, http.MethodPost, target, strings.NewReader(form.Encode()), h)
}

func (c *Client) do(ctx context.Context, providerID, method, target string, body io.Reader, headers http.Header) (Response, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return Response{}, providers.NewProviderError(providers.ErrorInternal, providerID,
			fmt.Sprintf("build request for %s", target), err)
	}
	for k, vs := range headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", UserAgent)
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return Response{}, providers.FromTransportError(providerID, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return Response{}, providers.FromTransportError(providerID, err)
	}
	final := req.URL
	if resp.Request != nil {
		final = resp.Request.URL
	}
	return Response{Status: resp.StatusCode, Body: data, URL: final}, nil
}

// BrowserHeaders returns the headers sent to scraped sites and public APIs.
func BrowserHeaders(accept string) http.Header {
	h := http.Header{}
	h.Set("User-Agent", UserAgent)
	h.Set("Accept", accept)
	h.Set("Accept-Language", "en-US,en;q=0.5")
	return h
}

// PortalHeaders returns BrowserHeaders plus the XHR markers government portals
// expect from their own front end.
func PortalHeaders(origin string) http.Header {
	h := BrowserHeaders(AcceptJSON)
	h.Set("Origin", strings.TrimSuffix(origin, "/"))
	h.Set("Referer", origin)
	h.Set("X-Requested-With", "XMLHttpRequest")
	return h
}

// Referer is the site root that owns endpoint, used as Referer and Origin.
func Referer(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return endpoint
	}
	return u.Scheme + "://" + u.Host + "/"
}

// Expand substitutes {plate} in an endpoint template.
func Expand(template, plate string) string {
	return strings.ReplaceAll(template, "{plate}", url.PathEscape(plate))
}
