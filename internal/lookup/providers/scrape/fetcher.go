package scrape

import (
	"context"
	"net/url"
	"strings"

	"vehicleinfo/internal/lookup/providers"
	"vehicleinfo/internal/lookup/providers/httpclient"
)

// Page is a fetched HTML document and the URL it was served from.
type Page struct {
	URL  *url.URL
	Body []byte
}

// Fetcher loads pages and submits forms.
type Fetcher interface {
	Fetch(ctx context.Context, providerID, target string) (Page, error)
	Submit(ctx context.Context, providerID string, form Form, values url.Values) (Page, error)
}

// HTTPFetcher fetches with plain HTTP requests.
type HTTPFetcher struct {
	client *httpclient.Client
}

func NewHTTPFetcher(client *httpclient.Client) *HTTPFetcher {
	return &HTTPFetcher{client: client}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, providerID, target string) (Page, error) {
	resp, err := f.client.Get(ctx, providerID, target, httpclient.BrowserHeaders(httpclient.AcceptHTML))
	if err != nil {
		return Page{}, err
	}
	if !resp.OK() {
		return Page{}, providers.FromStatus(providerID, resp.Status)
	}
	return Page{URL: resp.URL, Body: resp.Body}, nil
}

// Submit posts the form, or appends the values as a query for GET forms.
func (f *HTTPFetcher) Submit(ctx context.Context, providerID string, form Form, values url.Values) (Page, error) {
	headers := httpclient.BrowserHeaders(httpclient.AcceptHTML)

	var (
		resp httpclient.Response
		err  error
	)
	if form.Method == "GET" {
		resp, err = f.client.Get(ctx, providerID, withQuery(form.Action, values), headers)
	} else {
		resp, err = f.client.PostForm(ctx, providerID, form.Action, values, headers)
	}
	if err != nil {
		return Page{}, err
	}
	if !resp.OK() {
		return Page{}, providers.FromStatus(providerID, resp.Status)
	}
	return Page{URL: resp.URL, Body: resp.Body}, nil
}

func withQuery(target string, values url.Values) string {
	u, err := url.Parse(target)
	if err != nil {
		sep := "?"
		if strings.Contains(target, "?") {
			sep = "&"
		}
		return target + sep + values.Encode()
	}
	q := u.Query()
	for k, vs := range values {
		q[k] = vs
	}
	u.RawQuery = q.Encode()
	return u.String()
}
