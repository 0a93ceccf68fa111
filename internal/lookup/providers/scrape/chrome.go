package scrape

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"

	"vehicleinfo/internal/lookup/providers"
	"vehicleinfo/internal/lookup/providers/httpclient"
)

// renderDelay gives client-side scripts time to fill the page before the DOM
// is read.
const renderDelay = 500 * time.Millisecond

// ChromeFetcher renders pages in headless Chrome so portals that build their
// markup with JavaScript can be scraped. One browser is shared and every call
// runs in its own tab.
type ChromeFetcher struct {
	browser context.Context
	cancel  context.CancelFunc
	timeout time.Duration
}

// NewChromeFetcher starts a headless browser. Close releases it.
func NewChromeFetcher(timeout time.Duration) *ChromeFetcher {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.UserAgent(httpclient.UserAgent),
		chromedp.DisableGPU,
	)
	alloc, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)
	browser, cancelBrowser := chromedp.NewContext(alloc)

	return &ChromeFetcher{
		browser: browser,
		cancel: func() {
			cancelBrowser()
			cancelAlloc()
		},
		timeout: timeout,
	}
}

func (f *ChromeFetcher) Close() {
	f.cancel()
}

func (f *ChromeFetcher) Fetch(ctx context.Context, providerID, target string) (Page, error) {
	var (
		body     string
		location string
	)
	err := f.run(ctx,
		chromedp.Navigate(target),
		chromedp.Sleep(renderDelay),
		chromedp.Location(&location),
		chromedp.OuterHTML("html", &body, chromedp.ByQuery),
	)
	if err != nil {
		return Page{}, f.mapError(ctx, providerID, err)
	}
	return newPage(location, target, body), nil
}

// Submit posts the form from a tab on the action's site so the portal's
// cookies and origin checks apply, and returns the raw response markup.
func (f *ChromeFetcher) Submit(ctx context.Context, providerID string, form Form, values url.Values) (Page, error) {
	script := fmt.Sprintf(`fetch(%s, {
  method: "POST",
  headers: {"Content-Type": "application/x-www-form-urlencoded"},
  body: %s,
  credentials: "include"
}).then(r => r.text())`, mustJSON(form.Action), mustJSON(values.Encode()))
	if form.Method == "GET" {
		script = fmt.Sprintf(`fetch(%s, {credentials: "include"}).then(r => r.text())`,
			mustJSON(withQuery(form.Action, values)))
	}

	var body string
	err := f.run(ctx,
		chromedp.Navigate(httpclient.Referer(form.Action)),
		chromedp.Evaluate(script, &body, func(p *runtime.EvaluateParams) *runtime.EvaluateParams {
			return p.WithAwaitPromise(true)
		}),
	)
	if err != nil {
		return Page{}, f.mapError(ctx, providerID, err)
	}
	return newPage(form.Action, form.Action, body), nil
}

// run executes actions in a fresh tab bounded by the fetcher timeout and by
// ctx.
func (f *ChromeFetcher) run(ctx context.Context, actions ...chromedp.Action) error {
	tab, cancelTab := chromedp.NewContext(f.browser)
	defer cancelTab()
	if f.timeout > 0 {
		var cancel context.CancelFunc
		tab, cancel = context.WithTimeout(tab, f.timeout)
		defer cancel()
	}
	stop := context.AfterFunc(ctx, cancelTab)
	defer stop()

	return chromedp.Run(tab, actions...)
}

func (f *ChromeFetcher) mapError(ctx context.Context, providerID string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return providers.NewProviderError(providers.ErrorTimeout, providerID, "browser timed out", err)
	}
	return providers.NewProviderError(providers.ErrorProviderOutage, providerID, "browser fetch failed", err)
}

func newPage(location, fallback, body string) Page {
	u, err := url.Parse(location)
	if err != nil || u.Host == "" {
		u, _ = url.Parse(fallback)
	}
	return Page{URL: u, Body: []byte(body)}
}

func mustJSON(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
