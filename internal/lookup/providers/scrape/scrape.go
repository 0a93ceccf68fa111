// Package scrape looks plates up on public web pages: it fills the first
// form of each configured site with the plate and reads the answer out of the
// returned markup.
package scrape

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"vehicleinfo/internal/lookup/models"
	"vehicleinfo/internal/lookup/providers"
	"vehicleinfo/internal/platform/logger"
)

// Field-name keywords that mark the plate input of a search form.
var (
	vehicleInputKeywords = []string{"reg", "number", "plate"}
	challanInputKeywords = []string{"vehicle", "number", "plate"}
)

type site struct {
	id       string
	sites    []string
	keywords []string
	fetcher  Fetcher
	logger   *slog.Logger
}

func newSite(id string, sites []string, keywords []string, fetcher Fetcher, log *slog.Logger) site {
	if log == nil {
		log = logger.Discard()
	}
	return site{id: id, sites: sites, keywords: keywords, fetcher: fetcher, logger: log}
}

// search walks the sites in order, submits each one's form with the plate and
// hands the result page to extract. The first extract success wins.
func search[T any](ctx context.Context, s site, plate models.Plate, extract func(*Document) (T, error)) (T, error) {
	return providers.TryEach(ctx, s.logger, s.id, s.sites, func(ctx context.Context, target string) (T, error) {
		var zero T
		result, err := s.submit(ctx, target, plate)
		if err != nil {
			return zero, err
		}
		return extract(result)
	})
}

func (s site) submit(ctx context.Context, target string, plate models.Plate) (*Document, error) {
	page, err := s.fetcher.Fetch(ctx, s.id, target)
	if err != nil {
		return nil, err
	}
	doc, err := Parse(page.Body, page.URL)
	if err != nil {
		return nil, providers.NewProviderError(providers.ErrorBadData, s.id, "unparseable page", err)
	}
	form, ok := doc.FirstForm()
	if !ok {
		return nil, providers.NewProviderError(providers.ErrorContractMismatch, s.id, "page has no form", nil)
	}

	values, ok := fill(form, s.keywords, plate)
	if !ok {
		s.logger.DebugContext(ctx, "no plate input found, submitting form as is",
			"source", s.id,
			"target", target,
		)
	}

	result, err := s.fetcher.Submit(ctx, s.id, form, values)
	if err != nil {
		return nil, err
	}
	doc, err = Parse(result.Body, result.URL)
	if err != nil {
		return nil, providers.NewProviderError(providers.ErrorBadData, s.id, "unparseable result page", err)
	}
	return doc, nil
}

// fill copies the form's inputs and puts the plate into the first one whose
// name contains a keyword. It reports whether such an input existed.
func fill(form Form, keywords []string, plate models.Plate) (url.Values, bool) {
	values := url.Values{}
	filled := false
	for _, in := range form.Inputs {
		value := in.Value
		if !filled && matchesAny(strings.ToLower(in.Name), keywords) {
			value = plate.String()
			filled = true
		}
		values.Set(in.Name, value)
	}
	return values, filled
}

func matchesAny(name string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(name, k) {
			return true
		}
	}
	return false
}
