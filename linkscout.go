// Package linkscout resolves a business's social media presence and official
// website from just a business name and a country.
//
// Basic usage:
//
//	res, err := linkscout.Find(ctx, "Joe's Pizza", "USA")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Instagram, res.Facebook, res.Website, res.Confidence)
//
// With Google Custom Search API credentials (enables the structured provider):
//
//	res, err := linkscout.Find(ctx, "Joe's Pizza", "USA",
//	    linkscout.WithCredentials(apiKey, cseID))
//
// Resolution is best-effort heuristic matching: candidates come from search
// providers and direct URL-pattern guessing, each is verified against the
// page it points at, and the result carries a coarse confidence label.
package linkscout

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/linkscout/linkscout/pkg/customsearch"
	"github.com/linkscout/linkscout/pkg/fetch"
	"github.com/linkscout/linkscout/pkg/resolver"
	"github.com/linkscout/linkscout/pkg/result"
	"github.com/linkscout/linkscout/pkg/verify"
	"github.com/linkscout/linkscout/pkg/websearch"
)

type (
	// Result re-exports result.Result for convenience.
	Result = result.Result
	// Confidence re-exports result.Confidence for convenience.
	Confidence = result.Confidence
	// HTTPCache re-exports fetch.Cacher for convenience.
	HTTPCache = fetch.Cacher
)

// Re-export common errors and confidence levels.
var (
	ErrMissingBusinessName = result.ErrMissingBusinessName

	ConfidenceLow    = result.ConfidenceLow
	ConfidenceMedium = result.ConfidenceMedium
	ConfidenceHigh   = result.ConfidenceHigh
)

// Option configures a Find call.
type Option func(*config)

type config struct {
	logger     *slog.Logger
	cache      fetch.Cacher
	httpClient *http.Client
	apiKey     string
	cseID      string
}

// WithCredentials sets the Google Custom Search API key and engine ID,
// enabling the structured search provider. Without credentials only the raw
// web search and direct URL patterns are used.
func WithCredentials(apiKey, cseID string) Option {
	return func(c *config) {
		c.apiKey = apiKey
		c.cseID = cseID
	}
}

// WithHTTPCache sets a response cache for search page fetches.
func WithHTTPCache(cache fetch.Cacher) Option {
	return func(c *config) { c.cache = cache }
}

// WithHTTPClient sets the HTTP client shared by providers and verifiers.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *config) { c.httpClient = hc }
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// Find resolves the business's Instagram, Facebook, and website links.
// Resolution is sequential and may take a while: every candidate is verified
// with a real fetch, and providers pause between queries to stay polite.
func Find(ctx context.Context, businessName, country string, opts ...Option) (result.Result, error) {
	cfg := &config{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.httpClient == nil {
		cfg.httpClient = fetch.NewClient()
	}

	raw := websearch.New(
		websearch.WithHTTPClient(cfg.httpClient),
		websearch.WithCache(cfg.cache),
		websearch.WithLogger(cfg.logger),
	)

	verifier := verify.New(
		verify.WithHTTPClient(cfg.httpClient),
		verify.WithLogger(cfg.logger),
	)

	resolverOpts := []resolver.Option{resolver.WithLogger(cfg.logger)}
	if cfg.apiKey != "" && cfg.cseID != "" {
		structured := customsearch.New(cfg.apiKey, cfg.cseID,
			customsearch.WithHTTPClient(cfg.httpClient),
			customsearch.WithLogger(cfg.logger),
		)
		resolverOpts = append(resolverOpts, resolver.WithStructured(structured))
	}

	return resolver.New(raw, verifier, resolverOpts...).Find(ctx, businessName, country)
}
