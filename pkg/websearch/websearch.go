// Package websearch finds business links by scraping rendered search result pages.
package websearch

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/linkscout/linkscout/pkg/extract"
	"github.com/linkscout/linkscout/pkg/fetch"
	"github.com/linkscout/linkscout/pkg/result"
)

// DefaultEndpoint is the search page queried for each template.
const DefaultEndpoint = "https://www.google.com/search"

// defaultDelay is the courtesy pause after each search-page fetch.
const defaultDelay = time.Second

// Client scrapes search result pages for a business's social links. It needs
// no credentials, which makes it the fallback when the structured API is
// unavailable or rate limited.
type Client struct {
	httpClient *http.Client
	cache      fetch.Cacher
	logger     *slog.Logger
	endpoint   string
	delay      time.Duration
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for page fetches.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithCache sets a response cache for page fetches.
func WithCache(cache fetch.Cacher) Option {
	return func(c *Client) { c.cache = cache }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithEndpoint overrides the search page URL. Used in tests.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) { c.endpoint = endpoint }
}

// WithDelay overrides the inter-query delay.
func WithDelay(d time.Duration) Option {
	return func(c *Client) { c.delay = d }
}

// New creates a web search client.
func New(opts ...Option) *Client {
	c := &Client{
		endpoint:   DefaultEndpoint,
		delay:      defaultDelay,
		httpClient: fetch.NewClient(),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search fetches the result page for each query template and runs the text
// extractor over the body, keeping the first hit per channel. It stops early
// once all three channels have a candidate. Unlike the structured provider it
// never requests a fallback: a failed fetch just means that query contributed
// nothing.
func (c *Client) Search(ctx context.Context, businessName, country string) (result.Links, result.Outcome) {
	queries := []string{
		fmt.Sprintf("%s %s instagram", businessName, country),
		fmt.Sprintf("%s %s facebook", businessName, country),
		fmt.Sprintf("%q %s official website", businessName, country),
		fmt.Sprintf("%s %s website", businessName, country),
	}

	var links result.Links

	for _, query := range queries {
		pageURL := c.endpoint + "?q=" + url.QueryEscape(query)
		body, err := fetch.Get(ctx, c.cache, c.httpClient, pageURL, c.logger)
		if err != nil {
			c.logger.DebugContext(ctx, "search page fetch failed", "query", query, "error", err)
		} else {
			content := string(body)
			if links.Instagram == "" {
				links.Instagram = extract.InstagramURL(content)
			}
			if links.Facebook == "" {
				links.Facebook = extract.FacebookURL(content)
			}
			if links.Website == "" {
				links.Website = extract.WebsiteURL(content)
			}

			if links.Instagram != "" && links.Facebook != "" && links.Website != "" {
				break
			}
		}

		if !c.pause(ctx) {
			break
		}
	}

	if links.Empty() {
		return links, result.OutcomeEmpty
	}
	return links, result.OutcomeFound
}

func (c *Client) pause(ctx context.Context) bool {
	if c.delay <= 0 {
		return true
	}
	select {
	case <-time.After(c.delay):
		return true
	case <-ctx.Done():
		return false
	}
}
