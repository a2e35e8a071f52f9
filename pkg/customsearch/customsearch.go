// Package customsearch finds business links via the Google Custom Search JSON API.
package customsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/linkscout/linkscout/pkg/extract"
	"github.com/linkscout/linkscout/pkg/fetch"
	"github.com/linkscout/linkscout/pkg/result"
	"github.com/linkscout/linkscout/pkg/socialurl"
)

// DefaultEndpoint is the Custom Search JSON API endpoint.
const DefaultEndpoint = "https://www.googleapis.com/customsearch/v1"

// defaultDelay is the courtesy pause after each API query.
const defaultDelay = 500 * time.Millisecond

// maxErrorBody caps how much of an API error body is read.
const maxErrorBody = 64 << 10

// Client queries the Custom Search API for a business's social links.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	apiKey     string
	cseID      string
	endpoint   string
	delay      time.Duration
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for API calls.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithEndpoint overrides the API endpoint. Used in tests.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) { c.endpoint = endpoint }
}

// WithDelay overrides the inter-query delay.
func WithDelay(d time.Duration) Option {
	return func(c *Client) { c.delay = d }
}

// New creates a Custom Search client for the given API key and search engine ID.
func New(apiKey, cseID string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		cseID:      cseID,
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

type searchItem struct {
	Link        string `json:"link"`
	Snippet     string `json:"snippet"`
	HTMLSnippet string `json:"htmlSnippet"`
}

type searchResponse struct {
	Items []searchItem `json:"items"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Search issues the social and website query sequences and returns whatever
// candidate links the API surfaced. OutcomeFallback means the API is unusable
// for this resolution (quota exhausted, rate limited, or unreachable) and the
// caller should use the raw web search instead.
func (c *Client) Search(ctx context.Context, businessName, country string) (result.Links, result.Outcome) {
	socialQueries := []string{
		fmt.Sprintf("%s %s instagram", businessName, country),
		fmt.Sprintf("%s %s facebook", businessName, country),
		fmt.Sprintf("%q %s site:instagram.com", businessName, country),
		fmt.Sprintf("%q %s site:facebook.com", businessName, country),
		fmt.Sprintf("%s %s facebook page", businessName, country),
		fmt.Sprintf("%s facebook %s", businessName, country),
	}
	websiteQueries := []string{
		fmt.Sprintf("%q %s official website", businessName, country),
		fmt.Sprintf("%s %s website", businessName, country),
		fmt.Sprintf("%s %s site", businessName, country),
	}

	var links result.Links

	for _, query := range socialQueries {
		items, ok := c.query(ctx, query)
		if !ok {
			return result.Links{}, result.OutcomeFallback
		}

		for _, item := range items {
			snippet := item.Snippet
			if snippet == "" {
				snippet = item.HTMLSnippet
			}

			switch {
			case strings.Contains(item.Link, "instagram.com") && links.Instagram == "":
				links.Instagram = socialurl.NormalizeInstagram(item.Link)
			case strings.Contains(item.Link, "facebook.com") && links.Facebook == "":
				links.Facebook = socialurl.NormalizeFacebook(item.Link)
			case links.Website == "" && extract.LikelyWebsite(item.Link):
				links.Website = item.Link
			}

			if links.Website == "" && snippet != "" {
				links.Website = extract.WebsiteURL(snippet)
			}

			if links.Instagram != "" && links.Facebook != "" {
				break
			}
		}

		if links.Instagram != "" && links.Facebook != "" {
			break
		}
		if !c.pause(ctx) {
			break
		}
	}

	if links.Website == "" {
		for _, query := range websiteQueries {
			items, ok := c.query(ctx, query)
			if !ok {
				return result.Links{}, result.OutcomeFallback
			}

			for _, item := range items {
				if strings.Contains(item.Link, "instagram.com") || strings.Contains(item.Link, "facebook.com") {
					continue
				}
				if extract.LikelyWebsite(item.Link) {
					links.Website = item.Link
					break
				}
				snippet := item.Snippet
				if snippet == "" {
					snippet = item.HTMLSnippet
				}
				if snippet != "" {
					if extracted := extract.WebsiteURL(snippet); extracted != "" {
						links.Website = extracted
						break
					}
				}
			}

			if links.Website != "" {
				break
			}
			if !c.pause(ctx) {
				break
			}
		}
	}

	if links.Empty() {
		return links, result.OutcomeEmpty
	}
	return links, result.OutcomeFound
}

// query runs one API query and returns its result items. ok is false when the
// API signaled quota exhaustion, rate limiting, or a network failure, all of
// which make the whole provider call fall back.
func (c *Client) query(ctx context.Context, q string) (items []searchItem, ok bool) {
	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("cx", c.cseID)
	params.Set("q", q)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), http.NoBody)
	if err != nil {
		c.logger.WarnContext(ctx, "building search request failed", "error", err)
		return nil, false
	}
	req.Header.Set("User-Agent", fetch.UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "search API unreachable, falling back to web search", "error", err)
		return nil, false
	}
	defer resp.Body.Close() //nolint:errcheck // intentional

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		c.logger.WarnContext(ctx, "reading search response failed", "error", err)
		return nil, false
	}

	switch resp.StatusCode {
	case http.StatusOK:
		var data searchResponse
		if err := json.Unmarshal(body, &data); err != nil {
			c.logger.DebugContext(ctx, "unparseable search response", "error", err)
			return nil, true
		}
		return data.Items, true
	case http.StatusForbidden:
		var apiErr apiError
		if err := json.Unmarshal(body, &apiErr); err == nil {
			msg := strings.ToLower(apiErr.Error.Message)
			if strings.Contains(msg, "quota") || strings.Contains(msg, "limit") {
				c.logger.WarnContext(ctx, "search API quota exceeded, falling back to web search")
				return nil, false
			}
		}
		c.logger.DebugContext(ctx, "search API forbidden", "query", q)
		return nil, true
	case http.StatusTooManyRequests:
		c.logger.WarnContext(ctx, "search API rate limited, falling back to web search")
		return nil, false
	default:
		c.logger.DebugContext(ctx, "search API error status", "status", resp.StatusCode, "query", q)
		return nil, true
	}
}

// pause sleeps the inter-query delay, returning false if the context ended first.
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
