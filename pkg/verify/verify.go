// Package verify decides whether candidate URLs plausibly belong to a business.
//
// Each channel has its own bias. Instagram and Facebook favor recall: both
// platforms routinely obstruct automated inspection, so the absence of an
// explicit error page is treated as tentative success. Website verification
// leans the other way, because a wrong business website is costlier than a
// wrong social match.
package verify

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/linkscout/linkscout/pkg/fetch"
	"github.com/linkscout/linkscout/pkg/similarity"
	"github.com/linkscout/linkscout/pkg/socialurl"
)

// Acceptance thresholds. Heuristic, not load-bearing business logic.
const (
	instagramTitleThreshold = 0.3
	websiteTitleThreshold   = 0.2
	websiteWordOverlap      = 0.4
)

// errorScanWindow is how much of a page body is scanned for error phrases.
// Error and parking notices appear near the top; scanning further invites
// false positives from page footers and scripts.
const errorScanWindow = 5000

const maxBodySize = 1 << 20

var instagramErrorPhrases = []string{
	"page not found",
	"sorry, this page",
	"user not found",
	"this page is not available",
}

var facebookErrorPhrases = []string{
	"page not found",
	"content not available",
	"this content is not available",
	"sorry, this page",
	"this page isn't available",
	"the link you followed may be broken",
	"this page may have been removed",
	"no longer available",
}

var websiteErrorPhrases = []string{
	"page not found",
	"404 error",
	"error 404",
	"not found",
	"domain for sale",
	"this domain is for sale",
	"buy this domain",
	"parked domain",
	"domain parking",
}

// websiteParkedPhrases are strong enough on their own to reject a page.
var websiteParkedPhrases = []string{
	"domain for sale",
	"this domain is for sale",
	"buy this domain",
	"parked domain",
}

var (
	domainPattern = regexp.MustCompile(`(?i)https?://(?:www\.)?([^/]+)`)
	tldPattern    = regexp.MustCompile(`\.[a-z]{2,}$`)
	alnumOnly     = regexp.MustCompile(`[^a-z0-9]`)
)

// Verifier fetches candidate URLs and applies per-channel heuristics.
type Verifier struct {
	httpClient *http.Client
	logger     *slog.Logger
}

// Option customizes a Verifier.
type Option func(*Verifier)

// WithHTTPClient sets the HTTP client used for verification fetches.
func WithHTTPClient(hc *http.Client) Option {
	return func(v *Verifier) { v.httpClient = hc }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Verifier) { v.logger = logger }
}

// New creates a Verifier.
func New(opts ...Option) *Verifier {
	v := &Verifier{
		httpClient: fetch.NewClient(),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Instagram reports whether the profile URL plausibly belongs to the business.
func (v *Verifier) Instagram(ctx context.Context, rawURL, businessName string) bool {
	resp, err := v.get(ctx, rawURL)
	if err != nil {
		v.logger.DebugContext(ctx, "instagram verification fetch failed", "url", rawURL, "error", err)
		return false
	}
	if resp.status != http.StatusOK {
		return false
	}

	lower := strings.ToLower(string(resp.body))
	for _, phrase := range instagramErrorPhrases {
		if strings.Contains(lower, phrase) {
			return false
		}
	}

	if title := pageTitle(resp.body); title != "" {
		if similarity.Ratio(businessName, title) > instagramTitleThreshold {
			return true
		}
	}

	// No explicit error page. Instagram blocks most automated title
	// inspection, so treat that as tentative success.
	return true
}

// Facebook reports whether the page URL plausibly belongs to the business.
// The URL structure is validated first; on network failure the structural
// check alone decides, since Facebook pages often sit behind login walls.
func (v *Verifier) Facebook(ctx context.Context, rawURL, businessName string) bool {
	if _, ok := socialurl.FacebookPage(rawURL); !ok {
		return false
	}

	resp, err := v.get(ctx, rawURL)
	if err != nil {
		v.logger.DebugContext(ctx, "facebook verification fetch failed, trusting URL structure",
			"url", rawURL, "error", err)
		return true
	}

	switch {
	case resp.status == http.StatusOK:
		lower := strings.ToLower(string(resp.body))
		for _, phrase := range facebookErrorPhrases {
			if strings.Contains(lower, phrase) {
				return false
			}
		}
		return true
	case resp.status == http.StatusNotFound:
		return false
	default:
		// Valid pages frequently answer non-200 behind the login wall.
		return true
	}
}

// Website reports whether the URL plausibly is the business's own website.
func (v *Verifier) Website(ctx context.Context, rawURL, businessName string) bool {
	return v.website(ctx, rawURL, businessName, 0)
}

func (v *Verifier) website(ctx context.Context, rawURL, businessName string, depth int) bool {
	resp, err := v.get(ctx, rawURL)
	if err != nil {
		v.logger.DebugContext(ctx, "website verification fetch failed", "url", rawURL, "error", err)
		return false
	}

	switch {
	case resp.status == http.StatusOK:
		return v.websiteContentMatches(ctx, resp.body, rawURL, businessName)
	case resp.status == http.StatusNotFound:
		return false
	case isRedirect(resp.status):
		if depth == 0 && resp.location != "" && resp.location != rawURL {
			return v.website(ctx, resp.location, businessName, depth+1)
		}
		return true
	default:
		return true
	}
}

func (v *Verifier) websiteContentMatches(ctx context.Context, body []byte, rawURL, businessName string) bool {
	sample := strings.ToLower(string(body))
	if len(sample) > errorScanWindow {
		sample = sample[:errorScanWindow]
	}

	errorCount := 0
	for _, phrase := range websiteErrorPhrases {
		if strings.Contains(sample, phrase) {
			errorCount++
		}
	}
	if errorCount >= 2 {
		return false
	}
	for _, phrase := range websiteParkedPhrases {
		if strings.Contains(sample, phrase) {
			return false
		}
	}

	if title := pageTitle(body); title != "" {
		if similarity.Ratio(businessName, title) > websiteTitleThreshold {
			return true
		}
		if wordsOverlap(businessName, title) {
			return true
		}
	}

	if domainMatchesName(rawURL, businessName) {
		return true
	}

	// Page loaded cleanly with no error indicators. Many legitimate sites
	// have no usable title match.
	v.logger.DebugContext(ctx, "website accepted without name match", "url", rawURL)
	return true
}

// wordsOverlap reports whether enough of the business name's significant words
// appear literally in the title.
func wordsOverlap(businessName, title string) bool {
	var words []string
	for _, w := range strings.Fields(strings.ToLower(businessName)) {
		if len(w) > 2 {
			words = append(words, w)
		}
	}
	if len(words) == 0 {
		return false
	}

	titleLower := strings.ToLower(title)
	matching := 0
	for _, w := range words {
		if strings.Contains(titleLower, w) {
			matching++
		}
	}

	required := float64(len(words)) * websiteWordOverlap
	if required < 1 {
		required = 1
	}
	return float64(matching) >= required
}

// domainMatchesName compares the URL's registrable domain label against the
// business name: one a substring of the other, or any 3-character run of the
// cleaned name appearing in the cleaned label.
func domainMatchesName(rawURL, businessName string) bool {
	match := domainPattern.FindStringSubmatch(strings.ToLower(rawURL))
	if match == nil {
		return false
	}
	label := tldPattern.ReplaceAllString(match[1], "")

	cleanBusiness := alnumOnly.ReplaceAllString(strings.ToLower(businessName), "")
	cleanDomain := alnumOnly.ReplaceAllString(label, "")
	if cleanBusiness == "" || cleanDomain == "" {
		return false
	}

	if strings.Contains(cleanDomain, cleanBusiness) || strings.Contains(cleanBusiness, cleanDomain) {
		return true
	}
	if len(cleanBusiness) >= 3 && len(cleanDomain) >= 3 {
		for i := 0; i+3 <= len(cleanBusiness); i++ {
			if strings.Contains(cleanDomain, cleanBusiness[i:i+3]) {
				return true
			}
		}
	}
	return false
}

// pageTitle extracts a page title, preferring og:title over <title>.
func pageTitle(body []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return ""
	}
	if og, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok && strings.TrimSpace(og) != "" {
		return strings.TrimSpace(og)
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}

func isRedirect(status int) bool {
	switch status {
	case http.StatusMovedPermanently, http.StatusFound, http.StatusSeeOther,
		http.StatusTemporaryRedirect, http.StatusPermanentRedirect:
		return true
	default:
		return false
	}
}

type response struct {
	body     []byte
	location string
	status   int
}

func (v *Verifier) get(ctx context.Context, rawURL string) (*response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", fetch.UserAgent)

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() //nolint:errcheck // intentional

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, err
	}

	location := resp.Header.Get("Location")
	if location != "" {
		if u, err := resp.Request.URL.Parse(location); err == nil {
			location = u.String()
		}
	}

	return &response{
		status:   resp.StatusCode,
		body:     body,
		location: location,
	}, nil
}
