// Package resolver orchestrates providers, candidate generation, and
// verification into a single business link resolution.
package resolver

import (
	"context"
	"log/slog"
	"strings"

	"github.com/linkscout/linkscout/pkg/result"
	"github.com/linkscout/linkscout/pkg/variants"
)

// Source labels recorded on results, in the order the strategies run.
const (
	SourceCustomSearch    = "Google Custom Search API"
	SourceWebSearch       = "Google Web Search"
	SourceInstagramDirect = "Instagram Direct Search"
	SourceFacebookDirect  = "Facebook Direct Search"
	SourceWebsiteDirect   = "Website Search"
)

// Provider turns a business query into raw candidate links.
type Provider interface {
	Search(ctx context.Context, businessName, country string) (result.Links, result.Outcome)
}

// ChannelVerifier decides whether a candidate URL belongs to the business.
type ChannelVerifier interface {
	Instagram(ctx context.Context, url, businessName string) bool
	Facebook(ctx context.Context, url, businessName string) bool
	Website(ctx context.Context, url, businessName string) bool
}

// Resolver resolves a business's social links and website. All strategies run
// sequentially within one call; failures degrade the candidate pool instead of
// aborting the resolution.
type Resolver struct {
	structured Provider
	raw        Provider
	verifier   ChannelVerifier
	logger     *slog.Logger
}

// Option customizes a Resolver.
type Option func(*Resolver)

// WithStructured sets the structured search provider, tried before the raw one.
func WithStructured(p Provider) Option {
	return func(r *Resolver) { r.structured = p }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) { r.logger = logger }
}

// New creates a Resolver over the given raw provider and verifier.
func New(raw Provider, verifier ChannelVerifier, opts ...Option) *Resolver {
	r := &Resolver{
		raw:      raw,
		verifier: verifier,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Find resolves the business's Instagram, Facebook, and website links.
func (r *Resolver) Find(ctx context.Context, businessName, country string) (result.Result, error) {
	businessName = strings.TrimSpace(businessName)
	if businessName == "" {
		return result.Result{}, result.ErrMissingBusinessName
	}

	res := result.Result{Sources: []string{}}

	var instagramCandidates, facebookCandidates, websiteCandidates []string

	// Structured API first, when configured. A fallback outcome means the
	// API is unusable this round and the raw search must cover for it.
	fellBack := false
	if r.structured != nil {
		links, outcome := r.structured.Search(ctx, businessName, country)
		r.logger.DebugContext(ctx, "structured search done", "outcome", outcome.String())
		switch outcome {
		case result.OutcomeFallback:
			fellBack = true
		case result.OutcomeFound:
			res.AddSource(SourceCustomSearch)
			instagramCandidates = appendLink(instagramCandidates, links.Instagram)
			facebookCandidates = appendLink(facebookCandidates, links.Facebook)
			websiteCandidates = appendLink(websiteCandidates, links.Website)
		case result.OutcomeEmpty:
		}
	}

	// Raw search complements the API whenever it fell back or left a social
	// channel without a candidate.
	if fellBack || len(instagramCandidates) == 0 || len(facebookCandidates) == 0 {
		links, outcome := r.raw.Search(ctx, businessName, country)
		r.logger.DebugContext(ctx, "web search done", "outcome", outcome.String())
		if outcome == result.OutcomeFound {
			res.AddSource(SourceWebSearch)
			instagramCandidates = appendLink(instagramCandidates, links.Instagram)
			facebookCandidates = appendLink(facebookCandidates, links.Facebook)
			websiteCandidates = appendLink(websiteCandidates, links.Website)
		}
	}

	// Direct pattern discovery per social channel. The first username variant
	// that verifies is already a confirmed answer, so it takes priority over
	// provider candidates without being fetched again.
	if direct := r.instagramDirect(ctx, businessName, country); direct != "" {
		res.AddSource(SourceInstagramDirect)
		res.Instagram = direct
	} else {
		for _, candidate := range instagramCandidates {
			if r.verifier.Instagram(ctx, candidate, businessName) {
				res.Instagram = candidate
				break
			}
		}
	}

	if direct := r.facebookDirect(ctx, businessName, country); direct != "" {
		res.AddSource(SourceFacebookDirect)
		res.Facebook = direct
	} else {
		for _, candidate := range facebookCandidates {
			if r.verifier.Facebook(ctx, candidate, businessName) {
				res.Facebook = candidate
				break
			}
		}
	}

	// Website: domain guessing first, provider candidates as fallback.
	if direct := r.websiteDirect(ctx, businessName, country); direct != "" {
		res.AddSource(SourceWebsiteDirect)
		res.Website = direct
	} else {
		for _, candidate := range websiteCandidates {
			if r.verifier.Website(ctx, candidate, businessName) {
				res.Website = candidate
				break
			}
		}
	}

	res.Confidence = result.ConfidenceFor(res.VerifiedCount())

	r.logger.InfoContext(ctx, "resolution complete",
		"business", businessName,
		"country", country,
		"instagram", res.Instagram != "",
		"facebook", res.Facebook != "",
		"website", res.Website != "",
		"confidence", string(res.Confidence))

	return res, nil
}

// instagramDirect tries username variants as instagram.com profile URLs,
// returning the first that verifies.
func (r *Resolver) instagramDirect(ctx context.Context, businessName, country string) string {
	for _, username := range variants.Usernames(businessName, country) {
		candidate := "https://www.instagram.com/" + username + "/"
		if r.verifier.Instagram(ctx, candidate, businessName) {
			return candidate
		}
	}
	return ""
}

// facebookDirect tries username variants as facebook.com page URLs. Country
// code variants go first since pages often carry them.
func (r *Resolver) facebookDirect(ctx context.Context, businessName, country string) string {
	usernames := variants.Usernames(businessName, country)

	if code := variants.CountryCode(country); code != "" {
		var withCode, without []string
		for _, u := range usernames {
			if strings.Contains(strings.ToLower(u), code) {
				withCode = append(withCode, u)
			} else {
				without = append(without, u)
			}
		}
		usernames = append(withCode, without...)
	}

	for _, username := range usernames {
		candidate := "https://www.facebook.com/" + username + "/"
		if r.verifier.Facebook(ctx, candidate, businessName) {
			return candidate
		}
	}
	return ""
}

// websiteDirect tries guessed domains, returning the first URL that verifies.
func (r *Resolver) websiteDirect(ctx context.Context, businessName, country string) string {
	for _, domain := range variants.Domains(businessName, country) {
		candidate := "https://" + domain
		if r.verifier.Website(ctx, candidate, businessName) {
			return candidate
		}
	}
	return ""
}

func appendLink(list []string, link string) []string {
	if link == "" {
		return list
	}
	for _, existing := range list {
		if existing == link {
			return list
		}
	}
	return append(list, link)
}
