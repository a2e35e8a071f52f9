// Package result defines the common types produced by a business link resolution.
package result

import (
	"errors"
)

// ErrMissingBusinessName is returned when a resolution is requested without a
// business name. Missing credentials are not an error: they silently disable
// the structured provider.
var ErrMissingBusinessName = errors.New("business name is required")

// Confidence summarizes how many channels were successfully resolved.
type Confidence string

// Confidence levels, derived from the number of verified channels.
const (
	ConfidenceLow    Confidence = "low"    // no channel resolved
	ConfidenceMedium Confidence = "medium" // exactly one channel resolved
	ConfidenceHigh   Confidence = "high"   // two or more channels resolved
)

// ConfidenceFor maps a verified-channel count to a Confidence level.
func ConfidenceFor(verified int) Confidence {
	switch {
	case verified >= 2:
		return ConfidenceHigh
	case verified == 1:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// Outcome is the tri-state result of a provider call. A provider that ran but
// found nothing is distinct from one that asks the caller to fall back to an
// alternate provider (quota exhaustion, network failure).
type Outcome int

// Provider outcomes.
const (
	OutcomeFound    Outcome = iota // at least one candidate link found
	OutcomeEmpty                   // provider ran, no usable result
	OutcomeFallback                // provider unusable, caller should try the alternate
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFound:
		return "found"
	case OutcomeEmpty:
		return "empty"
	case OutcomeFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// Links holds raw candidate URLs discovered by a provider, one per channel.
// Empty fields mean the provider found nothing for that channel.
type Links struct {
	Instagram string
	Facebook  string
	Website   string
}

// Empty reports whether no channel has a candidate.
func (l Links) Empty() bool {
	return l.Instagram == "" && l.Facebook == "" && l.Website == ""
}

// Result is the outcome of one resolution. It is immutable after the resolver
// returns it; channel URLs, when present, have passed their channel's verifier.
type Result struct {
	Instagram  string     `json:"instagram,omitempty"`
	Facebook   string     `json:"facebook,omitempty"`
	Website    string     `json:"website,omitempty"`
	Confidence Confidence `json:"confidence"`
	Sources    []string   `json:"sources"`
}

// AddSource records a discovery source, preserving first-contribution order
// and deduplicating by name.
func (r *Result) AddSource(name string) {
	for _, s := range r.Sources {
		if s == name {
			return
		}
	}
	r.Sources = append(r.Sources, name)
}

// VerifiedCount returns the number of non-empty channels.
func (r *Result) VerifiedCount() int {
	count := 0
	if r.Instagram != "" {
		count++
	}
	if r.Facebook != "" {
		count++
	}
	if r.Website != "" {
		count++
	}
	return count
}
