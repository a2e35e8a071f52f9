// Package variants derives candidate usernames and domains from a business name.
//
// Businesses tend to register social handles and domains built from their name
// with separators squeezed out, country codes appended, or suffixes like
// "LLC" dropped. The generators here are pure functions of their inputs:
// deterministic, deduplicated, and capped.
package variants

import (
	"regexp"
	"strings"
)

const (
	maxUsernames = 20
	maxDomains   = 10
	minLength    = 3 // variants shorter than this are too generic to try
)

// businessSuffixes are common legal/organizational suffixes stripped from the
// end of a name before generating variants. Order matters: longer forms are
// listed before their prefixes so " inc." wins over " inc" etc.
var businessSuffixes = []string{
	" inc.", " inc", " llc", " ltd.", " ltd", " corp.", " corp",
	" company", " co.", " co", " studios", " studio",
}

var nonAlnum = regexp.MustCompile(`[^a-zA-Z0-9]`)

// CleanName lowercases a business name and strips one trailing business suffix.
func CleanName(businessName string) string {
	name := strings.ToLower(strings.TrimSpace(businessName))
	for _, suffix := range businessSuffixes {
		if strings.HasSuffix(name, suffix) {
			name = strings.TrimSpace(strings.TrimSuffix(name, suffix))
			break
		}
	}
	return name
}

// Usernames generates candidate social media usernames for a business,
// ordered most-specific first: country-code suffixed forms, then bare forms.
// The result has no duplicates, no entries shorter than 3 characters, and at
// most 20 entries.
func Usernames(businessName, country string) []string {
	clean := CleanName(businessName)

	base := []string{
		strings.ReplaceAll(clean, " ", ""),
		strings.ReplaceAll(clean, " ", "_"),
		strings.ReplaceAll(clean, " ", "."),
		strings.ReplaceAll(clean, "'", ""),
		strings.ReplaceAll(strings.ReplaceAll(clean, "'", ""), " ", ""),
		nonAlnum.ReplaceAllString(clean, ""),
	}

	// Initialism plus trailing words: "mb vision studio" -> "mbsvisionstudio"-style
	// handles built from first letters joined with the remaining words.
	words := strings.Fields(clean)
	if len(words) > 1 {
		var initials strings.Builder
		for _, w := range words {
			initials.WriteByte(w[0])
		}
		remaining := strings.Join(words[1:], "")
		if initials.Len() >= 2 && remaining != "" {
			base = append(base, initials.String()+remaining)
		}
	}

	var candidates []string
	if code := CountryCode(country); code != "" {
		for _, b := range base {
			if b == "" {
				continue
			}
			candidates = append(candidates, b+code, b+"_"+code, b+"."+code)
		}
	}
	candidates = append(candidates, base...)

	return dedupe(candidates, maxUsernames)
}

// Domains generates candidate website hostnames for a business, most likely
// first: bare .com/.net/.org forms, country-code suffixed forms, and a
// "first word + last word" shortener for multi-word names. At most 10 entries.
func Domains(businessName, country string) []string {
	clean := nonAlnum.ReplaceAllString(CleanName(businessName), "")

	domains := []string{
		clean + ".com",
		"www." + clean + ".com",
		clean + ".net",
		clean + ".org",
	}

	code := CountryCode(country)
	if code != "" {
		domains = append(domains,
			clean+code+".com",
			clean+"-"+code+".com",
			clean+"."+code,
			"www."+clean+code+".com",
		)
	}

	words := strings.Fields(strings.ToLower(businessName))
	if len(words) >= 2 {
		short := nonAlnum.ReplaceAllString(words[0]+words[len(words)-1], "")
		domains = append(domains, short+".com", "www."+short+".com")
		if code != "" {
			domains = append(domains, short+code+".com", short+"-"+code+".com")
		}
	}

	return dedupe(domains, maxDomains)
}

// dedupe removes duplicates and too-short entries, preserving first-seen
// order, and caps the result at limit entries.
func dedupe(candidates []string, limit int) []string {
	seen := make(map[string]bool, len(candidates))
	var unique []string
	for _, c := range candidates {
		if len(c) < minLength || seen[c] {
			continue
		}
		seen[c] = true
		unique = append(unique, c)
		if len(unique) == limit {
			break
		}
	}
	return unique
}

// CountryCode maps a country name to its two-letter code, or "" if unknown.
// Matching is case-insensitive and exact.
func CountryCode(country string) string {
	return countryCodes[strings.ToLower(strings.TrimSpace(country))]
}

// countryCodes is the static country name -> ISO 3166-1 alpha-2 table used
// for candidate generation. Never mutated.
var countryCodes = map[string]string{
	"kuwait": "kw", "saudi arabia": "sa", "uae": "ae", "united arab emirates": "ae",
	"qatar": "qa", "bahrain": "bh", "oman": "om", "jordan": "jo",
	"lebanon": "lb", "egypt": "eg", "iraq": "iq", "syria": "sy",
	"usa": "us", "united states": "us", "uk": "gb", "united kingdom": "gb",
	"canada": "ca", "australia": "au", "france": "fr", "germany": "de",
	"italy": "it", "spain": "es", "netherlands": "nl", "belgium": "be",
	"switzerland": "ch", "austria": "at", "sweden": "se", "norway": "no",
	"denmark": "dk", "finland": "fi", "poland": "pl", "portugal": "pt",
	"greece": "gr", "turkey": "tr", "india": "in", "china": "cn",
	"japan": "jp", "south korea": "kr", "singapore": "sg", "malaysia": "my",
	"thailand": "th", "indonesia": "id", "philippines": "ph", "vietnam": "vn",
	"brazil": "br", "mexico": "mx", "argentina": "ar", "chile": "cl",
	"colombia": "co", "peru": "pe", "south africa": "za", "nigeria": "ng",
	"kenya": "ke", "israel": "il", "pakistan": "pk", "bangladesh": "bd",
}
