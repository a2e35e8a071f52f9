// Package extract scans arbitrary HTML or text for social profile and website URLs.
package extract

import (
	"regexp"
	"strings"

	"github.com/linkscout/linkscout/pkg/socialurl"
)

var (
	instagramPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)https?://(?:www\.)?instagram\.com/([a-zA-Z0-9_.]+)/?`),
		regexp.MustCompile(`(?i)instagram\.com/([a-zA-Z0-9_.]+)/?`),
	}
	facebookPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)https?://(?:www\.)?facebook\.com/([a-zA-Z0-9_.]+)/?`),
		regexp.MustCompile(`(?i)facebook\.com/([a-zA-Z0-9_.]+)/?`),
	}
)

// facebookSystemPaths are path words the extractor must not mistake for pages.
var facebookSystemPaths = map[string]bool{"pages": true, "profile": true, "people": true}

// InstagramURL returns the first Instagram profile URL found in text, in
// canonical form, or "" if none is present.
func InstagramURL(text string) string {
	for _, pattern := range instagramPatterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		username := truncateHandle(match[1])
		if len(username) > 1 {
			return socialurl.NormalizeInstagram("https://www.instagram.com/" + username + "/")
		}
	}
	return ""
}

// FacebookURL returns the first Facebook page URL found in text, in canonical
// form, or "" if none is present. Reserved site paths (pages, profile,
// people) are rejected.
func FacebookURL(text string) string {
	for _, pattern := range facebookPatterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		page := truncateHandle(match[1])
		if len(page) > 1 && !facebookSystemPaths[strings.ToLower(page)] {
			return socialurl.NormalizeFacebook("https://www.facebook.com/" + page + "/")
		}
	}
	return ""
}

// truncateHandle cuts a captured handle at the first path/query/fragment separator.
func truncateHandle(s string) string {
	for _, sep := range []string{"/", "?", "#"} {
		if idx := strings.Index(s, sep); idx >= 0 {
			s = s[:idx]
		}
	}
	return s
}

// Website extraction patterns, tried in order: an explicit http(s) URL with an
// allowed TLD, a "website/site/visit/www." prefixed bare domain, and an
// anchor-tag href.
var websitePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)https?://(?:www\.)?([a-zA-Z0-9][a-zA-Z0-9-]*[a-zA-Z0-9]*\.(?:com|net|org|co|io|me|info|biz|ae|kw|sa|qa|bh|om|jo|lb|eg)[^/\s"'<>]*)`),
	regexp.MustCompile(`(?i)(?:website|site|visit|www)\.([a-zA-Z0-9][a-zA-Z0-9-]*[a-zA-Z0-9]*\.(?:com|net|org|co|io|me|info|biz|ae|kw|sa|qa|bh|om|jo|lb|eg))`),
	regexp.MustCompile(`(?i)<a[^>]*href=["'](https?://[^"']+)["']`),
}

// WebsiteURL returns the first plausible business website URL found in text,
// or "" if none is present. Matches are considered in pattern order, then
// occurrence order, and each must pass LikelyWebsite.
func WebsiteURL(text string) string {
	seen := make(map[string]bool)
	for _, pattern := range websitePatterns {
		matches := pattern.FindAllStringSubmatch(text, -1)
		for _, match := range matches {
			domain := match[1]
			if domain == "" {
				continue
			}

			url := domain
			if !strings.HasPrefix(url, "http") {
				url = "https://" + url
			}
			url = cleanURL(url)

			if seen[url] || !LikelyWebsite(url) {
				continue
			}
			return url
		}
	}
	return ""
}

// cleanURL trims a URL at the first character that cannot belong to it.
func cleanURL(url string) string {
	for _, sep := range []string{`"`, "'", " ", "\n"} {
		if idx := strings.Index(url, sep); idx >= 0 {
			url = url[:idx]
		}
	}
	return url
}

// skipDomains are hosts that are never a business's own website: social
// platforms, search engines, map services, and directory/review sites.
var skipDomains = []string{
	"facebook.com", "instagram.com", "twitter.com", "linkedin.com",
	"youtube.com", "tiktok.com", "pinterest.com", "snapchat.com",
	"google.com", "maps.google.com", "support.google.com",
	"yelp.com", "tripadvisor.com", "foursquare.com", "zomato.com", "opentable.com",
	"wikipedia.org", "maps.apple.com", "bing.com", "yahoo.com", "duckduckgo.com",
	"search.yahoo.com", "search.bing.com",
}

// allowedTLDs restricts website candidates to common and regional TLDs.
var allowedTLDs = []string{
	".com", ".net", ".org", ".co", ".io", ".me", ".info", ".biz",
	".ae", ".kw", ".sa", ".qa", ".bh", ".om", ".jo", ".lb", ".eg",
}

// LikelyWebsite reports whether a URL plausibly points at a business's own
// website: http(s), not on a known social/search/directory host, and carrying
// an allowed TLD.
func LikelyWebsite(url string) bool {
	if url == "" {
		return false
	}
	lower := strings.ToLower(url)

	for _, domain := range skipDomains {
		if strings.Contains(lower, domain) {
			return false
		}
	}

	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		return false
	}

	for _, tld := range allowedTLDs {
		if strings.Contains(lower, tld) {
			return true
		}
	}
	return false
}
