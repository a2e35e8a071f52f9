// Package socialurl canonicalizes Instagram and Facebook profile URLs.
//
// The canonical form is https://www.<domain>.com/<segment>/ where segment is
// the first path element after the domain. Inputs that do not contain a
// recognizable profile path are returned unchanged.
package socialurl

import (
	"regexp"
	"strings"
)

var (
	instagramPattern = regexp.MustCompile(`(?i)instagram\.com/([a-zA-Z0-9_.]+)`)
	facebookPattern  = regexp.MustCompile(`(?i)facebook\.com/([a-zA-Z0-9_.]+)`)
)

// NormalizeInstagram rewrites any URL containing instagram.com/<username> to
// the canonical https://www.instagram.com/<username>/ form.
func NormalizeInstagram(rawURL string) string {
	match := instagramPattern.FindStringSubmatch(rawURL)
	if match == nil {
		return rawURL
	}
	username := firstSegment(match[1])
	return "https://www.instagram.com/" + username + "/"
}

// NormalizeFacebook rewrites any URL containing facebook.com/<page> to the
// canonical https://www.facebook.com/<page>/ form.
func NormalizeFacebook(rawURL string) string {
	match := facebookPattern.FindStringSubmatch(rawURL)
	if match == nil {
		return rawURL
	}
	page := firstSegment(match[1])
	return "https://www.facebook.com/" + page + "/"
}

// firstSegment truncates a captured path at the first separator.
func firstSegment(s string) string {
	for _, sep := range []string{"/", "?", "#"} {
		if idx := strings.Index(s, sep); idx >= 0 {
			s = s[:idx]
		}
	}
	return s
}

// facebookReservedPaths are facebook.com path segments that are site features,
// never business pages.
var facebookReservedPaths = map[string]bool{
	"pages": true, "profile": true, "people": true, "login": true,
	"home": true, "watch": true, "marketplace": true, "groups": true,
	"events": true,
}

// IsReservedFacebookPath reports whether a path segment is a Facebook site
// feature rather than a page name.
func IsReservedFacebookPath(segment string) bool {
	return facebookReservedPaths[strings.ToLower(segment)]
}

var facebookSegmentPattern = regexp.MustCompile(`(?i)facebook\.com/([^/?]+)`)

// FacebookPage extracts the page segment from a Facebook URL and reports
// whether it looks like a plausible page: present, at least two characters,
// and not a reserved site path.
func FacebookPage(rawURL string) (page string, ok bool) {
	match := facebookSegmentPattern.FindStringSubmatch(strings.ToLower(rawURL))
	if match == nil {
		return "", false
	}
	page = match[1]
	if len(page) < 2 || IsReservedFacebookPath(page) {
		return page, false
	}
	return page, true
}
