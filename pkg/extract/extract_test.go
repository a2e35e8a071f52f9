package extract

import "testing"

func TestInstagramURL(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "anchor_tag",
			text: `<a href="https://instagram.com/joespizza/">Follow us</a>`,
			want: "https://www.instagram.com/joespizza/",
		},
		{
			name: "bare_domain",
			text: "find us at instagram.com/joespizza today",
			want: "https://www.instagram.com/joespizza/",
		},
		{
			name: "query_string_truncated",
			text: "https://www.instagram.com/joespizza?hl=en",
			want: "https://www.instagram.com/joespizza/",
		},
		{
			name: "no_match",
			text: "no social links here",
			want: "",
		},
		{
			name: "single_char_handle_rejected",
			text: "https://instagram.com/a",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InstagramURL(tt.text); got != tt.want {
				t.Errorf("InstagramURL(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestFacebookURL(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "plain_url",
			text: "https://www.facebook.com/joespizza",
			want: "https://www.facebook.com/joespizza/",
		},
		{
			name: "reserved_path_rejected",
			text: "https://www.facebook.com/pages",
			want: "",
		},
		{
			name: "no_match",
			text: "nothing to see",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FacebookURL(tt.text); got != tt.want {
				t.Errorf("FacebookURL(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestWebsiteURL(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "explicit_https",
			text: "Order online at https://joespizza.com/menu",
			want: "https://joespizza.com",
		},
		{
			name: "prefixed_bare_domain",
			text: "Visit www.joespizza.com for details",
			want: "https://joespizza.com",
		},
		{
			name: "anchor_href",
			text: `<a href="https://joespizza.net">our site</a>`,
			want: "https://joespizza.net",
		},
		{
			name: "social_link_skipped",
			text: "https://www.facebook.com/joespizza",
			want: "",
		},
		{
			name: "directory_site_skipped",
			text: "https://www.yelp.com/biz/joes-pizza",
			want: "",
		},
		{
			name: "disallowed_tld",
			text: `<a href="https://joespizza.pizza">site</a>`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WebsiteURL(tt.text); got != tt.want {
				t.Errorf("WebsiteURL(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestLikelyWebsite(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://joespizza.com", true},
		{"http://example.net/about", true},
		{"https://www.instagram.com/joespizza/", false},
		{"https://www.tripadvisor.com/Restaurant", false},
		{"joespizza.com", false}, // no scheme
		{"https://joespizza.xyz", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := LikelyWebsite(tt.url); got != tt.want {
			t.Errorf("LikelyWebsite(%q) = %v, want %v", tt.url, got, tt.want)
		}
	}
}
