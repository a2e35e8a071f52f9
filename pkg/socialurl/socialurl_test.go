package socialurl

import "testing"

func TestNormalizeInstagram(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "bare_username",
			in:   "https://instagram.com/joespizza",
			want: "https://www.instagram.com/joespizza/",
		},
		{
			name: "with_query",
			in:   "https://www.instagram.com/joespizza?hl=en",
			want: "https://www.instagram.com/joespizza/",
		},
		{
			name: "with_subpath",
			in:   "http://instagram.com/joespizza/reels/",
			want: "https://www.instagram.com/joespizza/",
		},
		{
			name: "mixed_case_domain",
			in:   "https://Instagram.COM/JoesPizza",
			want: "https://www.instagram.com/JoesPizza/",
		},
		{
			name: "no_match_returned_unchanged",
			in:   "https://example.com/joespizza",
			want: "https://example.com/joespizza",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeInstagram(tt.in); got != tt.want {
				t.Errorf("NormalizeInstagram(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeFacebook(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "bare_page",
			in:   "https://facebook.com/joespizza",
			want: "https://www.facebook.com/joespizza/",
		},
		{
			name: "with_tracking_params",
			in:   "https://www.facebook.com/joespizza?ref=page_internal",
			want: "https://www.facebook.com/joespizza/",
		},
		{
			name: "no_match_returned_unchanged",
			in:   "https://example.org/",
			want: "https://example.org/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeFacebook(tt.in); got != tt.want {
				t.Errorf("NormalizeFacebook(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// Normalizing an already-canonical URL must return it unchanged.
func TestNormalizeIdempotent(t *testing.T) {
	instagram := "https://www.instagram.com/joespizza/"
	if got := NormalizeInstagram(instagram); got != instagram {
		t.Errorf("NormalizeInstagram(%q) = %q, not idempotent", instagram, got)
	}
	facebook := "https://www.facebook.com/joespizza/"
	if got := NormalizeFacebook(facebook); got != facebook {
		t.Errorf("NormalizeFacebook(%q) = %q, not idempotent", facebook, got)
	}
}

func TestFacebookPage(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{name: "valid_page", in: "https://www.facebook.com/joespizza/", want: "joespizza", wantOK: true},
		{name: "reserved_pages", in: "https://facebook.com/pages", want: "pages", wantOK: false},
		{name: "reserved_marketplace", in: "https://facebook.com/marketplace", want: "marketplace", wantOK: false},
		{name: "too_short", in: "https://facebook.com/a", want: "a", wantOK: false},
		{name: "not_facebook", in: "https://example.com/joespizza", want: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, ok := FacebookPage(tt.in)
			if page != tt.want || ok != tt.wantOK {
				t.Errorf("FacebookPage(%q) = (%q, %v), want (%q, %v)", tt.in, page, ok, tt.want, tt.wantOK)
			}
		})
	}
}
