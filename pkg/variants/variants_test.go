package variants

import (
	"strings"
	"testing"
)

func TestCountryCode(t *testing.T) {
	tests := []struct {
		country string
		want    string
	}{
		{"USA", "us"},
		{"usa", "us"},
		{" United States ", "us"},
		{"United Kingdom", "gb"},
		{"Kuwait", "kw"},
		{"Atlantis", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := CountryCode(tt.country); got != tt.want {
			t.Errorf("CountryCode(%q) = %q, want %q", tt.country, got, tt.want)
		}
	}
}

func TestCleanName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Acme Inc", "acme"},
		{"Acme Inc.", "acme"},
		{"Acme LLC", "acme"},
		{"Vision Studios", "vision"},
		{"Joe's Pizza", "joe's pizza"},
		{"Plain Name", "plain name"},
	}

	for _, tt := range tests {
		if got := CleanName(tt.in); got != tt.want {
			t.Errorf("CleanName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUsernamesJoesPizza(t *testing.T) {
	got := Usernames("Joe's Pizza", "USA")

	for _, want := range []string{"joespizza", "joespizzaus", "joespizza_us"} {
		if !contains(got, want) {
			t.Errorf("Usernames(Joe's Pizza, USA) missing %q, got %v", want, got)
		}
	}

	// Country-code forms must come before the bare base forms.
	if idx(got, "joespizzaus") > idx(got, "joespizza") {
		t.Errorf("country-suffixed variant should precede bare variant: %v", got)
	}
}

func TestUsernamesProperties(t *testing.T) {
	names := []string{
		"Joe's Pizza", "MB Vision", "A", "Acme Inc.", "X Y Z Holdings Ltd",
		"The Very Long Business Name With Many Words International Company",
	}

	for _, name := range names {
		for _, country := range []string{"", "USA", "Germany", "Nowhere"} {
			got := Usernames(name, country)

			if len(got) > 20 {
				t.Errorf("Usernames(%q, %q) returned %d entries, cap is 20", name, country, len(got))
			}
			seen := make(map[string]bool)
			for _, v := range got {
				if len(v) <= 2 {
					t.Errorf("Usernames(%q, %q) contains too-short entry %q", name, country, v)
				}
				if seen[v] {
					t.Errorf("Usernames(%q, %q) contains duplicate %q", name, country, v)
				}
				seen[v] = true
			}
		}
	}
}

func TestUsernamesInitialism(t *testing.T) {
	got := Usernames("MB Vision", "")
	if !contains(got, "mbvision") {
		t.Errorf("expected concatenated variant mbvision, got %v", got)
	}
}

func TestUsernamesDeterministic(t *testing.T) {
	a := Usernames("Joe's Pizza", "USA")
	b := Usernames("Joe's Pizza", "USA")
	if strings.Join(a, ",") != strings.Join(b, ",") {
		t.Errorf("Usernames is not deterministic: %v vs %v", a, b)
	}
}

func TestDomains(t *testing.T) {
	got := Domains("Joe's Pizza", "USA")

	if len(got) > 10 {
		t.Errorf("Domains returned %d entries, cap is 10", len(got))
	}
	for _, want := range []string{"joespizza.com", "www.joespizza.com", "joespizzaus.com"} {
		if !contains(got, want) {
			t.Errorf("Domains(Joe's Pizza, USA) missing %q, got %v", want, got)
		}
	}
}

func TestDomainsShortener(t *testing.T) {
	got := Domains("Alpha Beta Gamma", "")
	if !contains(got, "alphagamma.com") {
		t.Errorf("expected first+last word shortener alphagamma.com, got %v", got)
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func idx(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return len(list)
}
