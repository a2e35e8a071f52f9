package customsearch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/linkscout/linkscout/pkg/result"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New("test-key", "test-cx", WithEndpoint(srv.URL), WithHTTPClient(srv.Client()), WithDelay(0))
}

func TestSearchFindsSocialLinks(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "test-key" || r.URL.Query().Get("cx") != "test-cx" {
			t.Errorf("missing credentials in query: %v", r.URL.Query())
		}
		w.Write([]byte(`{"items":[
			{"link":"https://www.instagram.com/joespizza/","snippet":"Joe's Pizza on Instagram"},
			{"link":"https://www.facebook.com/joespizza","snippet":"Joe's Pizza on Facebook"}
		]}`)) //nolint:errcheck
	})

	links, outcome := c.Search(context.Background(), "Joe's Pizza", "USA")
	if outcome != result.OutcomeFound {
		t.Fatalf("outcome = %v, want found", outcome)
	}
	if links.Instagram != "https://www.instagram.com/joespizza/" {
		t.Errorf("Instagram = %q", links.Instagram)
	}
	if links.Facebook != "https://www.facebook.com/joespizza/" {
		t.Errorf("Facebook = %q", links.Facebook)
	}
}

func TestSearchWebsiteFromItemLink(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"items":[{"link":"https://joespizza.com","snippet":""}]}`)) //nolint:errcheck
	})

	links, outcome := c.Search(context.Background(), "Joe's Pizza", "USA")
	if outcome != result.OutcomeFound {
		t.Fatalf("outcome = %v, want found", outcome)
	}
	if links.Website != "https://joespizza.com" {
		t.Errorf("Website = %q", links.Website)
	}
}

func TestSearchQuotaExceededFallsBack(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"message":"Quota exceeded"}}`)) //nolint:errcheck
	})

	links, outcome := c.Search(context.Background(), "Joe's Pizza", "USA")
	if outcome != result.OutcomeFallback {
		t.Fatalf("outcome = %v, want fallback", outcome)
	}
	if !links.Empty() {
		t.Errorf("expected no links, got %+v", links)
	}
}

func TestSearchForbiddenWithoutQuotaWordingContinues(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"message":"API key invalid"}}`)) //nolint:errcheck
	})

	_, outcome := c.Search(context.Background(), "Joe's Pizza", "USA")
	if outcome != result.OutcomeEmpty {
		t.Fatalf("outcome = %v, want empty", outcome)
	}
}

func TestSearchRateLimitFallsBack(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, outcome := c.Search(context.Background(), "Joe's Pizza", "USA")
	if outcome != result.OutcomeFallback {
		t.Fatalf("outcome = %v, want fallback", outcome)
	}
}

func TestSearchNetworkErrorFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	endpoint := srv.URL
	srv.Close() // connection refused from here on

	c := New("k", "cx", WithEndpoint(endpoint), WithDelay(0))
	_, outcome := c.Search(context.Background(), "Joe's Pizza", "USA")
	if outcome != result.OutcomeFallback {
		t.Fatalf("outcome = %v, want fallback", outcome)
	}
}

func TestSearchShortCircuitsOnceSocialFound(t *testing.T) {
	var calls int
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.Write([]byte(`{"items":[
			{"link":"https://instagram.com/acme","snippet":""},
			{"link":"https://facebook.com/acme","snippet":""},
			{"link":"https://acme.com","snippet":""}
		]}`)) //nolint:errcheck
	})

	links, outcome := c.Search(context.Background(), "Acme", "USA")
	if outcome != result.OutcomeFound {
		t.Fatalf("outcome = %v, want found", outcome)
	}
	if links.Instagram == "" || links.Facebook == "" {
		t.Fatalf("expected both social links, got %+v", links)
	}
	if links.Website != "https://acme.com" {
		t.Errorf("Website = %q", links.Website)
	}
	// One social query finds both socials, then one website query finds the site.
	if calls != 2 {
		t.Errorf("API called %d times, want 2", calls)
	}
}
