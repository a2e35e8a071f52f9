package linkscout

import (
	"context"
	"errors"
	"testing"
)

func TestFindRequiresBusinessName(t *testing.T) {
	for _, name := range []string{"", "  "} {
		if _, err := Find(context.Background(), name, "USA"); !errors.Is(err, ErrMissingBusinessName) {
			t.Errorf("Find(%q) error = %v, want ErrMissingBusinessName", name, err)
		}
	}
}

func TestOptions(t *testing.T) {
	cfg := &config{}
	WithCredentials("key", "cx")(cfg)
	if cfg.apiKey != "key" || cfg.cseID != "cx" {
		t.Errorf("WithCredentials not applied: %+v", cfg)
	}
}
