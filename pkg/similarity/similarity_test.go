package similarity

import "testing"

func TestRatio(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{"identical", "joe's pizza", "joe's pizza", 1.0},
		{"identical_mixed_case", "Joe's Pizza", "joe's pizza", 1.0},
		{"both_empty", "", "", 1.0},
		{"one_empty", "pizza", "", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Ratio(tt.a, tt.b); got != tt.want {
				t.Errorf("Ratio(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestRatioDisjoint(t *testing.T) {
	if got := Ratio("abc", "xyz"); got != 0 {
		t.Errorf("Ratio(abc, xyz) = %v, want 0", got)
	}
}

func TestRatioOrdering(t *testing.T) {
	// A closer pair must score at least as high as a more distant one.
	close := Ratio("joes pizza", "joe's pizza official")
	far := Ratio("joes pizza", "completely unrelated bakery")
	if close <= far {
		t.Errorf("expected Ratio ordering: close=%v far=%v", close, far)
	}
}

func TestRatioSymmetricBounds(t *testing.T) {
	pairs := [][2]string{
		{"acme", "acme inc"},
		{"mb vision", "vision"},
		{"short", "a much longer string entirely"},
	}
	for _, p := range pairs {
		r := Ratio(p[0], p[1])
		if r < 0 || r > 1 {
			t.Errorf("Ratio(%q, %q) = %v out of [0,1]", p[0], p[1], r)
		}
	}
}
