package motion

import "testing"

func TestParseEaseRoundTrip(t *testing.T) {
	for k := EaseLinear; k <= EaseOutElastic; k++ {
		got, err := ParseEase(k.String())
		if err != nil {
			t.Errorf("ParseEase(%q): %v", k.String(), err)
			continue
		}
		if got != k {
			t.Errorf("ParseEase(%q) = %d, want %d", k.String(), got, k)
		}
	}
}

func TestParseEaseUnknown(t *testing.T) {
	if _, err := ParseEase("hyperdrive"); err == nil {
		t.Error("expected error for unknown ease name")
	}
	if name := EaseKind(200).String(); name != "unknown" {
		t.Errorf("EaseKind(200).String() = %q, want \"unknown\"", name)
	}
}

func TestEaseFuncCurveShapes(t *testing.T) {
	// Spot-check the mapping through known midpoint values: f(0.5, 0, 1, 1).
	tests := []struct {
		kind EaseKind
		mid  float64
	}{
		{EaseLinear, 0.5},
		{EaseInQuad, 0.25},
		{EaseOutQuad, 0.75},
		{EaseInOutQuad, 0.5},
		{EaseInCubic, 0.125},
		{EaseOutCubic, 0.875},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			got := float64(tt.kind.Func()(0.5, 0, 1, 1))
			if !approxEqual(got, tt.mid, 1e-3) {
				t.Errorf("%s midpoint = %f, want %f", tt.kind, got, tt.mid)
			}
		})
	}
}

func TestEaseFuncEndpointsExact(t *testing.T) {
	// Every curve starts at the begin value and lands on the end value.
	for k := EaseLinear; k <= EaseOutElastic; k++ {
		f := k.Func()
		if got := float64(f(0, 0, 1, 1)); !approxEqual(got, 0, 1e-3) {
			t.Errorf("%s(0) = %f, want 0", k, got)
		}
		if got := float64(f(1, 0, 1, 1)); !approxEqual(got, 1, 1e-3) {
			t.Errorf("%s(1) = %f, want 1", k, got)
		}
	}
}

func TestEaseFuncUnknownFallsBackToLinear(t *testing.T) {
	f := EaseKind(200).Func()
	if got := f(0.25, 0, 1, 1); got != 0.25 {
		t.Errorf("fallback(0.25) = %f, want 0.25 (linear)", got)
	}
}
