package motion

import "testing"

func TestTrackReachesTargetsInOrder(t *testing.T) {
	tr := NewTrack(0,
		Keyframe{To: 10, Duration: 0.5, Ease: EaseLinear},
		Keyframe{To: -4, Duration: 0.5, Ease: EaseLinear},
	)
	if tr.Value() != 0 {
		t.Fatalf("Value = %v before any update, want 0", tr.Value())
	}
	if !approxEqual(float64(tr.Duration()), 1.0, 1e-6) {
		t.Fatalf("Duration = %v, want 1.0", tr.Duration())
	}

	// Halfway through the first segment.
	v, done := tr.Update(0.25)
	if done {
		t.Fatal("done halfway through the first segment")
	}
	if !approxEqual(v, 5, 1e-3) {
		t.Errorf("value = %v at first midpoint, want ~5", v)
	}

	// First segment lands on its target.
	v, done = tr.Update(0.25)
	if done {
		t.Fatal("done after first segment")
	}
	if !approxEqual(v, 10, 1e-3) {
		t.Errorf("value = %v at first target, want ~10", v)
	}

	// Second segment finishes the track.
	v, done = tr.Update(0.5)
	if !done {
		t.Fatal("expected done after full duration")
	}
	if !approxEqual(v, -4, 1e-3) {
		t.Errorf("value = %v at end, want ~-4", v)
	}

	// Updates past the end are a no-op.
	v, done = tr.Update(1)
	if !done || !approxEqual(v, -4, 1e-3) {
		t.Errorf("Update past end = (%v, %v), want (-4, true)", v, done)
	}
}

func TestTrackMidpointHonorsEase(t *testing.T) {
	tr := NewTrack(0, Keyframe{To: 100, Duration: 1, Ease: EaseOutQuad})
	v, _ := tr.Update(0.5)
	if !approxEqual(v, 75, 0.5) {
		t.Errorf("OutQuad midpoint = %v, want ~75", v)
	}
}

func TestTrackEmptyIsDone(t *testing.T) {
	tr := NewTrack(7)
	if !tr.Done() {
		t.Fatal("empty track not done")
	}
	if tr.Duration() != 0 {
		t.Errorf("Duration = %v, want 0", tr.Duration())
	}
	v, done := tr.Update(1)
	if v != 7 || !done {
		t.Errorf("Update = (%v, %v), want (7, true)", v, done)
	}
}

func TestTrackZeroDurationFrameClamped(t *testing.T) {
	tr := NewTrack(0, Keyframe{To: 5})
	if tr.Duration() != minSegmentDuration {
		t.Errorf("Duration = %v, want %v", tr.Duration(), minSegmentDuration)
	}
	v, done := tr.Update(1)
	if !done || !approxEqual(v, 5, 1e-3) {
		t.Errorf("Update = (%v, %v), want (5, true)", v, done)
	}
}

func TestTrackRepeat(t *testing.T) {
	tr := NewTrack(0, Keyframe{To: 1, Duration: 0.5, Ease: EaseLinear})
	tr.SetRepeat(1)

	// First pass completes but the track replays.
	v, done := tr.Update(0.5)
	if done {
		t.Fatal("done after first pass with a repeat pending")
	}
	if !approxEqual(v, 1, 1e-3) {
		t.Errorf("value = %v at first pass end, want ~1", v)
	}

	// Second pass restarts from the initial value.
	v, done = tr.Update(0.25)
	if done || !approxEqual(v, 0.5, 1e-3) {
		t.Errorf("second pass midpoint = (%v, %v), want (~0.5, false)", v, done)
	}
	v, done = tr.Update(0.25)
	if !done || !approxEqual(v, 1, 1e-3) {
		t.Errorf("second pass end = (%v, %v), want (~1, true)", v, done)
	}
}

func TestTrackRepeatForever(t *testing.T) {
	tr := NewTrack(0, Keyframe{To: 1, Duration: 0.5, Ease: EaseLinear})
	tr.SetRepeat(-1)
	for i := 0; i < 10; i++ {
		if _, done := tr.Update(0.5); done {
			t.Fatalf("done on pass %d of a forever-repeating track", i+1)
		}
	}
}

func TestTrackReset(t *testing.T) {
	tr := NewTrack(3, Keyframe{To: 9, Duration: 0.5, Ease: EaseLinear})
	tr.SetRepeat(1)

	tr.Update(0.5)
	tr.Update(0.5)
	if !tr.Done() {
		t.Fatal("not done after both passes")
	}

	tr.Reset()
	if tr.Done() {
		t.Fatal("done after Reset")
	}
	if tr.Value() != 3 {
		t.Errorf("Value = %v after Reset, want 3", tr.Value())
	}

	// The repeat count is restored too.
	if _, done := tr.Update(0.5); done {
		t.Error("done after one pass; Reset should restore the repeat")
	}
	if _, done := tr.Update(0.5); !done {
		t.Error("not done after both passes following Reset")
	}
}

func BenchmarkTrackUpdate(b *testing.B) {
	tr := NewTrack(0,
		Keyframe{To: 10, Duration: 1000, Ease: EaseInOutSine},
		Keyframe{To: 0, Duration: 1000, Ease: EaseOutBounce},
	)
	b.ReportAllocs()
	for b.Loop() {
		tr.Update(0.001)
	}
}
