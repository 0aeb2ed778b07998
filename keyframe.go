package motion

import "github.com/tanema/gween"

// minSegmentDuration replaces non-positive keyframe durations so a malformed
// segment degrades to "effectively instant" instead of dividing by zero.
const minSegmentDuration = 0.001

// Keyframe is one segment of a Track: ease toward To over Duration seconds.
type Keyframe struct {
	To       float64  `yaml:"to"`
	Duration float32  `yaml:"duration"`
	Ease     EaseKind `yaml:"ease"`
}

// Track animates a single float property through an ordered list of
// keyframes. Tracks own no clock: hosts call Update once per frame and
// apply the returned value to whatever property the track drives.
type Track struct {
	seq      *gween.Sequence
	from     float64
	value    float64
	duration float32
	loops    int // configured extra passes; -1 loops forever
	repeat   int // remaining extra passes this run
	done     bool
}

// NewTrack builds a track starting at from and easing through frames in
// order. A track with no frames is already done.
func NewTrack(from float64, frames ...Keyframe) *Track {
	t := &Track{from: from, value: from}
	if len(frames) == 0 {
		t.done = true
		return t
	}
	tweens := make([]*gween.Tween, len(frames))
	begin := float32(from)
	for i, kf := range frames {
		d := kf.Duration
		if d <= 0 {
			d = minSegmentDuration
		}
		tweens[i] = gween.New(begin, float32(kf.To), d, kf.Ease.Func())
		begin = float32(kf.To)
		t.duration += d
	}
	t.seq = gween.NewSequence(tweens...)
	return t
}

// SetRepeat makes the track replay count extra times after the first pass;
// -1 repeats forever. Each pass restarts from the initial value.
func (t *Track) SetRepeat(count int) {
	t.loops = count
	t.repeat = count
}

// Update advances the track by dt seconds and returns the current value and
// whether every pass has finished.
func (t *Track) Update(dt float32) (float64, bool) {
	if t.done {
		return t.value, true
	}
	v, _, finished := t.seq.Update(dt)
	t.value = float64(v)
	if finished {
		if t.repeat != 0 {
			if t.repeat > 0 {
				t.repeat--
			}
			t.seq.Reset()
		} else {
			t.done = true
		}
	}
	return t.value, t.done
}

// Reset rewinds the track to its initial value and restores the configured
// repeat count.
func (t *Track) Reset() {
	t.value = t.from
	t.repeat = t.loops
	t.done = t.seq == nil
	if t.seq != nil {
		t.seq.Reset()
	}
}

// Value returns the track's current value without advancing it.
func (t *Track) Value() float64 { return t.value }

// Done reports whether every pass has finished.
func (t *Track) Done() bool { return t.done }

// Duration returns the length of one pass in seconds.
func (t *Track) Duration() float32 { return t.duration }
