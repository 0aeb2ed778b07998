package motion

import "github.com/tanema/gween"

// defaultHeroDuration replaces non-positive flight durations.
const defaultHeroDuration = 0.35

// HeroRegistry records the on-screen frames of shared elements by
// identifier. When the host switches between two view states, it looks up
// the element's previous frame here and flies it to the new one, producing
// the matched-geometry effect.
type HeroRegistry struct {
	frames map[string]Rect
}

// NewHeroRegistry creates an empty registry.
func NewHeroRegistry() *HeroRegistry {
	return &HeroRegistry{frames: make(map[string]Rect)}
}

// Set records id's current frame, replacing any previous one.
func (r *HeroRegistry) Set(id string, frame Rect) {
	r.frames[id] = frame
}

// Frame returns the recorded frame for id.
func (r *HeroRegistry) Frame(id string) (Rect, bool) {
	f, ok := r.frames[id]
	return f, ok
}

// Clear forgets id.
func (r *HeroRegistry) Clear(id string) {
	delete(r.frames, id)
}

// HeroFlight animates a shared element's frame between two view states.
// Hosts draw the element at the in-flight frame each frame until Done.
type HeroFlight struct {
	from, to Rect
	tween    *gween.Tween
	frame    Rect
	done     bool
}

// NewHeroFlight starts a flight between two frames over duration seconds.
func NewHeroFlight(from, to Rect, duration float32, kind EaseKind) *HeroFlight {
	if duration <= 0 {
		duration = defaultHeroDuration
	}
	return &HeroFlight{
		from:  from,
		to:    to,
		frame: from,
		tween: gween.New(0, 1, duration, kind.Func()),
	}
}

// Hero starts a flight for id from its registered frame to the given
// destination, and re-registers the destination as id's new frame. The
// second return is false when id has no recorded frame.
func Hero(reg *HeroRegistry, id string, to Rect, duration float32, kind EaseKind) (*HeroFlight, bool) {
	from, ok := reg.Frame(id)
	if !ok {
		return nil, false
	}
	reg.Set(id, to)
	return NewHeroFlight(from, to, duration, kind), true
}

// Update advances the flight by dt seconds and returns the in-flight frame
// and whether the flight has landed.
func (h *HeroFlight) Update(dt float32) (Rect, bool) {
	if h.done {
		return h.frame, true
	}
	v, done := h.tween.Update(dt)
	h.frame = lerpRect(h.from, h.to, float64(v))
	if done {
		h.frame = h.to
		h.done = true
	}
	return h.frame, h.done
}

// Frame returns the current in-flight frame without advancing.
func (h *HeroFlight) Frame() Rect { return h.frame }

// Done reports whether the flight has landed.
func (h *HeroFlight) Done() bool { return h.done }

// lerpRect interpolates every edge of the rectangle.
func lerpRect(a, b Rect, t float64) Rect {
	return Rect{
		X:      lerp(a.X, b.X, t),
		Y:      lerp(a.Y, b.Y, t),
		Width:  lerp(a.Width, b.Width, t),
		Height: lerp(a.Height, b.Height, t),
	}
}
