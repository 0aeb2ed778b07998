package motion

import "github.com/tanema/gween"

// defaultPhaseDuration replaces non-positive leg durations.
const defaultPhaseDuration = 0.3

// PhaseSpec is one leg of a PhaseAnimator: how long the transition into the
// phase takes and the curve it follows.
type PhaseSpec struct {
	Duration float32  `yaml:"duration"`
	Ease     EaseKind `yaml:"ease"`
}

// PhaseAnimator walks a fixed ring of discrete visual phases. Idle it rests
// at phase 0; Trigger starts an automatic traversal through every phase and
// back to 0, each leg eased by its own spec. Hosts map Phase and Progress
// onto whatever properties distinguish their phases.
type PhaseAnimator struct {
	specs  []PhaseSpec
	phase  int
	leg    *gween.Tween
	prog   float64
	active bool
}

// NewPhaseAnimator builds an animator over specs, one per phase. Fewer than
// two phases leaves the animator permanently idle.
func NewPhaseAnimator(specs ...PhaseSpec) *PhaseAnimator {
	return &PhaseAnimator{specs: specs, prog: 1}
}

// Trigger starts a traversal. Triggers arriving while one is already in
// flight are ignored.
func (a *PhaseAnimator) Trigger() {
	if a.active || len(a.specs) < 2 {
		return
	}
	a.active = true
	a.advance()
}

// advance begins the leg into the next phase of the ring.
func (a *PhaseAnimator) advance() {
	next := (a.phase + 1) % len(a.specs)
	spec := a.specs[next]
	d := spec.Duration
	if d <= 0 {
		d = defaultPhaseDuration
	}
	a.phase = next
	a.prog = 0
	a.leg = gween.New(0, 1, d, spec.Ease.Func())
}

// Update advances the traversal by dt seconds. No-op while idle.
func (a *PhaseAnimator) Update(dt float32) {
	if a.leg == nil {
		return
	}
	v, done := a.leg.Update(dt)
	a.prog = float64(v)
	if done {
		a.prog = 1
		a.leg = nil
		if a.phase == 0 {
			a.active = false
		} else {
			a.advance()
		}
	}
}

// Phase returns the index of the phase currently displayed or being entered.
func (a *PhaseAnimator) Phase() int { return a.phase }

// Progress returns the eased progress of the current leg in [0, 1]; 1 when
// no leg is in flight.
func (a *PhaseAnimator) Progress() float64 { return a.prog }

// Active reports whether a traversal is in flight.
func (a *PhaseAnimator) Active() bool { return a.active }

// Blend interpolates between the previous phase's value for a property and
// the current phase's value, using the leg progress.
func (a *PhaseAnimator) Blend(from, to float64) float64 {
	return lerp(from, to, a.prog)
}
