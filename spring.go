package motion

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// restEpsilon bounds position error and velocity when deciding a solver has
// settled.
const restEpsilon = 1e-3

// Spring describes a spring animation the way design tools parameterize it:
// Response is the approximate settling period in seconds, Damping the
// fraction of critical damping (1 = glides to rest, lower values bounce).
type Spring struct {
	Response float64 `yaml:"response"`
	Damping  float64 `yaml:"damping"`
}

// Spring presets. Tuned feel constants, not contracts.
var (
	SpringSmooth = Spring{Response: 0.5, Damping: 1.0}  // no bounce
	SpringSnappy = Spring{Response: 0.4, Damping: 0.85} // brisk, a hint of bounce
	SpringBouncy = Spring{Response: 0.5, Damping: 0.7}  // pronounced bounce
	SpringGentle = Spring{Response: 0.8, Damping: 1.0}  // slow glide, no bounce
)

// SpringSolver integrates one float property toward a (possibly moving)
// target at a fixed tick rate. Create one per animated property, call Step
// once per tick, and apply the returned position.
type SpringSolver struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
}

// NewSolver creates a solver for spring, ticked fps times per second.
// Non-positive fields fall back to 60 fps and the SpringSmooth parameters.
func NewSolver(spring Spring, fps int) *SpringSolver {
	if fps <= 0 {
		fps = 60
	}
	if spring.Response <= 0 {
		spring.Response = SpringSmooth.Response
	}
	if spring.Damping <= 0 {
		spring.Damping = SpringSmooth.Damping
	}
	// Angular frequency: one full period per Response seconds.
	freq := 2 * math.Pi / spring.Response
	return &SpringSolver{
		spring: harmonica.NewSpring(harmonica.FPS(fps), freq, spring.Damping),
	}
}

// Step advances one tick toward target and returns the new position.
func (s *SpringSolver) Step(target float64) float64 {
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, target)
	return s.pos
}

// SetValue teleports the solver to v with zero velocity.
func (s *SpringSolver) SetValue(v float64) {
	s.pos = v
	s.vel = 0
}

// Value returns the current position.
func (s *SpringSolver) Value() float64 { return s.pos }

// Velocity returns the current velocity in units per second.
func (s *SpringSolver) Velocity() float64 { return s.vel }

// AtRest reports whether the solver has settled on target.
func (s *SpringSolver) AtRest(target float64) bool {
	return math.Abs(s.pos-target) < restEpsilon && math.Abs(s.vel) < restEpsilon
}
