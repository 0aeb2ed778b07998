package motion

// Size is a container's measured width and height in pixels, supplied by
// the host's layout pass each time the container resizes.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Axis is a rotation axis as a unit vector. Page rotations happen around
// the vertical axis, so transforms that rotate carry AxisY; a zero Axis
// means the transform performs no rotation.
type Axis struct {
	X, Y, Z float64
}

// AxisY is the vertical axis every page rotation turns around.
var AxisY = Axis{0, 1, 0}

// Anchor selects the vertical line within a page that a rotation pivots
// around.
type Anchor uint8

const (
	AnchorCenter   Anchor = iota // pivot on the page's horizontal center
	AnchorLeading                // pivot on the left edge
	AnchorTrailing               // pivot on the right edge
)

// GestureState is the drag session's state. A Pager is settled until the
// host opens a session with BeginDrag, and EndDrag is the only way back.
type GestureState uint8

const (
	GestureSettled  GestureState = iota // no live drag; offset is 0 or easing toward it
	GestureDragging                     // a drag session is live; the host feeds deltas
)

// GestureOutcome classifies how a completed drag resolved.
type GestureOutcome uint8

const (
	OutcomeStay    GestureOutcome = iota // snap back to the current page
	OutcomeAdvance                       // commit to the next page
	OutcomeRetreat                       // commit to the previous page
)

// lerp linearly interpolates between a and b.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// absInt returns the absolute value of an int.
func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
