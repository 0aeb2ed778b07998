package motion

import "math"

// TransitionStyle selects how a Pager arranges its pages while swiping.
// Chosen once per container.
type TransitionStyle uint8

const (
	TransitionSlide    TransitionStyle = iota // pages ride side by side (default)
	TransitionFade                            // pages slide and dim as they leave center
	TransitionZoom                            // departing pages shrink and fade
	TransitionFlip                            // pages flip in place around their vertical center
	TransitionCube                            // pages turn like faces of a cube
	TransitionCards                           // departing pages linger beneath like a card deck
	TransitionParallax                        // pages lag the finger under a darkening scrim
	TransitionReveal                          // the outgoing page is clipped away, uncovering the next
	TransitionPush                            // the outgoing page is pushed back and dimmed
	TransitionModal                           // pages rise from the bottom like sheets
	TransitionBook                            // pages turn like leaves of a book
	TransitionCarousel                        // pages sweep along an arc, angled toward center
)

var transitionNames = [...]string{
	"slide", "fade", "zoom", "flip", "cube", "cards",
	"parallax", "reveal", "push", "modal", "book", "carousel",
}

// String returns the style's lowercase name.
func (s TransitionStyle) String() string {
	if int(s) < len(transitionNames) {
		return transitionNames[s]
	}
	return "unknown"
}

// Transform is the visual arrangement of one page for one frame: where it
// sits, how it is scaled, rotated, faded, stacked, and clipped. Produced
// fresh per evaluation and applied immediately by the host's render layer;
// never retained across frames.
type Transform struct {
	// TranslateX and TranslateY displace the page in pixels.
	TranslateX float64
	TranslateY float64
	// Scale is the uniform scale factor about the page center.
	Scale float64
	// RotationDeg is the rotation around Axis in degrees, pivoting on Anchor.
	RotationDeg float64
	// Axis is the rotation axis; zero when the style performs no rotation.
	Axis Axis
	// Anchor is the vertical line the rotation pivots around.
	Anchor Anchor
	// Opacity is the page's alpha in [0, 1].
	Opacity float64
	// OverlayAlpha is the darkness of the scrim the host draws over the
	// page, in [0, 1]. 0 means no scrim.
	OverlayAlpha float64
	// ZOrder is the stacking order; lower values draw further back.
	ZOrder int
	// ClipWidth is the visible width in pixels when HasClip is set.
	ClipWidth float64
	HasClip   bool
}

// Identity is the transform of a page sitting exactly centered: no motion,
// full opacity, no scrim, no clip.
var Identity = Transform{Scale: 1, Opacity: 1}

// ComputeTransform maps a page's normalized offset to its visual transform
// under the given style. n is the normalized offset (0 = centered, ±1 =
// fully off-screen adjacent), indexDelta is pageIndex − currentPage, and
// size is the container's measured size. Pure: identical inputs always
// produce the identical record.
//
// Opacity and OverlayAlpha are clamped into [0, 1] on the way out; unknown
// styles behave as TransitionSlide.
func ComputeTransform(style TransitionStyle, n float64, indexDelta int, size Size) Transform {
	offset := n * size.Width

	var t Transform
	switch style {
	case TransitionSlide:
		t = slideTransform(offset)
	case TransitionFade:
		t = fadeTransform(n, offset)
	case TransitionZoom:
		t = zoomTransform(n, offset)
	case TransitionFlip:
		t = flipTransform(n)
	case TransitionCube:
		t = cubeTransform(n)
	case TransitionCards:
		t = cardsTransform(n, offset, indexDelta)
	case TransitionParallax:
		t = parallaxTransform(n, offset)
	case TransitionReveal:
		t = revealTransform(n, offset, size.Width)
	case TransitionPush:
		t = pushTransform(n, offset)
	case TransitionModal:
		t = modalTransform(n, size.Height)
	case TransitionBook:
		t = bookTransform(n, indexDelta)
	case TransitionCarousel:
		t = carouselTransform(n, offset)
	default:
		t = slideTransform(offset)
	}

	t.Opacity = clamp01(t.Opacity)
	t.OverlayAlpha = clamp01(t.OverlayAlpha)
	return t
}

// --- Style formulas ---
//
// The numeric factors below are tuned values carried over from the original
// designs, not derived quantities.

func slideTransform(offset float64) Transform {
	t := Identity
	t.TranslateX = offset
	return t
}

func fadeTransform(n, offset float64) Transform {
	t := Identity
	t.TranslateX = offset
	t.Opacity = math.Max(0, 1-math.Abs(n)*0.5)
	return t
}

func zoomTransform(n, offset float64) Transform {
	t := Identity
	t.TranslateX = offset
	t.Scale = math.Max(0.8, 1-math.Abs(n)*0.2)
	t.Opacity = 1 - math.Abs(n)*0.3
	return t
}

func flipTransform(n float64) Transform {
	t := Identity
	t.RotationDeg = n * 90
	t.Axis = AxisY
	// Past the profile view the page shows its back; hide it.
	if math.Abs(t.RotationDeg) > 89 {
		t.Opacity = 0
	}
	return t
}

func cubeTransform(n float64) Transform {
	t := Identity
	t.RotationDeg = -n * 90
	t.Axis = AxisY
	if n < 0 {
		t.Anchor = AnchorTrailing
	} else {
		t.Anchor = AnchorLeading
	}
	if math.Abs(n) > 1 {
		t.Opacity = 0
	}
	return t
}

func cardsTransform(n, offset float64, indexDelta int) Transform {
	t := Identity
	t.Scale = math.Max(0.9, 1-math.Abs(n)*0.1)
	if n > 0 {
		t.TranslateX = offset
	} else {
		t.TranslateX = offset * 0.3
	}
	t.TranslateY = math.Abs(n) * 20
	t.ZOrder = -absInt(indexDelta)
	return t
}

func parallaxTransform(n, offset float64) Transform {
	t := Identity
	t.TranslateX = offset * 0.7
	t.OverlayAlpha = math.Abs(n) * 0.3
	return t
}

func revealTransform(n, offset, width float64) Transform {
	t := Identity
	t.ClipWidth = math.Max(0, width*(1-math.Abs(n)))
	t.HasClip = true
	if n > 0 {
		t.TranslateX = offset
	}
	return t
}

func pushTransform(n, offset float64) Transform {
	t := Identity
	if n < 0 {
		t.TranslateX = offset
	} else {
		t.Scale = math.Max(0.9, 1-n*0.1)
		t.TranslateX = offset * 0.3
	}
	t.OverlayAlpha = math.Max(0, n) * 0.2
	return t
}

func modalTransform(n, height float64) Transform {
	t := Identity
	t.TranslateY = math.Max(0, n) * height * 0.5
	if n < 0 {
		t.Scale = math.Max(0.95, 1+n*0.05)
		t.Opacity = 1 - math.Abs(n)*0.3
	}
	return t
}

func bookTransform(n float64, indexDelta int) Transform {
	t := Identity
	t.RotationDeg = clamp(n*180, -180, 0)
	t.Axis = AxisY
	if indexDelta <= 0 {
		t.Anchor = AnchorTrailing
	} else {
		t.Anchor = AnchorLeading
	}
	// Only the front face of a turning leaf is drawn.
	if t.RotationDeg < -90 || t.RotationDeg > 0 {
		t.Opacity = 0
	}
	t.ZOrder = -absInt(indexDelta)
	return t
}

func carouselTransform(n, offset float64) Transform {
	t := Identity
	t.RotationDeg = n * 45
	t.Axis = AxisY
	t.TranslateX = offset * 0.8
	t.Scale = math.Max(0.8, 1-math.Abs(n)*0.2)
	if math.Abs(n) <= 2 {
		t.Opacity = 1 - math.Abs(n)*0.3
	} else {
		t.Opacity = 0
	}
	return t
}

// --- Helpers ---

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
