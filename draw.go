package motion

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Apply writes the transform into op for a page image of pageW×pageH pixels
// whose untransformed position is the container's top-left. The host stays
// in charge of the draw call itself, of drawing a scrim when ScrimAlpha is
// nonzero, and of sub-imaging when HasClip is set.
//
// Composition order: Y-axis foreshortening about the anchor line, then
// scale about the page center, then translation.
func (t Transform) Apply(op *ebiten.DrawImageOptions, pageW, pageH float64) {
	if t.RotationDeg != 0 && t.Axis.Y != 0 {
		// A rotation around the vertical axis projects onto the 2D plane
		// as a horizontal squash by cos θ toward the anchor line.
		ax := anchorX(t.Anchor, pageW)
		cos := math.Cos(t.RotationDeg * math.Pi / 180)
		op.GeoM.Translate(-ax, 0)
		op.GeoM.Scale(cos, 1)
		op.GeoM.Translate(ax, 0)
	}
	if t.Scale != 1 {
		op.GeoM.Translate(-pageW/2, -pageH/2)
		op.GeoM.Scale(t.Scale, t.Scale)
		op.GeoM.Translate(pageW/2, pageH/2)
	}
	op.GeoM.Translate(t.TranslateX, t.TranslateY)
	op.ColorScale.ScaleAlpha(float32(t.Opacity))
}

// anchorX returns the pivot line's x position within a page of width w.
func anchorX(a Anchor, w float64) float64 {
	switch a {
	case AnchorLeading:
		return 0
	case AnchorTrailing:
		return w
	default:
		return w / 2
	}
}

// ClipRect returns the source sub-rectangle to draw when the transform
// clips the page, clamped to the page bounds. The full page rect when no
// clip applies.
func (t Transform) ClipRect(pageW, pageH float64) image.Rectangle {
	if !t.HasClip {
		return image.Rect(0, 0, int(pageW), int(pageH))
	}
	w := clamp(t.ClipWidth, 0, pageW)
	return image.Rect(0, 0, int(w), int(pageH))
}

// ScrimAlpha returns the darkness of the overlay the host should draw over
// the page, in [0, 1]. 0 means no scrim.
func (t Transform) ScrimAlpha() float64 { return t.OverlayAlpha }
