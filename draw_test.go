package motion

import (
	"image"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestTransformApplyIdentity(t *testing.T) {
	op := &ebiten.DrawImageOptions{}
	Identity.Apply(op, 320, 480)

	x, y := op.GeoM.Apply(25, 40)
	if !approxEqual(x, 25, epsilon) || !approxEqual(y, 40, epsilon) {
		t.Errorf("identity moved (25, 40) to (%v, %v)", x, y)
	}
	if a := op.ColorScale.A(); a != 1 {
		t.Errorf("alpha scale = %v, want 1", a)
	}
}

func TestTransformApplyTranslation(t *testing.T) {
	tr := Identity
	tr.TranslateX = 120
	tr.TranslateY = -35
	op := &ebiten.DrawImageOptions{}
	tr.Apply(op, 320, 480)

	x, y := op.GeoM.Apply(0, 0)
	if !approxEqual(x, 120, epsilon) || !approxEqual(y, -35, epsilon) {
		t.Errorf("origin moved to (%v, %v), want (120, -35)", x, y)
	}
}

func TestTransformApplyScaleAboutPageCenter(t *testing.T) {
	tr := Identity
	tr.Scale = 0.5
	op := &ebiten.DrawImageOptions{}
	tr.Apply(op, 100, 200)

	// The page center stays put; corners move halfway toward it.
	cx, cy := op.GeoM.Apply(50, 100)
	if !approxEqual(cx, 50, epsilon) || !approxEqual(cy, 100, epsilon) {
		t.Errorf("center moved to (%v, %v), want (50, 100)", cx, cy)
	}
	x, y := op.GeoM.Apply(0, 0)
	if !approxEqual(x, 25, epsilon) || !approxEqual(y, 50, epsilon) {
		t.Errorf("corner moved to (%v, %v), want (25, 50)", x, y)
	}
}

func TestTransformApplyProfileRotationCollapses(t *testing.T) {
	tr := Identity
	tr.RotationDeg = 90
	tr.Axis = AxisY
	op := &ebiten.DrawImageOptions{}
	tr.Apply(op, 100, 200)

	// Seen edge-on, every x lands on the anchor line.
	for _, px := range []float64{0, 25, 100} {
		if x, _ := op.GeoM.Apply(px, 0); !approxEqual(x, 50, 1e-6) {
			t.Errorf("x(%v) = %v at 90 degrees, want ~50", px, x)
		}
	}
}

func TestTransformApplyAnchoredRotation(t *testing.T) {
	// cos(60) = 0.5 keeps the numbers readable.
	tr := Identity
	tr.RotationDeg = 60
	tr.Axis = AxisY
	tr.Anchor = AnchorLeading
	op := &ebiten.DrawImageOptions{}
	tr.Apply(op, 100, 200)

	if x, _ := op.GeoM.Apply(0, 0); !approxEqual(x, 0, 1e-6) {
		t.Errorf("leading anchor line moved to %v", x)
	}
	if x, _ := op.GeoM.Apply(100, 0); !approxEqual(x, 50, 1e-6) {
		t.Errorf("leading-anchored far edge = %v, want 50", x)
	}

	tr.Anchor = AnchorTrailing
	op = &ebiten.DrawImageOptions{}
	tr.Apply(op, 100, 200)

	if x, _ := op.GeoM.Apply(100, 0); !approxEqual(x, 100, 1e-6) {
		t.Errorf("trailing anchor line moved to %v", x)
	}
	if x, _ := op.GeoM.Apply(0, 0); !approxEqual(x, 50, 1e-6) {
		t.Errorf("trailing-anchored near edge = %v, want 50", x)
	}
}

func TestTransformApplyScaleThenTranslate(t *testing.T) {
	tr := Identity
	tr.Scale = 0.5
	tr.TranslateX = 100
	op := &ebiten.DrawImageOptions{}
	tr.Apply(op, 100, 100)

	// Scale about the center happens before displacement.
	x, y := op.GeoM.Apply(50, 50)
	if !approxEqual(x, 150, epsilon) || !approxEqual(y, 50, epsilon) {
		t.Errorf("center moved to (%v, %v), want (150, 50)", x, y)
	}
	x, y = op.GeoM.Apply(0, 0)
	if !approxEqual(x, 125, epsilon) || !approxEqual(y, 25, epsilon) {
		t.Errorf("corner moved to (%v, %v), want (125, 25)", x, y)
	}
}

func TestTransformApplyOpacity(t *testing.T) {
	tr := Identity
	tr.Opacity = 0.5
	op := &ebiten.DrawImageOptions{}
	tr.Apply(op, 100, 100)
	if a := float64(op.ColorScale.A()); !approxEqual(a, 0.5, 1e-6) {
		t.Errorf("alpha scale = %v, want 0.5", a)
	}
}

func TestClipRect(t *testing.T) {
	full := Identity
	if got := full.ClipRect(300, 500); got != image.Rect(0, 0, 300, 500) {
		t.Errorf("unclipped = %v, want full page", got)
	}

	clipped := Identity
	clipped.HasClip = true
	clipped.ClipWidth = 120
	if got := clipped.ClipRect(300, 500); got != image.Rect(0, 0, 120, 500) {
		t.Errorf("clipped = %v, want 120 wide", got)
	}

	clipped.ClipWidth = 900
	if got := clipped.ClipRect(300, 500); got != image.Rect(0, 0, 300, 500) {
		t.Errorf("clip wider than page = %v, want clamped to page", got)
	}

	clipped.ClipWidth = -40
	if got := clipped.ClipRect(300, 500); got != image.Rect(0, 0, 0, 500) {
		t.Errorf("negative clip = %v, want empty", got)
	}
}

func TestScrimAlpha(t *testing.T) {
	tr := ComputeTransform(TransitionParallax, 1, 1, Size{Width: 300, Height: 500})
	if !approxEqual(tr.ScrimAlpha(), 0.3, epsilon) {
		t.Errorf("ScrimAlpha = %v, want 0.3", tr.ScrimAlpha())
	}
	if Identity.ScrimAlpha() != 0 {
		t.Errorf("identity ScrimAlpha = %v, want 0", Identity.ScrimAlpha())
	}
}
