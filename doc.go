// Package motion is a library of declarative view-animation helpers for
// [Ebitengine] UIs: a gesture-driven page-transition container with twelve
// visual styles, plus springs, keyframe tracks, phase animators, effect
// presets, and matched-geometry "hero" flights.
//
// The package computes values; the host renders them. Nothing here owns a
// frame loop or touches the screen. Hosts feed layout sizes and gesture
// translations in, call Update once per frame with the elapsed time, and
// apply the plain records that come back.
//
// # Paging
//
// A [Pager] turns drag gestures into page transitions. The host reports the
// drag; the pager answers with a per-page [Transform]:
//
//	pager := motion.NewPager(motion.TransitionCube, 5, motion.PagerConfig{})
//	pager.Layout(640, 480)
//
//	// each frame:
//	pager.Update(dt)
//	for i := 0; i < pager.PageCount(); i++ {
//		if !pager.Visible(i) {
//			continue
//		}
//		t := pager.Transform(i)
//		op := &ebiten.DrawImageOptions{}
//		t.Apply(op, 640, 480)
//		// draw page i with op, honoring t.ZOrder and t.ClipRect
//	}
//
//	// from the host's gesture recognizer:
//	pager.BeginDrag()
//	pager.DragBy(dx)
//	pager.EndDrag(predictedEndX)
//
// The twelve [TransitionStyle] values cover slide, fade, zoom, flip, cube,
// cards, parallax, reveal, push, modal, book, and carousel arrangements.
//
// # Animation helpers
//
// [Track] eases a float through ordered [Keyframe] segments (backed by
// [gween]). [SpringSolver] integrates spring physics (backed by
// [harmonica]) with [Spring] presets like [SpringBouncy]. [PhaseAnimator]
// steps through discrete visual phases on trigger. [ShakeTrack],
// [SpinTrack], [SwingTrack], and [PulseTrack] prebuild the common attention
// effects. [HeroRegistry] and [HeroFlight] animate a shared element between
// view states by identifier.
//
// Track, spring, and phase presets can also be declared in YAML and loaded
// with [LoadPresets].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [harmonica]: https://github.com/charmbracelet/harmonica
package motion
