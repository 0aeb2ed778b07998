package motion

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Pager defaults, applied by NewPager when the config leaves them zero.
const (
	defaultSettleDuration = 0.35 // seconds
	defaultVisibleRange   = 2    // pages either side of current
)

// PagerConfig tunes a Pager. Zero values select the documented defaults.
type PagerConfig struct {
	// SettleDuration is how long the eased catch-up to the committed page
	// takes after a gesture ends, in seconds. Default 0.35.
	SettleDuration float32
	// SettleEase is the easing curve for the catch-up. Default ease.OutCubic.
	SettleEase ease.TweenFunc
	// CommitFraction is the fraction of container width the predicted end
	// translation must cross to change pages. Default 0.25.
	CommitFraction float64
	// EdgeResistance scales drag movement past the first or last page
	// (the rubber-band feel). Default 0.3.
	EdgeResistance float64
	// VisibleRange is how many pages either side of the current page
	// Visible reports as worth evaluating. Default 2.
	VisibleRange int
}

// Pager drives a page-transition container. It owns the committed page
// index, the live drag session, and the post-gesture settle animation, and
// computes every page's Transform per frame. The host owns rendering,
// layout, and input: it feeds measured sizes and drag translations in and
// applies the transforms that come back.
//
// There is no global animation manager; hosts call Update each frame.
// A Pager expects a single drag session at a time, driven from the host's
// update loop, and performs no locking of its own.
type Pager struct {
	style     TransitionStyle
	pageCount int
	config    PagerConfig

	current int
	state   GestureState
	offset  float64 // live horizontal translation in pixels, 0 when at rest
	size    Size

	settle *gween.Tween
}

// NewPager creates a pager over pageCount pages using the given transition
// style. A page count below one is treated as one.
func NewPager(style TransitionStyle, pageCount int, cfg PagerConfig) *Pager {
	if pageCount < 1 {
		pageCount = 1
	}
	if cfg.SettleDuration <= 0 {
		cfg.SettleDuration = defaultSettleDuration
	}
	if cfg.SettleEase == nil {
		cfg.SettleEase = ease.OutCubic
	}
	if cfg.CommitFraction <= 0 {
		cfg.CommitFraction = defaultCommitFraction
	}
	if cfg.EdgeResistance <= 0 {
		cfg.EdgeResistance = defaultEdgeResistance
	}
	if cfg.VisibleRange <= 0 {
		cfg.VisibleRange = defaultVisibleRange
	}
	return &Pager{style: style, pageCount: pageCount, config: cfg}
}

// Layout records the container's measured size. Call whenever the host's
// layout pass resizes the container. Until a positive size arrives,
// Transform yields Identity for every page.
func (p *Pager) Layout(width, height float64) {
	p.size = Size{Width: width, Height: height}
}

// --- Drag session ---

// BeginDrag opens a drag session. An in-flight settle animation is cancelled
// and its current offset carries into the session, so grabbing a settling
// page never jumps.
func (p *Pager) BeginDrag() {
	p.settle = nil
	p.state = GestureDragging
}

// DragBy advances the live drag by dx pixels. Movement past the first or
// last page is scaled by EdgeResistance. Ignored outside a drag session.
func (p *Pager) DragBy(dx float64) {
	if p.state != GestureDragging {
		return
	}
	if p.pastEdge(p.offset + dx) {
		dx *= p.config.EdgeResistance
	}
	p.offset += dx
}

// DragTo sets the live drag to an absolute translation, for hosts whose
// gesture recognizers report total translation rather than deltas. An
// out-of-range translation is scaled by EdgeResistance as a whole.
func (p *Pager) DragTo(offset float64) {
	if p.state != GestureDragging {
		return
	}
	if p.pastEdge(offset) {
		offset *= p.config.EdgeResistance
	}
	p.offset = offset
}

// pastEdge reports whether the given offset would pull past the first or
// last page.
func (p *Pager) pastEdge(offset float64) bool {
	return (p.current == 0 && offset > 0) ||
		(p.current == p.pageCount-1 && offset < 0)
}

// EndDrag closes the drag session and commits the gesture. predictedX is the
// projected end translation from the host's velocity tracker; hosts without
// velocity data pass the final translation itself. The committed page index
// is applied immediately and the visual offset catches up with an eased,
// time-bounded settle driven by Update.
func (p *Pager) EndDrag(predictedX float64) GestureOutcome {
	if p.state != GestureDragging {
		return OutcomeStay
	}
	threshold := p.size.Width * p.config.CommitFraction
	next, outcome := resolveWithThreshold(predictedX, threshold, p.current, p.pageCount)
	p.commit(next)
	return outcome
}

// commit applies a page change, rebases the live offset so the visual
// position stays continuous across the index change, and starts the settle
// tween toward 0.
func (p *Pager) commit(next int) {
	p.offset += float64(next-p.current) * p.size.Width
	p.current = next
	p.state = GestureSettled
	p.settle = gween.New(float32(p.offset), 0, p.config.SettleDuration, p.config.SettleEase)
}

// --- Per-frame evaluation ---

// Update advances the settle animation by dt seconds. Safe to call every
// frame in any state; it is a no-op while dragging or at rest.
func (p *Pager) Update(dt float32) {
	if p.settle == nil {
		return
	}
	v, done := p.settle.Update(dt)
	p.offset = float64(v)
	if done {
		p.offset = 0
		p.settle = nil
	}
}

// Transform computes the visual transform for pageIndex this frame. While
// the container size is degenerate (width or height <= 0) the result is
// Identity: the frame is skipped rather than divided by zero.
func (p *Pager) Transform(pageIndex int) Transform {
	if p.size.Width <= 0 || p.size.Height <= 0 {
		return Identity
	}
	offset := ComputeOffset(pageIndex, p.current, p.size.Width, p.offset)
	n := NormalizedOffset(offset, p.size.Width)
	return ComputeTransform(p.style, n, pageIndex-p.current, p.size)
}

// Visible reports whether pageIndex falls inside the evaluation window
// around the current page. Hosts use it to skip building draw state for
// far-off pages.
func (p *Pager) Visible(pageIndex int) bool {
	if pageIndex < 0 || pageIndex >= p.pageCount {
		return false
	}
	return absInt(pageIndex-p.current) <= p.config.VisibleRange
}

// --- Navigation and accessors ---

// SetPage navigates to page i with the same eased catch-up a completed
// gesture uses. The index is clamped to [0, PageCount−1]. Ignored while a
// drag session is live.
func (p *Pager) SetPage(i int) {
	if p.state == GestureDragging {
		return
	}
	if i < 0 {
		i = 0
	}
	if i > p.pageCount-1 {
		i = p.pageCount - 1
	}
	if i == p.current && p.settle == nil && p.offset == 0 {
		return
	}
	p.commit(i)
}

// Page returns the committed page index.
func (p *Pager) Page() int { return p.current }

// PageCount returns the number of pages.
func (p *Pager) PageCount() int { return p.pageCount }

// Style returns the pager's transition style.
func (p *Pager) Style() TransitionStyle { return p.style }

// State returns the drag session state.
func (p *Pager) State() GestureState { return p.state }

// Offset returns the live horizontal translation in pixels: the drag
// translation while dragging, the remaining settle distance afterwards,
// and 0 at rest.
func (p *Pager) Offset() float64 { return p.offset }

// Settling reports whether the post-gesture catch-up is still running.
func (p *Pager) Settling() bool { return p.settle != nil }

// Position returns the fractional page position for indicators: the
// committed page while at rest, and in-between values while dragging or
// settling. Falls back to the committed page while the size is degenerate.
func (p *Pager) Position() float64 {
	if p.size.Width <= 0 {
		return float64(p.current)
	}
	return float64(p.current) - p.offset/p.size.Width
}
