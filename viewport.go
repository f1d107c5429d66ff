package sortable

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds an active scroll-to tween.
type scrollAnim struct {
	tween *gween.Tween
}

// Viewport is the scrolling window onto the scene's document. Document
// coordinates are layout coordinates; viewport coordinates are what the
// pointer reports and what BoundingRect returns.
type Viewport struct {
	// ScrollX and ScrollY are the document offsets shown at the viewport's
	// top-left corner.
	ScrollX, ScrollY float64
	// Width and Height are the viewport size in pixels.
	Width, Height float64
	// ScrollStep is the distance one wheel notch scrolls.
	ScrollStep float64

	contentHeight float64
	scrollTween   *scrollAnim
}

func newViewport() *Viewport {
	return &Viewport{ScrollStep: 40}
}

// DocumentToViewport converts document coordinates to viewport coordinates.
func (v *Viewport) DocumentToViewport(dx, dy float64) (float64, float64) {
	return dx - v.ScrollX, dy - v.ScrollY
}

// ViewportToDocument converts viewport coordinates to document coordinates.
func (v *Viewport) ViewportToDocument(vx, vy float64) (float64, float64) {
	return vx + v.ScrollX, vy + v.ScrollY
}

// MaxScroll returns the largest valid ScrollY for the current content.
// A viewport without a height cannot scroll.
func (v *Viewport) MaxScroll() float64 {
	if v.Height <= 0 {
		return 0
	}
	return math.Max(0, v.contentHeight-v.Height)
}

// ScrollBy moves the viewport by dy and clamps it to the content.
// Returns true if the offset changed.
func (v *Viewport) ScrollBy(dy float64) bool {
	return v.setScrollY(v.ScrollY + dy)
}

// ScrollTo animates the viewport to the given vertical offset over duration
// seconds.
func (v *Viewport) ScrollTo(y float64, duration float32, easeFn ease.TweenFunc) {
	if easeFn == nil {
		easeFn = ease.OutCubic
	}
	v.scrollTween = &scrollAnim{
		tween: gween.New(float32(v.ScrollY), float32(y), duration, easeFn),
	}
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (v *Viewport) Scrolling() bool {
	return v.scrollTween != nil
}

func (v *Viewport) setScrollY(y float64) bool {
	y = math.Max(0, math.Min(y, v.MaxScroll()))
	if y == v.ScrollY {
		return false
	}
	v.ScrollY = y
	return true
}

// update advances a pending ScrollTo. Returns true if the offset changed.
func (v *Viewport) update(dt float32) bool {
	if v.scrollTween == nil {
		return false
	}
	val, done := v.scrollTween.tween.Update(dt)
	if done {
		v.scrollTween = nil
	}
	return v.setScrollY(float64(val))
}
