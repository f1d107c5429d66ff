package sortable

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint.
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA premultiplies c for image.Fill.
func toRGBA(c Color) color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions, offsets and pointer coordinates.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Top returns the top edge.
func (r Rect) Top() float64 { return r.Y }

// Left returns the left edge.
func (r Rect) Left() float64 { return r.X }

// Bottom returns the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Right returns the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Offset returns r translated by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// EventType identifies a kind of interaction event.
type EventType uint8

const (
	EventPointerDown    EventType = iota // fires when a pointer button is pressed
	EventPointerUp                       // fires when a pointer button is released
	EventPointerMove                     // fires when the pointer moves, pressed or not
	EventPointerLeave                    // fires when the pointer leaves a node or the window
	EventScroll                          // fires when the viewport scroll offset changes
	EventReorderStart                    // a drag gesture picked up an item
	EventReorderChanged                  // a drag gesture committed a new order
	EventReorderEnd                      // a drag gesture finished resolving
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

func (b MouseButton) ebiten() ebiten.MouseButton {
	switch b {
	case MouseButtonRight:
		return ebiten.MouseButtonRight
	case MouseButtonMiddle:
		return ebiten.MouseButtonMiddle
	default:
		return ebiten.MouseButtonLeft
	}
}

// Layout selects how a node arranges its in-flow children.
type Layout uint8

const (
	LayoutNone  Layout = iota // children keep their own X/Y
	LayoutStack               // children stacked top to bottom, separated by Gap
	LayoutRow                 // children placed left to right, separated by Gap
	LayoutTable               // stacked rows whose cells share column widths
)

// Position mirrors the inline positioning modes a dragged list needs.
type Position uint8

const (
	PositionStatic   Position = iota // in flow, no offset
	PositionRelative                 // in flow, TranslateY applied visually
	PositionFixed                    // out of flow, placed at Left/Top in viewport coordinates
)
