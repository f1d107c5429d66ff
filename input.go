package sortable

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// --- Contexts ---

// PointerContext carries pointer event data. X and Y are viewport
// coordinates.
type PointerContext struct {
	Node      *Node
	EntityID  uint32
	UserData  any
	X, Y      float64
	Button    MouseButton
	PointerID int

	// Related and To are set on EventPointerLeave: the node the pointer moved
	// onto, or the scene root when it left the window entirely.
	Related *Node
	To      *Node
}

// ScrollContext carries viewport scroll data.
type ScrollContext struct {
	ScrollX, ScrollY float64
}

// --- Per-pointer state ---

type pointerState struct {
	down      bool
	lastX     float64
	lastY     float64
	hitNode   *Node
	hoverNode *Node       // last node the pointer was hovering over (for leave)
	button    MouseButton // button captured at press time
}

// --- Handler registry ---

type handler[F any] struct {
	id uint32
	fn F
}

type handlerRegistry struct {
	pointerDown  []handler[func(PointerContext)]
	pointerUp    []handler[func(PointerContext)]
	pointerMove  []handler[func(PointerContext)]
	pointerLeave []handler[func(PointerContext)]
	scroll       []handler[func(ScrollContext)]
	update       []handler[func(float32)]
	nextID       uint32
}

// CallbackHandle allows removing a registered scene-level callback.
type CallbackHandle struct {
	id     uint32
	remove func(id uint32)
}

// Remove unregisters this callback so it no longer fires. Removing twice or
// removing the zero handle is a no-op.
func (h CallbackHandle) Remove() {
	if h.remove == nil {
		return
	}
	h.remove(h.id)
}

// removeHandler returns s without the entry for id. It builds a new slice
// rather than shifting in place because handlers may unregister themselves
// while the old slice is being dispatched.
func removeHandler[F any](s []handler[F], id uint32) []handler[F] {
	for i := range s {
		if s[i].id == id {
			out := make([]handler[F], 0, len(s)-1)
			out = append(out, s[:i]...)
			return append(out, s[i+1:]...)
		}
	}
	return s
}

func register[F any](nextID *uint32, list *[]handler[F], fn F) CallbackHandle {
	*nextID++
	id := *nextID
	*list = append(*list, handler[F]{id: id, fn: fn})
	return CallbackHandle{id: id, remove: func(id uint32) {
		*list = removeHandler(*list, id)
	}}
}

// --- Scene-level event registration ---

// OnPointerDown registers a scene-level callback for pointer down events.
func (s *Scene) OnPointerDown(fn func(PointerContext)) CallbackHandle {
	return register(&s.handlers.nextID, &s.handlers.pointerDown, fn)
}

// OnPointerUp registers a scene-level callback for pointer up events.
func (s *Scene) OnPointerUp(fn func(PointerContext)) CallbackHandle {
	return register(&s.handlers.nextID, &s.handlers.pointerUp, fn)
}

// OnPointerMove registers a scene-level callback for pointer move events.
// Fires for hover and pressed movement alike.
func (s *Scene) OnPointerMove(fn func(PointerContext)) CallbackHandle {
	return register(&s.handlers.nextID, &s.handlers.pointerMove, fn)
}

// OnPointerLeave registers a scene-level callback fired when the pointer
// leaves the node it hovered, including leaving the window.
func (s *Scene) OnPointerLeave(fn func(PointerContext)) CallbackHandle {
	return register(&s.handlers.nextID, &s.handlers.pointerLeave, fn)
}

// OnScroll registers a callback fired after the viewport scroll offset
// changes.
func (s *Scene) OnScroll(fn func(ScrollContext)) CallbackHandle {
	return register(&s.handlers.nextID, &s.handlers.scroll, fn)
}

// OnUpdate registers a callback run once per frame, after input and
// transitions, with the frame's delta time in seconds.
func (s *Scene) OnUpdate(fn func(dt float32)) CallbackHandle {
	return register(&s.handlers.nextID, &s.handlers.update, fn)
}

// CapturePointer routes all events for pointerID to the given node and
// suppresses hover tracking until released.
func (s *Scene) CapturePointer(pointerID int, node *Node) {
	if pointerID >= 0 && pointerID < maxPointers {
		s.captured[pointerID] = node
	}
}

// ReleasePointer stops routing events for pointerID to a captured node.
func (s *Scene) ReleasePointer(pointerID int) {
	if pointerID >= 0 && pointerID < maxPointers {
		s.captured[pointerID] = nil
	}
}

// --- Hit testing ---

type hitEntry struct {
	node *Node
	z    int
}

// collectInteractable walks the tree in document order, appending hit-testable
// nodes. Skips invisible, non-interactable or pointer-events-disabled subtrees.
func (s *Scene) collectInteractable(n *Node, z int, buf []hitEntry) []hitEntry {
	if !n.Visible || !n.Interactable || !n.PointerEvents {
		return buf
	}
	if n.ZIndex > z {
		z = n.ZIndex
	}
	if n != s.root && n.box.Width > 0 && n.box.Height > 0 {
		buf = append(buf, hitEntry{node: n, z: z})
	}
	for _, c := range n.children {
		buf = s.collectInteractable(c, z, buf)
	}
	return buf
}

// hitTest finds the topmost interactable node at viewport point (x, y).
// Higher ZIndex wins; among equals, later document order (deeper, later
// siblings) wins. Returns nil if nothing is hit.
func (s *Scene) hitTest(x, y float64) *Node {
	s.hitBuf = s.collectInteractable(s.root, 0, s.hitBuf[:0])
	sort.SliceStable(s.hitBuf, func(i, j int) bool {
		return s.hitBuf[i].z < s.hitBuf[j].z
	})
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		n := s.hitBuf[i].node
		if s.BoundingRect(n).Contains(x, y) {
			return n
		}
	}
	return nil
}

// --- Input polling ---

// pollInput reads mouse, wheel and touch state from ebiten.
func (s *Scene) pollInput() {
	s.pollMouse()
	s.pollWheel()
	s.pollTouches()
}

// pollMouse handles mouse input (pointer 0) and window leave detection.
func (s *Scene) pollMouse() {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)

	vp := s.viewport
	inside := vp.Width <= 0 || (x >= 0 && y >= 0 && x < vp.Width && y < vp.Height)
	if !inside {
		if !s.outside {
			s.outside = true
			s.processLeaveWindow(0)
		}
		return
	}
	s.outside = false

	// If the pointer is already down, keep the stored button so it cannot
	// change mid-interaction.
	var pressed bool
	var button MouseButton
	for _, b := range []MouseButton{MouseButtonLeft, MouseButtonRight, MouseButtonMiddle} {
		if ebiten.IsMouseButtonPressed(b.ebiten()) {
			pressed = true
			button = b
			break
		}
	}
	s.processPointer(0, x, y, pressed, button)
}

// pollWheel scrolls the viewport by the wheel delta.
func (s *Scene) pollWheel() {
	_, dy := ebiten.Wheel()
	if dy == 0 {
		return
	}
	s.scrollBy(-dy * s.viewport.ScrollStep)
}

// pollTouches handles touch input (pointers 1-9).
func (s *Scene) pollTouches() {
	touchIDs := ebiten.AppendTouchIDs(s.prevTouchIDs[:0])
	s.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := s.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		s.processPointer(slot, float64(tx), float64(ty), true, MouseButtonLeft)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && !activeSlots[i] {
			ps := &s.pointers[i]
			if ps.down {
				s.processPointer(i, ps.lastX, ps.lastY, false, MouseButtonLeft)
			}
			s.touchUsed[i] = false
			s.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (s *Scene) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && s.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !s.touchUsed[i] {
			s.touchUsed[i] = true
			s.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// --- Input processing ---

// processPointer runs the pointer state machine for a single pointer at
// viewport coordinates (x, y).
func (s *Scene) processPointer(pointerID int, x, y float64, pressed bool, button MouseButton) {
	ps := &s.pointers[pointerID]

	target := s.captured[pointerID]
	if target == nil {
		target = s.hitTest(x, y)
		if target != ps.hoverNode {
			if ps.hoverNode != nil {
				s.firePointerLeave(ps.hoverNode, pointerID, x, y, target, target)
			}
			ps.hoverNode = target
		}
	}

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.button = button
		ps.lastX, ps.lastY = x, y
		ps.hitNode = target
		s.firePointer(EventPointerDown, s.handlers.pointerDown, target, pointerID, x, y, button)
	case !pressed && ps.down:
		s.firePointer(EventPointerUp, s.handlers.pointerUp, target, pointerID, x, y, ps.button)
		s.captured[pointerID] = nil
		ps.down = false
		ps.hitNode = nil
		ps.lastX, ps.lastY = x, y
	default:
		if x != ps.lastX || y != ps.lastY {
			b := button
			if ps.down {
				b = ps.button
			}
			s.firePointer(EventPointerMove, s.handlers.pointerMove, target, pointerID, x, y, b)
			ps.lastX, ps.lastY = x, y
		}
	}
}

// processLeaveWindow reports that the pointer left the window: a leave event
// whose related and destination nodes are both the scene root.
func (s *Scene) processLeaveWindow(pointerID int) {
	ps := &s.pointers[pointerID]
	s.firePointerLeave(ps.hoverNode, pointerID, ps.lastX, ps.lastY, s.root, s.root)
	ps.hoverNode = nil
}

// scrollBy scrolls the viewport and fires scroll handlers if it moved.
func (s *Scene) scrollBy(dy float64) {
	if s.viewport.ScrollBy(dy) {
		s.fireScroll()
	}
}

// --- Event dispatch ---

func (s *Scene) firePointer(typ EventType, hs []handler[func(PointerContext)], node *Node, pointerID int, x, y float64, button MouseButton) {
	ctx := PointerContext{Node: node, X: x, Y: y, Button: button, PointerID: pointerID}
	if node != nil {
		ctx.EntityID = node.EntityID
		ctx.UserData = node.UserData
	}
	for _, h := range hs {
		h.fn(ctx)
	}
	if typ != EventPointerMove && node != nil && node.EntityID != 0 {
		s.emit(InteractionEvent{Type: typ, EntityID: node.EntityID, X: x, Y: y, Button: button})
	}
}

func (s *Scene) firePointerLeave(node *Node, pointerID int, x, y float64, related, to *Node) {
	ctx := PointerContext{Node: node, X: x, Y: y, PointerID: pointerID, Related: related, To: to}
	if node != nil {
		ctx.EntityID = node.EntityID
		ctx.UserData = node.UserData
	}
	for _, h := range s.handlers.pointerLeave {
		h.fn(ctx)
	}
	if node != nil && node.EntityID != 0 {
		s.emit(InteractionEvent{Type: EventPointerLeave, EntityID: node.EntityID, X: x, Y: y})
	}
}

func (s *Scene) fireScroll() {
	ctx := ScrollContext{ScrollX: s.viewport.ScrollX, ScrollY: s.viewport.ScrollY}
	for _, h := range s.handlers.scroll {
		h.fn(ctx)
	}
	s.emit(InteractionEvent{Type: EventScroll, X: ctx.ScrollX, Y: ctx.ScrollY})
}
