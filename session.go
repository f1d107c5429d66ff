package sortable

import (
	"log/slog"
	"math"

	"github.com/google/uuid"
)

type sessionState uint8

const (
	stateDragging sessionState = iota
	stateDropping
	stateAborting
	stateResolved
)

func (s sessionState) String() string {
	switch s {
	case stateDragging:
		return "dragging"
	case stateDropping:
		return "dropping"
	case stateAborting:
		return "aborting"
	default:
		return "resolved"
	}
}

// item is one undragged sibling, captured at gesture start.
type item struct {
	handle int  // index into session.nodes
	rect   Rect // captured once, viewport coordinates at start

	// top and bottom are rect's edges corrected for scrolling since start.
	top, bottom float64

	isMoved       bool
	shouldBeMoved bool

	initialPosition   float64
	displacedPosition float64
}

type listKind uint8

const (
	listNone listKind = iota
	listBefore
	listAfter
)

// candidate is a tentative insertion slot: above before[index], or below
// after[index].
type candidate struct {
	list  listKind
	index int
}

var noCandidate = candidate{list: listNone, index: -1}

// session is the state owned by one drag gesture, from press to settled
// resolution.
type session struct {
	id     string
	scene  *Scene
	logger *slog.Logger
	cfg    Config
	sel    Selector

	container *Node
	nodes     []*Node // every item in original order; item.handle indexes here

	dragged      *Node
	draggedRect  Rect
	draggedIndex int

	before []item
	after  []item

	dragOffset     Vec2
	displacement   float64
	hasMovedBefore bool
	startScroll    float64

	ghost         GhostHandler
	prevMinHeight float64
	suspended     []*Node
	candidate     candidate
	state         sessionState
}

// newSession snapshots the geometry of items (the live, ordered siblings
// matching the items selector) for a gesture on dragged, grabbed at viewport
// point (x, y).
func newSession(scene *Scene, cfg Config, sel Selector, dragged *Node, items []*Node, x, y float64) *session {
	s := &session{
		id:          uuid.NewString(),
		scene:       scene,
		cfg:         cfg,
		sel:         sel,
		container:   dragged.Parent,
		nodes:       append([]*Node(nil), items...),
		dragged:     dragged,
		draggedRect: scene.BoundingRect(dragged),
		startScroll: scene.viewport.ScrollY,
		candidate:   noCandidate,
	}
	s.logger = cfg.Logger.With(slog.String("session", s.id))

	s.draggedIndex = -1
	for i, n := range items {
		if n == dragged {
			s.draggedIndex = i
			break
		}
	}

	s.dragOffset = Vec2{X: x - s.draggedRect.Left(), Y: y - s.draggedRect.Top()}

	var margin float64
	if len(items) >= 2 {
		r0 := scene.BoundingRect(items[0])
		r1 := scene.BoundingRect(items[1])
		margin = math.Max(0, r1.Top()-r0.Bottom())
	}
	s.displacement = s.draggedRect.Height + margin

	for i, n := range items {
		if i == s.draggedIndex {
			continue
		}
		r := scene.BoundingRect(n)
		it := item{handle: i, rect: r, top: r.Top(), bottom: r.Bottom()}
		if i < s.draggedIndex {
			// Slides down to open a slot above itself.
			it.displacedPosition = s.displacement
			s.before = append(s.before, it)
		} else {
			// Rests shifted down over the hole the dragged item leaves in
			// the flow; activating it slides it up into that hole.
			it.initialPosition = s.displacement
			s.after = append(s.after, it)
		}
	}
	return s
}

func (s *session) node(it *item) *Node {
	return s.nodes[it.handle]
}

// start takes the dragged item out of flow and prepares the siblings.
func (s *session) start() {
	s.ghost = ghostFor(s.dragged)
	s.ghost.start(s.dragged)

	if c := s.container; c != nil {
		s.prevMinHeight = c.MinHeight
		c.MinHeight = c.box.Height
	}

	for i := range s.before {
		n := s.node(&s.before[i])
		n.Position = PositionRelative
		n.Transition = 0
	}
	for i := range s.after {
		it := &s.after[i]
		n := s.node(it)
		n.Position = PositionRelative
		n.Transition = 0
		n.SetTranslateY(it.initialPosition)
	}

	d := s.dragged
	d.Position = PositionFixed
	d.Left = s.draggedRect.Left()
	d.Top = s.draggedRect.Top()
	d.ZIndex = draggedZIndex
	d.AddClass(DraggingClass)

	s.suspended = setPointerEvents(s.scene.root, false, s.suspended[:0])

	s.logger.Debug("drag started", nodeAttr("item", d), slog.Int("index", s.draggedIndex),
		slog.Float64("displacement", s.displacement))
}

// onMove updates the preview for a pointer at viewport point (x, y).
func (s *session) onMove(x, y float64) {
	if s.state != stateDragging {
		return
	}
	if !s.hasMovedBefore {
		s.eachItem(func(it *item) {
			s.node(it).Transition = s.cfg.Transition
		})
		s.hasMovedBefore = true
	}

	left, top := x-s.dragOffset.X, y-s.dragOffset.Y
	c := s.findIntersection(s.center(left, top))
	s.activateList(c)

	s.dragged.Left = left
	s.dragged.Top = top

	s.updateMovementOfItems()
}

// center returns the dragged item's center point when its top-left corner is
// at (left, top).
func (s *session) center(left, top float64) (float64, float64) {
	return left + s.draggedRect.Width/2, top + s.draggedRect.Height/2
}

// pointerCenter is center for a pointer at (x, y).
func (s *session) pointerCenter(x, y float64) (float64, float64) {
	return s.center(x-s.dragOffset.X, y-s.dragOffset.Y)
}

// onScroll shifts every cached rect by the scroll distance since start.
// Geometry is not re-measured.
func (s *session) onScroll() {
	if s.state != stateDragging {
		return
	}
	delta := s.scrollDelta()
	s.eachItem(func(it *item) {
		it.top = it.rect.Top() - delta
		it.bottom = it.rect.Bottom() - delta
	})
}

func (s *session) scrollDelta() float64 {
	return s.scene.viewport.ScrollY - s.startScroll
}

// activateList sets shouldBeMoved on every item for candidate c. Before-items
// from the slot down slide down; after-items up to the slot slide up.
func (s *session) activateList(c candidate) {
	if c != s.candidate {
		s.logger.Debug("candidate changed", slog.Int("list", int(c.list)), slog.Int("index", c.index))
		s.candidate = c
	}
	for i := range s.before {
		s.before[i].shouldBeMoved = c.list == listBefore && i >= c.index
	}
	for i := range s.after {
		s.after[i].shouldBeMoved = c.list == listAfter && i <= c.index
	}
}

// updateMovementOfItems applies or removes the translation of every item
// whose isMoved flag disagrees with shouldBeMoved. Returns the number of
// items touched.
func (s *session) updateMovementOfItems() int {
	changed := 0
	s.eachItem(func(it *item) {
		if it.isMoved == it.shouldBeMoved {
			return
		}
		pos := it.initialPosition
		if it.shouldBeMoved {
			pos = it.displacedPosition
		}
		s.node(it).SetTranslateY(pos)
		it.isMoved = it.shouldBeMoved
		changed++
	})
	return changed
}

func (s *session) eachItem(fn func(it *item)) {
	for i := range s.before {
		fn(&s.before[i])
	}
	for i := range s.after {
		fn(&s.after[i])
	}
}

// liveOrder returns the container's current children matching the items
// selector.
func (s *session) liveOrder() []*Node {
	if s.container == nil {
		return nil
	}
	var out []*Node
	for _, c := range s.container.children {
		if s.sel.Matches(c) {
			out = append(out, c)
		}
	}
	return out
}

// orderHasChanged compares the live order with the snapshot index for index.
func (s *session) orderHasChanged() bool {
	live := s.liveOrder()
	if len(live) != len(s.nodes) {
		return true
	}
	for i, n := range live {
		if n != s.nodes[i] {
			return true
		}
	}
	return false
}
