package sortable

import "log/slog"

type insertAction uint8

const (
	insertNone insertAction = iota
	insertBefore
	insertAfter
)

// resolution is the pure outcome of a drop or abort: where the dragged item
// comes to rest and which order mutation, if any, follows.
type resolution struct {
	target Vec2
	action insertAction
	ref    *Node
}

// Resolution is the in-flight settle of a dropped or aborted gesture. Advance
// it with Update until Done; by then the order mutation, the ghost handler's
// OnEnd and the style cleanup have all run exactly once.
type Resolution struct {
	// Item is the dragged node.
	Item *Node
	// InsertBefore is the sibling the item now precedes, or nil when it is
	// last or the order was not committed.
	InsertBefore *Node
	// Committed reports whether the order was mutated.
	Committed bool
	// Done reports whether the animation and cleanup have completed.
	Done bool

	tween  *TweenGroup
	finish func()
}

// Update advances the settle animation by dt seconds.
func (r *Resolution) Update(dt float32) {
	if r.Done {
		return
	}
	r.tween.Update(dt)
	if r.tween.Done {
		r.Complete()
	}
}

// Complete skips the rest of the animation and finalizes immediately.
// Calling it on a finished Resolution is a no-op.
func (r *Resolution) Complete() {
	if r.Done {
		return
	}
	r.finish()
}

// plan decides where the dragged item rests for candidate c. It reads
// session state but mutates nothing.
func (s *session) plan(c candidate) resolution {
	left := s.draggedRect.Left()
	switch c.list {
	case listBefore:
		it := &s.before[c.index]
		return resolution{
			target: Vec2{X: left, Y: it.top},
			action: insertBefore,
			ref:    s.node(it),
		}
	case listAfter:
		it := &s.after[c.index]
		return resolution{
			target: Vec2{X: left, Y: it.bottom - s.draggedRect.Height},
			action: insertAfter,
			ref:    s.node(it),
		}
	default:
		return resolution{
			target: Vec2{X: left, Y: s.draggedRect.Top() - s.scrollDelta()},
		}
	}
}

// drop resolves the gesture at release point (x, y). Without a candidate slot
// it behaves exactly like abort. Returns nil if the session already resolved.
func (s *session) drop(x, y float64) *Resolution {
	if s.state != stateDragging {
		return nil
	}
	c := s.findIntersection(s.pointerCenter(x, y))
	if c.list == listNone {
		return s.abort()
	}
	s.activateList(c)
	s.updateMovementOfItems()
	s.state = stateDropping
	s.logger.Debug("drop", slog.Int("list", int(c.list)), slog.Int("index", c.index))
	return s.settle(s.plan(c))
}

// abort returns the dragged item to its original place without changing the
// order. Returns nil if the session already resolved.
func (s *session) abort() *Resolution {
	if s.state != stateDragging {
		return nil
	}
	s.activateList(noCandidate)
	s.updateMovementOfItems()
	s.state = stateAborting
	s.logger.Debug("abort")
	return s.settle(s.plan(noCandidate))
}

// settle animates the dragged item to res.target and, once there, applies
// res and resets every style the gesture touched.
func (s *session) settle(res resolution) *Resolution {
	r := &Resolution{Item: s.dragged}
	r.tween = TweenPosition(s.dragged, res.target.X, res.target.Y, s.cfg.Duration, s.cfg.Easing)
	r.finish = func() {
		s.apply(res, r)
		s.cleanup()
		r.Done = true
		s.logger.Debug("settled", slog.Bool("committed", r.Committed))
	}
	return r
}

// apply performs the order mutation of res. A dragged node disposed while
// settling stays out of the tree.
func (s *session) apply(res resolution, r *Resolution) {
	if res.action == insertNone || s.container == nil || s.dragged.IsDisposed() || res.ref.Parent != s.container {
		return
	}
	switch res.action {
	case insertBefore:
		s.container.InsertBefore(s.dragged, res.ref)
	case insertAfter:
		s.container.InsertAfter(s.dragged, res.ref)
	}
	r.Committed = true
	r.InsertBefore = s.dragged.NextSibling()
}

// cleanup undoes everything start did.
func (s *session) cleanup() {
	s.ghost.end(s.dragged)
	for _, n := range s.nodes {
		ResetStyle(n)
	}
	s.dragged.RemoveClass(DraggingClass)
	for _, n := range s.suspended {
		n.PointerEvents = true
	}
	s.suspended = nil
	if s.container != nil {
		s.container.MinHeight = s.prevMinHeight
	}
	s.state = stateResolved
}
