package sortable

import (
	"log/slog"

	"github.com/tanema/gween/ease"
)

const (
	defaultDuration   float32 = 0.2 // seconds for the drop/abort snap
	defaultTransition float32 = 0.2 // seconds for sibling slides
)

// Config configures a Sortable.
type Config struct {
	// ItemsSelector selects the reorderable items, e.g. ".list li".
	ItemsSelector string
	// HandleSelector optionally restricts where a press picks an item up,
	// e.g. ".grip". It is matched inside an item. Empty means anywhere.
	HandleSelector string

	// Duration is the drop/abort animation length in seconds.
	// Zero means 200ms.
	Duration float32
	// Easing is the drop/abort curve. Nil means ease-out-cubic.
	Easing ease.TweenFunc
	// Transition is the slide duration of displaced siblings in seconds.
	// Zero means 200ms.
	Transition float32

	// Logger receives debug records for each gesture. Nil means the scene's
	// logger.
	Logger *slog.Logger
}

// ChangeContext describes a committed reorder.
type ChangeContext struct {
	// Item is the node that moved.
	Item *Node
	// InsertBefore is the sibling Item now precedes, or nil if it is last.
	InsertBefore *Node
	// Order is the live item order after the move.
	Order []*Node
	// From and To are Item's indices in the item order before and after.
	From, To int
}

// Sortable turns a pointer drag over sibling items into an animated reorder.
// At most one gesture is active at a time; presses while a gesture is
// dragging or settling are ignored.
type Sortable struct {
	scene  *Scene
	cfg    Config
	items  Selector
	handle Selector
	logger *slog.Logger

	initialized bool
	down        CallbackHandle
	tick        CallbackHandle
	gesture     []CallbackHandle

	session    *session
	resolution *Resolution
	pointerID  int

	nextID  uint32
	started []handler[func(*Node)]
	changed []handler[func(ChangeContext)]
	ended   []handler[func()]
}

// New creates a Sortable over scene. Call Init to start listening.
func New(scene *Scene, cfg Config) *Sortable {
	if cfg.Duration <= 0 {
		cfg.Duration = defaultDuration
	}
	if cfg.Easing == nil {
		cfg.Easing = ease.OutCubic
	}
	if cfg.Transition <= 0 {
		cfg.Transition = defaultTransition
	}
	if cfg.Logger == nil {
		cfg.Logger = scene.Logger()
	}
	items := ParseSelector(cfg.ItemsSelector)
	handle := items
	if cfg.HandleSelector != "" {
		handle = items.Join(ParseSelector(cfg.HandleSelector))
	}
	return &Sortable{
		scene:  scene,
		cfg:    cfg,
		items:  items,
		handle: handle,
		logger: cfg.Logger,
	}
}

// Init registers the press listener and the per-frame hook. Calling it again
// is a no-op.
func (c *Sortable) Init() {
	if c.initialized {
		return
	}
	c.initialized = true
	if c.items.Empty() {
		c.logger.Warn("sortable: empty items selector; no item can be dragged")
	}
	c.down = c.scene.OnPointerDown(c.onInteractionStart)
	c.tick = c.scene.OnUpdate(c.update)
}

// Destroy unregisters every listener. A gesture in progress is aborted and
// settled immediately.
func (c *Sortable) Destroy() {
	if !c.initialized {
		return
	}
	c.down.Remove()
	c.tick.Remove()
	if c.session != nil {
		c.onDragEnd(nil)
		if c.resolution != nil {
			c.resolution.Complete()
			c.finish()
		}
	}
	c.initialized = false
}

// OnStart subscribes to gesture starts. The callback receives the dragged item.
func (c *Sortable) OnStart(fn func(item *Node)) CallbackHandle {
	return register(&c.nextID, &c.started, fn)
}

// OnChanged subscribes to committed reorders.
func (c *Sortable) OnChanged(fn func(ChangeContext)) CallbackHandle {
	return register(&c.nextID, &c.changed, fn)
}

// OnEnd subscribes to gesture ends. It fires once per gesture, after the
// settle animation and cleanup, whether or not the order changed.
func (c *Sortable) OnEnd(fn func()) CallbackHandle {
	return register(&c.nextID, &c.ended, fn)
}

// Active reports whether a gesture is dragging or settling.
func (c *Sortable) Active() bool {
	return c.session != nil
}

// Items returns the live items sharing a parent with the first matching item,
// in order.
func (c *Sortable) Items() []*Node {
	all := c.items.QueryAll(c.scene.root)
	if len(all) == 0 {
		return nil
	}
	return c.siblings(all[0])
}

// siblings returns n's parent's children matching the items selector.
func (c *Sortable) siblings(n *Node) []*Node {
	if n.Parent == nil {
		return []*Node{n}
	}
	var out []*Node
	for _, s := range n.Parent.children {
		if c.items.Matches(s) {
			out = append(out, s)
		}
	}
	return out
}

// onInteractionStart is the delegated press listener.
func (c *Sortable) onInteractionStart(ctx PointerContext) {
	if c.session != nil {
		c.logger.Debug("press ignored: gesture already active", slog.Int("pointer", ctx.PointerID))
		return
	}
	if ctx.Button != MouseButtonLeft || ctx.Node == nil {
		return
	}
	grip := c.handle.Closest(ctx.Node)
	if grip == nil {
		return
	}
	target := c.items.Closest(grip)
	if target == nil {
		return
	}

	sess := newSession(c.scene, c.cfg, c.items, target, c.siblings(target), ctx.X, ctx.Y)
	sess.start()
	c.session = sess
	c.pointerID = ctx.PointerID

	c.gesture = append(c.gesture[:0],
		c.scene.OnPointerMove(c.onDragMove),
		c.scene.OnPointerUp(c.onPointerUp),
		c.scene.OnPointerLeave(c.onMouseOut),
		c.scene.OnScroll(c.onScroll),
	)

	for _, h := range c.started {
		h.fn(target)
	}
	c.scene.emit(InteractionEvent{Type: EventReorderStart, EntityID: target.EntityID, X: ctx.X, Y: ctx.Y})

	c.scene.CapturePointer(ctx.PointerID, target)
}

// onDragMove forwards pointer movement to the active session.
func (c *Sortable) onDragMove(ctx PointerContext) {
	if c.session == nil || ctx.PointerID != c.pointerID {
		return
	}
	c.session.onMove(ctx.X, ctx.Y)
}

func (c *Sortable) onPointerUp(ctx PointerContext) {
	if ctx.PointerID != c.pointerID {
		return
	}
	c.onDragEnd(&ctx)
}

// onDragEnd resolves the active session: a drop at ctx, or an abort when ctx
// is nil. The gesture listeners are gone before resolution begins.
func (c *Sortable) onDragEnd(ctx *PointerContext) {
	if c.session == nil || c.resolution != nil {
		return
	}
	for _, h := range c.gesture {
		h.Remove()
	}
	c.gesture = c.gesture[:0]
	c.scene.ReleasePointer(c.pointerID)

	if ctx != nil {
		c.resolution = c.session.drop(ctx.X, ctx.Y)
	} else {
		c.resolution = c.session.abort()
	}
}

// onMouseOut ends the gesture when the dragging pointer leaves the window.
func (c *Sortable) onMouseOut(ctx PointerContext) {
	if ctx.PointerID != c.pointerID {
		return
	}
	root := c.scene.root
	if ctx.Related == root && ctx.To == root {
		c.onDragEnd(nil)
	}
}

// onScroll forwards viewport scrolling to the active session.
func (c *Sortable) onScroll(ScrollContext) {
	if c.session == nil {
		return
	}
	c.session.onScroll()
}

// update advances a settling resolution and reports the gesture's end once
// it completes.
func (c *Sortable) update(dt float32) {
	if c.resolution == nil {
		return
	}
	c.resolution.Update(dt)
	if c.resolution.Done {
		c.finish()
	}
}

// finish releases the session slot and emits end, then changed if the order
// differs from the snapshot.
func (c *Sortable) finish() {
	sess, res := c.session, c.resolution
	c.session = nil
	c.resolution = nil

	for _, h := range c.ended {
		h.fn()
	}
	c.scene.emit(InteractionEvent{Type: EventReorderEnd, EntityID: sess.dragged.EntityID})

	if sess.dragged.IsDisposed() || !sess.orderHasChanged() {
		return
	}
	order := sess.liveOrder()
	ev := ChangeContext{
		Item:         res.Item,
		InsertBefore: res.InsertBefore,
		Order:        order,
		From:         sess.draggedIndex,
		To:           indexOf(order, res.Item),
	}
	for _, h := range c.changed {
		h.fn(ev)
	}
	c.scene.emit(InteractionEvent{
		Type: EventReorderChanged, EntityID: res.Item.EntityID, From: ev.From, To: ev.To,
	})
}

func indexOf(nodes []*Node, n *Node) int {
	for i, x := range nodes {
		if x == n {
			return i
		}
	}
	return -1
}
