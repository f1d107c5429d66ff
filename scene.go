package sortable

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, interaction and reorder events are forwarded to it.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries interaction data for the ECS bridge.
type InteractionEvent struct {
	Type     EventType
	EntityID uint32
	// X, Y is the pointer position, or the scroll offset for EventScroll.
	X, Y     float64
	Button   MouseButton
	// Reorder fields (valid for EventReorderChanged)
	From, To int
}

// Scene is the top-level object that owns the node tree, the viewport,
// input state and the per-frame update hooks.
type Scene struct {
	root     *Node
	store    EntityStore
	debug    bool
	logger   *slog.Logger
	viewport *Viewport

	// ClearColor fills the screen before the tree is drawn.
	ClearColor Color

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir   string
	screenshotQueue []string
	screenshotSeq   int

	// Input state
	handlers     handlerRegistry
	captured     [maxPointers]*Node
	pointers     [maxPointers]pointerState
	hitBuf       []hitEntry
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID
	outside      bool

	injectQueue []syntheticEvent
	testRunner  *TestRunner
}

// NewScene creates a new scene with a pre-created root container.
func NewScene() *Scene {
	root := NewContainer("root")
	root.Tag = "body"
	return &Scene{
		root:          root,
		logger:        defaultLogger,
		viewport:      newViewport(),
		ScreenshotDir: "screenshots",
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Viewport returns the scene's scrolling viewport.
func (s *Scene) Viewport() *Viewport {
	return s.viewport
}

// Logger returns the scene's logger.
func (s *Scene) Logger() *slog.Logger {
	return s.logger
}

// SetLogger replaces the scene's logger. A nil logger restores the default.
func (s *Scene) SetLogger(l *slog.Logger) {
	if l == nil {
		l = defaultLogger
	}
	s.logger = l
}

// Update is the ebiten-facing frame step: it polls real mouse, touch and
// wheel input unless an injected event is pending, then advances the frame.
func (s *Scene) Update() {
	dt := float32(1.0 / float64(ebiten.TPS()))
	s.Layout()
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	if !s.processInjectedInput() {
		s.pollInput()
	}
	s.tick(dt)
}

// Advance steps the scene by dt seconds using injected input only. It is the
// headless counterpart of Update, used by tests and script replays.
func (s *Scene) Advance(dt float32) {
	s.Layout()
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInjectedInput()
	s.tick(dt)
}

// tick advances scrolling, transitions and update hooks.
func (s *Scene) tick(dt float32) {
	if s.viewport.update(dt) {
		s.fireScroll()
	}
	updateTransitions(s.root, dt)
	for _, h := range s.handlers.update {
		h.fn(dt)
	}
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth and child count warnings are logged, debug level
// records from the package logger are emitted and Draw overlays frame stats.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
	SetDebug(enabled)
}

// emit forwards an event to the EntityStore, if any.
func (s *Scene) emit(ev InteractionEvent) {
	if s.store == nil {
		return
	}
	s.store.EmitEvent(ev)
}
