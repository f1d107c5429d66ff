package sortable

type syntheticKind uint8

const (
	syntheticPointer syntheticKind = iota
	syntheticLeave
	syntheticScroll
)

// syntheticEvent represents a single injected input event. Coordinates are
// viewport coordinates, identical to real mouse input.
type syntheticEvent struct {
	kind    syntheticKind
	x, y    float64
	pressed bool
	button  MouseButton
	scroll  float64
}

// InjectPress queues a pointer press event at the given viewport coordinates
// (left button). The event is consumed on the next frame.
func (s *Scene) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{
		x: x, y: y, pressed: true, button: MouseButtonLeft,
	})
}

// InjectMove queues a pointer move event with the button held down. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (s *Scene) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{
		x: x, y: y, pressed: true, button: MouseButtonLeft,
	})
}

// InjectRelease queues a pointer release event at the given coordinates.
func (s *Scene) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{
		x: x, y: y, pressed: false, button: MouseButtonLeft,
	})
}

// InjectLeave queues the pointer leaving the window.
func (s *Scene) InjectLeave() {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: syntheticLeave})
}

// InjectScroll queues a viewport scroll by dy pixels.
func (s *Scene) InjectScroll(dy float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: syntheticScroll, scroll: dy})
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). The total sequence consumes `frames` frames.
// Minimum frames is 2 (press + release).
func (s *Scene) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectRelease(toX, toY)
}

// Pending returns the number of queued injected events.
func (s *Scene) Pending() int {
	return len(s.injectQueue)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through the same paths as real input. Returns true if an event was
// consumed (real input should be skipped).
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	switch evt.kind {
	case syntheticLeave:
		s.processLeaveWindow(0)
	case syntheticScroll:
		s.scrollBy(evt.scroll)
	default:
		s.processPointer(0, evt.x, evt.y, evt.pressed, evt.button)
	}
	return true
}
