package sortable

import (
	"testing"
)

// newTestSession starts a session on items[idx] of a fresh 5-item list,
// grabbed at the item's center.
func newTestSession(t *testing.T, idx int) (*Scene, *Node, []*Node, *session) {
	t.Helper()
	s, list, items := newListScene(t, 5)
	cfg := New(s, Config{ItemsSelector: ".list li"}).cfg
	r := s.BoundingRect(items[idx])
	sess := newSession(s, cfg, ParseSelector(".list li"), items[idx], items, r.X+r.Width/2, r.Y+r.Height/2)
	sess.start()
	s.Layout()
	return s, list, items, sess
}

func TestSessionSnapshot(t *testing.T) {
	_, _, items, sess := newTestSession(t, 2)

	if sess.draggedIndex != 2 {
		t.Errorf("draggedIndex = %d, want 2", sess.draggedIndex)
	}
	if sess.displacement != 50 {
		t.Errorf("displacement = %v, want 50", sess.displacement)
	}
	if len(sess.before) != 2 || len(sess.after) != 2 {
		t.Fatalf("before=%d after=%d, want 2 and 2", len(sess.before), len(sess.after))
	}
	for _, it := range sess.before {
		if it.initialPosition != 0 || it.displacedPosition != 50 {
			t.Errorf("before %s: initial=%v displaced=%v", sess.node(&it).Name, it.initialPosition, it.displacedPosition)
		}
	}
	for _, it := range sess.after {
		if it.initialPosition != 50 || it.displacedPosition != 0 {
			t.Errorf("after %s: initial=%v displaced=%v", sess.node(&it).Name, it.initialPosition, it.displacedPosition)
		}
	}
	if sess.dragOffset != (Vec2{X: 100, Y: 20}) {
		t.Errorf("dragOffset = %+v", sess.dragOffset)
	}
	if sess.nodes[sess.after[0].handle] != items[3] {
		t.Error("after[0] should reference item3")
	}
}

func TestSessionStartKeepsSiblingsInPlace(t *testing.T) {
	s, list, items, _ := newTestSession(t, 2)

	// The dragged item left the flow; later siblings are shifted back over
	// the hole so nothing visibly moves.
	for i, want := range []float64{0, 50, 100, 150, 200} {
		if got := s.BoundingRect(items[i]).Top(); got != want {
			t.Errorf("item%d top = %v, want %v", i, got, want)
		}
	}
	if items[2].Position != PositionFixed || items[2].ZIndex != draggedZIndex {
		t.Error("dragged item should be fixed and raised")
	}
	if !items[2].HasClass(DraggingClass) {
		t.Error("dragged item should carry the dragging class")
	}
	if list.MinHeight != 240 {
		t.Errorf("list MinHeight = %v, want 240", list.MinHeight)
	}
	if list.box.Height != 240 {
		t.Errorf("list height = %v, want 240 while dragging", list.box.Height)
	}
}

func TestFindIntersection(t *testing.T) {
	_, _, _, sess := newTestSession(t, 2)

	tests := []struct {
		name string
		x, y float64
		want candidate
	}{
		{"left of dragged", -1, 20, noCandidate},
		{"right of dragged", 201, 20, noCandidate},
		{"over first", 100, 20, candidate{listBefore, 0}},
		{"gap above second", 100, 45, candidate{listBefore, 1}},
		{"over second", 100, 60, candidate{listBefore, 1}},
		{"own slot", 100, 120, noCandidate},
		{"over fourth", 100, 160, candidate{listAfter, 0}},
		{"gap below fourth", 100, 195, candidate{listAfter, 0}},
		{"over fifth", 100, 220, candidate{listAfter, 1}},
		{"below list", 100, 300, noCandidate},
		{"above list", 100, -10, noCandidate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sess.findIntersection(tt.x, tt.y); got != tt.want {
				t.Errorf("findIntersection(%v, %v) = %+v, want %+v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestActivateListConverges(t *testing.T) {
	_, _, items, sess := newTestSession(t, 2)

	sess.activateList(candidate{listBefore, 0})
	if n := sess.updateMovementOfItems(); n != 2 {
		t.Errorf("first update touched %d items, want 2", n)
	}
	if n := sess.updateMovementOfItems(); n != 0 {
		t.Errorf("second update touched %d items, want 0", n)
	}
	if items[0].TranslateY != 50 || items[1].TranslateY != 50 {
		t.Errorf("before translate = %v, %v, want 50", items[0].TranslateY, items[1].TranslateY)
	}

	sess.activateList(candidate{listAfter, 1})
	if n := sess.updateMovementOfItems(); n != 4 {
		t.Errorf("switch touched %d items, want 4", n)
	}
	for i, want := range []float64{0, 0, 0, 0, 0} {
		if i == 2 {
			continue
		}
		if items[i].TranslateY != want {
			t.Errorf("item%d translate = %v, want %v", i, items[i].TranslateY, want)
		}
	}

	sess.activateList(noCandidate)
	sess.updateMovementOfItems()
	if items[3].TranslateY != 50 || items[4].TranslateY != 50 {
		t.Errorf("after translate = %v, %v, want 50", items[3].TranslateY, items[4].TranslateY)
	}
	sess.eachItem(func(it *item) {
		if it.isMoved != it.shouldBeMoved {
			t.Errorf("%s isMoved=%v shouldBeMoved=%v", sess.node(it).Name, it.isMoved, it.shouldBeMoved)
		}
	})
}

func TestMoveEnablesTransitions(t *testing.T) {
	_, _, items, sess := newTestSession(t, 2)
	if items[0].Transition != 0 {
		t.Fatal("transitions should be off until the first move")
	}
	sess.onMove(100, 120)
	for i, n := range items {
		if i == 2 {
			continue
		}
		if n.Transition != sess.cfg.Transition {
			t.Errorf("item%d Transition = %v, want %v", i, n.Transition, sess.cfg.Transition)
		}
	}
	if items[2].Top != 100 {
		t.Errorf("dragged Top = %v, want 100", items[2].Top)
	}
}

func TestPlanIsPure(t *testing.T) {
	_, list, items, sess := newTestSession(t, 2)

	tests := []struct {
		name   string
		c      candidate
		y      float64
		action insertAction
		ref    *Node
	}{
		{"before", candidate{listBefore, 1}, 50, insertBefore, items[1]},
		{"after", candidate{listAfter, 0}, 150, insertAfter, items[3]},
		{"none", noCandidate, 100, insertNone, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := sess.plan(tt.c)
			if res.target.Y != tt.y || res.target.X != 0 {
				t.Errorf("target = %+v, want (0, %v)", res.target, tt.y)
			}
			if res.action != tt.action || res.ref != tt.ref {
				t.Errorf("action=%d ref=%v", res.action, res.ref)
			}
		})
	}
	assertOrder(t, list, "item0", "item1", "item2", "item3", "item4")
	if sess.state != stateDragging {
		t.Errorf("state = %s, want dragging", sess.state)
	}
}

func TestResolutionCompletesOnce(t *testing.T) {
	_, list, items, sess := newTestSession(t, 0)

	res := sess.drop(100, 125)
	if res == nil {
		t.Fatal("drop returned nil")
	}
	if sess.state != stateDropping {
		t.Errorf("state = %s, want dropping", sess.state)
	}
	if again := sess.drop(100, 125); again != nil {
		t.Error("second drop should be rejected")
	}
	if sess.abort() != nil {
		t.Error("abort after drop should be rejected")
	}

	res.Complete()
	res.Complete()
	res.Update(frameDT)
	if !res.Done || !res.Committed {
		t.Errorf("done=%v committed=%v", res.Done, res.Committed)
	}
	if res.InsertBefore != items[3] {
		t.Errorf("InsertBefore = %v, want item3", res.InsertBefore)
	}
	assertOrder(t, list, "item1", "item2", "item0", "item3", "item4")
	if sess.state != stateResolved {
		t.Errorf("state = %s, want resolved", sess.state)
	}
}

func TestResolutionAnimatesToTarget(t *testing.T) {
	_, _, items, sess := newTestSession(t, 0)
	sess.onMove(100, 125)

	res := sess.drop(100, 125)
	for i := 0; i < 5; i++ {
		res.Update(frameDT)
	}
	if res.Done {
		t.Fatal("settle should still be running")
	}
	if top := items[0].Top; top <= 100 || top >= 105 {
		t.Errorf("dragged Top = %v mid-settle, want between 100 and 105", top)
	}
	for i := 0; i < 60 && !res.Done; i++ {
		res.Update(frameDT)
	}
	if !res.Done {
		t.Fatal("settle did not finish")
	}
}

func TestAbortRestoresEverything(t *testing.T) {
	s, list, items, sess := newTestSession(t, 2)
	frame := NewBox("embed", embeddedTag, 10, 10)
	items[0].AddChild(frame)
	off := NewBox("off", embeddedTag, 10, 10)
	off.PointerEvents = false
	items[1].AddChild(off)
	// Re-suspend now that the embedded frames exist.
	sess.suspended = setPointerEvents(s.root, false, sess.suspended)
	if frame.PointerEvents {
		t.Fatal("embedded frame should be suspended while dragging")
	}

	sess.onMove(100, 20)
	res := sess.abort()
	if sess.state != stateAborting {
		t.Errorf("state = %s, want aborting", sess.state)
	}
	res.Complete()

	if res.Committed {
		t.Error("abort should not commit")
	}
	assertOrder(t, list, "item0", "item1", "item2", "item3", "item4")
	assertClean(t, list, items)
	if !frame.PointerEvents {
		t.Error("embedded frame pointer events not restored")
	}
	if off.PointerEvents {
		t.Error("frame that was already disabled should stay disabled")
	}
}

func TestScrollCompensation(t *testing.T) {
	s, _, items := newListScene(t, 5)
	s.Viewport().Height = 100
	s.Layout()
	cfg := New(s, Config{ItemsSelector: ".list li"}).cfg
	sess := newSession(s, cfg, ParseSelector(".list li"), items[0], items, 100, 20)
	sess.start()

	s.scrollBy(50)
	sess.onScroll()
	s.Layout()

	for _, it := range sess.after {
		live := s.BoundingRect(sess.node(&it))
		if it.top != live.Top() || it.bottom != live.Bottom() {
			t.Errorf("%s cached %v..%v, live %v..%v",
				sess.node(&it).Name, it.top, it.bottom, live.Top(), live.Bottom())
		}
	}

	// Center at 75 is over item2 once the list has scrolled up by 50.
	if got := sess.findIntersection(sess.pointerCenter(100, 75)); got != (candidate{listAfter, 1}) {
		t.Errorf("candidate = %+v, want after 1", got)
	}
	if res := sess.plan(noCandidate); res.target.Y != -50 {
		t.Errorf("abort target Y = %v, want -50", res.target.Y)
	}
}

func TestScrollDuringGesture(t *testing.T) {
	s, list, _ := newListScene(t, 5)
	s.Viewport().Height = 100
	c := newListSortable(s)

	s.InjectPress(100, 20)
	s.InjectScroll(50)
	s.InjectMove(100, 75)
	s.InjectRelease(100, 75)
	settle(t, s, c)

	assertOrder(t, list, "item1", "item2", "item0", "item3", "item4")
}

func TestSingleItemSession(t *testing.T) {
	s, list, items := newListScene(t, 1)
	cfg := New(s, Config{ItemsSelector: ".list li"}).cfg
	sess := newSession(s, cfg, ParseSelector(".list li"), items[0], items, 100, 20)
	sess.start()

	if sess.displacement != 40 {
		t.Errorf("displacement = %v, want 40", sess.displacement)
	}
	res := sess.drop(100, 20)
	res.Complete()
	if res.Committed {
		t.Error("single item drop should not commit")
	}
	if sess.orderHasChanged() {
		t.Error("order should be unchanged")
	}
	assertOrder(t, list, "item0")
}

func TestOrderHasChanged(t *testing.T) {
	_, list, items, sess := newTestSession(t, 2)
	if sess.orderHasChanged() {
		t.Fatal("fresh session should report no change")
	}
	list.SetChildIndex(items[4], 0)
	if !sess.orderHasChanged() {
		t.Error("reordered list should report change")
	}
	other := NewBox("extra", "li", 200, 40)
	list.SetChildIndex(items[4], 4)
	list.AddChild(other)
	if !sess.orderHasChanged() {
		t.Error("grown list should report change")
	}
}
