package sortable

import (
	"strings"
	"testing"
)

func TestLoadTestScript(t *testing.T) {
	data := []byte(`
container: .list
steps:
  - action: snapshot
    label: initial
  - action: press
    x: 100
    y: 20
  - action: wait
    frames: 3
  - action: drag
    fromX: 100
    fromY: 20
    toX: 100
    toY: 125
    frames: 4
`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "snapshot" || runner.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].X != 100 || runner.steps[1].Y != 20 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].Frames != 3 {
		t.Error("step 2 mismatch")
	}
	if runner.steps[3].ToY != 125 || runner.steps[3].Frames != 4 {
		t.Error("step 3 mismatch")
	}
}

func TestLoadTestScript_JSON(t *testing.T) {
	runner, err := LoadTestScript([]byte(`{"container": ".list", "steps": [{"action": "leave"}]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if runner.steps[0].Action != "leave" {
		t.Error("step 0 mismatch")
	}
}

func TestLoadTestScript_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"invalid", "not a script", "parse test script"},
		{"empty", "steps: []", "no steps"},
		{"unknown action", "steps:\n  - action: click\n", `unknown action "click"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTestScript([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestRunnerReplaysReorder(t *testing.T) {
	s, _, _ := newListScene(t, 5)
	c := newListSortable(s)
	runner, err := LoadTestScript([]byte(`
container: .list
steps:
  - action: snapshot
    label: before
  - action: press
    x: 100
    y: 20
  - action: move
    x: 100
    y: 125
  - action: release
    x: 100
    y: 125
  - action: wait
    frames: 30
  - action: snapshot
    label: after
`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetTestRunner(runner)

	for i := 0; i < 100 && !runner.Done(); i++ {
		s.Advance(frameDT)
	}
	if !runner.Done() {
		t.Fatal("runner did not finish")
	}
	if c.Active() {
		t.Error("gesture should have settled during the wait")
	}

	snaps := runner.Snapshots()
	if len(snaps) != 2 {
		t.Fatalf("snapshots = %d, want 2", len(snaps))
	}
	if got := strings.Join(snaps[0].Order, ","); got != "item0,item1,item2,item3,item4" {
		t.Errorf("before = %s", got)
	}
	if got := strings.Join(snaps[1].Order, ","); got != "item1,item2,item0,item3,item4" {
		t.Errorf("after = %s", got)
	}
}

func TestRunnerWaitsForDrag(t *testing.T) {
	s := NewScene()
	runner, err := LoadTestScript([]byte(`
steps:
  - action: drag
    fromX: 0
    fromY: 0
    toX: 10
    toY: 10
    frames: 5
  - action: snapshot
    label: end
`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetTestRunner(runner)
	frames := 0
	for !runner.Done() && frames < 50 {
		s.Advance(frameDT)
		frames++
	}
	// The drag's five events drain over five frames, starting with the frame
	// that queues them; the snapshot takes a sixth.
	if frames < 6 {
		t.Errorf("runner finished after %d frames, too early", frames)
	}
	if len(runner.Snapshots()) != 1 || runner.Snapshots()[0].Order != nil {
		t.Errorf("snapshots = %+v, want one empty", runner.Snapshots())
	}
}

func TestRunnerQueuesScreenshot(t *testing.T) {
	s := NewScene()
	runner, err := LoadTestScript([]byte("steps:\n  - action: screenshot\n    label: start\n"))
	if err != nil {
		t.Fatal(err)
	}
	s.SetTestRunner(runner)
	s.Advance(frameDT)
	if len(s.screenshotQueue) != 1 || s.screenshotQueue[0] != "start" {
		t.Errorf("screenshot queue = %v, want [start]", s.screenshotQueue)
	}
}

func TestRunnerScrollToDuringDrag(t *testing.T) {
	s, list, _ := newListScene(t, 5)
	s.Viewport().Height = 100
	store := &recordingStore{}
	s.SetEntityStore(store)
	c := newListSortable(s)
	runner, err := LoadTestScript([]byte(`
container: .list
steps:
  - action: press
    x: 100
    y: 20
  - action: scrollTo
    y: 50
    duration: 0.1
  - action: move
    x: 100
    y: 75
  - action: release
    x: 100
    y: 75
  - action: wait
    frames: 30
`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetTestRunner(runner)

	for i := 0; i < 200 && !runner.Done(); i++ {
		s.Advance(frameDT)
	}
	if !runner.Done() || c.Active() {
		t.Fatal("script did not finish")
	}
	if s.Viewport().ScrollY != 50 {
		t.Errorf("ScrollY = %v, want 50", s.Viewport().ScrollY)
	}
	assertOrder(t, list, "item1", "item2", "item0", "item3", "item4")

	var last InteractionEvent
	for _, ev := range store.events {
		if ev.Type == EventScroll {
			last = ev
		}
	}
	if last.Type != EventScroll || last.Y != 50 {
		t.Errorf("last scroll event = %+v, want Y 50", last)
	}
}
