package sortable

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action   string  `yaml:"action"`
	Label    string  `yaml:"label,omitempty"`
	X        float64 `yaml:"x,omitempty"`
	Y        float64 `yaml:"y,omitempty"`
	FromX    float64 `yaml:"fromX,omitempty"`
	FromY    float64 `yaml:"fromY,omitempty"`
	ToX      float64 `yaml:"toX,omitempty"`
	ToY      float64 `yaml:"toY,omitempty"`
	DY       float64 `yaml:"dy,omitempty"`
	Frames   int     `yaml:"frames,omitempty"`
	Duration float32 `yaml:"duration,omitempty"` // scrollTo length in seconds
}

// testScript is the top-level structure of a test script.
type testScript struct {
	// Container selects the node whose children "snapshot" records.
	Container string     `yaml:"container"`
	Steps     []testStep `yaml:"steps"`
}

// Snapshot is the child order of the script's container at one point.
type Snapshot struct {
	Label string
	Order []string
}

// TestRunner sequences injected input events and order snapshots across
// frames for automated interaction testing. Attach to a Scene via
// SetTestRunner.
type TestRunner struct {
	container Selector
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	snapshots []Snapshot
}

// LoadTestScript parses a YAML (or JSON) test script and returns a TestRunner
// ready to be attached to a Scene via SetTestRunner.
func LoadTestScript(data []byte) (*TestRunner, error) {
	var script testScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "press", "move", "release", "drag", "scroll", "scrollTo", "leave", "wait", "snapshot", "screenshot":
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{
		container: ParseSelector(script.Container),
		steps:     script.Steps,
	}, nil
}

// SetTestRunner attaches a TestRunner to the scene. The runner's step method
// is called at the start of every frame.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Snapshots returns the orders recorded by "snapshot" steps so far.
func (r *TestRunner) Snapshots() []Snapshot {
	return r.snapshots
}

// step advances the test runner by one frame. Called from the frame step.
func (r *TestRunner) step(s *Scene) {
	if r.done {
		return
	}
	// Wait for pending injections and scroll animations before advancing.
	if len(s.injectQueue) > 0 || s.viewport.Scrolling() {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "press":
		s.InjectPress(st.X, st.Y)
	case "move":
		s.InjectMove(st.X, st.Y)
	case "release":
		s.InjectRelease(st.X, st.Y)
	case "drag":
		s.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "scroll":
		s.InjectScroll(st.DY)
	case "scrollTo":
		s.viewport.ScrollTo(st.Y, st.Duration, nil)
	case "leave":
		s.InjectLeave()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "snapshot":
		r.snapshot(s, st.Label)
	case "screenshot":
		s.Screenshot(st.Label)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 && !s.viewport.Scrolling() {
		r.done = true
	}
}

func (r *TestRunner) snapshot(s *Scene, label string) {
	snap := Snapshot{Label: label}
	matches := r.container.QueryAll(s.root)
	if len(matches) > 0 {
		for _, c := range matches[0].children {
			snap.Order = append(snap.Order, c.Name)
		}
	}
	r.snapshots = append(r.snapshots, snap)
}
