package nodeboard

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrNoSteps is returned by LoadTestScript for a script without steps.
var ErrNoSteps = errors.New("no steps")

// testStep is a single action in a test script.
type testStep struct {
	Action string  `yaml:"action"`
	Label  string  `yaml:"label,omitempty"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	FromX  float64 `yaml:"fromX,omitempty"`
	FromY  float64 `yaml:"fromY,omitempty"`
	ToX    float64 `yaml:"toX,omitempty"`
	ToY    float64 `yaml:"toY,omitempty"`
	Delta  float64 `yaml:"delta,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
}

// testScript is the top-level structure of a test script.
type testScript struct {
	Steps []testStep `yaml:"steps"`
}

// TestRunner sequences injected input, camera moves, and screenshots across
// frames for automated visual testing. Attach it with SetTestRunner.
//
// Scripts are YAML or JSON:
//
//	steps:
//	  - {action: click, x: 200, y: 120}
//	  - {action: drag, fromX: 200, fromY: 120, toX: 400, toY: 300, frames: 10}
//	  - {action: pan, fromX: 600, fromY: 500, toX: 500, toY: 400}
//	  - {action: wheel, x: 300, y: 200, delta: -120}
//	  - {action: fit}
//	  - {action: wait, frames: 30}
//	  - {action: screenshot, label: after}
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a YAML or JSON test script.
func LoadTestScript(data []byte) (*TestRunner, error) {
	var script testScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: %w", ErrNoSteps)
	}
	for i, st := range script.Steps {
		if !knownAction(st.Action) {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

func knownAction(a string) bool {
	switch a {
	case "screenshot", "click", "drag", "pan", "wheel", "wait", "cancel", "fit", "focus":
		return true
	}
	return false
}

// SetTestRunner attaches a TestRunner. Its step method runs from Update
// before input processing each frame.
func (e *Editor) SetTestRunner(runner *TestRunner) {
	e.testRunner = runner
}

// Done reports whether all steps have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame.
func (r *TestRunner) step(e *Editor) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(e.injectQueue) > 0 {
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
	case "screenshot":
		e.Screenshot(st.Label)
	case "click":
		e.InjectClick(st.X, st.Y)
	case "drag":
		e.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, max(st.Frames, 2))
	case "pan":
		e.InjectPan(st.FromX, st.FromY, st.ToX, st.ToY, max(st.Frames, 2))
	case "wheel":
		e.InjectWheel(st.X, st.Y, st.Delta)
	case "cancel":
		e.InjectCancel()
	case "fit":
		e.FitAll()
	case "focus":
		e.FocusSelected()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(e.injectQueue) == 0 {
		r.done = true
	}
}
