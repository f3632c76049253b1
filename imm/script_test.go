package imm

import (
	"testing"

	"github.com/phanxgames/nodeeditor/geom"
)

func TestLoadScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "click", "x": 100, "y": 200},
			{"action": "wait", "frames": 3},
			{"action": "drag", "fromX": 1, "fromY": 2, "toX": 3, "toY": 4, "frames": 6}
		]
	}`)

	r, err := LoadScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(r.steps))
	}
	if r.steps[0].Action != "screenshot" || r.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if r.steps[1].X != 100 || r.steps[1].Y != 200 {
		t.Error("step 1 mismatch")
	}
	if r.steps[3].ToY != 4 || r.steps[3].Frames != 6 {
		t.Error("step 3 mismatch")
	}
}

func TestLoadScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `not json`},
		{"no steps", `{"steps": []}`},
		{"unknown action", `{"steps": [{"action": "teleport"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadScript([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestScriptRunnerClick(t *testing.T) {
	u, _ := newTestUI()
	r, err := LoadScript([]byte(`{"steps": [{"action": "click", "x": 50, "y": 50}]}`))
	if err != nil {
		t.Fatal(err)
	}
	u.SetScriptRunner(r)

	var clicked bool
	for i := 0; i < 5 && !r.Done(); i++ {
		u.NewFrame()
		if u.InvisibleButton("target", geom.SizeF{W: 100, H: 100}) {
			clicked = true
		}
		u.EndFrame()
	}
	if !clicked {
		t.Error("expected the scripted click to reach the button")
	}
	if !r.Done() {
		t.Error("expected runner done")
	}
}

func TestScriptRunnerWait(t *testing.T) {
	u, _ := newTestUI()
	r, err := LoadScript([]byte(`{"steps": [{"action": "wait", "frames": 3}, {"action": "screenshot", "label": "x"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	u.SetScriptRunner(r)

	frames := 0
	for u.PendingScreenshots() == 0 && frames < 10 {
		u.NewFrame()
		u.EndFrame()
		frames++
	}
	if frames != 4 {
		t.Errorf("screenshot queued on frame %d, want 4", frames)
	}
	if !r.Done() {
		t.Error("expected runner done after the last step")
	}
}

func TestScriptRunnerDrag(t *testing.T) {
	u, _ := newTestUI()
	r, err := LoadScript([]byte(`{"steps": [{"action": "drag", "fromX": 0, "fromY": 0, "toX": 10, "toY": 0, "frames": 3}]}`))
	if err != nil {
		t.Fatal(err)
	}
	u.SetScriptRunner(r)

	u.NewFrame()
	if got := u.PendingInjections(); got != 2 {
		t.Errorf("after first frame PendingInjections = %d, want 2", got)
	}
	u.EndFrame()
	for i := 0; i < 3; i++ {
		u.NewFrame()
		u.EndFrame()
	}
	if !r.Done() {
		t.Error("expected runner done once the drag drained")
	}
}
