package imm

import (
	"testing"

	"github.com/phanxgames/nodeeditor"
	"github.com/phanxgames/nodeeditor/geom"
)

func TestInjectClickQueuesTwoEvents(t *testing.T) {
	u, _ := newTestUI()
	u.InjectClick(30, 40)
	if got := u.PendingInjections(); got != 2 {
		t.Fatalf("PendingInjections = %d, want 2", got)
	}

	u.NewFrame()
	if !u.IsMouseDown(nodeeditor.MouseButtonLeft) {
		t.Error("first injected frame should press")
	}
	assertPoint(t, "pos", u.MousePos(), geom.PointF{X: 30, Y: 40})
	u.EndFrame()

	u.NewFrame()
	if u.IsMouseDown(nodeeditor.MouseButtonLeft) {
		t.Error("second injected frame should release")
	}
	u.EndFrame()

	if got := u.PendingInjections(); got != 0 {
		t.Errorf("PendingInjections = %d, want 0", got)
	}
}

func TestInjectDragInterpolates(t *testing.T) {
	u, _ := newTestUI()
	u.InjectDrag(0, 0, 30, 60, 5)
	if got := u.PendingInjections(); got != 5 {
		t.Fatalf("PendingInjections = %d, want 5", got)
	}
	want := []struct {
		pos  geom.PointF
		down bool
	}{
		{geom.PointF{X: 0, Y: 0}, true},
		{geom.PointF{X: 7.5, Y: 15}, true},
		{geom.PointF{X: 15, Y: 30}, true},
		{geom.PointF{X: 22.5, Y: 45}, true},
		{geom.PointF{X: 30, Y: 60}, false},
	}
	for i, w := range want {
		u.NewFrame()
		assertPoint(t, "frame pos", u.MousePos(), w.pos)
		if got := u.IsMouseDown(nodeeditor.MouseButtonLeft); got != w.down {
			t.Errorf("frame %d: down = %v, want %v", i, got, w.down)
		}
		u.EndFrame()
	}
}

func TestInjectDragMinimumFrames(t *testing.T) {
	u, _ := newTestUI()
	u.InjectDrag(0, 0, 10, 10, 0)
	if got := u.PendingInjections(); got != 2 {
		t.Errorf("PendingInjections = %d, want 2", got)
	}
}

func TestInjectionOverridesRealInput(t *testing.T) {
	u, in := newTestUI()
	in.pos = geom.PointF{X: 200, Y: 200}
	in.down[nodeeditor.MouseButtonRight] = true

	u.InjectPress(1, 2)
	u.NewFrame()
	assertPoint(t, "pos", u.MousePos(), geom.PointF{X: 1, Y: 2})
	if u.IsMouseDown(nodeeditor.MouseButtonRight) {
		t.Error("real buttons must be ignored on an injected frame")
	}
	u.EndFrame()

	u.NewFrame()
	assertPoint(t, "pos after queue drains", u.MousePos(), geom.PointF{X: 200, Y: 200})
	u.EndFrame()
}

func TestInjectedScreenCoordinatesAreScaled(t *testing.T) {
	u := New(Options{Scale: 2, Input: &fakeInput{}})
	u.InjectPress(40, 80)
	u.NewFrame()
	assertPoint(t, "pos", u.MousePos(), geom.PointF{X: 20, Y: 40})
	u.EndFrame()
}
