package imm

import (
	"github.com/phanxgames/nodeeditor"
	"github.com/phanxgames/nodeeditor/geom"
)

// syntheticPointerEvent is one injected frame of pointer input, in screen
// pixels, matching what is seen in screenshots.
type syntheticPointerEvent struct {
	screen  geom.PointF
	pressed bool
	button  nodeeditor.MouseButton
}

// InjectPress queues a left-button press at the given screen coordinates.
// Each queued event is consumed by one NewFrame.
func (u *UI) InjectPress(x, y float64) {
	u.injectQueue = append(u.injectQueue, syntheticPointerEvent{
		screen:  geom.PointF{X: x, Y: y},
		pressed: true,
		button:  nodeeditor.MouseButtonLeft,
	})
}

// InjectMove queues a pointer move with the left button held.
func (u *UI) InjectMove(x, y float64) {
	u.InjectPress(x, y)
}

// InjectRelease queues a left-button release at the given screen coordinates.
func (u *UI) InjectRelease(x, y float64) {
	u.injectQueue = append(u.injectQueue, syntheticPointerEvent{
		screen: geom.PointF{X: x, Y: y},
		button: nodeeditor.MouseButtonLeft,
	})
}

// InjectClick queues a press and a release at the same point. Consumes two
// frames.
func (u *UI) InjectClick(x, y float64) {
	u.InjectPress(x, y)
	u.InjectRelease(x, y)
}

// InjectDrag queues a press at (fromX, fromY), frames-2 interpolated moves,
// and a release at (toX, toY). Minimum frames is 2.
func (u *UI) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	u.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		u.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	u.InjectRelease(toX, toY)
}

// PendingInjections returns the number of queued synthetic events.
func (u *UI) PendingInjections() int { return len(u.injectQueue) }

func (u *UI) popInjected() (syntheticPointerEvent, bool) {
	if len(u.injectQueue) == 0 {
		return syntheticPointerEvent{}, false
	}
	evt := u.injectQueue[0]
	copy(u.injectQueue, u.injectQueue[1:])
	u.injectQueue = u.injectQueue[:len(u.injectQueue)-1]
	return evt, true
}
