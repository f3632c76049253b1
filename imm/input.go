package imm

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/nodeeditor"
	"github.com/phanxgames/nodeeditor/geom"
)

const maxButtons = 3

// InputSource supplies the pointer state polled at the start of each frame.
// Positions are screen pixels.
type InputSource interface {
	CursorPosition() geom.PointF
	IsMouseButtonPressed(button nodeeditor.MouseButton) bool
}

// EbitenInput polls the Ebitengine mouse.
type EbitenInput struct{}

// CursorPosition returns the mouse position in screen pixels.
func (EbitenInput) CursorPosition() geom.PointF {
	x, y := ebiten.CursorPosition()
	return geom.PointF{X: float64(x), Y: float64(y)}
}

// IsMouseButtonPressed reports whether button is held.
func (EbitenInput) IsMouseButtonPressed(button nodeeditor.MouseButton) bool {
	switch button {
	case nodeeditor.MouseButtonLeft:
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	case nodeeditor.MouseButtonRight:
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	case nodeeditor.MouseButtonMiddle:
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	}
	return false
}

type buttonState struct {
	down     bool
	pressed  bool // went down this frame
	released bool // went up this frame
	pressPos geom.PointF
}

// pointerState is the mouse as seen by the current frame, in logical units.
type pointerState struct {
	pos     geom.PointF
	buttons [maxButtons]buttonState
}

// update applies one frame of raw button state.
func (p *pointerState) update(pos geom.PointF, down [maxButtons]bool) {
	p.pos = pos
	for i := range p.buttons {
		b := &p.buttons[i]
		b.pressed = down[i] && !b.down
		b.released = !down[i] && b.down
		if b.pressed {
			b.pressPos = pos
		}
		b.down = down[i]
	}
}

// pollInput reads one frame of pointer state. A queued synthetic event
// replaces the real mouse for the frame.
func (u *UI) pollInput() {
	var screen geom.PointF
	var down [maxButtons]bool
	if evt, ok := u.popInjected(); ok {
		screen = evt.screen
		down[evt.button] = evt.pressed
	} else {
		screen = u.opts.Input.CursorPosition()
		for i := range down {
			down[i] = u.opts.Input.IsMouseButtonPressed(nodeeditor.MouseButton(i))
		}
	}
	u.pointer.update(u.ScreenToUI(screen), down)
}

// ScreenToUI converts a screen pixel position to logical UI units.
func (u *UI) ScreenToUI(p geom.PointF) geom.PointF {
	return u.view().Invert().Apply(p)
}

// UIToScreen converts a logical UI position to screen pixels.
func (u *UI) UIToScreen(p geom.PointF) geom.PointF {
	return u.view().Apply(p)
}

// MousePos returns the pointer position in logical units.
func (u *UI) MousePos() geom.PointF { return u.pointer.pos }

// IsMouseDown reports whether button is held this frame.
func (u *UI) IsMouseDown(button nodeeditor.MouseButton) bool {
	return int(button) < maxButtons && u.pointer.buttons[button].down
}
