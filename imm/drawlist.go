package imm

import (
	"github.com/phanxgames/nodeeditor"
	"github.com/phanxgames/nodeeditor/geom"
)

type drawKind uint8

const (
	drawRectFilled drawKind = iota
	drawRect
	drawLine
	drawText
)

// drawCmd is one recorded primitive in logical units. color already carries
// the style alpha in effect when it was added.
type drawCmd struct {
	kind    drawKind
	a, b    geom.PointF
	color   nodeeditor.Color
	text    string
	clip    geom.RectF
	clipped bool
}

func (u *UI) addDraw(cmd drawCmd) {
	cmd.color = cmd.color.WithAlpha(u.Alpha())
	if cmd.color.A <= 0 {
		return
	}
	cmd.clip, cmd.clipped = u.clip()
	u.draws = append(u.draws, cmd)
}

// DrawList returns the draw list of the current frame.
func (u *UI) DrawList() nodeeditor.DrawList { return drawList{u} }

type drawList struct{ u *UI }

func (d drawList) AddRectFilled(min, max geom.PointF, c nodeeditor.Color) {
	d.u.addDraw(drawCmd{kind: drawRectFilled, a: min, b: max, color: c})
}

func (d drawList) AddLine(a, b geom.PointF, c nodeeditor.Color) {
	d.u.addDraw(drawCmd{kind: drawLine, a: a, b: b, color: c})
}

func (d drawList) AddRect(min, max geom.PointF, c nodeeditor.Color) {
	d.u.addDraw(drawCmd{kind: drawRect, a: min, b: max, color: c})
}

// DrawCount returns the number of primitives recorded this frame.
func (u *UI) DrawCount() int { return len(u.draws) }
