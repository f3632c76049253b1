package imm

import (
	"math"
	"unicode/utf8"

	"github.com/phanxgames/nodeeditor"
	"github.com/phanxgames/nodeeditor/geom"
)

// Debug font glyph cell.
const (
	glyphW = 6
	glyphH = 16
)

func (u *UI) setLastItem(id uint64, r geom.RectF) {
	u.lastItemID = id
	u.lastItem = r
}

// submit places an item of size and makes it the last item.
func (u *UI) submit(id uint64, size geom.SizeF) geom.RectF {
	pos := u.placeItem(size)
	r := geom.RectF{Min: pos, Max: pos.Add(geom.PointF{X: size.W, Y: size.H})}
	u.setLastItem(id, r)
	u.advanceItem(size)
	return r
}

// ItemRect returns the bounds of the last item or closed group.
func (u *UI) ItemRect() geom.RectF { return u.lastItem }

// InvisibleButton submits a hit-test item of size. The last submitted
// button under the pointer is the hovered one. It returns true on the frame
// a click on it is released over it.
func (u *UI) InvisibleButton(id string, size geom.SizeF) bool {
	key := u.ids.hash(id)
	r := u.submit(key, size)
	if key == u.activeID {
		u.activeSeen = true
	}
	hovered := u.hitTest(r)
	if hovered {
		u.hoveredID = key
	}
	return hovered && u.releasedID == key
}

func (u *UI) hitTest(r geom.RectF) bool {
	p := u.pointer.pos
	if !r.Contains(p.X, p.Y) {
		return false
	}
	if clip, ok := u.clip(); ok && !clip.Contains(p.X, p.Y) {
		return false
	}
	return true
}

// IsItemActive reports whether the last item is held.
func (u *UI) IsItemActive() bool {
	return u.activeID != 0 && u.activeID == u.lastItemID
}

// IsItemHovered reports whether the pointer is over the last item.
func (u *UI) IsItemHovered() bool {
	return u.lastItemID != 0 && u.lastItemID == u.hoveredID
}

// MouseDragDelta returns the pointer movement since button went down, or
// zero when it is not held or has moved less than threshold. A negative
// threshold uses the default of 4 pixels.
func (u *UI) MouseDragDelta(button nodeeditor.MouseButton, threshold float64) geom.PointF {
	if int(button) >= maxButtons {
		return geom.PointF{}
	}
	b := u.pointer.buttons[button]
	if !b.down {
		return geom.PointF{}
	}
	if threshold < 0 {
		threshold = defaultDragThreshold
	}
	d := u.pointer.pos.Sub(b.pressPos)
	if math.Hypot(d.X, d.Y) < threshold {
		return geom.PointF{}
	}
	return d
}

// Text submits a line of debug-font text.
func (u *UI) Text(s string) {
	size := TextSize(s)
	r := u.submit(0, size)
	u.addDraw(drawCmd{kind: drawText, a: r.Min, text: s, color: nodeeditor.ColorWhite})
}

// TextColored submits a line of text tinted with c.
func (u *UI) TextColored(c nodeeditor.Color, s string) {
	size := TextSize(s)
	r := u.submit(0, size)
	u.addDraw(drawCmd{kind: drawText, a: r.Min, text: s, color: c})
}

// TextSize returns the size of s in the debug font.
func TextSize(s string) geom.SizeF {
	return geom.SizeF{W: float64(utf8.RuneCountInString(s) * glyphW), H: glyphH}
}

// Dummy submits an empty item of size.
func (u *UI) Dummy(size geom.SizeF) {
	u.submit(0, size)
}
