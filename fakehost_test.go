package nodeeditor

import (
	"fmt"

	"github.com/phanxgames/nodeeditor/geom"
)

// fakeHost records layout and draw calls and models a host on which every
// node measures nodeSize at the cursor it was started from.
type fakeHost struct {
	calls []string

	cursor    geom.PointF
	nodeStart geom.PointF
	nodeSize  geom.SizeF

	// activeID is the InvisibleButton id reported as held.
	activeID string
	lastID   string
	delta    geom.PointF

	idDepth    int
	alphaStack []float64
	logs       []string
}

func newFakeHost() *fakeHost {
	return &fakeHost{nodeSize: geom.SizeF{W: 100, H: 60}}
}

func (h *fakeHost) record(format string, args ...any) {
	h.calls = append(h.calls, fmt.Sprintf(format, args...))
}

func (h *fakeHost) reset() { h.calls = h.calls[:0] }

func (h *fakeHost) BeginHorizontal(id string) { h.record("BeginHorizontal(%s)", id) }
func (h *fakeHost) EndHorizontal()            { h.record("EndHorizontal") }
func (h *fakeHost) BeginVertical(id string, align float64) {
	h.record("BeginVertical(%s, %g)", id, align)
}
func (h *fakeHost) EndVertical()                   { h.record("EndVertical") }
func (h *fakeHost) Spring(weight, spacing float64) { h.record("Spring(%g, %g)", weight, spacing) }

func (h *fakeHost) ItemRect() geom.RectF {
	return geom.RectF{
		Min: h.nodeStart,
		Max: geom.PointF{X: h.nodeStart.X + h.nodeSize.W, Y: h.nodeStart.Y + h.nodeSize.H},
	}
}

func (h *fakeHost) DrawList() DrawList { return fakeDrawList{h} }

func (h *fakeHost) BeginChild(id string, flags ChildFlags) { h.record("BeginChild(%s)", id) }
func (h *fakeHost) EndChild()                              { h.record("EndChild") }

func (h *fakeHost) CursorScreenPos() geom.PointF { return h.cursor }
func (h *fakeHost) SetCursorScreenPos(p geom.PointF) {
	h.cursor = p
	h.nodeStart = p
}

func (h *fakeHost) InvisibleButton(id string, size geom.SizeF) bool {
	h.record("InvisibleButton(%s, %gx%g)", id, size.W, size.H)
	h.lastID = id
	return false
}

func (h *fakeHost) IsItemActive() bool {
	h.record("IsItemActive")
	return h.lastID != "" && h.lastID == h.activeID
}

func (h *fakeHost) MouseDragDelta(button MouseButton, threshold float64) geom.PointF {
	return h.delta
}

func (h *fakeHost) PushID(id int) { h.idDepth++ }
func (h *fakeHost) PopID()        { h.idDepth-- }

func (h *fakeHost) PushStyleAlpha(alpha float64) {
	h.record("PushStyleAlpha(%g)", alpha)
	h.alphaStack = append(h.alphaStack, alpha)
}

func (h *fakeHost) PopStyleAlpha() {
	h.record("PopStyleAlpha")
	h.alphaStack = h.alphaStack[:len(h.alphaStack)-1]
}

func (h *fakeHost) LogText(text string) { h.logs = append(h.logs, text) }

func (h *fakeHost) count(call string) int {
	n := 0
	for _, c := range h.calls {
		if c == call {
			n++
		}
	}
	return n
}

type fakeDrawList struct{ h *fakeHost }

func (d fakeDrawList) AddRectFilled(min, max geom.PointF, c Color) {
	d.h.record("AddRectFilled(%g,%g %g,%g)", min.X, min.Y, max.X, max.Y)
}

func (d fakeDrawList) AddLine(a, b geom.PointF, c Color) {
	d.h.record("AddLine(%g,%g %g,%g)", a.X, a.Y, b.X, b.Y)
}

func (d fakeDrawList) AddRect(min, max geom.PointF, c Color) {
	d.h.record("AddRect(%g,%g %g,%g)", min.X, min.Y, max.X, max.Y)
}

// recordingSink collects editor events.
type recordingSink struct {
	events []Event
}

func (s *recordingSink) EmitEvent(e Event) { s.events = append(s.events, e) }

func (s *recordingSink) types() []EventType {
	out := make([]EventType, len(s.events))
	for i, e := range s.events {
		out[i] = e.Type
	}
	return out
}

// recoverError runs fn and returns the error it panicked with, or nil.
func recoverError(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				e = fmt.Errorf("non-error panic: %v", r)
			}
			err = e
		}
	}()
	fn()
	return nil
}
