package nodeeditor

import "github.com/phanxgames/nodeeditor/geom"

// DefaultSpacing asks Spring for the host's default item spacing.
const DefaultSpacing = -1

// ChildFlags configures the canvas region opened by Begin.
type ChildFlags uint8

const (
	ChildBorder      ChildFlags = 1 << iota // draw a border around the region
	ChildNoScrollbar                        // never show scrollbars
	ChildNoMove                             // dragging inside does not move the parent window
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// DrawList receives the editor's debug and decoration primitives.
// Coordinates are screen positions.
type DrawList interface {
	AddRectFilled(min, max geom.PointF, c Color)
	AddLine(a, b geom.PointF, c Color)
	AddRect(min, max geom.PointF, c Color)
}

// Layout is the part of the host used by the node stage machine: stack
// layout groups, springs, the last item's bounds, and the draw list.
//
// Groups nest and must be closed in reverse order. A horizontal group places
// items left to right, a vertical group top to bottom. align positions items
// on the cross axis of a vertical group (0 left, 1 right).
//
// Spring inserts weight-proportional flexible space plus spacing pixels of
// fixed space along the current group's axis. A negative spacing means the
// host's default item spacing.
type Layout interface {
	BeginHorizontal(id string)
	EndHorizontal()
	BeginVertical(id string, align float64)
	EndVertical()
	Spring(weight, spacing float64)
	ItemRect() geom.RectF
	DrawList() DrawList
}

// Host is the immediate-mode UI capability set the editor is built on.
type Host interface {
	Layout

	BeginChild(id string, flags ChildFlags)
	EndChild()

	CursorScreenPos() geom.PointF
	SetCursorScreenPos(p geom.PointF)

	// InvisibleButton submits an item of exactly size at the cursor that
	// takes part in hit testing but draws nothing.
	InvisibleButton(id string, size geom.SizeF) bool
	// IsItemActive reports whether the last submitted item is held.
	IsItemActive() bool
	// MouseDragDelta returns the pointer movement since button was pressed,
	// or zero when it is not held or has moved less than threshold.
	MouseDragDelta(button MouseButton, threshold float64) geom.PointF

	PushID(id int)
	PopID()

	// PushStyleAlpha multiplies the opacity of everything drawn until the
	// matching PopStyleAlpha.
	PushStyleAlpha(alpha float64)
	PopStyleAlpha()

	// LogText appends a line to the host's in-app log.
	LogText(text string)
}
