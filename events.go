package nodeeditor

import "github.com/phanxgames/nodeeditor/geom"

// EventType identifies a kind of editor event.
type EventType uint8

const (
	EventNodeCreated    EventType = iota // a node was seen for the first time
	EventNodeDestroyed                   // a node was removed with DestroyNode
	EventDragStart                       // a node became the active (dragged) node
	EventDragEnd                         // a drag was released and its offset committed
	EventSettingsLoaded                  // the settings file was read
	EventSettingsSaved                   // the settings file was written
)

var eventTypeNames = [...]string{
	EventNodeCreated:    "NodeCreated",
	EventNodeDestroyed:  "NodeDestroyed",
	EventDragStart:      "DragStart",
	EventDragEnd:        "DragEnd",
	EventSettingsLoaded: "SettingsLoaded",
	EventSettingsSaved:  "SettingsSaved",
}

func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "Unknown"
}

// Event carries editor notifications to an EventSink.
type Event struct {
	Type   EventType
	NodeID int
	// Location is the node's committed location (node events only).
	Location geom.Point
	// Offset is the drag offset (drag events only).
	Offset geom.PointF
	// Count is the number of settings rows (settings events only).
	Count int
}

// EventSink is the interface for optional event forwarding, for example into
// an ECS world. When set in Config, editor events are emitted synchronously
// from the frame that produced them.
type EventSink interface {
	EmitEvent(event Event)
}

func (c *Context) emit(e Event) {
	if c.events == nil {
		return
	}
	c.events.EmitEvent(e)
}
