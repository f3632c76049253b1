package ecs

import (
	"github.com/phanxgames/nodeeditor"
	"github.com/phanxgames/nodeeditor/geom"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// EditorEventType is the Donburi event type for editor events. Subscribe to
// it in your ECS systems and drain it with ProcessEvents.
var EditorEventType = events.NewEventType[nodeeditor.Event]()

// NodeData mirrors an editor node's committed location.
type NodeData struct {
	ID       int
	Location geom.Point
}

// NodeComponent is attached to the entity mirroring each live editor node.
var NodeComponent = donburi.NewComponentType[NodeData]()

// DonburiSink is an EventSink backed by a Donburi world.
type DonburiSink struct {
	world    donburi.World
	entities map[int]donburi.Entity
}

var _ nodeeditor.EventSink = (*DonburiSink)(nil)

// NewDonburiSink creates an EventSink that publishes to EditorEventType and
// keeps one NodeComponent entity per live node.
func NewDonburiSink(world donburi.World) *DonburiSink {
	return &DonburiSink{world: world, entities: make(map[int]donburi.Entity)}
}

// EmitEvent publishes event and updates the node entities.
func (s *DonburiSink) EmitEvent(event nodeeditor.Event) {
	EditorEventType.Publish(s.world, event)

	switch event.Type {
	case nodeeditor.EventNodeCreated:
		if _, ok := s.entities[event.NodeID]; ok {
			s.setLocation(event.NodeID, event.Location)
			return
		}
		e := s.world.Create(NodeComponent)
		NodeComponent.SetValue(s.world.Entry(e), NodeData{ID: event.NodeID, Location: event.Location})
		s.entities[event.NodeID] = e
	case nodeeditor.EventDragEnd:
		s.setLocation(event.NodeID, event.Location)
	case nodeeditor.EventNodeDestroyed:
		if e, ok := s.entities[event.NodeID]; ok {
			s.world.Remove(e)
			delete(s.entities, event.NodeID)
		}
	}
}

func (s *DonburiSink) setLocation(id int, loc geom.Point) {
	e, ok := s.entities[id]
	if !ok || !s.world.Valid(e) {
		return
	}
	NodeComponent.Get(s.world.Entry(e)).Location = loc
}

// Entity returns the entity mirroring node id.
func (s *DonburiSink) Entity(id int) (donburi.Entity, bool) {
	e, ok := s.entities[id]
	return e, ok
}
