package nodeeditor

import (
	"fmt"

	"github.com/phanxgames/nodeeditor/geom"
)

// Node is a rectangular region on the canvas with a caller-assigned id.
// Nodes are owned by the editor; hosts only read them.
type Node struct {
	ID int

	// Bounds is the committed bounding rectangle in canvas screen
	// coordinates. Location changes only when a drag is released; Size
	// follows the last measured layout.
	Bounds geom.Rect
}

// registry owns the editor's nodes, keyed by id. order keeps creation order
// for deterministic iteration.
type registry struct {
	nodes map[int]*Node
	order []int
}

func newRegistry() registry {
	return registry{nodes: make(map[int]*Node)}
}

// find returns the node with id, or nil. Absence is a normal outcome.
func (r *registry) find(id int) *Node {
	return r.nodes[id]
}

// create adds a node for id. Its initial location comes from the stored
// settings row when one exists, otherwise from cursor, in which case a new row
// is added. Duplicate ids are rejected and leave the registry unchanged.
func (r *registry) create(id int, settings *SettingsStore, cursor geom.PointF) (*Node, error) {
	if r.find(id) != nil {
		return nil, fmt.Errorf("%w: %d", ErrDuplicateNode, id)
	}
	n := &Node{ID: id}
	if row := settings.Find(id); row != nil {
		n.Bounds.Location = row.Location
	} else {
		settings.Add(id)
		n.Bounds.Location = cursor.ToPoint()
	}
	r.nodes[id] = n
	r.order = append(r.order, id)
	return n, nil
}

// destroy removes n. A nil node is a no-op. Settings rows are kept.
func (r *registry) destroy(n *Node) error {
	if n == nil {
		return nil
	}
	if r.nodes[n.ID] != n {
		return fmt.Errorf("%w: %d", ErrUnknownNode, n.ID)
	}
	delete(r.nodes, n.ID)
	for i, id := range r.order {
		if id == n.ID {
			copy(r.order[i:], r.order[i+1:])
			r.order = r.order[:len(r.order)-1]
			break
		}
	}
	return nil
}

// all returns the live nodes in creation order.
func (r *registry) all() []*Node {
	out := make([]*Node, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.nodes[id])
	}
	return out
}

func (r *registry) count() int {
	return len(r.order)
}

func (r *registry) reset() {
	clear(r.nodes)
	r.order = r.order[:0]
}
