package nodeeditor

import "github.com/phanxgames/nodeeditor/geom"

// dragState tracks the single active (dragged) node. The node is referenced,
// never owned; at most one node is active across the whole registry.
type dragState struct {
	active *Node
	offset geom.PointF
}

// drawOffset returns the offset to apply to n's draw position this frame.
// Only the active node is displaced; its committed location is untouched
// until release.
func (d *dragState) drawOffset(n *Node) geom.PointF {
	if n != nil && n == d.active {
		return d.offset
	}
	return geom.PointF{}
}

// update runs after n's hit-test control was submitted. A held node becomes
// the active node and captures delta. A previously active node that is no
// longer held commits the last captured offset into its location.
func (d *dragState) update(n *Node, held bool, delta geom.PointF) (started, committed bool) {
	if held {
		started = d.active != n
		d.active = n
		d.offset = delta
		return started, false
	}
	if d.active == n {
		n.Bounds.Location = n.Bounds.Location.Add(d.offset.ToPoint())
		d.active = nil
		d.offset = geom.PointF{}
		return false, true
	}
	return false, false
}

// release forgets n if it is the active node.
func (d *dragState) release(n *Node) {
	if d.active == n {
		d.active = nil
		d.offset = geom.PointF{}
	}
}
