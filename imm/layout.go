package imm

import (
	"fmt"

	"github.com/phanxgames/nodeeditor/geom"
)

type axis uint8

const (
	axisHorizontal axis = iota
	axisVertical
)

func (a axis) String() string {
	if a == axisHorizontal {
		return "Horizontal"
	}
	return "Vertical"
}

func (a axis) main(s geom.SizeF) float64 {
	if a == axisHorizontal {
		return s.W
	}
	return s.H
}

func (a axis) cross(s geom.SizeF) float64 {
	if a == axisHorizontal {
		return s.H
	}
	return s.W
}

func (a axis) size(main, cross float64) geom.SizeF {
	if a == axisHorizontal {
		return geom.SizeF{W: main, H: cross}
	}
	return geom.SizeF{W: cross, H: main}
}

func (a axis) point(main, cross float64) geom.PointF {
	if a == axisHorizontal {
		return geom.PointF{X: main, Y: cross}
	}
	return geom.PointF{X: cross, Y: main}
}

// groupCache is what a group measured on the frame it was last submitted.
type groupCache struct {
	size        geom.SizeF
	minMain     float64 // main extent without spring flex
	totalWeight float64
	frame       uint64
}

// group is an open layout group.
type group struct {
	id     uint64
	axis   axis
	align  float64
	origin geom.PointF
	cache  *groupCache

	// flex is the space springs share this frame.
	flex float64

	used        float64
	minMain     float64
	cross       float64
	totalWeight float64
	items       int
	afterSpring bool
	placeAt     float64
}

func (u *UI) topGroup() *group {
	if len(u.groups) == 0 {
		return nil
	}
	return u.groups[len(u.groups)-1]
}

// BeginHorizontal opens a group that places items left to right.
func (u *UI) BeginHorizontal(id string) { u.beginGroup(id, axisHorizontal, 0) }

// EndHorizontal closes the group opened by BeginHorizontal.
func (u *UI) EndHorizontal() { u.endGroup(axisHorizontal) }

// BeginVertical opens a group that places items top to bottom. align places
// narrower items on the horizontal axis: 0 left, 0.5 centered, 1 right.
func (u *UI) BeginVertical(id string, align float64) { u.beginGroup(id, axisVertical, align) }

// EndVertical closes the group opened by BeginVertical.
func (u *UI) EndVertical() { u.endGroup(axisVertical) }

func (u *UI) beginGroup(id string, a axis, align float64) {
	key := u.ids.hash(id)
	c := u.layouts[key]
	if c == nil {
		c = &groupCache{}
		u.layouts[key] = c
	}
	origin := u.placeItem(c.size)

	g := &group{id: key, axis: a, align: align, origin: origin, cache: c}
	// A group spans its parent's cross extent when the axes differ.
	if p := u.topGroup(); p != nil && p.axis != a && c.totalWeight > 0 {
		target := p.axis.cross(p.cache.size)
		g.flex = max(0, target-c.minMain)
	}

	u.groups = append(u.groups, g)
	u.ids.push(key)
}

func (u *UI) endGroup(a axis) {
	g := u.topGroup()
	if g == nil || g.axis != a {
		panic(fmt.Sprintf("imm: End%s without matching Begin%s", a, a))
	}
	u.groups = u.groups[:len(u.groups)-1]
	u.ids.pop()

	size := a.size(g.used, g.cross)
	*g.cache = groupCache{
		size:        size,
		minMain:     g.minMain,
		totalWeight: g.totalWeight,
		frame:       u.frame,
	}

	u.setLastItem(g.id, geom.RectF{Min: g.origin, Max: g.origin.Add(geom.PointF{X: size.W, Y: size.H})})
	u.advanceItem(size)
}

// Spring inserts spacing plus a weight-proportional share of the space the
// current group was short of on the previous frame. A negative spacing uses
// ItemSpacing. Outside a group it does nothing.
func (u *UI) Spring(weight, spacing float64) {
	g := u.topGroup()
	if g == nil {
		return
	}
	if spacing < 0 {
		spacing = u.opts.ItemSpacing
	}
	flex := 0.0
	if weight > 0 && g.cache.totalWeight > 0 {
		flex = g.flex * weight / g.cache.totalWeight
	}
	g.used += spacing + flex
	g.minMain += spacing
	g.totalWeight += weight
	g.afterSpring = true
}

// placeItem returns the position of the next item of the given size.
func (u *UI) placeItem(size geom.SizeF) geom.PointF {
	g := u.topGroup()
	if g == nil {
		return u.cursor
	}
	off := g.used
	if g.items > 0 && !g.afterSpring {
		off += u.opts.ItemSpacing
	}
	g.placeAt = off
	crossOff := g.align * max(0, g.axis.cross(g.cache.size)-g.axis.cross(size))
	return g.origin.Add(g.axis.point(off, crossOff))
}

// advanceItem commits an item placed with placeItem.
func (u *UI) advanceItem(size geom.SizeF) {
	g := u.topGroup()
	if g == nil {
		u.cursor = geom.PointF{X: u.cursor.X, Y: u.cursor.Y + size.H + u.opts.ItemSpacing}
		return
	}
	main := g.axis.main(size)
	g.minMain += g.placeAt - g.used + main
	g.used = g.placeAt + main
	g.cross = max(g.cross, g.axis.cross(size))
	g.items++
	g.afterSpring = false
}

// pruneLayouts drops measurements of groups not submitted this frame.
func (u *UI) pruneLayouts() {
	for key, c := range u.layouts {
		if c.frame != u.frame {
			delete(u.layouts, key)
		}
	}
}
