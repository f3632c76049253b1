// Package geom provides the small set of 2D value types shared by the node
// editor and its hosts: integer and float points, sizes, rectangles, and
// affine matrices.
//
// All types are plain values. The coordinate system has its origin at the
// top-left, with Y increasing downward.
package geom

// Point is an integer 2D point. Node locations are stored as Points.
type Point struct {
	X, Y int
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Min returns the component-wise minimum of p and q.
func (p Point) Min(q Point) Point { return Point{min(p.X, q.X), min(p.Y, q.Y)} }

// Max returns the component-wise maximum of p and q.
func (p Point) Max(q Point) Point { return Point{max(p.X, q.X), max(p.Y, q.Y)} }

// ToPointF converts p to float coordinates.
func (p Point) ToPointF() PointF { return PointF{float64(p.X), float64(p.Y)} }

// PointF is a float 2D point used for screen positions and drag deltas.
type PointF struct {
	X, Y float64
}

// Add returns p+q.
func (p PointF) Add(q PointF) PointF { return PointF{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p PointF) Sub(q PointF) PointF { return PointF{p.X - q.X, p.Y - q.Y} }

// Min returns the component-wise minimum of p and q.
func (p PointF) Min(q PointF) PointF { return PointF{min(p.X, q.X), min(p.Y, q.Y)} }

// Max returns the component-wise maximum of p and q.
func (p PointF) Max(q PointF) PointF { return PointF{max(p.X, q.X), max(p.Y, q.Y)} }

// ToPoint converts p to integer coordinates, truncating toward zero.
func (p PointF) ToPoint() Point { return Point{int(p.X), int(p.Y)} }

// Size is an integer width/height pair.
type Size struct {
	W, H int
}

// IsEmpty reports whether either dimension is non-positive.
func (s Size) IsEmpty() bool { return s.W <= 0 || s.H <= 0 }

// ToSizeF converts s to float dimensions.
func (s Size) ToSizeF() SizeF { return SizeF{float64(s.W), float64(s.H)} }

// SizeF is a float width/height pair.
type SizeF struct {
	W, H float64
}

// IsEmpty reports whether either dimension is non-positive.
func (s SizeF) IsEmpty() bool { return s.W <= 0 || s.H <= 0 }

// Rect is an integer rectangle stored as a location (top-left) and a size.
type Rect struct {
	Location Point
	Size     Size
}

// RectFromCorners builds a Rect spanning tl to br.
func RectFromCorners(tl, br Point) Rect {
	return Rect{Location: tl, Size: Size{br.X - tl.X, br.Y - tl.Y}}
}

func (r Rect) Left() int   { return r.Location.X }
func (r Rect) Top() int    { return r.Location.Y }
func (r Rect) Right() int  { return r.Location.X + r.Size.W }
func (r Rect) Bottom() int { return r.Location.Y + r.Size.H }

// TopLeft returns the top-left corner.
func (r Rect) TopLeft() Point { return r.Location }

// BottomRight returns the bottom-right corner.
func (r Rect) BottomRight() Point { return Point{r.Right(), r.Bottom()} }

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool { return r.Size.IsEmpty() }

// Contains reports whether p lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left() && p.X <= r.Right() &&
		p.Y >= r.Top() && p.Y <= r.Bottom()
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.Left() <= other.Right() && r.Right() >= other.Left() &&
		r.Top() <= other.Bottom() && r.Bottom() >= other.Top()
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return RectFromCorners(r.TopLeft().Min(other.TopLeft()), r.BottomRight().Max(other.BottomRight()))
}

// ToRectF converts r to a float rectangle.
func (r Rect) ToRectF() RectF {
	return RectF{Min: r.TopLeft().ToPointF(), Max: r.BottomRight().ToPointF()}
}

// RectF is a float rectangle stored as min/max corners, the form immediate-mode
// hosts report item bounds in.
type RectF struct {
	Min, Max PointF
}

// Size returns the rectangle's width and height.
func (r RectF) Size() SizeF { return SizeF{r.Max.X - r.Min.X, r.Max.Y - r.Min.Y} }

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r RectF) Contains(x, y float64) bool {
	return x >= r.Min.X && x <= r.Max.X &&
		y >= r.Min.Y && y <= r.Max.Y
}

// Expand grows the rectangle by d on every side.
func (r RectF) Expand(d float64) RectF {
	return RectF{Min: PointF{r.Min.X - d, r.Min.Y - d}, Max: PointF{r.Max.X + d, r.Max.Y + d}}
}

// Union returns the smallest rectangle containing both r and other.
func (r RectF) Union(other RectF) RectF {
	return RectF{Min: r.Min.Min(other.Min), Max: r.Max.Max(other.Max)}
}

// ToRect converts r to an integer location/size rectangle, truncating the
// top-left corner and the size independently.
func (r RectF) ToRect() Rect {
	s := r.Size()
	return Rect{Location: r.Min.ToPoint(), Size: Size{int(s.W), int(s.H)}}
}
