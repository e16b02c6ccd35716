package model

import "math"

// Point represents a 2D coordinate. The coordinate space is chosen by the
// caller; divider lines and panels use a 0-100 percentage space so layouts
// stay independent of the rendered page resolution.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Distance returns the Euclidean distance to another point.
func (p Point) Distance(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Rect is an axis-aligned rectangle described by its top-left corner and size.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Contains reports whether the point lies inside the rectangle, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width && p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Polygon represents a closed region as an ordered vertex sequence.
// The polygon is implicitly closed: the last vertex connects back to the first.
type Polygon []Point

// Area returns the absolute polygon area using the shoelace formula.
func (pg Polygon) Area() float64 {
	n := len(pg)
	if n < 3 {
		return 0
	}
	var area float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += pg[i].X * pg[j].Y
		area -= pg[j].X * pg[i].Y
	}
	return math.Abs(area) / 2
}

// Centroid returns the arithmetic mean of the vertices. For the small,
// mostly convex regions produced by page splitting this tracks the true
// area centroid closely enough for ordering and labeling.
func (pg Polygon) Centroid() Point {
	if len(pg) == 0 {
		return Point{}
	}
	var sx, sy float64
	for _, p := range pg {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(pg))
	return Point{X: sx / n, Y: sy / n}
}

// Bounds returns the axis-aligned bounding rectangle of the polygon.
func (pg Polygon) Bounds() Rect {
	if len(pg) == 0 {
		return Rect{}
	}
	minX, minY := pg[0].X, pg[0].Y
	maxX, maxY := pg[0].X, pg[0].Y
	for _, p := range pg[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Contains reports whether the point lies inside the polygon using the
// standard ray-casting parity test.
func (pg Polygon) Contains(p Point) bool {
	n := len(pg)
	if n < 3 {
		return false
	}
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		pi, pj := pg[i], pg[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) &&
			p.X < (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// Perimeter returns the total boundary length including the closing edge.
func (pg Polygon) Perimeter() float64 {
	n := len(pg)
	if n < 2 {
		return 0
	}
	var total float64
	for i := 0; i < n; i++ {
		total += pg[i].Distance(pg[(i+1)%n])
	}
	return total
}

// ReadingBand returns which horizontal band a centroid y falls into when the
// page height is divided into the given number of equal bands. Bands run top
// to bottom; out-of-range values clamp to the first or last band.
func ReadingBand(y, pageHeight float64, bands int) int {
	if bands <= 0 || pageHeight <= 0 {
		return 0
	}
	idx := int(y / (pageHeight / float64(bands)))
	if idx < 0 {
		idx = 0
	}
	if idx >= bands {
		idx = bands - 1
	}
	return idx
}
