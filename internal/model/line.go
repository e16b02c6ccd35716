package model

import (
	"fmt"
	"math"

	"github.com/google/uuid"
)

// LineType identifies how a divider line's geometry is interpreted.
type LineType string

const (
	LineStraight LineType = "straight" // Two endpoints joined by a segment
	LineBezier   LineType = "bezier"   // Cubic bezier with two control points
)

// Default presentation attributes for new divider lines.
const (
	DefaultLineThickness = 2.0
	DefaultLineColor     = "#000000"
)

// DividerLine represents one user-drawn divider on a page. Coordinates are
// always in the 0-100 percentage space at the engine boundary; Thickness,
// Color, and Order are presentation attributes carried for the host.
type DividerLine struct {
	ID        string   `json:"id"`
	Type      LineType `json:"line_type"`
	Start     Point    `json:"start"`
	End       Point    `json:"end"`
	Control1  *Point   `json:"control1,omitempty"` // First bezier control point; nil for straight lines
	Control2  *Point   `json:"control2,omitempty"` // Second bezier control point; nil for straight lines
	Thickness float64  `json:"thickness"`          // Stroke thickness for rendering
	Color     string   `json:"color"`              // Stroke color (#rrggbb)
	Order     int      `json:"order"`              // Stacking position within the page's line set
}

// NewStraightLine creates a straight divider line with a generated ID and
// default presentation attributes.
func NewStraightLine(start, end Point) DividerLine {
	return DividerLine{
		ID:        uuid.New().String()[:8],
		Type:      LineStraight,
		Start:     start,
		End:       end,
		Thickness: DefaultLineThickness,
		Color:     DefaultLineColor,
	}
}

// NewBezierLine creates a cubic bezier divider line with a generated ID and
// default presentation attributes.
func NewBezierLine(start, control1, control2, end Point) DividerLine {
	c1 := control1
	c2 := control2
	return DividerLine{
		ID:        uuid.New().String()[:8],
		Type:      LineBezier,
		Start:     start,
		End:       end,
		Control1:  &c1,
		Control2:  &c2,
		Thickness: DefaultLineThickness,
		Color:     DefaultLineColor,
	}
}

// IsBezier reports whether the line is a cubic bezier.
func (l DividerLine) IsBezier() bool {
	return l.Type == LineBezier
}

// geometryPoints returns the points that define the line's geometry. Control
// points only count for bezier lines; on straight lines they are ignored.
func (l DividerLine) geometryPoints() []Point {
	pts := []Point{l.Start, l.End}
	if l.Type == LineBezier {
		if l.Control1 != nil {
			pts = append(pts, *l.Control1)
		}
		if l.Control2 != nil {
			pts = append(pts, *l.Control2)
		}
	}
	return pts
}

// IsFinite reports whether every geometry coordinate of the line is a finite
// number. The region solver silently skips non-finite lines; API boundaries
// that prefer a hard failure should use Validate instead.
func (l DividerLine) IsFinite() bool {
	for _, p := range l.geometryPoints() {
		if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			return false
		}
	}
	return true
}

// Validate checks that the line is structurally sound: a known type, control
// points present when the type requires them, and finite coordinates.
func (l DividerLine) Validate() error {
	switch l.Type {
	case LineStraight:
		// Control points are ignored for straight lines.
	case LineBezier:
		if l.Control1 == nil || l.Control2 == nil {
			return fmt.Errorf("bezier line %q requires two control points", l.ID)
		}
	default:
		return fmt.Errorf("line %q has unknown type %q", l.ID, l.Type)
	}
	if !l.IsFinite() {
		return fmt.Errorf("line %q has non-finite coordinates", l.ID)
	}
	return nil
}

// BoundarySource is the LineSegment source tag for page edges.
const BoundarySource = "boundary"

// LineSegment is a straight segment with a source tag. The page's edges are
// materialized as boundary-tagged segments so snapping and intersection code
// treat the page frame uniformly with user lines.
type LineSegment struct {
	Start  Point  `json:"start"`
	End    Point  `json:"end"`
	Source string `json:"source"` // Originating line ID, or "boundary" for page edges
}

// PageEdges returns the four page boundary edges as LineSegments tagged
// "boundary", ordered top, right, bottom, left.
func PageEdges(pageWidth, pageHeight float64) []LineSegment {
	return []LineSegment{
		{Start: Point{X: 0, Y: 0}, End: Point{X: pageWidth, Y: 0}, Source: BoundarySource},
		{Start: Point{X: pageWidth, Y: 0}, End: Point{X: pageWidth, Y: pageHeight}, Source: BoundarySource},
		{Start: Point{X: pageWidth, Y: pageHeight}, End: Point{X: 0, Y: pageHeight}, Source: BoundarySource},
		{Start: Point{X: 0, Y: pageHeight}, End: Point{X: 0, Y: 0}, Source: BoundarySource},
	}
}
