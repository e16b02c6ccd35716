package importer

import (
	"fmt"
	"math"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"

	"github.com/DSongManage/PanelCut/internal/model"
)

// rawLine is one divider segment in drawing coordinates, before scaling
// into the 0-100 page space. Control points are nil for straight segments.
type rawLine struct {
	start    model.Point
	end      model.Point
	control1 *model.Point
	control2 *model.Point
}

// ImportDXF imports divider lines from a DXF file. LINE entities and
// LWPOLYLINE segments become straight dividers; bulged polyline segments
// and ARC entities become cubic bezier dividers. Polylines are treated as
// open chains. The drawing's bounding box is scaled to fill the 0-100
// page space, with the Y axis flipped (DXF is y-up, the page is y-down).
func ImportDXF(path string) ImportResult {
	result := ImportResult{}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	var raw []rawLine
	skipped := 0
	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.Line:
			seg := rawLine{
				start: model.Point{X: e.Start[0], Y: e.Start[1]},
				end:   model.Point{X: e.End[0], Y: e.End[1]},
			}
			if seg.start == seg.end {
				result.Warnings = append(result.Warnings, "Skipped zero-length LINE entity")
				continue
			}
			raw = append(raw, seg)

		case *entity.LwPolyline:
			segs := lwPolylineToLines(e)
			if len(segs) == 0 {
				result.Warnings = append(result.Warnings, "Skipped LWPOLYLINE with fewer than 2 vertices")
				continue
			}
			raw = append(raw, segs...)

		case *entity.Arc:
			raw = append(raw, arcToLines(e)...)

		case *entity.Circle:
			// A full circle never crosses the page boundary twice, so it
			// can never act as a divider.
			result.Warnings = append(result.Warnings, "Skipped CIRCLE entity: closed loops cannot divide the page")

		default:
			skipped++
		}
	}

	if skipped > 0 {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Skipped %d unsupported entities", skipped))
	}

	if len(raw) == 0 {
		result.Errors = append(result.Errors, "No usable line geometry found in DXF file")
		return result
	}

	for _, line := range scaleToPage(raw) {
		line.Order = len(result.Lines)
		result.Lines = append(result.Lines, line)
	}

	return result
}

// lwPolylineToLines converts a DXF LWPOLYLINE entity to divider segments.
// Consecutive vertex pairs become straight segments; a non-zero bulge on
// a vertex turns its segment into one or more bezier arcs.
func lwPolylineToLines(lw *entity.LwPolyline) []rawLine {
	var lines []rawLine

	for i := 0; i+1 < len(lw.Vertices); i++ {
		v := lw.Vertices[i]
		next := lw.Vertices[i+1]
		p1 := model.Point{X: v[0], Y: v[1]}
		p2 := model.Point{X: next[0], Y: next[1]}

		bulge := 0.0
		if i < len(lw.Bulges) {
			bulge = lw.Bulges[i]
		}

		if math.Abs(bulge) > 1e-9 {
			lines = append(lines, bulgeToBeziers(p1, p2, bulge)...)
		} else if p1 != p2 {
			lines = append(lines, rawLine{start: p1, end: p2})
		}
	}

	return lines
}

// bulgeToBeziers converts an arc defined by two endpoints and a DXF bulge
// factor into cubic bezier segments. The bulge is the tangent of 1/4 the
// included angle, negative for clockwise arcs.
func bulgeToBeziers(p1, p2 model.Point, bulge float64) []rawLine {
	// Chord midpoint and length
	mx := (p1.X + p2.X) / 2
	my := (p1.Y + p2.Y) / 2
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	chordLen := math.Sqrt(dx*dx + dy*dy)
	if chordLen < 1e-9 {
		return nil
	}

	// Sagitta and radius
	sagitta := math.Abs(bulge) * chordLen / 2
	radius := (chordLen*chordLen/(4*sagitta) + sagitta) / 2

	// Center of the arc. A counter-clockwise arc keeps its center on the
	// left of the travel direction; the offset goes negative for arcs
	// wider than a semicircle.
	perpX := -dy / chordLen
	perpY := dx / chordLen
	if bulge < 0 {
		perpX, perpY = -perpX, -perpY
	}
	dist := radius - sagitta
	cx := mx + perpX*dist
	cy := my + perpY*dist

	// Start and end angles, normalized so the sweep follows the bulge sign
	startAngle := math.Atan2(p1.Y-cy, p1.X-cx)
	endAngle := math.Atan2(p2.Y-cy, p2.X-cx)
	if bulge < 0 {
		if endAngle > startAngle {
			endAngle -= 2 * math.Pi
		}
	} else {
		if endAngle < startAngle {
			endAngle += 2 * math.Pi
		}
	}

	return arcBeziers(model.Point{X: cx, Y: cy}, radius, startAngle, endAngle)
}

// arcToLines converts a DXF ARC entity to bezier divider segments.
// DXF arcs always run counter-clockwise from the start to the end angle.
func arcToLines(a *entity.Arc) []rawLine {
	center := model.Point{X: a.Circle.Center[0], Y: a.Circle.Center[1]}
	radius := a.Circle.Radius

	startRad := a.Angle[0] * math.Pi / 180
	endRad := a.Angle[1] * math.Pi / 180
	if endRad <= startRad {
		endRad += 2 * math.Pi
	}

	return arcBeziers(center, radius, startRad, endRad)
}

// arcBeziers approximates a circular arc with cubic bezier segments, one
// per quarter-turn of sweep. The control handles lie on the arc tangents
// with the standard 4/3*tan(step/4) length; the handle sign follows the
// sweep direction automatically.
func arcBeziers(center model.Point, radius, startAngle, endAngle float64) []rawLine {
	sweep := endAngle - startAngle
	if sweep == 0 || radius < 1e-9 {
		return nil
	}

	segments := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2)))
	if segments < 1 {
		segments = 1
	}
	step := sweep / float64(segments)
	k := 4.0 / 3.0 * math.Tan(step/4)

	lines := make([]rawLine, 0, segments)
	for i := 0; i < segments; i++ {
		a1 := startAngle + float64(i)*step
		a2 := a1 + step

		p1 := model.Point{X: center.X + radius*math.Cos(a1), Y: center.Y + radius*math.Sin(a1)}
		p2 := model.Point{X: center.X + radius*math.Cos(a2), Y: center.Y + radius*math.Sin(a2)}
		c1 := model.Point{X: p1.X - k*radius*math.Sin(a1), Y: p1.Y + k*radius*math.Cos(a1)}
		c2 := model.Point{X: p2.X + k*radius*math.Sin(a2), Y: p2.Y - k*radius*math.Cos(a2)}

		lines = append(lines, rawLine{start: p1, end: p2, control1: &c1, control2: &c2})
	}

	return lines
}

// scaleToPage maps raw drawing-space segments into the 0-100 page space.
// X and Y scale independently so the drawing's bounding box fills the
// page. Bezier control points bound their curves, so including them in
// the extents keeps every curve on the page.
func scaleToPage(raw []rawLine) []model.DividerLine {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	extend := func(p model.Point) {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	for _, r := range raw {
		extend(r.start)
		extend(r.end)
		if r.control1 != nil {
			extend(*r.control1)
		}
		if r.control2 != nil {
			extend(*r.control2)
		}
	}

	spanX := maxX - minX
	spanY := maxY - minY
	scale := func(p model.Point) model.Point {
		// Degenerate spans (a single horizontal or vertical line) pin
		// the flat axis to the page center.
		out := model.Point{X: 50, Y: 50}
		if spanX > 1e-9 {
			out.X = (p.X - minX) / spanX * 100
		}
		if spanY > 1e-9 {
			out.Y = (maxY - p.Y) / spanY * 100
		}
		return out
	}

	lines := make([]model.DividerLine, 0, len(raw))
	for _, r := range raw {
		if r.control1 != nil && r.control2 != nil {
			lines = append(lines, model.NewBezierLine(scale(r.start), scale(*r.control1), scale(*r.control2), scale(r.end)))
		} else {
			lines = append(lines, model.NewStraightLine(scale(r.start), scale(r.end)))
		}
	}
	return lines
}
