package engine

import (
	"sort"

	"github.com/DSongManage/PanelCut/internal/model"
)

// onEdgeEps is the distance below which a divider endpoint counts as lying
// exactly on a polygon edge. Exact touches are left to the intersection
// check; the proximity snap only handles endpoints that fell short.
const onEdgeEps = 1e-9

// splitCandidate is one potential crossing between a divider and the polygon
// boundary, recorded by the edge it lies on and its position along that edge.
type splitCandidate struct {
	point     model.Point
	edgeIndex int
	t         float64 // parametric position along the edge
}

// splitPolygonByLine divides one polygon into two along one divider segment.
// curvePoints carries the sampled polyline of a bezier divider and is nil for
// straight dividers. The divider must cross the polygon boundary at exactly
// two points; with any other crossing count, or when a resulting half is
// degenerate, the polygon is returned unchanged.
func splitPolygonByLine(settings model.SolverSettings, poly model.Polygon, lineStart, lineEnd model.Point, curvePoints []model.Point) []model.Polygon {
	original := []model.Polygon{poly}
	n := len(poly)
	if n < 3 {
		return original
	}

	var candidates []splitCandidate
	add := func(p model.Point, edgeIndex int, t float64) {
		// Multiple checks can find the same crossing; keep the first.
		for _, c := range candidates {
			if c.point.Distance(p) < settings.IntersectionMergeDist {
				return
			}
		}
		candidates = append(candidates, splitCandidate{point: p, edgeIndex: edgeIndex, t: t})
	}

	for i := 0; i < n; i++ {
		edgeStart := poly[i]
		edgeEnd := poly[(i+1)%n]

		if ip := segmentIntersection(edgeStart, edgeEnd, lineStart, lineEnd); ip != nil {
			add(*ip, i, segmentParam(*ip, edgeStart, edgeEnd))
		}

		// A divider endpoint meant to touch this edge may have been drawn
		// slightly short; within the proximity tolerance it snaps onto the
		// edge and counts as a crossing.
		for _, endpoint := range []model.Point{lineStart, lineEnd} {
			d := distanceToSegment(endpoint, edgeStart, edgeEnd)
			if d < settings.ProximityTolerance && d > onEdgeEps {
				snapped := closestPointOnSegment(endpoint, edgeStart, edgeEnd)
				add(snapped, i, segmentParam(snapped, edgeStart, edgeEnd))
			}
		}
	}

	// Strict gate: a divider that does not cleanly cross the boundary twice
	// has no effect on this polygon in this pass.
	if len(candidates) != 2 {
		return original
	}

	sort.Slice(candidates, func(a, b int) bool {
		if candidates[a].edgeIndex != candidates[b].edgeIndex {
			return candidates[a].edgeIndex < candidates[b].edgeIndex
		}
		return candidates[a].t < candidates[b].t
	})
	i1, i2 := candidates[0], candidates[1]

	// Walk the boundary forward from each crossing to the other; the divider
	// itself forms the closing chord of each half.
	a := model.Polygon{i1.point}
	for v := i1.edgeIndex + 1; v <= i2.edgeIndex; v++ {
		a = append(a, poly[v])
	}
	a = append(a, i2.point)

	b := model.Polygon{i2.point}
	for v := i2.edgeIndex + 1; ; v++ {
		idx := v % n
		b = append(b, poly[idx])
		if idx == i1.edgeIndex {
			break
		}
	}
	b = append(b, i1.point)

	if len(curvePoints) > 0 {
		a = appendCurveChord(a, curvePoints)
		b = appendCurveChord(b, curvePoints)
	}

	if a.Area() < settings.MinSplitArea || b.Area() < settings.MinSplitArea {
		return original
	}
	return []model.Polygon{a, b}
}

// appendCurveChord replaces the implicit straight closing chord of a freshly
// split polygon with the divider's sampled curve. The samples are walked
// from the chord's start toward its end, reversed when the curve was drawn
// in the opposite direction, so the boundary does not cross itself.
func appendCurveChord(poly model.Polygon, curve []model.Point) model.Polygon {
	if len(poly) == 0 || len(curve) == 0 {
		return poly
	}
	closeStart := poly[len(poly)-1]
	reversed := closeStart.Distance(curve[len(curve)-1]) < closeStart.Distance(curve[0])
	for i := range curve {
		pt := curve[i]
		if reversed {
			pt = curve[len(curve)-1-i]
		}
		if pt == poly[len(poly)-1] {
			continue
		}
		poly = append(poly, pt)
	}
	return poly
}
