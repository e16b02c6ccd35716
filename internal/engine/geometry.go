package engine

import (
	"math"

	"github.com/DSongManage/PanelCut/internal/model"
)

// parallelEps is the determinant magnitude below which two segments are
// treated as parallel or collinear and produce no intersection.
const parallelEps = 1e-10

// segmentIntersection returns the intersection point of segments a1-a2 and
// b1-b2, or nil if they do not intersect. This is segment-segment, not
// line-line: segments that would only cross if extended do not intersect.
// Touching at an endpoint counts as intersecting.
func segmentIntersection(a1, a2, b1, b2 model.Point) *model.Point {
	dax := a2.X - a1.X
	day := a2.Y - a1.Y
	dbx := b2.X - b1.X
	dby := b2.Y - b1.Y

	det := dax*dby - day*dbx
	if math.Abs(det) < parallelEps {
		return nil
	}

	// Solve a1 + t*da = b1 + u*db for t and u.
	t := ((b1.X-a1.X)*dby - (b1.Y-a1.Y)*dbx) / det
	u := ((b1.X-a1.X)*day - (b1.Y-a1.Y)*dax) / det
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return nil
	}

	return &model.Point{X: a1.X + t*dax, Y: a1.Y + t*day}
}

// closestPointOnSegment projects p onto the segment's supporting line and
// clamps the projection parameter to [0,1], so the result always lies on the
// segment itself.
func closestPointOnSegment(p, segStart, segEnd model.Point) model.Point {
	dx := segEnd.X - segStart.X
	dy := segEnd.Y - segStart.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return segStart
	}
	t := ((p.X-segStart.X)*dx + (p.Y-segStart.Y)*dy) / lenSq
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return model.Point{X: segStart.X + t*dx, Y: segStart.Y + t*dy}
}

// distanceToSegment returns the shortest distance from p to the segment.
func distanceToSegment(p, segStart, segEnd model.Point) float64 {
	return p.Distance(closestPointOnSegment(p, segStart, segEnd))
}

// segmentParam returns the unclamped projection parameter of p onto the
// segment: 0 at segStart, 1 at segEnd. For points already known to lie on
// the segment this recovers their parametric position along it.
func segmentParam(p, segStart, segEnd model.Point) float64 {
	dx := segEnd.X - segStart.X
	dy := segEnd.Y - segStart.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return 0
	}
	return ((p.X-segStart.X)*dx + (p.Y-segStart.Y)*dy) / lenSq
}
