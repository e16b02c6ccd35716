package engine

import "github.com/DSongManage/PanelCut/internal/model"

// SnapType identifies what a point snapped onto.
type SnapType int

const (
	SnapNone SnapType = iota
	SnapEdge
	SnapLine
)

func (st SnapType) String() string {
	switch st {
	case SnapEdge:
		return "edge"
	case SnapLine:
		return "line"
	default:
		return "none"
	}
}

// SnapResult is the outcome of a snap search. When no candidate lies within
// the threshold, Point is the original query point and Snapped is false.
type SnapResult struct {
	Point   model.Point
	Snapped bool
	Type    SnapType
}

// FindSnapPoint returns the nearest point on a page edge or existing divider
// within threshold of p, for guiding an endpoint being dragged. All inputs
// share the caller's unit space. Edges are checked before lines, so a line
// candidate wins only when strictly closer than the best edge candidate.
func FindSnapPoint(p model.Point, edges []model.LineSegment, lines []model.DividerLine, threshold float64) SnapResult {
	best := SnapResult{Point: p, Type: SnapNone}
	bestDist := threshold

	consider := func(candidate model.Point, snapType SnapType) {
		if d := p.Distance(candidate); d < bestDist {
			bestDist = d
			best = SnapResult{Point: candidate, Snapped: true, Type: snapType}
		}
	}

	for _, edge := range edges {
		consider(closestPointOnSegment(p, edge.Start, edge.End), SnapEdge)
	}
	for _, line := range lines {
		if line.IsBezier() && line.Control1 != nil && line.Control2 != nil {
			samples := sampleBezier(line.Start, *line.Control1, *line.Control2, line.End, model.DefaultBezierSamples)
			for i := 0; i+1 < len(samples); i++ {
				consider(closestPointOnSegment(p, samples[i], samples[i+1]), SnapLine)
			}
			continue
		}
		consider(closestPointOnSegment(p, line.Start, line.End), SnapLine)
	}
	return best
}
