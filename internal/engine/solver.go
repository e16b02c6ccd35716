package engine

import (
	"math"
	"sort"

	"github.com/DSongManage/PanelCut/internal/model"
)

// Solver computes the panels enclosed by a page's divider lines. It is
// stateless between calls: every Solve recomputes from the full line list.
type Solver struct {
	Settings model.SolverSettings
}

func New(settings model.SolverSettings) *Solver {
	return &Solver{Settings: settings}
}

// processedLine is a divider converted into the page's unit space. Bezier
// dividers carry their sampled polyline; straight dividers have a nil curve.
type processedLine struct {
	id    string
	start model.Point
	end   model.Point
	curve []model.Point
}

// ComputePanelRegions computes the panels enclosed by the given divider
// lines using the default solver settings. Lines are in the 0-100 percentage
// space; pageWidth and pageHeight set the unit space of the output. The
// result is never empty: with no effective dividers it is the full page.
func ComputePanelRegions(lines []model.DividerLine, pageWidth, pageHeight float64) []model.Panel {
	result := New(model.DefaultSettings()).Solve(lines, pageWidth, pageHeight)
	return result.Panels
}

// Solve runs the full computation: preprocess the lines, split polygons to a
// fixed point, then finalize into ordered panels with diagnostics.
//
// Thresholds in the settings are interpreted in the same unit space as
// pageWidth and pageHeight. The defaults assume the 0-100 percentage space;
// a caller passing raw pixel dimensions must rescale them.
func (s *Solver) Solve(lines []model.DividerLine, pageWidth, pageHeight float64) model.RegionResult {
	processed, skipped := s.preprocess(lines, pageWidth, pageHeight)

	polygons := []model.Polygon{pagePolygon(pageWidth, pageHeight)}
	used := make([]bool, len(processed))

	// A divider anchored on another divider cannot split anything until its
	// anchor has produced the boundary it sits on, so unconsumed lines are
	// retried across passes. A line is consumed only once it produces a real
	// split, which also keeps it from re-cutting a curved boundary it
	// helped create. The pass ceiling guards against cyclic non-progress.
	maxPasses := len(processed) + s.Settings.ExtraPasses
	passes := 0
	for pass := 0; pass < maxPasses; pass++ {
		passes++
		progress := false
		for li, pl := range processed {
			if used[li] {
				continue
			}
			next := make([]model.Polygon, 0, len(polygons)+1)
			split := false
			for _, poly := range polygons {
				parts := splitPolygonByLine(s.Settings, poly, pl.start, pl.end, pl.curve)
				if len(parts) > 1 {
					split = true
				}
				next = append(next, parts...)
			}
			if split {
				polygons = next
				used[li] = true
				progress = true
			}
		}
		if !progress {
			break
		}
	}

	result := s.finalize(polygons, pageWidth, pageHeight)
	result.SkippedLines = skipped
	result.Passes = passes
	for li, pl := range processed {
		if !used[li] {
			result.UnusedLines = append(result.UnusedLines, pl.id)
		}
	}
	return result
}

// preprocess converts dividers from the 0-100 percentage space into page
// units, dropping lines with non-finite coordinates. Bezier dividers are
// sampled into polylines here so every later stage sees plain segments.
func (s *Solver) preprocess(lines []model.DividerLine, pageWidth, pageHeight float64) ([]processedLine, []string) {
	var processed []processedLine
	var skipped []string
	for _, line := range lines {
		if !line.IsFinite() {
			skipped = append(skipped, line.ID)
			continue
		}
		pl := processedLine{
			id:    line.ID,
			start: toPageSpace(line.Start, pageWidth, pageHeight),
			end:   toPageSpace(line.End, pageWidth, pageHeight),
		}
		// A bezier missing its control points degrades to a straight line.
		if line.IsBezier() && line.Control1 != nil && line.Control2 != nil {
			c1 := toPageSpace(*line.Control1, pageWidth, pageHeight)
			c2 := toPageSpace(*line.Control2, pageWidth, pageHeight)
			pl.curve = sampleBezier(pl.start, c1, c2, pl.end, s.Settings.BezierSamples)
		}
		processed = append(processed, pl)
	}
	return processed, skipped
}

// finalize filters slivers, collapses duplicate regions, orders the panels
// in reading order, and guarantees a non-empty result.
func (s *Solver) finalize(polygons []model.Polygon, pageWidth, pageHeight float64) model.RegionResult {
	var result model.RegionResult
	minArea := pageWidth * pageHeight * s.Settings.MinPanelAreaRatio

	var kept []model.Polygon
	for _, poly := range polygons {
		area := poly.Area()
		if area < minArea {
			result.Discarded = append(result.Discarded, model.DiscardedRegion{
				Vertices: poly,
				Area:     area,
				Centroid: poly.Centroid(),
			})
			continue
		}
		// The same region can be produced twice across passes; nearly the
		// same centroid and nearly the same area means a duplicate.
		duplicate := false
		for _, prev := range kept {
			prevArea := prev.Area()
			maxArea := math.Max(prevArea, area)
			if prev.Centroid().Distance(poly.Centroid()) < s.Settings.DedupCentroidDist &&
				maxArea > 0 && math.Abs(prevArea-area) < s.Settings.DedupAreaRatio*maxArea {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}
		kept = append(kept, poly)
	}

	// Reading order: top-to-bottom in coarse bands, then left-to-right.
	sort.SliceStable(kept, func(a, b int) bool {
		ca, cb := kept[a].Centroid(), kept[b].Centroid()
		bandA := model.ReadingBand(ca.Y, pageHeight, s.Settings.ReadingBands)
		bandB := model.ReadingBand(cb.Y, pageHeight, s.Settings.ReadingBands)
		if bandA != bandB {
			return bandA < bandB
		}
		if ca.X != cb.X {
			return ca.X < cb.X
		}
		return ca.Y < cb.Y
	})

	for i, poly := range kept {
		result.Panels = append(result.Panels, model.NewPanel(i, poly))
	}
	if len(result.Panels) == 0 {
		result.Panels = []model.Panel{model.NewPanel(0, pagePolygon(pageWidth, pageHeight))}
	}
	return result
}

// toPageSpace maps a 0-100 percentage coordinate onto the page dimensions.
func toPageSpace(p model.Point, pageWidth, pageHeight float64) model.Point {
	return model.Point{X: p.X / 100 * pageWidth, Y: p.Y / 100 * pageHeight}
}

// pagePolygon returns the full page rectangle as a polygon, corners in
// drawing order from the top-left.
func pagePolygon(pageWidth, pageHeight float64) model.Polygon {
	return model.Polygon{
		{X: 0, Y: 0},
		{X: pageWidth, Y: 0},
		{X: pageWidth, Y: pageHeight},
		{X: 0, Y: pageHeight},
	}
}
