package model

// SolverSettings holds the tunable thresholds for the panel region solver.
// All distances and areas are interpreted in the caller's unit space; with
// the standard 0-100 percentage space they behave identically at any
// rendered page size. A caller passing raw pixel dimensions must rescale
// these values accordingly.
type SolverSettings struct {
	ProximityTolerance    float64 `json:"proximity_tolerance"`     // Max distance for a line endpoint to snap onto a polygon edge
	IntersectionMergeDist float64 `json:"intersection_merge_dist"` // Candidate intersections closer than this collapse into one
	MinSplitArea          float64 `json:"min_split_area"`          // Split halves below this area are degenerate
	MinPanelAreaRatio     float64 `json:"min_panel_area_ratio"`    // Sliver filter as a fraction of total page area
	DedupCentroidDist     float64 `json:"dedup_centroid_dist"`     // Max centroid distance for two panels to count as duplicates
	DedupAreaRatio        float64 `json:"dedup_area_ratio"`        // Max relative area difference for duplicates
	BezierSamples         int     `json:"bezier_samples"`          // Polyline sample count for curve approximation
	ReadingBands          int     `json:"reading_bands"`           // Horizontal bands for reading-order sorting
	ExtraPasses           int     `json:"extra_passes"`            // Solver pass ceiling is line count plus this
}

// DefaultBezierSamples is the standard polyline resolution for approximating
// a cubic bezier. Also used by the snap assist when projecting onto curves.
const DefaultBezierSamples = 30

// DefaultSettings returns the solver thresholds used by the interactive
// editor. Distances assume the 0-100 percentage coordinate space.
func DefaultSettings() SolverSettings {
	return SolverSettings{
		ProximityTolerance:    5.0,
		IntersectionMergeDist: 1.0,
		MinSplitArea:          0.5,
		MinPanelAreaRatio:     0.01,
		DedupCentroidDist:     2.0,
		DedupAreaRatio:        0.05,
		BezierSamples:         DefaultBezierSamples,
		ReadingBands:          3,
		ExtraPasses:           2,
	}
}
