package model

import (
	"fmt"
	"hash/fnv"
	"math"
	"sort"
)

// Panel is one enclosed region computed from a page's divider lines.
type Panel struct {
	ID       string  `json:"id"`
	Vertices Polygon `json:"vertices"`
	Bounds   Rect    `json:"bounds"`
	Centroid Point   `json:"centroid"`
	Area     float64 `json:"area"`
}

// NewPanel derives a Panel from a polygon. The ID encodes the panel's
// position in the result list plus its rounded centroid: a session-scoped
// handle for tracking panels across re-renders of the same computation, not
// a stable identity across different line sets. Hosts that need identity
// surviving line edits should key on Fingerprint instead.
func NewPanel(index int, vertices Polygon) Panel {
	centroid := vertices.Centroid()
	return Panel{
		ID: fmt.Sprintf("panel-%d-%dx%d", index,
			int(math.Round(centroid.X)), int(math.Round(centroid.Y))),
		Vertices: vertices,
		Bounds:   vertices.Bounds(),
		Centroid: centroid,
		Area:     vertices.Area(),
	}
}

// Fingerprint returns a geometry-derived identity token: an FNV-1a hash of
// the panel's vertices rounded to one decimal and sorted. Unlike ID it does
// not depend on result ordering, so it survives edits to unrelated lines as
// long as this panel's shape is unchanged.
func (p Panel) Fingerprint() string {
	keys := make([]string, len(p.Vertices))
	for i, v := range p.Vertices {
		keys[i] = fmt.Sprintf("%.1f,%.1f", v.X, v.Y)
	}
	sort.Strings(keys)
	h := fnv.New64a()
	for _, k := range keys {
		h.Write([]byte(k))
		h.Write([]byte{';'})
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

// DiscardedRegion describes a polygon dropped by the sliver filter.
type DiscardedRegion struct {
	Vertices Polygon `json:"vertices"`
	Area     float64 `json:"area"`
	Centroid Point   `json:"centroid"`
}

// RegionResult holds the full output of one solver run. Panels is never
// empty; the diagnostic fields let hosts surface layout problems such as
// floating lines or near-degenerate slivers.
type RegionResult struct {
	Panels       []Panel           `json:"panels"`
	Discarded    []DiscardedRegion `json:"discarded,omitempty"`     // Slivers removed by the minimum-area filter
	SkippedLines []string          `json:"skipped_lines,omitempty"` // Line IDs dropped for non-finite coordinates
	UnusedLines  []string          `json:"unused_lines,omitempty"`  // Line IDs that never produced a split
	Passes       int               `json:"passes"`                  // Solver passes actually run
}

// TotalPanelArea returns the summed area of all returned panels.
func (r RegionResult) TotalPanelArea() float64 {
	var total float64
	for _, p := range r.Panels {
		total += p.Area
	}
	return total
}

// Coverage returns the percentage of the page covered by returned panels.
func (r RegionResult) Coverage(pageWidth, pageHeight float64) float64 {
	total := pageWidth * pageHeight
	if total == 0 {
		return 0
	}
	return r.TotalPanelArea() / total * 100.0
}
