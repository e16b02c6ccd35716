package model

// LayoutStats summarizes a computed panel layout for display and reporting.
type LayoutStats struct {
	PanelCount      int     `json:"panel_count"`
	PageArea        float64 `json:"page_area"`
	PanelArea       float64 `json:"panel_area"`       // Summed area of returned panels
	CoveragePercent float64 `json:"coverage_percent"` // Share of the page covered by panels
	GutterPercent   float64 `json:"gutter_percent"`   // Share lost to filtering and gutters
	MinPanelArea    float64 `json:"min_panel_area"`
	MaxPanelArea    float64 `json:"max_panel_area"`
	AvgPanelArea    float64 `json:"avg_panel_area"`
	BandCounts      []int   `json:"band_counts"` // Panels per reading band, top to bottom
	DiscardedCount  int     `json:"discarded_count"`
	DiscardedArea   float64 `json:"discarded_area"`
}

// CalculateLayoutStats computes summary statistics for a solver result.
// bands controls the reading-band histogram and normally matches the
// solver's ReadingBands setting.
func CalculateLayoutStats(result RegionResult, pageWidth, pageHeight float64, bands int) LayoutStats {
	if bands <= 0 {
		bands = DefaultSettings().ReadingBands
	}

	stats := LayoutStats{
		PanelCount: len(result.Panels),
		PageArea:   pageWidth * pageHeight,
		BandCounts: make([]int, bands),
	}

	for i, p := range result.Panels {
		stats.PanelArea += p.Area
		if i == 0 || p.Area < stats.MinPanelArea {
			stats.MinPanelArea = p.Area
		}
		if p.Area > stats.MaxPanelArea {
			stats.MaxPanelArea = p.Area
		}
		stats.BandCounts[ReadingBand(p.Centroid.Y, pageHeight, bands)]++
	}
	if stats.PanelCount > 0 {
		stats.AvgPanelArea = stats.PanelArea / float64(stats.PanelCount)
	}

	for _, d := range result.Discarded {
		stats.DiscardedCount++
		stats.DiscardedArea += d.Area
	}

	if stats.PageArea > 0 {
		stats.CoveragePercent = stats.PanelArea / stats.PageArea * 100.0
		stats.GutterPercent = 100.0 - stats.CoveragePercent
	}

	return stats
}
