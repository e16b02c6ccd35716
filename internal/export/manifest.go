package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/DSongManage/PanelCut/internal/model"
)

// manifestHeaders is the column layout shared by the Excel and CSV manifests.
var manifestHeaders = []string{
	"Reading Order", "Panel ID", "Fingerprint",
	"Centroid X", "Centroid Y",
	"Bounds X", "Bounds Y", "Width", "Height",
	"Area", "Page Share %",
}

// manifestRow flattens one panel into manifest cell values.
func manifestRow(index int, p model.Panel, pageArea float64) []interface{} {
	share := 0.0
	if pageArea > 0 {
		share = p.Area / pageArea * 100
	}
	return []interface{}{
		index + 1, p.ID, p.Fingerprint(),
		round2(p.Centroid.X), round2(p.Centroid.Y),
		round2(p.Bounds.X), round2(p.Bounds.Y),
		round2(p.Bounds.Width), round2(p.Bounds.Height),
		round2(p.Area), round2(share),
	}
}

// round2 rounds to two decimals for manifest readability.
func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}

// ExportManifest writes an .xlsx panel manifest: a Panels sheet with one row
// per panel in reading order, and a Summary sheet with layout statistics and
// solver diagnostics.
func ExportManifest(path string, result model.RegionResult, project model.PageProject) error {
	if len(result.Panels) == 0 {
		return fmt.Errorf("no panels to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	const panelSheet = "Panels"
	if err := f.SetSheetName("Sheet1", panelSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DCE6F1"}},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range manifestHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(panelSheet, cell, header)
		f.SetCellStyle(panelSheet, cell, cell, headerStyle)
	}

	pageArea := project.PageWidth * project.PageHeight
	for i, p := range result.Panels {
		for col, value := range manifestRow(i, p, pageArea) {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			f.SetCellValue(panelSheet, cell, value)
		}
	}
	f.SetColWidth(panelSheet, "B", "C", 18)

	if err := writeSummarySheet(f, result, project); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save manifest: %w", err)
	}
	return nil
}

// writeSummarySheet adds layout statistics and line diagnostics to the
// manifest workbook.
func writeSummarySheet(f *excelize.File, result model.RegionResult, project model.PageProject) error {
	const sheet = "Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}

	stats := model.CalculateLayoutStats(result, project.PageWidth, project.PageHeight, project.Settings.ReadingBands)

	rows := [][]interface{}{
		{"Project", project.Name},
		{"Page", fmt.Sprintf("%.0f x %.0f", project.PageWidth, project.PageHeight)},
		{"Panels", stats.PanelCount},
		{"Coverage %", round2(stats.CoveragePercent)},
		{"Gutter %", round2(stats.GutterPercent)},
		{"Min Panel Area", round2(stats.MinPanelArea)},
		{"Avg Panel Area", round2(stats.AvgPanelArea)},
		{"Max Panel Area", round2(stats.MaxPanelArea)},
		{"Solver Passes", result.Passes},
		{"Slivers Removed", stats.DiscardedCount},
		{"Unused Lines", len(result.UnusedLines)},
		{"Skipped Lines", len(result.SkippedLines)},
	}
	for i, row := range rows {
		for col, value := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+1)
			f.SetCellValue(sheet, cell, value)
		}
	}
	f.SetColWidth(sheet, "A", "A", 18)
	return nil
}

// ExportManifestCSV writes the panel manifest as plain CSV with the same
// columns as the Excel export, for hosts without spreadsheet tooling.
func ExportManifestCSV(path string, result model.RegionResult, project model.PageProject) error {
	if len(result.Panels) == 0 {
		return fmt.Errorf("no panels to export")
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(manifestHeaders); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	pageArea := project.PageWidth * project.PageHeight
	for i, p := range result.Panels {
		record := make([]string, 0, len(manifestHeaders))
		for _, value := range manifestRow(i, p, pageArea) {
			switch v := value.(type) {
			case int:
				record = append(record, strconv.Itoa(v))
			case float64:
				record = append(record, strconv.FormatFloat(v, 'f', -1, 64))
			default:
				record = append(record, fmt.Sprintf("%v", v))
			}
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}
