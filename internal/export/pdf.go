// Package export renders computed panel layouts to various file formats.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/DSongManage/PanelCut/internal/model"
)

// panelColor represents an RGB fill color for a rendered panel.
type panelColor struct {
	R, G, B int
}

// panelColors is the fill palette cycled through by the PDF, SVG, and PNG
// exporters so a panel keeps its color across formats.
var panelColors = []panelColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// hex returns the color as a #rrggbb string for the SVG exporter.
func (c panelColor) hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Page layout constants (A4 portrait in mm).
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	legendHeight = 24.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF generates a PDF proof sheet for a computed panel layout.
// The first page shows the page with every panel drawn in reading order,
// followed by a summary page with statistics and a per-panel table.
func ExportPDF(path string, result model.RegionResult, project model.PageProject) error {
	if len(result.Panels) == 0 {
		return fmt.Errorf("no panels to export")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderLayoutPage(pdf, result, project)

	pdf.AddPage()
	renderSummaryPage(pdf, result, project)

	return pdf.OutputFileAndClose(path)
}

// renderLayoutPage draws the panel layout proof on the current PDF page.
func renderLayoutPage(pdf *fpdf.Fpdf, result model.RegionResult, project model.PageProject) {
	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("%s (%.0f x %.0f)", project.Name, project.PageWidth, project.PageHeight)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// Stats line
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Panels: %d | Coverage: %.1f%% | Solver passes: %d | Slivers removed: %d",
		len(result.Panels), result.Coverage(project.PageWidth, project.PageHeight), result.Passes, len(result.Discarded))
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	// Calculate drawing area
	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - legendHeight

	// Calculate scale to fit the page within the drawing area
	scaleX := drawWidth / project.PageWidth
	scaleY := drawHeight / project.PageHeight
	scale := math.Min(scaleX, scaleY)

	canvasW := project.PageWidth * scale
	canvasH := project.PageHeight * scale

	// Center the drawing horizontally
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Page background
	pdf.SetFillColor(250, 250, 250)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	// Draw panels in reading order
	for i, p := range result.Panels {
		col := panelColors[i%len(panelColors)]
		pts := make([]fpdf.PointType, len(p.Vertices))
		for j, v := range p.Vertices {
			pts[j] = fpdf.PointType{X: offsetX + v.X*scale, Y: offsetY + v.Y*scale}
		}

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Polygon(pts, "FD")

		drawPanelMarker(pdf, p, i+1, scale, offsetX, offsetY)
	}

	// Discarded slivers in dashed red so near-degenerate layouts stand out
	for _, d := range result.Discarded {
		pts := make([]fpdf.PointType, len(d.Vertices))
		for j, v := range d.Vertices {
			pts[j] = fpdf.PointType{X: offsetX + v.X*scale, Y: offsetY + v.Y*scale}
		}
		pdf.SetFillColor(255, 200, 200)
		pdf.SetDrawColor(200, 0, 0)
		pdf.SetLineWidth(0.2)
		pdf.SetDashPattern([]float64{1, 1}, 0)
		pdf.Polygon(pts, "FD")
		pdf.SetDashPattern([]float64{}, 0)
	}

	// Dimension annotations along the edges
	drawDimensionAnnotations(pdf, project, offsetX, offsetY, canvasW, canvasH)

	// Panel legend at bottom of page
	drawPanelLegend(pdf, result, project, offsetY+canvasH+5)
}

// drawPanelMarker renders the reading-order number (and the panel ID when
// there is room) at the panel's centroid.
func drawPanelMarker(pdf *fpdf.Fpdf, p model.Panel, readingOrder int, scale, offsetX, offsetY float64) {
	bw := p.Bounds.Width * scale
	bh := p.Bounds.Height * scale
	if bw < 8 || bh < 6 {
		return
	}

	cx := offsetX + p.Centroid.X*scale
	cy := offsetY + p.Centroid.Y*scale

	num := fmt.Sprintf("%d", readingOrder)
	pdf.SetFont("Helvetica", "B", labelFontSize(bw, bh)+2)
	pdf.SetTextColor(0, 0, 0)
	numW := pdf.GetStringWidth(num)
	pdf.SetXY(cx-numW/2, cy-4)
	pdf.CellFormat(numW, 4, num, "", 0, "C", false, 0, "")

	// Second line: panel ID, only if the region is large enough
	if bw > 30 && bh > 14 {
		pdf.SetFont("Helvetica", "", labelFontSize(bw, bh)-1)
		idW := pdf.GetStringWidth(p.ID)
		if idW < bw-2 {
			pdf.SetXY(cx-idW/2, cy+1)
			pdf.CellFormat(idW, 3, p.ID, "", 0, "C", false, 0, "")
		}
	}
}

// drawDimensionAnnotations adds width and height labels outside the page rectangle.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, project model.PageProject, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	// Width annotation (below the page)
	widthLabel := fmt.Sprintf("%.0f", project.PageWidth)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(canvasW-wLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	// Height annotation (to the left of the page, rotated)
	heightLabel := fmt.Sprintf("%.0f", project.PageHeight)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	hLabelW := pdf.GetStringWidth(heightLabel)
	pdf.SetXY(offsetX-3-hLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(hLabelW, 4, heightLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	// Reset text color
	pdf.SetTextColor(0, 0, 0)
}

// drawPanelLegend renders a compact legend of panels at the bottom of the layout page.
func drawPanelLegend(pdf *fpdf.Fpdf, result model.RegionResult, project model.PageProject, startY float64) {
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(30, 4, "Panels:", "", 0, "L", false, 0, "")

	pageArea := project.PageWidth * project.PageHeight

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 18
	maxX := pageWidth - marginRight

	for i, p := range result.Panels {
		col := panelColors[i%len(panelColors)]
		label := fmt.Sprintf("%d: %s", i+1, p.ID)
		if pageArea > 0 {
			label = fmt.Sprintf("%d: %s (%.1f%%)", i+1, p.ID, p.Area/pageArea*100)
		}
		labelW := pdf.GetStringWidth(label) + 6

		// Wrap to next line if needed
		if xPos+labelW > maxX {
			startY += 5
			xPos = marginLeft
		}

		// Color swatch
		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(xPos, startY+0.5, 3, 3, "F")

		// Label text
		pdf.SetXY(xPos+4, startY)
		pdf.CellFormat(labelW-4, 4, label, "", 0, "L", false, 0, "")

		xPos += labelW + 2
	}
}

// renderSummaryPage draws the final summary page with statistics and the
// per-panel breakdown table.
func renderSummaryPage(pdf *fpdf.Fpdf, result model.RegionResult, project model.PageProject) {
	stats := model.CalculateLayoutStats(result, project.PageWidth, project.PageHeight, project.Settings.ReadingBands)

	// Title
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Panel Layout Summary", "", 0, "L", false, 0, "")

	// Separator line
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	// Overall statistics
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Overall Statistics", "", 0, "L", false, 0, "")
	y += 9

	summaryItems := []struct {
		label string
		value string
	}{
		{"Panels", fmt.Sprintf("%d", stats.PanelCount)},
		{"Coverage", fmt.Sprintf("%.1f%%", stats.CoveragePercent)},
		{"Gutter Share", fmt.Sprintf("%.1f%%", stats.GutterPercent)},
		{"Panel Area (min / avg / max)", fmt.Sprintf("%.1f / %.1f / %.1f", stats.MinPanelArea, stats.AvgPanelArea, stats.MaxPanelArea)},
		{"Solver Passes", fmt.Sprintf("%d", result.Passes)},
		{"Slivers Removed", fmt.Sprintf("%d (%.1f area)", stats.DiscardedCount, stats.DiscardedArea)},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	y += 5

	// Per-panel breakdown table
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Panel Breakdown", "", 0, "L", false, 0, "")
	y += 9

	// Table header
	colWidths := []float64{8, 34, 32, 26, 30, 25, 15}
	headers := []string{"#", "Panel ID", "Fingerprint", "Centroid", "Size", "Area", "% Page"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	// Table rows
	pdf.SetFont("Helvetica", "", 8)
	for i, p := range result.Panels {
		xPos = marginLeft
		pct := 0.0
		if stats.PageArea > 0 {
			pct = p.Area / stats.PageArea * 100
		}
		rowData := []string{
			fmt.Sprintf("%d", i+1),
			p.ID,
			p.Fingerprint(),
			fmt.Sprintf("(%.1f, %.1f)", p.Centroid.X, p.Centroid.Y),
			fmt.Sprintf("%.1f x %.1f", p.Bounds.Width, p.Bounds.Height),
			fmt.Sprintf("%.1f", p.Area),
			fmt.Sprintf("%.1f%%", pct),
		}

		// Alternate row background
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	// Diagnostics for lines that contributed nothing
	if len(result.UnusedLines) > 0 || len(result.SkippedLines) > 0 {
		y += 8
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(180, 7, "WARNING: Ineffective Lines", "", 0, "L", false, 0, "")
		y += 8

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)

		for _, id := range result.UnusedLines {
			pdf.SetXY(marginLeft+5, y)
			pdf.CellFormat(180, 5, fmt.Sprintf("- %s: never split a region", id), "", 0, "L", false, 0, "")
			y += 5
		}
		for _, id := range result.SkippedLines {
			pdf.SetXY(marginLeft+5, y)
			pdf.CellFormat(180, 5, fmt.Sprintf("- %s: skipped (non-finite coordinates)", id), "", 0, "L", false, 0, "")
			y += 5
		}
	}

	// Solver settings summary
	y += 8
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Solver Settings", "", 0, "L", false, 0, "")
	y += 9

	s := project.Settings
	settingsItems := []struct {
		label string
		value string
	}{
		{"Proximity Tolerance", fmt.Sprintf("%.1f", s.ProximityTolerance)},
		{"Intersection Merge Dist", fmt.Sprintf("%.1f", s.IntersectionMergeDist)},
		{"Min Split Area", fmt.Sprintf("%.2f", s.MinSplitArea)},
		{"Sliver Ratio", fmt.Sprintf("%.2f", s.MinPanelAreaRatio)},
		{"Bezier Samples", fmt.Sprintf("%d", s.BezierSamples)},
		{"Reading Bands", fmt.Sprintf("%d", s.ReadingBands)},
	}

	pdf.SetFont("Helvetica", "", 9)
	for _, item := range settingsItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(50, 5, item.label+":", "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 5, item.value, "", 0, "L", false, 0, "")
		y += 5
	}

	// Footer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by PanelCut - Comic Panel Layout Engine", "", 0, "C", false, 0, "")
}

// labelFontSize returns an appropriate font size based on the rectangle dimensions.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 8
	case minDim > 20:
		return 7
	default:
		return 6
	}
}
