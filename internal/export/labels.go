package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/DSongManage/PanelCut/internal/model"
)

// LabelInfo holds the data encoded into each panel label's QR code.
type LabelInfo struct {
	PanelID      string  `json:"id"`
	Fingerprint  string  `json:"fingerprint"`
	ReadingOrder int     `json:"reading_order"`
	PageName     string  `json:"page"`
	CentroidX    float64 `json:"cx"`
	CentroidY    float64 `json:"cy"`
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	Area         float64 `json:"area"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10 rows per page).
// Each label cell is approximately 66.7mm x 25.4mm on US Letter paper.
const (
	labelPageWidth  = 215.9 // US Letter width in mm
	labelPageHeight = 279.4 // US Letter height in mm
	labelMarginTop  = 12.7  // mm
	labelMarginLeft = 4.8   // mm
	labelWidth      = 66.7  // mm per label
	labelHeight     = 25.4  // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// ExportLabels generates a PDF of QR-coded labels, one per computed panel.
// Each label contains the panel ID, its bounds, and a QR code encoding the
// panel metadata as JSON. Labels are laid out on a standard label sheet
// format (Avery 5160 / 3 columns x 10 rows on US Letter).
func ExportLabels(path string, result model.RegionResult, project model.PageProject) error {
	labels := CollectLabelInfos(result, project)
	if len(labels) == 0 {
		return fmt.Errorf("no panels to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		// Add new page when needed
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, label, i); err != nil {
			return fmt.Errorf("failed to render label for %q: %w", label.PanelID, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, info LabelInfo, index int) error {
	// Draw light border for cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	// Generate QR code PNG bytes
	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	// Register QR image with a unique name
	imgName := fmt.Sprintf("qr_%s_%d", info.PanelID, index)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	// Place QR code on the right side of the label
	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	// Text area (left side of label)
	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	// Panel ID (bold, larger)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)

	// Truncate ID if too long
	panelID := info.PanelID
	if pdf.GetStringWidth(panelID) > textW {
		for len(panelID) > 0 && pdf.GetStringWidth(panelID+"...") > textW {
			panelID = panelID[:len(panelID)-1]
		}
		panelID += "..."
	}
	pdf.CellFormat(textW, 4.5, panelID, "", 1, "L", false, 0, "")

	// Bounds
	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	dims := fmt.Sprintf("%.1f x %.1f (area %.1f)", info.Width, info.Height, info.Area)
	pdf.CellFormat(textW, 3.5, dims, "", 1, "L", false, 0, "")

	// Page and reading-order info
	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	pageInfo := fmt.Sprintf("%s - panel %d @ (%.0f, %.0f)", info.PageName, info.ReadingOrder, info.CentroidX, info.CentroidY)
	pdf.CellFormat(textW, 3, pageInfo, "", 1, "L", false, 0, "")

	// Fingerprint line for scanners without QR support
	pdf.SetXY(textX, y+labelPadding+12.5)
	pdf.SetFont("Helvetica", "I", 6)
	pdf.SetTextColor(150, 100, 0)
	pdf.CellFormat(textW, 3, info.Fingerprint, "", 0, "L", false, 0, "")

	// Reset text color
	pdf.SetTextColor(0, 0, 0)

	return nil
}

// CollectLabelInfos extracts label information from a solver result for use
// in testing or alternative export formats. Reading order is 1-based.
func CollectLabelInfos(result model.RegionResult, project model.PageProject) []LabelInfo {
	var labels []LabelInfo
	for i, p := range result.Panels {
		labels = append(labels, LabelInfo{
			PanelID:      p.ID,
			Fingerprint:  p.Fingerprint(),
			ReadingOrder: i + 1,
			PageName:     project.Name,
			CentroidX:    p.Centroid.X,
			CentroidY:    p.Centroid.Y,
			Width:        p.Bounds.Width,
			Height:       p.Bounds.Height,
			Area:         p.Area,
		})
	}
	return labels
}
