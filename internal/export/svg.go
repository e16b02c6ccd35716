package export

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/DSongManage/PanelCut/internal/model"
)

// ExportSVG writes a scalable vector rendering of the panel layout. Each
// panel becomes one <polygon> with a palette fill, followed by a
// reading-order <text> marker at its centroid. The viewBox matches the
// page dimensions so the output scales to any display size.
func ExportSVG(w io.Writer, result model.RegionResult, project model.PageProject) error {
	if len(result.Panels) == 0 {
		return fmt.Errorf("no panels to export")
	}

	pw, ph := project.PageWidth, project.PageHeight
	stroke := math.Min(pw, ph) / 200
	fontSize := math.Min(pw, ph) / 18

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s">`+"\n",
		fmtNum(pw), fmtNum(ph))
	fmt.Fprintf(&buf, `  <title>%s</title>`+"\n", xmlEscape(project.Name))
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%s" height="%s" fill="#fafafa" stroke="#666" stroke-width="%s"/>`+"\n",
		fmtNum(pw), fmtNum(ph), fmtNum(stroke))

	for i, p := range result.Panels {
		col := panelColors[i%len(panelColors)]
		buf.WriteString(`  <polygon points="`)
		for j, v := range p.Vertices {
			if j > 0 {
				buf.WriteByte(' ')
			}
			fmt.Fprintf(&buf, "%s,%s", fmtNum(v.X), fmtNum(v.Y))
		}
		fmt.Fprintf(&buf, `" fill="%s" fill-opacity="0.85" stroke="#1e1e1e" stroke-width="%s"/>`+"\n",
			col.hex(), fmtNum(stroke))
	}

	// Markers go after all polygons so the numbers stay on top
	for i, p := range result.Panels {
		fmt.Fprintf(&buf, `  <text x="%s" y="%s" text-anchor="middle" dominant-baseline="central" font-family="Helvetica, sans-serif" font-size="%s" fill="#111">%d</text>`+"\n",
			fmtNum(p.Centroid.X), fmtNum(p.Centroid.Y), fmtNum(fontSize), i+1)
	}

	buf.WriteString("</svg>\n")

	_, err := w.Write(buf.Bytes())
	return err
}

// WriteSVGFile renders the layout as SVG directly to a file.
func WriteSVGFile(path string, result model.RegionResult, project model.PageProject) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create SVG file: %w", err)
	}
	defer f.Close()

	return ExportSVG(f, result, project)
}

// fmtNum formats a coordinate rounded to two decimals with trailing zeros
// trimmed, keeping SVG and CSS output compact.
func fmtNum(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// xmlEscape makes a user-provided string safe for SVG text content.
func xmlEscape(s string) string {
	return xmlEscaper.Replace(s)
}
