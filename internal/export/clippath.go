package export

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/DSongManage/PanelCut/internal/model"
)

// ExportCSSClipPaths writes one CSS rule per panel using clip-path polygon
// percentages, ready for hosts that render panels as clipped <div>s or
// <img>s. Coordinates are emitted relative to the project's page dimensions,
// so the rules work at any rendered element size.
func ExportCSSClipPaths(w io.Writer, result model.RegionResult, project model.PageProject) error {
	if len(result.Panels) == 0 {
		return fmt.Errorf("no panels to export")
	}
	pw, ph := project.PageWidth, project.PageHeight
	if pw <= 0 || ph <= 0 {
		return fmt.Errorf("invalid page dimensions %.1f x %.1f", pw, ph)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "/* %s: %d panels in reading order */\n", project.Name, len(result.Panels))
	for i, p := range result.Panels {
		fmt.Fprintf(&buf, ".panel-%d {\n", i+1)
		buf.WriteString("  clip-path: polygon(")
		for j, v := range p.Vertices {
			if j > 0 {
				buf.WriteString(", ")
			}
			fmt.Fprintf(&buf, "%s%% %s%%", fmtNum(v.X/pw*100), fmtNum(v.Y/ph*100))
		}
		buf.WriteString(");\n}\n")
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// WriteClipPathFile renders the panel clip-path rules directly to a file.
func WriteClipPathFile(path string, result model.RegionResult, project model.PageProject) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSS file: %w", err)
	}
	defer f.Close()

	return ExportCSSClipPaths(f, result, project)
}
