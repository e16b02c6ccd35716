package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DSongManage/PanelCut/internal/model"
)

func TestExportSVG_Structure(t *testing.T) {
	var buf bytes.Buffer
	err := ExportSVG(&buf, buildTestResult(), buildTestProject())
	if err != nil {
		t.Fatalf("ExportSVG returned error: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, `viewBox="0 0 100 100"`) {
		t.Error("expected viewBox matching the page dimensions")
	}
	if got := strings.Count(out, "<polygon"); got != 2 {
		t.Errorf("expected 2 polygons, got %d", got)
	}
	// One reading-order marker per panel
	if got := strings.Count(out, "<text"); got != 2 {
		t.Errorf("expected 2 text markers, got %d", got)
	}
	if !strings.HasSuffix(out, "</svg>\n") {
		t.Error("expected closing svg tag")
	}
}

func TestExportSVG_EscapesProjectName(t *testing.T) {
	project := buildTestProject()
	project.Name = "Page <3 & more"

	var buf bytes.Buffer
	if err := ExportSVG(&buf, buildTestResult(), project); err != nil {
		t.Fatalf("ExportSVG returned error: %v", err)
	}
	out := buf.String()

	if strings.Contains(out, "<3") {
		t.Error("raw angle bracket leaked into SVG output")
	}
	if !strings.Contains(out, "Page &lt;3 &amp; more") {
		t.Error("expected escaped title text")
	}
}

func TestExportSVG_EmptyResult(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportSVG(&buf, model.RegionResult{}, buildTestProject()); err == nil {
		t.Error("expected error for result with no panels")
	}
}

func TestWriteSVGFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.svg")

	if err := WriteSVGFile(path, buildTestResult(), buildTestProject()); err != nil {
		t.Fatalf("WriteSVGFile returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected output file to exist: %v", err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Error("expected SVG content in file")
	}
}

func TestFmtNum_TrimsTrailingZeros(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{50, "50"},
		{33.333333, "33.33"},
		{0.005, "0.01"},
		{-1.2, "-1.2"},
	}
	for _, tc := range cases {
		if got := fmtNum(tc.in); got != tc.want {
			t.Errorf("fmtNum(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
