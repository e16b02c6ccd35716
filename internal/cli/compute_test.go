package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DSongManage/PanelCut/internal/model"
	"github.com/DSongManage/PanelCut/internal/project"
)

// writeGridProject saves a 2x2 grid project into dir and returns its path.
func writeGridProject(t *testing.T, dir string) string {
	t.Helper()

	proj := model.NewPageProject()
	proj.Name = "Grid"
	proj.SetLines([]model.DividerLine{
		model.NewStraightLine(model.Point{X: 0, Y: 50}, model.Point{X: 100, Y: 50}),
		model.NewStraightLine(model.Point{X: 50, Y: 0}, model.Point{X: 50, Y: 100}),
	})

	path := filepath.Join(dir, "grid.json")
	if err := project.SaveProject(path, proj); err != nil {
		t.Fatalf("failed to save test project: %v", err)
	}
	return path
}

func TestComputeCmd_PrintsSummary(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	projPath := writeGridProject(t, dir)

	var out bytes.Buffer
	cmd := newComputeCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{projPath})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("compute returned error: %v", err)
	}
	if !strings.Contains(out.String(), "Grid: 4 panels") {
		t.Errorf("expected 4-panel summary, got:\n%s", out.String())
	}
}

func TestComputeCmd_WritesRequestedExports(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	projPath := writeGridProject(t, dir)

	svgPath := filepath.Join(dir, "out.svg")
	cssPath := filepath.Join(dir, "out.css")
	csvPath := filepath.Join(dir, "out.csv")

	var out bytes.Buffer
	cmd := newComputeCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{projPath, "--svg", svgPath, "--clip", cssPath, "--csv", csvPath})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("compute returned error: %v", err)
	}
	for _, p := range []string{svgPath, cssPath, csvPath} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("expected export %s to exist: %v", p, err)
		}
	}
}

func TestComputeCmd_SaveStoresResult(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	projPath := writeGridProject(t, dir)

	cmd := newComputeCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{projPath, "--save"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("compute returned error: %v", err)
	}

	proj, err := project.LoadProject(projPath)
	if err != nil {
		t.Fatalf("failed to reload project: %v", err)
	}
	if proj.Result == nil {
		t.Fatal("expected result stored in project")
	}
	if len(proj.Result.Panels) != 4 {
		t.Errorf("expected 4 stored panels, got %d", len(proj.Result.Panels))
	}
}

func TestComputeCmd_MissingProject(t *testing.T) {
	cmd := newComputeCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "nope.json")})

	if err := cmd.Execute(); err == nil {
		t.Error("expected error for missing project file")
	}
}
