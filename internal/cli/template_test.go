package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/DSongManage/PanelCut/internal/project"
)

func TestTemplateListCmd(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	cmd := newTemplateListCmd()
	cmd.SetOut(&out)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("template list returned error: %v", err)
	}

	for _, name := range []string{"Full Page", "2x2 Grid", "Splash Top"} {
		if !strings.Contains(out.String(), name) {
			t.Errorf("expected built-in template %q in listing", name)
		}
	}
}

func TestTemplateShowCmd(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	cmd := newTemplateShowCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"2x2 Grid"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("template show returned error: %v", err)
	}
	if got := strings.Count(out.String(), "straight"); got != 2 {
		t.Errorf("expected 2 straight lines in output, got %d:\n%s", got, out.String())
	}
}

func TestTemplateShowCmd_Unknown(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cmd := newTemplateShowCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"No Such Layout"})
	if err := cmd.Execute(); err == nil {
		t.Error("expected error for unknown template")
	}
}

func TestTemplateApplyCmd(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	projPath := writeGridProject(t, dir)

	cmd := newTemplateApplyCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"Three Row", projPath})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("template apply returned error: %v", err)
	}

	proj, err := project.LoadProject(projPath)
	if err != nil {
		t.Fatalf("failed to reload project: %v", err)
	}
	if len(proj.Lines) != 2 {
		t.Fatalf("expected Three Row's 2 lines, got %d", len(proj.Lines))
	}
	if proj.Lines[0].Order != 0 || proj.Lines[1].Order != 1 {
		t.Error("expected template lines ordered 0..n-1")
	}
}

func TestPresetListCmd(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	cmd := newPresetCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"list"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("preset list returned error: %v", err)
	}

	for _, name := range []string{"US Comic", "A4 Portrait", "B5 Manga"} {
		if !strings.Contains(out.String(), name) {
			t.Errorf("expected built-in preset %q in listing", name)
		}
	}
}

func TestFindTemplate_BuiltinFirst(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	tpl, ok := findTemplate("Two Row")
	if !ok {
		t.Fatal("expected built-in template to be found")
	}
	if len(tpl.Lines) != 1 {
		t.Errorf("expected 1 line in Two Row, got %d", len(tpl.Lines))
	}

	if _, ok := findTemplate("definitely missing"); ok {
		t.Error("expected lookup miss for unknown name")
	}
}
