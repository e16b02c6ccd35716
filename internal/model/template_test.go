package model

import "testing"

func TestNewLayoutTemplate(t *testing.T) {
	lines := []DividerLine{
		NewStraightLine(Point{X: 0, Y: 50}, Point{X: 100, Y: 50}),
	}
	tmpl := NewLayoutTemplate("Half", "Two rows", lines)

	if tmpl.ID == "" {
		t.Error("expected non-empty ID")
	}
	if tmpl.CreatedAt == "" || tmpl.UpdatedAt == "" {
		t.Error("expected timestamps")
	}
	if len(tmpl.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(tmpl.Lines))
	}

	// The template must hold an independent copy
	lines[0].Start.Y = 10
	if tmpl.Lines[0].Start.Y != 50 {
		t.Error("expected template lines to be copied, not aliased")
	}
}

func TestLayoutTemplateApply(t *testing.T) {
	p := NewPageProject()
	p.AddLine(NewStraightLine(Point{X: 0, Y: 10}, Point{X: 100, Y: 10}))

	grid := GetTemplate("2x2 Grid")
	grid.Apply(&p)

	if len(p.Lines) != 2 {
		t.Fatalf("expected template to replace lines, got %d", len(p.Lines))
	}
	for i, l := range p.Lines {
		if l.ID == "" {
			t.Errorf("line %d: expected fresh ID", i)
		}
		if l.Order != i {
			t.Errorf("line %d: expected order %d, got %d", i, i, l.Order)
		}
		if l.Thickness != DefaultLineThickness {
			t.Errorf("line %d: expected default thickness, got %v", i, l.Thickness)
		}
		if l.Color != DefaultLineColor {
			t.Errorf("line %d: expected default color, got %q", i, l.Color)
		}
	}

	// Applying twice yields distinct line IDs
	first := p.Lines[0].ID
	grid.Apply(&p)
	if p.Lines[0].ID == first {
		t.Error("expected fresh IDs on each apply")
	}
}

func TestGetTemplateFallsBackToFullPage(t *testing.T) {
	tmpl := GetTemplate("No Such Layout")
	if tmpl.Name != "Full Page" {
		t.Errorf("expected Full Page fallback, got %q", tmpl.Name)
	}
	if len(tmpl.Lines) != 0 {
		t.Errorf("expected no lines in Full Page, got %d", len(tmpl.Lines))
	}
}

func TestBuiltInTemplatesAreWellFormed(t *testing.T) {
	if len(LayoutTemplates) == 0 {
		t.Fatal("expected built-in templates")
	}
	names := map[string]bool{}
	for _, tmpl := range LayoutTemplates {
		if tmpl.Name == "" {
			t.Error("built-in template with empty name")
		}
		if names[tmpl.Name] {
			t.Errorf("duplicate template name %q", tmpl.Name)
		}
		names[tmpl.Name] = true
		for i, l := range tmpl.Lines {
			if l.Type == LineBezier && (l.Control1 == nil || l.Control2 == nil) {
				t.Errorf("template %q line %d: bezier without control points", tmpl.Name, i)
			}
		}
	}
	for _, want := range []string{"Full Page", "2x2 Grid", "Splash Top"} {
		if !names[want] {
			t.Errorf("missing built-in template %q", want)
		}
	}
}

func TestTemplateStore(t *testing.T) {
	store := NewTemplateStore()
	tmpl := NewLayoutTemplate("Custom", "desc", nil)
	store.Add(tmpl)

	if found := store.FindByID(tmpl.ID); found == nil {
		t.Fatal("expected to find stored template by ID")
	}
	if found := store.FindByName("Custom"); found == nil {
		t.Fatal("expected to find stored template by name")
	}
	if names := store.Names(); len(names) != 1 || names[0] != "Custom" {
		t.Errorf("unexpected names %v", names)
	}
	if !store.Remove(tmpl.ID) {
		t.Error("expected removal to succeed")
	}
	if store.Remove(tmpl.ID) {
		t.Error("expected second removal to fail")
	}
}
