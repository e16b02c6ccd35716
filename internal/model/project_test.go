package model

import "testing"

func TestNewPageProject(t *testing.T) {
	p := NewPageProject()
	if p.Name != "Untitled" {
		t.Errorf("expected 'Untitled', got %q", p.Name)
	}
	if p.PageWidth != 100 || p.PageHeight != 100 {
		t.Errorf("expected 100x100 page, got %vx%v", p.PageWidth, p.PageHeight)
	}
	if len(p.Lines) != 0 {
		t.Errorf("expected no lines, got %d", len(p.Lines))
	}
	if p.Settings.ProximityTolerance != DefaultSettings().ProximityTolerance {
		t.Error("expected default settings")
	}
}

func TestPageProjectAddLine(t *testing.T) {
	p := NewPageProject()
	p.AddLine(NewStraightLine(Point{X: 0, Y: 50}, Point{X: 100, Y: 50}))
	p.AddLine(NewStraightLine(Point{X: 50, Y: 0}, Point{X: 50, Y: 100}))

	if len(p.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(p.Lines))
	}
	if p.Lines[0].Order != 0 || p.Lines[1].Order != 1 {
		t.Errorf("expected orders 0,1 got %d,%d", p.Lines[0].Order, p.Lines[1].Order)
	}

	// Removing the first line must not disturb later order assignment
	p.RemoveLine(p.Lines[0].ID)
	p.AddLine(NewStraightLine(Point{X: 0, Y: 25}, Point{X: 100, Y: 25}))
	if p.Lines[1].Order != 2 {
		t.Errorf("expected next order 2 after removal, got %d", p.Lines[1].Order)
	}
}

func TestPageProjectRemoveAndFindLine(t *testing.T) {
	p := NewPageProject()
	l := NewStraightLine(Point{X: 0, Y: 50}, Point{X: 100, Y: 50})
	p.AddLine(l)

	if found := p.FindLine(l.ID); found == nil {
		t.Fatal("expected to find added line")
	}
	if !p.RemoveLine(l.ID) {
		t.Error("expected removal to succeed")
	}
	if p.RemoveLine(l.ID) {
		t.Error("expected second removal to fail")
	}
	if p.FindLine(l.ID) != nil {
		t.Error("expected removed line to be gone")
	}
}

func TestPageProjectSetLines(t *testing.T) {
	p := NewPageProject()
	p.AddLine(NewStraightLine(Point{X: 0, Y: 10}, Point{X: 100, Y: 10}))

	replacement := []DividerLine{
		NewStraightLine(Point{X: 0, Y: 40}, Point{X: 100, Y: 40}),
		NewStraightLine(Point{X: 0, Y: 70}, Point{X: 100, Y: 70}),
	}
	replacement[0].Order = 99
	replacement[1].Order = 42

	p.SetLines(replacement)
	if len(p.Lines) != 2 {
		t.Fatalf("expected 2 lines after SetLines, got %d", len(p.Lines))
	}
	if p.Lines[0].Order != 0 || p.Lines[1].Order != 1 {
		t.Errorf("expected renumbered orders 0,1 got %d,%d", p.Lines[0].Order, p.Lines[1].Order)
	}
}
