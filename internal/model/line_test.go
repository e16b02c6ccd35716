package model

import (
	"math"
	"testing"
)

func TestNewStraightLine(t *testing.T) {
	l := NewStraightLine(Point{X: 0, Y: 50}, Point{X: 100, Y: 50})

	if l.ID == "" {
		t.Error("expected non-empty ID")
	}
	if l.Type != LineStraight {
		t.Errorf("expected straight type, got %q", l.Type)
	}
	if l.Control1 != nil || l.Control2 != nil {
		t.Error("straight line should not carry control points")
	}
	if l.Thickness != DefaultLineThickness {
		t.Errorf("expected default thickness, got %v", l.Thickness)
	}
	if l.Color != DefaultLineColor {
		t.Errorf("expected default color, got %q", l.Color)
	}
}

func TestNewBezierLine(t *testing.T) {
	l := NewBezierLine(
		Point{X: 0, Y: 50},
		Point{X: 30, Y: 20},
		Point{X: 70, Y: 80},
		Point{X: 100, Y: 50},
	)

	if l.Type != LineBezier {
		t.Errorf("expected bezier type, got %q", l.Type)
	}
	if l.Control1 == nil || l.Control2 == nil {
		t.Fatal("bezier line must carry both control points")
	}
	if l.Control1.X != 30 || l.Control2.X != 70 {
		t.Errorf("unexpected control points %+v %+v", l.Control1, l.Control2)
	}
}

func TestDividerLineValidate(t *testing.T) {
	straight := NewStraightLine(Point{X: 0, Y: 0}, Point{X: 100, Y: 100})
	if err := straight.Validate(); err != nil {
		t.Errorf("unexpected error for valid straight line: %v", err)
	}

	bez := NewBezierLine(Point{X: 0, Y: 0}, Point{X: 25, Y: 25}, Point{X: 75, Y: 75}, Point{X: 100, Y: 100})
	if err := bez.Validate(); err != nil {
		t.Errorf("unexpected error for valid bezier line: %v", err)
	}

	missing := bez
	missing.Control2 = nil
	if err := missing.Validate(); err == nil {
		t.Error("expected error for bezier missing a control point")
	}

	unknown := straight
	unknown.Type = "wiggle"
	if err := unknown.Validate(); err == nil {
		t.Error("expected error for unknown line type")
	}

	nan := straight
	nan.End = Point{X: math.NaN(), Y: 50}
	if err := nan.Validate(); err == nil {
		t.Error("expected error for NaN coordinate")
	}

	inf := straight
	inf.Start = Point{X: math.Inf(1), Y: 0}
	if err := inf.Validate(); err == nil {
		t.Error("expected error for infinite coordinate")
	}
}

func TestDividerLineIsFinite(t *testing.T) {
	l := NewStraightLine(Point{X: 0, Y: 0}, Point{X: 100, Y: 100})
	if !l.IsFinite() {
		t.Error("expected finite line")
	}

	l.Start.Y = math.NaN()
	if l.IsFinite() {
		t.Error("expected NaN start to be non-finite")
	}

	// A stray non-finite control point on a straight line is not geometry
	bad := NewStraightLine(Point{X: 0, Y: 0}, Point{X: 100, Y: 100})
	c := Point{X: math.Inf(1), Y: 0}
	bad.Control1 = &c
	if !bad.IsFinite() {
		t.Error("control points should be ignored for straight lines")
	}
}

func TestPageEdges(t *testing.T) {
	edges := PageEdges(100, 200)
	if len(edges) != 4 {
		t.Fatalf("expected 4 edges, got %d", len(edges))
	}
	for i, e := range edges {
		if e.Source != BoundarySource {
			t.Errorf("edge %d: expected boundary source, got %q", i, e.Source)
		}
	}
	// Top edge spans the page width, left edge closes back to the origin
	if edges[0].Start.X != 0 || edges[0].End.X != 100 || edges[0].End.Y != 0 {
		t.Errorf("unexpected top edge %+v", edges[0])
	}
	if edges[3].End.X != 0 || edges[3].End.Y != 0 {
		t.Errorf("expected left edge to end at the origin, got %+v", edges[3])
	}
}
