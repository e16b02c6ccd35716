package engine

import (
	"math"
	"testing"

	"github.com/DSongManage/PanelCut/internal/model"
)

func TestEvaluateCubicBezier_Endpoints(t *testing.T) {
	p0 := model.Point{X: 10, Y: 20}
	c1 := model.Point{X: 30, Y: 90}
	c2 := model.Point{X: 70, Y: 90}
	p3 := model.Point{X: 90, Y: 20}

	if got := evaluateCubicBezier(p0, c1, c2, p3, 0); got != p0 {
		t.Errorf("expected curve start %v at t=0, got %v", p0, got)
	}
	if got := evaluateCubicBezier(p0, c1, c2, p3, 1); got != p3 {
		t.Errorf("expected curve end %v at t=1, got %v", p3, got)
	}
}

func TestEvaluateCubicBezier_Midpoint(t *testing.T) {
	got := evaluateCubicBezier(
		model.Point{X: 0, Y: 0},
		model.Point{X: 0, Y: 100},
		model.Point{X: 100, Y: 100},
		model.Point{X: 100, Y: 0},
		0.5,
	)
	if math.Abs(got.X-50) > geomEps || math.Abs(got.Y-75) > geomEps {
		t.Errorf("expected (50,75) at t=0.5, got (%v,%v)", got.X, got.Y)
	}
}

func TestSampleBezier_CountAndEndpoints(t *testing.T) {
	p0 := model.Point{X: 0, Y: 50}
	p3 := model.Point{X: 100, Y: 50}
	samples := sampleBezier(p0, model.Point{X: 25, Y: 20}, model.Point{X: 75, Y: 20}, p3, 30)

	if len(samples) != 31 {
		t.Fatalf("expected 31 samples for 30 steps, got %d", len(samples))
	}
	if samples[0] != p0 {
		t.Errorf("expected first sample %v, got %v", p0, samples[0])
	}
	if samples[30] != p3 {
		t.Errorf("expected last sample %v, got %v", p3, samples[30])
	}
}

func TestSampleBezier_ControlsOnChordStayOnChord(t *testing.T) {
	// With both control points on the chord the curve degenerates to the
	// straight segment, so every sample lies on y=x.
	samples := sampleBezier(
		model.Point{X: 0, Y: 0},
		model.Point{X: 25, Y: 25},
		model.Point{X: 75, Y: 75},
		model.Point{X: 100, Y: 100},
		10,
	)
	for i, s := range samples {
		if math.Abs(s.X-s.Y) > geomEps {
			t.Errorf("sample %d should lie on the chord, got (%v,%v)", i, s.X, s.Y)
		}
	}
}

func TestSampleBezier_MinimumResolution(t *testing.T) {
	samples := sampleBezier(model.Point{}, model.Point{}, model.Point{}, model.Point{X: 10}, 0)
	if len(samples) != 2 {
		t.Errorf("expected sample count to clamp to the two endpoints, got %d", len(samples))
	}
}
