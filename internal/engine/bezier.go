package engine

import "github.com/DSongManage/PanelCut/internal/model"

// evaluateCubicBezier evaluates a cubic bezier at parameter t using the
// Bernstein basis form.
func evaluateCubicBezier(p0, c1, c2, p3 model.Point, t float64) model.Point {
	mt := 1 - t
	b0 := mt * mt * mt
	b1 := 3 * mt * mt * t
	b2 := 3 * mt * t * t
	b3 := t * t * t
	return model.Point{
		X: b0*p0.X + b1*c1.X + b2*c2.X + b3*p3.X,
		Y: b0*p0.Y + b1*c1.Y + b2*c2.Y + b3*p3.Y,
	}
}

// sampleBezier approximates a cubic bezier as a polyline of n+1 points at
// uniform t steps, endpoints included. All downstream intersection and
// splitting logic works on this polyline; the engine never intersects true
// curves, trading a little precision for much simpler geometry.
func sampleBezier(p0, c1, c2, p3 model.Point, n int) []model.Point {
	if n < 1 {
		n = 1
	}
	points := make([]model.Point, 0, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		points = append(points, evaluateCubicBezier(p0, c1, c2, p3, t))
	}
	return points
}
