package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/vector"

	"github.com/DSongManage/PanelCut/internal/model"
)

// ExportPNG rasterizes the panel layout at the preset's pixel dimensions.
// Panels are filled with the shared palette over a white page, leaving the
// gutters between panels white; discarded slivers are tinted light red so
// they stand out during review.
func ExportPNG(path string, result model.RegionResult, project model.PageProject, preset model.PagePreset) error {
	if len(result.Panels) == 0 {
		return fmt.Errorf("no panels to export")
	}
	if project.PageWidth <= 0 || project.PageHeight <= 0 {
		return fmt.Errorf("invalid page dimensions %.1f x %.1f", project.PageWidth, project.PageHeight)
	}

	w, h := preset.PixelWidth(), preset.PixelHeight()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("preset %q has zero pixel dimensions", preset.Name)
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	scaleX := float64(w) / project.PageWidth
	scaleY := float64(h) / project.PageHeight

	for i, p := range result.Panels {
		col := panelColors[i%len(panelColors)]
		fillPolygon(img, p.Vertices, scaleX, scaleY, color.RGBA{
			R: uint8(col.R), G: uint8(col.G), B: uint8(col.B), A: 255,
		})
	}
	for _, d := range result.Discarded {
		fillPolygon(img, d.Vertices, scaleX, scaleY, color.RGBA{R: 255, G: 200, B: 200, A: 255})
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create PNG file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// fillPolygon rasterizes one polygon into the image with an anti-aliased
// solid fill.
func fillPolygon(img *image.RGBA, poly model.Polygon, scaleX, scaleY float64, c color.RGBA) {
	if len(poly) < 3 {
		return
	}
	bounds := img.Bounds()
	r := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	r.MoveTo(float32(poly[0].X*scaleX), float32(poly[0].Y*scaleY))
	for _, v := range poly[1:] {
		r.LineTo(float32(v.X*scaleX), float32(v.Y*scaleY))
	}
	r.ClosePath()
	r.Draw(img, bounds, image.NewUniform(c), image.Point{})
}
