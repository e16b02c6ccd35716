package model

import (
	"math"

	"github.com/google/uuid"
)

// PagePreset describes a physical page size for export rendering. The engine
// always works in the 0-100 percentage space; presets only control how that
// space is mapped onto paper or pixels.
type PagePreset struct {
	ID          string  `json:"id,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	WidthMM     float64 `json:"width_mm"`
	HeightMM    float64 `json:"height_mm"`
	DPI         int     `json:"dpi"`
}

// mmPerInch converts between metric page sizes and DPI-based pixel sizes.
const mmPerInch = 25.4

// NewPagePreset creates a custom page preset with a generated ID.
func NewPagePreset(name, description string, widthMM, heightMM float64, dpi int) PagePreset {
	return PagePreset{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		WidthMM:     widthMM,
		HeightMM:    heightMM,
		DPI:         dpi,
	}
}

// PixelWidth returns the raster width implied by the preset's DPI.
func (pp PagePreset) PixelWidth() int {
	return int(math.Round(pp.WidthMM / mmPerInch * float64(pp.DPI)))
}

// PixelHeight returns the raster height implied by the preset's DPI.
func (pp PagePreset) PixelHeight() int {
	return int(math.Round(pp.HeightMM / mmPerInch * float64(pp.DPI)))
}

// Built-in page presets covering common comic formats.
var PagePresets = []PagePreset{
	{
		Name:        "US Comic",
		Description: "Standard US comic trim (6.625 x 10.25 in)",
		WidthMM:     168.3,
		HeightMM:    260.4,
		DPI:         300,
	},
	{
		Name:        "Golden Age",
		Description: "Golden Age US comic trim (7.75 x 10.5 in)",
		WidthMM:     196.9,
		HeightMM:    266.7,
		DPI:         300,
	},
	{
		Name:        "B5 Manga",
		Description: "JIS B5 manga trim",
		WidthMM:     182.0,
		HeightMM:    257.0,
		DPI:         300,
	},
	{
		Name:        "A4 Portrait",
		Description: "ISO A4 portrait",
		WidthMM:     210.0,
		HeightMM:    297.0,
		DPI:         300,
	},
	{
		Name:        "Webtoon Strip",
		Description: "Vertical webtoon episode segment (800 x 2000 px)",
		WidthMM:     67.7,
		HeightMM:    169.3,
		DPI:         300,
	},
}

// GetPreset returns a built-in preset by name, or US Comic (the first entry)
// if not found.
func GetPreset(name string) PagePreset {
	for _, pp := range PagePresets {
		if pp.Name == name {
			return pp
		}
	}
	return PagePresets[0]
}

// PresetNames returns the names of all built-in page presets.
func PresetNames() []string {
	var names []string
	for _, pp := range PagePresets {
		names = append(names, pp.Name)
	}
	return names
}

// PresetStore holds user-saved page presets.
type PresetStore struct {
	Presets []PagePreset `json:"presets"`
}

// NewPresetStore creates an empty preset store.
func NewPresetStore() PresetStore {
	return PresetStore{
		Presets: []PagePreset{},
	}
}

// Add adds a preset to the store.
func (ps *PresetStore) Add(p PagePreset) {
	ps.Presets = append(ps.Presets, p)
}

// Remove removes a preset by ID. Returns true if found and removed.
func (ps *PresetStore) Remove(id string) bool {
	for i, p := range ps.Presets {
		if p.ID == id {
			ps.Presets = append(ps.Presets[:i], ps.Presets[i+1:]...)
			return true
		}
	}
	return false
}

// FindByName returns a pointer to the first stored preset with the given
// name, or nil.
func (ps *PresetStore) FindByName(name string) *PagePreset {
	for i := range ps.Presets {
		if ps.Presets[i].Name == name {
			return &ps.Presets[i]
		}
	}
	return nil
}
