package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/DSongManage/PanelCut/internal/model"
)

// SaveProject writes a page project to a JSON file, creating any missing
// parent directories.
func SaveProject(path string, p model.PageProject) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadProject reads a page project from a JSON file. Invalid lines are
// rejected here so a hand-edited file cannot smuggle NaN coordinates or a
// bezier without control points into the editor.
func LoadProject(path string) (model.PageProject, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.PageProject{}, err
	}
	var p model.PageProject
	if err := json.Unmarshal(data, &p); err != nil {
		return model.PageProject{}, fmt.Errorf("failed to parse project file: %w", err)
	}
	for _, line := range p.Lines {
		if err := line.Validate(); err != nil {
			return model.PageProject{}, fmt.Errorf("invalid project file: %w", err)
		}
	}
	if p.Lines == nil {
		p.Lines = []model.DividerLine{}
	}
	if p.PageWidth <= 0 || p.PageHeight <= 0 {
		return model.PageProject{}, fmt.Errorf("invalid project file: page dimensions %vx%v", p.PageWidth, p.PageHeight)
	}
	return p, nil
}
