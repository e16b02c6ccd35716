package project

import (
	"path/filepath"
	"testing"

	"github.com/DSongManage/PanelCut/internal/model"
)

func TestSaveAndLoadAppConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	cfg := model.DefaultAppConfig()
	cfg.DefaultPagePreset = "B5 Manga"
	cfg.DefaultExportFormat = "svg"
	cfg.AddRecentProject("/pages/issue1/page3.json")

	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig error: %v", err)
	}

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig error: %v", err)
	}
	if loaded.DefaultPagePreset != "B5 Manga" {
		t.Errorf("expected 'B5 Manga', got %q", loaded.DefaultPagePreset)
	}
	if loaded.DefaultExportFormat != "svg" {
		t.Errorf("expected 'svg', got %q", loaded.DefaultExportFormat)
	}
	if len(loaded.RecentProjects) != 1 || loaded.RecentProjects[0] != "/pages/issue1/page3.json" {
		t.Errorf("expected recent project to round-trip, got %v", loaded.RecentProjects)
	}
}

func TestLoadAppConfig_MissingFileReturnsDefaults(t *testing.T) {
	loaded, err := LoadAppConfig(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("expected no error for missing config, got %v", err)
	}

	defaults := model.DefaultAppConfig()
	if loaded.DefaultPagePreset != defaults.DefaultPagePreset {
		t.Errorf("expected default preset %q, got %q", defaults.DefaultPagePreset, loaded.DefaultPagePreset)
	}
	if loaded.RecentProjects == nil {
		t.Error("RecentProjects should never be nil")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()
	if filepath.Base(path) != "config.json" {
		t.Errorf("expected config.json filename, got %q", path)
	}
	if filepath.Base(filepath.Dir(path)) != ".panelcut" {
		t.Errorf("expected .panelcut directory, got %q", path)
	}
}
