package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Defaults applied to new projects and exports
	DefaultPagePreset         string  `json:"default_page_preset"`
	DefaultExportFormat       string  `json:"default_export_format"` // "pdf", "svg", or "png"
	DefaultProximityTolerance float64 `json:"default_proximity_tolerance"`
	DefaultSliverRatio        float64 `json:"default_sliver_ratio"`
	DefaultBezierSamples      int     `json:"default_bezier_samples"`

	// Application preferences
	RecentProjects []string `json:"recent_projects"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults
// matching the values from DefaultSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultSettings()
	return AppConfig{
		DefaultPagePreset:         PagePresets[0].Name,
		DefaultExportFormat:       "pdf",
		DefaultProximityTolerance: defaults.ProximityTolerance,
		DefaultSliverRatio:        defaults.MinPanelAreaRatio,
		DefaultBezierSamples:      defaults.BezierSamples,
		RecentProjects:            []string{},
	}
}

// ApplyToSettings copies the configured defaults into a SolverSettings.
// Used when creating a new project so it inherits the user's saved defaults.
func (c AppConfig) ApplyToSettings(s *SolverSettings) {
	s.ProximityTolerance = c.DefaultProximityTolerance
	s.MinPanelAreaRatio = c.DefaultSliverRatio
	s.BezierSamples = c.DefaultBezierSamples
}

// maxRecentProjects caps the recent-projects list.
const maxRecentProjects = 10

// AddRecentProject moves or inserts a project path at the front of the
// recent-projects list, keeping at most maxRecentProjects entries.
func (c *AppConfig) AddRecentProject(path string) {
	recent := []string{path}
	for _, p := range c.RecentProjects {
		if p == path {
			continue
		}
		recent = append(recent, p)
	}
	if len(recent) > maxRecentProjects {
		recent = recent[:maxRecentProjects]
	}
	c.RecentProjects = recent
}
