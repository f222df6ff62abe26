package model

// AppConfig holds user preferences applied to every new project.
type AppConfig struct {
	DefaultPreset        string    `json:"default_preset" yaml:"default_preset" mapstructure:"default_preset"`
	DefaultKerf          float64   `json:"default_kerf" yaml:"default_kerf" mapstructure:"default_kerf"`
	DefaultEdgeMargin    float64   `json:"default_edge_margin" yaml:"default_edge_margin" mapstructure:"default_edge_margin"`
	DefaultAllowRotation bool      `json:"default_allow_rotation" yaml:"default_allow_rotation" mapstructure:"default_allow_rotation"`
	DefaultAlgorithm     Algorithm `json:"default_algorithm" yaml:"default_algorithm" mapstructure:"default_algorithm"`
	MaxEvaluations       int       `json:"max_evaluations" yaml:"max_evaluations" mapstructure:"max_evaluations"`
	RecentProjects       []string  `json:"recent_projects" yaml:"recent_projects" mapstructure:"recent_projects"`
}

// DefaultAppConfig returns an AppConfig matching DefaultConfig().
func DefaultAppConfig() AppConfig {
	defaults := DefaultConfig()
	return AppConfig{
		DefaultPreset:        SheetPresets[0].Name,
		DefaultKerf:          defaults.Kerf,
		DefaultEdgeMargin:    defaults.EdgeMargin,
		DefaultAllowRotation: defaults.AllowRotation,
		DefaultAlgorithm:     defaults.Algorithm,
		MaxEvaluations:       defaults.MaxEvaluations,
		RecentProjects:       []string{},
	}
}

// ApplyToConfig copies the saved defaults into a run configuration. An
// unknown preset name leaves the sheet size untouched.
func (c AppConfig) ApplyToConfig(cfg *Config) {
	if p, ok := GetPreset(c.DefaultPreset); ok {
		p.Apply(cfg)
	}
	cfg.Kerf = c.DefaultKerf
	cfg.EdgeMargin = c.DefaultEdgeMargin
	cfg.AllowRotation = c.DefaultAllowRotation
	if c.DefaultAlgorithm != "" {
		cfg.Algorithm = c.DefaultAlgorithm
	}
	cfg.MaxEvaluations = c.MaxEvaluations
}

// AddRecentProject moves path to the front of the recent list, keeping at
// most limit entries.
func (c *AppConfig) AddRecentProject(path string, limit int) {
	recent := []string{path}
	for _, p := range c.RecentProjects {
		if p != path && len(recent) < limit {
			recent = append(recent, p)
		}
	}
	c.RecentProjects = recent
}
