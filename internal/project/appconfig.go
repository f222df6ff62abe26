package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/piwi3910/budomari/internal/model"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultConfigDir returns the default directory for application data.
// On all platforms this is ~/.budomari/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".budomari")
}

// DefaultConfigPath returns the default path for the application config file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.yaml")
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// SaveAppConfig persists an AppConfig as YAML for .yaml/.yml paths and as
// JSON otherwise. Missing parent directories are created.
func SaveAppConfig(path string, config model.AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(config)
	} else {
		data, err = json.MarshalIndent(config, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// LoadAppConfig reads an AppConfig in any format viper understands, chosen
// by the file extension. Keys missing from the file keep their defaults and
// a missing file yields DefaultAppConfig with no error.
func LoadAppConfig(path string) (model.AppConfig, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return model.DefaultAppConfig(), nil
	}

	v := viper.New()
	setAppConfigDefaults(v)
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return model.AppConfig{}, fmt.Errorf("failed to read config: %w", err)
	}

	var config model.AppConfig
	if err := v.Unmarshal(&config); err != nil {
		return model.AppConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	// Ensure RecentProjects is never nil
	if config.RecentProjects == nil {
		config.RecentProjects = []string{}
	}
	return config, nil
}

func setAppConfigDefaults(v *viper.Viper) {
	d := model.DefaultAppConfig()
	v.SetDefault("default_preset", d.DefaultPreset)
	v.SetDefault("default_kerf", d.DefaultKerf)
	v.SetDefault("default_edge_margin", d.DefaultEdgeMargin)
	v.SetDefault("default_allow_rotation", d.DefaultAllowRotation)
	v.SetDefault("default_algorithm", string(d.DefaultAlgorithm))
	v.SetDefault("max_evaluations", d.MaxEvaluations)
	v.SetDefault("recent_projects", d.RecentProjects)
}
