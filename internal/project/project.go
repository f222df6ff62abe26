package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/piwi3910/budomari/internal/model"
)

// FileVersion is written into every saved project file.
const FileVersion = "1.0.0"

// ProjectFile is the on-disk envelope of a saved project.
type ProjectFile struct {
	Version string        `json:"version"`
	SavedAt string        `json:"saved_at"`
	Project model.Project `json:"project"`
}

// SaveProject writes the project, including any stored results, as JSON.
func SaveProject(path string, p model.Project) error {
	file := ProjectFile{
		Version: FileVersion,
		SavedAt: time.Now().UTC().Format(time.RFC3339),
		Project: p,
	}
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal project: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write project file: %w", err)
	}
	return nil
}

// LoadProject reads a project written by SaveProject.
func LoadProject(path string) (model.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Project{}, fmt.Errorf("failed to read project file: %w", err)
	}
	var file ProjectFile
	if err := json.Unmarshal(data, &file); err != nil {
		return model.Project{}, fmt.Errorf("failed to parse project file: %w", err)
	}
	if file.Version == "" {
		return model.Project{}, fmt.Errorf("invalid project file: missing version field")
	}
	if file.Project.Demands == nil {
		file.Project.Demands = []model.PieceDemand{}
	}
	return file.Project, nil
}
