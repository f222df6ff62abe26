package model

import (
	"time"

	"github.com/google/uuid"
)

// DemandTemplate is a reusable cut list with its configuration but without
// any layout results.
type DemandTemplate struct {
	ID          string        `json:"id" yaml:"id"`
	Name        string        `json:"name" yaml:"name"`
	Description string        `json:"description" yaml:"description"`
	CreatedAt   string        `json:"created_at" yaml:"created_at"`
	UpdatedAt   string        `json:"updated_at" yaml:"updated_at"`
	Demands     []PieceDemand `json:"demands" yaml:"demands"`
	Config      Config        `json:"config" yaml:"config"`
}

// NewDemandTemplate captures the demands and configuration of a project.
func NewDemandTemplate(name, description string, demands []PieceDemand, cfg Config) DemandTemplate {
	now := time.Now().UTC().Format(time.RFC3339)
	return DemandTemplate{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Demands:     copyDemands(demands),
		Config:      cfg,
	}
}

// ToProject creates a fresh project from this template.
func (t DemandTemplate) ToProject(projectName string) Project {
	p := NewProject(projectName)
	p.Config = t.Config
	p.Demands = copyDemands(t.Demands)
	return p
}

// TemplateStore holds a collection of demand templates.
type TemplateStore struct {
	Templates []DemandTemplate `json:"templates" yaml:"templates"`
}

func NewTemplateStore() TemplateStore {
	return TemplateStore{Templates: []DemandTemplate{}}
}

func (ts *TemplateStore) Add(t DemandTemplate) {
	ts.Templates = append(ts.Templates, t)
}

// Remove removes a template by ID. Returns true if found and removed.
func (ts *TemplateStore) Remove(id string) bool {
	for i, t := range ts.Templates {
		if t.ID == id {
			ts.Templates = append(ts.Templates[:i], ts.Templates[i+1:]...)
			return true
		}
	}
	return false
}

// FindByName returns the first template with the given name, or nil.
func (ts *TemplateStore) FindByName(name string) *DemandTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].Name == name {
			return &ts.Templates[i]
		}
	}
	return nil
}

func (ts *TemplateStore) Names() []string {
	names := make([]string, len(ts.Templates))
	for i, t := range ts.Templates {
		names[i] = t.Name
	}
	return names
}

func copyDemands(demands []PieceDemand) []PieceDemand {
	if demands == nil {
		return []PieceDemand{}
	}
	cp := make([]PieceDemand, len(demands))
	copy(cp, demands)
	return cp
}
