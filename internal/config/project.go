package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ivlev/slides2video/internal/slide"
)

// Project is the on-disk YAML document: the config, the slide template,
// and the path of the JSON file with one row of data strings per slide.
type Project struct {
	Config     Config            `yaml:"config"`
	Operations []slide.Operation `yaml:"operations"`
	Data       string            `yaml:"data,omitempty"`
}

// LoadProject reads a project file. Absent config fields keep their
// defaults; a relative data path is resolved against the project file's
// directory.
func LoadProject(path string) (*Project, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	p := &Project{Config: *Default()}
	if err := yaml.Unmarshal(raw, p); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if p.Data != "" && !filepath.IsAbs(p.Data) {
		p.Data = filepath.Join(filepath.Dir(path), p.Data)
	}

	return p, nil
}

// Save writes the project as YAML.
func (p *Project) Save(path string) error {
	raw, err := yaml.Marshal(p)
	if err != nil {
		return err
	}

	return os.WriteFile(path, raw, 0644)
}

// LoadData reads the slide data rows: a JSON array of string arrays.
func LoadData(path string) ([][]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var rows [][]string
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return rows, nil
}
