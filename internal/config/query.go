package config

import (
	"fmt"
	"os"

	"github.com/IvanShishkin/filehound/pkg/models"
	"gopkg.in/yaml.v3"
)

// LoadQueryFile loads a saved query from a YAML file
func LoadQueryFile(path string) (*models.Query, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read query file: %w", err)
	}

	var q models.Query
	if err := yaml.Unmarshal(data, &q); err != nil {
		return nil, fmt.Errorf("failed to parse query file %s: %w", path, err)
	}

	return &q, nil
}

// SaveQueryFile writes a query as YAML so it can be replayed later
func SaveQueryFile(path string, q models.Query) error {
	data, err := yaml.Marshal(q)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
