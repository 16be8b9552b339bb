package report

import (
	"bytes"

	"github.com/IvanShishkin/filehound/pkg/models"
	"gopkg.in/yaml.v3"
)

// renderYAML renders the full result set as YAML
func renderYAML(results *models.SearchResults) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(results); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
