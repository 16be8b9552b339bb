package report

import (
	"encoding/json"

	"github.com/IvanShishkin/filehound/pkg/models"
)

// renderJSON renders the full result set as indented JSON
func renderJSON(results *models.SearchResults) ([]byte, error) {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
