package mock

import (
	_ "embed"
	"encoding/json"

	"beanflow-video-generator/domain"
)

//go:embed footage.json
var footageJSON []byte

// ReadFootage returns the canned search results keyed by query.
func ReadFootage() (map[string][]domain.StockVideo, error) {
	var results map[string][]domain.StockVideo
	if err := json.Unmarshal(footageJSON, &results); err != nil {
		return nil, err
	}
	return results, nil
}
