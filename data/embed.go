package data

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed seed/categories.json
var seedCategories []byte

// DefaultCategories returns the category names seeded into an empty catalog, in seeding order
func DefaultCategories() ([]string, error) {
	var names []string
	if err := json.Unmarshal(seedCategories, &names); err != nil {
		return nil, fmt.Errorf("invalid embedded seed categories: %w", err)
	}
	return names, nil
}
