package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads the nested brand/product JSON file. Callers are expected to
// substitute an empty catalog when this fails so a missing or malformed
// file never blocks startup.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}

	return &c, nil
}

// LoadArticle reads the free-text company description. Same recovery
// contract as Load: callers fall back to an empty article.
func LoadArticle(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read article file: %w", err)
	}
	return string(data), nil
}
