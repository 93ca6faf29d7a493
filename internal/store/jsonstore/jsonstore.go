package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Makepad-fr/usagi/internal/model"
)

// JSON-backed storage: a single array of strings, human-readable.
// No locking; the session is the only writer.

// Load reads the items stored at path. Empty entries are dropped.
func Load(path string) ([]model.Item, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	var raw []string
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	items := make([]model.Item, 0, len(raw))
	for _, s := range raw {
		if it := model.Normalize(s); it != "" {
			items = append(items, it)
		}
	}
	return items, nil
}

// Save overwrites path with items as an indented JSON array.
func Save(path string, items []model.Item) error {
	if items == nil {
		items = []model.Item{}
	}
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
