// Package store holds the file codecs a list can be saved with.
//
// Text is one item per line and is what the interactive session reads and
// writes. JSON holds an array of strings and is only used when asked for by
// name.
package store

import (
	"fmt"
	"strings"

	"github.com/Makepad-fr/usagi/internal/model"
	"github.com/Makepad-fr/usagi/internal/store/jsonstore"
	"github.com/Makepad-fr/usagi/internal/store/textstore"
)

// Codec loads and saves a whole list at a path.
type Codec struct {
	Name string
	Load func(path string) ([]model.Item, error)
	Save func(path string, items []model.Item) error
}

var (
	Text = Codec{Name: "text", Load: textstore.Load, Save: textstore.Save}
	JSON = Codec{Name: "json", Load: jsonstore.Load, Save: jsonstore.Save}
)

// FormatNames lists the names accepted by ByName.
var FormatNames = []string{Text.Name, JSON.Name}

// ByName returns the codec called name, ignoring case.
func ByName(name string) (Codec, error) {
	switch strings.ToLower(name) {
	case Text.Name:
		return Text, nil
	case JSON.Name:
		return JSON, nil
	}
	return Codec{}, fmt.Errorf("unknown format %q (want one of %s)", name, strings.Join(FormatNames, ", "))
}

// LoadInto appends the items stored at path to l and returns how many
// were added. l is untouched when reading fails.
func (c Codec) LoadInto(l *model.List, path string) (int, error) {
	items, err := c.Load(path)
	if err != nil {
		return 0, err
	}
	return l.AddAll(items), nil
}
