// Package textstore persists a list as plain text: one item per line,
// no header, no escaping.
package textstore

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Makepad-fr/usagi/internal/model"
)

// Load reads path line by line and returns every non-empty trimmed line.
// Lines have no length limit.
func Load(path string) ([]model.Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	items, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return items, nil
}

// Read decodes items from r.
func Read(r io.Reader) ([]model.Item, error) {
	var items []model.Item
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if it := model.Normalize(line); it != "" {
			items = append(items, it)
		}
		if errors.Is(err, io.EOF) {
			return items, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// Save overwrites path with one item per line.
func Save(path string, items []model.Item) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if err := Write(f, items); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// Write encodes items to w, each followed by a newline.
func Write(w io.Writer, items []model.Item) error {
	bw := bufio.NewWriter(w)
	for _, it := range items {
		if _, err := bw.WriteString(it); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
