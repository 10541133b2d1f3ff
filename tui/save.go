package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"tight-lines/internal/game"
)

// loadProgress reads saved key/value progress. An empty path or a missing
// file starts fresh.
func loadProgress(path string) (*game.Progress, error) {
	if path == "" {
		return game.NewProgress(), nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return game.NewProgress(), nil
	}
	if err != nil {
		return nil, err
	}

	var values map[string]int
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return game.LoadProgress(values)
}

// saveProgress writes the progress keys to path, if one is set
func saveProgress(path string, p *game.Progress) error {
	if path == "" {
		return nil
	}
	data, err := json.MarshalIndent(p.Save(), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
