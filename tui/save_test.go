package main

import (
	"os"
	"path/filepath"
	"testing"

	"tight-lines/internal/game"
)

func TestProgressFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")

	p, err := loadProgress(path)
	if err != nil {
		t.Fatalf("Missing file should start fresh: %v", err)
	}
	if p.Score != 0 || p.Money != 0 {
		t.Errorf("Expected fresh progress, got %+v", p)
	}

	p.Score = 120
	p.Money = 35
	p.Levels[game.UpgradeRod] = 2
	if err := saveProgress(path, p); err != nil {
		t.Fatalf("saveProgress: %v", err)
	}

	loaded, err := loadProgress(path)
	if err != nil {
		t.Fatalf("loadProgress: %v", err)
	}
	if loaded.Score != 120 || loaded.Money != 35 || loaded.Level(game.UpgradeRod) != 2 {
		t.Errorf("Round trip mismatch: %+v", loaded)
	}
}

func TestProgressFileWithoutPath(t *testing.T) {
	if err := saveProgress("", game.NewProgress()); err != nil {
		t.Errorf("Saving with no path should be a no-op, got %v", err)
	}
	if _, err := loadProgress(""); err != nil {
		t.Errorf("Loading with no path should start fresh, got %v", err)
	}
}

func TestProgressFileRejectsBadData(t *testing.T) {
	dir := t.TempDir()

	garbled := filepath.Join(dir, "garbled.json")
	if err := os.WriteFile(garbled, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadProgress(garbled); err == nil {
		t.Error("Expected parse error")
	}

	negative := filepath.Join(dir, "negative.json")
	if err := os.WriteFile(negative, []byte(`{"playerMoney": -5}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadProgress(negative); err == nil {
		t.Error("Expected negative money to be rejected")
	}
}
