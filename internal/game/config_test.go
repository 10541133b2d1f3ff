package game

import (
	"strings"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidateReportsProblems(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"pool range", func(c *Config) { c.Pool.MinCount = 20 }, "pool count range"},
		{"chance", func(c *Config) { c.Encounter.TrashChance = 1.5 }, "trash chance"},
		{"zone wider than bar", func(c *Config) { c.Hook.ZoneWidth = 500 }, "hook zone width"},
		{"band gap", func(c *Config) { c.Day.Bands[3].Until = 12 }, "time bands end at 12"},
		{"band order", func(c *Config) { c.Day.Bands[1].Until = 2 }, "not after 3"},
		{"missing upgrade", func(c *Config) { delete(c.Economy.Upgrades, UpgradeRod) }, "missing rod upgrade"},
		{"spawn below hit zone", func(c *Config) { c.Reel.SpawnY = 500 }, "spawn above"},
	}
	for _, tc := range tests {
		cfg := DefaultConfig()
		tc.mutate(&cfg)
		err := cfg.Validate()
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: error %q does not mention %q", tc.name, err, tc.want)
		}
	}
}
