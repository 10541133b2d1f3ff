package game

import "testing"

func TestChanceModifiers(t *testing.T) {
	cfg := DefaultConfig()
	table := NewEncounterTable(testCatalog(t), cfg.Encounter, cfg.Economy.Upgrades[UpgradeBait], NewRNG(1))

	day := Modifiers{TimeOfDay: Morning}
	night := Modifiers{TimeOfDay: Night}
	if got := table.Chance(TierLegendary, night); !approx(got, 2*table.Chance(TierLegendary, day)) {
		t.Fatalf("night legendary chance=%v want double of %v", got, table.Chance(TierLegendary, day))
	}
	if got := table.Chance(TierRare, Modifiers{BaitLevel: 2}); !approx(got, 0.18) {
		t.Fatalf("rare chance with bait 2=%v want 0.18", got)
	}
	if got := table.Chance(TierCommon, day); got != 1 {
		t.Fatalf("common chance=%v want 1", got)
	}
}

func TestRollForcedTiers(t *testing.T) {
	c := testCatalog(t)
	tests := []struct {
		name string
		cfg  EncounterConfig
		want Tier
	}{
		{"nothing fires", EncounterConfig{}, TierCommon},
		{"trash first", EncounterConfig{TrashChance: 1, HazardChance: 1, RareChance: 1}, TierTrash},
		{"hazard before rare", EncounterConfig{HazardChance: 1, RareChance: 1}, TierHazard},
		{"rare only", EncounterConfig{RareChance: 1}, TierRare},
	}
	for _, tc := range tests {
		table := NewEncounterTable(c, tc.cfg, UpgradeConfig{}, NewRNG(3))
		for i := 0; i < 50; i++ {
			s, ok := table.Roll(Freshwater, Modifiers{})
			if !ok {
				t.Fatalf("%s: roll failed", tc.name)
			}
			if s.Tier != tc.want {
				t.Fatalf("%s: rolled %s (%s) want tier %s", tc.name, s.Name, s.Tier, tc.want)
			}
			if !s.Habitat.Matches(Freshwater) {
				t.Fatalf("%s: rolled %s from the wrong habitat", tc.name, s.Name)
			}
		}
	}
}

func TestRollSkipsEmptyTier(t *testing.T) {
	fresh := testSpecies("perch", TierCommon, 2, 5)
	fresh.Habitat = Freshwater
	salt := testSpecies("goby", TierCommon, 2, 5)
	salt.Habitat = Saltwater
	c, err := NewCatalog([]Species{fresh, salt})
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}

	table := NewEncounterTable(c, EncounterConfig{HazardChance: 1, LegendaryChance: 1}, UpgradeConfig{}, NewRNG(5))
	s, ok := table.Roll(Saltwater, Modifiers{})
	if !ok || s.Name != "goby" {
		t.Fatalf("expected fallback to goby, got %+v ok=%v", s, ok)
	}
}

func TestRollDistributionIsRoughlyConfigured(t *testing.T) {
	cfg := DefaultConfig()
	table := NewEncounterTable(testCatalog(t), cfg.Encounter, cfg.Economy.Upgrades[UpgradeBait], NewRNG(99))
	const n = 20000
	trash := 0
	for i := 0; i < n; i++ {
		s, _ := table.Roll(Freshwater, Modifiers{TimeOfDay: Morning})
		if s.IsTrash() {
			trash++
		}
	}
	ratio := float64(trash) / n
	if ratio < 0.13 || ratio > 0.17 {
		t.Fatalf("trash ratio %.3f far from 0.15", ratio)
	}
}
