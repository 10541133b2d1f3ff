package game

import "math/rand/v2"

// Modifiers carries the upgrade and day state that shifts tier chances
type Modifiers struct {
	BaitLevel int
	TimeOfDay TimeOfDay
}

// EncounterTable draws species for the swimmer pool.
//
// Tiers are independent Bernoulli rolls checked in priority order
// (trash, hazard, legendary, rare); the common tier takes whatever is left.
// A tier with no species for the habitat is skipped.
type EncounterTable struct {
	catalog *Catalog
	cfg     EncounterConfig
	bait    UpgradeConfig
	rng     *rand.Rand
}

// NewEncounterTable creates an encounter table over catalog
func NewEncounterTable(catalog *Catalog, cfg EncounterConfig, bait UpgradeConfig, rng *rand.Rand) *EncounterTable {
	return &EncounterTable{catalog: catalog, cfg: cfg, bait: bait, rng: rng}
}

// Chance returns the roll threshold of a tier under the given modifiers
func (t *EncounterTable) Chance(tier Tier, mod Modifiers) float64 {
	var p float64
	switch tier {
	case TierTrash:
		p = t.cfg.TrashChance
	case TierHazard:
		p = t.cfg.HazardChance
	case TierLegendary:
		p = t.cfg.LegendaryChance
		if mod.TimeOfDay == Night {
			p *= t.cfg.NightLegendaryFactor
		}
	case TierRare:
		p = t.cfg.RareChance + t.bait.Value(mod.BaitLevel)
	case TierCommon:
		return 1
	}
	return Clamp(p, 0, 1)
}

// Roll selects one species for habitat. The bool is false only when the
// habitat has no species at all, which a validated catalog rules out.
func (t *EncounterTable) Roll(habitat Habitat, mod Modifiers) (Species, bool) {
	for _, tier := range Tiers[:len(Tiers)-1] {
		if t.rng.Float64() >= t.Chance(tier, mod) {
			continue
		}
		if s, ok := t.pick(tier, habitat); ok {
			return s, true
		}
	}
	return t.pick(TierCommon, habitat)
}

func (t *EncounterTable) pick(tier Tier, habitat Habitat) (Species, bool) {
	pool := t.catalog.Pool(tier, habitat)
	if len(pool) == 0 {
		return Species{}, false
	}
	return pool[t.rng.IntN(len(pool))], true
}
