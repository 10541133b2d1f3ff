package game

import (
	"errors"
	"fmt"
	"math"
)

// BobberConfig holds the cast line tunables
type BobberConfig struct {
	Radius float64 // half-size of the bobber hit square
	Speed  float64 // pixels per second, both directions
}

// FishConfig holds base swimmer dimensions, scaled by species size
type FishConfig struct {
	BaseWidth  float64
	BaseHeight float64
}

// PoolConfig controls swimmer population churn
type PoolConfig struct {
	MinCount   int
	MaxCount   int
	InitialMin int
	InitialMax int

	// Timer intervals in seconds
	SpawnIntervalMin   float64
	SpawnIntervalMax   float64
	DespawnIntervalMin float64
	DespawnIntervalMax float64

	EdgeThreshold float64 // distance from a side edge that makes a swimmer eligible for despawn
	InsetX        float64 // spawn inset from the left/right edges
	InsetY        float64 // spawn inset from the top/bottom edges
}

// EncounterConfig holds the tier roll thresholds
type EncounterConfig struct {
	TrashChance     float64
	HazardChance    float64
	LegendaryChance float64
	RareChance      float64

	NightLegendaryFactor float64
}

// HookConfig controls the timing bar
type HookConfig struct {
	BarWidth        float64
	ZoneWidth       float64
	BaseSpeed       float64
	SpeedMultiplier float64
}

// ReelStrategy selects how reel tokens are generated
type ReelStrategy int

const (
	// ReelContinuous emits a random token every SpawnInterval until the round ends
	ReelContinuous ReelStrategy = iota
	// ReelFixed generates exactly the required number of tokens before the round starts
	ReelFixed
)

// ReelConfig controls the arrow-matching round
type ReelConfig struct {
	Strategy       ReelStrategy
	TokenSpeed     float64 // pixels per second
	SpawnY         float64
	HitZoneY       float64
	EarlyTolerance float64 // pixels above the hit zone still counted as a hit
	LateTolerance  float64 // pixels below the hit zone still counted as a hit
	SpawnInterval  float64 // seconds, continuous strategy
	TokenSpacing   float64 // pixels between tokens, fixed strategy
	MissPenalty    float64 // seconds taken off the countdown per missed token
	PreRoll        float64 // seconds before tokens start moving
}

// TimeBand maps casts-in-day below Until to a time of day
type TimeBand struct {
	Time  TimeOfDay
	Until int
}

// DayConfig controls the cast counter
type DayConfig struct {
	CastsPerDay int
	Bands       []TimeBand
}

// UpgradeConfig describes one upgrade track
type UpgradeConfig struct {
	Name           string
	BaseCost       int
	CostMultiplier float64
	MaxLevel       int
	StartValue     float64
	Increment      float64
	MaxValue       float64 // zero means uncapped
}

// Value returns the effect value of the upgrade at level
func (u UpgradeConfig) Value(level int) float64 {
	v := u.StartValue + float64(level)*u.Increment
	if u.MaxValue > 0 {
		v = math.Min(v, u.MaxValue)
	}
	return v
}

// EconomyConfig holds the market settings
type EconomyConfig struct {
	ExchangeRate float64
	Upgrades     map[UpgradeKind]UpgradeConfig
}

// Config groups every tunable of the fishing core
type Config struct {
	Bobber    BobberConfig
	Fish      FishConfig
	Pool      PoolConfig
	Encounter EncounterConfig
	Hook      HookConfig
	Reel      ReelConfig
	Day       DayConfig
	Economy   EconomyConfig
}

// DefaultConfig returns the stock game tuning
func DefaultConfig() Config {
	return Config{
		Bobber: BobberConfig{Radius: 8, Speed: 200},
		Fish:   FishConfig{BaseWidth: 30, BaseHeight: 15},
		Pool: PoolConfig{
			MinCount:           3,
			MaxCount:           12,
			InitialMin:         5,
			InitialMax:         8,
			SpawnIntervalMin:   2,
			SpawnIntervalMax:   5,
			DespawnIntervalMin: 3,
			DespawnIntervalMax: 7,
			EdgeThreshold:      50,
			InsetX:             50,
			InsetY:             30,
		},
		Encounter: EncounterConfig{
			TrashChance:          0.15,
			HazardChance:         0.05,
			LegendaryChance:      0.02,
			RareChance:           0.08,
			NightLegendaryFactor: 2,
		},
		Hook: HookConfig{
			BarWidth:        200,
			ZoneWidth:       40,
			BaseSpeed:       120,
			SpeedMultiplier: 1,
		},
		Reel: ReelConfig{
			Strategy:       ReelContinuous,
			TokenSpeed:     192,
			SpawnY:         -64,
			HitZoneY:       400,
			EarlyTolerance: 51,
			LateTolerance:  26,
			SpawnInterval:  0.8,
			TokenSpacing:   96,
		},
		Day: DayConfig{
			CastsPerDay: 10,
			Bands: []TimeBand{
				{Time: Morning, Until: 3},
				{Time: Afternoon, Until: 5},
				{Time: Evening, Until: 8},
				{Time: Night, Until: 10},
			},
		},
		Economy: EconomyConfig{
			ExchangeRate: 0.05,
			Upgrades: map[UpgradeKind]UpgradeConfig{
				UpgradeLine: {Name: "Line Strength", BaseCost: 50, CostMultiplier: 1.5, MaxLevel: 10, StartValue: 7, Increment: 2},
				UpgradeBait: {Name: "Bait Quality", BaseCost: 75, CostMultiplier: 1.5, MaxLevel: 10, StartValue: 0, Increment: 0.05},
				UpgradeRod:  {Name: "Rod Power", BaseCost: 100, CostMultiplier: 1.5, MaxLevel: 10, StartValue: 0.5, Increment: 0.25, MaxValue: 3},
			},
		},
	}
}

// Validate checks the configuration once before any tick runs
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Bobber.Radius > 0, "bobber radius must be positive, got %v", c.Bobber.Radius)
	check(c.Bobber.Speed > 0, "bobber speed must be positive, got %v", c.Bobber.Speed)
	check(c.Fish.BaseWidth > 0 && c.Fish.BaseHeight > 0, "fish base size must be positive")

	p := c.Pool
	check(p.MinCount >= 0 && p.MinCount <= p.MaxCount, "pool count range [%d,%d] is invalid", p.MinCount, p.MaxCount)
	check(p.InitialMin >= 0 && p.InitialMin <= p.InitialMax, "initial spawn range [%d,%d] is invalid", p.InitialMin, p.InitialMax)
	check(p.SpawnIntervalMin > 0 && p.SpawnIntervalMin <= p.SpawnIntervalMax, "spawn interval range is invalid")
	check(p.DespawnIntervalMin > 0 && p.DespawnIntervalMin <= p.DespawnIntervalMax, "despawn interval range is invalid")
	check(p.EdgeThreshold >= 0 && p.InsetX >= 0 && p.InsetY >= 0, "pool insets must not be negative")

	e := c.Encounter
	for name, v := range map[string]float64{
		"trash": e.TrashChance, "hazard": e.HazardChance,
		"legendary": e.LegendaryChance, "rare": e.RareChance,
	} {
		check(v >= 0 && v <= 1, "%s chance %v outside [0,1]", name, v)
	}
	check(e.NightLegendaryFactor >= 0, "night legendary factor must not be negative")

	h := c.Hook
	check(h.BarWidth > 0, "hook bar width must be positive")
	check(h.ZoneWidth > 0 && h.ZoneWidth <= h.BarWidth, "hook zone width %v must be in (0, bar width]", h.ZoneWidth)
	check(h.BaseSpeed > 0 && h.SpeedMultiplier >= 0, "hook speeds are invalid")

	r := c.Reel
	check(r.Strategy == ReelContinuous || r.Strategy == ReelFixed, "unknown reel strategy %d", r.Strategy)
	check(r.TokenSpeed > 0, "reel token speed must be positive")
	check(r.SpawnY < r.HitZoneY, "reel tokens must spawn above the hit zone")
	check(r.EarlyTolerance >= 0 && r.LateTolerance >= 0, "reel tolerances must not be negative")
	check(r.Strategy != ReelContinuous || r.SpawnInterval > 0, "reel spawn interval must be positive")
	check(r.Strategy != ReelFixed || r.TokenSpacing > 0, "reel token spacing must be positive")
	check(r.MissPenalty >= 0 && r.PreRoll >= 0, "reel penalty and pre-roll must not be negative")

	if err := c.Day.validate(); err != nil {
		errs = append(errs, err)
	}

	check(c.Economy.ExchangeRate >= 0, "exchange rate must not be negative")
	for _, kind := range UpgradeKinds {
		u, ok := c.Economy.Upgrades[kind]
		if !ok {
			errs = append(errs, fmt.Errorf("missing %s upgrade config", kind))
			continue
		}
		check(u.BaseCost > 0 && u.CostMultiplier >= 1 && u.MaxLevel >= 0,
			"%s upgrade cost curve is invalid", kind)
	}

	return errors.Join(errs...)
}

func (d DayConfig) validate() error {
	if d.CastsPerDay <= 0 {
		return fmt.Errorf("casts per day must be positive, got %d", d.CastsPerDay)
	}
	if len(d.Bands) == 0 {
		return errors.New("day cycle needs at least one time band")
	}
	prev := 0
	for i, b := range d.Bands {
		if b.Until <= prev {
			return fmt.Errorf("time band %d (%s) ends at %d, not after %d", i, b.Time, b.Until, prev)
		}
		prev = b.Until
	}
	if prev != d.CastsPerDay {
		return fmt.Errorf("time bands end at %d, want %d", prev, d.CastsPerDay)
	}
	return nil
}
