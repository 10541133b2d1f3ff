package game

import "math/rand/v2"

// Swimmer is one live fish, piece of trash or hazard in the water
type Swimmer struct {
	ID        uint64  `json:"id"`
	Species   Species `json:"species"`
	Position  Vec2    `json:"position"`
	Direction float64 `json:"direction"` // +1 swimming right, -1 swimming left
}

// Bounds returns the hit rectangle of the swimmer, centered on its position
func (s *Swimmer) Bounds(fish FishConfig) Rect {
	return CenteredRect(s.Position, fish.BaseWidth*s.Species.Size, fish.BaseHeight*s.Species.Size)
}

// SwimmerPool owns the live swimmers and their population churn
type SwimmerPool struct {
	cfg     PoolConfig
	fish    FishConfig
	table   *EncounterTable
	rng     *rand.Rand
	habitat Habitat
	water   Bounds
	mod     Modifiers

	swimmers []*Swimmer // insertion order
	nextID   uint64

	spawnTimer   float64
	despawnTimer float64
}

// NewSwimmerPool creates an empty pool for the given habitat and water bounds
func NewSwimmerPool(cfg PoolConfig, fish FishConfig, table *EncounterTable, habitat Habitat, water Bounds, rng *rand.Rand) *SwimmerPool {
	p := &SwimmerPool{
		cfg:     cfg,
		fish:    fish,
		table:   table,
		rng:     rng,
		habitat: habitat,
		water:   water,
		nextID:  1,
	}
	p.spawnTimer = randomFloat(rng, cfg.SpawnIntervalMin, cfg.SpawnIntervalMax)
	p.despawnTimer = randomFloat(rng, cfg.DespawnIntervalMin, cfg.DespawnIntervalMax)
	return p
}

// SetWater replaces the water interior after a layout change
func (p *SwimmerPool) SetWater(water Bounds) {
	p.water = water
}

// SetModifiers updates the encounter modifiers used for future spawns
func (p *SwimmerPool) SetModifiers(mod Modifiers) {
	p.mod = mod
}

// Len returns the live population
func (p *SwimmerPool) Len() int {
	return len(p.swimmers)
}

// Swimmers returns copies of the live swimmers in insertion order
func (p *SwimmerPool) Swimmers() []Swimmer {
	out := make([]Swimmer, len(p.swimmers))
	for i, s := range p.swimmers {
		out[i] = *s
	}
	return out
}

// SpawnInitial populates the pool with a random count in [min,max]
func (p *SwimmerPool) SpawnInitial(min, max int) int {
	count := randomInt(p.rng, min, max)
	for i := 0; i < count; i++ {
		p.SpawnOne()
	}
	return count
}

// SpawnOne adds a single swimmer drawn from the encounter table
func (p *SwimmerPool) SpawnOne() *Swimmer {
	species, ok := p.table.Roll(p.habitat, p.mod)
	if !ok {
		return nil
	}
	s := &Swimmer{
		ID:      p.nextID,
		Species: species,
		Position: Vec2{
			X: p.spawnCoord(p.water.Left, p.water.Right, p.cfg.InsetX),
			Y: p.spawnCoord(p.water.Top, p.water.Bottom, p.cfg.InsetY),
		},
		Direction: randomDirection(p.rng),
	}
	p.nextID++
	p.swimmers = append(p.swimmers, s)
	return s
}

func (p *SwimmerPool) spawnCoord(lo, hi, inset float64) float64 {
	if hi-lo <= 2*inset {
		return (lo + hi) / 2
	}
	return randomFloat(p.rng, lo+inset, hi-inset)
}

// DespawnOne removes a random swimmer close to either side edge. It does
// nothing when no swimmer is near an edge.
func (p *SwimmerPool) DespawnOne() (Swimmer, bool) {
	var candidates []int
	for i, s := range p.swimmers {
		if s.Position.X <= p.water.Left+p.cfg.EdgeThreshold ||
			s.Position.X >= p.water.Right-p.cfg.EdgeThreshold {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return Swimmer{}, false
	}
	idx := candidates[p.rng.IntN(len(candidates))]
	gone := *p.swimmers[idx]
	p.removeAt(idx)
	return gone, true
}

// Remove takes the swimmer with id out of the pool
func (p *SwimmerPool) Remove(id uint64) (Swimmer, bool) {
	for i, s := range p.swimmers {
		if s.ID == id {
			gone := *s
			p.removeAt(i)
			return gone, true
		}
	}
	return Swimmer{}, false
}

func (p *SwimmerPool) removeAt(i int) {
	copy(p.swimmers[i:], p.swimmers[i+1:])
	p.swimmers[len(p.swimmers)-1] = nil
	p.swimmers = p.swimmers[:len(p.swimmers)-1]
}

// Update moves every swimmer and runs the spawn/despawn timers
func (p *SwimmerPool) Update(dt float64) {
	for _, s := range p.swimmers {
		s.Position.X += s.Species.Speed * s.Direction * dt

		// Turn back toward the interior at the water edges
		if s.Position.X <= p.water.Left {
			s.Direction = 1
		} else if s.Position.X >= p.water.Right {
			s.Direction = -1
		}
	}

	p.spawnTimer -= dt
	if p.spawnTimer <= 0 && len(p.swimmers) < p.cfg.MaxCount {
		p.SpawnOne()
		p.spawnTimer = randomFloat(p.rng, p.cfg.SpawnIntervalMin, p.cfg.SpawnIntervalMax)
	}

	p.despawnTimer -= dt
	if p.despawnTimer <= 0 && len(p.swimmers) > p.cfg.MinCount {
		p.DespawnOne()
		p.despawnTimer = randomFloat(p.rng, p.cfg.DespawnIntervalMin, p.cfg.DespawnIntervalMax)
	}
}
