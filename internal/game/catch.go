package game

// CatchSnapshot is the data that survives a caught swimmer into the mini-games
type CatchSnapshot struct {
	SwimmerID uint64
	Species   Species
}

// quadtreeCapacity is the number of swimmers a leaf holds before splitting
const quadtreeCapacity = 4

// CatchDetector tests the moving bobber against the swimmer pool
type CatchDetector struct {
	fish FishConfig
}

// NewCatchDetector creates a detector using the fish base dimensions
func NewCatchDetector(fish FishConfig) *CatchDetector {
	return &CatchDetector{fish: fish}
}

// Check looks for a swimmer overlapping the bobber. On a hit the swimmer is
// removed from the pool, the bobber's catch latch is set and the snapshot is
// returned. When several swimmers overlap, the most recently spawned wins.
func (d *CatchDetector) Check(b *Bobber, pool *SwimmerPool) (CatchSnapshot, bool) {
	if !b.InMotion() || b.HasCaught() || pool.Len() == 0 {
		return CatchSnapshot{}, false
	}

	// Swimmers are indexed by center, so widen the query by the largest half extents
	var halfW, halfH float64
	for _, s := range pool.swimmers {
		r := s.Bounds(d.fish)
		halfW = max(halfW, r.Width/2)
		halfH = max(halfH, r.Height/2)
	}

	tree := NewQuadtree(pool.water.Rect().Grow(halfW, halfH), quadtreeCapacity)
	var candidates []*Swimmer
	for _, s := range pool.swimmers {
		if !tree.Insert(s) {
			// Drifted past the water edge this tick
			candidates = append(candidates, s)
		}
	}

	bobber := b.Bounds()
	candidates = tree.Query(bobber.Grow(halfW, halfH), candidates)

	var caught *Swimmer
	for _, s := range candidates {
		if !bobber.Overlaps(s.Bounds(d.fish)) {
			continue
		}
		if caught == nil || s.ID > caught.ID {
			caught = s
		}
	}
	if caught == nil {
		return CatchSnapshot{}, false
	}

	pool.Remove(caught.ID)
	b.Latch()
	return CatchSnapshot{SwimmerID: caught.ID, Species: caught.Species}, true
}
