package game

// quadtreeMaxDepth stops subdivision when many swimmers share one point
const quadtreeMaxDepth = 8

// Quadtree is a spatial partitioning structure over swimmer positions
type Quadtree struct {
	Bounds   Rect
	Capacity int
	Entities []*Swimmer
	Divided  bool
	NW       *Quadtree
	NE       *Quadtree
	SW       *Quadtree
	SE       *Quadtree

	depth int
}

// NewQuadtree creates a new quadtree with the given bounds and capacity
func NewQuadtree(bounds Rect, capacity int) *Quadtree {
	return newQuadtree(bounds, capacity, 0)
}

func newQuadtree(bounds Rect, capacity, depth int) *Quadtree {
	return &Quadtree{
		Bounds:   bounds,
		Capacity: capacity,
		Entities: make([]*Swimmer, 0, capacity),
		depth:    depth,
	}
}

// Insert adds a swimmer by its position. It returns false when the
// position lies outside the tree bounds.
func (qt *Quadtree) Insert(s *Swimmer) bool {
	if !qt.Bounds.Contains(s.Position) {
		return false
	}

	if (len(qt.Entities) < qt.Capacity && !qt.Divided) || qt.depth >= quadtreeMaxDepth {
		qt.Entities = append(qt.Entities, s)
		return true
	}

	if !qt.Divided {
		qt.Subdivide()
	}
	if !qt.insertChild(s) {
		// Rounding at a split edge; keep it here
		qt.Entities = append(qt.Entities, s)
	}
	return true
}

func (qt *Quadtree) insertChild(s *Swimmer) bool {
	return qt.NW.Insert(s) || qt.NE.Insert(s) || qt.SW.Insert(s) || qt.SE.Insert(s)
}

// Subdivide splits the quadtree into four sub-quadrants
func (qt *Quadtree) Subdivide() {
	x := qt.Bounds.X
	y := qt.Bounds.Y
	w := qt.Bounds.Width / 2
	h := qt.Bounds.Height / 2
	d := qt.depth + 1

	qt.NW = newQuadtree(Rect{X: x, Y: y, Width: w, Height: h}, qt.Capacity, d)
	qt.NE = newQuadtree(Rect{X: x + w, Y: y, Width: w, Height: h}, qt.Capacity, d)
	qt.SW = newQuadtree(Rect{X: x, Y: y + h, Width: w, Height: h}, qt.Capacity, d)
	qt.SE = newQuadtree(Rect{X: x + w, Y: y + h, Width: w, Height: h}, qt.Capacity, d)

	qt.Divided = true

	// Re-insert existing entities into subdivisions
	kept := qt.Entities[:0]
	for _, s := range qt.Entities {
		if !qt.insertChild(s) {
			kept = append(kept, s)
		}
	}
	qt.Entities = kept
}

// Query returns all swimmers positioned within a given range
func (qt *Quadtree) Query(area Rect, found []*Swimmer) []*Swimmer {
	if !qt.Bounds.Overlaps(area) {
		return found
	}

	for _, s := range qt.Entities {
		if area.Contains(s.Position) {
			found = append(found, s)
		}
	}

	if qt.Divided {
		found = qt.NW.Query(area, found)
		found = qt.NE.Query(area, found)
		found = qt.SW.Query(area, found)
		found = qt.SE.Query(area, found)
	}

	return found
}
