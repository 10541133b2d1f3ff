package game

import "testing"

func placeSwimmer(p *SwimmerPool, x, y float64) *Swimmer {
	s := p.SpawnOne()
	s.Position = Vec2{X: x, Y: y}
	s.Species.Size = 1
	return s
}

func TestCatchPrefersMostRecentSwimmer(t *testing.T) {
	p := newTestPool(t, 21)
	b := NewBobber(BobberConfig{Radius: 8, Speed: 200}, 400, 100, 600)
	b.Cast()
	b.Y = 300

	first := placeSwimmer(p, 400, 300)
	second := placeSwimmer(p, 405, 302)
	third := placeSwimmer(p, 398, 298)
	far := placeSwimmer(p, 100, 500)

	d := NewCatchDetector(DefaultConfig().Fish)
	snap, ok := d.Check(b, p)
	if !ok {
		t.Fatalf("expected a catch")
	}
	if snap.SwimmerID != third.ID {
		t.Fatalf("caught %d want most recent %d", snap.SwimmerID, third.ID)
	}
	if !b.HasCaught() {
		t.Fatalf("latch not set")
	}
	if p.Len() != 3 {
		t.Fatalf("expected exactly one removal, Len=%d", p.Len())
	}
	for _, id := range []uint64{first.ID, second.ID, far.ID} {
		found := false
		for _, s := range p.Swimmers() {
			if s.ID == id {
				found = true
			}
		}
		if !found {
			t.Fatalf("swimmer %d should still be live", id)
		}
	}

	// Latched: the rest stay put for the remainder of the cast
	if _, ok := d.Check(b, p); ok {
		t.Fatalf("second catch in one cast")
	}
}

func TestCatchRequiresMotion(t *testing.T) {
	p := newTestPool(t, 22)
	b := NewBobber(BobberConfig{Radius: 8, Speed: 200}, 400, 300, 600)
	placeSwimmer(p, 400, 300)

	d := NewCatchDetector(DefaultConfig().Fish)
	if _, ok := d.Check(b, p); ok {
		t.Fatalf("caught while idle")
	}
}

func TestCatchTouchingEdge(t *testing.T) {
	p := newTestPool(t, 23)
	b := NewBobber(BobberConfig{Radius: 8, Speed: 200}, 400, 100, 600)
	b.Cast()
	b.Y = 300
	// Bobber right edge at 408; swimmer 30 wide centered at 423 has left edge 408
	s := placeSwimmer(p, 423, 300)

	d := NewCatchDetector(DefaultConfig().Fish)
	snap, ok := d.Check(b, p)
	if !ok || snap.SwimmerID != s.ID {
		t.Fatalf("expected touching swimmer to be caught")
	}
}

func TestCatchOutsideWaterBounds(t *testing.T) {
	p := newTestPool(t, 24)
	b := NewBobber(BobberConfig{Radius: 8, Speed: 200}, 2, 100, 600)
	b.Cast()
	b.Y = 300
	s := placeSwimmer(p, -5, 300)

	d := NewCatchDetector(DefaultConfig().Fish)
	snap, ok := d.Check(b, p)
	if !ok || snap.SwimmerID != s.ID {
		t.Fatalf("expected swimmer past the edge to be caught")
	}
}

func TestQuadtreeQuery(t *testing.T) {
	qt := NewQuadtree(Rect{X: 0, Y: 0, Width: 100, Height: 100}, 2)
	var all []*Swimmer
	for i := 0; i < 20; i++ {
		s := &Swimmer{ID: uint64(i + 1), Position: Vec2{X: float64(i * 5), Y: float64(i * 5)}}
		if !qt.Insert(s) {
			t.Fatalf("insert %d failed", i)
		}
		all = append(all, s)
	}
	if qt.Insert(&Swimmer{Position: Vec2{X: 200, Y: 5}}) {
		t.Fatalf("insert outside bounds succeeded")
	}
	got := qt.Query(Rect{X: 0, Y: 0, Width: 20, Height: 20}, nil)
	if len(got) != 5 {
		t.Fatalf("Query found %d swimmers want 5", len(got))
	}
}
