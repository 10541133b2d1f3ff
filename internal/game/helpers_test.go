package game

import "testing"

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog: %v", err)
	}
	return c
}

func testWater() Bounds {
	return Bounds{Left: 0, Right: 800, Top: 200, Bottom: 600}
}

func testSpecies(name string, tier Tier, health, points int) Species {
	return Species{
		Name:    name,
		Title:   name,
		Habitat: AnyWater,
		Tier:    tier,
		Speed:   0,
		Health:  health,
		Points:  points,
		Size:    1,
		About:   name,
	}
}

func approx(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-9
}
