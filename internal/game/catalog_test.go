package game

import (
	"strings"
	"testing"
)

func TestDefaultCatalogLoads(t *testing.T) {
	c := testCatalog(t)
	if len(c.All()) == 0 {
		t.Fatalf("expected species in default catalog")
	}
	for _, h := range []Habitat{Freshwater, Saltwater} {
		if len(c.Pool(TierCommon, h)) == 0 {
			t.Fatalf("no common species for %s", h)
		}
	}
	for _, s := range c.All() {
		if s.IsTrash() != (s.Points == 0) {
			t.Fatalf("%s: trash flag and zero points disagree", s.Name)
		}
	}
}

func TestPoolFiltersByHabitat(t *testing.T) {
	c := testCatalog(t)
	for _, s := range c.Pool(TierRare, Freshwater) {
		if s.Habitat == Saltwater {
			t.Fatalf("saltwater species %s in freshwater pool", s.Name)
		}
	}
	// Species living in both waters appear in either pool
	found := false
	for _, s := range c.Pool(TierTrash, Saltwater) {
		if s.Name == "rusty_can" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected rusty_can in saltwater trash pool")
	}
}

func TestGetNormalisesName(t *testing.T) {
	c := testCatalog(t)
	for _, name := range []string{"rainbow_trout", "Rainbow Trout", " rainbow-trout "} {
		if _, ok := c.Get(name); !ok {
			t.Fatalf("Get(%q) did not find rainbow_trout", name)
		}
	}
}

func TestLoadCatalogRejectsMissingFields(t *testing.T) {
	src := `[{"name":"ghost","title":"Ghost","habitat":"freshwater","tier":"common","speed":10,"points":5,"about":""}]`
	_, err := LoadCatalog(strings.NewReader(src))
	if err == nil {
		t.Fatalf("expected error for missing stats")
	}
	for _, field := range []string{"health", "size"} {
		if !strings.Contains(err.Error(), field) {
			t.Fatalf("error %q does not name missing field %s", err, field)
		}
	}
}

func TestLoadCatalogRejectsUnknownFields(t *testing.T) {
	src := `[{"name":"x","title":"X","habitat":"freshwater","tier":"common","speed":1,"health":1,"points":1,"size":1,"about":"","colour":"red"}]`
	if _, err := LoadCatalog(strings.NewReader(src)); err == nil {
		t.Fatalf("expected error for unknown field")
	}
}

func TestNewCatalogValidation(t *testing.T) {
	fresh := testSpecies("perch", TierCommon, 2, 5)
	fresh.Habitat = Freshwater
	salt := testSpecies("goby", TierCommon, 2, 5)
	salt.Habitat = Saltwater

	scoringTrash := testSpecies("can", TierTrash, 1, 3)
	freeFish := testSpecies("free", TierCommon, 1, 0)
	weak := testSpecies("weak", TierCommon, 0, 1)

	tests := []struct {
		name    string
		species []Species
		wantErr bool
	}{
		{"valid", []Species{fresh, salt}, false},
		{"empty", nil, true},
		{"duplicate", []Species{fresh, salt, fresh}, true},
		{"trash with points", []Species{fresh, salt, scoringTrash}, true},
		{"fish without points", []Species{fresh, salt, freeFish}, true},
		{"zero health", []Species{fresh, salt, weak}, true},
		{"no saltwater commons", []Species{fresh}, true},
	}
	for _, tc := range tests {
		_, err := NewCatalog(tc.species)
		if (err != nil) != tc.wantErr {
			t.Fatalf("%s: err=%v wantErr=%v", tc.name, err, tc.wantErr)
		}
	}
}
