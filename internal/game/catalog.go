package game

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Habitat selects which encounter pool applies
type Habitat string

const (
	Freshwater Habitat = "freshwater"
	Saltwater  Habitat = "saltwater"
	AnyWater   Habitat = "both"
)

// Valid reports whether h is one of the known habitats
func (h Habitat) Valid() bool {
	return h == Freshwater || h == Saltwater || h == AnyWater
}

// Matches reports whether a species living in h can appear in water filtered by f
func (h Habitat) Matches(f Habitat) bool {
	return h == AnyWater || f == AnyWater || h == f
}

// Tier is the encounter tier a species is drawn from
type Tier string

const (
	TierCommon    Tier = "common"
	TierRare      Tier = "rare"
	TierLegendary Tier = "legendary"
	TierTrash     Tier = "trash"
	TierHazard    Tier = "hazard"
)

// Tiers lists every tier in roll priority order, common last
var Tiers = []Tier{TierTrash, TierHazard, TierLegendary, TierRare, TierCommon}

// Valid reports whether t is a known tier
func (t Tier) Valid() bool {
	for _, known := range Tiers {
		if t == known {
			return true
		}
	}
	return false
}

// Species is the validated stat record of a catchable entity type
type Species struct {
	Name    string  `json:"name"`
	Title   string  `json:"title"`
	Habitat Habitat `json:"habitat"`
	Tier    Tier    `json:"tier"`
	Speed   float64 `json:"speed"`
	Health  int     `json:"health"`
	Points  int     `json:"points"`
	Size    float64 `json:"size"`
	About   string  `json:"about"`
}

// IsTrash reports whether the species is non-scoring junk
func (s Species) IsTrash() bool { return s.Tier == TierTrash }

// IsHazard reports whether the species steals from the creel
func (s Species) IsHazard() bool { return s.Tier == TierHazard }

// speciesRecord mirrors Species with pointers so missing fields are detectable
type speciesRecord struct {
	Name    *string  `json:"name"`
	Title   *string  `json:"title"`
	Habitat *Habitat `json:"habitat"`
	Tier    *Tier    `json:"tier"`
	Speed   *float64 `json:"speed"`
	Health  *int     `json:"health"`
	Points  *int     `json:"points"`
	Size    *float64 `json:"size"`
	About   *string  `json:"about"`
}

//go:embed catalog.json
var defaultCatalogJSON []byte

// Catalog is the full set of species known to the game
type Catalog struct {
	species []Species
	byName  map[string]int
}

// DefaultCatalog loads the embedded species catalog
func DefaultCatalog() (*Catalog, error) {
	return LoadCatalog(bytes.NewReader(defaultCatalogJSON))
}

// LoadCatalog decodes and validates a species catalog. Every stat is mandatory.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var records []speciesRecord
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	species := make([]Species, 0, len(records))
	var errs []error
	for i, rec := range records {
		s, err := rec.species()
		if err != nil {
			errs = append(errs, fmt.Errorf("catalog entry %d: %w", i, err))
			continue
		}
		species = append(species, s)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return NewCatalog(species)
}

// NewCatalog validates species and indexes them by name
func NewCatalog(species []Species) (*Catalog, error) {
	if len(species) == 0 {
		return nil, errors.New("catalog is empty")
	}
	c := &Catalog{
		species: make([]Species, 0, len(species)),
		byName:  make(map[string]int, len(species)),
	}
	for _, s := range species {
		if err := s.validate(); err != nil {
			return nil, err
		}
		key := normalizeName(s.Name)
		if _, dup := c.byName[key]; dup {
			return nil, fmt.Errorf("duplicate species %q", s.Name)
		}
		c.byName[key] = len(c.species)
		c.species = append(c.species, s)
	}
	for _, h := range []Habitat{Freshwater, Saltwater} {
		if len(c.Pool(TierCommon, h)) == 0 {
			return nil, fmt.Errorf("no common species for %s water", h)
		}
	}
	return c, nil
}

func (r speciesRecord) species() (Species, error) {
	var missing []string
	if r.Name == nil {
		missing = append(missing, "name")
	}
	if r.Title == nil {
		missing = append(missing, "title")
	}
	if r.Habitat == nil {
		missing = append(missing, "habitat")
	}
	if r.Tier == nil {
		missing = append(missing, "tier")
	}
	if r.Speed == nil {
		missing = append(missing, "speed")
	}
	if r.Health == nil {
		missing = append(missing, "health")
	}
	if r.Points == nil {
		missing = append(missing, "points")
	}
	if r.Size == nil {
		missing = append(missing, "size")
	}
	if r.About == nil {
		missing = append(missing, "about")
	}
	if len(missing) > 0 {
		return Species{}, fmt.Errorf("missing fields: %s", strings.Join(missing, ", "))
	}
	return Species{
		Name:    *r.Name,
		Title:   *r.Title,
		Habitat: *r.Habitat,
		Tier:    *r.Tier,
		Speed:   *r.Speed,
		Health:  *r.Health,
		Points:  *r.Points,
		Size:    *r.Size,
		About:   *r.About,
	}, nil
}

func (s Species) validate() error {
	switch {
	case s.Name == "":
		return errors.New("species name is empty")
	case !s.Habitat.Valid():
		return fmt.Errorf("%s: unknown habitat %q", s.Name, s.Habitat)
	case !s.Tier.Valid():
		return fmt.Errorf("%s: unknown tier %q", s.Name, s.Tier)
	case s.Speed < 0:
		return fmt.Errorf("%s: speed %v is negative", s.Name, s.Speed)
	case s.Health < 1:
		return fmt.Errorf("%s: health %d must be at least 1", s.Name, s.Health)
	case s.Points < 0:
		return fmt.Errorf("%s: points %d are negative", s.Name, s.Points)
	case s.Size <= 0:
		return fmt.Errorf("%s: size %v must be positive", s.Name, s.Size)
	case s.IsTrash() && s.Points != 0:
		return fmt.Errorf("%s: trash must score 0 points, got %d", s.Name, s.Points)
	case !s.IsTrash() && s.Points == 0:
		return fmt.Errorf("%s: only trash may score 0 points", s.Name)
	}
	return nil
}

// All returns every species in catalog order
func (c *Catalog) All() []Species {
	out := make([]Species, len(c.species))
	copy(out, c.species)
	return out
}

// Pool returns the species of a tier that can appear in the given habitat
func (c *Catalog) Pool(tier Tier, habitat Habitat) []Species {
	var out []Species
	for _, s := range c.species {
		if s.Tier == tier && s.Habitat.Matches(habitat) {
			out = append(out, s)
		}
	}
	return out
}

// Get returns the species with the exact (case-insensitive) name
func (c *Catalog) Get(name string) (Species, bool) {
	i, ok := c.byName[normalizeName(name)]
	if !ok {
		return Species{}, false
	}
	return c.species[i], true
}

func normalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, " ", "_")
	return strings.ReplaceAll(name, "-", "_")
}
