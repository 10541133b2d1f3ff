package game

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

const maxSuggestions = 3

// Lookup finds a species by name. When there is no exact match it returns
// up to three close names for a "did you mean" prompt.
func (c *Catalog) Lookup(name string) (Species, []string, bool) {
	if s, ok := c.Get(name); ok {
		return s, nil, true
	}
	return Species{}, c.suggest(normalizeName(name)), false
}

type scoredName struct {
	name string
	dist int
}

func (c *Catalog) suggest(token string) []string {
	if token == "" {
		return nil
	}
	var results []scoredName
	for _, s := range c.species {
		cand := normalizeName(s.Name)
		var dist int
		switch {
		case strings.HasPrefix(cand, token) && len(token) >= 2:
			dist = 0
		case strings.Contains(cand, token) && len(token) >= 3:
			dist = 1
		default:
			dist = levenshtein.ComputeDistance(token, cand)
			if dist > levenshteinLimit(len(cand)) {
				continue
			}
		}
		results = append(results, scoredName{name: s.Name, dist: dist})
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].dist == results[j].dist {
			return results[i].name < results[j].name
		}
		return results[i].dist < results[j].dist
	})
	if len(results) > maxSuggestions {
		results = results[:maxSuggestions]
	}
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.name
	}
	return out
}

func levenshteinLimit(n int) int {
	switch {
	case n <= 4:
		return 1
	case n <= 8:
		return 2
	default:
		return 3
	}
}
