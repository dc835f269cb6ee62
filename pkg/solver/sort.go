package solver

import (
	"slices"

	"github.com/urbancharge/urbancharge/pkg/community"
)

// Direction selects the order of SortByDegree.
type Direction int

const (
	// Ascending puts the least connected cities first.
	Ascending Direction = iota
	// Descending puts the most connected cities first.
	Descending
)

// String returns "ascending" or "descending".
func (d Direction) String() string {
	if d == Descending {
		return "descending"
	}
	return "ascending"
}

// SortByDegree returns a copy of cities ordered by their number of roads in
// uc. The sort is stable: cities of equal degree keep their relative order.
// Cities unknown to uc count as degree 0.
func SortByDegree(uc *community.UrbanCommunity, cities []community.City, dir Direction) []community.City {
	degree := make(map[string]int, len(cities))
	for _, c := range cities {
		d, _ := uc.Degree(c.Name())
		degree[c.Name()] = d
	}

	out := slices.Clone(cities)
	slices.SortStableFunc(out, func(a, b community.City) int {
		if dir == Descending {
			return degree[b.Name()] - degree[a.Name()]
		}
		return degree[a.Name()] - degree[b.Name()]
	})
	return out
}
