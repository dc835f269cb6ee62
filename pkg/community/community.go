package community

import (
	"slices"
	"strings"

	errs "github.com/urbancharge/urbancharge/pkg/errors"
	"github.com/urbancharge/urbancharge/pkg/graph"
)

// UrbanCommunity is an ordered list of cities and the road graph between them.
// The city at index i is vertex i of the graph.
//
// The zero value is an empty community. Use New or FromNames to create one.
type UrbanCommunity struct {
	cities []City
	roads  *graph.Graph
}

// Road is an undirected road. From precedes To in community order.
type Road struct {
	From string
	To   string
}

// New creates a community from cities in the given order. The slice is
// copied; later changes to it do not affect the community.
//
// New returns INVALID_INPUT for a name the configuration format cannot
// express (see [errs.ValidateCityName]) and DUPLICATE_CITY when two names are
// equal ignoring case.
func New(cities []City) (*UrbanCommunity, error) {
	seen := make(map[string]string, len(cities))
	for _, c := range cities {
		if err := errs.ValidateCityName(c.name); err != nil {
			return nil, err
		}
		key := strings.ToLower(c.name)
		if prev, ok := seen[key]; ok {
			return nil, errs.New(errs.ErrCodeDuplicateCity, "city %q duplicates %q", c.name, prev)
		}
		seen[key] = c.name
	}
	return &UrbanCommunity{
		cities: slices.Clone(cities),
		roads:  graph.New(len(cities)),
	}, nil
}

// FromNames creates a community of cities without charging points.
func FromNames(names ...string) (*UrbanCommunity, error) {
	cities := make([]City, len(names))
	for i, n := range names {
		cities[i] = NewCity(n)
	}
	return New(cities)
}

// Len returns the number of cities.
func (uc *UrbanCommunity) Len() int { return len(uc.cities) }

// Cities returns a copy of the cities in community order.
func (uc *UrbanCommunity) Cities() []City { return slices.Clone(uc.cities) }

// CityAt returns the city at index i. It panics if i is out of range.
func (uc *UrbanCommunity) CityAt(i int) City { return uc.cities[i] }

// CityIndex returns the index of the city named name, ignoring case.
func (uc *UrbanCommunity) CityIndex(name string) (int, bool) {
	for i, c := range uc.cities {
		if strings.EqualFold(c.name, name) {
			return i, true
		}
	}
	return -1, false
}

// City returns the city named name.
func (uc *UrbanCommunity) City(name string) (City, error) {
	i, err := uc.index(name)
	if err != nil {
		return City{}, err
	}
	return uc.cities[i], nil
}

// Neighbors returns the cities joined to name by a road, in community order.
func (uc *UrbanCommunity) Neighbors(name string) ([]City, error) {
	i, err := uc.index(name)
	if err != nil {
		return nil, err
	}
	ns := uc.roads.Neighbors(i)
	out := make([]City, len(ns))
	for j, n := range ns {
		out[j] = uc.cities[n]
	}
	return out, nil
}

// Degree returns the number of roads leaving name.
func (uc *UrbanCommunity) Degree(name string) (int, error) {
	i, err := uc.index(name)
	if err != nil {
		return 0, err
	}
	return uc.roads.Degree(i), nil
}

// AddRoad joins two cities. Adding an existing road is a no-op.
//
// Returns UNKNOWN_CITY if either name does not resolve and SELF_LOOP if both
// name the same city.
func (uc *UrbanCommunity) AddRoad(a, b string) error {
	x, err := uc.index(a)
	if err != nil {
		return err
	}
	y, err := uc.index(b)
	if err != nil {
		return err
	}
	if x == y {
		return errs.New(errs.ErrCodeSelfLoop, "cannot build a road from %s to itself", uc.cities[x].name)
	}
	uc.roads.AddEdge(x, y)
	return nil
}

// Roads returns each road once, ordered by the index of its endpoints.
func (uc *UrbanCommunity) Roads() []Road {
	idx := uc.roadIndices()
	out := make([]Road, len(idx))
	for i, r := range idx {
		out[i] = Road{From: uc.cities[r[0]].name, To: uc.cities[r[1]].name}
	}
	return out
}

// AddChargingPoint installs a charging point in name.
//
// Returns UNKNOWN_CITY if name does not resolve and ALREADY_HAS_POINT if the
// city already hosts one.
func (uc *UrbanCommunity) AddChargingPoint(name string) error {
	i, err := uc.index(name)
	if err != nil {
		return err
	}
	if uc.cities[i].chargingPoint {
		return errs.New(errs.ErrCodeAlreadyHasPoint, "%s already has a charging point", uc.cities[i].name)
	}
	uc.cities[i].addChargingPoint()
	return nil
}

// TryRemoveChargingPoint removes the charging point of name unless doing so
// would leave a city without access to one.
//
// The removal is checked from both sides: the city must keep a neighbor with
// a point, and no neighbor lacking a point may depend on this city as its only
// charging neighbor. A refused removal leaves the community unchanged and is
// reported through the returned Removal, not the error.
//
// The error is UNKNOWN_CITY if name does not resolve and NO_POINT_TO_REMOVE if
// the city has no point.
func (uc *UrbanCommunity) TryRemoveChargingPoint(name string) (Removal, error) {
	i, err := uc.index(name)
	if err != nil {
		return Removal{}, err
	}
	c := &uc.cities[i]
	if !c.chargingPoint {
		return Removal{}, errs.New(errs.ErrCodeNoPointToRemove, "%s has no charging point to remove", c.name)
	}

	c.removeChargingPoint()
	if !uc.hasChargingNeighbor(i) {
		c.addChargingPoint()
		return Removal{City: c.name, Status: RefusedSelf}, nil
	}

	var dependents []string
	for _, n := range uc.roads.Neighbors(i) {
		if uc.cities[n].chargingPoint {
			continue
		}
		if !uc.hasChargingNeighbor(n) {
			dependents = append(dependents, uc.cities[n].name)
		}
	}
	if len(dependents) > 0 {
		c.addChargingPoint()
		return Removal{City: c.name, Status: RefusedDependents, Dependents: dependents}, nil
	}

	return Removal{City: c.name, Status: Removed}, nil
}

// RemoveChargingPoint is TryRemoveChargingPoint with refusals reported as an
// ACCESSIBILITY_VIOLATION error wrapping an *AccessibilityError.
func (uc *UrbanCommunity) RemoveChargingPoint(name string) error {
	r, err := uc.TryRemoveChargingPoint(name)
	if err != nil {
		return err
	}
	return r.Err()
}

// Score returns the number of cities hosting a charging point. Lower is better.
func (uc *UrbanCommunity) Score() int {
	n := 0
	for _, c := range uc.cities {
		if c.chargingPoint {
			n++
		}
	}
	return n
}

// IsValid reports whether every city without a charging point has a neighbor
// with one. It depends only on the current state, never on history.
func (uc *UrbanCommunity) IsValid() bool {
	for i, c := range uc.cities {
		if !c.chargingPoint && !uc.hasChargingNeighbor(i) {
			return false
		}
	}
	return true
}

// Undominated returns the cities that have neither a charging point nor a
// neighbor with one.
func (uc *UrbanCommunity) Undominated() []string {
	var out []string
	for i, c := range uc.cities {
		if !c.chargingPoint && !uc.hasChargingNeighbor(i) {
			out = append(out, c.name)
		}
	}
	return out
}

// ChargingSet returns the names of the cities hosting a point, in community order.
func (uc *UrbanCommunity) ChargingSet() []string {
	var out []string
	for _, c := range uc.cities {
		if c.chargingPoint {
			out = append(out, c.name)
		}
	}
	return out
}

// Restore sets charging points on exactly the named cities.
//
// The resulting configuration must be valid. Otherwise nothing changes and
// the error is ACCESSIBILITY_VIOLATION listing the cities left without access.
// Unknown names return UNKNOWN_CITY.
func (uc *UrbanCommunity) Restore(set []string) error {
	want := make([]bool, len(uc.cities))
	for _, name := range set {
		i, err := uc.index(name)
		if err != nil {
			return err
		}
		want[i] = true
	}

	prev := make([]bool, len(uc.cities))
	for i := range uc.cities {
		prev[i] = uc.cities[i].chargingPoint
		uc.cities[i].chargingPoint = want[i]
	}
	if stranded := uc.Undominated(); len(stranded) > 0 {
		for i := range uc.cities {
			uc.cities[i].chargingPoint = prev[i]
		}
		return errs.New(errs.ErrCodeAccessibilityViolation,
			"charging set leaves %s without a charging point nearby", strings.Join(stranded, ", "))
	}
	return nil
}

// Clone returns a deep copy sharing no state with uc.
func (uc *UrbanCommunity) Clone() *UrbanCommunity {
	out := &UrbanCommunity{
		cities: slices.Clone(uc.cities),
		roads:  graph.New(len(uc.cities)),
	}
	for _, r := range uc.roadIndices() {
		out.roads.AddEdge(r[0], r[1])
	}
	return out
}

func (uc *UrbanCommunity) roadIndices() [][2]int {
	var out [][2]int
	for x := range uc.cities {
		for _, y := range uc.roads.Neighbors(x) {
			if y > x {
				out = append(out, [2]int{x, y})
			}
		}
	}
	return out
}

func (uc *UrbanCommunity) index(name string) (int, error) {
	i, ok := uc.CityIndex(name)
	if !ok {
		return -1, errs.New(errs.ErrCodeUnknownCity, "unknown city %q", name)
	}
	return i, nil
}

func (uc *UrbanCommunity) hasChargingNeighbor(v int) bool {
	for _, n := range uc.roads.Neighbors(v) {
		if uc.cities[n].chargingPoint {
			return true
		}
	}
	return false
}
