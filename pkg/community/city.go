package community

// City is a named place that may host a charging point.
//
// The charging flag can only be changed through an UrbanCommunity, which
// checks accessibility before every removal. City values handed out by the
// community are copies.
type City struct {
	name          string
	chargingPoint bool
}

// NewCity creates a city without a charging point.
func NewCity(name string) City {
	return City{name: name}
}

// Name returns the city's name as declared.
func (c City) Name() string { return c.name }

// HasChargingPoint reports whether the city hosts a charging point.
func (c City) HasChargingPoint() bool { return c.chargingPoint }

func (c *City) addChargingPoint() { c.chargingPoint = true }

func (c *City) removeChargingPoint() { c.chargingPoint = false }
