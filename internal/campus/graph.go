// Package campus holds the static campus reference data: per-location zone,
// floor, step-free access, and approximate walking minutes from a small set
// of canonical hubs. The planner treats this as a precomputed lookup table,
// not a routing engine.
package campus

// DefaultWalkMinutes is used when a location or hub is missing from the
// walk-time table.
const DefaultWalkMinutes = 10

// Hubs are the canonical starting points walk times are measured from.
var Hubs = []string{"Main Gate", "Library", "Main Canteen", "CS Block"}

// Location describes one campus venue.
type Location struct {
	Zone     string         `koanf:"zone"`
	Floor    int            `koanf:"floor"`
	Elevator bool           `koanf:"elevator"`
	Ramp     bool           `koanf:"ramp"`
	WalkFrom map[string]int `koanf:"walk_from"`
}

// StepFree reports whether the location can be reached without stairs.
func (l Location) StepFree() bool {
	return l.Elevator || l.Ramp || l.Floor == 0
}

// Graph is the walk-time and accessibility lookup table.
type Graph struct {
	locations map[string]Location

	// DefaultWalkMin, when positive, replaces DefaultWalkMinutes for
	// unmapped location pairs.
	DefaultWalkMin int
}

// NewGraph builds a Graph from a location table.
func NewGraph(locations map[string]Location) *Graph {
	if locations == nil {
		locations = map[string]Location{}
	}
	return &Graph{locations: locations}
}

// Lookup returns the location entry and whether it is known.
func (g *Graph) Lookup(name string) (Location, bool) {
	loc, ok := g.locations[name]
	return loc, ok
}

// WalkMinutes returns the walking minutes from a hub to a location,
// falling back to the default when either side is unknown.
func (g *Graph) WalkMinutes(from, to string) int {
	loc, ok := g.locations[to]
	if !ok {
		return g.defaultWalk()
	}
	if min, ok := loc.WalkFrom[from]; ok {
		return min
	}
	return g.defaultWalk()
}

func (g *Graph) defaultWalk() int {
	if g.DefaultWalkMin > 0 {
		return g.DefaultWalkMin
	}
	return DefaultWalkMinutes
}

// StepFree reports whether the named location has step-free access.
// Unknown locations are treated as accessible; exclusion is reserved for
// venues known to lack elevator and ramp.
func (g *Graph) StepFree(name string) bool {
	loc, ok := g.locations[name]
	if !ok {
		return true
	}
	return loc.StepFree()
}

// Zone returns the location's zone, or "Unknown".
func (g *Graph) Zone(name string) string {
	if loc, ok := g.locations[name]; ok && loc.Zone != "" {
		return loc.Zone
	}
	return "Unknown"
}

// DefaultGraph returns the built-in campus table.
func DefaultGraph() *Graph {
	return NewGraph(map[string]Location{
		"Music Department Hall": {
			Zone: "Arts", Floor: 1, Elevator: true, Ramp: true,
			WalkFrom: map[string]int{"Main Gate": 8, "Library": 5, "Main Canteen": 6, "CS Block": 10},
		},
		"Entrepreneurship Cell": {
			Zone: "Business", Floor: 2, Elevator: true, Ramp: true,
			WalkFrom: map[string]int{"Main Gate": 5, "Library": 3, "Main Canteen": 4, "CS Block": 7},
		},
		"Fine Arts Studio 3": {
			Zone: "Arts", Floor: 3, Elevator: false, Ramp: false,
			WalkFrom: map[string]int{"Main Gate": 12, "Library": 8, "Main Canteen": 10, "CS Block": 14},
		},
		"Physics Lecture Hall 2": {
			Zone: "Science", Floor: 1, Elevator: true, Ramp: true,
			WalkFrom: map[string]int{"Main Gate": 6, "Library": 4, "Main Canteen": 5, "CS Block": 3},
		},
		"Building C, Room 204": {
			Zone: "Design", Floor: 2, Elevator: true, Ramp: true,
			WalkFrom: map[string]int{"Main Gate": 10, "Library": 6, "Main Canteen": 8, "CS Block": 12},
		},
		"Philosophy Building, Room 101": {
			Zone: "Humanities", Floor: 1, Elevator: true, Ramp: true,
			WalkFrom: map[string]int{"Main Gate": 7, "Library": 3, "Main Canteen": 5, "CS Block": 9},
		},
		"Architecture Building, Ground Floor": {
			Zone: "Design", Floor: 0, Elevator: true, Ramp: true,
			WalkFrom: map[string]int{"Main Gate": 11, "Library": 7, "Main Canteen": 9, "CS Block": 13},
		},
	})
}
