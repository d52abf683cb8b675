// SPDX-License-Identifier: MIT
package route

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Route is an immutable path plus its total cost.
//
// The zero Route is empty (Len() == 0) and is what Plan returns alongside
// ok == false. Accessors never expose the internal slice.
type Route struct {
	path []string
	cost float64
}

// New builds a Route from a node sequence and a total cost.
// The path is copied.
func New(path []string, cost float64) Route {
	cp := make([]string, len(path))
	copy(cp, path)

	return Route{path: cp, cost: cost}
}

// Path returns a copy of the node sequence, start to end inclusive.
func (r Route) Path() []string {
	cp := make([]string, len(r.path))
	copy(cp, r.path)

	return cp
}

// Cost returns the sum of the traversed edge costs.
func (r Route) Cost() float64 { return r.cost }

// Len returns the number of nodes on the route.
func (r Route) Len() int { return len(r.path) }

// Hops returns the number of edges on the route.
func (r Route) Hops() int {
	if len(r.path) == 0 {
		return 0
	}

	return len(r.path) - 1
}

// Empty reports whether r carries no path.
func (r Route) Empty() bool { return len(r.path) == 0 }

// Start returns the first node, or "" for the empty route.
func (r Route) Start() string {
	if len(r.path) == 0 {
		return ""
	}

	return r.path[0]
}

// End returns the last node, or "" for the empty route.
func (r Route) End() string {
	if len(r.path) == 0 {
		return ""
	}

	return r.path[len(r.path)-1]
}

// String renders "A → B → C (cost 12.5)".
func (r Route) String() string {
	if len(r.path) == 0 {
		return "<no route>"
	}

	return fmt.Sprintf("%s (cost %g)", strings.Join(r.path, " → "), r.cost)
}

// routeJSON is the wire shape of a Route.
type routeJSON struct {
	Path []string `json:"path"`
	Cost float64  `json:"cost"`
}

// MarshalJSON encodes {"path": [...], "cost": x}.
func (r Route) MarshalJSON() ([]byte, error) {
	path := r.path
	if path == nil {
		path = []string{}
	}

	return json.Marshal(routeJSON{Path: path, Cost: r.cost})
}

// UnmarshalJSON decodes the shape written by MarshalJSON.
func (r *Route) UnmarshalJSON(data []byte) error {
	var w routeJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("route: decode: %w", err)
	}
	*r = New(w.Path, w.Cost)

	return nil
}
