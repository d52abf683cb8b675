// SPDX-License-Identifier: MIT
package allocate

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("allocate: graph is nil")

	// ErrNilCost indicates that a nil cost function was passed.
	ErrNilCost = errors.New("allocate: cost function is nil")

	// ErrBadEdgeKey indicates a capacity key that is not "from|to".
	ErrBadEdgeKey = errors.New("allocate: edge key must be \"from|to\"")
)

// edgeKeySep joins the endpoints of an EdgeKey in its string form.
const edgeKeySep = "|"

// Asset is a mobile supply of flow starting at Origin.
type Asset struct {
	ID       string  `json:"id" yaml:"id" validate:"required"`
	Origin   string  `json:"origin" yaml:"origin" validate:"required"`
	Capacity float64 `json:"capacity" yaml:"capacity" validate:"gte=0,finite"`
}

// Demand is a requested quantity of flow to be delivered to Node.
// Higher Priority is served first.
type Demand struct {
	ID       string  `json:"id" yaml:"id" validate:"required"`
	Node     string  `json:"node" yaml:"node" validate:"required"`
	Amount   float64 `json:"amount" yaml:"amount" validate:"gte=0,finite"`
	Priority float64 `json:"priority" yaml:"priority" validate:"finite"`
}

// EdgeKey identifies the directed edge From→To.
type EdgeKey struct {
	From, To string
}

// String returns "from|to".
func (k EdgeKey) String() string { return k.From + edgeKeySep + k.To }

// MarshalText lets EdgeKey serve as a JSON object key.
func (k EdgeKey) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText parses "from|to".
func (k *EdgeKey) UnmarshalText(b []byte) error {
	parsed, err := ParseEdgeKey(string(b))
	if err != nil {
		return err
	}
	*k = parsed

	return nil
}

// ParseEdgeKey parses "from|to". Both sides must be non-empty and the
// separator must appear exactly once.
func ParseEdgeKey(s string) (EdgeKey, error) {
	if strings.Count(s, edgeKeySep) != 1 {
		return EdgeKey{}, fmt.Errorf("%w: %q", ErrBadEdgeKey, s)
	}
	from, to, _ := strings.Cut(s, edgeKeySep)
	if from == "" || to == "" {
		return EdgeKey{}, fmt.Errorf("%w: %q", ErrBadEdgeKey, s)
	}

	return EdgeKey{From: from, To: to}, nil
}

// Capacities maps an edge to the total flow it may carry.
type Capacities map[EdgeKey]float64

// CapacitiesFromStrings converts a {"from|to": c} map.
func CapacitiesFromStrings(m map[string]float64) (Capacities, error) {
	out := make(Capacities, len(m))
	for s, c := range m {
		k, err := ParseEdgeKey(s)
		if err != nil {
			return nil, err
		}
		out[k] = c
	}

	return out, nil
}

// Clone returns an independent copy. A nil receiver yields an empty map.
func (c Capacities) Clone() Capacities {
	out := make(Capacities, len(c))
	for k, v := range c {
		out[k] = v
	}

	return out
}

// Strings converts back to the {"from|to": c} form.
func (c Capacities) Strings() map[string]float64 {
	out := make(map[string]float64, len(c))
	for k, v := range c {
		out[k.String()] = v
	}

	return out
}

// Keys returns the edge keys sorted by (From, To).
func (c Capacities) Keys() []EdgeKey {
	keys := make([]EdgeKey, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].From != keys[j].From {
			return keys[i].From < keys[j].From
		}

		return keys[i].To < keys[j].To
	})

	return keys
}

// Allocation is one committed unit of flow from an asset to a demand along Path.
type Allocation struct {
	AssetID  string   `json:"asset_id" yaml:"asset_id"`
	DemandID string   `json:"demand_id" yaml:"demand_id"`
	Path     []string `json:"path" yaml:"path"`
	Amount   float64  `json:"amount" yaml:"amount"`
}

// Edges returns the consecutive edges of the allocation path.
func (a Allocation) Edges() []EdgeKey {
	return pathEdges(a.Path)
}

// pathEdges lists the consecutive edges of path.
func pathEdges(path []string) []EdgeKey {
	if len(path) < 2 {
		return nil
	}
	out := make([]EdgeKey, 0, len(path)-1)
	for i := 0; i+1 < len(path); i++ {
		out = append(out, EdgeKey{From: path[i], To: path[i+1]})
	}

	return out
}
