// SPDX-License-Identifier: MIT
package scenario

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvroute/allocate"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/fitness"
	"github.com/katalvlaran/lvroute/route"
)

// Cost kinds accepted in CostSpec.Kind.
const (
	CostTimeRisk = "time_risk"
	CostTime     = "time"
	CostDistance = "distance"
)

// ErrInvalid is wrapped by every *ValidationError.
var ErrInvalid = errors.New("scenario: invalid document")

// validate is shared; validator.Validate caches struct metadata and is safe
// for concurrent use.
var validate = newValidator()

// newValidator registers the "finite" tag, which rejects NaN and ±Inf floats.
// YAML spells them .nan and .inf; gte=0 alone lets +Inf through.
func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("finite", isFinite); err != nil {
		panic(fmt.Sprintf("scenario: register finite: %v", err))
	}

	return v
}

func isFinite(fl validator.FieldLevel) bool {
	f := fl.Field()
	switch f.Kind() {
	case reflect.Float32, reflect.Float64:
		x := f.Float()
		return !math.IsNaN(x) && !math.IsInf(x, 0)
	default:
		return true
	}
}

// Document is one routing scenario: a graph, a cost function, and optional
// assets, demands, edge capacities and route queries.
type Document struct {
	Name       string             `yaml:"name,omitempty" json:"name,omitempty"`
	Cost       CostSpec           `yaml:"cost" json:"cost"`
	Nodes      []NodeSpec         `yaml:"nodes" json:"nodes" validate:"required,min=1,unique=ID,dive"`
	Assets     []allocate.Asset   `yaml:"assets,omitempty" json:"assets,omitempty" validate:"unique=ID,dive"`
	Demands    []allocate.Demand  `yaml:"demands,omitempty" json:"demands,omitempty" validate:"unique=ID,dive"`
	Capacities map[string]float64 `yaml:"capacities,omitempty" json:"capacities,omitempty" validate:"dive,keys,required,endkeys,gte=0,finite"`
	Routes     []route.Pair       `yaml:"routes,omitempty" json:"routes,omitempty" validate:"dive"`
}

// CostSpec selects the edge cost function and the search limits. An empty
// Kind means time_risk.
//
// MaxCost > 0 makes destinations whose path cost exceeds it unreachable.
// SkipBlocked removes blocked edges from every search instead of pricing
// them at fitness.Blocked.
type CostSpec struct {
	Kind        string  `yaml:"kind,omitempty" json:"kind,omitempty" validate:"omitempty,oneof=time_risk time distance"`
	RiskWeight  float64 `yaml:"risk_weight,omitempty" json:"risk_weight,omitempty" validate:"gte=0,finite"`
	MaxCost     float64 `yaml:"max_cost,omitempty" json:"max_cost,omitempty" validate:"gte=0,finite"`
	SkipBlocked bool    `yaml:"skip_blocked,omitempty" json:"skip_blocked,omitempty"`
}

// NodeSpec is one node with its outgoing edges keyed by neighbor ID.
type NodeSpec struct {
	ID    string                `yaml:"id" json:"id" validate:"required"`
	Edges map[string]core.Attrs `yaml:"edges,omitempty" json:"edges,omitempty" validate:"dive,keys,required,endkeys"`
}

// ValidationError lists every problem found in a document.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return ErrInvalid.Error() + ": " + strings.Join(e.Problems, "; ")
}

// Unwrap lets errors.Is(err, ErrInvalid) match.
func (e *ValidationError) Unwrap() error { return ErrInvalid }

// Parse decodes a YAML (or JSON) document and validates it.
func Parse(data []byte) (*Document, error) {
	var d Document
	if err := yaml.Unmarshal(data, &d); err != nil {
		d = Document{}
		if jsonErr := json.Unmarshal(data, &d); jsonErr != nil {
			return nil, fmt.Errorf("scenario: parse (tried YAML and JSON): YAML error: %v, JSON error: %w", err, jsonErr)
		}
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	return &d, nil
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return d, nil
}

// Marshal encodes d as YAML.
func Marshal(d *Document) ([]byte, error) {
	return yaml.Marshal(d)
}

// Validate checks struct tags and capacity key syntax. It returns nil or a
// *ValidationError.
func (d *Document) Validate() error {
	var problems []string

	if err := validate.Struct(d); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("scenario: validate: %w", err)
		}
		for _, fe := range verrs {
			problems = append(problems, describe(fe))
		}
	}

	keys := make([]string, 0, len(d.Capacities))
	for k := range d.Capacities {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, err := allocate.ParseEdgeKey(k); err != nil {
			problems = append(problems, fmt.Sprintf("capacities[%q]: not a \"from|to\" key", k))
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}

	return nil
}

// describe renders one validator failure as "Namespace: tag=param".
func describe(fe validator.FieldError) string {
	rule := fe.Tag()
	if p := fe.Param(); p != "" {
		rule += "=" + p
	}

	return fmt.Sprintf("%s: failed %s", strings.TrimPrefix(fe.Namespace(), "Document."), rule)
}

// Graph builds the directed graph described by Nodes.
func (d *Document) Graph() (*core.Graph[core.Attrs], error) {
	g := core.NewGraph[core.Attrs]()
	for _, ns := range d.Nodes {
		n := core.NewNode[core.Attrs](ns.ID)
		for to, attrs := range ns.Edges {
			n.Connect(to, attrs)
		}
		if err := g.AddNode(n); err != nil {
			return nil, fmt.Errorf("scenario: node %q: %w", ns.ID, err)
		}
	}

	return g, nil
}

// CostFunc returns the configured cost function.
func (d *Document) CostFunc() fitness.Func[core.Attrs] {
	switch d.Cost.Kind {
	case CostTime:
		return fitness.Time()
	case CostDistance:
		return fitness.Distance()
	default:
		return fitness.TimeRisk(d.Cost.RiskWeight)
	}
}

// SearchOptions turns the CostSpec limits into dijkstra options. Planner and
// Allocate apply them; callers running their own searches may too.
func (d *Document) SearchOptions() []dijkstra.Option {
	var opts []dijkstra.Option
	if d.Cost.MaxCost > 0 {
		opts = append(opts, dijkstra.WithMaxDistance(d.Cost.MaxCost))
	}
	if d.Cost.SkipBlocked {
		opts = append(opts, dijkstra.WithInfEdgeThreshold(fitness.Blocked))
	}

	return opts
}

// Caps converts the string-keyed capacity map.
func (d *Document) Caps() (allocate.Capacities, error) {
	return allocate.CapacitiesFromStrings(d.Capacities)
}

// FromGraph describes g as a Document with the given cost, nodes sorted.
// Unregistered edge targets are left implicit.
func FromGraph(g *core.Graph[core.Attrs], cost CostSpec) *Document {
	d := &Document{Cost: cost}
	for _, id := range g.Nodes() {
		ns := NodeSpec{ID: id}
		if n, ok := g.Node(id); ok && len(n.Edges) > 0 {
			ns.Edges = n.Edges
		}
		d.Nodes = append(d.Nodes, ns)
	}

	return d
}
