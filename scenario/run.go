// SPDX-License-Identifier: MIT
package scenario

import (
	"context"

	"github.com/katalvlaran/lvroute/allocate"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/route"
)

// Planner builds the document graph and returns a planner over it with the
// configured cost function and search limits. opts apply after the limits.
func (d *Document) Planner(opts ...route.PlannerOption) (*route.Planner[core.Attrs], error) {
	g, err := d.Graph()
	if err != nil {
		return nil, err
	}
	opts = append([]route.PlannerOption{route.WithSearchOptions(d.SearchOptions()...)}, opts...)

	return route.NewPlanner(g, d.CostFunc(), opts...)
}

// Allocate runs the greedy allocator over the document's assets, demands and
// capacities, honoring the CostSpec search limits.
func (d *Document) Allocate(opts ...allocate.Option) ([]allocate.Allocation, error) {
	g, err := d.Graph()
	if err != nil {
		return nil, err
	}
	caps, err := d.Caps()
	if err != nil {
		return nil, err
	}
	opts = append([]allocate.Option{allocate.WithSearchOptions(d.SearchOptions()...)}, opts...)
	a, err := allocate.New(g, d.CostFunc(), opts...)
	if err != nil {
		return nil, err
	}

	return a.Allocate(d.Assets, d.Demands, caps), nil
}

// UpperBound returns the max-flow bound on what any allocation of the
// document could deliver.
func (d *Document) UpperBound(ctx context.Context, opts ...allocate.Option) (float64, error) {
	g, err := d.Graph()
	if err != nil {
		return 0, err
	}
	caps, err := d.Caps()
	if err != nil {
		return 0, err
	}

	return allocate.UpperBound(ctx, g, d.Assets, d.Demands, caps, opts...)
}
