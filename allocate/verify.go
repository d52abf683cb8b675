// SPDX-License-Identifier: MIT
package allocate

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Verification failures. Verify wraps them with the offending entity.
var (
	ErrEdgeOverCapacity = errors.New("allocate: edge over capacity")
	ErrDemandOverServed = errors.New("allocate: demand over-served")
	ErrAssetOverDrawn   = errors.New("allocate: asset over-drawn")
	ErrBrokenPath       = errors.New("allocate: broken allocation path")
	ErrBadAmount        = errors.New("allocate: allocation amount must be positive and finite")
)

// Verify checks allocs against the conservation properties every Allocate
// result satisfies:
//
//   - per edge, the summed amount never exceeds its capacity (untracked
//     edges use Options.UntrackedCapacity);
//   - per demand, the summed amount never exceeds the requested amount;
//   - per asset, the summed amount never exceeds its capacity;
//   - each path starts at the asset origin and ends at the demand node;
//   - each amount is positive and finite.
//
// Limits follow Allocate: a NaN edge capacity carries nothing, and a demand or
// asset whose amount is not finite may receive nothing.
// All violations are returned joined, in a stable order. Comparisons
// tolerate Options.Epsilon.
func Verify(allocs []Allocation, assets []Asset, demands []Demand, caps Capacities, opts ...Option) error {
	cfg := buildOptions(opts)
	eps := cfg.Epsilon

	assetByID := make(map[string]Asset, len(assets))
	for _, a := range assets {
		assetByID[a.ID] = a
	}
	demandByID := make(map[string]Demand, len(demands))
	for _, d := range demands {
		demandByID[d.ID] = d
	}

	var errs []error
	used := make(map[EdgeKey]float64)
	perAsset := make(map[string]float64)
	perDemand := make(map[string]float64)

	// 1) Path shape, accumulate totals.
	for i, al := range allocs {
		as, okA := assetByID[al.AssetID]
		d, okD := demandByID[al.DemandID]
		switch {
		case len(al.Path) == 0:
			errs = append(errs, fmt.Errorf("%w: allocation %d has no path", ErrBrokenPath, i))
		case !okA || al.Path[0] != as.Origin:
			errs = append(errs, fmt.Errorf("%w: allocation %d does not start at origin of asset %q", ErrBrokenPath, i, al.AssetID))
		case !okD || al.Path[len(al.Path)-1] != d.Node:
			errs = append(errs, fmt.Errorf("%w: allocation %d does not end at node of demand %q", ErrBrokenPath, i, al.DemandID))
		}
		if !usable(al.Amount, 0) {
			errs = append(errs, fmt.Errorf("%w: allocation %d carries %g", ErrBadAmount, i, al.Amount))
			continue
		}
		for _, e := range al.Edges() {
			used[e] += al.Amount
		}
		perAsset[al.AssetID] += al.Amount
		perDemand[al.DemandID] += al.Amount
	}

	// 2) Edge capacity.
	edges := make(Capacities, len(used))
	for e, u := range used {
		edges[e] = u
	}
	for _, e := range edges.Keys() {
		limit, ok := caps[e]
		if !ok {
			limit = cfg.UntrackedCapacity
		}
		if math.IsNaN(limit) {
			limit = 0
		}
		if used[e] > limit+eps {
			errs = append(errs, fmt.Errorf("%w: %s carries %g of %g", ErrEdgeOverCapacity, e, used[e], limit))
		}
	}

	// 3) Demand and asset conservation.
	for _, id := range sortedKeys(perDemand) {
		limit := finite(demandByID[id].Amount)
		if perDemand[id] > limit+eps {
			errs = append(errs, fmt.Errorf("%w: %q got %g of %g", ErrDemandOverServed, id, perDemand[id], limit))
		}
	}
	for _, id := range sortedKeys(perAsset) {
		limit := finite(assetByID[id].Capacity)
		if perAsset[id] > limit+eps {
			errs = append(errs, fmt.Errorf("%w: %q supplied %g of %g", ErrAssetOverDrawn, id, perAsset[id], limit))
		}
	}

	return errors.Join(errs...)
}

// finite returns x, or 0 when x is NaN or infinite.
func finite(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}

	return x
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
