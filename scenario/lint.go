// SPDX-License-Identifier: MIT
package scenario

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvroute/allocate"
	"github.com/katalvlaran/lvroute/bfs"
	"github.com/katalvlaran/lvroute/core"
)

// Finding kinds reported by Lint.
const (
	FindingUnknownOrigin     = "unknown_origin"
	FindingUnknownDemandNode = "unknown_demand_node"
	FindingUnreachableDemand = "unreachable_demand"
	FindingCapacityOffGraph  = "capacity_off_graph"
	FindingUntrackedEdge     = "untracked_edge"
	FindingUnknownRouteNode  = "unknown_route_node"
)

// Finding is one lint result. Findings are advisory: the core tolerates
// every one of them by skipping the entity.
type Finding struct {
	Kind    string `json:"kind" yaml:"kind"`
	Subject string `json:"subject" yaml:"subject"`
	Message string `json:"message" yaml:"message"`
}

func (f Finding) String() string { return f.Kind + " " + f.Subject + ": " + f.Message }

// Lint checks d against the graph built from it and reports entities the
// allocator or planner will silently skip. Order follows the document.
//
// Steps:
//  1. Asset origins must be known to g; one hop tree is grown per origin.
//  2. Demand nodes must be known and inside at least one tree.
//  3. Capacity keys must name existing edges.
//  4. Edges inside a tree but absent from the capacity map are reported
//     with the hop path that reaches them: they carry zero capacity unless
//     configured. Trees are scanned in asset order, nodes in visit order.
//  5. Route query endpoints must be known.
//
// The only error is ctx's, when it is cancelled during a walk.
func Lint(ctx context.Context, d *Document, g *core.Graph[core.Attrs]) ([]Finding, error) {
	var out []Finding

	// 1)
	var trees []*bfs.Tree
	grown := make(map[string]bool)
	for _, as := range d.Assets {
		if !g.Known(as.Origin) {
			out = append(out, Finding{FindingUnknownOrigin, as.ID, fmt.Sprintf("origin %q is not in the graph", as.Origin)})
			continue
		}
		if grown[as.Origin] {
			continue
		}
		grown[as.Origin] = true
		t, err := bfs.Walk(ctx, g, as.Origin)
		if err != nil {
			return nil, fmt.Errorf("scenario: lint: %w", err)
		}
		trees = append(trees, t)
	}

	// 2)
	for _, dm := range d.Demands {
		if !g.Known(dm.Node) {
			out = append(out, Finding{FindingUnknownDemandNode, dm.ID, fmt.Sprintf("node %q is not in the graph", dm.Node)})
			continue
		}
		if len(d.Assets) > 0 && !reachedByAny(trees, dm.Node) {
			out = append(out, Finding{FindingUnreachableDemand, dm.ID, fmt.Sprintf("no asset origin reaches %q", dm.Node)})
		}
	}

	// 3)
	caps, err := d.Caps()
	if err == nil {
		for _, k := range caps.Keys() {
			if !g.HasEdge(k.From, k.To) {
				out = append(out, Finding{FindingCapacityOffGraph, k.String(), "no such edge"})
			}
		}
	}

	// 4)
	if len(d.Demands) > 0 && err == nil {
		seen := make(map[allocate.EdgeKey]bool)
		for _, t := range trees {
			for _, from := range t.Order {
				for _, to := range g.Neighbors(from) {
					k := allocate.EdgeKey{From: from, To: to}
					if _, ok := caps[k]; ok || seen[k] {
						continue
					}
					seen[k] = true
					via := append(t.PathTo(from), to)
					out = append(out, Finding{FindingUntrackedEdge, k.String(),
						"reachable edge without capacity, via " + strings.Join(via, " → ")})
				}
			}
		}
	}

	// 5)
	for i, p := range d.Routes {
		for _, id := range []string{p.Start, p.End} {
			if !g.Known(id) {
				out = append(out, Finding{FindingUnknownRouteNode, fmt.Sprintf("routes[%d]", i), fmt.Sprintf("node %q is not in the graph", id)})
			}
		}
	}

	return out, nil
}

func reachedByAny(trees []*bfs.Tree, id string) bool {
	for _, t := range trees {
		if t.Reached(id) {
			return true
		}
	}

	return false
}
