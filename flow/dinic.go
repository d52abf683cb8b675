package flow

import (
	"context"
	"math"
)

// Dinic computes the maximum flow from source to sink in n using Dinic's
// algorithm (level graph + blocking flows).
//
// It returns:
//   - maxFlow : the total flow value
//   - err     : ErrSourceNotFound, ErrSinkNotFound, EdgeError,
//     or the ctx error
//
// Steps:
//  1. Normalize options.
//  2. Validate that source and sink exist in n.
//  3. Build the residual copy (sorted neighbor lists).
//  4. Repeat until no more augmenting paths:
//     a. Check for cancellation.
//     b. BFS to build the level graph.
//     c. If sink unreachable, break.
//     d. DFS-based blocking flow pushes until none remains,
//     optionally rebuilding the level graph every LevelRebuildInterval augmentations.
//
// Complexity:
//
//	Time:   O(V² · E) in general; O(E·√V) on unit-capacity networks.
//	Memory: O(V + E) for the residual copy and the level/iter maps.
func Dinic(
	ctx context.Context,
	n Network,
	source, sink string,
	opts *Options,
) (maxFlow float64, err error) {
	// 1) Normalize options
	cfg := opts.normalize()

	// 2) Validate presence of source and sink
	if err = validateEndpoints(n, source, sink); err != nil {
		return 0, err
	}
	if source == sink {
		return 0, nil
	}

	// 3) Residual copy
	r, err := buildResidual(ctx, n, cfg.Epsilon)
	if err != nil {
		return 0, err
	}

	// 4) Main loop: level graph + blocking flows
	augmentCount := 0
	for {
		// 4a) Cancellation check before BFS
		if err = ctx.Err(); err != nil {
			return maxFlow, err
		}

		// 4b) BFS to compute levels
		level := r.levels(source)

		// 4c) If sink unreachable in level graph, we're done
		if _, ok := level[sink]; !ok {
			break
		}

		// 4d) DFS-based blocking flow
		iter := make(map[string]int, len(level))
		for {
			if err = ctx.Err(); err != nil {
				return maxFlow, err
			}
			pushed := r.dfsPush(level, iter, source, sink, math.Inf(1))
			if pushed <= 0 {
				break
			}
			maxFlow += pushed
			augmentCount++
			if cfg.LevelRebuildInterval > 0 && augmentCount%cfg.LevelRebuildInterval == 0 {
				break
			}
		}
	}

	return maxFlow, nil
}

// levels returns the BFS depth of every node reachable from source through
// arcs with capacity > eps.
func (r *residual) levels(source string) map[string]int {
	level := map[string]int{source: 0}
	queue := []string{source}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, v := range r.adj[u] {
			if _, seen := level[v]; seen || r.rc[u][v] <= r.eps {
				continue
			}
			level[v] = level[u] + 1
			queue = append(queue, v)
		}
	}

	return level
}

// dfsPush pushes flow along the level graph and returns the amount sent.
// iter[u] only advances past arcs that can no longer carry flow in this phase.
func (r *residual) dfsPush(
	level map[string]int,
	iter map[string]int,
	u, sink string,
	available float64,
) float64 {
	if u == sink {
		return available
	}
	nbrs := r.adj[u]
	for ; iter[u] < len(nbrs); iter[u]++ {
		v := nbrs[iter[u]]
		lv, ok := level[v]
		if !ok || lv != level[u]+1 {
			continue
		}
		c := r.rc[u][v]
		if c <= r.eps {
			continue
		}
		send := math.Min(available, c)
		if pushed := r.dfsPush(level, iter, v, sink, send); pushed > 0 {
			r.push(u, v, pushed)
			return pushed
		}
	}

	return 0
}
