package flow

import (
	"context"
	"math"
)

// EdmondsKarp computes the maximum flow from source→sink
// using the Edmonds–Karp algorithm (BFS for shortest augmenting paths).
//
// It returns:
//   - maxFlow: total flow value
//   - err: ErrSourceNotFound, ErrSinkNotFound, EdgeError, or the ctx error.
//
// Options (nil uses defaults):
//   - Epsilon: capacities ≤ Epsilon treated as zero (default 1e-9)
//
// Each augmentation saturates its bottleneck arc exactly, so the number of
// augmentations stays bounded by O(V·E) for real-valued capacities too.
//
// Complexity: O(V · E²)
// Memory:     O(V + E)
func EdmondsKarp(
	ctx context.Context,
	n Network,
	source, sink string,
	opts *Options,
) (maxFlow float64, err error) {
	// 1) Options and endpoints
	cfg := opts.normalize()
	if err = validateEndpoints(n, source, sink); err != nil {
		return 0, err
	}
	if source == sink {
		return 0, nil
	}

	// 2) Residual copy; n itself is never modified
	r, err := buildResidual(ctx, n, cfg.Epsilon)
	if err != nil {
		return 0, err
	}

	// 3) Main loop: find BFS augmenting paths until none remain
	for {
		if err = ctx.Err(); err != nil {
			return maxFlow, err
		}
		path, bottle := r.bfsAugmentingPath(source, sink)
		if len(path) == 0 || bottle <= cfg.Epsilon {
			break
		}
		maxFlow += bottle

		// 4) Augment along the path
		for i := 0; i < len(path)-1; i++ {
			r.push(path[i], path[i+1], bottle)
		}
	}

	return maxFlow, nil
}

// bfsAugmentingPath finds the shortest (fewest-arcs) path in r from
// source→sink whose arcs all have capacity > eps, and returns that path plus
// its bottleneck capacity. Returns nil if no path exists.
func (r *residual) bfsAugmentingPath(source, sink string) ([]string, float64) {
	// parent[v] = predecessor of v on the path
	parent := make(map[string]string, r.size)
	// bottle[v] = bottleneck capacity from source→v
	bottle := map[string]float64{source: math.Inf(1)}
	visited := map[string]bool{source: true}

	queue := []string{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range r.adj[u] {
			if visited[v] {
				continue
			}
			c := r.rc[u][v]
			if c <= r.eps {
				continue
			}
			visited[v] = true
			parent[v] = u
			bottle[v] = math.Min(bottle[u], c)
			if v == sink {
				path := []string{sink}
				for cur := sink; cur != source; {
					p := parent[cur]
					path = append(path, p)
					cur = p
				}
				for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
					path[i], path[j] = path[j], path[i]
				}

				return path, bottle[sink]
			}
			queue = append(queue, v)
		}
	}

	return nil, 0
}
