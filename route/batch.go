// SPDX-License-Identifier: MIT
package route

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Pair is one start/end query.
type Pair struct {
	Start string `json:"start" yaml:"start" validate:"required"`
	End   string `json:"end" yaml:"end" validate:"required"`
}

// Result is the outcome of planning one Pair.
type Result struct {
	Pair  Pair  `json:"pair"`
	Route Route `json:"route"`
	OK    bool  `json:"ok"`
}

// PlanAll plans every pair with at most Concurrency workers.
// Results keep input order. Cancelling ctx stops workers from picking up
// further pairs; the ctx error is returned and partial results discarded.
func (p *Planner[A]) PlanAll(ctx context.Context, pairs []Pair) ([]Result, error) {
	out := make([]Result, len(pairs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.Concurrency)

	for i, pair := range pairs {
		if err := gCtx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			r, ok := p.Plan(pair.Start, pair.End)
			out[i] = Result{Pair: pair, Route: r, OK: ok}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
