// Package observe turns planner and allocator signals into logs, metrics and
// in-memory records.
//
// Every type here implements both route.Observer and allocate.Observer, so
// one value can be handed to a Planner and an Allocator alike:
//
//	obs := observe.Multi(observe.NewLogger(log), observe.NewMetrics(reg))
//	p, _ := route.NewPlanner(g, cost, route.WithObserver(obs))
//	a, _ := allocate.New(g, cost, allocate.WithObserver(obs))
//
// All observers are safe for concurrent use.
package observe

import (
	"github.com/katalvlaran/lvroute/allocate"
	"github.com/katalvlaran/lvroute/route"
)

// Observer receives every signal the core emits.
type Observer interface {
	route.Observer
	allocate.Observer
}

// multi fans signals out in order.
type multi []Observer

// Multi returns an Observer that forwards to each non-nil obs in order.
func Multi(obs ...Observer) Observer {
	out := make(multi, 0, len(obs))
	for _, o := range obs {
		if o != nil {
			out = append(out, o)
		}
	}

	return out
}

func (m multi) RoutePlanned(start, end string, r route.Route) {
	for _, o := range m {
		o.RoutePlanned(start, end, r)
	}
}

func (m multi) RouteUnreachable(start, end string) {
	for _, o := range m {
		o.RouteUnreachable(start, end)
	}
}

func (m multi) Allocated(e allocate.Event) {
	for _, o := range m {
		o.Allocated(e)
	}
}
