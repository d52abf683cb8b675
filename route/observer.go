// SPDX-License-Identifier: MIT
package route

// Signal names emitted by the planner.
const (
	SignalPlanned     = "route.planned"
	SignalUnreachable = "route.unreachable"
)

// Observer receives planner signals after the fact.
// Emission is fire-and-forget: nothing an observer does affects planning.
// Observers shared by concurrent PlanAll workers must be safe for concurrent use.
type Observer interface {
	// RoutePlanned is called once per successful Plan.
	RoutePlanned(start, end string, r Route)

	// RouteUnreachable is called once per Plan that found no path.
	RouteUnreachable(start, end string)
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	Planned     func(start, end string, r Route)
	Unreachable func(start, end string)
}

// RoutePlanned implements Observer.
func (f ObserverFuncs) RoutePlanned(start, end string, r Route) {
	if f.Planned != nil {
		f.Planned(start, end, r)
	}
}

// RouteUnreachable implements Observer.
func (f ObserverFuncs) RouteUnreachable(start, end string) {
	if f.Unreachable != nil {
		f.Unreachable(start, end)
	}
}

// nopObserver is installed when no observer is configured.
type nopObserver struct{}

func (nopObserver) RoutePlanned(string, string, Route) {}
func (nopObserver) RouteUnreachable(string, string)    {}
