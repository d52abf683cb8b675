package observe

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/lvroute/allocate"
	"github.com/katalvlaran/lvroute/route"
)

// OverflowLabel is the asset or demand label value used once a label limit
// is reached.
const OverflowLabel = "other"

// Metrics exports signal counts to Prometheus.
type Metrics struct {
	RoutesPlanned     prometheus.Counter
	RoutesUnreachable prometheus.Counter
	RouteCost         prometheus.Histogram
	Allocations       *prometheus.CounterVec // labels: asset
	AllocatedAmount   *prometheus.CounterVec // labels: demand

	assets, demands *labelSet
}

// MetricsOption configures NewMetrics.
type MetricsOption func(*Metrics)

// WithLabelLimit caps the distinct asset and demand label values at n each.
// Further IDs are counted under OverflowLabel. n <= 0 means no cap, which
// suits a process serving one fixed scenario.
func WithLabelLimit(n int) MetricsOption {
	return func(m *Metrics) {
		m.assets = newLabelSet(n)
		m.demands = newLabelSet(n)
	}
}

// labelSet admits the first limit distinct values.
type labelSet struct {
	mu    sync.Mutex
	limit int
	seen  map[string]struct{}
}

func newLabelSet(limit int) *labelSet {
	return &labelSet{limit: limit, seen: make(map[string]struct{})}
}

// value returns v, or OverflowLabel when v is new and the set is full.
func (l *labelSet) value(v string) string {
	if l == nil || l.limit <= 0 {
		return v
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.seen[v]; ok {
		return v
	}
	if len(l.seen) >= l.limit {
		return OverflowLabel
	}
	l.seen[v] = struct{}{}

	return v
}

// NewMetrics registers the lvroute collectors on reg.
// Registering twice on the same registry panics, as with promauto.
func NewMetrics(reg prometheus.Registerer, opts ...MetricsOption) *Metrics {
	f := promauto.With(reg)

	m := &Metrics{
		RoutesPlanned: f.NewCounter(prometheus.CounterOpts{
			Name: "lvroute_routes_planned_total",
			Help: "Routes found by the planner.",
		}),
		RoutesUnreachable: f.NewCounter(prometheus.CounterOpts{
			Name: "lvroute_routes_unreachable_total",
			Help: "Plan requests with no path.",
		}),
		RouteCost: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "lvroute_route_cost",
			Help:    "Total cost of planned routes.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),
		Allocations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "lvroute_allocations_total",
			Help: "Committed allocations by asset.",
		}, []string{"asset"}),
		AllocatedAmount: f.NewCounterVec(prometheus.CounterOpts{
			Name: "lvroute_allocated_amount_total",
			Help: "Allocated amount by demand.",
		}, []string{"demand"}),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

func (m *Metrics) RoutePlanned(_, _ string, r route.Route) {
	m.RoutesPlanned.Inc()
	m.RouteCost.Observe(r.Cost())
}

func (m *Metrics) RouteUnreachable(_, _ string) {
	m.RoutesUnreachable.Inc()
}

func (m *Metrics) Allocated(e allocate.Event) {
	m.Allocations.WithLabelValues(m.assets.value(e.Asset)).Inc()
	m.AllocatedAmount.WithLabelValues(m.demands.value(e.Demand)).Add(e.Amount)
}
