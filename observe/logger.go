package observe

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/lvroute/allocate"
	"github.com/katalvlaran/lvroute/route"
)

// Logger writes one structured record per signal:
//
//   - route.planned at Debug
//   - route.unreachable at Warn
//   - route.allocation at Info
type Logger struct {
	log *slog.Logger
}

// NewLogger wraps l; nil means slog.Default().
func NewLogger(l *slog.Logger) *Logger {
	if l == nil {
		l = slog.Default()
	}

	return &Logger{log: l}
}

func (l *Logger) RoutePlanned(start, end string, r route.Route) {
	l.log.LogAttrs(context.Background(), slog.LevelDebug, route.SignalPlanned,
		slog.String("start", start),
		slog.String("end", end),
		slog.Float64("cost", r.Cost()),
		slog.Int("hops", r.Hops()),
	)
}

func (l *Logger) RouteUnreachable(start, end string) {
	l.log.LogAttrs(context.Background(), slog.LevelWarn, route.SignalUnreachable,
		slog.String("start", start),
		slog.String("end", end),
	)
}

func (l *Logger) Allocated(e allocate.Event) {
	l.log.LogAttrs(context.Background(), slog.LevelInfo, allocate.SignalAllocation,
		slog.String("asset", e.Asset),
		slog.String("demand", e.Demand),
		slog.Any("path", e.Path),
		slog.Float64("amount", e.Amount),
	)
}
