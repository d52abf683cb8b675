package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/lvroute/observe"
	"github.com/katalvlaran/lvroute/scenario"
)

// RequestIDHeader carries the per-request correlation id.
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "request_id"

// DefaultMetricLabelLimit caps the asset and demand label values the server
// exports. Inline scenarios carry arbitrary IDs.
const DefaultMetricLabelLimit = 64

// Server holds the shared state behind the HTTP handlers.
type Server struct {
	logger      *slog.Logger
	registry    *prometheus.Registry
	metrics     *observe.Metrics
	doc         *scenario.Document
	concurrency int
	labelLimit  int
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the base logger; nil keeps slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRegistry registers metrics on reg and serves it on /metrics.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) {
		if reg != nil {
			s.registry = reg
		}
	}
}

// WithScenario sets the document used by requests that carry none.
func WithScenario(d *scenario.Document) Option {
	return func(s *Server) { s.doc = d }
}

// WithConcurrency bounds PlanAll workers per request. Non-positive values
// keep the planner default.
func WithConcurrency(n int) Option {
	return func(s *Server) { s.concurrency = n }
}

// WithMetricLabelLimit overrides DefaultMetricLabelLimit. Non-positive
// values lift the cap.
func WithMetricLabelLimit(n int) Option {
	return func(s *Server) { s.labelLimit = n }
}

// NewServer builds a Server. Metrics are registered once, here.
func NewServer(opts ...Option) *Server {
	s := &Server{logger: slog.Default(), labelLimit: DefaultMetricLabelLimit}
	for _, opt := range opts {
		opt(s)
	}
	if s.registry == nil {
		s.registry = prometheus.NewRegistry()
	}
	s.metrics = observe.NewMetrics(s.registry, observe.WithLabelLimit(s.labelLimit))

	return s
}

// Metrics returns the collectors fed by every request.
func (s *Server) Metrics() *observe.Metrics { return s.metrics }

// Router returns a gin engine with every route registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestID())

	v1 := r.Group("/v1")
	RegisterRoutes(v1, s)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))

	return r
}

// RegisterRoutes mounts the v1 handlers on rg.
func RegisterRoutes(rg *gin.RouterGroup, s *Server) {
	rg.GET("/health", s.HandleHealth)
	rg.POST("/plan", s.HandlePlan)
	rg.POST("/allocate", s.HandleAllocate)
}

// requestID echoes or creates the request id and stores it on the context.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)
		c.Set(requestIDKey, id)
		c.Next()
	}
}

// observer fans signals out to the request logger and the shared metrics.
func (s *Server) observer(logger *slog.Logger) observe.Observer {
	return observe.Multi(observe.NewLogger(logger), s.metrics)
}

func (s *Server) requestLogger(c *gin.Context, handler string) *slog.Logger {
	return s.logger.With(slog.String(requestIDKey, c.GetString(requestIDKey)), slog.String("handler", handler))
}
