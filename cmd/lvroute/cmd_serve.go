package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/api"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Long: "Serve POST /v1/plan, POST /v1/allocate, GET /v1/health and GET /metrics. " +
			"With --scenario, requests without an inline scenario use that file.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("addr") {
				a.cfg.Addr = addr
			}

			opts := []api.Option{api.WithLogger(a.logger), api.WithConcurrency(a.cfg.Concurrency)}
			if a.scenarioPath != "" {
				doc, err := a.loadScenario()
				if err != nil {
					return err
				}
				opts = append(opts, api.WithScenario(doc))
			}

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
			opts = append(opts, api.WithRegistry(reg))

			gin.SetMode(gin.ReleaseMode)
			srv := &http.Server{
				Addr:              a.cfg.Addr,
				Handler:           api.NewServer(opts...).Router(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			return a.serveHTTP(cmd.Context(), srv)
		},
	}
	cmd.Flags().StringVarP(&a.scenarioPath, "scenario", "s", "", "default scenario file (optional)")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (env "+envAddr+", default :8080)")

	return cmd
}

// serveHTTP runs srv until ctx is cancelled, then shuts it down gracefully.
func (a *app) serveHTTP(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("Listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	a.logger.Info("Shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(sctx)
}
