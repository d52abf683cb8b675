package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/katalvlaran/lvroute/observe"
	"github.com/katalvlaran/lvroute/route"
)

const tracerName = "github.com/katalvlaran/lvroute/cmd/lvroute"

func newPlanCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "plan [start end]",
		Short: "Plan least-cost routes",
		Long: "Plan the route from start to end, or every route listed in the scenario " +
			"when no pair is given. Unreachable pairs print <no route>.",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("want 0 or 2 arguments, got %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, span := otel.Tracer(tracerName).Start(cmd.Context(), "cli.plan")
			defer span.End()

			doc, err := a.loadScenario()
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, "load scenario")
				return err
			}

			pairs := doc.Routes
			if len(args) == 2 {
				pairs = []route.Pair{{Start: args[0], End: args[1]}}
			}

			p, err := doc.Planner(
				route.WithObserver(observe.NewLogger(a.logger)),
				route.WithConcurrency(a.cfg.Concurrency),
			)
			if err != nil {
				return err
			}
			results, err := p.PlanAll(ctx, pairs)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, "plan")
				return err
			}
			span.SetAttributes(attribute.Int("routes", len(results)))

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			}
			for _, r := range results {
				fmt.Fprintf(out, "%s → %s: %s\n", r.Pair.Start, r.Pair.End, r.Route)
			}

			return nil
		},
	}
	a.addScenarioFlag(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print results as JSON")

	return cmd
}
