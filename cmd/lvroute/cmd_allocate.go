package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/katalvlaran/lvroute/allocate"
	"github.com/katalvlaran/lvroute/flow"
	"github.com/katalvlaran/lvroute/observe"
)

type allocateFlags struct {
	residual bool
	bound    bool
	algo     string
	verify   bool
	asJSON   bool
}

// allocateOutput is the --json document.
type allocateOutput struct {
	Allocations []allocate.Allocation `json:"allocations"`
	Report      allocate.Report       `json:"report"`
	Bound       *float64              `json:"bound,omitempty"`
}

func newAllocateCmd(a *app) *cobra.Command {
	var f allocateFlags

	cmd := &cobra.Command{
		Use:   "allocate",
		Short: "Assign asset capacity to demands, highest priority first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			algo, err := flow.ParseAlgorithm(f.algo)
			if err != nil {
				return err
			}
			ctx, span := otel.Tracer(tracerName).Start(cmd.Context(), "cli.allocate")
			defer span.End()

			doc, err := a.loadScenario()
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, "load scenario")
				return err
			}

			opts := []allocate.Option{allocate.WithObserver(observe.NewLogger(a.logger))}
			if f.residual {
				opts = append(opts, allocate.WithResidualRouting())
			}
			allocs, err := doc.Allocate(opts...)
			if err != nil {
				return err
			}
			res := allocateOutput{Allocations: allocs, Report: allocate.Summarize(allocs, doc.Demands)}
			if res.Allocations == nil {
				res.Allocations = []allocate.Allocation{}
			}

			if f.verify {
				caps, err := doc.Caps()
				if err != nil {
					return err
				}
				if err := allocate.Verify(allocs, doc.Assets, doc.Demands, caps); err != nil {
					span.RecordError(err)
					span.SetStatus(codes.Error, "verify")
					return fmt.Errorf("allocation failed verification: %w", err)
				}
			}
			if f.bound {
				b, err := doc.UpperBound(ctx, allocate.WithMaxFlowAlgorithm(algo))
				if err != nil {
					return err
				}
				res.Bound = &b
				span.SetAttributes(attribute.String("bound.algorithm", string(algo)))
			}
			span.SetAttributes(
				attribute.Int("allocations", len(allocs)),
				attribute.Float64("allocated", res.Report.Allocated),
			)

			if f.asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			printAllocation(cmd, res)

			return nil
		},
	}
	a.addScenarioFlag(cmd)
	cmd.Flags().BoolVar(&f.residual, "residual", false, "route around saturated edges and run repeated passes")
	cmd.Flags().BoolVar(&f.bound, "bound", false, "also compute the max-flow upper bound")
	cmd.Flags().StringVar(&f.algo, "bound-algo", string(flow.DefaultAlgorithm), "max-flow algorithm for --bound: dinic or edmonds_karp")
	cmd.Flags().BoolVar(&f.verify, "verify", false, "check the result against every capacity")
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "print the result as JSON")

	return cmd
}

func printAllocation(cmd *cobra.Command, res allocateOutput) {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ASSET\tDEMAND\tAMOUNT\tPATH")
	for _, al := range res.Allocations {
		fmt.Fprintf(tw, "%s\t%s\t%g\t%s\n", al.AssetID, al.DemandID, al.Amount, strings.Join(al.Path, " → "))
	}
	_ = tw.Flush()

	fmt.Fprintf(cmd.OutOrStdout(), "\nallocated %g of %g (shortfall %g)\n",
		res.Report.Allocated, res.Report.Requested, res.Report.Shortfall)
	for _, d := range res.Report.Unmet() {
		fmt.Fprintf(cmd.OutOrStdout(), "  unmet %s at %s: %g\n", d.ID, d.Node, d.Shortfall)
	}
	if res.Bound != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "upper bound %g\n", *res.Bound)
	}
}
