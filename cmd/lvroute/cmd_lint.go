package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/scenario"
)

func newLintCmd(a *app) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "lint",
		Short: "Report assets, demands and capacities the allocator would skip",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := a.loadScenario()
			if err != nil {
				return err
			}
			g, err := doc.Graph()
			if err != nil {
				return err
			}

			findings, err := scenario.Lint(cmd.Context(), doc, g)
			if err != nil {
				return err
			}
			for _, f := range findings {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
			st := g.Stats()
			a.logger.Info("Lint finished",
				"findings", len(findings),
				"nodes", st.KnownCount,
				"edges", st.EdgeCount)
			if strict && len(findings) > 0 {
				return fmt.Errorf("%d lint findings", len(findings))
			}

			return nil
		},
	}
	a.addScenarioFlag(cmd)
	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when anything is reported")

	return cmd
}
