package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/mcptools"
)

func newMCPCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve plan_route and allocate_flow tools over MCP stdio",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			doc, err := a.loadScenario()
			if err != nil {
				return err
			}
			a.logger.Info("Serving MCP on stdio", "scenario", doc.Name)

			return mcptools.NewServer(doc, version, a.logger).Serve()
		},
	}
	a.addScenarioFlag(cmd)

	return cmd
}
