// Command lvroute plans least-cost routes and allocates asset capacity to
// demands over routing scenarios described in YAML.
//
//	lvroute plan -s city.yaml Hub Hospital
//	lvroute allocate -s city.yaml --bound
//	lvroute lint -s city.yaml
//	lvroute generate --kind grid --rows 4 --cols 4 > grid.yaml
//	lvroute serve -s city.yaml --addr :8080
//	lvroute mcp -s city.yaml
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// version is reported by the MCP server and --version.
var version = "0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
