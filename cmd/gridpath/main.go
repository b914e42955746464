// Command gridpath runs grid shortest-path scenarios through the bidirectional,
// forward-chaining and A* engines and reports paths, costs and visitation detail.
//
// Usage:
//
//	gridpath search --builtin reference --engine forward-chaining -v
//	gridpath search scenarios.yaml --json
//	gridpath batch a.yaml b.yaml --jobs 4
//	gridpath demo
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "gridpath:", err)
		stop()
		os.Exit(1)
	}
}
