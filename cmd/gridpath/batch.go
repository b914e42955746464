package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridpath/scenario"
)

func newBatchCmd(a *app) *cobra.Command {
	var (
		jobs  int
		stats bool
	)
	cmd := &cobra.Command{
		Use:   "batch scenario.yaml...",
		Short: "Run every scenario of every file concurrently and report in input order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if jobs < 1 {
				return fmt.Errorf("--jobs must be >= 1, got %d", jobs)
			}
			var reader *sdkmetric.ManualReader
			if stats {
				reader = installStats()
			}

			var scenarios []*scenario.Scenario
			for _, path := range args {
				cfgs, err := scenario.LoadAll(path)
				if err != nil {
					return err
				}
				for _, cfg := range cfgs {
					sc, err := cfg.Build()
					if err != nil {
						return fmt.Errorf("%s: %w", path, err)
					}
					scenarios = append(scenarios, sc)
				}
			}

			reports := make([]*scenario.Report, len(scenarios))
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(jobs)
			for i, sc := range scenarios {
				g.Go(func() error {
					rep, err := scenario.Run(ctx, sc, a.logger)
					if err != nil {
						return err
					}
					reports[i] = rep
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			a.logger.Debug("batch finished", "scenarios", len(reports), "jobs", jobs)
			for _, rep := range reports {
				if err := a.print(rep); err != nil {
					return err
				}
			}
			if reader != nil {
				return a.printStats(cmd.Context(), reader)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&stats, "stats", false, "print cumulative search metrics to stderr")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.NumCPU(), "maximum concurrent searches")
	return cmd
}
