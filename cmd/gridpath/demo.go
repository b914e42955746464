package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/forwardchain"
	"github.com/katalvlaran/gridpath/scenario"
)

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in scenarios through every engine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			engines := []string{scenario.EngineBidirectional, scenario.EngineForwardChaining, scenario.EngineAStar}
			hook := scenario.WithInferHook(func(rule string, _, derived forwardchain.Fact) {
				if a.verbose && !a.jsonOut {
					fmt.Fprintf(a.stdout, "Applying rule %s: moving to %v, path so far: %v\n", rule, derived.Cell, derived.Path)
				}
			})
			for _, cfg := range []scenario.Config{scenario.Reference(), scenario.Walled()} {
				for _, engine := range engines {
					cfg.Engine = engine
					sc, err := cfg.Build()
					if err != nil {
						return err
					}
					rep, err := scenario.Run(cmd.Context(), sc, a.logger, hook)
					if err != nil {
						return err
					}
					if err := a.print(rep); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}
}
