package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/forwardchain"
	"github.com/katalvlaran/gridpath/scenario"
)

func newSearchCmd(a *app) *cobra.Command {
	var (
		builtin   string
		engine    string
		heuristic string
		order     []string
	)
	cmd := &cobra.Command{
		Use:   "search [scenario.yaml]",
		Short: "Run the first scenario of a file, or a built-in scenario",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := pickScenario(args, builtin)
			if err != nil {
				return err
			}
			if engine != "" {
				cfg.Engine = engine
			}
			if heuristic != "" {
				cfg.Heuristic = heuristic
			}
			if len(order) > 0 {
				cfg.Order = order
			}
			sc, err := cfg.Build()
			if err != nil {
				return err
			}

			// a file's log_level already carries the env override
			logger := a.logger
			if len(args) == 1 && !cmd.Flags().Changed("log-level") {
				if logger, err = a.newLogger(cfg.LogLevel); err != nil {
					return err
				}
			}

			var runOpts []scenario.RunOption
			if a.verbose && !a.jsonOut {
				runOpts = append(runOpts, scenario.WithInferHook(func(rule string, _, derived forwardchain.Fact) {
					fmt.Fprintf(a.stdout, "Applying rule %s: moving to %v, path so far: %v\n", rule, derived.Cell, derived.Path)
				}))
			}
			rep, err := scenario.Run(cmd.Context(), sc, logger, runOpts...)
			if err != nil {
				return err
			}
			return a.print(rep)
		},
	}
	f := cmd.Flags()
	f.StringVar(&builtin, "builtin", "", "built-in scenario: "+strings.Join(builtinNames(), ", "))
	f.StringVar(&engine, "engine", "", "override engine: bidirectional, forward-chaining or astar")
	f.StringVar(&heuristic, "heuristic", "", "override A* heuristic: manhattan, squared-euclidean or zero")
	f.StringSliceVar(&order, "order", nil, "override the forward-chaining or A* neighbor order, e.g. right,left,down,up")
	return cmd
}

// pickScenario loads the file argument or the named built-in; exactly one is required.
func pickScenario(args []string, builtin string) (scenario.Config, error) {
	switch {
	case len(args) == 1 && builtin != "":
		return scenario.Config{}, fmt.Errorf("pass a scenario file or --builtin, not both")
	case len(args) == 1:
		return scenario.Load(args[0])
	case builtin != "":
		cfg, ok := scenario.BuiltIns()[builtin]
		if !ok {
			return scenario.Config{}, fmt.Errorf("unknown built-in %q (have %s)", builtin, strings.Join(builtinNames(), ", "))
		}
		return cfg, nil
	}
	return scenario.Config{}, fmt.Errorf("a scenario file or --builtin is required")
}

func builtinNames() []string {
	names := make([]string, 0, 2)
	for name := range scenario.BuiltIns() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
