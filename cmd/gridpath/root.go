package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/scenario"
)

// app carries global flags and output streams shared by subcommands.
type app struct {
	stdout, stderr io.Writer

	logLevel  string
	logFormat string
	jsonOut   bool
	verbose   bool

	logger *slog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "gridpath",
		Short:         "Shortest paths on 4-connected obstacle grids",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := a.logLevel
			if !cmd.Flags().Changed("log-level") {
				if v := os.Getenv(scenario.EnvLogLevel); v != "" {
					level = v
				}
			}
			logger, err := a.newLogger(level)
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	pf.StringVar(&a.logFormat, "log-format", "text", "log format on stderr: text or json")
	pf.BoolVar(&a.jsonOut, "json", false, "print results as JSON")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "print visitation orders, traces and inference steps")

	root.AddCommand(newSearchCmd(a), newBatchCmd(a), newDemoCmd(a))
	return root
}

// newLogger builds a stderr logger in the configured format.
func (a *app) newLogger(level string) (*slog.Logger, error) {
	lvl, err := scenario.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch a.logFormat {
	case "text":
		return slog.New(slog.NewTextHandler(a.stderr, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(a.stderr, opts)), nil
	}
	return nil, fmt.Errorf("unknown log format %q (want text or json)", a.logFormat)
}
