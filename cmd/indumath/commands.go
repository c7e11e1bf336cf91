package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/indumath/indumath/internal/config"
	"github.com/indumath/indumath/internal/logging"
	"github.com/indumath/indumath/linprog"
)

// app is the state shared by every subcommand once the root has loaded the
// configuration.
type app struct {
	configPath string
	logLevel   string

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "indumath",
		Short: "Industrial mathematics models: production LP, EOQ, M/M/1 queue and break-even",
		Long: `indumath solves production-optimization linear programs
(minimize c·x subject to A·x ≤ b, x ≥ 0) and evaluates the classic
closed-form industrial models. Run a single model from the command line,
browse them all with "indumath tui", or serve them over HTTP with
"indumath serve".`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override log.level (debug, info, warn, error)")

	root.AddCommand(
		newLPCmd(a),
		newEOQCmd(a),
		newMM1Cmd(a),
		newBreakEvenCmd(a),
		newServeCmd(a),
		newTUICmd(a),
	)
	return root
}

// setup loads the configuration and builds the logger. Logs go to stderr so
// stdout carries only results.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}

func (a *app) solveOptions() []linprog.SolveOption {
	return []linprog.SolveOption{linprog.WithTolerance(a.cfg.Solver.Tolerance)}
}

// reportedError marks a failure whose message is already on stdout.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }
