package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/indumath/indumath/production"
)

type lpFlags struct {
	objective string
	rows      []string
	matrix    string
	rhs       string
	file      string
	asJSON    bool
	echo      bool
}

// lpOutput is the --json rendering of a result.
type lpOutput struct {
	Status         production.Status `json:"status"`
	Message        string            `json:"message"`
	ObjectiveValue *float64          `json:"objective_value,omitempty"`
	VariableValues []float64         `json:"variable_values,omitempty"`
}

func newLPCmd(a *app) *cobra.Command {
	f := &lpFlags{}
	cmd := &cobra.Command{
		Use:   "lp",
		Short: "Solve a production-optimization linear program",
		Long: `Minimize c·x subject to A·x ≤ b and x ≥ 0.

The problem comes either from text flags, in the same comma-separated form
the terminal UI accepts, or from a YAML file:

  indumath lp --objective "-3, -5" --row "1, 0" --row "0, 2" --row "3, 2" --rhs "4, 12, 18"
  indumath lp --file problem.yaml

Infeasible and unbounded problems are reported, not treated as failures.
Malformed input and solver breakdowns exit non-zero.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runLP(cmd, f)
		},
	}
	cmd.Flags().StringVarP(&f.objective, "objective", "c", "", "objective coefficients, comma-separated")
	cmd.Flags().StringArrayVarP(&f.rows, "row", "a", nil, "one constraint row, comma-separated (repeatable)")
	cmd.Flags().StringVar(&f.matrix, "matrix", "", "constraint matrix, rows separated by newlines or ';'")
	cmd.Flags().StringVarP(&f.rhs, "rhs", "b", "", "right-hand side, comma-separated")
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "YAML problem file")
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "print the result as JSON")
	cmd.Flags().BoolVar(&f.echo, "echo", false, "print the parsed problem as YAML before solving")
	cmd.MarkFlagsMutuallyExclusive("file", "objective")
	cmd.MarkFlagsMutuallyExclusive("file", "row")
	cmd.MarkFlagsMutuallyExclusive("file", "matrix")
	cmd.MarkFlagsMutuallyExclusive("file", "rhs")
	cmd.MarkFlagsMutuallyExclusive("row", "matrix")
	return cmd
}

func (a *app) runLP(cmd *cobra.Command, f *lpFlags) error {
	p, err := f.program()

	var res *production.Result
	switch {
	case err != nil && !errors.Is(err, production.ErrParse) && !errors.Is(err, production.ErrShape):
		return err
	case err != nil:
		a.logger.Info("lp: rejected input", slog.String("error", err.Error()))
		res = &production.Result{Status: production.StatusOf(err), Err: err}
	default:
		if f.echo {
			if err := production.Encode(cmd.OutOrStdout(), p); err != nil {
				return err
			}
		}
		res = production.SolveProgram(a.logger, p, a.solveOptions()...)
	}

	if err := a.printLP(cmd, res, f.asJSON); err != nil {
		return err
	}
	if res.Err != nil {
		return &reportedError{err: res.Err}
	}
	return nil
}

// program builds the problem from --file or from the text flags.
func (f *lpFlags) program() (*production.LinearProgram, error) {
	if f.file != "" {
		return production.LoadFile(f.file)
	}
	matrix := f.matrix
	if len(f.rows) > 0 {
		matrix = strings.Join(f.rows, "\n")
	}
	matrix = strings.ReplaceAll(matrix, ";", "\n")
	return production.Build(f.objective, matrix, f.rhs)
}

func (a *app) printLP(cmd *cobra.Command, res *production.Result, asJSON bool) error {
	out := cmd.OutOrStdout()
	msg := res.Format(a.cfg.Display.Precision)
	if !asJSON {
		_, err := fmt.Fprintln(out, msg)
		return err
	}

	o := lpOutput{Status: res.Status, Message: msg}
	if res.HasSolution() {
		v := res.ObjectiveValue
		o.ObjectiveValue = &v
		o.VariableValues = res.VariableValues
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(o); err != nil {
		return fmt.Errorf("lp: encode result: %w", err)
	}
	return nil
}
