package production

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/indumath/indumath/linprog"
)

// Solve minimizes p's objective subject to p's constraints and x ≥ 0.
//
// Infeasible and unbounded problems are reported through the returned
// Result, not as errors. An error is returned only when p is nil or the
// simplex iterations break down; in that case the error matches neither
// ErrParse nor ErrShape. Solve does not modify p, so repeated calls on the
// same program return identical results.
func Solve(p *LinearProgram, opts ...linprog.SolveOption) (*Result, error) {
	if p == nil {
		return nil, errors.New("production: nil program")
	}

	n := p.NumVars()
	model := linprog.Model{
		ColCosts: append([]float64(nil), p.objective...),
		ColLower: make([]float64, n),
	}
	for i, row := range p.matrix {
		model.AddLeRow(row, p.rhs[i])
	}

	sol, err := model.Solve(opts...)
	if err != nil {
		return nil, fmt.Errorf("production: solve: %w", err)
	}

	switch sol.Status {
	case linprog.ModelStatusOptimal:
		return &Result{
			Status:         StatusOptimal,
			ObjectiveValue: sol.Objective,
			VariableValues: sol.ColValues,
		}, nil
	case linprog.ModelStatusInfeasible:
		return &Result{Status: StatusInfeasible}, nil
	case linprog.ModelStatusUnbounded:
		return &Result{Status: StatusUnbounded}, nil
	default:
		return nil, fmt.Errorf("production: solve: unexpected solver status %s", sol.Status)
	}
}

// Report runs build and solve and folds every outcome, including parse,
// shape and solver failures, into a Result. It never returns nil.
func Report(logger *slog.Logger, objectiveText, matrixText, rhsText string, opts ...linprog.SolveOption) *Result {
	if logger == nil {
		logger = slog.Default()
	}

	p, err := Build(objectiveText, matrixText, rhsText)
	if err != nil {
		logger.Info("production: rejected input", slog.String("error", err.Error()))
		return &Result{Status: StatusOf(err), Err: err}
	}
	return SolveProgram(logger, p, opts...)
}

// SolveProgram is Report for an already built program.
func SolveProgram(logger *slog.Logger, p *LinearProgram, opts ...linprog.SolveOption) *Result {
	if logger == nil {
		logger = slog.Default()
	}

	res, err := Solve(p, append([]linprog.SolveOption{linprog.WithLogger(logger)}, opts...)...)
	if err != nil {
		logger.Warn("production: solve failed", slog.String("error", err.Error()))
		return &Result{Status: StatusSolverError, Err: err}
	}
	logger.Info("production: solved",
		slog.String("status", res.Status.String()),
		slog.Int("vars", p.NumVars()),
		slog.Int("constraints", p.NumConstraints()),
	)
	return res
}
