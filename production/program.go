package production

import (
	"errors"
	"math"
)

// LinearProgram is a validated problem
//
//	minimize Objective·x  subject to  Matrix·x ≤ RHS,  x ≥ 0.
//
// It is immutable: constructors copy their inputs and accessors return
// copies. A LinearProgram always has at least one variable and one
// constraint, every row is as wide as the objective, and every value is
// finite.
type LinearProgram struct {
	objective []float64
	matrix    [][]float64
	rhs       []float64
}

// Build parses the three text fields and validates their dimensions against
// each other. Parse errors take precedence over shape errors; among parse
// errors the first failing field, in the order objective, constraint matrix,
// rhs, is reported.
func Build(objectiveText, matrixText, rhsText string) (*LinearProgram, error) {
	objective, err := ParseObjective(objectiveText)
	if err != nil {
		return nil, err
	}
	matrix, matrixErr := ParseConstraintMatrix(matrixText)
	if matrixErr != nil && !errors.Is(matrixErr, ErrShape) {
		return nil, matrixErr
	}
	rhs, err := ParseRHS(rhsText)
	if err != nil {
		return nil, err
	}
	if matrixErr != nil {
		return nil, matrixErr
	}
	return New(objective, matrix, rhs)
}

// New validates already-numeric inputs and returns a LinearProgram holding
// copies of them.
func New(objective []float64, matrix [][]float64, rhs []float64) (*LinearProgram, error) {
	n, m := len(objective), len(matrix)
	switch {
	case n == 0:
		return nil, shapeError(FieldObjective, 0, "no coefficients")
	case m == 0:
		return nil, shapeError(FieldMatrix, 0, "no constraint rows")
	}

	if err := checkFinite(FieldObjective, 0, objective); err != nil {
		return nil, err
	}
	for i, row := range matrix {
		if len(row) != n {
			return nil, shapeError(FieldMatrix, i+1, "has %d coefficients, objective has %d", len(row), n)
		}
		if err := checkFinite(FieldMatrix, i+1, row); err != nil {
			return nil, err
		}
	}
	if len(rhs) != m {
		return nil, shapeError(FieldRHS, 0, "has %d values, constraint matrix has %d rows", len(rhs), m)
	}
	if err := checkFinite(FieldRHS, 0, rhs); err != nil {
		return nil, err
	}

	p := &LinearProgram{
		objective: append([]float64(nil), objective...),
		matrix:    make([][]float64, m),
		rhs:       append([]float64(nil), rhs...),
	}
	for i, row := range matrix {
		p.matrix[i] = append([]float64(nil), row...)
	}
	return p, nil
}

func checkFinite(field Field, row int, values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return parseError(field, row, "value %d is not a finite number", i+1)
		}
	}
	return nil
}

// NumVars returns the number of decision variables n.
func (p *LinearProgram) NumVars() int {
	return len(p.objective)
}

// NumConstraints returns the number of constraint rows m.
func (p *LinearProgram) NumConstraints() int {
	return len(p.matrix)
}

// Objective returns a copy of the objective coefficients.
func (p *LinearProgram) Objective() []float64 {
	return append([]float64(nil), p.objective...)
}

// Matrix returns a copy of the constraint matrix.
func (p *LinearProgram) Matrix() [][]float64 {
	out := make([][]float64, len(p.matrix))
	for i, row := range p.matrix {
		out[i] = append([]float64(nil), row...)
	}
	return out
}

// RHS returns a copy of the right-hand side.
func (p *LinearProgram) RHS() []float64 {
	return append([]float64(nil), p.rhs...)
}
