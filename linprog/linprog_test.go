package linprog

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-6

// boundedExample builds
//
//	f = x_0 + x_1 + 3
//	x_1 <= 7;  5 <= x_0 + 2x_1 <= 15;  6 <= 3x_0 + 2x_1
//	0 <= x_0 <= 4;  1 <= x_1
//
// once from sparse entries and once row by row, with 1e30 standing in for
// infinity.
func boundedExample(maximize, dense bool) Model {
	m := Model{
		Maximize: maximize,
		Offset:   3,
		ColCosts: []float64{1, 1},
		ColLower: []float64{0, 1},
		ColUpper: []float64{4, 1e30},
	}
	if dense {
		m.AddDenseRow(-1e30, []float64{0, 1}, 7)
		m.AddDenseRow(5, []float64{1, 2}, 15)
		m.AddDenseRow(6, []float64{3, 2}, 1e30)
		return m
	}
	m.ConstMatrix = []Nonzero{{0, 1, 1}, {1, 0, 1}, {1, 1, 2}, {2, 0, 3}, {2, 1, 2}}
	m.RowLower = []float64{-1e30, 5, 6}
	m.RowUpper = []float64{7, 15, 1e30}
	return m
}

func TestBoundedExample(t *testing.T) {
	tests := []struct {
		name      string
		maximize  bool
		dense     bool
		x         []float64
		objective float64
		rows      []float64
	}{
		{"minimize sparse", false, false, []float64{0.5, 2.25}, 5.75, []float64{2.25, 5, 6}},
		{"minimize dense", false, true, []float64{0.5, 2.25}, 5.75, []float64{2.25, 5, 6}},
		{"maximize sparse", true, false, []float64{4, 5.5}, 12.5, []float64{5.5, 15, 23}},
		{"maximize dense", true, true, []float64{4, 5.5}, 12.5, []float64{5.5, 15, 23}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := boundedExample(tt.maximize, tt.dense)
			require.Equal(t, 2, model.NumVars())
			require.Equal(t, 3, model.NumConstraints())

			sol, err := model.Solve()
			require.NoError(t, err)
			require.True(t, sol.IsOptimal(), "expected optimal, got %s", sol.Status)

			assert.InDeltaSlice(t, tt.x, sol.ColValues, tol)
			assert.InDelta(t, tt.objective, sol.Objective, tol)
			assert.InDeltaSlice(t, tt.rows, sol.RowValues, tol)
		})
	}
}

// TestProductionMix is the classic two-product mix:
//
//	Min  -3x_0 - 5x_1
//	s.t.  x_0 <= 4;  2x_1 <= 12;  3x_0 + 2x_1 <= 18;  x >= 0
func TestProductionMix(t *testing.T) {
	model := Model{
		ColCosts: []float64{-3.0, -5.0},
		ColLower: []float64{0.0, 0.0},
	}
	model.AddLeRow([]float64{1.0, 0.0}, 4.0)
	model.AddLeRow([]float64{0.0, 2.0}, 12.0)
	model.AddLeRow([]float64{3.0, 2.0}, 18.0)

	sol, err := model.Solve()
	require.NoError(t, err)
	require.True(t, sol.IsOptimal(), "expected optimal, got %s", sol.Status)

	assert.InDelta(t, 2.0, sol.ColValues[0], tol)
	assert.InDelta(t, 6.0, sol.ColValues[1], tol)
	assert.InDelta(t, -36.0, sol.Objective, tol)
}

func TestAddSparseRow(t *testing.T) {
	model := Model{
		ColCosts: []float64{1.0, 2.0, 0.0},
		ColLower: []float64{0.0, 0.0, 0.0},
	}
	// x0 + x2 >= 3, x1 + x2 <= 1
	_, err := model.AddSparseRow(3.0, []int{0, 2}, []float64{1.0, 1.0}, Inf())
	require.NoError(t, err)
	row, err := model.AddSparseRow(NegInf(), []int{1, 2}, []float64{1.0, 1.0}, 1.0)
	require.NoError(t, err)
	assert.Equal(t, 1, row)

	sol, err := model.Solve()
	require.NoError(t, err)
	require.True(t, sol.IsOptimal(), "expected optimal, got %s", sol.Status)

	// x2 is free of cost, so it takes as much of the >= row as the <= row allows.
	assert.InDelta(t, 2.0, sol.ColValues[0], tol)
	assert.InDelta(t, 0.0, sol.ColValues[1], tol)
	assert.InDelta(t, 1.0, sol.ColValues[2], tol)
	assert.InDelta(t, 2.0, sol.Objective, tol)
	assert.InDelta(t, 3.0, sol.RowValue(0), tol)
	assert.InDelta(t, 1.0, sol.RowValue(1), tol)
}

func TestAddSparseRowLengthMismatch(t *testing.T) {
	var model Model
	_, err := model.AddSparseRow(0, []int{0, 1}, []float64{1}, 1)
	var lerr *Error
	require.ErrorAs(t, err, &lerr)
	assert.Zero(t, model.NumConstraints())
}

func TestEqualityRow(t *testing.T) {
	model := Model{
		ColCosts: []float64{1.0, 2.0},
		ColLower: []float64{0.0, 0.0},
	}
	model.AddEqRow([]float64{1.0, 1.0}, 4.0)

	sol, err := model.Solve()
	require.NoError(t, err)
	require.True(t, sol.IsOptimal(), "expected optimal, got %s", sol.Status)

	assert.InDelta(t, 4.0, sol.ColValues[0], tol)
	assert.InDelta(t, 0.0, sol.ColValues[1], tol)
	assert.InDelta(t, 4.0, sol.Objective, tol)
}

// TestFreeVariable checks that omitted bounds leave a column free.
func TestFreeVariable(t *testing.T) {
	model := Model{ColCosts: []float64{1.0}}
	model.AddGeRow([]float64{1.0}, -3.0)

	sol, err := model.Solve()
	require.NoError(t, err)
	require.True(t, sol.IsOptimal(), "expected optimal, got %s", sol.Status)

	assert.InDelta(t, -3.0, sol.ColValues[0], tol)
	assert.InDelta(t, -3.0, sol.Objective, tol)
}

func TestFreeAndBoundedColumns(t *testing.T) {
	// x0 free, 1 <= x1 <= 3, x0 + x1 >= 2: the objective 4 - x1 pushes x1
	// to its upper bound and x0 below zero.
	model := Model{
		ColCosts: []float64{2, 1},
		ColLower: []float64{math.Inf(-1), 1},
		ColUpper: []float64{math.Inf(1), 3},
	}
	model.AddGeRow([]float64{1, 1}, 2)

	sol, err := model.Solve()
	require.NoError(t, err)
	require.True(t, sol.IsOptimal(), "expected optimal, got %s", sol.Status)
	assert.InDelta(t, -1.0, sol.Value(0), tol)
	assert.InDelta(t, 3.0, sol.Value(1), tol)
	assert.InDelta(t, 1.0, sol.Objective, tol)
	assert.InDelta(t, 2.0, sol.RowValue(0), tol)
}

func TestUpperBoundOnly(t *testing.T) {
	model := Model{
		Maximize: true,
		ColCosts: []float64{1.0},
		ColUpper: []float64{5.0},
	}

	sol, err := model.Solve()
	require.NoError(t, err)
	require.True(t, sol.IsOptimal(), "expected optimal, got %s", sol.Status)

	assert.InDelta(t, 5.0, sol.Value(0), tol)
	assert.InDelta(t, 5.0, sol.Objective, tol)
	assert.Zero(t, sol.Value(7))
}

func TestLowLevelAPI(t *testing.T) {
	solver := NewSolver()

	// min x0 + x1  s.t.  5 <= x0 + 2x1 <= 15,  0 <= x <= 10
	require.NoError(t, solver.AddVars([]float64{0.0, 0.0}, []float64{10.0, 10.0}))
	require.NoError(t, solver.SetColCosts([]float64{1.0, 1.0}))
	require.NoError(t, solver.AddRow(5.0, 15.0, []int{0, 1}, []float64{1.0, 2.0}))

	assert.Equal(t, 2, solver.NumCol())
	assert.Equal(t, 1, solver.NumRow())
	assert.Equal(t, 2, solver.NumNonzero())

	sol, err := solver.Run()
	require.NoError(t, err)
	require.True(t, sol.IsOptimal(), "expected optimal, got %s", sol.Status)

	// The row binds at 5; x1 is the cheaper way to cover it.
	assert.InDelta(t, 0.0, sol.ColValues[0], tol)
	assert.InDelta(t, 2.5, sol.ColValues[1], tol)
	assert.InDelta(t, 2.5, sol.Objective, tol)
}

func TestLowLevelAPIErrors(t *testing.T) {
	solver := NewSolver()

	var lerr *Error
	err := solver.AddVars([]float64{0.0}, []float64{1.0, 2.0})
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, "AddVars", lerr.Op)

	require.NoError(t, solver.AddVar(0.0, 1.0))
	assert.Error(t, solver.AddRow(0, 1, []int{3}, []float64{1.0}))
	assert.Error(t, solver.SetColCost(2, 1.0))
	assert.Error(t, solver.SetColBounds(-1, 0, 1))
	assert.Error(t, solver.SetTolerance(-1))
	assert.Error(t, solver.SetTolerance(math.NaN()))

	solver.Clear()
	assert.Zero(t, solver.NumCol())
}

func TestEmptyModel(t *testing.T) {
	model := Model{}

	sol, err := model.Solve()
	require.NoError(t, err)
	assert.True(t, sol.IsOptimal(), "expected optimal for empty model, got %s", sol.Status)

	raw, err := NewSolver().Run()
	require.NoError(t, err)
	assert.Equal(t, ModelStatusModelEmpty, raw.Status)

	assert.Equal(t, ModelStatusNotSet, Solution{}.Status)
}

func TestEmptyModelRows(t *testing.T) {
	tests := []struct {
		name   string
		lower  float64
		upper  float64
		status ModelStatus
	}{
		{"zero inside", -1, 1, ModelStatusOptimal},
		{"zero on bound", 0, 0, ModelStatusOptimal},
		{"lower above zero", 1, math.Inf(1), ModelStatusInfeasible},
		{"upper below zero", math.Inf(-1), -2, ModelStatusInfeasible},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := Model{
				Offset:   7,
				RowLower: []float64{tt.lower},
				RowUpper: []float64{tt.upper},
			}
			sol, err := model.Solve()
			require.NoError(t, err)
			assert.Equal(t, tt.status, sol.Status)
			if tt.status == ModelStatusOptimal {
				assert.Equal(t, 7.0, sol.Objective)
				assert.Equal(t, []float64{0}, sol.RowValues)
			}
		})
	}
}

func TestInfeasible(t *testing.T) {
	model := Model{
		ColCosts: []float64{1.0},
		ColLower: []float64{0.0},
		ColUpper: []float64{10.0},
	}
	// x >= 5
	model.AddDenseRow(5.0, []float64{1.0}, math.Inf(1))
	// x <= 3
	model.AddDenseRow(math.Inf(-1), []float64{1.0}, 3.0)

	sol, err := model.Solve()
	require.NoError(t, err)
	assert.True(t, sol.IsInfeasible(), "expected infeasible, got %s", sol.Status)
	assert.False(t, sol.HasSolution())
	assert.Nil(t, sol.ColValues)
}

func TestInfeasibleBounds(t *testing.T) {
	model := Model{
		ColCosts: []float64{1.0},
		ColLower: []float64{2.0},
		ColUpper: []float64{1.0},
	}

	sol, err := model.Solve()
	require.NoError(t, err)
	assert.True(t, sol.IsInfeasible(), "expected infeasible, got %s", sol.Status)
}

func TestUnbounded(t *testing.T) {
	model := Model{
		ColCosts: []float64{-1.0, 0.0},
		ColLower: []float64{0.0, 0.0},
	}
	// x0 - x1 <= 1 leaves x0 free to grow with x1.
	model.AddLeRow([]float64{1.0, -1.0}, 1.0)

	sol, err := model.Solve()
	require.NoError(t, err)
	assert.True(t, sol.IsUnbounded(), "expected unbounded, got %s", sol.Status)
}

// TestUnboundedUnconstrainedColumn covers a negative-cost column that no
// row mentions.
func TestUnboundedUnconstrainedColumn(t *testing.T) {
	model := Model{
		ColCosts: []float64{1.0, -1.0},
		ColLower: []float64{0.0, 0.0},
	}
	model.AddGeRow([]float64{1.0, 0.0}, 5.0)

	sol, err := model.Solve()
	require.NoError(t, err)
	assert.True(t, sol.IsUnbounded(), "expected unbounded, got %s", sol.Status)
}

// TestInfeasibleBeatsUnconstrainedColumn checks that an unconstrained
// negative-cost column does not mask infeasibility.
func TestInfeasibleBeatsUnconstrainedColumn(t *testing.T) {
	model := Model{
		ColCosts: []float64{1.0, -1.0},
		ColLower: []float64{0.0, 0.0},
	}
	model.AddLeRow([]float64{1.0, 0.0}, -1.0)

	sol, err := model.Solve()
	require.NoError(t, err)
	assert.True(t, sol.IsInfeasible(), "expected infeasible, got %s", sol.Status)
}

func TestZeroRowInfeasible(t *testing.T) {
	model := Model{
		ColCosts: []float64{1.0},
		ColLower: []float64{0.0},
	}
	model.AddEqRow([]float64{0.0}, 2.0)

	sol, err := model.Solve()
	require.NoError(t, err)
	assert.True(t, sol.IsInfeasible(), "expected infeasible, got %s", sol.Status)
}

func TestRankDeficientEqualities(t *testing.T) {
	model := Model{
		ColCosts: []float64{1.0},
		ColLower: []float64{0.0},
	}
	model.AddEqRow([]float64{1.0}, 2.0)
	model.AddEqRow([]float64{2.0}, 4.0)

	_, err := model.Solve()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRankDeficient))
}

func TestInvalidModel(t *testing.T) {
	tests := []struct {
		name  string
		model Model
	}{
		{
			name:  "NaN cost",
			model: Model{ColCosts: []float64{math.NaN()}},
		},
		{
			name: "infinite coefficient",
			model: Model{
				ColCosts:    []float64{1.0},
				ConstMatrix: []Nonzero{{0, 0, math.Inf(1)}},
				RowUpper:    []float64{1.0},
			},
		},
		{
			name:  "lower bound at +inf",
			model: Model{ColCosts: []float64{1.0}, ColLower: []float64{math.Inf(1)}},
		},
		{
			name:  "inconsistent ColLower",
			model: Model{ColCosts: []float64{1.0, 1.0}, ColLower: []float64{0.0}},
		},
		{
			name: "negative index",
			model: Model{
				ColCosts:    []float64{1.0},
				ConstMatrix: []Nonzero{{0, -1, 1.0}},
				RowUpper:    []float64{1.0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sol, err := tt.model.Solve()
			var lerr *Error
			assert.ErrorAs(t, err, &lerr)
			require.NotNil(t, sol)
			assert.Equal(t, ModelStatusModelError, sol.Status)
		})
	}
}

func TestInvalidModelLowLevel(t *testing.T) {
	solver := NewSolver()
	require.NoError(t, solver.AddVar(0, 1))
	require.NoError(t, solver.SetColCost(0, math.Inf(-1)))

	sol, err := solver.Run()
	require.Error(t, err)
	assert.Equal(t, ModelStatusModelError, sol.Status)
}

// scaledMix is the production-mix model with every coefficient multiplied
// by k.
func scaledMix(k float64) Model {
	model := Model{
		ColCosts: []float64{-3 * k, -5 * k},
		ColLower: []float64{0, 0},
	}
	model.AddLeRow([]float64{1 * k, 0}, 4*k)
	model.AddLeRow([]float64{0, 2 * k}, 12*k)
	model.AddLeRow([]float64{3 * k, 2 * k}, 18*k)
	return model
}

func TestScaleInvariance(t *testing.T) {
	for _, k := range []float64{1e-4, 1, 1e3, 1e5, 1e7} {
		model := scaledMix(k)
		sol, err := model.Solve()
		require.NoError(t, err, "k=%g", k)
		require.True(t, sol.IsOptimal(), "k=%g: got %s", k, sol.Status)
		assert.InDelta(t, -36*k, sol.Objective, 1e-9*k*36, "k=%g", k)
		assert.InDelta(t, 2.0, sol.Value(0), 1e-9, "k=%g", k)
		assert.InDelta(t, 6.0, sol.Value(1), 1e-9, "k=%g", k)
	}
}

func TestMixedMagnitudes(t *testing.T) {
	// Rows and columns differ by six orders of magnitude; the optimum is
	// x0 = 2e-3, x1 = 6e3.
	model := Model{
		ColCosts: []float64{-3e3, -5e-3},
		ColLower: []float64{0, 0},
	}
	model.AddLeRow([]float64{1e3, 0}, 4)
	model.AddLeRow([]float64{0, 2e-3}, 12)
	model.AddLeRow([]float64{3e6, 2}, 18e3)

	sol, err := model.Solve()
	require.NoError(t, err)
	require.True(t, sol.IsOptimal(), "got %s", sol.Status)
	assert.InDelta(t, 2e-3, sol.Value(0), 1e-9)
	assert.InDelta(t, 6e3, sol.Value(1), 1e-6)
	assert.InDelta(t, -36.0, sol.Objective, 1e-6)
}

func TestSquareSystem(t *testing.T) {
	// Two equalities in two non-negative columns leave a single point.
	model := Model{
		ColCosts: []float64{1, 1},
		ColLower: []float64{0, 0},
	}
	model.AddEqRow([]float64{1, 1}, 3)
	model.AddEqRow([]float64{1, -1}, 1)

	sol, err := model.Solve()
	require.NoError(t, err)
	require.True(t, sol.IsOptimal(), "got %s", sol.Status)
	assert.InDelta(t, 2.0, sol.Value(0), tol)
	assert.InDelta(t, 1.0, sol.Value(1), tol)

	model = Model{
		ColCosts: []float64{1, 1},
		ColLower: []float64{0, 0},
	}
	model.AddEqRow([]float64{1, 1}, 1)
	model.AddEqRow([]float64{1, -1}, 3)

	sol, err = model.Solve()
	require.NoError(t, err)
	assert.True(t, sol.IsInfeasible(), "got %s", sol.Status)
}

func TestSolverInfinity(t *testing.T) {
	inf := NewSolver().Infinity()
	assert.True(t, math.IsInf(inf, 1))
}

func TestModelStatusString(t *testing.T) {
	assert.Equal(t, "Optimal", ModelStatusOptimal.String())
	assert.Equal(t, "Unbounded", ModelStatusUnbounded.String())
	assert.Equal(t, "Unknown", ModelStatus(42).String())
}

// Benchmarks

func BenchmarkLPSolve(b *testing.B) {
	model := Model{
		ColCosts: []float64{1.0, 1.0},
		ColLower: []float64{0.0, 0.0},
		ColUpper: []float64{10.0, 10.0},
	}
	model.AddDenseRow(1.0, []float64{1.0, 1.0}, 5.0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := model.Solve()
		if err != nil {
			b.Fatal(err)
		}
	}
}
