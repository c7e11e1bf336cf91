package linprog

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

const (
	// zeroTol is the magnitude below which a standard-form right-hand side is
	// treated as zero when dropping all-zero rows.
	zeroTol = 1e-12

	// DefaultTolerance is the reduced-cost tolerance used when none is set.
	// It applies to the scaled problem, where costs are at most one in
	// magnitude.
	DefaultTolerance = 1e-9

	// feasTol bounds the negative part a square solve may leave on a
	// variable before the system counts as infeasible.
	feasTol = 1e-9
)

// colMap records how original column j is expressed in terms of the
// structural variable y[j]: x[j] = shift + sign*y[j].
type colMap struct {
	shift float64
	sign  float64
}

// standardForm is the general-form problem over the structural variables
//
//	minimize c·y  subject to  G·y ≤ h,  A·y = b,  y[k] ≥ 0 unless free[k]
//
// together with the mapping back to the original columns. solve hands it to
// lp.Convert and drops the negative parts of the variables that are not free.
type standardForm struct {
	cols []colMap
	free []bool
	c    []float64
	g    [][]float64
	h    []float64
	a    [][]float64
	b    []float64
}

func (sf *standardForm) numY() int {
	return len(sf.c)
}

// numRows is the number of equality rows of the converted problem.
func (sf *standardForm) numRows() int {
	return len(sf.h) + len(sf.b)
}

// newStandardForm shifts every bounded column onto y ≥ 0 and splits ranged
// rows into one inequality per finite side. Callers must have validated that
// every lower bound is ≤ its upper bound.
func newStandardForm(costs, colLower, colUpper []float64, a [][]float64, rowLower, rowUpper []float64) *standardForm {
	n := len(costs)
	sf := &standardForm{
		cols: make([]colMap, n),
		free: make([]bool, n),
		c:    make([]float64, n),
	}

	for j := range costs {
		l, u := colLower[j], colUpper[j]
		switch {
		case !isInfBound(l):
			sf.cols[j] = colMap{shift: l, sign: 1}
			if !isInfBound(u) {
				sf.addLe(unitAt(j, n), u-l)
			}
		case !isInfBound(u):
			sf.cols[j] = colMap{shift: u, sign: -1}
		default:
			sf.cols[j] = colMap{sign: 1}
			sf.free[j] = true
		}
		sf.c[j] = sf.cols[j].sign * costs[j]
	}

	for i, row := range a {
		coef := make([]float64, n)
		var k float64
		for j, v := range row {
			if v == 0 {
				continue
			}
			cm := sf.cols[j]
			coef[j] = cm.sign * v
			k += v * cm.shift
		}

		lo, hi := rowLower[i], rowUpper[i]
		switch {
		case !isInfBound(lo) && !isInfBound(hi) && lo == hi:
			sf.a = append(sf.a, coef)
			sf.b = append(sf.b, lo-k)
		default:
			if !isInfBound(hi) {
				sf.addLe(coef, hi-k)
			}
			if !isInfBound(lo) {
				sf.addLe(negated(coef), k-lo)
			}
		}
	}
	return sf
}

func (sf *standardForm) addLe(coef []float64, rhs float64) {
	sf.g = append(sf.g, coef)
	sf.h = append(sf.h, rhs)
}

// solve runs the simplex method on the converted problem. The returned
// slice holds the structural variables y when the status is optimal.
func (sf *standardForm) solve(tol float64) (ModelStatus, []float64, error) {
	ny := sf.numY()
	y := make([]float64, ny)
	if sf.numRows() == 0 {
		for k, c := range sf.c {
			if c < 0 || (sf.free[k] && c != 0) {
				return ModelStatusUnbounded, nil, nil
			}
		}
		return ModelStatusOptimal, y, nil
	}

	// lp.Convert lays out columns as [y⁺, y⁻, slack]. A y⁻ column is only
	// meaningful for a free variable; leaving it out fixes it at zero.
	cStd, aStd, bStd := lp.Convert(sf.c, denseOrNil(sf.g, ny), sf.h, denseOrNil(sf.a, ny), sf.b)
	_, n := aStd.Dims()
	var cols []int
	for k := 0; k < n; k++ {
		if k < ny || k >= 2*ny || sf.free[k-ny] {
			cols = append(cols, k)
		}
	}

	// Dense copy with rows normalized to a non-negative right-hand side.
	dense := make([][]float64, 0, len(bStd))
	rhs := make([]float64, 0, len(bStd))
	for i, b := range bStd {
		row := make([]float64, len(cols))
		for t, k := range cols {
			row[t] = aStd.At(i, k)
		}
		if b < 0 {
			for t := range row {
				row[t] = -row[t]
			}
			b = -b
		}
		if allZero(row) {
			if math.Abs(b) > zeroTol {
				return ModelStatusInfeasible, nil, nil
			}
			continue
		}
		dense = append(dense, row)
		rhs = append(rhs, b)
	}

	// Columns that appear in no row are fixed at zero. A negative cost on
	// such a column makes any feasible problem unbounded.
	var keep []int
	unboundedIfFeasible := false
	for t, k := range cols {
		used := false
		for _, row := range dense {
			if row[t] != 0 {
				used = true
				break
			}
		}
		if used {
			keep = append(keep, t)
		} else if cStd[k] < 0 {
			unboundedIfFeasible = true
		}
	}

	if len(dense) == 0 {
		if unboundedIfFeasible {
			return ModelStatusUnbounded, nil, nil
		}
		return ModelStatusOptimal, y, nil
	}
	if len(dense) > len(keep) {
		return ModelStatusSolveError, nil, ErrRankDeficient
	}

	m := len(dense)
	a := mat.NewDense(m, len(keep), nil)
	for i, row := range dense {
		for q, t := range keep {
			a.Set(i, q, row[t])
		}
	}
	c := make([]float64, len(keep))
	for q, t := range keep {
		c[q] = cStd[cols[t]]
	}

	sc := equilibrate(a, rhs, c)
	if tol == 0 {
		tol = DefaultTolerance
	}

	var x []float64
	var err error
	if m == len(keep) {
		x, err = solveSquare(a, rhs)
	} else {
		_, x, err = lp.Simplex(c, a, rhs, tol, nil)
	}
	switch {
	case errors.Is(err, lp.ErrInfeasible):
		return ModelStatusInfeasible, nil, nil
	case errors.Is(err, lp.ErrUnbounded):
		return ModelStatusUnbounded, nil, nil
	case errors.Is(err, lp.ErrSingular):
		return ModelStatusSolveError, nil, ErrRankDeficient
	case err != nil:
		return ModelStatusSolveError, nil, err
	}
	if unboundedIfFeasible {
		return ModelStatusUnbounded, nil, nil
	}

	for q, t := range keep {
		v := sc.unscale(q, x[q])
		switch k := cols[t]; {
		case k < ny:
			y[k] += v
		case k < 2*ny:
			y[k-ny] -= v
		}
	}
	return ModelStatusOptimal, y, nil
}

// scaling records the factors applied by equilibrate. A solution x' of the
// scaled problem maps back as x[k] = rhs * x'[k] / col[k].
type scaling struct {
	col []float64
	rhs float64
}

func (sc scaling) unscale(k int, v float64) float64 {
	return sc.rhs * v / sc.col[k]
}

// equilibrate scales a, b and c in place so that every row and column of a
// has a largest entry of magnitude one, as do b and c unless they are zero.
// The simplex tolerances are absolute, so they only mean something on a
// problem of unit scale. Each step divides by a maximum of the data, so a
// problem multiplied through by a power of ten whose products are exact
// scales to the same numbers as the original.
func equilibrate(a *mat.Dense, b, c []float64) scaling {
	m, n := a.Dims()
	for i := 0; i < m; i++ {
		r := floats.Norm(a.RawRowView(i), math.Inf(1))
		if r == 0 {
			continue
		}
		divide(a.RawRowView(i), r)
		b[i] /= r
	}

	divide(c, floats.Norm(c, math.Inf(1)))
	sc := scaling{col: make([]float64, n), rhs: 1}
	col := make([]float64, m)
	for j := 0; j < n; j++ {
		mat.Col(col, j, a)
		s := floats.Norm(col, math.Inf(1))
		if s == 0 {
			s = 1
		}
		sc.col[j] = s
		divide(col, s)
		a.SetCol(j, col)
		c[j] /= s
	}

	if bmax := floats.Norm(b, math.Inf(1)); bmax > 0 {
		divide(b, bmax)
		sc.rhs = bmax
	}
	divide(c, floats.Norm(c, math.Inf(1)))
	return sc
}

// divide divides v by d in place. Unlike scaling by 1/d the quotients are
// correctly rounded. A zero d leaves v unchanged.
func divide(v []float64, d float64) {
	if d == 0 {
		return
	}
	for i := range v {
		v[i] /= d
	}
}

// solveSquare handles a standard form with as many rows as columns, where
// the only candidate point is the solution of A·x = b. Small negative
// components left by rounding are clamped to zero.
func solveSquare(a *mat.Dense, b []float64) ([]float64, error) {
	n, _ := a.Dims()
	var xv mat.VecDense
	if err := xv.SolveVec(a, mat.NewVecDense(n, b)); err != nil {
		return nil, lp.ErrSingular
	}
	x := make([]float64, n)
	for i := range x {
		v := xv.AtVec(i)
		switch {
		case v < -feasTol:
			return nil, lp.ErrInfeasible
		case v < 0:
			v = 0
		}
		x[i] = v
	}
	return x, nil
}

// toOriginal maps structural variables back onto the original columns.
func (sf *standardForm) toOriginal(y []float64) []float64 {
	x := make([]float64, len(sf.cols))
	for j, cm := range sf.cols {
		x[j] = cm.shift + cm.sign*y[j]
	}
	return x
}

// denseOrNil returns rows as an n-column matrix, or a nil interface when
// there are none, as lp.Convert expects.
func denseOrNil(rows [][]float64, n int) mat.Matrix {
	if len(rows) == 0 {
		return nil
	}
	flat := make([]float64, 0, len(rows)*n)
	for _, r := range rows {
		flat = append(flat, r...)
	}
	return mat.NewDense(len(rows), n, flat)
}

func unitAt(i, n int) []float64 {
	v := make([]float64, n)
	v[i] = 1
	return v
}
