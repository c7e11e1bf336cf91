package linprog

import (
	"fmt"
	"math"
	"sort"
)

// infinityThreshold is the magnitude at or above which a bound is treated as
// absent, so callers may write 1e30 in place of math.Inf.
const infinityThreshold = 1e20

// Inf returns positive infinity, suitable for unbounded variable bounds.
func Inf() float64 {
	return math.Inf(1)
}

// NegInf returns negative infinity, suitable for unbounded variable bounds.
func NegInf() float64 {
	return math.Inf(-1)
}

// nonzerosToDense expands a slice of Nonzero elements into a dense
// row-major matrix of the given shape. Duplicate entries keep the last value.
func nonzerosToDense(nz []Nonzero, rows, cols int) ([][]float64, error) {
	sorted := make([]Nonzero, len(nz))
	copy(sorted, nz)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Row != sorted[j].Row {
			return sorted[i].Row < sorted[j].Row
		}
		return sorted[i].Col < sorted[j].Col
	})

	dense := make([][]float64, rows)
	for i := range dense {
		dense[i] = make([]float64, cols)
	}
	for _, n := range sorted {
		if n.Row < 0 || n.Col < 0 {
			return nil, newErrorMsg("nonzerosToDense", "negative row or column index")
		}
		if n.Row >= rows || n.Col >= cols {
			return nil, newErrorMsg("nonzerosToDense", fmt.Sprintf("entry (%d, %d) outside %dx%d matrix", n.Row, n.Col, rows, cols))
		}
		dense[n.Row][n.Col] = n.Val
	}
	return dense, nil
}

// expandSlice returns s when it already has n entries, or n copies of def
// when s is empty. Any other length is an error naming the slice.
func expandSlice(name string, n int, s []float64, def float64) ([]float64, error) {
	switch len(s) {
	case n:
		return s, nil
	case 0:
		out := make([]float64, n)
		for i := range out {
			out[i] = def
		}
		return out, nil
	default:
		return nil, newErrorMsg("Solve", fmt.Sprintf("%s has %d entries, want %d", name, len(s), n))
	}
}

// maxRowCol returns the highest row and column index in nz, or -1 for each
// when nz is empty.
func maxRowCol(nz []Nonzero) (maxRow, maxCol int) {
	maxRow, maxCol = -1, -1
	for _, n := range nz {
		maxRow = max(maxRow, n.Row)
		maxCol = max(maxCol, n.Col)
	}
	return maxRow, maxCol
}

func isInfBound(v float64) bool {
	return math.Abs(v) >= infinityThreshold
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func negated(v []float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = -x
	}
	return out
}

func allZero(v []float64) bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}
