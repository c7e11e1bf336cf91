package linprog

// Solution is the outcome of one Run. ColValues and RowValues are filled
// only when Status is ModelStatusOptimal; Objective includes the model
// offset and is in the model's own sense, so a maximized model reports the
// maximum.
type Solution struct {
	Status    ModelStatus
	ColValues []float64 // x
	RowValues []float64 // A·x
	Objective float64
}

func (s *Solution) IsOptimal() bool    { return s.Status == ModelStatusOptimal }
func (s *Solution) IsInfeasible() bool { return s.Status == ModelStatusInfeasible }
func (s *Solution) IsUnbounded() bool  { return s.Status == ModelStatusUnbounded }

// HasSolution reports whether ColValues and RowValues are meaningful.
func (s *Solution) HasSolution() bool {
	return s.Status.HasSolution()
}

// Value returns x[col], or 0 when col is out of range or there is no
// solution.
func (s *Solution) Value(col int) float64 {
	return at(s.ColValues, col)
}

// RowValue returns (A·x)[row], or 0 when row is out of range or there is no
// solution.
func (s *Solution) RowValue(row int) float64 {
	return at(s.RowValues, row)
}

func at(v []float64, i int) float64 {
	if i < 0 || i >= len(v) {
		return 0
	}
	return v[i]
}
