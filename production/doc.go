// Package production builds and solves production-optimization linear
// programs entered as free text.
//
// A problem is given as three text fields:
//
//	objective:  "-3, -5"              coefficients to minimize, one per decision variable
//	matrix:     "1, 0\n0, 2\n3, 2"    one constraint row per line, comma-separated
//	rhs:        "4, 12, 18"           one right-hand side per constraint row
//
// and is read as
//
//	minimize  objective·x  subject to  matrix·x ≤ rhs,  x ≥ 0.
//
// Every decision variable is implicitly non-negative. The input form does
// not show this bound, so callers that present the problem to a user should
// say so: a production level cannot be negative, and a problem that needs
// negative values must be rewritten (for example by substituting x = x⁺ − x⁻).
//
// The pipeline is text → parse → validate → solve → report. Parse and shape
// failures are detected before the solver runs and are returned as errors
// matching ErrParse or ErrShape; infeasible and unbounded problems are not
// errors and are reported through Result.Status. Report runs the whole
// pipeline and folds every outcome into a Result, for callers that only
// display it.
//
// Nothing in this package holds state between calls: every LinearProgram
// and Result belongs to the request that produced it, so all functions are
// safe for concurrent use.
package production
