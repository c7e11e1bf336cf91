package production

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ParseObjective parses comma-separated objective coefficients such as
// "-3, -5". It fails with ErrParse when the text is empty or any token is
// not a finite number.
func ParseObjective(text string) ([]float64, error) {
	return parseVector(FieldObjective, 0, text)
}

// ParseRHS parses comma-separated right-hand side values such as
// "4, 12, 18". Same rules as ParseObjective.
func ParseRHS(text string) ([]float64, error) {
	return parseVector(FieldRHS, 0, text)
}

// ParseConstraintMatrix parses one constraint row per line. Lines that are
// blank after trimming are skipped. It fails with ErrParse on any token that
// is not a finite number or when no row remains, and with ErrShape when rows
// have different lengths. Short rows are never padded.
func ParseConstraintMatrix(text string) ([][]float64, error) {
	var rows [][]float64
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		row, err := parseVector(FieldMatrix, len(rows)+1, line)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, parseError(FieldMatrix, 0, "no constraint rows")
	}

	width := len(rows[0])
	for i, row := range rows[1:] {
		if len(row) != width {
			return nil, shapeError(FieldMatrix, i+2, "has %d values, row 1 has %d", len(row), width)
		}
	}
	return rows, nil
}

func parseVector(field Field, row int, text string) ([]float64, error) {
	if strings.TrimSpace(text) == "" {
		return nil, parseError(field, row, "no values")
	}

	tokens := strings.Split(text, ",")
	values := make([]float64, 0, len(tokens))
	for i, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			return nil, parseError(field, row, "value %d is empty", i+1)
		}
		v, err := strconv.ParseFloat(tok, 64)
		switch {
		case errors.Is(err, strconv.ErrRange):
			return nil, parseError(field, row, "%q is out of range", tok)
		case err != nil:
			return nil, parseError(field, row, "%q is not a number", tok)
		case math.IsNaN(v) || math.IsInf(v, 0):
			return nil, parseError(field, row, "%q is not a finite number", tok)
		}
		values = append(values, v)
	}
	return values, nil
}
