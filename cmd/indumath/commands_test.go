package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/indumath/indumath/calc"
	"github.com/indumath/indumath/production"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestLPFromRows(t *testing.T) {
	out, err := execute(t, "lp",
		"--objective", "-3, -5",
		"--row", "1, 0", "--row", "0, 2", "--row", "3, 2",
		"--rhs", "4, 12, 18",
	)
	require.NoError(t, err)
	assert.Equal(t, "Optimal value: -36.00, variables: [2.00, 6.00]\n", out)
}

func TestLPMatrixSeparators(t *testing.T) {
	out, err := execute(t, "lp", "-c", "-3, -5", "--matrix", "1, 0; 0, 2; 3, 2", "-b", "4, 12, 18")
	require.NoError(t, err)
	assert.Contains(t, out, "-36.00")
}

func TestLPOutcomesAreNotFailures(t *testing.T) {
	out, err := execute(t, "lp", "-c", "-1, -1", "-a", "-1, 0", "-b", "-5")
	require.NoError(t, err)
	assert.Contains(t, out, "Unbounded")

	out, err = execute(t, "lp", "-c", "1, 1", "-a", "1, 0", "-b", "-1")
	require.NoError(t, err)
	assert.Contains(t, out, "Infeasible")
}

func TestLPInputErrors(t *testing.T) {
	out, err := execute(t, "lp", "-c", "1, x", "-a", "1, 0", "-b", "1")
	require.Error(t, err)
	assert.ErrorIs(t, err, production.ErrParse)
	assert.Contains(t, out, "Parse error")

	out, err = execute(t, "lp", "-c", "1, 1", "-a", "1, 0", "-b", "1, 2")
	require.Error(t, err)
	assert.ErrorIs(t, err, production.ErrShape)
	assert.Contains(t, out, "Shape error")
}

func TestLPFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "problem.yaml")
	doc := "objective: [-3, -5]\nconstraints:\n  - [1, 0]\n  - [0, 2]\n  - [3, 2]\nrhs: [4, 12, 18]\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	out, err := execute(t, "lp", "--file", path, "--json")
	require.NoError(t, err)

	var got lpOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, production.StatusOptimal, got.Status)
	require.NotNil(t, got.ObjectiveValue)
	assert.InDelta(t, -36, *got.ObjectiveValue, 1e-6)
}

func TestLPEcho(t *testing.T) {
	out, err := execute(t, "lp", "--echo", "-c", "1", "-a", "1", "-b", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "objective:")
	assert.Contains(t, out, "Optimal value: 0.00, variables: [0.00]")
}

func TestLPMissingFile(t *testing.T) {
	_, err := execute(t, "lp", "--file", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, production.ErrParse)
}

func TestCalculatorCommands(t *testing.T) {
	out, err := execute(t, "eoq")
	require.NoError(t, err)
	assert.Contains(t, out, "EOQ (economic order quantity): 141.42 units")

	out, err = execute(t, "mm1", "--arrival-rate", "1", "--service-rate", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Utilization (ρ): 0.50")

	out, err = execute(t, "breakeven", "--json")
	require.NoError(t, err)
	var be calc.BreakEvenResult
	require.NoError(t, json.Unmarshal([]byte(out), &be))
	assert.InDelta(t, 10000.0/30.0, be.Units, 1e-9)
}

func TestCalculatorRejections(t *testing.T) {
	_, err := execute(t, "mm1", "--arrival-rate", "3")
	assert.ErrorIs(t, err, calc.ErrUnstable)

	_, err = execute(t, "breakeven", "--price", "20")
	assert.ErrorIs(t, err, calc.ErrPriceNotAboveCost)

	_, err = execute(t, "eoq", "--holding-cost", "0")
	assert.ErrorIs(t, err, calc.ErrInvalidInput)
}

func TestBadLogLevel(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--log-level", "loud", "eoq"})
	assert.Error(t, root.Execute())
}
