package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/indumath/indumath/calc"
	"github.com/indumath/indumath/production"
)

// field is one labelled input. The constraint matrix is the only multiline
// field and uses a textarea; everything else is a single-line textinput.
type field struct {
	label     string
	multiline bool
	input     textinput.Model
	area      textarea.Model
}

func newInput(label, value string) *field {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 1024
	ti.Width = 40
	ti.SetValue(value)
	return &field{label: label, input: ti}
}

func newArea(label, value string) *field {
	ta := textarea.New()
	ta.ShowLineNumbers = true
	ta.SetWidth(40)
	ta.SetHeight(5)
	ta.SetValue(value)
	return &field{label: label, multiline: true, area: ta}
}

func (f *field) focus() tea.Cmd {
	if f.multiline {
		return f.area.Focus()
	}
	return f.input.Focus()
}

func (f *field) blur() {
	if f.multiline {
		f.area.Blur()
		return
	}
	f.input.Blur()
}

func (f *field) value() string {
	if f.multiline {
		return f.area.Value()
	}
	return f.input.Value()
}

func (f *field) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if f.multiline {
		f.area, cmd = f.area.Update(msg)
	} else {
		f.input, cmd = f.input.Update(msg)
	}
	return cmd
}

func (f *field) view() string {
	if f.multiline {
		return f.area.View()
	}
	return f.input.View()
}

// outcome is what a tab shows after a computation.
type outcome struct {
	lines  []string
	failed bool
}

func failure(err error) outcome {
	return outcome{lines: []string{err.Error()}, failed: true}
}

// tab is one calculator page.
type tab struct {
	title   string
	heading string
	fields  []*field
	focus   int
	compute func(values []string) outcome
	result  *outcome
	pending bool
	seq     int
}

func (t *tab) values() []string {
	out := make([]string, len(t.fields))
	for i, f := range t.fields {
		out[i] = f.value()
	}
	return out
}

func productionTab(e env) *tab {
	return &tab{
		title:   "Production (LP)",
		heading: "Production optimization: minimize c·x subject to A·x ≤ b, x ≥ 0",
		fields: []*field{
			newInput("Objective coefficients c (e.g. -3, -5)", "-3, -5"),
			newArea("Constraint matrix A (one row per line)", "1, 0\n0, 2\n3, 2"),
			newInput("Right-hand side b (e.g. 4, 12, 18)", "4, 12, 18"),
		},
		compute: func(v []string) outcome {
			res := production.Report(e.logger, v[0], v[1], v[2], e.solveOpts...)
			return outcome{
				lines:  []string{res.Format(e.precision)},
				failed: res.Status != production.StatusOptimal,
			}
		},
	}
}

func eoqTab(e env) *tab {
	return &tab{
		title:   "EOQ",
		heading: "Inventory: economic order quantity",
		fields: []*field{
			newInput("Annual demand (D)", "1000"),
			newInput("Ordering cost per order (S)", "50"),
			newInput("Holding cost per unit per year (H)", "5"),
		},
		compute: func(v []string) outcome {
			nums, err := parseNumbers([]string{"annual demand", "ordering cost", "holding cost"}, v)
			if err != nil {
				return failure(err)
			}
			res, err := calc.EOQ(calc.EOQParams{AnnualDemand: nums[0], OrderingCost: nums[1], HoldingCost: nums[2]})
			if err != nil {
				return failure(err)
			}
			return outcome{lines: res.Lines(e.precision)}
		},
	}
}

func queueTab(e env) *tab {
	return &tab{
		title:   "M/M/1 Queue",
		heading: "Queueing: single server, Poisson arrivals, exponential service",
		fields: []*field{
			newInput("Arrival rate λ (per minute)", "2"),
			newInput("Service rate μ (per minute)", "3"),
		},
		compute: func(v []string) outcome {
			nums, err := parseNumbers([]string{"arrival rate", "service rate"}, v)
			if err != nil {
				return failure(err)
			}
			res, err := calc.MM1(calc.MM1Params{ArrivalRate: nums[0], ServiceRate: nums[1]})
			if errors.Is(err, calc.ErrUnstable) {
				return failure(errors.New("unstable system (λ ≥ μ): the queue grows without bound"))
			}
			if err != nil {
				return failure(err)
			}
			return outcome{lines: res.Lines(e.precision)}
		},
	}
}

func breakEvenTab(e env) *tab {
	return &tab{
		title:   "Break-even",
		heading: "Break-even point",
		fields: []*field{
			newInput("Fixed cost (FC)", "10000"),
			newInput("Variable cost per unit (VC)", "20"),
			newInput("Price per unit (P)", "50"),
		},
		compute: func(v []string) outcome {
			nums, err := parseNumbers([]string{"fixed cost", "variable cost", "price"}, v)
			if err != nil {
				return failure(err)
			}
			res, err := calc.BreakEven(calc.BreakEvenParams{FixedCost: nums[0], VariableCost: nums[1], Price: nums[2]})
			if errors.Is(err, calc.ErrPriceNotAboveCost) {
				return failure(errors.New("price must be greater than the variable cost"))
			}
			if err != nil {
				return failure(err)
			}
			return outcome{lines: res.Lines(e.precision)}
		},
	}
}

// parseNumbers converts each trimmed value to a float64, naming the first
// field that does not parse.
func parseNumbers(names, values []string) ([]float64, error) {
	out := make([]float64, len(values))
	for i, s := range values {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %q is not a number", names[i], strings.TrimSpace(s))
		}
		out[i] = v
	}
	return out, nil
}
