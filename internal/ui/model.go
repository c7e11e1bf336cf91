// Package ui is the interactive terminal front end: one tab per calculator,
// each with its input fields, a compute action and a result panel.
//
// Keys:
//
//	ctrl+n / ctrl+p     next / previous tab
//	tab / shift+tab     next / previous field
//	ctrl+s              compute (enter also computes outside the matrix field)
//	ctrl+c / esc        quit
//
// The model is driven by the bubbletea event loop and must not be shared
// across goroutines. Computations run as commands off the loop, so the UI
// stays responsive, and quitting works, while a solve is in flight.
package ui

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/indumath/indumath/internal/logging"
	"github.com/indumath/indumath/linprog"
	"github.com/indumath/indumath/production"
)

// Options configures a Model.
type Options struct {
	// Precision is the number of decimals shown. Negative means
	// production.DefaultPrecision.
	Precision int
	// Logger receives solve diagnostics. Nil discards them.
	Logger *slog.Logger
	// SolveOptions are passed to every production solve.
	SolveOptions []linprog.SolveOption
}

// env is what the calculators need from Options.
type env struct {
	precision int
	logger    *slog.Logger
	solveOpts []linprog.SolveOption
}

// Model is the bubbletea model for the calculator UI.
type Model struct {
	tabs     []*tab
	active   int
	width    int
	quitting bool
}

// New creates the model with every field holding its example value.
func New(opts Options) Model {
	e := env{precision: opts.Precision, logger: opts.Logger, solveOpts: opts.SolveOptions}
	if e.precision < 0 {
		e.precision = production.DefaultPrecision
	}
	if e.logger == nil {
		e.logger = logging.Discard()
	}

	m := Model{tabs: []*tab{productionTab(e), eoqTab(e), queueTab(e), breakEvenTab(e)}}
	m.tabs[0].fields[0].focus()
	return m
}

// Run starts the program on the alternate screen and blocks until the user
// quits or ctx is cancelled.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		t := m.tabs[m.active]
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "ctrl+n":
			return m, m.switchTab(1)
		case "ctrl+p":
			return m, m.switchTab(-1)
		case "tab":
			return m, m.moveFocus(1)
		case "shift+tab":
			return m, m.moveFocus(-1)
		case "ctrl+s":
			return m, m.compute()
		case "enter":
			if !t.fields[t.focus].multiline {
				return m, m.compute()
			}
		}

	case computedMsg:
		t := m.tabs[msg.tab]
		if msg.seq == t.seq {
			t.result = &msg.out
			t.pending = false
		}
		return m, nil
	}

	t := m.tabs[m.active]
	return m, t.fields[t.focus].update(msg)
}

func (m *Model) switchTab(delta int) tea.Cmd {
	t := m.tabs[m.active]
	t.fields[t.focus].blur()
	m.active = (m.active + delta + len(m.tabs)) % len(m.tabs)
	t = m.tabs[m.active]
	return t.fields[t.focus].focus()
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	t := m.tabs[m.active]
	t.fields[t.focus].blur()
	t.focus = (t.focus + delta + len(t.fields)) % len(t.fields)
	return t.fields[t.focus].focus()
}

// computedMsg delivers a finished computation. Only the latest request of
// a tab, by seq, is kept.
type computedMsg struct {
	tab int
	seq int
	out outcome
}

func (m *Model) compute() tea.Cmd {
	t := m.tabs[m.active]
	t.seq++
	t.pending = true
	idx, seq, values, run := m.active, t.seq, t.values(), t.compute
	return func() tea.Msg {
		return computedMsg{tab: idx, seq: seq, out: run(values)}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("Industrial Mathematics Models"))
	b.WriteString("\n")

	titles := make([]string, len(m.tabs))
	for i, t := range m.tabs {
		if i == m.active {
			titles[i] = styles.ActiveTab.Render(t.title)
		} else {
			titles[i] = styles.Tab.Render(t.title)
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, titles...))
	b.WriteString("\n\n")

	t := m.tabs[m.active]
	b.WriteString(styles.Heading.Render(t.heading))
	b.WriteString("\n\n")
	for i, f := range t.fields {
		label := styles.Label
		if i == t.focus {
			label = styles.ActiveLabel
		}
		b.WriteString(label.Render(f.label))
		b.WriteString("\n")
		b.WriteString(f.view())
		b.WriteString("\n\n")
	}

	if t.pending {
		b.WriteString(styles.Label.Render("Computing…"))
		b.WriteString("\n")
	}
	if t.result != nil {
		box := styles.Result
		if t.result.failed {
			box = styles.Error
		}
		b.WriteString(box.Render(strings.Join(t.result.lines, "\n")))
		b.WriteString("\n")
	}

	b.WriteString(styles.Help.Render("ctrl+n/ctrl+p tab • tab/shift+tab field • ctrl+s compute • esc quit"))
	return b.String()
}
