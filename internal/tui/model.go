// Package tui is an interactive terminal calculator. It drives an in-memory
// calculator block through the same engine the page surfaces use.
package tui

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/iwvelando/mortgage-calc/internal/calculator"
	"github.com/iwvelando/mortgage-calc/internal/config"
	"github.com/iwvelando/mortgage-calc/pkg/constants"
	"github.com/iwvelando/mortgage-calc/pkg/format"
	"github.com/iwvelando/mortgage-calc/pkg/numeric"
	"go.uber.org/zap"
)

const (
	blockID  = "terminal"
	barWidth = 40
)

// Terms offered by the term selector, in years.
var Terms = []int{10, 15, 20, 25, 30}

// row is one editable line of the form. Slider rows move by step times the
// configured slider step.
type row struct {
	label  string
	text   calculator.Field
	slider calculator.Field
	step   float64
}

var rows = []row{
	{label: "Term (years)", text: calculator.FieldTerm},
	{label: "Interest", text: calculator.FieldInterestText, slider: calculator.FieldInterestSlider, step: 0.25},
	{label: "Home price", text: calculator.FieldPriceText, slider: calculator.FieldPriceSlider, step: 5000},
	{label: "Downpayment", text: calculator.FieldDownpaymentText},
	{label: "Downpayment %", text: calculator.FieldDownpaymentTextP, slider: calculator.FieldDownpaymentSlider, step: 1},
	{label: "Tax / month", text: calculator.FieldTax},
	{label: "HOA / month", text: calculator.FieldHOA},
}

// Model is the bubbletea model of the terminal calculator.
type Model struct {
	logger  *zap.Logger
	engine  *calculator.Engine
	block   *calculator.MemoryBlock
	step    float64
	cursor  int
	editing bool
	width   int
	err     error
}

// NewModel builds a calculator pre-filled with the configured defaults.
func NewModel(logger *zap.Logger, cfg config.CalculatorConfig) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	step := cfg.SliderStep
	if step <= 0 {
		step = constants.DefaultSliderStep
	}

	block := calculator.NewMemoryCalculator(blockID, cfg.Values(), false)
	engine := calculator.NewEngine(logger)
	engine.Bind(calculator.MemoryPage{block})

	return Model{logger: logger, engine: engine, block: block, step: step}
}

// Run starts the program on the alternate screen and blocks until it exits.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Calculator returns the calculator behind the form.
func (m Model) Calculator() *calculator.Calculator {
	calc, _ := m.engine.Calculator(blockID)
	return calc
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k", "shift+tab":
			m.finishEdit()
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j", "tab":
			m.finishEdit()
			if m.cursor < len(rows)-1 {
				m.cursor++
			}
		case "enter", "esc":
			m.finishEdit()
		case "left", "h":
			m.finishEdit()
			m.nudge(-1)
		case "right", "l":
			m.finishEdit()
			m.nudge(1)
		case "t":
			m.finishEdit()
			m.cycleTerm(1)
		case "backspace":
			m.edit(func(v string) string {
				if v == "" {
					return v
				}
				return v[:len(v)-1]
			})
		default:
			if key := msg.String(); isNumericKey(key) {
				m.edit(func(v string) string { return v + key })
			}
		}
	}
	return m, nil
}

func isNumericKey(key string) bool {
	return len(key) == 1 && strings.ContainsAny(key, "0123456789.-")
}

// edit starts editing the current text row on the first keystroke and
// dispatches the new text as a change.
func (m *Model) edit(update func(string) string) {
	r := rows[m.cursor]
	if r.text == calculator.FieldTerm {
		return
	}
	if !m.editing {
		m.editing = true
		m.err = m.engine.Focus(blockID, r.text)
	}
	value := update(m.block.Element(r.text).Value())
	m.dispatch(calculator.ChangeFor(r.text, value))
}

func (m *Model) finishEdit() {
	if !m.editing {
		return
	}
	m.editing = false
	m.err = m.engine.Blur(blockID)
}

// nudge moves the slider of the current row by dir steps. The term row
// cycles through Terms instead.
func (m *Model) nudge(dir int) {
	r := rows[m.cursor]
	if r.text == calculator.FieldTerm {
		m.cycleTerm(dir)
		return
	}
	if r.slider == "" {
		return
	}

	current := numeric.ParseFloat(m.block.Element(r.slider).Value())
	next := current + float64(dir)*r.step*m.step
	if next < 0 {
		next = 0
	}
	m.dispatch(calculator.ChangeFor(r.slider, format.Number(next)))
}

func (m *Model) cycleTerm(dir int) {
	current := numeric.ParseInt(m.block.Element(calculator.FieldTerm).Value())
	idx := len(Terms) - 1
	for i, term := range Terms {
		if term == current {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(Terms)) % len(Terms)
	m.dispatch(calculator.ChangeFor(calculator.FieldTerm, strconv.Itoa(Terms[idx])))
}

func (m *Model) dispatch(change calculator.Change) {
	if err := m.engine.Dispatch(blockID, change); err != nil {
		m.err = err
		m.logger.Error("failed to apply change",
			zap.String("op", "tui.Model.dispatch"),
			zap.Error(err),
		)
	}
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Mortgage calculator") + "\n\n")

	for i, r := range rows {
		value := m.block.Element(r.text).Value()
		line := labelStyle.Render(r.label) + " " + valueStyle.Render(value)
		if r.slider != "" {
			line += helpStyle.Render(fmt.Sprintf("  [%s]", m.block.Element(r.slider).Value()))
		}
		switch {
		case i == m.cursor && m.editing:
			line = editingStyle.Render("> ") + line
		case i == m.cursor:
			line = selectedStyle.Render("> ") + line
		default:
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Principal & int.") + " " + valueStyle.Render(m.text(calculator.FieldInfoCostInterest)) + "\n")
	b.WriteString(labelStyle.Render("Per month") + " " + totalStyle.Render(m.text(calculator.FieldInfoCostTotal)) + "\n\n")
	b.WriteString(m.graph() + "\n")

	if m.err != nil {
		b.WriteString(editingStyle.Render(m.err.Error()) + "\n")
	}
	b.WriteString(helpStyle.Render("↑/↓ select  ←/→ slide  t term  0-9 edit  enter done  q quit"))

	return panelStyle.Render(b.String())
}

func (m Model) text(field calculator.Field) string {
	return html.UnescapeString(m.block.Element(field).Text())
}

// graph draws the breakdown bar from the rendered segment widths.
func (m Model) graph() string {
	fields := []calculator.Field{calculator.FieldGraphInterest, calculator.FieldGraphTax, calculator.FieldGraphHOA}
	labels := []string{"P&I", "Tax", "HOA"}

	var bar, legend strings.Builder
	for i, cells := range segmentWidths(m.block, fields, barWidth) {
		style := segmentStyles[i]
		bar.WriteString(style.Render(strings.Repeat("█", cells)))
		width := m.block.Element(fields[i]).Style("width")
		legend.WriteString(style.Render(fmt.Sprintf("■ %s %s  ", labels[i], width)))
	}
	return bar.String() + "\n" + legend.String()
}

// segmentWidths converts the percentage widths of fields into whole cells
// of a bar total cells wide.
func segmentWidths(block *calculator.MemoryBlock, fields []calculator.Field, total int) []int {
	cells := make([]int, len(fields))
	used := 0
	for i, field := range fields {
		pct := numeric.ParseFloat(strings.TrimSuffix(block.Element(field).Style("width"), constants.PercentSuffix))
		cells[i] = int(pct / constants.PercentageMultiplier * float64(total))
		used += cells[i]
	}
	// Rounding leftovers go to the largest segment.
	if used > 0 && used < total {
		largest := 0
		for i := range cells {
			if cells[i] > cells[largest] {
				largest = i
			}
		}
		cells[largest] += total - used
	}
	return cells
}
