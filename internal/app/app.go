package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"motorcalc.klederson.com/internal/motor"
	"motorcalc.klederson.com/internal/ui"
)

// phase tracks which screen the wizard is on.
type phase int

const (
	phaseInput phase = iota
	phaseReport
	phaseFatal
)

// field describes one parameter prompt. noZero fields reject an entry of
// exactly zero (a motor with no Kv, supply, or current ceiling is not a
// motor); the rest only reject negatives.
type field struct {
	label  string
	unit   string
	noZero bool
	assign func(*motor.Parameters, float64)
}

var fields = []field{
	{"Kv", "RPM/V", true, func(p *motor.Parameters, v float64) { p.Kv = v }},
	{"voltage", "V", true, func(p *motor.Parameters, v float64) { p.Voltage = v }},
	{"unloaded current", "A", false, func(p *motor.Parameters, v float64) { p.NoLoadCurrent = v }},
	{"maximum current", "A", true, func(p *motor.Parameters, v float64) { p.MaxCurrent = v }},
	{"armature resistance", "mΩ", false, func(p *motor.Parameters, v float64) { p.ArmatureR = v }},
}

// AppModel is the root Bubble Tea model for MotorCalc.
type AppModel struct {
	width  int
	height int

	phase    phase
	input    textinput.Model
	fieldIdx int
	values   [5]float64
	inputErr string

	result   Result
	fatalErr error
}

// New creates a fresh wizard with the cursor on the first field.
func New() AppModel {
	ti := textinput.New()
	ti.CharLimit = 32
	ti.Width = 24
	ti.Focus()

	return AppModel{phase: phaseInput, input: ti}
}

func (m AppModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case ResultMsg:
		m.result = msg.Result
		m.phase = phaseReport
		return m, nil

	case FatalMsg:
		m.fatalErr = msg.Err
		m.phase = phaseFatal
		return m, nil
	}

	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key := msg.String(); key == "ctrl+c" || key == "esc" {
		return m, tea.Quit
	}

	if m.phase == phaseInput {
		if msg.String() == "enter" {
			return m.confirmField()
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	// Report and fatal screens: the original's "press [Esc] to quit or
	// [Enter] to restart" pause.
	switch msg.String() {
	case "q", "Q":
		return m, tea.Quit
	case "r", "R", "enter":
		return m.restart()
	}

	return m, nil
}

// confirmField parses the pending entry. Invalid entries re-prompt in place;
// an empty entry is ignored outright.
func (m AppModel) confirmField() (tea.Model, tea.Cmd) {
	raw := strings.TrimSpace(m.input.Value())
	if raw == "" {
		return m, nil
	}

	f := fields[m.fieldIdx]
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 || (f.noZero && v == 0) {
		m.inputErr = "Invalid entry, try again."
		m.input.SetValue("")
		return m, nil
	}

	m.inputErr = ""
	m.values[m.fieldIdx] = v
	m.input.SetValue("")
	m.fieldIdx++

	if m.fieldIdx < len(fields) {
		return m, nil
	}

	m.input.Blur()
	return m, solveCmd(m.collected())
}

// collected assembles Parameters from the confirmed entries.
func (m AppModel) collected() motor.Parameters {
	var p motor.Parameters
	for i, f := range fields {
		if i >= m.fieldIdx {
			break
		}
		f.assign(&p, m.values[i])
	}
	return p
}

// restart resets everything except the window geometry; the core is
// stateless between runs.
func (m AppModel) restart() (tea.Model, tea.Cmd) {
	next := New()
	next.width = m.width
	next.height = m.height
	return next, textinput.Blink
}

func (m AppModel) View() string {
	width := m.width
	if width == 0 {
		width = 80
	}

	menuBar := ui.RenderMenuBar(width, m.phaseLabel())

	var body string
	switch m.phase {
	case phaseInput:
		body = "\n" + ui.RenderForm(m.formFields(), m.fieldIdx, m.input.View(), m.inputErr)

	case phaseFatal:
		body = "\n " + ui.RenderFatal(m.fatalErr) + "\n\n " +
			ui.StyleHelp.Render("[Enter]/[R] restart · [Q]/[Esc] quit") + "\n"

	case phaseReport:
		body = "\n" + ui.RenderForm(m.formFields(), m.fieldIdx, "", "")
		if m.result.Clamped {
			body += "\n" + ui.RenderClampWarning(m.result.Params.MaxCurrent) + "\n"
		}
		body += "\n" + ui.RenderReport(m.result.MaxPower, m.result.MaxEfficiency, width) + "\n " +
			ui.StyleHelp.Render("[Enter]/[R] restart · [Q]/[Esc] quit") + "\n"
	}

	statusBar := ui.RenderStatusBar(width, m.statusInfo())

	return ui.ComposeLayout(menuBar, body, statusBar)
}

func (m AppModel) phaseLabel() string {
	switch m.phase {
	case phaseReport:
		return "REPORT"
	case phaseFatal:
		return "ERROR"
	default:
		return fmt.Sprintf("INPUT %d/%d", m.promptNo(), len(fields))
	}
}

// promptNo is the 1-based field number, held at the last field while the
// solver message is in flight.
func (m AppModel) promptNo() int {
	if m.fieldIdx >= len(fields) {
		return len(fields)
	}
	return m.fieldIdx + 1
}

func (m AppModel) statusInfo() string {
	switch m.phase {
	case phaseReport:
		p := m.result.Params
		return fmt.Sprintf("Domain: %.2f-%.2f A  Short-circuit: %.1f A  Kt: %.3f ozf-in/A",
			p.MinCurrent(), p.MaxCurrent, p.ShortCircuitCurrent(), p.Kt())
	case phaseFatal:
		return "Run aborted: no valid current domain"
	default:
		return fmt.Sprintf("Parameter %d of %d", m.promptNo(), len(fields))
	}
}

func (m AppModel) formFields() []ui.FormField {
	out := make([]ui.FormField, len(fields))
	for i, f := range fields {
		out[i] = ui.FormField{
			Label: f.label,
			Unit:  f.unit,
			Value: m.values[i],
			Done:  i < m.fieldIdx,
		}
	}
	return out
}
