package app

import (
	"errors"
	"math"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"motorcalc.klederson.com/internal/motor"
)

// typeAndEnter feeds text into the active prompt and confirms it, running
// any command the confirmation produced so its message reaches the model.
func typeAndEnter(t *testing.T, m AppModel, text string) AppModel {
	t.Helper()

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	m = model.(AppModel)

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = model.(AppModel)

	if cmd != nil {
		if msg := cmd(); msg != nil {
			model, _ = m.Update(msg)
			m = model.(AppModel)
		}
	}
	return m
}

func runWizard(t *testing.T, entries ...string) AppModel {
	t.Helper()
	m := New()
	for _, e := range entries {
		m = typeAndEnter(t, m, e)
	}
	return m
}

func TestWizardHappyPath(t *testing.T) {
	m := runWizard(t, "1000", "11.1", "0.5", "20", "100")

	if m.phase != phaseReport {
		t.Fatalf("phase = %v, want report", m.phase)
	}
	if m.result.Clamped {
		t.Fatal("reference motor should not be clamped")
	}
	// Power is still rising at the 20 A ceiling; efficiency peaks inside the
	// domain at sqrt(0.5 * 111).
	if got := m.result.MaxPower.Current; got != 20 {
		t.Fatalf("max-power current = %v, want 20", got)
	}
	if got, want := m.result.MaxEfficiency.Current, math.Sqrt(0.5*111); math.Abs(got-want) > 1e-9 {
		t.Fatalf("max-efficiency current = %v, want %v", got, want)
	}
}

func TestWizardRejectsInvalidEntries(t *testing.T) {
	cases := []struct {
		name  string
		entry string
	}{
		{"non-numeric", "abc"},
		{"negative", "-5"},
		{"zero where forbidden", "0"}, // Kv is a NoZero field
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := typeAndEnter(t, New(), c.entry)
			if m.fieldIdx != 0 {
				t.Fatalf("field advanced to %d on %q", m.fieldIdx, c.entry)
			}
			if m.inputErr == "" {
				t.Fatal("no error message shown")
			}
		})
	}
}

func TestWizardAllowsZeroWhereNonNegative(t *testing.T) {
	// Unloaded current and armature resistance may be zero.
	m := runWizard(t, "1000", "11.1", "0", "20", "0")
	if m.phase != phaseReport {
		t.Fatalf("phase = %v, want report (zero no-load and resistance are valid)", m.phase)
	}
}

func TestWizardEmptyEntryIgnored(t *testing.T) {
	m := New()
	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = model.(AppModel)
	if m.fieldIdx != 0 || m.inputErr != "" {
		t.Fatalf("empty entry should re-prompt in place, got idx=%d err=%q", m.fieldIdx, m.inputErr)
	}
}

func TestWizardDegenerateDomainIsFatal(t *testing.T) {
	m := runWizard(t, "1000", "11.1", "0.5", "0.51", "100")
	if m.phase != phaseFatal {
		t.Fatalf("phase = %v, want fatal", m.phase)
	}
	if !errors.Is(m.fatalErr, motor.ErrDegenerateDomain) {
		t.Fatalf("fatalErr = %v, want ErrDegenerateDomain", m.fatalErr)
	}
}

func TestWizardClampWarning(t *testing.T) {
	// 1 Ω winding: 20 A would drop 20 V against 11.1 V.
	m := runWizard(t, "1000", "11.1", "0.5", "20", "1000")
	if m.phase != phaseReport {
		t.Fatalf("phase = %v, want report", m.phase)
	}
	if !m.result.Clamped {
		t.Fatal("expected a clamped MaxCurrent")
	}
	if got, want := m.result.Params.MaxCurrent, 11.1+1e-4; math.Abs(got-want) > 1e-9 {
		t.Fatalf("clamped MaxCurrent = %v, want %v", got, want)
	}
}

func TestWizardRestart(t *testing.T) {
	m := runWizard(t, "1000", "11.1", "0.5", "20", "100")

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	m = model.(AppModel)

	if m.phase != phaseInput || m.fieldIdx != 0 {
		t.Fatalf("restart left phase=%v fieldIdx=%d", m.phase, m.fieldIdx)
	}
	if m.values != [5]float64{} {
		t.Fatalf("restart kept old entries: %v", m.values)
	}
}

func TestSolveMatchesCore(t *testing.T) {
	res, err := Solve(motor.Demo())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := res.Params
	if res.MaxPower != p.Evaluate(p.PeakCurrent(motor.MetricPower)) {
		t.Fatal("MaxPower point does not round-trip through the model")
	}
	if res.MaxEfficiency != p.Evaluate(p.PeakCurrent(motor.MetricEfficiency)) {
		t.Fatal("MaxEfficiency point does not round-trip through the model")
	}
}
