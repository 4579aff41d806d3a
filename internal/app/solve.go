package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"motorcalc.klederson.com/internal/motor"
)

// Result holds everything one run produces: the validated parameters and
// the two characteristic operating points.
type Result struct {
	Params        motor.Parameters
	Clamped       bool
	MaxPower      motor.OperatingPoint
	MaxEfficiency motor.OperatingPoint
}

// Solve validates the collected parameters and evaluates the motor at the
// currents that maximize output power and efficiency. Shared by the wizard
// and the one-shot mode.
func Solve(p motor.Parameters) (Result, error) {
	validated, clamped, err := p.Validate()
	if err != nil {
		return Result{}, err
	}

	return Result{
		Params:        validated,
		Clamped:       clamped,
		MaxPower:      validated.Evaluate(validated.PeakCurrent(motor.MetricPower)),
		MaxEfficiency: validated.Evaluate(validated.PeakCurrent(motor.MetricEfficiency)),
	}, nil
}

// solveCmd runs Solve off the update loop and reports back as a message.
func solveCmd(p motor.Parameters) tea.Cmd {
	return func() tea.Msg {
		res, err := Solve(p)
		if err != nil {
			return FatalMsg{Err: err}
		}
		return ResultMsg{Result: res}
	}
}
