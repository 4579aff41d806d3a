package ui

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"motorcalc.klederson.com/internal/config"
	"motorcalc.klederson.com/internal/motor"
)

const minPanelWidth = 34

// RenderOperatingPoint renders one bordered panel describing the motor at a
// single armature current. Torque is displayed in N·cm, output power also in
// horsepower.
func RenderOperatingPoint(title string, pt motor.OperatingPoint, width int) string {
	rows := []string{
		pointRow(fmt.Sprintf("%.2f A", pt.Current), "current"),
		pointRow(fmt.Sprintf("%.2f RPM", pt.RPM), ""),
		pointRow(fmt.Sprintf("%.2f N·cm", pt.Torque*100), "torque"),
		pointRow(fmt.Sprintf("%.2f W", pt.PowerIn), "in"),
		pointRow(fmt.Sprintf("%.2f W", pt.PowerOut), fmt.Sprintf("out (%.3f HP)", pt.PowerOut/config.WattsPerHP)),
		pointRow(fmt.Sprintf("%.2f%%", pt.Efficiency), "efficiency"),
	}

	content := StylePanelTitle.Render(title) + "\n" + strings.Join(rows, "\n")
	return StylePanelBorder.Width(width).Render(content)
}

func pointRow(value, label string) string {
	row := " " + StyleValue.Render(value)
	if label != "" {
		row += " " + StyleLabel.Render(label)
	}
	return row
}

// RenderReport renders both characteristic operating points, side by side
// when the terminal is wide enough, stacked otherwise.
func RenderReport(maxPower, maxEfficiency motor.OperatingPoint, width int) string {
	panelW := minPanelWidth
	if width/2-1 > panelW {
		panelW = width/2 - 1
	}

	left := RenderOperatingPoint("AT MAXIMUM OUTPUT POWER", maxPower, panelW)
	right := RenderOperatingPoint("AT MAXIMUM EFFICIENCY", maxEfficiency, panelW)

	if width >= 2*minPanelWidth+2 {
		return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
	}
	return lipgloss.JoinVertical(lipgloss.Left, left, right)
}

// RenderClampWarning renders the non-fatal open-circuit notice shown when
// the maximum current had to be reduced to the voltage-limited current.
func RenderClampWarning(maxCurrent float64) string {
	return StyleWarning.Render("Warning: at maximum current, the motor would be an open circuit (Vdrop > Vin).") +
		"\n" +
		StyleWarning.Render("Maximum current has been reduced to ") +
		StyleWarnValue.Render(fmt.Sprintf("%.2f A", maxCurrent)) +
		StyleWarning.Render(".")
}

// RenderFatal renders a validation failure that ends the run.
func RenderFatal(err error) string {
	return StyleError.Render("Error: " + upperFirst(err.Error()) + ".")
}

func upperFirst(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
