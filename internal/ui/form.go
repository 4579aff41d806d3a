package ui

import (
	"fmt"
	"strings"
)

// FormField is one parameter prompt in the input wizard.
type FormField struct {
	Label string
	Unit  string
	Value float64
	Done  bool
}

// RenderForm renders the confirmed-parameter checklist followed by the
// active prompt. Confirmed entries collapse to a single line each, the way
// the original prompt loop rewrote itself in place.
func RenderForm(fields []FormField, active int, inputView, errMsg string) string {
	var b strings.Builder

	for _, f := range fields {
		if !f.Done {
			break
		}
		b.WriteString(" " + StyleCheck.Render("✓") + " " +
			StyleConfirmed.Render(upperFirst(f.Label)+": ") +
			StyleValue.Render(trimFloat(f.Value)) + " " +
			StyleConfirmed.Render(f.Unit) + "\n")
	}

	if active < len(fields) {
		f := fields[active]
		b.WriteString("\n " + StylePrompt.Render(fmt.Sprintf("Enter %s (%s): ", f.Label, f.Unit)) + inputView + "\n")
		if errMsg != "" {
			b.WriteString(" " + StyleError.Render(errMsg) + "\n")
		}
		b.WriteString("\n " + StyleHelp.Render("[Enter] confirm · [Esc] quit") + "\n")
	}

	return b.String()
}

// trimFloat formats a value without trailing zeros (Kv 1000 reads as
// "1000", not "1000.000000").
func trimFloat(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.4f", v), "0"), ".")
}
