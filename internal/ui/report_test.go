package ui

import (
	"errors"
	"strings"
	"testing"

	"motorcalc.klederson.com/internal/motor"
)

func TestRenderReportContents(t *testing.T) {
	p := motor.Demo()
	maxPower := p.Evaluate(p.PeakCurrent(motor.MetricPower))
	maxEff := p.Evaluate(p.PeakCurrent(motor.MetricEfficiency))

	out := RenderReport(maxPower, maxEff, 80)

	for _, want := range []string{
		"AT MAXIMUM OUTPUT POWER",
		"AT MAXIMUM EFFICIENCY",
		"20.00 A", // constrained power peak at the current ceiling
		"7.45 A",  // efficiency peak, sqrt(0.5*111)
		"current",
		"torque",
		"efficiency",
		"HP",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestRenderReportStacksWhenNarrow(t *testing.T) {
	p := motor.Demo()
	pt := p.Evaluate(5)

	wide := RenderReport(pt, pt, 100)
	narrow := RenderReport(pt, pt, 40)

	if strings.Count(narrow, "\n") <= strings.Count(wide, "\n") {
		t.Fatal("narrow layout should stack the panels vertically")
	}
}

func TestRenderClampWarning(t *testing.T) {
	out := RenderClampWarning(11.1001)
	if !strings.Contains(out, "open circuit") || !strings.Contains(out, "11.10 A") {
		t.Fatalf("unexpected warning text:\n%s", out)
	}
}

func TestRenderFatalCapitalizes(t *testing.T) {
	out := RenderFatal(errors.New("maximum current is less than, equal to, or very close to no-load current"))
	if !strings.Contains(out, "Error: Maximum current") {
		t.Fatalf("unexpected error text:\n%s", out)
	}
}

func TestRenderFormChecklistAndPrompt(t *testing.T) {
	fields := []FormField{
		{Label: "Kv", Unit: "RPM/V", Value: 1000, Done: true},
		{Label: "voltage", Unit: "V"},
	}

	out := RenderForm(fields, 1, "11.1", "")
	if !strings.Contains(out, "Kv: ") || !strings.Contains(out, "1000") {
		t.Fatalf("confirmed entry missing from form:\n%s", out)
	}
	if !strings.Contains(out, "Enter voltage (V):") {
		t.Fatalf("active prompt missing from form:\n%s", out)
	}

	out = RenderForm(fields, 1, "", "Invalid entry, try again.")
	if !strings.Contains(out, "Invalid entry") {
		t.Fatalf("error line missing from form:\n%s", out)
	}
}
