package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"motorcalc.klederson.com/internal/app"
	"motorcalc.klederson.com/internal/motor"
	"motorcalc.klederson.com/internal/ui"
)

var (
	flagKv         float64
	flagVoltage    float64
	flagNoLoad     float64
	flagMaxCurrent float64
	flagResistance float64
	flagDemo       bool
)

// paramFlags must all be set together for one-shot mode.
var paramFlags = []string{"kv", "voltage", "no-load", "max-current", "resistance"}

func main() {
	rootCmd := &cobra.Command{
		Use:   "motorcalc",
		Short: "MotorCalc - DC motor operating point calculator",
		Long: `MotorCalc computes the two characteristic operating points of a DC motor,
maximum output power and maximum efficiency, from five nameplate parameters:
Kv, supply voltage, no-load current, maximum current, and armature
resistance.

Run without flags for the interactive wizard, or pass all five parameters
for a one-shot report (usable from scripts and pipes).`,
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().Float64Var(&flagKv, "kv", 0, "Velocity constant (RPM per volt)")
	rootCmd.Flags().Float64Var(&flagVoltage, "voltage", 0, "Supply voltage (V)")
	rootCmd.Flags().Float64Var(&flagNoLoad, "no-load", 0, "No-load current (A)")
	rootCmd.Flags().Float64Var(&flagMaxCurrent, "max-current", 0, "Maximum current (A)")
	rootCmd.Flags().Float64Var(&flagResistance, "resistance", 0, "Armature resistance (mΩ)")
	rootCmd.Flags().BoolVar(&flagDemo, "demo", false, "One-shot report for a sample 1000Kv motor (no datasheet needed)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if flagDemo {
		return oneShot(motor.Demo())
	}

	anySet := false
	for _, name := range paramFlags {
		if cmd.Flags().Changed(name) {
			anySet = true
			break
		}
	}

	if anySet {
		for _, name := range paramFlags {
			if !cmd.Flags().Changed(name) {
				return fmt.Errorf("one-shot mode needs all five parameters, missing --%s", name)
			}
		}
		return oneShot(motor.Parameters{
			Kv:            flagKv,
			Voltage:       flagVoltage,
			NoLoadCurrent: flagNoLoad,
			MaxCurrent:    flagMaxCurrent,
			ArmatureR:     flagResistance,
		})
	}

	// The original spawned a terminal emulator when detached; reporting the
	// alternative is friendlier than hijacking a window.
	if !isatty.IsTerminal(os.Stdin.Fd()) || !isatty.IsTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("not connected to a terminal; pass --kv, --voltage, --no-load, --max-current and --resistance for a one-shot report")
	}

	p := tea.NewProgram(app.New(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// oneShot prints the report straight to stdout, no TUI.
func oneShot(params motor.Parameters) error {
	res, err := app.Solve(params)
	if err != nil {
		return err
	}

	if res.Clamped {
		fmt.Fprintln(os.Stderr, ui.RenderClampWarning(res.Params.MaxCurrent))
	}

	fmt.Println(ui.RenderReport(res.MaxPower, res.MaxEfficiency, 80))
	return nil
}
