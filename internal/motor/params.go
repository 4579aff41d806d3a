package motor

import (
	"errors"
	"math"

	"motorcalc.klederson.com/internal/config"
)

// Validation failures for the current domain. Both are fatal for a run;
// the ceiling open-circuit case is recoverable and reported via the
// clamped flag from Validate instead.
var (
	ErrDegenerateDomain = errors.New("maximum current is less than, equal to, or very close to no-load current")
	ErrOpenCircuit      = errors.New("at minimum current or barely above, the motor would be an open circuit (Vdrop > Vin)")
)

// Parameters holds the nameplate values describing a DC motor.
// Immutable once validated.
type Parameters struct {
	Kv            float64 // velocity constant, RPM per volt at no load
	Voltage       float64 // supply voltage, V
	NoLoadCurrent float64 // current drawn with zero mechanical load, A
	MaxCurrent    float64 // upper bound of the current domain, A
	ArmatureR     float64 // armature winding resistance, mΩ
}

// Kt returns the torque constant in ozf-in per ampere. Kt·Kv is fixed for
// a given winding, so Kt follows directly from Kv.
func (p Parameters) Kt() float64 {
	return config.KtNumerator / p.Kv
}

// MinCurrent returns the floor of the valid current domain, slightly above
// the no-load current to avoid zero or negative torque.
func (p Parameters) MinCurrent() float64 {
	return p.NoLoadCurrent + config.CurrentEpsilon
}

// ShortCircuitCurrent returns the stall current Voltage/ArmatureR, or +Inf
// for an ideal zero-resistance winding.
func (p Parameters) ShortCircuitCurrent() float64 {
	if p.ArmatureR == 0 {
		return math.Inf(1)
	}
	return p.Voltage / (p.ArmatureR / 1000)
}

// Validate checks that a usable current domain exists and returns a
// normalized copy. When back-EMF at MaxCurrent would exceed the supply
// voltage, MaxCurrent is reduced to the voltage-limited current and the
// clamped flag is set so the caller can surface a warning.
func (p Parameters) Validate() (Parameters, bool, error) {
	// Slack absorbs float noise so a gap of exactly DomainTolerance
	// still counts as degenerate.
	if p.MaxCurrent-p.NoLoadCurrent <= config.DomainTolerance+1e-12 {
		return p, false, ErrDegenerateDomain
	}
	if p.MinCurrent()*p.ArmatureR/1000 > p.Voltage {
		return p, false, ErrOpenCircuit
	}
	if p.MaxCurrent*p.ArmatureR/1000 >= p.Voltage {
		p.MaxCurrent = p.Voltage/(p.ArmatureR/1000) + config.CurrentEpsilon
		return p, true, nil
	}
	return p, false, nil
}
