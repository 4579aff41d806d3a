package motor

import "motorcalc.klederson.com/internal/config"

// OperatingPoint describes the motor at one armature current. Never mutated
// after construction.
type OperatingPoint struct {
	Current    float64 // A
	RPM        float64
	Torque     float64 // N·m
	PowerIn    float64 // W
	PowerOut   float64 // W
	Efficiency float64 // percent
}

// Evaluate computes the operating point at the given armature current.
// Pure arithmetic with no hidden state; currents outside
// [MinCurrent, MaxCurrent] yield physically meaningless (negative) figures
// that the caller must guard against.
func (p Parameters) Evaluate(current float64) OperatingPoint {
	rpm := (p.Voltage - current*p.ArmatureR/1000) * p.Kv // back-EMF model
	torque := p.Kt() * (current - p.NoLoadCurrent) * config.OzfInToNm
	powerOut := torque * rpm * config.RadPerRPM
	powerIn := p.Voltage * current

	return OperatingPoint{
		Current:    current,
		RPM:        rpm,
		Torque:     torque,
		PowerIn:    powerIn,
		PowerOut:   powerOut,
		Efficiency: powerOut / powerIn * 100,
	}
}
