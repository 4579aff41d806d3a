package motor

// Demo returns the nameplate of a typical 1000Kv outrunner on a 3S pack,
// used by demo mode so the tool can be tried without a datasheet at hand.
func Demo() Parameters {
	return Parameters{
		Kv:            1000,
		Voltage:       11.1,
		NoLoadCurrent: 0.5,
		MaxCurrent:    20,
		ArmatureR:     100,
	}
}
