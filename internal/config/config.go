package config

import "math"

const (
	// Motor physics
	KtNumerator = 1352.0             // Kt [ozf-in/A] = KtNumerator / Kv [RPM/V]
	OzfInToNm   = 0.00706            // ounce-force-inch to newton-meter
	RadPerRPM   = 2 * math.Pi / 60   // RPM to rad/s
	WattsPerHP  = 745.69987158227022 // mechanical horsepower (display only)

	// Current domain
	CurrentEpsilon  = 1e-4 // domain floor offset above no-load current (A)
	DomainTolerance = 0.01 // minimum usable gap between max and no-load current (A)

	// Grid search fallback
	GridSteps     = 10   // coarse partitions per refinement pass
	GridTolerance = 1e-4 // stop once both window half-widths drop below this (A)

	// App
	AppName    = "MOTORCALC"
	AppVersion = "1.0"
)
