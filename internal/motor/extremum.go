package motor

import (
	"math"

	"motorcalc.klederson.com/internal/config"
)

// Metric selects which quantity the extremum finder maximizes.
type Metric int

const (
	MetricPower      Metric = iota // mechanical output power
	MetricEfficiency               // output power over input power
)

func (m Metric) String() string {
	if m == MetricEfficiency {
		return "efficiency"
	}
	return "power"
}

// value extracts the selected quantity from an operating point.
func (m Metric) value(pt OperatingPoint) float64 {
	if m == MetricEfficiency {
		return pt.Efficiency
	}
	return pt.PowerOut
}

// PeakCurrent returns the current at which the metric is maximized over
// [MinCurrent, MaxCurrent]. For a series-resistance DC motor both curves are
// unimodal with closed-form interior maxima: output power peaks halfway
// between the no-load and short-circuit currents, efficiency at their
// geometric mean. A peak outside the domain clamps to the nearer bound,
// since the metric is still rising (or already falling) there.
func (p Parameters) PeakCurrent(m Metric) float64 {
	isc := p.ShortCircuitCurrent()
	if math.IsInf(isc, 1) {
		// Zero winding resistance: both metrics rise monotonically.
		return p.MaxCurrent
	}

	var peak float64
	switch m {
	case MetricEfficiency:
		peak = math.Sqrt(p.NoLoadCurrent * isc)
	default:
		peak = (p.NoLoadCurrent + isc) / 2
	}
	return clamp(peak, p.MinCurrent(), p.MaxCurrent)
}

// GridSearchCurrent locates the same maximum by a coarse-to-fine hill climb:
// the domain is split into GridSteps partitions, the metric is evaluated at
// each step plus the window edge, then the window narrows to one step either
// side of the best point and the step shrinks tenfold. The search stops when
// a full pass improves nothing or both window half-widths fall below
// GridTolerance. This is a general-purpose fallback for metrics without a
// closed form; it can plateau if a step skips over a feature, so PeakCurrent
// is preferred whenever the metric is analytically tractable.
func (p Parameters) GridSearchCurrent(m Metric) float64 {
	floor := p.MinCurrent()
	lo, hi := floor, p.MaxCurrent
	step := (p.MaxCurrent - floor) / config.GridSteps

	best := math.Inf(-1)
	bestCurrent := floor

	for {
		improved := false
		for current := lo; current <= hi; {
			if v := m.value(p.Evaluate(current)); v > best {
				improved = true
				best = v
				bestCurrent = current
			}
			if current == hi {
				break
			}
			current += step
			if current > hi {
				current = hi // land exactly on the window edge once
			}
		}

		if !improved {
			break
		}

		lo = math.Max(bestCurrent-step, floor)
		hi = math.Min(bestCurrent+step, p.MaxCurrent)
		step /= 10

		if math.Max(hi-bestCurrent, bestCurrent-lo) < config.GridTolerance {
			break
		}
	}

	return bestCurrent
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
