package chart

import "math"

// NiceTicks returns evenly spaced axis values covering [min, max].
// The spacing is snapped to 1, 2, 5 or 10 times a power of ten and the
// ticks run from floor(min/spacing) to ceil(max/spacing) steps.
// A zero range yields the single tick [min].
func NiceTicks(min, max float64, count int) []float64 {
	if max < min {
		min, max = max, min
	}
	span := max - min
	if span == 0 || math.IsNaN(span) || math.IsInf(span, 0) {
		return []float64{min}
	}
	if count < 2 {
		count = 2
	}

	spacing, exponent := niceSpacing(span / float64(count-1))
	lo := math.Floor(min / spacing)
	hi := math.Ceil(max / spacing)

	ticks := make([]float64, 0, int(hi-lo)+1)
	for k := lo; k <= hi; k++ {
		v := k * spacing
		if exponent < 0 {
			v = roundTo(v, -exponent)
		}
		ticks = append(ticks, v)
	}
	return ticks
}

// niceSpacing snaps a raw step to {1,2,5,10}x10^exp.
func niceSpacing(rough float64) (float64, int) {
	exponent := int(math.Floor(math.Log10(rough)))
	magnitude := math.Pow(10, float64(exponent))
	fraction := rough / magnitude

	var nice float64
	switch {
	case fraction < 1.5:
		nice = 1
	case fraction < 3:
		nice = 2
	case fraction < 7:
		nice = 5
	default:
		nice = 10
	}
	return nice * magnitude, exponent
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
