package domain

import "math"

// InterpolateLinear fills missing (NaN) values along a series.
//
// Gaps between two observed values are filled linearly by position, so
// every step between neighbouring columns weighs the same regardless of
// the year labels. Gaps after the last observation take the last observed
// value. Gaps before the first observation are left missing: nothing is
// extrapolated backwards.
//
// The input is not modified.
func InterpolateLinear(values []float64) []float64 {
	out := append([]float64(nil), values...)

	prev := -1
	for i, v := range out {
		if math.IsNaN(v) {
			continue
		}
		if prev >= 0 && i-prev > 1 {
			span := float64(i - prev)
			step := (v - out[prev]) / span
			for k := prev + 1; k < i; k++ {
				out[k] = out[prev] + step*float64(k-prev)
			}
		}
		prev = i
	}

	if prev >= 0 {
		for k := prev + 1; k < len(out); k++ {
			out[k] = out[prev]
		}
	}

	return out
}
