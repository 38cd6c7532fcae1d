package neat

import (
	"math"
)

// clamp restricts a value to a given range [minVal, maxVal].
func clamp(value, minVal, maxVal float64) float64 {
	return math.Max(minVal, math.Min(value, maxVal))
}

// Mean calculates the average of a slice of float64 values.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// SquaredError returns the sum of squared differences between got and want.
// Extra elements in the longer slice are ignored.
func SquaredError(got, want []float64) float64 {
	n := len(got)
	if len(want) < n {
		n = len(want)
	}
	total := 0.0
	for i := 0; i < n; i++ {
		d := got[i] - want[i]
		total += d * d
	}
	return total
}
