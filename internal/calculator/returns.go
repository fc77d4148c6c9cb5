package calculator

import (
	"errors"
	"fmt"
	"math"
)

// DailyReturns computes simple daily returns from consecutive closes:
// r[i] = (p[i+1] - p[i]) / p[i]. The result is one element shorter than
// the input.
func DailyReturns(prices []float64) ([]float64, error) {
	if len(prices) < 2 {
		return nil, errors.New("need at least 2 prices for daily returns")
	}
	returns := make([]float64, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		prev := prices[i-1]
		if prev <= 0 {
			return nil, fmt.Errorf("non-positive price %.4f at index %d", prev, i-1)
		}
		returns[i-1] = (prices[i] - prev) / prev
	}
	return returns, nil
}

// CumulativeGrowth returns the running product of (1 + r), seeded at 1.0:
// the value of one unit invested at the start of the return series.
func CumulativeGrowth(returns []float64) []float64 {
	growth := make([]float64, len(returns))
	acc := 1.0
	for i, r := range returns {
		acc *= 1 + r
		growth[i] = acc
	}
	return growth
}

// Mean returns the arithmetic mean, 0 for an empty slice.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// SampleStdDev returns the sample standard deviation (n-1 denominator),
// 0 when fewer than two observations are given.
func SampleStdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	mean := Mean(xs)
	variance := 0.0
	for _, x := range xs {
		diff := x - mean
		variance += diff * diff
	}
	variance /= float64(len(xs) - 1)
	return math.Sqrt(variance)
}
