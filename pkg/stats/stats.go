package stats

import (
	"math"
	"sort"
)

// Mean computes the average of a slice.
func Mean(x []float64) float64 {
	n := len(x)
	if n == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range x {
		sum += v
	}
	return sum / float64(n)
}

// Variance computes the population variance of a slice.
// Two passes: the deviations are taken from the computed mean.
func Variance(x []float64) float64 {
	n := float64(len(x))
	if n == 0 {
		return 0
	}
	mean := Mean(x)
	ss, comp := 0.0, 0.0
	for _, v := range x {
		d := v - mean
		ss += d * d
		comp += d
	}
	return math.Max(0, (ss-comp*comp/n)/n)
}

// Std computes the population standard deviation of a slice.
func Std(x []float64) float64 {
	return math.Sqrt(Variance(x))
}

// Median returns the median value of the slice (allocates a copy).
func Median(x []float64) float64 {
	n := len(x)
	if n == 0 {
		return math.NaN()
	}
	cp := make([]float64, n)
	copy(cp, x)
	sort.Float64s(cp)
	mid := n >> 1
	if n&1 == 0 {
		return (cp[mid-1] + cp[mid]) * 0.5
	}
	return cp[mid]
}

// Mode returns the most frequent value in the slice. Ties go to the value
// encountered first. ok is false for an empty slice.
func Mode[T comparable](x []T) (mode T, ok bool) {
	if len(x) == 0 {
		return mode, false
	}
	counts := make(map[T]int)
	for _, v := range x {
		counts[v]++
	}
	best := 0
	for _, v := range x {
		if c := counts[v]; c > best {
			best = c
			mode = v
		}
	}
	return mode, true
}

// Distinct returns the distinct values of x in first-encountered order.
func Distinct[T comparable](x []T) []T {
	seen := make(map[T]struct{})
	var out []T
	for _, v := range x {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}

// Correlation computes the Pearson correlation coefficient between two slices.
// It is NaN when the lengths differ, the slices are empty or either has zero variance.
func Correlation(x, y []float64) float64 {
	n := len(x)
	if n == 0 || len(y) != n {
		return math.NaN()
	}
	mx, my := Mean(x), Mean(y)
	var sxy, sxx, syy float64
	for i := range x {
		dx, dy := x[i]-mx, y[i]-my
		sxy += dx * dy
		sxx += dx * dx
		syy += dy * dy
	}
	if sxx == 0 || syy == 0 {
		return math.NaN()
	}
	r := sxy / math.Sqrt(sxx*syy)
	// rounding can push |r| marginally past 1
	return math.Max(-1, math.Min(1, r))
}
