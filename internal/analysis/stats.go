package analysis

import (
	"math"
	"sort"
)

// Summary describes a sample of per-trial measurements.
type Summary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}

// Summarize computes the summary statistics of x. Std is the sample
// standard deviation and is zero for fewer than two values.
func Summarize(x []float64) Summary {
	n := len(x)
	if n == 0 {
		return Summary{}
	}
	cp := append([]float64(nil), x...)
	sort.Float64s(cp)

	var m float64
	for _, v := range x {
		m += v
	}
	m /= float64(n)

	var std float64
	if n > 1 {
		var m2 float64
		for _, v := range x {
			d := v - m
			m2 += d * d
		}
		std = math.Sqrt(m2 / float64(n-1))
	}

	return Summary{
		Count:  n,
		Mean:   m,
		Std:    std,
		Min:    cp[0],
		Q1:     quantileSorted(cp, 0.25),
		Median: quantileSorted(cp, 0.5),
		Q3:     quantileSorted(cp, 0.75),
		Max:    cp[n-1],
	}
}

// quantileSorted interpolates linearly between the closest ranks.
func quantileSorted(sorted []float64, p float64) float64 {
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := p * float64(len(sorted)-1)
	l := int(math.Floor(pos))
	r := int(math.Ceil(pos))
	if l == r {
		return sorted[l]
	}
	w := pos - float64(l)
	return sorted[l]*(1-w) + sorted[r]*w
}

// countHistogram buckets integer counts into one bin per value in
// [min, max]. It returns the first value and the bin counts.
func countHistogram(values []int) (first int, counts []int) {
	if len(values) == 0 {
		return 0, nil
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	counts = make([]int, hi-lo+1)
	for _, v := range values {
		counts[v-lo]++
	}
	return lo, counts
}
