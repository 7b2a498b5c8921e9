package utils

import "math"

func ConstArray(N int, val float64) (v []float64) {
	v = make([]float64, N)
	for i := range v {
		v[i] = val
	}
	return
}

// Linspace returns N evenly spaced values from start to stop inclusive
func Linspace(start, stop float64, N int) (v []float64) {
	if N <= 0 {
		return
	}
	v = make([]float64, N)
	if N == 1 {
		v[0] = start
		return
	}
	step := (stop - start) / float64(N-1)
	for i := range v {
		v[i] = start + float64(i)*step
	}
	v[N-1] = stop
	return
}

// IsStrictlyIncreasing ignores differences below NODETOL
func IsStrictlyIncreasing(v []float64) bool {
	for i := 1; i < len(v); i++ {
		if v[i]-v[i-1] <= NODETOL {
			return false
		}
	}
	return true
}

func MaxAbs(v []float64) (m float64) {
	for _, val := range v {
		m = math.Max(m, math.Abs(val))
	}
	return
}
