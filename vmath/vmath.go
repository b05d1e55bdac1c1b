package vmath

// AbsInt returns the absolute value of an int
func AbsInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Chebyshev returns max(|dx|, |dy|), the king-move distance on a grid
func Chebyshev(x1, y1, x2, y2 int) int {
	return max(AbsInt(x1-x2), AbsInt(y1-y2))
}

// Clamp bounds v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Linspace returns n evenly spaced values over [start, stop], both ends included
// n == 1 yields start only, n <= 0 yields nil
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	// Pin the endpoint against accumulated rounding
	out[n-1] = stop
	return out
}
