package util

// Clamp bounds v to the closed interval [lo, hi]. When hi < lo the result is lo.
func Clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Sign returns -1, 0 or 1 according to the sign of f.
func Sign(f float64) int {
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	}
	return 0
}
