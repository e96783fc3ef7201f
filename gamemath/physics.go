package gamemath

// AtMostZero returns v, or 0 when v is positive.
func AtMostZero(v float64) float64 {
	if v > 0 {
		return 0
	}
	return v
}

// AtLeastZero returns v, or 0 when v is negative.
func AtLeastZero(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
