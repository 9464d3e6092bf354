package pricing

// divRoundHalfEven divides num by den (den > 0, num >= 0) rounding to the
// nearest integer and ties to even.
func divRoundHalfEven(num, den int64) int64 {
	q, r := num/den, num%den
	switch {
	case 2*r > den:
		return q + 1
	case 2*r == den && q%2 == 1:
		return q + 1
	}
	return q
}
