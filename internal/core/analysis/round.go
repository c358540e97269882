package analysis

import "strconv"

// round rounds x to the given number of decimal places using
// round-half-to-even on the exact binary value of x.
func round(x float64, places int) float64 {
	v, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', places, 64), 64)
	if err != nil {
		return x
	}
	return v
}
