package ds

import (
	"math"
)

// RoundPlaces rounds x to the given number of decimal places. Axial
// coordinates are rounded before being used as interpolation keys so that
// binary floating-point noise cannot break exact-match comparisons.
func RoundPlaces(x float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(x*shift) / shift
}
