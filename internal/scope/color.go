package scope

import "math"

// Luma computes BT.709 luminance from 8-bit RGB, rounded and clamped
// to [0, 255].
func Luma(r, g, b byte) int {
	y := 0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)
	v := int(math.Round(y))
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// Chroma scaling divisors. These match the BT.709 YCbCr derivation
// (2*(1-Kb) and 2*(1-Kr)) and must not be altered: vectorscope placement
// is defined against them bit-for-bit.
const (
	cbDivisor = 1.8556
	crDivisor = 1.5748
)

// ChromaCbCr converts 8-bit RGB to the YCbCr color-difference components
// used for vectorscope placement. Both results lie in [-0.5, 0.5] for any
// valid input; (0, 0) is neutral gray.
func ChromaCbCr(r, g, b byte) (cb, cr float64) {
	rf := float64(r) / 255
	gf := float64(g) / 255
	bf := float64(b) / 255

	y := 0.2126*rf + 0.7152*gf + 0.0722*bf
	cb = (bf - y) / cbDivisor
	cr = (rf - y) / crDivisor
	return cb, cr
}
