// Package conv provides the safe integer conversion helper used when
// parsing state and symbol ids out of external text (the .mata format,
// YAML fixtures): a narrowing conversion is checked instead of silently
// truncating on malformed input.
package conv

import "math"

// IntToUint32 safely converts an int to uint32.
// Panics if n < 0 or n > math.MaxUint32.
//
//go:inline
func IntToUint32(n int) uint32 {
	// Use uint for comparison to avoid overflow on 32-bit platforms
	// where int cannot represent math.MaxUint32
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("integer overflow: int value out of uint32 range")
	}
	return uint32(n)
}
