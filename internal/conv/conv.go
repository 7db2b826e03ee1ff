// Package conv provides safe integer conversion helpers for the bytecode
// interpreter and its surrounding tooling.
//
// These functions perform bounds checking before narrowing integer
// conversions, so a value that doesn't fit is caught at the conversion site
// instead of silently wrapping. They panic on overflow: reaching one means
// a caller violated a size contract (too many instructions, a position
// outside the input) that the type system can't express, which is a
// programmer error rather than a runtime condition to recover from.
package conv

import "math"

// IntToUint32 safely converts an int to uint32.
// Panics if n < 0 or n > math.MaxUint32.
//
//go:inline
func IntToUint32(n int) uint32 {
	// Use uint for comparison to avoid overflow on 32-bit platforms
	// where int cannot represent math.MaxUint32.
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("conv: integer overflow converting int to uint32")
	}
	return uint32(n)
}

// IntToUint16 safely converts an int to uint16.
// Panics if n < 0 or n > math.MaxUint16.
//
//go:inline
func IntToUint16(n int) uint16 {
	if n < 0 || n > math.MaxUint16 {
		panic("conv: integer overflow converting int to uint16")
	}
	return uint16(n)
}

// IntToInt32 safely converts an int to int32.
// Panics if n is outside the int32 range.
//
//go:inline
func IntToInt32(n int) int32 {
	if n < math.MinInt32 || n > math.MaxInt32 {
		panic("conv: integer overflow converting int to int32")
	}
	return int32(n)
}
