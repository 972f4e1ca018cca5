// Package nibble owns the 4-bit unsigned integer value type.
//
// Ownership boundary:
// - validated construction (checked, truncating, clamping, lexical, must)
// - overflow-reporting arithmetic and bitwise logic
// - ordering, closed-range iteration, scalar serialization
//
// Byte packing lives in the pair and array subpackages.
package nibble
