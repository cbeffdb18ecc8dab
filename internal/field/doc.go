// Package field describes the prime fields used by the permutation and the
// signature scheme.
//
// A Field is an immutable value carrying a modulus together with its bit and
// byte lengths. Elements are plain *big.Int values kept in [0, p).
//
// # Encoding
//
// The canonical external encoding of an element is the fixed-width
// big-endian byte string rendered as lowercase hexadecimal with a literal
// "0x" prefix, zero-padded to the byte length of the modulus. For a 255-bit
// field that is "0x" followed by exactly 64 hex digits.
package field
