// Package group abstracts the prime-order group the signature scheme runs in.
//
// Group is a capability interface: generator multiplication, point addition
// and scalar multiplication, a fixed-length compressed encoding, and the
// identity, small-order and torsion-free tests verification needs. Scalars
// are *big.Int values; implementations reduce them mod Order().
//
// Two implementations of edwards25519 are provided. NewEdwards25519 is backed
// by filippo.io/edwards25519 and NewKyberEdwards25519 by the kyber suite. Both
// use the standard 32-byte encoding, so values produced by one decode under
// the other.
//
// NewJubjub is the Jubjub curve over the BLS12-381 scalar field, backed by
// gnark-crypto. Its order is about 2^251.9 and its cofactor is 8. The base
// point and the encoding (y little-endian, parity of x in bit 255) are those
// used by other Jubjub RedDSA implementations.
//
// Decode accepts canonical encodings only: a byte string that decodes to a
// point but does not re-encode to itself is rejected.
package group
