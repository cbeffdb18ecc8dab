// Package reddsa implements a RedDSA-style Schnorr signature scheme whose
// nonce and challenge are derived with an algebraic permutation rather than a
// general-purpose digest, so that signatures can be verified cheaply inside a
// zero-knowledge circuit over the same field.
//
// # Keys
//
// The only long-lived secret is a 32-byte seed. DeriveKeys expands it with a
// secure hash (SHA-512 by default; BLAKE2b-512, SHAKE256 and HKDF-SHA512 are
// selectable) into 64 bytes: the first half, reduced mod
// the group order n, is the signing scalar s; the second half is the nonce
// key, which only ever feeds nonce derivation. The public key is the encoding
// of A = G·s. Key material is re-derived on every call and never cached.
//
// # Signing
//
//  1. r = H(NONCE_TAG, nonceKey, A, M); if r = 0 the nonce key is extended
//     with a single 0x01 byte and r is derived once more.
//  2. R = G·r.
//  3. e = H(CHALLENGE_TAG, R, A, M).
//  4. S = r + e·s mod n, as 32 big-endian bytes.
//
// H is the four-input hash-to-scalar of package poseidon. The two tags must
// differ.
//
// # Verification
//
// Verify decodes R and A, rejects the identity, small-order and
// non-torsion-free public keys, reduces S mod n, recomputes e from the
// untrusted inputs and checks G·S = R + A·e by comparing encodings in
// constant time. It never returns an error; VerifyDetailed exposes the reason
// a signature was rejected.
//
// # Errors
//
// Sign and DeriveKeys report ErrInvalidKey when the signing scalar would be
// zero and ErrNonceDerivation when both nonce attempts yield zero. New reports
// ErrConfiguration when the hash field modulus differs from the group order or
// the tags are unusable.
package reddsa
