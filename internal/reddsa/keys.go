package reddsa

import (
	"crypto/rand"
	"crypto/sha512"
	"io"
	"math/big"

	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/sha3"

	"tokamakauth/internal/util/memzero"
)

const (
	// SeedSize is the length of a secret seed.
	SeedSize = 32
	// NonceKeySize is the length of the derived nonce key.
	NonceKeySize = 32
	// ExpandedSize is the minimum seed expander output.
	ExpandedSize = 64
)

// Seed is the long-lived secret all key material is derived from.
type Seed [SeedSize]byte

// Slice returns the seed as a []byte.
func (s *Seed) Slice() []byte { return s[:] }

// KeyMaterial is derived from a Seed on demand.
type KeyMaterial struct {
	Scalar    *big.Int
	NonceKey  [NonceKeySize]byte
	PublicKey []byte
}

// Wipe clears the secret parts of km.
func (km *KeyMaterial) Wipe() {
	memzero.Zero(km.NonceKey[:])
	memzero.Int(km.Scalar)
}

// SeedExpander maps a seed to at least ExpandedSize pseudorandom bytes.
type SeedExpander func(seed []byte) []byte

// Expander names accepted by ExpanderByName.
const (
	ExpanderSHA512   = "sha512"
	ExpanderBLAKE2b  = "blake2b-512"
	ExpanderSHAKE256 = "shake256"
	ExpanderHKDF     = "hkdf-sha512"
)

// hkdfInfo labels the HKDF expansion.
const hkdfInfo = "TokamakAuth-EDDSA-SEED-v1"

// SHA512 is the default expander and the one other implementations use.
func SHA512(seed []byte) []byte {
	h := sha512.Sum512(seed)
	return h[:]
}

// BLAKE2b512 expands with unkeyed BLAKE2b-512.
func BLAKE2b512(seed []byte) []byte {
	h := blake2b.Sum512(seed)
	return h[:]
}

// SHAKE256 expands with 64 bytes of SHAKE256 output.
func SHAKE256(seed []byte) []byte {
	out := make([]byte, ExpandedSize)
	sha3.ShakeSum256(out, seed)
	return out
}

// HKDFSHA512 expands with HKDF-SHA512, no salt and a fixed info label.
func HKDFSHA512(seed []byte) []byte {
	r := hkdf.New(sha512.New, seed, nil, []byte(hkdfInfo))
	out := make([]byte, ExpandedSize)
	_, _ = io.ReadFull(r, out)
	return out
}

// ExpanderByName returns the expander registered under name.
func ExpanderByName(name string) (SeedExpander, error) {
	switch name {
	case ExpanderSHA512:
		return SHA512, nil
	case ExpanderBLAKE2b:
		return BLAKE2b512, nil
	case ExpanderSHAKE256:
		return SHAKE256, nil
	case ExpanderHKDF:
		return HKDFSHA512, nil
	}
	return nil, errors.Wrapf(ErrConfiguration, "unknown seed expander %q", name)
}

// GenerateSeed draws a seed from r, or from crypto/rand when r is nil. If the
// seed read as a big-endian integer is a multiple of the group order, the low
// bit of its first byte is flipped; no further draws are made.
func (s *Scheme) GenerateSeed(r io.Reader) (Seed, error) {
	if r == nil {
		r = rand.Reader
	}
	var seed Seed
	if _, err := io.ReadFull(r, seed[:]); err != nil {
		return Seed{}, errors.Wrap(err, "read seed")
	}
	if new(big.Int).Mod(new(big.Int).SetBytes(seed[:]), s.order).Sign() == 0 {
		seed[0] ^= 1
	}
	return seed, nil
}

// DeriveKeys expands seed into the signing scalar, the nonce key and the
// encoded public key. It fails with ErrInvalidKey when the scalar is zero.
func (s *Scheme) DeriveKeys(seed Seed) (KeyMaterial, error) {
	h := s.expand(seed[:])
	defer memzero.Zero(h)
	if len(h) < ExpandedSize {
		return KeyMaterial{}, errors.Wrapf(ErrConfiguration,
			"seed expander returned %d bytes, need %d", len(h), ExpandedSize)
	}

	sc := new(big.Int).SetBytes(h[:32])
	sc.Mod(sc, s.order)
	if sc.Sign() == 0 {
		return KeyMaterial{}, ErrInvalidKey
	}

	km := KeyMaterial{Scalar: sc}
	copy(km.NonceKey[:], h[32:ExpandedSize])
	km.PublicKey = s.group.BaseMul(sc).Bytes()
	return km, nil
}

// PublicKey returns the encoding of G·sc. A scalar that is zero mod n is
// rejected with ErrInvalidKey instead of being replaced by a fixed value.
func (s *Scheme) PublicKey(sc *big.Int) ([]byte, error) {
	if sc == nil || new(big.Int).Mod(sc, s.order).Sign() == 0 {
		return nil, ErrInvalidKey
	}
	return s.group.BaseMul(sc).Bytes(), nil
}
