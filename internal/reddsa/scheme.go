package reddsa

import (
	"bytes"
	"crypto/subtle"
	"math/big"

	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/pkg/errors"

	"tokamakauth/internal/group"
	"tokamakauth/internal/poseidon"
	"tokamakauth/internal/util/memzero"
)

var log = logger.GetOrCreate("tokamakauth/reddsa")

// Domain-separation tags of protocol version 1.
const (
	NonceTag     = "TokamakAuth-EDDSA-POSEIDON-NONCE-v1"
	ChallengeTag = "TokamakAuth-EDDSA-POSEIDON-CHALLENGE-v1"
)

// ScalarSize is the length of the encoded S component.
const ScalarSize = 32

// Hasher is the hash-to-scalar capability the scheme needs.
// *poseidon.Permutation implements it.
type Hasher interface {
	Modulus() *big.Int
	HashToScalar(chunks ...[]byte) (*big.Int, error)
}

// Scheme signs and verifies for one group and hash pair. It holds no mutable
// state and is safe for concurrent use.
type Scheme struct {
	group        group.Group
	hash         Hasher
	order        *big.Int
	expand       SeedExpander
	nonceTag     []byte
	challengeTag []byte
}

// Option customises a Scheme.
type Option func(*Scheme)

// WithSeedExpander replaces the default SHA-512 seed expander.
func WithSeedExpander(e SeedExpander) Option {
	return func(s *Scheme) { s.expand = e }
}

// WithTags replaces the domain-separation tags. Signatures made with other
// tags do not interoperate with the defaults.
func WithTags(nonceTag, challengeTag []byte) Option {
	return func(s *Scheme) {
		s.nonceTag = append([]byte(nil), nonceTag...)
		s.challengeTag = append([]byte(nil), challengeTag...)
	}
}

// New binds a group and a hash. The hash field modulus must equal the group
// order: challenges and nonces are used directly as scalars.
func New(g group.Group, h Hasher, opts ...Option) (*Scheme, error) {
	if g == nil || h == nil {
		return nil, errors.Wrap(ErrConfiguration, "group and hasher are required")
	}
	s := &Scheme{
		group:        g,
		hash:         h,
		order:        g.Order(),
		expand:       SHA512,
		nonceTag:     []byte(NonceTag),
		challengeTag: []byte(ChallengeTag),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.order.Cmp(h.Modulus()) != 0 {
		return nil, errors.Wrapf(ErrConfiguration, "hash modulus %x differs from %s order %x",
			h.Modulus(), g.Name(), s.order)
	}
	if s.order.BitLen() > 8*ScalarSize {
		return nil, errors.Wrapf(ErrConfiguration, "group order does not fit %d bytes", ScalarSize)
	}
	if w, ok := h.(interface{ Width() int }); ok && w.Width() != poseidon.HashArity {
		return nil, errors.Wrapf(ErrConfiguration, "hash width %d, need %d", w.Width(), poseidon.HashArity)
	}
	if s.expand == nil {
		return nil, errors.Wrap(ErrConfiguration, "nil seed expander")
	}
	if len(s.nonceTag) == 0 || len(s.challengeTag) == 0 {
		return nil, errors.Wrap(ErrConfiguration, "empty domain-separation tag")
	}
	if bytes.Equal(s.nonceTag, s.challengeTag) {
		return nil, errors.Wrap(ErrConfiguration, "nonce and challenge tags must differ")
	}
	log.Debug("signature scheme ready", "group", g.Name(), "nonceTag", string(s.nonceTag),
		"challengeTag", string(s.challengeTag))
	return s, nil
}

// Group returns the group the scheme signs in.
func (s *Scheme) Group() group.Group { return s.group }

// Sign produces a signature of message under the key derived from seed.
func (s *Scheme) Sign(message []byte, seed Seed) (Signature, error) {
	km, err := s.DeriveKeys(seed)
	if err != nil {
		return Signature{}, err
	}
	defer km.Wipe()

	nonce := deriveNonce(func(key []byte) (*big.Int, error) {
		return s.hash.HashToScalar(s.nonceTag, key, km.PublicKey, message)
	}, km.NonceKey[:])
	if nonce.err != nil {
		return Signature{}, nonce.err
	}
	r := nonce.r
	defer memzero.Int(r)

	rBytes := s.group.BaseMul(r).Bytes()
	e, err := s.hash.HashToScalar(s.challengeTag, rBytes, km.PublicKey, message)
	if err != nil {
		return Signature{}, err
	}

	sc := new(big.Int).Mul(e, km.Scalar)
	sc.Add(sc, r)
	sc.Mod(sc, s.order)

	sig := Signature{R: rBytes}
	sc.FillBytes(sig.S[:])
	return sig, nil
}

// Verify reports whether sig is a valid signature of message under
// publicKey. Every failure, including malformed input, yields false.
func (s *Scheme) Verify(message, publicKey []byte, sig Signature) bool {
	if err := s.VerifyDetailed(message, publicKey, sig); err != nil {
		log.Trace("signature rejected", "error", err.Error())
		return false
	}
	return true
}

// VerifyDetailed is Verify with the rejection reason: nil for a valid
// signature, otherwise an error wrapping ErrDecode or ErrVerification.
func (s *Scheme) VerifyDetailed(message, publicKey []byte, sig Signature) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Wrapf(ErrDecode, "%v", r)
		}
	}()

	R, err := s.group.Decode(sig.R)
	if err != nil {
		return errors.Wrapf(ErrDecode, "R: %v", err)
	}
	if R.IsIdentity() {
		return errors.Wrap(ErrVerification, "R is the identity")
	}

	A, err := s.group.Decode(publicKey)
	if err != nil {
		return errors.Wrapf(ErrDecode, "public key: %v", err)
	}
	switch {
	case A.IsIdentity():
		return errors.Wrap(ErrVerification, "public key is the identity")
	case s.group.IsSmallOrder(A):
		return errors.Wrap(ErrVerification, "public key has small order")
	case !s.group.IsTorsionFree(A):
		return errors.Wrap(ErrVerification, "public key is not torsion-free")
	}

	S := new(big.Int).SetBytes(sig.S[:])
	S.Mod(S, s.order)

	e, err := s.hash.HashToScalar(s.challengeTag, sig.R, publicKey, message)
	if err != nil {
		return errors.Wrapf(ErrVerification, "challenge: %v", err)
	}

	left := s.group.BaseMul(S)
	right := s.group.Add(R, s.group.Mul(A, e))
	if subtle.ConstantTimeCompare(left.Bytes(), right.Bytes()) != 1 {
		return ErrVerification
	}
	return nil
}
