package reddsa

import (
	"github.com/pkg/errors"

	"tokamakauth/internal/poseidon"
)

var (
	// ErrConfiguration is poseidon.ErrConfiguration.
	ErrConfiguration = poseidon.ErrConfiguration
	// ErrInvalidKey is returned when a seed yields the zero signing scalar.
	ErrInvalidKey = errors.New("invalid secret key")
	// ErrNonceDerivation is returned when both nonce attempts produce zero.
	ErrNonceDerivation = errors.New("nonce derivation failed")
	// ErrDecode is returned by VerifyDetailed for malformed encodings.
	ErrDecode = errors.New("malformed signature or public key encoding")
	// ErrVerification is returned by VerifyDetailed for well-formed but
	// invalid signatures.
	ErrVerification = errors.New("signature verification failed")
)
