package reddsa

import "github.com/pkg/errors"

// Signature is a pair (R, S): R is an encoded group element and S a
// big-endian integer. Verification reduces S mod n before use.
type Signature struct {
	R []byte
	S [ScalarSize]byte
}

// Bytes returns R followed by S.
func (sig Signature) Bytes() []byte {
	out := make([]byte, 0, len(sig.R)+ScalarSize)
	out = append(out, sig.R...)
	return append(out, sig.S[:]...)
}

// ParseSignature splits R‖S for the scheme's group. Only the length is
// checked here; the contents are checked by Verify.
func (s *Scheme) ParseSignature(b []byte) (Signature, error) {
	n := s.group.EncodedLen()
	if len(b) != n+ScalarSize {
		return Signature{}, errors.Wrapf(ErrDecode, "signature must be %d bytes, got %d", n+ScalarSize, len(b))
	}
	sig := Signature{R: append([]byte(nil), b[:n]...)}
	copy(sig.S[:], b[n:])
	return sig, nil
}
