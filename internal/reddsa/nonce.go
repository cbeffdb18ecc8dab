package reddsa

import (
	"math/big"

	"tokamakauth/internal/util/memzero"
)

// nonceDisambiguator is appended to the nonce key for the second attempt.
const nonceDisambiguator = 0x01

// nonceResult is the outcome of deriveNonce. Exactly one of r and err is set;
// attempt is 0 when the plain nonce key produced r and 1 when the extended
// key did.
type nonceResult struct {
	r       *big.Int
	attempt int
	err     error
}

// deriveNonce evaluates h on the nonce key and, if that yields zero, once
// more on the key followed by a single disambiguation byte. It never returns
// a zero nonce.
func deriveNonce(h func(key []byte) (*big.Int, error), nonceKey []byte) nonceResult {
	keys := [][]byte{
		nonceKey,
		append(append(make([]byte, 0, len(nonceKey)+1), nonceKey...), nonceDisambiguator),
	}
	defer memzero.Zero(keys[1])

	for attempt, key := range keys {
		r, err := h(key)
		if err != nil {
			return nonceResult{err: err}
		}
		if r.Sign() != 0 {
			return nonceResult{r: r, attempt: attempt}
		}
	}
	return nonceResult{err: ErrNonceDerivation}
}
