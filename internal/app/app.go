package app

import (
	"io"

	"github.com/pkg/errors"

	"tokamakauth/internal/reddsa"
)

// SmokeMessage is the message the self-test signs.
const SmokeMessage = "Hello from TokamakAuth!"

// SmokeResult holds the key and signature of the last self-test iteration.
type SmokeResult struct {
	Iterations int
	PublicKey  []byte
	Signature  reddsa.Signature
}

// Smoke runs the sign/verify self-test: each iteration draws a fresh seed
// from rand, signs SmokeMessage, and requires the signature to verify and a
// signature over a modified message to fail.
func (w *Wire) Smoke(iterations int, rand io.Reader) (SmokeResult, error) {
	if iterations < 1 {
		return SmokeResult{}, errors.Errorf("iterations must be positive, got %d", iterations)
	}
	msg := []byte(SmokeMessage)
	tampered := append([]byte(SmokeMessage), '!')

	var res SmokeResult
	for i := 0; i < iterations; i++ {
		seed, err := w.Scheme.GenerateSeed(rand)
		if err != nil {
			return res, errors.Wrapf(err, "iteration %d", i)
		}
		km, err := w.Scheme.DeriveKeys(seed)
		if err != nil {
			return res, errors.Wrapf(err, "iteration %d", i)
		}
		km.Wipe()

		sig, err := w.Scheme.Sign(msg, seed)
		if err != nil {
			return res, errors.Wrapf(err, "iteration %d", i)
		}
		if err := w.Scheme.VerifyDetailed(msg, km.PublicKey, sig); err != nil {
			return res, errors.Wrapf(err, "iteration %d", i)
		}
		if w.Scheme.Verify(tampered, km.PublicKey, sig) {
			return res, errors.Errorf("iteration %d: signature verified for a modified message", i)
		}

		log.Trace("smoke iteration passed", "iteration", i)
		res = SmokeResult{Iterations: i + 1, PublicKey: km.PublicKey, Signature: sig}
	}
	return res, nil
}
