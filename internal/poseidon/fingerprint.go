package poseidon

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"math/big"
)

// Fingerprint returns a short hex identifier of the parameter set.
//
// It hashes the field name, the design values and every MDS and round
// constant entry in fixed-width big-endian form with SHA-256 and truncates
// to 10 bytes (20 hex chars). Equal parameter sets have equal fingerprints.
func (p *Params) Fingerprint() string {
	h := sha256.New()
	h.Write([]byte(p.Field.Name()))
	h.Write([]byte{0})

	var dims [16]byte
	binary.BigEndian.PutUint32(dims[0:], uint32(p.Width))
	binary.BigEndian.PutUint32(dims[4:], uint32(p.FullRounds))
	binary.BigEndian.PutUint32(dims[8:], uint32(p.PartialRounds))
	binary.BigEndian.PutUint32(dims[12:], uint32(p.SboxPower))
	h.Write(dims[:])

	for _, m := range [][][]*big.Int{p.MDS, p.RoundConstants} {
		for _, row := range m {
			for _, x := range row {
				h.Write(p.Field.Bytes(x))
			}
		}
	}
	sum := h.Sum(nil)
	return hex.EncodeToString(sum[:10])
}
