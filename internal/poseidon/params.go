package poseidon

import (
	"math/big"

	"tokamakauth/internal/field"
)

// Params is a complete permutation parameter set.
type Params struct {
	Field          *field.Field
	Width          int
	FullRounds     int
	PartialRounds  int
	SboxPower      int
	MDS            [][]*big.Int
	RoundConstants [][]*big.Int
}

// Rounds returns FullRounds + PartialRounds.
func (p *Params) Rounds() int { return p.FullRounds + p.PartialRounds }

// Clone returns a deep copy of p.
func (p *Params) Clone() *Params {
	out := *p
	out.MDS = cloneMatrix(p.MDS)
	out.RoundConstants = cloneMatrix(p.RoundConstants)
	return &out
}

// Validate checks the shape of p and returns a deep copy of it.
//
// It fails with ErrConfiguration when the MDS matrix is not t×t, when a
// round-constant row does not hold t entries, when the number of rows differs
// from FullRounds+PartialRounds, or when an entry is not a canonical element
// of the field. The design parameters themselves are checked as well: t ≥ 2,
// an even positive number of full rounds, and an S-box exponent of 3, 5 or 7
// that is a bijection on the field.
func Validate(p *Params) (*Params, error) {
	if p == nil {
		return nil, configError("nil parameters")
	}
	if err := checkDesign(p.Field, p.Width, p.FullRounds, p.PartialRounds, p.SboxPower); err != nil {
		return nil, err
	}
	t := p.Width

	if len(p.MDS) != t {
		return nil, configError("mds must be %dx%d, got %d rows", t, t, len(p.MDS))
	}
	for i, row := range p.MDS {
		if len(row) != t {
			return nil, configError("mds must be %dx%d, row %d has %d entries", t, t, i, len(row))
		}
		if err := checkEntries(p.Field, row, "mds", i); err != nil {
			return nil, err
		}
	}

	if len(p.RoundConstants) != p.Rounds() {
		return nil, configError("roundConstants must have %d rows (%d full + %d partial), got %d",
			p.Rounds(), p.FullRounds, p.PartialRounds, len(p.RoundConstants))
	}
	for i, row := range p.RoundConstants {
		if len(row) != t {
			return nil, configError("roundConstants rows must each be length %d, row %d has %d", t, i, len(row))
		}
		if err := checkEntries(p.Field, row, "roundConstants", i); err != nil {
			return nil, err
		}
	}
	return p.Clone(), nil
}

func checkDesign(f *field.Field, t, fullRounds, partialRounds, alpha int) error {
	if f == nil {
		return configError("missing field")
	}
	if t < 2 || t >= 1<<12 {
		return configError("state width %d out of range", t)
	}
	if fullRounds <= 0 || fullRounds%2 != 0 || fullRounds >= 1<<10 {
		return configError("full round count %d must be even, positive and below 1024", fullRounds)
	}
	if partialRounds < 0 || partialRounds >= 1<<10 {
		return configError("partial round count %d out of range", partialRounds)
	}
	switch alpha {
	case 3, 5, 7:
	default:
		return configError("unsupported S-box power %d", alpha)
	}
	pm1 := new(big.Int).Sub(f.Modulus(), big.NewInt(1))
	if new(big.Int).GCD(nil, nil, big.NewInt(int64(alpha)), pm1).Cmp(big.NewInt(1)) != 0 {
		return configError("x^%d is not a permutation of %s", alpha, f.Name())
	}
	return nil
}

func checkEntries(f *field.Field, row []*big.Int, name string, i int) error {
	for j, x := range row {
		if !f.IsCanonical(x) {
			return configError("%s[%d][%d] is not a canonical %s element", name, i, j, f.Name())
		}
	}
	return nil
}

func cloneMatrix(m [][]*big.Int) [][]*big.Int {
	if m == nil {
		return nil
	}
	out := make([][]*big.Int, len(m))
	for i, row := range m {
		out[i] = make([]*big.Int, len(row))
		for j, x := range row {
			if x != nil {
				out[i][j] = new(big.Int).Set(x)
			}
		}
	}
	return out
}

// Equal reports whether p and q describe the same permutation.
func (p *Params) Equal(q *Params) bool {
	if p == nil || q == nil {
		return p == q
	}
	if p.Field == nil || q.Field == nil || !p.Field.HasModulus(q.Field.Modulus()) {
		return false
	}
	return p.Width == q.Width &&
		p.FullRounds == q.FullRounds &&
		p.PartialRounds == q.PartialRounds &&
		p.SboxPower == q.SboxPower &&
		matrixEqual(p.MDS, q.MDS) &&
		matrixEqual(p.RoundConstants, q.RoundConstants)
}

func matrixEqual(a, b [][]*big.Int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] == nil || b[i][j] == nil {
				if a[i][j] != b[i][j] {
					return false
				}
				continue
			}
			if a[i][j].Cmp(b[i][j]) != 0 {
				return false
			}
		}
	}
	return true
}
