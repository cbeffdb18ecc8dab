package group

import (
	"bytes"
	"math/big"

	"filippo.io/edwards25519"
	"github.com/pkg/errors"
)

// Edwards25519Name identifies the filippo.io/edwards25519 backend.
const Edwards25519Name = "edwards25519"

// edwards25519Order is L = 2^252 + 27742317777372353535851937790883648493.
var edwards25519Order, _ = new(big.Int).SetString(
	"1000000000000000000000000000000014def9dea2f79cd65812631a5cf5d3ed", 16)

// Edwards25519 is the prime-order subgroup of edwards25519.
type Edwards25519 struct {
	minusOne *edwards25519.Scalar
}

// NewEdwards25519 returns the filippo.io/edwards25519 backed group.
func NewEdwards25519() *Edwards25519 {
	one := make([]byte, 32)
	one[0] = 1
	s, err := new(edwards25519.Scalar).SetCanonicalBytes(one)
	if err != nil {
		panic(err)
	}
	return &Edwards25519{minusOne: new(edwards25519.Scalar).Negate(s)}
}

type edPoint struct{ p *edwards25519.Point }

func (e edPoint) Bytes() []byte { return e.p.Bytes() }

func (e edPoint) IsIdentity() bool {
	return e.p.Equal(edwards25519.NewIdentityPoint()) == 1
}

func (e edPoint) Equal(other Element) bool {
	o, ok := other.(edPoint)
	if !ok {
		return bytes.Equal(e.Bytes(), other.Bytes())
	}
	return e.p.Equal(o.p) == 1
}

// Name returns the registry name of the backend.
func (g *Edwards25519) Name() string { return Edwards25519Name }

// Order returns a copy of the prime subgroup order L.
func (g *Edwards25519) Order() *big.Int { return new(big.Int).Set(edwards25519Order) }

// EncodedLen returns the length of a compressed point.
func (g *Edwards25519) EncodedLen() int { return 32 }

// Generator returns the standard base point.
func (g *Edwards25519) Generator() Element {
	return edPoint{edwards25519.NewGeneratorPoint()}
}

// BaseMul returns G·k, with k reduced mod L.
func (g *Edwards25519) BaseMul(k *big.Int) Element {
	return edPoint{new(edwards25519.Point).ScalarBaseMult(g.scalar(k))}
}

// Mul returns p·k, with k reduced mod L.
func (g *Edwards25519) Mul(p Element, k *big.Int) Element {
	return edPoint{new(edwards25519.Point).ScalarMult(g.scalar(k), g.point(p))}
}

// Add returns p + q.
func (g *Edwards25519) Add(p, q Element) Element {
	return edPoint{new(edwards25519.Point).Add(g.point(p), g.point(q))}
}

// Decode parses a canonical compressed point.
func (g *Edwards25519) Decode(b []byte) (Element, error) {
	if len(b) != 32 {
		return nil, errors.Wrapf(ErrInvalidEncoding, "want 32 bytes, got %d", len(b))
	}
	p, err := new(edwards25519.Point).SetBytes(b)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidEncoding, err.Error())
	}
	if !bytes.Equal(p.Bytes(), b) {
		return nil, errors.Wrap(ErrInvalidEncoding, "non-canonical encoding")
	}
	return edPoint{p}, nil
}

// IsSmallOrder reports whether p·8 is the identity.
func (g *Edwards25519) IsSmallOrder(p Element) bool {
	q := new(edwards25519.Point).MultByCofactor(g.point(p))
	return q.Equal(edwards25519.NewIdentityPoint()) == 1
}

// IsTorsionFree checks [L]P = 0 as [L-1]P + P = 0, since L itself is not a
// representable scalar.
func (g *Edwards25519) IsTorsionFree(p Element) bool {
	pp := g.point(p)
	q := new(edwards25519.Point).ScalarMult(g.minusOne, pp)
	q.Add(q, pp)
	return q.Equal(edwards25519.NewIdentityPoint()) == 1
}

func (g *Edwards25519) scalar(k *big.Int) *edwards25519.Scalar {
	s, err := new(edwards25519.Scalar).SetCanonicalBytes(scalarLE(k, edwards25519Order))
	if err != nil {
		// scalarLE always yields a value below L.
		panic(err)
	}
	return s
}

// point converts elements of either backend.
func (g *Edwards25519) point(e Element) *edwards25519.Point {
	if p, ok := e.(edPoint); ok {
		return p.p
	}
	p, err := new(edwards25519.Point).SetBytes(e.Bytes())
	if err != nil {
		panic(errors.Wrap(err, "foreign element"))
	}
	return p
}

var _ Group = (*Edwards25519)(nil)
