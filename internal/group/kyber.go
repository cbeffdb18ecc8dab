package group

import (
	"bytes"
	"math/big"

	"github.com/pkg/errors"
	"go.dedis.ch/kyber/v3"
	"go.dedis.ch/kyber/v3/group/edwards25519"
)

// KyberEdwards25519Name identifies the kyber backed edwards25519 group.
const KyberEdwards25519Name = "kyber-edwards25519"

// KyberEdwards25519 is edwards25519 through the kyber suite.
type KyberEdwards25519 struct {
	suite    *edwards25519.SuiteEd25519
	cofactor kyber.Scalar
	minusOne kyber.Scalar
}

// NewKyberEdwards25519 returns the kyber backed group.
func NewKyberEdwards25519() *KyberEdwards25519 {
	suite := edwards25519.NewBlakeSHA256Ed25519()
	return &KyberEdwards25519{
		suite:    suite,
		cofactor: suite.Scalar().SetInt64(8),
		minusOne: suite.Scalar().Neg(suite.Scalar().One()),
	}
}

type kyberPoint struct{ p kyber.Point }

func (e kyberPoint) Bytes() []byte {
	b, err := e.p.MarshalBinary()
	if err != nil {
		panic(err)
	}
	return b
}

func (e kyberPoint) IsIdentity() bool {
	return e.p.Equal(e.p.Clone().Null())
}

func (e kyberPoint) Equal(other Element) bool {
	o, ok := other.(kyberPoint)
	if !ok {
		return bytes.Equal(e.Bytes(), other.Bytes())
	}
	return e.p.Equal(o.p)
}

// Name returns the registry name of the backend.
func (g *KyberEdwards25519) Name() string { return KyberEdwards25519Name }

// Order returns a copy of the prime subgroup order L.
func (g *KyberEdwards25519) Order() *big.Int { return new(big.Int).Set(edwards25519Order) }

// EncodedLen returns the length of a compressed point.
func (g *KyberEdwards25519) EncodedLen() int { return g.suite.PointLen() }

// Generator returns the standard base point.
func (g *KyberEdwards25519) Generator() Element {
	return kyberPoint{g.suite.Point().Base()}
}

// BaseMul returns G·k, with k reduced mod L.
func (g *KyberEdwards25519) BaseMul(k *big.Int) Element {
	return kyberPoint{g.suite.Point().Mul(g.scalar(k), nil)}
}

// Mul returns p·k, with k reduced mod L.
func (g *KyberEdwards25519) Mul(p Element, k *big.Int) Element {
	return kyberPoint{g.suite.Point().Mul(g.scalar(k), g.point(p))}
}

// Add returns p + q.
func (g *KyberEdwards25519) Add(p, q Element) Element {
	return kyberPoint{g.suite.Point().Add(g.point(p), g.point(q))}
}

// Decode parses a canonical compressed point.
func (g *KyberEdwards25519) Decode(b []byte) (Element, error) {
	if len(b) != g.suite.PointLen() {
		return nil, errors.Wrapf(ErrInvalidEncoding, "want %d bytes, got %d", g.suite.PointLen(), len(b))
	}
	p := g.suite.Point()
	if err := p.UnmarshalBinary(b); err != nil {
		return nil, errors.Wrap(ErrInvalidEncoding, err.Error())
	}
	out := kyberPoint{p}
	if !bytes.Equal(out.Bytes(), b) {
		return nil, errors.Wrap(ErrInvalidEncoding, "non-canonical encoding")
	}
	return out, nil
}

// IsSmallOrder reports whether p·8 is the identity.
func (g *KyberEdwards25519) IsSmallOrder(p Element) bool {
	return g.suite.Point().Mul(g.cofactor, g.point(p)).Equal(g.suite.Point().Null())
}

// IsTorsionFree reports whether p·L is the identity.
func (g *KyberEdwards25519) IsTorsionFree(p Element) bool {
	pp := g.point(p)
	q := g.suite.Point().Mul(g.minusOne, pp)
	return q.Add(q, pp).Equal(g.suite.Point().Null())
}

// scalar loads k mod L; kyber scalars for this suite are little-endian.
func (g *KyberEdwards25519) scalar(k *big.Int) kyber.Scalar {
	return g.suite.Scalar().SetBytes(scalarLE(k, edwards25519Order))
}

func (g *KyberEdwards25519) point(e Element) kyber.Point {
	if p, ok := e.(kyberPoint); ok {
		return p.p
	}
	p := g.suite.Point()
	if err := p.UnmarshalBinary(e.Bytes()); err != nil {
		panic(errors.Wrap(err, "foreign element"))
	}
	return p
}

var _ Group = (*KyberEdwards25519)(nil)
