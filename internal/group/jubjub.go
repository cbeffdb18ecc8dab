package group

import (
	"bytes"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/twistededwards"
	"github.com/pkg/errors"
)

// JubjubName identifies the Jubjub group.
const JubjubName = "jubjub"

// jubjubEncodedLen is the length of a compressed Jubjub point.
const jubjubEncodedLen = fr.Bytes

// Base point of the prime-order subgroup used by other Jubjub RedDSA
// implementations. It differs from the base point gnark-crypto ships.
const (
	jubjubBaseX = "11dafe5d23e1218086a365b99fbf3d3be72f6afd7d1f72623e6b071492d1122b"
	jubjubBaseY = "1d523cf1ddab1a1793132e78c866c0c33e26ba5cc220fed7cc3f870e59d292aa"
)

// Jubjub is the prime-order subgroup of the twisted Edwards curve
// -x² + y² = 1 + d·x²·y² over the BLS12-381 scalar field, backed by
// gnark-crypto. Points are encoded as y in 32 little-endian bytes with the
// parity of x in the top bit.
type Jubjub struct {
	curve    twistededwards.CurveParams
	base     twistededwards.PointAffine
	order    *big.Int
	cofactor *big.Int
}

// NewJubjub returns the gnark-crypto backed Jubjub group.
func NewJubjub() *Jubjub {
	curve := twistededwards.GetEdwardsCurve()
	g := &Jubjub{
		curve:    curve,
		order:    new(big.Int).Set(&curve.Order),
		cofactor: curve.Cofactor.BigInt(new(big.Int)),
	}
	g.base.X.SetBigInt(mustHex(jubjubBaseX))
	g.base.Y.SetBigInt(mustHex(jubjubBaseY))
	if !g.base.IsOnCurve() {
		panic("jubjub: base point is not on the curve")
	}
	return g
}

func mustHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("invalid hex constant " + s)
	}
	return v
}

type jubjubPoint struct{ p twistededwards.PointAffine }

// Bytes returns y little-endian with the low bit of x in bit 255.
func (e jubjubPoint) Bytes() []byte {
	y := e.p.Y.Bytes()
	out := make([]byte, jubjubEncodedLen)
	for i := range y {
		out[i] = y[len(y)-1-i]
	}
	if e.p.X.Bits()[0]&1 == 1 {
		out[jubjubEncodedLen-1] |= 0x80
	}
	return out
}

func (e jubjubPoint) IsIdentity() bool { return e.p.IsZero() }

func (e jubjubPoint) Equal(other Element) bool {
	o, ok := other.(jubjubPoint)
	if !ok {
		return bytes.Equal(e.Bytes(), other.Bytes())
	}
	return e.p.Equal(&o.p)
}

// Name returns JubjubName.
func (g *Jubjub) Name() string { return JubjubName }

// Order returns a copy of the subgroup order.
func (g *Jubjub) Order() *big.Int { return new(big.Int).Set(g.order) }

// EncodedLen returns 32.
func (g *Jubjub) EncodedLen() int { return jubjubEncodedLen }

// Generator returns the subgroup base point.
func (g *Jubjub) Generator() Element {
	var p twistededwards.PointAffine
	p.Set(&g.base)
	return jubjubPoint{p}
}

// BaseMul returns G·k for k reduced mod the order.
func (g *Jubjub) BaseMul(k *big.Int) Element {
	var p twistededwards.PointAffine
	p.ScalarMultiplication(&g.base, new(big.Int).Mod(k, g.order))
	return jubjubPoint{p}
}

// Mul returns P·k for k reduced mod the order.
func (g *Jubjub) Mul(p Element, k *big.Int) Element {
	pp := g.point(p)
	var out twistededwards.PointAffine
	out.ScalarMultiplication(&pp, new(big.Int).Mod(k, g.order))
	return jubjubPoint{out}
}

// Add returns P + Q.
func (g *Jubjub) Add(p, q Element) Element {
	pp, qq := g.point(p), g.point(q)
	var out twistededwards.PointAffine
	out.Add(&pp, &qq)
	return jubjubPoint{out}
}

// Decode parses a compressed point. The y coordinate must be below the field
// modulus, x must exist, and a zero x must come with a clear sign bit.
func (g *Jubjub) Decode(b []byte) (Element, error) {
	if len(b) != jubjubEncodedLen {
		return nil, errors.Wrapf(ErrInvalidEncoding, "want %d bytes, got %d", jubjubEncodedLen, len(b))
	}
	sign := b[jubjubEncodedLen-1] >> 7
	be := make([]byte, jubjubEncodedLen)
	for i := range b {
		be[i] = b[len(b)-1-i]
	}
	be[0] &= 0x7f

	var p twistededwards.PointAffine
	if err := p.Y.SetBytesCanonical(be); err != nil {
		return nil, errors.Wrap(ErrInvalidEncoding, "y is not a canonical field element")
	}

	// x² = (1 - y²) / (a - d·y²)
	var yy, num, den, xx fr.Element
	yy.Square(&p.Y)
	num.SetOne()
	num.Sub(&num, &yy)
	den.Mul(&yy, &g.curve.D)
	den.Sub(&g.curve.A, &den)
	if den.IsZero() {
		return nil, errors.Wrap(ErrInvalidEncoding, "not on curve")
	}
	xx.Div(&num, &den)
	if p.X.Sqrt(&xx) == nil {
		return nil, errors.Wrap(ErrInvalidEncoding, "not on curve")
	}
	if p.X.IsZero() && sign == 1 {
		return nil, errors.Wrap(ErrInvalidEncoding, "non-canonical encoding")
	}
	if byte(p.X.Bits()[0]&1) != sign {
		p.X.Neg(&p.X)
	}
	if !p.IsOnCurve() {
		return nil, errors.Wrap(ErrInvalidEncoding, "not on curve")
	}

	out := jubjubPoint{p}
	if !bytes.Equal(out.Bytes(), b) {
		return nil, errors.Wrap(ErrInvalidEncoding, "non-canonical encoding")
	}
	return out, nil
}

// IsSmallOrder reports whether [8]P is the identity.
func (g *Jubjub) IsSmallOrder(p Element) bool {
	pp := g.point(p)
	var q twistededwards.PointAffine
	q.ScalarMultiplication(&pp, g.cofactor)
	return q.IsZero()
}

// IsTorsionFree reports whether [n]P is the identity. The order is applied
// unreduced, unlike in Mul.
func (g *Jubjub) IsTorsionFree(p Element) bool {
	pp := g.point(p)
	var q twistededwards.PointAffine
	q.ScalarMultiplication(&pp, g.order)
	return q.IsZero()
}

// point converts elements of other backends through their encoding.
func (g *Jubjub) point(e Element) twistededwards.PointAffine {
	if p, ok := e.(jubjubPoint); ok {
		return p.p
	}
	d, err := g.Decode(e.Bytes())
	if err != nil {
		panic(errors.Wrap(err, "foreign element"))
	}
	return d.(jubjubPoint).p
}

var _ Group = (*Jubjub)(nil)
