package group

import (
	"math/big"

	"github.com/pkg/errors"
)

// ErrInvalidEncoding is returned by Decode for malformed or non-canonical points.
var ErrInvalidEncoding = errors.New("invalid point encoding")

// Element is a group element.
type Element interface {
	// Bytes returns the compressed encoding.
	Bytes() []byte
	IsIdentity() bool
	Equal(other Element) bool
}

// Group is the prime-order group collaborator used by the signature scheme.
type Group interface {
	Name() string
	// Order returns a copy of the prime subgroup order n.
	Order() *big.Int
	// EncodedLen is the length of Element.Bytes.
	EncodedLen() int

	Generator() Element
	BaseMul(k *big.Int) Element
	Mul(p Element, k *big.Int) Element
	Add(p, q Element) Element

	Decode(b []byte) (Element, error)
	// IsSmallOrder reports whether [h]P is the identity for the cofactor h.
	IsSmallOrder(p Element) bool
	// IsTorsionFree reports whether [n]P is the identity.
	IsTorsionFree(p Element) bool
}

// ByName returns the group registered under name.
func ByName(name string) (Group, error) {
	switch name {
	case Edwards25519Name:
		return NewEdwards25519(), nil
	case KyberEdwards25519Name:
		return NewKyberEdwards25519(), nil
	case JubjubName:
		return NewJubjub(), nil
	}
	return nil, errors.Errorf("unknown group %q", name)
}

// scalarLE returns k mod n as a 32-byte little-endian string.
func scalarLE(k, n *big.Int) []byte {
	b := new(big.Int).Mod(k, n).FillBytes(make([]byte, 32))
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return b
}
