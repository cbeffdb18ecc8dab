package field

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

const (
	// BLS12381Fr is the scalar field of BLS12-381 (the Jubjub base field).
	BLS12381Fr = "bls12-381.field.Fr"
	// Edwards25519Scalar is the field of integers modulo the edwards25519
	// prime-order subgroup order L.
	Edwards25519Scalar = "edwards25519.scalar"
	// JubjubScalar is the field of integers modulo the order of the Jubjub
	// prime-order subgroup.
	JubjubScalar = "jubjub.scalar"

	hexPrefix = "0x"
)

var (
	// ErrEncoding is returned when a field element string is malformed or out of range.
	ErrEncoding = errors.New("invalid field element encoding")
	// ErrUnknownField is returned by ByName for unregistered identifiers.
	ErrUnknownField = errors.New("unknown field identifier")
)

var known = map[string]string{
	BLS12381Fr:         "73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001",
	Edwards25519Scalar: "1000000000000000000000000000000014def9dea2f79cd65812631a5cf5d3ed",
	JubjubScalar:       "0e7db4ea6533afa906673b0101343b00a6682093ccc81082d0970e5ed6f72cb7",
}

// Field is a prime field of known modulus.
type Field struct {
	name    string
	modulus *big.Int
	bits    int
	size    int
}

// New returns a field with the given identifier and modulus.
// The modulus is copied; primality is not checked.
func New(name string, modulus *big.Int) (*Field, error) {
	if modulus == nil || modulus.Cmp(big.NewInt(2)) < 0 {
		return nil, fmt.Errorf("field %q: modulus must be at least 2", name)
	}
	p := new(big.Int).Set(modulus)
	return &Field{
		name:    name,
		modulus: p,
		bits:    p.BitLen(),
		size:    (p.BitLen() + 7) / 8,
	}, nil
}

// ByName returns one of the registered fields.
func ByName(name string) (*Field, error) {
	h, ok := known[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownField, "%q", name)
	}
	p, _ := new(big.Int).SetString(h, 16)
	return New(name, p)
}

// MustByName is ByName for identifiers known at compile time.
func MustByName(name string) *Field {
	f, err := ByName(name)
	if err != nil {
		panic(err)
	}
	return f
}

// Name returns the field identifier used in parameter files.
func (f *Field) Name() string { return f.name }

// Modulus returns a copy of p.
func (f *Field) Modulus() *big.Int { return new(big.Int).Set(f.modulus) }

// Bits returns the bit length of p.
func (f *Field) Bits() int { return f.bits }

// Size returns the byte length of p.
func (f *Field) Size() int { return f.size }

// HasModulus reports whether m equals p.
func (f *Field) HasModulus(m *big.Int) bool { return m != nil && f.modulus.Cmp(m) == 0 }

// Reduce returns x mod p as a new value.
func (f *Field) Reduce(x *big.Int) *big.Int {
	return new(big.Int).Mod(x, f.modulus)
}

// FromBytes interprets b as a big-endian integer and reduces it mod p.
func (f *Field) FromBytes(b []byte) *big.Int {
	return f.Reduce(new(big.Int).SetBytes(b))
}

// IsCanonical reports whether 0 <= x < p.
func (f *Field) IsCanonical(x *big.Int) bool {
	return x != nil && x.Sign() >= 0 && x.Cmp(f.modulus) < 0
}

// Add returns a + b mod p.
func (f *Field) Add(a, b *big.Int) *big.Int {
	r := new(big.Int).Add(a, b)
	return r.Mod(r, f.modulus)
}

// Mul returns a * b mod p.
func (f *Field) Mul(a, b *big.Int) *big.Int {
	r := new(big.Int).Mul(a, b)
	return r.Mod(r, f.modulus)
}

// Exp returns x^e mod p.
func (f *Field) Exp(x *big.Int, e uint64) *big.Int {
	return new(big.Int).Exp(x, new(big.Int).SetUint64(e), f.modulus)
}

// Inverse returns x^-1 mod p, or nil when x is zero mod p.
func (f *Field) Inverse(x *big.Int) *big.Int {
	return new(big.Int).ModInverse(f.Reduce(x), f.modulus)
}

// Bytes returns x mod p as a Size()-byte big-endian string.
func (f *Field) Bytes(x *big.Int) []byte {
	return f.Reduce(x).FillBytes(make([]byte, f.size))
}

// Encode renders x mod p in the canonical "0x" hex form.
func (f *Field) Encode(x *big.Int) string {
	return hexPrefix + hex.EncodeToString(f.Bytes(x))
}

// Decode parses the canonical "0x" hex form. The string must carry the
// prefix, have exactly 2*Size() digits and encode a value below p.
func (f *Field) Decode(s string) (*big.Int, error) {
	if !strings.HasPrefix(s, hexPrefix) {
		return nil, errors.Wrapf(ErrEncoding, "%q: missing %s prefix", s, hexPrefix)
	}
	digits := s[len(hexPrefix):]
	if len(digits) != 2*f.size {
		return nil, errors.Wrapf(ErrEncoding, "%q: want %d hex digits, got %d", s, 2*f.size, len(digits))
	}
	b, err := hex.DecodeString(digits)
	if err != nil {
		return nil, errors.Wrapf(ErrEncoding, "%q: %v", s, err)
	}
	x := new(big.Int).SetBytes(b)
	if x.Cmp(f.modulus) >= 0 {
		return nil, errors.Wrapf(ErrEncoding, "%q: not below the %s modulus", s, f.name)
	}
	return x, nil
}
