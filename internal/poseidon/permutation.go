package poseidon

import (
	"math/big"

	"github.com/pkg/errors"

	"tokamakauth/internal/field"
)

// HashArity is the number of chunks HashToScalar absorbs per call. It equals
// the state width the signature scheme is built for.
const HashArity = 4

// Permutation is the Poseidon permutation for one validated parameter set.
type Permutation struct {
	params *Params
	mod    *big.Int
	half   int
	alpha  uint64
}

// NewPermutation validates params and builds a permutation that owns a
// private copy of them.
func NewPermutation(params *Params) (*Permutation, error) {
	p, err := Validate(params)
	if err != nil {
		return nil, err
	}
	return &Permutation{
		params: p,
		mod:    p.Field.Modulus(),
		half:   p.FullRounds / 2,
		alpha:  uint64(p.SboxPower),
	}, nil
}

// Width returns the state width t.
func (p *Permutation) Width() int { return p.params.Width }

// Field returns the field the permutation operates over.
func (p *Permutation) Field() *field.Field { return p.params.Field }

// Modulus returns a copy of the field modulus.
func (p *Permutation) Modulus() *big.Int { return p.params.Field.Modulus() }

// Params returns a deep copy of the parameter set.
func (p *Permutation) Params() *Params { return p.params.Clone() }

// Permute maps exactly t field elements to t field elements. Inputs are
// reduced mod p and left unmodified.
func (p *Permutation) Permute(in []*big.Int) ([]*big.Int, error) {
	t := p.params.Width
	if len(in) != t {
		return nil, errors.Wrapf(ErrArity, "want %d elements, got %d", t, len(in))
	}
	f := p.params.Field
	state := make([]*big.Int, t)
	for i, x := range in {
		if x == nil {
			return nil, errors.Wrapf(ErrArity, "element %d is nil", i)
		}
		state[i] = f.Reduce(x)
	}

	r := 0
	for i := 0; i < p.half; i++ {
		state = p.round(state, r, true)
		r++
	}
	for i := 0; i < p.params.PartialRounds; i++ {
		state = p.round(state, r, false)
		r++
	}
	for i := 0; i < p.half; i++ {
		state = p.round(state, r, true)
		r++
	}
	return state, nil
}

func (p *Permutation) round(state []*big.Int, r int, full bool) []*big.Int {
	f := p.params.Field
	rc := p.params.RoundConstants[r]
	for i := range state {
		state[i] = f.Add(state[i], rc[i])
	}
	if full {
		for i := range state {
			state[i] = f.Exp(state[i], p.alpha)
		}
	} else {
		state[0] = f.Exp(state[0], p.alpha)
	}

	out := make([]*big.Int, len(state))
	acc := new(big.Int)
	for i, row := range p.params.MDS {
		sum := new(big.Int)
		for j, m := range row {
			sum.Add(sum, acc.Mul(m, state[j]))
		}
		out[i] = sum.Mod(sum, p.mod)
	}
	return out
}

// HashToScalar absorbs exactly HashArity byte strings, each interpreted as a
// big-endian integer reduced mod p, permutes them and returns the first
// output element. The permutation width must equal HashArity.
func (p *Permutation) HashToScalar(chunks ...[]byte) (*big.Int, error) {
	if p.params.Width != HashArity {
		return nil, errors.Wrapf(ErrArity, "hash needs width %d, permutation has %d", HashArity, p.params.Width)
	}
	if len(chunks) != HashArity {
		return nil, errors.Wrapf(ErrArity, "want %d chunks, got %d", HashArity, len(chunks))
	}
	f := p.params.Field
	in := make([]*big.Int, HashArity)
	for i, c := range chunks {
		in[i] = f.FromBytes(c)
	}
	out, err := p.Permute(in)
	if err != nil {
		return nil, err
	}
	return f.Reduce(out[0]), nil
}
