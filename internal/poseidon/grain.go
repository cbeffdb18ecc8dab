package poseidon

import (
	"math/big"

	logger "github.com/multiversx/mx-chain-logger-go"

	"tokamakauth/internal/field"
)

var log = logger.GetOrCreate("tokamakauth/poseidon")

const (
	grainStateBits = 80
	grainWarmup    = 160
)

// grain is the 80-bit Grain LFSR of the Poseidon reference constant generator.
type grain struct {
	state [grainStateBits]byte
	pos   int
}

// newGrain seeds the LFSR with the design parameters: 2 bits field type
// (1 = prime field), 4 bits S-box kind (0 = x^α), 12 bits field size, 12 bits
// t, 10 bits R_F, 10 bits R_P, and ones for the remaining 30 bits. Every value
// is written most significant bit first.
func newGrain(fieldBits, t, fullRounds, partialRounds int) *grain {
	g := &grain{}
	for i := range g.state {
		g.state[i] = 1
	}
	i := 0
	write := func(v uint64, n int) {
		for b := n - 1; b >= 0; b-- {
			g.state[i] = byte(v >> uint(b) & 1)
			i++
		}
	}
	write(1, 2)
	write(0, 4)
	write(uint64(fieldBits), 12)
	write(uint64(t), 12)
	write(uint64(fullRounds), 10)
	write(uint64(partialRounds), 10)

	for j := 0; j < grainWarmup; j++ {
		g.step()
	}
	return g
}

func (g *grain) step() byte {
	at := func(off int) byte { return g.state[(g.pos+off)%grainStateBits] }
	bit := at(62) ^ at(51) ^ at(38) ^ at(23) ^ at(13) ^ at(0)
	g.state[g.pos] = bit
	g.pos = (g.pos + 1) % grainStateBits
	return bit
}

// nextBit applies the shrinking generator: bits are drawn in pairs and the
// second is emitted only when the first is set.
func (g *grain) nextBit() byte {
	for {
		b1 := g.step()
		b2 := g.step()
		if b1 == 1 {
			return b2
		}
	}
}

// sample draws count field elements of f.Bits() bits each. With reject set,
// values >= p are discarded and redrawn; otherwise they are reduced mod p.
func (g *grain) sample(f *field.Field, count int, reject bool) []*big.Int {
	p := f.Modulus()
	out := make([]*big.Int, 0, count)
	for len(out) < count {
		x := new(big.Int)
		for i := 0; i < f.Bits(); i++ {
			x.Lsh(x, 1)
			if g.nextBit() == 1 {
				x.SetBit(x, 0, 1)
			}
		}
		if x.Cmp(p) >= 0 {
			if reject {
				continue
			}
			x.Mod(x, p)
		}
		out = append(out, x)
	}
	return out
}

// Generate derives a parameter set for the given field and design parameters.
//
// Round constants are drawn first, one row of t per round, with rejection
// sampling. The MDS matrix is the Cauchy matrix M[i][j] = 1/(x_i + y_j) built
// from the next 2t stream elements. The result is validated before it is
// returned, and the procedure is fully deterministic.
func Generate(f *field.Field, t, fullRounds, partialRounds, alpha int) (*Params, error) {
	if err := checkDesign(f, t, fullRounds, partialRounds, alpha); err != nil {
		return nil, err
	}
	g := newGrain(f.Bits(), t, fullRounds, partialRounds)

	rounds := fullRounds + partialRounds
	rc := make([][]*big.Int, rounds)
	for r := range rc {
		rc[r] = g.sample(f, t, true)
	}

	xs := g.sample(f, t, false)
	ys := g.sample(f, t, false)
	mds := make([][]*big.Int, t)
	for i := 0; i < t; i++ {
		mds[i] = make([]*big.Int, t)
		for j := 0; j < t; j++ {
			inv := f.Inverse(f.Add(xs[i], ys[j]))
			if inv == nil {
				return nil, configError("mds generation: xs[%d] + ys[%d] is zero", i, j)
			}
			mds[i][j] = inv
		}
	}

	params, err := Validate(&Params{
		Field:          f,
		Width:          t,
		FullRounds:     fullRounds,
		PartialRounds:  partialRounds,
		SboxPower:      alpha,
		MDS:            mds,
		RoundConstants: rc,
	})
	if err != nil {
		return nil, err
	}
	log.Debug("generated permutation parameters",
		"field", f.Name(), "t", t, "roundsFull", fullRounds,
		"roundsPartial", partialRounds, "sboxPower", alpha)
	return params, nil
}
