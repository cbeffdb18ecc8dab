package poseidon_test

import (
	"errors"
	"math/big"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tokamakauth/internal/field"
	"tokamakauth/internal/poseidon"
	"tokamakauth/internal/store"
)

func paramsPath(name string) string {
	return filepath.Join("..", "..", "params", name)
}

func generateT4(t *testing.T, fieldName string) *poseidon.Params {
	t.Helper()
	p, err := poseidon.Generate(field.MustByName(fieldName), 4, 8, 60, 5)
	require.NoError(t, err)
	return p
}

func TestGenerate_T4Dimensions(t *testing.T) {
	p := generateT4(t, field.BLS12381Fr)

	assert.Equal(t, 255, p.Field.Bits())
	require.Len(t, p.MDS, 4)
	for _, row := range p.MDS {
		assert.Len(t, row, 4)
	}
	require.Len(t, p.RoundConstants, 68)
	for _, row := range p.RoundConstants {
		assert.Len(t, row, 4)
	}
	assert.Equal(t, 68, p.Rounds())
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := poseidon.ToFile(generateT4(t, field.BLS12381Fr))
	require.NoError(t, err)
	b, err := poseidon.ToFile(generateT4(t, field.BLS12381Fr))
	require.NoError(t, err)

	assert.Equal(t, a.MDS, b.MDS)
	assert.Equal(t, a.RoundConstants, b.RoundConstants)
}

func TestGenerate_DependsOnDesignParameters(t *testing.T) {
	f := field.MustByName(field.Edwards25519Scalar)
	a, err := poseidon.Generate(f, 4, 8, 60, 5)
	require.NoError(t, err)
	b, err := poseidon.Generate(f, 4, 8, 56, 5)
	require.NoError(t, err)

	assert.NotEqual(t, 0, a.RoundConstants[0][0].Cmp(b.RoundConstants[0][0]))
}

// The files under params/ were produced by an independent implementation of
// the Grain procedure.
func TestGenerate_MatchesShippedFiles(t *testing.T) {
	cases := map[string]string{
		field.Edwards25519Scalar: "poseidon_t4_edwards25519.json",
		field.BLS12381Fr:         "poseidon_t4_bls12-381.json",
		field.JubjubScalar:       "poseidon_t4_jubjub.json",
	}
	for name, file := range cases {
		t.Run(name, func(t *testing.T) {
			var want poseidon.File
			require.NoError(t, store.ReadJSON(paramsPath(file), &want))

			got, err := poseidon.ToFile(generateT4(t, name))
			require.NoError(t, err)
			assert.Equal(t, &want, got)
		})
	}
}

func TestGenerate_RejectsDesign(t *testing.T) {
	f := field.MustByName(field.Edwards25519Scalar)
	cases := []struct {
		name             string
		t, rf, rp, alpha int
	}{
		{"odd full rounds", 4, 7, 60, 5},
		{"zero full rounds", 4, 0, 60, 5},
		{"width one", 1, 8, 60, 5},
		{"negative partial", 4, 8, -1, 5},
		{"alpha four", 4, 8, 60, 4},
		{"alpha three not a bijection", 4, 8, 60, 3},
		{"partial rounds too large", 4, 8, 1024, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := poseidon.Generate(f, tc.t, tc.rf, tc.rp, tc.alpha)
			require.Error(t, err)
			assert.True(t, errors.Is(err, poseidon.ErrConfiguration))
		})
	}
	_, err := poseidon.Generate(nil, 4, 8, 60, 5)
	assert.True(t, errors.Is(err, poseidon.ErrConfiguration))
}

func TestValidate_Dimensions(t *testing.T) {
	base := generateT4(t, field.Edwards25519Scalar)

	cases := map[string]func(p *poseidon.Params){
		"mds missing row": func(p *poseidon.Params) { p.MDS = p.MDS[:3] },
		"mds short row":   func(p *poseidon.Params) { p.MDS[2] = p.MDS[2][:3] },
		"mds long row": func(p *poseidon.Params) {
			p.MDS[1] = append(p.MDS[1], big.NewInt(1))
		},
		"rc short row":    func(p *poseidon.Params) { p.RoundConstants[10] = p.RoundConstants[10][:3] },
		"rc missing rows": func(p *poseidon.Params) { p.RoundConstants = p.RoundConstants[:67] },
		"rc extra row": func(p *poseidon.Params) {
			p.RoundConstants = append(p.RoundConstants, p.RoundConstants[0])
		},
		"round count mismatch": func(p *poseidon.Params) { p.PartialRounds = 56 },
		"nil entry":            func(p *poseidon.Params) { p.MDS[0][0] = nil },
		"entry not reduced":    func(p *poseidon.Params) { p.RoundConstants[0][0] = p.Field.Modulus() },
		"negative entry":       func(p *poseidon.Params) { p.RoundConstants[0][1] = big.NewInt(-1) },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			p := base.Clone()
			mutate(p)
			_, err := poseidon.Validate(p)
			require.Error(t, err)
			assert.True(t, errors.Is(err, poseidon.ErrConfiguration))
		})
	}

	_, err := poseidon.Validate(nil)
	assert.True(t, errors.Is(err, poseidon.ErrConfiguration))

	v, err := poseidon.Validate(base)
	require.NoError(t, err)
	assert.NotSame(t, base.MDS[0][0], v.MDS[0][0])
}

func TestPermute_KnownAnswer(t *testing.T) {
	cases := map[string][]string{
		"poseidon_t4_edwards25519.json": {
			"1d6c992836d456503f4b67e7ad817429b2f425e4f1de54fbb662fb40aa30221",
			"1ecc1b9fb287a75de6a5d05f0a834c83b839dd2d68d91991970401bd2a1a1d3",
			"c82f81ae3d35f8dc33ec16d782b008b280776220bfd5040187910c10860224",
			"cacd928dcfd0660337646e17da7ebe49fe75c8e81f12b286dffdebba7290ff1",
		},
		"poseidon_t4_bls12-381.json": {
			"4b330df9e85ac7f32075b34cb231a3cc96260cddda2fd5563a9dfbbf6f6ce3c7",
			"73e4bb650acc694a472f424fc3796cd48064f3efa2d847bf8f896c2b82081ea2",
			"6a765d2dc04b70097411a20ef41ef09bc7eca07fdfbc94ad95a38fa6968b1a3f",
			"378032db25a6975e1d1663299bb9588400790fbf85952636a173d7b19671e36e",
		},
	}
	for file, want := range cases {
		t.Run(file, func(t *testing.T) {
			params, err := poseidon.LoadFile(paramsPath(file))
			require.NoError(t, err)
			perm, err := poseidon.NewPermutation(params)
			require.NoError(t, err)

			in := []*big.Int{big.NewInt(0), big.NewInt(1), big.NewInt(2), big.NewInt(3)}
			out, err := perm.Permute(in)
			require.NoError(t, err)
			require.Len(t, out, 4)
			for i := range want {
				assert.Equal(t, want[i], out[i].Text(16), "element %d", i)
			}
			assert.Equal(t, int64(2), in[2].Int64(), "input mutated")
		})
	}
}

func TestPermute_Arity(t *testing.T) {
	perm, err := poseidon.NewPermutation(generateT4(t, field.Edwards25519Scalar))
	require.NoError(t, err)

	_, err = perm.Permute([]*big.Int{big.NewInt(1), big.NewInt(2), big.NewInt(3)})
	assert.True(t, errors.Is(err, poseidon.ErrArity))

	_, err = perm.Permute([]*big.Int{big.NewInt(1), nil, big.NewInt(3), big.NewInt(4)})
	assert.True(t, errors.Is(err, poseidon.ErrArity))
}

func TestPermute_ReducesInputs(t *testing.T) {
	perm, err := poseidon.NewPermutation(generateT4(t, field.Edwards25519Scalar))
	require.NoError(t, err)
	p := perm.Modulus()

	a, err := perm.Permute([]*big.Int{big.NewInt(1), big.NewInt(2), big.NewInt(3), big.NewInt(4)})
	require.NoError(t, err)
	b, err := perm.Permute([]*big.Int{
		new(big.Int).Add(p, big.NewInt(1)), big.NewInt(2), big.NewInt(3), big.NewInt(4),
	})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestHashToScalar(t *testing.T) {
	params, err := poseidon.LoadFile(paramsPath("poseidon_t4_edwards25519.json"))
	require.NoError(t, err)
	perm, err := poseidon.NewPermutation(params)
	require.NoError(t, err)

	seq := make([]byte, 32)
	for i := range seq {
		seq[i] = byte(i)
	}
	h, err := perm.HashToScalar(
		[]byte("TokamakAuth-EDDSA-POSEIDON-NONCE-v1"),
		seq,
		make([]byte, 32),
		[]byte("Hello from TokamakAuth!"),
	)
	require.NoError(t, err)
	assert.Equal(t, "612eb376ace6eb34058661828879d08616a281c56b4d6887ac574db97cd21a7", h.Text(16))
	assert.True(t, perm.Field().IsCanonical(h))
}

func TestHashToScalar_ChunkReduction(t *testing.T) {
	perm, err := poseidon.NewPermutation(generateT4(t, field.Edwards25519Scalar))
	require.NoError(t, err)
	p := perm.Modulus()

	wrapped := new(big.Int).Add(p, big.NewInt(9)).Bytes()
	a, err := perm.HashToScalar(wrapped, []byte{1}, []byte{2}, []byte{3})
	require.NoError(t, err)
	b, err := perm.HashToScalar([]byte{9}, []byte{1}, []byte{2}, []byte{3})
	require.NoError(t, err)
	assert.Equal(t, 0, a.Cmp(b))
}

func TestHashToScalar_Arity(t *testing.T) {
	perm, err := poseidon.NewPermutation(generateT4(t, field.Edwards25519Scalar))
	require.NoError(t, err)

	_, err = perm.HashToScalar([]byte{1}, []byte{2}, []byte{3})
	assert.True(t, errors.Is(err, poseidon.ErrArity))
	_, err = perm.HashToScalar([]byte{1}, []byte{2}, []byte{3}, []byte{4}, []byte{5})
	assert.True(t, errors.Is(err, poseidon.ErrArity))

	p3, err := poseidon.Generate(field.MustByName(field.Edwards25519Scalar), 3, 8, 57, 5)
	require.NoError(t, err)
	perm3, err := poseidon.NewPermutation(p3)
	require.NoError(t, err)
	_, err = perm3.HashToScalar([]byte{1}, []byte{2}, []byte{3}, []byte{4})
	assert.True(t, errors.Is(err, poseidon.ErrArity))
}

func TestParams_Equal(t *testing.T) {
	a := generateT4(t, field.Edwards25519Scalar)
	b := a.Clone()
	assert.True(t, a.Equal(b))

	b.RoundConstants[3][1] = new(big.Int).Add(b.RoundConstants[3][1], big.NewInt(1))
	assert.False(t, a.Equal(b))
	assert.NotEqual(t, 0, a.RoundConstants[3][1].Cmp(b.RoundConstants[3][1]), "clone shares entries")

	assert.False(t, a.Equal(generateT4(t, field.BLS12381Fr)))
	assert.False(t, a.Equal(nil))
	assert.True(t, (*poseidon.Params)(nil).Equal(nil))
}

func TestParams_Fingerprint(t *testing.T) {
	a := generateT4(t, field.Edwards25519Scalar)
	fp := a.Fingerprint()
	assert.Len(t, fp, 20)
	assert.Equal(t, fp, a.Clone().Fingerprint())

	b := a.Clone()
	b.MDS[0][0] = new(big.Int).Add(b.MDS[0][0], big.NewInt(1))
	assert.NotEqual(t, fp, b.Fingerprint())
	assert.NotEqual(t, fp, generateT4(t, field.BLS12381Fr).Fingerprint())
}
