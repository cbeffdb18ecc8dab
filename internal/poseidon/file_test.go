package poseidon_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tokamakauth/internal/field"
	"tokamakauth/internal/poseidon"
	"tokamakauth/internal/store"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "poseidon.json")
	want := generateT4(t, field.BLS12381Fr)

	require.NoError(t, poseidon.SaveFile(path, want))

	got, err := poseidon.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, want.Field.Name(), got.Field.Name())
	assert.Equal(t, want.Width, got.Width)
	assert.Equal(t, want.FullRounds, got.FullRounds)
	assert.Equal(t, want.PartialRounds, got.PartialRounds)
	assert.Equal(t, want.SboxPower, got.SboxPower)
	assert.Equal(t, want.MDS, got.MDS)
	assert.Equal(t, want.RoundConstants, got.RoundConstants)
}

func TestSaveFile_Encoding(t *testing.T) {
	path := filepath.Join(t.TempDir(), "poseidon.json")
	require.NoError(t, poseidon.SaveFile(path, generateT4(t, field.Edwards25519Scalar)))

	var pf poseidon.File
	require.NoError(t, store.ReadJSON(path, &pf))
	assert.Equal(t, field.Edwards25519Scalar, pf.Field)
	for _, row := range append(pf.MDS, pf.RoundConstants...) {
		for _, s := range row {
			require.True(t, strings.HasPrefix(s, "0x"))
			require.Len(t, s, 66)
			require.Equal(t, strings.ToLower(s), s)
		}
	}
}

func TestLoadFile_Failures(t *testing.T) {
	good, err := poseidon.ToFile(generateT4(t, field.Edwards25519Scalar))
	require.NoError(t, err)

	cases := map[string]func(pf *poseidon.File){
		"unknown field":    func(pf *poseidon.File) { pf.Field = "bn254.field.Fr" },
		"short hex":        func(pf *poseidon.File) { pf.MDS[0][0] = "0x01" },
		"no prefix":        func(pf *poseidon.File) { pf.MDS[0][0] = pf.MDS[0][0][2:] + "00" },
		"rc row too short": func(pf *poseidon.File) { pf.RoundConstants[5] = pf.RoundConstants[5][:3] },
		"rc rows missing":  func(pf *poseidon.File) { pf.RoundConstants = pf.RoundConstants[:60] },
		"mds not square":   func(pf *poseidon.File) { pf.MDS = pf.MDS[:3] },
		"wrong t":          func(pf *poseidon.File) { pf.T = 5 },
		"missing sbox":     func(pf *poseidon.File) { pf.SboxPower = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			pf := clone(t, good)
			mutate(pf)
			path := filepath.Join(t.TempDir(), "bad.json")
			require.NoError(t, store.WriteJSON(path, pf, 0o644))

			_, err := poseidon.LoadFile(path)
			require.Error(t, err)
			assert.True(t, errors.Is(err, poseidon.ErrConfiguration), "%v", err)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := poseidon.LoadFile(filepath.Join(t.TempDir(), "nope.json"))
		assert.True(t, errors.Is(err, poseidon.ErrConfiguration))
	})
	t.Run("not json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))
		_, err := poseidon.LoadFile(path)
		assert.True(t, errors.Is(err, poseidon.ErrConfiguration))
	})
}

func clone(t *testing.T, pf *poseidon.File) *poseidon.File {
	t.Helper()
	out := *pf
	out.MDS = make([][]string, len(pf.MDS))
	for i := range pf.MDS {
		out.MDS[i] = append([]string(nil), pf.MDS[i]...)
	}
	out.RoundConstants = make([][]string, len(pf.RoundConstants))
	for i := range pf.RoundConstants {
		out.RoundConstants[i] = append([]string(nil), pf.RoundConstants[i]...)
	}
	return &out
}
