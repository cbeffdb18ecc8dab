package app_test

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tokamakauth/internal/app"
	"tokamakauth/internal/config"
	"tokamakauth/internal/field"
	"tokamakauth/internal/group"
	"tokamakauth/internal/poseidon"
	"tokamakauth/internal/reddsa"
)

var shippedParams = filepath.Join("..", "..", "params", "poseidon_t4_edwards25519.json")

func TestGenerateParams_MatchesShippedFile(t *testing.T) {
	generated, err := app.GenerateParams(config.Default().Permutation)
	require.NoError(t, err)

	loaded, err := poseidon.LoadFile(shippedParams)
	require.NoError(t, err)
	assert.Equal(t, loaded.MDS, generated.MDS)
	assert.Equal(t, loaded.RoundConstants, generated.RoundConstants)
}

func TestNewWire_Defaults(t *testing.T) {
	w, err := app.NewWire(config.Default())
	require.NoError(t, err)
	assert.Equal(t, group.Edwards25519Name, w.Group.Name())
	assert.Equal(t, field.Edwards25519Scalar, w.Params.Field.Name())
	assert.Equal(t, 4, w.Permutation.Width())
}

func TestNewWire_FromFileMatchesGenerated(t *testing.T) {
	fromFile := config.Default()
	fromFile.Permutation.ParamsFile = shippedParams
	fromFile.Scheme.Group = group.KyberEdwards25519Name

	a, err := app.NewWire(config.Default())
	require.NoError(t, err)
	b, err := app.NewWire(fromFile)
	require.NoError(t, err)

	var seed reddsa.Seed
	copy(seed[:], "a fixed seed for the wire test!!")
	sigA, err := a.Scheme.Sign([]byte("m"), seed)
	require.NoError(t, err)
	sigB, err := b.Scheme.Sign([]byte("m"), seed)
	require.NoError(t, err)
	assert.Equal(t, sigA, sigB)
}

func TestNewWire_Jubjub(t *testing.T) {
	cfg := config.Default()
	cfg.Permutation.Field = field.JubjubScalar
	cfg.Scheme.Group = group.JubjubName

	generated, err := app.NewWire(cfg)
	require.NoError(t, err)
	assert.Equal(t, group.JubjubName, generated.Group.Name())

	cfg.Permutation.ParamsFile = filepath.Join("..", "..", "params", "poseidon_t4_jubjub.json")
	fromFile, err := app.NewWire(cfg)
	require.NoError(t, err)
	assert.True(t, generated.Params.Equal(fromFile.Params))

	res, err := fromFile.Smoke(3, nil)
	require.NoError(t, err)
	assert.Len(t, res.PublicKey, 32)
	assert.True(t, generated.Scheme.Verify([]byte(app.SmokeMessage), res.PublicKey, res.Signature))

	// The edwards25519 field cannot drive Jubjub signatures.
	cfg.Permutation.ParamsFile = ""
	cfg.Permutation.Field = field.Edwards25519Scalar
	_, err = app.NewWire(cfg)
	assert.True(t, errors.Is(err, reddsa.ErrConfiguration))
}

func TestNewWire_Errors(t *testing.T) {
	// The BLS12-381 field does not match the edwards25519 order.
	bls := config.Default()
	bls.Permutation.Field = field.BLS12381Fr
	_, err := app.NewWire(bls)
	assert.True(t, errors.Is(err, reddsa.ErrConfiguration))

	narrow := config.Default()
	narrow.Permutation.Width = 3
	narrow.Permutation.PartialRounds = 57
	_, err = app.NewWire(narrow)
	assert.True(t, errors.Is(err, reddsa.ErrConfiguration))

	missing := config.Default()
	missing.Permutation.ParamsFile = filepath.Join(t.TempDir(), "missing.json")
	_, err = app.NewWire(missing)
	assert.True(t, errors.Is(err, poseidon.ErrConfiguration))

	badAlpha := config.Default()
	badAlpha.Permutation.SboxPower = 3
	_, err = app.NewWire(badAlpha)
	assert.True(t, errors.Is(err, poseidon.ErrConfiguration))

	unknown := config.Default()
	unknown.Scheme.Group = "p256"
	_, err = app.NewWire(unknown)
	assert.True(t, errors.Is(err, config.ErrInvalidConfig))
}

func TestSmoke(t *testing.T) {
	w, err := app.NewWire(config.Default())
	require.NoError(t, err)

	res, err := w.Smoke(5, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, res.Iterations)
	assert.True(t, w.Scheme.Verify([]byte(app.SmokeMessage), res.PublicKey, res.Signature))

	_, err = w.Smoke(0, nil)
	assert.Error(t, err)

	// A reader that runs dry fails the second iteration.
	_, err = w.Smoke(2, bytes.NewReader(make([]byte, reddsa.SeedSize)))
	assert.Error(t, err)
}
