package memzero_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"tokamakauth/internal/util/memzero"
)

func TestZero(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	memzero.Zero(b)
	assert.Equal(t, []byte{0, 0, 0, 0}, b)

	memzero.Zero(nil)
}

func TestInt(t *testing.T) {
	x, _ := new(big.Int).SetString("deadbeefdeadbeefdeadbeefdeadbeefdeadbeef", 16)
	words := x.Bits()
	memzero.Int(x)

	assert.Equal(t, 0, x.Sign())
	for _, w := range words {
		assert.Zero(t, w)
	}
	memzero.Int(nil)
}
