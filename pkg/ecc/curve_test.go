package ecc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupCurve(t *testing.T) {
	c, err := LookupCurve("P-256")
	require.NoError(t, err)
	assert.Same(t, P256(), c)
	assert.Equal(t, "P-256", c.Name())
	assert.Equal(t, "P-256", c.String())

	for _, name := range []string{"P-384", "P-521", "secp256k1", "prime256v1", "p256", ""} {
		t.Run(name, func(t *testing.T) {
			c, err := LookupCurve(name)
			assert.Nil(t, c)
			assert.ErrorIs(t, err, ErrInvalidCurve)
		})
	}
}

func TestCurveParameters(t *testing.T) {
	c := P256()

	assert.Equal(t, 256, c.P().BitLen())
	assert.Equal(t, 256, c.BitSize())
	assert.Equal(t, 32, c.ByteSize())
	assert.True(t, c.P().ProbablyPrime(20))
	assert.True(t, c.Order().ProbablyPrime(20))
	assert.Equal(t, "5ac635d8aa3a93e7b3ebbd55769886bc651d06b0cc53b0f63bce3c3e27d2604b", c.B().Text(16))

	// P-256 has cofactor 1 and n < p.
	assert.True(t, c.Order().Cmp(c.P()) < 0)
}

func TestCurveParametersAreCopies(t *testing.T) {
	c := P256()

	c.P().SetInt64(7)
	c.Order().SetInt64(7)
	c.B().SetInt64(7)

	assert.Equal(t, "ffffffff00000001000000000000000000000000ffffffffffffffffffffffff", c.P().Text(16))
	assert.Equal(t, "ffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551", c.Order().Text(16))
	assert.True(t, c.Generator().IsOnCurve())
}

func TestMustHexPanicsOnGarbage(t *testing.T) {
	assert.Panics(t, func() { mustHex("not hex") })
}
