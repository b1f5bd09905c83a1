package ecc

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"runtime"

	"github.com/coinbase/ecc-go/pkg/ecc/logging"
)

// maxGenerateAttempts bounds rejection sampling. For P-256 a candidate is
// rejected with probability below 2^-32, so hitting the bound means the
// random source is broken.
const maxGenerateAttempts = 128

// RandFunc returns n random bytes.
type RandFunc func(n int) ([]byte, error)

// SystemRand reads from crypto/rand.
func SystemRand(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// Config carries the collaborators used for key generation.
type Config struct {
	// Rand is the random byte source. Nil selects SystemRand.
	Rand RandFunc

	// Logger receives debug records. Nil selects logging.New(nil).
	Logger logging.Logger
}

// Generate returns a new private key on curve with d drawn uniformly from
// [1, order-1] using randfunc. A nil randfunc selects SystemRand.
func Generate(curve string, randfunc RandFunc) (*Key, error) {
	return Config{Rand: randfunc}.Generate(context.Background(), curve)
}

// Generate returns a new private key on curve using the configured random
// source.
func (c Config) Generate(ctx context.Context, curve string) (*Key, error) {
	cur, err := LookupCurve(curve)
	if err != nil {
		return nil, opErrorf("Generate", ErrInvalidCurve, "%q", curve)
	}
	randfunc := c.Rand
	if randfunc == nil {
		randfunc = SystemRand
	}
	logger := c.Logger
	if logger == nil {
		logger = logging.New(nil)
	}

	d, attempts, err := randomScalar(cur, randfunc)
	if err != nil {
		logger.Warn(ctx, "key generation failed", "curve", cur.Name(), "attempts", attempts, "error", err)
		return nil, opError("Generate", err)
	}
	logger.Debug(ctx, "generated private key",
		"curve", cur.Name(),
		"attempts", attempts,
		logging.Redacted("d"),
		logging.BitLen("d_bits", d),
	)

	return NewKey(KeyParams{Curve: curve, D: d})
}

// randomScalar draws d uniformly from [1, order-1] by rejection sampling:
// candidates of BitSize bits are taken from randfunc and discarded until one
// falls in range.
func randomScalar(c *Curve, randfunc RandFunc) (*big.Int, int, error) {
	size := c.ByteSize()
	excess := uint(size*8 - c.BitSize())

	for attempt := 1; attempt <= maxGenerateAttempts; attempt++ {
		buf, err := randfunc(size)
		if err != nil {
			return nil, attempt, fmt.Errorf("%w: %v", ErrRandomness, err)
		}
		if len(buf) != size {
			zeroizeBytes(buf)
			return nil, attempt, fmt.Errorf("%w: short read: got %d bytes, want %d", ErrRandomness, len(buf), size)
		}
		buf[0] &= byte(0xff >> excess)

		d := new(big.Int).SetBytes(buf)
		zeroizeBytes(buf)
		if c.inScalarRange(d) {
			return d, attempt, nil
		}
	}
	return nil, maxGenerateAttempts, fmt.Errorf("%w: no scalar in range after %d attempts", ErrRandomness, maxGenerateAttempts)
}

// zeroizeBytes overwrites buf with zeros. runtime.KeepAlive keeps the
// compiler from dropping the stores.
func zeroizeBytes(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	runtime.KeepAlive(buf)
}
