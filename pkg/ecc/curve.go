package ecc

import (
	"math/big"
)

// CurveP256 is the only curve identifier accepted by this package.
const CurveP256 = "P-256"

// Curve holds the domain parameters of a short Weierstrass curve
// y² = x³ - 3x + b over GF(p).
//
// Curve values are immutable. Accessors return copies so callers cannot
// disturb the process-wide parameters.
type Curve struct {
	name  string
	p     *big.Int // field prime
	order *big.Int // order of the base point
	b     *big.Int
	g     *Point
}

// NIST P-256 (FIPS 186-4, D.1.2.3).
var p256 = newCurve(
	CurveP256,
	"ffffffff00000001000000000000000000000000ffffffffffffffffffffffff",
	"ffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551",
	"5ac635d8aa3a93e7b3ebbd55769886bc651d06b0cc53b0f63bce3c3e27d2604b",
	"6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296",
	"4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5",
)

func newCurve(name, p, order, b, gx, gy string) *Curve {
	return &Curve{
		name:  name,
		p:     mustHex(p),
		order: mustHex(order),
		b:     mustHex(b),
		g:     &Point{x: mustHex(gx), y: mustHex(gy)},
	}
}

func mustHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("ecc: bad curve constant " + s)
	}
	return v
}

// P256 returns the NIST P-256 curve.
func P256() *Curve {
	return p256
}

// LookupCurve returns the curve registered under name. Only "P-256" is
// supported.
func LookupCurve(name string) (*Curve, error) {
	if name != CurveP256 {
		return nil, opErrorf("LookupCurve", ErrInvalidCurve, "%q", name)
	}
	return p256, nil
}

// Name returns the canonical curve name.
func (c *Curve) Name() string {
	return c.name
}

// P returns the prime modulus of the base field.
func (c *Curve) P() *big.Int {
	return new(big.Int).Set(c.p)
}

// Order returns the prime order of the base point.
func (c *Curve) Order() *big.Int {
	return new(big.Int).Set(c.order)
}

// B returns the constant term of the curve equation.
func (c *Curve) B() *big.Int {
	return new(big.Int).Set(c.b)
}

// Generator returns the base point G. The returned point is shared; points are
// immutable, and sharing it lets repeated base-point multiplications reuse the
// same precomputed table.
func (c *Curve) Generator() *Point {
	return c.g
}

// BitSize returns the bit length of the group order.
func (c *Curve) BitSize() int {
	return c.order.BitLen()
}

// ByteSize returns the number of bytes needed to hold a scalar.
func (c *Curve) ByteSize() int {
	return (c.order.BitLen() + 7) / 8
}

func (c *Curve) String() string {
	return c.name
}

// inScalarRange reports whether 1 <= k < order.
func (c *Curve) inScalarRange(k *big.Int) bool {
	return k != nil && k.Sign() > 0 && k.Cmp(c.order) < 0
}
