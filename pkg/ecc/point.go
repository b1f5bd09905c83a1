package ecc

import (
	"math/big"
	"sync"
)

var three = big.NewInt(3)

// Point is a point on P-256 in affine coordinates, or the point at infinity.
//
// Points are immutable values: every operation returns a new Point. A Point
// may carry a lazily built table of small multiples of itself which speeds up
// repeated calls to Multiply. The table never affects Equal or the
// coordinates, and building it is safe for concurrent use.
type Point struct {
	x, y *big.Int
	inf  bool

	tableOnce sync.Once
	table     *nafTable
}

// NewPoint returns the affine point (x, y). Both coordinates must be reduced
// into [0, p) and satisfy the curve equation.
func NewPoint(x, y *big.Int) (*Point, error) {
	if x == nil || y == nil {
		return nil, opErrorf("NewPoint", ErrPointNotOnCurve, "nil coordinate")
	}
	pt := &Point{x: new(big.Int).Set(x), y: new(big.Int).Set(y)}
	if !pt.IsOnCurve() {
		return nil, opError("NewPoint", ErrPointNotOnCurve)
	}
	return pt, nil
}

// Infinity returns the point at infinity, the identity of the group.
func Infinity() *Point {
	return &Point{inf: true}
}

// IsInfinity reports whether p is the point at infinity.
func (p *Point) IsInfinity() bool {
	return p.inf
}

// X returns a copy of the affine x coordinate.
func (p *Point) X() (*big.Int, error) {
	if p.inf {
		return nil, opError("X", ErrPointAtInfinity)
	}
	return new(big.Int).Set(p.x), nil
}

// Y returns a copy of the affine y coordinate.
func (p *Point) Y() (*big.Int, error) {
	if p.inf {
		return nil, opError("Y", ErrPointAtInfinity)
	}
	return new(big.Int).Set(p.y), nil
}

// IsOnCurve reports whether p satisfies y² = x³ - 3x + b with coordinates in
// [0, p). The point at infinity is on every curve.
func (p *Point) IsOnCurve() bool {
	if p.inf {
		return true
	}
	if p.x == nil || p.y == nil {
		return false
	}
	P := p256.p
	if p.x.Sign() < 0 || p.x.Cmp(P) >= 0 || p.y.Sign() < 0 || p.y.Cmp(P) >= 0 {
		return false
	}

	lhs := new(big.Int).Mul(p.y, p.y)
	lhs.Mod(lhs, P)

	rhs := new(big.Int).Mul(p.x, p.x)
	rhs.Sub(rhs, three)
	rhs.Mul(rhs, p.x)
	rhs.Add(rhs, p256.b)
	rhs.Mod(rhs, P)

	return lhs.Cmp(rhs) == 0
}

// Equal reports whether p and q are the same group element.
func (p *Point) Equal(q *Point) bool {
	if p.inf || q.inf {
		return p.inf == q.inf
	}
	return p.x.Cmp(q.x) == 0 && p.y.Cmp(q.y) == 0
}

// Copy returns a point with the same coordinates. The copy does not share the
// multiples table.
func (p *Point) Copy() *Point {
	if p.inf {
		return Infinity()
	}
	return &Point{x: new(big.Int).Set(p.x), y: new(big.Int).Set(p.y)}
}

// Neg returns -p.
func (p *Point) Neg() *Point {
	if p.inf {
		return Infinity()
	}
	y := new(big.Int).Sub(p256.p, p.y)
	// -(x, 0) is (x, 0); keep y reduced.
	y.Mod(y, p256.p)
	return &Point{x: new(big.Int).Set(p.x), y: y}
}

// Double returns 2p.
func (p *Point) Double() *Point {
	if p.inf || p.y.Sign() == 0 {
		return Infinity()
	}
	P := p256.p

	// λ = (3x² - 3) / 2y
	lambda := new(big.Int).Mul(p.x, p.x)
	lambda.Mul(lambda, three)
	lambda.Sub(lambda, three)
	denom := new(big.Int).Lsh(p.y, 1)
	denom.ModInverse(denom, P)
	lambda.Mul(lambda, denom)
	lambda.Mod(lambda, P)

	// x3 = λ² - 2x
	x3 := new(big.Int).Mul(lambda, lambda)
	x3.Sub(x3, p.x)
	x3.Sub(x3, p.x)
	x3.Mod(x3, P)

	// y3 = (x - x3)λ - y
	y3 := new(big.Int).Sub(p.x, x3)
	y3.Mul(y3, lambda)
	y3.Sub(y3, p.y)
	y3.Mod(y3, P)

	return &Point{x: x3, y: y3}
}

// Add returns p + q.
func (p *Point) Add(q *Point) *Point {
	switch {
	case p.inf:
		return q.Copy()
	case q.inf:
		return p.Copy()
	case p.Equal(q):
		return p.Double()
	case p.x.Cmp(q.x) == 0:
		// q = -p
		return Infinity()
	}
	P := p256.p

	// λ = (qy - py) / (qx - px)
	lambda := new(big.Int).Sub(q.y, p.y)
	denom := new(big.Int).Sub(q.x, p.x)
	denom.Mod(denom, P)
	denom.ModInverse(denom, P)
	lambda.Mul(lambda, denom)
	lambda.Mod(lambda, P)

	// x3 = λ² - px - qx
	x3 := new(big.Int).Mul(lambda, lambda)
	x3.Sub(x3, p.x)
	x3.Sub(x3, q.x)
	x3.Mod(x3, P)

	// y3 = (px - x3)λ - py
	y3 := new(big.Int).Sub(p.x, x3)
	y3.Mul(y3, lambda)
	y3.Sub(y3, p.y)
	y3.Mod(y3, P)

	return &Point{x: x3, y: y3}
}

// String returns a human readable form of the point.
func (p *Point) String() string {
	if p == nil {
		return "<nil point>"
	}
	if p.inf {
		return "Point(∞)"
	}
	return "Point(x: " + p.x.Text(16) + ", y: " + p.y.Text(16) + ")"
}
