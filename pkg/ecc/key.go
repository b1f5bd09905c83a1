package ecc

import (
	"math/big"
	"sync"
)

// KeyParams lists the components a Key is built from. Curve must be "P-256"
// and at least one of D and Point must be set.
type KeyParams struct {
	Curve string

	// D is the private scalar, in [1, order-1].
	D *big.Int

	// Point is the public point. When set together with D it is trusted as
	// given: NewKey does NOT check that Point equals D·G.
	Point *Point
}

// Key is a P-256 key holding a private scalar, a public point, or both.
//
// A Key is immutable after construction. When only the private scalar is
// known, the public point is derived on first use and cached; concurrent first
// calls compute it exactly once.
type Key struct {
	curve *Curve
	d     *big.Int
	q     *Point

	qOnce sync.Once
}

// Signature is a raw ECDSA signature.
type Signature struct {
	R *big.Int
	S *big.Int
}

// NewKey validates params and returns the corresponding Key.
func NewKey(params KeyParams) (*Key, error) {
	curve, err := LookupCurve(params.Curve)
	if err != nil {
		return nil, opErrorf("NewKey", ErrInvalidCurve, "%q", params.Curve)
	}

	if params.D == nil && params.Point == nil {
		return nil, opError("NewKey", ErrMissingComponent)
	}

	k := &Key{curve: curve}
	if params.D != nil {
		if !curve.inScalarRange(params.D) {
			return nil, opError("NewKey", ErrInvalidPrivateComponent)
		}
		k.d = new(big.Int).Set(params.D)
	}
	if params.Point != nil {
		if params.Point.IsInfinity() || !params.Point.IsOnCurve() {
			return nil, opError("NewKey", ErrInvalidPublicComponent)
		}
		k.q = params.Point
	}
	return k, nil
}

// NewPrivateKey returns a private key for scalar d.
func NewPrivateKey(curve string, d *big.Int) (*Key, error) {
	return NewKey(KeyParams{Curve: curve, D: d})
}

// NewPublicKey returns a public key for point q.
func NewPublicKey(curve string, q *Point) (*Key, error) {
	return NewKey(KeyParams{Curve: curve, Point: q})
}

// Curve returns the curve of the key.
func (k *Key) Curve() *Curve {
	return k.curve
}

// HasPrivate reports whether k holds the private scalar.
func (k *Key) HasPrivate() bool {
	return k.d != nil
}

// D returns a copy of the private scalar.
func (k *Key) D() (*big.Int, error) {
	if !k.HasPrivate() {
		return nil, opError("D", ErrMissingPrivateKey)
	}
	return new(big.Int).Set(k.d), nil
}

// PointQ returns the public point, deriving it as d·G the first time it is
// needed.
func (k *Key) PointQ() *Point {
	k.qOnce.Do(func() {
		if k.q != nil {
			return
		}
		// d is in [1, order-1], Multiply cannot fail.
		q, err := k.curve.g.Multiply(k.d)
		if err != nil {
			panic(err)
		}
		k.q = q
	})
	return k.q
}

// PublicKey returns a key holding only the public point of k.
func (k *Key) PublicKey() *Key {
	return &Key{curve: k.curve, q: k.PointQ()}
}

// Equal reports whether k and other have the same public point and the same
// private scalar, if any.
func (k *Key) Equal(other *Key) bool {
	if other == nil || k.HasPrivate() != other.HasPrivate() {
		return false
	}
	if k.HasPrivate() && k.d.Cmp(other.d) != 0 {
		return false
	}
	return k.PointQ().Equal(other.PointQ())
}

// Sign computes the raw ECDSA signature of the message representative z with
// the per-signature secret k, 0 < k < order:
//
//	r = (k·G).x mod order
//	s = k⁻¹(z + d·r) mod order
//
// The caller owns k. Reusing k, or choosing it predictably, reveals the
// private scalar. No blinding is applied.
func (k *Key) Sign(z, nonce *big.Int) (*Signature, error) {
	if !k.HasPrivate() {
		return nil, opError("Sign", ErrMissingPrivateKey)
	}
	if z == nil {
		return nil, opErrorf("Sign", ErrInvalidScalar, "nil message representative")
	}
	n := k.curve.order
	if !k.curve.inScalarRange(nonce) {
		return nil, opErrorf("Sign", ErrInvalidScalar, "nonce out of range")
	}

	R, err := k.curve.g.Multiply(nonce)
	if err != nil {
		return nil, opError("Sign", err)
	}
	r := new(big.Int).Mod(R.x, n)
	if r.Sign() == 0 {
		return nil, opErrorf("Sign", ErrInvalidScalar, "nonce yields r = 0")
	}

	s := new(big.Int).Mul(k.d, r)
	s.Add(s, z)
	s.Mul(s, new(big.Int).ModInverse(nonce, n))
	s.Mod(s, n)
	if s.Sign() == 0 {
		return nil, opErrorf("Sign", ErrInvalidScalar, "nonce yields s = 0")
	}

	return &Signature{R: r, S: s}, nil
}

// Verify reports whether sig is a valid raw ECDSA signature of z under the
// public point of k. A signature that does not check out yields false and a
// nil error; an error is returned only for missing inputs.
func (k *Key) Verify(z *big.Int, sig *Signature) (bool, error) {
	if z == nil || sig == nil || sig.R == nil || sig.S == nil {
		return false, opErrorf("Verify", ErrInvalidScalar, "missing input")
	}
	if !k.curve.inScalarRange(sig.R) || !k.curve.inScalarRange(sig.S) {
		return false, nil
	}
	n := k.curve.order

	w := new(big.Int).ModInverse(sig.S, n)
	u1 := new(big.Int).Mul(w, z)
	u1.Mod(u1, n)
	u2 := new(big.Int).Mul(w, sig.R)
	u2.Mod(u2, n)

	p1, err := k.curve.g.Multiply(u1)
	if err != nil {
		return false, opError("Verify", err)
	}
	p2, err := k.PointQ().Multiply(u2)
	if err != nil {
		return false, opError("Verify", err)
	}
	R := p1.Add(p2)
	if R.IsInfinity() {
		return false, nil
	}

	v := new(big.Int).Mod(R.x, n)
	return v.Cmp(sig.R) == 0, nil
}
