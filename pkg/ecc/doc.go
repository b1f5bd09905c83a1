// Package ecc implements elliptic curve arithmetic on NIST P-256 and the raw
// ECDSA signing and verification primitives built on it.
//
// # Key Types
//
//   - Curve: the P-256 domain parameters (process-wide, immutable)
//   - Point: an affine curve point or the point at infinity
//   - Key: a private scalar and/or public point
//   - Signature: a raw (r, s) pair
//
// # Common Operations
//
//	key, err := ecc.Generate(ecc.CurveP256, nil)
//	if err != nil {
//	    return err
//	}
//
//	// z is the hash of the message reduced to an integer; k is a fresh,
//	// secret, per-signature scalar in [1, order-1].
//	sig, err := key.Sign(z, k)
//
//	ok, err := key.PublicKey().Verify(z, sig)
//
// Scalar multiplication uses width-4 NAF recoding with a table of odd
// multiples that each Point computes once and then reuses:
//
//	q, err := ecc.P256().Generator().Multiply(d)
//
// # Security Considerations
//
// Arithmetic is done with math/big and is NOT constant time. Sign takes the
// per-signature secret from the caller and applies no blinding; reusing or
// predicting it leaks the private key. Hashing, nonce generation and key
// encodings belong to the caller.
package ecc
