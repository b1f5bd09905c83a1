package ecc

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCurve indicates a curve identifier other than "P-256".
	ErrInvalidCurve = errors.New("ecc: unsupported curve")

	// ErrInvalidPrivateComponent indicates a private scalar outside [1, order-1].
	ErrInvalidPrivateComponent = errors.New("ecc: invalid private component")

	// ErrInvalidPublicComponent indicates an unusable public point.
	ErrInvalidPublicComponent = errors.New("ecc: invalid public component")

	// ErrMissingComponent indicates that neither a private scalar nor a public
	// point was supplied.
	ErrMissingComponent = errors.New("ecc: either private or public component must be specified")

	// ErrPointAtInfinity indicates a coordinate access on the point at infinity.
	ErrPointAtInfinity = errors.New("ecc: point at infinity")

	// ErrPointNotOnCurve indicates coordinates that do not describe a curve point.
	ErrPointNotOnCurve = errors.New("ecc: point not on curve")

	// ErrInvalidScalar indicates a scalar outside the range an operation accepts.
	ErrInvalidScalar = errors.New("ecc: invalid scalar")

	// ErrMissingPrivateKey indicates a private operation on a public-only key.
	ErrMissingPrivateKey = errors.New("ecc: not a private key")

	// ErrRandomness indicates the random source failed to deliver bytes.
	ErrRandomness = errors.New("ecc: random source failure")
)

// Error wraps an underlying error with the operation that failed.
type Error struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("ecc.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// opError tags err with op. The sentinel stays reachable through errors.Is.
func opError(op string, err error) error {
	return &Error{Op: op, Err: err}
}

// opErrorf wraps sentinel with extra detail for op.
func opErrorf(op string, sentinel error, format string, args ...any) error {
	return &Error{
		Op:  op,
		Err: fmt.Errorf("%w: "+format, append([]any{sentinel}, args...)...),
	}
}
