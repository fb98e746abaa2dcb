package symcore

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the solver and by NumberFromRational.
// Expression-level failures never use these: they collapse to the
// Undefined expression instead (see Undefined in expr.go), matching
// tsym's IndeterminateForm/DomainError handling. The polynomial
// operations report invalid input the same way, as Undefined results.
var (
	// ErrSingularMatrix is returned (as a *SingularMatrixError) by Solve
	// and Invert when back-substitution meets an exactly zero pivot on
	// the diagonal of the factorized matrix. Determinant returns no error.
	ErrSingularMatrix = errors.New("symcore: singular matrix")

	// ErrInvalidPolynomial is what an *InvalidPolynomialError unwraps
	// to; NumberFromRational returns one for a zero denominator.
	ErrInvalidPolynomial = errors.New("symcore: invalid polynomial input")
)

// SingularMatrixError carries the diagonal position of the zero pivot
// that stopped back-substitution, for callers that need more than
// errors.Is.
type SingularMatrixError struct {
	Row, Col int
}

func (e *SingularMatrixError) Error() string {
	return fmt.Sprintf("symcore: singular matrix at row %d, col %d", e.Row, e.Col)
}

func (e *SingularMatrixError) Unwrap() error { return ErrSingularMatrix }

// InvalidPolynomialError explains why an expression failed the
// polynomial preconditions.
type InvalidPolynomialError struct {
	Reason string
}

func (e *InvalidPolynomialError) Error() string {
	return fmt.Sprintf("symcore: invalid polynomial: %s", e.Reason)
}

func (e *InvalidPolynomialError) Unwrap() error { return ErrInvalidPolynomial }
