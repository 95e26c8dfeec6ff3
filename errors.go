package liesym

import (
	"errors"

	"liesym/sym"
)

var (
	// ErrSpaceMismatch reports an operand built over a different total
	// space than the one it is combined with.
	ErrSpaceMismatch = errors.New("liesym: total space mismatch")

	// ErrLengthMismatch reports paired slices of unequal length.
	ErrLengthMismatch = errors.New("liesym: length mismatch")

	// ErrNoHints reports a symmetry-condition call without hint
	// derivatives; hint-free restriction is not implemented.
	ErrNoHints = errors.New("liesym: no hint derivatives given")

	// ErrHintAbsent reports a hint derivative its equation cannot be
	// solved for because the derivative does not occur linearly.
	ErrHintAbsent = errors.New("liesym: hint derivative absent from equation")

	// ErrHintAmbiguous reports a hint derivative with no unique solution,
	// from a non-linear occurrence or a duplicated hint.
	ErrHintAmbiguous = errors.New("liesym: hint derivative has no unique solution")

	// ErrBadExtension reports a jet space extension to a degree that is
	// not strictly larger.
	ErrBadExtension = errors.New("liesym: extension degree must exceed current degree")

	// ErrNotLinear reports a generator whose components are not linear in
	// the decomposition basis.
	ErrNotLinear = errors.New("liesym: generator is not linear in the basis")

	// ErrInconsistent mirrors the kernel's linear-solver sentinel.
	ErrInconsistent = sym.ErrInconsistent
)
