// inverse.go
package qgate

import "fmt"

/*
Inverse returns the inverse of a value by querying its power capability at
exponent -1. Values supporting other exponents are still asked only for -1
here; other exponents are an orthogonal use of the same capability.

Fails with ErrNotInvertible when the capability is absent or declines the
exponent.
*/
func Inverse(val any) (any, error) {
	p, ok := Query[Powerable](val)
	if !ok {
		return nil, fmt.Errorf("value %T has no power capability: %w", val, ErrNotInvertible)
	}
	inv, ok := p.Pow(-1)
	if !ok {
		return nil, fmt.Errorf("value %v declined exponent -1: %w", val, ErrNotInvertible)
	}
	return inv, nil
}

// InverseOr is Inverse with a default: def is returned instead of an error
// when the value is not invertible.
func InverseOr(val, def any) any {
	inv, err := Inverse(val)
	if err != nil {
		return def
	}
	return inv
}

/*
InverseSequence inverts a sequence: every element is inverted individually
and the order is reversed. Only the reversed order undoes the original
sequence when elements do not commute, so the reversal is a correctness
requirement, not a presentation choice.

The first non-invertible element aborts the whole call with its error.
*/
func InverseSequence[S ~[]E, E any](vals S) (S, error) {
	out := make(S, len(vals))
	for i, v := range vals {
		inv, err := Inverse(v)
		if err != nil {
			return nil, err
		}
		typed, ok := inv.(E)
		if !ok {
			return nil, fmt.Errorf("qgate: inverse of %v is %T, want %T", v, inv, *new(E))
		}
		out[len(vals)-1-i] = typed
	}
	return out, nil
}

// InverseSequenceOr is InverseSequence with a default: if any element is not
// invertible, def replaces the entire result. The default never substitutes
// a single element; callers wanting per-element defaults use InverseOr.
func InverseSequenceOr[S ~[]E, E any](vals S, def S) S {
	out, err := InverseSequence(vals)
	if err != nil {
		return def
	}
	return out
}
