// errors.go
package qgate

import (
	"errors"
	"fmt"
)

var (
	// ErrCapabilityMissing is returned when a required capability (sizing,
	// diagram info without a default) is absent from a value.
	ErrCapabilityMissing = errors.New("qgate: required capability missing")

	// ErrNotInvertible is returned by Inverse when a value does not support
	// the power capability at exponent -1 and no default was supplied.
	ErrNotInvertible = errors.New("qgate: value is not invertible")

	// ErrBadShape is returned when a qid shape is empty or contains an entry
	// below 2.
	ErrBadShape = errors.New("qgate: invalid qid shape")

	// ErrBadDimension is returned when a qid declares a dimension below 2.
	ErrBadDimension = errors.New("qgate: qid dimension must be at least 2")

	// ErrShapeMismatch is returned when an operation's qid count does not
	// match its gate's shape, or a qid's dimension does not match the shape
	// entry at its position.
	ErrShapeMismatch = errors.New("qgate: qids do not match gate shape")

	// ErrDuplicateQid is returned when the same qid appears twice in one
	// operation.
	ErrDuplicateQid = errors.New("qgate: duplicate qid in operation")

	// ErrNilKeep is returned by Decompose when no keep predicate was given.
	ErrNilKeep = errors.New("qgate: decompose requires a keep predicate")

	// ErrExpansionBudget is returned by Decompose when the opt-in
	// WithMaxExpansions cutoff is exhausted before the frontier drains.
	ErrExpansionBudget = errors.New("qgate: decomposition expansion budget exhausted")
)

/*
DeadEndError reports a value the decomposition engine could neither keep nor
expand: the keep predicate rejected it and every expansion source
(interceptors, the value's own decomposition capability, the fallback)
returned not-supported.
*/
type DeadEndError struct {
	// Value is the stuck value, verbatim.
	Value any
}

func (e *DeadEndError) Error() string {
	if op, ok := e.Value.(Operation); ok {
		shape, _ := QidShapeOf(op)
		return fmt.Sprintf("qgate: dead end: operation %v (shape %v) cannot be kept or decomposed", op, shape)
	}
	return fmt.Sprintf("qgate: dead end: value %v (%T) cannot be kept or decomposed", e.Value, e.Value)
}
