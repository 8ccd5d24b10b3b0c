// shape.go
package qgate

import (
	"fmt"
	"strings"
)

/*
Shape lists the dimension of every unit an operation acts on, in operand
order. Its length is the operation's arity; every entry is at least 2, and a
qubit-only operation is all 2s.
*/
type Shape []int

// Validate checks the shape invariants: non-empty, all entries >= 2.
func (s Shape) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("empty shape: %w", ErrBadShape)
	}
	for i, d := range s {
		if d < 2 {
			return fmt.Errorf("shape entry %d is %d: %w", i, d, ErrBadShape)
		}
	}
	return nil
}

// NumQids returns the arity the shape describes.
func (s Shape) NumQids() int { return len(s) }

// IsQubitOnly reports whether every entry is dimension 2.
func (s Shape) IsQubitOnly() bool {
	for _, d := range s {
		if d != 2 {
			return false
		}
	}
	return true
}

func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = fmt.Sprintf("%d", d)
	}
	return "(" + strings.Join(parts, ",") + ")"
}

// QubitShape returns the all-2s shape of arity n.
func QubitShape(n int) Shape {
	s := make(Shape, n)
	for i := range s {
		s[i] = 2
	}
	return s
}

/*
QidShapeOf sizes a value from whichever sizing capability it carries. The
qid-shape capability wins when present and is validated; otherwise a
qubit-count capability is expanded to an all-2s shape. A value with neither
capability cannot be used as a gate or operation and fails with
ErrCapabilityMissing.

This is the only place the two sizing capabilities are reconciled; no other
component branches on which one a value implements.
*/
func QidShapeOf(val any) (Shape, error) {
	if shaped, ok := Query[Shaped](val); ok {
		shape := shaped.QidShape()
		if err := shape.Validate(); err != nil {
			return nil, err
		}
		return shape, nil
	}
	if counted, ok := Query[QubitCounted](val); ok {
		n := counted.NumQubits()
		if n < 1 {
			return nil, fmt.Errorf("qubit count %d: %w", n, ErrBadShape)
		}
		return QubitShape(n), nil
	}
	return nil, fmt.Errorf("value %T exposes neither qid-shape nor qubit-count: %w", val, ErrCapabilityMissing)
}

// NumQidsOf returns the arity of a value, sized the same way as QidShapeOf.
func NumQidsOf(val any) (int, error) {
	shape, err := QidShapeOf(val)
	if err != nil {
		return 0, err
	}
	return shape.NumQids(), nil
}
