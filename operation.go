// operation.go
package qgate

import (
	"fmt"
	"strings"
)

/*
Operation binds a gate to the qids it acts on. Operations are immutable once
constructed and carry the capability surface of their gate: sizing, unitary,
decomposition, power, and diagram queries all delegate to the gate, with the
qids bound in where the capability needs them.

The gate can be any value; it only needs one of the two sizing capabilities
to be usable here, and whichever other capabilities it chooses to implement.
*/
type Operation struct {
	gate  any
	qids  []Qid
	shape Shape
}

/*
NewOperation validates and builds an operation. The qid count must equal the
gate's shape length, each qid's dimension must match the shape entry at its
position, and qids must be pairwise distinct.
*/
func NewOperation(gate any, qids ...Qid) (Operation, error) {
	shape, err := QidShapeOf(gate)
	if err != nil {
		return Operation{}, err
	}
	if len(qids) != len(shape) {
		return Operation{}, fmt.Errorf("gate %v wants %d qids, got %d: %w",
			gate, len(shape), len(qids), ErrShapeMismatch)
	}
	seen := make(map[Qid]bool, len(qids))
	for i, q := range qids {
		if err := ValidQid(q); err != nil {
			return Operation{}, err
		}
		if q.Dimension() != shape[i] {
			return Operation{}, fmt.Errorf("qid %v has dimension %d, shape wants %d at position %d: %w",
				q, q.Dimension(), shape[i], i, ErrShapeMismatch)
		}
		if seen[q] {
			return Operation{}, fmt.Errorf("qid %v appears twice: %w", q, ErrDuplicateQid)
		}
		seen[q] = true
	}
	bound := make([]Qid, len(qids))
	copy(bound, qids)
	return Operation{gate: gate, qids: bound, shape: shape}, nil
}

// mustOperation is for statically valid constructions, such as the native
// gate decompositions in this package.
func mustOperation(gate any, qids ...Qid) Operation {
	op, err := NewOperation(gate, qids...)
	if err != nil {
		panic(err)
	}
	return op
}

// Gate returns the gate this operation applies.
func (o Operation) Gate() any { return o.gate }

// Qids returns the qids this operation acts on, in operand order.
func (o Operation) Qids() []Qid {
	qids := make([]Qid, len(o.qids))
	copy(qids, o.qids)
	return qids
}

// QidShape implements the qid-shape capability.
func (o Operation) QidShape() Shape { return o.shape }

// Unitary implements the matrix capability by asking the gate.
func (o Operation) Unitary() (Matrix, bool) {
	if u, ok := Query[Unitarier](o.gate); ok {
		return u.Unitary()
	}
	return nil, false
}

// Decompose implements the value-level decomposition capability by binding
// this operation's qids into the gate's decomposition.
func (o Operation) Decompose() ([]Operation, bool) {
	if d, ok := Query[GateDecomposer](o.gate); ok {
		return d.Decompose(o.qids)
	}
	return nil, false
}

// Pow implements the power capability: the gate is raised and rebound onto
// the same qids. The result is an Operation.
func (o Operation) Pow(exponent float64) (any, bool) {
	p, ok := Query[Powerable](o.gate)
	if !ok {
		return nil, false
	}
	raised, ok := p.Pow(exponent)
	if !ok {
		return nil, false
	}
	op, err := NewOperation(raised, o.qids...)
	if err != nil {
		return nil, false
	}
	return op, true
}

// DiagramInfo implements the diagram-label capability by asking the gate.
func (o Operation) DiagramInfo(args DiagramArgs) (DiagramInfo, bool) {
	if d, ok := Query[Diagrammable](o.gate); ok {
		return d.DiagramInfo(args)
	}
	return DiagramInfo{}, false
}

func (o Operation) String() string {
	names := make([]string, len(o.qids))
	for i, q := range o.qids {
		names[i] = q.String()
	}
	return fmt.Sprintf("%v(%s)", o.gate, strings.Join(names, ", "))
}
