// capability.go
package qgate

/*
Capabilities are optional behaviors a gate or operation may support. A value
advertises a capability by implementing the matching interface below; nothing
else is required, so new capabilities can be added without touching existing
gate definitions.

Dispatch is a checked type-test with a tri-state outcome: either the value
implements the capability (and its method succeeded), or the value does not
implement it, or it implements it but reports false for the given arguments.
The last two are the same normal negative result, never an error — callers
choose their own fallback policy (default value, another expansion source,
or one of the package error kinds).
*/

// Shaped is the qid-shape capability: the value knows the dimension of every
// unit it acts on.
type Shaped interface {
	QidShape() Shape
}

// QubitCounted is the qubit-count capability: the value acts on some number
// of dimension-2 units. Implementing either Shaped or QubitCounted is enough
// to size a value; QidShapeOf reconciles the two.
type QubitCounted interface {
	NumQubits() int
}

// Unitarier is the matrix capability. A false result means the value has no
// matrix form (for example, an unresolved parameterized gate).
type Unitarier interface {
	Unitary() (Matrix, bool)
}

// Decomposer is the value-level decomposition capability: the value can
// rewrite itself into an ordered sequence of operations it considers
// equivalent. A false result means no decomposition is available.
type Decomposer interface {
	Decompose() ([]Operation, bool)
}

// GateDecomposer is the gate-level decomposition capability: given the qids
// the gate is applied to, produce the equivalent operation sequence.
// Operation bridges this to Decomposer by binding its own qids.
type GateDecomposer interface {
	Decompose(qids []Qid) ([]Operation, bool)
}

// Powerable is the power capability: raise the value to an exponent,
// returning a value of the same kind. A false result means the exponent is
// not supported. Inversion queries this capability at exponent -1 only.
type Powerable interface {
	Pow(exponent float64) (any, bool)
}

// Diagrammable is the diagram-label capability, consumed by an external
// renderer. A false result means the value cannot label itself under the
// given arguments.
type Diagrammable interface {
	DiagramInfo(args DiagramArgs) (DiagramInfo, bool)
}

// Query resolves capability interface C on val. It is the single dispatch
// primitive every query in this package is built on: a pure lookup with no
// retries and no automatic fallback.
func Query[C any](val any) (C, bool) {
	c, ok := val.(C)
	return c, ok
}
