package qgate

import "fmt"

/*
Qid identifies one addressable quantum unit. A qubit is the dimension-2
special case of a qudit; any dimension >= 2 is allowed.

Concrete qids are small comparable value types: two qids are the same unit
exactly when they compare equal, and any Qid can be used as a map key.
A Qid carries no reference to the operations acting on it.
*/
type Qid interface {
	// Dimension returns the number of basis states of this unit, >= 2.
	Dimension() int
	fmt.Stringer
}

// LineQid is a qudit addressed by an integer position on a line.
type LineQid struct {
	Line int
	Dim  int
}

func (q LineQid) Dimension() int { return q.Dim }

func (q LineQid) String() string {
	if q.Dim == 2 {
		return fmt.Sprintf("q%d", q.Line)
	}
	return fmt.Sprintf("q%d(d=%d)", q.Line, q.Dim)
}

// LineQubit returns the dimension-2 qid at position n.
func LineQubit(n int) LineQid {
	return LineQid{Line: n, Dim: 2}
}

// LineQubitRange returns the qubits at positions [start, end), in order.
func LineQubitRange(start, end int) []Qid {
	if end < start {
		end = start
	}
	qids := make([]Qid, 0, end-start)
	for n := start; n < end; n++ {
		qids = append(qids, LineQubit(n))
	}
	return qids
}

// NamedQid is a qudit addressed by name.
type NamedQid struct {
	Name string
	Dim  int
}

func (q NamedQid) Dimension() int { return q.Dim }

func (q NamedQid) String() string {
	if q.Dim == 2 {
		return q.Name
	}
	return fmt.Sprintf("%s(d=%d)", q.Name, q.Dim)
}

// NamedQubit returns the dimension-2 qid with the given name.
func NamedQubit(name string) NamedQid {
	return NamedQid{Name: name, Dim: 2}
}

// ValidQid checks that a qid declares a usable dimension.
func ValidQid(q Qid) error {
	if q == nil {
		return fmt.Errorf("nil qid: %w", ErrBadDimension)
	}
	if q.Dimension() < 2 {
		return fmt.Errorf("qid %v has dimension %d: %w", q, q.Dimension(), ErrBadDimension)
	}
	return nil
}
