// gates.go
package qgate

import "math"

/*
A small standard gateset. Nothing in this package privileges these gates:
they are ordinary values advertising capabilities, shipped so the dispatch,
inversion, and decomposition machinery has realistic payloads and so callers
have working examples of every capability.

Sizing is deliberately split across the two capabilities — the single-qubit
gates report a qubit count while the multi-qubit gates report a qid shape —
so both resolver paths see real traffic.
*/
var (
	X = PauliGate{Axis: "X"}
	Y = PauliGate{Axis: "Y"}
	Z = PauliGate{Axis: "Z"}

	H = HGate{}

	S = PhaseGate{Name: "S", Turns: 0.25}
	T = PhaseGate{Name: "T", Turns: 0.125}

	CZ   = CZGate{}
	CNOT = CNotGate{}
	SWAP = SwapGate{}
	CCX  = CCXGate{}
)

// PauliGate is a single-qubit Pauli operator, self-inverse.
type PauliGate struct {
	Axis string
}

func (g PauliGate) NumQubits() int { return 1 }
func (g PauliGate) String() string { return g.Axis }

func (g PauliGate) Unitary() (Matrix, bool) {
	switch g.Axis {
	case "X":
		return Matrix{{0, 1}, {1, 0}}, true
	case "Y":
		return Matrix{{0, -1i}, {1i, 0}}, true
	case "Z":
		return Matrix{{1, 0}, {0, -1}}, true
	}
	return nil, false
}

func (g PauliGate) Pow(exponent float64) (any, bool) {
	if exponent == 1 || exponent == -1 {
		return g, true
	}
	return nil, false
}

func (g PauliGate) DiagramInfo(args DiagramArgs) (DiagramInfo, bool) {
	return Label(g.Axis), true
}

// HGate is the single-qubit Hadamard, self-inverse.
type HGate struct{}

func (g HGate) NumQubits() int { return 1 }
func (g HGate) String() string { return "H" }

func (g HGate) Unitary() (Matrix, bool) {
	h := complex(1/math.Sqrt2, 0)
	return Matrix{{h, h}, {h, -h}}, true
}

func (g HGate) Pow(exponent float64) (any, bool) {
	if exponent == 1 || exponent == -1 {
		return g, true
	}
	return nil, false
}

func (g HGate) DiagramInfo(args DiagramArgs) (DiagramInfo, bool) {
	return Label("H"), true
}

/*
PhaseGate rotates the |1⟩ amplitude by Turns of a full circle: S is a
quarter turn, T an eighth. Dagger marks the conjugate, produced by raising
to -1.
*/
type PhaseGate struct {
	Name   string
	Turns  float64
	Dagger bool
}

func (g PhaseGate) NumQubits() int { return 1 }

func (g PhaseGate) String() string {
	if g.Dagger {
		return g.Name + "†"
	}
	return g.Name
}

func (g PhaseGate) Unitary() (Matrix, bool) {
	theta := 2 * math.Pi * g.Turns
	if g.Dagger {
		theta = -theta
	}
	phase := complex(math.Cos(theta), math.Sin(theta))
	return Matrix{{1, 0}, {0, phase}}, true
}

func (g PhaseGate) Pow(exponent float64) (any, bool) {
	switch exponent {
	case 1:
		return g, true
	case -1:
		g.Dagger = !g.Dagger
		return g, true
	}
	return nil, false
}

func (g PhaseGate) DiagramInfo(args DiagramArgs) (DiagramInfo, bool) {
	if g.Dagger && !args.UseUnicode {
		return Label(g.Name + "^-1"), true
	}
	return Label(g.String()), true
}

// CZGate is the two-qubit controlled-Z, self-inverse and symmetric in its
// operands.
type CZGate struct{}

func (g CZGate) QidShape() Shape { return Shape{2, 2} }
func (g CZGate) String() string  { return "CZ" }

func (g CZGate) Unitary() (Matrix, bool) {
	return Matrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, -1},
	}, true
}

func (g CZGate) Pow(exponent float64) (any, bool) {
	if exponent == 1 || exponent == -1 {
		return g, true
	}
	return nil, false
}

func (g CZGate) DiagramInfo(args DiagramArgs) (DiagramInfo, bool) {
	return Labels("@", "@"), true
}

// CNotGate is the two-qubit controlled-X: control first, target second.
type CNotGate struct{}

func (g CNotGate) QidShape() Shape { return Shape{2, 2} }
func (g CNotGate) String() string  { return "CNOT" }

func (g CNotGate) Unitary() (Matrix, bool) {
	return Matrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
	}, true
}

func (g CNotGate) Pow(exponent float64) (any, bool) {
	if exponent == 1 || exponent == -1 {
		return g, true
	}
	return nil, false
}

func (g CNotGate) DiagramInfo(args DiagramArgs) (DiagramInfo, bool) {
	return Labels("@", "X"), true
}

// SwapGate exchanges two qubits. Natively decomposes into three CNOTs.
type SwapGate struct{}

func (g SwapGate) QidShape() Shape { return Shape{2, 2} }
func (g SwapGate) String() string  { return "SWAP" }

func (g SwapGate) Unitary() (Matrix, bool) {
	return Matrix{
		{1, 0, 0, 0},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
	}, true
}

func (g SwapGate) Pow(exponent float64) (any, bool) {
	if exponent == 1 || exponent == -1 {
		return g, true
	}
	return nil, false
}

func (g SwapGate) Decompose(qids []Qid) ([]Operation, bool) {
	if len(qids) != 2 {
		return nil, false
	}
	a, b := qids[0], qids[1]
	return []Operation{
		mustOperation(CNOT, a, b),
		mustOperation(CNOT, b, a),
		mustOperation(CNOT, a, b),
	}, true
}

func (g SwapGate) DiagramInfo(args DiagramArgs) (DiagramInfo, bool) {
	if args.UseUnicode {
		return Labels("×", "×"), true
	}
	return Labels("x", "x"), true
}

/*
CCXGate is the Toffoli: X on the target when both controls are set.
Natively decomposes into the standard single-qubit and CNOT network, so a
consumer limited to two-qubit gates can always expand it.
*/
type CCXGate struct{}

func (g CCXGate) QidShape() Shape { return Shape{2, 2, 2} }
func (g CCXGate) String() string  { return "CCX" }

func (g CCXGate) Unitary() (Matrix, bool) {
	m := make(Matrix, 8)
	for i := range m {
		m[i] = make([]complex128, 8)
		m[i][i] = 1
	}
	m[6][6], m[7][7] = 0, 0
	m[6][7], m[7][6] = 1, 1
	return m, true
}

func (g CCXGate) Pow(exponent float64) (any, bool) {
	if exponent == 1 || exponent == -1 {
		return g, true
	}
	return nil, false
}

func (g CCXGate) Decompose(qids []Qid) ([]Operation, bool) {
	if len(qids) != 3 {
		return nil, false
	}
	c0, c1, t := qids[0], qids[1], qids[2]
	tdag, _ := T.Pow(-1)
	return []Operation{
		mustOperation(H, t),
		mustOperation(CNOT, c1, t),
		mustOperation(tdag, t),
		mustOperation(CNOT, c0, t),
		mustOperation(T, t),
		mustOperation(CNOT, c1, t),
		mustOperation(tdag, t),
		mustOperation(CNOT, c0, t),
		mustOperation(T, c1),
		mustOperation(T, t),
		mustOperation(H, t),
		mustOperation(CNOT, c0, c1),
		mustOperation(T, c0),
		mustOperation(tdag, c1),
		mustOperation(CNOT, c0, c1),
	}, true
}

func (g CCXGate) DiagramInfo(args DiagramArgs) (DiagramInfo, bool) {
	return Labels("@", "@", "X"), true
}
