package qgate

import (
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"
	. "github.com/smartystreets/goconvey/convey"
)

// leafGate is a two-qubit gate with no capabilities beyond sizing.
type leafGate struct{ name string }

func (g leafGate) QidShape() Shape { return Shape{2, 2} }
func (g leafGate) String() string  { return g.name }

// branchGate is a two-qubit gate that expands into its children, each bound
// to the same qids.
type branchGate struct {
	name     string
	children []any
}

func (g branchGate) QidShape() Shape { return Shape{2, 2} }
func (g branchGate) String() string  { return g.name }

func (g branchGate) Decompose(qids []Qid) ([]Operation, bool) {
	ops := make([]Operation, len(g.children))
	for i, child := range g.children {
		ops[i] = mustOperation(child, qids...)
	}
	return ops, true
}

// triGate is a three-qubit gate that natively splits into two two-qubit
// leaves.
type triGate struct{ name string }

func (g triGate) QidShape() Shape { return Shape{2, 2, 2} }
func (g triGate) String() string  { return g.name }

func (g triGate) Decompose(qids []Qid) ([]Operation, bool) {
	return []Operation{
		mustOperation(leafGate{name: "L1"}, qids[0], qids[1]),
		mustOperation(leafGate{name: "L2"}, qids[1], qids[2]),
	}, true
}

// looperGate expands into itself forever.
type looperGate struct{}

func (g looperGate) NumQubits() int { return 1 }
func (g looperGate) String() string { return "LOOP" }

func (g looperGate) Decompose(qids []Qid) ([]Operation, bool) {
	return []Operation{mustOperation(g, qids...)}, true
}

// opList is a decomposable value that is not an operation, standing in for
// an external container type.
type opList struct{ ops []Operation }

func (l opList) Decompose() ([]Operation, bool) { return l.ops, true }

func gateNames(ops []Operation) []string {
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = op.Gate().(interface{ String() string }).String()
	}
	return names
}

func TestDecompose(t *testing.T) {
	q := LineQubitRange(0, 3)
	keepEverything := func(op Operation) bool { return true }
	keepLeaves := func(op Operation) bool {
		_, isLeaf := op.Gate().(leafGate)
		return isLeaf
	}
	keepTwoQid := func(op Operation) bool { return len(op.Qids()) <= 2 }

	Convey("Given a keep predicate that accepts everything", t, func() {
		op := mustOperation(triGate{name: "G3"}, q[0], q[1], q[2])

		Convey("Decompose returns the roots unchanged, even decomposable ones", func() {
			out, err := Decompose([]any{op}, keepEverything)
			So(err, ShouldBeNil)
			So(out, ShouldResemble, []Operation{op})
		})
	})

	Convey("Given a three-operand gate splitting into two-operand leaves", t, func() {
		op := mustOperation(triGate{name: "G3"}, q[0], q[1], q[2])

		Convey("The output is exactly the native decomposition, in order", func() {
			out, err := Decompose([]any{op}, keepTwoQid)
			So(err, ShouldBeNil)
			So(gateNames(out), ShouldResemble, []string{"L1", "L2"})
			So(out[0].Qids(), ShouldResemble, []Qid{q[0], q[1]})
			So(out[1].Qids(), ShouldResemble, []Qid{q[1], q[2]})
		})

		Convey("Decompose is idempotent on its own output", func() {
			out, err := Decompose([]any{op}, keepTwoQid)
			So(err, ShouldBeNil)

			roots := make([]any, len(out))
			for i, o := range out {
				roots[i] = o
			}
			again, err := Decompose(roots, keepTwoQid)
			So(err, ShouldBeNil)
			So(again, ShouldResemble, out)
		})
	})

	Convey("Given nested decompositions across multiple roots", t, func() {
		inner := branchGate{name: "B2", children: []any{leafGate{name: "D"}, leafGate{name: "E"}}}
		outer := branchGate{name: "B1", children: []any{inner, leafGate{name: "C"}}}
		first := mustOperation(outer, q[0], q[1])
		second := mustOperation(leafGate{name: "F"}, q[1], q[2])

		Convey("Expansion is depth-first and left-to-right", func() {
			out, err := Decompose([]any{first, second}, keepLeaves)
			So(err, ShouldBeNil)
			// B1 -> (B2, C); B2 resolves to (D, E) before C or the second
			// root is touched.
			So(gateNames(out), ShouldResemble, []string{"D", "E", "C", "F"})
		})
	})

	Convey("Given an intercepting decomposer and a native decomposition", t, func() {
		op := mustOperation(triGate{name: "G3"}, q[0], q[1], q[2])
		intercept := func(val any) ([]Operation, bool) {
			o, ok := val.(Operation)
			if !ok {
				return nil, false
			}
			if _, isTri := o.Gate().(triGate); !isTri {
				return nil, false
			}
			return []Operation{
				mustOperation(leafGate{name: "I1"}, q[0], q[1]),
				mustOperation(leafGate{name: "I2"}, q[1], q[2]),
			}, true
		}

		Convey("The interceptor wins over the gate's own decomposition", func() {
			out, err := Decompose([]any{op}, keepTwoQid, WithInterceptor(intercept))
			So(err, ShouldBeNil)
			So(gateNames(out), ShouldResemble, []string{"I1", "I2"})
		})

		Convey("Interceptors are tried in the order given", func() {
			other := func(val any) ([]Operation, bool) {
				return []Operation{mustOperation(leafGate{name: "FIRST"}, q[0], q[1])}, true
			}
			out, err := Decompose([]any{op}, keepTwoQid, WithInterceptor(other, intercept))
			So(err, ShouldBeNil)
			So(gateNames(out), ShouldResemble, []string{"FIRST"})
		})

		Convey("A passing interceptor defers to the native decomposition", func() {
			pass := func(val any) ([]Operation, bool) { return nil, false }
			out, err := Decompose([]any{op}, keepTwoQid, WithInterceptor(pass))
			So(err, ShouldBeNil)
			So(gateNames(out), ShouldResemble, []string{"L1", "L2"})
		})
	})

	Convey("Given a fallback decomposer", t, func() {
		bare := mustOperation(shapedVal{shape: Shape{2, 2, 2}}, q[0], q[1], q[2])
		fallback := func(val any) ([]Operation, bool) {
			o, ok := val.(Operation)
			if !ok || len(o.Qids()) != 3 {
				return nil, false
			}
			return []Operation{
				mustOperation(leafGate{name: "FB1"}, o.Qids()[0], o.Qids()[1]),
				mustOperation(leafGate{name: "FB2"}, o.Qids()[1], o.Qids()[2]),
			}, true
		}

		Convey("It expands values with no decomposition of their own", func() {
			out, err := Decompose([]any{bare}, keepTwoQid, WithFallback(fallback))
			So(err, ShouldBeNil)
			So(gateNames(out), ShouldResemble, []string{"FB1", "FB2"})
		})

		Convey("The native decomposition still wins when present", func() {
			op := mustOperation(triGate{name: "G3"}, q[0], q[1], q[2])
			out, err := Decompose([]any{op}, keepTwoQid, WithFallback(fallback))
			So(err, ShouldBeNil)
			So(gateNames(out), ShouldResemble, []string{"L1", "L2"})
		})
	})

	Convey("Given an operation nothing can expand", t, func() {
		stuck := mustOperation(shapedVal{shape: Shape{2, 2, 2}}, q[0], q[1], q[2])
		keepNothing := func(op Operation) bool { return false }

		Convey("Decompose fails with a dead end naming that operation", func() {
			_, err := Decompose([]any{stuck}, keepNothing)

			var dead *DeadEndError
			So(errors.As(err, &dead), ShouldBeTrue)
			So(dead.Value, ShouldResemble, stuck)
			So(dead.Error(), ShouldContainSubstring, "(2,2,2)")
			So(dead.Error(), ShouldContainSubstring, "q0")
		})
	})

	Convey("Given a non-operation decomposable root", t, func() {
		ops := []Operation{
			mustOperation(leafGate{name: "A"}, q[0], q[1]),
			mustOperation(leafGate{name: "B"}, q[1], q[2]),
		}
		container := opList{ops: ops}

		Convey("It expands into its operations", func() {
			out, err := Decompose([]any{container}, keepLeaves)
			So(err, ShouldBeNil)
			So(out, ShouldResemble, ops)
		})

		Convey("A non-operation value nothing expands is a dead end", func() {
			_, err := Decompose([]any{"not a gate"}, keepEverything)
			var dead *DeadEndError
			So(errors.As(err, &dead), ShouldBeTrue)
			So(dead.Value, ShouldEqual, "not a gate")
		})
	})

	Convey("Given a cyclic decomposition and an expansion budget", t, func() {
		loop := mustOperation(looperGate{}, q[0])

		Convey("The budget converts the hang into an error", func() {
			_, err := Decompose([]any{loop}, keepLeaves, WithMaxExpansions(16))
			So(errors.Is(err, ErrExpansionBudget), ShouldBeTrue)
		})
	})

	Convey("Given no keep predicate", t, func() {
		_, err := Decompose([]any{}, nil)
		So(errors.Is(err, ErrNilKeep), ShouldBeTrue)
	})

	Convey("Given empty roots", t, func() {
		out, err := Decompose(nil, keepEverything)
		So(err, ShouldBeNil)
		So(out, ShouldBeEmpty)
	})
}

func TestDecomposeGateset(t *testing.T) {
	Convey("Given a Toffoli over line qubits", t, func() {
		q := LineQubitRange(0, 3)
		op := mustOperation(CCX, q[0], q[1], q[2])
		keepTwoQid := func(op Operation) bool { return len(op.Qids()) <= 2 }

		Convey("It fully resolves into one- and two-qubit operations", func() {
			out, err := Decompose([]any{op}, keepTwoQid)
			So(err, ShouldBeNil)
			spew.Dump(out)
			So(len(out), ShouldEqual, 15)
			for _, o := range out {
				So(len(o.Qids()), ShouldBeLessThanOrEqualTo, 2)
			}
		})

		Convey("Chaining through SWAP resolves the whole tree", func() {
			swap := mustOperation(SWAP, q[0], q[1])
			keepOneQid := func(op Operation) bool { return len(op.Qids()) <= 1 }
			cnotToLeaf := func(val any) ([]Operation, bool) {
				o, ok := val.(Operation)
				if !ok {
					return nil, false
				}
				if _, isCNot := o.Gate().(CNotGate); !isCNot {
					return nil, false
				}
				return []Operation{
					mustOperation(leafGate2{name: "K"}, o.Qids()[0]),
					mustOperation(leafGate2{name: "K"}, o.Qids()[1]),
				}, true
			}
			out, err := Decompose([]any{swap}, keepOneQid, WithInterceptor(cnotToLeaf))
			So(err, ShouldBeNil)
			// SWAP -> three CNOTs -> two stand-ins each.
			So(len(out), ShouldEqual, 6)
		})
	})
}

// leafGate2 is a one-qubit stand-in used by the chained decomposition test.
type leafGate2 struct{ name string }

func (g leafGate2) NumQubits() int { return 1 }
func (g leafGate2) String() string { return g.name }
