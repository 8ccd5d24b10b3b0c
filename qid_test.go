package qgate

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestQids(t *testing.T) {
	Convey("Given line and named qids", t, func() {
		Convey("Equal coordinates mean the same unit", func() {
			So(LineQubit(3), ShouldResemble, LineQubit(3))
			So(LineQubit(3), ShouldNotResemble, LineQubit(4))
			So(NamedQubit("a"), ShouldResemble, NamedQubit("a"))
		})

		Convey("Qids work as map keys", func() {
			seen := map[Qid]int{}
			seen[LineQubit(0)] = 1
			seen[NamedQubit("a")] = 2
			seen[LineQubit(0)] = 3
			So(len(seen), ShouldEqual, 2)
			So(seen[LineQubit(0)], ShouldEqual, 3)
		})

		Convey("LineQubitRange yields qubits in order", func() {
			qids := LineQubitRange(1, 4)
			So(len(qids), ShouldEqual, 3)
			So(qids[0], ShouldResemble, LineQubit(1))
			So(qids[2], ShouldResemble, LineQubit(3))
			So(LineQubitRange(2, 2), ShouldBeEmpty)
		})

		Convey("String forms include the dimension only for qudits", func() {
			So(LineQubit(2).String(), ShouldEqual, "q2")
			So(LineQid{Line: 0, Dim: 3}.String(), ShouldEqual, "q0(d=3)")
			So(NamedQubit("anc").String(), ShouldEqual, "anc")
			So(NamedQid{Name: "anc", Dim: 4}.String(), ShouldEqual, "anc(d=4)")
		})

		Convey("Dimensions below 2 are rejected", func() {
			So(ValidQid(LineQubit(0)), ShouldBeNil)
			err := ValidQid(LineQid{Line: 0, Dim: 1})
			So(errors.Is(err, ErrBadDimension), ShouldBeTrue)
			err = ValidQid(nil)
			So(errors.Is(err, ErrBadDimension), ShouldBeTrue)
		})
	})
}
