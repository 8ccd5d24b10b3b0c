package qgate

// UnitaryOf queries the matrix capability of a value. A false result is the
// normal "no matrix form" answer, not an error; a simulator seeing false is
// expected to ask for the value's decomposition instead.
func UnitaryOf(val any) (Matrix, bool) {
	if u, ok := Query[Unitarier](val); ok {
		return u.Unitary()
	}
	return nil, false
}

// HasUnitary reports whether a value can produce a matrix, without building
// one caller-side.
func HasUnitary(val any) bool {
	_, ok := UnitaryOf(val)
	return ok
}
