// diagram.go
package qgate

import "fmt"

/*
DiagramArgs carries what a renderer knows at the moment it asks a value for
its label. All fields are hints; a value may ignore them.
*/
type DiagramArgs struct {
	// Known lists the qids the renderer has laid out, in wire order, when it
	// knows them. Nil when the value is being labeled out of context.
	Known []Qid

	// UseUnicode permits non-ASCII wire symbols.
	UseUnicode bool

	// Precision is the suggested digit count for numeric parameters in
	// labels, 0 meaning the value's own default.
	Precision int
}

/*
DiagramInfo is a value's answer to a label query: one wire symbol per
operand (a single symbol answers for a one-operand value), plus an optional
exponent the renderer may display as a superscript. Purely a data shape —
layout and rendering happen elsewhere.
*/
type DiagramInfo struct {
	WireSymbols []string
	Exponent    float64
}

// Label builds a one-symbol DiagramInfo with exponent 1.
func Label(symbol string) DiagramInfo {
	return Labels(symbol)
}

// Labels builds a DiagramInfo with one symbol per operand and exponent 1.
func Labels(symbols ...string) DiagramInfo {
	return DiagramInfo{WireSymbols: symbols, Exponent: 1}
}

// Validate checks the info against an arity: exactly one symbol per operand
// and no empty symbols.
func (d DiagramInfo) Validate(numQids int) error {
	if len(d.WireSymbols) != numQids {
		return fmt.Errorf("qgate: diagram info has %d wire symbols for %d operands", len(d.WireSymbols), numQids)
	}
	for i, s := range d.WireSymbols {
		if s == "" {
			return fmt.Errorf("qgate: empty wire symbol at position %d", i)
		}
	}
	return nil
}

// DiagramInfoOf queries the diagram-label capability. Fails with
// ErrCapabilityMissing when the value cannot label itself, since a renderer
// with no default cannot proceed.
func DiagramInfoOf(val any, args DiagramArgs) (DiagramInfo, error) {
	if d, ok := Query[Diagrammable](val); ok {
		if info, ok := d.DiagramInfo(args); ok {
			return info, nil
		}
	}
	return DiagramInfo{}, fmt.Errorf("value %T has no diagram info: %w", val, ErrCapabilityMissing)
}

// DiagramInfoOr is DiagramInfoOf with a default for unlabeled values.
func DiagramInfoOr(val any, args DiagramArgs, def DiagramInfo) DiagramInfo {
	info, err := DiagramInfoOf(val, args)
	if err != nil {
		return def
	}
	return info
}
