// decompose.go
package qgate

import (
	"fmt"

	"github.com/theapemachine/errnie"
)

/*
KeepFunc decides whether an operation is acceptable as-is. The engine checks
it before any expansion attempt, so an operation it accepts is never
decomposed even when it could be.
*/
type KeepFunc func(op Operation) bool

/*
DecomposeFunc is an externally supplied expansion source: given a frontier
value, either produce its replacement sequence and true, or report false to
pass. Used for both intercepting decomposers (tried before the value's own
capability) and the fallback decomposer (tried after it).
*/
type DecomposeFunc func(val any) ([]Operation, bool)

// DecomposeOption configures a single Decompose call.
type DecomposeOption func(*decomposeConfig)

type decomposeConfig struct {
	interceptors  []DecomposeFunc
	fallback      DecomposeFunc
	maxExpansions int
}

// WithInterceptor adds intercepting decomposers, tried in the given order
// before each value's own decomposition capability. Lets a call site
// override how specific operations expand without modifying them.
func WithInterceptor(fns ...DecomposeFunc) DecomposeOption {
	return func(c *decomposeConfig) {
		c.interceptors = append(c.interceptors, fns...)
	}
}

// WithFallback sets the decomposer of last resort, tried after a value's own
// capability, for values that do not self-describe an expansion.
func WithFallback(fn DecomposeFunc) DecomposeOption {
	return func(c *decomposeConfig) {
		c.fallback = fn
	}
}

/*
WithMaxExpansions caps how many expansions one Decompose call may perform,
as an opt-in guard against cyclic decompositions. Exceeding the cap fails
with ErrExpansionBudget. Without this option the engine runs unbounded and a
cycle is a hang — supplying acyclic decompositions is the caller's contract.
*/
func WithMaxExpansions(n int) DecomposeOption {
	return func(c *decomposeConfig) {
		c.maxExpansions = n
	}
}

/*
Decompose rewrites roots until every produced operation satisfies keep.

Each frontier value is tried against keep first; accepted operations go to
the output untouched. Anything else is expanded by the first willing source
in strict priority order: the intercepting decomposers in order, then the
value's own decomposition capability, then the fallback. The replacement
sequence re-enters the frontier at the front, so a freshly produced
sub-operation is fully resolved before its siblings — the output is the
depth-first left-to-right expansion of the roots.

A value no source can expand and keep does not accept is a dead end; the
whole call fails with a DeadEndError naming it. Non-Operation roots (values
carrying only a decomposition capability) are never kept directly; they must
expand into operations.

The engine does no cycle detection. A decomposition chain that reproduces an
equivalent value loops forever unless WithMaxExpansions is set.
*/
func Decompose(roots []any, keep KeepFunc, opts ...DecomposeOption) ([]Operation, error) {
	if keep == nil {
		return nil, ErrNilKeep
	}

	var config decomposeConfig
	for _, opt := range opts {
		opt(&config)
	}

	frontier := make([]any, len(roots))
	copy(frontier, roots)

	var out []Operation
	expansions := 0

	for len(frontier) > 0 {
		val := frontier[0]
		frontier = frontier[1:]

		if op, ok := val.(Operation); ok && keep(op) {
			out = append(out, op)
			continue
		}

		next, ok := expandOne(val, &config)
		if !ok {
			errnie.Info("Decompose - dead end at %v after %d expansions", val, expansions)
			return nil, &DeadEndError{Value: val}
		}

		expansions++
		if config.maxExpansions > 0 && expansions > config.maxExpansions {
			return nil, fmt.Errorf("expanding %v: %w", val, ErrExpansionBudget)
		}

		// Front reinsertion keeps expansion depth-first.
		reinsert := make([]any, 0, len(next)+len(frontier))
		for _, op := range next {
			reinsert = append(reinsert, op)
		}
		frontier = append(reinsert, frontier...)
	}

	return out, nil
}

// expandOne tries the expansion sources for one value in priority order:
// interceptors, the value's own capability, fallback. First hit wins.
func expandOne(val any, config *decomposeConfig) ([]Operation, bool) {
	for _, intercept := range config.interceptors {
		if ops, ok := intercept(val); ok {
			return ops, true
		}
	}
	if ops, ok := DecomposeOnce(val); ok {
		return ops, true
	}
	if config.fallback != nil {
		if ops, ok := config.fallback(val); ok {
			return ops, true
		}
	}
	return nil, false
}

// DecomposeOnce applies a value's own decomposition capability exactly once,
// with no predicate, no interceptors, and no recursion.
func DecomposeOnce(val any) ([]Operation, bool) {
	if d, ok := Query[Decomposer](val); ok {
		return d.Decompose()
	}
	return nil, false
}

// DecomposeOnceWithQids applies a gate's decomposition capability once,
// bound to the given qids.
func DecomposeOnceWithQids(gate any, qids ...Qid) ([]Operation, bool) {
	if d, ok := Query[GateDecomposer](gate); ok {
		return d.Decompose(qids)
	}
	return nil, false
}
