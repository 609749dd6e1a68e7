// Package normalize implements the canonical normalization engine: the
// reduce_sum/reduce_prod merge machinery and the root-level Reduce that
// applies it recursively.
package normalize

import (
	"fmt"

	"github.com/msavch/symcas/pkg/ast"
)

// InvariantError reports a structural bug in the merger: a pairwise
// combine step produced a result inconsistent with its own invariants.
// This is a programmer error in a transformation, never a condition a
// caller can produce through ordinary algebraic input — ordinary
// undefined results (0/0, 0^0, ...) surface as ast.Undef, not this.
type InvariantError struct {
	Op       string
	Operands []ast.Expr
}

func (e *InvariantError) Error() string {
	parts := make([]string, len(e.Operands))
	for i, o := range e.Operands {
		parts[i] = o.String()
	}
	return fmt.Sprintf("normalize: invariant violated in %s on operands %v", e.Op, parts)
}

func invariantPanic(op string, operands ...ast.Expr) {
	panic(&InvariantError{Op: op, Operands: operands})
}
