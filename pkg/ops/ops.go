// Package ops provides the operation constructors (§4.4): add, sub, mul,
// div, pow, and raw variants that build a node without any reduction.
// Non-raw constructors perform local peephole rules and delegate
// combining to pkg/normalize.
package ops

import (
	"github.com/msavch/symcas/pkg/ast"
	"github.com/msavch/symcas/pkg/normalize"
)

// Add builds a+b: flattens, absorbs Undef, passes through the
// zero-identity, and otherwise normalizes with reduce_sum.
func Add(a, b ast.Expr) ast.Expr {
	a, b = ast.Flatten(a), ast.Flatten(b)
	if ast.IsUndef(a) || ast.IsUndef(b) {
		return ast.TheUndef
	}
	if ast.IsZero(a) {
		return b
	}
	if ast.IsZero(b) {
		return a
	}
	return normalize.ReduceSum([]ast.Expr{a, b})
}

// AddN is the n-ary generalization of Add.
func AddN(args ...ast.Expr) ast.Expr {
	return normalize.ReduceSum(args)
}

// Sub builds a-b as add(a, mul(-1, b)).
func Sub(a, b ast.Expr) ast.Expr {
	return Add(a, Mul(ast.MINUS_ONE, b))
}

// Neg builds -a.
func Neg(a ast.Expr) ast.Expr {
	return Mul(ast.MINUS_ONE, a)
}

// Mul builds a*b: flattens, absorbs Undef and 0, passes through the
// one-identity, combines equal bases via power addition, and otherwise
// normalizes with reduce_prod.
func Mul(a, b ast.Expr) ast.Expr {
	a, b = ast.Flatten(a), ast.Flatten(b)
	if ast.IsUndef(a) || ast.IsUndef(b) {
		return ast.TheUndef
	}
	if ast.IsZero(a) || ast.IsZero(b) {
		return ast.ZERO
	}
	if ast.IsOne(a) {
		return b
	}
	if ast.IsOne(b) {
		return a
	}
	return normalize.ReduceProd([]ast.Expr{a, b})
}

// MulN is the n-ary generalization of Mul.
func MulN(args ...ast.Expr) ast.Expr {
	return normalize.ReduceProd(args)
}

// Div builds a/b as mul(a, pow(b, -1)), with the peephole a==b ⇒ 1.
func Div(a, b ast.Expr) ast.Expr {
	if ast.Equal(a, b) && !ast.IsZero(a) && !ast.IsUndef(a) {
		return ast.ONE
	}
	return Mul(a, Pow(b, ast.MINUS_ONE))
}

// Pow builds b^e using the power rules of §4.5.
func Pow(b, e ast.Expr) ast.Expr {
	return normalize.ReducePow(ast.Flatten(b), ast.Flatten(e))
}

// AddRaw builds an unreduced n-ary Sum.
func AddRaw(args ...ast.Expr) ast.Expr { return ast.NewSumRaw(args...) }

// MulRaw builds an unreduced n-ary Prod.
func MulRaw(args ...ast.Expr) ast.Expr { return ast.NewProdRaw(args...) }

// PowRaw builds an unreduced Pow, used by transformations that need to
// distinguish e.g. exp(x)^2 from exp(2x) during a rewrite.
func PowRaw(b, e ast.Expr) ast.Expr { return ast.NewPowRaw(b, e) }

// Reduce re-exports normalize.Reduce as the canonicalization entry point
// most callers reach for after building a tree with the raw constructors.
func Reduce(e ast.Expr) ast.Expr { return normalize.Reduce(e) }
