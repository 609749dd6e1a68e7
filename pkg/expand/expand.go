// Package expand implements the non-trigonometric expansion passes of
// §4.6: binomial power expansion, product distribution, and the
// exponential/logarithm laws.
package expand

import (
	"math/big"

	"github.com/msavch/symcas/pkg/ast"
	"github.com/msavch/symcas/pkg/ops"
)

// Expand recursively expands every node of e: children first, then the
// head of the resulting tree.
func Expand(e ast.Expr) ast.Expr {
	e = ast.MapArgs(e, Expand)
	return ExpandMainOp(e)
}

// ExpandMainOp expands only e's head, leaving children untouched. Used
// by transformations that manage their own recursion.
func ExpandMainOp(e ast.Expr) ast.Expr {
	switch v := e.(type) {
	case *ast.Pow:
		return ExpandPower(v.BaseE, v.ExpE)
	case *ast.Prod:
		return expandProductOfArgs(v.Args_)
	default:
		return e
	}
}

// ExpandPower expands base^exp (§4.6 "Power expansion"):
//   - (Sum)^n for integer n≥2 and ≥2 summands: binomial theorem.
//   - Prod^e: distributes e onto every factor.
//   - rational exponent > 1 that is not an integer: split into integer
//     and fractional parts and multiply base^floor * base^frac.
func ExpandPower(base, exp ast.Expr) ast.Expr {
	if p, ok := base.(*ast.Prod); ok {
		factors := make([]ast.Expr, len(p.Args_))
		for i, f := range p.Args_ {
			factors[i] = ops.PowRaw(f, exp)
		}
		return ops.MulN(factors...)
	}

	r, isRat := exp.(*ast.Rational)
	if !isRat {
		return ops.PowRaw(base, exp)
	}

	if sum, ok := base.(*ast.Sum); ok && len(sum.Args_) >= 2 && r.IsInt() && r.Sign() >= 0 {
		return expandBinomial(sum.Args_, r.Num())
	}

	if !r.IsInt() && r.Sign() > 0 {
		quot, rem := ast.DivRem(r)
		if quot.Sign() == 0 {
			return ops.PowRaw(base, exp)
		}
		whole := ExpandPower(base, ast.NewRationalFromBigInts(quot, big.NewInt(1)))
		frac := ops.PowRaw(base, rem)
		return ops.Mul(whole, frac)
	}

	return ops.PowRaw(base, exp)
}

// expandBinomial expands (a+rest)^n where a is the first summand and
// rest the sum of the others, via the binomial theorem:
// Σ_{k=0..n} C(n,k)·a^k·rest^(n-k).
func expandBinomial(addends []ast.Expr, n *big.Int) ast.Expr {
	nInt := n.Int64()
	if nInt == 0 {
		return ast.ONE
	}
	if nInt == 1 {
		return ast.NewSumRaw(addends...)
	}

	a := addends[0]
	rest := ast.NewSumRaw(addends[1:]...)

	terms := make([]ast.Expr, 0, nInt+1)
	for k := int64(0); k <= nInt; k++ {
		coeff := binomialCoeff(nInt, k)
		aPow := ExpandPower(a, ast.NewInt(k))
		restPow := ExpandPower(rest, ast.NewInt(nInt-k))
		term := expandProductOfArgs([]ast.Expr{ast.NewRationalFromBigInts(coeff, big.NewInt(1)), aPow, restPow})
		terms = append(terms, term)
	}
	return ops.AddN(terms...)
}

func binomialCoeff(n, k int64) *big.Int {
	return new(big.Int).Binomial(n, k)
}

// expandProductOfArgs distributes multiplication over addition
// (§4.6 "Product expansion"): (Σaᵢ)·x → Σaᵢ·x, applied across all
// factors in turn. Only factors that are themselves a Sum are distributed;
// sub-terms inside a non-Sum factor are not expanded.
func expandProductOfArgs(factors []ast.Expr) ast.Expr {
	terms := []ast.Expr{ast.ONE}
	for _, f := range factors {
		sum, ok := f.(*ast.Sum)
		if !ok {
			for i, t := range terms {
				terms[i] = ops.Mul(t, f)
			}
			continue
		}
		next := make([]ast.Expr, 0, len(terms)*len(sum.Args_))
		for _, t := range terms {
			for _, addend := range sum.Args_ {
				next = append(next, ops.Mul(t, addend))
			}
		}
		terms = next
	}
	if len(terms) == 1 {
		return terms[0]
	}
	return ops.AddN(terms...)
}

// ExpandProduct is ExpandPower's sibling entry point for a bare binary
// product: expand a*b by distributing either operand's additive
// structure over the other.
func ExpandProduct(a, b ast.Expr) ast.Expr {
	return expandProductOfArgs([]ast.Expr{a, b})
}

// ExpandExponential recursively expands children, then rewrites an
// exp(u) node: exp(u+v) → exp(u)·exp(v), exp(n·u) → exp(u)^n for integer
// n (§4.6 "Exponential expansion").
func ExpandExponential(e ast.Expr) ast.Expr {
	e = ast.MapArgs(e, ExpandExponential)
	f, ok := e.(*ast.Func)
	if !ok || f.Name != ast.Exp || len(f.ArgsV) != 1 {
		return e
	}
	arg := f.ArgsV[0]

	if sum, ok := arg.(*ast.Sum); ok {
		factors := make([]ast.Expr, len(sum.Args_))
		for i, addend := range sum.Args_ {
			factors[i] = ExpandExponential(ast.NewFunc(ast.Exp, addend))
		}
		return ops.MulN(factors...)
	}

	coeff := ast.RationalCoeff(arg)
	if coeff.IsInt() && !ast.IsOne(coeff) && coeff.Sign() != 0 {
		term, ok := ast.NonRationalTerm(arg)
		if ok {
			return ops.PowRaw(ast.NewFunc(ast.Exp, term), coeff)
		}
	}
	return e
}

// ExpandLn recursively expands children, then rewrites a ln(u)/log(u)
// node: ln(a·b) → ln(a)+ln(b), ln(b^e) → e·ln(b) (§4.6 "Logarithm
// expansion").
func ExpandLn(e ast.Expr) ast.Expr {
	e = ast.MapArgs(e, ExpandLn)
	f, ok := e.(*ast.Func)
	if !ok || (f.Name != ast.Ln && f.Name != ast.Log) || len(f.ArgsV) != 1 {
		return e
	}
	arg := f.ArgsV[0]

	if prod, ok := arg.(*ast.Prod); ok {
		terms := make([]ast.Expr, len(prod.Args_))
		for i, factor := range prod.Args_ {
			terms[i] = ExpandLn(ast.NewFunc(f.Name, factor))
		}
		return ops.AddN(terms...)
	}

	if pow, ok := arg.(*ast.Pow); ok {
		inner := ExpandLn(ast.NewFunc(f.Name, pow.BaseE))
		return expandProductOfArgs([]ast.Expr{pow.ExpE, inner})
	}

	return e
}
