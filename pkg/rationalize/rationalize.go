// Package rationalize implements §4.7: pushing sums into a common
// denominator, extracting the largest syntactic common factor between
// two expressions, rewriting a sum around that factor, and cancelling a
// numerator/denominator pair.
package rationalize

import (
	"math/big"

	"github.com/msavch/symcas/pkg/ast"
	"github.com/msavch/symcas/pkg/ops"
)

// Rationalize recursively rewrites every Sum of two or more operands
// into a single fraction: a/b + c/d → (a·d + c·b)/(b·d), after
// separating the numerator and denominator of each addend.
func Rationalize(e ast.Expr) ast.Expr {
	e = ast.MapArgs(e, Rationalize)
	s, ok := e.(*ast.Sum)
	if !ok || len(s.Args_) < 2 {
		return e
	}
	acc := s.Args_[0]
	for _, t := range s.Args_[1:] {
		acc = combineFraction(acc, t)
	}
	return acc
}

func combineFraction(a, b ast.Expr) ast.Expr {
	an, ad := ast.Numerator(a), ast.Denominator(a)
	bn, bd := ast.Numerator(b), ast.Denominator(b)

	num := ops.Add(ops.Mul(an, bd), ops.Mul(bn, ad))
	den := ops.Mul(ad, bd)
	if ast.IsOne(den) {
		return num
	}
	return ops.Mul(num, ops.Pow(den, ast.MINUS_ONE))
}

// FactorizeCommonTerms returns (f, l/f, r/f) where f is the largest
// syntactic common factor of l and r (§4.7 "Common-factor extraction").
func FactorizeCommonTerms(l, r ast.Expr) (f, lq, rq ast.Expr) {
	if ast.Equal(l, r) {
		return l, ast.ONE, ast.ONE
	}

	lr, lIsRat := l.(*ast.Rational)
	rr, rIsRat := r.(*ast.Rational)
	if lIsRat && rIsRat {
		if g := ast.IntGCD(lr, rr); g != nil {
			gf := ast.NewRationalFromBigInts(g, big.NewInt(1))
			return gf, ast.QuoR(lr, gf), ast.QuoR(rr, gf)
		}
		return ast.ONE, l, r
	}

	if lp, ok := l.(*ast.Prod); ok {
		return factorProdSide(lp, r)
	}
	if rp, ok := r.(*ast.Prod); ok {
		f, rq, lq := factorProdSide(rp, l)
		return f, lq, rq
	}

	if ls, ok := l.(*ast.Sum); ok && len(ls.Args_) >= 2 {
		return factorSumSide(ls, r)
	}
	if rs, ok := r.(*ast.Sum); ok && len(rs.Args_) >= 2 {
		f, rq, lq := factorSumSide(rs, l)
		return f, lq, rq
	}

	baseL, expL := ast.BaseExponent(l)
	baseR, expR := ast.BaseExponent(r)
	if ast.Equal(baseL, baseR) {
		if el, ok := expL.(*ast.Rational); ok && ast.IsPos(el) {
			if er, ok2 := expR.(*ast.Rational); ok2 && ast.IsPos(er) {
				minExp := el
				if ast.CmpR(er, el) < 0 {
					minExp = er
				}
				f := ops.Pow(baseL, minExp)
				lq := ops.Pow(baseL, ast.SubR(el, minExp))
				rq := ops.Pow(baseR, ast.SubR(er, minExp))
				return f, lq, rq
			}
		}
	}

	return ast.ONE, l, r
}

// factorProdSide pulls the common factor of a Prod's factors, one at a
// time, out against a fixed other operand, accumulating both the
// combined factor and the Prod side's quotient.
func factorProdSide(p *ast.Prod, other ast.Expr) (f, prodQuot, otherQuot ast.Expr) {
	head, tail := splitProd(p)
	f1, hq, otherAfterHead := FactorizeCommonTerms(head, other)
	f2, tq, otherFinal := FactorizeCommonTerms(tail, otherAfterHead)
	return ops.Mul(f1, f2), ops.Mul(hq, tq), otherFinal
}

// factorSumSide is factorProdSide's additive counterpart: it factors
// each addend of a Sum against the fixed other operand, then unifies the
// two partial factors into one.
func factorSumSide(s *ast.Sum, other ast.Expr) (f, sumQuot, otherQuot ast.Expr) {
	first, rest := splitSum(s)
	f1, firstQ, otherAfterFirst := FactorizeCommonTerms(first, other)
	f2, restQ, otherFinal := FactorizeCommonTerms(rest, otherAfterFirst)
	unified, f1q, f2q := FactorizeCommonTerms(f1, f2)
	sumQuot = ops.Add(ops.Mul(f1q, firstQ), ops.Mul(f2q, restQ))
	return unified, sumQuot, otherFinal
}

func splitProd(p *ast.Prod) (head, tail ast.Expr) {
	head = p.Args_[0]
	if len(p.Args_) == 2 {
		return head, p.Args_[1]
	}
	return head, ast.NewProdRaw(p.Args_[1:]...)
}

func splitSum(s *ast.Sum) (first, rest ast.Expr) {
	first = s.Args_[0]
	if len(s.Args_) == 2 {
		return first, s.Args_[1]
	}
	return first, ast.NewSumRaw(s.Args_[1:]...)
}

// FactorOut recursively rewrites every Sum as f·(a/f + b/f), where f is
// the common factor of its first addend and the sum of the rest.
func FactorOut(e ast.Expr) ast.Expr {
	e = ast.MapArgs(e, FactorOut)
	s, ok := e.(*ast.Sum)
	if !ok || len(s.Args_) < 2 {
		return e
	}
	first, rest := splitSum(s)
	f, aq, bq := FactorizeCommonTerms(first, rest)
	return ops.Mul(f, ops.Add(aq, bq))
}

// Cancel divides e's factored numerator by its factored denominator
// (§4.7: "cancel = factor_out(num)/factor_out(denom)"). Shared factors
// collapse during the division because pkg/normalize distributes a
// power of a Prod base onto matching factors in the accumulator.
func Cancel(e ast.Expr) ast.Expr {
	num := FactorOut(ast.Numerator(e))
	den := FactorOut(ast.Denominator(e))
	return ops.Div(num, den)
}
