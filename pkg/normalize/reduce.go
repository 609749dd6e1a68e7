package normalize

import (
	"sort"

	"github.com/msavch/symcas/pkg/ast"
)

// Reduce recursively normalizes e's children, then applies the
// operation-specific rule at the root: ReduceSum for Sum, ReduceProd for
// Prod, the power rules of §4.5 for Pow. Leaf variants and Func are
// returned as-is once their children are reduced.
func Reduce(e ast.Expr) ast.Expr {
	switch v := e.(type) {
	case *ast.Sum:
		args := make([]ast.Expr, len(v.Args_))
		for i, a := range v.Args_ {
			args[i] = Reduce(a)
		}
		return ReduceSum(args)
	case *ast.Prod:
		args := make([]ast.Expr, len(v.Args_))
		for i, a := range v.Args_ {
			args[i] = Reduce(a)
		}
		return ReduceProd(args)
	case *ast.Pow:
		return ReducePow(Reduce(v.BaseE), Reduce(v.ExpE))
	case *ast.Func:
		args := make([]ast.Expr, len(v.ArgsV))
		for i, a := range v.ArgsV {
			args[i] = Reduce(a)
		}
		return ast.NewFunc(v.Name, args...)
	default:
		return e
	}
}

// ReduceSum takes any multiset of addends and returns a canonical Sum
// (or a single term, or ast.ZERO) satisfying I1-I6. This is the heart of
// the engine: flatten, absorb Undef, then merge like terms under the
// total order of §4.2.
func ReduceSum(args []ast.Expr) ast.Expr {
	flat := make([]ast.Expr, 0, len(args))
	for _, a := range args {
		a = ast.Flatten(a)
		if ast.IsUndef(a) {
			return ast.TheUndef
		}
		if s, ok := a.(*ast.Sum); ok {
			flat = append(flat, s.Args_...)
		} else {
			flat = append(flat, a)
		}
	}
	ast.SortExprs(flat)

	acc := make([]ast.Expr, 0, len(flat))
	for _, t := range flat {
		acc = insertCombineSum(acc, t)
	}

	var result ast.Expr
	switch len(acc) {
	case 0:
		result = ast.ZERO
	case 1:
		result = acc[0]
	default:
		result = ast.NewSumRaw(acc...)
	}
	checkSumInvariants(result)
	return result
}

// ReduceProd takes any multiset of factors and returns a canonical Prod
// satisfying I1-I6.
func ReduceProd(args []ast.Expr) ast.Expr {
	flat := make([]ast.Expr, 0, len(args))
	for _, a := range args {
		a = ast.Flatten(a)
		if ast.IsUndef(a) {
			return ast.TheUndef
		}
		if p, ok := a.(*ast.Prod); ok {
			flat = append(flat, p.Args_...)
			continue
		}
		// A power whose base is itself a Prod distributes factor-by-factor
		// onto matching bases in the accumulator.
		if pw, ok := a.(*ast.Pow); ok {
			if base, ok2 := pw.BaseE.(*ast.Prod); ok2 {
				for _, f := range base.Args_ {
					flat = append(flat, ast.NewPowRaw(f, pw.ExpE))
				}
				continue
			}
		}
		flat = append(flat, a)
	}

	for _, t := range flat {
		if ast.IsZero(t) {
			return ast.ZERO
		}
	}
	ast.SortExprs(flat)

	acc := make([]ast.Expr, 0, len(flat))
	for _, t := range flat {
		acc = insertCombineProd(acc, t)
	}

	filtered := acc[:0:0]
	for _, e := range acc {
		if r, ok := e.(*ast.Rational); ok && ast.IsOne(r) {
			continue
		}
		filtered = append(filtered, e)
	}

	var result ast.Expr
	switch len(filtered) {
	case 0:
		result = ast.ONE
	case 1:
		result = filtered[0]
	default:
		result = ast.NewProdRaw(filtered...)
	}
	checkProdInvariants(result)
	return result
}

// ReducePow applies the power rules of §4.5 to an already-reduced base
// and exponent.
func ReducePow(b, e ast.Expr) ast.Expr {
	if ast.IsUndef(b) || ast.IsUndef(e) {
		return ast.TheUndef
	}
	if ast.IsZero(b) {
		switch {
		case ast.IsZero(e):
			return ast.TheUndef
		case ast.IsNeg(e):
			return ast.TheUndef
		case ast.IsPos(e):
			return ast.ZERO
		default:
			return ast.NewPowRaw(b, e)
		}
	}
	if ast.IsOne(b) {
		return ast.ONE
	}
	if ast.IsZero(e) {
		return ast.ONE
	}
	if ast.IsOne(e) {
		return b
	}
	if br, ok := b.(*ast.Rational); ok {
		if er, ok2 := e.(*ast.Rational); ok2 && er.IsInt() {
			return ast.PowR(br, er.Num())
		}
	}
	if bp, ok := b.(*ast.Pow); ok {
		if er, ok2 := e.(*ast.Rational); ok2 && er.IsInt() {
			newExp := ReduceProd([]ast.Expr{bp.ExpE, e})
			return ReducePow(bp.BaseE, newExp)
		}
	}
	return ast.NewPowRaw(b, e)
}

// insertCombineSum inserts t into an already-merged, sorted accumulator,
// combining it with whichever element shares its non-rational term (or,
// for two rationals, folding them additively), else inserting it at its
// sorted position.
func insertCombineSum(acc []ast.Expr, t ast.Expr) []ast.Expr {
	if ast.IsZero(t) {
		return acc
	}
	for i, e := range acc {
		res, matched := combineSumPair(e, t)
		if !matched {
			continue
		}
		rest := removeAt(acc, i)
		if res == nil {
			return rest
		}
		return insertCombineSum(rest, res)
	}
	return insertSorted(acc, t)
}

func combineSumPair(a, b ast.Expr) (ast.Expr, bool) {
	ar, aIsRat := a.(*ast.Rational)
	br, bIsRat := b.(*ast.Rational)
	if aIsRat && bIsRat {
		sum := ast.AddR(ar, br)
		if sum.Sign() == 0 {
			return nil, true
		}
		return sum, true
	}
	if aIsRat || bIsRat {
		return nil, false
	}
	termA, _ := ast.NonRationalTerm(a)
	termB, _ := ast.NonRationalTerm(b)
	if !ast.Equal(termA, termB) {
		return nil, false
	}
	coeff := ast.AddR(ast.RationalCoeff(a), ast.RationalCoeff(b))
	if coeff.Sign() == 0 {
		return nil, true
	}
	return buildCoeffTerm(coeff, termA), true
}

// insertCombineProd is insertCombineSum's multiplicative counterpart:
// matching factors share a base and their exponents add.
func insertCombineProd(acc []ast.Expr, t ast.Expr) []ast.Expr {
	for i, e := range acc {
		res, matched := combineProdPair(e, t)
		if !matched {
			continue
		}
		rest := removeAt(acc, i)
		if ast.IsZero(res) {
			invariantPanic("reduce_prod", e, t)
		}
		return insertCombineProd(rest, res)
	}
	return insertSorted(acc, t)
}

func combineProdPair(a, b ast.Expr) (ast.Expr, bool) {
	ar, aIsRat := a.(*ast.Rational)
	br, bIsRat := b.(*ast.Rational)
	if aIsRat && bIsRat {
		return ast.MulR(ar, br), true
	}
	if aIsRat || bIsRat {
		return nil, false
	}
	baseA, expA := ast.BaseExponent(a)
	baseB, expB := ast.BaseExponent(b)
	if !ast.Equal(baseA, baseB) {
		return nil, false
	}
	newExp := ReduceSum([]ast.Expr{expA, expB})
	if ast.IsZero(newExp) {
		return ast.ONE, true
	}
	if ast.IsOne(newExp) {
		return baseA, true
	}
	return ast.NewPowRaw(baseA, newExp), true
}

// buildCoeffTerm reattaches a rational coefficient to a non-rational
// term, preserving I5 (rationals sort to the front of a Prod).
func buildCoeffTerm(coeff *ast.Rational, term ast.Expr) ast.Expr {
	if ast.IsOne(coeff) {
		return term
	}
	if p, ok := term.(*ast.Prod); ok {
		full := make([]ast.Expr, 0, len(p.Args_)+1)
		full = append(full, coeff)
		full = append(full, p.Args_...)
		return ast.NewProdRaw(full...)
	}
	return ast.NewProdRaw(coeff, term)
}

func insertSorted(acc []ast.Expr, t ast.Expr) []ast.Expr {
	pos := sort.Search(len(acc), func(i int) bool { return ast.Less(t, acc[i]) })
	out := make([]ast.Expr, 0, len(acc)+1)
	out = append(out, acc[:pos]...)
	out = append(out, t)
	out = append(out, acc[pos:]...)
	return out
}

func removeAt(acc []ast.Expr, i int) []ast.Expr {
	out := make([]ast.Expr, 0, len(acc)-1)
	out = append(out, acc[:i]...)
	out = append(out, acc[i+1:]...)
	return out
}

func checkSumInvariants(e ast.Expr) {
	s, ok := e.(*ast.Sum)
	if !ok {
		return
	}
	if len(s.Args_) < 2 {
		invariantPanic("reduce_sum/unary-collapse", e)
	}
	seenRat := false
	for i, a := range s.Args_ {
		if _, ok := a.(*ast.Sum); ok {
			invariantPanic("reduce_sum/flatness", e)
		}
		if r, ok := a.(*ast.Rational); ok {
			if seenRat {
				invariantPanic("reduce_sum/constant-folding", e)
			}
			seenRat = true
			if r.Sign() == 0 {
				invariantPanic("reduce_sum/zero-removal", e)
			}
		}
		if i > 0 && !ast.Less(s.Args_[i-1], a) {
			invariantPanic("reduce_sum/ordering", e)
		}
	}
}

func checkProdInvariants(e ast.Expr) {
	p, ok := e.(*ast.Prod)
	if !ok {
		return
	}
	if len(p.Args_) < 2 {
		invariantPanic("reduce_prod/unary-collapse", e)
	}
	seenRat := false
	bases := make([]ast.Expr, 0, len(p.Args_))
	for i, a := range p.Args_ {
		if _, ok := a.(*ast.Prod); ok {
			invariantPanic("reduce_prod/flatness", e)
		}
		if r, ok := a.(*ast.Rational); ok {
			if seenRat {
				invariantPanic("reduce_prod/constant-folding", e)
			}
			seenRat = true
			if r.Sign() == 0 || ast.IsOne(r) {
				invariantPanic("reduce_prod/identity-removal", e)
			}
			continue
		}
		base := ast.Base(a)
		for _, b := range bases {
			if ast.Equal(b, base) {
				invariantPanic("reduce_prod/like-base-merge", e)
			}
		}
		bases = append(bases, base)
		if i > 0 && !ast.Less(p.Args_[i-1], a) {
			invariantPanic("reduce_prod/ordering", e)
		}
	}
}
