package ast

import "math/big"

// Flatten returns the unique child if e is a 1-argument Sum/Prod,
// transitively; otherwise e itself. A canonical tree never contains such
// 1-argument nodes (invariant I2), but Flatten is applied defensively by
// pkg/normalize while a rewrite is in progress.
func Flatten(e Expr) Expr {
	switch v := e.(type) {
	case *Sum:
		if len(v.Args_) == 1 {
			return Flatten(v.Args_[0])
		}
	case *Prod:
		if len(v.Args_) == 1 {
			return Flatten(v.Args_[0])
		}
	}
	return e
}

// BaseExponent returns (base, exponent) for a Pow node, or (e, 1) for any
// other node.
func BaseExponent(e Expr) (Expr, Expr) {
	if p, ok := e.(*Pow); ok {
		return p.BaseE, p.ExpE
	}
	return e, ONE
}

// Base is BaseExponent's first component.
func Base(e Expr) Expr { b, _ := BaseExponent(e); return b }

// Exponent is BaseExponent's second component.
func Exponent(e Expr) Expr { _, x := BaseExponent(e); return x }

// factorsOf treats e as a product and returns its factors: the Prod's
// arguments if e is a Prod, or the singleton [e] otherwise.
func factorsOf(e Expr) []Expr {
	if p, ok := e.(*Prod); ok {
		return p.Args_
	}
	return []Expr{e}
}

// buildProdRaw assembles factors into a single expression without
// normalizing: zero factors is 1, one factor is that factor, otherwise a
// raw Prod.
func buildProdRaw(factors []Expr) Expr {
	switch len(factors) {
	case 0:
		return ONE
	case 1:
		return factors[0]
	default:
		return NewProdRaw(factors...)
	}
}

// RationalCoeff returns e's single rational factor, or 1 if it has none
// (spec §3, "rational coefficient").
func RationalCoeff(e Expr) *Rational {
	if r, ok := e.(*Rational); ok {
		return r
	}
	for _, f := range factorsOf(e) {
		if r, ok := f.(*Rational); ok {
			return r
		}
	}
	return ONE
}

// NonRationalTerm returns the product of e's non-rational factors, or
// (nil, false) if e is purely rational (spec §3, "non-rational term").
func NonRationalTerm(e Expr) (Expr, bool) {
	if _, ok := e.(*Rational); ok {
		return nil, false
	}
	factors := factorsOf(e)
	rest := make([]Expr, 0, len(factors))
	for _, f := range factors {
		if _, ok := f.(*Rational); ok {
			continue
		}
		rest = append(rest, f)
	}
	if len(rest) == 0 {
		return nil, false
	}
	return buildProdRaw(rest), true
}

func isNegativeExponent(exp Expr) bool {
	r, ok := exp.(*Rational)
	return ok && r.Sign() < 0
}

// Numerator splits e's factors into those with a non-negative exponent
// (scalars contribute their integer numerator).
func Numerator(e Expr) Expr {
	var num []Expr
	for _, f := range factorsOf(e) {
		if r, ok := f.(*Rational); ok {
			num = append(num, NewRationalFromBigInts(new(big.Int).Abs(r.Num()), big.NewInt(1)))
			continue
		}
		if isNegativeExponent(Exponent(f)) {
			continue
		}
		num = append(num, f)
	}
	if RationalCoeff(e).Sign() < 0 && len(num) > 0 {
		num = append([]Expr{MINUS_ONE}, num...)
	}
	return buildProdRaw(num)
}

// Denominator splits e's factors into those with a negative exponent
// (inverted back to positive), plus the scalar denominator.
func Denominator(e Expr) Expr {
	var den []Expr
	for _, f := range factorsOf(e) {
		if r, ok := f.(*Rational); ok {
			if r.Denom().Cmp(big.NewInt(1)) != 0 {
				den = append(den, NewRationalFromBigInts(r.Denom(), big.NewInt(1)))
			}
			continue
		}
		base, exp := BaseExponent(f)
		if isNegativeExponent(exp) {
			negExp := NegR(exp.(*Rational))
			if IsOne(negExp) {
				den = append(den, base)
			} else {
				den = append(den, NewPowRaw(base, negExp))
			}
		}
	}
	return buildProdRaw(den)
}

// FreeOf reports whether no sub-expression of e equals x.
func FreeOf(e Expr, x Expr) bool {
	free := true
	ForEachComplSubExpr(e, func(sub Expr) bool {
		if Equal(sub, x) {
			free = false
			return false
		}
		return true
	})
	return free
}

// ForEachComplSubExpr visits e, then (if visit returned true) each of its
// descendants in pre-order. Returning false from visit stops descent into
// that sub-tree without stopping traversal of the rest of the tree — the
// mechanism substitution uses to avoid re-scanning a freshly substituted
// region.
func ForEachComplSubExpr(e Expr, visit func(Expr) bool) {
	if !visit(e) {
		return
	}
	for _, a := range e.Args() {
		ForEachComplSubExpr(a, visit)
	}
}

// Substitute replaces every complete sub-expression of e equal to from
// with to. A substituted region is not re-scanned.
func Substitute(e Expr, from, to Expr) Expr {
	if Equal(e, from) {
		return to
	}
	return MapArgs(e, func(c Expr) Expr { return Substitute(c, from, to) })
}

// SubstPair is a (from, to) replacement rule for ConcurrSubstitute and
// SeqSubstitute.
type SubstPair struct {
	From, To Expr
}

// ConcurrSubstitute applies pairs "in parallel": the first pair whose From
// matches a given sub-expression wins, and a substituted region is not
// re-scanned against the remaining pairs.
func ConcurrSubstitute(e Expr, pairs []SubstPair) Expr {
	for _, p := range pairs {
		if Equal(e, p.From) {
			return p.To
		}
	}
	return MapArgs(e, func(c Expr) Expr { return ConcurrSubstitute(c, pairs) })
}

// SeqSubstitute applies pairs in order, each pass descending the whole
// tree before the next pair is considered.
func SeqSubstitute(e Expr, pairs []SubstPair) Expr {
	result := e
	for _, p := range pairs {
		result = Substitute(result, p.From, p.To)
	}
	return result
}
