package ast

import "strings"

// Cmp implements the total order of spec §4.2: lexicographic over
// (variant-rank, payload), with Sum/Prod compared element-wise from the
// last argument to the first, then by length, and a non-Sum/Prod operand
// compared against a Sum/Prod as if it were a singleton sequence of that
// kind. Returns -1, 0, or 1.
func Cmp(a, b Expr) int {
	ka, kb := a.Kind(), b.Kind()

	switch {
	case ka == KindSum && kb == KindSum:
		return cmpSeq(a.(*Sum).Args_, b.(*Sum).Args_)
	case ka == KindProd && kb == KindProd:
		return cmpSeq(a.(*Prod).Args_, b.(*Prod).Args_)
	case ka == KindSum || kb == KindSum:
		return cmpSeq(asSeq(a, KindSum), asSeq(b, KindSum))
	case ka == KindProd || kb == KindProd:
		return cmpSeq(asSeq(a, KindProd), asSeq(b, KindProd))
	case ka == kb:
		return cmpSameKind(a, b, ka)
	default:
		return sign(rank(ka) - rank(kb))
	}
}

// Less reports whether a sorts strictly before b.
func Less(a, b Expr) bool { return Cmp(a, b) < 0 }

func rank(k Kind) int { return int(k) }

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}

// asSeq returns e's argument sequence if e already has kind k, or a
// singleton sequence containing e otherwise.
func asSeq(e Expr, k Kind) []Expr {
	if e.Kind() == k {
		return e.Args()
	}
	return []Expr{e}
}

// cmpSeq compares two argument sequences element-wise, highest (last)
// element first, then falls back to length.
func cmpSeq(p, q []Expr) int {
	i, j := len(p)-1, len(q)-1
	for i >= 0 && j >= 0 {
		if c := Cmp(p[i], q[j]); c != 0 {
			return c
		}
		i--
		j--
	}
	return sign(len(p) - len(q))
}

func cmpSameKind(a, b Expr, k Kind) int {
	switch k {
	case KindRational:
		return CmpR(a.(*Rational), b.(*Rational))
	case KindIrrational:
		return strings.Compare(a.(*Irrational).name, b.(*Irrational).name)
	case KindVar:
		return strings.Compare(a.(*Var).name, b.(*Var).name)
	case KindPow:
		pa, pb := a.(*Pow), b.(*Pow)
		if c := Cmp(pa.BaseE, pb.BaseE); c != 0 {
			return c
		}
		return Cmp(pa.ExpE, pb.ExpE)
	case KindFunc:
		fa, fb := a.(*Func), b.(*Func)
		if c := strings.Compare(fa.Name, fb.Name); c != 0 {
			return c
		}
		return cmpSeq(fa.ArgsV, fb.ArgsV)
	case KindUndef:
		return 0
	default:
		return 0
	}
}

// SortExprs sorts a slice of expressions in place using Cmp, breaking ties
// stably. Storage order inside canonical Sum/Prod nodes (I5) relies on
// this.
func SortExprs(args []Expr) {
	// insertion sort: n-ary operand lists are small in practice and this
	// keeps the comparator calls easy to reason about.
	for i := 1; i < len(args); i++ {
		for j := i; j > 0 && Less(args[j], args[j-1]); j-- {
			args[j], args[j-1] = args[j-1], args[j]
		}
	}
}
