// Package ast defines the expression tree for the algebraic core: the
// immutable tagged values (Undef, Rational, Irrational, Var, Sum, Prod, Pow,
// Func) and the structural operations (ordering, flattening, argument
// access) that the normalizer and transformation passes build on.
package ast

// Kind identifies the variant of an Expr node. The numeric order matches
// the total order's variant rank (smallest first): Rational, Irrational,
// Var, Pow, Prod, Sum, Func, Undef.
type Kind int

const (
	KindRational Kind = iota
	KindIrrational
	KindVar
	KindPow
	KindProd
	KindSum
	KindFunc
	KindUndef
)

func (k Kind) String() string {
	switch k {
	case KindRational:
		return "Rational"
	case KindIrrational:
		return "Irrational"
	case KindVar:
		return "Var"
	case KindPow:
		return "Pow"
	case KindProd:
		return "Prod"
	case KindSum:
		return "Sum"
	case KindFunc:
		return "Func"
	case KindUndef:
		return "Undef"
	default:
		return "Unknown"
	}
}

// Expr is any node in the expression tree. Values are immutable after
// construction; transformations return new values rather than mutating in
// place, so an Expr may be shared freely between callers.
type Expr interface {
	// Kind reports the node's variant.
	Kind() Kind
	// String renders the expression in its canonical textual form.
	String() string
	// Args returns the node's immediate children (empty for leaves).
	Args() []Expr
}

// Equal reports whether a and b are structurally identical, i.e. equal
// under the canonical total order.
func Equal(a, b Expr) bool {
	return Cmp(a, b) == 0
}

// IsUndef reports whether e is the absorbing Undef value.
func IsUndef(e Expr) bool {
	return e.Kind() == KindUndef
}

// IsZero reports whether e is the rational constant 0.
func IsZero(e Expr) bool {
	r, ok := e.(*Rational)
	return ok && r.val.Sign() == 0
}

// IsOne reports whether e is the rational constant 1.
func IsOne(e Expr) bool {
	r, ok := e.(*Rational)
	return ok && r.val.IsInt() && r.val.Num().IsInt64() && r.val.Num().Int64() == 1
}

// IsConst reports whether e carries no free variables of its own structure,
// i.e. is a Rational or Irrational leaf.
func IsConst(e Expr) bool {
	switch e.Kind() {
	case KindRational, KindIrrational:
		return true
	default:
		return false
	}
}

// IsInt reports whether e is a Rational with integer value.
func IsInt(e Expr) bool {
	r, ok := e.(*Rational)
	return ok && r.val.IsInt()
}

// IsPos reports whether e is a Rational with a positive value.
func IsPos(e Expr) bool {
	r, ok := e.(*Rational)
	return ok && r.val.Sign() > 0
}

// IsNeg reports whether e is a Rational with a negative value.
func IsNeg(e Expr) bool {
	r, ok := e.(*Rational)
	return ok && r.val.Sign() < 0
}

// IsFunc reports whether e is a Func node named name.
func IsFunc(e Expr, name string) bool {
	f, ok := e.(*Func)
	return ok && f.Name == name
}

// IsSin reports whether e is sin(...).
func IsSin(e Expr) bool { return IsFunc(e, Sin) }

// IsCos reports whether e is cos(...).
func IsCos(e Expr) bool { return IsFunc(e, Cos) }

// MapArgs returns a copy of e with every immediate child replaced by
// f(child). It does not recurse into the new children and does not
// normalize the result — callers that need a canonical form must reduce
// it themselves.
func MapArgs(e Expr, f func(Expr) Expr) Expr {
	switch v := e.(type) {
	case *Sum:
		args := make([]Expr, len(v.Args_))
		for i, a := range v.Args_ {
			args[i] = f(a)
		}
		return &Sum{Args_: args}
	case *Prod:
		args := make([]Expr, len(v.Args_))
		for i, a := range v.Args_ {
			args[i] = f(a)
		}
		return &Prod{Args_: args}
	case *Pow:
		return &Pow{BaseE: f(v.BaseE), ExpE: f(v.ExpE)}
	case *Func:
		args := make([]Expr, len(v.ArgsV))
		for i, a := range v.ArgsV {
			args[i] = f(a)
		}
		return &Func{Name: v.Name, ArgsV: args}
	default:
		return e
	}
}
