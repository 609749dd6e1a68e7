package ast

import "testing"

func TestPredicates(t *testing.T) {
	x := NewVar("x")
	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"IsZero(0)", IsZero(ZERO), true},
		{"IsZero(1)", IsZero(ONE), false},
		{"IsOne(1)", IsOne(ONE), true},
		{"IsOne(2)", IsOne(NewInt(2)), false},
		{"IsUndef(undef)", IsUndef(TheUndef), true},
		{"IsUndef(x)", IsUndef(x), false},
		{"IsConst(pi)", IsConst(Pi), true},
		{"IsConst(x)", IsConst(x), false},
		{"IsInt(1)", IsInt(ONE), true},
		{"IsInt(1/2)", IsInt(NewRational(1, 2)), false},
		{"IsPos(1)", IsPos(ONE), true},
		{"IsNeg(-1)", IsNeg(MINUS_ONE), true},
		{"IsSin", IsSin(NewFunc(Sin, x)), true},
		{"IsCos", IsCos(NewFunc(Sin, x)), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	x, y := NewVar("x"), NewVar("y")
	if !Equal(x, NewVar("x")) {
		t.Errorf("Equal(x, x) = false, want true")
	}
	if Equal(x, y) {
		t.Errorf("Equal(x, y) = true, want false")
	}
	if !Equal(NewSumRaw(x, y), NewSumRaw(x, y)) {
		t.Errorf("Equal on identical sums = false, want true")
	}
}

func TestMapArgs(t *testing.T) {
	x, y := NewVar("x"), NewVar("y")
	sum := NewSumRaw(x, y)
	mapped := MapArgs(sum, func(e Expr) Expr {
		if Equal(e, x) {
			return NewInt(5)
		}
		return e
	})
	s, ok := mapped.(*Sum)
	if !ok {
		t.Fatalf("MapArgs on Sum did not return a Sum: %T", mapped)
	}
	if !Equal(s.Args_[0], NewInt(5)) || !Equal(s.Args_[1], y) {
		t.Errorf("MapArgs did not transform children correctly: %v", s)
	}

	pow := NewPowRaw(x, NewInt(2))
	mappedPow := MapArgs(pow, func(e Expr) Expr {
		if Equal(e, NewInt(2)) {
			return NewInt(3)
		}
		return e
	}).(*Pow)
	if !Equal(mappedPow.ExpE, NewInt(3)) {
		t.Errorf("MapArgs on Pow did not transform exponent")
	}

	leaf := MapArgs(x, func(e Expr) Expr { return NewInt(9) })
	if !Equal(leaf, x) {
		t.Errorf("MapArgs on a leaf should return the leaf unchanged, got %v", leaf)
	}
}

func TestStringFormatting(t *testing.T) {
	x, y := NewVar("x"), NewVar("y")
	tests := []struct {
		name string
		e    Expr
		want string
	}{
		{"sum", NewSumRaw(x, y), "x+y"},
		{"prod", NewProdRaw(x, y), "x*y"},
		{"pow", NewPowRaw(x, NewInt(2)), "x^2"},
		{"prod of sum", NewProdRaw(x, NewSumRaw(x, y)), "x*(x+y)"},
		{"pow of sum base", NewPowRaw(NewSumRaw(x, y), NewInt(2)), "(x+y)^2"},
		{"func", NewFunc(Sin, x), "sin(x)"},
		{"empty sum", NewSumRaw(), "0"},
		{"empty prod", NewProdRaw(), "1"},
		{"rational fraction", NewRational(1, 2), "1/2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.e.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
