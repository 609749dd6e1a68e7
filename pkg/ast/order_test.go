package ast

import "testing"

func TestCmpVariantRank(t *testing.T) {
	x := NewVar("x")
	tests := []struct {
		name string
		a, b Expr
	}{
		{"rational before irrational", NewInt(1), Pi},
		{"irrational before var", Pi, x},
		{"var before pow", x, NewPowRaw(x, NewInt(2))},
		{"pow before func", NewPowRaw(x, NewInt(2)), NewFunc(Sin, x)},
		{"func before undef", NewFunc(Sin, x), TheUndef},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !Less(tt.a, tt.b) {
				t.Errorf("Less(%v, %v) = false, want true", tt.a, tt.b)
			}
			if Less(tt.b, tt.a) {
				t.Errorf("Less(%v, %v) = true, want false", tt.b, tt.a)
			}
		})
	}
}

func TestCmpAntisymmetric(t *testing.T) {
	x, y := NewVar("x"), NewVar("y")
	exprs := []Expr{NewInt(1), NewInt(2), Pi, x, y, NewPowRaw(x, NewInt(2)), NewFunc(Sin, x)}
	for _, a := range exprs {
		for _, b := range exprs {
			if Cmp(a, b) != -Cmp(b, a) {
				t.Errorf("Cmp(%v,%v)=%d, Cmp(%v,%v)=%d: not antisymmetric", a, b, Cmp(a, b), b, a, Cmp(b, a))
			}
		}
	}
}

func TestCmpVars(t *testing.T) {
	if !Less(NewVar("x"), NewVar("y")) {
		t.Errorf("Less(x, y) = false, want true")
	}
}

func TestCmpSumLastToFirst(t *testing.T) {
	x, y := NewVar("x"), NewVar("y")
	a := NewSumRaw(x, y)
	b := NewSumRaw(x, NewPowRaw(y, NewInt(2)))
	if !Less(a, b) {
		t.Errorf("Less(x+y, x+y^2) = false, want true")
	}
}

func TestSortExprs(t *testing.T) {
	x, y := NewVar("x"), NewVar("y")
	args := []Expr{y, NewInt(3), x, Pi}
	SortExprs(args)
	for i := 1; i < len(args); i++ {
		if Less(args[i], args[i-1]) {
			t.Errorf("SortExprs did not produce a sorted slice: %v", args)
		}
	}
	if args[0].Kind() != KindRational {
		t.Errorf("expected rational first, got %v", args[0])
	}
}
