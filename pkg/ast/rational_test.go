package ast

import (
	"math/big"
	"testing"
)

func TestRationalArithmetic(t *testing.T) {
	tests := []struct {
		name string
		a, b *Rational
		op   func(a, b *Rational) *Rational
		want string
	}{
		{"add integers", NewInt(2), NewInt(3), AddR, "5"},
		{"add fractions", NewRational(1, 2), NewRational(1, 3), AddR, "5/6"},
		{"sub to zero", NewInt(4), NewInt(4), SubR, "0"},
		{"mul fractions", NewRational(2, 3), NewRational(3, 4), MulR, "1/2"},
		{"quo", NewInt(6), NewInt(4), QuoR, "3/2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.op(tt.a, tt.b).String()
			if got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRationalPredicates(t *testing.T) {
	if ZERO.Sign() != 0 {
		t.Errorf("ZERO.Sign() = %d, want 0", ZERO.Sign())
	}
	if !ONE.IsInt() {
		t.Errorf("ONE.IsInt() = false, want true")
	}
	if NewRational(1, 2).IsInt() {
		t.Errorf("1/2.IsInt() = true, want false")
	}
	if CmpR(NewInt(1), NewInt(2)) >= 0 {
		t.Errorf("CmpR(1,2) >= 0, want < 0")
	}
}

func TestPowR(t *testing.T) {
	tests := []struct {
		name string
		base *Rational
		exp  int64
		want string
	}{
		{"positive exponent", NewInt(2), 3, "8"},
		{"zero exponent", NewInt(5), 0, "1"},
		{"negative exponent", NewInt(2), -1, "1/2"},
		{"fraction base", NewRational(2, 3), 2, "4/9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PowR(tt.base, big.NewInt(tt.exp)).String()
			if got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDivRem(t *testing.T) {
	q, r := DivRem(NewRational(7, 2))
	if q.String() != "3" {
		t.Errorf("quotient = %s, want 3", q.String())
	}
	if r.String() != "1/2" {
		t.Errorf("remainder = %s, want 1/2", r.String())
	}
}

func TestIntGCD(t *testing.T) {
	g := IntGCD(NewInt(12), NewInt(18))
	if g == nil || g.Int64() != 6 {
		t.Errorf("IntGCD(12,18) = %v, want 6", g)
	}
	if IntGCD(NewRational(1, 2), NewInt(4)) != nil {
		t.Errorf("IntGCD with non-integer operand should be nil")
	}
}
