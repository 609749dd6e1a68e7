package rationalize

import (
	"testing"

	"github.com/msavch/symcas/pkg/ast"
	"github.com/msavch/symcas/pkg/normalize"
	"github.com/msavch/symcas/pkg/ops"
)

func reduceStr(e ast.Expr) string {
	return normalize.Reduce(e).String()
}

func TestRationalizeCombinesFractions(t *testing.T) {
	x := ast.NewVar("x")
	one := ast.NewRational(1, 1)
	sum := ops.AddRaw(one, ops.PowRaw(x, ast.MINUS_ONE))

	got := Rationalize(sum)
	want := ops.Mul(ops.Pow(x, ast.MINUS_ONE), ops.Add(ast.ONE, x))
	if got.String() != want.String() {
		t.Errorf("Rationalize(1+1/x) = %s, want %s", got, want)
	}
}

func TestRationalizeUnderPower(t *testing.T) {
	x := ast.NewVar("x")
	one := ast.NewRational(1, 1)
	base := ops.AddRaw(one, ops.PowRaw(x, ast.MINUS_ONE))
	e := ops.PowRaw(base, ast.NewRational(1, 2))

	got := Rationalize(e)
	pw, ok := got.(*ast.Pow)
	if !ok {
		t.Fatalf("Rationalize((1+1/x)^(1/2)) did not keep the outer power, got %s", got)
	}
	if _, isSum := pw.BaseE.(*ast.Sum); isSum {
		t.Errorf("Rationalize((1+1/x)^(1/2)) left an un-combined sum under the power: %s", got)
	}
}

func TestFactorizeCommonTermsRationals(t *testing.T) {
	f, lq, rq := FactorizeCommonTerms(ast.NewInt(6), ast.NewInt(9))
	if f.String() != "3" {
		t.Errorf("factor of 6,9 = %s, want 3", f)
	}
	if lq.String() != "2" || rq.String() != "3" {
		t.Errorf("quotients = %s, %s, want 2, 3", lq, rq)
	}
}

func TestFactorizeCommonTermsSameBase(t *testing.T) {
	x := ast.NewVar("x")
	l := ops.PowRaw(x, ast.NewRational(5, 2))
	r := ops.PowRaw(x, ast.NewRational(3, 2))
	f, lq, rq := FactorizeCommonTerms(l, r)

	wantF := ops.Pow(x, ast.NewRational(3, 2))
	if f.String() != wantF.String() {
		t.Errorf("factor = %s, want %s", f, wantF)
	}
	if reduceStr(ops.Mul(f, lq)) != reduceStr(l) {
		t.Errorf("f*lq = %s, want %s", reduceStr(ops.Mul(f, lq)), reduceStr(l))
	}
	if reduceStr(ops.Mul(f, rq)) != reduceStr(r) {
		t.Errorf("f*rq = %s, want %s", reduceStr(ops.Mul(f, rq)), reduceStr(r))
	}
}

func TestFactorOutSimpleProduct(t *testing.T) {
	a, b, x := ast.NewVar("a"), ast.NewVar("b"), ast.NewVar("x")
	e := ops.AddRaw(ops.MulRaw(a, b), ops.MulRaw(a, b, x))

	got := FactorOut(e)
	want := ops.Mul(ops.MulRaw(a, b), ops.Add(ast.ONE, x))
	if reduceStr(got) != reduceStr(want) {
		t.Errorf("FactorOut(ab+abx) = %s, want %s", reduceStr(got), reduceStr(want))
	}
}

func TestCancelCommonFactor(t *testing.T) {
	a, b, c, d, e := ast.NewVar("a"), ast.NewVar("b"), ast.NewVar("c"), ast.NewVar("d"), ast.NewVar("e")
	sumAB := ops.AddRaw(a, b)
	num := ops.AddRaw(ops.MulRaw(sumAB, c), ops.MulRaw(sumAB, d))
	den := ops.AddRaw(ops.MulRaw(a, e), ops.MulRaw(b, e))
	frac := ops.Div(num, den)

	got := reduceStr(Cancel(frac))
	want := reduceStr(ops.Div(ops.Add(c, d), e))
	if got != want {
		t.Errorf("Cancel(((a+b)c+(a+b)d)/(ae+be)) = %s, want %s", got, want)
	}
}
