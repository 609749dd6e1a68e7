package trig

import (
	"testing"

	"github.com/msavch/symcas/pkg/ast"
	"github.com/msavch/symcas/pkg/normalize"
	"github.com/msavch/symcas/pkg/ops"
)

func reduceStr(e ast.Expr) string {
	return normalize.Reduce(e).String()
}

func TestSubstituteTrig(t *testing.T) {
	x := ast.NewVar("x")
	tests := []struct {
		name string
		e    ast.Expr
		want string
	}{
		{"tan", ast.NewFunc(ast.Tan, x), "cos(x)^-1*sin(x)"},
		{"cot", ast.NewFunc(ast.Cot, x), "sin(x)^-1*cos(x)"},
		{"sec", ast.NewFunc(ast.Sec, x), "cos(x)^-1"},
		{"csc", ast.NewFunc(ast.Csc, x), "sin(x)^-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reduceStr(SubstituteTrig(tt.e))
			if got != tt.want {
				t.Errorf("SubstituteTrig(%s) = %s, want %s", tt.e, got, tt.want)
			}
		})
	}
}

func TestExpandTrigAngleSum(t *testing.T) {
	a, b := ast.NewVar("a"), ast.NewVar("b")
	e := ast.NewFunc(ast.Sin, ops.AddRaw(a, b))
	got := reduceStr(ExpandTrig(e))
	want := "cos(b)*sin(a)+cos(a)*sin(b)"
	if got != want {
		t.Errorf("ExpandTrig(sin(a+b)) = %s, want %s", got, want)
	}
}

func TestExpandTrigDoubleAngleIdentity(t *testing.T) {
	x := ast.NewVar("x")
	sinDouble := ast.NewFunc(ast.Sin, ops.MulRaw(ast.NewInt(2), x))
	twoSinCos := ops.MulN(ast.NewInt(2), ast.NewFunc(ast.Sin, x), ast.NewFunc(ast.Cos, x))

	diff := ops.Sub(ExpandTrig(sinDouble), twoSinCos)
	if got := reduceStr(diff); got != "0" {
		t.Errorf("expand_trig(sin(2x)) - 2 sin(x) cos(x) reduced to %s, want 0", got)
	}
}

func TestExpandTrigNegativeMultiple(t *testing.T) {
	x := ast.NewVar("x")
	e := ast.NewFunc(ast.Sin, ops.MulRaw(ast.NewInt(-2), x))
	got := reduceStr(ExpandTrig(e))
	want := reduceStr(ops.Neg(ops.MulN(ast.NewInt(2), ast.NewFunc(ast.Sin, x), ast.NewFunc(ast.Cos, x))))
	if got != want {
		t.Errorf("ExpandTrig(sin(-2x)) = %s, want %s", got, want)
	}
}

func TestContractTrigProductOfSines(t *testing.T) {
	a, b := ast.NewVar("a"), ast.NewVar("b")
	e := ops.MulRaw(ast.NewFunc(ast.Sin, a), ast.NewFunc(ast.Sin, b))
	got := reduceStr(ContractTrig(e))
	want := reduceStr(ops.Mul(ast.NewRational(1, 2),
		ops.Sub(ast.NewFunc(ast.Cos, ops.Sub(a, b)), ast.NewFunc(ast.Cos, ops.Add(a, b)))))
	if got != want {
		t.Errorf("ContractTrig(sin(a)sin(b)) = %s, want %s", got, want)
	}
}

func TestContractTrigPowerReduction(t *testing.T) {
	x := ast.NewVar("x")
	e := ops.Pow(ast.NewFunc(ast.Sin, x), ast.NewInt(2))
	got := reduceStr(ContractTrig(e))
	want := reduceStr(ops.Sub(ast.NewRational(1, 2),
		ops.Mul(ast.NewRational(1, 2), ast.NewFunc(ast.Cos, ops.MulRaw(ast.NewInt(2), x)))))
	if got != want {
		t.Errorf("ContractTrig(sin(x)^2) = %s, want %s", got, want)
	}
}
