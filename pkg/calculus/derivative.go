// Package calculus implements symbolic differentiation (§4.9): the
// structural rules for Sum, Prod, Pow, and the per-function derivative
// table for Func.
package calculus

import (
	"fmt"

	"github.com/msavch/symcas/pkg/ast"
	"github.com/msavch/symcas/pkg/ops"
)

// Derivative returns d(expr)/d(x), where x names the differentiation
// variable. The result is already reduced.
func Derivative(expr ast.Expr, x string) (ast.Expr, error) {
	return differentiate(expr, x)
}

func differentiate(expr ast.Expr, x string) (ast.Expr, error) {
	switch e := expr.(type) {
	case ast.Undef:
		return ast.TheUndef, nil
	case *ast.Rational:
		return ast.ZERO, nil
	case *ast.Irrational:
		return ast.ZERO, nil
	case *ast.Var:
		if e.Name() == x {
			return ast.ONE, nil
		}
		return ast.ZERO, nil
	case *ast.Sum:
		return differentiateSum(e, x)
	case *ast.Prod:
		return differentiateProd(e, x)
	case *ast.Pow:
		return differentiatePow(e, x)
	case *ast.Func:
		return differentiateFunc(e, x)
	default:
		return nil, fmt.Errorf("calculus: cannot differentiate expression of type %T", expr)
	}
}

// differentiateSum applies d(Σaᵢ)/dx = Σd(aᵢ)/dx.
func differentiateSum(s *ast.Sum, x string) (ast.Expr, error) {
	terms := make([]ast.Expr, len(s.Args_))
	for i, a := range s.Args_ {
		d, err := differentiate(a, x)
		if err != nil {
			return nil, err
		}
		terms[i] = d
	}
	return ops.AddN(terms...), nil
}

// differentiateProd applies the product rule via the binary split
// (a, R) = (first factor, product of the rest):
// d(a·R)/dx = d(a)/dx·R + a·d(R)/dx.
func differentiateProd(p *ast.Prod, x string) (ast.Expr, error) {
	a := p.Args_[0]
	var rest ast.Expr
	if len(p.Args_) == 2 {
		rest = p.Args_[1]
	} else {
		rest = ast.NewProdRaw(p.Args_[1:]...)
	}

	aPrime, err := differentiate(a, x)
	if err != nil {
		return nil, err
	}
	restPrime, err := differentiate(rest, x)
	if err != nil {
		return nil, err
	}

	return ops.Add(ops.Mul(aPrime, rest), ops.Mul(a, restPrime)), nil
}

// differentiatePow applies the general power rule:
// d(v^w)/dx = w·v^(w−1)·d(v)/dx + d(w)/dx·v^w·ln(v).
// The two summands collapse on their own when w or v doesn't depend on x,
// since d(v)/dx or d(w)/dx reduces to 0.
func differentiatePow(pw *ast.Pow, x string) (ast.Expr, error) {
	v, w := pw.BaseE, pw.ExpE

	vPrime, err := differentiate(v, x)
	if err != nil {
		return nil, err
	}
	wPrime, err := differentiate(w, x)
	if err != nil {
		return nil, err
	}

	term1 := ops.MulN(w, ops.Pow(v, ops.Sub(w, ast.ONE)), vPrime)
	term2 := ops.MulN(wPrime, pw, ast.NewFunc(ast.Ln, v))
	return ops.Add(term1, term2), nil
}

// differentiateFunc applies the chain rule: d(f(u))/dx = f'(u)·d(u)/dx.
func differentiateFunc(fn *ast.Func, x string) (ast.Expr, error) {
	u := fn.ArgsV[0]
	uPrime, err := differentiate(u, x)
	if err != nil {
		return nil, err
	}
	outer, err := functionDerivative(fn.Name, u)
	if err != nil {
		return nil, err
	}
	return ops.Mul(outer, uPrime), nil
}

// functionDerivative returns f'(u) for every function this engine knows
// (spec §3's closed function set).
func functionDerivative(name string, u ast.Expr) (ast.Expr, error) {
	switch name {
	case ast.Sin:
		return ast.NewFunc(ast.Cos, u), nil
	case ast.Cos:
		return ops.Neg(ast.NewFunc(ast.Sin, u)), nil
	case ast.Tan:
		return ops.Pow(ast.NewFunc(ast.Cos, u), ast.NewInt(-2)), nil
	case ast.Sec:
		return ops.Mul(ast.NewFunc(ast.Sec, u), ast.NewFunc(ast.Tan, u)), nil
	case ast.Csc:
		return ops.Neg(ops.Mul(ast.NewFunc(ast.Csc, u), ast.NewFunc(ast.Cot, u))), nil
	case ast.Cot:
		return ops.Neg(ops.Pow(ast.NewFunc(ast.Csc, u), ast.NewInt(2))), nil
	case ast.Ln:
		return ops.Pow(u, ast.MINUS_ONE), nil
	case ast.Log:
		return ops.Pow(ops.Mul(u, ast.NewFunc(ast.Ln, ast.NewInt(10))), ast.MINUS_ONE), nil
	case ast.Exp:
		return ast.NewFunc(ast.Exp, u), nil
	case ast.Sqrt:
		half := ast.NewRational(1, 2)
		return ops.Mul(half, ops.Pow(u, ops.Sub(half, ast.ONE))), nil
	case ast.Abs:
		return ops.Mul(u, ops.Pow(ast.NewFunc(ast.Abs, u), ast.MINUS_ONE)), nil
	default:
		return nil, fmt.Errorf("calculus: derivative of function %s not implemented", name)
	}
}

// NthDerivative applies Derivative n times.
func NthDerivative(expr ast.Expr, x string, n int) (ast.Expr, error) {
	if n < 0 {
		return nil, fmt.Errorf("calculus: derivative order must be non-negative")
	}
	current := expr
	for i := 0; i < n; i++ {
		d, err := Derivative(current, x)
		if err != nil {
			return nil, err
		}
		current = d
	}
	return current, nil
}

// Gradient computes the partial derivative of expr with respect to each
// named variable.
func Gradient(expr ast.Expr, vars []string) (map[string]ast.Expr, error) {
	grad := make(map[string]ast.Expr, len(vars))
	for _, v := range vars {
		d, err := Derivative(expr, v)
		if err != nil {
			return nil, fmt.Errorf("calculus: partial derivative wrt %s: %w", v, err)
		}
		grad[v] = d
	}
	return grad, nil
}
