// Package trig implements the trigonometric transformation passes of
// §4.6: substitution of tan/cot/sec/csc into sin/cos, angle-sum and
// multiple-angle expansion of sin/cos, and product-to-sum contraction.
package trig

import (
	"math/big"

	"github.com/msavch/symcas/pkg/ast"
	"github.com/msavch/symcas/pkg/expand"
	"github.com/msavch/symcas/pkg/ops"
)

// maxPower bounds the power-reduction formulas in ContractTrig; above
// it the coefficient search is not worth the blow-up in term count and
// the original expression is returned unmodified (§4.11).
const maxPower = 40

// SubstituteTrig recursively rewrites tan, cot, sec, and csc in terms of
// sin and cos.
func SubstituteTrig(e ast.Expr) ast.Expr {
	e = ast.MapArgs(e, SubstituteTrig)
	fn, ok := e.(*ast.Func)
	if !ok {
		return e
	}
	switch fn.Name {
	case ast.Tan:
		arg := fn.ArgsV[0]
		return ops.Mul(ast.NewFunc(ast.Sin, arg), ops.PowRaw(ast.NewFunc(ast.Cos, arg), ast.MINUS_ONE))
	case ast.Cot:
		arg := fn.ArgsV[0]
		return ops.Mul(ast.NewFunc(ast.Cos, arg), ops.PowRaw(ast.NewFunc(ast.Sin, arg), ast.MINUS_ONE))
	case ast.Sec:
		return ops.PowRaw(ast.NewFunc(ast.Cos, fn.ArgsV[0]), ast.MINUS_ONE)
	case ast.Csc:
		return ops.PowRaw(ast.NewFunc(ast.Sin, fn.ArgsV[0]), ast.MINUS_ONE)
	default:
		return e
	}
}

// ExpandTrig recursively expands sin(θ) and cos(θ): angle-sum identities
// when θ is a sum, multiple-angle formulas when θ is an integer multiple
// of a single angle, and leaves θ alone otherwise.
func ExpandTrig(e ast.Expr) ast.Expr {
	e = ast.MapArgs(e, ExpandTrig)
	fn, ok := e.(*ast.Func)
	if !ok {
		return e
	}
	switch fn.Name {
	case ast.Sin:
		return expandSinCos(fn.ArgsV[0], true)
	case ast.Cos:
		return expandSinCos(fn.ArgsV[0], false)
	default:
		return e
	}
}

func expandSinCos(theta ast.Expr, isSin bool) ast.Expr {
	if sum, ok := theta.(*ast.Sum); ok && len(sum.Args_) >= 2 {
		u := sum.Args_[0]
		v := ast.NewSumRaw(sum.Args_[1:]...)
		sinU := ExpandTrig(ast.NewFunc(ast.Sin, u))
		cosU := ExpandTrig(ast.NewFunc(ast.Cos, u))
		sinV := ExpandTrig(ast.NewFunc(ast.Sin, v))
		cosV := ExpandTrig(ast.NewFunc(ast.Cos, v))
		if isSin {
			return ops.Add(ops.Mul(sinU, cosV), ops.Mul(cosU, sinV))
		}
		return ops.Sub(ops.Mul(cosU, cosV), ops.Mul(sinU, sinV))
	}

	if n, phi, ok := integerMultiple(theta); ok {
		sign := n.Sign()
		abs := new(big.Int).Abs(n)
		result := multipleAngle(phi, abs.Int64(), isSin)
		if isSin && sign < 0 {
			result = ops.Neg(result)
		}
		return result
	}

	name := ast.Cos
	if isSin {
		name = ast.Sin
	}
	return ast.NewFunc(name, theta)
}

// integerMultiple reports whether theta is n·φ for an integer |n|≥2 and
// a genuine angle φ (not a bare constant).
func integerMultiple(theta ast.Expr) (*big.Int, ast.Expr, bool) {
	coeff := ast.RationalCoeff(theta)
	if !coeff.IsInt() {
		return nil, nil, false
	}
	n := coeff.Num()
	abs := new(big.Int).Abs(n)
	if abs.Cmp(big.NewInt(2)) < 0 {
		return nil, nil, false
	}
	phi, ok := ast.NonRationalTerm(theta)
	if !ok {
		return nil, nil, false
	}
	return n, phi, true
}

// multipleAngle expands sin(nφ)/cos(nφ) for a positive integer n using
// the binomial expansion of (cos φ + i sin φ)^n, restricted to its real
// or imaginary part:
//
//	sin(nφ) = Σ_{j odd}  (-1)^{(j-1)/2} C(n,j) cos(φ)^{n-j} sin(φ)^j
//	cos(nφ) = Σ_{j even} (-1)^{j/2}     C(n,j) cos(φ)^{n-j} sin(φ)^j
func multipleAngle(phi ast.Expr, n int64, isSin bool) ast.Expr {
	sinPhi := ast.NewFunc(ast.Sin, phi)
	cosPhi := ast.NewFunc(ast.Cos, phi)

	var terms []ast.Expr
	for j := int64(0); j <= n; j++ {
		if isSin && j%2 == 0 {
			continue
		}
		if !isSin && j%2 != 0 {
			continue
		}
		half := j / 2
		sign := int64(1)
		if half%2 != 0 {
			sign = -1
		}
		coeffNum := new(big.Int).Mul(binomial(n, j), big.NewInt(sign))
		coeff := ast.NewRationalFromBigInts(coeffNum, big.NewInt(1))
		cosPow := ops.Pow(cosPhi, ast.NewInt(n-j))
		sinPow := ops.Pow(sinPhi, ast.NewInt(j))
		terms = append(terms, ops.MulN(coeff, cosPow, sinPow))
	}
	return ops.AddN(terms...)
}

// trigAtom is a single sin(theta) or cos(theta) factor pulled out of a
// product, before contraction.
type trigAtom struct {
	theta ast.Expr
	isSin bool
}

func (a trigAtom) expr() ast.Expr {
	name := ast.Cos
	if a.isSin {
		name = ast.Sin
	}
	return ast.NewFunc(name, a.theta)
}

func isSinCos(name string) bool { return name == ast.Sin || name == ast.Cos }

// ContractTrig reduces a product or an integer power of sin/cos into a
// sum of sines/cosines of linear combinations of angles (§4.6
// "Trigonometric contraction"). Non-trig factors are separated out and
// reattached.
func ContractTrig(e ast.Expr) ast.Expr {
	e = ast.MapArgs(e, ContractTrig)
	switch v := e.(type) {
	case *ast.Prod:
		return contractTrigProd(v.Args_)
	case *ast.Pow:
		if fn, ok := v.BaseE.(*ast.Func); ok && isSinCos(fn.Name) {
			if n, ok2 := v.ExpE.(*ast.Rational); ok2 && n.IsInt() && n.Sign() > 0 {
				return powerReduce(fn, n.Num().Int64())
			}
		}
		return e
	default:
		return e
	}
}

func contractTrigProd(factors []ast.Expr) ast.Expr {
	var nonTrig []ast.Expr
	var blocks []ast.Expr
	var atoms []trigAtom

	for _, f := range factors {
		if pw, ok := f.(*ast.Pow); ok {
			if fn, ok2 := pw.BaseE.(*ast.Func); ok2 && isSinCos(fn.Name) {
				if n, ok3 := pw.ExpE.(*ast.Rational); ok3 && n.IsInt() && n.Sign() > 0 {
					blocks = append(blocks, powerReduce(fn, n.Num().Int64()))
					continue
				}
			}
			nonTrig = append(nonTrig, f)
			continue
		}
		if fn, ok := f.(*ast.Func); ok && isSinCos(fn.Name) {
			atoms = append(atoms, trigAtom{theta: fn.ArgsV[0], isSin: fn.Name == ast.Sin})
			continue
		}
		nonTrig = append(nonTrig, f)
	}

	for len(atoms) >= 2 {
		blocks = append(blocks, contractPair(atoms[0], atoms[1]))
		atoms = atoms[2:]
	}
	for _, a := range atoms {
		blocks = append(blocks, a.expr())
	}

	all := append(append([]ast.Expr{}, nonTrig...), blocks...)
	switch len(all) {
	case 0:
		return ast.ONE
	case 1:
		return all[0]
	default:
		return expand.Expand(ops.MulRaw(all...))
	}
}

func contractPair(a, b trigAtom) ast.Expr {
	if !a.isSin && b.isSin {
		return contractPair(b, a)
	}
	sumAngle := ops.Add(a.theta, b.theta)
	diffAngle := ops.Sub(a.theta, b.theta)
	half := ast.NewRational(1, 2)

	switch {
	case a.isSin && b.isSin:
		return ops.Mul(half, ops.Sub(ast.NewFunc(ast.Cos, diffAngle), ast.NewFunc(ast.Cos, sumAngle)))
	case !a.isSin && !b.isSin:
		return ops.Mul(half, ops.Add(ast.NewFunc(ast.Cos, sumAngle), ast.NewFunc(ast.Cos, diffAngle)))
	default: // a is sin, b is cos
		return ops.Mul(half, ops.Add(ast.NewFunc(ast.Sin, sumAngle), ast.NewFunc(ast.Sin, diffAngle)))
	}
}

// powerReduce expands sin(θ)^n / cos(θ)^n for positive integer n via the
// standard power-reduction formulas, distinguished by the parity of n.
func powerReduce(fn *ast.Func, n int64) ast.Expr {
	if n > maxPower {
		return ops.PowRaw(fn, ast.NewInt(n))
	}
	theta := fn.ArgsV[0]
	isSin := fn.Name == ast.Sin
	pow2n := new(big.Int).Lsh(big.NewInt(1), uint(n))

	var terms []ast.Expr
	if n%2 == 0 {
		m := n / 2
		terms = append(terms, ast.NewRationalFromBigInts(binomial(n, m), pow2n))
		for k := int64(0); k < m; k++ {
			sign := int64(1)
			if isSin && (m-k)%2 != 0 {
				sign = -1
			}
			coeffNum := new(big.Int).Mul(binomial(n, k), big.NewInt(2*sign))
			coeff := ast.NewRationalFromBigInts(coeffNum, pow2n)
			angle := ops.Mul(ast.NewInt(n-2*k), theta)
			terms = append(terms, ops.Mul(coeff, ast.NewFunc(ast.Cos, angle)))
		}
	} else {
		m := (n - 1) / 2
		for k := int64(0); k <= m; k++ {
			sign := int64(1)
			if isSin && (m-k)%2 != 0 {
				sign = -1
			}
			coeffNum := new(big.Int).Mul(binomial(n, k), big.NewInt(2*sign))
			coeff := ast.NewRationalFromBigInts(coeffNum, pow2n)
			angle := ops.Mul(ast.NewInt(n-2*k), theta)
			name := ast.Cos
			if isSin {
				name = ast.Sin
			}
			terms = append(terms, ops.Mul(coeff, ast.NewFunc(name, angle)))
		}
	}
	return ops.AddN(terms...)
}

func binomial(n, k int64) *big.Int {
	return new(big.Int).Binomial(n, k)
}
