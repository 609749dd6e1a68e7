package ast

import "fmt"

// Pow is exponentiation, base^exponent.
type Pow struct {
	BaseE Expr
	ExpE  Expr
}

// NewPowRaw builds a Pow node with no normalization. Used by transformations
// (e.g. exponential expansion) that want to distinguish exp(x)^2 from
// exp(2x) during the rewrite rather than have pkg/ops collapse them.
func NewPowRaw(base, exponent Expr) *Pow {
	return &Pow{BaseE: base, ExpE: exponent}
}

func (p *Pow) Kind() Kind     { return KindPow }
func (p *Pow) Args() []Expr   { return []Expr{p.BaseE, p.ExpE} }
func (p *Pow) Base() Expr     { return p.BaseE }
func (p *Pow) Exponent() Expr { return p.ExpE }

func (p *Pow) String() string {
	base := p.BaseE.String()
	if p.BaseE.Kind() == KindSum || p.BaseE.Kind() == KindProd {
		base = "(" + base + ")"
	}
	exp := p.ExpE.String()
	if p.ExpE.Kind() == KindSum || p.ExpE.Kind() == KindProd {
		exp = "(" + exp + ")"
	}
	return fmt.Sprintf("%s^%s", base, exp)
}
