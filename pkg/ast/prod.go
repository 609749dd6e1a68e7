package ast

import "strings"

// Prod is an n-ary multiplication node. An empty Prod denotes 1; a Prod is
// never stored with exactly one argument (spec invariant I2).
type Prod struct {
	Args_ []Expr
}

// NewProdRaw builds a Prod node with no normalization at all.
func NewProdRaw(args ...Expr) *Prod {
	return &Prod{Args_: args}
}

func (p *Prod) Kind() Kind   { return KindProd }
func (p *Prod) Args() []Expr { return p.Args_ }

func (p *Prod) String() string {
	if len(p.Args_) == 0 {
		return "1"
	}
	parts := make([]string, len(p.Args_))
	for i, a := range p.Args_ {
		str := a.String()
		if a.Kind() == KindSum {
			str = "(" + str + ")"
		}
		parts[i] = str
	}
	return strings.Join(parts, "*")
}
