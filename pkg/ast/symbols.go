package ast

import (
	"fmt"
	"strings"
)

// Var is an opaque symbolic variable, identified only by name.
type Var struct {
	name string
}

// NewVar builds a variable node.
func NewVar(name string) *Var {
	return &Var{name: name}
}

func (v *Var) Kind() Kind     { return KindVar }
func (v *Var) Args() []Expr   { return nil }
func (v *Var) String() string { return v.name }

// Name returns the variable's identifier.
func (v *Var) Name() string { return v.name }

// Known function tags. The set is closed: Func's name is a nested tagged
// sum in spirit (spec §9, "not an open extension point"), even though Go
// represents it as a plain string for simplicity.
const (
	Sin  = "sin"
	Cos  = "cos"
	Tan  = "tan"
	Cot  = "cot"
	Sec  = "sec"
	Csc  = "csc"
	Ln   = "ln"
	Log  = "log"
	Exp  = "exp"
	Sqrt = "sqrt"
	Abs  = "abs"
)

// Func is a named function application over an ordered argument list.
type Func struct {
	Name  string
	ArgsV []Expr
}

// NewFunc builds a function-call node.
func NewFunc(name string, args ...Expr) *Func {
	return &Func{Name: name, ArgsV: args}
}

func (f *Func) Kind() Kind   { return KindFunc }
func (f *Func) Args() []Expr { return f.ArgsV }

func (f *Func) String() string {
	parts := make([]string, len(f.ArgsV))
	for i, a := range f.ArgsV {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", f.Name, strings.Join(parts, ", "))
}

// Arg returns the function's sole argument, panicking if it is not unary.
// Every function this engine knows about (spec §3) is unary.
func (f *Func) Arg() Expr {
	if len(f.ArgsV) != 1 {
		panic(fmt.Sprintf("ast: %s has %d arguments, Arg needs exactly one", f.Name, len(f.ArgsV)))
	}
	return f.ArgsV[0]
}
