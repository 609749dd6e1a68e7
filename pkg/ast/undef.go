package ast

// Undef is the algebraic undefined value. It is absorbing under every
// constructor in pkg/ops: any operand that is Undef forces the result to
// Undef (spec invariant I6).
type Undef struct{}

// TheUndef is the single Undef value; all Undef nodes compare and render
// identically, so callers may share this value freely.
var TheUndef Expr = Undef{}

func (Undef) Kind() Kind     { return KindUndef }
func (Undef) String() string { return "undef" }
func (Undef) Args() []Expr   { return nil }
