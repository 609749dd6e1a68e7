package ast

import "strings"

// Sum is an n-ary addition node. An empty Sum denotes 0; a canonical Sum
// never has exactly one argument (spec invariant I2). NewSumRaw does not
// enforce this; pkg/normalize restores the invariant when it reduces the
// tree.
type Sum struct {
	Args_ []Expr
}

// NewSumRaw builds a Sum node with no normalization at all. Used by
// transformations that want structural control before handing the result
// to pkg/normalize.
func NewSumRaw(args ...Expr) *Sum {
	return &Sum{Args_: args}
}

func (s *Sum) Kind() Kind   { return KindSum }
func (s *Sum) Args() []Expr { return s.Args_ }

func (s *Sum) String() string {
	if len(s.Args_) == 0 {
		return "0"
	}
	parts := make([]string, len(s.Args_))
	for i, a := range s.Args_ {
		str := a.String()
		if i > 0 && !strings.HasPrefix(str, "-") {
			str = "+" + str
		}
		parts[i] = str
	}
	return strings.Join(parts, "")
}
