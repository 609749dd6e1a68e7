// Package simplify implements the bounded simplification driver (§4.10):
// a breadth-first exploration of the equivalence class reachable from an
// expression via the transformation passes, ranked by a node-count cost.
package simplify

import (
	"sort"

	"github.com/msavch/symcas/pkg/ast"
	"github.com/msavch/symcas/pkg/expand"
	"github.com/msavch/symcas/pkg/normalize"
	"github.com/msavch/symcas/pkg/rationalize"
	"github.com/msavch/symcas/pkg/trig"
)

// MaxIterations is the driver's default bound on outer iterations.
const MaxIterations = 10

// passes is the fixed list of transformations the driver applies to every
// worklist element, in the order the driver contract lists them.
var passes = []func(ast.Expr) ast.Expr{
	expand.Expand,
	expand.ExpandExponential,
	trig.ExpandTrig,
	expand.ExpandLn,
	trig.ContractTrig,
	rationalize.Rationalize,
	rationalize.FactorOut,
	rationalize.Cancel,
}

// Cost is the recursive node count C(e) = 1 + Σ C(aᵢ).
func Cost(e ast.Expr) int {
	cost := 1
	for _, a := range e.Args() {
		cost += Cost(a)
	}
	return cost
}

// Simplify explores the equivalence class of e reachable by the fixed
// pass list, bounded by MaxIterations outer iterations, and returns its
// members sorted by ascending cost (cheapest representative first). An
// irreducible e — an atom no pass can act on — yields nil.
func Simplify(e ast.Expr) []ast.Expr {
	seed := normalize.Reduce(e)
	if len(seed.Args()) == 0 {
		return nil
	}

	seen := map[string]ast.Expr{seed.String(): seed}
	worklist := []ast.Expr{seed}

	for iter := 0; iter < MaxIterations && len(worklist) > 0; iter++ {
		var next []ast.Expr
		for _, cur := range worklist {
			for _, pass := range passes {
				r := normalize.Reduce(pass(cur))
				key := r.String()
				if _, ok := seen[key]; ok {
					continue
				}
				seen[key] = r
				next = append(next, r)
			}
		}
		worklist = next
	}

	results := make([]ast.Expr, 0, len(seen))
	for _, r := range seen {
		results = append(results, r)
	}
	sort.SliceStable(results, func(i, j int) bool {
		ci, cj := Cost(results[i]), Cost(results[j])
		if ci != cj {
			return ci < cj
		}
		return results[i].String() < results[j].String()
	})
	return results
}

// Best returns the cheapest member of Simplify(e)'s equivalence set, or e
// itself (reduced) if e is irreducible.
func Best(e ast.Expr) ast.Expr {
	results := Simplify(e)
	if len(results) == 0 {
		return normalize.Reduce(e)
	}
	return results[0]
}
