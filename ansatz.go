package liesym

import (
	"fmt"

	"liesym/sym"
)

// ============================================================
// Ansatz construction
// ============================================================

// PolyAnsatz builds a generator whose components are full polynomials of
// bounded total degree in the base and fiber coordinates, with fresh
// constants c_{i,j} (component, monomial). Returns the generator and the
// constants in deterministic order.
func PolyAnsatz(js *JetSpace, degree int) (*Generator, []*sym.Sym) {
	if degree < 0 {
		panic("liesym: ansatz degree must be nonnegative")
	}
	space := js.OriginalTotalSpace()
	vars := append(space.Base(), space.Fiber()...)
	monomials := monomialBasis(vars, degree)

	nComp := len(space.base) + len(space.fiber)
	constants := []*sym.Sym{}
	components := make([]sym.Expr, nComp)
	for i := 0; i < nComp; i++ {
		terms := make([]sym.Expr, len(monomials))
		for j, mono := range monomials {
			c := sym.S(fmt.Sprintf("c_{%d,%d}", i, j))
			constants = append(constants, c)
			terms[j] = sym.MulOf(c, mono)
		}
		components[i] = sym.AddOf(terms...)
	}
	gen := NewGenerator(space, components[:len(space.base)], components[len(space.base):])
	return gen, constants
}

// monomialBasis lists the monomials in vars of total degree 0..degree in
// graded lexicographic order.
func monomialBasis(vars []*sym.Sym, degree int) []sym.Expr {
	out := []sym.Expr{}
	for d := 0; d <= degree; d++ {
		exps := make([]int, len(vars))
		var walk func(pos, left int)
		walk = func(pos, left int) {
			if pos == len(vars)-1 {
				exps[pos] = left
				out = append(out, monomialOf(vars, exps))
				return
			}
			for e := left; e >= 0; e-- {
				exps[pos] = e
				walk(pos+1, left-e)
			}
		}
		if len(vars) == 0 {
			continue
		}
		walk(0, d)
	}
	return out
}

func monomialOf(vars []*sym.Sym, exps []int) sym.Expr {
	factors := []sym.Expr{}
	for i, e := range exps {
		if e == 0 {
			continue
		}
		factors = append(factors, sym.PowOf(vars[i], sym.N(int64(e))))
	}
	if len(factors) == 0 {
		return sym.N(1)
	}
	return sym.MulOf(factors...)
}

// QuasiLinearAnsatz builds a generator whose components are linear in the
// fiber coordinates with undetermined functions of the single base
// coordinate: each component is f_k(t) + sum_a f_{k+a}(t) * u_a. Returns
// the generator and the function atoms in order of appearance.
func QuasiLinearAnsatz(js *JetSpace) (*Generator, []sym.Expr) {
	space := js.OriginalTotalSpace()
	if len(space.base) != 1 {
		panic("liesym: quasi-linear ansatz needs a single base coordinate")
	}
	t := space.base[0]
	nComp := 1 + len(space.fiber)
	atoms := []sym.Expr{}
	next := 1
	freshFunc := func() sym.Expr {
		f := sym.FuncOf(fmt.Sprintf("f_{%d}", next), t)
		next++
		atoms = append(atoms, f)
		return f
	}
	components := make([]sym.Expr, nComp)
	for i := 0; i < nComp; i++ {
		terms := []sym.Expr{freshFunc()}
		for _, u := range space.fiber {
			terms = append(terms, sym.MulOf(freshFunc(), u))
		}
		components[i] = sym.AddOf(terms...)
	}
	gen := NewGenerator(space, components[:1], components[1:])
	return gen, atoms
}

// SubMap returns a generator with the substitutions applied to every
// component simultaneously.
func (g *Generator) SubMap(subs map[string]sym.Expr) *Generator {
	return g.mapComponents(func(e sym.Expr) sym.Expr {
		return sym.Canonicalize(sym.SubMap(e, subs))
	})
}
