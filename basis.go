package liesym

import (
	"fmt"

	"liesym/sym"
)

// ============================================================
// Generator decomposition
// ============================================================

// DecomposeGenerator splits a generator whose components are linear in
// the basis elements into one generator per element that appears,
// preceded by the constant part when it is nonzero. Basis elements are
// opaque atoms such as free constants or undetermined function
// applications.
func DecomposeGenerator(gen *Generator, basis []sym.Expr) ([]*Generator, error) {
	components := append(append([]sym.Expr{}, gen.Xis...), gen.Etas...)
	nXi := len(gen.Xis)

	coeffRows := make([][]sym.Expr, len(basis))
	for b := range basis {
		coeffRows[b] = make([]sym.Expr, len(components))
	}
	constants := make([]sym.Expr, len(components))
	for c, comp := range components {
		canon := sym.Canonicalize(comp)
		recombined := []sym.Expr{}
		for b, elem := range basis {
			coeff := sym.LinearCoeff(canon, elem)
			for _, other := range basis {
				if sym.Contains(coeff, other) {
					return nil, fmt.Errorf("coefficient of %s in %s depends on the basis: %w",
						elem.String(), comp.String(), ErrNotLinear)
				}
			}
			coeffRows[b][c] = coeff
			recombined = append(recombined, sym.MulOf(sym.N(-1), coeff, elem))
		}
		residual := sym.Canonicalize(sym.AddOf(append(recombined, canon)...))
		for _, elem := range basis {
			if sym.Contains(residual, elem) {
				return nil, fmt.Errorf("%s occurs non-linearly in %s: %w",
					elem.String(), comp.String(), ErrNotLinear)
			}
		}
		constants[c] = residual
	}

	build := func(comps []sym.Expr) *Generator {
		return &Generator{
			Xis:   append([]sym.Expr{}, comps[:nXi]...),
			Etas:  append([]sym.Expr{}, comps[nXi:]...),
			Space: gen.Space,
		}
	}
	out := []*Generator{}
	constGen := build(constants)
	if !constGen.IsZero() {
		out = append(out, constGen)
	}
	for b := range basis {
		g := build(coeffRows[b])
		if g.IsZero() {
			continue
		}
		out = append(out, g)
	}
	return out, nil
}
