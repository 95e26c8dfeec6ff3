package liesym

import (
	"liesym/sym"
)

// ============================================================
// Polynomial algebra capability
// ============================================================

// PolyAlgebra is the narrow capability the determining-equation machinery
// needs from a symbolic backend: collecting coefficients over a variable
// set, reading off the coefficient of an opaque basis element, and
// solving a linear system.
type PolyAlgebra interface {
	Coefficients(expr sym.Expr, vars []*sym.Sym) (map[string]sym.Expr, error)
	CoefficientOf(expr sym.Expr, elem sym.Expr) sym.Expr
	SolveLinearSystem(eqs []sym.Expr, unknowns []*sym.Sym) (map[string]sym.Expr, error)
}

// StdAlgebra implements PolyAlgebra over the sym kernel.
type StdAlgebra struct{}

func (StdAlgebra) Coefficients(expr sym.Expr, vars []*sym.Sym) (map[string]sym.Expr, error) {
	names := make([]string, len(vars))
	for i, v := range vars {
		names[i] = v.Name()
	}
	return sym.MonomialCoeffs(expr, names)
}

func (StdAlgebra) CoefficientOf(expr sym.Expr, elem sym.Expr) sym.Expr {
	return sym.LinearCoeff(expr, elem)
}

func (StdAlgebra) SolveLinearSystem(eqs []sym.Expr, unknowns []*sym.Sym) (map[string]sym.Expr, error) {
	return sym.SolveLinearSystem(eqs, unknowns)
}

// DeterminingEquations decomposes symmetry conditions into the
// coefficient equations of every monomial in the jet coordinates. Each
// returned expression must vanish for the conditions to vanish
// identically.
func DeterminingEquations(conds []sym.Expr, js *JetSpace, alg PolyAlgebra) ([]sym.Expr, error) {
	vars := js.OriginalTotalSpace().Base()
	for _, f := range js.Dependents() {
		for _, idx := range js.Indices() {
			c, err := js.Coordinate(f, idx)
			if err != nil {
				return nil, err
			}
			vars = append(vars, c)
		}
	}
	out := []sym.Expr{}
	for _, cond := range conds {
		coeffs, err := alg.Coefficients(cond, vars)
		if err != nil {
			return nil, err
		}
		for _, key := range sym.SortedKeys(coeffs) {
			c := coeffs[key]
			if sym.IsZero(c) {
				continue
			}
			out = append(out, c)
		}
	}
	return out, nil
}
