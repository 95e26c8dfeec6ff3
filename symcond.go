package liesym

import (
	"fmt"

	"liesym/sym"
)

// ============================================================
// Linearized symmetry condition
// ============================================================

// LinearizedSymmetryCondition applies the prolonged generator to each
// equation and restricts the result to the solution submanifold: every
// equation is solved for its hint derivative and all hint substitutions
// are applied simultaneously. The returned expressions vanish identically
// exactly when the generator is a symmetry of the system.
func LinearizedSymmetryCondition(eqs []sym.Expr, gen *Generator, js *JetSpace, hints []*sym.Sym) ([]sym.Expr, error) {
	if len(hints) == 0 {
		return nil, fmt.Errorf("restriction needs one hint derivative per equation: %w", ErrNoHints)
	}
	if len(eqs) != len(hints) {
		return nil, fmt.Errorf("%d equations, %d hints: %w", len(eqs), len(hints), ErrLengthMismatch)
	}
	seen := map[string]struct{}{}
	for _, h := range hints {
		if _, dup := seen[h.Name()]; dup {
			return nil, fmt.Errorf("hint %s given twice: %w", h.Name(), ErrHintAmbiguous)
		}
		seen[h.Name()] = struct{}{}
	}
	subs := map[string]sym.Expr{}
	for i, eq := range eqs {
		rhs, err := solveForHint(eq, hints[i])
		if err != nil {
			return nil, fmt.Errorf("equation %d: %w", i, err)
		}
		subs[hints[i].Name()] = rhs
	}
	conds := make([]sym.Expr, len(eqs))
	for i, eq := range eqs {
		applied, err := gen.Apply(eq, js)
		if err != nil {
			return nil, err
		}
		conds[i] = sym.SubMap(applied, subs)
	}
	return conds, nil
}

// LinearizedSymmetryConditionSingle is the single-equation wrapper.
func LinearizedSymmetryConditionSingle(eq sym.Expr, gen *Generator, js *JetSpace, hint *sym.Sym) (sym.Expr, error) {
	conds, err := LinearizedSymmetryCondition([]sym.Expr{eq}, gen, js, []*sym.Sym{hint})
	if err != nil {
		return nil, err
	}
	return conds[0], nil
}

// solveForHint solves eq == 0 for a hint derivative occurring linearly
// with a coefficient free of the hint.
func solveForHint(eq sym.Expr, hint *sym.Sym) (sym.Expr, error) {
	name := hint.Name()
	c := sym.Canonicalize(eq)
	if sym.InsideFunc(c, name) {
		return nil, fmt.Errorf("%s occurs inside a function argument: %w", name, ErrHintAmbiguous)
	}
	switch deg := sym.Degree(c, name); {
	case deg == 0:
		return nil, fmt.Errorf("%s: %w", name, ErrHintAbsent)
	case deg > 1:
		return nil, fmt.Errorf("%s occurs at degree %d: %w", name, deg, ErrHintAmbiguous)
	}
	coeffs := sym.PolyCoeffs(c, name)
	c1, ok := coeffs[1]
	if !ok || sym.IsZero(c1) {
		return nil, fmt.Errorf("%s: %w", name, ErrHintAbsent)
	}
	c0, ok := coeffs[0]
	if !ok {
		return sym.N(0), nil
	}
	return sym.Canonicalize(sym.MulOf(sym.N(-1), c0, sym.PowOf(c1, sym.N(-1)))), nil
}
