package sym

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrInconsistent is returned by SolveLinearSystem when the equations
// admit no solution.
var ErrInconsistent = errors.New("sym: linear system is inconsistent")

// ============================================================
// Polynomial utilities
// ============================================================

func Degree(expr Expr, varName string) int {
	expr = expr.Simplify()
	switch v := expr.(type) {
	case *Num:
		return 0
	case *Sym:
		if v.name == varName {
			return 1
		}
		return 0
	case *Pow:
		if sym, ok := v.base.(*Sym); ok && sym.name == varName {
			if n, ok2 := v.exp.(*Num); ok2 && n.IsInteger() {
				return int(n.val.Num().Int64())
			}
		}
		return 0
	case *Add:
		maxDeg := 0
		for _, t := range v.terms {
			if d := Degree(t, varName); d > maxDeg {
				maxDeg = d
			}
		}
		return maxDeg
	case *Mul:
		totalDeg := 0
		for _, f := range v.factors {
			totalDeg += Degree(f, varName)
		}
		return totalDeg
	}
	return 0
}

type PolyCoeffsResult map[int]Expr

func PolyCoeffs(expr Expr, varName string) PolyCoeffsResult {
	result := PolyCoeffsResult{}
	extractCoeffs(expr.Simplify(), varName, result)
	return result
}

func extractCoeffs(e Expr, varName string, out PolyCoeffsResult) {
	switch v := e.(type) {
	case *Num:
		addCoeff(out, 0, v)
	case *Sym:
		if v.name == varName {
			addCoeff(out, 1, N(1))
		} else {
			addCoeff(out, 0, v)
		}
	case *Pow:
		if sym, ok := v.base.(*Sym); ok && sym.name == varName {
			if n, ok2 := v.exp.(*Num); ok2 && n.IsInteger() {
				addCoeff(out, int(n.val.Num().Int64()), N(1))
				return
			}
		}
		addCoeff(out, 0, e)
	case *Mul:
		deg := 0
		coeffFactors := []Expr{}
		for _, f := range v.factors {
			if d := Degree(f, varName); d > 0 {
				deg += d
			} else {
				coeffFactors = append(coeffFactors, f)
			}
		}
		var coeff Expr
		switch len(coeffFactors) {
		case 0:
			coeff = N(1)
		case 1:
			coeff = coeffFactors[0]
		default:
			coeff = MulOf(coeffFactors...)
		}
		addCoeff(out, deg, coeff)
	case *Add:
		for _, t := range v.terms {
			extractCoeffs(t, varName, out)
		}
	}
}

func addCoeff(out PolyCoeffsResult, deg int, val Expr) {
	if existing, ok := out[deg]; ok {
		out[deg] = AddOf(existing, val).Simplify()
	} else {
		out[deg] = val.Simplify()
	}
}

// ============================================================
// Multivariate monomial coefficients
// ============================================================

// MonomialCoeffs collects the coefficients of expr as a polynomial in
// vars, keyed by the comma-separated exponent vector. The remaining
// factors of each term form the coefficient. An occurrence of a variable
// inside a function argument or at a non-constant power is an error.
func MonomialCoeffs(expr Expr, vars []string) (map[string]Expr, error) {
	set := map[string]int{}
	for i, v := range vars {
		set[v] = i
	}
	out := map[string]Expr{}
	c := Canonicalize(expr)
	terms := []Expr{c}
	if a, ok := c.(*Add); ok {
		terms = a.terms
	}
	for _, t := range terms {
		exps := make([]int, len(vars))
		coeffFactors := []Expr{}
		factors := []Expr{t}
		if m, ok := t.(*Mul); ok {
			factors = m.factors
		}
		for _, f := range factors {
			switch v := f.(type) {
			case *Sym:
				if i, ok := set[v.name]; ok {
					exps[i]++
					continue
				}
			case *Pow:
				if s, ok := v.base.(*Sym); ok {
					if i, ok2 := set[s.name]; ok2 {
						n, isNum := v.exp.(*Num)
						if !isNum || !n.IsInteger() || n.IsNegative() {
							return nil, fmt.Errorf("sym: %s occurs at a non-polynomial power in %s", s.name, t.String())
						}
						exps[i] += int(n.Rat().Num().Int64())
						continue
					}
				}
			}
			for _, name := range vars {
				if _, hit := FreeSymbols(f)[name]; hit {
					return nil, fmt.Errorf("sym: %s occurs non-polynomially in %s", name, t.String())
				}
			}
			coeffFactors = append(coeffFactors, f)
		}
		var coeff Expr
		switch len(coeffFactors) {
		case 0:
			coeff = N(1)
		case 1:
			coeff = coeffFactors[0]
		default:
			coeff = MulOf(coeffFactors...)
		}
		key := exponentKey(exps)
		if prev, ok := out[key]; ok {
			out[key] = AddOf(prev, coeff).Simplify()
		} else {
			out[key] = coeff.Simplify()
		}
	}
	return out, nil
}

func exponentKey(exps []int) string {
	parts := make([]string, len(exps))
	for i, e := range exps {
		parts[i] = strconv.Itoa(e)
	}
	return strings.Join(parts, ",")
}

// SortedKeys returns the keys of a coefficient map in sorted order.
func SortedKeys(m map[string]Expr) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ============================================================
// Linear coefficient extraction
// ============================================================

// LinearCoeff returns the coefficient of elem in expr, treating elem as an
// opaque atom occurring at power one. Terms where elem occurs at other
// powers contribute nothing; callers validate by reconstruction.
func LinearCoeff(expr, elem Expr) Expr {
	c := Canonicalize(expr)
	terms := []Expr{c}
	if a, ok := c.(*Add); ok {
		terms = a.terms
	}
	coeffs := []Expr{}
	for _, t := range terms {
		if t.Equal(elem) {
			coeffs = append(coeffs, N(1))
			continue
		}
		m, ok := t.(*Mul)
		if !ok {
			continue
		}
		hit := -1
		for i, f := range m.factors {
			if f.Equal(elem) {
				hit = i
				break
			}
		}
		if hit < 0 {
			continue
		}
		rest := make([]Expr, 0, len(m.factors)-1)
		for i, f := range m.factors {
			if i != hit {
				rest = append(rest, f)
			}
		}
		if len(rest) == 1 {
			coeffs = append(coeffs, rest[0])
		} else {
			coeffs = append(coeffs, MulOf(rest...))
		}
	}
	if len(coeffs) == 0 {
		return N(0)
	}
	return AddOf(coeffs...).Simplify()
}

// ============================================================
// Linear solvers
// ============================================================

type SolveResult struct {
	Solutions []Expr
	ExactForm bool
	Error     string
}

// SolveLinear solves a*x + b = 0.
func SolveLinear(a, b Expr) SolveResult {
	an, aok := a.Eval()
	bn, bok := b.Eval()
	if aok && bok {
		if an.IsZero() {
			if bn.IsZero() {
				return SolveResult{Error: "identity (0 = 0): infinite solutions"}
			}
			return SolveResult{Error: "no solution (inconsistent)"}
		}
		return SolveResult{Solutions: []Expr{numMul(numNeg(bn), numRecip(an))}, ExactForm: true}
	}
	return SolveResult{Solutions: []Expr{MulOf(N(-1), b, PowOf(a, N(-1))).Simplify()}, ExactForm: false}
}

// SolveLinearSystem solves a system of expressions required to vanish,
// linear in the unknowns, by Gauss-Jordan elimination. Unknowns without a
// pivot stay free and map to their own symbol; pivot unknowns are
// expressed in terms of the free ones. Pivot selection treats any entry
// that does not canonicalize to zero as invertible.
func SolveLinearSystem(eqs []Expr, unknowns []*Sym) (map[string]Expr, error) {
	nameSet := map[string]struct{}{}
	for _, u := range unknowns {
		nameSet[u.name] = struct{}{}
	}
	n := len(eqs)
	m := len(unknowns)
	a := make([][]Expr, n)
	rhs := make([]Expr, n)
	for i, eq := range eqs {
		c := Canonicalize(eq)
		row := make([]Expr, m)
		for j, u := range unknowns {
			cj := Canonicalize(c.Diff(u.name))
			for name := range nameSet {
				if _, hit := FreeSymbols(cj)[name]; hit {
					return nil, fmt.Errorf("sym: equation %d is not linear in the unknowns", i)
				}
			}
			row[j] = cj
		}
		con := c
		for _, u := range unknowns {
			con = con.Sub(u.name, N(0))
		}
		a[i] = row
		rhs[i] = Canonicalize(MulOf(N(-1), con))
	}

	pivotRow := make([]int, m)
	for j := range pivotRow {
		pivotRow[j] = -1
	}
	rank := 0
	for col := 0; col < m && rank < n; col++ {
		sel := -1
		for r := rank; r < n; r++ {
			if !IsZero(a[r][col]) {
				sel = r
				break
			}
		}
		if sel < 0 {
			continue
		}
		a[rank], a[sel] = a[sel], a[rank]
		rhs[rank], rhs[sel] = rhs[sel], rhs[rank]
		inv := PowOf(a[rank][col], N(-1))
		for j := col; j < m; j++ {
			a[rank][j] = Canonicalize(MulOf(inv, a[rank][j]))
		}
		rhs[rank] = Canonicalize(MulOf(inv, rhs[rank]))
		for r := 0; r < n; r++ {
			if r == rank || IsZero(a[r][col]) {
				continue
			}
			factor := a[r][col]
			for j := col; j < m; j++ {
				a[r][j] = Canonicalize(AddOf(a[r][j], MulOf(N(-1), factor, a[rank][j])))
			}
			rhs[r] = Canonicalize(AddOf(rhs[r], MulOf(N(-1), factor, rhs[rank])))
		}
		pivotRow[col] = rank
		rank++
	}
	for r := rank; r < n; r++ {
		if !IsZero(rhs[r]) {
			return nil, fmt.Errorf("equation %d reduces to nonzero constant: %w", r, ErrInconsistent)
		}
	}

	sol := map[string]Expr{}
	for j, u := range unknowns {
		r := pivotRow[j]
		if r < 0 {
			sol[u.name] = S(u.name)
			continue
		}
		terms := []Expr{rhs[r]}
		for f := 0; f < m; f++ {
			if f == j || pivotRow[f] >= 0 {
				continue
			}
			terms = append(terms, MulOf(N(-1), a[r][f], S(unknowns[f].name)))
		}
		sol[u.name] = Canonicalize(AddOf(terms...))
	}
	return sol, nil
}
