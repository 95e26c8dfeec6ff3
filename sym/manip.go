package sym

import "sort"

// ============================================================
// Top-level convenience functions
// ============================================================

func Simplify(e Expr) Expr { return e.Simplify() }
func String(e Expr) string { return e.String() }
func LaTeX(e Expr) string  { return e.LaTeX() }

func Sub(expr Expr, varName string, value Expr) Expr {
	return expr.Sub(varName, value).Simplify()
}

func Diff(expr Expr, varName string) Expr {
	return expr.Diff(varName).Simplify()
}

func DiffN(expr Expr, varName string, n int) Expr {
	result := expr
	for i := 0; i < n; i++ {
		result = Diff(result, varName)
	}
	return result
}

// ============================================================
// Expansion and canonical form
// ============================================================

func Expand(e Expr) Expr { return expandExpr(e).Simplify() }

func expandExpr(e Expr) Expr {
	switch v := e.(type) {
	case *Mul:
		expanded := make([]Expr, len(v.factors))
		for i, f := range v.factors {
			expanded[i] = expandExpr(f)
		}
		for i, f := range expanded {
			if a, ok := f.(*Add); ok {
				rest := make([]Expr, 0, len(expanded)-1)
				for j, ef := range expanded {
					if j != i {
						rest = append(rest, ef)
					}
				}
				terms := make([]Expr, len(a.terms))
				for k, t := range a.terms {
					terms[k] = expandExpr(MulOf(append([]Expr{t}, rest...)...))
				}
				return expandExpr(AddOf(terms...))
			}
		}
		return MulOf(expanded...)
	case *Add:
		newTerms := make([]Expr, len(v.terms))
		for i, t := range v.terms {
			newTerms[i] = expandExpr(t)
		}
		return AddOf(newTerms...)
	case *Pow:
		base := expandExpr(v.base)
		exp := expandExpr(v.exp)
		if n, ok := exp.(*Num); ok && n.IsInteger() {
			e64 := n.val.Num().Int64()
			if _, isAdd := base.(*Add); isAdd && e64 >= 2 && e64 <= 10 {
				result := base
				for i := int64(1); i < e64; i++ {
					result = expandExpr(&Mul{factors: []Expr{result, base}})
				}
				return result
			}
			if mb, isMul := base.(*Mul); isMul {
				fs := make([]Expr, len(mb.factors))
				for i, f := range mb.factors {
					fs[i] = expandExpr(PowOf(f, n))
				}
				return expandExpr(MulOf(fs...))
			}
		}
		return PowOf(base, exp)
	case *Func:
		arg := expandExpr(v.arg).Simplify()
		// exp distributes over sums so that exponential atoms built in
		// different orders share one canonical product form.
		if v.name == "exp" {
			if a, ok := arg.(*Add); ok {
				fs := make([]Expr, len(a.terms))
				for i, t := range a.terms {
					fs[i] = ExpOf(t)
				}
				return MulOf(fs...)
			}
		}
		return funcOf(v.name, arg).Simplify()
	}
	return e
}

// Canonicalize expands and simplifies to a fixed point. Two expressions
// denoting the same polynomial-exponential form canonicalize to equal
// strings.
func Canonicalize(e Expr) Expr {
	prev := ""
	curr := e.Simplify()
	for i := 0; i < 8; i++ {
		s := curr.String()
		if s == prev {
			break
		}
		prev = s
		curr = Expand(curr)
	}
	return curr
}

// IsZero reports whether e canonicalizes to the zero expression.
func IsZero(e Expr) bool {
	n, ok := Canonicalize(e).(*Num)
	return ok && n.IsZero()
}

// Equiv reports whether a and b canonicalize to the same expression.
func Equiv(a, b Expr) bool {
	return IsZero(AddOf(a, MulOf(N(-1), b)))
}

// ============================================================
// Substitution
// ============================================================

// SubMap substitutes all symbols simultaneously: values are not re-walked,
// so swapping {x: y, y: x} is safe.
func SubMap(e Expr, subs map[string]Expr) Expr {
	return subMapExpr(e, subs).Simplify()
}

func subMapExpr(e Expr, subs map[string]Expr) Expr {
	switch v := e.(type) {
	case *Sym:
		if val, ok := subs[v.name]; ok {
			return val
		}
		return v
	case *Add:
		terms := make([]Expr, len(v.terms))
		for i, t := range v.terms {
			terms[i] = subMapExpr(t, subs)
		}
		return AddOf(terms...)
	case *Mul:
		factors := make([]Expr, len(v.factors))
		for i, f := range v.factors {
			factors[i] = subMapExpr(f, subs)
		}
		return MulOf(factors...)
	case *Pow:
		return PowOf(subMapExpr(v.base, subs), subMapExpr(v.exp, subs))
	case *Func:
		return funcOf(v.name, subMapExpr(v.arg, subs)).Simplify()
	}
	return e
}

// ============================================================
// Free Symbols
// ============================================================

func FreeSymbols(e Expr) map[string]struct{} {
	result := map[string]struct{}{}
	collectSymbols(e, result)
	return result
}

func collectSymbols(e Expr, out map[string]struct{}) {
	switch v := e.(type) {
	case *Sym:
		out[v.name] = struct{}{}
	case *Add:
		for _, t := range v.terms {
			collectSymbols(t, out)
		}
	case *Mul:
		for _, f := range v.factors {
			collectSymbols(f, out)
		}
	case *Pow:
		collectSymbols(v.base, out)
		collectSymbols(v.exp, out)
	case *Func:
		collectSymbols(v.arg, out)
	}
}

// SortedFreeSymbols returns the free symbol names in sorted order.
func SortedFreeSymbols(e Expr) []string {
	set := FreeSymbols(e)
	names := make([]string, 0, len(set))
	for n := range set {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Contains reports whether target occurs as a subexpression of e.
func Contains(e, target Expr) bool {
	if e.Equal(target) {
		return true
	}
	switch v := e.(type) {
	case *Add:
		for _, t := range v.terms {
			if Contains(t, target) {
				return true
			}
		}
	case *Mul:
		for _, f := range v.factors {
			if Contains(f, target) {
				return true
			}
		}
	case *Pow:
		return Contains(v.base, target) || Contains(v.exp, target)
	case *Func:
		return Contains(v.arg, target)
	}
	return false
}

// InsideFunc reports whether varName occurs inside any function argument.
func InsideFunc(e Expr, varName string) bool {
	switch v := e.(type) {
	case *Add:
		for _, t := range v.terms {
			if InsideFunc(t, varName) {
				return true
			}
		}
	case *Mul:
		for _, f := range v.factors {
			if InsideFunc(f, varName) {
				return true
			}
		}
	case *Pow:
		return InsideFunc(v.base, varName) || InsideFunc(v.exp, varName)
	case *Func:
		_, ok := FreeSymbols(v.arg)[varName]
		return ok
	}
	return false
}
