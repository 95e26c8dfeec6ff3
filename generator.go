package liesym

import (
	"fmt"

	"liesym/sym"
)

// ============================================================
// Generator
// ============================================================

// Generator is an infinitesimal generator of a point transformation:
// one xi component per base coordinate and one eta component per fiber
// coordinate of its total space.
type Generator struct {
	Xis   []sym.Expr
	Etas  []sym.Expr
	Space TotalSpace
}

func NewGenerator(space TotalSpace, xis, etas []sym.Expr) *Generator {
	if len(xis) != len(space.base) || len(etas) != len(space.fiber) {
		panic(fmt.Sprintf("liesym: generator needs %d xi and %d eta components, got %d and %d",
			len(space.base), len(space.fiber), len(xis), len(etas)))
	}
	return &Generator{
		Xis:   append([]sym.Expr{}, xis...),
		Etas:  append([]sym.Expr{}, etas...),
		Space: space,
	}
}

// GeneratorOn returns a constructor with the total space applied.
func GeneratorOn(space TotalSpace) func(xis, etas []sym.Expr) *Generator {
	return func(xis, etas []sym.Expr) *Generator {
		return NewGenerator(space, xis, etas)
	}
}

func (g *Generator) checkSpace(o *Generator) {
	if !g.Space.Equal(o.Space) {
		panic("liesym: generators have to be in same coordinates")
	}
}

func (g *Generator) mapComponents(fn func(e sym.Expr) sym.Expr) *Generator {
	xis := make([]sym.Expr, len(g.Xis))
	for i, x := range g.Xis {
		xis[i] = fn(x)
	}
	etas := make([]sym.Expr, len(g.Etas))
	for i, e := range g.Etas {
		etas[i] = fn(e)
	}
	return &Generator{Xis: xis, Etas: etas, Space: g.Space}
}

func (g *Generator) Add(o *Generator) *Generator {
	g.checkSpace(o)
	xis := make([]sym.Expr, len(g.Xis))
	for i := range g.Xis {
		xis[i] = sym.Expand(sym.AddOf(g.Xis[i], o.Xis[i]))
	}
	etas := make([]sym.Expr, len(g.Etas))
	for i := range g.Etas {
		etas[i] = sym.Expand(sym.AddOf(g.Etas[i], o.Etas[i]))
	}
	return &Generator{Xis: xis, Etas: etas, Space: g.Space}
}

func (g *Generator) Neg() *Generator {
	return g.mapComponents(func(e sym.Expr) sym.Expr { return sym.Expand(sym.MulOf(sym.N(-1), e)) })
}

func (g *Generator) Sub(o *Generator) *Generator {
	g.checkSpace(o)
	return g.Add(o.Neg())
}

func (g *Generator) ScalarMul(s sym.Expr) *Generator {
	return g.mapComponents(func(e sym.Expr) sym.Expr { return sym.Expand(sym.MulOf(s, e)) })
}

func (g *Generator) ScalarDiv(s sym.Expr) *Generator {
	if n, ok := s.(*sym.Num); ok && n.IsZero() {
		panic("liesym: scalar division by zero")
	}
	return g.ScalarMul(sym.PowOf(s, sym.N(-1)))
}

// Equal compares component-wise up to canonical form.
func (g *Generator) Equal(o *Generator) bool {
	if !g.Space.Equal(o.Space) {
		return false
	}
	for i := range g.Xis {
		if !sym.Equiv(g.Xis[i], o.Xis[i]) {
			return false
		}
	}
	for i := range g.Etas {
		if !sym.Equiv(g.Etas[i], o.Etas[i]) {
			return false
		}
	}
	return true
}

// IsZero reports whether every component canonicalizes to zero.
func (g *Generator) IsZero() bool {
	for _, x := range g.Xis {
		if !sym.IsZero(x) {
			return false
		}
	}
	for _, e := range g.Etas {
		if !sym.IsZero(e) {
			return false
		}
	}
	return true
}

func (g *Generator) String() string {
	parts := make([]string, 0, len(g.Xis)+len(g.Etas))
	for _, x := range g.Xis {
		parts = append(parts, x.String())
	}
	for _, e := range g.Etas {
		parts = append(parts, e.String())
	}
	s := "("
	for i, p := range parts {
		if i > 0 {
			s += ", "
		}
		s += p
	}
	return s + ")"
}

// ============================================================
// Prolongation
// ============================================================

// Prolongations returns the prolonged eta components of the generator on
// a jet space, per fiber coordinate and multi-index key. The order-zero
// entry is the eta component itself; higher entries follow the recursion
//
//	eta^(idx) = D_j eta^(idx - e_j) - sum_i u_{idx - e_j + e_i} D_j xi_i
//
// evaluated in ascending multi-index order with j the leading class.
func (g *Generator) Prolongations(js *JetSpace) (map[string]map[string]sym.Expr, error) {
	if !js.OriginalTotalSpace().Equal(g.Space) {
		return nil, fmt.Errorf("generator over %s on jet space over %s: %w",
			g.Space, js.OriginalTotalSpace(), ErrSpaceMismatch)
	}
	fibers := g.Space.fiber
	base := g.Space.base
	out := map[string]map[string]sym.Expr{}
	zero := make(MultiIndex, len(base))
	for a, f := range fibers {
		out[f.Name()] = map[string]sym.Expr{zero.Key(): g.Etas[a].Simplify()}
	}
	for _, idx := range js.Indices() {
		if idx.Order() == 0 {
			continue
		}
		j := idx.LeadingClass()
		prev, _ := idx.SubUnit(j)
		for _, f := range fibers {
			dPrev, err := TotalDerivative(out[f.Name()][prev.Key()], base[j], js)
			if err != nil {
				return nil, err
			}
			terms := []sym.Expr{dPrev}
			for i, xi := range g.Xis {
				u, err := js.Coordinate(f, prev.AddUnit(i))
				if err != nil {
					return nil, err
				}
				dXi, err := TotalDerivative(xi, base[j], js)
				if err != nil {
					return nil, err
				}
				terms = append(terms, sym.MulOf(sym.N(-1), u, dXi))
			}
			out[f.Name()][idx.Key()] = sym.AddOf(terms...).Simplify()
		}
	}
	return out, nil
}

// Apply applies the prolonged generator to an expression on a jet space.
// A nil jet space means the degree-zero space over the generator's own
// total space.
func (g *Generator) Apply(expr sym.Expr, js *JetSpace) (sym.Expr, error) {
	if js == nil {
		js = NewJetSpace(g.Space, 0)
	}
	if !js.OriginalTotalSpace().Equal(g.Space) {
		return nil, fmt.Errorf("generator over %s applied on jet space over %s: %w",
			g.Space, js.OriginalTotalSpace(), ErrSpaceMismatch)
	}
	pro, err := g.Prolongations(js)
	if err != nil {
		return nil, err
	}
	terms := []sym.Expr{}
	for i, b := range g.Space.base {
		terms = append(terms, sym.MulOf(g.Xis[i], expr.Diff(b.Name())))
	}
	for _, f := range g.Space.fiber {
		for _, idx := range js.Indices() {
			u, err := js.Coordinate(f, idx)
			if err != nil {
				return nil, err
			}
			terms = append(terms, sym.MulOf(pro[f.Name()][idx.Key()], expr.Diff(u.Name())))
		}
	}
	return sym.AddOf(terms...).Simplify(), nil
}

// LieBracket returns the commutator [a, b] of two generators over the
// same total space.
func LieBracket(a, b *Generator) (*Generator, error) {
	if !a.Space.Equal(b.Space) {
		return nil, fmt.Errorf("bracket of generators over %s and %s: %w",
			a.Space, b.Space, ErrSpaceMismatch)
	}
	comp := func(x, y sym.Expr) (sym.Expr, error) {
		ax, err := a.Apply(x, nil)
		if err != nil {
			return nil, err
		}
		by, err := b.Apply(y, nil)
		if err != nil {
			return nil, err
		}
		return sym.Canonicalize(sym.AddOf(ax, sym.MulOf(sym.N(-1), by))), nil
	}
	xis := make([]sym.Expr, len(a.Xis))
	for i := range a.Xis {
		c, err := comp(b.Xis[i], a.Xis[i])
		if err != nil {
			return nil, err
		}
		xis[i] = c
	}
	etas := make([]sym.Expr, len(a.Etas))
	for i := range a.Etas {
		c, err := comp(b.Etas[i], a.Etas[i])
		if err != nil {
			return nil, err
		}
		etas[i] = c
	}
	return &Generator{Xis: xis, Etas: etas, Space: a.Space}, nil
}

// ============================================================
// Numeric bridge
// ============================================================

// JetSpaceBasis returns the ordered coordinate symbols of the degree-order
// jet space over the generator's total space: base coordinates first, then
// each fiber's derivative coordinates ascending.
func (g *Generator) JetSpaceBasis(order int) []*sym.Sym {
	js := NewJetSpace(g.Space, order)
	out := g.Space.Base()
	for _, f := range g.Space.fiber {
		for _, idx := range js.Indices() {
			c, _ := js.Coordinate(f, idx)
			out = append(out, c)
		}
	}
	return out
}

// TangentField returns the generator's components in the order of
// JetSpaceBasis: the xis, then each fiber's prolonged etas ascending.
func (g *Generator) TangentField(order int) ([]sym.Expr, error) {
	js := NewJetSpace(g.Space, order)
	pro, err := g.Prolongations(js)
	if err != nil {
		return nil, err
	}
	out := append([]sym.Expr{}, g.Xis...)
	for _, f := range g.Space.fiber {
		for _, idx := range js.Indices() {
			out = append(out, pro[f.Name()][idx.Key()])
		}
	}
	return out, nil
}
