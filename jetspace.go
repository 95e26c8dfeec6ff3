// Package liesym computes Lie point symmetries of ordinary differential
// equations: jet spaces, prolonged infinitesimal generators, linearized
// symmetry conditions, and generator decomposition.
package liesym

import (
	"fmt"
	"strconv"
	"strings"

	"liesym/sym"
)

// ============================================================
// MultiIndex
// ============================================================

// MultiIndex counts derivative multiplicity per base coordinate. The
// index (2, 1) over base (t, x) denotes two t-derivatives and one
// x-derivative; mixed partials commute by construction.
type MultiIndex []int

func (m MultiIndex) Order() int {
	total := 0
	for _, v := range m {
		total += v
	}
	return total
}

// Key returns a deterministic map key for the index.
func (m MultiIndex) Key() string {
	parts := make([]string, len(m))
	for i, v := range m {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// AddUnit returns a copy with slot i incremented.
func (m MultiIndex) AddUnit(i int) MultiIndex {
	out := make(MultiIndex, len(m))
	copy(out, m)
	out[i]++
	return out
}

// SubUnit returns a copy with slot i decremented, or false when the slot
// is already zero.
func (m MultiIndex) SubUnit(i int) (MultiIndex, bool) {
	if m[i] == 0 {
		return nil, false
	}
	out := make(MultiIndex, len(m))
	copy(out, m)
	out[i]--
	return out, true
}

// LeadingClass returns the first slot with a nonzero count, or -1 for the
// zero index.
func (m MultiIndex) LeadingClass() int {
	for i, v := range m {
		if v > 0 {
			return i
		}
	}
	return -1
}

func (m MultiIndex) Equal(o MultiIndex) bool {
	if len(m) != len(o) {
		return false
	}
	for i := range m {
		if m[i] != o[i] {
			return false
		}
	}
	return true
}

// ============================================================
// TotalSpace
// ============================================================

// TotalSpace holds the ordered base (independent) and fiber (dependent)
// coordinates of a differential equation.
type TotalSpace struct {
	base  []*sym.Sym
	fiber []*sym.Sym
}

func NewTotalSpace(base, fiber []*sym.Sym) TotalSpace {
	if len(base) == 0 || len(fiber) == 0 {
		panic("liesym: total space needs at least one base and one fiber coordinate")
	}
	seen := map[string]struct{}{}
	for _, s := range append(append([]*sym.Sym{}, base...), fiber...) {
		if _, dup := seen[s.Name()]; dup {
			panic("liesym: duplicate coordinate " + s.Name())
		}
		seen[s.Name()] = struct{}{}
	}
	return TotalSpace{
		base:  append([]*sym.Sym{}, base...),
		fiber: append([]*sym.Sym{}, fiber...),
	}
}

func (t TotalSpace) Base() []*sym.Sym  { return append([]*sym.Sym{}, t.base...) }
func (t TotalSpace) Fiber() []*sym.Sym { return append([]*sym.Sym{}, t.fiber...) }

func (t TotalSpace) Equal(o TotalSpace) bool {
	if len(t.base) != len(o.base) || len(t.fiber) != len(o.fiber) {
		return false
	}
	for i := range t.base {
		if t.base[i].Name() != o.base[i].Name() {
			return false
		}
	}
	for i := range t.fiber {
		if t.fiber[i].Name() != o.fiber[i].Name() {
			return false
		}
	}
	return true
}

func (t TotalSpace) String() string {
	names := make([]string, 0, len(t.base)+len(t.fiber))
	for _, s := range t.base {
		names = append(names, s.Name())
	}
	for _, s := range t.fiber {
		names = append(names, s.Name())
	}
	return "(" + strings.Join(names, ", ") + ")"
}

// ============================================================
// JetSpace
// ============================================================

// JetSpace carries the derivative coordinates of a total space up to a
// fixed degree. Values are immutable once constructed.
type JetSpace struct {
	space   TotalSpace
	degree  int
	indices []MultiIndex
	coords  map[string]map[string]*sym.Sym
}

func NewJetSpace(space TotalSpace, degree int) *JetSpace {
	if degree < 0 {
		panic("liesym: jet degree must be nonnegative")
	}
	js := &JetSpace{
		space:  space,
		degree: degree,
		coords: map[string]map[string]*sym.Sym{},
	}
	js.indices = indicesUpTo(len(space.base), degree)
	for _, f := range space.fiber {
		byKey := map[string]*sym.Sym{}
		for _, idx := range js.indices {
			byKey[idx.Key()] = sym.S(coordinateName(f.Name(), idx, space.base))
		}
		js.coords[f.Name()] = byKey
	}
	return js
}

// indicesUpTo lists all multi-indices of order 0..degree, ascending by
// order with a deterministic tie-break from the generation order of
// combinations with replacement.
func indicesUpTo(baseCount, degree int) []MultiIndex {
	out := []MultiIndex{make(MultiIndex, baseCount)}
	for order := 1; order <= degree; order++ {
		combo := make([]int, order)
		var walk func(start, pos int)
		walk = func(start, pos int) {
			if pos == order {
				idx := make(MultiIndex, baseCount)
				for _, b := range combo {
					idx[b]++
				}
				out = append(out, idx)
				return
			}
			for b := start; b < baseCount; b++ {
				combo[pos] = b
				walk(b, pos+1)
			}
		}
		walk(0, 0)
	}
	return out
}

// coordinateName renders a derivative coordinate like W_{tt} or N_{tx};
// the zero index names the fiber coordinate itself.
func coordinateName(fiber string, idx MultiIndex, base []*sym.Sym) string {
	if idx.Order() == 0 {
		return fiber
	}
	var sb strings.Builder
	sb.WriteString(fiber)
	sb.WriteString("_{")
	for i, count := range idx {
		for k := 0; k < count; k++ {
			sb.WriteString(base[i].Name())
		}
	}
	sb.WriteString("}")
	return sb.String()
}

func (js *JetSpace) Degree() int { return js.degree }

// OriginalTotalSpace returns the underlying base and fiber coordinates.
func (js *JetSpace) OriginalTotalSpace() TotalSpace { return js.space }

// Dependents returns the ordered fiber coordinates.
func (js *JetSpace) Dependents() []*sym.Sym { return js.space.Fiber() }

// Indices returns all multi-indices of the space, ascending by order.
// The same index set applies to every fiber coordinate.
func (js *JetSpace) Indices() []MultiIndex {
	out := make([]MultiIndex, len(js.indices))
	copy(out, js.indices)
	return out
}

// BaseIndex returns the unit multi-index of a base coordinate.
func (js *JetSpace) BaseIndex(s *sym.Sym) (MultiIndex, error) {
	for i, b := range js.space.base {
		if b.Name() == s.Name() {
			return make(MultiIndex, len(js.space.base)).AddUnit(i), nil
		}
	}
	return nil, fmt.Errorf("liesym: %s is not a base coordinate of %s", s.Name(), js.space)
}

// Coordinate returns the derivative coordinate of a fiber at a
// multi-index.
func (js *JetSpace) Coordinate(fiber *sym.Sym, idx MultiIndex) (*sym.Sym, error) {
	byKey, ok := js.coords[fiber.Name()]
	if !ok {
		return nil, fmt.Errorf("liesym: %s is not a fiber coordinate of %s", fiber.Name(), js.space)
	}
	c, ok := byKey[idx.Key()]
	if !ok {
		return nil, fmt.Errorf("liesym: no coordinate of %s at index (%s) in degree %d", fiber.Name(), idx.Key(), js.degree)
	}
	return c, nil
}

// Extension returns a new jet space over the same total space with a
// strictly larger degree.
func (js *JetSpace) Extension(newDegree int) (*JetSpace, error) {
	if newDegree <= js.degree {
		return nil, fmt.Errorf("degree %d -> %d: %w", js.degree, newDegree, ErrBadExtension)
	}
	return NewJetSpace(js.space, newDegree), nil
}

// ============================================================
// Total derivative
// ============================================================

// TotalDerivative applies the total derivative operator with respect to a
// base coordinate on the given jet space: the partial in the base
// coordinate plus, for every derivative coordinate, the next-higher
// coordinate times the partial in it. The domain is extended internally
// by one degree.
func TotalDerivative(expr sym.Expr, coord *sym.Sym, domain *JetSpace) (sym.Expr, error) {
	basePos := -1
	for i, b := range domain.space.base {
		if b.Name() == coord.Name() {
			basePos = i
			break
		}
	}
	if basePos < 0 {
		return nil, fmt.Errorf("liesym: %s is not a base coordinate of %s", coord.Name(), domain.space)
	}
	ext, err := domain.Extension(domain.degree + 1)
	if err != nil {
		return nil, err
	}
	terms := []sym.Expr{expr.Diff(coord.Name())}
	for _, f := range domain.space.fiber {
		for _, idx := range domain.indices {
			cur, err := domain.Coordinate(f, idx)
			if err != nil {
				return nil, err
			}
			up, err := ext.Coordinate(f, idx.AddUnit(basePos))
			if err != nil {
				return nil, err
			}
			terms = append(terms, sym.MulOf(up, expr.Diff(cur.Name())))
		}
	}
	return sym.AddOf(terms...).Simplify(), nil
}
