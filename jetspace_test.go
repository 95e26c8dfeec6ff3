package liesym_test

import (
	"errors"
	"testing"

	"liesym"
	"liesym/sym"
)

// ============================================================
// MultiIndex
// ============================================================

func TestMultiIndex_Order(t *testing.T) {
	idx := liesym.MultiIndex{2, 1}
	if idx.Order() != 3 {
		t.Errorf("got %d", idx.Order())
	}
}

func TestMultiIndex_LeadingClass(t *testing.T) {
	idx := liesym.MultiIndex{0, 2}
	if idx.LeadingClass() != 1 {
		t.Errorf("got %d", idx.LeadingClass())
	}
}

func TestMultiIndex_LeadingClassZero(t *testing.T) {
	idx := liesym.MultiIndex{0, 0}
	if idx.LeadingClass() != -1 {
		t.Errorf("got %d", idx.LeadingClass())
	}
}

func TestMultiIndex_SubUnitAtZero(t *testing.T) {
	idx := liesym.MultiIndex{0, 1}
	if _, ok := idx.SubUnit(0); ok {
		t.Error("decrement of a zero slot succeeded")
	}
}

// ============================================================
// JetSpace
// ============================================================

func singleSpace() (liesym.TotalSpace, *sym.Sym, *sym.Sym) {
	tSym, w := sym.S("t"), sym.S("W")
	return liesym.NewTotalSpace([]*sym.Sym{tSym}, []*sym.Sym{w}), tSym, w
}

func TestJetSpace_CoordinateNaming(t *testing.T) {
	space, _, w := singleSpace()
	js := liesym.NewJetSpace(space, 2)
	c, err := js.Coordinate(w, liesym.MultiIndex{2})
	if err != nil {
		t.Fatal(err)
	}
	if c.Name() != "W_{tt}" {
		t.Errorf("got %s", c.Name())
	}
}

func TestJetSpace_MixedCoordinateNaming(t *testing.T) {
	tSym, x, u := sym.S("t"), sym.S("x"), sym.S("u")
	space := liesym.NewTotalSpace([]*sym.Sym{tSym, x}, []*sym.Sym{u})
	js := liesym.NewJetSpace(space, 2)
	c, err := js.Coordinate(u, liesym.MultiIndex{1, 1})
	if err != nil {
		t.Fatal(err)
	}
	if c.Name() != "u_{tx}" {
		t.Errorf("got %s", c.Name())
	}
}

func TestJetSpace_IndicesAscendingByOrder(t *testing.T) {
	tSym, x, u := sym.S("t"), sym.S("x"), sym.S("u")
	space := liesym.NewTotalSpace([]*sym.Sym{tSym, x}, []*sym.Sym{u})
	js := liesym.NewJetSpace(space, 2)
	indices := js.Indices()
	if len(indices) != 6 {
		t.Fatalf("got %d indices", len(indices))
	}
	for i := 1; i < len(indices); i++ {
		if indices[i].Order() < indices[i-1].Order() {
			t.Errorf("index %d of order %d follows order %d", i, indices[i].Order(), indices[i-1].Order())
		}
	}
}

func TestJetSpace_ExtensionRejectsEqualDegree(t *testing.T) {
	space, _, _ := singleSpace()
	js := liesym.NewJetSpace(space, 2)
	_, err := js.Extension(2)
	if !errors.Is(err, liesym.ErrBadExtension) {
		t.Errorf("got %v", err)
	}
}

func TestJetSpace_ExtensionAddsCoordinates(t *testing.T) {
	space, _, w := singleSpace()
	js := liesym.NewJetSpace(space, 1)
	ext, err := js.Extension(2)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ext.Coordinate(w, liesym.MultiIndex{2}); err != nil {
		t.Errorf("extended space lacks W_{tt}: %v", err)
	}
	if _, err := js.Coordinate(w, liesym.MultiIndex{2}); err == nil {
		t.Error("degree-1 space reports a second-order coordinate")
	}
}

func TestJetSpace_ExtensionSharesLowerCoordinates(t *testing.T) {
	space, _, w := singleSpace()
	js := liesym.NewJetSpace(space, 1)
	ext, err := js.Extension(3)
	if err != nil {
		t.Fatal(err)
	}
	a, _ := js.Coordinate(w, liesym.MultiIndex{1})
	b, _ := ext.Coordinate(w, liesym.MultiIndex{1})
	if a.Name() != b.Name() {
		t.Errorf("got %s and %s", a.Name(), b.Name())
	}
}

func TestJetSpace_BaseIndex(t *testing.T) {
	space, tSym, _ := singleSpace()
	js := liesym.NewJetSpace(space, 1)
	idx, err := js.BaseIndex(tSym)
	if err != nil {
		t.Fatal(err)
	}
	if !idx.Equal(liesym.MultiIndex{1}) {
		t.Errorf("got %v", idx)
	}
}

func TestJetSpace_BaseIndexRejectsFiber(t *testing.T) {
	space, _, w := singleSpace()
	js := liesym.NewJetSpace(space, 1)
	if _, err := js.BaseIndex(w); err == nil {
		t.Error("fiber coordinate accepted as base")
	}
}

// ============================================================
// Total derivative
// ============================================================

func TestTotalDerivative_FiberCoordinate(t *testing.T) {
	space, tSym, w := singleSpace()
	js := liesym.NewJetSpace(space, 0)
	d, err := liesym.TotalDerivative(w, tSym, js)
	if err != nil {
		t.Fatal(err)
	}
	if sym.String(d) != "W_{t}" {
		t.Errorf("got %s", sym.String(d))
	}
}

func TestTotalDerivative_ChainRule(t *testing.T) {
	space, tSym, w := singleSpace()
	js := liesym.NewJetSpace(space, 0)
	d, err := liesym.TotalDerivative(sym.PowOf(w, sym.N(2)), tSym, js)
	if err != nil {
		t.Fatal(err)
	}
	if sym.String(d) != "2*W*W_{t}" {
		t.Errorf("got %s", sym.String(d))
	}
}

func TestTotalDerivative_ExplicitBaseDependence(t *testing.T) {
	space, tSym, w := singleSpace()
	js := liesym.NewJetSpace(space, 0)
	d, err := liesym.TotalDerivative(sym.MulOf(tSym, w), tSym, js)
	if err != nil {
		t.Fatal(err)
	}
	// D_t(t*W) = W + t*W_t
	if !sym.Equiv(d, sym.AddOf(w, sym.MulOf(tSym, sym.S("W_{t}")))) {
		t.Errorf("got %s", sym.String(d))
	}
}

func TestTotalDerivative_RejectsFiberCoordinate(t *testing.T) {
	space, _, w := singleSpace()
	js := liesym.NewJetSpace(space, 0)
	if _, err := liesym.TotalDerivative(w, w, js); err == nil {
		t.Error("fiber coordinate accepted as derivative direction")
	}
}
