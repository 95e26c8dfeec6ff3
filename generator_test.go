package liesym_test

import (
	"errors"
	"testing"

	"liesym"
	"liesym/sym"
)

// ============================================================
// Construction and arithmetic
// ============================================================

func TestNewGenerator_ComponentCountPanics(t *testing.T) {
	space, _, _ := singleSpace()
	defer func() {
		if recover() == nil {
			t.Error("expected panic for wrong component count")
		}
	}()
	liesym.NewGenerator(space, []sym.Expr{sym.N(1), sym.N(2)}, []sym.Expr{sym.N(0)})
}

func TestGenerator_AddPanicsOnDifferentSpace(t *testing.T) {
	spaceA, _, _ := singleSpace()
	x, u := sym.S("x"), sym.S("u")
	spaceB := liesym.NewTotalSpace([]*sym.Sym{x}, []*sym.Sym{u})
	a := liesym.NewGenerator(spaceA, []sym.Expr{sym.N(1)}, []sym.Expr{sym.N(0)})
	b := liesym.NewGenerator(spaceB, []sym.Expr{sym.N(1)}, []sym.Expr{sym.N(0)})
	defer func() {
		if recover() == nil {
			t.Error("expected panic for mismatched spaces")
		}
	}()
	a.Add(b)
}

func TestGenerator_ScalarMul(t *testing.T) {
	space, _, w := singleSpace()
	g := liesym.NewGenerator(space, []sym.Expr{sym.N(0)}, []sym.Expr{w})
	doubled := g.ScalarMul(sym.N(2))
	if sym.String(doubled.Etas[0]) != "2*W" {
		t.Errorf("got %s", sym.String(doubled.Etas[0]))
	}
}

func TestGenerator_ScalarDivByZeroPanics(t *testing.T) {
	space, _, w := singleSpace()
	g := liesym.NewGenerator(space, []sym.Expr{sym.N(0)}, []sym.Expr{w})
	defer func() {
		if recover() == nil {
			t.Error("expected panic for division by zero")
		}
	}()
	g.ScalarDiv(sym.N(0))
}

func TestGenerator_AddExpandsComponents(t *testing.T) {
	space, _, w := singleSpace()
	a := liesym.NewGenerator(space, []sym.Expr{sym.N(0)},
		[]sym.Expr{sym.MulOf(w, sym.AddOf(w, sym.N(1)))})
	b := liesym.NewGenerator(space, []sym.Expr{sym.N(0)}, []sym.Expr{sym.N(0)})
	sum := a.Add(b)
	if sym.String(sum.Etas[0]) != "W + W^2" {
		t.Errorf("got %s", sym.String(sum.Etas[0]))
	}
}

func TestGenerator_NegExpandsComponents(t *testing.T) {
	space, _, w := singleSpace()
	g := liesym.NewGenerator(space, []sym.Expr{sym.N(0)},
		[]sym.Expr{sym.MulOf(w, sym.AddOf(w, sym.N(1)))})
	neg := g.Neg()
	if sym.String(neg.Etas[0]) != "-1*W + -1*W^2" {
		t.Errorf("got %s", sym.String(neg.Etas[0]))
	}
}

func TestGenerator_SubIsZero(t *testing.T) {
	space, tSym, _ := singleSpace()
	g := liesym.NewGenerator(space, []sym.Expr{tSym}, []sym.Expr{sym.N(0)})
	if !g.Sub(g).IsZero() {
		t.Error("X - X is not zero")
	}
}

func TestGenerator_EqualUpToCanonicalForm(t *testing.T) {
	space, _, w := singleSpace()
	a := liesym.NewGenerator(space, []sym.Expr{sym.N(0)}, []sym.Expr{sym.MulOf(sym.N(2), w)})
	b := liesym.NewGenerator(space, []sym.Expr{sym.N(0)}, []sym.Expr{sym.AddOf(w, w)})
	if !a.Equal(b) {
		t.Error("2W and W+W compare unequal")
	}
}

// ============================================================
// Prolongation and application
// ============================================================

func TestGenerator_ApplyDegreeZero(t *testing.T) {
	space, tSym, w := singleSpace()
	g := liesym.NewGenerator(space, []sym.Expr{tSym}, []sym.Expr{w})
	result, err := g.Apply(sym.MulOf(tSym, w), nil)
	if err != nil {
		t.Fatal(err)
	}
	if sym.String(result) != "2*W*t" {
		t.Errorf("got %s", sym.String(result))
	}
}

func TestGenerator_ZeroAppliesToZero(t *testing.T) {
	space, tSym, w := singleSpace()
	zero := liesym.NewGenerator(space, []sym.Expr{sym.N(0)}, []sym.Expr{sym.N(0)})
	result, err := zero.Apply(sym.MulOf(tSym, w), nil)
	if err != nil {
		t.Fatal(err)
	}
	if !sym.IsZero(result) {
		t.Errorf("got %s", sym.String(result))
	}
}

func TestGenerator_ApplySpaceMismatch(t *testing.T) {
	space, tSym, _ := singleSpace()
	x, u := sym.S("x"), sym.S("u")
	other := liesym.NewTotalSpace([]*sym.Sym{x}, []*sym.Sym{u})
	g := liesym.NewGenerator(space, []sym.Expr{sym.N(1)}, []sym.Expr{sym.N(0)})
	_, err := g.Apply(tSym, liesym.NewJetSpace(other, 0))
	if !errors.Is(err, liesym.ErrSpaceMismatch) {
		t.Errorf("got %v", err)
	}
}

func TestGenerator_Prolongation_VerticalScaling(t *testing.T) {
	space, _, w := singleSpace()
	g := liesym.NewGenerator(space, []sym.Expr{sym.N(0)}, []sym.Expr{w})
	pro, err := g.Prolongations(liesym.NewJetSpace(space, 1))
	if err != nil {
		t.Fatal(err)
	}
	// eta^(1) = D_t(W) = W_t
	if sym.String(pro["W"]["1"]) != "W_{t}" {
		t.Errorf("got %s", sym.String(pro["W"]["1"]))
	}
}

func TestGenerator_Prolongation_Dilation(t *testing.T) {
	space, tSym, _ := singleSpace()
	g := liesym.NewGenerator(space, []sym.Expr{tSym}, []sym.Expr{sym.N(0)})
	pro, err := g.Prolongations(liesym.NewJetSpace(space, 1))
	if err != nil {
		t.Fatal(err)
	}
	// eta^(1) = -W_t D_t(t) = -W_t
	if sym.String(pro["W"]["1"]) != "-1*W_{t}" {
		t.Errorf("got %s", sym.String(pro["W"]["1"]))
	}
}

func TestGenerator_Prolongation_OrderZeroIsEta(t *testing.T) {
	space, _, w := singleSpace()
	g := liesym.NewGenerator(space, []sym.Expr{sym.N(0)}, []sym.Expr{w})
	pro, err := g.Prolongations(liesym.NewJetSpace(space, 1))
	if err != nil {
		t.Fatal(err)
	}
	if sym.String(pro["W"]["0"]) != "W" {
		t.Errorf("got %s", sym.String(pro["W"]["0"]))
	}
}

func TestLieBracket_TranslationAndDilation(t *testing.T) {
	space, tSym, _ := singleSpace()
	translation := liesym.NewGenerator(space, []sym.Expr{sym.N(1)}, []sym.Expr{sym.N(0)})
	dilation := liesym.NewGenerator(space, []sym.Expr{tSym}, []sym.Expr{sym.N(0)})
	bracket, err := liesym.LieBracket(translation, dilation)
	if err != nil {
		t.Fatal(err)
	}
	// [d/dt, t d/dt] = d/dt
	if !bracket.Equal(translation) {
		t.Errorf("got %s", bracket)
	}
}

func TestLieBracket_SelfIsZero(t *testing.T) {
	space, tSym, w := singleSpace()
	g := liesym.NewGenerator(space, []sym.Expr{tSym}, []sym.Expr{w})
	bracket, err := liesym.LieBracket(g, g)
	if err != nil {
		t.Fatal(err)
	}
	if !bracket.IsZero() {
		t.Errorf("got %s", bracket)
	}
}

// ============================================================
// Numeric bridge
// ============================================================

func TestGenerator_JetSpaceBasisOrder(t *testing.T) {
	space, _, w := singleSpace()
	g := liesym.NewGenerator(space, []sym.Expr{sym.N(0)}, []sym.Expr{w})
	basis := g.JetSpaceBasis(1)
	want := []string{"t", "W", "W_{t}"}
	if len(basis) != len(want) {
		t.Fatalf("got %d coordinates", len(basis))
	}
	for i, s := range basis {
		if s.Name() != want[i] {
			t.Errorf("coordinate %d: got %s, want %s", i, s.Name(), want[i])
		}
	}
}

func TestGenerator_TangentField(t *testing.T) {
	space, _, w := singleSpace()
	g := liesym.NewGenerator(space, []sym.Expr{sym.N(0)}, []sym.Expr{w})
	field, err := g.TangentField(1)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"0", "W", "W_{t}"}
	if len(field) != len(want) {
		t.Fatalf("got %d components", len(field))
	}
	for i, e := range field {
		if sym.String(e) != want[i] {
			t.Errorf("component %d: got %s, want %s", i, sym.String(e), want[i])
		}
	}
}
