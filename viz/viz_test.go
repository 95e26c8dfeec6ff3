package viz_test

import (
	"math"
	"testing"

	"liesym"
	"liesym/sym"
	"liesym/viz"
)

// ============================================================
// Lambdify
// ============================================================

func TestLambdify_Polynomial(t *testing.T) {
	x, y := sym.S("x"), sym.S("y")
	f, err := viz.Lambdify([]*sym.Sym{x, y}, sym.AddOf(sym.PowOf(x, sym.N(2)), y))
	if err != nil {
		t.Fatal(err)
	}
	if got := f([]float64{2, 3}); got != 7 {
		t.Errorf("got %v", got)
	}
}

func TestLambdify_Exponential(t *testing.T) {
	x := sym.S("x")
	f, err := viz.Lambdify([]*sym.Sym{x}, sym.ExpOf(x))
	if err != nil {
		t.Fatal(err)
	}
	if got := f([]float64{1}); math.Abs(got-math.E) > 1e-12 {
		t.Errorf("got %v", got)
	}
}

func TestLambdify_UnboundSymbol(t *testing.T) {
	x, y := sym.S("x"), sym.S("y")
	if _, err := viz.Lambdify([]*sym.Sym{x}, sym.AddOf(x, y)); err == nil {
		t.Error("unbound symbol accepted")
	}
}

func TestLambdifyAll_BindsParameters(t *testing.T) {
	x, k := sym.S("x"), sym.S("k")
	fns, err := viz.LambdifyAll([]*sym.Sym{x}, []sym.Expr{sym.MulOf(k, x)}, map[string]sym.Expr{"k": sym.N(3)})
	if err != nil {
		t.Fatal(err)
	}
	if got := fns[0]([]float64{2}); got != 6 {
		t.Errorf("got %v", got)
	}
}

func TestGeneratorFlow_VerticalScaling(t *testing.T) {
	tSym, w := sym.S("t"), sym.S("W")
	space := liesym.NewTotalSpace([]*sym.Sym{tSym}, []*sym.Sym{w})
	g := liesym.NewGenerator(space, []sym.Expr{sym.N(0)}, []sym.Expr{w})
	flow, err := viz.GeneratorFlow(g, nil)
	if err != nil {
		t.Fatal(err)
	}
	v := flow(0, []float64{0, 2})
	if v[0] != 0 || v[1] != 2 {
		t.Errorf("got %v", v)
	}
}

// ============================================================
// Integration
// ============================================================

func TestRK4_ExponentialGrowth(t *testing.T) {
	rhs := func(_ float64, y []float64) []float64 { return []float64{y[0]} }
	y := []float64{1}
	dt := 0.01
	for i := 0; i < 100; i++ {
		y = viz.RK4{}.Step(rhs, float64(i)*dt, y, dt)
	}
	if math.Abs(y[0]-math.E) > 1e-6 {
		t.Errorf("got %v, want e", y[0])
	}
}

func TestSolutionCurve_CoversRange(t *testing.T) {
	rhs := func(_ float64, _ []float64) []float64 { return []float64{0} }
	curve := viz.SolutionCurve(rhs, []float64{1}, 0, [2]float64{-1, 1}, 0.5)
	if len(curve) != 5 {
		t.Fatalf("got %d rows", len(curve))
	}
	if curve[0][0] != -1 || curve[len(curve)-1][0] != 1 {
		t.Errorf("range [%v, %v]", curve[0][0], curve[len(curve)-1][0])
	}
}

func TestSolutionCurve_AscendingTime(t *testing.T) {
	rhs := func(_ float64, y []float64) []float64 { return []float64{y[0]} }
	curve := viz.SolutionCurve(rhs, []float64{1}, 0, [2]float64{-1, 1}, 0.1)
	for i := 1; i < len(curve); i++ {
		if curve[i][0] <= curve[i-1][0] {
			t.Fatalf("row %d: time %v after %v", i, curve[i][0], curve[i-1][0])
		}
	}
}

func TestIntegralCurves_StaysInBounds(t *testing.T) {
	tSym, w := sym.S("t"), sym.S("W")
	space := liesym.NewTotalSpace([]*sym.Sym{tSym}, []*sym.Sym{w})
	g := liesym.NewGenerator(space, []sym.Expr{sym.N(0)}, []sym.Expr{w})
	curves, err := viz.IntegralCurves(g, nil, [][]float64{{0, 1}}, viz.Options{
		Dt:       0.1,
		MaxSteps: 500,
		Bounds:   [][2]float64{{-10, 10}, {0, 2}},
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range curves[0] {
		if p[1] > 2 {
			t.Fatalf("point %v leaves bounds", p)
		}
	}
}

func TestIntegralCurves_DimensionMismatch(t *testing.T) {
	tSym, w := sym.S("t"), sym.S("W")
	space := liesym.NewTotalSpace([]*sym.Sym{tSym}, []*sym.Sym{w})
	g := liesym.NewGenerator(space, []sym.Expr{sym.N(0)}, []sym.Expr{w})
	if _, err := viz.IntegralCurves(g, nil, [][]float64{{0, 1, 2}}, viz.Options{}); err == nil {
		t.Error("wrong dimension accepted")
	}
}

// ============================================================
// Point selection
// ============================================================

func TestSpacedPoints_IncludesEndpoints(t *testing.T) {
	curve := [][]float64{}
	for i := 0; i <= 10; i++ {
		curve = append(curve, []float64{float64(i), 0})
	}
	points := viz.SpacedPoints(curve, 3)
	if len(points) != 3 {
		t.Fatalf("got %d points", len(points))
	}
	if points[0][0] != 0 || points[2][0] != 10 {
		t.Errorf("got %v", points)
	}
}

func TestSpacedPoints_SinglePoint(t *testing.T) {
	curve := [][]float64{{0, 0}, {1, 0}}
	points := viz.SpacedPoints(curve, 1)
	if len(points) != 1 || points[0][0] != 0 {
		t.Errorf("got %v", points)
	}
}
