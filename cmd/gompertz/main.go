// Command gompertz confirms the known point symmetries of the classical
// and autonomous Gompertz models and optionally renders a transformation
// figure for one of them.
package main

import (
	"flag"
	"fmt"
	"log"

	"liesym"
	"liesym/sym"
	"liesym/viz"
)

type candidate struct {
	name string
	gen  *liesym.Generator
	// piecewise marks generators that are symmetries only piecewise;
	// the residual is reported instead of asserted zero.
	piecewise bool
}

func main() {
	plotPath := flag.String("plot", "", "write a transformation figure for the autonomous model to this path")
	flag.Parse()

	t := sym.S("t")
	w := sym.S("W")
	kG := sym.S("k_G")
	ti := sym.S("T_i")
	bigA := sym.S("A")

	space := liesym.NewTotalSpace([]*sym.Sym{t}, []*sym.Sym{w})
	js := liesym.NewJetSpace(space, 1)
	wt, err := js.Coordinate(w, liesym.MultiIndex{1})
	if err != nil {
		log.Fatal(err)
	}
	on := liesym.GeneratorOn(space)
	xi := func(x sym.Expr) *liesym.Generator { return on([]sym.Expr{x}, []sym.Expr{sym.N(0)}) }
	eta := func(e sym.Expr) *liesym.Generator { return on([]sym.Expr{sym.N(0)}, []sym.Expr{e}) }

	// Classical model: W_t = k_G exp(-k_G (t - T_i)) W.
	decay := sym.MulOf(
		sym.ExpOf(sym.MulOf(kG, ti)),
		sym.ExpOf(sym.MulOf(sym.N(-1), kG, t)),
	)
	classical := sym.AddOf(wt, sym.MulOf(sym.N(-1), kG, decay, w))
	growth := sym.ExpOf(sym.MulOf(kG, t))
	classicalGens := []candidate{
		{name: "X_cla1", gen: xi(growth)},
		{name: "X_cla2", gen: xi(sym.MulOf(w, growth, sym.ExpOf(decay)))},
		{name: "X_cla3", gen: eta(sym.ExpOf(sym.MulOf(sym.N(-1), decay)))},
		{name: "X_cla4", gen: eta(w)},
		{name: "X_cla5", gen: on(
			[]sym.Expr{sym.N(1)},
			[]sym.Expr{sym.MulOf(sym.N(-1), kG, w, sym.LnOf(w))},
		)},
	}
	fmt.Println("Classical Gompertz model:", classical)
	confirm(classical, classicalGens, js, wt)

	// Autonomous model: W_t = -k_G W ln(W/A).
	lnWA := sym.LnOf(sym.MulOf(w, sym.PowOf(bigA, sym.N(-1))))
	autonomous := sym.AddOf(wt, sym.MulOf(kG, w, lnWA))
	fade := sym.ExpOf(sym.MulOf(sym.N(-1), kG, t))
	autonomousGens := []candidate{
		{name: "X_aut1", gen: xi(sym.MulOf(growth, lnWA))},
		{name: "X_aut2", gen: eta(sym.MulOf(fade, w))},
		{name: "X_aut3", gen: eta(sym.MulOf(w, lnWA))},
		{name: "X_aut4", gen: xi(sym.N(1))},
		{name: "X_aut5", gen: on(
			[]sym.Expr{t},
			[]sym.Expr{sym.MulOf(w, lnWA, sym.LnOf(sym.AbsOf(lnWA)))},
		), piecewise: true},
		{name: "X_aut6", gen: on(
			[]sym.Expr{fade},
			[]sym.Expr{sym.MulOf(sym.N(-1), kG, fade, w, sym.LnOf(w))},
		)},
	}
	fmt.Println()
	fmt.Println("Autonomous Gompertz model:", autonomous)
	confirm(autonomous, autonomousGens, js, wt)

	if *plotPath != "" {
		if err := plotAutonomous(*plotPath, autonomousGens[2].gen, kG, bigA); err != nil {
			log.Fatal(err)
		}
		fmt.Println()
		fmt.Println("figure written to", *plotPath)
	}
}

func confirm(eq sym.Expr, cands []candidate, js *liesym.JetSpace, hint *sym.Sym) {
	for _, c := range cands {
		cond, err := liesym.LinearizedSymmetryConditionSingle(eq, c.gen, js, hint)
		if err != nil {
			log.Fatalf("%s: %v", c.name, err)
		}
		switch {
		case sym.IsZero(cond):
			fmt.Printf("  %s = %v: symmetry confirmed\n", c.name, c.gen)
		case c.piecewise:
			fmt.Printf("  %s = %v: not identically zero (holds piecewise in ln(W/A))\n", c.name, c.gen)
		default:
			fmt.Printf("  %s = %v: NOT a symmetry, residual %v\n", c.name, c.gen, sym.Canonicalize(cond))
		}
	}
}

// plotAutonomous draws a solution curve of the autonomous model together
// with integral curves of the scaling generator and the transformed
// solution they carry it to.
func plotAutonomous(path string, gen *liesym.Generator, kG, bigA *sym.Sym) error {
	t := sym.S("t")
	w := sym.S("W")
	params := map[string]sym.Expr{
		kG.Name():   sym.NFloat(0.3),
		bigA.Name(): sym.N(10),
	}
	// W' = -k W ln(W/A), compiled with the parameter values bound.
	wPrime := sym.MulOf(sym.N(-1), kG, w, sym.LnOf(sym.MulOf(w, sym.PowOf(bigA, sym.N(-1)))))
	fns, err := viz.LambdifyAll([]*sym.Sym{t, w}, []sym.Expr{wPrime}, params)
	if err != nil {
		return err
	}
	rhs := func(t float64, y []float64) []float64 {
		return []float64{fns[0]([]float64{t, y[0]})}
	}
	solution := viz.SolutionCurve(rhs, []float64{1}, 0, [2]float64{0, 12}, 0.05)

	seeds := viz.SpacedPoints(solution, 8)
	arrows, err := viz.IntegralCurves(gen, params, seeds, viz.Options{
		Dt:       0.02,
		MaxSteps: 40,
		Bounds:   [][2]float64{{0, 12}, {0.01, 40}},
	})
	if err != nil {
		return err
	}
	transformed := make([][]float64, 0, len(arrows))
	for _, a := range arrows {
		transformed = append(transformed, a[len(a)-1])
	}
	return viz.PlotTransformation(path, "Autonomous Gompertz under W ln(W/A) d/dW",
		"t", "W", solution, transformed, arrows)
}
