// Command lotka-volterra searches for point symmetries of the
// Lotka-Volterra predator-prey system with a polynomial ansatz: it builds
// the linearized symmetry conditions, decomposes them into determining
// equations, solves the resulting linear system over the ansatz
// constants, and prints the generating set.
package main

import (
	"flag"
	"fmt"
	"log"

	"liesym"
	"liesym/sym"
)

func main() {
	degree := flag.Int("degree", 2, "total degree of the polynomial ansatz")
	flag.Parse()

	t := sym.S("t")
	n := sym.S("N")
	p := sym.S("P")
	space := liesym.NewTotalSpace([]*sym.Sym{t}, []*sym.Sym{n, p})
	js := liesym.NewJetSpace(space, 1)
	nt, err := js.Coordinate(n, liesym.MultiIndex{1})
	if err != nil {
		log.Fatal(err)
	}
	pt, err := js.Coordinate(p, liesym.MultiIndex{1})
	if err != nil {
		log.Fatal(err)
	}

	// N' = r N - a N P, P' = b N P - m P with the classic parameter
	// values r=2/3, a=4/3, b=m=1.
	r, a, b, m := sym.F(2, 3), sym.F(4, 3), sym.N(1), sym.N(1)
	eqs := []sym.Expr{
		sym.AddOf(nt, sym.MulOf(sym.N(-1), r, n), sym.MulOf(a, n, p)),
		sym.AddOf(pt, sym.MulOf(sym.N(-1), b, n, p), sym.MulOf(m, p)),
	}
	hints := []*sym.Sym{nt, pt}

	ansatz, constants := liesym.PolyAnsatz(js, *degree)
	fmt.Printf("polynomial ansatz of degree %d with %d constants\n", *degree, len(constants))

	conds, err := liesym.LinearizedSymmetryCondition(eqs, ansatz, js, hints)
	if err != nil {
		log.Fatal(err)
	}

	alg := liesym.StdAlgebra{}
	dets, err := liesym.DeterminingEquations(conds, js, alg)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%d determining equations\n", len(dets))

	sol, err := alg.SolveLinearSystem(dets, constants)
	if err != nil {
		log.Fatal(err)
	}

	free := []sym.Expr{}
	for _, c := range constants {
		if v, ok := sol[c.Name()].(*sym.Sym); ok && v.Name() == c.Name() {
			free = append(free, c)
		}
	}
	fmt.Printf("%d free constants remain\n", len(free))

	solved := ansatz.SubMap(sol)
	if len(free) == 0 {
		if solved.IsZero() {
			fmt.Println("only the trivial symmetry at this degree")
			return
		}
		fmt.Println("fixed generator:", solved)
		return
	}
	gens, err := liesym.DecomposeGenerator(solved, free)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("symmetry generators (xi, eta_N, eta_P):")
	for i, g := range gens {
		fmt.Printf("  X%d = %v\n", i+1, g)
	}
}
