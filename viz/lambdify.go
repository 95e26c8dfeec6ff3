// Package viz bridges symbolic generators and equations to numeric
// integration and plotting.
package viz

import (
	"fmt"
	"math"

	"liesym"
	"liesym/sym"
)

// Lambdify compiles an expression to a function of an ordered coordinate
// slice. A free symbol outside coords is a construction error, not a
// call-time one.
func Lambdify(coords []*sym.Sym, expr sym.Expr) (func([]float64) float64, error) {
	pos := map[string]int{}
	for i, c := range coords {
		pos[c.Name()] = i
	}
	return compile(expr.Simplify(), pos)
}

// LambdifyAll compiles a component list after binding the parameter
// symbols to fixed values.
func LambdifyAll(coords []*sym.Sym, exprs []sym.Expr, params map[string]sym.Expr) ([]func([]float64) float64, error) {
	out := make([]func([]float64) float64, len(exprs))
	for i, e := range exprs {
		bound := e
		if len(params) > 0 {
			bound = sym.SubMap(e, params)
		}
		f, err := Lambdify(coords, bound)
		if err != nil {
			return nil, fmt.Errorf("component %d: %w", i, err)
		}
		out[i] = f
	}
	return out, nil
}

func compile(e sym.Expr, pos map[string]int) (func([]float64) float64, error) {
	switch v := e.(type) {
	case *sym.Num:
		c := v.Float64()
		return func([]float64) float64 { return c }, nil
	case *sym.Sym:
		i, ok := pos[v.Name()]
		if !ok {
			return nil, fmt.Errorf("viz: unbound symbol %q", v.Name())
		}
		return func(p []float64) float64 { return p[i] }, nil
	case *sym.Add:
		fns, err := compileAll(v.Terms(), pos)
		if err != nil {
			return nil, err
		}
		return func(p []float64) float64 {
			total := 0.0
			for _, f := range fns {
				total += f(p)
			}
			return total
		}, nil
	case *sym.Mul:
		fns, err := compileAll(v.Factors(), pos)
		if err != nil {
			return nil, err
		}
		return func(p []float64) float64 {
			total := 1.0
			for _, f := range fns {
				total *= f(p)
			}
			return total
		}, nil
	case *sym.Pow:
		base, err := compile(v.Base(), pos)
		if err != nil {
			return nil, err
		}
		exp, err := compile(v.ExpExpr(), pos)
		if err != nil {
			return nil, err
		}
		return func(p []float64) float64 { return math.Pow(base(p), exp(p)) }, nil
	case *sym.Func:
		arg, err := compile(v.Arg(), pos)
		if err != nil {
			return nil, err
		}
		var outer func(float64) float64
		switch v.FuncName() {
		case "sin":
			outer = math.Sin
		case "cos":
			outer = math.Cos
		case "tan":
			outer = math.Tan
		case "exp":
			outer = math.Exp
		case "ln":
			outer = math.Log
		case "abs":
			outer = math.Abs
		case "sign":
			outer = func(x float64) float64 {
				switch {
				case x > 0:
					return 1
				case x < 0:
					return -1
				}
				return 0
			}
		default:
			return nil, fmt.Errorf("viz: cannot compile function %q", v.FuncName())
		}
		return func(p []float64) float64 { return outer(arg(p)) }, nil
	}
	return nil, fmt.Errorf("viz: cannot compile %s", e.String())
}

func compileAll(exprs []sym.Expr, pos map[string]int) ([]func([]float64) float64, error) {
	fns := make([]func([]float64) float64, len(exprs))
	for i, e := range exprs {
		f, err := compile(e, pos)
		if err != nil {
			return nil, err
		}
		fns[i] = f
	}
	return fns, nil
}

// GeneratorFlow compiles a generator's (xi, eta) components into a flow
// over the base+fiber coordinate space.
func GeneratorFlow(gen *liesym.Generator, params map[string]sym.Expr) (RHS, error) {
	coords := append(gen.Space.Base(), gen.Space.Fiber()...)
	comps := append(append([]sym.Expr{}, gen.Xis...), gen.Etas...)
	fns, err := LambdifyAll(coords, comps, params)
	if err != nil {
		return nil, err
	}
	return func(_ float64, y []float64) []float64 {
		out := make([]float64, len(fns))
		for i, f := range fns {
			out[i] = f(y)
		}
		return out
	}, nil
}
