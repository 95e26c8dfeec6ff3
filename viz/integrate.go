package viz

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"liesym"
	"liesym/sym"
)

// RHS is the right-hand side of a first-order system y' = f(t, y).
type RHS func(t float64, y []float64) []float64

// Integrator advances a state by one step.
type Integrator interface {
	Step(f RHS, t float64, y []float64, dt float64) []float64
}

// RK4 is the classical fourth-order Runge-Kutta scheme.
type RK4 struct{}

func (RK4) Step(f RHS, t float64, y []float64, dt float64) []float64 {
	n := len(y)
	k1 := f(t, y)
	k2 := f(t+dt/2, offset(y, k1, dt/2))
	k3 := f(t+dt/2, offset(y, k2, dt/2))
	k4 := f(t+dt, offset(y, k3, dt))
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = y[i] + dt/6*(k1[i]+2*k2[i]+2*k3[i]+k4[i])
	}
	return out
}

func offset(y, k []float64, h float64) []float64 {
	out := make([]float64, len(y))
	for i := range y {
		out[i] = y[i] + h*k[i]
	}
	return out
}

// Options bound a curve integration.
type Options struct {
	Dt       float64
	MaxSteps int
	TwoSided bool
	// Bounds holds optional [min, max] limits per coordinate; integration
	// stops at the first step leaving the box.
	Bounds [][2]float64
	// MaxArcLength stops the curve once its accumulated length exceeds
	// the limit; zero means unlimited.
	MaxArcLength float64

	Integrator Integrator
}

func (o Options) withDefaults() Options {
	if o.Dt == 0 {
		o.Dt = 0.01
	}
	if o.MaxSteps == 0 {
		o.MaxSteps = 1000
	}
	if o.Integrator == nil {
		o.Integrator = RK4{}
	}
	return o
}

func inBounds(y []float64, bounds [][2]float64) bool {
	if bounds == nil {
		return true
	}
	for i, b := range bounds {
		if i >= len(y) {
			break
		}
		if y[i] < b[0] || y[i] > b[1] {
			return false
		}
	}
	return true
}

// integrateOneWay runs from start with the signed step of opt.Dt.
func integrateOneWay(f RHS, start []float64, dt float64, opt Options) [][]float64 {
	curve := [][]float64{append([]float64{}, start...)}
	y := start
	t := 0.0
	arc := 0.0
	for step := 0; step < opt.MaxSteps; step++ {
		next := opt.Integrator.Step(f, t, y, dt)
		if !inBounds(next, opt.Bounds) {
			break
		}
		arc += floats.Distance(y, next, 2)
		if opt.MaxArcLength > 0 && arc > opt.MaxArcLength {
			break
		}
		curve = append(curve, next)
		y = next
		t += dt
	}
	return curve
}

// integrate runs one- or two-sided from start, returning the curve in
// parameter order.
func integrate(f RHS, start []float64, opt Options) [][]float64 {
	opt = opt.withDefaults()
	forward := integrateOneWay(f, start, opt.Dt, opt)
	if !opt.TwoSided {
		return forward
	}
	backward := integrateOneWay(f, start, -opt.Dt, opt)
	curve := make([][]float64, 0, len(forward)+len(backward)-1)
	for i := len(backward) - 1; i > 0; i-- {
		curve = append(curve, backward[i])
	}
	return append(curve, forward...)
}

// IntegralCurves integrates the flow of a generator from each start point
// in the base+fiber coordinate space.
func IntegralCurves(gen *liesym.Generator, params map[string]sym.Expr, starts [][]float64, opt Options) ([][][]float64, error) {
	flow, err := GeneratorFlow(gen, params)
	if err != nil {
		return nil, err
	}
	dim := len(gen.Space.Base()) + len(gen.Space.Fiber())
	curves := make([][][]float64, len(starts))
	for i, start := range starts {
		if len(start) != dim {
			return nil, fmt.Errorf("viz: start point %d has %d coordinates, space has %d", i, len(start), dim)
		}
		curves[i] = integrate(flow, start, opt)
	}
	return curves, nil
}

// SolutionCurve integrates y' = rhs(t, y) two ways from (t0, initial)
// across tRange. Rows are [t, y...], ascending in t.
func SolutionCurve(rhs RHS, initial []float64, t0 float64, tRange [2]float64, dt float64) [][]float64 {
	if dt <= 0 {
		dt = 0.01
	}
	row := func(t float64, y []float64) []float64 {
		return append([]float64{t}, y...)
	}
	forward := [][]float64{row(t0, initial)}
	y := initial
	for t := t0; t+dt <= tRange[1]; t += dt {
		y = RK4{}.Step(rhs, t, y, dt)
		forward = append(forward, row(t+dt, y))
	}
	backward := [][]float64{}
	y = initial
	for t := t0; t-dt >= tRange[0]; t -= dt {
		y = RK4{}.Step(rhs, t, y, -dt)
		backward = append(backward, row(t-dt, y))
	}
	curve := make([][]float64, 0, len(forward)+len(backward))
	for i := len(backward) - 1; i >= 0; i-- {
		curve = append(curve, backward[i])
	}
	return append(curve, forward...)
}

// SpacedPoints picks n points along a curve, approximately equispaced by
// arc length. The first and last points of the curve are always included.
func SpacedPoints(curve [][]float64, n int) [][]float64 {
	if n <= 0 || len(curve) == 0 {
		return nil
	}
	if n == 1 || len(curve) == 1 {
		return [][]float64{curve[0]}
	}
	cum := make([]float64, len(curve))
	for i := 1; i < len(curve); i++ {
		cum[i] = cum[i-1] + floats.Distance(curve[i-1], curve[i], 2)
	}
	total := cum[len(cum)-1]
	out := make([][]float64, 0, n)
	idx := 0
	for k := 0; k < n; k++ {
		target := total * float64(k) / float64(n-1)
		for idx < len(cum)-1 && cum[idx] < target {
			idx++
		}
		out = append(out, curve[idx])
	}
	return out
}
