package sod_shock_tube

import (
	"fmt"
	"math"
)

// Problem is a Riemann problem on [XMin, XMax] with the diaphragm at X0 and
// both gases initially at rest.
type Problem struct {
	RhoL, PL   float64
	RhoR, PR   float64
	Gamma      float64
	X0         float64
	XMin, XMax float64
}

// NewProblem returns the classic Sod states.
func NewProblem() *Problem {
	return &Problem{
		RhoL: 1, PL: 1,
		RhoR: 0.125, PR: 0.1,
		Gamma: 1.4,
		X0:    0.5, XMin: 0, XMax: 1,
	}
}

// NewStrongProblem lowers the right pressure to 0.01. The contact then rises
// in density toward the shock, so the shock is the only falling jump.
func NewStrongProblem() *Problem {
	p := NewProblem()
	p.PR = 0.01
	return p
}

// Solution is the exact solution at one time, sampled at the wave positions.
type Solution struct {
	T             float64
	X             []float64
	Rho, P, U, E  []float64
	X1, X2        float64 // Rarefaction head and tail
	X3            float64 // Contact
	X4            float64 // Shock
	PPost, UPost  float64
	RhoPost       float64 // Between contact and shock
	RhoMiddle     float64 // Between rarefaction tail and contact
	ShockVelocity float64
}

type waves struct {
	mu2, cL             float64
	pPost, vPost        float64
	rhoPost, rhoMiddle  float64
	vShock, c2          float64
}

func (pr *Problem) waves() (w waves) {
	var (
		g = pr.Gamma
	)
	w.mu2 = (g - 1) / (g + 1)
	w.cL = math.Sqrt(g * pr.PL / pr.RhoL)
	w.pPost = fzero(pr.pressureFunc(w.mu2, w.cL), pr.PR, pr.PL)
	w.vPost = 2 * (w.cL / (g - 1)) * (1 - math.Pow(w.pPost/pr.PL, (g-1)/(2*g)))
	w.rhoPost = pr.RhoR * ((w.pPost / pr.PR) + w.mu2) / (1 + w.mu2*(w.pPost/pr.PR))
	w.vShock = w.vPost * (w.rhoPost / pr.RhoR) / ((w.rhoPost / pr.RhoR) - 1.)
	w.rhoMiddle = pr.RhoL * math.Pow(w.pPost/pr.PL, 1./g)
	w.c2 = w.cL - 0.5*(g-1.)*w.vPost
	return
}

// pressureFunc is zero at the post shock pressure: the velocity behind the
// shock equals the velocity at the rarefaction tail.
func (pr *Problem) pressureFunc(mu2, cL float64) func(P float64) float64 {
	var (
		g  = pr.Gamma
		aR = 2 / ((g + 1) * pr.RhoR)
		bR = mu2 * pr.PR
	)
	return func(P float64) float64 {
		return (P-pr.PR)*math.Sqrt(aR/(P+bR)) - 2*(cL/(g-1))*(1-math.Pow(P/pr.PL, (g-1)/(2*g)))
	}
}

func (pr *Problem) positions(w waves, t float64) (x1, x2, x3, x4 float64) {
	x1 = pr.X0 - w.cL*t
	x2 = pr.X0 + t*(w.vPost-w.c2)
	x3 = pr.X0 + w.vPost*t
	x4 = pr.X0 + w.vShock*t
	return
}

func (pr *Problem) state(w waves, t, x float64) (rho, p, u float64) {
	var (
		g              = pr.Gamma
		x1, x2, x3, x4 = pr.positions(w, t)
	)
	switch {
	case t <= 0:
		if x < pr.X0 {
			return pr.RhoL, pr.PL, 0
		}
		return pr.RhoR, pr.PR, 0
	case x < x1:
		rho, p, u = pr.RhoL, pr.PL, 0
	case x <= x2:
		c := w.mu2*((pr.X0-x)/t) + (1.-w.mu2)*w.cL
		rho = pr.RhoL * math.Pow(c/w.cL, 2/(g-1))
		p = pr.PL * math.Pow(rho/pr.RhoL, g)
		u = (1. - w.mu2) * ((-(pr.X0 - x) / t) + w.cL)
	case x <= x3:
		rho, p, u = w.rhoMiddle, w.pPost, w.vPost
	case x <= x4:
		rho, p, u = w.rhoPost, w.pPost, w.vPost
	default:
		rho, p, u = pr.RhoR, pr.PR, 0
	}
	return
}

// Solve returns the solution at time t on points that bracket every wave,
// with nFan extra points across the rarefaction.
func (pr *Problem) Solve(t float64, nFan int) (s Solution) {
	var (
		w              = pr.waves()
		x1, x2, x3, x4 = pr.positions(w, t)
		tol            = 1.e-8
	)
	s = Solution{
		T:  t,
		X1: x1, X2: x2, X3: x3, X4: x4,
		PPost: w.pPost, UPost: w.vPost,
		RhoPost: w.rhoPost, RhoMiddle: w.rhoMiddle,
		ShockVelocity: w.vShock,
	}
	s.X = []float64{pr.XMin, x1 - tol, x1 + tol}
	for i := 1; i <= nFan; i++ {
		s.X = append(s.X, x1+(x2-x1)*float64(i)/float64(nFan+1))
	}
	s.X = append(s.X, x2-tol, x2+tol, x3-tol, x3+tol, x4-tol, x4+tol, pr.XMax)
	s.Rho, s.P, s.U = pr.Sample(t, s.X)
	s.E = make([]float64, len(s.X))
	for i := range s.X {
		s.E[i] = s.P[i] / ((pr.Gamma - 1.) * s.Rho[i])
	}
	return
}

// Sample evaluates the solution at time t on arbitrary points.
func (pr *Problem) Sample(t float64, x []float64) (rho, p, u []float64) {
	var (
		w = pr.waves()
	)
	rho, p, u = make([]float64, len(x)), make([]float64, len(x)), make([]float64, len(x))
	for i, xx := range x {
		rho[i], p[i], u[i] = pr.state(w, t, xx)
	}
	return
}

func (pr *Problem) String() string {
	return fmt.Sprintf("Riemann problem: left (rho %g, P %g), right (rho %g, P %g), gamma %g, x0 %g",
		pr.RhoL, pr.PL, pr.RhoR, pr.PR, pr.Gamma, pr.X0)
}

// fzero finds the root of f bracketed by [lo, hi] with a secant step,
// falling back to bisection when the step leaves the bracket.
func fzero(f func(P float64) (y float64), lo, hi float64) float64 {
	var (
		tol      = 1.e-12
		fLo, fHi = f(lo), f(hi)
		x        float64
	)
	for iter := 0; iter < 200; iter++ {
		x = hi - fHi*(hi-lo)/(fHi-fLo)
		if x <= lo || x >= hi || math.IsNaN(x) {
			x = 0.5 * (lo + hi)
		}
		fx := f(x)
		if math.Abs(fx) < tol || hi-lo < tol {
			break
		}
		if fLo*fx < 0 {
			hi, fHi = x, fx
		} else {
			lo, fLo = x, fx
		}
	}
	return x
}
