package sparse

import (
	"errors"
	"math"
)

// Status reports how a CG solve ended.
type Status int

const (
	Converged Status = iota
	MaxItersReached
	Breakdown
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Converged:
		return "converged"
	case MaxItersReached:
		return "max_iters_reached"
	case Breakdown:
		return "breakdown"
	default:
		return "unknown"
	}
}

// ErrBreakdown is the error value for a conjugate-gradient breakdown (the
// search direction degenerates to a zero pivot), a numeric failure
// distinct from simply not converging in time. Solve itself reports a
// breakdown through its Breakdown status and does not return this error.
var ErrBreakdown = errors.New("sparse: conjugate-gradient breakdown")

// Options tunes the CG solve.
type Options struct {
	// Tol is the relative residual tolerance ||Ax-b|| / ||b||. Zero
	// selects the suggested default of 1e-4.
	Tol float64
	// MaxIters caps the iteration count. Zero selects min(4n, 10000), but
	// never fewer than n.
	MaxIters int
}

func (o Options) withDefaults(n int) Options {
	if o.Tol <= 0 {
		o.Tol = 1e-4
	}
	if o.MaxIters <= 0 {
		cap := 4 * n
		if cap > 10000 {
			cap = 10000
		}
		if cap < n {
			cap = n
		}
		o.MaxIters = cap
	}
	return o
}

// Solve runs Jacobi-preconditioned conjugate gradient for Ax=b, starting
// from x0 (or the zero vector if x0 is nil), and returns the solution
// together with a termination Status. On Breakdown the returned x is the
// best-effort iterate reached so far, so callers can choose to use it or
// fail the pass.
func Solve(a *Matrix, b []float64, x0 []float64, opts Options) ([]float64, Status) {
	n := a.N()
	opts = opts.withDefaults(n)

	x := make([]float64, n)
	if x0 != nil {
		copy(x, x0)
	}

	jacobi := make([]float64, n)
	for i := 0; i < n; i++ {
		d := a.Diag(i)
		if d != 0 {
			jacobi[i] = 1 / d
		} else {
			jacobi[i] = 1
		}
	}

	r := make([]float64, n)
	ax := make([]float64, n)
	a.MulVec(x, ax)
	for i := range r {
		r[i] = b[i] - ax[i]
	}

	bNorm := norm(b)
	if bNorm == 0 {
		return x, Converged
	}

	z := make([]float64, n)
	applyPrecond(jacobi, r, z)

	p := make([]float64, n)
	copy(p, z)

	rz := dot(r, z)

	ap := make([]float64, n)

	for iter := 0; iter < opts.MaxIters; iter++ {
		if norm(r)/bNorm <= opts.Tol {
			return x, Converged
		}

		a.MulVec(p, ap)
		pap := dot(p, ap)
		if pap == 0 || math.IsNaN(pap) {
			return x, Breakdown
		}

		alpha := rz / pap
		for i := 0; i < n; i++ {
			x[i] += alpha * p[i]
			r[i] -= alpha * ap[i]
		}

		applyPrecond(jacobi, r, z)
		rzNew := dot(r, z)
		if rz == 0 {
			return x, Breakdown
		}
		beta := rzNew / rz
		for i := 0; i < n; i++ {
			p[i] = z[i] + beta*p[i]
		}
		rz = rzNew
	}

	if norm(r)/bNorm <= opts.Tol {
		return x, Converged
	}
	return x, MaxItersReached
}

func applyPrecond(jacobi, r, z []float64) {
	for i := range z {
		z[i] = jacobi[i] * r[i]
	}
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

func norm(a []float64) float64 {
	return math.Sqrt(dot(a, a))
}
