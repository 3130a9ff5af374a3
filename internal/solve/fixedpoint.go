// Package solve holds the bounded iteration helper used by the numeric
// solvers. Every loop that refines an estimate until it stops moving goes
// through FixedPoint so termination is guaranteed by construction.
package solve

import "math"

// Options bounds a fixed-point iteration.
type Options struct {
	// MaxIterations caps the number of step evaluations. Values below 1
	// are treated as 1.
	MaxIterations int
	// Tolerance is the distance between successive estimates below which
	// the iteration is considered converged.
	Tolerance float64
}

// Result is the outcome of a fixed-point iteration.
type Result struct {
	Value      float64
	Iterations int
	Converged  bool
}

// StepFunc maps an estimate to the next estimate.
type StepFunc func(x float64) float64

// DistFunc measures how far apart two successive estimates are. The sign
// is ignored.
type DistFunc func(next, prev float64) float64

// Linear is the plain difference next-prev.
func Linear(next, prev float64) float64 { return next - prev }

// FixedPoint iterates x = step(x) starting from x0 until dist reports a
// change below the tolerance or the iteration cap is reached. The returned
// value is the last estimate produced; Converged is false when the cap was
// hit first.
func FixedPoint(x0 float64, step StepFunc, dist DistFunc, opts Options) Result {
	if dist == nil {
		dist = Linear
	}
	maxIter := opts.MaxIterations
	if maxIter < 1 {
		maxIter = 1
	}

	x := x0
	for i := 1; i <= maxIter; i++ {
		next := step(x)
		if math.IsNaN(next) {
			return Result{Value: x, Iterations: i, Converged: false}
		}
		if math.Abs(dist(next, x)) < opts.Tolerance {
			return Result{Value: next, Iterations: i, Converged: true}
		}
		x = next
	}
	return Result{Value: x, Iterations: maxIter, Converged: false}
}
