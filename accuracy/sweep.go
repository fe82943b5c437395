// Package accuracy - convergence sweep and report analysis.
//
// Design rules, shared with the quad package:
//   - Deterministic, side-effect free: a sweep is a pure function of its
//     arguments; samples keep the caller's panel order.
//   - Strict sentinels: only errors from errors.go or forwarded quad
//     sentinels; no logging, no panics on user input.
package accuracy

import (
	"math"

	"github.com/katalvlaran/nquad/quad"
)

// noiseFloor is the absolute error below which a sample is treated as
// converged to machine precision and excluded from order estimation;
// log-ratios of such errors measure rounding, not the rule.
const noiseFloor = 1e-14

// Sweep runs quad.Integrate(f, a, b, n, r) for every n in panels and records
// the estimate and its absolute error against exact.
//
// Contracts:
//   - panels must be non-empty (ErrNoPanels);
//   - every n must satisfy the driver's own contract — the first quad
//     sentinel (e.g. quad.ErrNonPositivePanels) aborts the sweep.
//
// Non-finite estimates are recorded with AbsError = NaN rather than dropped,
// so a singularity shows up in the report instead of vanishing from it.
//
// Complexity: O(Σ nᵢ · r.PointCount()) integrand evaluations.
func Sweep(f quad.Integrand, a, b, exact float64, r quad.Rule, panels []int) (Report, error) {
	if len(panels) == 0 {
		return Report{}, ErrNoPanels
	}

	rep := Report{
		RuleName: r.Name(),
		Exact:    exact,
		Samples:  make([]Sample, 0, len(panels)),
	}
	for _, n := range panels {
		est, err := quad.Integrate(f, a, b, n, r)
		if err != nil {
			return Report{}, err
		}
		rep.Samples = append(rep.Samples, Sample{
			N:        n,
			Estimate: est,
			AbsError: math.Abs(est - exact),
		})
	}

	return rep, nil
}

// Doublings returns the panel series start, 2·start, 4·start, … of length
// count — the natural input for ObservedOrder, where each step should divide
// the error by 2^order.
//
// start < 1 or count < 1 returns ErrBadSeries.
func Doublings(start, count int) ([]int, error) {
	if start < 1 || count < 1 {
		return nil, ErrBadSeries
	}
	out := make([]int, count)
	n := start
	for i := 0; i < count; i++ {
		out[i] = n
		n *= 2
	}
	return out, nil
}

// ObservedOrder estimates the empirical convergence order of the report:
// the mean of log2(err(n)/err(2n)) over consecutive samples whose panel
// counts double.  For a rule of theoretical order p the result approaches p
// as n grows (≈2 for midpoint/trapezoid, ≈4 for Simpson, ≈6 for Boole).
//
// Pairs are skipped when either error is non-finite or below the
// machine-precision noise floor.  With no usable pair the order is
// undefined (ErrOrderUndefined).
func (r Report) ObservedOrder() (float64, error) {
	var (
		sum   float64
		pairs int
	)
	for i := 1; i < len(r.Samples); i++ {
		prev, cur := r.Samples[i-1], r.Samples[i]
		if cur.N != 2*prev.N {
			continue
		}
		if !usableError(prev.AbsError) || !usableError(cur.AbsError) {
			continue
		}
		sum += math.Log2(prev.AbsError / cur.AbsError)
		pairs++
	}
	if pairs == 0 {
		return 0, ErrOrderUndefined
	}
	return sum / float64(pairs), nil
}

// FirstWithin returns the smallest sampled panel count whose absolute error
// is at most tol, and whether any sample qualified.  NaN errors never
// qualify.
func (r Report) FirstWithin(tol float64) (int, bool) {
	best, found := 0, false
	for _, s := range r.Samples {
		if math.IsNaN(s.AbsError) || s.AbsError > tol {
			continue
		}
		if !found || s.N < best {
			best, found = s.N, true
		}
	}
	return best, found
}

// MaxError returns the largest finite absolute error in the report, or NaN
// when any sample is non-finite (a tainted sweep has no honest maximum).
func (r Report) MaxError() float64 {
	var max float64
	for _, s := range r.Samples {
		if math.IsNaN(s.AbsError) || math.IsInf(s.AbsError, 0) {
			return math.NaN()
		}
		if s.AbsError > max {
			max = s.AbsError
		}
	}
	return max
}

// MinError returns the smallest finite absolute error in the report;
// NaN samples are skipped, and an all-NaN (or empty) report yields NaN.
func (r Report) MinError() float64 {
	min, seen := 0.0, false
	for _, s := range r.Samples {
		if math.IsNaN(s.AbsError) {
			continue
		}
		if !seen || s.AbsError < min {
			min, seen = s.AbsError, true
		}
	}
	if !seen {
		return math.NaN()
	}
	return min
}

// usableError reports whether e can participate in a log-ratio:
// finite and above the noise floor.
func usableError(e float64) bool {
	return !math.IsNaN(e) && !math.IsInf(e, 0) && e > noiseFloor
}
