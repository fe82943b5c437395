package quad

import (
	"fmt"
	"math"
)

// weightSumTol bounds |Σ coeffs| below which the normalization factor is
// considered undefined.  Structural tolerance only; unrelated to any
// accuracy target.
const weightSumTol = 1e-12

// NewRule derives a quadrature Rule from a Newton-Cotes coefficient vector.
//
// Construction contract:
//   - coeffs must be non-empty (ErrNoCoefficients) and finite
//     (ErrNonFiniteCoefficient);
//   - Σ coeffs must be non-zero within 1e-12 (ErrZeroWeightSum);
//   - a closed rule needs at least two coefficients (ErrDegenerateRule) —
//     a single closed point has no lattice to span.
//
// The resulting Rule places len(coeffs) evaluation points on the lattice
// i·(b-a)/order: a closed rule (open=false) spans endpoint to endpoint with
// order = len(coeffs)-1; an open rule (open=true) uses order = len(coeffs)+1
// and evaluates only the interior points i = 1..len(coeffs), skipping both
// implied endpoints.  Applied to (f, a, b) the rule computes
//
//	(b-a) / Σcoeffs · Σ coeffs[i]·f(pointᵢ)
//
// which is exact for polynomials up to the rule's characteristic degree.
//
// The input slice is copied; the caller may reuse it freely afterwards.
//
// Complexity: O(k) time and memory for k coefficients.
func NewRule(coeffs []float64, open bool) (Rule, error) {
	if len(coeffs) == 0 {
		return Rule{}, ErrNoCoefficients
	}
	if !open && len(coeffs) < 2 {
		return Rule{}, ErrDegenerateRule
	}

	var sum float64
	for _, c := range coeffs {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return Rule{}, ErrNonFiniteCoefficient
		}
		sum += c
	}
	if math.Abs(sum) < weightSumTol {
		return Rule{}, ErrZeroWeightSum
	}

	own := make([]float64, len(coeffs))
	copy(own, coeffs)

	return Rule{coeffs: own, sum: sum, open: open}, nil
}

// MustRule is NewRule that panics on invalid input.  Reserved for
// compile-time-constant coefficient vectors (the built-in catalog);
// user-supplied coefficients should go through NewRule.
func MustRule(coeffs []float64, open bool) Rule {
	r, err := NewRule(coeffs, open)
	if err != nil {
		panic(err)
	}
	return r
}

// Apply estimates ∫f over the single interval [a,b].
//
// Pure and stateless: the same (f, a, b) always yields the same result, and
// concurrent Apply calls on one Rule need no synchronization.  a > b yields
// the negated estimate; a == b yields exactly 0 for any finite integrand.
// Non-finite values returned by f propagate into the result untouched.
//
// Applying the zero Rule value returns NaN; Integrate rejects it up front,
// direct callers are expected to construct rules via NewRule.
func (r Rule) Apply(f Integrand, a, b float64) float64 {
	ord := r.order()
	h := (b - a) / float64(ord)

	first := 0
	if r.open {
		first = 1
	}

	var acc float64
	for i, c := range r.coeffs {
		idx := first + i
		x := a + float64(idx)*h
		if idx == ord {
			// Pin the final closed point to b exactly, immune to FP drift in h.
			x = b
		}
		acc += c * f.Eval(x)
	}

	return (b - a) / r.sum * acc
}

// Coefficients returns a copy of the rule's coefficient vector.
func (r Rule) Coefficients() []float64 {
	out := make([]float64, len(r.coeffs))
	copy(out, r.coeffs)
	return out
}

// Open reports whether the rule excludes the interval endpoints.
func (r Rule) Open() bool { return r.open }

// PointCount returns the number of function evaluations per Apply,
// i.e. the length of the coefficient vector.
func (r Rule) PointCount() int { return len(r.coeffs) }

// Order returns the lattice order n of the rule: the number of equal steps
// the interval is divided into when placing evaluation points.  Closed rules
// have n = k-1 for k coefficients; open rules have n = k+1.
func (r Rule) Order() int { return r.order() }

// Name returns the catalog name of a built-in rule, or "" for a rule built
// with NewRule.
func (r Rule) Name() string { return r.name }

// String renders the rule for logs and test failure messages.
func (r Rule) String() string {
	kind := "closed"
	if r.open {
		kind = "open"
	}
	name := r.name
	if name == "" {
		name = "newton-cotes"
	}
	return fmt.Sprintf("%s (%s, %d points)", name, kind, len(r.coeffs))
}

func (r Rule) order() int {
	if r.open {
		return len(r.coeffs) + 1
	}
	return len(r.coeffs) - 1
}
