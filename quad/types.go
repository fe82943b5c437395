// Package quad defines the integrand capability and the Rule value type.
package quad

// Integrand is the single capability the framework requires of the function
// being integrated: evaluation at a real argument.  Implementations must be
// side-effect free over the interval of interest; a reentrant Integrand may
// be shared by concurrent Integrate calls without locking.
type Integrand interface {
	Eval(x float64) float64
}

// Func adapts an ordinary function to the Integrand interface, in the spirit
// of http.HandlerFunc:
//
//	quad.Integrate(quad.Func(math.Sin), 0, math.Pi, 100, quad.Simpson)
type Func func(x float64) float64

// Eval calls f(x).
func (f Func) Eval(x float64) float64 { return f(x) }

// Rule is an immutable Newton-Cotes quadrature rule: a coefficient vector,
// an open/closed flag, and the precomputed coefficient sum used for
// normalization.  The zero value is not a valid rule; construct with NewRule,
// MustRule, or use a catalog rule.
//
// A Rule carries no mutable state, so a single value may be applied to any
// number of sub-intervals, from any number of goroutines, concurrently.
//
// Fields are unexported to keep the value immutable after construction;
// inspect it through Coefficients, Open, Order, PointCount and Name.
type Rule struct {
	name   string    // non-empty only for catalog rules
	coeffs []float64 // weights, never exposed directly
	sum    float64   // Σ coeffs, validated non-zero
	open   bool      // true ⇒ endpoints excluded from the lattice
}
