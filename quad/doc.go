// Package quad approximates definite integrals of one-dimensional real
// functions with composite Newton-Cotes quadrature rules.
//
// 🚀 What is quad?
//
//	A quadrature rule estimates ∫f over a single interval [a,b] from a
//	weighted sum of function values at evenly spaced points.  quad builds
//	such rules from plain coefficient vectors and applies them piecewise:
//	  • Rule       — immutable value: coefficients + open/closed flag
//	  • NewRule    — generator deriving a Rule from any coefficient vector
//	  • Integrate  — composite driver: n equal panels, rule summed over each
//	  • Catalog    — midpoint, trapezoid, Simpson, Simpson 3/8, Boole, Milne
//
// ✨ Key properties:
//   - rules and the driver are pure functions: no state between calls
//   - a == b yields exactly 0; swapped bounds negate the result
//   - NaN/Inf returned by the integrand propagate to the final sum
//   - invalid arguments (n < 1, empty or zero-sum coefficients) fail fast
//     with sentinel errors, never a silent zero
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/nquad/quad"
//
//	// built-in rule over 100 panels
//	est, err := quad.Integrate(quad.Func(math.Sin), 0, math.Pi, 100, quad.Simpson)
//
//	// or generate your own closed rule from Newton-Cotes coefficients
//	r, err := quad.NewRule([]float64{1, 4, 1}, false) // Simpson, again
//	one := r.Apply(quad.Func(math.Sin), 0, math.Pi)   // single-panel estimate
//
// Point placement contract (order n = panel count of the rule's lattice):
//
//	closed rule, k coefficients: n = k-1, points i·(b-a)/n for i = 0..n
//	open rule,   k coefficients: n = k+1, points i·(b-a)/n for i = 1..k
//
// so closed rules evaluate both endpoints and open rules evaluate only the
// interior lattice (midpoint is the degenerate open case: one coefficient,
// n = 2, a single evaluation at (a+b)/2).
//
// Complexity: Integrate is O(n·k) evaluations of f for n panels and k
// coefficients; memory is O(1) beyond the Rule itself.
//
// See examples in example_test.go and the convergence tooling in the
// accuracy package.
package quad
