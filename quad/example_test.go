package quad_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/nquad/quad"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleRule_Apply
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Single-panel midpoint estimate of ∫sin over [0,π] (true value 2).
//	The rule evaluates sin once, at the true midpoint π/2, and scales by
//	the interval width: π·sin(π/2) = π.
//
// Complexity: O(1) — one function evaluation.
func ExampleRule_Apply() {
	est := quad.Midpoint.Apply(quad.Func(math.Sin), 0, math.Pi)
	fmt.Printf("%.4f\n", est)
	// Output:
	// 3.1416
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleNewRule
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Rebuild Simpson's rule from its raw coefficient vector [1, 4, 1] and
//	apply it to sin over [0,π]:
//	  (π-0)/6 · (sin(0) + 4·sin(π/2) + sin(π)) = π/6·4 ≈ 2.0944
//
// Any Newton-Cotes coefficient vector works the same way; the catalog
// entries are just pre-generated instances.
func ExampleNewRule() {
	r, err := quad.NewRule([]float64{1, 4, 1}, false)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%s: %.4f\n", r, r.Apply(quad.Func(math.Sin), 0, math.Pi))
	// Output:
	// newton-cotes (closed, 3 points): 2.0944
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleIntegrate
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Composite Simpson over 100 panels on ∫sin over [0,π]; the estimate
//	agrees with the true value 2 to well past four decimals.
//
// Complexity: O(n·k) evaluations — 100 panels × 3 points here.
func ExampleIntegrate() {
	est, err := quad.Integrate(quad.Func(math.Sin), 0, math.Pi, 100, quad.Simpson)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.4f\n", est)
	// Output:
	// 2.0000
}

// ExampleIntegrate_invalidPanels shows the fail-fast contract: a panel count
// below 1 is rejected explicitly, never treated as an empty sum.
func ExampleIntegrate_invalidPanels() {
	_, err := quad.Integrate(quad.Func(math.Sin), 0, math.Pi, 0, quad.Trapezoid)
	fmt.Println(err)
	// Output:
	// quad: panel count must be at least 1
}

// ExampleLookup resolves a built-in rule by name and inspects its lattice.
func ExampleLookup() {
	r, err := quad.Lookup("boole")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%s spans order %d with %d points\n", r.Name(), r.Order(), r.PointCount())
	// Output:
	// boole spans order 4 with 5 points
}
