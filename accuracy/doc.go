// Package accuracy measures how composite quadrature estimates converge
// toward a known integral as the panel count grows.
//
// 🚀 What is accuracy?
//
//	Given an integrand with a known exact integral, accuracy runs
//	quad.Integrate across a series of panel counts and collects the
//	absolute error of every run:
//	  • Sweep          — one Report per (rule, panel series)
//	  • Doublings      — panel series n, 2n, 4n, … for order studies
//	  • ObservedOrder  — empirical convergence order from error halvings
//	  • FirstWithin    — smallest sampled n reaching a target tolerance
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/nquad/accuracy"
//	  "github.com/katalvlaran/nquad/quad"
//	)
//
//	rep, err := accuracy.Sweep(
//	  quad.Func(math.Sin), 0, math.Pi, 2, // ∫sin over [0,π] = 2
//	  quad.Simpson, accuracy.Doublings(1, 8),
//	)
//	order, _ := rep.ObservedOrder() // ≈ 4 for Simpson
//
// The harness is as pure as the driver underneath it: no state between
// sweeps, strict sentinel errors, and NaN errors are recorded, not masked.
//
// Complexity: a sweep costs the sum of its composite runs,
// O(Σ nᵢ · k) integrand evaluations for panel counts nᵢ and k rule points.
package accuracy
