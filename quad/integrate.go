// Package quad - composite driver.
//
// Integrate is the only entry point that loops: it slices [a,b] into n equal
// panels and sums one Rule application per panel.  Design rules, mirrored
// throughout the package:
//   - Deterministic: breakpoints are direct functions of (a, b, n, i), never
//     accumulated, so growing n never moves an already-covered boundary, and
//     summation is fixed left-to-right for bit-level reproducibility.
//   - Strict sentinels: invalid arguments return errors from errors.go;
//     no panics on user input, no silent empty sums.
//   - No masking: NaN or ±Inf produced by the integrand taints the total and
//     is returned as-is, so callers can detect domain violations of f.
package quad

// Integrate estimates ∫f over [a,b] by applying r to each of n equal panels
// and summing the per-panel estimates left to right.
//
// Contracts:
//   - f must be non-nil (ErrNilIntegrand);
//   - n ≥ 1 (ErrNonPositivePanels) — n below 1 is rejected explicitly rather
//     than degenerating into a zero-iteration loop;
//   - r must be a constructed Rule (ErrNoCoefficients for the zero value).
//
// Guarantees:
//   - n == 1 is exactly one r.Apply(f, a, b), bit-for-bit;
//   - a == b yields 0 for every n and any finite integrand;
//   - swapping a and b negates the result;
//   - panel i spans [a + i·(b-a)/n, a + (i+1)·(b-a)/n], the panels are
//     disjoint and contiguous, and the final breakpoint is exactly b.
//
// Complexity: O(n · r.PointCount()) evaluations of f, O(1) extra memory.
func Integrate(f Integrand, a, b float64, n int, r Rule) (float64, error) {
	if f == nil {
		return 0, ErrNilIntegrand
	}
	if n < 1 {
		return 0, ErrNonPositivePanels
	}
	if len(r.coeffs) == 0 {
		return 0, ErrNoCoefficients
	}

	width := b - a

	var total float64
	lo := a
	for i := 1; i <= n; i++ {
		hi := a + float64(i)*width/float64(n)
		if i == n {
			// Final breakpoint is b by contract, not a rounded quotient.
			hi = b
		}
		total += r.Apply(f, lo, hi)
		lo = hi
	}

	return total, nil
}
