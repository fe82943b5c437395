package quad

import "errors"

var (
	// ErrNoCoefficients indicates an empty coefficient vector (or the zero Rule value).
	ErrNoCoefficients = errors.New("quad: coefficient vector must be non-empty")

	// ErrZeroWeightSum indicates coefficients summing to zero, which would make
	// the normalization factor undefined.
	ErrZeroWeightSum = errors.New("quad: coefficient sum must be non-zero")

	// ErrNonFiniteCoefficient indicates a NaN or ±Inf coefficient.
	ErrNonFiniteCoefficient = errors.New("quad: coefficients must be finite")

	// ErrDegenerateRule indicates a closed rule with a single coefficient;
	// its point lattice has zero spacing and no valid order.
	ErrDegenerateRule = errors.New("quad: closed rule requires at least two coefficients")

	// ErrNilIntegrand indicates a nil function passed to the composite driver.
	ErrNilIntegrand = errors.New("quad: integrand must be non-nil")

	// ErrNonPositivePanels indicates a panel count below 1 passed to Integrate.
	ErrNonPositivePanels = errors.New("quad: panel count must be at least 1")

	// ErrUnknownRule indicates a catalog lookup for a name that is not registered.
	ErrUnknownRule = errors.New("quad: unknown rule name")
)
