package accuracy

import "errors"

var (
	// ErrNoPanels indicates an empty panel-count series passed to Sweep.
	ErrNoPanels = errors.New("accuracy: panel series must be non-empty")

	// ErrBadSeries indicates a Doublings request with start < 1 or count < 1.
	ErrBadSeries = errors.New("accuracy: doubling series needs start >= 1 and count >= 1")

	// ErrOrderUndefined indicates a report without enough clean doubling pairs
	// to estimate a convergence order (too few samples, or errors already at
	// the floating-point noise floor).
	ErrOrderUndefined = errors.New("accuracy: observed order undefined for this report")
)
