// Package accuracy defines the sweep result types.
package accuracy

// Sample records one composite integration run within a sweep.
type Sample struct {
	// N is the panel count passed to quad.Integrate.
	N int

	// Estimate is the composite integral estimate at N panels.
	Estimate float64

	// AbsError is |Estimate - exact|.  NaN when the integrand produced a
	// non-finite value anywhere in the partition.
	AbsError float64
}

// Report is the outcome of a Sweep: per-panel-count samples against one rule
// and one known integral, in the order the panel series was given.
type Report struct {
	// RuleName is the catalog name of the swept rule, or "" for a generated one.
	RuleName string

	// Exact is the reference value the errors are measured against.
	Exact float64

	// Samples holds one entry per requested panel count.
	Samples []Sample
}
