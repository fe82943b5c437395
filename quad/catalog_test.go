package quad_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/nquad/quad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNames_SortedAndComplete pins the catalog surface: sorted, no extras.
func TestNames_SortedAndComplete(t *testing.T) {
	want := []string{"boole", "midpoint", "milne", "simpson", "simpson38", "trapezoid"}
	assert.Equal(t, want, quad.Names(), "catalog names must be complete and sorted")
}

// TestLookup_KnownNames verifies every advertised name resolves to a rule
// carrying that name.
func TestLookup_KnownNames(t *testing.T) {
	for _, name := range quad.Names() {
		r, err := quad.Lookup(name)
		require.NoError(t, err, "name %q must resolve", name)
		assert.Equal(t, name, r.Name(), "resolved rule must carry its catalog name")
	}
}

// TestLookup_Unknown verifies the sentinel for unregistered names.
func TestLookup_Unknown(t *testing.T) {
	_, err := quad.Lookup("gauss")
	assert.ErrorIs(t, err, quad.ErrUnknownRule, "unregistered name must error ErrUnknownRule")

	_, err = quad.Lookup("Simpson") // names are lowercase, no fuzzy matching
	assert.ErrorIs(t, err, quad.ErrUnknownRule, "lookup must be case-sensitive")
}

// TestCatalog_MatchesGenerator verifies catalog rules are plain products of
// NewRule: same coefficients, same flag, identical results.
func TestCatalog_MatchesGenerator(t *testing.T) {
	cases := []struct {
		rule   quad.Rule
		coeffs []float64
		open   bool
	}{
		{quad.Midpoint, []float64{1}, true},
		{quad.Trapezoid, []float64{1, 1}, false},
		{quad.Simpson, []float64{1, 4, 1}, false},
		{quad.Simpson38, []float64{1, 3, 3, 1}, false},
		{quad.Boole, []float64{7, 32, 12, 32, 7}, false},
		{quad.Milne, []float64{2, -1, 2}, true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.coeffs, tc.rule.Coefficients(), "%s: coefficient vector", tc.rule)
		assert.Equal(t, tc.open, tc.rule.Open(), "%s: open flag", tc.rule)

		gen, err := quad.NewRule(tc.coeffs, tc.open)
		require.NoError(t, err)
		assert.Equal(t, gen.Apply(sin, 0.2, 1.9), tc.rule.Apply(sin, 0.2, 1.9),
			"%s: catalog rule and generated rule must agree bit-for-bit", tc.rule)
	}
}

// TestCatalog_ClosedFormAgreement cross-checks trapezoid and Simpson against
// their independent textbook formulas on a transcendental integrand.
func TestCatalog_ClosedFormAgreement(t *testing.T) {
	f := func(x float64) float64 { return math.Exp(-x * x) }
	a, b := -0.5, 1.25
	m := a + (b-a)/2

	wantTrap := (b - a) / 2 * (f(a) + f(b))
	assert.InDelta(t, wantTrap, quad.Trapezoid.Apply(quad.Func(f), a, b), 1e-14,
		"trapezoid closed form")

	wantSimpson := (b - a) / 6 * (f(a) + 4*f(m) + f(b))
	assert.InDelta(t, wantSimpson, quad.Simpson.Apply(quad.Func(f), a, b), 1e-14,
		"simpson closed form")
}
