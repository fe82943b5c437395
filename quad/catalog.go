package quad

import "sort"

// Built-in Newton-Cotes rules.  Data, not logic: each entry is produced by
// the same generator exposed through NewRule, with coefficient vectors taken
// from published Newton-Cotes tables.  They double as the reference set the
// tests validate the generator against.
var (
	// Midpoint is the degenerate open rule: one interior point at (a+b)/2.
	// Exact through degree 1.
	Midpoint = named("midpoint", []float64{1}, true)

	// Trapezoid is the 2-point closed rule. Exact through degree 1.
	Trapezoid = named("trapezoid", []float64{1, 1}, false)

	// Simpson is the 3-point closed rule. Exact through degree 3.
	Simpson = named("simpson", []float64{1, 4, 1}, false)

	// Simpson38 is the 4-point closed rule (Simpson's 3/8). Exact through degree 3.
	Simpson38 = named("simpson38", []float64{1, 3, 3, 1}, false)

	// Boole is the 5-point closed rule. Exact through degree 5.
	Boole = named("boole", []float64{7, 32, 12, 32, 7}, false)

	// Milne is the 3-point open rule. Exact through degree 3.
	// Note the negative middle weight; open rules of this order have them.
	Milne = named("milne", []float64{2, -1, 2}, true)
)

var catalog = map[string]Rule{
	"midpoint":  Midpoint,
	"trapezoid": Trapezoid,
	"simpson":   Simpson,
	"simpson38": Simpson38,
	"boole":     Boole,
	"milne":     Milne,
}

// named builds a catalog rule; coefficient vectors above are trusted
// constants, so MustRule's panic path is unreachable here.
func named(name string, coeffs []float64, open bool) Rule {
	r := MustRule(coeffs, open)
	r.name = name
	return r
}

// Lookup returns the built-in rule registered under name, or ErrUnknownRule.
// Names are lowercase; see Names for the full set.
func Lookup(name string) (Rule, error) {
	r, ok := catalog[name]
	if !ok {
		return Rule{}, ErrUnknownRule
	}
	return r, nil
}

// Names returns the catalog rule names in sorted order, for deterministic
// iteration by callers and examples.
func Names() []string {
	out := make([]string, 0, len(catalog))
	for name := range catalog {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
