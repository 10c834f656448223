/*
Package are provides named predicate factories for filtering table rows by
column value. The package is named so that filters read as sentences:

	t.Where("Waists", are.Float64.Above(38))
	t.Where("Sizes", are.Text.Containing("L"))

Factories come in two families. A Comparison family holds the order-based
factories (EqualTo, Above, Between, ...) for one type; a Containment family
holds the substring factories (Containing, ContainedIn) and glob matching
for one string-like type. Every factory returns a predicate.Predicate, so
results combine:

	are.Float64.Above(30).And(are.Float64.NotEqualTo(38))
	are.Text.Containing("L").Xor(are.Text.ContainedIn("MXL"))

Equality on floating-point values is forgiving: x is equal to y when x is y
or one of x's adjacent representable values is y (see NearlyEqual). The
non-strict comparisons OR this in, so a sum that lands a hair below 0.3 is
still AboveOrEqualTo(0.3). Between forgives only its lower bound.

Families are also registries keyed by snake_case names (equal_to,
not_above, between_or_equal_to, containing, ...), which is how the are
command selects a factory from its arguments.
*/
package are
