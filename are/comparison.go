package are

import (
	"cmp"
	"sort"

	"github.com/puppetlabs/are/predicate"
)

// Unary constructs a predicate from a single operand.
type Unary[T any] func(y T) predicate.Predicate[T]

// Binary constructs a predicate from a pair of operands.
type Binary[T any] func(y, z T) predicate.Predicate[T]

// Negated returns the factory whose predicates are the negation of f's.
func (f Unary[T]) Negated() Unary[T] {
	return func(y T) predicate.Predicate[T] {
		return f(y).Negate()
	}
}

// Negated returns the factory whose predicates are the negation of f's.
func (f Binary[T]) Negated() Binary[T] {
	return func(y, z T) predicate.Predicate[T] {
		return f(y, z).Negate()
	}
}

/*
Comparison is the family of order-based predicate factories over T. Each
predicate is evaluated on a candidate value x.

The four strict/non-strict negations are not built with Negated. NotAbove
is the BelowOrEqualTo factory itself (not a copy of it), NotBelow is
AboveOrEqualTo, NotBelowOrEqualTo is Above and NotAboveOrEqualTo is Below.
The named lookup returns the same values.
*/
type Comparison[T any] struct {
	// EqualTo(y) is x == y, under the family's near-equality
	EqualTo Unary[T]
	// Above(y) is x > y
	Above Unary[T]
	// Below(y) is x < y
	Below Unary[T]
	// AboveOrEqualTo(y) is x >= y or x near-equal to y
	AboveOrEqualTo Unary[T]
	// BelowOrEqualTo(y) is x <= y or x near-equal to y
	BelowOrEqualTo Unary[T]
	// StrictlyBetween(y, z) is y < x < z
	StrictlyBetween Binary[T]
	// Between(y, z) is y <= x < z or x near-equal to y. z is never forgiven.
	Between Binary[T]
	// BetweenOrEqualTo(y, z) is y <= x <= z or x near-equal to y or z
	BetweenOrEqualTo Binary[T]

	NotEqualTo          Unary[T]
	NotAbove            Unary[T]
	NotBelow            Unary[T]
	NotBelowOrEqualTo   Unary[T]
	NotAboveOrEqualTo   Unary[T]
	NotStrictlyBetween  Binary[T]
	NotBetween          Binary[T]
	NotBetweenOrEqualTo Binary[T]

	unary  map[string]Unary[T]
	binary map[string]Binary[T]
}

// OrderedOf returns a new Comparison family over one of Go's ordered types.
// Equality uses NearlyEqual, so floating-point kinds are forgiven a one ULP
// difference.
func OrderedOf[T cmp.Ordered]() *Comparison[T] {
	return newComparison(
		func(x, y T) bool { return x < y },
		func(x, y T) bool { return x == y },
		NearlyEqual[T],
	)
}

// ComparisonOf returns a new Comparison family over T, ordered by less.
// equal must be the equality consistent with less; it doubles as the
// family's near-equality.
func ComparisonOf[T any](less func(x, y T) bool, equal func(x, y T) bool) *Comparison[T] {
	return newComparison(less, equal, equal)
}

func newComparison[T any](less, equal, near func(x, y T) bool) *Comparison[T] {
	lessOrEqual := func(x, y T) bool {
		return less(x, y) || equal(x, y)
	}

	c := &Comparison[T]{}
	c.EqualTo = func(y T) predicate.Predicate[T] {
		return func(x T) bool {
			return near(x, y)
		}
	}
	c.Above = func(y T) predicate.Predicate[T] {
		return func(x T) bool {
			return less(y, x)
		}
	}
	c.Below = func(y T) predicate.Predicate[T] {
		return func(x T) bool {
			return less(x, y)
		}
	}
	c.AboveOrEqualTo = func(y T) predicate.Predicate[T] {
		return func(x T) bool {
			return lessOrEqual(y, x) || near(x, y)
		}
	}
	c.BelowOrEqualTo = func(y T) predicate.Predicate[T] {
		return func(x T) bool {
			return lessOrEqual(x, y) || near(x, y)
		}
	}
	c.StrictlyBetween = func(y, z T) predicate.Predicate[T] {
		return func(x T) bool {
			return less(y, x) && less(x, z)
		}
	}
	c.Between = func(y, z T) predicate.Predicate[T] {
		return func(x T) bool {
			return (lessOrEqual(y, x) && less(x, z)) || near(x, y)
		}
	}
	c.BetweenOrEqualTo = func(y, z T) predicate.Predicate[T] {
		return func(x T) bool {
			return (lessOrEqual(y, x) && lessOrEqual(x, z)) || near(x, y) || near(x, z)
		}
	}

	c.NotEqualTo = c.EqualTo.Negated()
	c.NotAbove = c.BelowOrEqualTo
	c.NotBelow = c.AboveOrEqualTo
	c.NotBelowOrEqualTo = c.Above
	c.NotAboveOrEqualTo = c.Below
	c.NotStrictlyBetween = c.StrictlyBetween.Negated()
	c.NotBetween = c.Between.Negated()
	c.NotBetweenOrEqualTo = c.BetweenOrEqualTo.Negated()

	c.unary = map[string]Unary[T]{
		EqualToName:           c.EqualTo,
		NotEqualToName:        c.NotEqualTo,
		AboveName:             c.Above,
		BelowName:             c.Below,
		AboveOrEqualToName:    c.AboveOrEqualTo,
		BelowOrEqualToName:    c.BelowOrEqualTo,
		NotAboveName:          c.NotAbove,
		NotBelowName:          c.NotBelow,
		NotBelowOrEqualToName: c.NotBelowOrEqualTo,
		NotAboveOrEqualToName: c.NotAboveOrEqualTo,
	}
	c.binary = map[string]Binary[T]{
		StrictlyBetweenName:     c.StrictlyBetween,
		BetweenName:             c.Between,
		BetweenOrEqualToName:    c.BetweenOrEqualTo,
		NotStrictlyBetweenName:  c.NotStrictlyBetween,
		NotBetweenName:          c.NotBetween,
		NotBetweenOrEqualToName: c.NotBetweenOrEqualTo,
	}
	return c
}

// Unary returns the single-operand factory registered under name.
func (c *Comparison[T]) Unary(name string) (Unary[T], bool) {
	f, ok := c.unary[name]
	return f, ok
}

// Binary returns the two-operand factory registered under name.
func (c *Comparison[T]) Binary(name string) (Binary[T], bool) {
	f, ok := c.binary[name]
	return f, ok
}

// UnaryNames returns the sorted names of c's single-operand factories.
func (c *Comparison[T]) UnaryNames() []string {
	return sortedKeys(c.unary)
}

// BinaryNames returns the sorted names of c's two-operand factories.
func (c *Comparison[T]) BinaryNames() []string {
	return sortedKeys(c.binary)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
