// Package predicate implements combinable one-argument predicates. A
// Predicate is a plain function type, so any func(T) bool converts to one
// and picks up the And, Or, Negate and Xor combinators. Combinators never
// modify their operands; each returns a new Predicate.
package predicate

import (
	"github.com/pkg/errors"
)

// Predicate represents a predicate on a T
type Predicate[T any] func(T) bool

// Condition is the type-erased view of a Predicate. Filtering engines
// that only know their values at runtime (like table.Table) consume
// Conditions.
type Condition interface {
	Check(v interface{}) (bool, error)
	IsSatisfiedBy(v interface{}) bool
}

// And returns p1 && p2. p2 is not evaluated when p1 is false.
func (p1 Predicate[T]) And(p2 Predicate[T]) Predicate[T] {
	return func(x T) bool {
		return p1(x) && p2(x)
	}
}

// Or returns p1 || p2. p2 is not evaluated when p1 is true.
func (p1 Predicate[T]) Or(p2 Predicate[T]) Predicate[T] {
	return func(x T) bool {
		return p1(x) || p2(x)
	}
}

// Negate returns Not(p1)
func (p1 Predicate[T]) Negate() Predicate[T] {
	return func(x T) bool {
		return !p1(x)
	}
}

// Xor returns (p1 && !p2) || (!p1 && p2). It is built out of And, Or
// and Negate rather than a boolean !=.
func (p1 Predicate[T]) Xor(p2 Predicate[T]) Predicate[T] {
	return p1.And(p2.Negate()).Or(p1.Negate().And(p2))
}

// IsSatisfiedBy returns true if v satisfies the predicate, false otherwise.
// Values that are not a T never satisfy it.
func (p1 Predicate[T]) IsSatisfiedBy(v interface{}) bool {
	x, ok := v.(T)
	if !ok {
		return false
	}
	return p1(x)
}

// Check is IsSatisfiedBy, except that a v that is not a T is reported as
// an error instead of as false.
func (p1 Predicate[T]) Check(v interface{}) (bool, error) {
	x, ok := v.(T)
	if !ok {
		var zero T
		return false, errors.Errorf("cannot evaluate a %T predicate on %v (%T)", zero, v, v)
	}
	return p1(x), nil
}

var _ = Condition(Predicate[int](nil))

// True returns a predicate that is satisfied by every value.
func True[T any]() Predicate[T] {
	return func(T) bool {
		return true
	}
}

// False returns a predicate that is never satisfied.
func False[T any]() Predicate[T] {
	return func(T) bool {
		return false
	}
}

// All returns the conjunction of ps, evaluated left to right. All() is True.
func All[T any](ps ...Predicate[T]) Predicate[T] {
	p := True[T]()
	for i, q := range ps {
		if i == 0 {
			p = q
			continue
		}
		p = p.And(q)
	}
	return p
}

// Any returns the disjunction of ps, evaluated left to right. Any() is False.
func Any[T any](ps ...Predicate[T]) Predicate[T] {
	p := False[T]()
	for i, q := range ps {
		if i == 0 {
			p = q
			continue
		}
		p = p.Or(q)
	}
	return p
}

// On returns a predicate on T that is satisfied by x when p is satisfied
// by f(x). It lets a predicate over one representation (e.g. a decimal)
// filter values stored in another (e.g. a float64).
func On[T any, U any](f func(T) U, p Predicate[U]) Predicate[T] {
	return func(x T) bool {
		return p(f(x))
	}
}
