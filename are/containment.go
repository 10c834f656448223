package are

import (
	"strings"

	"github.com/gobwas/glob"
	"github.com/puppetlabs/are/predicate"
)

// Textual is the constraint satisfied by string-like values that support
// substring containment.
type Textual interface {
	~string | ~[]byte
}

// Containment is the family of membership predicate factories over
// string-like values.
type Containment[T Textual] struct {
	// Containing(sub) is satisfied by the x that have sub as a substring
	Containing Unary[T]
	// ContainedIn(super) is satisfied by the x that are substrings of super
	ContainedIn Unary[T]
	// Matching(pattern) is satisfied by the x that match the glob pattern.
	// It panics if pattern does not compile; see CompileGlob.
	Matching Unary[T]

	NotContaining  Unary[T]
	NotContainedIn Unary[T]
	NotMatching    Unary[T]

	unary map[string]Unary[T]
}

// ContainmentOf returns a new Containment family over T.
func ContainmentOf[T Textual]() *Containment[T] {
	contains := func(s, sub T) bool {
		return strings.Contains(string(s), string(sub))
	}

	c := &Containment[T]{}
	c.Containing = func(sub T) predicate.Predicate[T] {
		return func(x T) bool {
			return contains(x, sub)
		}
	}
	c.ContainedIn = func(super T) predicate.Predicate[T] {
		return func(x T) bool {
			return contains(super, x)
		}
	}
	c.Matching = func(pattern T) predicate.Predicate[T] {
		g := glob.MustCompile(string(pattern))
		return func(x T) bool {
			return g.Match(string(x))
		}
	}

	c.NotContaining = c.Containing.Negated()
	c.NotContainedIn = c.ContainedIn.Negated()
	c.NotMatching = c.Matching.Negated()

	c.unary = map[string]Unary[T]{
		ContainingName:     c.Containing,
		ContainedInName:    c.ContainedIn,
		MatchingName:       c.Matching,
		NotContainingName:  c.NotContaining,
		NotContainedInName: c.NotContainedIn,
		NotMatchingName:    c.NotMatching,
	}
	return c
}

// Unary returns the factory registered under name.
func (c *Containment[T]) Unary(name string) (Unary[T], bool) {
	f, ok := c.unary[name]
	return f, ok
}

// Names returns the sorted names of c's factories.
func (c *Containment[T]) Names() []string {
	return sortedKeys(c.unary)
}

// CompileGlob reports whether pattern is a valid Matching pattern.
func CompileGlob(pattern string) error {
	_, err := glob.Compile(pattern)
	return err
}
