package element

import "strings"

// Ordering is the three-way result of one comparison.
type Ordering int

const (
	// Less means a orders strictly before b.
	Less Ordering = -1
	// Equal means a and b are equivalent under the domain's order.
	Equal Ordering = 0
	// Greater means a orders strictly after b.
	Greater Ordering = 1
)

// String returns "less", "equal", or "greater".
func (o Ordering) String() string {
	switch {
	case o < 0:
		return "less"
	case o > 0:
		return "greater"
	default:
		return "equal"
	}
}

// Comparator is the ordering capability: a stateless, total order bound
// to one Domain. Every comparison an algorithm performs routes through
// Compare; direct operator comparisons bypass instrumentation and are a
// correctness bug.
//
// Compare assumes both arguments belong to the comparator's domain;
// homogeneity is validated once at the run boundary (see Homogeneous),
// not on every call.
type Comparator interface {
	// Domain reports which element domain this comparator orders.
	Domain() Domain

	// Compare reports the relative order of a and b.
	Compare(a, b Value) Ordering
}

// ComparatorFor returns the natural comparator for d:
// numeric order for Ordinal, code-point order for Lexical.
// Unknown domains return nil; callers validate Domain first.
func ComparatorFor(d Domain) Comparator {
	switch d {
	case Ordinal:
		return ordinalComparator{}
	case Lexical:
		return lexicalComparator{}
	default:
		return nil
	}
}

// ordinalComparator orders numeric values by <, ==, >.
type ordinalComparator struct{}

func (ordinalComparator) Domain() Domain { return Ordinal }

func (ordinalComparator) Compare(a, b Value) Ordering {
	switch {
	case a.num < b.num:
		return Less
	case a.num > b.num:
		return Greater
	default:
		return Equal
	}
}

// lexicalComparator orders text values byte-wise, matching strings.Compare.
type lexicalComparator struct{}

func (lexicalComparator) Domain() Domain { return Lexical }

func (lexicalComparator) Compare(a, b Value) Ordering {
	return Ordering(strings.Compare(a.text, b.text))
}
