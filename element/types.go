// Package element defines domains, tagged values, and the ordering
// capability used by every algoviz algorithm.
package element

import (
	"errors"
	"strconv"
)

// Sentinel errors for boundary validation.
var (
	// ErrMixedDomains is returned when a slice spans more than one domain.
	ErrMixedDomains = errors.New("element: values span more than one domain")

	// ErrDomainMismatch is returned when a value's domain does not match
	// the domain declared for the run.
	ErrDomainMismatch = errors.New("element: value domain does not match declared domain")

	// ErrUnknownDomain is returned for a Domain outside the declared set.
	ErrUnknownDomain = errors.New("element: unknown domain")
)

// Domain identifies the element kind of a run.
// A run is homogeneous: every value it touches shares one Domain.
type Domain int

const (
	// Ordinal elements are numeric and compare by numeric order.
	Ordinal Domain = iota

	// Lexical elements are text and compare by code-point order.
	Lexical
)

// String returns the lower-case domain name ("ordinal", "lexical").
func (d Domain) String() string {
	switch d {
	case Ordinal:
		return "ordinal"
	case Lexical:
		return "lexical"
	default:
		return "unknown"
	}
}

// Valid reports whether d is one of the declared domains.
func (d Domain) Valid() bool {
	return d == Ordinal || d == Lexical
}

// Value is a tagged variant holding one element of either domain.
// The zero Value is the Ordinal number 0.
//
// Value is a small immutable value type: copying a Value copies the
// element, so cloning a []Value slice is a full deep copy.
type Value struct {
	domain Domain
	num    float64
	text   string
}

// NewOrdinal wraps a numeric element.
func NewOrdinal(n float64) Value {
	return Value{domain: Ordinal, num: n}
}

// NewLexical wraps a text element.
func NewLexical(s string) Value {
	return Value{domain: Lexical, text: s}
}

// Domain reports which domain the value belongs to.
func (v Value) Domain() Domain { return v.domain }

// Num returns the numeric payload. Meaningful only for Ordinal values;
// for Lexical values it is always 0.
func (v Value) Num() float64 { return v.num }

// Text returns the text payload. Meaningful only for Lexical values;
// for Ordinal values it is always "".
func (v Value) Text() string { return v.text }

// String renders the payload for narration and debugging:
// Ordinal values use the shortest exact decimal form, Lexical values
// return the text verbatim.
func (v Value) String() string {
	if v.domain == Lexical {
		return v.text
	}

	return strconv.FormatFloat(v.num, 'g', -1, 64)
}
