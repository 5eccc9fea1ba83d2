package strcursor

import (
	"regexp"
	"strings"
)

// Pattern locates the first match of some criterion in a string. It is
// handed the entire post slice by Cursor.StepUntil, so implementations
// are free to look ahead over several runes (Literal and Regexp do).
//
// Find must return either -1 or a byte offset that falls on a rune
// boundary of s. The offsets produced by the strings index functions
// always do.
type Pattern interface {
	// Find returns the byte offset of the first match in s, or -1 if
	// there is none.
	Find(s string) int
}

// Rune matches a single rune.
type Rune rune

func (p Rune) Find(s string) int {
	return strings.IndexRune(s, rune(p))
}

// Literal matches an exact substring.
type Literal string

func (p Literal) Find(s string) int {
	return strings.Index(s, string(p))
}

// RuneSet matches any rune out of a set of candidates.
type RuneSet []rune

func (p RuneSet) Find(s string) int {
	return strings.IndexAny(s, string(p))
}

// MatchFunc matches any rune for which the function returns true. The
// function may keep mutable capture state between probes, but must be
// idempotent with respect to its final decision for a fixed input.
type MatchFunc func(r rune) bool

func (p MatchFunc) Find(s string) int {
	return strings.IndexFunc(s, p)
}

// Regexp matches a compiled regular expression.
type Regexp struct {
	*regexp.Regexp
}

func (p Regexp) Find(s string) int {
	loc := p.FindStringIndex(s)
	if loc == nil {
		return -1
	}
	return loc[0]
}
