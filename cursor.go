// Package strcursor contains objects to make scanning UTF-8 strings
// on a character basis easier.
//
// A Cursor can be viewed as a tape with two pointers on it, tail and
// head, delimiting the current highlight [tail, head). The head is free
// to move forward and backward within that window; once the tail has
// moved forward (by validating the highlight) it can never move back.
package strcursor

import (
	"unicode/utf8"

	"github.com/OCamlPro/str-cursor/internal/debug"
)

// Cursor is a cursor over an immutable string. It is parametrized by a
// Spanner type used to keep track of the position in the input.
// Different spanners count different positions, at different costs.
type Cursor[S Spanner[S]] struct {
	base            string // current view, from the last validated point to the end
	highlightLength int    // byte offset of head into base, always on a rune boundary

	// Tail and Head are the spanners for the two ends of the highlight.
	// They may be read at any time, e.g. to report a diagnostic location.
	Tail S
	Head S
}

// New creates a cursor over s with the zero-cost NoOpSpanner.
func New(s string) *Cursor[*NoOpSpanner] {
	return NewWithSpanner(s, &NoOpSpanner{})
}

// NewWithSpanner creates a cursor over s with the provided spanner.
func NewWithSpanner[S Spanner[S]](s string, sp S) *Cursor[S] {
	return &Cursor[S]{
		base: s,
		Tail: sp,
		Head: sp.Clone(),
	}
}

// HighlightEmpty returns true if the current highlight is empty.
func (c *Cursor[S]) HighlightEmpty() bool {
	return c.highlightLength == 0
}

// PostEmpty returns true if the post slice (everything after head) is
// empty.
func (c *Cursor[S]) PostEmpty() bool {
	return c.highlightLength == len(c.base)
}

// Highlight returns the current highlight. The returned string shares
// storage with the underlying buffer.
func (c *Cursor[S]) Highlight() string {
	return c.base[:c.highlightLength]
}

// Post returns the post slice, i.e. everything that head has not
// passed over yet.
func (c *Cursor[S]) Post() string {
	return c.base[c.highlightLength:]
}

// Peek returns the rune at head without consuming it. This method does
// NOT advance the cursor
func (c *Cursor[S]) Peek() (rune, bool) {
	r, w := utf8.DecodeRuneInString(c.Post())
	if w == 0 {
		return 0, false
	}
	return r, true
}

// Step advances head by one rune and returns it. It returns false if
// head is already at the end of the underlying string, in which case
// the cursor is left untouched.
func (c *Cursor[S]) Step() (rune, bool) {
	r, w := utf8.DecodeRuneInString(c.Post())
	if w == 0 {
		if debug.Enabled {
			debug.Printf("Cursor.Step: post is empty, false")
		}
		return 0, false
	}
	c.highlightLength += w
	c.Head.Forward(r)
	return r, true
}

// Unstep backtracks head by one rune and returns it. It returns false
// if head is already at tail, in which case the cursor is left
// untouched. This is the only backtracking primitive: head can never
// move before tail, because the highlight cannot have negative length.
func (c *Cursor[S]) Unstep() (rune, bool) {
	r, w := utf8.DecodeLastRuneInString(c.Highlight())
	if w == 0 {
		if debug.Enabled {
			debug.Printf("Cursor.Unstep: highlight is empty, false")
		}
		return 0, false
	}
	c.highlightLength -= w
	c.Head.Backward(r)
	return r, true
}

// StepUntil advances head until pat is found in the post slice, and
// returns everything that was passed over.
//
// The returned string is empty if the post slice matches pat at its
// very start. If pat is not found at all, head advances to the end of
// the underlying string and the whole post slice is returned.
func (c *Cursor[S]) StepUntil(pat Pattern) string {
	rem := c.Post()
	off := pat.Find(rem)
	if off < 0 {
		off = len(rem)
	}
	if debug.Enabled {
		debug.Printf("Cursor.StepUntil: match offset %d of %d", off, len(rem))
	}
	res := rem[:off]
	c.highlightLength += off
	c.Head.ForwardString(res)
	return res
}

// Validate the current highlight, bringing tail up to head. The
// validated prefix becomes permanently inaccessible to the cursor:
// no operation can backtrack across it afterwards.
func (c *Cursor[S]) Validate() {
	if debug.Enabled {
		debug.Printf("Cursor.Validate: discarding %d bytes", c.highlightLength)
		debug.Dump(c.Head)
	}
	c.base = c.base[c.highlightLength:]
	c.highlightLength = 0
	c.Head.Validate()
	c.Tail = c.Head.Clone()
}

// ThenValidate runs f on the current highlight and validates the
// highlight if f returns nil. If f returns an error the cursor is left
// byte-for-byte untouched, so a failed parse attempt can simply be
// retried with something else.
func (c *Cursor[S]) ThenValidate(f func(highlight string) error) error {
	if err := f(c.Highlight()); err != nil {
		return err
	}
	c.Validate()
	return nil
}
