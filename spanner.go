package strcursor

import (
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Spanner keeps track of a location in the input as the cursor passes
// over it. The cursor drives it in lockstep with head: Forward for
// every rune stepped over, Backward for every rune backtracked, and
// Validate when the highlight is validated.
//
// Backward is only ever called in direct response to a prior, matching
// Forward, so implementations may assume well-formed call sequences
// and need not validate their input.
type Spanner[S any] interface {
	// Forward accounts for one rune passed over by head.
	Forward(r rune)

	// Backward undoes the matching Forward call for r exactly.
	Backward(r rune)

	// ForwardString accounts for a contiguous run of runes at once. It
	// must be equivalent to calling Forward for every rune of s in
	// order, but may be cheaper.
	ForwardString(s string)

	// Validate is called when the highlight is validated. No Backward
	// call will ever reach back across the validated text, so any
	// backtracking support data can be discarded here.
	Validate()

	// Clone returns an independent copy.
	Clone() S
}

// NoOpSpanner is a spanner that does nothing, at zero cost.
type NoOpSpanner struct{}

func (sp *NoOpSpanner) Forward(_ rune)         {}
func (sp *NoOpSpanner) Backward(_ rune)        {}
func (sp *NoOpSpanner) ForwardString(_ string) {}
func (sp *NoOpSpanner) Validate()              {}
func (sp *NoOpSpanner) Clone() *NoOpSpanner    { return &NoOpSpanner{} }

// ByteSpanner counts how many bytes have been passed over.
type ByteSpanner struct {
	Bytes int
}

func (sp *ByteSpanner) Forward(r rune) {
	sp.Bytes += utf8.RuneLen(r)
}

func (sp *ByteSpanner) Backward(r rune) {
	sp.Bytes -= utf8.RuneLen(r)
}

func (sp *ByteSpanner) ForwardString(s string) {
	sp.Bytes += len(s)
}

func (sp *ByteSpanner) Validate() {}

func (sp *ByteSpanner) Clone() *ByteSpanner {
	return &ByteSpanner{Bytes: sp.Bytes}
}

// RuneSpanner counts how many runes have been passed over.
type RuneSpanner struct {
	Runes int
}

func (sp *RuneSpanner) Forward(_ rune) {
	sp.Runes++
}

func (sp *RuneSpanner) Backward(_ rune) {
	sp.Runes--
}

func (sp *RuneSpanner) ForwardString(s string) {
	sp.Runes += utf8.RuneCountInString(s)
}

func (sp *RuneSpanner) Validate() {}

func (sp *RuneSpanner) Clone() *RuneSpanner {
	return &RuneSpanner{Runes: sp.Runes}
}

// RowColSpanner keeps track of rows and columns. More expensive than
// the others: exact backtracking across newlines needs one saved
// column per newline currently inside the highlight.
//
// Col counts runes, not display cells; tabs, combining marks and wide
// characters all count as one. Control runes other than '\n' leave the
// position untouched.
type RowColSpanner struct {
	Row int
	Col int

	oldCols []int // saved columns, one per uncommitted newline
}

func (sp *RowColSpanner) Forward(r rune) {
	switch {
	case r == '\n':
		sp.oldCols = append(sp.oldCols, sp.Col)
		sp.Row++
		sp.Col = 0
	case unicode.IsControl(r):
	default:
		sp.Col++
	}
}

func (sp *RowColSpanner) Backward(r rune) {
	switch {
	case r == '\n':
		// a Backward without a matching Forward is a contract
		// violation, so the stack cannot be empty here
		sp.Row--
		sp.Col = sp.oldCols[len(sp.oldCols)-1]
		sp.oldCols = sp.oldCols[:len(sp.oldCols)-1]
	case unicode.IsControl(r):
	default:
		sp.Col--
	}
}

func (sp *RowColSpanner) ForwardString(s string) {
	for _, r := range s {
		sp.Forward(r)
	}
}

func (sp *RowColSpanner) Validate() {
	sp.oldCols = sp.oldCols[:0]
}

func (sp *RowColSpanner) Clone() *RowColSpanner {
	return &RowColSpanner{
		Row:     sp.Row,
		Col:     sp.Col,
		oldCols: append([]int(nil), sp.oldCols...),
	}
}

// WidthSpanner counts how many terminal cells the passed text would
// occupy, one rune at a time.
type WidthSpanner struct {
	Width int
}

func (sp *WidthSpanner) Forward(r rune) {
	sp.Width += runewidth.RuneWidth(r)
}

func (sp *WidthSpanner) Backward(r rune) {
	sp.Width -= runewidth.RuneWidth(r)
}

func (sp *WidthSpanner) ForwardString(s string) {
	// runewidth.StringWidth measures grapheme clusters, which would
	// diverge from the per-rune accounting Backward has to undo
	for _, r := range s {
		sp.Forward(r)
	}
}

func (sp *WidthSpanner) Validate() {}

func (sp *WidthSpanner) Clone() *WidthSpanner {
	return &WidthSpanner{Width: sp.Width}
}
