package strcursor

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// GraphemeSpanner counts how many grapheme clusters have been passed
// over. Cluster boundaries depend on neighboring runes, so the spanner
// keeps the raw bytes of the uncommitted highlight around and only
// folds them into the committed count on Validate. The pending buffer
// is bounded by the highlight and freed on Validate, like the saved
// columns of RowColSpanner.
type GraphemeSpanner struct {
	committed int
	pending   []byte
}

func (sp *GraphemeSpanner) Forward(r rune) {
	sp.pending = utf8.AppendRune(sp.pending, r)
}

func (sp *GraphemeSpanner) Backward(r rune) {
	sp.pending = sp.pending[:len(sp.pending)-utf8.RuneLen(r)]
}

func (sp *GraphemeSpanner) ForwardString(s string) {
	sp.pending = append(sp.pending, s...)
}

func (sp *GraphemeSpanner) Validate() {
	sp.committed += uniseg.GraphemeClusterCount(string(sp.pending))
	sp.pending = sp.pending[:0]
}

func (sp *GraphemeSpanner) Clone() *GraphemeSpanner {
	return &GraphemeSpanner{
		committed: sp.committed,
		pending:   append([]byte(nil), sp.pending...),
	}
}

// Graphemes returns the number of grapheme clusters passed so far. A
// cluster straddling a validation point is counted once on each side.
func (sp *GraphemeSpanner) Graphemes() int {
	return sp.committed + uniseg.GraphemeClusterCount(string(sp.pending))
}
