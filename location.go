package jsonc

import (
	"fmt"

	"go4.org/mem"
)

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// lineColAt reports the line and column of byte offset pos in input.
// Offsets past the end of input are clamped to its length.
func lineColAt(input mem.RO, pos int) LineCol {
	pos = min(max(pos, 0), input.Len())
	lc := LineCol{Line: 1}
	head := input.SliceTo(pos)
	for {
		i := mem.IndexByte(head, '\n')
		if i < 0 {
			break
		}
		lc.Line++
		head = head.SliceFrom(i + 1)
	}
	lc.Column = head.Len()
	return lc
}
