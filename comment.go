// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jsonc

import (
	"strings"

	"go4.org/mem"
)

// CommentKind describes which comment syntaxes contributed to a comment run.
type CommentKind byte

// Constants defining the valid CommentKind values.
const (
	Inline CommentKind = 1 + iota // only line comments: // ... <LF>
	Block                         // only block comments: /* ... */
	Mixed                         // both line and block comments
)

var commentKindStr = [...]string{
	Inline: "inline",
	Block:  "block",
	Mixed:  "mixed",
}

func (k CommentKind) String() string {
	if int(k) >= len(commentKindStr) || commentKindStr[k] == "" {
		return "invalid"
	}
	return commentKindStr[k]
}

// A Comment is a run of one or more consecutive comments, separated only by
// whitespace, merged into a single record.
//
// Text is the inner text of each comment, without its delimiters, joined by
// newlines in source order. The newline terminating a line comment is not
// part of its text.
type Comment struct {
	Kind CommentKind
	Text string
}

// merge returns a comment whose text is the text of c followed by the text of
// next. Either may be nil. Neither input is modified.
func (c *Comment) merge(next *Comment) *Comment {
	if c == nil {
		return next
	} else if next == nil {
		return c
	}
	kind := c.Kind
	if kind != next.Kind {
		kind = Mixed
	}
	return &Comment{Kind: kind, Text: c.Text + "\n" + next.Text}
}

var (
	lineStart  = mem.S("//")
	blockStart = mem.S("/*")
	blockEnd   = mem.S("*/")
)

// extractComments skips whitespace at pos, then consumes a run of zero or
// more comments separated by whitespace, and reports the offset following
// the run and any whitespace after it.
//
// If no comments were found, it returns ctx unchanged. Otherwise the comments
// of the run are merged and appended to ctx (which may be nil).
func extractComments(input mem.RO, pos int, ctx *Comment) (*Comment, int, error) {
	pos = skipSpace(input, pos)

	var texts []string
	var inline, block bool
	for {
		rest := input.SliceFrom(pos)
		if mem.HasPrefix(rest, lineStart) {
			body := rest.SliceFrom(lineStart.Len())
			i := mem.IndexByte(body, '\n')
			if i < 0 {
				texts = append(texts, body.StringCopy())
				pos = input.Len()
			} else {
				texts = append(texts, body.SliceTo(i).StringCopy())
				pos += lineStart.Len() + i + 1
			}
			inline = true
		} else if mem.HasPrefix(rest, blockStart) {
			body := rest.SliceFrom(blockStart.Len())
			i := mem.Index(body, blockEnd)
			if i < 0 {
				return nil, pos, syntaxError(input, pos, ErrUnterminatedComment, "", "")
			}
			texts = append(texts, body.SliceTo(i).StringCopy())
			pos += blockStart.Len() + i + blockEnd.Len()
			block = true
		} else {
			break
		}
		pos = skipSpace(input, pos)
	}
	if len(texts) == 0 {
		return ctx, pos, nil
	}

	run := &Comment{Kind: Inline, Text: strings.Join(texts, "\n")}
	if inline && block {
		run.Kind = Mixed
	} else if block {
		run.Kind = Block
	}
	return ctx.merge(run), pos, nil
}

// skipSpace returns the offset of the first non-whitespace byte of input at
// or after pos, or input.Len() if there is none.
func skipSpace(input mem.RO, pos int) int {
	for pos < input.Len() && isSpace(input.At(pos)) {
		pos++
	}
	return pos
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}
