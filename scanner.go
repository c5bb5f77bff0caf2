// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsonc

import "go4.org/mem"

// spanEnd reports the offset just past the end of the string, object, or
// array beginning at offset pos of input. It does not decode or validate the
// contents of the span.
func spanEnd(input mem.RO, pos int) (int, error) { return scanSpan(input, pos, nil) }

// scanSpan implements spanEnd. If ends != nil, the end offset of each
// container completed during the scan, including nested ones, is recorded in
// ends under the offset of its open bracket.
//
// Quoted strings and comments are skipped wholesale, so quotes and brackets
// inside them are never treated as structure.
func scanSpan(input mem.RO, pos int, ends map[int]int) (int, error) {
	if pos >= input.Len() {
		return 0, syntaxError(input, pos, ErrScan, "", "at end of input")
	}
	switch ch := input.At(pos); ch {
	case '"':
		return quoteEnd(input, pos)
	case '{', '[':
		// OK, handled below
	default:
		return 0, syntaxError(input, pos, ErrScan, string(ch), "got %q", ch)
	}

	var stk []int // offsets of unclosed brackets
	i := pos
	for i < input.Len() {
		switch ch := input.At(i); ch {
		case '"':
			end, err := quoteEnd(input, i)
			if err != nil {
				return 0, err
			}
			i = end
			continue

		case '/':
			end, ok, err := commentEnd(input, i)
			if err != nil {
				return 0, err
			} else if ok {
				i = end
				continue
			}

		case '{', '[':
			stk = append(stk, i)

		case '}', ']':
			top := stk[len(stk)-1]
			if want := closerFor(input.At(top)); ch != want {
				return 0, syntaxError(input, i, ErrMismatchedBracket, string(ch),
					"got %q, want %q", ch, want)
			}
			stk = stk[:len(stk)-1]
			if ends != nil {
				ends[top] = i + 1
			}
			if len(stk) == 0 {
				return i + 1, nil
			}
		}
		i++
	}
	return 0, syntaxError(input, input.Len(), ErrUnexpectedEOF, "",
		"unclosed %q at offset %d", input.At(stk[len(stk)-1]), stk[len(stk)-1])
}

// quoteEnd reports the offset just past the double quote that closes the
// string whose open quote is at pos. A backslash escapes the byte after it;
// no other escape processing is done.
func quoteEnd(input mem.RO, pos int) (int, error) {
	for i := pos + 1; i < input.Len(); i++ {
		switch input.At(i) {
		case '\\':
			i++ // skip the escaped byte
		case '"':
			return i + 1, nil
		}
	}
	return 0, syntaxError(input, input.Len(), ErrUnexpectedEOF, "",
		"unterminated string at offset %d", pos)
}

// commentEnd reports whether a comment begins at pos, and if so the offset
// just past its end. A line comment includes its terminating newline.
func commentEnd(input mem.RO, pos int) (int, bool, error) {
	rest := input.SliceFrom(pos)
	if mem.HasPrefix(rest, lineStart) {
		if i := mem.IndexByte(rest, '\n'); i >= 0 {
			return pos + i + 1, true, nil
		}
		return input.Len(), true, nil
	} else if mem.HasPrefix(rest, blockStart) {
		i := mem.Index(rest.SliceFrom(blockStart.Len()), blockEnd)
		if i < 0 {
			return 0, false, syntaxError(input, pos, ErrUnterminatedComment, "", "")
		}
		return pos + blockStart.Len() + i + blockEnd.Len(), true, nil
	}
	return 0, false, nil
}

func closerFor(open byte) byte {
	if open == '{' {
		return '}'
	}
	return ']'
}

// tokenEnd reports the offset just past the run of bytes at pos that are part
// of a bare token (a number or keyword). If no such byte is at pos, the token
// is the single rune at pos, so that the caller always has some text to
// report.
func tokenEnd(input mem.RO, pos int) int {
	i := pos
	for i < input.Len() && isTokenByte(input.At(i)) {
		i++
	}
	if i == pos && pos < input.Len() {
		_, n := mem.DecodeRune(input.SliceFrom(pos))
		i += max(n, 1)
	}
	return i
}

func isTokenByte(ch byte) bool {
	return isDigit(ch) || ch == '-' || ch == '+' || ch == '.' || ch == '_' ||
		('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

// isNumber reports whether tok matches the JSON number grammar:
//
//	number = [ "-" ] int [ frac ] [ exp ]
//	int    = "0" / digit1-9 *digit
//	frac   = "." 1*digit
//	exp    = ("e" / "E") [ "-" / "+" ] 1*digit
func isNumber(tok mem.RO) bool {
	i := 0
	if i < tok.Len() && tok.At(i) == '-' {
		i++
	}

	// Integer part: at least one digit, and no extra leading zeroes.
	// That is: 0.12 is OK, 01.2 is not.
	start := i
	i = skipDigits(tok, i)
	if i == start || (tok.At(start) == '0' && i-start > 1) {
		return false
	}

	// Optional fraction: a decimal point requires digits after it.
	if i < tok.Len() && tok.At(i) == '.' {
		start = i + 1
		if i = skipDigits(tok, start); i == start {
			return false
		}
	}

	// Optional exponent, with optional sign, requiring digits.
	if i < tok.Len() && (tok.At(i) == 'e' || tok.At(i) == 'E') {
		i++
		if i < tok.Len() && (tok.At(i) == '-' || tok.At(i) == '+') {
			i++
		}
		start = i
		if i = skipDigits(tok, start); i == start {
			return false
		}
	}
	return i == tok.Len()
}

func skipDigits(tok mem.RO, i int) int {
	for i < tok.Len() && isDigit(tok.At(i)) {
		i++
	}
	return i
}

// isNumStart reports whether ch can begin a numeric-looking token. This is
// wider than the JSON grammar, so that tokens like ".5" and "+1" are reported
// as invalid numbers rather than invalid keywords.
func isNumStart(ch byte) bool { return ch == '-' || ch == '+' || ch == '.' || isDigit(ch) }
func isDigit(ch byte) bool    { return '0' <= ch && ch <= '9' }

