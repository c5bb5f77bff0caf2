// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jsonc

import (
	"fmt"
	"io"

	"go4.org/mem"
)

// maxDepth is the maximum nesting depth of containers parsed by the
// recursive-descent parser. It matches the limit of the native decoder.
const maxDepth = 10000

// Parse parses a single JSONC value from input. The input may contain line
// (//) and block (/* */) comments wherever whitespace is allowed, and a
// trailing comma after the last element of an array or object. Comments
// after the value are discarded; any other content after the value is
// reported as an error wrapping [ErrTrailingContent].
//
// If parsing fails, the error has concrete type [*SyntaxError].
func Parse(input string) (Value, error) { return parseInput(mem.S(input), true) }

// ParseBytes is as Parse, but reads its input from a byte slice.
// The result does not retain data.
func ParseBytes(data []byte) (Value, error) { return parseInput(mem.B(data), true) }

// ParseReader reads all of r and parses it as Parse does. Errors reading r
// are returned without modification.
func ParseReader(r io.Reader) (Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseBytes(data)
}

// MustParse is as Parse, but panics if parsing fails. It is intended for use
// in tests and for initializing package variables from constant text.
func MustParse(input string) Value {
	v, err := Parse(input)
	if err != nil {
		panic(fmt.Sprintf("jsonc: parsing %q: %v", input, err))
	}
	return v
}

func parseInput(input mem.RO, fast bool) (Value, error) {
	p := &parser{input: input, fast: fast}
	v, pos, err := p.parseValue(0, nil, 0)
	if err != nil {
		return nil, err
	}

	// Trailing comments are skipped and not attached to anything.
	_, pos, err = extractComments(input, pos, nil)
	if err != nil {
		return nil, err
	} else if pos < input.Len() {
		end := tokenEnd(input, pos)
		return nil, &SyntaxError{
			Offset:   pos,
			Location: lineColAt(input, pos),
			Text:     input.Slice(pos, end).StringCopy(),
			Message:  fmt.Sprintf("unexpected trailing content after %v", v.Kind()),
			err:      ErrTrailingContent,
		}
	}
	return v, nil
}

// A parser holds the state of a single call to Parse.
type parser struct {
	input mem.RO
	fast  bool // use the native decoder for spans without JSONC features

	ends map[int]int   // open bracket offset → span end, populated by spanEnd
	fi   *featureIndex // populated on first use

	nativeCalls int // number of spans offered to the native decoder
}

// spanEnd reports the end offset of the container at pos. The first call for
// a container walks it in full and records the ends of all the containers
// nested inside it, so that later calls for those are answered directly.
func (p *parser) spanEnd(pos int) (int, error) {
	if end, ok := p.ends[pos]; ok {
		return end, nil
	}
	if p.ends == nil {
		p.ends = make(map[int]int)
	}
	return scanSpan(p.input, pos, p.ends)
}

// hasFeatures reports whether input[start:end] contains JSONC features.
func (p *parser) hasFeatures(start, end int) bool {
	if p.fi == nil {
		p.fi = newFeatureIndex(p.input)
	}
	return p.fi.contains(start, end)
}

// peek returns the byte at pos, or 0 if pos is at or past the end of input.
func (p *parser) peek(pos int) byte {
	if pos < p.input.Len() {
		return p.input.At(pos)
	}
	return 0
}

// fail constructs a syntax error at pos. If the error concerns a token, its
// text is the bare token at pos.
func (p *parser) fail(pos int, sentinel error, withText bool, msg string, args ...any) error {
	var text string
	if withText {
		text = p.input.Slice(pos, tokenEnd(p.input, pos)).StringCopy()
	}
	return syntaxError(p.input, pos, sentinel, text, msg, args...)
}

// parseValue parses a single value of any type beginning at or after pos,
// including any comments that precede it. If ctx != nil, the leading comments
// are merged after it. It returns the value and the offset following it.
func (p *parser) parseValue(pos int, ctx *Comment, depth int) (Value, int, error) {
	com, pos, err := extractComments(p.input, pos, ctx)
	if err != nil {
		return nil, pos, err
	} else if pos >= p.input.Len() {
		return nil, pos, p.fail(pos, ErrUnexpectedEOF, false, "expected a value")
	}

	switch ch := p.input.At(pos); {
	case ch == '{' || ch == '[':
		if depth >= maxDepth {
			return nil, pos, p.fail(pos, ErrTooDeep, false, "exceeds %d levels", maxDepth)
		}
		end, err := p.spanEnd(pos)
		if err != nil {
			return nil, pos, err
		}
		if p.fast && !p.hasFeatures(pos, end) {
			p.nativeCalls++
			if v, err := nativeParse(p.input.Slice(pos, end), com); err == nil {
				return v, end, nil
			}

			// The native decoder rejected the span. Parse it here, to report
			// the error precisely. Nothing inside the span has features, so
			// none of it is offered to the native decoder again.
			p.fast = false
			defer func() { p.fast = true }()
		}
		if ch == '{' {
			return p.parseObject(pos, com, depth)
		}
		return p.parseArray(pos, com, depth)

	case ch == '"':
		s, end, err := p.parseString(pos)
		if err != nil {
			return nil, pos, err
		}
		s.com = com
		return s, end, nil

	case isNumStart(ch):
		return p.parseNumber(pos, com)

	default:
		return p.parseKeyword(pos, com)
	}
}

// parseArray parses an array whose open bracket is at pos.
// The span of the array is known to be bracket-balanced.
func (p *parser) parseArray(pos int, com *Comment, depth int) (Value, int, error) {
	arr := &Array{com: com}
	pos++ // skip "["

	var carry *Comment // comments after the previous element
	for {
		lead, next, err := extractComments(p.input, pos, carry)
		if err != nil {
			return nil, next, err
		} else if p.peek(next) == ']' {
			return arr, next + 1, nil // dangling comments are discarded
		}
		v, next, err := p.parseValue(next, lead, depth+1)
		if err != nil {
			return nil, next, err
		}
		arr.Values = append(arr.Values, v)

		carry, pos, err = extractComments(p.input, next, nil)
		if err != nil {
			return nil, pos, err
		}
		switch p.peek(pos) {
		case ',':
			pos++
		case ']':
			return arr, pos + 1, nil
		default:
			return nil, pos, p.fail(pos, ErrExpectedCommaOrClose, true, `want "," or "]"`)
		}
	}
}

// parseObject parses an object whose open brace is at pos.
// The span of the object is known to be bracket-balanced.
func (p *parser) parseObject(pos int, com *Comment, depth int) (Value, int, error) {
	rec := &Record{com: com}
	pos++ // skip "{"

	var carry *Comment // comments after the previous member
	for {
		kcom, next, err := extractComments(p.input, pos, carry)
		if err != nil {
			return nil, next, err
		}
		switch p.peek(next) {
		case '}':
			return rec, next + 1, nil // dangling comments are discarded
		case '"':
			// OK, a key
		default:
			return nil, next, p.fail(next, ErrExpectedKey, true, "")
		}
		key, next, err := p.parseString(next)
		if err != nil {
			return nil, next, err
		}
		key.com = kcom

		vcom, next, err := extractComments(p.input, next, nil)
		if err != nil {
			return nil, next, err
		} else if p.peek(next) != ':' {
			return nil, next, p.fail(next, ErrExpectedColon, true, "after key %s", key.JSON())
		}
		v, next, err := p.parseValue(next+1, vcom, depth+1)
		if err != nil {
			return nil, next, err
		}
		rec.Entries = append(rec.Entries, &Entry{Key: key, Value: v})

		carry, pos, err = extractComments(p.input, next, nil)
		if err != nil {
			return nil, pos, err
		}
		switch p.peek(pos) {
		case ',':
			pos++
		case '}':
			return rec, pos + 1, nil
		default:
			return nil, pos, p.fail(pos, ErrExpectedCommaOrClose, true, `want "," or "}"`)
		}
	}
}

// parseString parses a string literal whose open quote is at pos.
// Escapes are decoded by the native decoder, so that strings decode the same
// way on either path.
func (p *parser) parseString(pos int) (*String, int, error) {
	end, err := quoteEnd(p.input, pos)
	if err != nil {
		return nil, pos, err
	}
	lit := p.input.Slice(pos, end)
	v, err := nativeParse(lit, nil)
	if err != nil {
		return nil, pos, syntaxError(p.input, pos, ErrInvalidString, lit.StringCopy(), "%v", err)
	}
	return v.(*String), end, nil
}

// parseNumber parses a number beginning at pos.
func (p *parser) parseNumber(pos int, com *Comment) (Value, int, error) {
	end := tokenEnd(p.input, pos)
	tok := p.input.Slice(pos, end)
	if !isNumber(tok) {
		return nil, pos, syntaxError(p.input, pos, ErrInvalidNumber, tok.StringCopy(), "%q", tok.StringCopy())
	}
	v, err := nativeParse(tok, com)
	if err != nil {
		return nil, pos, syntaxError(p.input, pos, ErrInvalidNumber, tok.StringCopy(), "%v", err)
	}
	return v, end, nil
}

var (
	trueWord  = mem.S("true")
	falseWord = mem.S("false")
	nullWord  = mem.S("null")
)

// parseKeyword parses one of the constants true, false, or null at pos.
func (p *parser) parseKeyword(pos int, com *Comment) (Value, int, error) {
	end := tokenEnd(p.input, pos)
	switch tok := p.input.Slice(pos, end); {
	case tok.Equal(trueWord):
		return &Bool{Value: true, com: com}, end, nil
	case tok.Equal(falseWord):
		return &Bool{Value: false, com: com}, end, nil
	case tok.Equal(nullWord):
		return &Null{com: com}, end, nil
	default:
		return nil, pos, syntaxError(p.input, pos, ErrInvalidKeyword, tok.StringCopy(), "%q", tok.StringCopy())
	}
}
