// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package jsonc implements a parser for JSON with comments and trailing
// commas (JSONC), producing a tree of values that records the comments of
// the input.
//
// # Parsing
//
// Call Parse to parse a single value from a string (or ParseBytes or
// ParseReader for other inputs):
//
//	v, err := jsonc.Parse(input)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// Apart from comments and trailing commas, the input must be standard JSON.
// Numbers are decoded as float64, and strings are decoded with the usual
// escape rules. The input may contain only one value; comments after the
// value are allowed and are ignored.
//
// In case of error, parsing stops and an error of concrete type
// *jsonc.SyntaxError is returned. The error wraps a sentinel that classifies
// it, for example:
//
//	if errors.Is(err, jsonc.ErrTrailingContent) {
//	   log.Print("Extra data after value")
//	}
//
// # Values
//
// The concrete type of a Value is one of *String, *Number, *Bool, *Null,
// *Array, or *Record. A Record retains its entries in source order, including
// entries with duplicate keys.
//
// # Comments
//
// Each value carries the comments that immediately precede it, and each
// record entry key carries the comments preceding the key. Consecutive
// comments separated only by whitespace are merged into a single Comment:
//
//	// one
//	/* two */
//	"value"
//
// gives the string "value" a comment with kind Mixed and text " one\n two ".
// Comments between an element and the comma after it are merged into the
// comments of the next element. Comments with nothing after them before the
// end of their container, or the end of the input, are discarded.
//
// # Performance
//
// A container whose text has no comments and no trailing commas is decoded
// by a standard JSON decoder, which is considerably faster than the parser
// needed for JSONC syntax. The result is the same either way.
package jsonc
