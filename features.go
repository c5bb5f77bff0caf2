// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jsonc

import (
	"iter"
	"sort"

	"go4.org/mem"
)

// HasFeatures reports whether text contains syntax that standard JSON does
// not permit: a comment marker ("//" or "/*") anywhere, or a comma followed
// only by whitespace and a closing "}" or "]".
//
// The check is purely textual, so a comment marker or a trailing comma inside
// a string literal also counts. A false positive only means a slower parse.
func HasFeatures(text string) bool { return hasFeatures(mem.S(text), 0, len(text)) }

// hasFeatures reports whether input[start:end] contains JSONC features, as
// described by HasFeatures.
func hasFeatures(input mem.RO, start, end int) bool {
	for range features(input.Slice(start, end)) {
		return true
	}
	return false
}

// features yields the [start, end) offsets of each JSONC feature in input, in
// order of increasing start offset. A comment marker spans its two bytes; a
// trailing comma spans from the comma to the closing bracket, inclusive.
func features(input mem.RO) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for i := 0; i < input.Len(); i++ {
			switch input.At(i) {
			case '/':
				if i+1 < input.Len() && (input.At(i+1) == '/' || input.At(i+1) == '*') {
					if !yield(i, i+2) {
						return
					}
				}
			case ',':
				j := skipSpace(input, i+1)
				if j < input.Len() && (input.At(j) == '}' || input.At(j) == ']') {
					if !yield(i, j+1) {
						return
					}
				}
			}
		}
	}
}

// A featureIndex records the locations of all the JSONC features of an input,
// so that the presence of a feature in any span can be checked without
// rescanning the span.
//
// The end offsets of the features are nondecreasing in their start offsets:
// no feature begins inside the whitespace run of a trailing comma.
type featureIndex struct {
	pos, end []int
}

func newFeatureIndex(input mem.RO) *featureIndex {
	fi := new(featureIndex)
	for pos, end := range features(input) {
		fi.pos = append(fi.pos, pos)
		fi.end = append(fi.end, end)
	}
	return fi
}

// contains reports whether some feature lies entirely within [start, end).
// Because end offsets are nondecreasing, it suffices to check the first
// feature beginning at or after start.
func (fi *featureIndex) contains(start, end int) bool {
	i := sort.SearchInts(fi.pos, start)
	return i < len(fi.pos) && fi.end[i] <= end
}
