// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jsonc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/creachadair/jsonc/internal/escape"
	"go4.org/mem"
)

// Kind identifies the type of a Value.
type Kind byte

// Constants defining the valid Kind values.
const (
	StringKind Kind = 1 + iota // a quoted string
	NumberKind                 // a number
	BoolKind                   // true or false
	NullKind                   // null
	ArrayKind                  // [ ... ]
	RecordKind                 // { ... }
)

var kindStr = [...]string{
	StringKind: "string",
	NumberKind: "number",
	BoolKind:   "boolean",
	NullKind:   "null",
	ArrayKind:  "array",
	RecordKind: "object",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) || kindStr[k] == "" {
		return "invalid"
	}
	return kindStr[k]
}

// A Value is a JSON value optionally annotated with the comment run that
// immediately precedes it in the source. The concrete type is one of *String,
// *Number, *Bool, *Null, *Array, or *Record.
type Value interface {
	// Kind reports the type of the value.
	Kind() Kind

	// Comment returns the comment preceding this value, or nil if there is
	// none.
	Comment() *Comment

	// JSON renders the value as standard JSON text, without comments.
	JSON() string
}

// A String is a string value.
type String struct {
	Value string

	com *Comment
}

func (s *String) Kind() Kind        { return StringKind }
func (s *String) Comment() *Comment { return s.com }
func (s *String) JSON() string      { return string(escape.Quote(mem.S(s.Value))) }
func (s *String) String() string    { return fmt.Sprintf("String(%q)", s.Value) }

// A Number is a numeric value. All JSON numbers are represented as float64.
type Number struct {
	Value float64

	com *Comment
}

func (n *Number) Kind() Kind        { return NumberKind }
func (n *Number) Comment() *Comment { return n.com }
func (n *Number) JSON() string      { return strconv.FormatFloat(n.Value, 'g', -1, 64) }
func (n *Number) String() string    { return "Number(" + n.JSON() + ")" }

// A Bool is a Boolean constant, true or false.
type Bool struct {
	Value bool

	com *Comment
}

func (b *Bool) Kind() Kind        { return BoolKind }
func (b *Bool) Comment() *Comment { return b.com }
func (b *Bool) JSON() string      { return strconv.FormatBool(b.Value) }
func (b *Bool) String() string    { return "Bool(" + b.JSON() + ")" }

// Null represents the null constant.
type Null struct {
	com *Comment
}

func (*Null) Kind() Kind          { return NullKind }
func (n *Null) Comment() *Comment { return n.com }
func (*Null) JSON() string        { return "null" }
func (*Null) String() string      { return "Null" }

// An Array is a sequence of values.
type Array struct {
	Values []Value

	com *Comment
}

func (a *Array) Kind() Kind        { return ArrayKind }
func (a *Array) Comment() *Comment { return a.com }

// Len reports the number of elements in a.
func (a *Array) Len() int { return len(a.Values) }

func (a *Array) JSON() string {
	if len(a.Values) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	sb.WriteString(a.Values[0].JSON())
	for _, elt := range a.Values[1:] {
		sb.WriteByte(',')
		sb.WriteString(elt.JSON())
	}
	sb.WriteByte(']')
	return sb.String()
}

func (a *Array) String() string { return fmt.Sprintf("Array(len=%d)", len(a.Values)) }

// An Entry is a single key-value pair belonging to a Record.
// The comment of Key is the comment preceding the key; the comment of Value is
// the comment between the key and the value.
type Entry struct {
	Key   *String
	Value Value
}

func (e *Entry) JSON() string { return e.Key.JSON() + ":" + e.Value.JSON() }

func (e *Entry) String() string { return fmt.Sprintf("Entry(key=%q)", e.Key.Value) }

// A Record is an object: a sequence of key-value entries in source order.
// Duplicate keys are all retained.
type Record struct {
	Entries []*Entry

	com *Comment
}

func (r *Record) Kind() Kind        { return RecordKind }
func (r *Record) Comment() *Comment { return r.com }

// Len reports the number of entries in r.
func (r *Record) Len() int { return len(r.Entries) }

// Find returns the first entry of r with the given key, or nil.
func (r *Record) Find(key string) *Entry {
	for _, e := range r.Entries {
		if e.Key.Value == key {
			return e
		}
	}
	return nil
}

// Lookup returns all the entries of r with the given key, in source order.
func (r *Record) Lookup(key string) []*Entry {
	var out []*Entry
	for _, e := range r.Entries {
		if e.Key.Value == key {
			out = append(out, e)
		}
	}
	return out
}

// Keys returns the keys of r in source order, including duplicates.
func (r *Record) Keys() []string {
	out := make([]string, len(r.Entries))
	for i, e := range r.Entries {
		out[i] = e.Key.Value
	}
	return out
}

func (r *Record) JSON() string {
	if len(r.Entries) == 0 {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteByte('{')
	sb.WriteString(r.Entries[0].JSON())
	for _, e := range r.Entries[1:] {
		sb.WriteByte(',')
		sb.WriteString(e.JSON())
	}
	sb.WriteByte('}')
	return sb.String()
}

func (r *Record) String() string { return fmt.Sprintf("Record(len=%d)", len(r.Entries)) }

// Equal reports whether a and b have the same structure and the same
// primitive values. Comments are not compared.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch x := a.(type) {
	case *String:
		y, ok := b.(*String)
		return ok && x.Value == y.Value
	case *Number:
		y, ok := b.(*Number)
		return ok && x.Value == y.Value
	case *Bool:
		y, ok := b.(*Bool)
		return ok && x.Value == y.Value
	case *Null:
		_, ok := b.(*Null)
		return ok
	case *Array:
		y, ok := b.(*Array)
		if !ok || len(x.Values) != len(y.Values) {
			return false
		}
		for i, v := range x.Values {
			if !Equal(v, y.Values[i]) {
				return false
			}
		}
		return true
	case *Record:
		y, ok := b.(*Record)
		if !ok || len(x.Entries) != len(y.Entries) {
			return false
		}
		for i, e := range x.Entries {
			f := y.Entries[i]
			if e.Key.Value != f.Key.Value || !Equal(e.Value, f.Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
