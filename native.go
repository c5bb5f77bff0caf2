// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jsonc

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-json-experiment/json/jsontext"
	"go4.org/mem"
)

// nativeParse decodes text, which must be a single standard JSON value with
// no comments or trailing commas, using the native JSON decoder. If com !=
// nil, it is attached to the outermost value; nested values never have
// comments.
func nativeParse(text mem.RO, com *Comment) (Value, error) {
	dec := jsontext.NewDecoder(mem.NewReader(text), jsontext.AllowDuplicateNames(true))
	v, err := decodeNative(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.ReadToken(); err != io.EOF {
		return nil, errors.Join(errExtraNative, err)
	}
	setComment(v, com)
	return v, nil
}

var errExtraNative = errors.New("extra input after value")

// decodeNative consumes one complete value from dec and converts it.
// Object members are recorded in the order the decoder reports them.
func decodeNative(dec *jsontext.Decoder) (Value, error) {
	tok, err := dec.ReadToken()
	if err != nil {
		return nil, err
	}
	switch tok.Kind() {
	case 'n':
		return new(Null), nil
	case 'f', 't':
		return &Bool{Value: tok.Bool()}, nil
	case '"':
		return &String{Value: tok.String()}, nil
	case '0':
		return &Number{Value: tok.Float()}, nil

	case '[':
		arr := new(Array)
		for dec.PeekKind() != ']' {
			v, err := decodeNative(dec)
			if err != nil {
				return nil, err
			}
			arr.Values = append(arr.Values, v)
		}
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		return arr, nil

	case '{':
		rec := new(Record)
		for dec.PeekKind() != '}' {
			tok, err := dec.ReadToken()
			if err != nil {
				return nil, err
			}
			// The token is invalid after the next read, so copy the key now.
			key := &String{Value: tok.String()}
			v, err := decodeNative(dec)
			if err != nil {
				return nil, err
			}
			rec.Entries = append(rec.Entries, &Entry{Key: key, Value: v})
		}
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		return rec, nil

	default:
		return nil, fmt.Errorf("unexpected token %v", tok.Kind())
	}
}

// setComment attaches com to v, which must be freshly constructed.
func setComment(v Value, com *Comment) {
	switch t := v.(type) {
	case *String:
		t.com = com
	case *Number:
		t.com = com
	case *Bool:
		t.com = com
	case *Null:
		t.com = com
	case *Array:
		t.com = com
	case *Record:
		t.com = com
	}
}
