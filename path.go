// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package jsonc

import "fmt"

// Path traverses a sequential path through the structure of a value starting
// at v, where path elements are either strings (denoting record keys) or
// integers (denoting offsets into arrays).  If the path is valid, the element
// reached is returned. In case of error, the input v is returned along with
// the error.
//
// If a path element is a string, the corresponding value must be a record,
// and the string resolves to the value of the first entry with that key.
//
// If a path element is an integer, the corresponding value must be an array,
// and the integer resolves to an index in the array. Negative indices count
// backward from the end of the array (-1 is last, -2 second last, etc.).
//
// If a path element is a function, the function is executed and its result
// becomes the next value in the sequence. The function must have a signature
//
//	func(jsonc.Value) (jsonc.Value, error)
//
// If the function fails, the traversal reports its error.
func Path(v Value, path ...any) (Value, error) {
	cur := v
	for _, elt := range path {
		switch t := elt.(type) {
		case string:
			r, ok := cur.(*Record)
			if !ok {
				return v, fmt.Errorf("cannot traverse %v with %q", kindOf(cur), t)
			}
			e := r.Find(t)
			if e == nil {
				return v, fmt.Errorf("key %q not found", t)
			}
			cur = e.Value
		case int:
			a, ok := cur.(*Array)
			if !ok {
				return v, fmt.Errorf("cannot traverse %v with %d", kindOf(cur), t)
			}
			i, ok := fixArrayBound(len(a.Values), t)
			if !ok {
				return v, fmt.Errorf("array index %d out of bounds (n=%d)", t, len(a.Values))
			}
			cur = a.Values[i]
		case func(Value) (Value, error):
			next, err := t(cur)
			if err != nil {
				return v, err
			}
			cur = next
		default:
			return v, fmt.Errorf("invalid path element %T", elt)
		}
	}
	return cur, nil
}

func fixArrayBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}

func kindOf(v Value) Kind {
	if v == nil {
		return 0
	}
	return v.Kind()
}
