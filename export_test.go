package jsonc

import "go4.org/mem"

// ParseSlow parses input as Parse does, but never uses the native decoder
// for containers.
func ParseSlow(input string) (Value, error) { return parseInput(mem.S(input), false) }

// Commented returns v with its comment set to com, for building expected
// values in tests.
func Commented[V Value](v V, com *Comment) V { setComment(v, com); return v }

// Key constructs a record key with the given comment.
func Key(key string, com *Comment) *String { return &String{Value: key, com: com} }
