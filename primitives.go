// Copyright 2021 Jonathan Amsterdam.

package parsing

import (
	"regexp"
	"strconv"
	"unicode/utf8"
)

// unit is the empty tuple: the output type of parsers whose only job is to
// match something, like StartsWith and PathEnd.
type unit = struct{}

// StartsWith succeeds iff the cursor's raw prefix equals lit, consuming
// exactly len(lit) bytes. It prints lit back unchanged.
func StartsWith[T Input[T]](lit string) Printer[T, unit] {
	parse := func(in *T) (unit, error) {
		cur := *in
		if !hasPrefix(cur, lit) {
			return unit{}, &ParseError{Kind: ExpectedLiteral, Expected: quote(lit), At: position(cur)}
		}
		*in = cur.Slice(len(lit), cur.Len())
		return unit{}, nil
	}
	print := func(unit) (T, error) {
		var zero T
		return zero.FromString(lit), nil
	}
	return Printer[T, unit]{Parser: parse, PrintFunc: print}
}

func hasPrefix[T Input[T]](in T, s string) bool {
	raw := in.Raw()
	if len(raw) < len(s) {
		return false
	}
	return raw[:len(s)] == s
}

func quote(s string) string { return strconv.Quote(s) }

func position[T Input[T]](in T) string {
	raw := in.Raw()
	if len(raw) == 0 {
		return "end of input"
	}
	const n = 12
	t := raw
	if len(t) > n {
		t = t[:n] + "..."
	}
	return quote(t)
}

// First consumes and returns one rune's worth of input as a same-typed
// fragment; it fails on empty input. Its print is the identity: the
// fragment it was given back out.
func First[T Input[T]]() Printer[T, T] {
	parse := func(in *T) (T, error) {
		var zero T
		cur := *in
		if cur.Empty() {
			return zero, &ParseError{Kind: EmptyInput, Expected: "any element", At: position(cur)}
		}
		_, size := utf8.DecodeRuneInString(cur.Raw())
		if size == 0 {
			size = 1
		}
		head := cur.Slice(0, size)
		*in = cur.Slice(size, cur.Len())
		return head, nil
	}
	print := func(out T) (T, error) { return out, nil }
	return Printer[T, T]{Parser: parse, PrintFunc: print}
}

// Rest consumes all remaining input and returns it as a same-typed
// fragment. Its print is the identity.
func Rest[T Input[T]]() Printer[T, T] {
	parse := func(in *T) (T, error) {
		cur := *in
		all := cur.Slice(0, cur.Len())
		*in = cur.Slice(cur.Len(), cur.Len())
		return all, nil
	}
	print := func(out T) (T, error) { return out, nil }
	return Printer[T, T]{Parser: parse, PrintFunc: print}
}

var uintRE = regexp.MustCompile(`^[0-9]+`)
var intRE = regexp.MustCompile(`^[+-]?[0-9]+`)

// Uint greedily consumes the longest run of ASCII digits and parses it as an
// unsigned decimal integer, failing on zero digits or overflow of the
// target width. It prints the canonical decimal spelling.
func Uint[T Input[T]]() Printer[T, uint64] {
	parse := func(in *T) (uint64, error) {
		cur := *in
		loc := uintRE.FindStringIndex(cur.Raw())
		if loc == nil {
			return 0, &ParseError{Kind: EmptyInput, Expected: "unsigned integer", At: position(cur)}
		}
		digits := cur.Raw()[:loc[1]]
		n, err := strconv.ParseUint(digits, 10, 64)
		if err != nil {
			return 0, &ParseError{Kind: Overflow, Expected: "unsigned integer", At: position(cur)}
		}
		*in = cur.Slice(loc[1], cur.Len())
		return n, nil
	}
	print := func(n uint64) (T, error) {
		var zero T
		return zero.FromString(strconv.FormatUint(n, 10)), nil
	}
	return Printer[T, uint64]{Parser: parse, PrintFunc: print}
}

// Int greedily consumes an optional sign followed by the longest run of
// ASCII digits and parses it as a signed decimal integer, failing on zero
// digits or overflow. It prints the canonical decimal spelling.
func Int[T Input[T]]() Printer[T, int64] {
	parse := func(in *T) (int64, error) {
		cur := *in
		loc := intRE.FindStringIndex(cur.Raw())
		if loc == nil {
			return 0, &ParseError{Kind: EmptyInput, Expected: "integer", At: position(cur)}
		}
		digits := cur.Raw()[:loc[1]]
		n, err := strconv.ParseInt(digits, 10, 64)
		if err != nil {
			return 0, &ParseError{Kind: Overflow, Expected: "integer", At: position(cur)}
		}
		*in = cur.Slice(loc[1], cur.Len())
		return n, nil
	}
	print := func(n int64) (T, error) {
		var zero T
		return zero.FromString(strconv.FormatInt(n, 10)), nil
	}
	return Printer[T, int64]{Parser: parse, PrintFunc: print}
}

// Always consumes nothing and returns v. It has no PrintFunc, since a
// general v has no canonical "minimal input" to print; use AlwaysUnit for
// the printable, unit-typed case used to anchor skip/sequencing.
func Always[T, O any](v O) Printer[T, O] {
	return Printer[T, O]{Parser: func(*T) (O, error) { return v, nil }}
}

// AlwaysUnit consumes nothing and returns unit{}. It prints the Appendable
// identity (the zero value of T).
func AlwaysUnit[T Appendable[T]]() Printer[T, unit] {
	parse := func(*T) (unit, error) { return unit{}, nil }
	print := func(unit) (T, error) { var zero T; return zero, nil }
	return Printer[T, unit]{Parser: parse, PrintFunc: print}
}
