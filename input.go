// Copyright 2021 Jonathan Amsterdam.

package parsing

import "strings"

// Consumable values know whether they are empty.
type Consumable interface {
	Empty() bool
}

// Sliceable values can produce same-typed contiguous sub-ranges of
// themselves, addressed by byte offset into their Raw form.
type Sliceable[T any] interface {
	Len() int
	Slice(start, end int) T
}

// Appendable values merge by concatenation and have a well-defined identity
// (their Go zero value, by construction of every Appendable type in this
// package).
type Appendable[T any] interface {
	Append(T) T
}

// Input is the capability primitive leaves require of a cursor type: it can
// report emptiness, slice itself, concatenate with another value of the
// same type, present itself as a string for matching, and be rebuilt from a
// string (used by printers to manufacture a minimal fragment).
type Input[T any] interface {
	Consumable
	Sliceable[T]
	Appendable[T]
	Raw() string
	FromString(string) T
}

// TextInput is a string-backed cursor: the Input implementation primitive
// leaves use for text slices (path segments, query values).
type TextInput struct {
	s string
}

// NewTextInput wraps s as a TextInput cursor.
func NewTextInput(s string) TextInput { return TextInput{s: s} }

func (t TextInput) Empty() bool                   { return len(t.s) == 0 }
func (t TextInput) Len() int                       { return len(t.s) }
func (t TextInput) Slice(start, end int) TextInput { return TextInput{s: t.s[start:end]} }
func (t TextInput) Append(other TextInput) TextInput {
	return TextInput{s: t.s + other.s}
}
func (t TextInput) Raw() string                 { return t.s }
func (t TextInput) FromString(s string) TextInput { return TextInput{s: s} }
func (t TextInput) String() string              { return t.s }

// HasPrefix reports whether t's raw text starts with s.
func (t TextInput) HasPrefix(s string) bool { return strings.HasPrefix(t.s, s) }

// ByteInput is a []byte-backed cursor: the Input implementation primitive
// leaves use for raw buffers (the request body).
type ByteInput struct {
	b []byte
}

// NewByteInput wraps b as a ByteInput cursor.
func NewByteInput(b []byte) ByteInput { return ByteInput{b: b} }

func (b ByteInput) Empty() bool                   { return len(b.b) == 0 }
func (b ByteInput) Len() int                       { return len(b.b) }
func (b ByteInput) Slice(start, end int) ByteInput { return ByteInput{b: b.b[start:end]} }
func (b ByteInput) Append(other ByteInput) ByteInput {
	return ByteInput{b: append(append([]byte{}, b.b...), other.b...)}
}
func (b ByteInput) Raw() string                   { return string(b.b) }
func (b ByteInput) FromString(s string) ByteInput { return ByteInput{b: []byte(s)} }

// Bytes returns the underlying buffer. Callers must not mutate the result.
func (b ByteInput) Bytes() []byte { return b.b }
