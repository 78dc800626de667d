// Copyright 2021 Jonathan Amsterdam.

package parsing

import "testing"

func TestTextInputSlice(t *testing.T) {
	ti := NewTextInput("hello world")
	head := ti.Slice(0, 5)
	tail := ti.Slice(5, ti.Len())
	if head.Raw() != "hello" {
		t.Fatalf("head = %q, want %q", head.Raw(), "hello")
	}
	if tail.Raw() != " world" {
		t.Fatalf("tail = %q, want %q", tail.Raw(), " world")
	}
}

func TestTextInputAppendIdentity(t *testing.T) {
	var zero TextInput
	a := NewTextInput("abc")
	if got := zero.Append(a); got.Raw() != "abc" {
		t.Errorf("zero.Append(a) = %q, want %q", got.Raw(), "abc")
	}
	if got := a.Append(zero); got.Raw() != "abc" {
		t.Errorf("a.Append(zero) = %q, want %q", got.Raw(), "abc")
	}
}

func TestTextInputEmpty(t *testing.T) {
	if !NewTextInput("").Empty() {
		t.Error("empty text input reports non-empty")
	}
	if NewTextInput("x").Empty() {
		t.Error("non-empty text input reports empty")
	}
}

func TestByteInputAppendIdentity(t *testing.T) {
	var zero ByteInput
	a := NewByteInput([]byte("xyz"))
	if got := zero.Append(a); string(got.Bytes()) != "xyz" {
		t.Errorf("zero.Append(a) = %q, want %q", got.Bytes(), "xyz")
	}
	if got := a.Append(zero); string(got.Bytes()) != "xyz" {
		t.Errorf("a.Append(zero) = %q, want %q", got.Bytes(), "xyz")
	}
}

func TestByteInputAppendDoesNotAlias(t *testing.T) {
	a := NewByteInput([]byte("ab"))
	b := NewByteInput([]byte("cd"))
	merged := a.Append(b)
	merged.Bytes()[0] = 'Z'
	if a.Bytes()[0] == 'Z' {
		t.Error("Append aliased the receiver's backing array")
	}
}
