// Copyright 2021 Jonathan Amsterdam.

package request

import (
	"testing"

	"github.com/elfenlaid/swift-parsing"
)

func TestMethodDefaultsToGET(t *testing.T) {
	p := Method("GET")
	r := Request{}
	if _, err := p.Parse(&r); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
}

func TestMethodCaseInsensitive(t *testing.T) {
	for _, m := range []string{"get", "Get", "GET", "gEt"} {
		p := Method("GET")
		mm := m
		r := Request{Method: &mm}
		if _, err := p.Parse(&r); err != nil {
			t.Errorf("Method(%q).Parse(%q) failed: %v", "GET", m, err)
		}
	}
}

func TestMethodClearsFieldOnSuccess(t *testing.T) {
	m := "POST"
	r := Request{Method: &m}
	p := Method("POST")
	if _, err := p.Parse(&r); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if r.Method != nil {
		t.Errorf("Method field not cleared: %v", *r.Method)
	}
	// A second Method parse for the same method must now fail: the field
	// defaults to GET once consumed, not the method that was just matched.
	if _, err := p.Parse(&r); err == nil {
		t.Error("second Method(POST) parse succeeded after the field was consumed")
	}
}

func TestMethodFailureLeavesRequestUnchanged(t *testing.T) {
	m := "POST"
	r := Request{Method: &m, Path: []string{"x"}}
	before := r
	p := Method("GET")
	if _, err := p.Parse(&r); err == nil {
		t.Fatal("got success, want error")
	}
	if r.Method == nil || *r.Method != *before.Method || len(r.Path) != len(before.Path) {
		t.Errorf("request mutated on failure: got %+v", r)
	}
}

func TestMethodPrint(t *testing.T) {
	p := Method("POST")
	got, err := p.Print(struct{}{})
	if err != nil {
		t.Fatalf("Print failed: %v", err)
	}
	if got.Method == nil || *got.Method != "POST" {
		t.Errorf("Print = %v, want method POST", got.Method)
	}
}

func TestPathComponentConsumesFirstSegment(t *testing.T) {
	p := PathComponent(parsing.Uint[parsing.TextInput]())
	r := Request{Path: []string{"42", "rest"}}
	got, err := p.Parse(&r)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got != 42 {
		t.Errorf("got %d, want 42", got)
	}
	if len(r.Path) != 1 || r.Path[0] != "rest" {
		t.Errorf("Path = %v, want [rest]", r.Path)
	}
}

func TestPathComponentRequiresWholeSegment(t *testing.T) {
	p := PathComponent(parsing.StartsWith[parsing.TextInput]("ep"))
	r := Request{Path: []string{"episodes"}}
	if _, err := p.Parse(&r); err == nil {
		t.Fatal("got success, want error (did not consume entire segment)")
	}
	if len(r.Path) != 1 || r.Path[0] != "episodes" {
		t.Errorf("Path mutated on failure: %v", r.Path)
	}
}

func TestPathComponentPrintDropsEmptySegment(t *testing.T) {
	p := PathComponent(parsing.StartsWith[parsing.TextInput]("episodes"))
	// the inner print of StartsWith("episodes") against unit{} reproduces
	// "episodes" exactly, a non-empty fragment.
	got, err := p.Print(struct{}{})
	if err != nil {
		t.Fatalf("Print failed: %v", err)
	}
	if len(got.Path) != 1 || got.Path[0] != "episodes" {
		t.Errorf("Path = %v, want [episodes]", got.Path)
	}
	// StartsWith("") prints an empty fragment, so no segment is emitted.
	empty, err := PathComponent(parsing.StartsWith[parsing.TextInput]("")).Print(struct{}{})
	if err != nil {
		t.Fatalf("Print of empty segment failed: %v", err)
	}
	if len(empty.Path) != 0 {
		t.Errorf("Path = %v, want empty", empty.Path)
	}
}

func TestPathEndSucceedsOnlyWhenEmpty(t *testing.T) {
	r := Request{}
	if _, err := PathEnd.Parse(&r); err != nil {
		t.Fatalf("PathEnd on empty path failed: %v", err)
	}
	r2 := Request{Path: []string{"x"}}
	if _, err := PathEnd.Parse(&r2); err == nil {
		t.Fatal("PathEnd on non-empty path succeeded")
	}
}

func TestQueryItemRemovesOnlyFirstMatch(t *testing.T) {
	p := QueryItem("q", parsing.Rest[parsing.TextInput]())
	r := Request{Query: []KV{{Name: "q", Value: "a"}, {Name: "q", Value: "b"}, {Name: "other", Value: "c"}}}
	got, err := p.Parse(&r)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got.Raw() != "a" {
		t.Errorf("got %q, want %q", got.Raw(), "a")
	}
	if len(r.Query) != 2 || r.Query[0].Name != "q" || r.Query[0].Value != "b" {
		t.Errorf("Query = %v, want remaining [q=b other=c]", r.Query)
	}
}

func TestQueryItemMissingFails(t *testing.T) {
	p := QueryItem("missing", parsing.Rest[parsing.TextInput]())
	r := Request{Query: []KV{{Name: "other", Value: "x"}}}
	if _, err := p.Parse(&r); err == nil {
		t.Fatal("got success, want error")
	}
}

func TestBodyRequiresFullConsumption(t *testing.T) {
	p := Body(parsing.StartsWith[parsing.ByteInput]("ab"))
	r := Request{Body: []byte("abc")}
	if _, err := p.Parse(&r); err == nil {
		t.Fatal("got success, want error (body not fully consumed)")
	}
}

func TestBodyEmptiesOnSuccess(t *testing.T) {
	p := Body(parsing.Rest[parsing.ByteInput]())
	r := Request{Body: []byte("hello")}
	got, err := p.Parse(&r)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if string(got.Bytes()) != "hello" {
		t.Errorf("got %q, want %q", got.Bytes(), "hello")
	}
	if r.Body != nil {
		t.Errorf("Body not emptied: %q", r.Body)
	}
}
