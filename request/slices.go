// Copyright 2021 Jonathan Amsterdam.

package request

import (
	"strings"

	"github.com/elfenlaid/swift-parsing"
)

// Parser is a Printer over a Request producing O — the domain-specific name
// for the request-slice parsers in this package.
type Parser[O any] = parsing.Printer[Request, O]

type unit = struct{}

// Method succeeds iff the current method (defaulting to "GET" when the
// Request's Method field is absent) equals name case-insensitively. On
// success it clears the field, so a subsequent Method parser cannot match
// again. It prints a Request with just Method set to name.
func Method(name string) Parser[unit] {
	parse := func(r *Request) (unit, error) {
		current := "GET"
		if r.Method != nil {
			current = *r.Method
		}
		if !strings.EqualFold(current, name) {
			return unit{}, &parsing.ParseError{
				Kind:     parsing.ExpectedLiteral,
				Expected: "method " + name,
				At:       current,
			}
		}
		r.Method = nil
		return unit{}, nil
	}
	print := func(unit) (Request, error) {
		m := name
		return Request{Method: &m}, nil
	}
	return Parser[unit]{Parser: parse, PrintFunc: print}
}

// PathComponent projects onto the first element of Path. It succeeds when
// inner parses the entire first segment; the segment is then removed. It
// prints a Request whose Path holds inner's printed fragment, dropping the
// segment entirely if that fragment is empty.
func PathComponent[O any](inner parsing.Printer[parsing.TextInput, O]) Parser[O] {
	parse := func(r *Request) (O, error) {
		var zero O
		if len(r.Path) == 0 {
			return zero, &parsing.ParseError{Kind: parsing.EmptyInput, Expected: "a path segment"}
		}
		seg := parsing.NewTextInput(r.Path[0])
		out, err := inner.Parse(&seg)
		if err != nil {
			return zero, err
		}
		if !seg.Empty() {
			return zero, &parsing.ParseError{
				Kind:     parsing.UnconsumedRemainder,
				Expected: "end of path segment",
				At:       seg.Raw(),
			}
		}
		r.Path = r.Path[1:]
		return out, nil
	}
	pr := Parser[O]{Parser: parse}
	if inner.Printable() {
		pr.PrintFunc = func(out O) (Request, error) {
			seg, err := inner.Print(out)
			if err != nil {
				return Request{}, err
			}
			if seg.Empty() {
				return Request{}, nil
			}
			return Request{Path: []string{seg.Raw()}}, nil
		}
	}
	return pr
}

// PathEnd succeeds iff Path is empty. It consumes nothing and prints the
// empty Request.
var PathEnd = buildPathEnd()

func buildPathEnd() Parser[unit] {
	parse := func(r *Request) (unit, error) {
		if len(r.Path) != 0 {
			return unit{}, &parsing.ParseError{
				Kind:     parsing.UnexpectedInput,
				Expected: "end of path",
				At:       strings.Join(r.Path, "/"),
			}
		}
		return unit{}, nil
	}
	print := func(unit) (Request, error) { return Request{}, nil }
	return Parser[unit]{Parser: parse, PrintFunc: print}
}

// QueryItem projects onto the first query entry named name. It succeeds
// when inner parses the entire value; that entry is then removed (only the
// first match, not all). It prints a Request whose Query holds one entry,
// (name, inner's printed fragment).
func QueryItem[O any](name string, inner parsing.Printer[parsing.TextInput, O]) Parser[O] {
	parse := func(r *Request) (O, error) {
		var zero O
		idx := -1
		for i, kv := range r.Query {
			if kv.Name == name {
				idx = i
				break
			}
		}
		if idx < 0 {
			return zero, &parsing.ParseError{Kind: parsing.EmptyInput, Expected: "query parameter " + name}
		}
		val := parsing.NewTextInput(r.Query[idx].Value)
		out, err := inner.Parse(&val)
		if err != nil {
			return zero, err
		}
		if !val.Empty() {
			return zero, &parsing.ParseError{
				Kind:     parsing.UnconsumedRemainder,
				Expected: "end of query value",
				At:       val.Raw(),
			}
		}
		r.Query = removeAt(r.Query, idx)
		return out, nil
	}
	pr := Parser[O]{Parser: parse}
	if inner.Printable() {
		pr.PrintFunc = func(out O) (Request, error) {
			val, err := inner.Print(out)
			if err != nil {
				return Request{}, err
			}
			return Request{Query: []KV{{Name: name, Value: val.Raw()}}}, nil
		}
	}
	return pr
}

func removeAt(kvs []KV, idx int) []KV {
	out := make([]KV, 0, len(kvs)-1)
	out = append(out, kvs[:idx]...)
	out = append(out, kvs[idx+1:]...)
	return out
}

// Body projects onto the raw body buffer. It succeeds only if inner
// consumes the entire buffer; on success the body is emptied. It prints a
// Request whose Body holds inner's printed fragment.
func Body[O any](inner parsing.Printer[parsing.ByteInput, O]) Parser[O] {
	parse := func(r *Request) (O, error) {
		var zero O
		buf := parsing.NewByteInput(r.Body)
		out, err := inner.Parse(&buf)
		if err != nil {
			return zero, err
		}
		if !buf.Empty() {
			return zero, &parsing.ParseError{Kind: parsing.UnconsumedRemainder, Expected: "end of body"}
		}
		r.Body = nil
		return out, nil
	}
	pr := Parser[O]{Parser: parse}
	if inner.Printable() {
		pr.PrintFunc = func(out O) (Request, error) {
			buf, err := inner.Print(out)
			if err != nil {
				return Request{}, err
			}
			return Request{Body: buf.Bytes()}, nil
		}
	}
	return pr
}
