// Copyright 2021 Jonathan Amsterdam.

// Package parsing implements a small algebra of composable parsers that are
// simultaneously printers: every combinator that successfully parses a
// prefix of a mutable input into a typed output can also be run backwards,
// turning that output back into an input fragment that re-parses to it.
//
// The core is deliberately domain-agnostic; the headline use, bidirectional
// HTTP request routing, is built on top of it in the request and httpadapter
// packages.
package parsing

// Parser consumes a prefix of an Input and produces an Output, or fails and
// leaves the input unchanged (the roll-back invariant). It is an immutable
// value description: the same Parser can be invoked any number of times,
// concurrently, against different inputs.
type Parser[I, O any] func(in *I) (O, error)

// Parse runs p against in, advancing in past the consumed prefix on success
// and leaving it unchanged on failure.
func (p Parser[I, O]) Parse(in *I) (O, error) { return p(in) }

// Printer is a Parser that can additionally reconstruct a minimal input
// fragment from its output. PrintFunc is nil for parser-only combinators —
// the state a pipeline falls into when a non-isomorphic map is used
// somewhere inside it. Printable reports which state a value is in.
type Printer[I, O any] struct {
	Parser[I, O]
	PrintFunc func(O) (I, error)
}

// Printable reports whether p carries a working PrintFunc.
func (p Printer[I, O]) Printable() bool { return p.PrintFunc != nil }

// Print constructs a minimal input value that, fed to Parse, would yield
// out. It fails with PrintError{Kind: UnprintableBranch} if p has no
// PrintFunc.
func (p Printer[I, O]) Print(out O) (I, error) {
	if p.PrintFunc == nil {
		var zero I
		return zero, &PrintError{Kind: UnprintableBranch, Detail: "no PrintFunc on this combinator"}
	}
	return p.PrintFunc(out)
}

// AsParser discards the printer capability, returning the parse-only view.
func (p Printer[I, O]) AsParser() Parser[I, O] { return p.Parser }

// FromParser lifts a parser with no print capability into a Printer value
// whose PrintFunc is nil. This is the "downgrade" state spec'd for
// non-isomorphic map.
func FromParser[I, O any](p Parser[I, O]) Printer[I, O] {
	return Printer[I, O]{Parser: p}
}

// ParseAll runs p against the whole of in and requires that parsing consume
// it entirely, per the root-level UnconsumedRemainder error kind.
func ParseAll[I Consumable, O any](p Parser[I, O], in I) (O, error) {
	out, err := p.Parse(&in)
	if err != nil {
		var zero O
		return zero, err
	}
	if !in.Empty() {
		var zero O
		return zero, &ParseError{Kind: UnconsumedRemainder, Expected: "end of input"}
	}
	return out, nil
}
