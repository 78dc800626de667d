// Copyright 2021 Jonathan Amsterdam.

package parsing

import "reflect"

// OrElse tries p first; if it fails, OrElse restores the input it saved
// before trying p and tries q on the same starting input.
//
// Its printer tries p.Print(out) first, then re-parses the result and
// checks, with reflect.DeepEqual, that it reproduces out exactly — the
// round-trip verification required of orElse's printer. If that check
// fails, it falls through to q.Print. Only when every branch fails to
// round-trip does printing fail with PrintError{Kind: RoundTripFailed}.
//
// p and q are tried speculatively: out may not be in either one's domain
// (this is how a sum-type router built from nested OrElse trees picks the
// branch matching out's concrete variant). tryPrint recovers a panicking
// branch and treats it the same as a returned error, so a Print built from
// a careless Conversion can't crash the whole tree; well-behaved branches
// built with Map report the mismatch as PrintError{Kind:
// UnprintableBranch} directly and never reach the recover.
func OrElse[I any, O any](p, q Printer[I, O]) Printer[I, O] {
	parse := func(in *I) (O, error) {
		saved := *in
		out, err := p.Parse(in)
		if err == nil {
			return out, nil
		}
		*in = saved
		return q.Parse(in)
	}
	pr := Printer[I, O]{Parser: parse}
	if p.Printable() || q.Printable() {
		pr.PrintFunc = func(out O) (I, error) {
			if p.Printable() {
				if candidate, err := tryPrint(p, out); err == nil && roundTrips(p.AsParser(), candidate, out) {
					return candidate, nil
				}
			}
			if q.Printable() {
				if candidate, err := tryPrint(q, out); err == nil && roundTrips(q.AsParser(), candidate, out) {
					return candidate, nil
				}
			}
			var zero I
			return zero, &PrintError{Kind: RoundTripFailed, Detail: "no branch of orElse round-trips this output"}
		}
	}
	return pr
}

// tryPrint calls p.Print(out), converting a panic (e.g. from a Conversion
// that asserts rather than checks) into an error so a speculative branch
// can never bring down the whole orElse tree.
func tryPrint[I, O any](p Printer[I, O], out O) (result I, err error) {
	defer func() {
		if x := recover(); x != nil {
			var zero I
			result, err = zero, &PrintError{Kind: UnprintableBranch, Detail: "branch panicked while printing"}
		}
	}()
	return p.Print(out)
}

// roundTrips reports whether parsing candidate with p reproduces want with
// no remainder, using the Consumable capability to check exhaustion when
// available and falling back to a plain re-parse otherwise.
func roundTrips[I any, O any](p Parser[I, O], candidate I, want O) bool {
	in := candidate
	got, err := p.Parse(&in)
	if err != nil {
		return false
	}
	if c, ok := any(in).(Consumable); ok && !c.Empty() {
		return false
	}
	return reflect.DeepEqual(got, want)
}
