// Copyright 2021 Jonathan Amsterdam.

package parsing

// Conversion is an isomorphism between A and B, used where B is a wider
// type than the image of Apply (for example, B is a sum type and A is only
// one of its variants). Apply must succeed for every a in p's domain.
// Unapply reports ok=false for any b outside the image Apply can produce,
// rather than panicking; Map turns that into a clean PrintError instead of
// letting it propagate as a type-assertion panic. Where ok is true,
// Unapply(Apply(a)) == a.
type Conversion[A, B any] struct {
	Apply   func(A) B
	Unapply func(B) (A, bool)
}

// MapFunc transforms p's output with a one-way function. The result has no
// PrintFunc: a one-way f cannot be run backwards, so this combinator is
// downgraded to parser-only.
func MapFunc[I, A, B any](p Printer[I, A], f func(A) B) Printer[I, B] {
	parse := func(in *I) (B, error) {
		a, err := p.Parse(in)
		if err != nil {
			var zero B
			return zero, err
		}
		return f(a), nil
	}
	return Printer[I, B]{Parser: parse}
}

// Map transforms p's output through an isomorphism, keeping the result
// printable: printing b first recovers conv.Unapply(b), then prints that
// with p. If b is not in conv's domain, printing fails with
// PrintError{Kind: UnprintableBranch} instead of panicking, so a Map built
// from a per-variant Conversion (one branch of a sum type) can be tried
// speculatively by OrElse without crashing on the other variants.
func Map[I, A, B any](p Printer[I, A], conv Conversion[A, B]) Printer[I, B] {
	pr := MapFunc(p, conv.Apply)
	pr.PrintFunc = func(b B) (I, error) {
		a, ok := conv.Unapply(b)
		if !ok {
			var zero I
			return zero, &PrintError{Kind: UnprintableBranch, Detail: "value not in this conversion's domain"}
		}
		return p.Print(a)
	}
	return pr
}

// Pair is the output of Take2: both outputs in sequence order. Unit outputs
// are kept as fields, not dropped.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple is the output of Take3.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Quad is the output of Take4.
type Quad[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

// Skip sequences p then q, keeping p's output and discarding q's unit
// output. Its printer prints p's output, then q's, and concatenates the two
// fragments via I's Appendable instance, p's fragment first.
func Skip[I Appendable[I], A any](p Printer[I, A], q Printer[I, unit]) Printer[I, A] {
	parse := func(in *I) (A, error) {
		saved := *in
		a, err := p.Parse(in)
		if err != nil {
			var zero A
			return zero, err
		}
		if _, err := q.Parse(in); err != nil {
			*in = saved
			var zero A
			return zero, err
		}
		return a, nil
	}
	pr := Printer[I, A]{Parser: parse}
	if p.Printable() && q.Printable() {
		pr.PrintFunc = func(a A) (I, error) {
			ia, err := p.Print(a)
			if err != nil {
				var zero I
				return zero, err
			}
			iq, err := q.Print(unit{})
			if err != nil {
				var zero I
				return zero, err
			}
			return ia.Append(iq), nil
		}
	}
	return pr
}

// SkipFirst sequences p then q, keeping only q's output and discarding p's
// unit output. Its printer prints p's unit output, then q's, concatenating
// p's fragment first (matching the order they're consumed in).
func SkipFirst[I Appendable[I], B any](p Printer[I, unit], q Printer[I, B]) Printer[I, B] {
	parse := func(in *I) (B, error) {
		saved := *in
		if _, err := p.Parse(in); err != nil {
			var zero B
			return zero, err
		}
		b, err := q.Parse(in)
		if err != nil {
			*in = saved
		}
		return b, err
	}
	pr := Printer[I, B]{Parser: parse}
	if p.Printable() && q.Printable() {
		pr.PrintFunc = func(b B) (I, error) {
			ip, err := p.Print(unit{})
			if err != nil {
				var zero I
				return zero, err
			}
			iq, err := q.Print(b)
			if err != nil {
				var zero I
				return zero, err
			}
			return ip.Append(iq), nil
		}
	}
	return pr
}

// Take2 sequences p then q, returning both outputs as a flattened pair.
func Take2[I Appendable[I], A, B any](p Printer[I, A], q Printer[I, B]) Printer[I, Pair[A, B]] {
	parse := func(in *I) (Pair[A, B], error) {
		var zero Pair[A, B]
		saved := *in
		a, err := p.Parse(in)
		if err != nil {
			return zero, err
		}
		b, err := q.Parse(in)
		if err != nil {
			*in = saved
			return zero, err
		}
		return Pair[A, B]{First: a, Second: b}, nil
	}
	pr := Printer[I, Pair[A, B]]{Parser: parse}
	if p.Printable() && q.Printable() {
		pr.PrintFunc = func(v Pair[A, B]) (I, error) {
			ia, err := p.Print(v.First)
			if err != nil {
				var zero I
				return zero, err
			}
			ib, err := q.Print(v.Second)
			if err != nil {
				var zero I
				return zero, err
			}
			return ia.Append(ib), nil
		}
	}
	return pr
}

// Take3 sequences p, q, r, returning all three outputs as a flattened
// triple.
func Take3[I Appendable[I], A, B, C any](p Printer[I, A], q Printer[I, B], r Printer[I, C]) Printer[I, Triple[A, B, C]] {
	pq := Take2(p, q)
	parse := func(in *I) (Triple[A, B, C], error) {
		var zero Triple[A, B, C]
		saved := *in
		ab, err := pq.Parse(in)
		if err != nil {
			return zero, err
		}
		c, err := r.Parse(in)
		if err != nil {
			*in = saved
			return zero, err
		}
		return Triple[A, B, C]{First: ab.First, Second: ab.Second, Third: c}, nil
	}
	pr := Printer[I, Triple[A, B, C]]{Parser: parse}
	if pq.Printable() && r.Printable() {
		pr.PrintFunc = func(v Triple[A, B, C]) (I, error) {
			iab, err := pq.Print(Pair[A, B]{First: v.First, Second: v.Second})
			if err != nil {
				var zero I
				return zero, err
			}
			ic, err := r.Print(v.Third)
			if err != nil {
				var zero I
				return zero, err
			}
			return iab.Append(ic), nil
		}
	}
	return pr
}

// Take4 sequences p, q, r, s, returning all four outputs as a flattened
// quad.
func Take4[I Appendable[I], A, B, C, D any](p Printer[I, A], q Printer[I, B], r Printer[I, C], s Printer[I, D]) Printer[I, Quad[A, B, C, D]] {
	pqr := Take3(p, q, r)
	parse := func(in *I) (Quad[A, B, C, D], error) {
		var zero Quad[A, B, C, D]
		saved := *in
		abc, err := pqr.Parse(in)
		if err != nil {
			return zero, err
		}
		d, err := s.Parse(in)
		if err != nil {
			*in = saved
			return zero, err
		}
		return Quad[A, B, C, D]{First: abc.First, Second: abc.Second, Third: abc.Third, Fourth: d}, nil
	}
	pr := Printer[I, Quad[A, B, C, D]]{Parser: parse}
	if pqr.Printable() && s.Printable() {
		pr.PrintFunc = func(v Quad[A, B, C, D]) (I, error) {
			iabc, err := pqr.Print(Triple[A, B, C]{First: v.First, Second: v.Second, Third: v.Third})
			if err != nil {
				var zero I
				return zero, err
			}
			id, err := s.Print(v.Fourth)
			if err != nil {
				var zero I
				return zero, err
			}
			return iabc.Append(id), nil
		}
	}
	return pr
}
