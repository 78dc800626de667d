// Copyright 2021 Jonathan Amsterdam.

package parsing

// Optional attempts p; on failure it returns nil with the input unchanged
// (Optional never fails on parse). Its printer emits the Appendable
// identity for nil and p.Print(*out) otherwise.
func Optional[I Appendable[I], O any](p Printer[I, O]) Printer[I, *O] {
	parse := func(in *I) (*O, error) {
		saved := *in
		out, err := p.Parse(in)
		if err != nil {
			*in = saved
			return nil, nil
		}
		return &out, nil
	}
	pr := Printer[I, *O]{Parser: parse}
	if p.Printable() {
		pr.PrintFunc = func(out *O) (I, error) {
			if out == nil {
				var zero I
				return zero, nil
			}
			return p.Print(*out)
		}
	}
	return pr
}
