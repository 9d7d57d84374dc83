package runtime

// PairValue is the one mutable compound shape in the data model: a cons
// cell with a car and a cdr. Proper and improper lists are both built
// from chains of Pairs; callers distinguish the two by inspecting the
// final cdr, not by type.
type PairValue struct {
	gcHeader
	Car, Cdr Value
}

func (v *PairValue) Kind() Kind        { return KindPair }
func (v *PairValue) header() *gcHeader { return &v.gcHeader }

func (v *PairValue) Walk(fn func(Value)) {
	if v.Car != nil {
		fn(v.Car)
	}
	if v.Cdr != nil {
		fn(v.Cdr)
	}
}

// String renders a Pair using the printing rules from spec.md §6: open
// paren, car, then either " <tail>" recursed into if the cdr is a Pair,
// a close paren if the cdr is Null, or " . <cdr>" for an improper tail.
func (v *PairValue) String() string {
	var b []byte
	b = append(b, '(')
	cur := Value(v)
	first := true
	for {
		p, ok := cur.(*PairValue)
		if !ok {
			break
		}
		if !first {
			b = append(b, ' ')
		}
		first = false
		b = append(b, p.Car.String()...)
		cur = p.Cdr
	}
	switch t := cur.(type) {
	case *NullValue:
		// proper list: nothing more to print
	default:
		b = append(b, " . "...)
		b = append(b, t.String()...)
	}
	b = append(b, ')')
	return string(b)
}

// IsProperList reports whether the chain of Pairs reached through cdr
// terminates in Null. A non-Pair head that is itself Null is the empty
// list and counts as proper.
func IsProperList(v Value) bool {
	for {
		switch t := v.(type) {
		case *NullValue:
			return true
		case *PairValue:
			v = t.Cdr
		default:
			return false
		}
	}
}

// ListToSlice walks a proper list into a Go slice. It returns false if
// the list is improper.
func ListToSlice(v Value) ([]Value, bool) {
	var out []Value
	for {
		switch t := v.(type) {
		case *NullValue:
			return out, true
		case *PairValue:
			out = append(out, t.Car)
			v = t.Cdr
		default:
			return out, false
		}
	}
}
