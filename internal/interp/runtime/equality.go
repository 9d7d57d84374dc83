package runtime

// Eq implements `eq?`: pointer identity. Because Null, the booleans,
// small integers, and symbols are interned, two atoms of equal content
// compare Eq as well as Eql.
func Eq(a, b Value) bool {
	return a == b
}

// Eql implements `eql?`: structural equality within the same Kind.
// Pairs compare recursively; Builtin, SpecialForm and Closure values
// are eql? only to themselves; every other variant falls back to value
// equality on its payload.
func Eql(a, b Value) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case *NullValue:
		return true
	case *BoolValue:
		return av.Val == b.(*BoolValue).Val
	case *IntValue:
		return av.Val == b.(*IntValue).Val
	case *SymbolValue:
		return av.Name == b.(*SymbolValue).Name
	case *StringValue:
		return av.Val == b.(*StringValue).Val
	case *PairValue:
		bv := b.(*PairValue)
		return Eql(av.Car, bv.Car) && Eql(av.Cdr, bv.Cdr)
	case *ErrorValue:
		bv := b.(*ErrorValue)
		return av.ErrKind == bv.ErrKind && av.Message == bv.Message
	default:
		// Builtin, SpecialForm, Closure: only identical by reference.
		return false
	}
}
