// Package runtime implements the value heap, the tracing garbage collector,
// and the environment model shared by the reader and the evaluator.
package runtime

// Kind discriminates the variant a Value carries. A Value's Kind never
// changes after allocation, even though a Pair's payload may mutate.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindSymbol
	KindString
	KindPair
	KindBuiltin
	KindSpecialForm
	KindClosure
	KindError

	// KindAny is the top type "t" of the builtin argument-type lattice
	// (§4.4 "Builtin invocation"). It never tags an actual Value; it
	// only appears in an ArityTypes declaring "any variant accepted".
	KindAny
)

func (k Kind) String() string {
	switch k {
	case KindAny:
		return "t"
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindSymbol:
		return "symbol"
	case KindString:
		return "string"
	case KindPair:
		return "pair"
	case KindBuiltin:
		return "builtin"
	case KindSpecialForm:
		return "special-form"
	case KindClosure:
		return "closure"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}
