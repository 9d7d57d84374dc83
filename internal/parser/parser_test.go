package parser

import (
	"testing"

	interperrors "github.com/commander-trashdin/trash-scheme/internal/errors"
	"github.com/commander-trashdin/trash-scheme/internal/interp/runtime"
	"github.com/commander-trashdin/trash-scheme/internal/lexer"
)

func parseOne(t *testing.T, src string) (runtime.Value, *runtime.Heap) {
	t.Helper()
	h := runtime.NewHeap()
	p := New(lexer.New(src), h)
	v, err := p.ParseForm()
	if err != nil {
		t.Fatalf("ParseForm(%q) error: %v", src, err)
	}
	return v, h
}

func TestParseAtoms(t *testing.T) {
	v, _ := parseOne(t, "42")
	if iv, ok := v.(*runtime.IntValue); !ok || iv.Val != 42 {
		t.Errorf("got %v", v)
	}

	v, _ = parseOne(t, "-7")
	if iv, ok := v.(*runtime.IntValue); !ok || iv.Val != -7 {
		t.Errorf("got %v", v)
	}

	v, h := parseOne(t, "#t")
	if v != h.True {
		t.Errorf("expected #t to parse to the True singleton, got %v", v)
	}

	v, _ = parseOne(t, "foo")
	if sv, ok := v.(*runtime.SymbolValue); !ok || sv.Name != "foo" {
		t.Errorf("got %v", v)
	}

	v, _ = parseOne(t, `"hi"`)
	if sv, ok := v.(*runtime.StringValue); !ok || sv.Val != "hi" {
		t.Errorf("got %v", v)
	}
}

func TestParseProperList(t *testing.T) {
	v, _ := parseOne(t, "(1 2 3)")
	if got, want := v.String(), "(1 2 3)"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestParseDottedPair(t *testing.T) {
	v, _ := parseOne(t, "(1 2 . 3)")
	if got, want := v.String(), "(1 2 . 3)"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestParseQuoteExpandsToQuoteForm(t *testing.T) {
	v, _ := parseOne(t, "'(1 2 . 3)")
	if got, want := v.String(), "(quote (1 2 . 3))"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestParseEmptyList(t *testing.T) {
	v, h := parseOne(t, "()")
	if v != h.Null {
		t.Errorf("expected () to parse to the Null singleton, got %v", v)
	}
}

func TestParseIdempotence(t *testing.T) {
	inputs := []string{"42", "foo", "(1 2 3)", "(1 . 2)", "(a (b c) d)", `"hi"`}
	for _, in := range inputs {
		h := runtime.NewHeap()
		p1 := New(lexer.New(in), h)
		v1, err := p1.ParseForm()
		if err != nil {
			t.Fatalf("first parse of %q failed: %v", in, err)
		}
		printed := v1.String()
		p2 := New(lexer.New(printed), h)
		v2, err := p2.ParseForm()
		if err != nil {
			t.Fatalf("re-parse of %q (from %q) failed: %v", printed, in, err)
		}
		if !runtime.Eql(v1, v2) {
			t.Errorf("parse not idempotent for %q: %v vs %v", in, v1, v2)
		}
	}
}

func TestParseNegativeCases(t *testing.T) {
	cases := []string{
		"(", "(1", "(1 .", "( .", "(1 . ()", "(1 . )", "(1 . 2 3)", ")(1)",
	}
	for _, src := range cases {
		h := runtime.NewHeap()
		p := New(lexer.New(src), h)
		_, err := p.ParseForm()
		if err == nil {
			t.Errorf("expected SyntaxError for %q, got none", src)
			continue
		}
		ie, ok := err.(*interperrors.InterpreterError)
		if !ok {
			t.Errorf("expected *errors.InterpreterError for %q, got %T", src, err)
			continue
		}
		if ie.Kind != runtime.SyntaxError {
			t.Errorf("expected SyntaxError for %q, got %v", src, ie.Kind)
		}
	}
}

func TestParseDeeplyNestedList(t *testing.T) {
	const depth = 1000
	src := ""
	for i := 0; i < depth; i++ {
		src += "(1 "
	}
	src += "2"
	for i := 0; i < depth; i++ {
		src += ")"
	}
	h := runtime.NewHeap(runtime.WithThreshold(1 << 30))
	p := New(lexer.New(src), h)
	v, err := p.ParseForm()
	if err != nil {
		t.Fatalf("deeply nested parse failed: %v", err)
	}
	// Count the nesting depth back out: each level is (1 <next level>),
	// so the next level is the second element of the current one.
	count := 0
	cur := v
	for {
		pv, ok := cur.(*runtime.PairValue)
		if !ok {
			break
		}
		count++
		rest, ok := pv.Cdr.(*runtime.PairValue)
		if !ok {
			break
		}
		cur = rest.Car
	}
	if count != depth {
		t.Errorf("expected %d levels of nesting, got %d", depth, count)
	}

	// "collectable": guarded, it survives a cycle; released, it is swept.
	release := h.GuardValue(v)
	h.CollectGarbage()
	if h.NumLive() == 0 {
		t.Error("a guarded deeply nested structure must survive collection")
	}
	release()
	h.CollectGarbage()
	if h.NumLive() != 0 {
		t.Errorf("expected the structure to be fully reclaimed once unguarded, %d objects remain", h.NumLive())
	}
}

func TestParseProgramMultipleForms(t *testing.T) {
	h := runtime.NewHeap()
	p := New(lexer.New("1 2 3"), h)
	forms, err := p.ParseProgram()
	if err != nil {
		t.Fatalf("ParseProgram error: %v", err)
	}
	if len(forms) != 3 {
		t.Fatalf("expected 3 forms, got %d", len(forms))
	}
}
