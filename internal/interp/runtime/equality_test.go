package runtime

import "testing"

func TestEqIdentity(t *testing.T) {
	h := NewHeap()
	a := h.Intern("foo")
	b := h.Intern("foo")
	if !Eq(a, b) {
		t.Error("interned symbols with equal names must be eq?")
	}
	p1 := h.NewPair(h.NewInt(1), h.Null)
	p2 := h.NewPair(h.NewInt(1), h.Null)
	if Eq(p1, p2) {
		t.Error("distinct pairs must not be eq? even with equal contents")
	}
}

func TestEqlStructural(t *testing.T) {
	h := NewHeap()
	p1 := h.NewPair(h.NewInt(1), h.NewPair(h.NewInt(2), h.Null))
	p2 := h.NewPair(h.NewInt(1), h.NewPair(h.NewInt(2), h.Null))
	if !Eql(p1, p2) {
		t.Error("structurally identical pairs must be eql?")
	}

	p3 := h.NewPair(h.NewInt(1), h.NewPair(h.NewInt(3), h.Null))
	if Eql(p1, p3) {
		t.Error("structurally different pairs must not be eql?")
	}
}

func TestEqImpliesEql(t *testing.T) {
	h := NewHeap()
	v := h.NewString("same object")
	if Eq(v, v) && !Eql(v, v) {
		t.Error("eq? must imply eql?")
	}
}

func TestEqlOfIdenticalAtomsImpliesEq(t *testing.T) {
	h := NewHeap()
	a := h.Intern("atom")
	b := h.Intern("atom")
	if Eql(a, b) && !Eq(a, b) {
		t.Error("eql? of identical interned atoms must imply eq?")
	}
}
