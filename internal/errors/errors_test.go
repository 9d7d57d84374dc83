package errors

import (
	"testing"

	"github.com/commander-trashdin/trash-scheme/internal/interp/runtime"
)

func TestErrorString(t *testing.T) {
	e := NewRuntimeError(MsgDivisionByZero)
	if got, want := e.Error(), "Runtime error: division by zero"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestToValueRoundTrip(t *testing.T) {
	h := runtime.NewHeap()
	e := NewNameError(MsgUnboundLookup, "foo")
	v := e.ToValue(h)
	if v.ErrKind != runtime.NameError {
		t.Errorf("ToValue kind = %v, want NameError", v.ErrKind)
	}
	back := FromValue(v)
	if back.Kind != e.Kind || back.Message != e.Message {
		t.Errorf("round trip mismatch: got %+v, want %+v", back, e)
	}
}

func TestAsExitSignal(t *testing.T) {
	sig := &ExitSignal{Code: 0}
	got, ok := AsExitSignal(sig)
	if !ok || got != sig {
		t.Fatal("expected AsExitSignal to find the signal directly")
	}
	wrapped := WrapError(sig, runtime.RuntimeError)
	got, ok = AsExitSignal(wrapped)
	if !ok || got != sig {
		t.Fatal("expected AsExitSignal to unwrap to the signal")
	}

	if _, ok := AsExitSignal(NewRuntimeError("not an exit")); ok {
		t.Fatal("ordinary runtime errors must not report as exit signals")
	}
}
