package trashscheme_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/commander-trashdin/trash-scheme/internal/interp/runtime"
	"github.com/commander-trashdin/trash-scheme/pkg/trashscheme"
)

func TestEvalStringArithmetic(t *testing.T) {
	interp := trashscheme.New()
	v, err := interp.EvalString("(+ 1 2 3)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if iv, ok := v.(*runtime.IntValue); !ok || iv.Val != 6 {
		t.Errorf("got %v", v)
	}
}

func TestEvalStringPrintUsesConfiguredStdout(t *testing.T) {
	var buf bytes.Buffer
	interp := trashscheme.New(trashscheme.WithStdout(&buf))
	_, err := interp.EvalString(`(print "hello")`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := buf.String(), "\"hello\"\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestRunFileRejectsWrongExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.txt")
	if err := os.WriteFile(path, []byte("(+ 1 2)"), 0o644); err != nil {
		t.Fatal(err)
	}
	interp := trashscheme.New()
	if _, err := interp.RunFile(path); err == nil {
		t.Fatal("expected an error for a non-.trash extension")
	}
}

func TestRunFileEvaluatesEveryForm(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.trash")
	src := "(define x 1) (set! x (+ x 1)) x"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	interp := trashscheme.New()
	v, err := interp.RunFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if iv, ok := v.(*runtime.IntValue); !ok || iv.Val != 2 {
		t.Errorf("got %v", v)
	}
}
