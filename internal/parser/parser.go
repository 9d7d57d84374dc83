// Package parser implements the recursive-descent half of the reader
// (§4.3): it consumes tokens from a lexer.Lexer and builds a
// heap-allocated S-expression tree via runtime.Heap.
//
// The parser runs with the heap in PhaseRead so that intermediate cons
// cells built while a form is still under construction are not
// reclaimed by a collection before they are attached to their parent
// (§4.1 "Phase gate").
package parser

import (
	"io"
	"strconv"

	interperrors "github.com/commander-trashdin/trash-scheme/internal/errors"
	"github.com/commander-trashdin/trash-scheme/internal/interp/runtime"
	"github.com/commander-trashdin/trash-scheme/internal/lexer"
)

// Parser turns a token stream into runtime.Value trees.
type Parser struct {
	lex     *lexer.Lexer
	heap    *runtime.Heap
	balance int // signed paren-balance counter; negative is fatal
}

// New creates a Parser reading tokens from lex and allocating through
// heap.
func New(lex *lexer.Lexer, heap *runtime.Heap) *Parser {
	return &Parser{lex: lex, heap: heap}
}

// ParseForm reads exactly one top-level form. It returns io.EOF (and a
// nil Value) when the input stream is exhausted with no form pending —
// the signal the REPL and script drivers use to stop reading.
func (p *Parser) ParseForm() (runtime.Value, error) {
	p.heap.SetPhase(runtime.PhaseRead)
	defer p.heap.SetPhase(runtime.PhaseEval)

	if p.lex.Peek().Type == lexer.EOF {
		return nil, io.EOF
	}
	return p.parseExpr()
}

// ParseProgram reads every form in the stream, stopping at the first
// SyntaxError (script mode is fatal on malformed input per §6).
func (p *Parser) ParseProgram() ([]runtime.Value, error) {
	var forms []runtime.Value
	for {
		form, err := p.ParseForm()
		if err == io.EOF {
			return forms, nil
		}
		if err != nil {
			return forms, err
		}
		forms = append(forms, form)
	}
}

func (p *Parser) parseExpr() (runtime.Value, error) {
	tok := p.lex.Next()
	switch tok.Type {
	case lexer.EOF:
		return nil, interperrors.NewSyntaxError(interperrors.MsgUnmatchedOpenParen)
	case lexer.Number:
		n, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			return nil, interperrors.NewSyntaxError("malformed number: %s", tok.Literal)
		}
		return p.heap.NewInt(n), nil
	case lexer.String:
		return p.heap.NewString(tok.Literal), nil
	case lexer.Symbol:
		switch tok.Literal {
		case "#t":
			return p.heap.True, nil
		case "#f":
			return p.heap.False, nil
		default:
			return p.heap.Intern(tok.Literal), nil
		}
	case lexer.Quote:
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		quote := p.heap.Intern("quote")
		return p.heap.NewPair(quote, p.heap.NewPair(inner, p.heap.Null)), nil
	case lexer.ParenOpen:
		return p.parseList()
	case lexer.ParenClose:
		return nil, interperrors.NewSyntaxError(interperrors.MsgUnexpectedCloseParen)
	case lexer.Dot:
		return nil, interperrors.NewSyntaxError(interperrors.MsgUnexpectedDot)
	default:
		return nil, interperrors.NewSyntaxError("unexpected token %q", tok.Literal)
	}
}

// parseList parses the body of a list after its opening '(' has been
// consumed: repeat reading sub-forms; on a Dot, read one more sub-form
// as the final cdr and require ')'; on ')', terminate with a Null cdr.
func (p *Parser) parseList() (runtime.Value, error) {
	p.balance++
	var elems []runtime.Value

	for {
		switch p.lex.Peek().Type {
		case lexer.EOF:
			return nil, interperrors.NewSyntaxError(interperrors.MsgUnmatchedOpenParen)

		case lexer.ParenClose:
			p.lex.Next()
			if err := p.closeParen(); err != nil {
				return nil, err
			}
			return buildList(p.heap, elems, p.heap.Null), nil

		case lexer.Dot:
			p.lex.Next()
			if len(elems) == 0 {
				return nil, interperrors.NewSyntaxError(interperrors.MsgMalformedDottedPair, "missing head before '.'")
			}
			tail, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			closeTok := p.lex.Next()
			if closeTok.Type != lexer.ParenClose {
				return nil, interperrors.NewSyntaxError(interperrors.MsgMalformedDottedPair, "expected ')' after dotted tail")
			}
			if err := p.closeParen(); err != nil {
				return nil, err
			}
			return buildList(p.heap, elems, tail), nil

		default:
			elem, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			elems = append(elems, elem)
		}
	}
}

func (p *Parser) closeParen() error {
	p.balance--
	if p.balance < 0 {
		return interperrors.NewSyntaxError(interperrors.MsgNegativeParenBalance)
	}
	return nil
}

func buildList(h *runtime.Heap, elems []runtime.Value, tail runtime.Value) runtime.Value {
	result := tail
	for i := len(elems) - 1; i >= 0; i-- {
		result = h.NewPair(elems[i], result)
	}
	return result
}
