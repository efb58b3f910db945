// Package parse is a recursive-descent parser over lex's token stream,
// building gocas.dev/gocas/expr.Handle trees for ordinary infix
// arithmetic (+ - * / ^, parentheses, named function calls, relational
// comparisons, and `name = expr` assignment) instead of ivy's APL
// operator table.
package parse

import (
	"strings"

	errors "gopkg.in/src-d/go-errors.v1"

	"gocas.dev/gocas/expr"
	"gocas.dev/gocas/lex"
	"gocas.dev/gocas/numeric"
	"gocas.dev/gocas/state"
)

// ErrSyntax reports a malformed line.
var ErrSyntax = errors.NewKind("syntax error: %s")

// Parser turns one line of text into an expr.Handle, consulting st to
// resolve identifiers bound by earlier assignments.
type Parser struct {
	st        *state.State
	lex       *lex.Lexer
	cur, peek lex.Token
}

// New returns a Parser reading tokens from l and resolving identifiers
// against st.
func New(l *lex.Lexer, st *state.State) *Parser {
	p := &Parser{lex: l, st: st}
	p.advance()
	p.advance()
	return p
}

func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.lex.Next()
}

// Result is what parsing one line produces.
type Result struct {
	Value    expr.Handle
	Name     string
	IsAssign bool
}

// Line parses a full line of input. A blank line (immediate EOF)
// returns the zero Result and a nil error; the caller should treat
// that as "nothing to print".
func (p *Parser) Line() (Result, error) {
	if p.cur.Type == lex.EOF {
		return Result{}, nil
	}
	if p.cur.Type == lex.Identifier && p.peek.Type == lex.Assign {
		name := p.cur.Text
		p.advance() // consume identifier
		p.advance() // consume '='
		v, err := p.parseComparison()
		if err != nil {
			return Result{}, err
		}
		if err := p.expectEOF(); err != nil {
			return Result{}, err
		}
		return Result{Value: v, Name: name, IsAssign: true}, nil
	}
	v, err := p.parseComparison()
	if err != nil {
		return Result{}, err
	}
	if err := p.expectEOF(); err != nil {
		return Result{}, err
	}
	return Result{Value: v}, nil
}

func (p *Parser) expectEOF() error {
	if p.cur.Type == lex.EOF {
		return nil
	}
	return ErrSyntax.New("unexpected input: " + p.cur.Text)
}

var relOps = map[string]expr.RelOp{
	"==": expr.RelEQ,
	"!=": expr.RelNE,
	"<":  expr.RelLT,
	"<=": expr.RelLE,
	">":  expr.RelGT,
	">=": expr.RelGE,
}

func (p *Parser) parseComparison() (expr.Handle, error) {
	lhs, err := p.parseAdditive()
	if err != nil {
		return expr.Handle{}, err
	}
	if p.cur.Type != lex.Operator {
		return lhs, nil
	}
	op, ok := relOps[p.cur.Text]
	if !ok {
		return lhs, nil
	}
	p.advance()
	rhs, err := p.parseAdditive()
	if err != nil {
		return expr.Handle{}, err
	}
	return expr.NewRelational(lhs, rhs, op), nil
}

func (p *Parser) parseAdditive() (expr.Handle, error) {
	lhs, err := p.parseTerm()
	if err != nil {
		return expr.Handle{}, err
	}
	for p.cur.Type == lex.Operator && (p.cur.Text == "+" || p.cur.Text == "-") {
		op := p.cur.Text
		p.advance()
		rhs, err := p.parseTerm()
		if err != nil {
			return expr.Handle{}, err
		}
		if op == "+" {
			lhs, err = expr.Add(lhs, rhs)
		} else {
			lhs, err = expr.Sub(lhs, rhs)
		}
		if err != nil {
			return expr.Handle{}, err
		}
	}
	return lhs, nil
}

func (p *Parser) parseTerm() (expr.Handle, error) {
	lhs, err := p.parseUnary()
	if err != nil {
		return expr.Handle{}, err
	}
	for p.cur.Type == lex.Operator && (p.cur.Text == "*" || p.cur.Text == "/") {
		op := p.cur.Text
		p.advance()
		rhs, err := p.parseUnary()
		if err != nil {
			return expr.Handle{}, err
		}
		if op == "*" {
			lhs, err = expr.Mul(lhs, rhs)
		} else {
			lhs, err = expr.Div(lhs, rhs)
		}
		if err != nil {
			return expr.Handle{}, err
		}
	}
	return lhs, nil
}

func (p *Parser) parseUnary() (expr.Handle, error) {
	if p.cur.Type == lex.Operator && p.cur.Text == "-" {
		p.advance()
		v, err := p.parseUnary()
		if err != nil {
			return expr.Handle{}, err
		}
		return expr.Neg(v), nil
	}
	return p.parsePower()
}

func (p *Parser) parsePower() (expr.Handle, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return expr.Handle{}, err
	}
	if p.cur.Type == lex.Operator && p.cur.Text == "^" {
		p.advance()
		exp, err := p.parseUnary() // right-associative, so x^-1 and x^y^z parse as expected
		if err != nil {
			return expr.Handle{}, err
		}
		return expr.Pow(base, exp), nil
	}
	return base, nil
}

func (p *Parser) parsePrimary() (expr.Handle, error) {
	switch p.cur.Type {
	case lex.Number:
		text := p.cur.Text
		p.advance()
		return parseNumber(text, p.st)
	case lex.Identifier:
		name := p.cur.Text
		p.advance()
		if p.cur.Type == lex.LeftParen {
			return p.parseCall(name)
		}
		if v, ok := p.st.Lookup(name); ok {
			return v, nil
		}
		return expr.Sym(name), nil
	case lex.LeftParen:
		p.advance()
		v, err := p.parseComparison()
		if err != nil {
			return expr.Handle{}, err
		}
		if p.cur.Type != lex.RightParen {
			return expr.Handle{}, ErrSyntax.New("missing closing paren")
		}
		p.advance()
		return v, nil
	case lex.EOF:
		return expr.Handle{}, ErrSyntax.New("unexpected end of input")
	default:
		return expr.Handle{}, ErrSyntax.New("unexpected token: " + p.cur.Text)
	}
}

func (p *Parser) parseCall(name string) (expr.Handle, error) {
	p.advance() // consume '('
	var args []expr.Handle
	if p.cur.Type != lex.RightParen {
		for {
			a, err := p.parseComparison()
			if err != nil {
				return expr.Handle{}, err
			}
			args = append(args, a)
			if p.cur.Type != lex.Comma {
				break
			}
			p.advance()
		}
	}
	if p.cur.Type != lex.RightParen {
		return expr.Handle{}, ErrSyntax.New("missing closing paren in call to " + name)
	}
	p.advance()
	return expr.NewFunction(name, args), nil
}

func parseNumber(text string, st *state.State) (expr.Handle, error) {
	if strings.ContainsAny(text, ".eE") {
		f, err := numeric.ParseFloat(text, st.Config().FloatPrecision())
		if err != nil {
			return expr.Handle{}, ErrSyntax.New("bad float literal " + text + ": " + err.Error())
		}
		return expr.NewNumeric(f), nil
	}
	i, ok := numeric.ParseInteger(text, 10)
	if !ok {
		return expr.Handle{}, ErrSyntax.New("bad integer literal " + text)
	}
	return expr.NewNumeric(i), nil
}
