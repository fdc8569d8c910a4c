package grammar

import (
	"fmt"
	"strings"
)

// Parse parses a sequence of tokens into an AST.
//
// If the tokens do not form a valid WhileProc program, the result is an
// *ErrorMessage. Tokens following a complete program are ignored.
func Parse(tokens []string) Node {
	p := &parser{stream: newTokenStream(tokens)}
	root := p.parseP()
	if e, ok := root.(*ErrorMessage); ok {
		tracer().Infof("parse error: %s", e.Text)
		return root
	}
	if !p.stream.atEOF() {
		tracer().Errorf("ignoring tokens after end of program: %s",
			strings.Join(p.stream.rest(), " "))
	}
	return root
}

// ParseString lexes and parses WhileProc source text.
func ParseString(source string) Node {
	return Parse(Lex(source))
}

type parser struct {
	stream *tokenStream
}

// failed is a predicate: is n the result of a failed parse?
func failed(n Node) bool {
	_, ok := n.(*ErrorMessage)
	return ok
}

func errorf(format string, args ...interface{}) *ErrorMessage {
	return &ErrorMessage{Text: fmt.Sprintf(format, args...)}
}

// P → S { ';' S }
func (p *parser) parseP() Node {
	s := p.parseS()
	if failed(s) {
		return s
	}
	for p.stream.peek() == ";" {
		p.stream.pop()
		s1 := p.parseS()
		if failed(s1) {
			return s1
		}
		s = &SeqStatement{Lhs: s, Rhs: s1}
	}
	return s
}

// S → proc … | if … | while … | print C | C
func (p *parser) parseS() Node {
	switch p.stream.peek() {
	case "proc":
		return p.parseProc()
	case "if":
		return p.parseIf()
	case "while":
		return p.parseWhile()
	case "print":
		p.stream.pop()
		c := p.parseC()
		if failed(c) {
			return c
		}
		return &PrintStatement{Expr: c}
	}
	return p.parseC()
}

func (p *parser) parseProc() Node {
	p.stream.pop() // 'proc'
	if !IsIdentifier(p.stream.peek()) {
		return errorf("Expected Identifier")
	}
	name := &Variable{ID: p.stream.pop()}
	if e := p.stream.expect("("); e != nil {
		return e
	}
	params, e := p.parseL()
	if e != nil {
		return e
	}
	if e := p.stream.expect(")"); e != nil {
		return e
	}
	body := p.parseBlock()
	if failed(body) {
		return body
	}
	return &ProcStatement{Name: name, Params: params, Body: body}
}

func (p *parser) parseIf() Node {
	p.stream.pop() // 'if'
	guard := p.parseC()
	if failed(guard) {
		return guard
	}
	then := p.parseBlock()
	if failed(then) {
		return then
	}
	if e := p.stream.expect("else"); e != nil {
		return errorf("Expected else statement")
	}
	els := p.parseBlock()
	if failed(els) {
		return els
	}
	return &IfStatement{Guard: guard, Then: then, Else: els}
}

func (p *parser) parseWhile() Node {
	p.stream.pop() // 'while'
	guard := p.parseC()
	if failed(guard) {
		return guard
	}
	body := p.parseBlock()
	if failed(body) {
		return body
	}
	return &WhileStatement{Guard: guard, Body: body}
}

// parseBlock parses '{' P '}'.
func (p *parser) parseBlock() Node {
	if e := p.stream.expect("{"); e != nil {
		return e
	}
	body := p.parseP()
	if failed(body) {
		return body
	}
	if e := p.stream.expect("}"); e != nil {
		return e
	}
	return body
}

// L → ε | id X,  X → ',' id X | ε
func (p *parser) parseL() ([]*Variable, *ErrorMessage) {
	var params []*Variable
	if !IsIdentifier(p.stream.peek()) {
		return params, nil
	}
	params = append(params, &Variable{ID: p.stream.pop()})
	for p.stream.peek() == "," {
		p.stream.pop()
		if !IsIdentifier(p.stream.peek()) {
			return nil, errorf("Expected Variable Identifier after ','")
		}
		params = append(params, &Variable{ID: p.stream.pop()})
	}
	return params, nil
}

// C → E [ ('<' | '=') E ]
func (p *parser) parseC() Node {
	e := p.parseE()
	if failed(e) {
		return e
	}
	op, ok := operator(p.stream.peek())
	if !ok || !op.IsRelational() {
		return e
	}
	p.stream.pop()
	e1 := p.parseE()
	if failed(e1) {
		return e1
	}
	return &BinaryExpr{Op: op, Lhs: e, Rhs: e1}
}

// E → T { ('+' | '-') T }
func (p *parser) parseE() Node {
	t := p.parseT()
	if failed(t) {
		return t
	}
	for {
		var op Op
		switch p.stream.peek() {
		case "+":
			op = Plus
		case "-":
			op = Minus
		default:
			return t
		}
		p.stream.pop()
		t1 := p.parseT()
		if failed(t1) {
			return t1
		}
		t = &BinaryExpr{Op: op, Lhs: t, Rhs: t1}
	}
}

// T → F { ('*' | '/') F }
func (p *parser) parseT() Node {
	f := p.parseF()
	if failed(f) {
		return f
	}
	for {
		var op Op
		switch p.stream.peek() {
		case "*":
			op = Mult
		case "/":
			op = Div
		default:
			return f
		}
		p.stream.pop()
		f1 := p.parseF()
		if failed(f1) {
			return f1
		}
		f = &BinaryExpr{Op: op, Lhs: f, Rhs: f1}
	}
}

// F → A [ '^' F ]
func (p *parser) parseF() Node {
	a := p.parseA()
	if failed(a) {
		return a
	}
	if p.stream.peek() != "^" {
		return a
	}
	p.stream.pop()
	f := p.parseF()
	if failed(f) {
		return f
	}
	return &BinaryExpr{Op: Expo, Lhs: a, Rhs: f}
}

// A → '(' C ')' | id ':' '=' C | id '(' R ')' | id | number
func (p *parser) parseA() Node {
	token := p.stream.peek()
	switch {
	case token == "(":
		p.stream.pop()
		c := p.parseC()
		if failed(c) {
			return c
		}
		if e := p.stream.expect(")"); e != nil {
			return e
		}
		return c
	case IsIdentifier(token):
		v := &Variable{ID: p.stream.pop()}
		switch p.stream.peek() {
		case ":":
			p.stream.pop()
			if e := p.stream.expect("="); e != nil {
				return errorf("Expected a '=' after ':'")
			}
			c := p.parseC()
			if failed(c) {
				return c
			}
			return &Assign{Target: v, Expr: c}
		case "(":
			p.stream.pop()
			args, e := p.parseR()
			if e != nil {
				return e
			}
			if e := p.stream.expect(")"); e != nil {
				return e
			}
			return &Call{Callee: v, Args: args}
		}
		return v
	case IsNumber(token):
		p.stream.pop()
		return &Literal{Value: numberValue(token)}
	}
	if p.stream.atEOF() {
		token = "end of input"
	}
	return errorf("syntax Error after %s. Expected a '(' or an identifier or a number", token)
}

// R → ε | C { ',' C }
func (p *parser) parseR() ([]Node, *ErrorMessage) {
	var args []Node
	if p.stream.peek() == ")" {
		return args, nil
	}
	for {
		c := p.parseC()
		if e, ok := c.(*ErrorMessage); ok {
			return nil, e
		}
		args = append(args, c)
		if p.stream.peek() != "," {
			return args, nil
		}
		p.stream.pop()
	}
}
