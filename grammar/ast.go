package grammar

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/whileproc"
)

// Node is an immutable node of a WhileProc abstract syntax tree.
// String renders a node fully parenthesized; the result re-parses to an
// equivalent tree.
type Node interface {
	String() string
	isNode()
}

// Op is the operator of a binary expression.
type Op int8

// Binary operators, from low to high precedence.
const (
	LessThan Op = iota
	Equal
	Plus
	Minus
	Mult
	Div
	Expo
)

var opSymbols = [...]string{"<", "=", "+", "-", "*", "/", "^"}

func (op Op) String() string {
	if op < 0 || int(op) >= len(opSymbols) {
		return fmt.Sprintf("Op(%d)", op)
	}
	return opSymbols[op]
}

// operator returns the binary operator denoted by a symbol token.
func operator(token string) (Op, bool) {
	for i, s := range opSymbols {
		if s == token {
			return Op(i), true
		}
	}
	return 0, false
}

// IsRelational is a predicate: does op compare its operands?
func (op Op) IsRelational() bool {
	return op == LessThan || op == Equal
}

// --- Statements ------------------------------------------------------------

// SeqStatement is the sequential composition of two statements.
type SeqStatement struct {
	Lhs, Rhs Node
}

// ProcStatement defines a procedure. Evaluated as a statement, it binds its
// own name.
type ProcStatement struct {
	Name   *Variable
	Params []*Variable
	Body   Node
}

// IfStatement is a conditional. There is no 'if' without 'else'.
type IfStatement struct {
	Guard Node
	Then  Node
	Else  Node
}

type WhileStatement struct {
	Guard Node
	Body  Node
}

type PrintStatement struct {
	Expr Node
}

// --- Expressions -----------------------------------------------------------

// BinaryExpr is an arithmetic or relational expression.
type BinaryExpr struct {
	Op       Op
	Lhs, Rhs Node
}

// Assign binds the value of Expr to Target. Assignments are expressions.
type Assign struct {
	Target *Variable
	Expr   Node
}

// Call invokes a procedure.
type Call struct {
	Callee *Variable
	Args   []Node
}

// Variable references a binding by name.
type Variable struct {
	ID string
}

// Literal is a numeric constant.
type Literal struct {
	Value float64
}

// ErrorMessage is the result of a failed parse. It is both a node, which
// prints its text when evaluated, and an error.
type ErrorMessage struct {
	Text string
}

func (e *ErrorMessage) Error() string {
	return e.Text
}

func (*SeqStatement) isNode()   {}
func (*ProcStatement) isNode()  {}
func (*IfStatement) isNode()    {}
func (*WhileStatement) isNode() {}
func (*PrintStatement) isNode() {}
func (*BinaryExpr) isNode()     {}
func (*Assign) isNode()         {}
func (*Call) isNode()           {}
func (*Variable) isNode()       {}
func (*Literal) isNode()        {}
func (*ErrorMessage) isNode()   {}

// --- Canonical rendering ---------------------------------------------------

func (s *SeqStatement) String() string {
	return s.Lhs.String() + ";" + s.Rhs.String()
}

func (p *ProcStatement) String() string {
	return "proc " + p.Name.String() + "(" + joinVars(p.Params) + "){" + p.Body.String() + "}"
}

func (i *IfStatement) String() string {
	return "if " + i.Guard.String() + " {" + i.Then.String() + "} else {" + i.Else.String() + "}"
}

func (w *WhileStatement) String() string {
	return "while " + w.Guard.String() + " {" + w.Body.String() + "}"
}

func (p *PrintStatement) String() string {
	return "print " + p.Expr.String()
}

func (b *BinaryExpr) String() string {
	return "(" + b.Lhs.String() + b.Op.String() + b.Rhs.String() + ")"
}

func (a *Assign) String() string {
	return "(" + a.Target.String() + ":=" + a.Expr.String() + ")"
}

func (c *Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}
	return c.Callee.String() + "(" + strings.Join(args, ",") + ")"
}

func (v *Variable) String() string {
	return v.ID
}

// String renders the literal in fixed notation, as the lexer does not know
// about exponents.
func (l *Literal) String() string {
	if math.IsInf(l.Value, 0) || math.IsNaN(l.Value) {
		return whileproc.FormatNumber(l.Value)
	}
	s := strconv.FormatFloat(l.Value, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func (e *ErrorMessage) String() string {
	return e.Text
}

func joinVars(vars []*Variable) string {
	ids := make([]string, len(vars))
	for i, v := range vars {
		ids[i] = v.ID
	}
	return strings.Join(ids, ",")
}

// ParamNames returns the names of the formal parameters of p.
func (p *ProcStatement) ParamNames() []string {
	names := make([]string, len(p.Params))
	for i, v := range p.Params {
		names[i] = v.ID
	}
	return names
}

// --- Tree dump -------------------------------------------------------------

// Dump writes an indented outline of the tree rooted at n to w, one node
// per line.
func Dump(w io.Writer, n Node) {
	dump(w, n, 0)
}

func dump(w io.Writer, n Node, level int) {
	indent := strings.Repeat("  ", level)
	switch n := n.(type) {
	case *SeqStatement:
		fmt.Fprintf(w, "%sseq\n", indent)
		dump(w, n.Lhs, level+1)
		dump(w, n.Rhs, level+1)
	case *ProcStatement:
		fmt.Fprintf(w, "%sproc %s(%s)\n", indent, n.Name.ID, joinVars(n.Params))
		dump(w, n.Body, level+1)
	case *IfStatement:
		fmt.Fprintf(w, "%sif\n", indent)
		dump(w, n.Guard, level+1)
		fmt.Fprintf(w, "%sthen\n", indent)
		dump(w, n.Then, level+1)
		fmt.Fprintf(w, "%selse\n", indent)
		dump(w, n.Else, level+1)
	case *WhileStatement:
		fmt.Fprintf(w, "%swhile\n", indent)
		dump(w, n.Guard, level+1)
		fmt.Fprintf(w, "%sdo\n", indent)
		dump(w, n.Body, level+1)
	case *PrintStatement:
		fmt.Fprintf(w, "%sprint\n", indent)
		dump(w, n.Expr, level+1)
	case *BinaryExpr:
		fmt.Fprintf(w, "%s%s\n", indent, n.Op)
		dump(w, n.Lhs, level+1)
		dump(w, n.Rhs, level+1)
	case *Assign:
		fmt.Fprintf(w, "%s%s :=\n", indent, n.Target.ID)
		dump(w, n.Expr, level+1)
	case *Call:
		fmt.Fprintf(w, "%scall %s\n", indent, n.Callee.ID)
		for _, a := range n.Args {
			dump(w, a, level+1)
		}
	case *ErrorMessage:
		fmt.Fprintf(w, "%serror %q\n", indent, n.Text)
	default: // variables and literals
		fmt.Fprintf(w, "%s%s\n", indent, n)
	}
}
