package evaluator

import (
	"fmt"

	"github.com/npillmayer/whileproc"
	"github.com/npillmayer/whileproc/corelang"
	"github.com/npillmayer/whileproc/grammar"
	"github.com/npillmayer/whileproc/sframe"
)

// Evaluator evaluates AST nodes.
type Evaluator struct {
	lang  *corelang.Language // operator semantics
	calls *sframe.CallStack  // active procedure calls
}

// NewEvaluator creates an evaluator for the standard WhileProc language.
func NewEvaluator() *Evaluator {
	return &Evaluator{
		lang:  corelang.LoadStandardLanguage(),
		calls: sframe.NewCallStack(),
	}
}

// Eval evaluates node n in environment env, with output out printed so far.
// It returns the value of n together with the environment and the output
// after evaluation.
//
// If evaluation fails, the error is of type *RuntimeError.
func (ev *Evaluator) Eval(n grammar.Node, env *sframe.Environment, out *Output) (
	float64, *sframe.Environment, *Output, error) {
	//
	v, env, out, err := ev.interpret(n, env, out)
	if err != nil {
		ev.calls.Clear()
	}
	return v, env, out, err
}

func (ev *Evaluator) interpret(n grammar.Node, env *sframe.Environment, out *Output) (
	float64, *sframe.Environment, *Output, error) {
	//
	switch n := n.(type) {
	case *grammar.SeqStatement:
		_, env, out, err := ev.interpret(n.Lhs, env, out)
		if err != nil {
			return 0, env, out, err
		}
		return ev.interpret(n.Rhs, env, out)
	case *grammar.ProcStatement:
		tracer().P("proc", n.Name.ID).Debugf("define procedure")
		return 1, env.With(n.Name.ID, sframe.ProcBinding(n)), out, nil
	case *grammar.IfStatement:
		g, env, out, err := ev.interpret(n.Guard, env, out)
		if err != nil {
			return 0, env, out, err
		}
		if corelang.IsTrue(g) {
			return ev.interpret(n.Then, env, out)
		}
		return ev.interpret(n.Else, env, out)
	case *grammar.WhileStatement:
		return ev.loop(n, env, out)
	case *grammar.PrintStatement:
		v, env, out, err := ev.interpret(n.Expr, env, out)
		if err != nil {
			return 0, env, out, err
		}
		return 0, env, out.Append(whileproc.FormatNumber(v) + "\n"), nil
	case *grammar.BinaryExpr:
		lhs, env, out, err := ev.interpret(n.Lhs, env, out)
		if err != nil {
			return 0, env, out, err
		}
		rhs, env, out, err := ev.interpret(n.Rhs, env, out)
		if err != nil {
			return 0, env, out, err
		}
		v, err := ev.lang.Apply(n.Op, lhs, rhs)
		if err != nil {
			return 0, env, out, ev.fail(n, err)
		}
		return v, env, out, nil
	case *grammar.Assign:
		return ev.assign(n, env, out)
	case *grammar.Call:
		return ev.call(n, env, out)
	case *grammar.Variable:
		b, found := env.Lookup(n.ID)
		if !found {
			return 0, env, out, ev.fail(n, fmt.Errorf("%w '%s'", ErrUndefinedVariable, n.ID))
		}
		if b.IsProc() {
			return 0, env, out, ev.fail(n, fmt.Errorf("%w: '%s'", ErrProcedureAsValue, n.ID))
		}
		return b.Number, env, out, nil
	case *grammar.Literal:
		return n.Value, env, out, nil
	case *grammar.ErrorMessage:
		return 0, env, out.Append(n.Text + "\n"), nil
	}
	panic(fmt.Sprintf("evaluator: unknown AST node type %T", n))
}

// fail wraps err into a runtime error, recording the active calls.
func (ev *Evaluator) fail(n grammar.Node, err error) error {
	rterr := &RuntimeError{Err: err, Node: n, Trace: ev.calls.Trace()}
	tracer().Errorf("runtime error: %v", rterr)
	return rterr
}
