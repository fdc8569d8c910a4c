package evaluator

import (
	"fmt"

	"github.com/npillmayer/whileproc/corelang"
	"github.com/npillmayer/whileproc/grammar"
	"github.com/npillmayer/whileproc/sframe"
)

/*
loop evaluates a while statement.

Each round evaluates the guard, then the body, threading environment and
output. When the guard turns out false, the loop yields the environment
and output it had before that last guard evaluation: effects of a false
guard are dropped.
*/
func (ev *Evaluator) loop(w *grammar.WhileStatement, env *sframe.Environment, out *Output) (
	float64, *sframe.Environment, *Output, error) {
	//
	for rounds := 0; ; rounds++ {
		g, genv, gout, err := ev.interpret(w.Guard, env, out)
		if err != nil {
			return 0, genv, gout, err
		}
		if !corelang.IsTrue(g) {
			tracer().Debugf("while loop done after %d rounds", rounds)
			return 0, env, out, nil
		}
		_, env, out, err = ev.interpret(w.Body, genv, gout)
		if err != nil {
			return 0, env, out, err
		}
	}
}

// assign evaluates the right hand side and binds the result to the target
// variable in a new environment. The value of the assignment is the value
// assigned.
func (ev *Evaluator) assign(a *grammar.Assign, env *sframe.Environment, out *Output) (
	float64, *sframe.Environment, *Output, error) {
	//
	v, env, out, err := ev.interpret(a.Expr, env, out)
	if err != nil {
		return 0, env, out, err
	}
	return v, env.With(a.Target.ID, sframe.NumberBinding(v)), out, nil
}

/*
call invokes a procedure.

   (1) Look up the callee. It has to be bound to a procedure with as many
       parameters as there are arguments.

   (2) Evaluate the arguments left to right, each one in the environment
       and output left behind by its predecessor.

   (3) Evaluate the body in a fresh environment binding the parameters to
       the arguments, continuing the output the call started with.

   (4) Restore the caller's environment.

Changes to environment and output made by the argument expressions are
dropped with (3) and (4).
*/
func (ev *Evaluator) call(c *grammar.Call, env *sframe.Environment, out *Output) (
	float64, *sframe.Environment, *Output, error) {
	//
	name := c.Callee.ID
	b, found := env.Lookup(name)
	if !found {
		return 0, env, out, ev.fail(c, fmt.Errorf("%w '%s'", ErrUndefinedVariable, name))
	}
	if !b.IsProc() {
		return 0, env, out, ev.fail(c, fmt.Errorf("%w: '%s'", ErrNotAProcedure, name))
	}
	proc := b.Proc
	if len(proc.Params) != len(c.Args) {
		return 0, env, out, ev.fail(c, fmt.Errorf("%w: %s expects %d argument(s), got %d",
			ErrArity, name, len(proc.Params), len(c.Args)))
	}
	args := make([]float64, len(c.Args))
	argenv, argout := env, out
	for i, arg := range c.Args {
		var err error
		args[i], argenv, argout, err = ev.interpret(arg, argenv, argout)
		if err != nil {
			return 0, env, out, err
		}
	}
	ev.calls.PushFrame(name, args)
	tracer().Debugf("call %s at depth %d", name, ev.calls.Depth())
	v, _, bodyout, err := ev.interpret(proc.Body, sframe.Bind(proc.ParamNames(), args), out)
	ev.calls.PopFrame()
	if err != nil {
		return 0, env, out, err
	}
	return v, env, bodyout, nil
}
