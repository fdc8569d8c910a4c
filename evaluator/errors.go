package evaluator

import (
	"errors"
	"strings"

	"github.com/npillmayer/whileproc/grammar"
	"github.com/npillmayer/whileproc/sframe"
)

// Errors reported by the evaluator. Runtime errors are wrapped into a
// *RuntimeError; use errors.Is to check for a kind of error.
var (
	ErrNoProgramToExecute = errors.New("no program to execute")
	ErrUndefinedVariable  = errors.New("undefined variable")
	ErrNotAProcedure      = errors.New("invoked value is not a procedure")
	ErrArity              = errors.New("procedure call with wrong parity")
	ErrProcedureAsValue   = errors.New("procedure used as a value")
)

// RuntimeError is an error which halted the evaluation of a program.
type RuntimeError struct {
	Err   error              // what went wrong
	Node  grammar.Node       // node which caused the error
	Trace []sframe.CallFrame // active calls, innermost first
}

func (e *RuntimeError) Error() string {
	if len(e.Trace) == 0 {
		return e.Err.Error()
	}
	return e.Err.Error() + " (in " + e.CallTrace() + ")"
}

func (e *RuntimeError) Unwrap() error {
	return e.Err
}

// CallTrace renders the calls active when the error occurred, innermost
// first.
func (e *RuntimeError) CallTrace() string {
	calls := make([]string, len(e.Trace))
	for i, f := range e.Trace {
		calls[i] = f.String()
	}
	return strings.Join(calls, " < ")
}
