package evaluator

import (
	"github.com/npillmayer/whileproc/grammar"
	"github.com/npillmayer/whileproc/sframe"
)

// Interpreter interprets WhileProc programs.
type Interpreter struct {
	evaluator *Evaluator // expression evaluator
}

// NewInterpreter creates a new interpreter for the WhileProc language.
func NewInterpreter() *Interpreter {
	intp := &Interpreter{
		evaluator: NewEvaluator(),
	}
	return intp
}

// Start evaluates a program, starting with an empty environment and no
// output. It returns everything the program printed.
//
// A program which failed to parse is an *grammar.ErrorMessage and will
// simply print its message. If a runtime error occurs, the output printed
// up to that point is dropped and the error is returned.
func (intp *Interpreter) Start(program grammar.Node) (string, error) {
	if program == nil {
		tracer().Errorf("empty program?")
		return "", ErrNoProgramToExecute
	}
	_, _, out, err := intp.evaluator.Eval(program, sframe.NewEnvironment(), nil)
	if err != nil {
		return "", err
	}
	return out.String(), nil
}

// Run evaluates program with a fresh interpreter.
func Run(program grammar.Node) (string, error) {
	return NewInterpreter().Start(program)
}

// RunSource lexes, parses and evaluates WhileProc source text.
func RunSource(source string) (string, error) {
	return Run(grammar.ParseString(source))
}

// --- Interactive sessions --------------------------------------------------

// Session evaluates a sequence of program fragments, keeping the
// environment from one fragment to the next. Sessions back the REPL.
type Session struct {
	evaluator *Evaluator
	env       *sframe.Environment
}

// NewSession creates a session with an empty environment.
func NewSession() *Session {
	return &Session{
		evaluator: NewEvaluator(),
		env:       sframe.NewEnvironment(),
	}
}

// Exec evaluates a fragment of WhileProc source and returns its output.
// Blank fragments do nothing. A fragment which fails to parse outputs the
// parse error. If a runtime error occurs, the session's environment is
// left as it was before the fragment.
func (s *Session) Exec(source string) (string, error) {
	tokens := grammar.Lex(source)
	if len(tokens) == 0 {
		return "", nil
	}
	program := grammar.Parse(tokens)
	_, env, out, err := s.evaluator.Eval(program, s.env, nil)
	if err != nil {
		return "", err
	}
	s.env = env
	return out.String(), nil
}

// Environment returns the current bindings of the session.
func (s *Session) Environment() *sframe.Environment {
	return s.env
}

// Reset drops all bindings.
func (s *Session) Reset() {
	s.env = sframe.NewEnvironment()
}
