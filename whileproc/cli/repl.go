package cli

import (
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/npillmayer/whileproc/evaluator"
	"github.com/npillmayer/whileproc/grammar"
	"github.com/npillmayer/whileproc/sframe"
	"github.com/npillmayer/whileproc/whileproc/ui/termui"
)

func runREPL(session *evaluator.Session, dumpAST bool) {
	tracer().Infof("whileproc REPL started")
	intp := &whileprocIntpr{session: session, dumpAST: dumpAST}
	histfile := ""
	if paths, err := DefaultAppPaths(appTag); err == nil {
		histfile = paths.HistoryFile()
	}
	intp.BaseREPL = termui.NewBaseREPL("whileproc", version, histfile)
	intp.Interpreter = intp
	intp.Helper = func(w io.Writer) {
		io.WriteString(w, `
Every other line is executed as a WhileProc program fragment, e.g.

  proc add(a,b) { print a+b }
  x := 2; add(x, 3)

Definitions and variables are kept from one line to the next.

`)
	}
	intp.addSubcmdStatements()
	intp.Prompt(true)
}

type whileprocIntpr struct {
	*termui.BaseREPL
	session *evaluator.Session
	dumpAST bool
}

// InterpretCommand executes a line of WhileProc code.
func (intp *whileprocIntpr) InterpretCommand(command string) {
	command = strings.Trim(command, "\x00")
	tracer().Debugf("whileproc interpreter: %q", command)
	stdout, stderr := intp.Outputs()
	if intp.dumpAST {
		grammar.Dump(stderr, grammar.ParseString(command))
	}
	out, err := intp.session.Exec(command)
	if err != nil {
		termui.DefaultFormatter{}.Format(err, stderr)
		return
	}
	io.WriteString(stdout, out)
}

func (intp *whileprocIntpr) addSubcmdStatements() {
	intp.AddBuiltinCommand("env", "show current variables and procedures",
		func(args []string, w io.Writer) {
			termui.DefaultFormatter{}.Format(environmentTable(intp.session.Environment()), w)
		})
	intp.AddBuiltinCommand("reset", "forget all variables and procedures",
		func(args []string, w io.Writer) {
			intp.session.Reset()
			io.WriteString(w, "> environment cleared\n")
		})
}

// environmentTable renders the bindings of env as a table.
func environmentTable(env *sframe.Environment) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "Kind", "Value"})
	env.Each(func(name string, b sframe.Binding) {
		t.AppendRow(table.Row{name, b.Kind.String(), b.String()})
	})
	return t
}
