package termui

// Utilities for interactive command line interfaces.

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	prtxt "github.com/jedib0t/go-pretty/v6/text"
	"github.com/npillmayer/whileproc"
	"github.com/npillmayer/whileproc/grammar"
)

// Some global defaults
var welcomeMessage = "Welcome to %s [V%s]\n"
var stdprompt = prtxt.FgGreen.Sprintf("%s", "%s> ")

// BaseREPL is a base type to instantiate a REPL interpreter.
// Concrete REPL implementations will usually use this as a base type.
type BaseREPL struct {
	Interpreter REPLCommandInterpreter // the interpreter this REPL runs for
	Helper      func(io.Writer)        // print out help information
	readline    *readline.Instance
	completer   *readline.PrefixCompleter
	stdout      io.Writer
	stderr      io.Writer
	builtins    map[string]builtin
	editmode    string // vi or emacs
	toolname    string
	version     string
}

// BuiltinCommand is an administrative REPL command, provided by a concrete
// REPL. It receives the words of the input line, including the command itself.
type BuiltinCommand func(args []string, w io.Writer)

type builtin struct {
	help string
	cmd  BuiltinCommand
}

// NewBaseREPL create a new REPL base object intialized for an interpreter tool
// and a given version. If histfile is empty, history goes to the temp directory.
func NewBaseREPL(toolname, version, histfile string) *BaseREPL {
	repl := newBaseREPL(toolname, version)
	repl.readline = newReadline(toolname, histfile, repl.completer)
	repl.stdout, repl.stderr = repl.readline.Stdout(), repl.readline.Stderr()
	return repl
}

// newBaseREPL creates a REPL without line editing, writing to stdout and stderr.
func newBaseREPL(toolname, version string) *BaseREPL {
	return &BaseREPL{
		completer: newCompleter(),
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		builtins:  make(map[string]builtin),
		editmode:  "emacs",
		toolname:  toolname,
		version:   version,
	}
}

// REPLCommandInterpreter is an interface all interpreters have to implement.
// It is the workhorse doing interpretation of interactive
// commands.
//
// The REPL will delegate interpreting command strings (i.e. those which do not represent
// internal administrative commands) to the interpreter.
type REPLCommandInterpreter interface {
	InterpretCommand(string)
}

// Create a readline instance.
func newReadline(toolname, histfile string, completer readline.AutoCompleter) *readline.Instance {
	if histfile == "" {
		histfile = fmt.Sprintf("%s/%s-repl-history.tmp", os.TempDir(), toolname)
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            fmt.Sprintf(stdprompt, toolname),
		HistoryFile:       histfile,
		AutoComplete:      completer,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
		FuncFilterInputRune: func(r rune) (rune, bool) {
			return r, r != readline.CharCtrlZ // no suspending from the REPL
		},
	})
	if err != nil {
		panic(err)
	}
	return rl
}

// Completer-tree for the internal commands and the WhileProc keywords.
func newCompleter() *readline.PrefixCompleter {
	completer := readline.NewPrefixCompleter(
		readline.PcItem("help"),
		readline.PcItem("bye"),
		readline.PcItem("mode",
			readline.PcItem("vi"),
			readline.PcItem("emacs"),
		),
		readline.PcItem("setprompt"),
	)
	children := completer.GetChildren()
	for _, kw := range grammar.Keywords() {
		children = append(children, readline.PcItem(kw))
	}
	completer.SetChildren(children)
	return completer
}

// AddBuiltinCommand registers an administrative command. Builtin commands
// take precedence over interpreter statements.
func (repl *BaseREPL) AddBuiltinCommand(name, help string, cmd BuiltinCommand) {
	repl.builtins[name] = builtin{help: help, cmd: cmd}
	children := append(repl.completer.GetChildren(), readline.PcItem(name))
	repl.completer.SetChildren(children)
}

// displayCommands prints a help message with available commands
// We support some internal interactive sub-commands (not part of the interpreter).
func (repl *BaseREPL) displayCommands(out io.Writer) {
	fmt.Fprintf(out, welcomeMessage, repl.toolname, repl.version)
	io.WriteString(out, "\nThe following commands are available:\n\n")
	io.WriteString(out, "  help               : print this message\n")
	io.WriteString(out, "  bye                : quit application\n")
	io.WriteString(out, "  mode [vi|emacs]    : display or set current editing mode\n")
	io.WriteString(out, "  setprompt [prompt] : set current prompt [to default]\n")
	names := make([]string, 0, len(repl.builtins))
	for name := range repl.builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(out, "  %-18s : %s\n", name, repl.builtins[name].help)
	}
}

// Outputs returns stdout and stderr of this REPL.
func (repl *BaseREPL) Outputs() (io.Writer, io.Writer) {
	return repl.stdout, repl.stderr
}

// Prompt reads lines until the user quits, and dispatches each one.
// Ctrl-C on a non-empty line discards the line, on an empty line it quits.
func (repl *BaseREPL) Prompt(exitOnBye bool) {
	defer repl.readline.Close()
	fmt.Fprintf(repl.stderr, welcomeMessage, repl.toolname, repl.version)
	for {
		line, err := repl.readline.Readline()
		if errors.Is(err, readline.ErrInterrupt) && line != "" {
			continue
		} else if err != nil {
			break
		}
		if quit := repl.dispatch(line); quit {
			break
		}
	}
	if exitOnBye {
		whileproc.Exit(0)
	}
}

// dispatch executes an input line, either as an administrative command or
// by handing it to the interpreter. It returns true if the REPL should quit.
func (repl *BaseREPL) dispatch(line string) bool {
	line = strings.TrimSpace(line)
	words := strings.Fields(line)
	if len(words) == 0 {
		return false
	}
	if b, ok := repl.builtins[words[0]]; ok {
		b.cmd(words, repl.stdout)
		return false
	}
	switch words[0] {
	case "help":
		repl.displayCommands(repl.stderr)
		if repl.Helper != nil {
			repl.Helper(repl.stderr)
		}
	case "bye":
		io.WriteString(repl.stderr, "> goodbye!\n")
		return true
	case "mode":
		repl.setMode(words[1:])
	case "setprompt":
		if repl.readline != nil {
			repl.readline.SetPrompt(promptFor(line, repl.toolname))
		}
	default:
		trace().Debugf("call interpreter on: '%s'", line)
		if repl.Interpreter != nil {
			repl.Interpreter.InterpretCommand(line)
		}
	}
	return false
}

// setMode switches between vi and emacs key bindings. Without a valid mode
// argument it reports the current mode.
func (repl *BaseREPL) setMode(args []string) {
	if len(args) == 0 || (args[0] != "vi" && args[0] != "emacs") {
		fmt.Fprintf(repl.stderr, "> current input mode: %s\n", repl.editmode)
		return
	}
	repl.editmode = args[0]
	if repl.readline != nil {
		repl.readline.SetVimMode(repl.editmode == "vi")
	}
}

// promptFor extracts the prompt of a 'setprompt' line. Without an argument,
// the prompt is reset to the default prompt for toolname.
func promptFor(line, toolname string) string {
	prmpt := strings.TrimSpace(strings.TrimPrefix(line, "setprompt"))
	if prmpt == "" {
		return fmt.Sprintf(stdprompt, toolname)
	}
	return prmpt + " "
}
