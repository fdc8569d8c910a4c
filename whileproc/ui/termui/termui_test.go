package termui

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type recordingIntpr struct {
	lines []string
}

func (r *recordingIntpr) InterpretCommand(line string) {
	r.lines = append(r.lines, line)
}

func testREPL() (*BaseREPL, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	repl := newBaseREPL("test", "0.1")
	repl.stdout, repl.stderr = &stdout, &stderr
	return repl, &stdout, &stderr
}

func TestDefaultFormatter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "whileproc.cli")
	defer teardown()
	//
	var b bytes.Buffer
	ok, err := DefaultFormatter{}.Format(errors.New("boom"), &b)
	if !ok || err != nil || b.String() != "▶ error: boom\n" {
		t.Errorf("unexpected error formatting: %v, %v, %q", ok, err, b.String())
	}
	b.Reset()
	tbl := table.NewWriter()
	ok, _ = DefaultFormatter{}.Format(tbl, &b)
	if !ok || b.String() != "▶ (empty table)\n" {
		t.Errorf("unexpected empty table formatting: %q", b.String())
	}
	b.Reset()
	tbl.AppendRow(table.Row{"x", "2.0"})
	DefaultFormatter{}.Format(tbl, &b)
	if !strings.Contains(b.String(), "2.0") {
		t.Errorf("expected table row in output, got %q", b.String())
	}
	b.Reset()
	if ok, _ = (DefaultFormatter{}).Format(42, &b); ok || b.Len() != 0 {
		t.Errorf("expected unknown items not to be formatted, got %q", b.String())
	}
}

func TestDispatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "whileproc.cli")
	defer teardown()
	//
	repl, stdout, stderr := testREPL()
	intp := &recordingIntpr{}
	repl.Interpreter = intp
	var builtinArgs []string
	repl.AddBuiltinCommand("env", "show bindings", func(args []string, w io.Writer) {
		builtinArgs = args
		fmt.Fprint(w, "bindings")
	})
	for i, x := range []struct {
		line string
		quit bool
	}{
		{"   ", false},
		{"print 1", false},
		{"  x := 2  ", false},
		{"env all", false},
		{"bye", true},
	} {
		if quit := repl.dispatch(x.line); quit != x.quit {
			t.Errorf("test %d: expected quit=%v for %q", i, x.quit, x.line)
		}
	}
	if len(intp.lines) != 2 || intp.lines[0] != "print 1" || intp.lines[1] != "x := 2" {
		t.Errorf("expected two statements for the interpreter, got %q", intp.lines)
	}
	if len(builtinArgs) != 2 || builtinArgs[1] != "all" || stdout.String() != "bindings" {
		t.Errorf("expected builtin to be called with its arguments, got %q", builtinArgs)
	}
	if !strings.Contains(stderr.String(), "goodbye") {
		t.Errorf("expected goodbye message, got %q", stderr.String())
	}
	stderr.Reset()
	repl.dispatch("help")
	if !strings.Contains(stderr.String(), "show bindings") {
		t.Errorf("expected help to list builtin commands, got %q", stderr.String())
	}
}

func TestEditMode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "whileproc.cli")
	defer teardown()
	//
	repl, _, stderr := testREPL()
	for i, x := range []struct {
		line, mode string
	}{
		{"mode", "emacs"},
		{"mode vi", "vi"},
		{"mode nano", "vi"},
		{"mode emacs", "emacs"},
	} {
		repl.dispatch(x.line)
		if repl.editmode != x.mode {
			t.Errorf("test %d: expected mode %s, got %s", i, x.mode, repl.editmode)
		}
	}
	if !strings.Contains(stderr.String(), "current input mode: vi") {
		t.Errorf("expected invalid mode to report current mode, got %q", stderr.String())
	}
}

func TestPromptFor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "whileproc.cli")
	defer teardown()
	//
	for i, x := range []struct {
		line, prompt string
	}{
		{"setprompt", fmt.Sprintf(stdprompt, "test")},
		{"setprompt   ", fmt.Sprintf(stdprompt, "test")},
		{"setprompt >>", ">> "},
		{"setprompt  my prompt:", "my prompt: "},
	} {
		if p := promptFor(x.line, "test"); p != x.prompt {
			t.Errorf("test %d: expected prompt %q, got %q", i, x.prompt, p)
		}
	}
}
