package grammar

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestStripComments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "whileproc.grammar")
	defer teardown()
	//
	for i, x := range []struct {
		input, output string
	}{
		{"print 1", "print 1"},
		{"   print 1\n\t  print 2", "print 1\nprint 2"},
		{"// comment\nprint 1", "print 1"},
		{"  // indented comment\nprint 1", "print 1"},
		{"print 1\n// last line", "print 1\n"},
		{"/* block\n  spanning */\nprint 2", "\nprint 2"},
		{"print /* inline */ 3", "print  3"},
		{"print 1 // not at line start", "print 1 // not at line start"},
	} {
		if s := StripComments(x.input); s != x.output {
			t.Errorf("test %d: expected %q, got %q", i, x.output, s)
		}
	}
}

func TestLex(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "whileproc.grammar")
	defer teardown()
	//
	for i, x := range []struct {
		input  string
		tokens []string
	}{
		{"", nil},
		{"  \n\t ", nil},
		{"print 1+2*3", []string{"print", "1", "+", "2", "*", "3"}},
		{"x:=5;while x<10{x:=x+1};print x", []string{
			"x", ":", "=", "5", ";", "while", "x", "<", "10", "{",
			"x", ":", "=", "x", "+", "1", "}", ";", "print", "x"}},
		{"proc f(){print 1};f()", []string{
			"proc", "f", "(", ")", "{", "print", "1", "}", ";", "f", "(", ")"}},
		{"x:=1.5^-2", []string{"x", ":", "=", "1.5", "^", "-", "2"}},
		{"// comment\nprint a_1", []string{"print", "a_1"}},
		{"/* one\ntwo */\nprint /* three */ 4", []string{"print", "4"}},
		{"print 1 // trailing", []string{"print", "1", "/", "/", "trailing"}},
		{"print x#y", []string{"print", "x#y"}},
		{"print\v1", []string{"print", "1"}},
		{"\v\fx:=2\f;\vprint x", []string{"x", ":", "=", "2", ";", "print", "x"}},
	} {
		tokens := Lex(x.input)
		if diff := cmp.Diff(x.tokens, tokens, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("test %d: token mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestTokenClasses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "whileproc.grammar")
	defer teardown()
	//
	for i, x := range []struct {
		token   string
		id, num bool
	}{
		{token: "x", id: true},
		{token: "_tmp1", id: true},
		{token: "print", id: true},
		{token: "else", id: true},
		{token: "1x"},
		{token: "42", num: true},
		{token: "3.14", num: true},
		{token: ".5"},
		{token: "1."},
		{token: "^"},
		{token: "!"},
		{token: ":="},
	} {
		if IsIdentifier(x.token) != x.id {
			t.Errorf("test %d: IsIdentifier(%q) should be %v", i, x.token, x.id)
		}
		if IsNumber(x.token) != x.num {
			t.Errorf("test %d: IsNumber(%q) should be %v", i, x.token, x.num)
		}
	}
	kw := Keywords()
	if diff := cmp.Diff([]string{"proc", "if", "else", "while", "print"}, kw); diff != "" {
		t.Errorf("keyword mismatch (-want +got):\n%s", diff)
	}
	kw[0] = "changed"
	if Keywords()[0] != "proc" {
		t.Errorf("expected Keywords to return a copy")
	}
}

func TestTokenStream(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "whileproc.grammar")
	defer teardown()
	//
	ts := newTokenStream([]string{"a", "b"})
	if ts.peek() != "a" {
		t.Errorf("expected peek to return 'a', got %q", ts.peek())
	}
	if e := ts.expect("b"); e == nil || e.Text != "Expected a 'b'" {
		t.Errorf("expected failing expect('b'), got %v", e)
	}
	if e := ts.expect("a"); e != nil {
		t.Errorf("expected 'a' to be consumed, got %v", e)
	}
	if ts.pop() != "b" || !ts.atEOF() {
		t.Errorf("expected stream to be exhausted after popping 'b'")
	}
	if ts.peek() != "" || ts.pop() != "" || ts.rest() != nil {
		t.Errorf("expected exhausted stream to stay empty")
	}
}
