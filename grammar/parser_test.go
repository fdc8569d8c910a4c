package grammar

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseCanonical(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "whileproc.grammar")
	defer teardown()
	//
	for i, x := range []struct {
		source, canonical string
	}{
		{"print 1+2*3", "print (1.0+(2.0*3.0))"},
		{"x:=5;while x<10{x:=x+1};print x", "(x:=5.0);while (x<10.0) {(x:=(x+1.0))};print x"},
		{"proc add(a,b){print a+b};add(2,3)", "proc add(a,b){print (a+b)};add(2.0,3.0)"},
		{"proc f(){print 1};f()", "proc f(){print 1.0};f()"},
		{"print 2^3^2", "print (2.0^(3.0^2.0))"},
		{"print 8-4-2", "print ((8.0-4.0)-2.0)"},
		{"print 8/4/2", "print ((8.0/4.0)/2.0)"},
		{"print (1+2)*3", "print ((1.0+2.0)*3.0)"},
		{"if x=1 {print 1} else {print 2}", "if (x=1.0) {print 1.0} else {print 2.0}"},
		{"while (x:=x-1)<0 {print x}", "while ((x:=(x-1.0))<0.0) {print x}"},
		{"x:=y:=2.5", "(x:=(y:=2.5))"},
		{"f(g(1),h())", "f(g(1.0),h())"},
		{"print 1 print 2", "print 1.0"},
		{"print 0.00001", "print 0.00001"},
		{"x:=10000000000000000", "(x:=10000000000000000.0)"},
		{"print 123456789012345678", "print 123456789012345680.0"},
	} {
		root := ParseString(x.source)
		if failed(root) {
			t.Errorf("test %d: unexpected parse error: %v", i, root)
			continue
		}
		if diff := cmp.Diff(x.canonical, root.String()); diff != "" {
			t.Errorf("test %d: rendering mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "whileproc.grammar")
	defer teardown()
	//
	for i, source := range []string{
		"x:=5;while x<10{x:=x+1};print x",
		"proc fib(n){a:=0;b:=1;while 0<n{t:=b;b:=a+b;a:=t;n:=n-1};print a};fib(10)",
		"if (1<2)=1 {print 2^0.5} else {x:=(y:=3)*2}",
		"proc f(a){proc g(){print 1};g()};f(1)",
		"print 0.00001",
		"x:=10000000000000000",
		"print 123456789012345678+0.000000125",
	} {
		first := ParseString(source)
		if failed(first) {
			t.Errorf("test %d: unexpected parse error: %v", i, first)
			continue
		}
		second := ParseString(first.String())
		if failed(second) {
			t.Errorf("test %d: canonical form %q does not re-parse: %v", i, first.String(), second)
			continue
		}
		if diff := cmp.Diff(first.String(), second.String()); diff != "" {
			t.Errorf("test %d: canonical form not stable (-first +second):\n%s", i, diff)
		}
	}
}

func TestParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "whileproc.grammar")
	defer teardown()
	//
	for i, x := range []struct {
		source, msg string
	}{
		{"if 1{print 1}", "Expected else statement"},
		{"proc (a){print a}", "Expected Identifier"},
		{"proc f(a,){print a}", "Expected Variable Identifier after ','"},
		{"proc f a){print a}", "Expected a '('"},
		{"proc f(a b){print a}", "Expected a ')'"},
		{"proc f(a) print a", "Expected a '{'"},
		{"while 1 {print 1", "Expected a '}'"},
		{"x:1", "Expected a '=' after ':'"},
		{"f(1,2", "Expected a ')'"},
		{"print (1+2", "Expected a ')'"},
		{"print )", "syntax Error after ). Expected a '(' or an identifier or a number"},
		{"print", "syntax Error after end of input. Expected a '(' or an identifier or a number"},
		{"x:=1;;print x", "syntax Error after ;. Expected a '(' or an identifier or a number"},
		{"print 1+", "syntax Error after end of input. Expected a '(' or an identifier or a number"},
	} {
		root := ParseString(x.source)
		e, ok := root.(*ErrorMessage)
		if !ok {
			t.Errorf("test %d: expected parse error for %q, got %v", i, x.source, root)
			continue
		}
		if e.Error() != x.msg {
			t.Errorf("test %d: expected message %q, got %q", i, x.msg, e.Error())
		}
	}
}

func TestParseStructure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "whileproc.grammar")
	defer teardown()
	//
	root := ParseString("proc add(a,b){print a+b};add(2,3)")
	seq, ok := root.(*SeqStatement)
	if !ok {
		t.Fatalf("expected a sequence, got %T", root)
	}
	proc, ok := seq.Lhs.(*ProcStatement)
	if !ok {
		t.Fatalf("expected a procedure definition, got %T", seq.Lhs)
	}
	if diff := cmp.Diff([]string{"a", "b"}, proc.ParamNames()); diff != "" {
		t.Errorf("parameter mismatch (-want +got):\n%s", diff)
	}
	call, ok := seq.Rhs.(*Call)
	if !ok {
		t.Fatalf("expected a call, got %T", seq.Rhs)
	}
	if call.Callee.ID != "add" || len(call.Args) != 2 {
		t.Errorf("expected call of add with 2 arguments, got %s", call)
	}
	if lit, ok := call.Args[1].(*Literal); !ok || lit.Value != 3 {
		t.Errorf("expected second argument to be literal 3, got %v", call.Args[1])
	}
}

func TestDump(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "whileproc.grammar")
	defer teardown()
	//
	var b strings.Builder
	Dump(&b, ParseString("x:=1;print x+2"))
	expected := `seq
  x :=
    1.0
  print
    +
      x
      2.0
`
	if diff := cmp.Diff(expected, b.String()); diff != "" {
		t.Errorf("dump mismatch (-want +got):\n%s", diff)
	}
}
