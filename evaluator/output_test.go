package evaluator

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestOutputSharesPrefix(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "whileproc.eval")
	defer teardown()
	//
	var empty *Output
	if empty.String() != "" || empty.Len() != 0 {
		t.Errorf("expected nil output to be empty")
	}
	base := empty.Append("1.0\n")
	left := base.Append("2.0\n")
	right := base.Append("3.0\n").Append("")
	if base.String() != "1.0\n" {
		t.Errorf("expected base to be unchanged, is %q", base.String())
	}
	if left.String() != "1.0\n2.0\n" || right.String() != "1.0\n3.0\n" {
		t.Errorf("unexpected branches %q and %q", left, right)
	}
	if left.Len() != 8 {
		t.Errorf("expected length 8, got %d", left.Len())
	}
}
