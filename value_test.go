package whileproc

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestFormatNumber(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "whileproc.app")
	defer teardown()
	//
	for i, x := range []struct {
		f float64
		s string
	}{
		{f: 7, s: "7.0"},
		{f: 10, s: "10.0"},
		{f: -3, s: "-3.0"},
		{f: 0.1, s: "0.1"},
		{f: 2.5, s: "2.5"},
		{f: 1.0 / 3.0, s: "0.3333333333333333"},
		{f: 0.0001, s: "0.0001"},
		{f: 0.000015, s: "1.5e-05"},
		{f: 1e15, s: "1000000000000000.0"},
		{f: 1e16, s: "1e+16"},
		{f: 1.5e300, s: "1.5e+300"},
		{f: 0, s: "0.0"},
		{f: math.Copysign(0, -1), s: "-0.0"},
		{f: math.NaN(), s: "nan"},
		{f: math.Inf(1), s: "inf"},
		{f: math.Inf(-1), s: "-inf"},
	} {
		if s := FormatNumber(x.f); s != x.s {
			t.Errorf("test %d: expected %v to format as %q, is %q", i, x.f, x.s, s)
		}
	}
}
