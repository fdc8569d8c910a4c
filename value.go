package whileproc

import (
	"math"
	"strconv"
	"strings"
)

// Scientific notation is used for numbers with a decimal exponent outside
// of [minFixedExp, maxFixedExp).
const (
	minFixedExp = -4
	maxFixedExp = 16
)

// FormatNumber formats a numeric value the way WhileProc's print statement
// does: the shortest representation which reads back to the same float,
// with a trailing ".0" for whole numbers.
//
//     7        ⇒ 7.0
//     0.1      ⇒ 0.1
//     1e16     ⇒ 1e+16
//     0.000015 ⇒ 1.5e-05
//     0/0      ⇒ nan
//
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case f == 0:
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}
	sci := strconv.FormatFloat(f, 'e', -1, 64)
	if exp := decimalExponent(sci); exp < minFixedExp || exp >= maxFixedExp {
		return sci
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// decimalExponent extracts the exponent from a number formatted with 'e'.
func decimalExponent(sci string) int {
	i := strings.LastIndexByte(sci, 'e')
	if i < 0 {
		return 0
	}
	exp, err := strconv.Atoi(sci[i+1:])
	if err != nil {
		tracer().Errorf("cannot extract exponent from %q", sci)
		return 0
	}
	return exp
}
