package corelang

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/whileproc/grammar"
)

// ErrUnknownOperator is returned for operators a language does not define.
var ErrUnknownOperator = errors.New("unknown operator")

// Operator implements a binary operator.
type Operator func(lhs, rhs float64) float64

// Language is a set of operator implementations.
type Language struct {
	name string
	ops  map[grammar.Op]Operator
}

// LoadStandardLanguage returns the operators of WhileProc.
func LoadStandardLanguage() *Language {
	lang := &Language{name: "whileproc", ops: make(map[grammar.Op]Operator)}
	defineExprOps(lang)
	return lang
}

func defineExprOps(lang *Language) {
	lang.Defn(grammar.Plus, func(l, r float64) float64 { return l + r })
	lang.Defn(grammar.Minus, func(l, r float64) float64 { return l - r })
	lang.Defn(grammar.Mult, func(l, r float64) float64 { return l * r })
	lang.Defn(grammar.Div, divide)
	lang.Defn(grammar.Expo, math.Pow)
	lang.Defn(grammar.LessThan, func(l, r float64) float64 { return Truth(l < r) })
	lang.Defn(grammar.Equal, func(l, r float64) float64 { return Truth(l == r) })
}

// Division by zero does not fail, but yields NaN.
func divide(l, r float64) float64 {
	if r == 0.0 {
		tracer().Debugf("division by zero")
		return math.NaN()
	}
	return l / r
}

// Defn defines (or re-defines) the implementation of op.
func (lang *Language) Defn(op grammar.Op, f Operator) {
	lang.ops[op] = f
}

// Apply applies op to its operands.
func (lang *Language) Apply(op grammar.Op, lhs, rhs float64) (float64, error) {
	f, ok := lang.ops[op]
	if !ok {
		tracer().Errorf("operator %s not defined in language %s", op, lang.name)
		return 0, fmt.Errorf("%w: %s", ErrUnknownOperator, op)
	}
	return f(lhs, rhs), nil
}

func (lang *Language) String() string {
	return lang.name
}
