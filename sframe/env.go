package sframe

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/whileproc"
	"github.com/npillmayer/whileproc/grammar"
)

// BindingKind tells what a name is bound to.
type BindingKind uint8

const (
	Undefined BindingKind = iota
	Numeric
	Procedure
)

func (k BindingKind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Procedure:
		return "procedure"
	}
	return "undefined"
}

// Binding is the value of a name: either a number or a procedure.
type Binding struct {
	Kind   BindingKind
	Number float64
	Proc   *grammar.ProcStatement
}

// NumberBinding binds a numeric value.
func NumberBinding(f float64) Binding {
	return Binding{Kind: Numeric, Number: f}
}

// ProcBinding binds a procedure definition.
func ProcBinding(p *grammar.ProcStatement) Binding {
	return Binding{Kind: Procedure, Proc: p}
}

// IsProc is a predicate: is b bound to a procedure?
func (b Binding) IsProc() bool {
	return b.Kind == Procedure
}

func (b Binding) String() string {
	switch b.Kind {
	case Numeric:
		return whileproc.FormatNumber(b.Number)
	case Procedure:
		return b.Proc.String()
	}
	return "<undefined>"
}

// ---------------------------------------------------------------------------

// Environment is an immutable mapping from names to bindings.
// The zero value is not usable, create environments with NewEnvironment.
type Environment struct {
	bindings *treemap.Map // string -> Binding, ordered by name
}

// NewEnvironment creates an empty environment.
func NewEnvironment() *Environment {
	return &Environment{bindings: treemap.NewWithStringComparator()}
}

// Lookup returns the binding for name, if any.
func (env *Environment) Lookup(name string) (Binding, bool) {
	v, found := env.bindings.Get(name)
	if !found {
		return Binding{}, false
	}
	return v.(Binding), true
}

// With returns a copy of env with name bound to b. env itself is not changed.
func (env *Environment) With(name string, b Binding) *Environment {
	copied := treemap.NewWithStringComparator()
	it := env.bindings.Iterator()
	for it.Next() {
		copied.Put(it.Key(), it.Value())
	}
	copied.Put(name, b)
	tracer().Debugf("bind %s = %s", name, b)
	return &Environment{bindings: copied}
}

// Bind creates an environment binding names to numbers, pairwise. If a name
// occurs more than once, the last binding wins.
func Bind(names []string, values []float64) *Environment {
	if len(names) != len(values) {
		panic(fmt.Sprintf("cannot bind %d names to %d values", len(names), len(values)))
	}
	m := treemap.NewWithStringComparator()
	for i, name := range names {
		m.Put(name, NumberBinding(values[i]))
	}
	return &Environment{bindings: m}
}

// Size returns the number of bound names.
func (env *Environment) Size() int {
	return env.bindings.Size()
}

// Names returns the bound names in ascending order.
func (env *Environment) Names() []string {
	keys := env.bindings.Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.(string)
	}
	return names
}

// Each calls f for every binding, in ascending order of names.
func (env *Environment) Each(f func(name string, b Binding)) {
	it := env.bindings.Iterator()
	for it.Next() {
		f(it.Key().(string), it.Value().(Binding))
	}
}

func (env *Environment) String() string {
	var b strings.Builder
	b.WriteString("{")
	first := true
	env.Each(func(name string, binding Binding) {
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(name)
		b.WriteString("=")
		b.WriteString(binding.String())
	})
	b.WriteString("}")
	return b.String()
}
