/*
Package whileproc is an interpreter for WhileProc, a tiny imperative
language with procedures, conditionals and while-loops over floating
point numbers.

The pipeline is split into packages:

	grammar    lexer, recursive descent parser and AST
	sframe     immutable environments (scope frames)
	corelang   semantics of the arithmetic and relational operators
	evaluator  tree-walking interpreter

A program is run like this:

	tokens := grammar.Lex(source)
	program := grammar.Parse(tokens)
	output, err := evaluator.Run(program)

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package whileproc

import (
	"os"

	"github.com/knadh/koanf"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'whileproc.app'.
func tracer() tracing.Trace {
	return tracing.Select("whileproc.app")
}

// Configuration holds global configuration values. We use koanf.
var Configuration *koanf.Koanf

// Exit exits the application.
func Exit(errcode int) {
	tracer().Debugf("exit with code %d", errcode)
	os.Exit(errcode)
}
