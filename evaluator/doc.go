/*
Package evaluator interprets WhileProc programs.

Evaluation walks the AST depth-first. Every node, statements included,
evaluates to a number and passes an environment and the accumulated
output on to the next node, left to right. This is what allows
assignments to appear anywhere an expression may appear:

   while (x := x - 1) < 0 { … }

Environments are never modified (see package sframe). A procedure body
is evaluated in an environment holding nothing but the call's
arguments, and the caller's environment is restored when the call
returns.

Parse errors are evaluated like any other node and become the program's
output. Runtime errors abort the evaluation and are reported as
*RuntimeError, wrapping one of the Err… sentinels of this package.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package evaluator

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'whileproc.eval'.
func tracer() tracing.Trace {
	return tracing.Select("whileproc.eval")
}
