/*
Package corelang implements the semantics of the WhileProc operators.

Language Features

WhileProc knows a single type of values, floating point numbers. Truth
values are represented by numbers as well: relational operators yield
1 or 0, and everything but 0 counts as true.

Operators are looked up in a Language, which maps the operators the
parser knows about to their implementation. The standard language is
loaded with LoadStandardLanguage.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package corelang

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'whileproc.core'.
func tracer() tracing.Trace {
	return tracing.Select("whileproc.core")
}

// Truth converts a predicate into a WhileProc number.
func Truth(b bool) float64 {
	if b {
		return 1.0
	}
	return 0.0
}

// IsTrue is a predicate: does f count as true in a guard?
func IsTrue(f float64) bool {
	return f != 0.0
}
