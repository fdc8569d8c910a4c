/*
Package sframe implements runtime frames for WhileProc programs.

Environments are immutable: binding a name yields a new environment and
leaves the old one untouched. Variables and procedures share a single
namespace.

The call stack records active procedure calls for diagnostics. It does
not hold bindings, as a procedure body sees nothing but its parameters.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sframe

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'whileproc.runtime'
func tracer() tracing.Trace {
	return tracing.Select("whileproc.runtime")
}
