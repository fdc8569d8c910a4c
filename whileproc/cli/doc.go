// Package cli implements the whileproc command line interface.
//
// Called with a file argument, whileproc runs the program in the file and
// prints its output. Called without arguments (or with flag -i), it starts
// an interactive REPL.
//
// Exit codes are 0 for programs which ran (including programs which failed
// to parse, as parse errors are the program's output), 1 for runtime errors
// and 2 for usage errors or unreadable files.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package cli

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'whileproc.cli'
func tracer() tracing.Trace {
	return tracing.Select("whileproc.cli")
}
