// Package main is the command line front end of the WhileProc interpreter.
//
// Usage:
//
//	whileproc program.while       run a program and print its output
//	whileproc                     start an interactive REPL
//	whileproc -i program.while    run a program, then continue in the REPL
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package main

import (
	"github.com/npillmayer/whileproc/whileproc/cli"
)

func main() {
	cli.Execute()
}
