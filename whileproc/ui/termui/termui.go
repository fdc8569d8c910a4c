// Package termui provides objects and methods for interactive UI in terminal windows.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
//
package termui

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/npillmayer/schuko/tracing"
)

// trace traces with key 'whileproc.cli'.
func trace() tracing.Trace {
	return tracing.Select("whileproc.cli")
}

// DefaultFormatter knows about tables and errors.
type DefaultFormatter struct{}

// Format writes item to w. It returns false for items it does not know
// how to format.
func (df DefaultFormatter) Format(item interface{}, w io.Writer) (bool, error) {
	switch t := item.(type) {
	case table.Writer:
		if t == nil || t.Length() == 0 {
			w.Write([]byte("▶ (empty table)\n"))
		} else {
			w.Write([]byte(t.Render()))
			w.Write([]byte{'\n'})
		}
		return true, nil
	case error:
		_, err := w.Write([]byte(fmt.Sprintf("▶ error: %v\n", t)))
		return err == nil, err
	}
	trace().Debugf("no format for object of type %T", item)
	return false, nil
}
