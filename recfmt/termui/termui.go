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
	prtxt "github.com/jedib0t/go-pretty/v6/text"
	"github.com/npillmayer/kit/format"
	"github.com/npillmayer/schuko/tracing"
)

// trace traces with key 'kit.cli'.
func trace() tracing.Trace {
	return tracing.Select("kit.cli")
}

// Formatter writes an item to w. It returns false if it does not know how
// to display the item.
type Formatter interface {
	Format(interface{}, io.Writer) (bool, error)
}

// DefaultFormatter knows how to display strings, errors, records and tables.
type DefaultFormatter struct{}

var _ Formatter = DefaultFormatter{}

func (df DefaultFormatter) Format(item interface{}, w io.Writer) (bool, error) {
	var err error
	switch t := item.(type) {
	case string:
		_, err = fmt.Fprintf(w, "▶ %s\n", t)
	case error:
		_, err = fmt.Fprintf(w, "▶ %s\n", prtxt.FgRed.Sprint(t.Error()))
	case format.Record:
		_, err = fmt.Fprintf(w, "▶ %s\n", t)
	case format.Value:
		_, err = fmt.Fprintf(w, "▶ %s: %s\n", t.Kind(), t)
	case table.Writer:
		if t == nil {
			_, err = io.WriteString(w, "▶ (empty table)\n")
		} else {
			_, err = fmt.Fprintln(w, t.Render())
		}
	default:
		_, err = fmt.Fprintf(w, "▶ object of type %T\n", t)
	}
	return err == nil, err
}
