package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	prtxt "github.com/jedib0t/go-pretty/v6/text"
	"github.com/npillmayer/kit/format"
	"github.com/npillmayer/kit/recfmt/termui"
	"golang.org/x/text/width"
)

// Formatter displays records as tables, everything else is left to the
// default formatter.
type Formatter struct {
	termui.DefaultFormatter
	fields []string
}

func (f Formatter) Format(item interface{}, w io.Writer) (bool, error) {
	tracer().Debugf("format item of type %T", item)
	if rec, ok := item.(format.Record); ok && len(f.fields) > 0 {
		item = recordTable(f.fields, rec)
	}
	return f.DefaultFormatter.Format(item, w)
}

// recordTable lists the values of a record together with their field types.
func recordTable(fields []string, rec format.Record) table.Writer {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"#", "type", "value"})
	for i, v := range rec {
		typ := v.Kind().String()
		if i < len(fields) {
			typ = fields[i]
		}
		tw.AppendRow(table.Row{i + 1, typ, v})
	}
	tw.SetStyle(table.StyleLight)
	return tw
}

// renderFields lists the fields of a pattern.
func renderFields(w io.Writer, fields []string) error {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"field", "type"})
	for i, f := range fields {
		tw.AppendRow(table.Row{i + 1, f})
	}
	tw.SetStyle(table.StyleLight)
	_, err := fmt.Fprintln(w, tw.Render())
	return err
}

// reportError prints an error. Errors located in the pattern are shown
// with a caret under the pattern column in charge.
func reportError(w io.Writer, pattern string, err error) {
	fmt.Fprintln(w, prtxt.FgRed.Sprint(err.Error()))
	var ferr *format.FormatError
	if errors.As(err, &ferr) && ferr.Column > 0 {
		fmt.Fprintf(w, "    %s\n    %s\n", pattern, caret(pattern, ferr.Column))
	}
}

// caret returns a line with a '^' positioned under the character at the
// 1-based column col of text. East Asian wide characters take two cells.
func caret(text string, col int) string {
	cells := 0
	for i, r := range []rune(text) {
		if i >= col-1 {
			break
		}
		cells += cellWidth(r)
	}
	return strings.Repeat(" ", cells) + "^"
}

func cellWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}
