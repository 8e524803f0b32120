package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/npillmayer/kit"
	"github.com/npillmayer/kit/format"
	"github.com/npillmayer/kit/stream"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <pattern>",
	Short: "Validate a pattern and list its fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fields, err := format.IsFormat(args[0])
		if err != nil {
			reportError(cmd.ErrOrStderr(), args[0], err)
			return errFailedRecords
		}
		return renderFields(cmd.OutOrStdout(), fields)
	},
}

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the type characters of the pattern grammar",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := table.NewWriter()
		tw.AppendHeader(table.Row{"char", "type"})
		for _, t := range format.Types() {
			tw.AppendRow(table.Row{string(t.Tag), t.Kind})
		}
		tw.AppendSeparator()
		tw.AppendRow(table.Row{string(format.FixedArray), "array of exactly N elements"})
		tw.AppendRow(table.Row{string(format.VariableArray), "array of 1…N elements"})
		tw.AppendRow(table.Row{string(format.MatrixMarker), "matrix"})
		tw.AppendRow(table.Row{string(format.AlternativeMarker), "start of optional section"})
		tw.SetStyle(table.StyleLight)
		_, err := fmt.Fprintln(cmd.OutOrStdout(), tw.Render())
		return err
	},
}

var parseCmd = &cobra.Command{
	Use:   "parse [file …]",
	Short: "Parse every line of the input files (or stdin) as a record",
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().Bool("table", false, "print records as tables")
	parseCmd.Flags().Bool("binary", false, "write records in binary form")
}

// newFormat creates a record parser from the configuration.
func newFormat() (*format.Format, error) {
	pattern := ""
	if kit.Configuration != nil {
		pattern = kit.Configuration.GetString("pattern")
	}
	if pattern == "" {
		return nil, errors.New("no pattern given, use --pattern")
	}
	f := format.New(formatOptions(kit.Configuration)...)
	if _, err := f.SetFormat(pattern); err != nil {
		return nil, err
	}
	return f, nil
}

// recordSink receives parsed records.
type recordSink func(lineno int, rec format.Record) error

func runParse(cmd *cobra.Command, args []string) (err error) {
	f, err := newFormat()
	if err != nil {
		return err
	}
	asTable, _ := cmd.Flags().GetBool("table")
	binary, _ := cmd.Flags().GetBool("binary")
	sink, flush := newSink(cmd.OutOrStdout(), f, asTable, binary)
	defer func() {
		if ferr := flush(); err == nil {
			err = ferr
		}
	}()
	if len(args) == 0 {
		return parseLines(cmd, f, "stdin", cmd.InOrStdin(), sink)
	}
	failed := false
	for _, name := range args {
		file, err := os.Open(name)
		if err != nil {
			return err
		}
		err = parseLines(cmd, f, name, file, sink)
		file.Close()
		if errors.Is(err, errFailedRecords) {
			failed = true
		} else if err != nil {
			return err
		}
	}
	if failed {
		return errFailedRecords
	}
	return nil
}

// newSink creates the record sink for the output mode. flush has to be
// called after the last record.
func newSink(w io.Writer, f *format.Format, asTable, binary bool) (sink recordSink, flush func() error) {
	switch {
	case binary:
		out := stream.NewOutput(w)
		return func(_ int, rec format.Record) error {
			return format.WriteRecord(out, rec)
		}, out.Flush
	case asTable:
		sink = func(lineno int, rec format.Record) error {
			tw := recordTable(f.Fields(), rec)
			tw.SetTitle("line %d", lineno)
			_, err := fmt.Fprintln(w, tw.Render())
			return err
		}
	default:
		sink = func(_ int, rec format.Record) error {
			_, err := fmt.Fprintln(w, rec)
			return err
		}
	}
	return sink, func() error { return nil }
}

// parseLines parses every line of r. Failing lines are reported and
// skipped.
func parseLines(cmd *cobra.Command, f *format.Format, name string, r io.Reader, sink recordSink) error {
	ctx := cmd.Context()
	scanner := bufio.NewScanner(r)
	lineno, failures := 0, 0
	for scanner.Scan() {
		if ctx != nil && ctx.Err() != nil {
			return ctx.Err()
		}
		lineno++
		rec, err := f.Parse(scanner.Text())
		if err != nil {
			failures++
			fmt.Fprintf(cmd.ErrOrStderr(), "%s:%d: ", name, lineno)
			reportError(cmd.ErrOrStderr(), f.Pattern(), err)
			continue
		}
		if err := sink(lineno, rec); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	tracer().Infof("%s: %d records, %d failed", name, lineno, failures)
	if failures > 0 {
		return errFailedRecords
	}
	return nil
}
