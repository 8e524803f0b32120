package cli

import (
	"errors"
	"io"

	"github.com/npillmayer/kit"
	"github.com/npillmayer/kit/format"
	"github.com/npillmayer/kit/recfmt/termui"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Parse records interactively",
	Args:  cobra.NoArgs,
	RunE:  runRepl,
}

func runRepl(cmd *cobra.Command, args []string) error {
	tracer().Infof("recfmt interpreter called")
	intp := &recordInterpreter{}
	if f, err := newFormat(); err == nil {
		intp.format = f
	} else {
		tracer().Infof("starting without pattern: %v", err)
	}
	session := intp.session()
	var done <-chan struct{}
	if ctx := cmd.Context(); ctx != nil {
		done = ctx.Done()
	}
	return session.Run(done)
}

var errNoPattern = errors.New("no pattern set, use :pattern")

// recordInterpreter parses input lines with the current pattern. Parsed
// records go to the session history.
type recordInterpreter struct {
	format *format.Format
}

// session creates an interactive session for intp with the commands
// :pattern and :fields.
func (intp *recordInterpreter) session() *termui.Session {
	s := termui.NewSession("recfmt", version, intp, map[string]termui.Command{
		"pattern": {Args: "<pattern>", Help: "compile a new pattern", Run: intp.setPattern},
		"fields": {Help: "list the fields of the current pattern", Run: func(s *termui.Session, _ string) error {
			if intp.format == nil {
				return errNoPattern
			}
			stdout, _ := s.Outputs()
			return renderFields(stdout, intp.format.Fields())
		}},
	})
	s.Formatter = intp.formatter()
	s.Report = func(w io.Writer, err error) {
		pattern := ""
		if intp.format != nil {
			pattern = intp.format.Pattern()
		}
		reportError(w, pattern, err)
	}
	return s
}

func (intp *recordInterpreter) Eval(line string) (interface{}, error) {
	if intp.format == nil {
		return nil, errNoPattern
	}
	rec, err := intp.format.Parse(line)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// setPattern replaces the format. Records of the previous pattern are
// dropped from the history.
func (intp *recordInterpreter) setPattern(s *termui.Session, pattern string) error {
	f := format.New(formatOptions(kit.Configuration)...)
	fields, err := f.SetFormat(pattern)
	if err != nil {
		_, stderr := s.Outputs()
		reportError(stderr, pattern, err)
		return nil
	}
	intp.format = f
	s.ClearHistory()
	s.Formatter = intp.formatter()
	stdout, _ := s.Outputs()
	return renderFields(stdout, fields)
}

func (intp *recordInterpreter) formatter() termui.Formatter {
	var fields []string
	if intp.format != nil {
		fields = intp.format.Fields()
	}
	return Formatter{fields: fields}
}
