package cli

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/npillmayer/kit/format"
	"github.com/npillmayer/kit/stream"
	"github.com/spf13/cobra"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestCaret(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kit.cli")
	defer teardown()
	//
	for i, x := range []struct {
		text  string
		col   int
		caret string
	}{
		{"ABC", 1, "^"},
		{"ABC", 3, "  ^"},
		{"世界i,", 3, "    ^"},
		{"ｉ,a", 2, "  ^"},
	} {
		if c := caret(x.text, x.col); c != x.caret {
			t.Errorf("test #%d: expected %q, have %q", i, x.caret, c)
		}
	}
}

func TestLogDestination(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kit.cli")
	defer teardown()
	//
	for i, x := range []struct {
		logname, dest string
	}{
		{"", ""},
		{"stderr", ""},
		{"Stdout", "Stdout"},
		{"file:///tmp/x.log", "file:///tmp/x.log"},
		{"/tmp/x.log", "file:///tmp/x.log"},
	} {
		if dest := logDestination(x.logname); dest != x.dest {
			t.Errorf("test #%d: expected %q, have %q", i, x.dest, dest)
		}
	}
	if dest := logDestination("recfmt.log"); !strings.HasPrefix(dest, "file://") ||
		!strings.HasSuffix(dest, "recfmt.log") {
		t.Errorf("unexpected destination for relative file: %q", dest)
	}
}

func TestReportError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kit.cli")
	defer teardown()
	//
	f := format.MustCompile("ABC")
	_, err := f.Parse("ABX")
	var buf bytes.Buffer
	reportError(&buf, f.Pattern(), err)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines of output, have %q", buf.String())
	}
	if lines[2] != "      ^" {
		t.Errorf("expected caret under column 3, have %q", lines[2])
	}
}

func TestRecordTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kit.cli")
	defer teardown()
	//
	f := format.MustCompile("i,t")
	rec, err := f.Parse("42,hello")
	if err != nil {
		t.Fatal(err)
	}
	out := recordTable(f.Fields(), rec).Render()
	for _, s := range []string{"int", "string", "42", `"hello"`} {
		if !strings.Contains(out, s) {
			t.Errorf("expected table to contain %s, is\n%s", s, out)
		}
	}
}

func TestFormatOptionsWithoutConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kit.cli")
	defer teardown()
	//
	if opts := formatOptions(nil); opts != nil {
		t.Errorf("expected no options without configuration")
	}
}

// --- Parsing input ---------------------------------------------------------

func TestParseLinesSkipsFailingLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kit.cli")
	defer teardown()
	//
	var stderr bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetErr(&stderr)
	var lines []int
	var recs []format.Record
	sink := func(lineno int, rec format.Record) error {
		lines = append(lines, lineno)
		recs = append(recs, rec)
		return nil
	}
	f := format.MustCompile("i,t")
	input := bytes.NewBufferString("1,a\nx,b\n3,c\n")
	err := parseLines(cmd, f, "input", input, sink)
	if !errors.Is(err, errFailedRecords) {
		t.Errorf("expected errFailedRecords, have %v", err)
	}
	if len(lines) != 2 || lines[0] != 1 || lines[1] != 3 {
		t.Fatalf("expected records of lines 1 and 3, have %v", lines)
	}
	want := format.Record{format.IntValue(3), format.StringValue("c")}
	if !recs[1].Equal(want) {
		t.Errorf("expected %v, have %v", want, recs[1])
	}
	if !strings.HasPrefix(stderr.String(), "input:2: ") {
		t.Errorf("expected report prefixed by input:2:, have %q", stderr.String())
	}
	if strings.Contains(stderr.String(), "input:1:") || strings.Contains(stderr.String(), "input:3:") {
		t.Errorf("expected only line 2 to be reported, have %q", stderr.String())
	}
}

func TestParseLinesWithoutFailures(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kit.cli")
	defer teardown()
	//
	var stdout, stderr bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetErr(&stderr)
	f := format.MustCompile("i,i")
	sink, flush := newSink(&stdout, f, false, false)
	if err := parseLines(cmd, f, "input", strings.NewReader("1,2\n3,4"), sink); err != nil {
		t.Fatal(err)
	}
	if err := flush(); err != nil {
		t.Fatal(err)
	}
	if strings.Count(stdout.String(), "\n") != 2 {
		t.Errorf("expected two records, have %q", stdout.String())
	}
	if stderr.Len() != 0 {
		t.Errorf("expected no reports, have %q", stderr.String())
	}
}

func TestBinarySinkRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kit.cli")
	defer teardown()
	//
	var stdout, stderr bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetErr(&stderr)
	f := format.MustCompile("i,t;v,3d")
	sink, flush := newSink(&stdout, f, false, true)
	err := parseLines(cmd, f, "input", strings.NewReader("1,a;0.5\nbad\n2,b;1.5,2.5\n"), sink)
	if !errors.Is(err, errFailedRecords) {
		t.Errorf("expected errFailedRecords, have %v", err)
	}
	if err := flush(); err != nil {
		t.Fatal(err)
	}
	in := stream.NewInput(&stdout)
	for i, want := range []format.Record{
		{format.IntValue(1), format.StringValue("a"),
			format.ArrayValue(format.Double, []format.Value{format.DoubleValue(0.5)})},
		{format.IntValue(2), format.StringValue("b"),
			format.ArrayValue(format.Double, []format.Value{format.DoubleValue(1.5), format.DoubleValue(2.5)})},
	} {
		rec, err := format.ReadRecord(in)
		if err != nil {
			t.Fatalf("record #%d: %v", i, err)
		}
		if !rec.Equal(want) {
			t.Errorf("record #%d: expected %v, have %v", i, want, rec)
		}
	}
	if _, err := format.ReadRecord(in); !errors.Is(err, io.EOF) {
		t.Errorf("expected end of binary output, have %v", err)
	}
}

// --- Interactive session ---------------------------------------------------

func TestRecordSession(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kit.cli")
	defer teardown()
	//
	var stdout, stderr bytes.Buffer
	intp := &recordInterpreter{}
	s := intp.session()
	s.SetOutputs(&stdout, &stderr)
	s.Execute("1,2")
	if !strings.Contains(stderr.String(), errNoPattern.Error()) {
		t.Errorf("expected missing pattern to be reported, have %q", stderr.String())
	}
	s.Execute(":pattern i,a;0t")
	if intp.format != nil || !strings.Contains(stderr.String(), "^") {
		t.Errorf("expected invalid pattern to be rejected with a caret, have %q", stderr.String())
	}
	s.Execute(":pattern i,t")
	if intp.format == nil || intp.format.Pattern() != "i,t" {
		t.Fatalf("expected pattern i,t to be set")
	}
	s.Execute("7,seven")
	rec, ok := s.Last()
	want := format.Record{format.IntValue(7), format.StringValue("seven")}
	if !ok || !rec.(format.Record).Equal(want) {
		t.Errorf("expected %v in history, have %v", want, rec)
	}
	if !strings.Contains(stdout.String(), "seven") {
		t.Errorf("expected record to be displayed, have %q", stdout.String())
	}
	stderr.Reset()
	s.Execute("x,y")
	if s.HistorySize() != 1 || !strings.Contains(stderr.String(), "    i,t\n") {
		t.Errorf("expected failing line to be reported against the pattern, have %q", stderr.String())
	}
	s.Execute(":pattern i")
	if s.HistorySize() != 0 {
		t.Errorf("expected a new pattern to clear the history")
	}
}
