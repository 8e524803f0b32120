package termui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func newTestSession(stdout, stderr *bytes.Buffer) *Session {
	eval := EvalFunc(func(line string) (interface{}, error) {
		if line == "fail" {
			return nil, errors.New("evaluation failed")
		}
		return strings.ToUpper(line), nil
	})
	s := NewSession("test", "0.0", eval, map[string]Command{
		"echo": {Args: "<text>", Help: "print text", Run: func(s *Session, arg string) error {
			stdout, _ := s.Outputs()
			_, err := stdout.Write([]byte(arg + "\n"))
			return err
		}},
	})
	s.SetOutputs(stdout, stderr)
	return s
}

func TestSessionHistory(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kit.cli")
	defer teardown()
	//
	var stdout, stderr bytes.Buffer
	s := newTestSession(&stdout, &stderr)
	for _, line := range []string{"a", "b", "", "fail"} {
		if err := s.Execute(line); err != nil {
			t.Fatalf("line %q: %v", line, err)
		}
	}
	if s.HistorySize() != 2 {
		t.Errorf("expected 2 results in history, have %d", s.HistorySize())
	}
	if r, ok := s.Last(); !ok || r != "B" {
		t.Errorf("expected last result B, have %v", r)
	}
	if !strings.Contains(stderr.String(), "evaluation failed") {
		t.Errorf("expected evaluation error on stderr, have %q", stderr.String())
	}
	stdout.Reset()
	s.Execute(":last")
	if !strings.Contains(stdout.String(), "B") {
		t.Errorf("expected :last to display B, have %q", stdout.String())
	}
	s.Execute(":drop")
	if r, _ := s.Last(); r != "A" {
		t.Errorf("expected A after :drop, have %v", r)
	}
	s.Execute(":drop")
	stderr.Reset()
	s.Execute(":drop")
	if !strings.Contains(stderr.String(), "history is empty") {
		t.Errorf("expected empty history to be reported, have %q", stderr.String())
	}
}

func TestSessionCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kit.cli")
	defer teardown()
	//
	var stdout, stderr bytes.Buffer
	s := newTestSession(&stdout, &stderr)
	s.Execute(":echo  hello world ")
	if stdout.String() != "hello world\n" {
		t.Errorf("expected command argument to be trimmed, have %q", stdout.String())
	}
	if s.HistorySize() != 0 {
		t.Errorf("expected commands to leave the history alone")
	}
	s.Execute(":nope")
	if !strings.Contains(stderr.String(), "unknown command :nope") {
		t.Errorf("expected unknown command to be reported, have %q", stderr.String())
	}
	stderr.Reset()
	s.Execute(":help")
	for _, name := range []string{":bye", ":echo <text>", ":mode [vi|emacs]", ":last"} {
		if !strings.Contains(stderr.String(), name) {
			t.Errorf("expected help to list %s", name)
		}
	}
	stderr.Reset()
	s.Execute(":mode vi")
	if !strings.Contains(stderr.String(), "editing mode is vi") {
		t.Errorf("expected vi mode, have %q", stderr.String())
	}
	if err := s.Execute(":bye"); err != ErrQuit {
		t.Errorf("expected :bye to end the session, have %v", err)
	}
}
