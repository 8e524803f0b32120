package termui

// Line-oriented interactive sessions.

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"github.com/emirpasic/gods/stacks/linkedliststack"
	prtxt "github.com/jedib0t/go-pretty/v6/text"
)

// CommandPrefix starts a session command. Other input lines are passed to
// the session's Evaluator.
const CommandPrefix = ':'

// ErrQuit is returned by a command to end the session.
var ErrQuit = errors.New("quit session")

// Evaluator evaluates a single input line. A non-nil result is displayed and
// pushed onto the session history.
type Evaluator interface {
	Eval(line string) (interface{}, error)
}

// EvalFunc adapts a function to the Evaluator interface.
type EvalFunc func(line string) (interface{}, error)

func (fn EvalFunc) Eval(line string) (interface{}, error) { return fn(line) }

// Command is a session command. arg is the rest of the line after the
// command word, with surrounding blanks removed.
type Command struct {
	Args string // argument synopsis for the help text
	Help string
	Run  func(s *Session, arg string) error
}

// Session reads lines from a terminal and dispatches them to commands or
// to an Evaluator. Results of evaluation are kept on a history stack.
type Session struct {
	Eval      Evaluator
	Formatter Formatter              // displays results, DefaultFormatter if nil
	Report    func(io.Writer, error) // displays errors, DefaultFormatter if nil
	commands  map[string]Command     // without CommandPrefix
	history   *linkedliststack.Stack // results, most recent on top
	rl        *readline.Instance     // nil until Run
	stdout    io.Writer
	stderr    io.Writer
	toolname  string
	version   string
	vi        bool
}

// NewSession creates a session for an evaluator. commands extends or
// overrides the built-in commands help, bye, mode, last and drop.
func NewSession(toolname, version string, eval Evaluator, commands map[string]Command) *Session {
	s := &Session{
		Eval:     eval,
		commands: builtins(),
		history:  linkedliststack.New(),
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		toolname: toolname,
		version:  version,
	}
	for name, cmd := range commands {
		s.commands[name] = cmd
	}
	return s
}

func builtins() map[string]Command {
	return map[string]Command{
		"help": {Help: "print this message", Run: func(s *Session, _ string) error {
			s.help(s.stderr)
			return nil
		}},
		"bye": {Help: "end the session", Run: func(*Session, string) error {
			return ErrQuit
		}},
		"mode": {Args: "[vi|emacs]", Help: "show or set the editing mode", Run: (*Session).editMode},
		"last": {Help: "show the most recent result", Run: func(s *Session, _ string) error {
			r, ok := s.Last()
			if !ok {
				return errors.New("history is empty")
			}
			s.display(r)
			return nil
		}},
		"drop": {Help: "drop the most recent result", Run: func(s *Session, _ string) error {
			if _, ok := s.history.Pop(); !ok {
				return errors.New("history is empty")
			}
			return nil
		}},
	}
}

// SetOutputs redirects display of results and messages.
func (s *Session) SetOutputs(stdout, stderr io.Writer) {
	s.stdout, s.stderr = stdout, stderr
}

// Outputs returns the writers for results and for messages.
func (s *Session) Outputs() (stdout io.Writer, stderr io.Writer) {
	return s.stdout, s.stderr
}

// Last returns the most recent result.
func (s *Session) Last() (interface{}, bool) {
	return s.history.Peek()
}

// HistorySize returns the number of results kept.
func (s *Session) HistorySize() int {
	return s.history.Size()
}

// ClearHistory drops all results.
func (s *Session) ClearHistory() {
	s.history.Clear()
}

func (s *Session) names() []string {
	names := make([]string, 0, len(s.commands))
	for name := range s.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Session) help(w io.Writer) {
	fmt.Fprintf(w, "%s %s\n\n", s.toolname, s.version)
	for _, name := range s.names() {
		cmd := s.commands[name]
		fmt.Fprintf(w, "  %-20s %s\n", string(CommandPrefix)+strings.TrimSpace(name+" "+cmd.Args), cmd.Help)
	}
	fmt.Fprintln(w, "\nAll other lines are evaluated.")
}

func (s *Session) editMode(arg string) error {
	switch arg {
	case "":
	case "vi", "emacs":
		s.vi = arg == "vi"
		if s.rl != nil {
			s.rl.SetVimMode(s.vi)
		}
	default:
		return fmt.Errorf("unknown editing mode %q", arg)
	}
	mode := "emacs"
	if s.vi {
		mode = "vi"
	}
	fmt.Fprintf(s.stderr, "editing mode is %s\n", mode)
	return nil
}

// Execute handles one input line. It returns ErrQuit if the session
// should end. Errors of commands and evaluation are displayed, not returned.
func (s *Session) Execute(line string) error {
	line = strings.TrimSpace(strings.Trim(line, "\x00"))
	if line == "" {
		return nil
	}
	if line[0] == CommandPrefix {
		name, arg := line[1:], ""
		if i := strings.IndexAny(name, " \t"); i >= 0 {
			name, arg = name[:i], strings.TrimSpace(name[i:])
		}
		cmd, ok := s.commands[name]
		if !ok {
			fmt.Fprintln(s.stderr, prtxt.FgRed.Sprintf("unknown command %c%s, try %chelp", CommandPrefix, name, CommandPrefix))
			return nil
		}
		trace().Debugf("session command %q", name)
		if err := cmd.Run(s, arg); err != nil {
			if errors.Is(err, ErrQuit) {
				return err
			}
			s.report(err)
		}
		return nil
	}
	if s.Eval == nil {
		return nil
	}
	result, err := s.Eval.Eval(line)
	if err != nil {
		s.report(err)
		return nil
	}
	if result != nil {
		s.history.Push(result)
		s.display(result)
	}
	return nil
}

func (s *Session) display(item interface{}) {
	f := s.Formatter
	if f == nil {
		f = DefaultFormatter{}
	}
	if ok, err := f.Format(item, s.stdout); !ok && err == nil {
		fmt.Fprintln(s.stdout, item)
	}
}

func (s *Session) report(err error) {
	if s.Report != nil {
		s.Report(s.stderr, err)
		return
	}
	DefaultFormatter{}.Format(err, s.stderr)
}

// Run reads lines from the terminal until the user quits, input ends or
// done is closed.
func (s *Session) Run(done <-chan struct{}) error {
	rl, err := s.openTerminal()
	if err != nil {
		return err
	}
	defer rl.Close()
	s.rl = rl
	s.SetOutputs(rl.Stdout(), rl.Stderr())
	fmt.Fprintf(s.stderr, "%s %s, %chelp lists commands\n", s.toolname, s.version, CommandPrefix)
	for {
		select {
		case <-done:
			return nil
		default:
		}
		line, err := rl.Readline()
		switch {
		case err == readline.ErrInterrupt && line != "":
			continue
		case err != nil: // interrupt on empty line, or EOF
			return nil
		}
		if s.Execute(line) == ErrQuit {
			fmt.Fprintln(s.stderr, "bye")
			return nil
		}
	}
}

func (s *Session) openTerminal() (*readline.Instance, error) {
	var items []readline.PrefixCompleterInterface
	for _, name := range s.names() {
		item := readline.PcItem(string(CommandPrefix) + name)
		if name == "mode" {
			item = readline.PcItem(string(CommandPrefix)+name, readline.PcItem("vi"), readline.PcItem("emacs"))
		}
		items = append(items, item)
	}
	return readline.NewEx(&readline.Config{
		Prompt:              prtxt.FgGreen.Sprintf("%s> ", s.toolname),
		HistoryFile:         fmt.Sprintf("%s/%s-history.tmp", os.TempDir(), s.toolname),
		AutoComplete:        readline.NewPrefixCompleter(items...),
		InterruptPrompt:     "^C",
		EOFPrompt:           "bye",
		HistorySearchFold:   true,
		FuncFilterInputRune: blockSuspend,
	})
}

// blockSuspend keeps ctrl-z from suspending the process.
func blockSuspend(r rune) (rune, bool) {
	return r, r != readline.CharCtrlZ
}
