/*
Package balance tracks the nesting of parentheses, brackets and braces.

A Tracker keeps three independent counters, one per bracket class. It is
used while scanning for a token boundary: as long as a group is open
(Has() is true), separator characters are part of the token.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package balance

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'kit.balance'.
func tracer() tracing.Trace {
	return tracing.Select("kit.balance")
}

// Class is a bracket class.
type Class int8

// Bracket classes
const (
	None Class = iota - 1
	Paren
	Bracket
	Brace
)

var classNames = [...]string{"parentheses", "brackets", "braces"}

func (c Class) String() string {
	if c < Paren || c > Brace {
		return "<none>"
	}
	return classNames[c]
}

// ClassOf returns the class of a bracket character, or None.
func ClassOf(r rune) Class {
	switch r {
	case '(', ')':
		return Paren
	case '[', ']':
		return Bracket
	case '{', '}':
		return Brace
	}
	return None
}

// IsOpening is true for '(', '[' and '{'.
func IsOpening(r rune) bool {
	return r == '(' || r == '[' || r == '{'
}

// IsClosing is true for ')', ']' and '}'.
func IsClosing(r rune) bool {
	return r == ')' || r == ']' || r == '}'
}

// IsBracket is true for all six bracket characters.
func IsBracket(r rune) bool {
	return ClassOf(r) != None
}

// Sentinel errors, wrapped by Error.
var (
	ErrTooManyClosing = errors.New("too many closing brackets")
	ErrTooManyOpening = errors.New("too many opening brackets")
)

// Error reports an unbalanced bracket class.
type Error struct {
	Class   Class
	Closing bool // more closes than opens
}

func (e *Error) Error() string {
	if e.Closing {
		return "too many closing " + e.Class.String()
	}
	return "too many opening " + e.Class.String()
}

func (e *Error) Unwrap() error {
	if e.Closing {
		return ErrTooManyClosing
	}
	return ErrTooManyOpening
}

// Tracker counts open groups per bracket class. The zero value is ready
// to use.
type Tracker struct {
	count [3]int
}

// ParseOpen increments the counter matching an opening bracket. Other
// characters are ignored. It returns true if r was an opening bracket.
func (t *Tracker) ParseOpen(r rune) bool {
	if !IsOpening(r) {
		return false
	}
	t.count[ClassOf(r)]++
	return true
}

// ParseClose decrements the counter matching a closing bracket. Other
// characters are ignored. It returns true if r was a closing bracket.
func (t *Tracker) ParseClose(r rune) bool {
	if !IsClosing(r) {
		return false
	}
	t.count[ClassOf(r)]--
	return true
}

// Parse feeds r to ParseOpen or ParseClose.
func (t *Tracker) Parse(r rune) {
	if !t.ParseOpen(r) {
		t.ParseClose(r)
	}
}

// Level returns the counter of class c.
func (t *Tracker) Level(c Class) int {
	if c == None {
		return 0
	}
	return t.count[c]
}

// Has is true if any counter is non-zero, i.e. a group is pending.
func (t *Tracker) Has() bool {
	return t.count[Paren] != 0 || t.count[Bracket] != 0 || t.count[Brace] != 0
}

// IsMuch fails if more closing than opening brackets have been seen for
// any class.
func (t *Tracker) IsMuch() error {
	for c := Paren; c <= Brace; c++ {
		if t.count[c] < 0 {
			tracer().Debugf("%s: level %d", c, t.count[c])
			return &Error{Class: c, Closing: true}
		}
	}
	return nil
}

// IsLittle fails if a group of any class has been opened but not closed.
func (t *Tracker) IsLittle() error {
	for c := Paren; c <= Brace; c++ {
		if t.count[c] > 0 {
			tracer().Debugf("%s: level %d", c, t.count[c])
			return &Error{Class: c}
		}
	}
	return nil
}

// Reset sets all counters to zero.
func (t *Tracker) Reset() {
	t.count = [3]int{}
}
