/*
Package cursor implements a bidirectional position pointer over a string.

A cursor never faults: stepping past either end clamps the position, reading
outside the text yields the NUL rune. Position -1 means "before start"
(see Restart), position Len() means "finished" (see Terminate).

Cursors operate on runes, not bytes. Offsets and lengths are therefore
counted in runes.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cursor

// NUL is returned for reads outside of the text.
const NUL rune = 0

// Cursor is a position within a text. The zero value is a finished cursor
// over an empty text.
type Cursor struct {
	text []rune
	pos  int // -1 ≤ pos ≤ len(text)
}

// New creates a cursor positioned at the first character of text.
func New(text string) *Cursor {
	return &Cursor{text: []rune(text)}
}

func (c *Cursor) String() string {
	return string(c.text)
}

// Len returns the length of the text in runes.
func (c *Cursor) Len() int {
	return len(c.text)
}

// Offset returns the current position.
func (c *Cursor) Offset() int {
	return c.pos
}

// Get returns the character at the current position, or NUL.
func (c *Cursor) Get() rune {
	return c.GetAt(c.pos)
}

// GetAt returns the character at index i, or NUL if i is out of range.
func (c *Cursor) GetAt(i int) rune {
	if i < 0 || i >= len(c.text) {
		return NUL
	}
	return c.text[i]
}

// Peek looks ahead one character without moving.
func (c *Cursor) Peek() rune {
	return c.GetAt(c.pos + 1)
}

// Lookback returns the character before the current position without moving.
func (c *Cursor) Lookback() rune {
	return c.GetAt(c.pos - 1)
}

// Next moves one step forward. It returns false if the new position is
// past the end of the text.
func (c *Cursor) Next() bool {
	if c.pos < len(c.text) {
		c.pos++
	}
	return c.pos < len(c.text)
}

// Back moves one step backwards. It returns false if the new position is
// before the start of the text.
func (c *Cursor) Back() bool {
	if c.pos > -1 {
		c.pos--
	}
	return c.pos >= 0
}

// NextChar reads the current character and then moves forward.
func (c *Cursor) NextChar() rune {
	r := c.Get()
	c.Next()
	return r
}

// BackChar reads the current character and then moves backwards.
func (c *Cursor) BackChar() rune {
	r := c.Get()
	c.Back()
	return r
}

// Start is true if the cursor is at the first character or before it.
func (c *Cursor) Start() bool {
	return c.pos <= 0
}

// Finish is true if the cursor is past the last character.
func (c *Cursor) Finish() bool {
	return c.pos >= len(c.text)
}

// Restart positions the cursor before the start of the text.
func (c *Cursor) Restart() {
	c.pos = -1
}

// Terminate positions the cursor past the end of the text.
func (c *Cursor) Terminate() {
	c.pos = len(c.text)
}

// To moves the cursor to offset, clamped to [-1, Len()].
func (c *Cursor) To(offset int) {
	switch {
	case offset < -1:
		c.pos = -1
	case offset > len(c.text):
		c.pos = len(c.text)
	default:
		c.pos = offset
	}
}

// Cut returns at most length characters starting at offset. It returns as
// much as is available and the empty string for an invalid offset.
func (c *Cursor) Cut(offset, length int) string {
	if offset < 0 || offset >= len(c.text) || length <= 0 {
		return ""
	}
	end := offset + length
	if end > len(c.text) || end < offset {
		end = len(c.text)
	}
	return string(c.text[offset:end])
}

// Rest returns the text from the current position to the end.
func (c *Cursor) Rest() string {
	if c.pos < 0 {
		return string(c.text)
	}
	return c.Cut(c.pos, len(c.text)-c.pos)
}

// Fear returns a window of up to 2*length characters centered on the
// current position. It is meant for diagnostic messages.
func (c *Cursor) Fear(length int) string {
	if length <= 0 {
		return ""
	}
	from := c.pos - length
	if from < 0 {
		from = 0
	}
	to := c.pos + length
	if to > len(c.text) {
		to = len(c.text)
	}
	if from >= to {
		return ""
	}
	return string(c.text[from:to])
}

// Insert inserts r before the current position. Afterwards the cursor
// points to the inserted character. A cursor before the start inserts at
// the front, a finished cursor appends.
func (c *Cursor) Insert(r rune) {
	at := c.pos
	if at < 0 {
		at = 0
	} else if at > len(c.text) {
		at = len(c.text)
	}
	c.text = append(c.text, NUL)
	copy(c.text[at+1:], c.text[at:])
	c.text[at] = r
	c.pos = at
}

// Append appends s to the end of the text. The position is unchanged.
func (c *Cursor) Append(s string) {
	c.text = append(c.text, []rune(s)...)
}

// DeleteAt drops everything up to and including the occurrence-th match of
// r (occurrence < 1 counts as 1). The position moves with the text and is
// clamped to -1. If there are fewer matches, nothing is deleted and false
// is returned.
func (c *Cursor) DeleteAt(r rune, occurrence int) bool {
	if occurrence < 1 {
		occurrence = 1
	}
	at := -1
	for i, ch := range c.text {
		if ch == r {
			occurrence--
			if occurrence == 0 {
				at = i
				break
			}
		}
	}
	if at < 0 {
		return false
	}
	cut := at + 1
	c.text = c.text[cut:]
	c.To(c.pos - cut)
	return true
}

// SkipWhile moves forward while pred holds for the current character and
// returns the number of characters skipped.
func (c *Cursor) SkipWhile(pred func(rune) bool) int {
	n := 0
	for !c.Finish() && pred(c.Get()) {
		c.Next()
		n++
	}
	return n
}

