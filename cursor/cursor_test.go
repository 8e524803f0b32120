package cursor

import "testing"

func TestCursorWalk(t *testing.T) {
	input := "test!"
	c := New(input)
	for i := 0; i < 5; i++ {
		r := c.NextChar()
		if r != []rune(input)[i] {
			t.Errorf("expected rune #%d to be %#U, is %#U", i, []rune(input)[i], r)
		}
	}
	if !c.Finish() {
		t.Errorf("expected cursor to be finished after reading %q", input)
	}
	if r := c.Get(); r != NUL {
		t.Errorf("expected NUL past the end, have %#U", r)
	}
	if c.Next() {
		t.Error("expected Next to report out of range past the end")
	}
	if c.Offset() != 5 {
		t.Errorf("expected offset to clamp at 5, is %d", c.Offset())
	}
}

func TestCursorBackwards(t *testing.T) {
	c := New("abc")
	c.Terminate()
	var s []rune
	for c.Back() {
		s = append(s, c.Get())
	}
	if string(s) != "cba" {
		t.Errorf("expected backwards walk to yield \"cba\", have %q", string(s))
	}
	if c.Offset() != -1 || !c.Start() {
		t.Errorf("expected cursor before start, offset is %d", c.Offset())
	}
	if c.Back() || c.Offset() != -1 {
		t.Errorf("expected Back to clamp at -1, offset is %d", c.Offset())
	}
	if c.Get() != NUL {
		t.Error("expected NUL before start")
	}
	c.Restart()
	if !c.Next() || c.Get() != 'a' {
		t.Errorf("expected restart + next to point to 'a', is %#U", c.Get())
	}
}

func TestCursorLookaround(t *testing.T) {
	c := New("xyz")
	c.Next()
	if c.Peek() != 'z' || c.Lookback() != 'x' {
		t.Errorf("unexpected lookaround: %#U / %#U", c.Peek(), c.Lookback())
	}
	if c.BackChar() != 'y' || c.Get() != 'x' {
		t.Errorf("expected BackChar to read 'y' and move to 'x', at %#U", c.Get())
	}
}

func TestCursorTo(t *testing.T) {
	c := New("hello")
	for i, x := range []struct {
		to, expect int
	}{
		{to: 2, expect: 2},
		{to: -7, expect: -1},
		{to: 99, expect: 5},
		{to: 5, expect: 5},
		{to: 0, expect: 0},
	} {
		c.To(x.to)
		if c.Offset() != x.expect {
			t.Errorf("test %d: To(%d) gave offset %d, expected %d", i, x.to, c.Offset(), x.expect)
		}
	}
}

func TestCursorCut(t *testing.T) {
	c := New("hello world")
	for i, x := range []struct {
		offset, length int
		expect         string
	}{
		{0, 5, "hello"},
		{6, 100, "world"},
		{-1, 3, ""},
		{11, 1, ""},
		{3, 0, ""},
		{10, 1, "d"},
	} {
		if s := c.Cut(x.offset, x.length); s != x.expect {
			t.Errorf("test %d: Cut(%d,%d) = %q, expected %q", i, x.offset, x.length, s, x.expect)
		}
	}
}

func TestCursorFear(t *testing.T) {
	c := New("0123456789")
	c.To(5)
	if w := c.Fear(2); w != "3456" {
		t.Errorf("expected window \"3456\", have %q", w)
	}
	c.To(0)
	if w := c.Fear(3); w != "012" {
		t.Errorf("expected clamped window \"012\", have %q", w)
	}
	c.Terminate()
	if w := c.Fear(2); w != "89" {
		t.Errorf("expected clamped window \"89\", have %q", w)
	}
}

func TestCursorInsertAppend(t *testing.T) {
	c := New("ac")
	c.Next()
	c.Insert('b')
	if c.String() != "abc" || c.Get() != 'b' {
		t.Errorf("expected \"abc\" at 'b', have %q at %#U", c.String(), c.Get())
	}
	c.Terminate()
	c.Insert('d')
	c.Append("ef")
	if c.String() != "abcdef" {
		t.Errorf("expected \"abcdef\", have %q", c.String())
	}
	c.Restart()
	c.Insert('_')
	if c.String() != "_abcdef" || c.Offset() != 0 {
		t.Errorf("expected insert at front, have %q at %d", c.String(), c.Offset())
	}
}

func TestCursorDeleteAt(t *testing.T) {
	c := New("i,i;t,")
	c.To(4)
	if !c.DeleteAt(',', 1) {
		t.Fatal("expected first ',' to be found")
	}
	if c.String() != "i;t," || c.Offset() != 2 {
		t.Errorf("expected \"i;t,\" at 2, have %q at %d", c.String(), c.Offset())
	}
	if c.DeleteAt(',', 2) {
		t.Error("expected no second ',' to be found")
	}
	if !c.DeleteAt(',', 0) || c.String() != "" || c.Offset() != -1 {
		t.Errorf("expected empty text before start, have %q at %d", c.String(), c.Offset())
	}
}

func TestCursorUnicode(t *testing.T) {
	c := New("äöü")
	if c.Len() != 3 {
		t.Errorf("expected length 3 in runes, is %d", c.Len())
	}
	c.Next()
	if c.Get() != 'ö' || c.Rest() != "öü" {
		t.Errorf("unexpected character %#U or rest %q", c.Get(), c.Rest())
	}
	n := c.SkipWhile(func(r rune) bool { return r != 'ü' })
	if n != 1 || c.Get() != 'ü' {
		t.Errorf("expected to skip 1 character to 'ü', skipped %d", n)
	}
}
