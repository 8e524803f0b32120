package balance

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTrackerBalanced(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kit.balance")
	defer teardown()
	//
	var tr Tracker
	for _, r := range "({[x]})" {
		tr.Parse(r)
	}
	if tr.Has() {
		t.Errorf("expected tracker to be balanced, levels are %v", tr.count)
	}
	if err := tr.IsMuch(); err != nil {
		t.Error(err)
	}
	if err := tr.IsLittle(); err != nil {
		t.Error(err)
	}
}

func TestTrackerPending(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kit.balance")
	defer teardown()
	//
	var tr Tracker
	for i, x := range []struct {
		r     rune
		has   bool
		level int
	}{
		{'(', true, 1},
		{'a', true, 1},
		{'(', true, 2},
		{')', true, 1},
		{',', true, 1},
		{')', false, 0},
	} {
		tr.Parse(x.r)
		if tr.Has() != x.has || tr.Level(Paren) != x.level {
			t.Errorf("test %d: after %q expected has=%v level=%d, have %v/%d",
				i, x.r, x.has, x.level, tr.Has(), tr.Level(Paren))
		}
	}
}

func TestTrackerTooMuch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kit.balance")
	defer teardown()
	//
	var tr Tracker
	tr.ParseOpen('(')
	tr.ParseClose(']')
	err := tr.IsMuch()
	if err == nil {
		t.Fatal("expected too many closing brackets")
	}
	if !errors.Is(err, ErrTooManyClosing) {
		t.Errorf("expected ErrTooManyClosing, have %v", err)
	}
	if err.Error() != "too many closing brackets" {
		t.Errorf("unexpected message %q", err.Error())
	}
	err = tr.IsLittle()
	if !errors.Is(err, ErrTooManyOpening) || err.Error() != "too many opening parentheses" {
		t.Errorf("expected too many opening parentheses, have %v", err)
	}
	tr.Reset()
	if tr.Has() {
		t.Error("expected reset tracker to be balanced")
	}
}

func TestClassify(t *testing.T) {
	for i, x := range []struct {
		r       rune
		c       Class
		opening bool
		closing bool
	}{
		{'(', Paren, true, false},
		{']', Bracket, false, true},
		{'{', Brace, true, false},
		{'<', None, false, false},
	} {
		if ClassOf(x.r) != x.c || IsOpening(x.r) != x.opening || IsClosing(x.r) != x.closing {
			t.Errorf("test %d: wrong classification for %q", i, x.r)
		}
	}
	if tr := (Tracker{}); tr.ParseOpen('x') || tr.ParseClose('x') {
		t.Error("expected non-bracket characters to be ignored")
	}
}
