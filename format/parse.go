package format

import (
	"strings"
	"unicode"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/kit/balance"
	"github.com/npillmayer/kit/cursor"
)

// parseContext holds the state of a single Parse call. It is never shared
// between calls.
type parseContext struct {
	opts        options
	tokens      []token
	content     *cursor.Cursor
	out         *arraylist.List
	alternative bool // a '?' has been passed
}

func newParseContext(f *Format, content string) *parseContext {
	return &parseContext{
		opts:    f.opts,
		tokens:  f.tokens,
		content: cursor.New(content),
		out:     arraylist.New(),
	}
}

func (ctx *parseContext) record() Record {
	rec := make(Record, ctx.out.Size())
	for i, v := range ctx.out.Values() {
		rec[i] = v.(Value)
	}
	return rec
}

// run walks pattern tokens and content in lockstep.
func (ctx *parseContext) run() error {
	content := ctx.content
	for i := range ctx.tokens {
		tok := &ctx.tokens[i]
		if tok.cat == Alternative {
			ctx.alternative = true
			if content.Finish() {
				tracer().Debugf("content exhausted at optional section, column %d", tok.col)
				return nil
			}
			continue
		}
		if content.Finish() {
			if ctx.alternative {
				return nil
			}
			if tok.last && tok.cat == Primitive {
				ctx.out.Add(Zero(tok.typ.kind))
				return nil
			}
			return &FormatError{Column: tok.col, Field: tok.field, Err: ErrContentEnded}
		}
		tracer().Debugf("column %d: %s %q at content offset %d", tok.col, tok.cat, tok.ch, content.Offset())
		switch tok.cat {
		case Literal, Brace:
			if c := content.Get(); c != tok.ch {
				return &FormatError{Column: tok.col, Text: string(c), Err: ErrUnexpectedChar}
			}
			content.Next()
		case Primitive:
			v, err := ctx.parseNext(tok, tok.sep, tok.term)
			if err != nil {
				return err
			}
			ctx.out.Add(v)
			ctx.skipSeparator(tok.sep)
		case ArrayKind:
			if err := ctx.parseArray(tok); err != nil {
				return err
			}
		case MatrixKind:
			if err := ctx.parseMatrix(tok); err != nil {
				return err
			}
		}
		if i+1 < len(ctx.tokens) {
			ctx.skipBlanks(&ctx.tokens[i+1])
		}
	}
	if !content.Finish() {
		col := 1
		if n := len(ctx.tokens); n > 0 {
			col = ctx.tokens[n-1].col
		}
		return &FormatError{Column: col, Text: content.Rest(), Err: ErrSurplusContent}
	}
	return nil
}

func (ctx *parseContext) isBlank(c rune) bool {
	return c == ' ' || (c == '\t' && ctx.opts.tabAsSpace)
}

// skipBlanks skips blanks between fields, unless the next token is a
// blank literal itself.
func (ctx *parseContext) skipBlanks(next *token) {
	if !ctx.opts.spaceInColumn && !ctx.opts.trim {
		return
	}
	if next.cat == Literal && ctx.isBlank(next.ch) {
		return
	}
	ctx.content.SkipWhile(ctx.isBlank)
}

func (ctx *parseContext) skipSeparator(sep rune) {
	if sep != cursor.NUL && ctx.content.Get() == sep {
		ctx.content.Next()
	}
}

// --- Primitive values ------------------------------------------------------

// parseNext parses one value of the type of tok. The value ends at sep or
// at any of terms. The delimiter is not consumed.
func (ctx *parseContext) parseNext(tok *token, sep rune, terms ...rune) (Value, error) {
	kind := tok.typ.kind
	if ctx.opts.blankColumns && ctx.emptyColumn(sep, terms) {
		tracer().Debugf("empty column for field %d", tok.field)
		return Zero(kind), nil
	}
	text, err := ctx.nextToken(sep, terms)
	if err != nil {
		return Value{}, &FormatError{Column: tok.col, Field: tok.field, Text: text, Err: err}
	}
	if ctx.opts.trim {
		text = strings.TrimFunc(text, unicode.IsSpace)
	}
	if text == "" && ctx.opts.blankValues {
		return Zero(kind), nil
	}
	v, err := tok.typ.convert(text)
	if err != nil {
		tracer().Debugf("field %d: %v", tok.field, err)
		return Value{}, &FormatError{Column: tok.col, Field: tok.field, Text: text, Err: err}
	}
	return v, nil
}

func isStop(c, sep rune, terms []rune) bool {
	if c == sep {
		return true
	}
	for _, t := range terms {
		if t != cursor.NUL && c == t {
			return true
		}
	}
	return false
}

// emptyColumn is true if the content is positioned at a column without a
// value. A run of blanks up to a delimiter is consumed.
func (ctx *parseContext) emptyColumn(sep rune, terms []rune) bool {
	content := ctx.content
	if content.Finish() || isStop(content.Get(), sep, terms) {
		return true
	}
	if ctx.isBlank(content.Get()) {
		start := content.Offset()
		content.SkipWhile(ctx.isBlank)
		if content.Finish() || isStop(content.Get(), sep, terms) {
			return true
		}
		content.To(start)
	}
	return false
}

// nextToken scans up to the next delimiter outside of bracketed groups.
// A backslash escapes the next character.
func (ctx *parseContext) nextToken(sep rune, terms []rune) (string, error) {
	content := ctx.content
	if balance.IsClosing(content.Get()) && !isStop(content.Get(), sep, terms) {
		return "", nil
	}
	var tracker balance.Tracker
	var b strings.Builder
	for !content.Finish() {
		c := content.Get()
		if c == '\\' {
			if !content.Next() {
				b.WriteRune(c)
				break
			}
			b.WriteRune(content.NextChar())
			continue
		}
		if !tracker.Has() && isStop(c, sep, terms) {
			break
		}
		tracker.Parse(c)
		if err := tracker.IsMuch(); err != nil {
			return b.String() + string(c), err
		}
		b.WriteRune(c)
		content.Next()
	}
	if err := tracker.IsLittle(); err != nil {
		return b.String(), err
	}
	return b.String(), nil
}

// --- Arrays and matrices ---------------------------------------------------

func (ctx *parseContext) parseArray(tok *token) error {
	var items []Value
	var err error
	if tok.variable() {
		items, err = ctx.variableItems(tok)
	} else {
		items, err = ctx.fixedItems(tok)
	}
	if err != nil {
		return err
	}
	ctx.out.Add(ArrayValue(tok.typ.kind, items))
	return nil
}

// fixedItems reads exactly tok.max elements. A missing final element is
// backfilled if the array is the last token of the pattern.
func (ctx *parseContext) fixedItems(tok *token) ([]Value, error) {
	content := ctx.content
	items := make([]Value, 0, prealloc(tok.max))
	for k := 0; k < tok.max; k++ {
		if k > 0 {
			if content.Get() != tok.sep {
				return nil, ctx.missing(tok, k)
			}
			content.Next()
			if content.Finish() {
				if k == tok.max-1 && tok.last {
					items = append(items, Zero(tok.typ.kind))
					break
				}
				return nil, ctx.missing(tok, k)
			}
		}
		v, err := ctx.parseNext(tok, tok.sep, tok.term)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	if tok.sep != tok.follow {
		ctx.skipSeparator(tok.sep)
	}
	return items, nil
}

// prealloc bounds a slice capacity taken from a pattern, which may declare
// up to 999999999 elements.
func prealloc(n int) int {
	const limit = 64
	if n > limit {
		return limit
	}
	return n
}

func (ctx *parseContext) missing(tok *token, found int) error {
	tracer().Errorf("array at column %d: found %d of %d elements", tok.col, found, tok.max)
	return &FormatError{Column: tok.col, Field: tok.field, Text: ctx.content.Fear(8), Err: ErrMissingData}
}

// variableItems reads 1 to tok.max elements. The bound is checked before
// an element is read.
func (ctx *parseContext) variableItems(tok *token) ([]Value, error) {
	content := ctx.content
	var items []Value
	for {
		if len(items) == tok.max {
			return nil, &FormatError{Column: tok.col, Field: tok.field, Text: content.Rest(),
				Err: ErrTooManyElements}
		}
		v, err := ctx.parseNext(tok, tok.sep, tok.term)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
		if !ctx.more(tok, tok.sep, len(items) == tok.max) {
			break
		}
	}
	return items, nil
}

// more consumes sep and reports whether another element follows.
//
// If sep is also the literal following tok, the separator is left to that
// literal when the token is complete or when the content after the
// separator is empty or matches the literal after it.
func (ctx *parseContext) more(tok *token, sep rune, complete bool) bool {
	content := ctx.content
	if sep == cursor.NUL || content.Get() != sep {
		return false
	}
	if sep == tok.follow {
		if complete {
			return false
		}
		if c := content.Peek(); c == cursor.NUL || c == tok.after {
			return false
		}
	}
	content.Next()
	return !content.Finish()
}

// parseMatrix reads up to tok.max rows of up to tok.cols columns each.
// If rows and columns share a separator, a row ends after tok.cols
// elements.
func (ctx *parseContext) parseMatrix(tok *token) error {
	shared := tok.rowSep == tok.sep
	var rows [][]Value
	for {
		if len(rows) == tok.max {
			return &FormatError{Column: tok.col, Field: tok.field, Text: ctx.content.Rest(),
				Err: ErrTooManyRows}
		}
		lastRow := len(rows)+1 == tok.max
		var row []Value
		for {
			if len(row) == tok.cols {
				return &FormatError{Column: tok.col, Field: tok.field, Text: ctx.content.Rest(),
					Err: ErrTooManyColumns}
			}
			v, err := ctx.parseNext(tok, tok.sep, tok.rowSep, tok.term)
			if err != nil {
				return err
			}
			row = append(row, v)
			if shared && len(row) == tok.cols {
				break
			}
			if !ctx.more(tok, tok.sep, lastRow && len(row) == tok.cols) {
				break
			}
		}
		rows = append(rows, row)
		if !ctx.more(tok, tok.rowSep, len(rows) == tok.max) {
			break
		}
	}
	ctx.out.Add(MatrixValue(tok.typ.kind, rows))
	return nil
}
