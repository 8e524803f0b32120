package format

import (
	"fmt"

	"github.com/npillmayer/kit/cursor"
)

// maxDigits limits digit runs of array and matrix bounds.
const maxDigits = 9

// token is a compiled unit of a pattern.
type token struct {
	cat    Category
	col    int  // 1-based pattern column of the first character
	ch     rune // literal character, or the array kind 'a'/'v'
	typ    *converter
	sep    rune // separator of scalars and array elements, column separator of matrices
	rowSep rune // matrices only
	max    int  // array bound or number of matrix rows
	cols   int  // matrices only
	term   rune // force terminator, NUL if none or equal to sep
	follow rune // literal following the token, NUL if none
	after  rune // literal following follow, NUL if none
	field  int  // 1-based field index, 0 for literals and alternatives
	last   bool // last token of the pattern
}

func (tok *token) variable() bool {
	return tok.cat == ArrayKind && tok.ch == VariableArray
}

// typeName is the name reported for a field, e.g. "int", "int[5]",
// "int[..5]", "int[2][3]".
func (tok *token) typeName() string {
	switch tok.cat {
	case Primitive:
		return tok.typ.kind.String()
	case ArrayKind:
		if tok.variable() {
			return fmt.Sprintf("%s[..%d]", tok.typ.kind, tok.max)
		}
		return fmt.Sprintf("%s[%d]", tok.typ.kind, tok.max)
	case MatrixKind:
		return fmt.Sprintf("%s[%d][%d]", tok.typ.kind, tok.max, tok.cols)
	}
	return ""
}

// IsFormat validates a pattern without creating a Format. It returns the
// type names of the fields of the pattern, in order.
func IsFormat(pattern string) ([]string, error) {
	_, fields, err := compile(pattern)
	return fields, err
}

// compile walks a pattern once and produces the token list.
func compile(pattern string) ([]token, []string, error) {
	p := cursor.New(pattern)
	var tokens []token
	fields := []string{}
	for !p.Finish() {
		tok := token{col: p.Offset() + 1, ch: p.Get()}
		tok.cat = Classify(tok.ch)
		switch tok.cat {
		case Literal, Brace, Alternative:
			p.Next()
		case Primitive:
			tok.typ = registry[tok.ch]
			p.Next()
			tok.sep = p.NextChar() // NUL at end of pattern
		case ArrayKind:
			p.Next()
			if err := compileArray(p, &tok); err != nil {
				return nil, nil, err
			}
		case MatrixKind:
			p.Next()
			if err := compileMatrix(p, &tok); err != nil {
				return nil, nil, err
			}
		}
		if tok.typ != nil {
			fields = append(fields, tok.typeName())
			tok.field = len(fields)
		}
		tokens = append(tokens, tok)
	}
	literalAt := func(i int) rune {
		if i < len(tokens) && (tokens[i].cat == Literal || tokens[i].cat == Brace) {
			return tokens[i].ch
		}
		return cursor.NUL
	}
	for i := range tokens {
		tok := &tokens[i]
		tok.last = i+1 == len(tokens)
		if tok.follow = literalAt(i + 1); tok.follow != cursor.NUL {
			tok.after = literalAt(i + 2)
		}
		if tok.follow != tok.sep {
			tok.term = tok.follow
		}
	}
	tracer().Debugf("compiled pattern %q: %d tokens, fields %v", pattern, len(tokens), fields)
	return tokens, fields, nil
}

// compileArray reads "<sep><digits><type>" after the array kind.
func compileArray(p *cursor.Cursor, tok *token) (err error) {
	if tok.sep, err = header(p, tok); err != nil {
		return err
	}
	if tok.max, err = digits(p); err != nil {
		return err
	}
	tok.typ, err = elementType(p, tok)
	return err
}

// compileMatrix reads "<rowsep><rows><colsep><cols><type>" after the 'm'.
func compileMatrix(p *cursor.Cursor, tok *token) (err error) {
	if tok.rowSep, err = header(p, tok); err != nil {
		return err
	}
	if tok.max, err = digits(p); err != nil {
		return err
	}
	if tok.sep, err = header(p, tok); err != nil {
		return err
	}
	if tok.cols, err = digits(p); err != nil {
		return err
	}
	tok.typ, err = elementType(p, tok)
	return err
}

func header(p *cursor.Cursor, tok *token) (rune, error) {
	if p.Finish() {
		return cursor.NUL, &FormatError{Column: tok.col, Text: string(tok.ch), Err: ErrBadHeader}
	}
	return p.NextChar(), nil
}

func elementType(p *cursor.Cursor, tok *token) (*converter, error) {
	if p.Finish() {
		return nil, &FormatError{Column: tok.col, Text: string(tok.ch), Err: ErrBadHeader}
	}
	col := p.Offset() + 1
	c := p.NextChar()
	typ, ok := registry[c]
	if !ok {
		return nil, &FormatError{Column: col, Text: string(c), Err: ErrUnknownType}
	}
	return typ, nil
}

// digits reads a run of decimal digits with a value of at least 1.
func digits(p *cursor.Cursor) (int, error) {
	col := p.Offset() + 1
	start := p.Offset()
	n := 0
	for c := p.Get(); c >= '0' && c <= '9'; c = p.Get() {
		n = n*10 + int(c-'0')
		p.Next()
	}
	run := p.Cut(start, p.Offset()-start)
	if len(run) == 0 {
		e := &FormatError{Column: col, Err: ErrBadDigits}
		if !p.Finish() {
			e.Text = string(p.Get())
		}
		return 0, e
	}
	if len(run) > maxDigits || n < 1 {
		return 0, &FormatError{Column: col, Text: run, Err: ErrBadDigits}
	}
	return n, nil
}
