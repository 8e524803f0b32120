package format

import (
	"fmt"
	"sort"

	"github.com/npillmayer/kit/balance"
	"github.com/npillmayer/kit/conv"
)

// Category is the class of a pattern character.
type Category int8

// Pattern character categories
const (
	Literal Category = iota
	Alternative
	Primitive
	ArrayKind
	MatrixKind
	Brace
)

func (c Category) String() string {
	switch c {
	case Literal:
		return "literal"
	case Alternative:
		return "alternative"
	case Primitive:
		return "primitive"
	case ArrayKind:
		return "array"
	case MatrixKind:
		return "matrix"
	case Brace:
		return "brace"
	}
	return fmt.Sprintf("<illegal category: %d>", c)
}

// Pattern characters with a special meaning
const (
	AlternativeMarker = '?'
	FixedArray        = 'a'
	VariableArray     = 'v'
	MatrixMarker      = 'm'
)

// Classify returns the category of pattern character r.
func Classify(r rune) Category {
	switch {
	case r == AlternativeMarker:
		return Alternative
	case r == FixedArray || r == VariableArray:
		return ArrayKind
	case r == MatrixMarker:
		return MatrixKind
	case balance.IsBracket(r):
		return Brace
	}
	if _, ok := registry[r]; ok {
		return Primitive
	}
	return Literal
}

// --- Type registry ---------------------------------------------------------

// converter converts a token of content text to a value of one type.
type converter struct {
	tag     rune
	kind    Kind
	convert func(string) (Value, error)
}

var registry = map[rune]*converter{
	'b': {'b', Byte, func(s string) (Value, error) {
		n, err := conv.ParseByte(s)
		return ByteValue(n), err
	}},
	'c': {'c', Char, func(s string) (Value, error) {
		r, err := conv.ParseChar(s)
		return CharValue(r), err
	}},
	's': {'s', Short, func(s string) (Value, error) {
		n, err := conv.ParseShort(s)
		return ShortValue(n), err
	}},
	'i': {'i', Int, func(s string) (Value, error) {
		n, err := conv.ParseInt(s)
		return IntValue(n), err
	}},
	'l': {'l', Long, func(s string) (Value, error) {
		n, err := conv.ParseLong(s)
		return LongValue(n), err
	}},
	'f': {'f', Float, func(s string) (Value, error) {
		x, err := conv.ParseFloat(s)
		return FloatValue(x), err
	}},
	'd': {'d', Double, func(s string) (Value, error) {
		x, err := conv.ParseDouble(s)
		return DoubleValue(x), err
	}},
	't': {'t', String, func(s string) (Value, error) {
		return StringValue(s), nil
	}},
	'z': {'z', Bool, func(s string) (Value, error) {
		b, ok := conv.ParseBool(s).Bool()
		if !ok {
			return Value{}, &conv.NumError{Func: "ParseBool", Num: s, Err: conv.ErrSyntax}
		}
		return BoolValue(b), nil
	}},
}

// TypeInfo describes a type character of the pattern grammar.
type TypeInfo struct {
	Tag  rune
	Kind Kind
}

// Types lists the type characters of the pattern grammar, ordered by kind.
func Types() []TypeInfo {
	types := make([]TypeInfo, 0, len(registry))
	for tag, c := range registry {
		types = append(types, TypeInfo{Tag: tag, Kind: c.kind})
	}
	sort.Slice(types, func(i, j int) bool {
		return types[i].Kind < types[j].Kind
	})
	return types
}

// TypeTag returns the pattern character for a scalar kind.
func TypeTag(k Kind) (rune, bool) {
	for tag, c := range registry {
		if c.kind == k {
			return tag, true
		}
	}
	return 0, false
}
