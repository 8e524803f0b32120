package format

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind represents the type of a value.
type Kind int8

// Value kinds
const (
	Invalid Kind = iota
	Bool
	Byte
	Short
	Int
	Long
	Float
	Double
	Char
	String
	Array
	Matrix
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "<invalid>"
	case Bool:
		return "boolean"
	case Byte:
		return "byte"
	case Short:
		return "short"
	case Int:
		return "int"
	case Long:
		return "long"
	case Float:
		return "float"
	case Double:
		return "double"
	case Char:
		return "char"
	case String:
		return "string"
	case Array:
		return "array"
	case Matrix:
		return "matrix"
	}
	return fmt.Sprintf("<illegal kind: %d>", k)
}

// IsScalar is true for all kinds but Invalid, Array and Matrix.
func (k Kind) IsScalar() bool {
	return k > Invalid && k < Array
}

// --- Value -----------------------------------------------------------------

// Value is a single parsed field. It is one of the scalar kinds, an array
// of scalars, or a matrix of scalars. The zero Value is Invalid.
type Value struct {
	kind  Kind
	elem  Kind      // element kind of arrays and matrices
	num   int64     // integral kinds, chars and booleans
	flt   float64   // Float and Double
	str   string    // String
	items []Value   // Array
	rows  [][]Value // Matrix
}

// BoolValue creates a boolean value.
func BoolValue(b bool) Value {
	v := Value{kind: Bool}
	if b {
		v.num = 1
	}
	return v
}

// ByteValue creates a byte value.
func ByteValue(n int8) Value { return Value{kind: Byte, num: int64(n)} }

// ShortValue creates a short value.
func ShortValue(n int16) Value { return Value{kind: Short, num: int64(n)} }

// IntValue creates an int value.
func IntValue(n int32) Value { return Value{kind: Int, num: int64(n)} }

// LongValue creates a long value.
func LongValue(n int64) Value { return Value{kind: Long, num: n} }

// FloatValue creates a float value.
func FloatValue(f float32) Value { return Value{kind: Float, flt: float64(f)} }

// DoubleValue creates a double value.
func DoubleValue(f float64) Value { return Value{kind: Double, flt: f} }

// CharValue creates a char value.
func CharValue(r rune) Value { return Value{kind: Char, num: int64(r)} }

// StringValue creates a string value.
func StringValue(s string) Value { return Value{kind: String, str: s} }

// ArrayValue creates an array of elements of kind elem. Items of a
// different kind are a programming error and will panic.
func ArrayValue(elem Kind, items []Value) Value {
	for _, it := range items {
		if it.kind != elem {
			panic(fmt.Sprintf("array of %s cannot hold %s", elem, it.kind))
		}
	}
	return Value{kind: Array, elem: elem, items: items}
}

// MatrixValue creates a matrix with elements of kind elem. Rows may
// differ in length.
func MatrixValue(elem Kind, rows [][]Value) Value {
	for _, row := range rows {
		for _, it := range row {
			if it.kind != elem {
				panic(fmt.Sprintf("matrix of %s cannot hold %s", elem, it.kind))
			}
		}
	}
	return Value{kind: Matrix, elem: elem, rows: rows}
}

// Zero returns the null-default of a scalar kind: 0, false, NUL or "".
func Zero(k Kind) Value {
	if !k.IsScalar() {
		return Value{}
	}
	return Value{kind: k}
}

// Kind returns the kind of v.
func (v Value) Kind() Kind {
	return v.kind
}

// Elem returns the element kind of arrays and matrices, Invalid otherwise.
func (v Value) Elem() Kind {
	return v.elem
}

// IsValid is false for the zero Value.
func (v Value) IsValid() bool {
	return v.kind != Invalid
}

func (v Value) mismatch(k Kind) {
	tracer().Errorf("value is not of kind %s: %v", k, v)
}

// AsBool returns a boolean value, or false.
func (v Value) AsBool() bool {
	if v.kind != Bool {
		v.mismatch(Bool)
	}
	return v.kind == Bool && v.num != 0
}

// AsByte returns a byte value, or 0.
func (v Value) AsByte() int8 {
	if v.kind != Byte {
		v.mismatch(Byte)
		return 0
	}
	return int8(v.num)
}

// AsShort returns a short value, or 0.
func (v Value) AsShort() int16 {
	if v.kind != Short {
		v.mismatch(Short)
		return 0
	}
	return int16(v.num)
}

// AsInt returns an int value, or 0.
func (v Value) AsInt() int32 {
	if v.kind != Int {
		v.mismatch(Int)
		return 0
	}
	return int32(v.num)
}

// AsLong returns a long value, or 0.
func (v Value) AsLong() int64 {
	if v.kind != Long {
		v.mismatch(Long)
		return 0
	}
	return v.num
}

// AsFloat returns a float value, or 0.
func (v Value) AsFloat() float32 {
	if v.kind != Float {
		v.mismatch(Float)
		return 0
	}
	return float32(v.flt)
}

// AsDouble returns a double value, or 0.
func (v Value) AsDouble() float64 {
	if v.kind != Double {
		v.mismatch(Double)
		return 0
	}
	return v.flt
}

// AsChar returns a char value, or NUL.
func (v Value) AsChar() rune {
	if v.kind != Char {
		v.mismatch(Char)
		return 0
	}
	return rune(v.num)
}

// AsString returns a string value, or "".
func (v Value) AsString() string {
	if v.kind != String {
		v.mismatch(String)
		return ""
	}
	return v.str
}

// Items returns the elements of an array, or nil.
func (v Value) Items() []Value {
	if v.kind != Array {
		v.mismatch(Array)
		return nil
	}
	return v.items
}

// Rows returns the rows of a matrix, or nil.
func (v Value) Rows() [][]Value {
	if v.kind != Matrix {
		v.mismatch(Matrix)
		return nil
	}
	return v.rows
}

// Len is the number of elements of an array, the number of rows of a
// matrix, and 1 for scalars.
func (v Value) Len() int {
	switch v.kind {
	case Invalid:
		return 0
	case Array:
		return len(v.items)
	case Matrix:
		return len(v.rows)
	}
	return 1
}

// Interface returns v as a Go value: int8, int16, int32, int64, float32,
// float64, rune, string, bool, []interface{} for arrays and
// [][]interface{} for matrices.
func (v Value) Interface() interface{} {
	switch v.kind {
	case Bool:
		return v.num != 0
	case Byte:
		return int8(v.num)
	case Short:
		return int16(v.num)
	case Int:
		return int32(v.num)
	case Long:
		return v.num
	case Float:
		return float32(v.flt)
	case Double:
		return v.flt
	case Char:
		return rune(v.num)
	case String:
		return v.str
	case Array:
		return interfaces(v.items)
	case Matrix:
		m := make([][]interface{}, len(v.rows))
		for i, row := range v.rows {
			m[i] = interfaces(row)
		}
		return m
	}
	return nil
}

func interfaces(vals []Value) []interface{} {
	r := make([]interface{}, len(vals))
	for i, it := range vals {
		r[i] = it.Interface()
	}
	return r
}

// Equal compares kind and content.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind || v.elem != w.elem {
		return false
	}
	switch v.kind {
	case Float, Double:
		return v.flt == w.flt
	case String:
		return v.str == w.str
	case Array:
		return equalValues(v.items, w.items)
	case Matrix:
		if len(v.rows) != len(w.rows) {
			return false
		}
		for i := range v.rows {
			if !equalValues(v.rows[i], w.rows[i]) {
				return false
			}
		}
		return true
	}
	return v.num == w.num
}

func equalValues(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func (v Value) String() string {
	switch v.kind {
	case Invalid:
		return "<invalid>"
	case Bool:
		return strconv.FormatBool(v.num != 0)
	case Float:
		return strconv.FormatFloat(v.flt, 'g', -1, 32)
	case Double:
		return strconv.FormatFloat(v.flt, 'g', -1, 64)
	case Char:
		return strconv.QuoteRune(rune(v.num))
	case String:
		return strconv.Quote(v.str)
	case Array:
		return listString(v.items)
	case Matrix:
		var b strings.Builder
		b.WriteByte('[')
		for i, row := range v.rows {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(listString(row))
		}
		b.WriteByte(']')
		return b.String()
	}
	return strconv.FormatInt(v.num, 10)
}

func listString(vals []Value) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, it := range vals {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(it.String())
	}
	b.WriteByte(']')
	return b.String()
}

// --- Record ----------------------------------------------------------------

// Record is the result of parsing one line of content: one value per
// field of the pattern, in pattern order.
type Record []Value

// Flatten expands every matrix into its row count (an Int) followed by one
// Array per row. Other values are copied unchanged.
func (r Record) Flatten() []Value {
	flat := make([]Value, 0, len(r))
	for _, v := range r {
		if v.kind != Matrix {
			flat = append(flat, v)
			continue
		}
		flat = append(flat, IntValue(int32(len(v.rows))))
		for _, row := range v.rows {
			flat = append(flat, ArrayValue(v.elem, row))
		}
	}
	return flat
}

// Equal compares two records value by value.
func (r Record) Equal(other Record) bool {
	return equalValues(r, other)
}

func (r Record) String() string {
	return listString(r)
}
