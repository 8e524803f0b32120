package format

import (
	"errors"
	"fmt"

	"github.com/npillmayer/kit/stream"
)

// ErrBadEncoding is returned by ReadRecord for malformed input.
var ErrBadEncoding = errors.New("malformed record encoding")

// WriteRecord writes rec in binary form: the number of values, followed by
// every value as its kind and its payload. Arrays carry their element kind
// and length, matrices their element kind, the number of rows and the
// length of each row. The caller is responsible for flushing out.
func WriteRecord(out stream.Output, rec Record) error {
	if err := out.WriteInt(int32(len(rec))); err != nil {
		return err
	}
	for _, v := range rec {
		if err := out.WriteByte(byte(v.kind)); err != nil {
			return err
		}
		if err := writeValue(out, v); err != nil {
			return err
		}
	}
	return nil
}

func writeValue(out stream.Output, v Value) error {
	switch v.kind {
	case Bool:
		return out.WriteBool(v.num != 0)
	case Byte:
		return out.WriteByte(byte(int8(v.num)))
	case Short:
		return out.WriteShort(int16(v.num))
	case Int:
		return out.WriteInt(int32(v.num))
	case Long:
		return out.WriteLong(v.num)
	case Float:
		return out.WriteFloat(float32(v.flt))
	case Double:
		return out.WriteDouble(v.flt)
	case Char:
		return out.WriteChar(rune(v.num))
	case String:
		return out.WriteUTF(v.str)
	case Array:
		if err := out.WriteByte(byte(v.elem)); err != nil {
			return err
		}
		return writeItems(out, v.items)
	case Matrix:
		if err := out.WriteByte(byte(v.elem)); err != nil {
			return err
		}
		if err := out.WriteInt(int32(len(v.rows))); err != nil {
			return err
		}
		for _, row := range v.rows {
			if err := writeItems(out, row); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("cannot encode value of kind %s", v.kind)
}

func writeItems(out stream.Output, items []Value) error {
	if err := out.WriteInt(int32(len(items))); err != nil {
		return err
	}
	for _, it := range items {
		if err := writeValue(out, it); err != nil {
			return err
		}
	}
	return nil
}

// ReadRecord reads a record written by WriteRecord.
func ReadRecord(in stream.Input) (Record, error) {
	n, err := in.ReadInt()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, ErrBadEncoding
	}
	rec := make(Record, 0, capacity(n))
	for i := int32(0); i < n; i++ {
		k, err := in.ReadByte()
		if err != nil {
			return nil, err
		}
		v, err := readValue(in, Kind(k))
		if err != nil {
			return nil, err
		}
		rec = append(rec, v)
	}
	return rec, nil
}

func readValue(in stream.Input, k Kind) (Value, error) {
	switch k {
	case Bool:
		b, err := in.ReadBool()
		return BoolValue(b), err
	case Byte:
		b, err := in.ReadByte()
		return ByteValue(int8(b)), err
	case Short:
		n, err := in.ReadShort()
		return ShortValue(n), err
	case Int:
		n, err := in.ReadInt()
		return IntValue(n), err
	case Long:
		n, err := in.ReadLong()
		return LongValue(n), err
	case Float:
		x, err := in.ReadFloat()
		return FloatValue(x), err
	case Double:
		x, err := in.ReadDouble()
		return DoubleValue(x), err
	case Char:
		r, err := in.ReadChar()
		return CharValue(r), err
	case String:
		s, err := in.ReadUTF()
		return StringValue(s), err
	case Array:
		elem, err := readElemKind(in)
		if err != nil {
			return Value{}, err
		}
		items, err := readItems(in, elem)
		if err != nil {
			return Value{}, err
		}
		return ArrayValue(elem, items), nil
	case Matrix:
		elem, err := readElemKind(in)
		if err != nil {
			return Value{}, err
		}
		n, err := in.ReadInt()
		if err != nil {
			return Value{}, err
		}
		if n < 0 {
			return Value{}, ErrBadEncoding
		}
		rows := make([][]Value, 0, capacity(n))
		for i := int32(0); i < n; i++ {
			row, err := readItems(in, elem)
			if err != nil {
				return Value{}, err
			}
			rows = append(rows, row)
		}
		return MatrixValue(elem, rows), nil
	}
	tracer().Errorf("unknown kind tag %d in record", k)
	return Value{}, ErrBadEncoding
}

func readElemKind(in stream.Input) (Kind, error) {
	b, err := in.ReadByte()
	if err != nil {
		return Invalid, err
	}
	if k := Kind(b); k.IsScalar() {
		return k, nil
	}
	return Invalid, ErrBadEncoding
}

func readItems(in stream.Input, elem Kind) ([]Value, error) {
	n, err := in.ReadInt()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, ErrBadEncoding
	}
	items := make([]Value, 0, capacity(n))
	for i := int32(0); i < n; i++ {
		v, err := readValue(in, elem)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, nil
}

// capacity limits pre-allocation for lengths read from untrusted input.
func capacity(n int32) int {
	if n > 64 {
		return 64
	}
	return int(n)
}
