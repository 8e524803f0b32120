/*
Package stream reads and writes primitive values in binary form.

Values are encoded big-endian with fixed sizes: byte 1, short 2, int 4,
long 8, float 4, double 8, boolean 1, char 4 bytes. Strings are UTF-8,
prefixed by their length in bytes as an unsigned short.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package stream

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
	"math"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'kit.stream'.
func tracer() tracing.Trace {
	return tracing.Select("kit.stream")
}

// ErrStringTooLong is returned when writing a string longer than
// MaxStringLength bytes.
var ErrStringTooLong = errors.New("string too long for stream")

// MaxStringLength is the maximum number of bytes of an encoded string.
const MaxStringLength = math.MaxUint16

// Input reads primitive values.
type Input interface {
	io.ByteReader
	ReadShort() (int16, error)
	ReadInt() (int32, error)
	ReadLong() (int64, error)
	ReadFloat() (float32, error)
	ReadDouble() (float64, error)
	ReadBool() (bool, error)
	ReadChar() (rune, error)
	ReadUTF() (string, error)
}

// Output writes primitive values. Output is buffered; clients have to call
// Flush.
type Output interface {
	io.ByteWriter
	WriteShort(int16) error
	WriteInt(int32) error
	WriteLong(int64) error
	WriteFloat(float32) error
	WriteDouble(float64) error
	WriteBool(bool) error
	WriteChar(rune) error
	WriteUTF(string) error
	Flush() error
}

// --- Input -----------------------------------------------------------------

type input struct {
	r   *bufio.Reader
	buf [8]byte
}

// NewInput creates an Input reading from r.
func NewInput(r io.Reader) Input {
	return &input{r: bufio.NewReader(r)}
}

func (in *input) read(n int) ([]byte, error) {
	b := in.buf[:n]
	if _, err := io.ReadFull(in.r, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (in *input) ReadByte() (byte, error) {
	return in.r.ReadByte()
}

func (in *input) ReadShort() (int16, error) {
	b, err := in.read(2)
	if err != nil {
		return 0, err
	}
	return int16(binary.BigEndian.Uint16(b)), nil
}

func (in *input) ReadInt() (int32, error) {
	b, err := in.read(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(b)), nil
}

func (in *input) ReadLong() (int64, error) {
	b, err := in.read(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(b)), nil
}

func (in *input) ReadFloat() (float32, error) {
	b, err := in.read(4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.BigEndian.Uint32(b)), nil
}

func (in *input) ReadDouble() (float64, error) {
	b, err := in.read(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.BigEndian.Uint64(b)), nil
}

func (in *input) ReadBool() (bool, error) {
	b, err := in.r.ReadByte()
	return b != 0, err
}

func (in *input) ReadChar() (rune, error) {
	n, err := in.ReadInt()
	return rune(n), err
}

func (in *input) ReadUTF() (string, error) {
	b, err := in.read(2)
	if err != nil {
		return "", err
	}
	s := make([]byte, binary.BigEndian.Uint16(b))
	if _, err := io.ReadFull(in.r, s); err != nil {
		tracer().Errorf("string of length %d truncated", len(s))
		return "", err
	}
	return string(s), nil
}

// --- Output ----------------------------------------------------------------

type output struct {
	w   *bufio.Writer
	buf [8]byte
}

// NewOutput creates an Output writing to w.
func NewOutput(w io.Writer) Output {
	return &output{w: bufio.NewWriter(w)}
}

func (out *output) write(n int) error {
	_, err := out.w.Write(out.buf[:n])
	return err
}

func (out *output) WriteByte(b byte) error {
	return out.w.WriteByte(b)
}

func (out *output) WriteShort(n int16) error {
	binary.BigEndian.PutUint16(out.buf[:2], uint16(n))
	return out.write(2)
}

func (out *output) WriteInt(n int32) error {
	binary.BigEndian.PutUint32(out.buf[:4], uint32(n))
	return out.write(4)
}

func (out *output) WriteLong(n int64) error {
	binary.BigEndian.PutUint64(out.buf[:8], uint64(n))
	return out.write(8)
}

func (out *output) WriteFloat(x float32) error {
	binary.BigEndian.PutUint32(out.buf[:4], math.Float32bits(x))
	return out.write(4)
}

func (out *output) WriteDouble(x float64) error {
	binary.BigEndian.PutUint64(out.buf[:8], math.Float64bits(x))
	return out.write(8)
}

func (out *output) WriteBool(b bool) error {
	if b {
		return out.w.WriteByte(1)
	}
	return out.w.WriteByte(0)
}

func (out *output) WriteChar(r rune) error {
	return out.WriteInt(int32(r))
}

func (out *output) WriteUTF(s string) error {
	if len(s) > MaxStringLength {
		tracer().Errorf("cannot write string of %d bytes", len(s))
		return ErrStringTooLong
	}
	binary.BigEndian.PutUint16(out.buf[:2], uint16(len(s)))
	if err := out.write(2); err != nil {
		return err
	}
	_, err := out.w.WriteString(s)
	return err
}

func (out *output) Flush() error {
	return out.w.Flush()
}
