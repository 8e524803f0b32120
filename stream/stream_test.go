package stream

import (
	"bytes"
	"errors"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestPrimitivesBigEndian(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kit.stream")
	defer teardown()
	//
	var buf bytes.Buffer
	out := NewOutput(&buf)
	if err := out.WriteShort(0x0102); err != nil {
		t.Fatal(err)
	}
	out.WriteInt(-2)
	out.Flush()
	expected := []byte{0x01, 0x02, 0xff, 0xff, 0xff, 0xfe}
	if !bytes.Equal(buf.Bytes(), expected) {
		t.Errorf("expected % x, have % x", expected, buf.Bytes())
	}
}

func TestReadWhatWasWritten(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kit.stream")
	defer teardown()
	//
	var buf bytes.Buffer
	out := NewOutput(&buf)
	out.WriteByte(0x80)
	out.WriteShort(math.MinInt16)
	out.WriteInt(math.MaxInt32)
	out.WriteLong(math.MinInt64)
	out.WriteFloat(1.5)
	out.WriteDouble(-0.25)
	out.WriteBool(true)
	out.WriteChar('世')
	out.WriteUTF("Grüße")
	if err := out.Flush(); err != nil {
		t.Fatal(err)
	}
	in := NewInput(&buf)
	if b, _ := in.ReadByte(); b != 0x80 {
		t.Errorf("byte: have %x", b)
	}
	if n, _ := in.ReadShort(); n != math.MinInt16 {
		t.Errorf("short: have %d", n)
	}
	if n, _ := in.ReadInt(); n != math.MaxInt32 {
		t.Errorf("int: have %d", n)
	}
	if n, _ := in.ReadLong(); n != math.MinInt64 {
		t.Errorf("long: have %d", n)
	}
	if x, _ := in.ReadFloat(); x != 1.5 {
		t.Errorf("float: have %g", x)
	}
	if x, _ := in.ReadDouble(); x != -0.25 {
		t.Errorf("double: have %g", x)
	}
	if b, _ := in.ReadBool(); !b {
		t.Errorf("bool: have false")
	}
	if r, _ := in.ReadChar(); r != '世' {
		t.Errorf("char: have %q", r)
	}
	if s, err := in.ReadUTF(); err != nil || s != "Grüße" {
		t.Errorf("string: have %q, %v", s, err)
	}
	if _, err := in.ReadByte(); err != io.EOF {
		t.Errorf("expected EOF, have %v", err)
	}
}

func TestTruncatedInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kit.stream")
	defer teardown()
	//
	in := NewInput(bytes.NewReader([]byte{0, 5, 'a', 'b'}))
	if _, err := in.ReadUTF(); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected unexpected EOF, have %v", err)
	}
	in = NewInput(bytes.NewReader([]byte{1, 2, 3}))
	if _, err := in.ReadInt(); err == nil {
		t.Errorf("expected error for truncated int")
	}
}

func TestStringTooLong(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kit.stream")
	defer teardown()
	//
	out := NewOutput(io.Discard)
	if err := out.WriteUTF(strings.Repeat("x", MaxStringLength+1)); err != ErrStringTooLong {
		t.Errorf("expected ErrStringTooLong, have %v", err)
	}
	if err := out.WriteUTF(strings.Repeat("x", MaxStringLength)); err != nil {
		t.Error(err)
	}
}
