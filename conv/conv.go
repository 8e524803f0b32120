/*
Package conv converts text to sized primitive values.

Integral types are signed: byte is int8, short is int16, int is int32,
long is int64. Floating point
text is parsed as an exact decimal first (shopspring/decimal) and rounded
to float32/float64 afterwards.

ParseLong accumulates digits in a float64. Inputs with magnitude above 2^53 therefore lose precision, and values near
math.MaxInt64 or math.MinInt64 may round away from zero and be reported
as out of range. This is kept
on purpose; callers needing exact 64-bit integers should use strconv.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package conv

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Sentinel errors, wrapped by NumError.
var (
	ErrSyntax = errors.New("invalid syntax")
	ErrRange  = errors.New("value out of range")
)

// NumError records a failed conversion.
type NumError struct {
	Func string // the failing function (ParseByte, ParseDouble, …)
	Num  string // the input
	Err  error  // ErrSyntax or ErrRange
}

func (e *NumError) Error() string {
	return "conv." + e.Func + ": parsing " + strconv.Quote(e.Num) + ": " + e.Err.Error()
}

func (e *NumError) Unwrap() error { return e.Err }

func syntaxError(fn, s string) *NumError {
	return &NumError{Func: fn, Num: s, Err: ErrSyntax}
}

func rangeError(fn, s string) *NumError {
	return &NumError{Func: fn, Num: s, Err: ErrRange}
}

func parseIntegral(fn, s string, bits int) (int64, error) {
	n, err := strconv.ParseInt(s, 10, bits)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, rangeError(fn, s)
		}
		return 0, syntaxError(fn, s)
	}
	return n, nil
}

// ParseByte converts s to a signed 8-bit integer.
func ParseByte(s string) (int8, error) {
	n, err := parseIntegral("ParseByte", s, 8)
	return int8(n), err
}

// ParseShort converts s to a signed 16-bit integer.
func ParseShort(s string) (int16, error) {
	n, err := parseIntegral("ParseShort", s, 16)
	return int16(n), err
}

// ParseInt converts s to a signed 32-bit integer.
func ParseInt(s string) (int32, error) {
	n, err := parseIntegral("ParseInt", s, 32)
	return int32(n), err
}

// two63 is 2^63, exactly representable as float64.
const two63 = float64(1 << 63)

// ParseLong converts s to a signed 64-bit integer. See the package
// documentation for its precision.
func ParseLong(s string) (int64, error) {
	const fn = "ParseLong"
	digits, neg := s, false
	if strings.HasPrefix(digits, "+") {
		digits = digits[1:]
	} else if strings.HasPrefix(digits, "-") {
		digits, neg = digits[1:], true
	}
	if digits == "" {
		return 0, syntaxError(fn, s)
	}
	var acc float64
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, syntaxError(fn, s)
		}
		acc = acc*10 + float64(r-'0')
	}
	switch {
	case neg && acc == two63:
		return math.MinInt64, nil
	case acc >= two63:
		return 0, rangeError(fn, s)
	case neg:
		return -int64(acc), nil
	}
	return int64(acc), nil
}

// Decimal exponents (counted from the leading digit) outside these bounds
// are beyond float64 range or below its smallest subnormal.
const (
	maxDecimalMagnitude = 310
	minDecimalMagnitude = -400
)

func parseDecimal(fn, s string) (float64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil || strings.TrimSpace(s) != s {
		return 0, syntaxError(fn, s)
	}
	// Float64 expands 10^exp as a big.Int, so decide far out-of-range
	// magnitudes from the exponent alone.
	if !d.IsZero() {
		switch mag := int64(d.Exponent()) + int64(d.NumDigits()); {
		case mag > maxDecimalMagnitude:
			return 0, rangeError(fn, s)
		case mag < minDecimalMagnitude:
			if d.IsNegative() {
				return math.Copysign(0, -1), nil
			}
			return 0, nil
		}
	}
	f, _ := d.Float64()
	if math.IsInf(f, 0) {
		return 0, rangeError(fn, s)
	}
	return f, nil
}

// ParseFloat converts decimal text to a float32.
func ParseFloat(s string) (float32, error) {
	f, err := parseDecimal("ParseFloat", s)
	if err != nil {
		return 0, err
	}
	if f > math.MaxFloat32 || f < -math.MaxFloat32 {
		return 0, rangeError("ParseFloat", s)
	}
	return float32(f), nil
}

// ParseDouble converts decimal text to a float64.
func ParseDouble(s string) (float64, error) {
	return parseDecimal("ParseDouble", s)
}

// ParseChar requires s to be exactly one character.
func ParseChar(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, syntaxError("ParseChar", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return 0, syntaxError("ParseChar", s)
	}
	return r, nil
}

// --- Booleans --------------------------------------------------------------

// Tristate is the result of ParseBool.
type Tristate int8

// Results of ParseBool
const (
	Invalid Tristate = iota
	False
	True
)

func (t Tristate) String() string {
	switch t {
	case False:
		return "false"
	case True:
		return "true"
	}
	return "<invalid>"
}

// Bool returns the tristate as a bool, with ok false for Invalid.
func (t Tristate) Bool() (value bool, ok bool) {
	return t == True, t != Invalid
}

var truthTable = map[string]Tristate{
	"true": True, "yes": True, "on": True, "y": True, "t": True, "1": True,
	"false": False, "no": False, "off": False, "n": False, "f": False, "0": False,
}

// ParseBool recognizes true/false, yes/no, on/off, y/n, t/f and 1/0,
// ignoring case. Everything else is Invalid.
func ParseBool(s string) Tristate {
	if t, ok := truthTable[strings.ToLower(s)]; ok {
		return t
	}
	return Invalid
}
