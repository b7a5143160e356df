// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package d128 implements an immutable signed decimal number with 34 significant digits,
// following the IEEE 754-2008 decimal128 format semantics.
// All operations return new values, so a Decimal can be shared between goroutines.
package d128

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/avdva/numconv/internal/mathutil"

	"github.com/cockroachdb/apd/v3"
)

const (
	// Precision is the number of significant decimal digits of a value.
	Precision = 34
	// MaxExponent is the maximum adjusted exponent of a value.
	MaxExponent = 6144
	// MinExponent is the minimum adjusted exponent of a normal value.
	MinExponent = -6143
)

var (
	// ErrNotFinite is returned for infinities and not-a-numbers.
	ErrNotFinite = errors.New("value is not finite")

	decimal128 = apd.Context{
		Precision:   Precision,
		MaxExponent: MaxExponent,
		MinExponent: MinExponent,
		Traps:       apd.DefaultTraps,
		Rounding:    apd.RoundHalfEven,
	}

	zero Decimal
)

// Decimal is a finite decimal value with up to 34 significant digits.
// The zero value is 0.
type Decimal struct {
	v apd.Decimal
}

func wrap(d *apd.Decimal) Decimal {
	return Decimal{v: *d}
}

// round rounds d to the value's precision. Values out of the exponent range become zero.
func round(d *apd.Decimal) Decimal {
	var r apd.Decimal
	if _, err := decimal128.Round(&r, d); err != nil || r.Form != apd.Finite {
		return zero
	}
	return wrap(&r)
}

// Parse parses a decimal string, like "-1709.344" or "1.5e-7".
// Values with more than 34 significant digits are rounded half to even.
func Parse(s string) (Decimal, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return zero, fmt.Errorf("empty input")
	}
	d, _, err := decimal128.NewFromString(s)
	if err != nil {
		return zero, fmt.Errorf("parsing failed: %w", err)
	}
	if d.Form != apd.Finite {
		return zero, fmt.Errorf("parsing %q: %w", s, ErrNotFinite)
	}
	return wrap(d), nil
}

// MustParse is like Parse but panics if the string cannot be parsed.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// New returns coeff * 10^exp. If the value cannot be represented, New returns zero.
func New(coeff int64, exp int32) Decimal {
	return round(apd.New(coeff, exp))
}

// FromInt64 returns a value for given int64 number.
func FromInt64(v int64) Decimal {
	return New(v, 0)
}

// FromBigInt returns coeff * 10^exp, rounded to 34 digits.
// If the value cannot be represented, FromBigInt returns zero.
func FromBigInt(coeff *big.Int, exp int32) Decimal {
	return round(apd.NewWithBigInt(new(apd.BigInt).SetMathBigInt(coeff), exp))
}

// FromFloat64 returns a value for the shortest decimal representation of f.
// Returns an error for infinities and not-a-numbers.
func FromFloat64(f float64) (Decimal, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return zero, ErrNotFinite
	}
	return Parse(strconv.FormatFloat(f, 'g', -1, 64))
}

// Sign returns -1 if x < 0, 0 if x == 0, 1 if x > 0.
func (x Decimal) Sign() int {
	return x.v.Sign()
}

// IsZero returns true if x == 0.
func (x Decimal) IsZero() bool {
	return x.v.IsZero()
}

// IsNegative returns true if x < 0. Negative zero is not negative.
func (x Decimal) IsNegative() bool {
	return x.Sign() < 0
}

// Abs returns |x|.
func (x Decimal) Abs() Decimal {
	var r apd.Decimal
	r.Abs(&x.v)
	return wrap(&r)
}

// Neg returns -x.
func (x Decimal) Neg() Decimal {
	var r apd.Decimal
	r.Neg(&x.v)
	return wrap(&r)
}

// Cmp compares two values.
// Returns -1 if x < y, 0 if x == y, 1 if x > y.
func (x Decimal) Cmp(y Decimal) int {
	return x.v.Cmp(&y.v)
}

// Equal returns true if both values represent the same number.
func (x Decimal) Equal(y Decimal) bool {
	return x.Cmp(y) == 0
}

type binaryOp func(d, x, y *apd.Decimal) (apd.Condition, error)

func apply(op binaryOp, x, y Decimal) (Decimal, error) {
	var r apd.Decimal
	if _, err := op(&r, &x.v, &y.v); err != nil {
		return zero, err
	}
	return wrap(&r), nil
}

// Add returns x + y, rounded to 34 digits.
func (x Decimal) Add(y Decimal) (Decimal, error) {
	return apply(decimal128.Add, x, y)
}

// Sub returns x - y, rounded to 34 digits.
func (x Decimal) Sub(y Decimal) (Decimal, error) {
	return apply(decimal128.Sub, x, y)
}

// Mul returns x * y, rounded to 34 digits.
func (x Decimal) Mul(y Decimal) (Decimal, error) {
	return apply(decimal128.Mul, x, y)
}

// Quo returns x / y, rounded to 34 digits. Division by zero returns an error.
func (x Decimal) Quo(y Decimal) (Decimal, error) {
	return apply(decimal128.Quo, x, y)
}

// Trunc splits x into the integral part, truncated toward zero, and the fractional part.
// Both parts have the sign of x.
func (x Decimal) Trunc() (integ, frac Decimal) {
	var i, f apd.Decimal
	x.v.Modf(&i, &f)
	return wrap(&i), wrap(&f)
}

// Rem1 returns the truncating remainder of x modulo 1. The result has the sign of x.
func (x Decimal) Rem1() Decimal {
	_, frac := x.Trunc()
	return frac
}

// Floor returns the greatest integer value not greater than x,
// and the remainder x - floor, which is in [0, 1).
func (x Decimal) Floor() (floor, rem Decimal) {
	return x.integral(decimal128.Floor)
}

// Ceil returns the least integer value not less than x,
// and the remainder x - ceil, which is in (-1, 0].
func (x Decimal) Ceil() (ceil, rem Decimal) {
	return x.integral(decimal128.Ceil)
}

func (x Decimal) integral(op func(d, x *apd.Decimal) (apd.Condition, error)) (Decimal, Decimal) {
	var i apd.Decimal
	if _, err := op(&i, &x.v); err != nil {
		return zero, zero
	}
	integ := wrap(&i)
	rem, err := x.Sub(integ)
	if err != nil {
		return integ, zero
	}
	return integ, rem
}

// Logb returns the adjusted exponent of x, i.e. floor(log10(|x|)).
// ok is false for zero.
func (x Decimal) Logb() (exp int, ok bool) {
	if x.IsZero() {
		return 0, false
	}
	return int(x.v.Exponent) + int(x.v.NumDigits()) - 1, true
}

// NumDigits returns the number of digits in x's coefficient. Zero has one digit.
func (x Decimal) NumDigits() int {
	return int(x.v.NumDigits())
}

// Coefficient returns the absolute value of x's coefficient, so that |x| = coeff * 10^Exponent().
func (x Decimal) Coefficient() *big.Int {
	return x.v.Coeff.MathBigInt()
}

// Exponent returns x's exponent.
func (x Decimal) Exponent() int32 {
	return x.v.Exponent
}

// Integer returns x truncated toward zero as a big integer.
func (x Decimal) Integer() *big.Int {
	coeff := x.Coefficient()
	if e := int(x.v.Exponent); e > 0 {
		coeff.Mul(coeff, mathutil.BigPow10(e))
	} else if e < 0 {
		coeff.Quo(coeff, mathutil.BigPow10(-e))
	}
	if x.v.Negative {
		coeff.Neg(coeff)
	}
	return coeff
}

// Float64 returns the nearest float64 value. Values that cannot be converted yield zero.
func (x Decimal) Float64() float64 {
	f, err := x.v.Float64()
	if err != nil {
		return 0
	}
	return f
}

// String returns the canonical string representation of x.
// Parsing the result gives exactly the same value.
func (x Decimal) String() string {
	return x.v.String()
}

// Text formats x without an exponent for 'f' format, or in scientific notation for 'e' or 'E'.
// See apd.Decimal.Text for other formats.
func (x Decimal) Text(format byte) string {
	return x.v.Text(format)
}

// GoString returns debug string representation.
func (x Decimal) GoString() string {
	return x.String() + fmt.Sprintf(" {%v, %v}", x.v.Coeff.String(), x.v.Exponent)
}

// MarshalJSON marshals a value as a string, like `"1709.344"`.
func (x Decimal) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(x.String())), nil
}

// UnmarshalJSON unmarshals a string or a number into a value.
func (x *Decimal) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) == 0 {
		return fmt.Errorf("empty json")
	}
	if s[0] == '"' {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return err
		}
		s = unquoted
	}
	value, err := Parse(s)
	if err != nil {
		return err
	}
	*x = value
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (x Decimal) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *Decimal) UnmarshalText(text []byte) error {
	value, err := Parse(string(text))
	if err != nil {
		return err
	}
	*x = value
	return nil
}
