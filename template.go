// Copyright 2020 Aleksandr Demakin. All rights reserved.

package numconv

import (
	"math/big"
	"strings"

	"github.com/avdva/numconv/d128"
	"github.com/avdva/numconv/internal/mathutil"
	"github.com/avdva/numconv/internal/strutil"
)

// Template is a decimal value split into parts for rendering.
// It is derived from a value on every call and never modified.
type Template struct {
	// Negative is true for values less than zero.
	Negative bool
	// Integer is the integer part of |v|, truncated.
	// It is zero if it does not fit a signed 128-bit integer.
	Integer *big.Int
	// Fraction holds the fractional digits of |v|, so that the fractional part
	// is Fraction * 10^-Scale, truncated.
	Fraction *big.Int
	// Scale is the number of fractional digits kept:
	// Precision - IntDigits + significant digits of the remainder, at most MaxScale.
	Scale int
	// IntDigits is the number of digits in the integer part, one for zero.
	IntDigits int
	// Remainder is the exact fractional part of |v|, in [0, 1).
	Remainder d128.Decimal
}

// NewTemplate builds a template for v.
func NewTemplate(v d128.Decimal) Template {
	whole, rem := v.Abs().Trunc()
	integer := whole.Integer()
	intDigits := mathutil.DecimalDigitsBig(integer)
	scale := mathutil.ClampInt(Precision-intDigits+rem.NumDigits(), 0, MaxScale)
	return Template{
		Negative:  v.IsNegative(),
		Integer:   mathutil.SaturateInt128(integer),
		Fraction:  scaleFraction(rem, 10, scale),
		Scale:     scale,
		IntDigits: intDigits,
		Remainder: rem,
	}
}

// String returns the decimal representation of the template without trailing zeros.
func (t Template) String() string {
	var b strings.Builder
	frac := strutil.TrimTrailingZeros(strutil.PadZeros(t.Fraction.String(), t.Scale))
	if t.Negative && (t.Integer.Sign() != 0 || len(frac) > 0) {
		b.WriteByte('-')
	}
	b.WriteString(t.Integer.String())
	if len(frac) > 0 {
		b.WriteByte(delim)
		b.WriteString(frac)
	}
	return b.String()
}

// String returns an exact decimal string for v with trailing zeros removed, like "1709.344".
// Integer parts that do not fit 128 bits are rendered as zero.
func String(v d128.Decimal) string {
	return NewTemplate(v).String()
}

// Decompose splits v into the sign, the digits of the integer part of |v|,
// and the digits after the decimal point of |v|.
// Nothing is rounded or trimmed: 2.50 gives "2" and "50", exact integers give an empty fraction.
func Decompose(v d128.Decimal) (neg bool, integer, fraction string) {
	digits := v.Coefficient().String()
	if e := int(v.Exponent()); e < 0 {
		integer, fraction = strutil.SplitDigits(digits, -e)
	} else {
		integer = digits
		if digits != "0" {
			integer += strutil.ZeroStr(e)
		}
	}
	return v.IsNegative(), integer, fraction
}

// FloorString returns the digits of floor(v), like "2" for 2.5 and "-3" for -2.5.
func FloorString(v d128.Decimal) string {
	floor, _ := v.Floor()
	return floor.Integer().String()
}

// CeilString returns the digits of ceil(v), like "3" for 2.5 and "-2" for -2.5.
func CeilString(v d128.Decimal) string {
	ceil, _ := v.Ceil()
	return ceil.Integer().String()
}

// scaleFraction returns floor(frac * radix^k) for a non-negative frac.
func scaleFraction(frac d128.Decimal, radix, k int) *big.Int {
	n := frac.Coefficient()
	n.Mul(n, mathutil.BigPow(int64(radix), k))
	if e := int(frac.Exponent()); e > 0 {
		n.Mul(n, mathutil.BigPow10(e))
	} else if e < 0 {
		n.Quo(n, mathutil.BigPow10(-e))
	}
	return n
}
