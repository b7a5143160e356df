// Copyright 2020 Aleksandr Demakin. All rights reserved.

package numconv

import (
	"math"
	"math/big"

	"github.com/avdva/numconv/d128"
	"github.com/avdva/numconv/internal/mathutil"
)

// RadixString renders v as a positional numeral in the given radix, like "-a.8" for -10.5 in radix 16.
//
// Radices up to 36 use the digits 0-9a-z. Larger radices write every digit as a decimal token,
// two characters wide for radix < 100 and three characters wide otherwise, separated by ':'.
// The fraction is truncated to roughly the precision the decimal value carries after its integer part;
// trailing zero digits are removed. For radix 10 the result is the same as String(v).
func RadixString(v d128.Decimal, radix int) (string, error) {
	if err := CheckRadix(radix); err != nil {
		return "", err
	}
	t := NewTemplate(v)
	k := radixScale(t.IntDigits, radix)
	frac := trimZeroDigits(digitsOf(scaleFraction(t.Remainder, radix, k), radix, k))
	return formatRadix(t.Negative, digitsOf(t.Integer, radix, 1), frac, alphabetFor(radix)), nil
}

// IntegerString renders n in the given radix, using the same digits as RadixString.
func IntegerString(n *big.Int, radix int) (string, error) {
	if err := CheckRadix(radix); err != nil {
		return "", err
	}
	return formatRadix(n.Sign() < 0, digitsOf(n, radix, 1), nil, alphabetFor(radix)), nil
}

func formatRadix(neg bool, integer, frac []int, alpha alphabet) string {
	s := alpha.encode(integer)
	if len(frac) > 0 {
		s += string(delim) + alpha.encode(frac)
	}
	if neg && (len(frac) > 0 || !isZeroDigits(integer)) {
		s = "-" + s
	}
	return s
}

// radixScale returns the number of fractional digits in the given radix
// for a value with intDigits decimal integer digits.
func radixScale(intDigits, radix int) int {
	budget := mathutil.ClampInt(Precision-intDigits, 0, MaxScale)
	return int(float64(budget) / math.Pow(float64(radix)/10, radixExponent(radix)))
}

func radixExponent(radix int) float64 {
	switch {
	case radix < 10:
		return SmallRadixExponent
	case radix < 12:
		return MidRadixExponent
	default:
		return LargeRadixExponent
	}
}

// digitsOf returns the digits of |n| in the given radix, most significant first,
// left-padded with zeros to at least width digits.
func digitsOf(n *big.Int, radix, width int) []int {
	var digits []int
	if n.IsUint64() {
		r := uint64(radix)
		for u := n.Uint64(); u > 0; u /= r {
			digits = append(digits, int(u%r))
		}
	} else {
		q, m, r := new(big.Int).Abs(n), new(big.Int), big.NewInt(int64(radix))
		for q.Sign() > 0 {
			q.QuoRem(q, r, m)
			digits = append(digits, int(m.Int64()))
		}
	}
	for len(digits) < width {
		digits = append(digits, 0)
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return digits
}

func trimZeroDigits(digits []int) []int {
	for len(digits) > 0 && digits[len(digits)-1] == 0 {
		digits = digits[:len(digits)-1]
	}
	return digits
}

func isZeroDigits(digits []int) bool {
	for _, d := range digits {
		if d != 0 {
			return false
		}
	}
	return true
}
