// Copyright 2020 Aleksandr Demakin. All rights reserved.

package numconv

import (
	"math/big"
	"strings"

	"github.com/avdva/numconv/d128"
	"github.com/avdva/numconv/internal/mathutil"
)

// DefaultFractionPrecision is the largest denominator tried by default.
const DefaultFractionPrecision = 100

// Rational is a mixed number approximating a decimal value: Integer + Numer/Denom, negated if Negative.
type Rational struct {
	// Negative is shown only in front of a non-zero integer part.
	Negative bool
	// Integer is the magnitude of the integer part.
	Integer *big.Int
	// Numer and Denom are the reduced fraction, 0 < Numer < Denom.
	// Denom is zero if there is no fraction.
	Numer, Denom int64
	// Residual is the distance between the fractional part of the value and Numer/Denom.
	Residual d128.Decimal
}

// HasFraction returns true if r has a non-zero fractional component.
func (r Rational) HasFraction() bool {
	return r.Denom > 0
}

// Approximate finds the first denominator d in [1, precision] for which
// the fractional part of |v| is within 1/(precision+1) of a multiple of 1/d,
// and returns the integer part of v together with the reduced fraction.
// A fraction that rounds up to one is carried into the integer part.
// If precision is less than one, only the integer part is returned.
func Approximate(v d128.Decimal, precision int) Rational {
	t := NewTemplate(v)
	r := Rational{
		Negative: t.Negative,
		Integer:  new(big.Int).Set(t.Integer),
	}
	numer, denom, residual, ok := firstFit(t.Remainder, precision)
	if !ok {
		return r
	}
	r.Residual = residual
	// the sign is applied to the numerator before reduction and kept in Negative afterwards.
	if t.Negative {
		numer = -numer
	}
	g := int64(mathutil.GCD(uint64(mathutil.AbsInt64(numer)), uint64(denom)))
	numer, denom = mathutil.AbsInt64(numer/g), denom/g
	switch {
	case numer == 0:
	case numer == denom:
		r.Integer.Add(r.Integer, big.NewInt(1))
	default:
		r.Numer, r.Denom = numer, denom
	}
	return r
}

// firstFit searches for the first denominator i that approximates frac = c / 10^s, 0 <= frac < 1.
// All arithmetic is exact: m tracks (i * c) mod 10^s.
func firstFit(frac d128.Decimal, precision int) (numer, denom int64, residual d128.Decimal, ok bool) {
	if precision < 1 {
		return 0, 0, residual, false
	}
	exp := int(frac.Exponent())
	c := frac.Coefficient()
	scale := mathutil.BigPow10(-exp)
	// diff <= 1/(p+1) or diff >= p/(p+1), both sides multiplied by (p+1) * 10^s.
	p1 := big.NewInt(int64(precision) + 1)
	highBound := new(big.Int).Mul(scale, big.NewInt(int64(precision)))
	var acc, m, scaled, whole, twice big.Int
	for i := 1; i <= precision; i++ {
		acc.Add(&acc, c)
		m.Add(&m, c)
		if m.Cmp(scale) >= 0 {
			m.Sub(&m, scale)
		}
		scaled.Mul(&m, p1)
		var rest *big.Int
		switch {
		case scaled.Cmp(scale) <= 0:
			rest = new(big.Int).Set(&m)
		case scaled.Cmp(highBound) >= 0:
			rest = new(big.Int).Sub(scale, &m)
		default:
			continue
		}
		whole.Sub(&acc, &m)
		whole.Quo(&whole, scale)
		numer = whole.Int64()
		if twice.Lsh(&m, 1).Cmp(scale) >= 0 {
			numer++
		}
		return numer, int64(i), d128.FromBigInt(rest, int32(exp)), true
	}
	return 0, 0, residual, false
}

// String returns r in decimal, like "-2 1/2", "3/8" or "0".
// The sign belongs to the integer part: -0.5 is rendered as "1/2".
func (r Rational) String() string {
	s, _ := r.Text(10)
	return s
}

// Text renders r with every number in the given radix, using the same digits as RadixString.
func (r Rational) Text(radix int) (string, error) {
	if err := CheckRadix(radix); err != nil {
		return "", err
	}
	alpha := alphabetFor(radix)
	parts := make([]string, 0, 2)
	if r.Integer != nil && r.Integer.Sign() != 0 {
		integer := alpha.encode(digitsOf(r.Integer, radix, 1))
		if r.Negative {
			integer = "-" + integer
		}
		parts = append(parts, integer)
	}
	if r.HasFraction() {
		numer := alpha.encode(digitsOf(big.NewInt(r.Numer), radix, 1))
		denom := alpha.encode(digitsOf(big.NewInt(r.Denom), radix, 1))
		parts = append(parts, numer+"/"+denom)
	}
	if len(parts) == 0 {
		return "0", nil
	}
	return strings.Join(parts, " "), nil
}

// FractionString approximates v with denominators up to precision and renders it in decimal.
func FractionString(v d128.Decimal, precision int) string {
	return Approximate(v, precision).String()
}

// FractionRadixString approximates v with denominators up to precision and renders it in the given radix.
func FractionRadixString(v d128.Decimal, radix, precision int) (string, error) {
	if err := CheckRadix(radix); err != nil {
		return "", err
	}
	return Approximate(v, precision).Text(radix)
}
