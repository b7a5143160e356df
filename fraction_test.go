// Copyright 2020 Aleksandr Demakin. All rights reserved.

package numconv

import (
	"fmt"
	"math/big"
	"math/rand"
	"testing"
	"time"

	"github.com/avdva/numconv/d128"
	"github.com/avdva/numconv/internal/mathutil"

	"github.com/stretchr/testify/assert"
)

func TestApproximate(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s         string
		precision int
		res       string
		numer     int64
		denom     int64
	}{
		{"0.142857142857142857", 7, "1/7", 1, 7},
		{"2.5", 100, "2 1/2", 1, 2},
		{"-2.5", 100, "-2 1/2", 1, 2},
		{"-0.5", 100, "1/2", 1, 2},
		{"0.75", 100, "3/4", 3, 4},
		{"1709.344", 100, "1709 11/32", 11, 32},
		{"16777216", 100, "16777216", 0, 0},
		{"0.99", 10, "1", 0, 0},
		{"-0.99", 10, "-1", 0, 0},
		{"0.5", 1, "1", 0, 0},
		{"2.5", 0, "2", 0, 0},
		{"-0.5", 0, "0", 0, 0},
		{"0.001", 100, "0", 0, 0},
		{"0.333333", 100, "1/3", 1, 3},
		{"-3462.717171717171717171717171", 100, "-3462 71/99", 71, 99},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			r := Approximate(d128.MustParse(test.s), test.precision)
			a.Equal(test.res, r.String())
			a.Equal(test.numer, r.Numer)
			a.Equal(test.denom, r.Denom)
			a.Equal(test.denom > 0, r.HasFraction())
			a.Equal(test.res, FractionString(d128.MustParse(test.s), test.precision))
		})
	}
}

func TestApproximateResidual(t *testing.T) {
	a := assert.New(t)
	r := Approximate(d128.MustParse("1709.344"), 100)
	a.True(r.Residual.Equal(d128.MustParse("0.008")), r.Residual.String())
	r = Approximate(d128.MustParse("0.142857142857142857"), 7)
	a.True(r.Residual.Equal(d128.MustParse("1E-18")), r.Residual.String())
	r = Approximate(d128.MustParse("0.75"), 100)
	a.True(r.Residual.IsZero(), r.Residual.String())
}

// the sign is shown once, in front of the whole number, and never inside the fraction.
func TestApproximateSign(t *testing.T) {
	a := assert.New(t)
	pos := Approximate(d128.MustParse("2.25"), 10)
	neg := Approximate(d128.MustParse("-2.25"), 10)
	a.False(pos.Negative)
	a.True(neg.Negative)
	a.Equal(0, pos.Integer.Cmp(neg.Integer))
	a.Equal(pos.Numer, neg.Numer)
	a.Equal(pos.Denom, neg.Denom)
	a.Equal("2 1/4", pos.String())
	a.Equal("-2 1/4", neg.String())

	// no integer part: the fraction is shown without the sign.
	small := Approximate(d128.MustParse("-0.25"), 10)
	a.True(small.Negative)
	a.Equal(0, small.Integer.Sign())
	a.Equal(int64(1), small.Numer)
	a.Equal(int64(4), small.Denom)
	a.Equal("1/4", small.String())
	hex, err := small.Text(16)
	if a.NoError(err) {
		a.Equal("1/4", hex)
	}
	res, err := FractionRadixString(d128.MustParse("-10.75"), 16, 100)
	if a.NoError(err) {
		a.Equal("-a 3/4", res)
	}
}

func TestApproximateMatchesRat(t *testing.T) {
	a := assert.New(t)
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := 0; i < 500; i++ {
		coeff := rnd.Int63n(1e9)
		precision := 1 + rnd.Intn(200)
		numer, denom, _, ok := firstFit(d128.New(coeff, -9), precision)
		eNumer, eDenom, eOK := ratFirstFit(big.NewRat(coeff, 1e9), precision)
		a.Equal(eOK, ok, "%d/1e9, %d", coeff, precision)
		a.Equal(eNumer, numer, "%d/1e9, %d", coeff, precision)
		a.Equal(eDenom, denom, "%d/1e9, %d", coeff, precision)

		v := d128.New(rnd.Int63n(1e12)-5e11, -9)
		r := Approximate(v, precision)
		if r.HasFraction() {
			a.Equal(uint64(1), mathutil.GCD(uint64(r.Numer), uint64(r.Denom)), "%s: %d/%d", v, r.Numer, r.Denom)
			a.True(r.Numer > 0 && r.Numer < r.Denom, "%s: %d/%d", v, r.Numer, r.Denom)
			a.LessOrEqual(r.Denom, int64(precision))
		}
	}
}

func ratFirstFit(frac *big.Rat, precision int) (int64, int64, bool) {
	low := big.NewRat(1, int64(precision)+1)
	high := big.NewRat(int64(precision), int64(precision)+1)
	half := big.NewRat(1, 2)
	for i := 1; i <= precision; i++ {
		x := new(big.Rat).Mul(frac, big.NewRat(int64(i), 1))
		floor := new(big.Int).Quo(x.Num(), x.Denom())
		diff := new(big.Rat).Sub(x, new(big.Rat).SetInt(floor))
		if diff.Cmp(low) <= 0 || diff.Cmp(high) >= 0 {
			numer := floor.Int64()
			if diff.Cmp(half) >= 0 {
				numer++
			}
			return numer, int64(i), true
		}
	}
	return 0, 0, false
}

func TestRationalText(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s         string
		radix     int
		precision int
		res       string
	}{
		{"2.5", 2, 100, "10 1/10"},
		{"-10.75", 16, 100, "-a 3/4"},
		{"1709.344", 60, 100, "28:29 11/32"},
		{"0.5", 200, 100, "001/002"},
		{"0", 36, 100, "0"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			res, err := FractionRadixString(d128.MustParse(test.s), test.radix, test.precision)
			if a.NoError(err) {
				a.Equal(test.res, res)
			}
		})
	}
	_, err := FractionRadixString(d128.MustParse("2.5"), 256, 100)
	a.ErrorIs(err, ErrInvalidRadix)
	var zero Rational
	a.Equal("0", zero.String())
}

func BenchmarkApproximate(b *testing.B) {
	v := d128.MustParse("3462.717171717171717171717171")
	for i := 0; i < b.N; i++ {
		Approximate(v, DefaultFractionPrecision)
	}
}
