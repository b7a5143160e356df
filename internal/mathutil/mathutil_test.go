package mathutil

import (
	"fmt"
	"math"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecimalDigits(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v   uint64
		res int
	}{
		{0, 1},
		{9, 1},
		{10, 2},
		{99999, 5},
		{100000, 6},
		{math.MaxUint64, 20},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, DecimalDigits(test.v))
		})
	}
}

func TestDecimalDigitsBig(t *testing.T) {
	a := assert.New(t)
	for n := 1; n < 120; n++ {
		nines, _ := new(big.Int).SetString(strings.Repeat("9", n), 10)
		a.Equal(n, DecimalDigitsBig(nines), "nines %d", n)
		a.Equal(n+1, DecimalDigitsBig(new(big.Int).Add(nines, big.NewInt(1))), "power %d", n)
		a.Equal(n, DecimalDigitsBig(new(big.Int).Neg(nines)), "negative %d", n)
	}
	a.Equal(1, DecimalDigitsBig(new(big.Int)))
}

func TestBigPow10(t *testing.T) {
	a := assert.New(t)
	a.Equal("1", BigPow10(0).String())
	a.Equal("1", BigPow10(-3).String())
	a.Equal("1"+strings.Repeat("0", 63), BigPow10(63).String())
	a.Equal("1"+strings.Repeat("0", 70), BigPow10(70).String())
	// results must not alias the cache
	p := BigPow10(2)
	p.SetInt64(7)
	a.Equal("100", BigPow10(2).String())
	a.Equal("1024", BigPow(2, 10).String())
	a.Equal("1", BigPow(36, 0).String())
}

func TestSaturateInt128(t *testing.T) {
	a := assert.New(t)
	max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	min := new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	tests := []struct {
		x, res *big.Int
	}{
		{big.NewInt(0), big.NewInt(0)},
		{big.NewInt(-5), big.NewInt(-5)},
		{max, max},
		{min, min},
		{new(big.Int).Add(max, big.NewInt(1)), big.NewInt(0)},
		{new(big.Int).Sub(min, big.NewInt(1)), big.NewInt(0)},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(0, test.res.Cmp(SaturateInt128(test.x)))
		})
	}
}

func TestGCD(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		a, b, res uint64
	}{
		{0, 0, 0},
		{0, 7, 7},
		{7, 0, 7},
		{12, 18, 6},
		{17, 5, 1},
		{1 << 40, 1 << 20, 1 << 20},
		{1071, 462, 21},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, GCD(test.a, test.b))
			a.Equal(test.res, GCD(test.b, test.a))
		})
	}
}

func TestClampInt(t *testing.T) {
	a := assert.New(t)
	a.Equal(0, ClampInt(-3, 0, 32))
	a.Equal(32, ClampInt(66, 0, 32))
	a.Equal(17, ClampInt(17, 0, 32))
	a.Equal(int64(3), AbsInt64(-3))
}

func BenchmarkDecimalDigitsBig(b *testing.B) {
	x, _ := new(big.Int).SetString(strings.Repeat("7", 38), 10)
	var dummy int
	for i := 0; i < b.N; i++ {
		dummy += DecimalDigitsBig(x)
	}
	// this metric is just to prevent unwanted optimisations in calculations of `dummy.`
	b.ReportMetric(float64(dummy), "dummy_metric")
}
