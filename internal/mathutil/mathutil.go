package mathutil

import (
	"math/big"
	"math/bits"
	"unsafe"
)

var (
	decimalFactorTable = [...]uint64{ // up to 1e19
		1, 10, 100, 1000, 10000,
		100000, 1000000, 10000000, 100000000, 1000000000, 10000000000,
		100000000000, 1000000000000, 10000000000000, 100000000000000,
		1000000000000000, 10000000000000000, 100000000000000000,
		1000000000000000000, 10000000000000000000,
	}

	digitsHelper = [...]int{
		0, 0, 0, 0, 1, 1, 1, 2, 2, 2,
		3, 3, 3, 3, 4, 4, 4, 5, 5, 5,
		6, 6, 6, 6, 7, 7, 7, 8, 8, 8,
		9, 9, 9, 9, 10, 10, 10, 11, 11, 11,
		12, 12, 12, 12, 13, 13, 13, 14, 14, 14,
		15, 15, 15, 15, 16, 16, 16, 17, 17, 17,
		18, 18, 18, 18, 19,
	}

	// bigFactorTable caches 10^0..10^63.
	bigFactorTable = func() [64]*big.Int {
		var t [64]*big.Int
		ten := big.NewInt(10)
		t[0] = big.NewInt(1)
		for i := 1; i < len(t); i++ {
			t[i] = new(big.Int).Mul(t[i-1], ten)
		}
		return t
	}()

	maxInt128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	minInt128 = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
)

// BigPow10 returns 10^pow as a new big.Int. Negative powers give 1.
func BigPow10(pow int) *big.Int {
	if pow < 0 {
		pow = 0
	}
	if pow < len(bigFactorTable) {
		return new(big.Int).Set(bigFactorTable[pow])
	}
	return BigPow(10, pow)
}

// BigPow returns base^pow as a new big.Int.
func BigPow(base int64, pow int) *big.Int {
	if pow <= 0 {
		return big.NewInt(1)
	}
	return new(big.Int).Exp(big.NewInt(base), big.NewInt(int64(pow)), nil)
}

func BinaryDigits(value uint64) int {
	return int(8*unsafe.Sizeof(uint64(0))) - bits.LeadingZeros64(value)
}

// DecimalDigits returns the number of decimal digits in 'value'.
// see https://stackoverflow.com/a/25934909
func DecimalDigits(value uint64) int {
	if value == 0 {
		return 1
	}

	digits := digitsHelper[BinaryDigits(value)]
	if value >= decimalFactorTable[digits] {
		digits++
	}
	return digits
}

// DecimalDigitsBig returns the number of decimal digits in abs(x).
// Zero has one digit.
func DecimalDigitsBig(x *big.Int) int {
	if x.IsUint64() {
		return DecimalDigits(x.Uint64())
	}
	if x.Sign() < 0 {
		x = new(big.Int).Abs(x)
		if x.IsUint64() {
			return DecimalDigits(x.Uint64())
		}
	}
	// 2^(n-1) <= x < 2^n, and there is at most one power of ten in that range.
	n := x.BitLen()
	digits := (n-1)*30103/100000 + 1
	if x.Cmp(BigPow10(digits)) >= 0 {
		digits++
	}
	return digits
}

// SaturateInt128 returns x if it fits a signed 128-bit integer, and zero otherwise.
func SaturateInt128(x *big.Int) *big.Int {
	if x.Cmp(maxInt128) > 0 || x.Cmp(minInt128) < 0 {
		return new(big.Int)
	}
	return x
}

// GCD returns the greatest common divisor of a and b. GCD(0, 0) is 0.
func GCD(a, b uint64) uint64 {
	if a == 0 {
		return b
	}
	if b == 0 {
		return a
	}
	shift := bits.TrailingZeros64(a | b)
	a >>= bits.TrailingZeros64(a)
	for b != 0 {
		b >>= bits.TrailingZeros64(b)
		if a > b {
			a, b = b, a
		}
		b -= a
	}
	return a << shift
}

func AbsInt64(val int64) int64 {
	mask := val >> (unsafe.Sizeof(int64(0))*8 - 1)
	return (val + mask) ^ mask
}

// ClampInt returns v limited to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
