// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package numconv renders 34-digit decimal values as exact decimal strings,
// as positional numerals in any radix from 2 to 255, and as low-denominator fractions.
//
// All functions are pure and can be called concurrently.
package numconv

import (
	"errors"
	"fmt"

	"github.com/avdva/numconv/d128"
)

const (
	// Precision is the number of significant digits of a decimal value.
	Precision = d128.Precision
	// MaxScale limits the number of fractional digits kept for rendering,
	// regardless of how many digits the precision would allow.
	MaxScale = 32

	// MinRadix is the smallest supported radix.
	MinRadix = 2
	// MaxRadix is the largest supported radix. Radices are a single byte.
	MaxRadix = 255

	// SmallRadixExponent, MidRadixExponent and LargeRadixExponent scale the decimal
	// digit budget into a radix digit budget: k = budget / (radix/10)^exponent.
	// They are tuned empirically for radix < 10, 10 <= radix < 12, and radix >= 12.
	SmallRadixExponent = 0.25
	MidRadixExponent   = 0.75
	LargeRadixExponent = 0.5

	delim = '.'
)

var (
	// ErrInvalidRadix is returned for radices out of [MinRadix, MaxRadix].
	ErrInvalidRadix = errors.New("invalid radix")
)

// CheckRadix returns an error wrapping ErrInvalidRadix if radix is out of range.
func CheckRadix(radix int) error {
	if radix < MinRadix || radix > MaxRadix {
		return fmt.Errorf("%w %d: must be in [%d, %d]", ErrInvalidRadix, radix, MinRadix, MaxRadix)
	}
	return nil
}
