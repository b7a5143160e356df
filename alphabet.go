// Copyright 2020 Aleksandr Demakin. All rights reserved.

package numconv

import (
	"strconv"
	"strings"

	"github.com/avdva/numconv/internal/strutil"
)

const (
	digitChars      = "0123456789abcdefghijklmnopqrstuvwxyz"
	maxCompactRadix = len(digitChars)
	tokenSeparator  = ':'
)

// alphabet encodes radix digit values, most significant first, as text.
type alphabet interface {
	encode(digits []int) string
}

// compactAlphabet writes one character per digit: 0-9, then a-z.
type compactAlphabet struct{}

func (compactAlphabet) encode(digits []int) string {
	buf := make([]byte, len(digits))
	for i, d := range digits {
		buf[i] = digitChars[d]
	}
	return string(buf)
}

// tokenizedAlphabet writes every digit as a zero-padded decimal token of a fixed width.
// Tokens are separated by ':', so 300 in radix 100 is "003:000".
type tokenizedAlphabet struct {
	width int
}

func (a tokenizedAlphabet) encode(digits []int) string {
	var b strings.Builder
	b.Grow(len(digits) * (a.width + 1))
	for i, d := range digits {
		if i > 0 {
			b.WriteByte(tokenSeparator)
		}
		b.WriteString(strutil.PadZeros(strconv.Itoa(d), a.width))
	}
	return b.String()
}

func alphabetFor(radix int) alphabet {
	switch {
	case radix <= maxCompactRadix:
		return compactAlphabet{}
	case radix < 100:
		return tokenizedAlphabet{width: 2}
	default:
		return tokenizedAlphabet{width: 3}
	}
}
