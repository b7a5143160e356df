// Copyright 2020 Aleksandr Demakin. All rights reserved.

package strutil

import (
	"bytes"
	"strings"
)

var (
	manyZeros = bytes.Repeat([]byte{'0'}, 256)
)

// ZeroStr returns a string of count zeros.
func ZeroStr(count int) string {
	if count <= 0 {
		return ""
	}
	if count <= len(manyZeros) {
		return string(manyZeros[:count])
	}
	var b strings.Builder
	b.Grow(count)
	for i := 0; i < count/len(manyZeros); i++ {
		b.Write(manyZeros)
	}
	if rem := count % len(manyZeros); rem > 0 {
		b.Write(manyZeros[:rem])
	}
	return b.String()
}

// PadZeros left-pads s with zeros up to width bytes.
func PadZeros(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return ZeroStr(width-len(s)) + s
}

// TrimTrailingZeros removes all trailing '0' characters.
func TrimTrailingZeros(s string) string {
	return strings.TrimRight(s, "0")
}

// SplitDigits splits a digit string so that the second part has exactly n digits,
// left-padding it with zeros if s is too short. The first part is never empty.
func SplitDigits(s string, n int) (head, tail string) {
	if n <= 0 {
		return s, ""
	}
	if len(s) <= n {
		return "0", PadZeros(s, n)
	}
	return s[:len(s)-n], s[len(s)-n:]
}
