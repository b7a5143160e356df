// Copyright 2020 Aleksandr Demakin. All rights reserved.

package d128

import (
	"fmt"
	"math/big"

	gv "github.com/govalues/decimal"
	rf "github.com/robaho/fixed"
	"github.com/shopspring/decimal"
)

// FromShopspring converts a shopspring decimal. Coefficients longer than 34 digits are rounded.
func FromShopspring(d decimal.Decimal) Decimal {
	return FromBigInt(d.Coefficient(), d.Exponent())
}

// Shopspring converts x into a shopspring decimal. The conversion is exact.
func (x Decimal) Shopspring() decimal.Decimal {
	coeff := x.Coefficient()
	if x.v.Negative {
		coeff.Neg(coeff)
	}
	return decimal.NewFromBigInt(coeff, x.v.Exponent)
}

// FromFixed converts a robaho/fixed value. NaN values are rejected.
func FromFixed(f rf.Fixed) (Decimal, error) {
	if f.IsNaN() {
		return zero, fmt.Errorf("fixed: %w", ErrNotFinite)
	}
	return Parse(f.String())
}

// FromGovalues converts a govalues decimal. The conversion is exact.
func FromGovalues(d gv.Decimal) Decimal {
	coeff := new(big.Int).SetUint64(d.Coef())
	if d.IsNeg() {
		coeff.Neg(coeff)
	}
	return FromBigInt(coeff, int32(-d.Scale()))
}
