// Copyright 2020 Aleksandr Demakin. All rights reserved.

package calc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/avdva/numconv/d128"
)

var (
	// ErrUnknownUnit is returned by LiteralEvaluator for unit names it does not know.
	ErrUnknownUnit = errors.New("unknown unit")
)

// LiteralEvaluator evaluates a single decimal literal with an optional unit,
// like "1709.344 m", "-2.5" or "1.5e-7 km".
type LiteralEvaluator struct{}

// Eval implements Evaluator.
func (LiteralEvaluator) Eval(expr string) (Answer, error) {
	fields := strings.Fields(expr)
	switch len(fields) {
	case 1, 2:
	case 0:
		return Answer{}, errors.New("empty expression")
	default:
		return Answer{}, fmt.Errorf("unexpected token %q", fields[2])
	}
	v, err := d128.Parse(fields[0])
	if err != nil {
		return Answer{}, err
	}
	ans := Answer{Value: v}
	if len(fields) == 2 {
		u, found := lookupUnit(fields[1])
		if !found {
			return Answer{}, fmt.Errorf("%w: %q", ErrUnknownUnit, fields[1])
		}
		ans.Unit = u
	}
	return ans, nil
}
