// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package calc binds the numeric renderers to an expression evaluator.
// Evaluation failures are not errors: they produce empty outputs.
package calc

import (
	"fmt"
	"log/slog"

	"github.com/avdva/numconv"
	"github.com/avdva/numconv/d128"
)

// FractionUnit is reported as the unit of fraction outputs.
const FractionUnit = "fraction"

// Answer is the result of evaluating an expression.
type Answer struct {
	Value d128.Decimal
	Unit  Unit
}

// Evaluator evaluates expressions, like "1 mile + 100 meters".
type Evaluator interface {
	Eval(expr string) (Answer, error)
}

// EvaluatorFunc is an adapter to allow the use of ordinary functions as evaluators.
type EvaluatorFunc func(expr string) (Answer, error)

// Eval calls f(expr).
func (f EvaluatorFunc) Eval(expr string) (Answer, error) {
	return f(expr)
}

// Output is a rendered answer.
type Output struct {
	Num   string `json:"num"`
	Unit  string `json:"unit"`
	Radix int    `json:"radix"`
}

// String returns "num; unit; radix".
func (o Output) String() string {
	return fmt.Sprintf("%s; %s; %d", o.Num, o.Unit, o.Radix)
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithLogger sets the logger for evaluation failures.
func WithLogger(l *slog.Logger) Option {
	return func(c *Calculator) {
		c.log = l
	}
}

// Calculator evaluates expressions and renders the answers.
// It is safe for concurrent use if its evaluator is.
type Calculator struct {
	eval Evaluator
	log  *slog.Logger
}

// New returns a calculator using e.
func New(e Evaluator, opts ...Option) *Calculator {
	c := &Calculator{eval: e, log: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Calculator) answer(expr string) (Answer, bool) {
	a, err := c.eval.Eval(expr)
	if err != nil {
		c.log.Debug("evaluation failed", "expr", expr, "error", err)
		return Answer{}, false
	}
	return a, true
}

// Expression evaluates expr and renders the value in its canonical decimal form.
func (c *Calculator) Expression(expr string) Output {
	a, ok := c.answer(expr)
	if !ok {
		return Output{Radix: 10}
	}
	return Output{Num: a.Value.String(), Unit: UnitName(a.Unit), Radix: 10}
}

// ExpressionRadix evaluates expr and renders the value in the given radix.
func (c *Calculator) ExpressionRadix(expr string, radix int) (Output, error) {
	if err := numconv.CheckRadix(radix); err != nil {
		return Output{}, err
	}
	a, ok := c.answer(expr)
	if !ok {
		return Output{Radix: radix}, nil
	}
	num, err := numconv.RadixString(a.Value, radix)
	if err != nil {
		return Output{}, err
	}
	return Output{Num: num, Unit: UnitName(a.Unit), Radix: radix}, nil
}

// Fraction evaluates expr and renders the value as a mixed fraction in the given radix,
// trying denominators up to precision.
func (c *Calculator) Fraction(expr string, radix, precision int) (Output, error) {
	if err := numconv.CheckRadix(radix); err != nil {
		return Output{}, err
	}
	a, ok := c.answer(expr)
	if !ok {
		return Output{Radix: radix}, nil
	}
	num, err := numconv.FractionRadixString(a.Value, radix, precision)
	if err != nil {
		return Output{}, err
	}
	return Output{Num: num, Unit: FractionUnit, Radix: radix}, nil
}

// Input evaluates expr and returns the raw value and the unit name.
// Failures give zero and an empty unit.
func (c *Calculator) Input(expr string) (d128.Decimal, string) {
	a, ok := c.answer(expr)
	if !ok {
		return d128.Decimal{}, ""
	}
	return a.Value, UnitName(a.Unit)
}
