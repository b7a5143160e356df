// Copyright 2020 Aleksandr Demakin. All rights reserved.

package calc

import "strings"

// Unit is a unit of measurement attached to an evaluated value.
type Unit string

// Units known to the built-in evaluator.
const (
	NoUnit      Unit = ""
	Meter       Unit = "Meter"
	Kilometer   Unit = "Kilometer"
	Centimeter  Unit = "Centimeter"
	Millimeter  Unit = "Millimeter"
	Inch        Unit = "Inch"
	Foot        Unit = "Foot"
	Yard        Unit = "Yard"
	Mile        Unit = "Mile"
	Second      Unit = "Second"
	Millisecond Unit = "Millisecond"
	Microsecond Unit = "Microsecond"
	Minute      Unit = "Minute"
	Hour        Unit = "Hour"
	Celsius     Unit = "Celsius"
	Kelvin      Unit = "Kelvin"
	Fahrenheit  Unit = "Fahrenheit"
	Gram        Unit = "Gram"
	Kilogram    Unit = "Kilogram"
	Pound       Unit = "Pound"
	Ounce       Unit = "Ounce"
)

var (
	knownUnits = []Unit{
		Meter, Kilometer, Centimeter, Millimeter, Inch, Foot, Yard, Mile,
		Second, Millisecond, Microsecond, Minute, Hour,
		Celsius, Kelvin, Fahrenheit,
		Gram, Kilogram, Pound, Ounce,
	}

	shortNames = map[Unit]string{
		Foot:        "ft",
		Mile:        "mi",
		Kilometer:   "km",
		Centimeter:  "cm",
		Millimeter:  "mm",
		Microsecond: "ms",
		Celsius:     "ºC",
		Kelvin:      "ºK",
		Fahrenheit:  "ºF",
		Pound:       "lb",
		Ounce:       "oz",
		Inch:        "in",
	}
)

// UnitName returns the display name of u: a short symbol for common units,
// the lower-cased unit name otherwise. Microseconds are shown as "ms".
func UnitName(u Unit) string {
	if name, found := shortNames[u]; found {
		return name
	}
	return strings.ToLower(string(u))
}

// lookupUnit finds a unit by its display name or its full name, case-insensitive for names.
func lookupUnit(s string) (Unit, bool) {
	for _, u := range knownUnits {
		if UnitName(u) == s || strings.EqualFold(string(u), s) || strings.EqualFold(string(u)+"s", s) {
			return u, true
		}
	}
	switch strings.ToLower(s) {
	case "m":
		return Meter, true
	case "feet":
		return Foot, true
	case "inches":
		return Inch, true
	case "c":
		return Celsius, true
	case "f":
		return Fahrenheit, true
	case "k":
		return Kelvin, true
	}
	return NoUnit, false
}
