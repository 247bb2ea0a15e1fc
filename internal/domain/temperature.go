package domain

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// TemperatureUnit tags the scale a Temperature value is expressed in
type TemperatureUnit int

const (
	Kelvin TemperatureUnit = iota
	Celsius
)

func (u TemperatureUnit) String() string {
	switch u {
	case Celsius:
		return "C"
	default:
		return "K"
	}
}

// Temperature is a numeric value paired with its unit
type Temperature struct {
	value float64
	unit  TemperatureUnit
}

// KelvinTemperature returns a temperature in kelvin
func KelvinTemperature(k float64) Temperature {
	return Temperature{value: k, unit: Kelvin}
}

// CelsiusTemperature returns a temperature in degrees Celsius
func CelsiusTemperature(c float64) Temperature {
	return Temperature{value: c, unit: Celsius}
}

// decimalNumber is a plain signed decimal with an optional exponent; hex
// floats, underscores and spelled-out infinities or NaN are rejected
var decimalNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)(E[+-]?\d+)?$`)

// ParseTemperature reads strings like "37C", "37 °C", "310K" or "310".
// A bare number is taken as kelvin. Any other suffix is a ParseError.
func ParseTemperature(s string) (Temperature, error) {
	t := strings.ToUpper(strings.TrimSpace(s))
	if t == "" {
		return Temperature{}, &ParseError{Input: s, Reason: "empty value"}
	}

	unit := Kelvin
	switch {
	case strings.HasSuffix(t, "C"):
		unit = Celsius
		t = strings.TrimSuffix(strings.TrimSuffix(t, "C"), "°")
	case strings.HasSuffix(t, "K"):
		t = strings.TrimSuffix(strings.TrimSuffix(t, "K"), "°")
	case strings.HasSuffix(t, "°"):
		return Temperature{}, &ParseError{Input: s, Reason: "missing unit after °"}
	}
	t = strings.TrimSpace(t)

	if !decimalNumber.MatchString(t) {
		return Temperature{}, &ParseError{Input: s, Reason: "expected a decimal number followed by C or K"}
	}
	v, err := strconv.ParseFloat(t, 64)
	if err != nil || math.IsInf(v, 0) {
		return Temperature{}, &ParseError{Input: s, Reason: "number out of range"}
	}

	return Temperature{value: v, unit: unit}, nil
}

// Value returns the number as given, in its own unit
func (t Temperature) Value() float64 {
	return t.value
}

// Unit returns the unit the value was given in
func (t Temperature) Unit() TemperatureUnit {
	return t.unit
}

// Kelvin converts to kelvin
func (t Temperature) Kelvin() float64 {
	if t.unit == Celsius {
		return t.value + CelsiusOffset
	}
	return t.value
}

func (t Temperature) String() string {
	return fmt.Sprintf("%g%s", t.value, t.unit)
}
