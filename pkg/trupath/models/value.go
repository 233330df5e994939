// Package models defines the value types flowing through the plate conversion pipeline.
package models

import (
	"math"
	"strconv"
	"strings"
)

// Value is a nullable measurement. The zero Value is blank.
type Value struct {
	// Float is the numeric value; meaningful only when Valid is true.
	Float float64
	// Valid reports whether the cell holds a finite number.
	Valid bool
}

// Num returns a Value for f. NaN and infinities are blank.
func Num(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}
	}
	return Value{Float: f, Valid: true}
}

// Blank returns an undefined Value.
func Blank() Value {
	return Value{}
}

// Div divides v by d. The result is blank when either operand is blank,
// when d is zero, or when the quotient is not finite.
func (v Value) Div(d Value) Value {
	if !v.Valid || !d.Valid || d.Float == 0 {
		return Value{}
	}
	return Num(v.Float / d.Float)
}

// String renders the value the way it appears in the CSV output:
// blanks are empty, integral values keep a trailing ".0" and very small or
// very large magnitudes use exponent notation.
func (v Value) String() string {
	if !v.Valid {
		return ""
	}
	return formatFloat(v.Float)
}

func formatFloat(f float64) string {
	if f == 0 {
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}
	abs := math.Abs(f)
	if abs < 1e-4 || abs >= 1e16 {
		// Go already pads the exponent to two digits.
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
