package measure

import (
	"math"
	"strconv"

	"github.com/hupe1980/unitgo/dimension"
)

// Plus adds b to a. The result is expressed in b's unit.
func (a Measurement) Plus(b Measurement) (Measurement, error) {
	if !a.dimension.Equal(b.dimension) {
		return Measurement{}, &ErrDimensionMismatch{Op: "plus", Expected: a.dimension, Actual: b.dimension}
	}
	return New(b.symbol, a.magnitude*a.baseRatio/b.baseRatio+b.magnitude, b.baseRatio, a.dimension), nil
}

// Minus subtracts b from a. The result is expressed in b's unit.
func (a Measurement) Minus(b Measurement) (Measurement, error) {
	if !a.dimension.Equal(b.dimension) {
		return Measurement{}, &ErrDimensionMismatch{Op: "minus", Expected: a.dimension, Actual: b.dimension}
	}
	return New(b.symbol, a.magnitude*a.baseRatio/b.baseRatio-b.magnitude, b.baseRatio, a.dimension), nil
}

// Times multiplies a by b.
func (a Measurement) Times(b Measurement) Measurement {
	return New(
		a.symbol+" "+b.symbol,
		a.magnitude*b.magnitude,
		a.baseRatio*b.baseRatio,
		dimension.Add(a.dimension, b.dimension),
	)
}

// Per divides a by b.
func (a Measurement) Per(b Measurement) Measurement {
	return New(
		a.symbol+" ("+b.symbol+")**-1",
		a.magnitude/b.magnitude,
		a.baseRatio/b.baseRatio,
		dimension.Subtract(a.dimension, b.dimension),
	)
}

// Into converts a into the unit u.
func (a Measurement) Into(u Unit) (Measurement, error) {
	one := u(1)
	if !one.dimension.Equal(a.dimension) {
		return Measurement{}, &ErrIncompatibleUnit{Unit: one.symbol, Expected: a.dimension, Actual: one.dimension}
	}
	return New(one.symbol, a.magnitude*a.baseRatio/one.baseRatio, one.baseRatio, one.dimension), nil
}

// Inverted returns 1/a.
func (a Measurement) Inverted() Measurement {
	return New(
		"("+a.symbol+")**-1",
		1/a.magnitude,
		1/a.baseRatio,
		dimension.Negate(a.dimension),
	)
}

// Squared returns a*a.
func (a Measurement) Squared() Measurement {
	sq := a.Times(a)
	sq.symbol = "(" + a.symbol + ")**2"
	return sq
}

// Cubed returns a*a*a.
func (a Measurement) Cubed() Measurement {
	cb := a.Times(a).Times(a)
	cb.symbol = "(" + a.symbol + ")**3"
	return cb
}

// Pow raises a to the integer power n.
//
// Pow(1) is a, Pow(0) is the dimensionless one, Pow(-1) matches Inverted and
// Pow(2), Pow(3) match Squared and Cubed.
func (a Measurement) Pow(n int) Measurement {
	switch n {
	case 0:
		return New("", 1, 1, dimension.Vector{})
	case 1:
		return a
	case -1:
		return a.Inverted()
	case 2:
		return a.Squared()
	case 3:
		return a.Cubed()
	}

	p := float64(n)
	return New(
		"("+a.symbol+")**"+strconv.Itoa(n),
		math.Pow(a.magnitude, p),
		math.Pow(a.baseRatio, p),
		dimension.Scale(a.dimension, n),
	)
}

// Scale multiplies the magnitude by the dimensionless factor k.
func (a Measurement) Scale(k float64) Measurement {
	return New(a.symbol, a.magnitude*k, a.baseRatio, a.dimension)
}

// Named bakes a's current value into a new unit with the given symbol.
// The returned unit's quantity one equals a.
func (a Measurement) Named(symbol string) Unit {
	return NewUnit(symbol, a.magnitude*a.baseRatio, a.dimension)
}

// Prefixed is like Named but derives the symbol as prefix + a's symbol.
func (a Measurement) Prefixed(prefix string) Unit {
	return NewUnit(prefix+a.symbol, a.magnitude*a.baseRatio, a.dimension)
}
