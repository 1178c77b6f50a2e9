package measure

import "github.com/hupe1980/unitgo/dimension"

// Unit mints measurements of a fixed unit: symbol, base ratio and dimension
// are captured when the unit is created.
//
//	meter := measure.BaseUnit("length", "m")
//	km := meter(1000).Named("km")
//	d := km(3) // 3 km
type Unit func(magnitude float64) Measurement

// NewUnit creates a unit from its raw parts.
func NewUnit(symbol string, baseRatio float64, dim dimension.Vector) Unit {
	return func(magnitude float64) Measurement {
		return New(symbol, magnitude, baseRatio, dim)
	}
}

// BaseUnit creates the base unit of dimension d: base ratio 1 and the
// singleton dimension vector {d: 1}.
func BaseUnit(d dimension.Dimension, symbol string) Unit {
	return NewUnit(symbol, 1, dimension.Singleton(d))
}

// One returns the unit's quantity one.
func (u Unit) One() Measurement { return u(1) }

// Symbol returns the unit's symbol.
func (u Unit) Symbol() string { return u(1).symbol }

// BaseRatio returns the factor converting the unit into the base unit.
func (u Unit) BaseRatio() float64 { return u(1).baseRatio }

// Dimension returns the unit's dimension vector.
func (u Unit) Dimension() dimension.Vector { return u(1).dimension }
