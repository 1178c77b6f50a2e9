// Package measure implements the measurement arithmetic engine.
//
// A Measurement couples a magnitude with a unit: a display symbol, a base ratio
// (the factor converting the unit into the canonical base unit of its dimension)
// and a dimension vector. Arithmetic derives the resulting symbol, ratio and
// dimension automatically:
//
//	m := measure.BaseUnit("length", "m")
//	s := measure.BaseUnit("time", "s")
//	v := m(100).Per(s(9.58))            // 10.438... m (s)**-1
//	km := m(1000).Named("km")
//	h := s(3600).Named("h")
//	kmh, _ := v.Into(km(1).Per(h(1)).Named("km/h"))
//
// # Units
//
// A Unit is a function from a magnitude to a Measurement. Units are minted from a
// dimension with BaseUnit, or from an existing measurement with Named and Prefixed,
// which bake the measurement's current value into the new unit's quantity one.
//
// # Errors
//
// Plus, Minus and Compare fail with *ErrDimensionMismatch when the dimensions
// differ; Into fails with *ErrIncompatibleUnit. All other operations are total and
// follow IEEE-754 semantics for division by zero and overflow.
package measure
