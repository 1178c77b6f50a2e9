// Package dimension implements the algebra of dimension vectors.
//
// A Vector assigns a signed integer exponent to each base Dimension of a quantity.
// Velocity is {length: 1, time: -1}; a dimensionless ratio is the empty vector.
// Vectors are kept in canonical sparse form: an exponent that reaches zero is
// removed, so equality is plain map equality.
//
// # Usage
//
//	length := dimension.Singleton("length")
//	time := dimension.Singleton("time")
//	velocity := dimension.Subtract(length, time)     // length·time^-1
//	accel := dimension.Subtract(velocity, time)      // length·time^-2
//	area := dimension.Scale(length, 2)               // length^2
package dimension
