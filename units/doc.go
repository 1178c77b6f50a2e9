// Package units is the catalogue of SI and accepted non-SI units.
//
// Every unit is built through the measure engine: one base unit per dimension,
// everything else by Times, Per, Squared, Inverted, Named and Prefixed.
//
//	d, _ := units.Kilo.Meter(2.3).Into(units.Meter)  // 2300 m
//	t, _ := units.Day(1).Into(units.Second)          // 86400 s
//	v := units.Kilo.Meter(40).Per(units.Hour(1))     // 40 km (h)**-1
package units
