// Package unitgo provides dimensional analysis for physical quantities.
//
// A measurement carries a magnitude, a display symbol, the ratio between its
// unit and the coherent base unit, and a dimension vector of integer exponents
// over named base dimensions. Arithmetic derives the resulting dimension and
// symbol; addition and conversion are only defined for equal dimensions.
//
// # Quick Start
//
// The engine lives in package measure, the SI catalogue in package units:
//
//	speed := units.Kilo.Meter(40).Per(units.Hour(1))
//	fmt.Println(speed) // 40 km (h)**-1
//
//	ms, _ := speed.Into(units.Meter(1).Per(units.Second(1)).Named("m/s"))
//	fmt.Printf("%.2f %s\n", ms.Magnitude(), ms.Symbol()) // 11.11 m/s
//
// # Registry
//
// Registry is a concurrency-safe catalogue that finds units by name or symbol:
//
//	reg, _ := unitgo.New()
//	m, _ := reg.Convert(2.3, "kilometer", "m")
//	fmt.Println(m) // 2300 m
//
//	total, _ := reg.Sum("h", unitgo.Quantity{Value: 90, Unit: "min"}, unitgo.Quantity{Value: 1, Unit: "day"})
//	fmt.Println(total) // 25.5 h
//
// New units are defined in code, or in TOML files that reference existing
// units by name:
//
//	[[unit]]
//	name = "furlong"
//	symbol = "fur"
//	of = "meter"
//	factor = 201.168
//
//	n, _ := reg.LoadDefinitionsFile("units.toml")
//
// # Snapshots
//
// User-defined units can be saved to and loaded from any blobstore.Store
// (memory, local disk, MinIO, S3):
//
//	reg, _ := unitgo.New(
//	    unitgo.WithStore(blobstore.NewLocalStore("./snapshots")),
//	    unitgo.WithCompression(catalog.CompressionZSTD),
//	)
//	_ = reg.Save(ctx, "custom.snap")
//	_, _ = reg.Load(ctx, "custom.snap")
//
// # Errors
//
// Lookups of unknown names return *ErrUnknownUnit. Conversions between
// different dimensions return *ErrIncompatibleUnit, which unwraps to the
// engine's measure.ErrIncompatibleUnit.
package unitgo
