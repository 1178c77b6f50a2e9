// Package catalog reads unit definitions and reads/writes catalogue snapshots.
//
// # Definitions
//
// Definitions are TOML files that introduce new base dimensions and derive new
// units from existing ones by name. They never contain unit expressions:
//
//	[[unit]]
//	name = "knot"
//	symbol = "kn"
//	of = "nautical_mile"
//	per = ["hour"]
//
// # Snapshots
//
// A snapshot is a self-describing binary blob holding the resolved records of a
// catalogue (symbol, base ratio, dimension). The payload is encoded with a
// codec.Codec, optionally compressed with LZ4 or ZSTD and protected by a
// CRC32-C checksum.
package catalog
