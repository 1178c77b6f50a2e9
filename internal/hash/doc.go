// Package hash provides the checksum used to protect catalogue snapshots.
//
// Snapshots carry a CRC32-Castagnoli (CRC32C) checksum of their uncompressed
// payload. The standard library uses SSE4.2 or the ARM CRC extension when
// available.
//
//	sum := hash.CRC32C(payload)
package hash
