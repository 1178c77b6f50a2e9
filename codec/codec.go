// Package codec selects the encoding used for catalogue snapshot payloads.
//
// A snapshot header stores the name of the codec that wrote it, and
// catalog.DecodeSnapshot looks that name up with ByName. Names are therefore
// part of the snapshot format and never change once released.
package codec

import "sort"

// Codec turns a snapshot payload into bytes and back.
// Implementations must be safe for concurrent use.
type Codec interface {
	// Name is recorded in every snapshot header and must be at most 255 bytes.
	Name() string
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// Default writes new snapshots. Both built-in codecs emit plain JSON, so
// snapshots written by either can be read by a build with only the other.
var Default Codec = GoJSON{}

var builtin = map[string]Codec{
	JSON{}.Name():   JSON{},
	GoJSON{}.Name(): GoJSON{},
}

// ByName returns the built-in codec recorded under name in a snapshot header.
func ByName(name string) (Codec, bool) {
	c, ok := builtin[name]
	return c, ok
}

// Names lists the built-in codec names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
