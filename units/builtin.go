package units

import "github.com/hupe1980/unitgo/measure"

// Entry is a named unit of the catalogue.
type Entry struct {
	Name string
	Unit measure.Unit
}

// Builtin returns the whole catalogue: base units, derived units, non-SI units,
// then every prefix family. Names are unique; "kilogram" is the base unit and
// is not repeated by the kilo family.
func Builtin() []Entry {
	entries := []Entry{
		{"second", Second},
		{"meter", Meter},
		{"kilogram", Kilogram},
		{"ampere", Ampere},
		{"kelvin", Kelvin},
		{"mole", Mole},
		{"candela", Candela},
		{"radian", Radian},
		{"steradian", Steradian},

		{"gram", Gram},
		{"hertz", Hertz},
		{"newton", Newton},
		{"pascal", Pascal},
		{"joule", Joule},
		{"watt", Watt},
		{"coulomb", Coulomb},
		{"volt", Volt},
		{"farad", Farad},
		{"ohm", Ohm},
		{"siemens", Siemens},
		{"weber", Weber},
		{"tesla", Tesla},
		{"henry", Henry},
		{"lumen", Lumen},
		{"lux", Lux},
		{"becquerel", Becquerel},
		{"gray", Gray},
		{"sievert", Sievert},
		{"katal", Katal},

		{"minute", Minute},
		{"hour", Hour},
		{"day", Day},
		{"astronomical_unit", AstronomicalUnit},
		{"degree", Degree},
		{"minute_angle", MinuteAngle},
		{"second_angle", SecondAngle},
		{"hectare", Hectare},
		{"tonne", Tonne},
	}

	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		seen[e.Name] = struct{}{}
	}
	for _, f := range Families() {
		for _, e := range f.Entries() {
			if _, dup := seen[e.Name]; dup {
				continue
			}
			seen[e.Name] = struct{}{}
			entries = append(entries, e)
		}
	}
	return entries
}
