package units

import (
	"math"

	"github.com/hupe1980/unitgo/measure"
)

// Prefix is an SI decimal prefix.
type Prefix struct {
	Name     string
	Symbol   string
	Exponent int
}

// Factor returns 10^Exponent.
func (p Prefix) Factor() float64 { return math.Pow10(p.Exponent) }

// Prefixes lists the SI prefixes from yotta to yocto.
var Prefixes = []Prefix{
	{"yotta", "Y", 24},
	{"zetta", "Z", 21},
	{"exa", "E", 18},
	{"peta", "P", 15},
	{"tera", "T", 12},
	{"giga", "G", 9},
	{"mega", "M", 6},
	{"kilo", "k", 3},
	{"hecto", "h", 2},
	{"deca", "da", 1},
	{"deci", "d", -1},
	{"centi", "c", -2},
	{"milli", "m", -3},
	{"micro", "μ", -6},
	{"nano", "n", -9},
	{"pico", "p", -12},
	{"femto", "f", -15},
	{"atto", "a", -18},
	{"zepto", "z", -21},
	{"yocto", "y", -24},
}

// Prefixed applies p to u: the result's quantity one is 10^p.Exponent of u and
// its symbol is p.Symbol followed by u's symbol.
func Prefixed(p Prefix, u measure.Unit) measure.Unit {
	return u(p.Factor()).Prefixed(p.Symbol)
}

// Family holds one prefixed unit per SI unit.
type Family struct {
	Prefix Prefix

	Second    measure.Unit
	Meter     measure.Unit
	Gram      measure.Unit
	Ampere    measure.Unit
	Kelvin    measure.Unit
	Mole      measure.Unit
	Candela   measure.Unit
	Radian    measure.Unit
	Steradian measure.Unit
	Hertz     measure.Unit
	Newton    measure.Unit
	Pascal    measure.Unit
	Joule     measure.Unit
	Watt      measure.Unit
	Coulomb   measure.Unit
	Volt      measure.Unit
	Farad     measure.Unit
	Ohm       measure.Unit
	Siemens   measure.Unit
	Weber     measure.Unit
	Tesla     measure.Unit
	Henry     measure.Unit
	Lumen     measure.Unit
	Lux       measure.Unit
	Becquerel measure.Unit
	Gray      measure.Unit
	Sievert   measure.Unit
	Katal     measure.Unit
}

// NewFamily prefixes every SI unit with p.
func NewFamily(p Prefix) Family {
	f := Family{Prefix: p}
	for _, e := range f.entries() {
		*e.slot = Prefixed(p, e.unit)
	}
	return f
}

type familySlot struct {
	name string
	unit measure.Unit
	slot *measure.Unit
}

func (f *Family) entries() []familySlot {
	return []familySlot{
		{"second", Second, &f.Second},
		{"meter", Meter, &f.Meter},
		{"gram", Gram, &f.Gram},
		{"ampere", Ampere, &f.Ampere},
		{"kelvin", Kelvin, &f.Kelvin},
		{"mole", Mole, &f.Mole},
		{"candela", Candela, &f.Candela},
		{"radian", Radian, &f.Radian},
		{"steradian", Steradian, &f.Steradian},
		{"hertz", Hertz, &f.Hertz},
		{"newton", Newton, &f.Newton},
		{"pascal", Pascal, &f.Pascal},
		{"joule", Joule, &f.Joule},
		{"watt", Watt, &f.Watt},
		{"coulomb", Coulomb, &f.Coulomb},
		{"volt", Volt, &f.Volt},
		{"farad", Farad, &f.Farad},
		{"ohm", Ohm, &f.Ohm},
		{"siemens", Siemens, &f.Siemens},
		{"weber", Weber, &f.Weber},
		{"tesla", Tesla, &f.Tesla},
		{"henry", Henry, &f.Henry},
		{"lumen", Lumen, &f.Lumen},
		{"lux", Lux, &f.Lux},
		{"becquerel", Becquerel, &f.Becquerel},
		{"gray", Gray, &f.Gray},
		{"sievert", Sievert, &f.Sievert},
		{"katal", Katal, &f.Katal},
	}
}

// Entries returns the family's units named "<prefix><unit>", e.g. "kilometer".
func (f Family) Entries() []Entry {
	slots := f.entries()
	out := make([]Entry, 0, len(slots))
	for _, s := range slots {
		out = append(out, Entry{Name: f.Prefix.Name + s.name, Unit: *s.slot})
	}
	return out
}

// Prefix families.
var (
	Yotta = NewFamily(Prefixes[0])
	Zetta = NewFamily(Prefixes[1])
	Exa   = NewFamily(Prefixes[2])
	Peta  = NewFamily(Prefixes[3])
	Tera  = NewFamily(Prefixes[4])
	Giga  = NewFamily(Prefixes[5])
	Mega  = NewFamily(Prefixes[6])
	Kilo  = NewFamily(Prefixes[7])
	Hecto = NewFamily(Prefixes[8])
	Deca  = NewFamily(Prefixes[9])
	Deci  = NewFamily(Prefixes[10])
	Centi = NewFamily(Prefixes[11])
	Milli = NewFamily(Prefixes[12])
	Micro = NewFamily(Prefixes[13])
	Nano  = NewFamily(Prefixes[14])
	Pico  = NewFamily(Prefixes[15])
	Femto = NewFamily(Prefixes[16])
	Atto  = NewFamily(Prefixes[17])
	Zepto = NewFamily(Prefixes[18])
	Yocto = NewFamily(Prefixes[19])
)

// Families returns all prefix families in Prefixes order.
func Families() []Family {
	return []Family{
		Yotta, Zetta, Exa, Peta, Tera, Giga, Mega, Kilo, Hecto, Deca,
		Deci, Centi, Milli, Micro, Nano, Pico, Femto, Atto, Zepto, Yocto,
	}
}
