package units

import (
	"math"

	"github.com/hupe1980/unitgo/dimension"
	"github.com/hupe1980/unitgo/measure"
)

// Base dimensions. PlanarAngle and SolidAngle are not SI base quantities but
// are tracked as axes so that radians and steradians stay distinguishable.
const (
	Time                     dimension.Dimension = "time"
	Length                   dimension.Dimension = "length"
	Mass                     dimension.Dimension = "mass"
	ElectricCurrent          dimension.Dimension = "electricCurrent"
	ThermodynamicTemperature dimension.Dimension = "thermodynamicTemperature"
	AmountOfSubstance        dimension.Dimension = "amountOfSubstance"
	LuminousIntensity        dimension.Dimension = "luminousIntensity"
	PlanarAngle              dimension.Dimension = "planarAngle"
	SolidAngle               dimension.Dimension = "solidAngle"
)

// SI base units.
var (
	Second    = measure.BaseUnit(Time, "s")
	Meter     = measure.BaseUnit(Length, "m")
	Kilogram  = measure.BaseUnit(Mass, "kg")
	Ampere    = measure.BaseUnit(ElectricCurrent, "A")
	Kelvin    = measure.BaseUnit(ThermodynamicTemperature, "K")
	Mole      = measure.BaseUnit(AmountOfSubstance, "mol")
	Candela   = measure.BaseUnit(LuminousIntensity, "cd")
	Radian    = measure.BaseUnit(PlanarAngle, "rad")
	Steradian = measure.BaseUnit(SolidAngle, "sr")
)

// SI derived units.
var (
	Gram      = Kilogram(0.001).Named("g")
	Hertz     = Second(1).Inverted().Named("Hz")
	Newton    = Kilogram(1).Times(Meter(1)).Per(Second(1).Squared()).Named("N")
	Pascal    = Newton(1).Per(Meter(1).Squared()).Named("Pa")
	Joule     = Newton(1).Times(Meter(1)).Named("J")
	Watt      = Joule(1).Per(Second(1)).Named("W")
	Coulomb   = Second(1).Times(Ampere(1)).Named("C")
	Volt      = Watt(1).Per(Ampere(1)).Named("V")
	Farad     = Coulomb(1).Per(Volt(1)).Named("F")
	Ohm       = Volt(1).Per(Ampere(1)).Named("Ω")
	Siemens   = Ohm(1).Inverted().Named("S")
	Weber     = Volt(1).Times(Second(1)).Named("Wb")
	Tesla     = Weber(1).Per(Meter(1).Squared()).Named("T")
	Henry     = Weber(1).Per(Ampere(1)).Named("H")
	Lumen     = Candela(1).Times(Steradian(1)).Named("lm")
	Lux       = Lumen(1).Per(Meter(1).Squared()).Named("lx")
	Becquerel = Hertz(1).Named("Bq")
	Gray      = Joule(1).Per(Kilogram(1)).Named("Gy")
	Sievert   = Gray(1).Named("Sv")
	Katal     = Mole(1).Per(Second(1)).Named("kat")
)

// Non-SI units accepted for use with the SI.
var (
	Minute           = Second(60).Named("min")
	Hour             = Minute(60).Named("h")
	Day              = Hour(24).Named("d")
	AstronomicalUnit = Meter(149597870700).Named("au")
	Degree           = Radian(math.Pi / 180).Named("°")
	MinuteAngle      = Degree(1.0 / 60).Named("'")
	SecondAngle      = MinuteAngle(1.0 / 60).Named(`"`)
	Hectare          = Meter(10000).Times(Meter(1)).Named("ha")
	Tonne            = Kilogram(1000).Named("t")
)
