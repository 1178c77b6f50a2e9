package measure

import (
	"encoding/json"
	"strconv"

	"github.com/hupe1980/unitgo/dimension"
)

// Measurement is an immutable scaled value tagged with its dimension and a
// display symbol.
//
// Magnitude() * BaseRatio() is the value expressed in the canonical base unit
// of the dimension. Every operation returns a new Measurement.
type Measurement struct {
	symbol    string
	magnitude float64
	baseRatio float64
	dimension dimension.Vector
}

// New creates a measurement from its raw parts.
func New(symbol string, magnitude, baseRatio float64, dim dimension.Vector) Measurement {
	return Measurement{
		symbol:    symbol,
		magnitude: magnitude,
		baseRatio: baseRatio,
		dimension: dim,
	}
}

// Symbol returns the display symbol of the unit.
func (a Measurement) Symbol() string { return a.symbol }

// Magnitude returns the value in the measurement's own unit.
func (a Measurement) Magnitude() float64 { return a.magnitude }

// BaseRatio returns the factor converting the unit into the base unit.
func (a Measurement) BaseRatio() float64 { return a.baseRatio }

// Dimension returns the dimension vector.
func (a Measurement) Dimension() dimension.Vector { return a.dimension }

// Base returns the current value in base units (magnitude * baseRatio).
func (a Measurement) Base() float64 { return a.magnitude * a.baseRatio }

// Equal reports exact equality of all four components.
func (a Measurement) Equal(b Measurement) bool {
	return a.symbol == b.symbol &&
		a.magnitude == b.magnitude &&
		a.baseRatio == b.baseRatio &&
		a.dimension.Equal(b.dimension)
}

// Compare orders a and b by their value in base units.
// It returns -1, 0 or +1, and fails when the dimensions differ.
func (a Measurement) Compare(b Measurement) (int, error) {
	if !a.dimension.Equal(b.dimension) {
		return 0, &ErrDimensionMismatch{Op: "compare", Expected: a.dimension, Actual: b.dimension}
	}

	x, y := a.Base(), b.Base()
	switch {
	case x < y:
		return -1, nil
	case x > y:
		return 1, nil
	default:
		return 0, nil
	}
}

// String renders the measurement as "<magnitude> <symbol>".
func (a Measurement) String() string {
	return a.Format(StyleEngine)
}

type measurementJSON struct {
	Symbol    string           `json:"symbol"`
	Magnitude float64          `json:"magnitude"`
	BaseRatio float64          `json:"base_ratio"`
	Dimension dimension.Vector `json:"dimension"`
}

// MarshalJSON implements json.Marshaler.
func (a Measurement) MarshalJSON() ([]byte, error) {
	return json.Marshal(measurementJSON{
		Symbol:    a.symbol,
		Magnitude: a.magnitude,
		BaseRatio: a.baseRatio,
		Dimension: a.dimension,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Measurement) UnmarshalJSON(data []byte) error {
	var m measurementJSON
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*a = New(m.Symbol, m.Magnitude, m.BaseRatio, m.Dimension)
	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
