package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hupe1980/unitgo/dimension"
	"github.com/hupe1980/unitgo/measure"
	"github.com/pelletier/go-toml/v2"
)

// File is the content of a TOML definitions file.
//
//	[[dimension]]
//	name = "information"
//	unit = "bit"
//	symbol = "bit"
//
//	[[unit]]
//	name = "furlong"
//	symbol = "fur"
//	of = "meter"
//	factor = 201.168
type File struct {
	Dimensions []BaseDefinition `toml:"dimension,omitempty"`
	Units      []Definition     `toml:"unit,omitempty"`
}

// BaseDefinition introduces a new base dimension together with its base unit.
type BaseDefinition struct {
	Name   string `toml:"name"`
	Unit   string `toml:"unit"`
	Symbol string `toml:"symbol"`
}

// Dimension returns the dimension named by d.
func (d BaseDefinition) Dimension() dimension.Dimension {
	return dimension.Dimension(d.Name)
}

// Validate checks that every field is set.
func (d BaseDefinition) Validate() error {
	switch {
	case strings.TrimSpace(d.Name) == "":
		return &DefinitionError{Name: d.Unit, Reason: "dimension name is empty"}
	case strings.TrimSpace(d.Unit) == "":
		return &DefinitionError{Name: d.Name, Reason: "unit name is empty"}
	case strings.TrimSpace(d.Symbol) == "":
		return &DefinitionError{Name: d.Unit, Reason: "symbol is empty"}
	}
	return nil
}

// Definition derives a unit from units that already exist.
//
// With Symbol set, the unit's quantity one is Of^Power * Times... / Per...
// scaled by Factor and displayed as Symbol.
//
// With Prefix set, Factor and Prefix apply to Of alone: the prefixed unit
// (Prefix + Of's symbol, Factor times Of) is raised to Power and combined
// with Times and Per. A kilometer squared is {Prefix: "k", Of: "meter",
// Factor: 1000, Power: 2}, displayed as "(km)**2".
type Definition struct {
	Name   string   `toml:"name"`
	Symbol string   `toml:"symbol,omitempty"`
	Prefix string   `toml:"prefix,omitempty"`
	Of     string   `toml:"of"`
	Factor *float64 `toml:"factor,omitempty"`
	Power  *int     `toml:"power,omitempty"`
	Times  []string `toml:"times,omitempty"`
	Per    []string `toml:"per,omitempty"`
}

// FactorOrDefault returns Factor, or 1 when unset.
func (d Definition) FactorOrDefault() float64 {
	if d.Factor == nil {
		return 1
	}
	return *d.Factor
}

// PowerOrDefault returns Power, or 1 when unset.
func (d Definition) PowerOrDefault() int {
	if d.Power == nil {
		return 1
	}
	return *d.Power
}

// Validate checks the definition without resolving any referenced unit.
func (d Definition) Validate() error {
	switch {
	case strings.TrimSpace(d.Name) == "":
		return &DefinitionError{Name: d.Symbol, Reason: "name is empty"}
	case strings.TrimSpace(d.Of) == "":
		return &DefinitionError{Name: d.Name, Reason: `"of" is empty`}
	case d.Symbol == "" && d.Prefix == "":
		return &DefinitionError{Name: d.Name, Reason: "either symbol or prefix is required"}
	case d.Symbol != "" && d.Prefix != "":
		return &DefinitionError{Name: d.Name, Reason: "symbol and prefix are mutually exclusive"}
	case d.Factor != nil && *d.Factor == 0:
		return &DefinitionError{Name: d.Name, Reason: "factor must be nonzero"}
	case d.Power != nil && *d.Power == 0:
		return &DefinitionError{Name: d.Name, Reason: "power must be nonzero"}
	}
	return nil
}

// LookupFunc resolves a unit by name or symbol.
type LookupFunc func(name string) (measure.Unit, error)

// Resolve builds the unit described by d.
func Resolve(d Definition, lookup LookupFunc) (measure.Unit, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	get := func(name string) (measure.Measurement, error) {
		u, err := lookup(name)
		if err != nil {
			return measure.Measurement{}, &DefinitionError{Name: d.Name, Reason: fmt.Sprintf("unit %q", name), cause: err}
		}
		return u(1), nil
	}

	m, err := get(d.Of)
	if err != nil {
		return nil, err
	}
	if d.Prefix != "" {
		m = m.Scale(d.FactorOrDefault()).Prefixed(d.Prefix)(1)
	}
	m = m.Pow(d.PowerOrDefault())

	for _, name := range d.Times {
		t, err := get(name)
		if err != nil {
			return nil, err
		}
		m = m.Times(t)
	}
	for _, name := range d.Per {
		p, err := get(name)
		if err != nil {
			return nil, err
		}
		m = m.Per(p)
	}

	if d.Prefix != "" {
		return m.Named(m.Symbol()), nil
	}
	return m.Scale(d.FactorOrDefault()).Named(d.Symbol), nil
}

// ParseDefinitions decodes a TOML definitions file and validates every entry.
// Unknown keys are rejected.
func ParseDefinitions(r io.Reader) (*File, error) {
	var f File

	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("parse definitions at %d:%d: %w", row, col, err)
		}
		return nil, fmt.Errorf("parse definitions: %w", err)
	}

	for _, d := range f.Dimensions {
		if err := d.Validate(); err != nil {
			return nil, err
		}
	}
	for _, d := range f.Units {
		if err := d.Validate(); err != nil {
			return nil, err
		}
	}
	return &f, nil
}

// ParseDefinitionsFile reads and parses the definitions file at path.
func ParseDefinitionsFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	f, err := ParseDefinitions(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Encode writes f as TOML.
func (f *File) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(f)
}
