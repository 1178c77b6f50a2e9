package measure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		m        Measurement
		style    Style
		expected string
	}{
		{"Base", unitA(1), StyleEngine, "1 a"},
		{"Fraction", unitA(2.5), StyleEngine, "2.5 a"},
		{"Per", unitA(6).Per(unitB(2)), StyleEngine, "3 a (b)**-1"},
		{"Squared", unitA(3).Squared(), StyleEngine, "9 (a)**2"},
		{"NoSymbol", unitA(2).Pow(0), StyleEngine, "1"},
		{"DimensionBase", derived(2), StyleDimension, "100 quantityA"},
		{"DimensionCompound", unitA(6).Per(unitB(2)), StyleDimension, "3 quantityA·quantityB^-1"},
		{"Dimensionless", unitA(100).Per(derived(1)), StyleDimension, "2"},
		{"UnicodeCompound", unitA(6).Per(unitB(2).Squared()), StyleUnicode, "1.5 quantityA·quantityB⁻²"},
		{"UnicodeDimensionless", unitA(100).Per(derived(1)), StyleUnicode, "2"},
		{"UnknownStyle", unitA(1), Style(42), "1 a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.m.Format(tt.style))
		})
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "1 a", unitA(1).String())
	assert.Equal(t, "150 a", unitA(150).String())
	assert.Equal(t, "engine", StyleEngine.String())
	assert.Equal(t, "dimension", StyleDimension.String())
	assert.Equal(t, "unicode", StyleUnicode.String())
	assert.Equal(t, "unknown", Style(9).String())
}
