package measure

// Style selects how a measurement is rendered.
type Style int

const (
	// StyleEngine renders "<magnitude> <symbol>", e.g. "3 a (derived)**-1".
	StyleEngine Style = iota
	// StyleDimension renders the value in base units followed by the
	// dimension vector, e.g. "9.81 length·time^-2".
	StyleDimension
	// StyleUnicode is StyleDimension with superscript exponents,
	// e.g. "9.81 length·time⁻²".
	StyleUnicode
)

func (s Style) String() string {
	switch s {
	case StyleEngine:
		return "engine"
	case StyleDimension:
		return "dimension"
	case StyleUnicode:
		return "unicode"
	default:
		return "unknown"
	}
}

// Format renders a in the given style. Unknown styles fall back to StyleEngine.
func (a Measurement) Format(s Style) string {
	switch s {
	case StyleDimension, StyleUnicode:
		if a.dimension.IsDimensionless() {
			return formatFloat(a.Base())
		}
		if s == StyleUnicode {
			return formatFloat(a.Base()) + " " + a.dimension.Unicode()
		}
		return formatFloat(a.Base()) + " " + a.dimension.String()
	}

	if a.symbol == "" {
		return formatFloat(a.magnitude)
	}
	return formatFloat(a.magnitude) + " " + a.symbol
}
