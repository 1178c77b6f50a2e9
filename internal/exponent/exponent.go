// Package exponent holds the signed integer helpers shared by the dimension
// algebra and the measurement formatter.
package exponent

import (
	"strconv"
	"strings"
)

// Neg returns -e.
func Neg(e int) int { return -e }

// Add returns a + b.
func Add(a, b int) int { return a + b }

// Sub returns a - b.
func Sub(a, b int) int { return a - b }

// Mul returns e scaled by n.
func Mul(e, n int) int { return e * n }

// Format renders e in caret notation: "" for 1, "^2", "^-1".
func Format(e int) string {
	if e == 1 {
		return ""
	}
	return "^" + strconv.Itoa(e)
}

var superscripts = [...]rune{'⁰', '¹', '²', '³', '⁴', '⁵', '⁶', '⁷', '⁸', '⁹'}

// Superscript renders e with unicode superscript digits: "" for 1, "²", "⁻¹".
func Superscript(e int) string {
	if e == 1 {
		return ""
	}

	var sb strings.Builder
	digits := strconv.Itoa(e)
	if e < 0 {
		sb.WriteRune('⁻')
		digits = digits[1:]
	}
	for _, d := range digits {
		sb.WriteRune(superscripts[d-'0'])
	}
	return sb.String()
}
