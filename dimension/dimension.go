package dimension

import (
	"encoding/json"
	"slices"
	"strings"

	"github.com/hupe1980/unitgo/internal/exponent"
)

// Dimension names a base physical axis such as "time" or "length".
type Dimension string

// Vector maps dimensions to nonzero integer exponents.
//
// The zero value is the dimensionless vector. A Vector is never mutated after
// construction; every operation returns a fresh value. The backing map is nil
// whenever the vector is empty, so two equal vectors are also structurally equal.
type Vector struct {
	exps map[Dimension]int
}

// Singleton returns the vector {d: 1}.
func Singleton(d Dimension) Vector {
	return Vector{exps: map[Dimension]int{d: 1}}
}

// Of builds a vector from m, dropping zero exponents. m is copied.
func Of(m map[Dimension]int) Vector {
	var exps map[Dimension]int
	for d, e := range m {
		exps = set(exps, d, e)
	}
	return Vector{exps: exps}
}

// set stores e under d, allocating lazily and skipping zero exponents.
func set(exps map[Dimension]int, d Dimension, e int) map[Dimension]int {
	if e == 0 {
		return exps
	}
	if exps == nil {
		exps = make(map[Dimension]int)
	}
	exps[d] = e
	return exps
}

// Negate flips the sign of every exponent.
func Negate(v Vector) Vector {
	var exps map[Dimension]int
	for d, e := range v.exps {
		exps = set(exps, d, exponent.Neg(e))
	}
	return Vector{exps: exps}
}

// Add sums exponents over the union of both key sets.
func Add(v1, v2 Vector) Vector {
	return merge(v1, v2, exponent.Add)
}

// Subtract returns v1[d] - v2[d] over the union of both key sets.
// The result equals Add(v1, Negate(v2)).
func Subtract(v1, v2 Vector) Vector {
	return merge(v1, v2, exponent.Sub)
}

func merge(v1, v2 Vector, op func(a, b int) int) Vector {
	var exps map[Dimension]int
	for d, e := range v1.exps {
		exps = set(exps, d, op(e, v2.exps[d]))
	}
	for d, e := range v2.exps {
		if _, seen := v1.exps[d]; seen {
			continue
		}
		exps = set(exps, d, op(0, e))
	}
	return Vector{exps: exps}
}

// Scale multiplies every exponent by n. Scale(v, 0) is dimensionless.
func Scale(v Vector, n int) Vector {
	var exps map[Dimension]int
	for d, e := range v.exps {
		exps = set(exps, d, exponent.Mul(e, n))
	}
	return Vector{exps: exps}
}

// Equal reports whether both vectors hold the same exponents.
func (v Vector) Equal(w Vector) bool {
	if len(v.exps) != len(w.exps) {
		return false
	}
	for d, e := range v.exps {
		if w.exps[d] != e {
			return false
		}
	}
	return true
}

// Exponent returns the exponent of d, zero when absent.
func (v Vector) Exponent(d Dimension) int {
	return v.exps[d]
}

// Len returns the number of dimensions with a nonzero exponent.
func (v Vector) Len() int {
	return len(v.exps)
}

// IsDimensionless reports whether v is empty.
func (v Vector) IsDimensionless() bool {
	return len(v.exps) == 0
}

// Dimensions returns the dimensions of v in lexical order.
func (v Vector) Dimensions() []Dimension {
	dims := make([]Dimension, 0, len(v.exps))
	for d := range v.exps {
		dims = append(dims, d)
	}
	slices.Sort(dims)
	return dims
}

// Map returns a copy of the exponents.
func (v Vector) Map() map[Dimension]int {
	m := make(map[Dimension]int, len(v.exps))
	for d, e := range v.exps {
		m[d] = e
	}
	return m
}

// String renders v as "length·time^-2", or "1" when dimensionless.
func (v Vector) String() string {
	if v.IsDimensionless() {
		return "1"
	}

	parts := make([]string, 0, len(v.exps))
	for _, d := range v.Dimensions() {
		parts = append(parts, string(d)+exponent.Format(v.exps[d]))
	}
	return strings.Join(parts, "·")
}

// Unicode is like String but writes exponents as superscripts:
// "length·time⁻²".
func (v Vector) Unicode() string {
	if v.IsDimensionless() {
		return "1"
	}

	var sb strings.Builder
	for i, d := range v.Dimensions() {
		if i > 0 {
			sb.WriteString("·")
		}
		sb.WriteString(string(d))
		sb.WriteString(exponent.Superscript(v.exps[d]))
	}
	return sb.String()
}

// MarshalJSON encodes v as an object of exponents.
func (v Vector) MarshalJSON() ([]byte, error) {
	if v.exps == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(v.exps)
}

// UnmarshalJSON decodes an object of exponents, dropping zero entries.
func (v *Vector) UnmarshalJSON(data []byte) error {
	var m map[Dimension]int
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*v = Of(m)
	return nil
}
