package unitgo

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/hupe1980/unitgo/measure"
)

// Entry is a named unit of a Registry.
type Entry struct {
	Name    string
	Unit    measure.Unit
	Builtin bool
}

// table is the unsynchronised name and symbol index behind a Registry.
// Bulk loads mutate a clone and swap it in on success.
type table struct {
	byName   map[string]Entry
	bySymbol map[string]string
}

func newTable(capacity int) *table {
	return &table{
		byName:   make(map[string]Entry, capacity),
		bySymbol: make(map[string]string, capacity),
	}
}

func (t *table) clone() *table {
	c := newTable(len(t.byName))
	for k, v := range t.byName {
		c.byName[k] = v
	}
	for k, v := range t.bySymbol {
		c.bySymbol[k] = v
	}
	return c
}

// lookup resolves key as a name first, then as a symbol.
func (t *table) lookup(key string) (Entry, bool) {
	if e, ok := t.byName[key]; ok {
		return e, true
	}
	if name, ok := t.bySymbol[key]; ok {
		return t.byName[name], true
	}
	return Entry{}, false
}

func validateName(name string) error {
	if name == "" || strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// define registers u under name. Redefining a name with an identical unit is
// a no-op and reports added == false.
func (t *table) define(name string, u measure.Unit, builtin bool) (added bool, err error) {
	if err := validateName(name); err != nil {
		return false, err
	}
	if u == nil {
		return false, fmt.Errorf("%w: unit %q is nil", ErrInvalidName, name)
	}

	one := u.One()
	symbol := one.Symbol()
	if symbol == "" {
		return false, fmt.Errorf("%w: unit %q has no symbol", ErrInvalidName, name)
	}

	if e, ok := t.byName[name]; ok {
		if e.Unit.One().Equal(one) {
			return false, nil
		}
		return false, fmt.Errorf("%w: name %q is already defined as %s", ErrDuplicateUnit, name, e.Unit.Symbol())
	}
	if owner, ok := t.bySymbol[symbol]; ok {
		return false, fmt.Errorf("%w: symbol %q is already used by %q", ErrDuplicateUnit, symbol, owner)
	}

	t.byName[name] = Entry{Name: name, Unit: u, Builtin: builtin}
	t.bySymbol[symbol] = name
	return true, nil
}

// entries returns the entries accepted by keep, sorted by name.
func (t *table) entries(keep func(Entry) bool) []Entry {
	out := make([]Entry, 0, len(t.byName))
	for _, e := range t.byName {
		if keep == nil || keep(e) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
