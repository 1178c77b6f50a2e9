package unitgo

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hupe1980/unitgo/catalog"
	"github.com/hupe1980/unitgo/codec"
	"github.com/hupe1980/unitgo/dimension"
	"github.com/hupe1980/unitgo/measure"
	"github.com/hupe1980/unitgo/units"
	"golang.org/x/sync/errgroup"
)

// Registry is a concurrency-safe catalogue of named units.
//
// Units are found by name or by symbol. A new Registry holds the SI catalogue
// from package units unless WithoutBuiltins is given.
type Registry struct {
	mu  sync.RWMutex
	tab *table

	opts    options
	logger  *Logger
	metrics MetricsCollector
}

// Conversion is a single request of ConvertBatch.
type Conversion struct {
	Value float64
	From  string
	To    string
}

// Quantity is a value given in a named unit.
type Quantity struct {
	Value float64
	Unit  string
}

// New creates a Registry.
func New(optFns ...Option) (*Registry, error) {
	o := options{
		codec:       codec.Default,
		compression: catalog.CompressionZSTD,
		builtins:    true,
	}
	for _, fn := range optFns {
		fn(&o)
	}

	if o.logger == nil {
		o.logger = NoopLogger()
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.concurrency <= 0 {
		o.concurrency = runtime.GOMAXPROCS(0)
	}

	r := &Registry{
		tab:     newTable(0),
		opts:    o,
		logger:  o.logger,
		metrics: o.metricsCollector,
	}

	if o.builtins {
		builtin := units.Builtin()
		r.tab = newTable(len(builtin))
		for _, e := range builtin {
			if _, err := r.tab.define(e.Name, e.Unit, true); err != nil {
				return nil, fmt.Errorf("seed builtin units: %w", err)
			}
		}
	}

	return r, nil
}

// Define registers u under name. Its symbol becomes an alias for lookups.
//
// Redefining a name with an identical unit succeeds without effect. A name or
// symbol that is taken by another unit yields ErrDuplicateUnit.
func (r *Registry) Define(name string, u measure.Unit) error {
	r.mu.Lock()
	_, err := r.tab.define(name, u, false)
	r.mu.Unlock()

	symbol := ""
	if u != nil {
		symbol = u.Symbol()
	}
	r.logger.LogDefine(context.Background(), name, symbol, err)
	r.metrics.RecordDefine(err)
	return err
}

// DefineBase introduces a new base dimension d together with its base unit.
func (r *Registry) DefineBase(d dimension.Dimension, name, symbol string) (measure.Unit, error) {
	if strings.TrimSpace(string(d)) == "" {
		return nil, fmt.Errorf("%w: empty dimension for unit %q", ErrInvalidName, name)
	}

	u := measure.BaseUnit(d, symbol)
	if err := r.Define(name, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Lookup returns the unit registered under nameOrSymbol.
func (r *Registry) Lookup(nameOrSymbol string) (measure.Unit, error) {
	e, err := r.LookupEntry(nameOrSymbol)
	if err != nil {
		return nil, err
	}
	return e.Unit, nil
}

// LookupEntry is like Lookup but returns the full entry.
func (r *Registry) LookupEntry(nameOrSymbol string) (Entry, error) {
	r.mu.RLock()
	e, ok := r.tab.lookup(nameOrSymbol)
	r.mu.RUnlock()

	r.metrics.RecordLookup(ok)
	if !ok {
		return Entry{}, &ErrUnknownUnit{Name: nameOrSymbol}
	}
	return e, nil
}

// Convert expresses value, given in unit from, in unit to.
func (r *Registry) Convert(value float64, from, to string) (measure.Measurement, error) {
	start := time.Now()

	m, err := r.convert(value, from, to)

	r.metrics.RecordConvert(time.Since(start), err)
	r.logger.LogConvert(context.Background(), value, from, to, err)
	return m, err
}

func (r *Registry) convert(value float64, from, to string) (measure.Measurement, error) {
	fu, err := r.Lookup(from)
	if err != nil {
		return measure.Measurement{}, err
	}
	tu, err := r.Lookup(to)
	if err != nil {
		return measure.Measurement{}, err
	}

	m, err := fu(value).Into(tu)
	if err != nil {
		return measure.Measurement{}, translateError(err, from, to)
	}
	return m, nil
}

// Sum adds terms and expresses the total in unit to. Every term must have
// the dimension of to, otherwise *ErrDimensionMismatch is returned. The sum
// of no terms is zero.
func (r *Registry) Sum(to string, terms ...Quantity) (measure.Measurement, error) {
	start := time.Now()

	m, err := r.sum(to, terms)

	r.metrics.RecordConvert(time.Since(start), err)
	r.logger.LogSum(context.Background(), len(terms), to, err)
	return m, err
}

func (r *Registry) sum(to string, terms []Quantity) (measure.Measurement, error) {
	tu, err := r.Lookup(to)
	if err != nil {
		return measure.Measurement{}, err
	}

	total := tu(0)
	for i, q := range terms {
		u, err := r.Lookup(q.Unit)
		if err != nil {
			return measure.Measurement{}, fmt.Errorf("term %d: %w", i, err)
		}
		next, err := total.Plus(u(q.Value))
		if err == nil {
			// Plus answers in the term's unit.
			next, err = next.Into(tu)
		}
		if err != nil {
			return measure.Measurement{}, fmt.Errorf("term %d: %w", i, translateError(err, q.Unit, to))
		}
		total = next
	}
	return total, nil
}

// ConvertBatch runs the conversions concurrently and returns the results in
// input order. The first failure cancels the remaining work and is returned.
func (r *Registry) ConvertBatch(ctx context.Context, convs []Conversion) ([]measure.Measurement, error) {
	start := time.Now()
	results := make([]measure.Measurement, len(convs))

	var failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.concurrency)

	for i, c := range convs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			m, err := r.Convert(c.Value, c.From, c.To)
			if err != nil {
				failed.Add(1)
				return fmt.Errorf("conversion %d: %w", i, err)
			}
			results[i] = m
			return nil
		})
	}

	err := g.Wait()

	r.metrics.RecordBatchConvert(len(convs), int(failed.Load()), time.Since(start))
	r.logger.LogBatchConvert(ctx, len(convs), err)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// Units returns every entry sorted by name.
func (r *Registry) Units() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tab.entries(nil)
}

// UnitsOf returns the entries whose dimension equals dim, sorted by name.
func (r *Registry) UnitsOf(dim dimension.Vector) []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tab.entries(func(e Entry) bool {
		return e.Unit.Dimension().Equal(dim)
	})
}

// Len returns the number of registered units.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tab.byName)
}

// LoadDefinitions reads TOML unit definitions from rd and registers them in
// file order: base dimensions first, then derived units. Either all
// definitions are registered or none. It returns the number of new units.
func (r *Registry) LoadDefinitions(rd io.Reader) (int, error) {
	f, err := catalog.ParseDefinitions(rd)
	if err != nil {
		r.logger.LogDefinitions(context.Background(), "reader", 0, err)
		return 0, err
	}
	return r.applyDefinitions(f, "reader")
}

// LoadDefinitionsFile is LoadDefinitions for the file at path.
func (r *Registry) LoadDefinitionsFile(path string) (int, error) {
	f, err := catalog.ParseDefinitionsFile(path)
	if err != nil {
		r.logger.LogDefinitions(context.Background(), path, 0, err)
		return 0, err
	}
	return r.applyDefinitions(f, path)
}

func (r *Registry) applyDefinitions(f *catalog.File, source string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := r.tab.clone()
	defined := 0

	define := func(name string, u measure.Unit) error {
		added, err := next.define(name, u, false)
		if err != nil {
			return fmt.Errorf("definition %q: %w", name, err)
		}
		if added {
			defined++
		}
		return nil
	}

	lookup := func(name string) (measure.Unit, error) {
		e, ok := next.lookup(name)
		if !ok {
			return nil, &ErrUnknownUnit{Name: name}
		}
		return e.Unit, nil
	}

	err := func() error {
		for _, d := range f.Dimensions {
			if err := define(d.Unit, measure.BaseUnit(d.Dimension(), d.Symbol)); err != nil {
				return err
			}
		}
		for _, d := range f.Units {
			u, err := catalog.Resolve(d, lookup)
			if err != nil {
				return err
			}
			if err := define(d.Name, u); err != nil {
				return err
			}
		}
		return nil
	}()

	r.logger.LogDefinitions(context.Background(), source, defined, err)
	if err != nil {
		return 0, err
	}

	r.tab = next
	return defined, nil
}
