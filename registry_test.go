package unitgo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/hupe1980/unitgo/blobstore"
	"github.com/hupe1980/unitgo/catalog"
	"github.com/hupe1980/unitgo/codec"
	"github.com/hupe1980/unitgo/dimension"
	"github.com/hupe1980/unitgo/measure"
	"github.com/hupe1980/unitgo/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const informationDefinitions = `
[[dimension]]
name = "information"
unit = "bit"
symbol = "bit"

[[unit]]
name = "byte"
symbol = "B"
of = "bit"
factor = 8

[[unit]]
name = "kilobyte"
prefix = "k"
of = "byte"
factor = 1000

[[unit]]
name = "bit_per_second"
symbol = "bps"
of = "bit"
per = ["second"]
`

func newTestRegistry(t *testing.T, optFns ...Option) *Registry {
	t.Helper()
	reg, err := New(optFns...)
	require.NoError(t, err)
	return reg
}

func TestNew(t *testing.T) {
	t.Run("Builtins", func(t *testing.T) {
		reg := newTestRegistry(t)
		assert.Equal(t, len(units.Builtin()), reg.Len())

		byName, err := reg.Lookup("kilometer")
		require.NoError(t, err)
		bySymbol, err := reg.Lookup("km")
		require.NoError(t, err)
		assert.True(t, byName.One().Equal(bySymbol.One()))

		e, err := reg.LookupEntry("s")
		require.NoError(t, err)
		assert.Equal(t, "second", e.Name)
		assert.True(t, e.Builtin)
	})

	t.Run("WithoutBuiltins", func(t *testing.T) {
		reg := newTestRegistry(t, WithoutBuiltins())
		assert.Zero(t, reg.Len())
		assert.Empty(t, reg.Units())
	})
}

func TestRegistry_Define(t *testing.T) {
	reg := newTestRegistry(t)
	furlong := units.Meter(201.168).Named("fur")

	require.NoError(t, reg.Define("furlong", furlong))
	// Identical redefinition is a no-op.
	require.NoError(t, reg.Define("furlong", units.Meter(201.168).Named("fur")))

	e, err := reg.LookupEntry("fur")
	require.NoError(t, err)
	assert.Equal(t, "furlong", e.Name)
	assert.False(t, e.Builtin)

	tests := []struct {
		name    string
		defName string
		unit    measure.Unit
		target  error
	}{
		{"NameTaken", "furlong", units.Meter(200).Named("fur"), ErrDuplicateUnit},
		{"SymbolTaken", "metre", units.Meter(1).Named("m"), ErrDuplicateUnit},
		{"BuiltinName", "meter", units.Meter(2).Named("m2"), ErrDuplicateUnit},
		{"EmptyName", "", units.Meter(1).Named("x"), ErrInvalidName},
		{"Whitespace", "two words", units.Meter(1).Named("x"), ErrInvalidName},
		{"EmptySymbol", "nothing", units.Meter(1).Pow(0).Named(""), ErrInvalidName},
		{"NilUnit", "nil", nil, ErrInvalidName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := reg.Define(tt.defName, tt.unit)
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestRegistry_DefineBase(t *testing.T) {
	reg := newTestRegistry(t)

	bit, err := reg.DefineBase("information", "bit", "bit")
	require.NoError(t, err)
	assert.Equal(t, 1, bit.Dimension().Exponent("information"))

	got, err := reg.Lookup("bit")
	require.NoError(t, err)
	assert.True(t, bit.One().Equal(got.One()))

	_, err = reg.DefineBase("", "nothing", "n0")
	assert.ErrorIs(t, err, ErrInvalidName)

	_, err = reg.DefineBase("information", "other_bit", "bit")
	assert.ErrorIs(t, err, ErrDuplicateUnit)
}

func TestRegistry_Lookup_Unknown(t *testing.T) {
	reg := newTestRegistry(t)

	_, err := reg.Lookup("parsec")
	var unknown *ErrUnknownUnit
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "parsec", unknown.Name)
	assert.Equal(t, `unknown unit "parsec"`, err.Error())
}

func TestRegistry_Convert(t *testing.T) {
	reg := newTestRegistry(t)

	tests := []struct {
		value    float64
		from, to string
		expected float64
		symbol   string
	}{
		{2.3, "kilometer", "m", 2300, "m"},
		{1, "day", "second", 86400, "s"},
		{2, "h", "min", 120, "min"},
		{1500, "g", "kg", 1.5, "kg"},
		{180, "degree", "rad", 3.141592653589793, "rad"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s->%s", tt.from, tt.to), func(t *testing.T) {
			m, err := reg.Convert(tt.value, tt.from, tt.to)
			require.NoError(t, err)
			assert.InEpsilon(t, tt.expected, m.Magnitude(), 1e-12)
			assert.Equal(t, tt.symbol, m.Symbol())
		})
	}

	t.Run("Incompatible", func(t *testing.T) {
		_, err := reg.Convert(1, "meter", "second")
		var iu *ErrIncompatibleUnit
		require.True(t, errors.As(err, &iu))
		assert.Equal(t, "meter", iu.From)
		assert.Equal(t, "second", iu.To)
		assert.ErrorIs(t, err, measure.ErrIncompatible)
	})

	t.Run("UnknownFrom", func(t *testing.T) {
		_, err := reg.Convert(1, "parsec", "m")
		var unknown *ErrUnknownUnit
		require.True(t, errors.As(err, &unknown))
		assert.Equal(t, "parsec", unknown.Name)
	})

	t.Run("UnknownTo", func(t *testing.T) {
		_, err := reg.Convert(1, "m", "parsec")
		var unknown *ErrUnknownUnit
		assert.True(t, errors.As(err, &unknown))
	})
}

func TestRegistry_Sum(t *testing.T) {
	reg := newTestRegistry(t)

	t.Run("MixedUnits", func(t *testing.T) {
		m, err := reg.Sum("m", Quantity{1, "km"}, Quantity{500, "meter"}, Quantity{20, "cm"})
		require.NoError(t, err)
		assert.Equal(t, "m", m.Symbol())
		assert.InEpsilon(t, 1500.2, m.Magnitude(), 1e-12)
	})

	t.Run("Empty", func(t *testing.T) {
		m, err := reg.Sum("h")
		require.NoError(t, err)
		assert.True(t, m.Equal(units.Hour(0)))
	})

	t.Run("DimensionMismatch", func(t *testing.T) {
		_, err := reg.Sum("m", Quantity{1, "km"}, Quantity{2, "s"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "term 1")

		var dm *ErrDimensionMismatch
		require.True(t, errors.As(err, &dm))
		assert.Equal(t, "plus", dm.Op)
		assert.True(t, dm.Expected.Equal(units.Meter.Dimension()))
		assert.True(t, dm.Actual.Equal(units.Second.Dimension()))
		assert.ErrorIs(t, err, measure.ErrMismatch)
	})

	t.Run("UnknownTerm", func(t *testing.T) {
		_, err := reg.Sum("m", Quantity{1, "parsec"})
		var uu *ErrUnknownUnit
		require.True(t, errors.As(err, &uu))
		assert.Equal(t, "parsec", uu.Name)
	})

	t.Run("UnknownTarget", func(t *testing.T) {
		_, err := reg.Sum("parsec", Quantity{1, "m"})
		var uu *ErrUnknownUnit
		assert.True(t, errors.As(err, &uu))
	})
}

func TestRegistry_ConvertBatch(t *testing.T) {
	reg := newTestRegistry(t, WithConcurrency(2))
	ctx := context.Background()

	t.Run("Order", func(t *testing.T) {
		convs := make([]Conversion, 0, 50)
		for i := range 50 {
			convs = append(convs, Conversion{Value: float64(i), From: "kilometer", To: "meter"})
		}

		results, err := reg.ConvertBatch(ctx, convs)
		require.NoError(t, err)
		require.Len(t, results, len(convs))
		for i, m := range results {
			assert.Equal(t, float64(i)*1000, m.Magnitude())
			assert.Equal(t, "m", m.Symbol())
		}
	})

	t.Run("FirstError", func(t *testing.T) {
		convs := []Conversion{
			{Value: 1, From: "m", To: "km"},
			{Value: 1, From: "m", To: "s"},
			{Value: 1, From: "h", To: "s"},
		}

		results, err := reg.ConvertBatch(ctx, convs)
		require.Error(t, err)
		assert.Nil(t, results)
		assert.Contains(t, err.Error(), "conversion 1")

		var iu *ErrIncompatibleUnit
		assert.True(t, errors.As(err, &iu))
	})

	t.Run("Canceled", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := reg.ConvertBatch(cctx, []Conversion{{Value: 1, From: "m", To: "km"}})
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Empty", func(t *testing.T) {
		results, err := reg.ConvertBatch(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestRegistry_Units(t *testing.T) {
	reg := newTestRegistry(t)

	all := reg.Units()
	require.Len(t, all, reg.Len())
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].Name, all[i].Name)
	}

	length := reg.UnitsOf(units.Meter.Dimension())
	names := make([]string, 0, len(length))
	for _, e := range length {
		assert.True(t, e.Unit.Dimension().Equal(dimension.Singleton(units.Length)), e.Name)
		names = append(names, e.Name)
	}
	assert.Contains(t, names, "meter")
	assert.Contains(t, names, "kilometer")
	assert.Contains(t, names, "astronomical_unit")
	assert.NotContains(t, names, "second")
}

func TestRegistry_LoadDefinitions(t *testing.T) {
	reg := newTestRegistry(t)

	n, err := reg.LoadDefinitions(strings.NewReader(informationDefinitions))
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	m, err := reg.Convert(1, "kilobyte", "bit")
	require.NoError(t, err)
	assert.Equal(t, 8000.0, m.Magnitude())

	kb, err := reg.Lookup("kB")
	require.NoError(t, err)
	assert.Equal(t, "kB", kb.Symbol())

	bps, err := reg.Lookup("bps")
	require.NoError(t, err)
	assert.Equal(t, -1, bps.Dimension().Exponent(units.Time))

	// Reloading the same definitions adds nothing.
	n, err = reg.LoadDefinitions(strings.NewReader(informationDefinitions))
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRegistry_LoadDefinitions_Atomic(t *testing.T) {
	reg := newTestRegistry(t)
	before := reg.Len()

	t.Run("UnknownReference", func(t *testing.T) {
		src := `
[[unit]]
name = "furlong"
symbol = "fur"
of = "meter"
factor = 201.168

[[unit]]
name = "light_year"
symbol = "ly"
of = "parsec"
factor = 0.3066
`
		_, err := reg.LoadDefinitions(strings.NewReader(src))
		require.Error(t, err)
		assert.ErrorIs(t, err, catalog.ErrInvalidDefinition)

		var unknown *ErrUnknownUnit
		require.True(t, errors.As(err, &unknown))
		assert.Equal(t, "parsec", unknown.Name)

		assert.Equal(t, before, reg.Len())
		_, err = reg.Lookup("furlong")
		assert.Error(t, err)
	})

	t.Run("Conflict", func(t *testing.T) {
		src := `
[[unit]]
name = "furlong"
symbol = "fur"
of = "meter"
factor = 201.168

[[unit]]
name = "metre"
symbol = "m"
of = "meter"
`
		_, err := reg.LoadDefinitions(strings.NewReader(src))
		assert.ErrorIs(t, err, ErrDuplicateUnit)
		assert.Equal(t, before, reg.Len())
	})

	t.Run("Syntax", func(t *testing.T) {
		_, err := reg.LoadDefinitions(strings.NewReader("[[unit]\n"))
		assert.Error(t, err)
		assert.Equal(t, before, reg.Len())
	})
}

func TestRegistry_LoadDefinitionsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "information.toml")
	require.NoError(t, os.WriteFile(path, []byte(informationDefinitions), 0o600))

	reg := newTestRegistry(t)
	n, err := reg.LoadDefinitionsFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	_, err = reg.LoadDefinitionsFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRegistry_SaveLoad(t *testing.T) {
	ctx := context.Background()

	for _, c := range []codec.Codec{codec.JSON{}, codec.GoJSON{}} {
		for _, comp := range []catalog.Compression{catalog.CompressionNone, catalog.CompressionLZ4, catalog.CompressionZSTD} {
			t.Run(c.Name()+"/"+comp.String(), func(t *testing.T) {
				store := blobstore.NewMemoryStore()

				src := newTestRegistry(t, WithStore(store), WithCodec(c), WithCompression(comp))
				_, err := src.LoadDefinitions(strings.NewReader(informationDefinitions))
				require.NoError(t, err)
				require.NoError(t, src.Define("furlong", units.Meter(201.168).Named("fur")))
				require.NoError(t, src.Save(ctx, "custom.snap"))

				dst := newTestRegistry(t, WithStore(store))
				n, err := dst.Load(ctx, "custom.snap")
				require.NoError(t, err)
				assert.Equal(t, 5, n)
				assert.Equal(t, src.Len(), dst.Len())

				m, err := dst.Convert(2, "kB", "bit")
				require.NoError(t, err)
				assert.Equal(t, 16000.0, m.Magnitude())

				// Loading again is idempotent.
				n, err = dst.Load(ctx, "custom.snap")
				require.NoError(t, err)
				assert.Zero(t, n)
			})
		}
	}
}

func TestRegistry_SaveLoad_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("NoStore", func(t *testing.T) {
		reg := newTestRegistry(t)
		assert.ErrorIs(t, reg.Save(ctx, "x.snap"), ErrNoStore)

		_, err := reg.Load(ctx, "x.snap")
		assert.ErrorIs(t, err, ErrNoStore)

		_, err = reg.Snapshots(ctx, "")
		assert.ErrorIs(t, err, ErrNoStore)
	})

	t.Run("NotFound", func(t *testing.T) {
		reg := newTestRegistry(t, WithStore(blobstore.NewMemoryStore()))
		_, err := reg.Load(ctx, "missing.snap")
		assert.ErrorIs(t, err, ErrSnapshotNotFound)
		assert.ErrorIs(t, err, blobstore.ErrNotFound)
	})

	t.Run("Corrupt", func(t *testing.T) {
		store := blobstore.NewMemoryStore()
		require.NoError(t, store.Put(ctx, "bad.snap", []byte("garbage")))

		reg := newTestRegistry(t, WithStore(store))
		_, err := reg.Load(ctx, "bad.snap")
		assert.ErrorIs(t, err, catalog.ErrBadMagic)
	})

	t.Run("Conflict", func(t *testing.T) {
		store := blobstore.NewMemoryStore()

		src := newTestRegistry(t, WithStore(store))
		require.NoError(t, src.Define("furlong", units.Meter(201.168).Named("fur")))
		require.NoError(t, src.Define("league", units.Meter(4828.032).Named("lea")))
		require.NoError(t, src.Save(ctx, "custom.snap"))

		dst := newTestRegistry(t, WithStore(store))
		require.NoError(t, dst.Define("furlong", units.Meter(200).Named("fur")))
		before := dst.Len()

		_, err := dst.Load(ctx, "custom.snap")
		assert.ErrorIs(t, err, ErrDuplicateUnit)
		assert.Equal(t, before, dst.Len())
		_, err = dst.Lookup("league")
		assert.Error(t, err)
	})

	t.Run("Snapshots", func(t *testing.T) {
		reg := newTestRegistry(t, WithStore(blobstore.NewMemoryStore()))
		require.NoError(t, reg.Save(ctx, "snapshots/a.snap"))
		require.NoError(t, reg.Save(ctx, "snapshots/b.snap"))

		names, err := reg.Snapshots(ctx, "snapshots/")
		require.NoError(t, err)
		assert.Equal(t, []string{"snapshots/a.snap", "snapshots/b.snap"}, names)
	})
}

func TestRegistry_Metrics(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	reg := newTestRegistry(t, WithMetricsCollector(metrics), WithStore(blobstore.NewMemoryStore()))

	_, _ = reg.Convert(1, "km", "m")
	_, _ = reg.Convert(1, "km", "s")
	_, _ = reg.Lookup("parsec")
	_ = reg.Define("furlong", units.Meter(201.168).Named("fur"))
	_ = reg.Define("", units.Meter(1).Named("x"))
	_, _ = reg.ConvertBatch(context.Background(), []Conversion{{1, "m", "km"}, {2, "m", "km"}})
	require.NoError(t, reg.Save(context.Background(), "a.snap"))

	stats := metrics.GetStats()
	assert.Equal(t, int64(4), stats.ConvertCount)
	assert.Equal(t, int64(1), stats.ConvertErrors)
	assert.Equal(t, int64(1), stats.LookupMisses)
	assert.Equal(t, int64(8), stats.LookupHits)
	assert.Equal(t, int64(2), stats.DefineCount)
	assert.Equal(t, int64(1), stats.DefineErrors)
	assert.Equal(t, int64(1), stats.BatchConvertCount)
	assert.Equal(t, int64(2), stats.BatchConvertItems)
	assert.Equal(t, int64(1), stats.SnapshotCount)
	assert.Positive(t, stats.SnapshotBytes)
}

func TestRegistry_Logging(t *testing.T) {
	var buf bytes.Buffer
	reg := newTestRegistry(t, WithLogger(NewJSONLoggerTo(&buf, -4)))

	_, err := reg.Convert(1, "km", "m")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"msg":"convert completed"`)
	assert.Contains(t, buf.String(), `"from":"km"`)

	buf.Reset()
	_, err = reg.Convert(1, "km", "s")
	require.Error(t, err)
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
	assert.Contains(t, buf.String(), `"msg":"convert failed"`)
}

func TestRegistry_Concurrent(t *testing.T) {
	reg := newTestRegistry(t)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = reg.Define(fmt.Sprintf("unit_%d", i), units.Meter(float64(i+2)).Named(fmt.Sprintf("u%d", i)))
		}(i)
		go func() {
			defer wg.Done()
			_, _ = reg.Convert(1, "km", "m")
			_ = reg.Units()
		}()
	}
	wg.Wait()

	assert.Equal(t, len(units.Builtin())+8, reg.Len())
}

func TestTranslateError(t *testing.T) {
	assert.NoError(t, translateError(nil, "", ""))

	other := errors.New("boom")
	assert.Equal(t, other, translateError(other, "a", "b"))

	_, err := units.Joule(1).Plus(units.Newton(1))
	var dm *ErrDimensionMismatch
	require.True(t, errors.As(translateError(err, "", ""), &dm))
	assert.Equal(t, "plus", dm.Op)
	assert.ErrorIs(t, translateError(err, "", ""), measure.ErrMismatch)
}
