package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hupe1980/unitgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const furlongDefinitions = `
[[unit]]
name = "furlong"
symbol = "fur"
of = "meter"
factor = 201.168
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"KilometerToMeter", []string{"convert", "2.3", "kilometer", "m"}, "2300 m\n"},
		{"MinuteToHour", []string{"convert", "90", "min", "h"}, "1.5 h\n"},
		{"DayToSecond", []string{"convert", "1", "day", "second"}, "86400 s\n"},
		{"DimensionStyle", []string{"convert", "1", "km", "m", "--style", "dimension"}, "1000 length\n"},
		{"UnicodeStyle", []string{"convert", "2", "hertz", "Hz", "--style", "unicode"}, "2 time⁻¹\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestConvert_JSON(t *testing.T) {
	out, err := execute(t, "convert", "2.3", "km", "m", "-o", "json")
	require.NoError(t, err)

	var got struct {
		Value  float64 `json:"value"`
		From   string  `json:"from"`
		To     string  `json:"to"`
		Result struct {
			Symbol    string         `json:"symbol"`
			Magnitude float64        `json:"magnitude"`
			Dimension map[string]int `json:"dimension"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 2.3, got.Value)
	assert.Equal(t, "km", got.From)
	assert.Equal(t, "m", got.Result.Symbol)
	assert.Equal(t, 2300.0, got.Result.Magnitude)
	assert.Equal(t, map[string]int{"length": 1}, got.Result.Dimension)
}

func TestConvert_Errors(t *testing.T) {
	_, err := execute(t, "convert", "abc", "m", "km")
	assert.ErrorContains(t, err, "invalid value")

	_, err = execute(t, "convert", "1", "m", "s")
	var iu *unitgo.ErrIncompatibleUnit
	assert.True(t, errors.As(err, &iu))

	_, err = execute(t, "convert", "1", "parsec", "m")
	var unknown *unitgo.ErrUnknownUnit
	assert.True(t, errors.As(err, &unknown))

	_, err = execute(t, "convert", "1", "m", "km", "-o", "xml")
	assert.ErrorContains(t, err, "unknown output format")

	_, err = execute(t, "convert", "1", "m")
	assert.Error(t, err)
}

func TestSum(t *testing.T) {
	out, err := execute(t, "sum", "h", "90", "min", "1", "day")
	require.NoError(t, err)
	assert.Equal(t, "25.5 h\n", out)

	out, err = execute(t, "sum", "m", "1", "km", "--style", "dimension")
	require.NoError(t, err)
	assert.Equal(t, "1000 length\n", out)

	_, err = execute(t, "sum", "m", "1", "km", "2", "s")
	var dm *unitgo.ErrDimensionMismatch
	assert.True(t, errors.As(err, &dm))

	_, err = execute(t, "sum", "m", "1")
	assert.ErrorContains(t, err, "VALUE UNIT pairs")

	_, err = execute(t, "sum", "m", "x", "km")
	assert.ErrorContains(t, err, "invalid value")
}

func TestList(t *testing.T) {
	out, err := execute(t, "list", "--dimension", "length")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "NAME"))
	assert.Contains(t, out, "kilometer")
	assert.Contains(t, out, "astronomical_unit")
	assert.NotContains(t, out, "second")

	out, err = execute(t, "list", "--like", "N")
	require.NoError(t, err)
	assert.Contains(t, out, "newton")
	assert.Contains(t, out, "kilonewton")
	assert.NotContains(t, out, "joule")

	defs := writeFile(t, "furlong.toml", furlongDefinitions)
	out, err = execute(t, "list", "--user", "--definitions", defs)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "furlong")

	_, err = execute(t, "list", "--dimension", "length", "--like", "m")
	assert.Error(t, err)
}

func TestShow(t *testing.T) {
	out, err := execute(t, "show", "km")
	require.NoError(t, err)
	assert.Contains(t, out, "kilometer")
	assert.Contains(t, out, "1000")
	assert.Contains(t, out, "length")
	assert.Contains(t, out, "true")

	defs := writeFile(t, "furlong.toml", furlongDefinitions)
	out, err = execute(t, "show", "fur", "--definitions", defs)
	require.NoError(t, err)
	assert.Contains(t, out, "201.168")
	assert.Contains(t, out, "false")

	_, err = execute(t, "show", "parsec")
	assert.Error(t, err)
}

func TestSnapshot(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, "unitconv.toml", fmt.Sprintf(`
[store]
kind = "local"
path = '%s'

[snapshot]
compression = "lz4"
`, dir))
	defs := writeFile(t, "furlong.toml", furlongDefinitions)

	out, err := execute(t, "snapshot", "save", "custom.snap", "--config", cfg, "--definitions", defs)
	require.NoError(t, err)
	assert.Equal(t, "saved 1 units to custom.snap\n", out)
	assert.FileExists(t, filepath.Join(dir, "custom.snap"))

	out, err = execute(t, "snapshot", "list", "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "custom.snap\n", out)

	out, err = execute(t, "snapshot", "load", "custom.snap", "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "loaded 1 units from custom.snap\n", out)

	out, err = execute(t, "convert", "1", "fur", "m", "--config", cfg, "--snapshot", "custom.snap")
	require.NoError(t, err)
	assert.Equal(t, "201.168 m\n", out)

	_, err = execute(t, "snapshot", "load", "missing.snap", "--config", cfg)
	assert.ErrorIs(t, err, unitgo.ErrSnapshotNotFound)
}

func TestConfig(t *testing.T) {
	t.Run("MissingFile", func(t *testing.T) {
		_, err := execute(t, "convert", "1", "m", "km", "--config", filepath.Join(t.TempDir(), "nope.toml"))
		assert.ErrorContains(t, err, "read config")
	})

	t.Run("EnvOverride", func(t *testing.T) {
		t.Setenv("UNITCONV_LOG_FORMAT", "xml")
		_, err := execute(t, "convert", "1", "m", "km")
		assert.ErrorContains(t, err, "log.format")
	})

	t.Run("BadCompression", func(t *testing.T) {
		cfg := writeFile(t, "unitconv.toml", "[snapshot]\ncompression = \"brotli\"\n")
		_, err := execute(t, "convert", "1", "m", "km", "--config", cfg)
		assert.ErrorContains(t, err, "snapshot.compression")
	})

	t.Run("BadCodec", func(t *testing.T) {
		t.Setenv("UNITCONV_SNAPSHOT_CODEC", "msgpack")
		_, err := execute(t, "convert", "1", "m", "km")
		assert.ErrorContains(t, err, "snapshot.codec")
		assert.ErrorContains(t, err, "go-json, json")
	})

	t.Run("UnknownStore", func(t *testing.T) {
		cfg := writeFile(t, "unitconv.toml", "[store]\nkind = \"ftp\"\n")
		_, err := execute(t, "convert", "1", "m", "km", "--config", cfg)
		assert.ErrorContains(t, err, "store.kind")
	})

	t.Run("MinioNeedsBucket", func(t *testing.T) {
		cfg := writeFile(t, "unitconv.toml", "[store]\nkind = \"minio\"\nendpoint = \"localhost:9000\"\n")
		_, err := execute(t, "convert", "1", "m", "km", "--config", cfg)
		assert.ErrorContains(t, err, "store.bucket")
	})

	t.Run("LogLevel", func(t *testing.T) {
		_, err := execute(t, "convert", "1", "m", "km", "--log-level", "loud")
		assert.ErrorContains(t, err, "log.level")
	})
}
