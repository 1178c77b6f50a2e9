package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/hupe1980/unitgo"
	"github.com/hupe1980/unitgo/blobstore"
	minioblob "github.com/hupe1980/unitgo/blobstore/minio"
	s3blob "github.com/hupe1980/unitgo/blobstore/s3"
	"github.com/hupe1980/unitgo/catalog"
	"github.com/hupe1980/unitgo/codec"
	"github.com/spf13/viper"
)

const (
	// appName is used for the config file name and the config directory.
	appName = "unitconv"
	// envPrefix prefixes environment overrides, e.g. UNITCONV_LOG_LEVEL.
	envPrefix = "UNITCONV"
)

// Config is the resolved CLI configuration.
type Config struct {
	Definitions []string       `mapstructure:"definitions"`
	Log         LogConfig      `mapstructure:"log"`
	Store       StoreConfig    `mapstructure:"store"`
	Snapshot    SnapshotConfig `mapstructure:"snapshot"`
}

// LogConfig selects the log handler.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// StoreConfig selects the blob store used for snapshots.
type StoreConfig struct {
	Kind      string `mapstructure:"kind"`
	Path      string `mapstructure:"path"`
	Endpoint  string `mapstructure:"endpoint"`
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Prefix    string `mapstructure:"prefix"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Secure    bool   `mapstructure:"secure"`
}

// SnapshotConfig controls snapshot encoding and preloading.
type SnapshotConfig struct {
	Compression string   `mapstructure:"compression"`
	Codec       string   `mapstructure:"codec"`
	Preload     []string `mapstructure:"preload"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("definitions", []string{})
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
	v.SetDefault("store.kind", "local")
	v.SetDefault("store.path", "snapshots")
	v.SetDefault("store.secure", true)
	v.SetDefault("snapshot.compression", "zstd")
	v.SetDefault("snapshot.codec", codec.Default.Name())
	v.SetDefault("snapshot.preload", []string{})
}

// loadConfig reads the config file (if any) and environment overrides into v.
// cfgFile, when set, must exist. Otherwise unitconv.toml is searched in the
// working directory and the user config directory.
func loadConfig(v *viper.Viper, cfgFile string) (*Config, error) {
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(appName)
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, appName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

func newLogger(cfg LogConfig, w io.Writer) (*unitgo.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("log.level: %w", err)
	}

	switch strings.ToLower(cfg.Format) {
	case "", "text":
		return unitgo.NewTextLoggerTo(w, level), nil
	case "json":
		return unitgo.NewJSONLoggerTo(w, level), nil
	default:
		return nil, fmt.Errorf("log.format: unknown format %q", cfg.Format)
	}
}

func newStore(ctx context.Context, cfg StoreConfig) (blobstore.Store, error) {
	switch strings.ToLower(cfg.Kind) {
	case "", "none":
		return nil, nil
	case "memory":
		return blobstore.NewMemoryStore(), nil
	case "local":
		return blobstore.NewLocalStore(cfg.Path), nil
	case "minio":
		if cfg.Bucket == "" {
			return nil, errors.New("store.bucket is required for minio")
		}
		return minioblob.Dial(minioblob.Options{
			Endpoint:  cfg.Endpoint,
			AccessKey: cfg.AccessKey,
			SecretKey: cfg.SecretKey,
			Region:    cfg.Region,
			Secure:    cfg.Secure,
		}, cfg.Bucket, cfg.Prefix)
	case "s3":
		if cfg.Bucket == "" {
			return nil, errors.New("store.bucket is required for s3")
		}
		opts := []s3blob.Option{s3blob.WithPrefix(cfg.Prefix)}
		if cfg.Region != "" {
			opts = append(opts, s3blob.WithRegion(cfg.Region))
		}
		if cfg.Endpoint != "" {
			opts = append(opts, s3blob.WithEndpoint(cfg.Endpoint))
		}
		return s3blob.New(ctx, cfg.Bucket, opts...)
	default:
		return nil, fmt.Errorf("store.kind: unknown kind %q", cfg.Kind)
	}
}

// registryOptions translates cfg into registry options.
func registryOptions(ctx context.Context, cfg *Config, logger *unitgo.Logger) ([]unitgo.Option, error) {
	compression, err := catalog.ParseCompression(cfg.Snapshot.Compression)
	if err != nil {
		return nil, fmt.Errorf("snapshot.compression: %w", err)
	}

	c, ok := codec.ByName(cfg.Snapshot.Codec)
	if !ok {
		return nil, fmt.Errorf("snapshot.codec: unknown codec %q (want one of %s)", cfg.Snapshot.Codec, strings.Join(codec.Names(), ", "))
	}

	store, err := newStore(ctx, cfg.Store)
	if err != nil {
		return nil, err
	}

	opts := []unitgo.Option{
		unitgo.WithLogger(logger),
		unitgo.WithCodec(c),
		unitgo.WithCompression(compression),
	}
	if store != nil {
		opts = append(opts, unitgo.WithStore(store))
	}
	return opts, nil
}
