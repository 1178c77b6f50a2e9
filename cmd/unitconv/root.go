package main

import (
	"io"

	"github.com/hupe1980/unitgo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	stdout  io.Writer
	stderr  io.Writer

	cfg *Config
	reg *unitgo.Registry
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		v:      viper.New(),
		stdout: stdout,
		stderr: stderr,
	}

	root := &cobra.Command{
		Use:   appName,
		Short: "Convert between units of measurement",
		Long: `unitconv converts values between units of measurement with full
dimensional checking. Units are looked up by name ("kilometer") or
symbol ("km"). Additional units can be defined in TOML files and
saved to or loaded from snapshots in local, MinIO or S3 storage.

Examples:
  unitconv convert 2.3 kilometer m
  unitconv convert 90 min h --output json
  unitconv list --dimension length
  unitconv show kWh --definitions energy.toml
  unitconv snapshot save custom.snap --definitions energy.toml`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is ./unitconv.toml or $XDG_CONFIG_HOME/unitconv/unitconv.toml)")
	flags.StringSlice("definitions", nil, "TOML unit definitions to load (repeatable)")
	flags.StringSlice("snapshot", nil, "snapshot to load from the store before running (repeatable)")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.String("log-format", "text", "log format (text, json)")

	_ = a.v.BindPFlag("definitions", flags.Lookup("definitions"))
	_ = a.v.BindPFlag("snapshot.preload", flags.Lookup("snapshot"))
	_ = a.v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("log.format", flags.Lookup("log-format"))

	root.AddCommand(
		newConvertCmd(a),
		newListCmd(a),
		newShowCmd(a),
		newSumCmd(a),
		newSnapshotCmd(a),
	)
	return root
}

// setup loads the configuration and builds the registry, including
// definitions and preloaded snapshots.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := newLogger(cfg.Log, a.stderr)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	opts, err := registryOptions(ctx, cfg, logger)
	if err != nil {
		return err
	}

	reg, err := unitgo.New(opts...)
	if err != nil {
		return err
	}

	for _, path := range cfg.Definitions {
		if _, err := reg.LoadDefinitionsFile(path); err != nil {
			return err
		}
	}
	for _, name := range cfg.Snapshot.Preload {
		if _, err := reg.Load(ctx, name); err != nil {
			return err
		}
	}

	a.reg = reg
	return nil
}
