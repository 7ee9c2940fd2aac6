// cmd/handlegen/main.go
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"halhandles-go/config"
	"halhandles-go/handles"
)

const usage = `Usage: handlegen [flags] <command> [args]

Commands:
  handle  <index> <type> [version]   generic resource handle
  versioned <index> <type>           handle at the type's current generation
  reset                              advance every type's generation
  port    <channel> <module>         port handle
  spi     <channel>                  SPI port handle
  rawport <base> <channel> <module>  port composition on an explicit base
  rawspi  <base> <channel>           SPI composition on an explicit base
  types                              list named handle types

With -batch, commands are read from stdin, one per line.
`

func main() {
	var (
		profile  = flag.String("profile", "default", "embedded config profile")
		cfgPath  = flag.String("config", "", "TOML config file (overrides -profile)")
		layout   = flag.String("layout", "", "port layout: unshifted|shifted")
		format   = flag.String("format", "", "output format: dec|hex|both")
		logLevel = flag.String("log-level", "", "log level: debug|info|warn|error")
		batch    = flag.Bool("batch", false, "read commands from stdin")
	)
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := loadConfig(*profile, *cfgPath, overrides{
		Layout:   *layout,
		Format:   *format,
		LogLevel: *logLevel,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	log, err := newLogger(cfg.Level())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	defer func() { _ = log.Sync() }()
	handles.SetLogger(log.Named("handles"))

	enc, err := newEncoder(cfg, os.Stdout, log)
	if err != nil {
		log.Error("encoder setup failed", zap.Error(err))
		os.Exit(2)
	}

	if *batch {
		if failed := enc.runBatch(os.Stdin); failed > 0 {
			log.Warn("batch finished with failures", zap.Int("failed", failed))
			os.Exit(1)
		}
		return
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	if err := enc.exec(flag.Args()); err != nil {
		log.Error("command failed", zap.Strings("args", flag.Args()), zap.Error(err))
		os.Exit(1)
	}
}

type overrides struct {
	Layout   string
	Format   string
	LogLevel string
}

func loadConfig(profile, path string, ov overrides) (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.Profile(profile)
	}
	if err != nil {
		return config.Config{}, err
	}
	if ov.Layout != "" {
		cfg.Layout = ov.Layout
	}
	if ov.Format != "" {
		cfg.Format = ov.Format
	}
	if ov.LogLevel != "" {
		cfg.LogLevel = ov.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newLogger(level zapcore.Level) (*zap.Logger, error) {
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.DisableStacktrace = true
	zc.DisableCaller = true
	return zc.Build()
}
