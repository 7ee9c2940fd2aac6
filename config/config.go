// config/config.go
package config

import (
	"os"
	"strings"

	"github.com/pelletier/go-toml"
	"go.uber.org/zap/zapcore"

	"halhandles-go/errcode"
	"halhandles-go/handles"
)

// Output formats.
const (
	FormatDec  = "dec"
	FormatHex  = "hex"
	FormatBoth = "both"
)

// Config drives the handle tools.
type Config struct {
	Layout   string // "unshifted" | "shifted"
	Format   string // dec | hex | both
	Version  int    // version used when a handle command omits one
	LogLevel string // zap level name
}

// Default returns the built-in configuration ("default" profile).
func Default() Config {
	return Config{
		Layout:   handles.CanonicalLayout.String(),
		Format:   FormatBoth,
		Version:  0,
		LogLevel: "info",
	}
}

// Parse overlays TOML data onto the defaults and validates the result.
func Parse(raw []byte) (Config, error) {
	tree, err := toml.LoadBytes(raw)
	if err != nil {
		return Config{}, errcode.Wrap(errcode.InvalidConfig, "parse config", err)
	}
	cfg := Default()
	if err := overlayString(tree, "layout", &cfg.Layout); err != nil {
		return Config{}, err
	}
	if err := overlayString(tree, "format", &cfg.Format); err != nil {
		return Config{}, err
	}
	if err := overlayString(tree, "log_level", &cfg.LogLevel); err != nil {
		return Config{}, err
	}
	if tree.Has("version") {
		v, ok := tree.Get("version").(int64)
		if !ok {
			return Config{}, errcode.New(errcode.InvalidConfig, "parse config", "version must be an integer")
		}
		if v < -32768 || v > 32767 {
			return Config{}, errcode.New(errcode.InvalidConfig, "parse config", "version out of int16 range")
		}
		cfg.Version = int(v)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func overlayString(tree *toml.Tree, key string, dst *string) error {
	if !tree.Has(key) {
		return nil
	}
	v, ok := tree.Get(key).(string)
	if !ok {
		return errcode.New(errcode.InvalidConfig, "parse config", key+" must be a string")
	}
	*dst = v
	return nil
}

// Load reads and parses a TOML file.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errcode.Wrap(errcode.InvalidConfig, "load config", err)
	}
	return Parse(raw)
}

// Profile returns an embedded configuration by name.
func Profile(name string) (Config, error) {
	raw, ok := EmbeddedLookup(name)
	if !ok {
		return Config{}, errcode.New(errcode.UnknownProfile, "profile", name)
	}
	return Parse(raw)
}

// Validate checks every field and normalises case.
func (c *Config) Validate() error {
	l, err := handles.ParseLayout(c.Layout)
	if err != nil {
		return err
	}
	c.Layout = l.String()

	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	switch c.Format {
	case FormatDec, FormatHex, FormatBoth:
	default:
		return errcode.New(errcode.InvalidFormat, "validate config", c.Format)
	}

	if c.Version < -32768 || c.Version > 32767 {
		return errcode.New(errcode.InvalidConfig, "validate config", "version out of int16 range")
	}

	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return errcode.Wrap(errcode.InvalidConfig, "validate config", err)
	}
	return nil
}

// PortLayout returns the parsed Layout. Call after Validate.
func (c Config) PortLayout() handles.Layout {
	l, _ := handles.ParseLayout(c.Layout)
	return l
}

// Level returns the parsed log level, defaulting to info.
func (c Config) Level() zapcore.Level {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}
