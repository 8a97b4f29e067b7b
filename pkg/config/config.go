// Package config loads fontify's settings from a TOML file.
//
// The file lives at $XDG_CONFIG_HOME/fontify/config.toml, falling back to
// ~/.config/fontify/config.toml:
//
//	category = "bonitas"
//	case = "normal"
//	decoration = "none"
//	readability = "all"    # all | medium | high
//	format = "table"
//	history_size = 10
//	limit = 0
//	seed = 0               # 0 = non-deterministic Zalgo
//
// A missing file yields [Default]. Command-line flags override file values.
package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/fontify/pkg/convert"
	"github.com/matzehuels/fontify/pkg/errors"
	"github.com/matzehuels/fontify/pkg/pipeline"
	"github.com/matzehuels/fontify/pkg/style"
)

const (
	appName  = "fontify"
	fileName = "config.toml"

	// DefaultHistorySize mirrors the state package's default.
	DefaultHistorySize = 10
)

// Config holds user defaults for the CLI and TUI.
type Config struct {
	Category    string `toml:"category"`
	Case        string `toml:"case"`
	Decoration  string `toml:"decoration"`
	Readability string `toml:"readability"`
	Format      string `toml:"format"`
	HistorySize int    `toml:"history_size"`
	Limit       int    `toml:"limit"`
	Seed        uint64 `toml:"seed"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Category:    string(style.CategoryAll),
		Case:        string(convert.CaseNormal),
		Decoration:  string(style.DecorationNone),
		Readability: "all",
		Format:      pipeline.DefaultFormat,
		HistorySize: DefaultHistorySize,
	}
}

// Dir returns fontify's configuration directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", appName)
	}
	return filepath.Join(home, ".config", appName)
}

// Path returns the default config file location.
func Path() string {
	return filepath.Join(Dir(), fileName)
}

// Load reads the config file at path (Path() when empty) on top of the
// defaults. A missing file is not an error. Unknown keys are rejected so
// typos surface instead of being ignored.
func Load(path string) (*Config, error) {
	if path == "" {
		path = Path()
	}
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig,
			"%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field.
func (c *Config) Validate() error {
	opts := c.Options()
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid config")
	}
	if err := pipeline.ValidateFormat(c.Format); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid config")
	}
	if c.HistorySize < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "history_size cannot be negative")
	}
	return nil
}

// Options converts the render settings into pipeline options. The result
// is not validated; the pipeline does that on use.
func (c *Config) Options() pipeline.Options {
	return pipeline.Options{
		Category:       style.Category(c.Category),
		Case:           convert.Case(c.Case),
		Decoration:     style.Decoration(c.Decoration),
		MinReadability: style.Readability(c.Readability),
		Limit:          c.Limit,
	}
}

// Encode writes c as TOML.
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Write stores c at path, creating the directory. It refuses to overwrite
// an existing file unless force is set.
func (c *Config) Write(path string, force bool) error {
	if path == "" {
		path = Path()
	}
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.New(errors.ErrCodeInvalidConfig, "%s already exists", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create config dir")
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
	}
	if err := c.Encode(f); err != nil {
		f.Close()
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	return f.Close()
}
