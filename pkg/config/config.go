// Package config loads the optional TOML configuration file.
//
// Every setting is optional. A missing file is the same as an empty one, and
// empty values leave the built-in defaults in place:
//
//	format = "excel"
//	font = "Yu Gothic"
//
//	[columns.primary]
//	header = "Feature"
//	width = 25
//
//	[colors]
//	header_background = "5B9BD5"
//
//	[cache]
//	disabled = false
//	redis_url = ""
//
// Command-line flags and TESTSPEC_* environment variables take precedence
// over the file; that layering lives in the CLI.
package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	sterrors "github.com/matzehuels/testspec/pkg/errors"
	"github.com/matzehuels/testspec/pkg/pipeline"
	"github.com/matzehuels/testspec/pkg/render/table"
	"github.com/matzehuels/testspec/pkg/render/xlsx"
)

const (
	appName  = "testspec"
	fileName = "config.toml"
)

// Config mirrors the TOML file.
type Config struct {
	Format  string                        `toml:"format"`
	Font    string                        `toml:"font"`
	Columns map[string]table.ColumnConfig `toml:"columns"`
	Colors  Colors                        `toml:"colors"`
	Cache   CacheConfig                   `toml:"cache"`
}

// Colors holds the workbook colors as RRGGBB hex.
type Colors struct {
	HeaderText       string `toml:"header_text"`
	HeaderBackground string `toml:"header_background"`
	BodyText         string `toml:"body_text"`
	BodyBackground   string `toml:"body_background"`
	Border           string `toml:"border"`
}

// CacheConfig selects the artifact cache backend.
type CacheConfig struct {
	Disabled bool   `toml:"disabled"`
	RedisURL string `toml:"redis_url"`
}

// DefaultPath returns $XDG_CONFIG_HOME/testspec/config.toml, falling back to
// ~/.config/testspec/config.toml.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads the file at path. A missing file yields an empty Config.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, sterrors.Wrap(sterrors.ErrCodeIO, err, "read config %s", path)
	}
	return Parse(data, path)
}

// Parse decodes TOML config data. Keys outside the schema and unknown column
// names are rejected; name is only used in error messages.
func Parse(data []byte, name string) (*Config, error) {
	cfg := &Config{}
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, sterrors.Wrap(sterrors.ErrCodeInvalidInput, err, "parse config %s", name)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, sterrors.New(sterrors.ErrCodeInvalidInput,
			"config %s: unknown keys: %s", name, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the format, column names, widths, font and colors.
func (c *Config) Validate() error {
	if c.Format != "" {
		if _, err := pipeline.ParseFormat(c.Format); err != nil {
			return err
		}
	}

	names := make([]string, 0, len(c.Columns))
	for name := range c.Columns {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, err := table.ParseColumn(name); err != nil {
			return sterrors.Wrap(sterrors.ErrCodeInvalidInput, err, "config columns")
		}
		if w := c.Columns[name].Width; w != 0 {
			if err := sterrors.ValidateWidth(name, w); err != nil {
				return err
			}
		}
	}

	return c.style().Validate()
}

// Apply copies every value set in c onto opts.
func (c *Config) Apply(opts *pipeline.Options) {
	if c.Format != "" {
		opts.Format = c.Format
	}
	for name, cc := range c.Columns {
		col, err := table.ParseColumn(name)
		if err != nil {
			continue
		}
		if cc.Header != "" {
			opts.Columns[col].Header = cc.Header
		}
		if cc.Width != 0 {
			opts.Columns[col].Width = cc.Width
		}
	}

	s := c.style()
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&opts.Style.Font, s.Font)
	set(&opts.Style.HeaderText, s.HeaderText)
	set(&opts.Style.HeaderBackground, s.HeaderBackground)
	set(&opts.Style.BodyText, s.BodyText)
	set(&opts.Style.BodyBackground, s.BodyBackground)
	set(&opts.Style.Border, s.Border)
}

func (c *Config) style() xlsx.Style {
	return xlsx.Style{
		Font:             c.Font,
		HeaderText:       c.Colors.HeaderText,
		HeaderBackground: c.Colors.HeaderBackground,
		BodyText:         c.Colors.BodyText,
		BodyBackground:   c.Colors.BodyBackground,
		Border:           c.Colors.Border,
	}
}
