// Package config loads geosvg settings from a TOML or YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Output formats understood by the converters.
const (
	FormatSVG     = "svg"
	FormatD       = "d"
	FormatWKT     = "wkt"
	FormatGeoJSON = "geojson"
)

// Formats lists the output formats in the order the viewer cycles them.
var Formats = []string{FormatSVG, FormatD, FormatWKT, FormatGeoJSON}

type Config struct {
	Flatten Flatten `toml:"flatten" yaml:"flatten"`
	Output  Output  `toml:"output" yaml:"output"`
	Render  Render  `toml:"render" yaml:"render"`
	Log     Log     `toml:"log" yaml:"log"`
}

type Flatten struct {
	// Samples is the number of segments each curve is flattened into.
	Samples int `toml:"samples" yaml:"samples"`
}

type Output struct {
	Format string `toml:"format" yaml:"format"`
}

type Render struct {
	Width  int     `toml:"width" yaml:"width"`
	Height int     `toml:"height" yaml:"height"`
	Stroke float64 `toml:"stroke" yaml:"stroke"`
}

type Log struct {
	Level string `toml:"level" yaml:"level"`
}

func Default() Config {
	return Config{
		Flatten: Flatten{Samples: 100},
		Output:  Output{Format: FormatSVG},
		Render:  Render{Width: 512, Height: 512, Stroke: 1.5},
		Log:     Log{Level: "info"},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/geosvg/config.toml, falling back to
// ~/.config when XDG_CONFIG_HOME is unset.
func DefaultPath() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := homedir.Dir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "geosvg", "config.toml"), nil
}

// Load reads the config file at path on top of the defaults. An empty path
// means the default location, which may be absent.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}
	path, err := homedir.Expand(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := Decode(&cfg, data, filepath.Ext(path)); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Decode decodes data into cfg, choosing YAML for a .yaml or .yml ext and
// TOML otherwise. Unknown keys are rejected.
func Decode(cfg *Config, data []byte, ext string) error {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	default:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		return dec.Decode(cfg)
	}
}

func (c Config) Validate() error {
	if c.Flatten.Samples < 1 {
		return fmt.Errorf("config: flatten.samples must be at least 1, got %d", c.Flatten.Samples)
	}
	if !ValidFormat(c.Output.Format) {
		return fmt.Errorf("config: unknown output.format %q", c.Output.Format)
	}
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return fmt.Errorf("config: render size must be positive, got %dx%d", c.Render.Width, c.Render.Height)
	}
	if c.Render.Stroke <= 0 {
		return fmt.Errorf("config: render.stroke must be positive, got %g", c.Render.Stroke)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses log.level.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return l, fmt.Errorf("config: log.level: %w", err)
	}
	return l, nil
}

func ValidFormat(f string) bool {
	return slices.Contains(Formats, f)
}
