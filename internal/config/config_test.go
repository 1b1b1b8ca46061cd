package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 100, cfg.Flatten.Samples)
	assert.Equal(t, FormatSVG, cfg.Output.Format)
	l, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, l)
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[flatten]
samples = 8

[output]
format = "wkt"

[log]
level = "debug"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Flatten.Samples)
	assert.Equal(t, FormatWKT, cfg.Output.Format)
	assert.Equal(t, 512, cfg.Render.Width)
	l, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, l)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("render:\n  width: 64\n  height: 32\n  stroke: 2\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Render{Width: 64, Height: 32, Stroke: 2}, cfg.Render)
	assert.Equal(t, 100, cfg.Flatten.Samples)
}

func TestLoadEmptyYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadDefaultLocation(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "geosvg"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "geosvg", "config.toml"), []byte("[output]\nformat = \"d\"\n"), 0o644))
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, FormatD, cfg.Output.Format)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
		return p
	}
	tests := []struct {
		name string
		path string
		msg  string
	}{
		{"missing explicit file", filepath.Join(dir, "nope.toml"), "no such file"},
		{"syntax", write("bad.toml", "[flatten\n"), "bad.toml"},
		{"unknown key", write("extra.toml", "[flatten]\nsteps = 3\n"), "extra.toml"},
		{"unknown yaml key", write("extra.yaml", "colour: red\n"), "extra.yaml"},
		{"samples", write("samples.toml", "[flatten]\nsamples = 0\n"), "flatten.samples"},
		{"format", write("format.toml", "[output]\nformat = \"png\"\n"), "output.format"},
		{"size", write("size.yaml", "render:\n  width: -1\n"), "render size"},
		{"level", write("level.toml", "[log]\nlevel = \"loud\"\n"), "log.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestValidFormat(t *testing.T) {
	for _, f := range Formats {
		assert.True(t, ValidFormat(f), f)
	}
	assert.False(t, ValidFormat("png"))
}
