package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gwerrors "github.com/matzehuels/graphwalk/pkg/errors"
	"github.com/matzehuels/graphwalk/pkg/pipeline"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFileMissing(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFileTOML(t *testing.T) {
	path := writeFile(t, "config.toml", `
[search]
algorithm = "dfs"

[render]
formats = ["text", "svg"]
detailed = true

[cache]
redis_url = "redis://localhost:6379/1"
`)
	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "dfs", cfg.Search.Algorithm)
	assert.Equal(t, []string{"text", "svg"}, cfg.Render.Formats)
	assert.True(t, cfg.Render.Detailed)
	assert.Equal(t, "redis://localhost:6379/1", cfg.Cache.RedisURL)
	// untouched keys keep defaults
	assert.Equal(t, pipeline.DefaultPNGScale, cfg.Render.PNGScale)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFileYAML(t *testing.T) {
	path := writeFile(t, "config.yml", `
search:
  algorithm: breadth-first
render:
  width: 80
log:
  level: debug
`)
	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "breadth-first", cfg.Search.Algorithm)
	assert.Equal(t, 80, cfg.Render.Width)
	assert.Equal(t, log.DebugLevel, cfg.Level())
}

func TestLoadFileInvalid(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"bad toml", "config.toml", "[search\nalgorithm = 1"},
		{"bad yaml", "config.yaml", "search: [unclosed"},
		{"unknown algorithm", "config.toml", "[search]\nalgorithm = \"astar\""},
		{"unknown format", "config.toml", "[render]\nformats = [\"gif\"]"},
		{"negative width", "config.yaml", "render:\n  width: -3"},
		{"bad level", "config.toml", "[log]\nlevel = \"loud\""},
		{"unknown extension", "config.ini", "algorithm=dfs"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeFile(t, tt.file, tt.content))
			require.Error(t, err)
			assert.True(t, gwerrors.Is(err, gwerrors.ErrCodeInvalidConfig), "error = %v", err)
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("GRAPHWALK_REDIS_URL", "redis://cache:6379/0")
	t.Setenv("GRAPHWALK_CACHE_DIR", "/tmp/gw")
	t.Setenv("GRAPHWALK_NO_CACHE", "true")
	t.Setenv("GRAPHWALK_LOG_LEVEL", "warn")

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "none.toml"))
	require.NoError(t, err)

	assert.Equal(t, "redis://cache:6379/0", cfg.Cache.RedisURL)
	assert.Equal(t, "/tmp/gw", cfg.Cache.Dir)
	assert.True(t, cfg.Cache.Disabled)
	assert.Equal(t, log.WarnLevel, cfg.Level())
}

func TestPath(t *testing.T) {
	t.Setenv("GRAPHWALK_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	dir, err := Dir()
	require.NoError(t, err)

	path, err := Path()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.toml"), path)

	require.NoError(t, os.MkdirAll(dir, 0755))
	yml := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(yml, []byte("{}"), 0644))

	path, err = Path()
	require.NoError(t, err)
	assert.Equal(t, yml, path)

	t.Setenv("GRAPHWALK_CONFIG", "/etc/graphwalk.toml")
	path, err = Path()
	require.NoError(t, err)
	assert.Equal(t, "/etc/graphwalk.toml", path)
}

func TestInit(t *testing.T) {
	for _, name := range []string{"config.toml", "config.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)
			require.NoError(t, Init(path, false))

			cfg, err := LoadFile(path)
			require.NoError(t, err)
			assert.Equal(t, Default(), cfg)

			err = Init(path, false)
			assert.True(t, gwerrors.Is(err, gwerrors.ErrCodeInvalidConfig))
			assert.NoError(t, Init(path, true))
		})
	}
}

func TestApply(t *testing.T) {
	cfg := Default()
	cfg.Search.Algorithm = "dfs"
	cfg.Render.Detailed = true
	cfg.Render.Width = 100

	opts := pipeline.Options{Formats: []string{"svg"}}
	cfg.Apply(&opts)

	assert.Equal(t, "dfs", opts.Algorithm)
	assert.Equal(t, []string{"svg"}, opts.Formats, "flags win over config")
	assert.True(t, opts.Detailed)
	assert.Equal(t, 100, opts.Width)
	assert.Equal(t, pipeline.DefaultPNGScale, opts.PNGScale)

	opts = pipeline.Options{Algorithm: "bfs"}
	cfg.Apply(&opts)
	assert.Equal(t, "bfs", opts.Algorithm)
	assert.Equal(t, []string{"text"}, opts.Formats)
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Default().Encode(&buf, "toml"))
	assert.Contains(t, buf.String(), `algorithm = "bfs"`)

	buf.Reset()
	require.NoError(t, Default().Encode(&buf, "yaml"))
	assert.Contains(t, buf.String(), "algorithm: bfs")

	assert.Error(t, Default().Encode(&buf, "ini"))
}
