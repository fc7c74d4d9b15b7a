// Package config loads user defaults for graphwalk.
//
// Settings live in the user's config directory, normally
// $XDG_CONFIG_HOME/graphwalk. The first of config.toml, config.yaml and
// config.yml found there is used; when none exists the built-in defaults
// apply. Command-line flags always win over file values.
//
//	[search]
//	algorithm = "dfs"
//
//	[render]
//	formats = ["text", "svg"]
//	detailed = true
//
//	[cache]
//	redis_url = "redis://localhost:6379/0"
//
// A handful of environment variables override the file, for use in CI:
// GRAPHWALK_CONFIG (file path), GRAPHWALK_CACHE_DIR, GRAPHWALK_REDIS_URL,
// GRAPHWALK_NO_CACHE and GRAPHWALK_LOG_LEVEL.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	gwerrors "github.com/matzehuels/graphwalk/pkg/errors"
	"github.com/matzehuels/graphwalk/pkg/pipeline"
	"github.com/matzehuels/graphwalk/pkg/search"
)

// AppName is the directory name used under the user's config directory.
const AppName = "graphwalk"

// FileNames are the config file names probed in order.
var FileNames = []string{"config.toml", "config.yaml", "config.yml"}

// Config holds user defaults.
type Config struct {
	Search SearchConfig `toml:"search" yaml:"search"`
	Render RenderConfig `toml:"render" yaml:"render"`
	Cache  CacheConfig  `toml:"cache" yaml:"cache"`
	Log    LogConfig    `toml:"log" yaml:"log"`
}

// SearchConfig holds traversal defaults.
type SearchConfig struct {
	Algorithm string `toml:"algorithm" yaml:"algorithm"`
}

// RenderConfig holds output defaults.
type RenderConfig struct {
	Formats  []string `toml:"formats" yaml:"formats"`
	Detailed bool     `toml:"detailed" yaml:"detailed"`
	Width    int      `toml:"width" yaml:"width"`
	PNGScale float64  `toml:"png_scale" yaml:"png_scale"`
}

// CacheConfig selects the artifact cache. RedisURL takes precedence over
// Dir; Disabled turns caching off entirely.
type CacheConfig struct {
	Disabled    bool   `toml:"disabled" yaml:"disabled"`
	Dir         string `toml:"dir,omitempty" yaml:"dir,omitempty"`
	RedisURL    string `toml:"redis_url,omitempty" yaml:"redis_url,omitempty"`
	RedisPrefix string `toml:"redis_prefix,omitempty" yaml:"redis_prefix,omitempty"`
}

// LogConfig holds the default log level.
type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Search: SearchConfig{Algorithm: pipeline.DefaultAlgorithm},
		Render: RenderConfig{
			Formats:  []string{pipeline.FormatText},
			PNGScale: pipeline.DefaultPNGScale,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Dir returns the graphwalk config directory.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config directory: %w", err)
	}
	return filepath.Join(base, AppName), nil
}

// Path returns the config file in use: $GRAPHWALK_CONFIG if set, else the
// first existing entry of FileNames, else the TOML path Init would create.
func Path() (string, error) {
	if p := os.Getenv("GRAPHWALK_CONFIG"); p != "" {
		return p, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	for _, name := range FileNames {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return filepath.Join(dir, FileNames[0]), nil
}

// Load reads the config file at Path, falling back to defaults when it
// does not exist.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads the config at path. A missing file yields the defaults.
// Fields absent from the file keep their default values.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := decode(path, data, cfg); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, gwerrors.Wrap(gwerrors.ErrCodeInvalidConfig, err, "config %s", path)
	}
	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		_, err = toml.Decode(string(data), cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return gwerrors.New(gwerrors.ErrCodeInvalidConfig, "unknown config format %q (want .toml, .yaml or .yml)", filepath.Ext(path))
	}
	if err != nil {
		return gwerrors.Wrap(gwerrors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("GRAPHWALK_CACHE_DIR"); v != "" {
		c.Cache.Dir = v
	}
	if v := os.Getenv("GRAPHWALK_REDIS_URL"); v != "" {
		c.Cache.RedisURL = v
	}
	if v := os.Getenv("GRAPHWALK_NO_CACHE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Cache.Disabled = b
		}
	}
	if v := os.Getenv("GRAPHWALK_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

// Validate checks that every value names something graphwalk knows.
func (c *Config) Validate() error {
	if _, err := search.ParseAlgorithm(c.Search.Algorithm); err != nil {
		return fmt.Errorf("search.algorithm: %w", err)
	}
	if err := pipeline.ValidateFormats(c.Render.Formats); err != nil {
		return fmt.Errorf("render.formats: %w", err)
	}
	if c.Render.Width < 0 {
		return fmt.Errorf("render.width: must not be negative, got %d", c.Render.Width)
	}
	if c.Render.PNGScale < 0 {
		return fmt.Errorf("render.png_scale: must not be negative, got %v", c.Render.PNGScale)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// Level returns the configured log level, or info if it does not parse.
func (c *Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// Apply fills the zero-valued fields of opts from c.
func (c *Config) Apply(opts *pipeline.Options) {
	if opts.Algorithm == "" {
		opts.Algorithm = c.Search.Algorithm
	}
	if len(opts.Formats) == 0 {
		opts.Formats = append([]string(nil), c.Render.Formats...)
	}
	if !opts.Detailed {
		opts.Detailed = c.Render.Detailed
	}
	if opts.Width == 0 {
		opts.Width = c.Render.Width
	}
	if opts.PNGScale == 0 {
		opts.PNGScale = c.Render.PNGScale
	}
}

// Encode writes c in the given format ("toml" or "yaml").
func (c *Config) Encode(w io.Writer, format string) error {
	switch strings.ToLower(format) {
	case "toml", "":
		return toml.NewEncoder(w).Encode(c)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return err
		}
		return enc.Close()
	}
	return gwerrors.ValidateOutputFormat(format, "toml", "yaml")
}

// Init writes the default configuration to path, creating parent
// directories. An existing file is only replaced when force is set.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return gwerrors.New(gwerrors.ErrCodeInvalidConfig, "%s already exists (use --force to overwrite)", path)
	}
	format := "toml"
	if ext := strings.ToLower(filepath.Ext(path)); ext == ".yaml" || ext == ".yml" {
		format = "yaml"
	}

	var buf bytes.Buffer
	if err := Default().Encode(&buf, format); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}
