// Package config loads engine settings from YAML or TOML files and turns
// them into evaluator and resolver options.
//
//	precision: 20
//	timeout: 2s
//	cache_size: 512
//	debug: false
//	log_level: info
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/sandrolain/gojaq/pkg/cache"
	"github.com/sandrolain/gojaq/pkg/evaluator"
	"github.com/sandrolain/gojaq/pkg/resolver"
	"github.com/sandrolain/gojaq/pkg/value"
)

// MaxPrecision bounds the configurable decimal precision.
const MaxPrecision = 1000

// Config holds engine settings.
type Config struct {
	// Precision is the number of significant digits kept by arithmetic.
	Precision uint32
	// Timeout bounds each run. Zero disables it.
	Timeout time.Duration
	// CacheSize is the capacity of the program cache.
	CacheSize int
	// Debug enables debug records from resolution and evaluation.
	Debug bool
	// LogLevel is the minimum level of the logger built by Logger.
	LogLevel slog.Level
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Precision: value.DefaultPrecision,
		CacheSize: cache.DefaultCapacity,
		LogLevel:  slog.LevelInfo,
	}
}

// configDisk is the on-disk layout shared by both formats.
type configDisk struct {
	Precision *uint32 `yaml:"precision" toml:"precision"`
	Timeout   string  `yaml:"timeout" toml:"timeout"`
	CacheSize *int    `yaml:"cache_size" toml:"cache_size"`
	Debug     bool    `yaml:"debug" toml:"debug"`
	LogLevel  string  `yaml:"log_level" toml:"log_level"`
}

// Load reads a configuration file. The format is chosen by extension:
// .yaml or .yml for YAML, .toml for TOML. Unknown keys are an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".toml":
		return ParseTOML(data)
	default:
		return Config{}, fmt.Errorf("config: unsupported file extension %q", ext)
	}
}

// ParseYAML decodes YAML settings. An empty document yields the defaults.
func ParseYAML(data []byte) (Config, error) {
	var raw configDisk
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: parse yaml: %w", err)
	}
	return raw.toConfig()
}

// ParseTOML decodes TOML settings.
func ParseTOML(data []byte) (Config, error) {
	var raw configDisk
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return Config{}, fmt.Errorf("config: parse toml: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config: unknown keys: %s", strings.Join(keys, ", "))
	}
	return raw.toConfig()
}

func (raw configDisk) toConfig() (Config, error) {
	cfg := Default()
	if raw.Precision != nil {
		cfg.Precision = *raw.Precision
	}
	if raw.CacheSize != nil {
		cfg.CacheSize = *raw.CacheSize
	}
	cfg.Debug = raw.Debug
	if raw.Timeout != "" {
		d, err := time.ParseDuration(raw.Timeout)
		if err != nil {
			return Config{}, fmt.Errorf("config: timeout: %w", err)
		}
		cfg.Timeout = d
	}
	if raw.LogLevel != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(raw.LogLevel)); err != nil {
			return Config{}, fmt.Errorf("config: log_level: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports settings outside their allowed ranges.
func (c Config) Validate() error {
	var errs []error
	if c.Precision == 0 || c.Precision > MaxPrecision {
		errs = append(errs, fmt.Errorf("config: precision must be between 1 and %d, got %d", MaxPrecision, c.Precision))
	}
	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("config: timeout must not be negative, got %s", c.Timeout))
	}
	if c.CacheSize <= 0 {
		errs = append(errs, fmt.Errorf("config: cache_size must be positive, got %d", c.CacheSize))
	}
	return errors.Join(errs...)
}

// Logger returns a JSON logger writing to w at the configured level.
func (c Config) Logger(w io.Writer) *slog.Logger {
	level := c.LogLevel
	if c.Debug && level > slog.LevelDebug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// EvalOptions translates the settings into evaluator options.
func (c Config) EvalOptions() []evaluator.EvalOption {
	return []evaluator.EvalOption{
		evaluator.WithPrecision(c.Precision),
		evaluator.WithTimeout(c.Timeout),
		evaluator.WithDebug(c.Debug),
	}
}

// ResolverOptions translates the settings into resolver options.
func (c Config) ResolverOptions() []resolver.Option {
	return []resolver.Option{
		resolver.WithDebug(c.Debug),
	}
}
