// File: config.go
// Title: Configuration Loading and Access
// Description: Config type with TOML/YAML parsing, default merging, dot-path
//              lookup and environment variable overrides.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/calword/foundation/core/error"
	mdwerrors "github.com/msto63/calword/foundation/core/errors"
	mdwstringx "github.com/msto63/calword/foundation/utils/stringx"
)

// Format is the syntax of a configuration source
type Format int

const (
	FormatAuto Format = iota
	FormatTOML
	FormatYAML
)

// String returns the format name
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "auto"
	}
}

// LoadOptions controls LoadWithOptions
type LoadOptions struct {
	Format    Format
	EnvPrefix string
	Defaults  map[string]interface{}
}

// Config holds parsed configuration values. It is safe for concurrent use.
type Config struct {
	mu        sync.RWMutex
	data      map[string]interface{}
	filePath  string
	format    Format
	envPrefix string
}

// Load reads filePath with auto-detected format and no env prefix
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{})
}

// LoadWithOptions reads filePath
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	const op = "config.LoadWithOptions"

	if mdwstringx.IsBlank(filePath) {
		return nil, mdwerrors.InvalidArgument(mdwerrors.ModuleConfig, op, "config file path cannot be empty")
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, mdwerror.Wrap(err, "config file not found").
				WithCode(mdwerror.CodeMissingConfig).
				WithOperation(op).
				WithDetail("file_path", filePath)
		}
		return nil, mdwerror.Wrap(err, "failed to read config file").
			WithCode(mdwerror.CodeConfigError).
			WithOperation(op).
			WithDetail("file_path", filePath)
	}

	format := options.Format
	if format == FormatAuto {
		format = DetectFormat(filePath)
	}

	cfg, err := parse(content, format, options)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config file").
			WithOperation(op).
			WithDetail("file_path", filePath)
	}
	cfg.filePath = filePath
	return cfg, nil
}

// LoadFromString parses content; FormatAuto is treated as TOML
func LoadFromString(content string, format Format, options ...LoadOptions) (*Config, error) {
	var opts LoadOptions
	if len(options) > 0 {
		opts = options[0]
	}
	if format == FormatAuto {
		format = FormatTOML
	}
	return parse([]byte(content), format, opts)
}

// DetectFormat infers the format from the file extension, TOML by default
func DetectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

func parse(content []byte, format Format, options LoadOptions) (*Config, error) {
	data := make(map[string]interface{})

	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(content, &data)
	default:
		format = FormatTOML
		err = toml.Unmarshal(content, &data)
	}
	if err != nil {
		return nil, mdwerror.Wrap(err, format.String()+" parse error").
			WithCode(mdwerror.CodeInvalidFormat).
			WithDetail("format", format.String())
	}
	if data == nil {
		data = make(map[string]interface{})
	}

	return &Config{
		data:      mergeDefaults(options.Defaults, data),
		format:    format,
		envPrefix: options.EnvPrefix,
	}, nil
}

// mergeDefaults overlays data on defaults, descending into nested tables
func mergeDefaults(defaults, data map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(defaults)+len(data))
	for k, v := range defaults {
		out[k] = v
	}
	for k, v := range data {
		dv, dok := out[k].(map[string]interface{})
		nv, nok := v.(map[string]interface{})
		if dok && nok {
			out[k] = mergeDefaults(dv, nv)
			continue
		}
		out[k] = v
	}
	return out
}

// EnvKey returns the environment variable that overrides key
func (c *Config) EnvKey(key string) string {
	envKey := strings.ToUpper(strings.NewReplacer(".", "_", "-", "_").Replace(key))
	if c.envPrefix != "" {
		envKey = strings.ToUpper(c.envPrefix) + "_" + envKey
	}
	return envKey
}

func (c *Config) lookup(key string) (interface{}, bool) {
	if env, ok := os.LookupEnv(c.EnvKey(key)); ok && env != "" {
		return env, true
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	current := c.data
	parts := strings.Split(key, ".")
	for i, part := range parts {
		value, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return value, true
		}
		next, ok := value.(map[string]interface{})
		if !ok {
			return nil, false
		}
		current = next
	}
	return nil, false
}

// GetString returns key as a string
func (c *Config) GetString(key string, defaultValue ...string) string {
	value, ok := c.lookup(key)
	if !ok {
		return first(defaultValue, "")
	}
	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// GetInt returns key as an int
func (c *Config) GetInt(key string, defaultValue ...int) int {
	value, ok := c.lookup(key)
	if !ok {
		return first(defaultValue, 0)
	}
	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return first(defaultValue, 0)
}

// GetBool returns key as a bool
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	value, ok := c.lookup(key)
	if !ok {
		return first(defaultValue, false)
	}
	switch v := value.(type) {
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
	}
	return first(defaultValue, false)
}

// GetDuration returns key as a duration; strings use time.ParseDuration,
// integers are seconds
func (c *Config) GetDuration(key string, defaultValue ...time.Duration) time.Duration {
	value, ok := c.lookup(key)
	if !ok {
		return first(defaultValue, 0)
	}
	switch v := value.(type) {
	case time.Duration:
		return v
	case string:
		if d, err := time.ParseDuration(strings.TrimSpace(v)); err == nil {
			return d
		}
	case int:
		return time.Duration(v) * time.Second
	case int64:
		return time.Duration(v) * time.Second
	}
	return first(defaultValue, 0)
}

// Has reports whether key is set in the file, the defaults or the environment
func (c *Config) Has(key string) bool {
	_, ok := c.lookup(key)
	return ok
}

// Set stores value under key, creating intermediate tables
func (c *Config) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	parts := strings.Split(key, ".")
	current := c.data
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}

// Keys returns all leaf keys in dot notation, sorted
func (c *Config) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var keys []string
	var walk func(prefix string, m map[string]interface{})
	walk = func(prefix string, m map[string]interface{}) {
		for k, v := range m {
			full := k
			if prefix != "" {
				full = prefix + "." + k
			}
			if nested, ok := v.(map[string]interface{}); ok {
				walk(full, nested)
				continue
			}
			keys = append(keys, full)
		}
	}
	walk("", c.data)
	sort.Strings(keys)
	return keys
}

// FilePath returns the path the config was loaded from
func (c *Config) FilePath() string { return c.filePath }

// Format returns the parsed format
func (c *Config) Format() Format { return c.format }

func first[T any](values []T, fallback T) T {
	if len(values) > 0 {
		return values[0]
	}
	return fallback
}
