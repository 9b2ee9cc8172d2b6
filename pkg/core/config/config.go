// ============================================================================
// calword - Calendar & Ordinal Toolkit
// ============================================================================
//
// Package:     config
// Description: Typed application configuration for CLI and server
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	mdwconfig "github.com/msto63/calword/foundation/core/config"
	mdwerrors "github.com/msto63/calword/foundation/core/errors"
	mdwlog "github.com/msto63/calword/foundation/core/log"
	"github.com/msto63/calword/foundation/utils/timex"
)

// EnvPrefix prefixes environment overrides, e.g. CALWORD_SERVER_PORT
const EnvPrefix = "CALWORD"

// EnvConfigPath names the variable holding the config file path
const EnvConfigPath = "CALWORD_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General  GeneralConfig  `toml:"general"`
	Calendar CalendarConfig `toml:"calendar"`
	Server   ServerConfig   `toml:"server"`
	Journal  JournalConfig  `toml:"journal"`

	source string
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name        string `toml:"name"`
	Environment string `toml:"environment"`
	DataDir     string `toml:"data_dir"`
	LogLevel    string `toml:"log_level"`
	LogFormat   string `toml:"log_format"`
}

// CalendarConfig holds the defaults of the calendar operations
type CalendarConfig struct {
	IncludeSaturday    bool     `toml:"include_saturday"`
	IncludeSunday      bool     `toml:"include_sunday"`
	SpokenOffsetHours  int      `toml:"spoken_offset_hours"`
	DefaultEventLength Duration `toml:"default_event_length"`
	OrdinalCacheSize   int      `toml:"ordinal_cache_size"`
}

// Schedule returns the configured working-day schedule
func (c CalendarConfig) Schedule() timex.WorkingDaySchedule {
	return timex.WorkingDaySchedule{IncludeSaturday: c.IncludeSaturday, IncludeSunday: c.IncludeSunday}
}

// ServerConfig holds gRPC server settings
type ServerConfig struct {
	Host             string   `toml:"host"`
	Port             int      `toml:"port"`
	EnableReflection bool     `toml:"enable_reflection"`
	MaxRecvMsgSize   int      `toml:"max_recv_msg_size"`
	ShutdownTimeout  Duration `toml:"shutdown_timeout"`
}

// JournalConfig holds computation journal settings
type JournalConfig struct {
	Enabled   bool     `toml:"enabled"`
	Path      string   `toml:"path"`
	Retention Duration `toml:"retention"`
}

// Duration wraps time.Duration for TOML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Defaults used when a key is missing
const (
	DefaultName              = "calword"
	DefaultEnvironment       = "development"
	DefaultDataDir           = "./data"
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "json"
	DefaultHost              = "127.0.0.1"
	DefaultPort              = 50151
	DefaultMaxRecvMsgSize    = 4 * 1024 * 1024
	DefaultShutdownTimeout   = 10 * time.Second
	DefaultJournalRetention  = 30 * 24 * time.Hour
	DefaultJournalFileName   = "journal.db"
	DefaultSpokenOffsetHours = timex.DefaultSpokenOffsetHours
	DefaultOrdinalCacheSize  = 1024
)

// Load loads configuration from a TOML or YAML file. Environment variables
// with the CALWORD_ prefix override file values.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	source, err := mdwconfig.LoadWithOptions(path, mdwconfig.LoadOptions{EnvPrefix: EnvPrefix})
	if err != nil {
		return nil, err
	}

	cfg := FromSource(source)
	cfg.source = path
	return cfg, nil
}

// Default returns the built-in configuration with environment overrides
func Default() *Config {
	source, err := mdwconfig.LoadFromString("", mdwconfig.FormatTOML, mdwconfig.LoadOptions{EnvPrefix: EnvPrefix})
	if err != nil {
		// an empty document always parses
		panic(err)
	}
	return FromSource(source)
}

// LoadFromEnv loads configuration from the CALWORD_CONFIG environment variable
// or the first default location that exists. Without any file the built-in
// configuration is returned.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		for _, p := range DefaultPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// DefaultPaths lists the locations LoadFromEnv searches
func DefaultPaths() []string {
	paths := []string{
		"./configs/calword.toml",
		"./calword.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "calword", "config.toml"))
	}
	return paths
}

// LoadDotEnv loads variables from .env style files into the process
// environment without overriding existing values. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", file, err)
		}
	}
	return nil
}

// FromSource builds the typed configuration from a loaded key/value source
func FromSource(src *mdwconfig.Config) *Config {
	cfg := &Config{
		General: GeneralConfig{
			Name:        src.GetString("general.name", DefaultName),
			Environment: src.GetString("general.environment", DefaultEnvironment),
			DataDir:     src.GetString("general.data_dir", DefaultDataDir),
			LogLevel:    src.GetString("general.log_level", DefaultLogLevel),
			LogFormat:   src.GetString("general.log_format", DefaultLogFormat),
		},
		Calendar: CalendarConfig{
			IncludeSaturday:    src.GetBool("calendar.include_saturday", false),
			IncludeSunday:      src.GetBool("calendar.include_sunday", false),
			SpokenOffsetHours:  src.GetInt("calendar.spoken_offset_hours", DefaultSpokenOffsetHours),
			DefaultEventLength: Duration{src.GetDuration("calendar.default_event_length", timex.DefaultEventLength)},
			OrdinalCacheSize:   src.GetInt("calendar.ordinal_cache_size", DefaultOrdinalCacheSize),
		},
		Server: ServerConfig{
			Host:             src.GetString("server.host", DefaultHost),
			Port:             src.GetInt("server.port", DefaultPort),
			EnableReflection: src.GetBool("server.enable_reflection", false),
			MaxRecvMsgSize:   src.GetInt("server.max_recv_msg_size", DefaultMaxRecvMsgSize),
			ShutdownTimeout:  Duration{src.GetDuration("server.shutdown_timeout", DefaultShutdownTimeout)},
		},
		Journal: JournalConfig{
			Enabled:   src.GetBool("journal.enabled", false),
			Path:      src.GetString("journal.path", ""),
			Retention: Duration{src.GetDuration("journal.retention", DefaultJournalRetention)},
		},
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()
	return cfg
}

// applyDefaults fills values that depend on other values
func (c *Config) applyDefaults() {
	if c.Journal.Path == "" {
		c.Journal.Path = filepath.Join(c.General.DataDir, DefaultJournalFileName)
	}
	if c.Calendar.DefaultEventLength.Duration <= 0 {
		c.Calendar.DefaultEventLength.Duration = timex.DefaultEventLength
	}
}

// expandEnvVars expands environment variables in path values
func (c *Config) expandEnvVars() {
	c.General.DataDir = os.ExpandEnv(c.General.DataDir)
	c.Journal.Path = os.ExpandEnv(c.Journal.Path)
}

// Validate checks value ranges
func (c *Config) Validate() error {
	const op = "Validate"

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return mdwerrors.InvalidArgument(mdwerrors.ModuleConfig, op,
			fmt.Sprintf("server.port %d is out of range", c.Server.Port))
	}
	if _, err := mdwlog.ParseLevel(c.General.LogLevel); err != nil {
		return mdwerrors.InvalidArgument(mdwerrors.ModuleConfig, op,
			fmt.Sprintf("general.log_level %q is unknown", c.General.LogLevel))
	}
	if _, err := mdwlog.ParseFormat(c.General.LogFormat); err != nil {
		return mdwerrors.InvalidArgument(mdwerrors.ModuleConfig, op,
			fmt.Sprintf("general.log_format %q is unknown", c.General.LogFormat))
	}
	if c.Calendar.SpokenOffsetHours < -12 || c.Calendar.SpokenOffsetHours > 14 {
		return mdwerrors.InvalidArgument(mdwerrors.ModuleConfig, op,
			fmt.Sprintf("calendar.spoken_offset_hours %d is out of range", c.Calendar.SpokenOffsetHours))
	}
	if c.Calendar.OrdinalCacheSize < 0 {
		return mdwerrors.InvalidArgument(mdwerrors.ModuleConfig, op, "calendar.ordinal_cache_size must not be negative")
	}
	if c.Journal.Retention.Duration < 0 {
		return mdwerrors.InvalidArgument(mdwerrors.ModuleConfig, op, "journal.retention must not be negative")
	}
	if c.Journal.Enabled && strings.TrimSpace(c.Journal.Path) == "" {
		return mdwerrors.InvalidArgument(mdwerrors.ModuleConfig, op, "journal.path is required when the journal is enabled")
	}
	return nil
}

// Address returns host:port of the gRPC server
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// Source returns the file the configuration was loaded from, empty for the
// built-in configuration
func (c *Config) Source() string {
	return c.source
}

// Encode writes the configuration as TOML
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
