// Package config provides thread-safe key/value configuration loaded from TOML
// or YAML files.
//
// Package: config
// Title: calword Configuration Loading
// Description: Reads TOML (BurntSushi/toml) or YAML (gopkg.in/yaml.v3) files into
//              a nested map and exposes typed getters addressed by dot paths.
//              Environment variables override file values: with prefix CALWORD,
//              the key "calendar.include_saturday" is overridden by
//              CALWORD_CALENDAR_INCLUDE_SATURDAY.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
//
// Usage:
//
//	cfg, err := config.LoadWithOptions("configs/calword.toml", config.LoadOptions{
//		EnvPrefix: "CALWORD",
//		Defaults:  map[string]interface{}{"server": map[string]interface{}{"port": 9460}},
//	})
//	port := cfg.GetInt("server.port", 9460)
//	retention := cfg.GetDuration("journal.retention", 30*24*time.Hour)
package config
