// Package config loads and validates the tidyflix TOML configuration.
//
// Defaults cover every field so the tool works with no config file at all;
// a file at ~/.config/tidyflix/config.toml (or --config) overrides them.
// Scoring weights and the size-efficiency thresholds live here because they
// are policy knobs, not algorithm constants.
package config
