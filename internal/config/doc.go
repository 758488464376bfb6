// Package config loads fastj's TOML configuration.
//
// Load resolves the file (flag, $FASTJ_CONFIG, user config dir, then
// ./fastj.toml), decodes it over Default(), normalizes values and validates
// them. A missing file is not an error.
package config
