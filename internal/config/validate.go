package config

import (
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateJSON(); err != nil {
		return err
	}
	return c.validateStats()
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q (debug, info, warn, error)", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (console, json)", c.Logging.Format)
	}
	return nil
}

func (c *Config) validateJSON() error {
	if strings.Trim(c.JSON.Indent, " \t") != "" {
		return fmt.Errorf("json.indent: must contain only spaces or tabs, got %q", c.JSON.Indent)
	}
	return nil
}

func (c *Config) validateStats() error {
	switch c.Stats.Style {
	case "ascii", "light", "rounded", "double", "bold":
		return nil
	}
	return fmt.Errorf("stats.style: unsupported value %q (ascii, light, rounded, double, bold)", c.Stats.Style)
}
