package config

import "strings"

func (c *Config) normalize() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Stats.Style = strings.ToLower(strings.TrimSpace(c.Stats.Style))
	if c.Stats.Style == "" {
		c.Stats.Style = defaultStatsStyle
	}
}
