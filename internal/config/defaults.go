package config

const (
	defaultLogLevel   = "info"
	defaultLogFormat  = "console"
	defaultJSONIndent = "  "
	defaultStatsStyle = "rounded"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		JSON: JSON{
			Indent: defaultJSONIndent,
		},
		Stats: Stats{
			Style: defaultStatsStyle,
		},
	}
}
