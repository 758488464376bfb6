package app

import (
	"io"
	"log/slog"
	"strings"
	"sync"

	"fastj/internal/config"
	"fastj/internal/logging"
)

type globalFlags struct {
	configPath string
	logLevel   string
	logFormat  string
	quiet      bool
}

// commandContext lazily loads configuration and the logger shared by all
// subcommands of one invocation.
type commandContext struct {
	flags  *globalFlags
	stderr io.Writer

	configOnce sync.Once
	config     *config.Config
	configPath string
	configSeen bool
	logger     *slog.Logger
	configErr  error
}

func newCommandContext(flags *globalFlags, stderr io.Writer) *commandContext {
	return &commandContext{flags: flags, stderr: stderr}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, resolved, exists, err := config.Load(strings.TrimSpace(c.flags.configPath))
		if err != nil {
			c.configErr = &usageError{err: err}
			return
		}
		if v := strings.TrimSpace(c.flags.logLevel); v != "" {
			cfg.Logging.Level = v
		}
		if v := strings.TrimSpace(c.flags.logFormat); v != "" {
			cfg.Logging.Format = v
		}
		if c.flags.quiet {
			cfg.Logging.Level = "error"
		}

		logger, err := logging.New(logging.Options{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
			Writer: c.stderr,
			Color:  logging.ShouldColorize(c.stderr),
		})
		if err != nil {
			c.configErr = &usageError{err: err}
			return
		}

		c.config = cfg
		c.configPath = resolved
		c.configSeen = exists
		c.logger = logger
		logger.Debug("configuration loaded", "path", resolved, "found", exists)
	})
	return c.config, c.configErr
}

// log returns the configured logger, or a no-op logger when configuration
// was skipped for this command.
func (c *commandContext) log(component string) *slog.Logger {
	if c.logger == nil {
		return logging.NewNop()
	}
	return c.logger.With("component", component)
}
