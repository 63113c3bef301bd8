package main

import (
	"log/slog"
	"strings"
	"sync"

	"bidscan/internal/config"
	"bidscan/internal/logging"
)

// commandContext lazily resolves configuration and logging for all
// subcommands. Config loading is attempted once; commands that can run on
// positional arguments alone treat a load failure as advisory.
type commandContext struct {
	configDirFlag *string
	logLevelFlag  *string
	logFormatFlag *string

	configOnce sync.Once
	config     *config.Config
	configDir  string
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configDirFlag, logLevelFlag, logFormatFlag *string) *commandContext {
	return &commandContext{
		configDirFlag: configDirFlag,
		logLevelFlag:  logLevelFlag,
		logFormatFlag: logFormatFlag,
	}
}

// ensureConfig loads configuration once and caches the outcome.
func (c *commandContext) ensureConfig() (*config.Config, string, error) {
	c.configOnce.Do(func() {
		var dir string
		if c.configDirFlag != nil {
			dir = strings.TrimSpace(*c.configDirFlag)
		}
		c.config, c.configDir, c.configErr = config.Load(dir)
	})
	return c.config, c.configDir, c.configErr
}

// configValue returns the loaded config or nil when loading failed. Commands
// that only use config for defaults call this and fall back to their
// positional arguments.
func (c *commandContext) configValue() *config.Config {
	cfg, _, _ := c.ensureConfig()
	return cfg
}

// ensureLogger builds the process logger, letting flags override the config
// file. Falls back to defaults when no config is available.
func (c *commandContext) ensureLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		opts := logging.Options{}
		if cfg := c.configValue(); cfg != nil {
			opts.Level = cfg.Logging.Level
			opts.Format = cfg.Logging.Format
		}
		if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
			opts.Level = *c.logLevelFlag
		}
		if c.logFormatFlag != nil && strings.TrimSpace(*c.logFormatFlag) != "" {
			opts.Format = *c.logFormatFlag
		}

		logger, err := logging.New(opts)
		if err != nil {
			// Bad format override; fall back to defaults rather than dying
			// before the command can report anything.
			logger, _ = logging.New(logging.Options{})
		}
		c.logger = logger
	})
	return c.logger
}
