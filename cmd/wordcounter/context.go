package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"wordcounter/internal/config"
	"wordcounter/internal/history"
	"wordcounter/internal/logging"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) configPath() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(c.configPath())
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// loggerValue never fails. When the log file cannot be opened the logger
// falls back to stderr alone, and to the no-op logger after that.
func (c *commandContext) loggerValue() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err == nil {
			c.logger = logger
			return
		}
		fallback, fallbackErr := logging.New(logging.Options{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
		if fallbackErr != nil {
			c.logger = logging.NewNop()
			return
		}
		fallback.Warn("log file unavailable; logging to stderr only", logging.Error(err))
		c.logger = fallback
	})
	return c.logger
}

// openHistory returns nil when history is disabled. The history directory is
// created here, so a failure only affects history.
func (c *commandContext) openHistory() (*history.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	if !cfg.History.Enabled {
		return nil, nil
	}
	return history.Open(cfg)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
