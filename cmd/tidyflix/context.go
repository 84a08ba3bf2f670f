package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/paranoidi/tidyflix/internal/config"
	"github.com/paranoidi/tidyflix/internal/logging"
)

type commandContext struct {
	configFlag  *string
	noColorFlag *bool

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag *string, noColorFlag *bool) *commandContext {
	return &commandContext{configFlag: configFlag, noColorFlag: noColorFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		logger, err := logging.New(logging.Options{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
		})
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		c.logger = logger
	})
	return c.logger
}

func (c *commandContext) colorEnabled() bool {
	if c.noColorFlag != nil && *c.noColorFlag {
		return false
	}
	return stdoutIsTerminal()
}
