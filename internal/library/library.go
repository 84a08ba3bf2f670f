// Package library implements the maintenance operations that run against
// a movie directory: name normalization, junk-file cleanup, media
// verification, and loose-file organization. Each operation inspects the
// filesystem and produces a plan; applying the plan is the caller's call.
package library

import (
	"log/slog"

	"github.com/paranoidi/tidyflix/internal/config"
	"github.com/paranoidi/tidyflix/internal/logging"
	"github.com/paranoidi/tidyflix/internal/namerules"
)

// Library binds the maintenance operations to one configuration.
type Library struct {
	cfg    *config.Config
	engine *namerules.Engine
	logger *slog.Logger
}

// New builds a Library over the given configuration.
func New(cfg *config.Config, logger *slog.Logger) *Library {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Library{
		cfg: cfg,
		engine: namerules.New(namerules.Options{
			ExtraNoiseTokens: cfg.Normalize.ExtraNoiseTokens,
			MinYear:          cfg.Normalize.MinYear,
		}),
		logger: logger,
	}
}

// Engine exposes the name normalizer for callers that need explain output.
func (l *Library) Engine() *namerules.Engine {
	return l.engine
}
