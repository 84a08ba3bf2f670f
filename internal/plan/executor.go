package plan

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/paranoidi/tidyflix/internal/logging"
	"github.com/paranoidi/tidyflix/internal/services"
)

// lockFileName guards the mutation phase against concurrent runs on the
// same library directory.
const lockFileName = ".tidyflix.lock"

// Result records the outcome of one applied action.
type Result struct {
	Action Action
	Err    error
}

// Executor applies plans to the filesystem. All mutation is serialized
// under a per-library file lock so a decision is never invalidated by an
// interleaved run.
type Executor struct {
	logger  *slog.Logger
	dryRun  bool
	lockDir string
}

// NewExecutor builds an Executor that locks lockDir while applying. In
// dry-run mode actions are logged and reported as successful without
// touching the filesystem.
func NewExecutor(lockDir string, dryRun bool, logger *slog.Logger) *Executor {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Executor{logger: logger, dryRun: dryRun, lockDir: lockDir}
}

// Apply runs every action in order and returns one result per action.
// A failed action is recorded and execution continues; the returned
// error is non-nil when the lock cannot be taken or any action failed.
func (e *Executor) Apply(p *Plan) ([]Result, error) {
	if p.Empty() {
		return nil, nil
	}

	if !e.dryRun {
		lock := flock.New(filepath.Join(e.lockDir, lockFileName))
		locked, err := lock.TryLock()
		if err != nil {
			return nil, services.Wrap(services.ErrExecution, "apply plan", "acquire library lock", err)
		}
		if !locked {
			return nil, services.Wrap(services.ErrExecution, "apply plan", "library is locked by another run", nil)
		}
		defer func() {
			_ = lock.Unlock()
			_ = os.Remove(lock.Path())
		}()
	}

	results := make([]Result, 0, len(p.Actions))
	failed := 0
	for _, action := range p.Actions {
		err := e.apply(action)
		if err != nil {
			failed++
			e.logger.Error("action failed",
				logging.String("action", action.Describe()),
				logging.Error(err))
		} else {
			e.logger.Info("applied",
				logging.String("action", action.Describe()),
				logging.Bool("dry_run", e.dryRun))
		}
		results = append(results, Result{Action: action, Err: err})
	}
	if failed > 0 {
		return results, services.Wrap(services.ErrExecution, "apply plan",
			"some actions failed", fmt.Errorf("%d of %d", failed, len(p.Actions)))
	}
	return results, nil
}

func (e *Executor) apply(action Action) error {
	if e.dryRun {
		return nil
	}
	switch action.Kind {
	case Rename:
		if _, err := os.Lstat(action.Target); err == nil {
			return services.Wrap(services.ErrExecution, "rename", "target already exists", nil)
		}
		if err := os.MkdirAll(filepath.Dir(action.Target), 0o755); err != nil {
			return services.Wrap(services.ErrExecution, "rename", "create target parent", err)
		}
		if err := os.Rename(action.Source, action.Target); err != nil {
			return services.Wrap(services.ErrExecution, "rename", "move failed", err)
		}
		return nil
	case Delete:
		if err := os.RemoveAll(action.Source); err != nil {
			return services.Wrap(services.ErrExecution, "delete", "remove failed", err)
		}
		return nil
	default:
		return services.Wrap(services.ErrExecution, "apply", "unknown action kind", nil)
	}
}
