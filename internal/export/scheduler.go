package export

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// exportTimeout bounds a single scheduled export.
const exportTimeout = 2 * time.Minute

// Runner performs one export.
type Runner interface {
	Export(ctx context.Context) error
}

// RunnerFunc adapts a function to Runner.
type RunnerFunc func(ctx context.Context) error

// Export calls f.
func (f RunnerFunc) Export(ctx context.Context) error {
	return f(ctx)
}

// Scheduler runs exports on a five-field cron schedule. Runs never overlap;
// a tick that arrives while an export is still running is skipped.
type Scheduler struct {
	cron   *cron.Cron
	runner Runner
	logger *slog.Logger

	mu      sync.Mutex
	entry   cron.EntryID
	running bool
	runs    int
	lastErr error
}

// NewScheduler parses spec and prepares a scheduler for runner.
func NewScheduler(spec string, runner Runner, logger *slog.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Scheduler{
		cron:   cron.New(),
		runner: runner,
		logger: logger.With("component", "scheduler"),
	}

	entry, err := s.cron.AddFunc(spec, s.Run)
	if err != nil {
		return nil, fmt.Errorf("parsing schedule %q: %w", spec, err)
	}
	s.entry = entry

	s.logger.Info("snapshot export scheduled", "schedule", spec)
	return s, nil
}

// Start begins running the schedule in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the schedule and waits for a running export, or for ctx.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.logger.Info("scheduler stopped", "runs", s.Runs())
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Next returns the next scheduled run, or the zero time before Start.
func (s *Scheduler) Next() time.Time {
	return s.cron.Entry(s.entry).Next
}

// Run performs one export immediately unless one is already running.
func (s *Scheduler) Run() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		s.logger.Warn("export still running, skipping tick")
		return
	}
	s.running = true
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), exportTimeout)
	defer cancel()

	start := time.Now()
	err := s.runner.Export(ctx)

	s.mu.Lock()
	s.running = false
	s.runs++
	s.lastErr = err
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("scheduled export failed", "duration", time.Since(start), "error", err)
		return
	}
	s.logger.Debug("scheduled export completed", "duration", time.Since(start))
}

// Runs returns how many exports have completed, successfully or not.
func (s *Scheduler) Runs() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runs
}

// LastError returns the error of the most recent export.
func (s *Scheduler) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}
