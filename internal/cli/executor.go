package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/zarraq-dev/windows-scheduled-file-cleaner-script/internal/cleaner"
	"github.com/zarraq-dev/windows-scheduled-file-cleaner-script/internal/config"
	"github.com/zarraq-dev/windows-scheduled-file-cleaner-script/internal/journal"
)

// Result is the outcome of one invocation.
type Result struct {
	ExitCode int
	Counters cleaner.RunCounters
}

// Execute maps a canonical Invocation to one cleanup run.
//
// Responsibilities:
//   - Load and validate configuration, apply invocation overrides.
//   - Open the run journal (which may silently degrade) and sweep old
//     artifacts regardless of journal health.
//   - Drive the cleanup pass and translate its outcome to a semantic exit
//     code; panics map to ExitInternalError.
func Execute(ctx context.Context, inv Invocation, console io.Writer) (res Result, execErr error) {
	res.ExitCode = ExitInternalError
	if console == nil {
		console = io.Discard
	}

	defer func() {
		if r := recover(); r != nil {
			res.ExitCode = ExitInternalError
			execErr = fmt.Errorf("panic: %v", r)
		}
	}()

	cfg, err := config.Load(inv.ConfigPath)
	if err != nil {
		res.ExitCode = ExitConfigError
		return res, err
	}
	if inv.TargetDir != "" {
		cfg.TargetDir = inv.TargetDir
	}
	if inv.LogDir != "" {
		cfg.LogDir = inv.LogDir
	}
	if inv.Mode != "" {
		cfg.Mode = inv.Mode
	}

	mode, err := cleaner.ParseMode(cfg.Mode)
	if err != nil {
		res.ExitCode = ExitConfigError
		return res, err
	}

	patterns := make([]cleaner.Pattern, 0, len(cfg.Patterns))
	for _, p := range cfg.Patterns {
		patterns = append(patterns, cleaner.Pattern{NameSubstring: p.Substring, Extension: p.Extension})
	}

	runID := uuid.NewString()
	j := journal.Open(journal.Config{
		Dir:       cfg.LogDir,
		RunID:     runID,
		Mode:      string(mode),
		TargetDir: cfg.TargetDir,
	})
	j.Sweep(cfg.RetentionDays)

	run := &cleaner.Run{
		TargetDir: cfg.TargetDir,
		Patterns:  patterns,
		AgeHours:  cfg.AgeHours,
		Mode:      mode,
		Journal:   j,
		Console:   console,
		Now:       time.Now,
	}

	counters, err := run.Execute()
	res.Counters = counters
	switch {
	case errors.Is(err, cleaner.ErrTargetMissing):
		res.ExitCode = ExitMissingTarget
		return res, err
	case err != nil:
		res.ExitCode = ExitInternalError
		return res, err
	}
	res.ExitCode = ExitSuccess
	return res, nil
}

// Run is the high-level entrypoint suitable for black-box tests: it accepts
// the argument slice (excluding argv[0]) and returns the semantic exit code
// plus any error. Console output goes to stdout.
func Run(ctx context.Context, args []string) (Result, error) {
	inv, err := ParseInvocation(args)
	if err != nil {
		return Result{ExitCode: ExitCodeFor(err)}, err
	}
	return Execute(ctx, inv, os.Stdout)
}
