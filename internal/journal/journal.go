// Package journal implements the per-run cleanup journal.
//
// The journal is fail-safe by contract: Record must be inert from the caller's
// point of view. It never returns an error, never panics, and never blocks
// beyond the cost of one local file append. All failure handling lives inside
// the journal's own one-way state transition:
//
//	durable --(any write or init failure)--> nop
//
// There is no transition back. Entering the nop strategy from the durable one
// leaves a best-effort forensic artifact behind (a PARTIAL rename mid-run, an
// INIT_FAILED stub at startup) so a degraded run is still diagnosable from the
// log directory alone.
package journal

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Level is the severity token written into each journal line.
type Level string

const (
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"

	// LevelStart and LevelSummary mark the run boundary records. They share
	// the line format with the severity levels.
	LevelStart   Level = "START"
	LevelSummary Level = "SUMMARY"
)

// lineTimestampLayout is ISO-8601 with the local UTC offset, matching the
// established journal line format.
const lineTimestampLayout = "2006-01-02T15:04:05-07:00"

// Config describes one run's journal.
type Config struct {
	// Dir is the log directory. It is created if absent.
	Dir string

	// RunID, Mode and TargetDir are stamped into the START record.
	RunID     string
	Mode      string
	TargetDir string

	// Now is the clock; nil means time.Now.
	Now func() time.Time
}

// Journal writes one artifact per run through its active sink.
//
// A Journal is always usable: Open never fails observably, and a Journal that
// could not bind a durable artifact simply discards records.
type Journal struct {
	dir   string
	stamp string
	path  string
	now   func() time.Time

	sink     Sink
	degraded bool
}

// Open binds a journal for one run.
//
// It ensures the log directory exists and creates a fresh artifact named from
// the current timestamp, then writes the START record. If any step fails the
// returned Journal is already degraded to the nop strategy, after a
// best-effort attempt to leave an INIT_FAILED stub describing the reason.
// Open never returns an error; degradation is observable via Degraded only.
func Open(cfg Config) *Journal {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	j := &Journal{dir: cfg.Dir, now: now}
	j.stamp = now().Format(nameTimestampLayout)

	if err := j.initDurable(); err != nil {
		j.writeInitFailedStub(err)
		j.path = ""
		j.sink = nopSink{}
		j.degraded = true
		return j
	}

	j.Record(LevelStart, fmt.Sprintf("run %s started mode=%s target=%s", cfg.RunID, cfg.Mode, cfg.TargetDir))
	return j
}

func (j *Journal) initDurable() error {
	if err := os.MkdirAll(j.dir, 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	j.path = filepath.Join(j.dir, normalName(j.stamp))
	// O_APPEND rather than O_EXCL: a timestamp collision with an existing
	// artifact appends to it instead of failing the run.
	f, err := os.OpenFile(j.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("create log artifact: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("create log artifact: %w", err)
	}
	j.sink = newDurableSink(j.path)
	return nil
}

// Record appends one line to the active sink. It is contractually inert:
// no error return, no panic, no effect on the caller when the journal has
// degraded. Callers therefore never branch on journal health.
func (j *Journal) Record(level Level, message string) {
	if j == nil || j.sink == nil {
		return
	}
	defer func() {
		_ = recover()
	}()

	line := fmt.Sprintf("%s | %s | %s\n", j.now().Format(lineTimestampLayout), level, message)
	if err := j.sink.Append(line); err != nil {
		j.degrade(err)
	}
}

// Recordf is Record with formatting.
func (j *Journal) Recordf(level Level, format string, args ...any) {
	j.Record(level, fmt.Sprintf(format, args...))
}

// degrade runs the one-way transition to the nop strategy after a mid-run
// write failure. Steps:
//
//  1. verify the artifact still exists
//  2. rename it in place to the PARTIAL convention, keeping its timestamp
//  3. append one ERROR line describing the trigger to the renamed artifact
//  4. switch the active sink to nop
//
// Steps 1-3 are each best-effort; no failure among them may prevent step 4.
func (j *Journal) degrade(cause error) {
	defer func() {
		_ = recover()
		j.sink = nopSink{}
		j.degraded = true
	}()

	if _, err := os.Stat(j.path); err != nil {
		return
	}
	partial := filepath.Join(j.dir, partialName(j.stamp))
	if err := os.Rename(j.path, partial); err != nil {
		return
	}
	line := fmt.Sprintf("%s | %s | journal write failed, degrading to no-op: %v\n",
		j.now().Format(lineTimestampLayout), LevelError, cause)
	_ = appendToFile(partial, line)
}

// writeInitFailedStub records that the journal never started. Best-effort:
// when the log directory itself is the problem the stub cannot be written
// either, and that is accepted.
func (j *Journal) writeInitFailedStub(cause error) {
	defer func() {
		_ = recover()
	}()
	stub := filepath.Join(j.dir, initFailedName(j.stamp))
	line := fmt.Sprintf("%s | %s | journal init failed: %v\n",
		j.now().Format(lineTimestampLayout), LevelError, cause)
	_ = os.WriteFile(stub, []byte(line), 0o644)
}

// Degraded reports whether the journal has switched to the nop strategy,
// either at init or mid-run.
func (j *Journal) Degraded() bool {
	if j == nil {
		return true
	}
	return j.degraded
}

// ArtifactPath returns the path of the durable artifact this journal bound at
// init, or "" when init failed. After mid-run degradation the file at this
// path has been renamed to the PARTIAL convention.
func (j *Journal) ArtifactPath() string {
	if j == nil {
		return ""
	}
	return j.path
}
