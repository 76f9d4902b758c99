package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

const (
	ExitSuccess           = 0
	ExitMissingTarget     = 1
	ExitInvalidInvocation = 2
	ExitConfigError       = 3
	ExitInternalError     = 4
)

// Invocation is the canonicalized description of one cleanup run: the config
// file to load plus optional per-invocation overrides applied on top of it.
type Invocation struct {
	ConfigPath string

	// Overrides; empty means "use the configured value".
	TargetDir string
	LogDir    string
	Mode      string
}

type InvocationError struct {
	ExitCode int
	Message  string
}

func (e *InvocationError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func invalidInvocationf(format string, args ...any) error {
	return &InvocationError{ExitCode: ExitInvalidInvocation, Message: fmt.Sprintf(format, args...)}
}

// ParseInvocation parses CLI flags into a canonical Invocation.
//
// Parsing errors are returned, never printed; the caller owns presentation.
func ParseInvocation(args []string) (Invocation, error) {
	fs := flag.NewFlagSet("filecleaner", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var configPath string
	var targetDir string
	var logDir string
	var mode string

	fs.StringVar(&configPath, "config", "", "Path to the YAML configuration file. Required.")
	fs.StringVar(&targetDir, "target-dir", "", "Override the configured target directory.")
	fs.StringVar(&logDir, "log-dir", "", "Override the configured log directory.")
	fs.StringVar(&mode, "mode", "", "Override the configured run mode: TEST|LIVE.")

	if err := fs.Parse(args); err != nil {
		return Invocation{}, invalidInvocationf("%v", err)
	}
	if fs.NArg() != 0 {
		return Invocation{}, invalidInvocationf("unexpected positional arguments: %q", strings.Join(fs.Args(), " "))
	}
	if strings.TrimSpace(configPath) == "" {
		return Invocation{}, invalidInvocationf("--config is required")
	}

	inv := Invocation{
		ConfigPath: filepath.Clean(configPath),
		Mode:       strings.TrimSpace(mode),
	}
	if strings.TrimSpace(targetDir) != "" {
		inv.TargetDir = filepath.Clean(targetDir)
	}
	if strings.TrimSpace(logDir) != "" {
		inv.LogDir = filepath.Clean(logDir)
	}
	return inv, nil
}

// ExitCodeFor extracts a semantic exit code from a ParseInvocation error.
func ExitCodeFor(err error) int {
	var invErr *InvocationError
	if errors.As(err, &invErr) && invErr != nil {
		if invErr.ExitCode != 0 {
			return invErr.ExitCode
		}
		return ExitInvalidInvocation
	}
	if err == nil {
		return ExitSuccess
	}
	return ExitInternalError
}
