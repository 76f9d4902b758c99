package cli

import (
	"errors"
	"testing"
)

func TestParseInvocation_ConfigRequired(t *testing.T) {
	_, err := ParseInvocation(nil)
	var invErr *InvocationError
	if !errors.As(err, &invErr) {
		t.Fatalf("expected InvocationError, got %v", err)
	}
	if invErr.ExitCode != ExitInvalidInvocation {
		t.Fatalf("exit code = %d, want %d", invErr.ExitCode, ExitInvalidInvocation)
	}
	if invErr.Message != "--config is required" {
		t.Fatalf("message = %q", invErr.Message)
	}
}

func TestParseInvocation_UnknownFlag(t *testing.T) {
	_, err := ParseInvocation([]string{"--config", "c.yaml", "--frobnicate"})
	if ExitCodeFor(err) != ExitInvalidInvocation {
		t.Fatalf("unknown flag: exit = %d, err = %v", ExitCodeFor(err), err)
	}
}

func TestParseInvocation_RejectsPositionalArgs(t *testing.T) {
	_, err := ParseInvocation([]string{"--config", "c.yaml", "stray"})
	if ExitCodeFor(err) != ExitInvalidInvocation {
		t.Fatalf("positional args: exit = %d, err = %v", ExitCodeFor(err), err)
	}
}

func TestParseInvocation_CanonicalizesPaths(t *testing.T) {
	inv, err := ParseInvocation([]string{
		"--config", "./conf/../config.yaml",
		"--target-dir", "/srv//drop/",
		"--log-dir", "/var/log/./filecleaner",
		"--mode", " live ",
	})
	if err != nil {
		t.Fatalf("ParseInvocation: %v", err)
	}
	if inv.ConfigPath != "config.yaml" {
		t.Errorf("ConfigPath = %q", inv.ConfigPath)
	}
	if inv.TargetDir != "/srv/drop" {
		t.Errorf("TargetDir = %q", inv.TargetDir)
	}
	if inv.LogDir != "/var/log/filecleaner" {
		t.Errorf("LogDir = %q", inv.LogDir)
	}
	if inv.Mode != "live" {
		t.Errorf("Mode = %q", inv.Mode)
	}
}

func TestParseInvocation_OverridesOptional(t *testing.T) {
	inv, err := ParseInvocation([]string{"--config", "config.yaml"})
	if err != nil {
		t.Fatalf("ParseInvocation: %v", err)
	}
	if inv.TargetDir != "" || inv.LogDir != "" || inv.Mode != "" {
		t.Fatalf("overrides must default to empty: %+v", inv)
	}
}

func TestExitCodeFor(t *testing.T) {
	if got := ExitCodeFor(nil); got != ExitSuccess {
		t.Errorf("nil error: %d", got)
	}
	if got := ExitCodeFor(errors.New("boom")); got != ExitInternalError {
		t.Errorf("plain error: %d", got)
	}
	if got := ExitCodeFor(&InvocationError{ExitCode: 0, Message: "m"}); got != ExitInvalidInvocation {
		t.Errorf("zero-coded invocation error: %d", got)
	}
}
