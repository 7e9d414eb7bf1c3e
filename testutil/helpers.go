// Package testutil builds the kaspactl binary for integration and e2e tests
// and provides helpers for asserting on its output.
package testutil

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// BuildTestBinary compiles kaspactl into a temp dir and returns the path.
func BuildTestBinary(t *testing.T) string {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "kaspactl-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	binaryPath := filepath.Join(tmpDir, "kaspactl")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/kaspactl")
	cmd.Dir = findProjectRoot(t)

	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to build test binary: %v\n%s", err, out)
	}
	return binaryPath
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(wd, "go.mod")); err == nil {
			return wd
		}
		parent := filepath.Dir(wd)
		if parent == wd {
			t.Fatalf("could not find project root (go.mod)")
		}
		wd = parent
	}
}

// CommandResult captures one kaspactl invocation.
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Err      error
}

// RunBinary runs the built binary against installDir and captures the result.
func RunBinary(t *testing.T, binary, installDir string, args ...string) CommandResult {
	t.Helper()

	cmd := exec.Command(binary, append([]string{"--dir", installDir}, args...)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := CommandResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
		Err:    err,
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		result.ExitCode = exitErr.ExitCode()
		result.Err = nil
	} else if err != nil {
		result.ExitCode = -1
	}
	return result
}

func AssertCommandSuccess(t *testing.T, result CommandResult) {
	t.Helper()
	if result.Err != nil {
		t.Errorf("expected command to succeed, got error: %v\nstderr: %s", result.Err, result.Stderr)
	}
	if result.ExitCode != 0 {
		t.Errorf("expected exit code 0, got %d\nstderr: %s", result.ExitCode, result.Stderr)
	}
}

func AssertCommandFailure(t *testing.T, result CommandResult) {
	t.Helper()
	if result.ExitCode == 0 && result.Err == nil {
		t.Errorf("expected command to fail, but exit code was 0")
	}
}
