package integration

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// buildBinary builds the cwlog binary and returns its path
func buildBinary(t *testing.T) string {
	t.Helper()

	binary := filepath.Join(t.TempDir(), "cwlog")

	cmd := exec.Command("go", "build", "-o", binary, "./cmd/cwlog")
	cmd.Dir = projectRoot(t)
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("failed to build binary: %v\n%s", err, output)
	}

	return binary
}

// projectRoot is two directories up from test/integration
func projectRoot(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	return filepath.Join(wd, "..", "..")
}

type result struct {
	stdout   string
	stderr   string
	exitCode int
}

// runCwlog runs the binary in dir with stdin closed and no AWS settings
// inherited from the caller
func runCwlog(t *testing.T, binary, dir string, args ...string) result {
	t.Helper()

	cmd := exec.Command(binary, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"AWS_PROFILE=", "LOG_PREFIX=", "SLS_STAGE=",
		"CWLOG_PROFILE=", "CWLOG_PREFIX=", "CWLOG_STAGE=",
	)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	code := 0
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.ExitCode()
	} else if err != nil {
		t.Fatalf("failed to run cwlog: %v", err)
	}

	return result{stdout: stdout.String(), stderr: stderr.String(), exitCode: code}
}

// writeFile writes content under dir with owner-only permissions
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// skipShort skips the test if -short flag is provided
func skipShort(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
}
