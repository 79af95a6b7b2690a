//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"strings"
	"testing"
)

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	APIEndpoint string
	Token       string
	BinaryPath  string
	Verbose     bool
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		APIEndpoint: os.Getenv("CLOUDRES_API"),
		Token:       os.Getenv("CLOUDRES_TOKEN"),
		BinaryPath:  binaryPath(),
		Verbose:     os.Getenv("CLOUDRES_VERBOSE") == "true",
	}
}

func binaryPath() string {
	if path := os.Getenv("CLOUDRES_BINARY_PATH"); path != "" {
		return path
	}

	for _, candidate := range []string{"../../cloudres", "./cloudres", "../cloudres"} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "cloudres"
}

// SkipIfMissingConfig skips the test when no API or binary is available.
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.APIEndpoint == "" {
		t.Skip("CLOUDRES_API not set, skipping integration test")
	}

	if _, err := exec.LookPath(config.BinaryPath); err != nil {
		t.Skipf("cloudres binary not found at %s, skipping integration test", config.BinaryPath)
	}
}

// CommandRunner runs the cloudres binary with a private completion cache.
type CommandRunner struct {
	config   *TestConfig
	t        *testing.T
	cacheDir string
}

// NewCommandRunner creates a new command runner.
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	t.Helper()

	return &CommandRunner{config: config, t: t, cacheDir: t.TempDir()}
}

// Run executes a cloudres command and returns its output.
func (runner *CommandRunner) Run(args ...string) (string, string, error) {
	args = append([]string{"--cache-type", "file", "--cache-dir", runner.cacheDir}, args...)

	cmd := exec.Command(runner.config.BinaryPath, args...)
	cmd.Env = append(os.Environ(), "CLOUDRES_API="+runner.config.APIEndpoint, "CLOUDRES_TOKEN="+runner.config.Token)

	var stdoutBuf, stderrBuf bytes.Buffer

	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.BinaryPath, strings.Join(args, " "))
	}

	err := cmd.Run()
	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdoutBuf.String(), stderrBuf.String())
	}

	return stdoutBuf.String(), stderrBuf.String(), err
}

// DecodeJSON decodes command output, failing the test on invalid JSON.
func DecodeJSON(t *testing.T, output string, target interface{}) {
	t.Helper()

	err := json.Unmarshal([]byte(output), target)
	if err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, output)
	}
}
