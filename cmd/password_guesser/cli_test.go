package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCommand(t *testing.T) {
	binaryPath := getBinaryPath(t)
	out := filepath.Join(t.TempDir(), "words.txt")

	cmd := exec.Command(binaryPath, "generate", "--profile", fixture("profiles", "john.yaml"), "--depth", "fast", "--output", out)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, string(output))
	assert.Contains(t, string(output), "Wrote")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Contains(t, lines, "Lakers")
	assert.Contains(t, lines, "buddybuddy")
	assert.Contains(t, lines, "password")
}

func TestGenerateCommand_MissingOutput(t *testing.T) {
	binaryPath := getBinaryPath(t)

	output, err := exec.Command(binaryPath, "generate", "--profile", fixture("profiles", "john.json")).CombinedOutput()
	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}

func TestHashThenCrack(t *testing.T) {
	binaryPath := getBinaryPath(t)

	hashOut, err := exec.Command(binaryPath, "hash", "--algo", "sha256", "Buddy1990").CombinedOutput()
	require.NoError(t, err, string(hashOut))
	hash := strings.TrimSpace(string(hashOut))
	assert.Len(t, hash, 64)

	cmd := exec.Command(binaryPath, "crack-hash", "--algo", "sha256", "--hash", hash,
		"--profile", fixture("profiles", "john.json"), "--depth", "medium")
	cmd.Env = append(os.Environ(), "DATABASE_URL=")
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, string(output))
	assert.Contains(t, string(output), "found: Buddy1990")
	assert.Contains(t, string(output), "Cracked 1/1")
}

func TestCrackHashCommand_NoTargets(t *testing.T) {
	binaryPath := getBinaryPath(t)

	output, err := exec.Command(binaryPath, "crack-hash", "--profile", fixture("profiles", "john.json")).CombinedOutput()
	assert.Error(t, err)
	assert.Contains(t, string(output), "no target hashes given")
}

func TestHashCommand_BadCost(t *testing.T) {
	binaryPath := getBinaryPath(t)

	output, err := exec.Command(binaryPath, "hash", "--algo", "bcrypt", "--cost", "2", "x").CombinedOutput()
	assert.Error(t, err)
	assert.Contains(t, string(output), "bcrypt cost out of range")
	if exitError, ok := err.(*exec.ExitError); ok {
		assert.Equal(t, 1, exitError.ExitCode())
	}
}
