package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/password-guesser/internal/types"
)

func newFlagCommand(t *testing.T, args ...string) (*cobra.Command, *generationFlags) {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	f := &generationFlags{}
	f.register(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd, f
}

func withConfigPath(t *testing.T, path string) {
	t.Helper()
	old := configPath
	configPath = path
	t.Cleanup(func() { configPath = old })
}

func TestResolve_Defaults(t *testing.T) {
	withConfigPath(t, "")
	t.Setenv("DATABASE_URL", "")

	cmd, f := newFlagCommand(t)
	cfg, err := f.resolve(cmd)
	require.NoError(t, err)

	opts, err := f.runOptions(cfg)
	require.NoError(t, err)
	assert.Equal(t, types.DefaultGenerationConfig(), opts.Generation)
	assert.Empty(t, opts.DatabaseURL)
	assert.False(t, opts.Verbose)
}

func TestResolve_FlagsOverrideConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"depth": "fast", "min_length": 4, "max_length": 12, "workers": 3}`), 0644))
	withConfigPath(t, path)
	t.Setenv("DATABASE_URL", "postgres://env/potfile")

	cmd, f := newFlagCommand(t, "--depth", "deep", "--profile", "p.yaml", "-v")
	cfg, err := f.resolve(cmd)
	require.NoError(t, err)

	opts, err := f.runOptions(cfg)
	require.NoError(t, err)
	assert.Equal(t, types.GenerationConfig{Depth: types.DepthDeep, MinLength: 4, MaxLength: 12}, opts.Generation)
	assert.Equal(t, 3, opts.Workers)
	assert.Equal(t, "p.yaml", opts.ProfilePath)
	assert.Equal(t, "postgres://env/potfile", opts.DatabaseURL)
	assert.True(t, opts.Verbose)
}

func TestResolve_ConfigDatabaseURLWinsOverEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"database_url": "postgres://file/potfile"}`), 0644))
	withConfigPath(t, path)
	t.Setenv("DATABASE_URL", "postgres://env/potfile")

	cmd, f := newFlagCommand(t)
	cfg, err := f.resolve(cmd)
	require.NoError(t, err)
	assert.Equal(t, "postgres://file/potfile", cfg.DatabaseURL)
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name   string
		config string
		args   []string
	}{
		{name: "bad depth flag", args: []string{"--depth", "extreme"}},
		{name: "inverted lengths", args: []string{"--min-length", "20", "--max-length", "8"}},
		{name: "explicit zero lengths", args: []string{"--min-length", "0", "--max-length", "0"}},
		{name: "explicit zero min length", args: []string{"--min-length", "0"}},
		{name: "negative max length", args: []string{"--max-length", "-4"}},
		{name: "config schema", config: `{"depth": "extreme"}`},
		{name: "config json", config: `{depth: fast}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := ""
			if tt.config != "" {
				path = filepath.Join(t.TempDir(), "config.json")
				require.NoError(t, os.WriteFile(path, []byte(tt.config), 0644))
			}
			withConfigPath(t, path)

			cmd, f := newFlagCommand(t, tt.args...)
			cfg, err := f.resolve(cmd)
			if err == nil {
				_, err = f.runOptions(cfg)
			}
			assert.Error(t, err)
		})
	}
}

func TestCommandsRegistered(t *testing.T) {
	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"generate", "crack-hash", "crack-wifi", "hash", "show"} {
		assert.Contains(t, names, want)
	}
}

func TestResolve_ExplicitZeroLengthIsInvalidConfig(t *testing.T) {
	withConfigPath(t, "")

	cmd, f := newFlagCommand(t, "--min-length", "0", "--max-length", "0")
	_, err := f.resolve(cmd)
	require.Error(t, err)

	var cfgErr *types.InvalidConfigError
	assert.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, err.Error(), "--min-length")
}
