package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/password-guesser/internal/types"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `{
		"depth": "deep",
		"min_length": 8,
		"max_length": 20,
		"workers": 4,
		"database_url": "postgres://localhost/pot",
		"verbose": true
	}`))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "deep", cfg.Depth)
	assert.Equal(t, 8, cfg.MinLength)
	assert.Equal(t, 20, cfg.MaxLength)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "postgres://localhost/pot", cfg.DatabaseURL)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `{ invalid json }`))
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_SchemaViolation(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `{"depth": "extreme", "job_url": "x"}`))
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "does not match schema")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"empty", Config{}, ""},
		{"valid", Config{Depth: "2", MinLength: 6, MaxLength: 12, Workers: 2}, ""},
		{"bad depth", Config{Depth: "9"}, "unknown depth"},
		{"negative min", Config{MinLength: -1}, "'min_length' must be non-negative"},
		{"negative max", Config{MaxLength: -1}, "'max_length' must be non-negative"},
		{"min above max", Config{MinLength: 10, MaxLength: 8}, "exceeds"},
		{"negative workers", Config{Workers: -2}, "'workers'"},
		{"negative chunk", Config{ChunkSize: -2}, "'chunk_size'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{Depth: "fast", Workers: 2}
	defaults := Config{Depth: "deep", MinLength: 8, MaxLength: 16, Workers: 8, ChunkSize: 64, DatabaseURL: "postgres://x"}

	merged := cfg.MergeWithDefaults(defaults)
	assert.Equal(t, "fast", merged.Depth)
	assert.Equal(t, 2, merged.Workers)
	assert.Equal(t, 8, merged.MinLength)
	assert.Equal(t, 16, merged.MaxLength)
	assert.Equal(t, 64, merged.ChunkSize)
	assert.Equal(t, "postgres://x", merged.DatabaseURL)
	assert.Equal(t, "fast", cfg.Depth, "receiver must not be modified")
}

func TestGenerationConfig(t *testing.T) {
	gc, err := (&Config{}).GenerationConfig()
	require.NoError(t, err)
	assert.Equal(t, types.DefaultGenerationConfig(), gc)

	gc, err = (&Config{Depth: "deep", MinLength: 4, MaxLength: 10}).GenerationConfig()
	require.NoError(t, err)
	assert.Equal(t, types.GenerationConfig{Depth: types.DepthDeep, MinLength: 4, MaxLength: 10}, gc)

	_, err = (&Config{MinLength: 40}).GenerationConfig()
	var invalid *types.InvalidConfigError
	assert.ErrorAs(t, err, &invalid)
}

func TestWorkersFromEnv(t *testing.T) {
	t.Setenv("MAX_WORKERS", "")
	n, err := WorkersFromEnv()
	require.NoError(t, err)
	assert.Zero(t, n)

	t.Setenv("MAX_WORKERS", " 6 ")
	n, err = WorkersFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	t.Setenv("MAX_WORKERS", "-1")
	_, err = WorkersFromEnv()
	assert.Error(t, err)

	t.Setenv("MAX_WORKERS", "lots")
	_, err = WorkersFromEnv()
	assert.Error(t, err)
}

func TestDatabaseURLFromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", " postgres://db ")
	assert.Equal(t, "postgres://db", DatabaseURLFromEnv())
}
