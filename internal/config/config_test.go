package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv(t *testing.T) {
	tests := []struct {
		name       string
		env        map[string]string
		wantAddr   string
		wantLevel  zerolog.Level
		wantFormat string
		wantErr    error
	}{
		{
			name:       "defaults",
			wantAddr:   DefaultAddr,
			wantLevel:  zerolog.InfoLevel,
			wantFormat: "console",
		},
		{
			name: "overrides",
			env: map[string]string{
				envAddr:      ":9000",
				envLogLevel:  "DEBUG",
				envLogFormat: "json",
			},
			wantAddr:   ":9000",
			wantLevel:  zerolog.DebugLevel,
			wantFormat: "json",
		},
		{
			name:    "bad level",
			env:     map[string]string{envLogLevel: "loud"},
			wantErr: ErrInvalidLogLevel,
		},
		{
			name:    "bad format",
			env:     map[string]string{envLogFormat: "xml"},
			wantErr: ErrInvalidLogFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{envAddr, envLogLevel, envLogFormat} {
				t.Setenv(key, tt.env[key])
			}

			cfg, err := FromEnv()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, cfg)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantAddr, cfg.Addr)
			assert.Equal(t, tt.wantLevel, cfg.LogLevel)
			assert.Equal(t, tt.wantFormat, cfg.LogFormat)
		})
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("MOODJUKEBOX_ADDR=:7777\n"), 0o600))
	chdir(t, dir)

	t.Setenv(envLogLevel, "")
	t.Setenv(envLogFormat, "")
	t.Setenv(envAddr, "")
	os.Unsetenv(envAddr)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":7777", cfg.Addr)
}

func TestLoadWithoutDotEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(envAddr, "")
	t.Setenv(envLogLevel, "")
	t.Setenv(envLogFormat, "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultAddr, cfg.Addr)
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent to testing.T.Chdir in Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
