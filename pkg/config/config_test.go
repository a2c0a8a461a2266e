package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 20, cfg.MaxProc)
	assert.Equal(t, int64(math.MinInt64), cfg.MinSemKey)
	assert.Equal(t, int64(math.MaxInt64), cfg.MaxSemKey)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kernos.yaml")
	data := []byte("max_proc: 64\nmin_sem_key: -1000\nmax_sem_key: 1000\nlog_level: DEBUG\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.MaxProc)
	assert.Equal(t, int64(-1000), cfg.MinSemKey)
	assert.Equal(t, int64(1000), cfg.MaxSemKey)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kernos.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_proc: 8\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.MaxProc)
	assert.Equal(t, int64(math.MinInt64), cfg.MinSemKey)
	assert.Equal(t, "INFO", cfg.LogLevel)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_proc: [nope"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"zero capacity", func(c *Config) { c.MaxProc = 0 }, ErrBadMaxProc},
		{"negative capacity", func(c *Config) { c.MaxProc = -5 }, ErrBadMaxProc},
		{"inverted key span", func(c *Config) { c.MinSemKey = 10; c.MaxSemKey = 10 }, ErrBadKeySpan},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.wantErr)
		})
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_proc: 0\n"), 0o644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrBadMaxProc)
}
