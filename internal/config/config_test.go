//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/beezer.db",
			expected: filepath.Join(home, "beezer.db"),
		},
		{
			name:     "tilde with nested path",
			input:    "~/.local/share/beezer/beezer.db",
			expected: filepath.Join(home, ".local", "share", "beezer", "beezer.db"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/var/lib/beezer.db",
			expected: "/var/lib/beezer.db",
		},
		{
			name:     "relative path unchanged",
			input:    "data/beezer.db",
			expected: "data/beezer.db",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
		{
			name:     "tilde with slash",
			input:    "~/",
			expected: filepath.Join(home, ""),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	// Should have at least one path
	if len(paths) == 0 {
		t.Error("getConfigPaths() returned empty slice")
	}

	// Last path should be local config.toml
	lastPath := paths[len(paths)-1]
	if lastPath != "config.toml" {
		t.Errorf("last config path = %q, want %q", lastPath, "config.toml")
	}

	// First path is the XDG config file
	assert.Equal(t, filepath.Join(xdg.ConfigHome, "beezer", "config.toml"), paths[0])
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"BEEZER_ARTIST", "BEEZER_API_URL", "BEEZER_LANG", "BEEZER_STORE", "BEEZER_DB_PATH",
		"BEEZER_REDIS_ADDR", "BEEZER_REDIS_PASSWORD", "BEEZER_REDIS_DB", "BEEZER_LOG_LEVEL", "BEEZER_ADDR",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadPaths_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := loadPaths([]string{filepath.Join(t.TempDir(), "missing.toml")})
	require.NoError(t, err)

	assert.Equal(t, DefaultArtist, cfg.ArtistName)
	assert.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
	assert.Equal(t, DefaultTrackLimit, cfg.TrackLimit)
	assert.Equal(t, "es", cfg.Language)
	assert.Equal(t, 100, cfg.Volume)
	assert.Equal(t, "sqlite", cfg.Store.Backend)
	assert.False(t, cfg.UseRedis())
	assert.Equal(t, DefaultRedisAddr, cfg.Store.Redis.Addr)
	assert.Equal(t, "beezer", cfg.Store.Redis.KeyPrefix)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, DefaultServeAddr, cfg.Serve.Addr)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout())
}

func TestLoadPaths_BasicConfig(t *testing.T) {
	clearEnv(t)

	path := writeConfig(t, `
artist = "natanael cano"
api_url = "http://localhost:8080/deezer/"
track_limit = 10
language = "en"
timeout = "3s"

[store]
backend = "redis"
path = "~/cache.db"

[store.redis]
addr = "redis:6379"
db = 2

[log]
level = "debug"
compress = true

[install]
disabled = true

[desktop]
disable_mpris = true
`)

	cfg, err := loadPaths([]string{path})
	require.NoError(t, err)

	assert.Equal(t, "natanael cano", cfg.ArtistName)
	assert.Equal(t, "http://localhost:8080/deezer", cfg.APIBaseURL, "trailing slash trimmed")
	assert.Equal(t, 10, cfg.TrackLimit)
	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, 3*time.Second, cfg.HTTPTimeout())
	assert.True(t, cfg.UseRedis())
	assert.Equal(t, "redis:6379", cfg.Store.Redis.Addr)
	assert.Equal(t, 2, cfg.Store.Redis.DB)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Compress)
	assert.True(t, cfg.Install.Disabled)
	assert.True(t, cfg.Desktop.DisableMPRIS)
	assert.False(t, cfg.Desktop.DisableNotifications)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "cache.db"), cfg.Store.Path)
}

func TestLoadPaths_LastWins(t *testing.T) {
	clearEnv(t)

	first := writeConfig(t, "artist = \"first\"\ntrack_limit = 3\n")
	second := writeConfig(t, "artist = \"second\"\n")

	cfg, err := loadPaths([]string{first, second})
	require.NoError(t, err)

	assert.Equal(t, "second", cfg.ArtistName)
	assert.Equal(t, 3, cfg.TrackLimit)
}

func TestLoadPaths_InvalidToml(t *testing.T) {
	clearEnv(t)

	_, err := loadPaths([]string{writeConfig(t, "invalid = [[[")})
	require.Error(t, err)
}

func TestLoadPaths_InvalidValuesFallBack(t *testing.T) {
	clearEnv(t)

	path := writeConfig(t, `
track_limit = -1
language = "fr"
volume = 250
timeout = "soon"

[store]
backend = "postgres"
`)

	cfg, err := loadPaths([]string{path})
	require.NoError(t, err)

	assert.Equal(t, DefaultTrackLimit, cfg.TrackLimit)
	assert.Equal(t, DefaultLanguage, cfg.Language)
	assert.Equal(t, 100, cfg.Volume)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout())
	assert.Equal(t, "sqlite", cfg.Store.Backend)
}

func TestLoadPaths_ZeroVolumeIsKept(t *testing.T) {
	clearEnv(t)

	cfg, err := loadPaths([]string{writeConfig(t, "volume = 0\n")})
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Volume)

	cfg, err = loadPaths([]string{writeConfig(t, "volume = -5\n")})
	require.NoError(t, err)
	assert.Equal(t, DefaultVolume, cfg.Volume)
}

func TestLoadPaths_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("BEEZER_ARTIST", "peso pluma")
	t.Setenv("BEEZER_LANG", "en")
	t.Setenv("BEEZER_STORE", "redis")
	t.Setenv("BEEZER_REDIS_DB", "5")
	t.Setenv("BEEZER_ADDR", ":9000")

	path := writeConfig(t, "artist = \"from file\"\nlanguage = \"es\"\n")

	cfg, err := loadPaths([]string{path})
	require.NoError(t, err)

	assert.Equal(t, "peso pluma", cfg.ArtistName)
	assert.Equal(t, "en", cfg.Language)
	assert.True(t, cfg.UseRedis())
	assert.Equal(t, 5, cfg.Store.Redis.DB)
	assert.Equal(t, ":9000", cfg.Serve.Addr)
}

func TestLogFile(t *testing.T) {
	cfg := &Config{Log: LogConfig{File: "/tmp/beezer.log"}}
	path, err := cfg.LogFile()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/beezer.log", path)
}
