package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	DefaultArtist     = "charles ans"
	DefaultAPIBaseURL = "https://api.deezer.com"
	DefaultTrackLimit = 5
	DefaultLanguage   = "es"
	DefaultServeAddr  = "127.0.0.1:8080"
	DefaultRedisAddr  = "127.0.0.1:6379"
	DefaultVolume     = 100
)

type Config struct {
	ArtistName string `koanf:"artist"`
	APIBaseURL string `koanf:"api_url"`
	TrackLimit int    `koanf:"track_limit"`
	Language   string `koanf:"language"` // "es" or "en"
	Timeout    string `koanf:"timeout"`  // HTTP timeout, e.g. "10s"
	Volume     int    `koanf:"volume"`   // 0-100, 0 mutes

	Store   StoreConfig   `koanf:"store"`
	Log     LogConfig     `koanf:"log"`
	Serve   ServeConfig   `koanf:"serve"`
	Install InstallConfig `koanf:"install"`
	Desktop DesktopConfig `koanf:"desktop"`
}

// StoreConfig selects the local cache backend.
type StoreConfig struct {
	Backend string      `koanf:"backend"` // "sqlite" (default) or "redis"
	Path    string      `koanf:"path"`    // sqlite file, empty for the XDG data dir
	Redis   RedisConfig `koanf:"redis"`
}

type RedisConfig struct {
	Addr      string `koanf:"addr"`
	Password  string `koanf:"password"`
	DB        int    `koanf:"db"`
	KeyPrefix string `koanf:"key_prefix"`
}

// LogConfig configures the rotating log file.
type LogConfig struct {
	Level      string `koanf:"level"`
	File       string `koanf:"file"` // empty for the XDG state dir
	MaxSizeMB  int    `koanf:"max_size_mb"`
	MaxBackups int    `koanf:"max_backups"`
	MaxAgeDays int    `koanf:"max_age_days"`
	Compress   bool   `koanf:"compress"`
}

type ServeConfig struct {
	Addr string `koanf:"addr"`
}

type InstallConfig struct {
	Disabled bool `koanf:"disabled"` // never offer the desktop launcher
}

// DesktopConfig controls the D-Bus integrations of the TUI.
type DesktopConfig struct {
	DisableNotifications bool `koanf:"disable_notifications"`
	DisableMPRIS         bool `koanf:"disable_mpris"`
}

// Load reads .env, the config files and BEEZER_* overrides.
func Load() (*Config, error) {
	// Missing .env is fine; existing environment variables are not overridden.
	_ = godotenv.Load()
	return loadPaths(getConfigPaths())
}

func loadPaths(paths []string) (*Config, error) {
	k := koanf.New(".")

	// Last wins
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{Volume: DefaultVolume}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	cfg.APIBaseURL = strings.TrimSuffix(cfg.APIBaseURL, "/")
	if cfg.Store.Path != "" {
		cfg.Store.Path = expandPath(cfg.Store.Path)
	}
	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}

	return cfg, nil
}

func (c *Config) applyEnv() {
	setString(&c.ArtistName, "BEEZER_ARTIST")
	setString(&c.APIBaseURL, "BEEZER_API_URL")
	setString(&c.Language, "BEEZER_LANG")
	setString(&c.Store.Backend, "BEEZER_STORE")
	setString(&c.Store.Path, "BEEZER_DB_PATH")
	setString(&c.Store.Redis.Addr, "BEEZER_REDIS_ADDR")
	setString(&c.Store.Redis.Password, "BEEZER_REDIS_PASSWORD")
	setString(&c.Log.Level, "BEEZER_LOG_LEVEL")
	setString(&c.Serve.Addr, "BEEZER_ADDR")
	if v, ok := os.LookupEnv("BEEZER_REDIS_DB"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.Store.Redis.DB = n
		}
	}
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.ArtistName) == "" {
		c.ArtistName = DefaultArtist
	}
	if c.APIBaseURL == "" {
		c.APIBaseURL = DefaultAPIBaseURL
	}
	if c.TrackLimit <= 0 {
		c.TrackLimit = DefaultTrackLimit
	}
	if c.Language != "es" && c.Language != "en" {
		c.Language = DefaultLanguage
	}
	if c.Volume < 0 || c.Volume > 100 {
		c.Volume = DefaultVolume
	}
	if c.Store.Backend != "redis" {
		c.Store.Backend = "sqlite"
	}
	if c.Store.Redis.Addr == "" {
		c.Store.Redis.Addr = DefaultRedisAddr
	}
	if c.Store.Redis.KeyPrefix == "" {
		c.Store.Redis.KeyPrefix = "beezer"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.MaxSizeMB <= 0 {
		c.Log.MaxSizeMB = 10
	}
	if c.Log.MaxBackups <= 0 {
		c.Log.MaxBackups = 3
	}
	if c.Log.MaxAgeDays <= 0 {
		c.Log.MaxAgeDays = 28
	}
	if c.Serve.Addr == "" {
		c.Serve.Addr = DefaultServeAddr
	}
}

// HTTPTimeout returns the remote call timeout, 10s when unset or invalid.
func (c *Config) HTTPTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}

// UseRedis reports whether the redis backend is selected.
func (c *Config) UseRedis() bool {
	return c.Store.Backend == "redis"
}

// LogFile returns the log file path, defaulting to the XDG state dir.
func (c *Config) LogFile() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	return xdg.StateFile(filepath.Join("beezer", "beezer.log"))
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. $XDG_CONFIG_HOME/beezer/config.toml
	paths = append(paths, filepath.Join(xdg.ConfigHome, "beezer", "config.toml"))

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
