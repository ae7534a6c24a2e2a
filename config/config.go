package config

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"smartude/internal/model"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Device-local state
	Storage StorageConfig
	Session SessionConfig

	// Remote account service
	Supabase SupabaseConfig
	OAuth    OAuthConfig
	Sync     SyncConfig

	// Reminders
	GoogleCalendar GoogleCalendarConfig
	Reminder       ReminderConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	PerMinute  int
	Burst      int
	MaxClients int
}

// StorageConfig selects the kv driver: file, sqlite or memory.
type StorageConfig struct {
	Driver string
	Path   string
}

// SessionConfig keys the at-rest encoding of the session record.
// Keys are base64 in the config file; empty keys are generated at startup.
type SessionConfig struct {
	HashKey  []byte
	BlockKey []byte
	MaxAge   time.Duration
}

type SupabaseConfig struct {
	URL          string
	AnonKey      string
	Timeout      time.Duration
	UserCacheTTL time.Duration
	UserCacheMax int
}

type OAuthConfig struct {
	Providers     []string
	RedirectURL   string
	StateTTL      time.Duration
	RefreshLeeway time.Duration
}

type SyncConfig struct {
	Mode    string // push or merge
	Timeout time.Duration
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
}

type ReminderConfig struct {
	Timezone        string
	ReminderMinutes []int64
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.PerMinute = viper.GetInt("rate_limit.per_minute")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")
	cfg.RateLimit.MaxClients = viper.GetInt("rate_limit.max_clients")

	// Storage & session
	cfg.Storage.Driver = viper.GetString("storage.driver")
	cfg.Storage.Path = viper.GetString("storage.path")

	var err error
	if cfg.Session.HashKey, err = decodeKey("session.hash_key"); err != nil {
		return nil, err
	}
	if cfg.Session.BlockKey, err = decodeKey("session.block_key"); err != nil {
		return nil, err
	}
	cfg.Session.MaxAge = viper.GetDuration("session.max_age")

	// Supabase
	cfg.Supabase.URL = expandEnvVar(viper.GetString("supabase.url"))
	cfg.Supabase.AnonKey = expandEnvVar(viper.GetString("supabase.anon_key"))
	if url := viper.GetString("supabase_url"); url != "" {
		cfg.Supabase.URL = url
	}
	if key := viper.GetString("supabase_anon_key"); key != "" {
		cfg.Supabase.AnonKey = key
	}
	cfg.Supabase.Timeout = viper.GetDuration("supabase.timeout")
	cfg.Supabase.UserCacheTTL = viper.GetDuration("supabase.user_cache_ttl")
	cfg.Supabase.UserCacheMax = viper.GetInt("supabase.user_cache_max")

	cfg.OAuth.Providers = splitList(viper.GetStringSlice("oauth.providers"))
	cfg.OAuth.RedirectURL = viper.GetString("oauth.redirect_url")
	cfg.OAuth.StateTTL = viper.GetDuration("oauth.state_ttl")
	cfg.OAuth.RefreshLeeway = viper.GetDuration("oauth.refresh_leeway")

	cfg.Sync.Mode = viper.GetString("sync.mode")
	cfg.Sync.Timeout = viper.GetDuration("sync.timeout")

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = viper.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	cfg.Reminder.Timezone = viper.GetString("reminder.timezone")
	for _, m := range viper.GetIntSlice("reminder.minutes_before") {
		cfg.Reminder.ReminderMinutes = append(cfg.Reminder.ReminderMinutes, int64(m))
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.per_minute", 30)
	viper.SetDefault("rate_limit.burst", 10)
	viper.SetDefault("rate_limit.max_clients", 1024)

	viper.SetDefault("storage.driver", "file")
	viper.SetDefault("storage.path", "./data")
	viper.SetDefault("session.max_age", "720h")

	viper.SetDefault("supabase.timeout", "10s")
	viper.SetDefault("supabase.user_cache_ttl", "1m")
	viper.SetDefault("supabase.user_cache_max", 64)
	viper.SetDefault("oauth.providers", []string{"google"})
	viper.SetDefault("oauth.redirect_url", "http://localhost:8080/api/v1/auth/callback")
	viper.SetDefault("oauth.state_ttl", "10m")
	viper.SetDefault("oauth.refresh_leeway", "30s")
	viper.SetDefault("sync.mode", "push")
	viper.SetDefault("sync.timeout", "10s")

	viper.SetDefault("google_calendar.calendar_id", "primary")
	viper.SetDefault("reminder.timezone", "Europe/Berlin")
	viper.SetDefault("reminder.minutes_before", []int{1440})
}

func validate(cfg *Config) error {
	if !model.Environment(cfg.Environment.Name).Valid() {
		return fmt.Errorf("environment.name %q must be development, test or production", cfg.Environment.Name)
	}
	switch cfg.Sync.Mode {
	case "push", "merge":
	default:
		return fmt.Errorf("sync.mode %q must be push or merge", cfg.Sync.Mode)
	}
	switch len(cfg.Session.BlockKey) {
	case 0, 16, 24, 32:
	default:
		return fmt.Errorf("session.block_key must decode to 16, 24 or 32 bytes, got %d", len(cfg.Session.BlockKey))
	}
	return nil
}

// decodeKey reads a base64 key. Empty means "generate one".
func decodeKey(name string) ([]byte, error) {
	raw := strings.TrimSpace(expandEnvVar(viper.GetString(name)))
	if raw == "" {
		return nil, nil
	}
	key, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("%s is not valid base64: %w", name, err)
	}
	return key, nil
}

// splitList accepts both yaml lists and comma-separated env values.
func splitList(in []string) []string {
	var out []string
	for _, v := range in {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// expandEnvVar expands values written as ${VAR_NAME}.
func expandEnvVar(value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}
	envVar := value[2 : len(value)-1]
	if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return os.Getenv(envVar)
}
