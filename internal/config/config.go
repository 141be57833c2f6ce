package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// FileEnv names the optional configuration file read before the environment.
const FileEnv = "DESIGNFLOW_CONFIG"

// Config captures the runtime configuration for the application.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Logging  LoggingConfig
	Session  SessionConfig
	AI       AIConfig
	Upload   UploadConfig
}

// ServerConfig configures the HTTP server runtime behavior.
type ServerConfig struct {
	Addr string
}

// DatabaseConfig contains the database connection settings.
type DatabaseConfig struct {
	URL             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	UseMock         bool
}

// LoggingConfig selects the log level and line format.
type LoggingConfig struct {
	Level  string
	Format string
}

// SessionConfig controls the browser session cookie.
type SessionConfig struct {
	Lifetime     time.Duration
	CookieName   string
	CookieDomain string
	CookieSecure bool
}

// AIConfig configures the layout suggestion service.
type AIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// UploadConfig bounds accepted screenshots.
type UploadConfig struct {
	MaxBytes     int64
	MaxDimension int
	// MaxPixels bounds width*height declared by an image header.
	MaxPixels int
}

const (
	defaultUploadMaxBytes     = 25 << 20
	defaultUploadMaxDimension = 2048
	defaultUploadMaxPixels    = 64 << 20
)

// Load inspects the environment, and the file named by DESIGNFLOW_CONFIG when
// set, and builds a Config value. Environment variables win over the file.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	if path := strings.TrimSpace(os.Getenv(FileEnv)); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
	}
	get := func(key string) string {
		return v.GetString(strings.ToLower(key))
	}

	cfg := Config{}

	cfg.Server = ServerConfig{
		Addr: firstNonEmpty(
			get("SERVER_ADDR"),
			get("ADDR"),
			":8080",
		),
	}

	cfg.Database = DatabaseConfig{
		URL: firstNonEmpty(
			get("DATABASE_URL"),
			get("DB_URL"),
			"",
		),
		MaxIdleConns:    parseIntWithDefault(get("DATABASE_MAX_IDLE_CONNS"), 0),
		MaxOpenConns:    parseIntWithDefault(get("DATABASE_MAX_OPEN_CONNS"), 0),
		ConnMaxLifetime: parseDurationWithDefault(get("DATABASE_CONN_MAX_LIFETIME"), 0),
		ConnMaxIdleTime: parseDurationWithDefault(get("DATABASE_CONN_MAX_IDLE_TIME"), 0),
		UseMock:         parseBoolWithDefault(get("DATABASE_USE_MOCK"), false),
	}

	cfg.Logging = LoggingConfig{
		Level:  firstNonEmpty(get("LOG_LEVEL"), "info"),
		Format: firstNonEmpty(get("LOG_FORMAT"), "text"),
	}

	cfg.Session = SessionConfig{
		Lifetime:     parseDurationWithDefault(get("SESSION_LIFETIME"), 12*time.Hour),
		CookieName:   firstNonEmpty(get("SESSION_COOKIE_NAME"), "designflow_session"),
		CookieDomain: get("SESSION_COOKIE_DOMAIN"),
		CookieSecure: parseBoolWithDefault(get("SESSION_COOKIE_SECURE"), false),
	}

	cfg.AI = AIConfig{
		APIKey:  firstNonEmpty(get("GEMINI_API_KEY"), get("API_KEY")),
		Model:   get("GEMINI_MODEL"),
		BaseURL: get("GEMINI_BASE_URL"),
		Timeout: parseDurationWithDefault(get("GEMINI_TIMEOUT"), 0),
	}

	cfg.Upload = UploadConfig{
		MaxBytes:     int64(parseIntWithDefault(get("UPLOAD_MAX_BYTES"), defaultUploadMaxBytes)),
		MaxDimension: parseIntWithDefault(get("UPLOAD_MAX_DIMENSION"), defaultUploadMaxDimension),
		MaxPixels:    parseIntWithDefault(get("UPLOAD_MAX_PIXELS"), defaultUploadMaxPixels),
	}

	if strings.TrimSpace(cfg.Server.Addr) == "" {
		return Config{}, fmt.Errorf("server address must not be empty")
	}
	if cfg.Upload.MaxBytes <= 0 {
		return Config{}, fmt.Errorf("upload max bytes must be positive, got %d", cfg.Upload.MaxBytes)
	}

	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

func parseIntWithDefault(value string, def int) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}

func parseDurationWithDefault(value string, def time.Duration) time.Duration {
	value = strings.TrimSpace(value)
	if value == "" {
		return def
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return def
	}
	return parsed
}

func parseBoolWithDefault(value string, def bool) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return def
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return def
	}
	return parsed
}
