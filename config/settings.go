package config

import (
	"os"
	"strconv"
	"strings"
	"sync"
)

// Settings is the process-wide configuration, loaded from the environment once
// and read-only afterwards.
type Settings struct {
	AppName string
	AppEnv  string
	Debug   bool
	Port    string

	SecretKey      string
	AllowedOrigins string

	DatabaseURL string
	DBEcho      bool

	RedisURL            string
	CeleryBrokerURL     string
	CeleryResultBackend string

	JWTSecretKey             string
	AccessTokenExpireMinutes int
	RefreshTokenExpireDays   int

	AWSAccessKeyID     string
	AWSSecretAccessKey string
	AWSRegion          string
	S3BucketName       string

	OpenAIAPIKey string

	SendgridAPIKey string
	EmailFrom      string
	EmailFromName  string

	RateLimitPerMinute int
	RateLimitPerHour   int

	DefaultPageSize int
	MaxPageSize     int

	MaxUploadSize     int64
	AllowedExtensions string

	SentryDSN string
}

var (
	settings     *Settings
	settingsOnce sync.Once
)

// Get returns the cached settings, loading them from the environment on the
// first call.
func Get() *Settings {
	settingsOnce.Do(func() {
		settings = load()
	})
	return settings
}

func load() *Settings {
	return &Settings{
		AppName: getEnv("APP_NAME", "Kenya ni Yetu API"),
		AppEnv:  getEnv("APP_ENV", "development"),
		Debug:   getEnvBool("DEBUG", true),
		Port:    getEnv("PORT", "8080"),

		SecretKey:      getEnv("SECRET_KEY", "dev-secret-key"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),

		DatabaseURL: getEnv("DATABASE_URL", ""),
		DBEcho:      getEnvBool("DB_ECHO", false),

		RedisURL:            getEnv("REDIS_URL", "redis://localhost:6379/0"),
		CeleryBrokerURL:     getEnv("CELERY_BROKER_URL", "redis://localhost:6379/0"),
		CeleryResultBackend: getEnv("CELERY_RESULT_BACKEND", "redis://localhost:6379/0"),

		JWTSecretKey:             getEnv("JWT_SECRET_KEY", "dev-jwt-secret"),
		AccessTokenExpireMinutes: getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30),
		RefreshTokenExpireDays:   getEnvInt("REFRESH_TOKEN_EXPIRE_DAYS", 7),

		AWSAccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		S3BucketName:       getEnv("S3_BUCKET_NAME", ""),

		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),

		SendgridAPIKey: getEnv("SENDGRID_API_KEY", ""),
		EmailFrom:      getEnv("EMAIL_FROM", "noreply@kenyaniyetu.org"),
		EmailFromName:  getEnv("EMAIL_FROM_NAME", "Kenya ni Yetu"),

		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 60),
		RateLimitPerHour:   getEnvInt("RATE_LIMIT_PER_HOUR", 1000),

		DefaultPageSize: getEnvInt("DEFAULT_PAGE_SIZE", 20),
		MaxPageSize:     getEnvInt("MAX_PAGE_SIZE", 100),

		MaxUploadSize:     getEnvInt64("MAX_UPLOAD_SIZE", 10485760), // 10MB
		AllowedExtensions: getEnv("ALLOWED_EXTENSIONS", "pdf,png,jpg,jpeg,gif,mp4,mov"),

		SentryDSN: getEnv("SENTRY_DSN", ""),
	}
}

// AllowedOriginsList parses the origins setting into a trimmed list.
func (s *Settings) AllowedOriginsList() []string {
	return SplitList(s.AllowedOrigins)
}

// AllowedExtensionsList parses the extensions setting into a trimmed list.
func (s *Settings) AllowedExtensionsList() []string {
	return SplitList(s.AllowedExtensions)
}

// SplitList splits a comma-separated value into trimmed, non-empty elements.
func SplitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
