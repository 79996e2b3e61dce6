package config

import (
	"fmt"
	"log"
	"maps"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type HTTPServer struct {
	Host            string
	Port            string
	GinMode         string
	AllowedOrigins  []string
	TrustedProxies  []string
	PublicURL       string
	DebugRoutes     bool
	ShutdownTimeout time.Duration
}

func (s HTTPServer) Addr() string {
	return s.Host + ":" + s.Port
}

type Logger struct {
	Level  string
	Format string
}

type RateLimit struct {
	Requests int
	Window   time.Duration
}

type RedisCache struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// Enabled is false when no host is configured; the in-process limiter is used then.
func (r RedisCache) Enabled() bool {
	return r.Host != ""
}

type Postgres struct {
	DSN string
}

func (p Postgres) Enabled() bool {
	return p.DSN != ""
}

type Config struct {
	HTTP      HTTPServer
	Log       Logger
	RateLimit RateLimit
	Redis     RedisCache
	Postgres  Postgres
}

const logtag = "[config]"

var defaults = map[string]any{
	"HTTP_HOST":            "0.0.0.0",
	"HTTP_PORT":            "5000",
	"GIN_MODE":             "release",
	"LOG_LEVEL":            "info",
	"LOG_FORMAT":           "json",
	"CORS_ALLOWED_ORIGINS": "*",
	"TRUSTED_PROXIES":      "",
	"PUBLIC_URL":           "http://localhost:3000",
	"DEBUG_ROUTES":         false,
	"SHUTDOWN_TIMEOUT":     5 * time.Second,
	"RATE_LIMIT_REQUESTS":  5,
	"RATE_LIMIT_WINDOW":    60 * time.Second,
	"REDIS_HOST":           "",
	"REDIS_PORT":           "6379",
	"REDIS_PASSWORD":       "",
	"REDIS_DB":             0,
	"DB_DSN":               "",
}

var secrets = map[string]bool{
	"REDIS_PASSWORD": true,
	"DB_DSN":         true,
}

// Load reads env from configPath (or .env when empty) and resolves every key
// against its default. Only an explicitly named file has to exist.
func Load(configPath string) (*Config, error) {
	if configPath != "" {
		if err := godotenv.Load(configPath); err != nil {
			return nil, fmt.Errorf("%s err loading env from file %s: %w", logtag, configPath, err)
		}
		log.Printf("%s using env from : %s", logtag, configPath)
	} else {
		log.Printf("%s using env from .env", logtag)
		_ = godotenv.Load()
	}

	return FromEnv(), nil
}

func FromEnv() *Config {
	v := viper.New()
	v.AutomaticEnv()
	for _, key := range slices.Sorted(maps.Keys(defaults)) {
		v.SetDefault(key, defaults[key])
		report(v, key)
	}

	cfg := &Config{
		HTTP: HTTPServer{
			Host:            v.GetString("HTTP_HOST"),
			Port:            v.GetString("HTTP_PORT"),
			GinMode:         ginMode(v.GetString("GIN_MODE")),
			AllowedOrigins:  splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
			TrustedProxies:  splitList(v.GetString("TRUSTED_PROXIES")),
			PublicURL:       strings.TrimRight(v.GetString("PUBLIC_URL"), "/"),
			DebugRoutes:     v.GetBool("DEBUG_ROUTES"),
			ShutdownTimeout: positiveDuration(v, "SHUTDOWN_TIMEOUT"),
		},
		Log: Logger{
			Level:  strings.ToLower(v.GetString("LOG_LEVEL")),
			Format: strings.ToLower(v.GetString("LOG_FORMAT")),
		},
		RateLimit: RateLimit{
			Requests: positiveInt(v, "RATE_LIMIT_REQUESTS"),
			Window:   positiveDuration(v, "RATE_LIMIT_WINDOW"),
		},
		Redis: RedisCache{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       max(v.GetInt("REDIS_DB"), 0),
		},
		Postgres: Postgres{
			DSN: v.GetString("DB_DSN"),
		},
	}

	return cfg
}

func report(v *viper.Viper, key string) {
	if raw, ok := os.LookupEnv(key); !ok || raw == "" {
		fmt.Printf("%s %s undefined. Using default value %v\n", logtag, key, defaults[key])
		return
	}
	val := v.GetString(key)
	if secrets[key] {
		val = "***"
	}
	fmt.Printf("%s %s = %s\n", logtag, key, val)
}

func positiveInt(v *viper.Viper, key string) int {
	if n := v.GetInt(key); n > 0 {
		return n
	}
	return defaults[key].(int)
}

// Bare integers are read as seconds.
func positiveDuration(v *viper.Viper, key string) time.Duration {
	raw := v.GetString(key)
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	if n := v.GetInt(key); n > 0 {
		return time.Duration(n) * time.Second
	}
	return defaults[key].(time.Duration)
}

// gin panics on unknown modes.
func ginMode(s string) string {
	switch s = strings.ToLower(s); s {
	case "debug", "release", "test":
		return s
	}
	return "release"
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
