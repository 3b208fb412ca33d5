package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	// DefaultChatUpstreamURL is the completions endpoint the chat proxy forwards to.
	DefaultChatUpstreamURL = "https://apifreellm.com/api/openai/v1/chat/completions"
	// DefaultDataFile is the static UC dataset served by the dataset endpoints.
	DefaultDataFile = "public/data/ucs.json"
)

// Config holds runtime configuration shared across the application.
type Config struct {
	Addr                   string
	MongoURI               string
	MongoDatabase          string
	FormResponseCollection string
	Timeout                time.Duration
	DataFile               string
	ChatUpstreamURL        string
	ChatTimeout            time.Duration
	AllowedOrigins         []string
	AdminJWTSecret         []byte
	AdminJWTIssuer         string
	LogLevel               string
	LogFile                string
}

// AdminEnabled reports whether the admin routes should be mounted.
func (c Config) AdminEnabled() bool {
	return len(c.AdminJWTSecret) > 0
}

// SetDefaults registers every known key on v so env lookups and config files resolve.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("mongo_uri", "mongodb://localhost:27017")
	v.SetDefault("mongo_db", "infoloom")
	v.SetDefault("form_response_collection", "form_responses")
	v.SetDefault("mongo_connect_timeout", "10s")
	v.SetDefault("data_file", DefaultDataFile)
	v.SetDefault("chat_upstream_url", DefaultChatUpstreamURL)
	v.SetDefault("chat_timeout", "60s")
	v.SetDefault("api_allowed_origins", "*")
	v.SetDefault("admin_jwt_secret", "")
	v.SetDefault("admin_jwt_issuer", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.AutomaticEnv()
}

// Load reads v (env vars and an optional config file) and returns a fully populated Config.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	upstream := strings.TrimSpace(v.GetString("chat_upstream_url"))
	parsed, err := url.Parse(upstream)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return Config{}, fmt.Errorf("CHAT_UPSTREAM_URL must be an absolute URL: %q", upstream)
	}

	cfg := Config{
		Addr:                   stringOrDefault(v, "http_addr", ":8080"),
		MongoURI:               strings.TrimSpace(v.GetString("mongo_uri")),
		MongoDatabase:          stringOrDefault(v, "mongo_db", "infoloom"),
		FormResponseCollection: stringOrDefault(v, "form_response_collection", "form_responses"),
		Timeout:                durationOrDefault(v, "mongo_connect_timeout", 10*time.Second),
		DataFile:               stringOrDefault(v, "data_file", DefaultDataFile),
		ChatUpstreamURL:        upstream,
		ChatTimeout:            durationOrDefault(v, "chat_timeout", 60*time.Second),
		AllowedOrigins:         parseList(v.GetString("api_allowed_origins"), []string{"*"}),
		AdminJWTIssuer:         strings.TrimSpace(v.GetString("admin_jwt_issuer")),
		LogLevel:               stringOrDefault(v, "log_level", "info"),
		LogFile:                strings.TrimSpace(v.GetString("log_file")),
	}
	if secret := strings.TrimSpace(v.GetString("admin_jwt_secret")); secret != "" {
		cfg.AdminJWTSecret = []byte(secret)
	}

	return cfg, nil
}

func stringOrDefault(v *viper.Viper, key, fallback string) string {
	if s := strings.TrimSpace(v.GetString(key)); s != "" {
		return s
	}
	return fallback
}

func durationOrDefault(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(v.GetString(key))
	if raw == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func parseList(raw string, fallback []string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}

	if len(values) == 0 {
		return fallback
	}
	return values
}
