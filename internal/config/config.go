package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	envPrefix            = "PORTFOLIO"
	defaultHTTPAddress   = "0.0.0.0:8080"
	defaultDatabasePath  = "portfolio.db"
	defaultLogLevel      = "info"
	defaultCookieName    = "portfolio_session"
	defaultTokenTTLMin   = 60
	defaultGoogleJWKSURL = "https://www.googleapis.com/oauth2/v3/certs"
	defaultGoogleToken   = "https://oauth2.googleapis.com/token"
	defaultUploadsDir    = "public/uploads"
	defaultOpenAIModel   = "gpt-4o-mini"
	defaultPostLoginURL  = "/"
)

// AppConfig captures runtime configuration for the API server.
type AppConfig struct {
	HTTPAddress        string
	DatabasePath       string
	LogLevel           string
	SigningSecret      string
	SessionCookieName  string
	PostLoginRedirect  string
	TokenTTL           time.Duration
	AllowedEmails      []string
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
	GoogleJWKSURL      string
	GoogleTokenURL     string
	UploadsDir         string
	UploadsBaseURL     string
	OpenAIAPIKey       string
	OpenAIModel        string
	AllowedOrigins     []string
}

// NewViper returns a viper instance with defaults and env bindings configured.
func NewViper() *viper.Viper {
	configViper := viper.New()
	ApplyDefaults(configViper)
	return configViper
}

// ApplyDefaults configures defaults and env bindings on the provided viper instance.
func ApplyDefaults(configViper *viper.Viper) {
	configViper.SetEnvPrefix(envPrefix)
	configViper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	configViper.AutomaticEnv()

	configViper.SetDefault("http.address", defaultHTTPAddress)
	configViper.SetDefault("database.path", defaultDatabasePath)
	configViper.SetDefault("log.level", defaultLogLevel)
	configViper.SetDefault("auth.cookie_name", defaultCookieName)
	configViper.SetDefault("auth.token_ttl_minutes", defaultTokenTTLMin)
	configViper.SetDefault("auth.post_login_redirect", defaultPostLoginURL)
	configViper.SetDefault("google.jwks_url", defaultGoogleJWKSURL)
	configViper.SetDefault("google.token_url", defaultGoogleToken)
	configViper.SetDefault("uploads.dir", defaultUploadsDir)
	configViper.SetDefault("uploads.base_url", "")
	configViper.SetDefault("openai.model", defaultOpenAIModel)
	configViper.SetDefault("cors.allowed_origins", []string{"*"})
}

// Load parses runtime configuration from viper.
func Load(configViper *viper.Viper) (AppConfig, error) {
	cfg := AppConfig{
		HTTPAddress:        configViper.GetString("http.address"),
		DatabasePath:       configViper.GetString("database.path"),
		LogLevel:           configViper.GetString("log.level"),
		SigningSecret:      configViper.GetString("auth.signing_secret"),
		SessionCookieName:  configViper.GetString("auth.cookie_name"),
		PostLoginRedirect:  configViper.GetString("auth.post_login_redirect"),
		TokenTTL:           time.Duration(configViper.GetInt("auth.token_ttl_minutes")) * time.Minute,
		AllowedEmails:      splitList(configViper.GetStringSlice("auth.allowed_emails")),
		GoogleClientID:     configViper.GetString("google.client_id"),
		GoogleClientSecret: configViper.GetString("google.client_secret"),
		GoogleRedirectURL:  configViper.GetString("google.redirect_url"),
		GoogleJWKSURL:      configViper.GetString("google.jwks_url"),
		GoogleTokenURL:     configViper.GetString("google.token_url"),
		UploadsDir:         configViper.GetString("uploads.dir"),
		UploadsBaseURL:     configViper.GetString("uploads.base_url"),
		OpenAIAPIKey:       configViper.GetString("openai.api_key"),
		OpenAIModel:        configViper.GetString("openai.model"),
		AllowedOrigins:     splitList(configViper.GetStringSlice("cors.allowed_origins")),
	}

	if err := cfg.validate(); err != nil {
		return AppConfig{}, err
	}

	return cfg, nil
}

func (c AppConfig) validate() error {
	if strings.TrimSpace(c.SigningSecret) == "" {
		return fmt.Errorf("auth.signing_secret is required")
	}
	if strings.TrimSpace(c.DatabasePath) == "" {
		return fmt.Errorf("database.path is required")
	}
	if strings.TrimSpace(c.SessionCookieName) == "" {
		return fmt.Errorf("auth.cookie_name is required")
	}
	if strings.TrimSpace(c.GoogleClientID) == "" {
		return fmt.Errorf("google.client_id is required")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("auth.token_ttl_minutes must be positive")
	}
	return nil
}

// splitList flattens comma-separated entries that viper surfaces as a single
// slice element when the value arrives through an environment variable.
func splitList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				out = append(out, trimmed)
			}
		}
	}
	return out
}
