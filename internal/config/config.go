package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type OTPConfig struct {
	TTL string `yaml:"ttl"`
}

type OAuthConfig struct {
	BaseURL      string `yaml:"base_url"`
	TokenPath    string `yaml:"token_path"`
	RevokePath   string `yaml:"revoke_path"`
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	Timeout      string `yaml:"timeout"`
}

type EmailConfig struct {
	From   string `yaml:"from"`
	Region string `yaml:"region"`
}

type ConfigFile struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	OTP      OTPConfig      `yaml:"otp"`
	OAuth    OAuthConfig    `yaml:"oauth"`
	Email    EmailConfig    `yaml:"email"`
}

type Config struct {
	Port              string
	GinMode           string
	DSN               string
	RedisAddr         string
	RedisPassword     string
	RedisDB           int
	OTPTTL            time.Duration
	OAuthBaseURL      string
	OAuthTokenPath    string
	OAuthRevokePath   string
	OAuthClientID     string
	OAuthClientSecret string
	OAuthTimeout      time.Duration
	EmailFrom         string
	EmailRegion       string
	Messages          *Messages
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() (*Config, error) {
	configFile, err := loadConfigFile(env("CONFIG_PATH", "config/config.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	otpTTL, err := time.ParseDuration(configFile.OTP.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid OTP TTL: %w", err)
	}

	oauthTimeout, err := time.ParseDuration(configFile.OAuth.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid OAuth timeout: %w", err)
	}

	messages, err := LoadMessages(env("MESSAGES_PATH", "config/messages.env"))
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:              fmt.Sprintf("%d", configFile.App.Port),
		GinMode:           configFile.App.GinMode,
		DSN:               env("DATABASE_DSN", configFile.Database.DSN),
		RedisAddr:         env("REDIS_ADDR", configFile.Redis.Addr),
		RedisPassword:     env("REDIS_PASSWORD", configFile.Redis.Password),
		RedisDB:           configFile.Redis.DB,
		OTPTTL:            otpTTL,
		OAuthBaseURL:      env("OAUTH_BASE_URL", configFile.OAuth.BaseURL),
		OAuthTokenPath:    configFile.OAuth.TokenPath,
		OAuthRevokePath:   configFile.OAuth.RevokePath,
		OAuthClientID:     env("OAUTH_CLIENT_ID", configFile.OAuth.ClientID),
		OAuthClientSecret: env("OAUTH_CLIENT_SECRET", configFile.OAuth.ClientSecret),
		OAuthTimeout:      oauthTimeout,
		EmailFrom:         env("EMAIL_FROM", configFile.Email.From),
		EmailRegion:       env("AWS_REGION", configFile.Email.Region),
		Messages:          messages,
	}, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
