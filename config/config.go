package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// tasQ specifics
	Firestore     FirestoreConfig
	Gemini        GeminiConfig
	Storage       StorageConfig
	Notifications NotificationsConfig
	Assistant     AssistantConfig
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

type FirestoreConfig struct {
	ProjectID       string
	CredentialsPath string
}

type GeminiConfig struct {
	APIKey   string
	Model    string
	Timezone string
}

// StorageConfig locates the local key-value store holding notification
// bookkeeping.
type StorageConfig struct {
	Dir string
}

type NotificationsConfig struct {
	// Enabled mirrors the device-level notification permission. Off means
	// scheduling degrades to a silent no-op.
	Enabled bool
}

type AssistantConfig struct {
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
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

	// tasQ specifics
	cfg.Firestore.ProjectID = viper.GetString("firestore.project_id")
	cfg.Firestore.CredentialsPath = viper.GetString("firestore.credentials_path")
	if creds := viper.GetString("firestore_credentials"); creds != "" {
		cfg.Firestore.CredentialsPath = creds
	}

	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	cfg.Gemini.Timezone = viper.GetString("gemini.timezone")
	if apiKey := viper.GetString("gemini_api_key"); apiKey != "" {
		cfg.Gemini.APIKey = apiKey
	}

	cfg.Storage.Dir = viper.GetString("storage.dir")
	cfg.Notifications.Enabled = viper.GetBool("notifications.enabled")
	cfg.Assistant.RateLimitPerMin = viper.GetInt("assistant.rate_limit_per_min")

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
	viper.SetDefault("gemini.model", "gemini-2.5-flash")
	viper.SetDefault("gemini.timezone", "UTC")
	viper.SetDefault("storage.dir", "./data")
	viper.SetDefault("notifications.enabled", true)
	viper.SetDefault("assistant.rate_limit_per_min", 30)
}
