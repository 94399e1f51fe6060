package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Voice assistant specifics
	Assistant AssistantConfig
	LMStudio  LMStudioConfig
	Broker    BrokerConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	RateLimitPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// AssistantConfig tunes the command orchestration engine.
type AssistantConfig struct {
	ActivationPhrase    string
	ConversationTimeout time.Duration // inactivity window for continuous conversation
	HistoryWindow       int           // number of history entries sent to the model
	SessionTTL          time.Duration
}

// LMStudioConfig points at the OpenAI-compatible completion endpoint.
type LMStudioConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// BrokerConfig tunes the remote function-call broker.
type BrokerConfig struct {
	CallTimeout time.Duration
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
	cfg.HTTPServer.RateLimitPerMin = viper.GetInt("http_server.rate_limit_per_min")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Assistant
	cfg.Assistant.ActivationPhrase = viper.GetString("assistant.activation_phrase")
	cfg.Assistant.ConversationTimeout = viper.GetDuration("assistant.conversation_timeout")
	cfg.Assistant.HistoryWindow = viper.GetInt("assistant.history_window")
	cfg.Assistant.SessionTTL = viper.GetDuration("assistant.session_ttl")

	// LM Studio
	cfg.LMStudio.BaseURL = viper.GetString("lmstudio.base_url")
	cfg.LMStudio.APIKey = viper.GetString("lmstudio.api_key")
	cfg.LMStudio.Model = viper.GetString("lmstudio.model")
	cfg.LMStudio.Timeout = viper.GetDuration("lmstudio.timeout")
	if key := viper.GetString("lmstudio_api_key"); key != "" {
		cfg.LMStudio.APIKey = key
	}

	// Broker
	cfg.Broker.CallTimeout = viper.GetDuration("broker.call_timeout")

	if cfg.LMStudio.BaseURL == "" {
		return nil, fmt.Errorf("lmstudio.base_url is required")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8765)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.rate_limit_per_min", 60)
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("assistant.activation_phrase", "remy")
	viper.SetDefault("assistant.conversation_timeout", "15s")
	viper.SetDefault("assistant.history_window", 10)
	viper.SetDefault("assistant.session_ttl", "30m")

	viper.SetDefault("lmstudio.base_url", "http://localhost:1234/v1")
	viper.SetDefault("lmstudio.api_key", "lm-studio")
	viper.SetDefault("lmstudio.model", "local-model")
	viper.SetDefault("lmstudio.timeout", "60s")

	viper.SetDefault("broker.call_timeout", "30s")
}
