package config

import (
	"fmt"
	"os"
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
	RateLimit  RateLimitConfig

	// Assistant
	Assistant AssistantConfig
	Storage   StorageConfig
	Session   SessionConfig
	Weather   WeatherConfig
	Launcher  LauncherConfig
	Telegram  TelegramConfig

	// LLM Provider Abstraction
	LLM LLMConfig
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
	PerMin int
	Burst  int
}

type AssistantConfig struct {
	Persona        string
	Temperature    float64
	MaxTokens      int
	RecentMemories int
	Timezone       string
}

type StorageConfig struct {
	MemoryPath     string
	TaskPath       string
	MaxMemoryItems int
}

type SessionConfig struct {
	MaxHistory  int
	MaxSessions int
	TTL         string
}

type WeatherConfig struct {
	Enabled    bool
	GeoURL     string
	WeatherURL string
	Timeout    string
}

// LauncherConfig selects how shortcuts are opened: "exec" uses the host opener, "noop" only logs.
type LauncherConfig struct {
	Mode      string
	Shortcuts []ShortcutConfig
}

type ShortcutConfig struct {
	Phrase string
	Kind   string
	Target string
	Reply  string
}

// TelegramConfig enables mirroring replies to a chat when both fields are set.
type TelegramConfig struct {
	BotToken string
	ChatID   int64
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"` // Global timeout for the entire fallback chain
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/kuma/
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile loads configuration from path, or from the search paths when path is empty.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/kuma/")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.RateLimit.PerMin = v.GetInt("rate_limit.per_min")
	cfg.RateLimit.Burst = v.GetInt("rate_limit.burst")

	// Assistant
	cfg.Assistant.Persona = v.GetString("assistant.persona")
	cfg.Assistant.Temperature = v.GetFloat64("assistant.temperature")
	cfg.Assistant.MaxTokens = v.GetInt("assistant.max_tokens")
	cfg.Assistant.RecentMemories = v.GetInt("assistant.recent_memories")
	cfg.Assistant.Timezone = v.GetString("assistant.timezone")

	cfg.Storage.MemoryPath = v.GetString("storage.memory_path")
	cfg.Storage.TaskPath = v.GetString("storage.task_path")
	cfg.Storage.MaxMemoryItems = v.GetInt("storage.max_memory_items")

	cfg.Session.MaxHistory = v.GetInt("session.max_history")
	cfg.Session.MaxSessions = v.GetInt("session.max_sessions")
	cfg.Session.TTL = v.GetString("session.ttl")

	cfg.Weather.Enabled = v.GetBool("weather.enabled")
	cfg.Weather.GeoURL = v.GetString("weather.geo_url")
	cfg.Weather.WeatherURL = v.GetString("weather.weather_url")
	cfg.Weather.Timeout = v.GetString("weather.timeout")

	cfg.Launcher.Mode = v.GetString("launcher.mode")
	if v.IsSet("launcher.shortcuts") {
		if list, ok := v.Get("launcher.shortcuts").([]interface{}); ok {
			for _, item := range list {
				if m, ok := item.(map[string]interface{}); ok {
					cfg.Launcher.Shortcuts = append(cfg.Launcher.Shortcuts, ShortcutConfig{
						Phrase: strings.ToLower(strings.TrimSpace(getStringFromMap(m, "phrase"))),
						Kind:   getStringFromMap(m, "kind"),
						Target: getStringFromMap(m, "target"),
						Reply:  getStringFromMap(m, "reply"),
					})
				}
			}
		}
	}

	cfg.Telegram.BotToken = expandEnvVar(v, v.GetString("telegram.bot_token"))
	cfg.Telegram.ChatID = v.GetInt64("telegram.chat_id")
	if tgToken := v.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = v.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = v.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = v.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = v.GetString("llm.max_total_timeout")

	// Load provider configurations
	if v.IsSet("llm.providers") {
		if providersList, ok := v.Get("llm.providers").([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(v, getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					})
				}
			}
		}
	}

	// Remote completion is optional; a configured provider list must still be valid.
	if len(cfg.LLM.Providers) > 0 {
		if err := validateLLMConfig(&cfg.LLM); err != nil {
			return nil, fmt.Errorf("invalid llm config: %w", err)
		}
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8000)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.per_min", 60)

	// Assistant defaults
	v.SetDefault("assistant.temperature", 0.7)
	v.SetDefault("assistant.max_tokens", 512)
	v.SetDefault("assistant.recent_memories", 5)
	v.SetDefault("assistant.timezone", "Local")
	v.SetDefault("storage.memory_path", "memory.json")
	v.SetDefault("storage.task_path", "tasks.json")
	v.SetDefault("storage.max_memory_items", 50)
	v.SetDefault("session.max_history", 12)
	v.SetDefault("session.max_sessions", 256)
	v.SetDefault("session.ttl", "30m")
	v.SetDefault("weather.enabled", true)
	v.SetDefault("weather.timeout", "5s")
	v.SetDefault("launcher.mode", "noop")

	// LLM defaults
	v.SetDefault("llm.fallback_enabled", true)
	v.SetDefault("llm.retry_attempts", 1)
	v.SetDefault("llm.retry_delay", "1s")
	v.SetDefault("llm.max_total_timeout", "60s")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := v.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		return os.Getenv(envVar)
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}
		if !provider.Enabled {
			continue
		}

		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
