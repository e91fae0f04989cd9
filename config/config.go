package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
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

	// LLM Provider Abstraction
	LLM LLMConfig

	// Intent dispatch
	Intents    IntentsConfig
	Salesforce SalesforceConfig
	Redis      RedisConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port           int
	Mode           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	RequestTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	Enabled    bool
	PerMinute  int
	Burst      int
	MaxClients int
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers []ProviderConfig `yaml:"providers"`
	// JSONMode asks providers for a bare JSON object.
	JSONMode bool `yaml:"json_mode"`
	// CallTimeout bounds one model call. Zero defers to the request deadline.
	CallTimeout time.Duration `yaml:"call_timeout"`
}

// Primary returns the enabled provider with the lowest priority number.
func (c LLMConfig) Primary() (ProviderConfig, bool) {
	var best ProviderConfig
	found := false
	for _, p := range c.Providers {
		if !p.Enabled {
			continue
		}
		if !found || p.Priority < best.Priority {
			best, found = p, true
		}
	}
	return best, found
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name        string  `yaml:"name"`
	Enabled     bool    `yaml:"enabled"`
	Priority    int     `yaml:"priority"`
	APIKey      string  `yaml:"api_key"`
	BaseURL     string  `yaml:"base_url,omitempty"`
	Model       string  `yaml:"model"`
	Timeout     string  `yaml:"timeout"`
	Temperature float64 `yaml:"temperature"`
}

// IntentsConfig points at the declarative intent schema.
type IntentsConfig struct {
	SchemaPath string
}

// SalesforceConfig holds the connected-app credentials used for the
// OAuth2 username-password flow.
type SalesforceConfig struct {
	Domain       string
	ClientID     string
	ClientSecret string
	Username     string
	Password     string
	APIVersion   string
	Timeout      time.Duration
}

// RedisConfig configures the optional shared session store.
type RedisConfig struct {
	Enabled   bool
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
// A .env file, when present, is loaded into the process environment first.
func Load() (*Config, error) {
	loadEnvFile()

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
	cfg.HTTPServer.ReadTimeout = viper.GetDuration("http_server.read_timeout")
	cfg.HTTPServer.WriteTimeout = viper.GetDuration("http_server.write_timeout")
	cfg.HTTPServer.RequestTimeout = viper.GetDuration("http_server.request_timeout")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.PerMinute = viper.GetInt("rate_limit.per_minute")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")
	cfg.RateLimit.MaxClients = viper.GetInt("rate_limit.max_clients")

	// Load provider configurations
	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:        getStringFromMap(providerMap, "name"),
						Enabled:     getBoolFromMap(providerMap, "enabled"),
						Priority:    getIntFromMap(providerMap, "priority"),
						APIKey:      expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:     getStringFromMap(providerMap, "base_url"),
						Model:       getStringFromMap(providerMap, "model"),
						Timeout:     getStringFromMap(providerMap, "timeout"),
						Temperature: getFloatFromMap(providerMap, "temperature"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	cfg.LLM.JSONMode = viper.GetBool("llm.json_mode")
	cfg.LLM.CallTimeout = viper.GetDuration("llm.call_timeout")

	// Without an explicit providers list, fall back to Gemini keyed by GOOGLE_API_KEY.
	if len(cfg.LLM.Providers) == 0 {
		if key := viper.GetString("google_api_key"); key != "" {
			cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
				Name:     "gemini",
				Enabled:  true,
				Priority: 1,
				APIKey:   key,
				Model:    viper.GetString("gemini_model"),
			})
		}
	}

	// Intents
	cfg.Intents.SchemaPath = viper.GetString("intents.schema_path")

	// Salesforce
	cfg.Salesforce.Domain = viper.GetString("salesforce.domain")
	cfg.Salesforce.ClientID = viper.GetString("salesforce.client_id")
	cfg.Salesforce.ClientSecret = viper.GetString("salesforce.client_secret")
	cfg.Salesforce.Username = viper.GetString("salesforce.username")
	cfg.Salesforce.Password = viper.GetString("salesforce.password")
	cfg.Salesforce.APIVersion = viper.GetString("salesforce.api_version")
	cfg.Salesforce.Timeout = viper.GetDuration("salesforce.timeout")

	// Redis
	cfg.Redis.Enabled = viper.GetBool("redis.enabled")
	cfg.Redis.Addr = viper.GetString("redis.addr")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")
	cfg.Redis.KeyPrefix = viper.GetString("redis.key_prefix")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate reports configuration that would prevent the gateway from serving.
func (c *Config) Validate() error {
	if err := validateLLMConfig(&c.LLM); err != nil {
		return err
	}
	if c.Intents.SchemaPath == "" {
		return fmt.Errorf("intents.schema_path is required")
	}

	sf := c.Salesforce
	var missing []string
	for _, f := range []struct{ key, val string }{
		{"salesforce.domain", sf.Domain},
		{"salesforce.client_id", sf.ClientID},
		{"salesforce.client_secret", sf.ClientSecret},
		{"salesforce.username", sf.Username},
		{"salesforce.password", sf.Password},
	} {
		if f.val == "" {
			missing = append(missing, f.key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing salesforce credentials: %s", strings.Join(missing, ", "))
	}

	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("redis.addr is required when redis is enabled")
	}

	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 5000)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.read_timeout", "15s")
	viper.SetDefault("http_server.write_timeout", "60s")
	viper.SetDefault("http_server.request_timeout", "45s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.per_minute", 60)
	viper.SetDefault("rate_limit.burst", 10)
	viper.SetDefault("rate_limit.max_clients", 10000)

	viper.SetDefault("gemini_model", "gemini-1.5-flash-latest")
	viper.SetDefault("llm.json_mode", false)
	viper.SetDefault("llm.call_timeout", "40s")
	viper.SetDefault("intents.schema_path", "config/intents.yaml")

	viper.SetDefault("salesforce.api_version", "v61.0")
	viper.SetDefault("salesforce.timeout", "30s")

	viper.SetDefault("redis.enabled", false)
	viper.SetDefault("redis.key_prefix", "intent-gateway:")
}

// loadEnvFile loads .env from the working directory or the project root.
func loadEnvFile() {
	paths := []string{".env"}
	if root := findProjectRoot(); root != "" {
		paths = append(paths, filepath.Join(root, ".env"))
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// findProjectRoot walks up from the working directory looking for go.mod.
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured: set GOOGLE_API_KEY or add an llm.providers section")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}
			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true

			if provider.APIKey == "" {
				return fmt.Errorf("provider %s: API key is required", provider.Name)
			}
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
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
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}

func getFloatFromMap(m map[string]interface{}, key string) float64 {
	if val, ok := m[key]; ok {
		switch v := val.(type) {
		case float64:
			return v
		case int:
			return float64(v)
		}
	}
	return 0
}
