package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setSalesforceEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SALESFORCE_DOMAIN", "https://login.salesforce.com")
	t.Setenv("SALESFORCE_CLIENT_ID", "client-id")
	t.Setenv("SALESFORCE_CLIENT_SECRET", "client-secret")
	t.Setenv("SALESFORCE_USERNAME", "user@example.com")
	t.Setenv("SALESFORCE_PASSWORD", "passwordTOKEN")
}

func TestLoad(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	setSalesforceEnv(t)
	t.Setenv("GOOGLE_API_KEY", "google-key")
	t.Setenv("LLM_JSON_MODE", "true")
	t.Setenv("LLM_CALL_TIMEOUT", "20s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.LLM.JSONMode)
	assert.Equal(t, 20*time.Second, cfg.LLM.CallTimeout)

	require.NotEmpty(t, cfg.LLM.Providers)
	assert.Equal(t, "gemini", cfg.LLM.Providers[0].Name)
	assert.Equal(t, "google-key", cfg.LLM.Providers[0].APIKey)
	assert.Equal(t, "https://login.salesforce.com", cfg.Salesforce.Domain)
	assert.Equal(t, "v61.0", cfg.Salesforce.APIVersion)
	assert.Equal(t, 30*time.Second, cfg.Salesforce.Timeout)
	assert.Equal(t, "config/intents.yaml", cfg.Intents.SchemaPath)
	assert.Equal(t, 5000, cfg.HTTPServer.Port)
}

func TestLoad_MissingSalesforceCredentials(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("GOOGLE_API_KEY", "google-key")
	t.Setenv("SALESFORCE_DOMAIN", "")
	t.Setenv("SALESFORCE_CLIENT_ID", "")
	t.Setenv("SALESFORCE_CLIENT_SECRET", "")
	t.Setenv("SALESFORCE_USERNAME", "")
	t.Setenv("SALESFORCE_PASSWORD", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "salesforce.client_id")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			LLM: LLMConfig{Providers: []ProviderConfig{
				{Name: "gemini", Enabled: true, Priority: 1, APIKey: "k", Model: "m"},
			}},
			Intents: IntentsConfig{SchemaPath: "config/intents.yaml"},
			Salesforce: SalesforceConfig{
				Domain:       "https://login.salesforce.com",
				ClientID:     "id",
				ClientSecret: "secret",
				Username:     "u",
				Password:     "p",
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "no providers",
			mutate:  func(c *Config) { c.LLM.Providers = nil },
			wantErr: "no LLM providers configured",
		},
		{
			name:    "all disabled",
			mutate:  func(c *Config) { c.LLM.Providers[0].Enabled = false },
			wantErr: "no enabled LLM providers",
		},
		{
			name:    "missing api key",
			mutate:  func(c *Config) { c.LLM.Providers[0].APIKey = "" },
			wantErr: "API key is required",
		},
		{
			name: "duplicate priority",
			mutate: func(c *Config) {
				c.LLM.Providers = append(c.LLM.Providers, ProviderConfig{Name: "deepseek", Enabled: true, Priority: 1, APIKey: "k"})
			},
			wantErr: "duplicate priority",
		},
		{
			name:    "missing schema path",
			mutate:  func(c *Config) { c.Intents.SchemaPath = "" },
			wantErr: "intents.schema_path",
		},
		{
			name:    "missing password",
			mutate:  func(c *Config) { c.Salesforce.Password = "" },
			wantErr: "salesforce.password",
		},
		{
			name:    "redis without addr",
			mutate:  func(c *Config) { c.Redis.Enabled = true },
			wantErr: "redis.addr",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestExpandEnvVar(t *testing.T) {
	t.Setenv("SOME_TEST_KEY", "secret-value")

	assert.Equal(t, "secret-value", expandEnvVar("${SOME_TEST_KEY}"))
	assert.Equal(t, "literal", expandEnvVar("literal"))
	assert.Equal(t, "", expandEnvVar("${DEFINITELY_UNSET_TEST_VAR}"))
}

func TestLLMConfigPrimary(t *testing.T) {
	cfg := LLMConfig{Providers: []ProviderConfig{
		{Name: "deepseek", Enabled: true, Priority: 2, Temperature: 0.7},
		{Name: "gemini", Enabled: true, Priority: 1, Temperature: 0.1},
		{Name: "other", Enabled: false, Priority: 0},
	}}

	p, ok := cfg.Primary()
	require.True(t, ok)
	assert.Equal(t, "gemini", p.Name)
	assert.Equal(t, 0.1, p.Temperature)

	_, ok = LLMConfig{}.Primary()
	assert.False(t, ok)
}
