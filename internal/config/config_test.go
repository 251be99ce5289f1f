package config

import (
	"os"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/rule-mcp/infrastructure/integrator/rule/ruleclient"
)

func TestNewConfig_Defaults(t *testing.T) {
	viper.Reset()
	chdirTemp(t)

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "", cfg.Rule.APIKey)
	assert.Equal(t, ruleclient.DefaultBaseURL, cfg.Rule.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Rule.Timeout)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.CORS.AllowedOrigins)
}

func TestNewConfig_FromEnvironment(t *testing.T) {
	viper.Reset()
	chdirTemp(t)

	t.Setenv("RULE_API_KEY", "env-key")
	t.Setenv("RULE_BASE_URL", "http://rule.local/api/v3")
	t.Setenv("RULE_TIMEOUT", "5s")
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.com,https://b.com")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.Rule.APIKey)
	assert.Equal(t, "http://rule.local/api/v3", cfg.Rule.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Rule.Timeout)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, []string{"https://a.com", "https://b.com"}, cfg.CORS.AllowedOrigins)
}

func TestRule_ClientOptions(t *testing.T) {
	rule := Rule{BaseURL: "http://rule.local/", Timeout: 2 * time.Second}

	client, err := ruleclient.NewClient("key", rule.ClientOptions()...)
	require.NoError(t, err)

	assert.Equal(t, "http://rule.local", client.BaseURL())
	assert.Equal(t, 2*time.Second, client.Timeout())
}

func chdirTemp(t *testing.T) {
	t.Helper()

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))

	t.Cleanup(func() {
		_ = os.Chdir(cwd)
		viper.Reset()
	})
}
