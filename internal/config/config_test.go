package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, s := range settings {
		t.Setenv(s.env, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(viper.New(), newFlags(t))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, 5000, cfg.Port)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.False(t, cfg.RateLimitEnabled())
	assert.Equal(t, 5, cfg.RateLimitBurst)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.TrustProxy)
	assert.Equal(t, "0.0.0.0:5000", cfg.Addr())
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "8080")
	t.Setenv("DEBUG", "TRUE")
	t.Setenv("APP_ENV", "production")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "10")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("SHUTDOWN_TIMEOUT", "15s")

	cfg, err := Load(viper.New(), newFlags(t))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.Addr())
	assert.True(t, cfg.Debug)
	assert.Equal(t, "production", cfg.AppEnv)
	assert.True(t, cfg.RateLimitEnabled())
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
	assert.Equal(t, 10, cfg.RateLimitBurst)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_DebugOnlyAcceptsTrue(t *testing.T) {
	for value, want := range map[string]bool{
		"true":  true,
		"True":  true,
		"tRuE":  true,
		"1":     false,
		"yes":   false,
		"False": false,
		"":      false,
	} {
		clearEnv(t)
		t.Setenv("DEBUG", value)

		cfg, err := Load(viper.New(), nil)
		require.NoError(t, err)
		assert.Equal(t, want, cfg.Debug, "DEBUG=%q", value)
	}
}

func TestLoad_FlagsOverrideEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("HOST", "127.0.0.1")

	cfg, err := Load(viper.New(), newFlags(t, "--port", "9090", "--debug"))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.True(t, cfg.Debug)
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string][2]string{
		"non numeric port":  {"PORT", "http"},
		"port out of range": {"PORT", "70000"},
		"zero port":         {"PORT", "0"},
		"negative rps":      {"RATE_LIMIT_RPS", "-1"},
		"bad duration":      {"SHUTDOWN_TIMEOUT", "soon"},
		"zero timeout":      {"SHUTDOWN_TIMEOUT", "0s"},
		"non numeric burst": {"RATE_LIMIT_BURST", "many"},
	}

	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(env[0], env[1])

			_, err := Load(viper.New(), nil)
			assert.Error(t, err)
		})
	}
}

func TestValidate_BurstRequiredWhenLimiting(t *testing.T) {
	cfg := &Config{Port: 5000, RateLimitRPS: 1, RateLimitBurst: 0, ShutdownTimeout: time.Second}
	assert.ErrorContains(t, cfg.Validate(), "rate_limit_burst")

	cfg.RateLimitRPS = 0
	assert.NoError(t, cfg.Validate())
}

func TestAddr_IPv6(t *testing.T) {
	cfg := &Config{Host: "::1", Port: 5000}
	assert.Equal(t, "[::1]:5000", cfg.Addr())
}
