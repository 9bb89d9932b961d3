// Package config resolves the service settings from defaults, environment
// variables and command line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the application's configuration. None of it affects response
// content.
type Config struct {
	Host            string
	Port            int
	Debug           bool
	AppEnv          string
	RateLimitRPS    float64
	RateLimitBurst  int
	CORSOrigins     []string
	ShutdownTimeout time.Duration
	TrustProxy      bool
}

// setting ties a viper key to its environment variable and flag.
type setting struct {
	key   string
	env   string
	flag  string
	value any
	usage string
}

var settings = []setting{
	{"host", "HOST", "host", "0.0.0.0", "Bind address for the HTTP server"},
	{"port", "PORT", "port", 5000, "Port for the HTTP server"},
	{"debug", "DEBUG", "debug", false, "Enable debug logging"},
	{"app_env", "APP_ENV", "env", "development", "Runtime environment (development, production)"},
	{"rate_limit_rps", "RATE_LIMIT_RPS", "rate-limit-rps", 0.0, "Per client requests per second, 0 disables rate limiting"},
	{"rate_limit_burst", "RATE_LIMIT_BURST", "rate-limit-burst", 5, "Per client burst size"},
	{"cors_origins", "CORS_ORIGINS", "cors-origins", "*", "Comma separated list of allowed CORS origins"},
	{"shutdown_timeout", "SHUTDOWN_TIMEOUT", "shutdown-timeout", 5 * time.Second, "Grace period for in-flight requests on shutdown"},
	{"trust_proxy", "TRUST_PROXY", "trust-proxy", false, "Take the client IP from X-Real-IP / X-Forwarded-For"},
}

// BindFlags registers one flag per setting on fs.
func BindFlags(fs *pflag.FlagSet) {
	for _, s := range settings {
		switch def := s.value.(type) {
		case string:
			fs.String(s.flag, def, s.usage+" (Env: "+s.env+")")
		case int:
			fs.Int(s.flag, def, s.usage+" (Env: "+s.env+")")
		case float64:
			fs.Float64(s.flag, def, s.usage+" (Env: "+s.env+")")
		case bool:
			fs.Bool(s.flag, def, s.usage+" (Env: "+s.env+")")
		case time.Duration:
			fs.Duration(s.flag, def, s.usage+" (Env: "+s.env+")")
		}
	}
}

// Load resolves every setting through v. fs may be nil, in which case only
// defaults and the environment are consulted.
func Load(v *viper.Viper, fs *pflag.FlagSet) (*Config, error) {
	for _, s := range settings {
		v.SetDefault(s.key, s.value)
		if err := v.BindEnv(s.key, s.env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", s.env, err)
		}
		if fs == nil {
			continue
		}
		if f := fs.Lookup(s.flag); f != nil {
			if err := v.BindPFlag(s.key, f); err != nil {
				return nil, fmt.Errorf("bind flag --%s: %w", s.flag, err)
			}
		}
	}

	port, err := strconv.Atoi(strings.TrimSpace(v.GetString("port")))
	if err != nil {
		return nil, fmt.Errorf("invalid port %q: %w", v.GetString("port"), err)
	}
	rps, err := strconv.ParseFloat(strings.TrimSpace(v.GetString("rate_limit_rps")), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid rate_limit_rps %q: %w", v.GetString("rate_limit_rps"), err)
	}
	burst, err := strconv.Atoi(strings.TrimSpace(v.GetString("rate_limit_burst")))
	if err != nil {
		return nil, fmt.Errorf("invalid rate_limit_burst %q: %w", v.GetString("rate_limit_burst"), err)
	}
	timeout, err := time.ParseDuration(strings.TrimSpace(v.GetString("shutdown_timeout")))
	if err != nil {
		return nil, fmt.Errorf("invalid shutdown_timeout %q: %w", v.GetString("shutdown_timeout"), err)
	}

	cfg := &Config{
		Host:            v.GetString("host"),
		Port:            port,
		Debug:           isTrue(v.GetString("debug")),
		AppEnv:          v.GetString("app_env"),
		RateLimitRPS:    rps,
		RateLimitBurst:  burst,
		CORSOrigins:     splitList(v.GetString("cors_origins")),
		ShutdownTimeout: timeout,
		TrustProxy:      isTrue(v.GetString("trust_proxy")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}
	return cfg, nil
}

// Validate checks ranges that parsing alone cannot catch.
func (c *Config) Validate() error {
	var errs []error
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d out of range 1-65535", c.Port))
	}
	if c.RateLimitRPS < 0 {
		errs = append(errs, fmt.Errorf("rate_limit_rps must not be negative, got %v", c.RateLimitRPS))
	}
	if c.RateLimitRPS > 0 && c.RateLimitBurst < 1 {
		errs = append(errs, fmt.Errorf("rate_limit_burst must be at least 1 when rate limiting is enabled, got %d", c.RateLimitBurst))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("shutdown_timeout must be positive, got %s", c.ShutdownTimeout))
	}
	return errors.Join(errs...)
}

// Addr is the listen address for http.Server.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// RateLimitEnabled reports whether the per client limiter should be installed.
func (c *Config) RateLimitEnabled() bool {
	return c.RateLimitRPS > 0
}

// isTrue accepts "true" in any letter case and nothing else.
func isTrue(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "true")
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
