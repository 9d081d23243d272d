package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"propcalc/internal/calculator"
)

// Config holds application configuration
type Config struct {
	// Server
	Port              string
	Env               string
	LogLevel          string
	CORSAllowedOrigin string
	// TrustedProxies lists the IPs or CIDRs allowed to set X-Forwarded-For.
	// Empty means the remote address is always the client IP.
	TrustedProxies []string

	// Rate limiting
	RateLimitRequests int
	RateLimitWindow   time.Duration
	RedisAddr         string

	// Calculator
	AssumptionsFile string
	Assumptions     calculator.Assumptions
}

// Load loads configuration from environment variables, reading a .env file
// first when one exists.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read .env file: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		Env:               getEnv("ENV", "development"),
		LogLevel:          getEnv("LOG_LEVEL", ""),
		CORSAllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "*"),
		RedisAddr:         getEnv("REDIS_ADDR", ""),
		AssumptionsFile:   getEnv("ASSUMPTIONS_FILE", ""),
	}

	if err := validateOrigin(cfg.CORSAllowedOrigin); err != nil {
		return nil, fmt.Errorf("invalid CORS_ALLOWED_ORIGIN: %w", err)
	}

	proxies, err := parseProxies(getEnv("TRUSTED_PROXIES", ""))
	if err != nil {
		return nil, fmt.Errorf("invalid TRUSTED_PROXIES: %w", err)
	}
	cfg.TrustedProxies = proxies

	requests, err := parsePositiveInt(getEnv("RATE_LIMIT_REQUESTS", "60"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_REQUESTS: %w", err)
	}
	cfg.RateLimitRequests = requests

	window, err := parsePositiveDuration(getEnv("RATE_LIMIT_WINDOW", "1m"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_WINDOW: %w", err)
	}
	cfg.RateLimitWindow = window

	cfg.Assumptions = calculator.DefaultAssumptions()
	if cfg.AssumptionsFile != "" {
		assumptions, err := LoadAssumptions(cfg.AssumptionsFile)
		if err != nil {
			return nil, err
		}
		cfg.Assumptions = assumptions
	}

	return cfg, nil
}

// LoadAssumptions reads a YAML assumptions file. Keys missing from the file
// keep their default values.
func LoadAssumptions(path string) (calculator.Assumptions, error) {
	assumptions := calculator.DefaultAssumptions()

	data, err := os.ReadFile(path)
	if err != nil {
		return assumptions, fmt.Errorf("failed to read assumptions file: %w", err)
	}
	if err := yaml.Unmarshal(data, &assumptions); err != nil {
		return assumptions, fmt.Errorf("failed to parse assumptions file %s: %w", path, err)
	}
	if err := assumptions.Validate(); err != nil {
		return assumptions, fmt.Errorf("assumptions file %s: %w", path, err)
	}
	return assumptions, nil
}

// IsProduction reports whether the server runs with ENV=production.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parsePositiveInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer", s)
	}
	if n <= 0 {
		return 0, fmt.Errorf("must be positive, got %d", n)
	}
	return n, nil
}

func parsePositiveDuration(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("must be positive, got %v", d)
	}
	return d, nil
}

// validateOrigin accepts "*" or an http(s) origin.
func validateOrigin(origin string) error {
	if origin == "*" || strings.HasPrefix(origin, "http://") || strings.HasPrefix(origin, "https://") {
		return nil
	}
	return fmt.Errorf("%q must be \"*\" or start with http:// or https://", origin)
}

// parseProxies splits a comma-separated list of IPs and CIDRs.
func parseProxies(s string) ([]string, error) {
	var proxies []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if net.ParseIP(p) == nil {
			if _, _, err := net.ParseCIDR(p); err != nil {
				return nil, fmt.Errorf("%q is not an IP or CIDR", p)
			}
		}
		proxies = append(proxies, p)
	}
	return proxies, nil
}
