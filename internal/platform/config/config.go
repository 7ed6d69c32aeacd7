package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Addr        string
	Environment string

	SeedEmployeeID   string
	SeedEmployeeName string
	SeedCasual       int
	SeedSick         int
	SeedDemoHistory  bool

	RulesPath  string
	RulesWatch bool

	MaxBodyBytes       int64
	RateLimitPerMinute int
	MetricsEnabled     bool
}

func Load() Config {
	return Config{
		Addr:               getEnv("APP_ADDR", ":8080"),
		Environment:        getEnv("APP_ENV", "development"),
		SeedEmployeeID:     getEnv("SEED_EMPLOYEE_ID", "E001"),
		SeedEmployeeName:   getEnv("SEED_EMPLOYEE_NAME", "John Doe"),
		SeedCasual:         getEnvInt("SEED_CASUAL_BALANCE", 5),
		SeedSick:           getEnvInt("SEED_SICK_BALANCE", 2),
		SeedDemoHistory:    getEnvBool("SEED_DEMO_HISTORY", true),
		RulesPath:          getEnv("RULES_PATH", ""),
		RulesWatch:         getEnvBool("RULES_WATCH", false),
		MaxBodyBytes:       int64(getEnvInt("MAX_BODY_BYTES", 65536)),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 120),
		MetricsEnabled:     getEnvBool("METRICS_ENABLED", true),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.SeedEmployeeID) == "" {
		return fmt.Errorf("SEED_EMPLOYEE_ID must not be empty")
	}
	if c.SeedCasual < 0 || c.SeedSick < 0 {
		return fmt.Errorf("seed balances must not be negative")
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive")
	}
	if c.RulesWatch && strings.TrimSpace(c.RulesPath) == "" {
		return fmt.Errorf("RULES_WATCH requires RULES_PATH")
	}
	return nil
}

// RateLimitWindow is the fixed window the per-minute limit applies to.
func (c Config) RateLimitWindow() time.Duration {
	return time.Minute
}
