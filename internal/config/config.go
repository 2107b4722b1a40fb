package config

import (
	"os"
	"strconv"
	"time"
)

// Config represents the complete application configuration. Every field
// has a working default: the app must run fully unconfigured, including
// with no AI credential.
type Config struct {
	Server   ServerConfig
	AI       AIConfig
	Loader   LoaderConfig
	Profiler ProfilerConfig
	Report   ReportConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// AIConfig holds AI/LLM related settings. An empty key disables the
// insight feature without error.
type AIConfig struct {
	OpenAIKey   string
	Model       string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

// Enabled reports whether a credential is configured
func (c AIConfig) Enabled() bool {
	return c.OpenAIKey != ""
}

// LoaderConfig holds ingestion limits
type LoaderConfig struct {
	MaxUploadMB  int
	FetchTimeout time.Duration
}

// ProfilerConfig holds schema inference thresholds. The constants are
// configurable, not contractual; defaults follow the typical deployment.
type ProfilerConfig struct {
	// CategoricalMaxDistinct is the distinct-count ceiling below which a
	// non-numeric column is classified categorical
	CategoricalMaxDistinct int
	// ParseRatio is the fraction of non-null values that must parse as
	// datetime or numeric to classify the column as such
	ParseRatio float64
	// TopK limits the categorical frequency table
	TopK int
}

// ReportConfig holds PDF export settings
type ReportConfig struct {
	DefaultTitle  string
	DefaultAuthor string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "release"),
		},
		AI: AIConfig{
			OpenAIKey:   os.Getenv("OPENAI_API_KEY"),
			Model:       getEnvOrDefault("LLM_MODEL", "gpt-4o-mini"),
			MaxTokens:   getEnvIntOrDefault("LLM_MAX_TOKENS", 1000),
			Temperature: getEnvFloatOrDefault("LLM_TEMPERATURE", 0.2),
			Timeout:     getEnvDurationOrDefault("INSIGHT_TIMEOUT", 20*time.Second),
		},
		Loader: LoaderConfig{
			MaxUploadMB:  getEnvIntOrDefault("MAX_UPLOAD_MB", 25),
			FetchTimeout: getEnvDurationOrDefault("SHEETS_FETCH_TIMEOUT", 20*time.Second),
		},
		Profiler: ProfilerConfig{
			CategoricalMaxDistinct: getEnvIntOrDefault("PROFILE_MAX_CATEGORIES", 20),
			ParseRatio:             getEnvFloatOrDefault("PROFILE_PARSE_RATIO", 0.8),
			TopK:                   getEnvIntOrDefault("PROFILE_TOP_K", 10),
		},
		Report: ReportConfig{
			DefaultTitle:  getEnvOrDefault("REPORT_TITLE", "Auto Data Visualization Report"),
			DefaultAuthor: getEnvOrDefault("REPORT_AUTHOR", "autoviz"),
		},
	}
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
