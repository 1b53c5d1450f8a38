// Package config loads application settings from the environment with sane
// defaults. A .env file is honored when present.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/subosito/gotenv"
)

type Config struct {
	// Input/output paths
	FeedsConfigPath string
	ProfilesPath    string
	OutputDir       string

	// Pipeline settings
	KeywordMinLength int
	KeywordMaxCount  int
	SummarySentences int
	ProcessingJobs   int // parallel document enrichment workers

	// Feed settings
	MaxArticlesPerFeed int
	NewsMaxAge         time.Duration
	RequestTimeout     time.Duration
	RetryAttempts      int
	RetryDelay         time.Duration
	HostInterval       time.Duration // politeness delay between hits to one host

	// Scraper settings
	ScrapeFullContent bool
	ScrapeConcurrency int
	ScrapeMaxArticles int

	// Seen-cache settings
	CacheFilePath string
	CacheTTLHours int

	// Delivery settings (Telegram is optional)
	TelegramToken  string
	TelegramChatID string

	// App settings
	Debug          bool
	MonitoringPort string
	ScheduleEvery  time.Duration
}

func Load() (*Config, error) {
	// Best effort: missing .env just means plain OS environment.
	_ = gotenv.Load()

	cfg := &Config{
		FeedsConfigPath:    "configs/feeds.yaml",
		ProfilesPath:       "data/readers.json",
		OutputDir:          "output",
		KeywordMinLength:   3,
		KeywordMaxCount:    15,
		SummarySentences:   3,
		ProcessingJobs:     4,
		MaxArticlesPerFeed: 10,
		NewsMaxAge:         24 * time.Hour,
		RequestTimeout:     15 * time.Second,
		RetryAttempts:      3,
		RetryDelay:         5 * time.Second,
		HostInterval:       500 * time.Millisecond,
		ScrapeFullContent:  false,
		ScrapeConcurrency:  4,
		ScrapeMaxArticles:  10,
		CacheFilePath:      "data/seen_news.json",
		CacheTTLHours:      48,
		MonitoringPort:     "8080",
		ScheduleEvery:      24 * time.Hour,
	}

	cfg.FeedsConfigPath = getEnvOrDefault("FEEDS_CONFIG_PATH", cfg.FeedsConfigPath)
	cfg.ProfilesPath = getEnvOrDefault("PROFILES_PATH", cfg.ProfilesPath)
	cfg.OutputDir = getEnvOrDefault("OUTPUT_DIR", cfg.OutputDir)
	cfg.CacheFilePath = getEnvOrDefault("CACHE_FILE_PATH", cfg.CacheFilePath)
	cfg.MonitoringPort = getEnvOrDefault("MONITORING_PORT", cfg.MonitoringPort)

	cfg.KeywordMinLength = getEnvIntOrDefault("KEYWORD_MIN_LENGTH", cfg.KeywordMinLength)
	cfg.KeywordMaxCount = getEnvIntOrDefault("KEYWORD_MAX_COUNT", cfg.KeywordMaxCount)
	cfg.SummarySentences = getEnvIntOrDefault("SUMMARY_SENTENCES", cfg.SummarySentences)
	cfg.ProcessingJobs = getEnvIntOrDefault("PROCESSING_JOBS", cfg.ProcessingJobs)
	cfg.MaxArticlesPerFeed = getEnvIntOrDefault("MAX_ARTICLES_PER_FEED", cfg.MaxArticlesPerFeed)
	cfg.RetryAttempts = getEnvIntOrDefault("RETRY_ATTEMPTS", cfg.RetryAttempts)
	cfg.ScrapeConcurrency = getEnvIntOrDefault("SCRAPE_CONCURRENCY", cfg.ScrapeConcurrency)
	cfg.ScrapeMaxArticles = getEnvIntOrDefault("SCRAPE_MAX_ARTICLES", cfg.ScrapeMaxArticles)
	cfg.CacheTTLHours = getEnvIntOrDefault("CACHE_TTL_HOURS", cfg.CacheTTLHours)

	if v := os.Getenv("NEWS_MAX_AGE_HOURS"); v != "" {
		if hours, err := strconv.Atoi(v); err == nil && hours > 0 {
			cfg.NewsMaxAge = time.Duration(hours) * time.Hour
		}
	}
	if v := os.Getenv("REQUEST_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.RequestTimeout = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv("HOST_INTERVAL_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
			cfg.HostInterval = time.Duration(ms) * time.Millisecond
		}
	}
	if v := os.Getenv("SCHEDULE_EVERY_HOURS"); v != "" {
		if hours, err := strconv.Atoi(v); err == nil && hours > 0 {
			cfg.ScheduleEvery = time.Duration(hours) * time.Hour
		}
	}

	if os.Getenv("SCRAPE_FULL_CONTENT") == "true" {
		cfg.ScrapeFullContent = true
	}
	if os.Getenv("DEBUG") == "true" {
		cfg.Debug = true
	}

	cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")
	cfg.TelegramChatID = os.Getenv("TELEGRAM_CHAT_ID")

	return cfg, cfg.Validate()
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil && intValue > 0 {
			return intValue
		}
	}
	return defaultValue
}

func (c *Config) Validate() error {
	if c.FeedsConfigPath == "" {
		return fmt.Errorf("FEEDS_CONFIG_PATH is required")
	}
	if c.ProfilesPath == "" {
		return fmt.Errorf("PROFILES_PATH is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("OUTPUT_DIR is required")
	}
	if (c.TelegramToken == "") != (c.TelegramChatID == "") {
		return fmt.Errorf("TELEGRAM_TOKEN and TELEGRAM_CHAT_ID must be set together")
	}
	return nil
}
