package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.FeedsConfigPath != "configs/feeds.yaml" {
		t.Errorf("FeedsConfigPath = %q", cfg.FeedsConfigPath)
	}
	if cfg.KeywordMinLength != 3 || cfg.KeywordMaxCount != 15 || cfg.SummarySentences != 3 {
		t.Errorf("pipeline defaults wrong: %+v", cfg)
	}
	if cfg.NewsMaxAge != 24*time.Hour {
		t.Errorf("NewsMaxAge = %v", cfg.NewsMaxAge)
	}
	if cfg.CacheTTLHours != 48 {
		t.Errorf("CacheTTLHours = %d", cfg.CacheTTLHours)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("FEEDS_CONFIG_PATH", "/tmp/feeds.yaml")
	t.Setenv("KEYWORD_MAX_COUNT", "5")
	t.Setenv("NEWS_MAX_AGE_HOURS", "6")
	t.Setenv("DEBUG", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.FeedsConfigPath != "/tmp/feeds.yaml" {
		t.Errorf("FeedsConfigPath = %q", cfg.FeedsConfigPath)
	}
	if cfg.KeywordMaxCount != 5 {
		t.Errorf("KeywordMaxCount = %d", cfg.KeywordMaxCount)
	}
	if cfg.NewsMaxAge != 6*time.Hour {
		t.Errorf("NewsMaxAge = %v", cfg.NewsMaxAge)
	}
	if !cfg.Debug {
		t.Error("DEBUG=true not honored")
	}
}

func TestLoad_IgnoresInvalidInts(t *testing.T) {
	t.Setenv("KEYWORD_MAX_COUNT", "not-a-number")
	t.Setenv("RETRY_ATTEMPTS", "-2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.KeywordMaxCount != 15 {
		t.Errorf("KeywordMaxCount = %d, want default 15", cfg.KeywordMaxCount)
	}
	if cfg.RetryAttempts != 3 {
		t.Errorf("RetryAttempts = %d, want default 3", cfg.RetryAttempts)
	}
}

func TestValidate_TelegramPair(t *testing.T) {
	base := Config{FeedsConfigPath: "f", ProfilesPath: "p", OutputDir: "o"}

	if err := base.Validate(); err != nil {
		t.Errorf("Validate() without telegram: %v", err)
	}

	halfSet := base
	halfSet.TelegramToken = "token"
	if err := halfSet.Validate(); err == nil {
		t.Error("Validate() accepted token without chat id")
	}

	bothSet := halfSet
	bothSet.TelegramChatID = "chat"
	if err := bothSet.Validate(); err != nil {
		t.Errorf("Validate() with both telegram values: %v", err)
	}
}

func TestValidate_RequiredPaths(t *testing.T) {
	cfg := Config{ProfilesPath: "p", OutputDir: "o"}
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() accepted empty feeds path")
	}
}
