package config

import (
	"os"
	"testing"
)

func TestGetEnvWithDefault(t *testing.T) {
	const key = "TEST_APP_PORT"

	// 환경변수가 없으면 기본값
	_ = os.Unsetenv(key)
	if got := getEnv(key, "9000"); got != "9000" {
		t.Fatalf("getEnv(%q) = %q, want %q", key, got, "9000")
	}

	// 설정돼 있으면 환경변수 우선
	if err := os.Setenv(key, "8080"); err != nil {
		t.Fatalf("Setenv error: %v", err)
	}
	defer os.Unsetenv(key)
	if got := getEnv(key, "9000"); got != "8080" {
		t.Fatalf("getEnv(%q) = %q, want %q", key, got, "8080")
	}
}

func TestLoadReadsSecretAndSourceURLs(t *testing.T) {
	_ = os.Setenv("CRON_SECRET", "s3cret")
	_ = os.Setenv("MOLIT_FEED_URL", "http://localhost:1234/molit.xml")
	defer func() {
		_ = os.Unsetenv("CRON_SECRET")
		_ = os.Unsetenv("MOLIT_FEED_URL")
	}()

	cfg := Load()
	if cfg.CronSecret != "s3cret" {
		t.Fatalf("CronSecret = %q", cfg.CronSecret)
	}
	if cfg.MolitFeedURL != "http://localhost:1234/molit.xml" {
		t.Fatalf("MolitFeedURL = %q", cfg.MolitFeedURL)
	}
	// 오버라이드하지 않은 URL 은 기본값 유지
	if cfg.MolegListURL == "" || cfg.PressFeedURL == "" {
		t.Fatalf("default source URLs should not be empty: %+v", cfg)
	}
}
