package config

import (
	"log"
	"os"
)

type Config struct {
	AppPort string

	PostgresDSN string
	RedisAddr   string

	CronSpec   string
	CronSecret string

	MolitFeedURL string
	PressFeedURL string
	MolegListURL string
}

func Load() *Config {
	cfg := &Config{
		AppPort:     getEnv("APP_PORT", "9000"),
		PostgresDSN: getEnv("POSTGRES_DSN", "host=localhost user=policyhub password=policyhub dbname=policyhub port=5432 sslmode=disable TimeZone=UTC"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		CronSpec:    getEnv("CRON_SPEC", "0 */2 * * *"),
		// 시크릿은 기본값 없음. 비어 있으면 수집 트리거가 항상 거부된다
		CronSecret:   os.Getenv("CRON_SECRET"),
		MolitFeedURL: getEnv("MOLIT_FEED_URL", "https://www.korea.kr/rss/dept_molit.xml"),
		PressFeedURL: getEnv("PRESS_FEED_URL", "https://www.korea.kr/rss/pressrelease.xml"),
		MolegListURL: getEnv("MOLEG_LIST_URL", "https://www.moleg.go.kr/lawinfo/makingList.mo?mid=a10104010000"),
	}

	log.Printf("config loaded: port=%s cron=%s", cfg.AppPort, cfg.CronSpec)
	if cfg.CronSecret == "" {
		log.Println("warn: CRON_SECRET is empty, ingest trigger will always be unauthorized")
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
