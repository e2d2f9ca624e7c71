package main

import (
	"log"

	"github.com/bokbuin/policyhub/internal/collector"
	"github.com/bokbuin/policyhub/internal/config"
	"github.com/bokbuin/policyhub/internal/ingest"
	"github.com/bokbuin/policyhub/internal/processor"
	"github.com/bokbuin/policyhub/internal/storage"
)

// 수집을 한 번만 실행하고 결과를 출력하는 명령행 입구: 수동 트리거에 적합
func main() {
	cfg := config.Load()

	store, err := storage.NewStore(cfg.PostgresDSN, cfg.RedisAddr)
	if err != nil {
		log.Fatalf("init store failed: %v", err)
	}

	fetchers := []collector.Fetcher{
		&collector.MolegNoticeFetcher{ListURL: cfg.MolegListURL},
		&collector.MolitRSSFetcher{FeedURL: cfg.MolitFeedURL},
		&collector.PressReleaseFetcher{FeedURL: cfg.PressFeedURL},
	}

	runner := ingest.NewRunner(cfg.CronSecret, fetchers, processor.NewNormalizer(), store)

	sum, err := runner.Run(cfg.CronSecret)
	if err != nil {
		log.Fatalf("ingest run failed: %v", err)
	}
	log.Printf("done: found=%d inserted=%d skipped=%d cleaned=%v", sum.Found, sum.Inserted, sum.Skipped, sum.Cleaned)
}
