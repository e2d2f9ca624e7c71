package main

import (
	"log"

	"github.com/bokbuin/policyhub/internal/api"
	"github.com/bokbuin/policyhub/internal/collector"
	"github.com/bokbuin/policyhub/internal/config"
	"github.com/bokbuin/policyhub/internal/ingest"
	"github.com/bokbuin/policyhub/internal/processor"
	"github.com/bokbuin/policyhub/internal/scheduler"
	"github.com/bokbuin/policyhub/internal/storage"
	"github.com/gin-gonic/gin"
)

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

	// 외부 크론이 /api/cron/update 를 못 부르는 환경을 위해 내장 스케줄도 함께 돈다
	s, err := scheduler.New(cfg.CronSpec, runner, cfg.CronSecret)
	if err != nil {
		log.Fatalf("init scheduler failed: %v", err)
	}
	s.Start()

	r := gin.Default()
	api.NewServer(store, runner).RegisterRoutes(r)

	addr := ":" + cfg.AppPort
	log.Printf("starting api server at %s ...", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server exit: %v", err)
	}
}
