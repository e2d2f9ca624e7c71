package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bokbuin/policyhub/internal/processor"
	"github.com/redis/go-redis/v9"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// PolicyItem 정규화된 정책/뉴스 항목 한 건. content_hash 유니크 인덱스가 멱등 쓰기의 키
type PolicyItem struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	Kind            string         `gorm:"size:32;index" json:"kind"`
	Title           string         `gorm:"size:512" json:"title"`
	Date            string         `gorm:"size:10;index" json:"date"` // YYYY-MM-DD
	Source          string         `gorm:"size:128" json:"source"`
	Summary         string         `gorm:"size:2000" json:"summary"`
	SourceURL       string         `gorm:"size:1024" json:"sourceUrl"`
	CanonicalURL    string         `gorm:"size:1024" json:"canonicalUrl"`
	Links           datatypes.JSON `gorm:"type:jsonb" json:"links"`
	FullDescription datatypes.JSON `gorm:"type:jsonb" json:"fullDescription"`
	ContentHash     string         `gorm:"size:64;uniqueIndex" json:"contentHash"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SitemapEntry 사이트맵/피드 생성에 필요한 최소 필드
type SitemapEntry struct {
	ID        uint      `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

type Store struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewStore(dsn, redisAddr string) (*Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&PolicyItem{}); err != nil {
		return nil, err
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("warn: redis ping failed: %v", err)
	}

	return &Store{DB: db, Redis: rdb}, nil
}

// toValidUTF8 잘못된 바이트 시퀀스를 치환해 PostgreSQL invalid byte sequence 오류를 막는다
func toValidUTF8(s string) string {
	return strings.ToValidUTF8(s, "�")
}

// truncateRunesDB 룬 수 기준 절단. varchar 컬럼 길이를 넘는 이상 입력에 대한 이중 안전장치
func truncateRunesDB(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	rs := []rune(s)
	if len(rs) <= limit {
		return s
	}
	return string(rs[:limit])
}

// UpsertBatch content_hash 기준으로 한 건씩 순차 upsert.
// 개별 실패는 skipped 로만 집계하고 나머지 처리를 계속한다
func (s *Store) UpsertBatch(records []processor.Record) (inserted, skipped int) {
	for _, rec := range records {
		created, err := s.upsertOne(rec)
		if err != nil {
			log.Printf("upsert %s error: %v", rec.Title, err)
			skipped++
			continue
		}
		if created {
			inserted++
		}
	}

	// 목록 캐시는 별도 무효화 없이 짧은 TTL 의 자연 만료에 맡긴다
	return inserted, skipped
}

func (s *Store) upsertOne(rec processor.Record) (bool, error) {
	linksJSON, err := json.Marshal(rec.Links)
	if err != nil {
		return false, err
	}
	fullDescJSON, err := json.Marshal(rec.FullDescription)
	if err != nil {
		return false, err
	}

	title := truncateRunesDB(toValidUTF8(rec.Title), 512)
	summary := truncateRunesDB(toValidUTF8(rec.Summary), 2000)

	var existing PolicyItem
	err = s.DB.Where("content_hash = ?", rec.ContentHash).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		item := PolicyItem{
			Kind:            rec.Kind,
			Title:           title,
			Date:            rec.Date,
			Source:          rec.Source,
			Summary:         summary,
			SourceURL:       rec.SourceURL,
			CanonicalURL:    rec.CanonicalURL,
			Links:           datatypes.JSON(linksJSON),
			FullDescription: datatypes.JSON(fullDescJSON),
			ContentHash:     rec.ContentHash,
		}
		if err := s.DB.Create(&item).Error; err != nil {
			return false, err
		}
		return true, nil
	}
	if err != nil {
		return false, err
	}

	// 지문이 같으면 kind/source/date/title/canonical_url 은 동일하므로 가변 필드만 갱신
	return false, s.DB.Model(&existing).Updates(map[string]any{
		"summary":          summary,
		"source_url":       rec.SourceURL,
		"links":            datatypes.JSON(linksJSON),
		"full_description": datatypes.JSON(fullDescJSON),
	}).Error
}

// CleanupOldNews kind 가 일치하고 date 가 cutoff(YYYY-MM-DD) 이전인 행을 삭제.
// 현재는 뉴스에만 적용하고 다른 분류는 무기한 보존한다
func (s *Store) CleanupOldNews(kind, cutoff string) error {
	return s.DB.Where("kind = ? AND date < ?", kind, cutoff).Delete(&PolicyItem{}).Error
}

// ListItems 날짜 내림차순 목록. kind 가 빈 값이면 전체, Redis 5분 캐시
func (s *Store) ListItems(kind string, limit int) ([]PolicyItem, error) {
	if limit <= 0 || limit > 1000 {
		limit = 50
	}

	ctx := context.Background()
	cacheKey := fmt.Sprintf("policy:list:%s:%d", kind, limit)

	if s.Redis != nil {
		if bs, err := s.Redis.Get(ctx, cacheKey).Bytes(); err == nil {
			var cached []PolicyItem
			if err := json.Unmarshal(bs, &cached); err == nil {
				return cached, nil
			}
		}
	}

	var list []PolicyItem
	db := s.DB.Model(&PolicyItem{})
	if kind != "" {
		db = db.Where("kind = ?", kind)
	}
	if err := db.Order("date DESC").Order("created_at DESC").Limit(limit).Find(&list).Error; err != nil {
		return nil, err
	}

	const listCacheTTL = 5 * time.Minute
	if s.Redis != nil && len(list) > 0 {
		if bs, err := json.Marshal(list); err == nil {
			_ = s.Redis.Set(ctx, cacheKey, bs, listCacheTTL).Err()
		}
	}

	return list, nil
}

// GetItem id 로 한 건 조회
func (s *Store) GetItem(id uint) (*PolicyItem, error) {
	var item PolicyItem
	if err := s.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// ListSitemapEntries 최근 생성분의 id/created_at 만 생성시각 내림차순으로 조회.
// 전체를 다 넣으면 사이트맵이 무거워져서 기본 1000건으로 제한
func (s *Store) ListSitemapEntries(limit int) ([]SitemapEntry, error) {
	if limit <= 0 || limit > 5000 {
		limit = 1000
	}
	var rows []SitemapEntry
	err := s.DB.Model(&PolicyItem{}).
		Select("id", "created_at").
		Order("created_at DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
