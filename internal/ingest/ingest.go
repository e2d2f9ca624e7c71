package ingest

import (
	"crypto/subtle"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/bokbuin/policyhub/internal/collector"
	"github.com/bokbuin/policyhub/internal/processor"
)

// ErrUnauthorized 시크릿 불일치. 이때는 어떤 부수효과도 없다
var ErrUnauthorized = errors.New("unauthorized")

// Store Runner 가 필요로 하는 저장소 연산. 테스트에서는 가짜 구현을 주입한다
type Store interface {
	UpsertBatch(records []processor.Record) (inserted, skipped int)
	CleanupOldNews(kind, cutoff string) error
}

// Summary 수집 1회 실행의 결과 집계.
// 소스 일부가 실패해도 OK 는 true 이므로 상태가 아니라 숫자를 봐야 한다
type Summary struct {
	OK       bool `json:"ok"`
	Found    int  `json:"found"`
	Inserted int  `json:"inserted"`
	Skipped  int  `json:"skipped"`
	Cleaned  bool `json:"cleaned"`
}

// Runner 수집 1회 실행을 담당하는 오케스트레이터
type Runner struct {
	Secret     string
	Fetchers   []collector.Fetcher
	Normalizer *processor.Normalizer
	Store      Store
	// Now 테스트에서 기준 시각을 고정할 때 사용. nil 이면 time.Now
	Now func() time.Time
}

func NewRunner(secret string, fetchers []collector.Fetcher, n *processor.Normalizer, store Store) *Runner {
	return &Runner{
		Secret:     secret,
		Fetchers:   fetchers,
		Normalizer: n,
		Store:      store,
	}
}

var locSeoul = time.FixedZone("KST", 9*60*60)

// Run 시크릿 검증 → 동시 수집 → 정규화/저장 → 뉴스 보존기간 정리 순서로 진행.
// 개별 소스나 레코드의 실패는 집계에만 반영되고 실행은 끝까지 간다
func (r *Runner) Run(secret string) (Summary, error) {
	if r.Secret == "" || subtle.ConstantTimeCompare([]byte(secret), []byte(r.Secret)) != 1 {
		return Summary{}, ErrUnauthorized
	}

	log.Println("start ingest run...")

	// 소스마다 독립된 고루틴. 실패한 소스는 0건으로 접힐 뿐 다른 소스를 막지 않는다
	results := make([][]collector.Item, len(r.Fetchers))
	var wg sync.WaitGroup
	for i, f := range r.Fetchers {
		wg.Add(1)
		go func(i int, f collector.Fetcher) {
			defer wg.Done()
			items, err := f.Fetch()
			if err != nil {
				log.Printf("fetch %s error: %v", f.Name(), err)
				return
			}
			log.Printf("fetch %s got %d items", f.Name(), len(items))
			results[i] = items
		}(i, f)
	}
	wg.Wait()

	var collected []collector.Item
	for _, items := range results {
		collected = append(collected, items...)
	}

	// 쓰기는 순차 처리. 같은 지문을 향한 동시 upsert 경합을 피한다
	records := r.Normalizer.Normalize(collected)
	inserted, skipped := r.Store.UpsertBatch(records)

	// 뉴스만 1년 지난 행 정리. 다른 분류는 보존
	cutoff := r.now().In(locSeoul).AddDate(-1, 0, 0).Format("2006-01-02")
	cleaned := true
	if err := r.Store.CleanupOldNews(collector.KindNews, cutoff); err != nil {
		log.Printf("cleanup old news error: %v", err)
		cleaned = false
	}

	sum := Summary{OK: true, Found: len(collected), Inserted: inserted, Skipped: skipped, Cleaned: cleaned}
	log.Printf("ingest run done: found=%d inserted=%d skipped=%d cleaned=%v", sum.Found, sum.Inserted, sum.Skipped, sum.Cleaned)
	return sum, nil
}

func (r *Runner) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}
