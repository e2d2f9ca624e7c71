package scheduler

import (
	"log"
	"time"

	"github.com/bokbuin/policyhub/internal/ingest"
	"github.com/robfig/cron/v3"
)

type Scheduler struct {
	cron   *cron.Cron
	runner *ingest.Runner
	secret string
}

// New spec 주기로 수집을 실행하는 스케줄러.
// secret 은 Runner 에 설정된 값과 같은 값이어야 실행이 인가된다
func New(spec string, runner *ingest.Runner, secret string) (*Scheduler, error) {
	c := cron.New()

	s := &Scheduler{
		cron:   c,
		runner: runner,
		secret: secret,
	}

	if _, err := c.AddFunc(spec, s.runOnce); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	// 기동 직후 첫 수집은 잠깐 미뤄서 서버 초기 요청과 리소스 경합을 피한다
	const startupDelay = 15 * time.Second
	time.AfterFunc(startupDelay, func() {
		go s.runOnce()
	})
}

// RunOnce 수동 트리거용 단일 실행 입구
func (s *Scheduler) RunOnce() {
	s.runOnce()
}

func (s *Scheduler) runOnce() {
	sum, err := s.runner.Run(s.secret)
	if err != nil {
		log.Printf("scheduled ingest error: %v", err)
		return
	}
	log.Printf("scheduled ingest done: found=%d inserted=%d skipped=%d cleaned=%v", sum.Found, sum.Inserted, sum.Skipped, sum.Cleaned)
}
