package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bokbuin/policyhub/internal/ingest"
	"github.com/bokbuin/policyhub/internal/processor"
	"github.com/gin-gonic/gin"
)

type stubStore struct{}

func (stubStore) UpsertBatch([]processor.Record) (int, int) { return 0, 0 }
func (stubStore) CleanupOldNews(string, string) error       { return nil }

func newTestRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	runner := ingest.NewRunner(secret, nil, processor.NewNormalizer(), stubStore{})
	r := gin.New()
	NewServer(nil, runner).RegisterRoutes(r)
	return r
}

func TestCronUpdateRejectsWrongSecret(t *testing.T) {
	r := newTestRouter("s3cret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cron/update?secret=wrong", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if !strings.Contains(w.Body.String(), "unauthorized") {
		t.Fatalf("body = %q", w.Body.String())
	}
}

func TestCronUpdateReturnsSummary(t *testing.T) {
	r := newTestRouter("s3cret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cron/update?secret=s3cret", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `"ok":true`) || !strings.Contains(body, `"found":0`) {
		t.Fatalf("unexpected summary body: %q", body)
	}
}
