package collector

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

const noticeListHTML = `<html><body>
<table>
<tr><td><a href="/lawinfo/makingView.mo?seq=1">주택임대차보호법 일부개정령(안) 입법예고</a></td><td>2024-05-01</td></tr>
<tr><td><a href="https://www.moleg.go.kr/lawinfo/makingView.mo?seq=2">농지법 시행령 일부개정</a></td><td>2024-05-02</td></tr>
<tr><td><a href="/lawinfo/makingView.mo?seq=1">주택임대차보호법 일부개정령(안) 입법예고</a></td></tr>
<tr><td><a href="/lawinfo/makingView.mo?seq=3">재건축 안전진단 기준 개정</a></td></tr>
</table>
</body></html>`

func TestPositionalExtractorPairsLinksWithDates(t *testing.T) {
	x := &PositionalExtractor{BaseURL: "https://www.moleg.go.kr"}
	got := x.ExtractCandidates(noticeListHTML)

	// 링크는 중복 제거 후 3개, 날짜는 2개뿐이라 짝 없는 마지막 링크는 버려진다
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %d: %+v", len(got), got)
	}

	if got[0].Title != "주택임대차보호법 일부개정령(안) 입법예고" {
		t.Fatalf("title[0] = %q", got[0].Title)
	}
	if got[0].URL != "https://www.moleg.go.kr/lawinfo/makingView.mo?seq=1" {
		t.Fatalf("relative href not resolved: %q", got[0].URL)
	}
	if got[0].Date != "2024-05-01" {
		t.Fatalf("date[0] = %q", got[0].Date)
	}

	if got[1].URL != "https://www.moleg.go.kr/lawinfo/makingView.mo?seq=2" {
		t.Fatalf("absolute href should pass through: %q", got[1].URL)
	}
	if got[1].Date != "2024-05-02" {
		t.Fatalf("date[1] = %q", got[1].Date)
	}
}

func TestPositionalExtractorCapsLinkCount(t *testing.T) {
	x := &PositionalExtractor{BaseURL: "https://www.moleg.go.kr", MaxLinks: 1}
	got := x.ExtractCandidates(noticeListHTML)
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate with MaxLinks=1, got %d", len(got))
	}
}

func TestPositionalExtractorEmptyPage(t *testing.T) {
	x := &PositionalExtractor{}
	if got := x.ExtractCandidates("<html><body>공지 없음</body></html>"); len(got) != 0 {
		t.Fatalf("expected no candidates, got %+v", got)
	}
}

func TestMolegFetcherFiltersByKeyword(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(noticeListHTML))
	}))
	defer srv.Close()

	f := &MolegNoticeFetcher{
		ListURL:   srv.URL,
		Extractor: &PositionalExtractor{BaseURL: srv.URL},
	}

	items, err := f.Fetch()
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}

	// 후보 2건 중 키워드(주택/임대차)에 걸리는 1건만 남는다
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d: %+v", len(items), items)
	}

	it := items[0]
	if it.Kind != KindLegislativeNotice {
		t.Fatalf("Kind = %q, want %q", it.Kind, KindLegislativeNotice)
	}
	if it.Source != "법제처" {
		t.Fatalf("Source = %q", it.Source)
	}
	if it.Summary != "" {
		t.Fatalf("notice summary should be empty, got %q", it.Summary)
	}
	if it.Date != "2024-05-01" {
		t.Fatalf("Date = %q", it.Date)
	}
	if len(it.Links) != 1 || it.Links[0].Label != "법제처 원문" {
		t.Fatalf("Links = %+v", it.Links)
	}
}

func TestMolegFetcherBadStatusIsHardFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	f := &MolegNoticeFetcher{ListURL: srv.URL}
	if _, err := f.Fetch(); err == nil {
		t.Fatalf("expected error on non-2xx listing page")
	}
}
