package collector

import (
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"
)

const (
	defaultMolegListURL   = "https://www.moleg.go.kr/lawinfo/makingList.mo?mid=a10104010000"
	defaultMolegBaseURL   = "https://www.moleg.go.kr"
	defaultNoticeMaxLinks = 30
)

var noticeDateRe = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// NoticeCandidate 목록 페이지에서 뽑아낸 입법예고 후보 한 건
type NoticeCandidate struct {
	Title string
	URL   string
	Date  string
}

// NoticeExtractor HTML 목록에서 후보를 뽑는 전략.
// 현재 구현(PositionalExtractor)은 위치 기반 매칭이라 한계가 뚜렷해서
// DOM 구조 기반 추출기로 갈아끼울 수 있게 인터페이스로 분리해 둔다
type NoticeExtractor interface {
	ExtractCandidates(html string) []NoticeCandidate
}

// PositionalExtractor 링크와 날짜를 각각 문서 순서대로 긁은 뒤 N번째끼리 짝짓는 추출기.
// 날짜가 링크에 구조적으로 붙어 있지 않아 개수가 어긋나면 날짜가 밀려 붙는다.
// 뒤쪽의 짝 없는 링크는 버린다. 알려진 한계이며 페이지 구조가 바뀌면 손봐야 한다
type PositionalExtractor struct {
	// BaseURL 상대 경로 href 를 절대 주소로 만들 때 쓰는 origin
	BaseURL string
	// MaxLinks 첫 페이지에서 가져올 최대 링크 수(페이지네이션 없음). 0이면 30
	MaxLinks int
}

func (x *PositionalExtractor) ExtractCandidates(html string) []NoticeCandidate {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	base := x.BaseURL
	if base == "" {
		base = defaultMolegBaseURL
	}
	maxLinks := x.MaxLinks
	if maxLinks <= 0 {
		maxLinks = defaultNoticeMaxLinks
	}

	// 1) makingView.mo 링크 + 제목을 문서 순서대로 수집, 절대 주소 기준으로 중복 제거
	type linkEntry struct {
		title string
		url   string
	}
	links := make([]linkEntry, 0, maxLinks)
	seen := make(map[string]struct{})
	doc.Find(`a[href*="makingView.mo"]`).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		title := strings.TrimSpace(sel.Text())
		href, ok := sel.Attr("href")
		if title == "" || !ok {
			return true
		}

		abs := href
		if !strings.HasPrefix(href, "http") {
			if strings.HasPrefix(href, "/") {
				abs = base + href
			} else {
				abs = base + "/" + href
			}
		}
		if _, dup := seen[abs]; dup {
			return true
		}
		seen[abs] = struct{}{}
		links = append(links, linkEntry{title: title, url: abs})
		return len(links) < maxLinks
	})

	// 2) 페이지 전체에서 YYYY-MM-DD 를 순서대로 모아 N번째 링크와 짝짓기
	dates := noticeDateRe.FindAllString(html, -1)

	out := make([]NoticeCandidate, 0, len(links))
	for i, l := range links {
		if i >= len(dates) {
			break
		}
		out = append(out, NoticeCandidate{Title: l.title, URL: l.url, Date: dates[i]})
	}
	return out
}

// MolegNoticeFetcher 법제처 입법예고 목록(HTML) 수집기. 구조화된 피드가 없어 스크랩에 의존
type MolegNoticeFetcher struct {
	ListURL   string
	Extractor NoticeExtractor
}

func (f *MolegNoticeFetcher) Name() string {
	return "moleg_notice"
}

func (f *MolegNoticeFetcher) Fetch() ([]Item, error) {
	log.Println("fetch MOLEG legislation notice list...")

	c := colly.NewCollector(colly.UserAgent(userAgent))
	c.SetRequestTimeout(10 * time.Second)

	var body string
	c.OnResponse(func(r *colly.Response) {
		body = string(r.Body)
	})

	// 목록 페이지를 못 읽으면 이 수집기만 실패. 다른 소스에는 영향 없다
	if err := c.Visit(f.listURL()); err != nil {
		return nil, fmt.Errorf("moleg: fetch list: %w", err)
	}

	candidates := f.extractor().ExtractCandidates(body)

	results := make([]Item, 0, len(candidates))
	for _, cand := range candidates {
		if !containsAny(cand.Title, noticeKeywords) {
			continue
		}
		results = append(results, Item{
			Kind:         KindLegislativeNotice,
			Title:        cand.Title,
			Date:         cand.Date,
			Source:       "법제처",
			SourceURL:    cand.URL,
			CanonicalURL: cand.URL,
			Links:        []Link{{Label: "법제처 원문", URL: cand.URL}},
		})
	}

	if len(results) == 0 {
		log.Println("moleg: no notices matched")
	}
	return results, nil
}

func (f *MolegNoticeFetcher) listURL() string {
	if f.ListURL != "" {
		return f.ListURL
	}
	return defaultMolegListURL
}

func (f *MolegNoticeFetcher) extractor() NoticeExtractor {
	if f.Extractor != nil {
		return f.Extractor
	}
	return &PositionalExtractor{}
}
