package collector

import (
	"log"
	"net/http"
	"strings"
)

const (
	defaultPressFeedURL      = "https://www.korea.kr/rss/pressrelease.xml"
	defaultPressSummaryLimit = 400
)

// PressReleaseFetcher 정책브리핑 보도자료 전체 RSS. 부동산 키워드에 걸리는 건만 남긴다
type PressReleaseFetcher struct {
	FeedURL string
	// SummaryLimit 요약 최대 길이(룬 기준). 0이면 400
	SummaryLimit int
	Client       *http.Client
}

func (f *PressReleaseFetcher) Name() string {
	return "press_release_rss"
}

func (f *PressReleaseFetcher) Fetch() ([]Item, error) {
	log.Println("fetch Korea.kr press release RSS...")

	items, err := fetchChannelItems(f.client(), f.feedURL())
	if err != nil {
		return nil, err
	}

	results := make([]Item, 0, len(items))
	for _, it := range items {
		title := strings.TrimSpace(it.Title)
		link := strings.TrimSpace(it.Link)
		date := toDateOnly(firstNonEmpty(it.PubDate, it.DCDate))
		if title == "" || link == "" || date == "" {
			continue
		}

		// 제목+본문을 합친 평문에서 키워드 매칭. 요약도 같은 평문에서 자른다
		text := stripTags(title + " " + it.Description)
		if !containsAny(text, pressKeywords) {
			continue
		}

		results = append(results, Item{
			Kind:         KindNews,
			Title:        title,
			Date:         date,
			Source:       "정책브리핑(보도자료)",
			Summary:      truncateRunes(strings.TrimSpace(text), f.summaryLimit()),
			SourceURL:    link,
			CanonicalURL: link,
			Links:        []Link{{Label: "정책브리핑 원문", URL: link}},
		})
	}

	if len(results) == 0 {
		log.Println("press release rss: no items matched")
	}
	return results, nil
}

func (f *PressReleaseFetcher) feedURL() string {
	if f.FeedURL != "" {
		return f.FeedURL
	}
	return defaultPressFeedURL
}

func (f *PressReleaseFetcher) summaryLimit() int {
	if f.SummaryLimit > 0 {
		return f.SummaryLimit
	}
	return defaultPressSummaryLimit
}

func (f *PressReleaseFetcher) client() *http.Client {
	if f.Client != nil {
		return f.Client
	}
	return &http.Client{Timeout: rssClientTimeout}
}
