package collector

import (
	"log"
	"net/http"
	"strings"
)

const defaultMolitFeedURL = "https://www.korea.kr/rss/dept_molit.xml"

// MolitRSSFetcher 국토교통부 정책브리핑 RSS. 부처 전용 피드라 주제 필터 없이 전부 수집
type MolitRSSFetcher struct {
	FeedURL string
	Client  *http.Client
}

func (f *MolitRSSFetcher) Name() string {
	return "molit_rss"
}

func (f *MolitRSSFetcher) Fetch() ([]Item, error) {
	log.Println("fetch MOLIT press briefing RSS...")

	items, err := fetchChannelItems(f.client(), f.feedURL())
	if err != nil {
		return nil, err
	}

	results := make([]Item, 0, len(items))
	for _, it := range items {
		title := strings.TrimSpace(it.Title)
		link := strings.TrimSpace(it.Link)
		date := toDateOnly(firstNonEmpty(it.PubDate, it.DCDate))
		// 제목/링크/날짜가 하나라도 없으면 피드 노이즈로 보고 조용히 버린다
		if title == "" || link == "" || date == "" {
			continue
		}

		results = append(results, Item{
			Kind:         KindNews,
			Title:        title,
			Date:         date,
			Source:       "국토교통부(정책브리핑)",
			Summary:      stripTags(it.Description),
			SourceURL:    link,
			CanonicalURL: link,
			Links:        []Link{{Label: "정책브리핑 원문", URL: link}},
		})
	}

	if len(results) == 0 {
		log.Println("molit rss: no items fetched")
	}
	return results, nil
}

func (f *MolitRSSFetcher) feedURL() string {
	if f.FeedURL != "" {
		return f.FeedURL
	}
	return defaultMolitFeedURL
}

func (f *MolitRSSFetcher) client() *http.Client {
	if f.Client != nil {
		return f.Client
	}
	return &http.Client{Timeout: rssClientTimeout}
}
