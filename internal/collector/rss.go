package collector

import (
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

const (
	userAgent        = "bokbuin/1.0"
	rssClientTimeout = 10 * time.Second
	maxResponseBytes = 1 << 20 // 1MB
)

// 날짜 표기는 KST 기준으로 통일
var locSeoul *time.Location

func init() {
	locSeoul, _ = time.LoadLocation("Asia/Seoul")
	if locSeoul == nil {
		locSeoul = time.FixedZone("KST", 9*3600)
	}
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
	DCDate      string `xml:"date"` // dc:date, 피드에 따라 pubDate 대신 제공
}

type rssFeed struct {
	Items []rssItem `xml:"channel>item"`
}

// fetchChannelItems RSS(XML)을 읽어 channel 의 item 목록을 반환.
// 항목이 하나뿐인 피드도 슬라이스 디코딩으로 자연스럽게 1개짜리 목록이 된다
func fetchChannelItems(client *http.Client, url string) ([]rssItem, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("rss: new request %s: %w", url, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rss: fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rss: fetch %s: unexpected status %d", url, resp.StatusCode)
	}

	var feed rssFeed
	if err := xml.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&feed); err != nil {
		return nil, fmt.Errorf("rss: decode %s: %w", url, err)
	}
	return feed.Items, nil
}

// 피드 생산자마다 날짜 포맷이 달라서 될 때까지 순서대로 시도한다
var dateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// toDateOnly 소스 날짜 문자열을 KST 기준 YYYY-MM-DD 로 정규화.
// 달력 시각으로 해석되지 않으면 빈 문자열을 돌려주고 해당 항목은 버려진다
func toDateOnly(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.In(locSeoul).Format("2006-01-02")
		}
	}
	return ""
}

var tagRe = regexp.MustCompile(`<[^>]+>`)

// stripTags description 에 섞여 오는 HTML 태그 제거
func stripTags(s string) string {
	return strings.TrimSpace(tagRe.ReplaceAllString(s, ""))
}

// truncateRunes 룬 수 기준 절단. 바이트 단위로 자르면 한글이 깨진다
func truncateRunes(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	rs := []rune(s)
	if len(rs) <= limit {
		return s
	}
	return string(rs[:limit])
}

func firstNonEmpty(ss ...string) string {
	for _, s := range ss {
		if strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}
