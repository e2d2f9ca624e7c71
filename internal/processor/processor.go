package processor

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/bokbuin/policyhub/internal/collector"
)

// Record 저장 직전의 정규화된 정책 레코드
type Record struct {
	Kind            string
	Title           string
	Date            string
	Source          string
	Summary         string
	SourceURL       string
	CanonicalURL    string
	Links           []collector.Link
	FullDescription []string
	ContentHash     string
}

// Normalizer 후보를 공통 형태로 맞추고 중복 제거용 지문을 계산
type Normalizer struct{}

func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize 필수 필드(제목/날짜/URL)가 빠진 후보는 버리고, 같은 지문은 한 건으로 합친다
func (n *Normalizer) Normalize(items []collector.Item) []Record {
	out := make([]Record, 0, len(items))
	seen := make(map[string]struct{})

	for _, it := range items {
		title := strings.TrimSpace(it.Title)
		if title == "" || it.Date == "" {
			continue
		}

		canonical := it.CanonicalURL
		if canonical == "" {
			canonical = it.SourceURL
		}
		if canonical == "" {
			continue
		}

		hash := ContentHash(it.Kind, it.Source, it.Date, title, canonical)
		if _, dup := seen[hash]; dup {
			continue
		}
		seen[hash] = struct{}{}

		links := it.Links
		if links == nil {
			links = []collector.Link{}
		}
		fullDesc := it.FullDescription
		if fullDesc == nil {
			fullDesc = []string{}
		}

		out = append(out, Record{
			Kind:            it.Kind,
			Title:           title,
			Date:            it.Date,
			Source:          it.Source,
			Summary:         strings.TrimSpace(it.Summary),
			SourceURL:       it.SourceURL,
			CanonicalURL:    canonical,
			Links:           links,
			FullDescription: fullDesc,
			ContentHash:     hash,
		})
	}

	return out
}

// ContentHash 멱등 upsert 의 키가 되는 결정적 지문.
// 요약이나 링크만 다른 레코드는 같은 항목으로 취급된다
func ContentHash(kind, source, date, title, canonicalURL string) string {
	h := sha256.Sum256([]byte(kind + "|" + source + "|" + date + "|" + title + "|" + canonicalURL))
	return hex.EncodeToString(h[:])
}
