package collector

// 정책 항목 분류. 저장되는 값과 지문 입력이 모두 이 문자열 그대로다
const (
	KindNews              = "뉴스"
	KindDeliberation      = "회의/논의"
	KindLegislativeNotice = "입법예고"
	KindEnactedPolicy     = "공포정책"
)

// Link "원문 보기" 같은 참고 링크 한 개
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Item 수집기별로 제각각인 원본 필드를 맞춘 공통 후보 구조
type Item struct {
	Kind            string
	Title           string
	Date            string // YYYY-MM-DD, 비어 있으면 수집 단계에서 버려진다
	Source          string
	Summary         string
	SourceURL       string
	CanonicalURL    string
	Links           []Link
	FullDescription []string
}

// Fetcher 데이터 소스 하나를 추상화
type Fetcher interface {
	Name() string
	Fetch() ([]Item, error)
}
