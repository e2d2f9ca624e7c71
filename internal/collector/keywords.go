package collector

import "strings"

// 보도자료 전체 RSS 에서 부동산 관련 건만 남기기 위한 키워드
var pressKeywords = []string{
	"부동산",
	"주택",
	"아파트",
	"전세",
	"월세",
	"임대",
	"임대차",
	"분양",
	"재개발",
	"재건축",
	"청약",
	"토지",
	"공시가격",
	"대출",
	"DSR",
	"LTV",
}

// 입법예고 목록에서 부동산 관련 건만 남기기 위한 키워드
var noticeKeywords = []string{
	"부동산", "주택", "토지", "임대차", "전세", "월세", "분양", "재개발", "재건축", "청약",
}

// containsAny 단순 부분 문자열 매칭. 형태소 분석 없는 재현율 위주의 1차 필터
func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
