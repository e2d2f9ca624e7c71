package collector

import "testing"

func TestContainsAny(t *testing.T) {
	keywords := []string{"주택", "전세"}

	if !containsAny("전세 제도 개편", keywords) {
		t.Fatalf("expected match for 전세 제도 개편")
	}
	if containsAny("외교 정책", keywords) {
		t.Fatalf("expected no match for 외교 정책")
	}
	if containsAny("", keywords) {
		t.Fatalf("expected no match for empty text")
	}
	if containsAny("주택", nil) {
		t.Fatalf("expected no match with empty keyword set")
	}
}
