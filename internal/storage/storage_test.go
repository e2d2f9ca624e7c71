package storage

import "testing"

func TestToValidUTF8ReplacesBadBytes(t *testing.T) {
	in := "주택" + string([]byte{0xff, 0xfe}) + "공급"
	out := toValidUTF8(in)
	if out == in {
		t.Fatalf("invalid bytes should be replaced")
	}
	if toValidUTF8("정상 문자열") != "정상 문자열" {
		t.Fatalf("valid input must pass through unchanged")
	}
}

func TestTruncateRunesDB(t *testing.T) {
	s := "가나다라마바사"
	if got := truncateRunesDB(s, 3); got != "가나다" {
		t.Fatalf("truncateRunesDB = %q, want 가나다", got)
	}
	if got := truncateRunesDB(s, 100); got != s {
		t.Fatalf("short input should not be truncated: %q", got)
	}
	if got := truncateRunesDB("  공백  ", 10); got != "공백" {
		t.Fatalf("expected trimmed output, got %q", got)
	}
	if got := truncateRunesDB(s, 0); got != "" {
		t.Fatalf("limit 0 should return empty, got %q", got)
	}
}
