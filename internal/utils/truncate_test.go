package utils

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncateMessageIdentity(t *testing.T) {
	short := "Short message"
	if got := TruncateMessage(short, 160); got != short {
		t.Fatalf("short message modified: %q", got)
	}

	exact := strings.Repeat("A", 160)
	if got := TruncateMessage(exact, 160); got != exact {
		t.Fatalf("exact-length message modified")
	}
}

func TestTruncateMessageLong(t *testing.T) {
	long := strings.Repeat("A", 200)
	got := TruncateMessage(long, 160)

	if len(got) != 160 {
		t.Fatalf("expected length 160, got %d", len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("expected ellipsis suffix, got %q", got[len(got)-5:])
	}
}

func TestTruncateMessageMultibyte(t *testing.T) {
	// Dioula text with multi-byte runes must stay valid UTF-8 after the cut.
	long := strings.Repeat("ɔɛŋ", 100)
	got := TruncateMessage(long, 160)

	if !utf8.ValidString(got) {
		t.Fatalf("truncation produced invalid UTF-8")
	}
	if utf8.RuneCountInString(got) != 160 {
		t.Fatalf("expected 160 runes, got %d", utf8.RuneCountInString(got))
	}
}

func TestTruncateMessageDefaultBudget(t *testing.T) {
	long := strings.Repeat("B", 300)
	got := TruncateMessage(long, 0)
	if len(got) != DefaultMaxMessageLength {
		t.Fatalf("expected default budget %d, got %d", DefaultMaxMessageLength, len(got))
	}
}
