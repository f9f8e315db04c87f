package utils

import (
	"errors"
	"strings"
	"testing"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"international with country code", "2250701234567", "+2250701234567"},
		{"international with plus", "+2250701234567", "+2250701234567"},
		{"international with 00 prefix", "002250701234567", "+2250701234567"},
		{"local 10-digit with leading zero", "0701234567", "+225701234567"},
		{"local 10-digit with separators", "07 01 23 45 67", "+225701234567"},
		{"10-digit without leading zero", "1701234567", "+2251701234567"},
		{"legacy 8-digit", "01234567", "+22501234567"},
		{"unrecognized shape keeps digits", "12345", "+12345"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePhone(tt.input)
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("NormalizePhone(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizePhoneLeadingZeroAsymmetry(t *testing.T) {
	// Two 10-digit inputs differing only in the first digit normalize to
	// different lengths: the leading zero is dropped, other digits are kept.
	withZero, err := NormalizePhone("0701234567")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	withoutZero, err := NormalizePhone("7012345678")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if withZero != "+225701234567" {
		t.Fatalf("leading-zero form = %q, want +225701234567", withZero)
	}
	if withoutZero != "+2257012345678" {
		t.Fatalf("no-leading-zero form = %q, want +2257012345678", withoutZero)
	}
}

func TestNormalizePhoneInvalid(t *testing.T) {
	if _, err := NormalizePhone(""); !errors.Is(err, ErrInvalidPhone) {
		t.Fatalf("expected ErrInvalidPhone for empty input, got %v", err)
	}
	if _, err := NormalizePhone("---"); !errors.Is(err, ErrInvalidPhone) {
		t.Fatalf("expected ErrInvalidPhone for digitless input, got %v", err)
	}
}

func TestMaskPhone(t *testing.T) {
	masked := MaskPhone("+2250701234567")
	if !strings.HasSuffix(masked, "4567") {
		t.Fatalf("expected last 4 digits visible, got %q", masked)
	}
	if strings.Contains(masked[:len(masked)-4], "0") {
		t.Fatalf("expected leading digits masked, got %q", masked)
	}
	if MaskPhone("07") != "07" {
		t.Fatalf("short numbers should pass through unchanged")
	}
}
