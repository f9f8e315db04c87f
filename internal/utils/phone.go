package utils

import (
	"errors"
	"regexp"
	"strings"
)

// ErrInvalidPhone is returned when a phone number cannot be normalized.
var ErrInvalidPhone = errors.New("invalid phone number")

var nonDigitRegex = regexp.MustCompile(`\D`)

// NormalizePhone canonicalizes a raw Ivorian phone number into E.164-like
// international format (+225...). Accepted inputs: numbers already carrying
// the 225 country code (with or without +, with or without the 00 trunk
// prefix), local 10-digit numbers with a leading 0, 10-digit numbers of the
// new national plan without a leading 0, and legacy 8-digit numbers.
// Anything else is returned best-effort with a + prefix.
func NormalizePhone(raw string) (string, error) {
	if raw == "" {
		return "", ErrInvalidPhone
	}

	cleaned := nonDigitRegex.ReplaceAllString(raw, "")
	if cleaned == "" {
		return "", ErrInvalidPhone
	}

	switch {
	case strings.HasPrefix(cleaned, "225"):
		// Already international.
		return "+" + cleaned, nil
	case strings.HasPrefix(cleaned, "00225"):
		return "+" + cleaned[2:], nil
	case len(cleaned) == 10 && strings.HasPrefix(cleaned, "0"):
		// Local 10-digit number: drop the leading 0.
		return DefaultCountryCode + cleaned[1:], nil
	case len(cleaned) == 10:
		// 10-digit number of the new national plan, no trunk 0.
		return DefaultCountryCode + cleaned, nil
	case len(cleaned) == 8:
		// Legacy 8-digit format.
		return DefaultCountryCode + cleaned, nil
	}

	// Unrecognized shape: best effort, keep the digits behind a +.
	return "+" + cleaned, nil
}

// MaskPhone hides all but the last 4 digits, for logging.
func MaskPhone(phone string) string {
	if len(phone) < 4 {
		return phone
	}
	return strings.Repeat("*", len(phone)-4) + phone[len(phone)-4:]
}
