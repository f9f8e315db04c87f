package utils

import "unicode/utf8"

// TruncateMessage caps a message to maxLen characters, the budget of a
// single non-concatenated SMS segment. Longer messages are cut and
// suffixed with "..." so the result is exactly maxLen characters.
// Counting is rune-based: Dioula and Baoulé text uses multi-byte
// characters that must never be split mid-encoding.
func TruncateMessage(message string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultMaxMessageLength
	}
	if utf8.RuneCountInString(message) <= maxLen {
		return message
	}
	runes := []rune(message)
	return string(runes[:maxLen-3]) + "..."
}
