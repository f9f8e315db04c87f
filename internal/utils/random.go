package utils

import (
	"crypto/rand"
	"math/big"
)

const numberBytes = "0123456789"

// GenerateOTP returns a random numeric one-time code of OTPLength digits.
func GenerateOTP() string {
	return generateRandom(OTPLength, numberBytes)
}

// ValidateOTP checks that a submitted code has the expected shape.
func ValidateOTP(otp string) bool {
	if len(otp) != OTPLength {
		return false
	}
	for _, char := range otp {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

func generateRandom(length int, charset string) string {
	result := make([]byte, length)
	charsetLength := big.NewInt(int64(len(charset)))

	for i := range result {
		num, _ := rand.Int(rand.Reader, charsetLength)
		result[i] = charset[num.Int64()]
	}

	return string(result)
}
