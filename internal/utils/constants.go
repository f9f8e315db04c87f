package utils

import "time"

// Application Constants
const (
	AppName    = "AgriSmart"
	AppVersion = "1.0.0"

	// Default values
	DefaultLanguage    = "fr"
	DefaultCountryCode = "+225"
	DefaultTimeZone    = "Africa/Abidjan"

	// SMS Constants
	DefaultMaxMessageLength = 160
	DefaultRatePerSecond    = 10

	// Authentication
	OTPLength = 6
	OTPExpiry = 10 * time.Minute
)

// HTTP Status Messages
const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusFailed  = "failed"
)

// Error Messages
const (
	ErrInvalidInput     = "invalid input"
	ErrInternalServer   = "internal server error"
	ErrUnauthorized     = "unauthorized"
	ErrForbidden        = "forbidden"
	ErrNotFound         = "not found"
	ErrValidationFailed = "validation failed"
)
