package models

// Priority orders outbound messages; lower values are delivered first.
type Priority int

const (
	PriorityCritical Priority = 1 // severe weather, serious disease outbreaks
	PriorityHigh     Priority = 2 // sensor alerts, urgent irrigation
	PriorityNormal   Priority = 3 // reminders, market prices
	PriorityLow      Priority = 4 // marketing, general information
)

// Recipient is a single bulk-send unit. Exactly one of Message or
// TemplateKey is expected to be set.
type Recipient struct {
	PhoneNumber string            `json:"phone_number"`
	Message     string            `json:"message,omitempty"`
	TemplateKey string            `json:"template_key,omitempty"`
	Variables   map[string]string `json:"variables,omitempty"`
	Language    string            `json:"language,omitempty"`
	Priority    Priority          `json:"priority,omitempty"`
}

// SendResult is the outcome of a single send attempt.
type SendResult struct {
	Success   bool   `json:"success"`
	MessageID string `json:"message_id,omitempty"`
	Provider  string `json:"provider,omitempty"`
	Cost      string `json:"cost,omitempty"`
	Error     string `json:"error,omitempty"`
	Simulated bool   `json:"simulated,omitempty"`
}

// BulkError records a per-recipient failure inside a bulk pass.
type BulkError struct {
	PhoneNumber string `json:"phone_number"`
	Error       string `json:"error"`
}

type BulkReport struct {
	Total   int         `json:"total"`
	Success int         `json:"success"`
	Failed  int         `json:"failed"`
	Errors  []BulkError `json:"errors,omitempty"`
}

// BalanceInfo reports the remaining credit at the active provider.
type BalanceInfo struct {
	Balance  string `json:"balance"`
	Provider string `json:"provider"`
	Error    string `json:"error,omitempty"`
}

// Farmer is the caller-supplied recipient record. Persistence of farmer
// data is the caller's responsibility.
type Farmer struct {
	Name              string `json:"name,omitempty"`
	Phone             string `json:"phone"`
	PreferredLanguage string `json:"preferred_language,omitempty"`
}
