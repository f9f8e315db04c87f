package sms

import "context"

// Request carries one outbound SMS. To must already be in international
// format; the gateway does not normalize numbers.
type Request struct {
	To      string `json:"to"`
	From    string `json:"from"`
	Message string `json:"message"`
	Type    string `json:"type"` // transactional, promotional, otp
}

// Response is a provider-level send outcome. Success=false with a nil
// error is a soft failure reported by the provider (rejected recipient,
// insufficient balance) and must not trigger failover; a non-nil error
// from Send is a transport failure and advances the failover chain.
type Response struct {
	Success   bool   `json:"success"`
	MessageID string `json:"message_id,omitempty"`
	Provider  string `json:"provider,omitempty"`
	Status    string `json:"status,omitempty"`
	Cost      string `json:"cost,omitempty"`
	Error     string `json:"error,omitempty"`
	Simulated bool   `json:"simulated,omitempty"`
}

// Provider is a concrete SMS transport.
type Provider interface {
	Name() string
	Send(ctx context.Context, request *Request) (*Response, error)
	Balance(ctx context.Context) (string, error)
}
