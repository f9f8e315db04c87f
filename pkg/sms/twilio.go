package sms

import (
	"context"
	"fmt"

	"github.com/twilio/twilio-go"
	api "github.com/twilio/twilio-go/rest/api/v2010"
)

// TwilioProvider is the secondary transport, used when Africa's Talking
// is unreachable or when selected explicitly.
type TwilioProvider struct {
	client     *twilio.RestClient
	fromNumber string
}

func NewTwilioProvider(accountSID, authToken, fromNumber string) *TwilioProvider {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &TwilioProvider{
		client:     client,
		fromNumber: fromNumber,
	}
}

func (t *TwilioProvider) Name() string {
	return "twilio"
}

func (t *TwilioProvider) Send(ctx context.Context, request *Request) (*Response, error) {
	params := &api.CreateMessageParams{}
	params.SetTo(request.To)
	params.SetFrom(t.getFromNumber(request.From))
	params.SetBody(request.Message)

	resp, err := t.client.Api.CreateMessage(params)
	if err != nil {
		return nil, fmt.Errorf("twilio send failed: %w", err)
	}

	status := ""
	if resp.Status != nil {
		status = string(*resp.Status)
	}
	messageID := ""
	if resp.Sid != nil {
		messageID = *resp.Sid
	}

	return &Response{
		Success:   status != "failed",
		MessageID: messageID,
		Status:    status,
	}, nil
}

func (t *TwilioProvider) Balance(ctx context.Context) (string, error) {
	resp, err := t.client.Api.FetchBalance(&api.FetchBalanceParams{})
	if err != nil {
		return "", fmt.Errorf("failed to fetch balance: %w", err)
	}
	if resp.Balance == nil {
		return "N/A", nil
	}
	if resp.Currency != nil {
		return fmt.Sprintf("%s %s", *resp.Balance, *resp.Currency), nil
	}
	return *resp.Balance, nil
}

func (t *TwilioProvider) getFromNumber(from string) string {
	if from != "" {
		return from
	}
	return t.fromNumber
}
