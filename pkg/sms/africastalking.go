package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultAfricasTalkingBaseURL = "https://api.africastalking.com"

// AfricasTalkingProvider sends SMS through the Africa's Talking messaging
// API, the primary aggregator for Côte d'Ivoire traffic.
type AfricasTalkingProvider struct {
	apiKey     string
	username   string
	httpClient *http.Client
	baseURL    string
}

func NewAfricasTalkingProvider(apiKey, username, baseURL string) *AfricasTalkingProvider {
	if baseURL == "" {
		baseURL = defaultAfricasTalkingBaseURL
	}
	return &AfricasTalkingProvider{
		apiKey:     apiKey,
		username:   username,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
	}
}

func (a *AfricasTalkingProvider) Name() string {
	return "africas_talking"
}

func (a *AfricasTalkingProvider) Send(ctx context.Context, request *Request) (*Response, error) {
	form := url.Values{}
	form.Set("username", a.username)
	form.Set("to", request.To)
	form.Set("message", request.Message)
	if request.From != "" {
		form.Set("from", request.From)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", a.baseURL+"/version1/messaging",
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("apiKey", a.apiKey)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, fmt.Errorf("Africa's Talking API error: %s", string(body))
	}

	var atResp struct {
		SMSMessageData struct {
			Message    string `json:"Message"`
			Recipients []struct {
				Number    string `json:"number"`
				Status    string `json:"status"`
				MessageID string `json:"messageId"`
				Cost      string `json:"cost"`
			} `json:"Recipients"`
		} `json:"SMSMessageData"`
	}

	if err := json.Unmarshal(body, &atResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	recipients := atResp.SMSMessageData.Recipients
	if len(recipients) == 0 {
		// Rejected before enqueueing (bad sender id, no credit). Soft
		// failure: the provider answered, the message was not accepted.
		return &Response{
			Success: false,
			Status:  "rejected",
			Error:   atResp.SMSMessageData.Message,
		}, nil
	}

	recipient := recipients[0]
	return &Response{
		Success:   recipient.Status == "Success",
		MessageID: recipient.MessageID,
		Status:    recipient.Status,
		Cost:      recipient.Cost,
	}, nil
}

// Balance fetches the remaining application credit.
func (a *AfricasTalkingProvider) Balance(ctx context.Context) (string, error) {
	apiURL := fmt.Sprintf("%s/version1/user?username=%s", a.baseURL, url.QueryEscape(a.username))

	req, err := http.NewRequestWithContext(ctx, "GET", apiURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("apiKey", a.apiKey)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Africa's Talking API error: %s", string(body))
	}

	var userResp struct {
		UserData struct {
			Balance string `json:"balance"`
		} `json:"UserData"`
	}

	if err := json.Unmarshal(body, &userResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return userResp.UserData.Balance, nil
}
