package services

import (
	"context"
	"testing"

	"agrismart/internal/models"
	"agrismart/pkg/sms"
)

func TestSendBulkIsolatesFailures(t *testing.T) {
	provider := &recordingProvider{}
	service := newTestService(provider)

	recipients := []models.Recipient{
		{PhoneNumber: "0701234567", Message: "un"},
		{PhoneNumber: "", Message: "deux"}, // invalid, must not abort the pass
		{PhoneNumber: "0504987654", Message: "trois"},
	}

	report := service.SendBulk(context.Background(), recipients, BulkOptions{})

	if report.Total != 3 {
		t.Fatalf("expected total 3, got %d", report.Total)
	}
	if report.Success != 2 || report.Failed != 1 {
		t.Fatalf("expected 2 success / 1 failed, got %d/%d", report.Success, report.Failed)
	}
	if report.Success+report.Failed != report.Total {
		t.Fatalf("accounting mismatch: %+v", report)
	}
	if len(report.Errors) != 1 {
		t.Fatalf("expected one error entry, got %d", len(report.Errors))
	}
	if report.Errors[0].Error != "Invalid phone number" {
		t.Fatalf("unexpected error: %q", report.Errors[0].Error)
	}
	if len(provider.sent()) != 2 {
		t.Fatalf("expected 2 provider calls, got %d", len(provider.sent()))
	}
}

func TestSendBulkSoftFailuresCounted(t *testing.T) {
	provider := &recordingProvider{
		fail: func(req *sms.Request) *sms.Response {
			if req.Message == "rejeté" {
				return &sms.Response{Success: false, Error: "InvalidSenderId"}
			}
			return nil
		},
	}
	service := newTestService(provider)

	recipients := []models.Recipient{
		{PhoneNumber: "0701234567", Message: "ok"},
		{PhoneNumber: "0504987654", Message: "rejeté"},
	}

	report := service.SendBulk(context.Background(), recipients, BulkOptions{})
	if report.Success != 1 || report.Failed != 1 {
		t.Fatalf("expected 1/1, got %d/%d", report.Success, report.Failed)
	}
	if report.Errors[0].PhoneNumber != "0504987654" {
		t.Fatalf("error must carry the raw input number, got %q", report.Errors[0].PhoneNumber)
	}
}

func TestSendBulkPriorityOrdering(t *testing.T) {
	provider := &recordingProvider{}
	service := newTestService(provider)

	recipients := []models.Recipient{
		{PhoneNumber: "0700000001", Message: "normal-a", Priority: models.PriorityNormal},
		{PhoneNumber: "0700000002", Message: "critical", Priority: models.PriorityCritical},
		{PhoneNumber: "0700000003", Message: "normal-b", Priority: models.PriorityNormal},
		{PhoneNumber: "0700000004", Message: "high", Priority: models.PriorityHigh},
		{PhoneNumber: "0700000005", Message: "low", Priority: models.PriorityLow},
	}

	service.SendBulk(context.Background(), recipients, BulkOptions{Prioritize: true})

	sent := provider.sent()
	got := make([]string, len(sent))
	for i, req := range sent {
		got[i] = req.Message
	}

	want := []string{"critical", "high", "normal-a", "normal-b", "low"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("delivery order %v, want %v", got, want)
		}
	}
}

func TestSendBulkWithoutPrioritizeKeepsOrder(t *testing.T) {
	provider := &recordingProvider{}
	service := newTestService(provider)

	recipients := []models.Recipient{
		{PhoneNumber: "0700000001", Message: "premier", Priority: models.PriorityLow},
		{PhoneNumber: "0700000002", Message: "second", Priority: models.PriorityCritical},
	}

	service.SendBulk(context.Background(), recipients, BulkOptions{})

	sent := provider.sent()
	if sent[0].Message != "premier" || sent[1].Message != "second" {
		t.Fatalf("submission order not preserved: %v", sent)
	}
}

func TestSendBulkZeroPriorityTreatedAsNormal(t *testing.T) {
	provider := &recordingProvider{}
	service := newTestService(provider)

	recipients := []models.Recipient{
		{PhoneNumber: "0700000001", Message: "low", Priority: models.PriorityLow},
		{PhoneNumber: "0700000002", Message: "unset"}, // zero value
		{PhoneNumber: "0700000003", Message: "high", Priority: models.PriorityHigh},
	}

	service.SendBulk(context.Background(), recipients, BulkOptions{Prioritize: true})

	sent := provider.sent()
	got := []string{sent[0].Message, sent[1].Message, sent[2].Message}
	want := []string{"high", "unset", "low"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("delivery order %v, want %v", got, want)
		}
	}
}

func TestSendBulkTemplateRecipients(t *testing.T) {
	provider := &recordingProvider{}
	service := newTestService(provider)

	recipients := []models.Recipient{
		{
			PhoneNumber: "0701234567",
			TemplateKey: "otp",
			Variables:   map[string]string{"code": "654321"},
			Language:    "fr",
		},
		{PhoneNumber: "0504987654", TemplateKey: "unknown_key"},
	}

	report := service.SendBulk(context.Background(), recipients, BulkOptions{})
	if report.Success != 1 || report.Failed != 1 {
		t.Fatalf("expected 1/1, got %d/%d", report.Success, report.Failed)
	}
	if report.Errors[0].Error != "Template not found" {
		t.Fatalf("unexpected error: %q", report.Errors[0].Error)
	}
}

func TestSendBulkEmptyList(t *testing.T) {
	service := newTestService(&recordingProvider{})
	report := service.SendBulk(context.Background(), nil, BulkOptions{Prioritize: true})
	if report.Total != 0 || report.Success != 0 || report.Failed != 0 {
		t.Fatalf("expected empty report, got %+v", report)
	}
}
