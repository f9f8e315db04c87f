package services

import (
	"context"
	"fmt"
	"sort"

	"agrismart/internal/models"
)

// BulkOptions controls a bulk pass.
type BulkOptions struct {
	Prioritize bool `json:"prioritize"`
}

// SendBulk drives the dispatcher over a list of recipients. With
// Prioritize set, recipients are stable-sorted by ascending priority so
// entries sharing a priority keep their submission order. A failure on
// one recipient never aborts the rest; each is accounted in the report.
// No retries happen within a pass.
func (s *SMSService) SendBulk(ctx context.Context, recipients []models.Recipient, opts BulkOptions) *models.BulkReport {
	report := &models.BulkReport{Total: len(recipients)}

	if opts.Prioritize {
		sorted := make([]models.Recipient, len(recipients))
		copy(sorted, recipients)
		sort.SliceStable(sorted, func(i, j int) bool {
			return effectivePriority(sorted[i]) < effectivePriority(sorted[j])
		})
		recipients = sorted
	}

	for _, recipient := range recipients {
		result := s.dispatchRecipient(ctx, recipient)
		if result.Success {
			report.Success++
		} else {
			report.Failed++
			report.Errors = append(report.Errors, models.BulkError{
				PhoneNumber: recipient.PhoneNumber,
				Error:       result.Error,
			})
		}
	}

	s.log.LogBulkSummary(report.Total, report.Success, report.Failed)
	return report
}

// dispatchRecipient resolves a recipient to a template or raw send and
// fences off panics so one bad entry cannot take down the batch.
func (s *SMSService) dispatchRecipient(ctx context.Context, recipient models.Recipient) (result *models.SendResult) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Errorf("[SMS] recovered during dispatch: %v", r)
			result = &models.SendResult{Success: false, Error: fmt.Sprintf("dispatch panic: %v", r)}
		}
	}()

	if recipient.TemplateKey != "" {
		return s.SendFromTemplate(ctx, recipient.PhoneNumber, recipient.TemplateKey, recipient.Variables, recipient.Language)
	}
	return s.SendSMS(ctx, recipient.PhoneNumber, recipient.Message)
}

// effectivePriority treats the zero value as NORMAL so callers that never
// set a priority sort between HIGH and LOW.
func effectivePriority(r models.Recipient) models.Priority {
	if r.Priority == 0 {
		return models.PriorityNormal
	}
	return r.Priority
}
