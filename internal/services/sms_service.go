package services

import (
	"context"
	"errors"

	"agrismart/internal/config"
	"agrismart/internal/models"
	"agrismart/internal/templates"
	"agrismart/internal/utils"
	"agrismart/pkg/logger"
	"agrismart/pkg/ratelimit"
	"agrismart/pkg/sms"
)

// Error strings surfaced to callers. Dispatch never returns a Go error
// from its public entry points; failures come back inside the result.
const (
	errInvalidPhone     = "Invalid phone number"
	errTemplateNotFound = "Template not found"
)

// SMSService dispatches single messages: it normalizes the number,
// truncates the text to the segment budget, waits on the shared rate
// gate and hands the message to the provider gateway.
type SMSService struct {
	gateway  *sms.Gateway
	throttle *ratelimit.Throttle
	catalog  *templates.Catalog
	config   *config.SMSConfig
	log      *logger.Logger
}

func NewSMSService(cfg *config.SMSConfig, log *logger.Logger) *SMSService {
	gateway := sms.NewGateway(sms.Config{
		Provider:               cfg.Provider,
		AfricasTalkingAPIKey:   cfg.AfricasTalking.APIKey,
		AfricasTalkingUsername: cfg.AfricasTalking.Username,
		AfricasTalkingBaseURL:  cfg.AfricasTalking.BaseURL,
		TwilioAccountSID:       cfg.Twilio.AccountSID,
		TwilioAuthToken:        cfg.Twilio.AuthToken,
		TwilioFromNumber:       cfg.Twilio.FromNumber,
		AWSRegion:              cfg.AWS.Region,
		SenderID:               cfg.SenderID,
	}, log)

	return NewSMSServiceWithGateway(cfg, log, gateway)
}

// NewSMSServiceWithGateway wires an externally built gateway, so hosts
// and tests can supply their own transports.
func NewSMSServiceWithGateway(cfg *config.SMSConfig, log *logger.Logger, gateway *sms.Gateway) *SMSService {
	if log == nil {
		log = logger.NewDefault()
	}
	return &SMSService{
		gateway:  gateway,
		throttle: ratelimit.New(cfg.RatePerSecond),
		catalog:  templates.NewCatalog(),
		config:   cfg,
		log:      log,
	}
}

// SendSMS delivers one message to one raw phone number.
func (s *SMSService) SendSMS(ctx context.Context, rawNumber, message string) *models.SendResult {
	number, err := utils.NormalizePhone(rawNumber)
	if err != nil {
		s.log.Warnf("[SMS] invalid phone number: %q", rawNumber)
		return &models.SendResult{Success: false, Error: errInvalidPhone}
	}

	text := utils.TruncateMessage(message, s.config.MaxMessageLength)

	if err := s.throttle.Wait(ctx); err != nil {
		return &models.SendResult{Success: false, Error: err.Error()}
	}

	resp := s.gateway.Send(ctx, number, text, "transactional")
	s.log.LogSMSEvent(utils.MaskPhone(number), resp.Provider, resp.Success)

	return &models.SendResult{
		Success:   resp.Success,
		MessageID: resp.MessageID,
		Provider:  resp.Provider,
		Cost:      resp.Cost,
		Error:     resp.Error,
		Simulated: resp.Simulated,
	}
}

// SendFromTemplate renders a catalog template in the requested language
// (falling back to the configured default) and sends the result.
func (s *SMSService) SendFromTemplate(ctx context.Context, rawNumber, templateKey string, variables map[string]string, language string) *models.SendResult {
	if language == "" {
		language = s.config.DefaultLanguage
	}

	message, err := s.catalog.Render(templateKey, language, variables)
	if err != nil {
		if errors.Is(err, templates.ErrTemplateNotFound) {
			s.log.Warnf("[SMS] template not found: %s", templateKey)
			return &models.SendResult{Success: false, Error: errTemplateNotFound}
		}
		return &models.SendResult{Success: false, Error: err.Error()}
	}

	return s.SendSMS(ctx, rawNumber, message)
}

// Templates lists the available template keys.
func (s *SMSService) Templates() []string {
	return s.catalog.Keys()
}

// SupportedLanguages lists the language codes the catalog can render.
func (s *SMSService) SupportedLanguages() []string {
	return s.catalog.Languages()
}

// Balance queries the active provider for remaining credit.
func (s *SMSService) Balance(ctx context.Context) *models.BalanceInfo {
	balance, provider, err := s.gateway.Balance(ctx)
	if err != nil {
		s.log.WithError(err).Error("[SMS] balance fetch failed")
		return &models.BalanceInfo{Balance: "Error", Provider: provider, Error: err.Error()}
	}
	return &models.BalanceInfo{Balance: balance, Provider: provider}
}
