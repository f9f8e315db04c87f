package sms

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"agrismart/pkg/logger"
)

// SimulatedProvider logs would-be deliveries instead of sending them. It
// is the backend of last resort when no transport credentials are present,
// and always succeeds with a synthetic message id.
type SimulatedProvider struct {
	log *logger.Logger
}

func NewSimulatedProvider(log *logger.Logger) *SimulatedProvider {
	return &SimulatedProvider{log: log}
}

func (s *SimulatedProvider) Name() string {
	return "simulated"
}

func (s *SimulatedProvider) Send(ctx context.Context, request *Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if s.log != nil {
		s.log.WithFields(map[string]interface{}{
			"to":      request.To,
			"message": request.Message,
		}).Info("[SMS-SIM] message")
	}

	return &Response{
		Success:   true,
		MessageID: fmt.Sprintf("sim_%s", uuid.NewString()),
		Status:    "simulated",
		Simulated: true,
	}, nil
}

func (s *SimulatedProvider) Balance(ctx context.Context) (string, error) {
	return "N/A", nil
}
