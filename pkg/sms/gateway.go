package sms

import (
	"context"
	"errors"
	"sync"

	"agrismart/pkg/logger"
)

// Config selects and credentials the transports of the failover chain.
type Config struct {
	Provider string // preferred provider name, tried first

	AfricasTalkingAPIKey   string
	AfricasTalkingUsername string
	AfricasTalkingBaseURL  string

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string

	AWSRegion string

	SenderID string
}

// Gateway owns the ordered provider failover chain. Initialization is
// lazy and idempotent: the first send builds the chain from the supplied
// credentials; with no credentials at all the gateway downgrades to the
// simulated backend for the life of the process.
type Gateway struct {
	cfg Config
	log *logger.Logger

	initOnce  sync.Once
	providers []Provider
	simulated bool
}

func NewGateway(cfg Config, log *logger.Logger) *Gateway {
	if log == nil {
		log = logger.NewDefault()
	}
	return &Gateway{cfg: cfg, log: log}
}

// NewGatewayWithProviders builds a pre-initialized gateway over an
// explicit chain, bypassing credential discovery. Used by tests and by
// hosts that wire their own transports.
func NewGatewayWithProviders(log *logger.Logger, providers ...Provider) *Gateway {
	if log == nil {
		log = logger.NewDefault()
	}
	g := &Gateway{log: log, providers: providers}
	g.initOnce.Do(func() {})
	return g
}

func (g *Gateway) init() {
	g.initOnce.Do(func() {
		g.providers = g.buildChain()

		if len(g.providers) == 0 {
			g.log.Warn("[SMS] no provider credentials configured - running in simulated mode")
			g.providers = []Provider{NewSimulatedProvider(g.log)}
			g.simulated = true
			return
		}

		names := make([]string, len(g.providers))
		for i, p := range g.providers {
			names[i] = p.Name()
		}
		g.log.WithField("chain", names).Info("[SMS] gateway initialized")
	})
}

// buildChain assembles every credentialed transport, preferred provider
// first, the rest in declaration order as failover targets.
func (g *Gateway) buildChain() []Provider {
	var chain []Provider

	add := func(p Provider) {
		chain = append(chain, p)
	}

	if g.cfg.AfricasTalkingAPIKey != "" {
		add(NewAfricasTalkingProvider(
			g.cfg.AfricasTalkingAPIKey,
			g.cfg.AfricasTalkingUsername,
			g.cfg.AfricasTalkingBaseURL,
		))
	}
	if g.cfg.TwilioAccountSID != "" && g.cfg.TwilioAuthToken != "" {
		add(NewTwilioProvider(g.cfg.TwilioAccountSID, g.cfg.TwilioAuthToken, g.cfg.TwilioFromNumber))
	}
	if g.cfg.AWSRegion != "" {
		if p, err := NewAWSSNSProvider(g.cfg.AWSRegion); err == nil {
			add(p)
		} else {
			g.log.WithError(err).Warn("[SMS] AWS SNS provider unavailable")
		}
	}

	// Move the preferred provider to the front of the chain.
	for i, p := range chain {
		if p.Name() == g.cfg.Provider && i > 0 {
			reordered := append([]Provider{p}, append(chain[:i:i], chain[i+1:]...)...)
			return reordered
		}
	}
	return chain
}

// Simulated reports whether the gateway initialized without credentials.
func (g *Gateway) Simulated() bool {
	g.init()
	return g.simulated
}

// ActiveProvider returns the name of the primary transport.
func (g *Gateway) ActiveProvider() string {
	g.init()
	if len(g.providers) == 0 {
		return ""
	}
	return g.providers[0].Name()
}

// Send pushes one message through the failover chain. A transport-level
// error on one provider advances to the next; a provider-reported soft
// failure (rejected recipient, no credit) is returned as-is without
// failover. Send never returns an error: exhaustion of the chain comes
// back as a failed Response carrying the last transport error.
func (g *Gateway) Send(ctx context.Context, to, message, messageType string) *Response {
	g.init()

	if len(g.providers) == 0 {
		return &Response{Success: false, Status: "failed", Error: "no provider configured"}
	}

	var lastErr error
	for i, provider := range g.providers {
		resp, err := provider.Send(ctx, &Request{
			To:      to,
			From:    g.cfg.SenderID,
			Message: message,
			Type:    messageType,
		})
		if err != nil {
			lastErr = err
			g.log.WithProvider(provider.Name()).WithError(err).Warn("[SMS] transport error")
			if i < len(g.providers)-1 {
				g.log.Infof("[SMS] failing over to %s", g.providers[i+1].Name())
			}
			continue
		}

		resp.Provider = provider.Name()
		return resp
	}

	return &Response{
		Success: false,
		Status:  "failed",
		Error:   lastErr.Error(),
	}
}

// Balance queries the primary transport for remaining credit.
func (g *Gateway) Balance(ctx context.Context) (string, string, error) {
	g.init()
	if len(g.providers) == 0 {
		return "", "", errors.New("no provider configured")
	}
	provider := g.providers[0]
	balance, err := provider.Balance(ctx)
	return balance, provider.Name(), err
}
