package notify

import (
	"context"

	"go-gin-event-commerce/config"
	"go-gin-event-commerce/pkg/logger"

	"go.uber.org/zap"
)

// Provider sends a rendered email.
type Provider interface {
	Send(ctx context.Context, to []string, subject string, htmlBody string) error
}

// NewFromConfig returns an SMTP provider when a host is configured and a
// logging no-op provider otherwise.
func NewFromConfig(cfg *config.SMTPConfig) Provider {
	if cfg.Host == "" {
		return &NoOpProvider{}
	}
	return NewSMTP(*cfg)
}

type NoOpProvider struct{}

func (p *NoOpProvider) Send(ctx context.Context, to []string, subject string, htmlBody string) error {
	logger.WithComponent("notify").Info("email suppressed, no smtp host configured",
		zap.Strings("to", to), zap.String("subject", subject))
	return nil
}
