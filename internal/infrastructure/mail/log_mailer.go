package mail

import (
	"context"
	"fmt"

	"efectivio/internal/domain/entities"
	"efectivio/internal/infrastructure/config"
	"efectivio/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

// LogMailer writes outgoing mail to the log instead of sending it.
type LogMailer struct{}

var _ interfaces.IMailer = LogMailer{}

func (LogMailer) Send(_ context.Context, msg entities.EmailMessage) error {
	log.WithFields(log.Fields{
		"to":      msg.To,
		"subject": msg.Subject,
	}).Infof("[mail][log] %s", msg.TextBody)
	return nil
}

// New builds the mailer selected by cfg.Driver.
func New(ctx context.Context, cfg config.MailConfig) (interfaces.IMailer, error) {
	switch cfg.Driver {
	case "gmail":
		return NewGmailMailer(ctx, cfg)
	case "log", "":
		return LogMailer{}, nil
	default:
		return nil, fmt.Errorf("unsupported mail driver %q", cfg.Driver)
	}
}
