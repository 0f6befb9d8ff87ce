package mail

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"mime/multipart"
	"net/textproto"

	"efectivio/internal/domain/entities"
	"efectivio/internal/infrastructure/config"
	"efectivio/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// GmailMailer sends mail through the Gmail API as the configured sender,
// authorised by a stored OAuth2 refresh token.
type GmailMailer struct {
	service *gmail.Service
	sender  string
}

var _ interfaces.IMailer = (*GmailMailer)(nil)

func NewGmailMailer(ctx context.Context, cfg config.MailConfig) (*GmailMailer, error) {
	oauthConfig := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{gmail.GmailSendScope},
	}
	client := oauthConfig.Client(ctx, &oauth2.Token{RefreshToken: cfg.RefreshToken})

	service, err := gmail.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create Gmail service: %w", err)
	}
	log.Printf("[mail][gmail] client initialized sender=%s", cfg.Sender)
	return &GmailMailer{service: service, sender: cfg.Sender}, nil
}

func (m *GmailMailer) Send(ctx context.Context, msg entities.EmailMessage) error {
	raw, err := buildMessage(m.sender, msg)
	if err != nil {
		return err
	}
	_, err = m.service.Users.Messages.Send("me", &gmail.Message{
		Raw: base64.URLEncoding.EncodeToString(raw),
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("gmail send to %s: %w", msg.To, err)
	}
	log.Printf("[mail][gmail] sent to=%s subject=%q", msg.To, msg.Subject)
	return nil
}

// buildMessage renders an RFC 5322 message, multipart/alternative when an
// HTML body is present.
func buildMessage(from string, msg entities.EmailMessage) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", msg.To)
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", msg.Subject))
	buf.WriteString("MIME-Version: 1.0\r\n")

	if msg.HTMLBody == "" {
		buf.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n\r\n")
		buf.WriteString(msg.TextBody)
		return buf.Bytes(), nil
	}

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	fmt.Fprintf(&buf, "Content-Type: multipart/alternative; boundary=%q\r\n\r\n", w.Boundary())

	parts := []struct{ contentType, content string }{
		{"text/plain; charset=\"utf-8\"", msg.TextBody},
		{"text/html; charset=\"utf-8\"", msg.HTMLBody},
	}
	for _, p := range parts {
		pw, err := w.CreatePart(textproto.MIMEHeader{"Content-Type": {p.contentType}})
		if err != nil {
			return nil, err
		}
		if _, err := pw.Write([]byte(p.content)); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	buf.Write(body.Bytes())
	return buf.Bytes(), nil
}
