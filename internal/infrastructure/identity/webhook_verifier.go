package identity

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"strconv"
	"strings"
	"time"

	"efectivio/internal/usecase/interfaces"
)

const webhookTolerance = 5 * time.Minute

// SvixVerifier checks svix-style signatures: svix-signature carries one or
// more "v1,<base64 HMAC-SHA256(id.timestamp.body)>" entries.
type SvixVerifier struct {
	secret []byte
	now    func() time.Time
}

var _ interfaces.IWebhookVerifier = (*SvixVerifier)(nil)

// NewSvixVerifier accepts the secret with or without its "whsec_" prefix.
func NewSvixVerifier(secret string) (*SvixVerifier, error) {
	key, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(strings.TrimSpace(secret), "whsec_"))
	if err != nil {
		return nil, err
	}
	return &SvixVerifier{secret: key, now: time.Now}, nil
}

func (v *SvixVerifier) Verify(header http.Header, body []byte) error {
	id := header.Get("svix-id")
	ts := header.Get("svix-timestamp")
	sigs := header.Get("svix-signature")
	if id == "" || ts == "" || sigs == "" {
		return interfaces.ErrInvalidSignature
	}

	sec, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return interfaces.ErrInvalidSignature
	}
	sent := time.Unix(sec, 0)
	now := v.now()
	if sent.Before(now.Add(-webhookTolerance)) || sent.After(now.Add(webhookTolerance)) {
		return interfaces.ErrInvalidSignature
	}

	expected := v.sign(id, ts, body)
	for _, entry := range strings.Fields(sigs) {
		version, sig, ok := strings.Cut(entry, ",")
		if !ok || version != "v1" {
			continue
		}
		if hmac.Equal([]byte(sig), []byte(expected)) {
			return nil
		}
	}
	return interfaces.ErrInvalidSignature
}

func (v *SvixVerifier) sign(id, ts string, body []byte) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(id + "." + ts + "."))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
