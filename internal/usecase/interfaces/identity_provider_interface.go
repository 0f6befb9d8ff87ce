package interfaces

import (
	"context"
	"errors"
	"net/http"

	"efectivio/internal/domain/entities"
)

var (
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrIdentityExists     = errors.New("identity already exists")
	ErrUnsupported        = errors.New("operation not supported by identity provider")
	ErrInvalidSignature   = errors.New("invalid webhook signature")
)

// IIdentityProvider is the authentication capability. Exactly one
// implementation is selected at startup.
type IIdentityProvider interface {
	Name() string
	VerifyToken(ctx context.Context, token string) (entities.Identity, error)
	SignIn(ctx context.Context, email string, password string) (entities.AuthSession, error)
	SignUp(ctx context.Context, in entities.SignUpInput) (entities.AuthSession, error)
	SignOut(ctx context.Context, token string) error
}

// IWebhookVerifier authenticates identity-provider webhook deliveries.
type IWebhookVerifier interface {
	Verify(header http.Header, body []byte) error
}

// IPortalTokenIssuer signs and parses client portal session tokens.
type IPortalTokenIssuer interface {
	Issue(user entities.ClientPortalUser) (string, entities.PortalClaims, error)
	Parse(token string) (entities.PortalClaims, error)
}

// IPasswordHasher hashes client portal passwords.
type IPasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) bool
}
