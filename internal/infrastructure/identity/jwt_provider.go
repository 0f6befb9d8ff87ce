package identity

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"fmt"
	"strings"

	"efectivio/internal/domain/entities"
	"efectivio/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt"
	log "github.com/sirupsen/logrus"
)

// sessionClaims is the payload of a provider-issued session token.
type sessionClaims struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role,omitempty"`

	jwt.StandardClaims
}

// JWTProvider verifies RS256 session tokens minted by the hosted identity
// provider. Sign-in and sign-up happen on the provider's side.
type JWTProvider struct {
	publicKey *rsa.PublicKey
	issuer    string
}

var _ interfaces.IIdentityProvider = (*JWTProvider)(nil)

// NewJWTProvider takes the provider's public key as base64 encoded PEM.
func NewJWTProvider(publicKeyB64, issuer string) (*JWTProvider, error) {
	pemBytes, err := base64.StdEncoding.DecodeString(strings.TrimSpace(publicKeyB64))
	if err != nil {
		return nil, fmt.Errorf("decoding public key: %w", err)
	}
	key, err := jwt.ParseRSAPublicKeyFromPEM(pemBytes)
	if err != nil {
		return nil, fmt.Errorf("parsing public key: %w", err)
	}
	return &JWTProvider{publicKey: key, issuer: issuer}, nil
}

func (p *JWTProvider) Name() string { return "jwt" }

func (p *JWTProvider) VerifyToken(_ context.Context, token string) (entities.Identity, error) {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return p.publicKey, nil
	})
	if err != nil {
		log.Debugf("[auth][jwt] token rejected err=%v", err)
		return entities.Identity{}, interfaces.ErrInvalidToken
	}
	if p.issuer != "" && !claims.VerifyIssuer(p.issuer, true) {
		return entities.Identity{}, interfaces.ErrInvalidToken
	}
	if claims.Subject == "" {
		return entities.Identity{}, interfaces.ErrInvalidToken
	}

	return entities.Identity{
		ExternalID: claims.Subject,
		Email:      claims.Email,
		FirstName:  claims.FirstName,
		LastName:   claims.LastName,
		Role:       entities.Role(claims.Role),
	}, nil
}

func (p *JWTProvider) SignIn(context.Context, string, string) (entities.AuthSession, error) {
	return entities.AuthSession{}, interfaces.ErrUnsupported
}

func (p *JWTProvider) SignUp(context.Context, entities.SignUpInput) (entities.AuthSession, error) {
	return entities.AuthSession{}, interfaces.ErrUnsupported
}

// SignOut is a no-op; sessions are revoked at the provider.
func (p *JWTProvider) SignOut(context.Context, string) error {
	return nil
}
