package identity

import (
	"fmt"
	"time"

	"efectivio/internal/domain/entities"
	"efectivio/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt"
	"golang.org/x/crypto/bcrypt"
)

const portalAudience = "client-portal"

type portalClaims struct {
	ClientID string `json:"client_id"`
	Email    string `json:"email"`

	jwt.StandardClaims
}

// PortalTokens signs client portal sessions with HS256.
type PortalTokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

var _ interfaces.IPortalTokenIssuer = (*PortalTokens)(nil)

func NewPortalTokens(secret string, ttl time.Duration) *PortalTokens {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &PortalTokens{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (p *PortalTokens) Issue(user entities.ClientPortalUser) (string, entities.PortalClaims, error) {
	now := p.now().UTC()
	expires := now.Add(p.ttl)
	claims := portalClaims{
		ClientID: user.ClientID,
		Email:    user.Email,
		StandardClaims: jwt.StandardClaims{
			Subject:   user.ID,
			Audience:  portalAudience,
			IssuedAt:  now.Unix(),
			ExpiresAt: expires.Unix(),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		return "", entities.PortalClaims{}, err
	}
	return token, entities.PortalClaims{
		PortalUserID: user.ID,
		ClientID:     user.ClientID,
		Email:        user.Email,
		ExpiresAt:    time.Unix(expires.Unix(), 0).UTC(),
	}, nil
}

func (p *PortalTokens) Parse(token string) (entities.PortalClaims, error) {
	var claims portalClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil {
		return entities.PortalClaims{}, interfaces.ErrInvalidToken
	}
	if !claims.VerifyAudience(portalAudience, true) || claims.Subject == "" || claims.ClientID == "" {
		return entities.PortalClaims{}, interfaces.ErrInvalidToken
	}
	return entities.PortalClaims{
		PortalUserID: claims.Subject,
		ClientID:     claims.ClientID,
		Email:        claims.Email,
		ExpiresAt:    time.Unix(claims.ExpiresAt, 0).UTC(),
	}, nil
}

// BcryptHasher hashes passwords with bcrypt at the default cost.
type BcryptHasher struct {
	cost int
}

var _ interfaces.IPasswordHasher = BcryptHasher{}

func NewBcryptHasher() BcryptHasher {
	return BcryptHasher{cost: bcrypt.DefaultCost}
}

func (h BcryptHasher) Hash(password string) (string, error) {
	cost := h.cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (h BcryptHasher) Compare(hash string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
