package usecase

import (
	"context"
	"strings"

	"efectivio/internal/domain/entities"
	"efectivio/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

// IAuthUseCase resolves bearer tokens to local users through the configured
// identity provider.
type IAuthUseCase interface {
	ProviderName() string
	Authenticate(ctx context.Context, token string) (entities.User, error)
	SignIn(ctx context.Context, email, password string) (entities.AuthSession, entities.User, error)
	SignUp(ctx context.Context, in entities.SignUpInput) (entities.AuthSession, entities.User, error)
	SignOut(ctx context.Context, token string) error
}

type AuthUseCase struct {
	provider    interfaces.IIdentityProvider
	users       interfaces.IUserRepository
	adminEmails map[string]struct{}
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(provider interfaces.IIdentityProvider, users interfaces.IUserRepository, adminEmails []string) *AuthUseCase {
	admins := make(map[string]struct{}, len(adminEmails))
	for _, e := range adminEmails {
		if e = strings.ToLower(strings.TrimSpace(e)); e != "" {
			admins[e] = struct{}{}
		}
	}
	return &AuthUseCase{provider: provider, users: users, adminEmails: admins}
}

func (u *AuthUseCase) ProviderName() string {
	return u.provider.Name()
}

func (u *AuthUseCase) Authenticate(ctx context.Context, token string) (entities.User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.User{}, interfaces.ErrInvalidToken
	}

	identity, err := u.provider.VerifyToken(ctx, token)
	if err != nil {
		return entities.User{}, err
	}
	return u.sync(ctx, identity)
}

func (u *AuthUseCase) SignIn(ctx context.Context, email, password string) (entities.AuthSession, entities.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return entities.AuthSession{}, entities.User{}, interfaces.ErrInvalidCredentials
	}

	session, err := u.provider.SignIn(ctx, email, password)
	if err != nil {
		log.Printf("[auth][usecase] sign-in failed provider=%s email=%s err=%v", u.provider.Name(), email, err)
		return entities.AuthSession{}, entities.User{}, err
	}
	user, err := u.sync(ctx, session.Identity)
	if err != nil {
		return entities.AuthSession{}, entities.User{}, err
	}
	return session, user, nil
}

func (u *AuthUseCase) SignUp(ctx context.Context, in entities.SignUpInput) (entities.AuthSession, entities.User, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	fields := map[string]string{}
	if in.Email == "" || !strings.Contains(in.Email, "@") {
		fields["email"] = "must be a valid email"
	}
	if len(in.Password) < 8 {
		fields["password"] = "must be at least 8 characters"
	}
	if len(fields) > 0 {
		return entities.AuthSession{}, entities.User{}, newValidationError(ErrInvalidInput, fields)
	}

	session, err := u.provider.SignUp(ctx, in)
	if err != nil {
		return entities.AuthSession{}, entities.User{}, err
	}
	user, err := u.sync(ctx, session.Identity)
	if err != nil {
		return entities.AuthSession{}, entities.User{}, err
	}
	log.Printf("[auth][usecase] sign-up provider=%s user_id=%s", u.provider.Name(), user.ID)
	return session, user, nil
}

func (u *AuthUseCase) SignOut(ctx context.Context, token string) error {
	return u.provider.SignOut(ctx, strings.TrimSpace(token))
}

// sync upserts the local user row for a verified identity.
func (u *AuthUseCase) sync(ctx context.Context, identity entities.Identity) (entities.User, error) {
	if strings.TrimSpace(identity.ExternalID) == "" {
		return entities.User{}, interfaces.ErrInvalidToken
	}

	user, err := u.users.Upsert(ctx, userFromIdentity(identity, u.adminEmails))
	if err != nil {
		return entities.User{}, err
	}
	if !user.IsActive {
		return entities.User{}, ErrUserInactive
	}
	return user, nil
}
