package identity

import (
	"fmt"

	"efectivio/internal/infrastructure/config"
	"efectivio/internal/usecase/interfaces"
)

// NewProvider builds the identity provider selected by cfg.Provider.
func NewProvider(cfg config.AuthConfig, hasher interfaces.IPasswordHasher) (interfaces.IIdentityProvider, error) {
	switch cfg.Provider {
	case "jwt":
		return NewJWTProvider(cfg.PublicKeyPEM, cfg.Issuer)
	case "dev":
		return NewDevProvider(cfg.DevStorePath, hasher)
	default:
		return nil, fmt.Errorf("unsupported auth provider %q", cfg.Provider)
	}
}
