package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"efectivio/internal/domain/entities"
	"efectivio/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrClientNotFound  = errors.New("client not found")
	ErrInvalidClientID = errors.New("invalid client id")
	ErrClientInactive  = errors.New("client is inactive")
)

type IClientUseCase interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	List(ctx context.Context, filter entities.ClientFilter) ([]entities.Client, error)
	Update(ctx context.Context, c entities.Client) (entities.Client, error)
	SetActive(ctx context.Context, id string, active bool) (entities.Client, error)
}

type ClientUseCase struct {
	repo                interfaces.IClientRepository
	defaultPaymentTerms int
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository, defaultPaymentTerms int) *ClientUseCase {
	if defaultPaymentTerms <= 0 {
		defaultPaymentTerms = 30
	}
	return &ClientUseCase{repo: repo, defaultPaymentTerms: defaultPaymentTerms}
}

func (u *ClientUseCase) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	if err := u.normalize(&c); err != nil {
		return entities.Client{}, err
	}

	now := time.Now().UTC()
	c.ID = uuid.NewString()
	c.IsActive = true
	c.PortalAccess = false
	c.CreatedAt = now
	c.UpdatedAt = now
	return u.repo.Create(ctx, c)
}

func (u *ClientUseCase) GetByID(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ClientUseCase) List(ctx context.Context, filter entities.ClientFilter) ([]entities.Client, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	return u.repo.List(ctx, filter)
}

func (u *ClientUseCase) Update(ctx context.Context, c entities.Client) (entities.Client, error) {
	existing, err := u.GetByID(ctx, c.ID)
	if err != nil {
		return entities.Client{}, err
	}
	if err := u.normalize(&c); err != nil {
		return entities.Client{}, err
	}

	c.ID = existing.ID
	c.IsActive = existing.IsActive
	c.PortalAccess = existing.PortalAccess
	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, c)
	if err != nil {
		return entities.Client{}, err
	}
	if updated.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return updated, nil
}

func (u *ClientUseCase) SetActive(ctx context.Context, id string, active bool) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}

	updated, err := u.repo.SetActive(ctx, id, active)
	if err != nil {
		return entities.Client{}, err
	}
	if updated.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return updated, nil
}

func (u *ClientUseCase) normalize(c *entities.Client) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	c.TaxID = strings.TrimSpace(c.TaxID)

	if c.Type == "" {
		c.Type = entities.ClientTypeIndividual
	}
	if !c.Type.Valid() {
		return invalidField("type", "must be individual or company")
	}
	if c.Name == "" {
		return invalidField("name", "required")
	}
	if c.PaymentTerms < 0 {
		return invalidField("payment_terms", "must not be negative")
	}
	if c.PaymentTerms == 0 {
		c.PaymentTerms = u.defaultPaymentTerms
	}
	return nil
}

// activeClient loads a client that documents can be issued to.
func activeClient(ctx context.Context, repo interfaces.IClientRepository, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, invalidField("client_id", "required")
	}
	c, err := repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	if !c.IsActive {
		return entities.Client{}, ErrClientInactive
	}
	return c, nil
}
